package repository

import (
	"context"

	"github.com/expedibox/colis-service/internal/domain/model"
)

// StampRepositoryInterface defines stamp pool persistence operations.
type StampRepositoryInterface interface {
	FindAvailableForWeight(ctx context.Context, grams float64) (*model.Stamp, error)
	GetByID(ctx context.Context, id int64) (*model.Stamp, error)
	List(ctx context.Context) ([]model.Stamp, error)
	Insert(ctx context.Context, numero, categorie string, poidsMin, poidsMax float64) (bool, error)
	Bind(ctx context.Context, id, colisID int64) (int64, error)
	Release(ctx context.Context, id int64) (int64, error)
	ReleaseByParcel(ctx context.Context, colisID int64) (int64, error)
	SetUsed(ctx context.Context, id int64, utilise bool, colisID *int64) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteAvailableByCategory(ctx context.Context, nom string) (int64, error)
	CountByCategoryName(ctx context.Context, nom string) (int, error)
}

// CategoryRepositoryInterface defines weight-category registry operations.
type CategoryRepositoryInterface interface {
	List(ctx context.Context) ([]model.WeightCategory, error)
	GetByID(ctx context.Context, id int64) (*model.WeightCategory, error)
	Create(ctx context.Context, c model.WeightCategory) (int64, error)
	Update(ctx context.Context, c model.WeightCategory) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ProductRepositoryInterface defines product persistence and the stock
// ledger primitives (AdjustStock is the single place stock arithmetic
// happens).
type ProductRepositoryInterface interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, p model.Product) (int64, error)
	Update(ctx context.Context, p model.Product) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	AdjustStock(ctx context.Context, id int64, delta int) (int, error)
	NameAndStock(ctx context.Context, id int64) (string, int, error)
}

// ParcelRepositoryInterface defines parcel and product-line persistence.
type ParcelRepositoryInterface interface {
	List(ctx context.Context) ([]model.Parcel, error)
	GetByID(ctx context.Context, id int64) (*model.Parcel, error)
	Lines(ctx context.Context, colisID int64) ([]model.ProductLine, error)
	Insert(ctx context.Context, p model.Parcel) (int64, error)
	Update(ctx context.Context, p model.Parcel) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	InsertLine(ctx context.Context, line model.ProductLine) error
	DeleteLines(ctx context.Context, colisID int64) error
	FindByLink(ctx context.Context, lien string, excludeColisID int64) ([]model.Parcel, error)
}

// ClientRepositoryInterface defines client persistence operations.
type ClientRepositoryInterface interface {
	List(ctx context.Context) ([]model.Client, error)
	GetByID(ctx context.Context, id int64) (*model.Client, error)
	Create(ctx context.Context, c model.Client) (int64, error)
	Update(ctx context.Context, c model.Client) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// DimensionRepositoryInterface defines carton dimension persistence.
type DimensionRepositoryInterface interface {
	List(ctx context.Context) ([]model.CartonDimension, error)
	GetByID(ctx context.Context, id int64) (*model.CartonDimension, error)
	Create(ctx context.Context, d model.CartonDimension) (int64, error)
	Update(ctx context.Context, d model.CartonDimension) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// StatsRepositoryInterface provides the dashboard counters.
type StatsRepositoryInterface interface {
	Stats(ctx context.Context) (*model.Stats, error)
}
