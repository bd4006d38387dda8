package service

import (
	"context"

	"github.com/expedibox/colis-service/internal/domain/dto"
	"github.com/expedibox/colis-service/internal/domain/model"
	"github.com/expedibox/colis-service/internal/repository"
)

// ClientService manages the client directory.
type ClientService interface {
	List(ctx context.Context) ([]model.Client, error)
	Get(ctx context.Context, id int64) (*model.Client, error)
	Create(ctx context.Context, req dto.ClientRequest) (int64, error)
	Update(ctx context.Context, id int64, req dto.ClientRequest) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ClientServiceImpl implements ClientService.
type ClientServiceImpl struct {
	clients repository.ClientRepositoryInterface
}

// NewClientService creates a new client service.
func NewClientService(clients repository.ClientRepositoryInterface) *ClientServiceImpl {
	return &ClientServiceImpl{clients: clients}
}

func (s *ClientServiceImpl) List(ctx context.Context) ([]model.Client, error) {
	if s.clients == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.clients.List(ctx)
}

func (s *ClientServiceImpl) Get(ctx context.Context, id int64) (*model.Client, error) {
	if s.clients == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.clients.GetByID(ctx, id)
}

func (s *ClientServiceImpl) Create(ctx context.Context, req dto.ClientRequest) (int64, error) {
	if s.clients == nil {
		return 0, ErrRepositoryNotConfigured
	}
	if err := req.Validate(); err != nil {
		return 0, err
	}
	return s.clients.Create(ctx, clientFromRequest(req))
}

func (s *ClientServiceImpl) Update(ctx context.Context, id int64, req dto.ClientRequest) (int64, error) {
	if s.clients == nil {
		return 0, ErrRepositoryNotConfigured
	}
	if err := req.Validate(); err != nil {
		return 0, err
	}
	client := clientFromRequest(req)
	client.ID = id
	changes, err := s.clients.Update(ctx, client)
	if err != nil {
		return 0, err
	}
	if changes == 0 {
		return 0, repository.ErrNotFound
	}
	return changes, nil
}

func (s *ClientServiceImpl) Delete(ctx context.Context, id int64) (int64, error) {
	if s.clients == nil {
		return 0, ErrRepositoryNotConfigured
	}
	changes, err := s.clients.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if changes == 0 {
		return 0, repository.ErrNotFound
	}
	return changes, nil
}

func clientFromRequest(req dto.ClientRequest) model.Client {
	return model.Client{
		Nom:           req.Nom,
		Prenom:        req.Prenom,
		Email:         req.Email,
		Telephone:     req.Telephone,
		Adresse:       req.Adresse,
		AdresseLigne2: req.AdresseLigne2,
		CodePostal:    req.CodePostal,
		Ville:         req.Ville,
		Pays:          req.Pays,
		Pseudo:        req.Pseudo,
		Wallet:        req.Wallet,
		Lien:          req.Lien,
	}
}

// ProductService manages the product catalog. Stock mutations go
// through StockLedger, not here.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, req dto.ProductRequest) (int64, error)
	Update(ctx context.Context, id int64, req dto.ProductRequest) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ProductServiceImpl implements ProductService.
type ProductServiceImpl struct {
	products repository.ProductRepositoryInterface
}

// NewProductService creates a new product service.
func NewProductService(products repository.ProductRepositoryInterface) *ProductServiceImpl {
	return &ProductServiceImpl{products: products}
}

func (s *ProductServiceImpl) List(ctx context.Context) ([]model.Product, error) {
	if s.products == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.products.List(ctx)
}

func (s *ProductServiceImpl) Get(ctx context.Context, id int64) (*model.Product, error) {
	if s.products == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.products.GetByID(ctx, id)
}

func (s *ProductServiceImpl) Create(ctx context.Context, req dto.ProductRequest) (int64, error) {
	if s.products == nil {
		return 0, ErrRepositoryNotConfigured
	}
	if err := req.Validate(); err != nil {
		return 0, err
	}
	return s.products.Create(ctx, productFromRequest(req))
}

func (s *ProductServiceImpl) Update(ctx context.Context, id int64, req dto.ProductRequest) (int64, error) {
	if s.products == nil {
		return 0, ErrRepositoryNotConfigured
	}
	if err := req.Validate(); err != nil {
		return 0, err
	}
	product := productFromRequest(req)
	product.ID = id
	changes, err := s.products.Update(ctx, product)
	if err != nil {
		return 0, err
	}
	if changes == 0 {
		return 0, repository.ErrNotFound
	}
	return changes, nil
}

func (s *ProductServiceImpl) Delete(ctx context.Context, id int64) (int64, error) {
	if s.products == nil {
		return 0, ErrRepositoryNotConfigured
	}
	changes, err := s.products.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if changes == 0 {
		return 0, repository.ErrNotFound
	}
	return changes, nil
}

func productFromRequest(req dto.ProductRequest) model.Product {
	return model.Product{
		Nom:         req.Nom,
		Ref:         req.Ref,
		Description: req.Description,
		Prix:        req.Prix,
		Stock:       req.Stock,
		Poids:       req.Poids,
		DimensionID: req.DimensionID,
	}
}

// DimensionService manages carton dimension presets.
type DimensionService interface {
	List(ctx context.Context) ([]model.CartonDimension, error)
	Create(ctx context.Context, req dto.DimensionRequest) (int64, error)
	Update(ctx context.Context, id int64, req dto.DimensionRequest) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// DimensionServiceImpl implements DimensionService.
type DimensionServiceImpl struct {
	dimensions repository.DimensionRepositoryInterface
}

// NewDimensionService creates a new dimension service.
func NewDimensionService(dimensions repository.DimensionRepositoryInterface) *DimensionServiceImpl {
	return &DimensionServiceImpl{dimensions: dimensions}
}

func (s *DimensionServiceImpl) List(ctx context.Context) ([]model.CartonDimension, error) {
	if s.dimensions == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.dimensions.List(ctx)
}

func (s *DimensionServiceImpl) Create(ctx context.Context, req dto.DimensionRequest) (int64, error) {
	if s.dimensions == nil {
		return 0, ErrRepositoryNotConfigured
	}
	if err := req.Validate(); err != nil {
		return 0, err
	}
	return s.dimensions.Create(ctx, dimensionFromRequest(req))
}

func (s *DimensionServiceImpl) Update(ctx context.Context, id int64, req dto.DimensionRequest) (int64, error) {
	if s.dimensions == nil {
		return 0, ErrRepositoryNotConfigured
	}
	if err := req.Validate(); err != nil {
		return 0, err
	}
	dimension := dimensionFromRequest(req)
	dimension.ID = id
	changes, err := s.dimensions.Update(ctx, dimension)
	if err != nil {
		return 0, err
	}
	if changes == 0 {
		return 0, repository.ErrNotFound
	}
	return changes, nil
}

func (s *DimensionServiceImpl) Delete(ctx context.Context, id int64) (int64, error) {
	if s.dimensions == nil {
		return 0, ErrRepositoryNotConfigured
	}
	changes, err := s.dimensions.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if changes == 0 {
		return 0, repository.ErrNotFound
	}
	return changes, nil
}

func dimensionFromRequest(req dto.DimensionRequest) model.CartonDimension {
	return model.CartonDimension{
		Nom:         req.Nom,
		Longueur:    req.Longueur,
		Largeur:     req.Largeur,
		Hauteur:     req.Hauteur,
		PoidsCarton: req.PoidsCarton,
		IsDefault:   req.IsDefault,
	}
}

// StatsService exposes dashboard counters.
type StatsService interface {
	Overview(ctx context.Context) (*model.Stats, error)
}

// StatsServiceImpl implements StatsService.
type StatsServiceImpl struct {
	stats repository.StatsRepositoryInterface
}

// NewStatsService creates a new stats service.
func NewStatsService(stats repository.StatsRepositoryInterface) *StatsServiceImpl {
	return &StatsServiceImpl{stats: stats}
}

func (s *StatsServiceImpl) Overview(ctx context.Context) (*model.Stats, error) {
	if s.stats == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.stats.Stats(ctx)
}
