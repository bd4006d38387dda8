package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/expedibox/colis-service/internal/domain/dto"
	"github.com/expedibox/colis-service/internal/domain/model"
	"github.com/expedibox/colis-service/internal/repository"
)

// ParcelResult is the outcome of a parcel create or update: the parcel
// identity plus the advisory list of products whose stock went negative.
type ParcelResult struct {
	ID               int64
	NumeroSuivi      string
	ProduitsNegatifs []model.NegativeStock
}

// ParcelService orchestrates parcel writes: every create/update/delete
// reconciles product stock against the parcel's line set and runs as one
// transaction. A failed write leaves stock untouched.
type ParcelService interface {
	List(ctx context.Context) ([]model.Parcel, error)
	Get(ctx context.Context, id int64) (*model.Parcel, error)
	Create(ctx context.Context, req dto.ParcelRequest) (*ParcelResult, error)
	Update(ctx context.Context, id int64, req dto.ParcelRequest) (*ParcelResult, error)
	Delete(ctx context.Context, id int64) (int64, error)
	// CheckDuplicateLink surfaces other parcels already carrying a line
	// with a matching link. Soft warning; the caller may proceed anyway.
	CheckDuplicateLink(ctx context.Context, lien string, excludeColisID int64) ([]model.Parcel, error)
}

// ParcelServiceImpl implements ParcelService over the embedded store.
type ParcelServiceImpl struct {
	store *repository.Store
}

// NewParcelService creates a new parcel service.
func NewParcelService(store *repository.Store) *ParcelServiceImpl {
	return &ParcelServiceImpl{store: store}
}

// List returns all parcels with client identity.
func (s *ParcelServiceImpl) List(ctx context.Context) ([]model.Parcel, error) {
	return repository.NewParcelRepository(s.store.DB()).List(ctx)
}

// Get returns one parcel with its product lines.
func (s *ParcelServiceImpl) Get(ctx context.Context, id int64) (*model.Parcel, error) {
	return repository.NewParcelRepository(s.store.DB()).GetByID(ctx, id)
}

// Create persists a new parcel, reserves stock for every line and
// optionally binds a pre-selected stamp, all in one transaction. The
// server never allocates a stamp itself; callers pick one via the stamp
// pool before submitting.
func (s *ParcelServiceImpl) Create(ctx context.Context, req dto.ParcelRequest) (*ParcelResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	parcel := parcelFromRequest(req)
	if parcel.NumeroSuivi == "" {
		parcel.NumeroSuivi = generateTracking()
	}
	if parcel.Statut == "" {
		parcel.Statut = model.StatusEnPreparation
	}

	result := &ParcelResult{NumeroSuivi: parcel.NumeroSuivi}
	err := s.store.WithTx(ctx, func(tx *sql.Tx) error {
		parcels := repository.NewParcelRepository(tx)
		ledger := NewStockLedger(repository.NewProductRepository(tx))

		id, err := parcels.Insert(ctx, parcel)
		if err != nil {
			return err
		}
		result.ID = id

		negatives, err := reserveLines(ctx, parcels, ledger, id, req.Produits)
		if err != nil {
			return err
		}
		result.ProduitsNegatifs = negatives

		if req.TimbreID != nil {
			if err := bindStamp(ctx, tx, *req.TimbreID, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces the parcel's line set wholesale: the old lines'
// quantities are restored first, then the new lines reserved, so the
// net effect of an unchanged set is zero. Negative-stock warnings come
// from the new reservations only. A previously bound stamp is never
// auto-released; stamp lifecycle stays under explicit user control.
func (s *ParcelServiceImpl) Update(ctx context.Context, id int64, req dto.ParcelRequest) (*ParcelResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	parcel := parcelFromRequest(req)
	parcel.ID = id

	result := &ParcelResult{ID: id, NumeroSuivi: parcel.NumeroSuivi}
	err := s.store.WithTx(ctx, func(tx *sql.Tx) error {
		parcels := repository.NewParcelRepository(tx)
		ledger := NewStockLedger(repository.NewProductRepository(tx))

		// Undo the previous reservation before applying the new one.
		current, err := parcels.Lines(ctx, id)
		if err != nil {
			return err
		}
		for _, line := range current {
			if _, err := ledger.Restore(ctx, line.ProduitID, line.Quantite); err != nil {
				return err
			}
		}
		if err := parcels.DeleteLines(ctx, id); err != nil {
			return err
		}

		changes, err := parcels.Update(ctx, parcel)
		if err != nil {
			return err
		}
		if changes == 0 {
			return repository.ErrNotFound
		}

		negatives, err := reserveLines(ctx, parcels, ledger, id, req.Produits)
		if err != nil {
			return err
		}
		result.ProduitsNegatifs = negatives

		if req.TimbreID != nil {
			if err := bindStamp(ctx, tx, *req.TimbreID, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete restores stock for every line, releases any stamp bound to the
// parcel and removes the row, in one transaction. Releasing here keeps
// the pool free of stamps pointing at deleted parcels.
func (s *ParcelServiceImpl) Delete(ctx context.Context, id int64) (int64, error) {
	var changes int64
	err := s.store.WithTx(ctx, func(tx *sql.Tx) error {
		parcels := repository.NewParcelRepository(tx)
		stamps := repository.NewStampRepository(tx)
		ledger := NewStockLedger(repository.NewProductRepository(tx))

		lines, err := parcels.Lines(ctx, id)
		if err != nil {
			return err
		}
		for _, line := range lines {
			if _, err := ledger.Restore(ctx, line.ProduitID, line.Quantite); err != nil {
				return err
			}
		}

		if _, err := stamps.ReleaseByParcel(ctx, id); err != nil {
			return err
		}

		changes, err = parcels.Delete(ctx, id)
		if err != nil {
			return err
		}
		if changes == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return changes, nil
}

// CheckDuplicateLink searches other parcels' lines for a matching link.
func (s *ParcelServiceImpl) CheckDuplicateLink(ctx context.Context, lien string, excludeColisID int64) ([]model.Parcel, error) {
	return repository.NewParcelRepository(s.store.DB()).FindByLink(ctx, lien, excludeColisID)
}

// reserveLines inserts the lines of a parcel, reserving stock for each
// and collecting the products whose post-reservation stock is negative.
// Warnings are deduplicated per product, keeping the final value.
func reserveLines(ctx context.Context, parcels *repository.ParcelRepository, ledger *StockLedger, colisID int64, lines []dto.ProductLineRequest) ([]model.NegativeStock, error) {
	negativeByProduct := make(map[int64]model.NegativeStock)
	order := make([]int64, 0, len(lines))

	for _, line := range lines {
		stock, err := ledger.Reserve(ctx, line.ProduitID, line.Quantite)
		if err != nil {
			return nil, err
		}
		if err := parcels.InsertLine(ctx, model.ProductLine{
			ColisID:   colisID,
			ProduitID: line.ProduitID,
			Quantite:  line.Quantite,
			Lien:      line.Lien,
		}); err != nil {
			return nil, err
		}

		if stock < 0 {
			warning, err := ledger.CheckNegative(ctx, line.ProduitID)
			if err != nil {
				return nil, err
			}
			if warning != nil {
				if _, seen := negativeByProduct[line.ProduitID]; !seen {
					order = append(order, line.ProduitID)
				}
				negativeByProduct[line.ProduitID] = *warning
			}
		}
	}

	negatives := make([]model.NegativeStock, 0, len(order))
	for _, id := range order {
		negatives = append(negatives, negativeByProduct[id])
	}
	return negatives, nil
}

// bindStamp binds a pre-selected stamp inside the reconcile transaction.
func bindStamp(ctx context.Context, tx *sql.Tx, stampID, colisID int64) error {
	changes, err := repository.NewStampRepository(tx).Bind(ctx, stampID, colisID)
	if err != nil {
		return err
	}
	if changes == 0 {
		return fmt.Errorf("bind stamp %d: %w", stampID, repository.ErrNotFound)
	}
	return nil
}

// parcelFromRequest maps the request body onto the domain parcel.
func parcelFromRequest(req dto.ParcelRequest) model.Parcel {
	return model.Parcel{
		NumeroSuivi:          req.NumeroSuivi,
		ClientID:             req.ClientID,
		Statut:               req.Statut,
		Poids:                req.Poids,
		Dimensions:           req.Dimensions,
		AdresseExpedition:    req.AdresseExpedition,
		VilleExpedition:      req.VilleExpedition,
		CodePostalExpedition: req.CodePostalExpedition,
		PaysExpedition:       req.PaysExpedition,
		DateExpedition:       req.DateExpedition,
		DateLivraison:        req.DateLivraison,
		Notes:                req.Notes,
		Reference:            req.Reference,
	}
}

// generateTracking builds the fallback tracking number for parcels
// submitted without one.
func generateTracking() string {
	return fmt.Sprintf("COL%d", time.Now().UnixMilli())
}
