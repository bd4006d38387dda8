// Package service implements the business logic of the colis service:
// stamp allocation, stock reconciliation and the registry around them.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/expedibox/colis-service/internal/domain/dto"
	"github.com/expedibox/colis-service/internal/domain/model"
	"github.com/expedibox/colis-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when a service has no repository.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// StampPool provides stamp allocation and lifecycle operations over the
// pool of pre-purchased tracking numbers.
type StampPool interface {
	// FindAvailableForWeight returns the cheapest available stamp whose
	// bracket contains the weight, or nil when none matches.
	FindAvailableForWeight(ctx context.Context, poidsKg float64) (*model.Stamp, error)
	// ImportBulk inserts tracking numbers under one bracket, skipping
	// numbers already present. Returns inserted and total counts.
	ImportBulk(ctx context.Context, req dto.ImportStampsRequest) (inserted, total int, err error)
	Bind(ctx context.Context, id, colisID int64) (int64, error)
	Release(ctx context.Context, id int64) (int64, error)
	// Toggle flips the used flag. Flipping to unused detaches the stamp
	// from its parcel unconditionally, even if that parcel is live: a
	// deliberate manual override, documented as a user-facing hazard.
	Toggle(ctx context.Context, id int64) (utilise bool, changes int64, err error)
	DeleteOne(ctx context.Context, id int64) (int64, error)
	// DeleteAvailableInCategory bulk-deletes the available stamps of a
	// category; used stamps are never bulk-deleted.
	DeleteAvailableInCategory(ctx context.Context, nom string) (int64, error)
	// ListGrouped returns stamps grouped per category, available/used
	// split, orphan categories included.
	ListGrouped(ctx context.Context) ([]model.StampGroup, error)
}

// StampPoolImpl implements StampPool.
type StampPoolImpl struct {
	stamps     repository.StampRepositoryInterface
	categories repository.CategoryRepositoryInterface
}

// NewStampPool creates a new stamp pool service.
func NewStampPool(stamps repository.StampRepositoryInterface, categories repository.CategoryRepositoryInterface) *StampPoolImpl {
	return &StampPoolImpl{stamps: stamps, categories: categories}
}

// FindAvailableForWeight converts the weight to grams and picks the
// available stamp with the smallest bracket floor among matches.
func (s *StampPoolImpl) FindAvailableForWeight(ctx context.Context, poidsKg float64) (*model.Stamp, error) {
	if s.stamps == nil {
		return nil, ErrRepositoryNotConfigured
	}
	grams := poidsKg * 1000
	return s.stamps.FindAvailableForWeight(ctx, grams)
}

// ImportBulk inserts the tracking numbers one by one; the unique index on
// numero_suivi makes re-imports idempotent. When the request omits the
// bracket bounds they are resolved from the registry by category name.
func (s *StampPoolImpl) ImportBulk(ctx context.Context, req dto.ImportStampsRequest) (int, int, error) {
	if s.stamps == nil {
		return 0, 0, ErrRepositoryNotConfigured
	}
	if err := req.Validate(); err != nil {
		return 0, 0, err
	}

	poidsMin, poidsMax := req.PoidsMin, req.PoidsMax
	if poidsMin == 0 && poidsMax == 0 {
		resolved, err := s.resolveBracket(ctx, req.PoidsCategorie)
		if err != nil {
			return 0, 0, err
		}
		poidsMin, poidsMax = resolved.PoidsMin, resolved.PoidsMax
	}

	inserted := 0
	for _, numero := range req.Numeros {
		if numero == "" {
			continue
		}
		ok, err := s.stamps.Insert(ctx, numero, req.PoidsCategorie, poidsMin, poidsMax)
		if err != nil {
			return inserted, len(req.Numeros), err
		}
		if ok {
			inserted++
		}
	}
	return inserted, len(req.Numeros), nil
}

// resolveBracket finds the registry bracket for a category name.
func (s *StampPoolImpl) resolveBracket(ctx context.Context, nom string) (*model.WeightCategory, error) {
	if s.categories == nil {
		return nil, ErrRepositoryNotConfigured
	}
	registry, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range registry {
		if registry[i].Nom == nom {
			return &registry[i], nil
		}
	}
	return nil, &dto.ValidationError{Field: "poids_categorie", Message: fmt.Sprintf("weight category %q not found", nom)}
}

// Bind marks the stamp used by the parcel. No prior-state check by
// design: rebinding a used stamp is allowed and caller-controlled.
func (s *StampPoolImpl) Bind(ctx context.Context, id, colisID int64) (int64, error) {
	if s.stamps == nil {
		return 0, ErrRepositoryNotConfigured
	}
	changes, err := s.stamps.Bind(ctx, id, colisID)
	if err != nil {
		return 0, err
	}
	if changes == 0 {
		return 0, repository.ErrNotFound
	}
	return changes, nil
}

// Release marks the stamp available and detaches it from any parcel.
func (s *StampPoolImpl) Release(ctx context.Context, id int64) (int64, error) {
	if s.stamps == nil {
		return 0, ErrRepositoryNotConfigured
	}
	changes, err := s.stamps.Release(ctx, id)
	if err != nil {
		return 0, err
	}
	if changes == 0 {
		return 0, repository.ErrNotFound
	}
	return changes, nil
}

// Toggle flips the used flag; flipping to unused always clears colis_id.
func (s *StampPoolImpl) Toggle(ctx context.Context, id int64) (bool, int64, error) {
	if s.stamps == nil {
		return false, 0, ErrRepositoryNotConfigured
	}
	stamp, err := s.stamps.GetByID(ctx, id)
	if err != nil {
		return false, 0, err
	}

	utilise := !stamp.Utilise
	changes, err := s.stamps.SetUsed(ctx, id, utilise, nil)
	if err != nil {
		return false, 0, err
	}
	return utilise, changes, nil
}

// DeleteOne removes a single stamp regardless of state.
func (s *StampPoolImpl) DeleteOne(ctx context.Context, id int64) (int64, error) {
	if s.stamps == nil {
		return 0, ErrRepositoryNotConfigured
	}
	changes, err := s.stamps.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if changes == 0 {
		return 0, repository.ErrNotFound
	}
	return changes, nil
}

// DeleteAvailableInCategory bulk-deletes available stamps only.
func (s *StampPoolImpl) DeleteAvailableInCategory(ctx context.Context, nom string) (int64, error) {
	if s.stamps == nil {
		return 0, ErrRepositoryNotConfigured
	}
	return s.stamps.DeleteAvailableByCategory(ctx, nom)
}

// ListGrouped groups stamps per category. Registry categories come first
// in their own order; categories present only in stamp rows (orphaned or
// renamed since import) are synthesized from the stamp-side data.
func (s *StampPoolImpl) ListGrouped(ctx context.Context) ([]model.StampGroup, error) {
	if s.stamps == nil || s.categories == nil {
		return nil, ErrRepositoryNotConfigured
	}

	registry, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	stamps, err := s.stamps.List(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*model.StampGroup, len(registry)+4)
	for _, c := range registry {
		groups[c.Nom] = &model.StampGroup{
			Nom:         c.Nom,
			Type:        c.Type,
			PoidsMin:    c.PoidsMin,
			PoidsMax:    c.PoidsMax,
			Disponibles: []model.Stamp{},
			Utilises:    []model.Stamp{},
		}
	}

	for _, stamp := range stamps {
		g, ok := groups[stamp.PoidsCategorie]
		if !ok {
			// Name unknown to the registry: fall back to range matching
			// before declaring the category orphaned.
			group := model.StampGroup{
				Nom:         stamp.PoidsCategorie,
				Type:        model.CategoryTypeOther,
				PoidsMin:    stamp.PoidsMin,
				PoidsMax:    stamp.PoidsMax,
				Orphan:      true,
				Disponibles: []model.Stamp{},
				Utilises:    []model.Stamp{},
			}
			if resolved := stamp.Ref().Resolve(registry); resolved != nil {
				group.Type = resolved.Type
			}
			groups[stamp.PoidsCategorie] = &group
			g = groups[stamp.PoidsCategorie]
		}
		if stamp.Utilise {
			g.Utilises = append(g.Utilises, stamp)
		} else {
			g.Disponibles = append(g.Disponibles, stamp)
		}
	}

	out := make([]model.StampGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		if out[i].PoidsMin != out[j].PoidsMin {
			return out[i].PoidsMin < out[j].PoidsMin
		}
		return out[i].Nom < out[j].Nom
	})
	return out, nil
}
