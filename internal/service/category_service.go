package service

import (
	"context"

	"github.com/expedibox/colis-service/internal/domain/dto"
	"github.com/expedibox/colis-service/internal/domain/model"
	"github.com/expedibox/colis-service/internal/repository"
)

// CategoryService manages the weight-category registry.
type CategoryService interface {
	List(ctx context.Context) ([]model.WeightCategory, error)
	Create(ctx context.Context, req dto.WeightCategoryRequest) (*model.WeightCategory, error)
	Update(ctx context.Context, id int64, req dto.WeightCategoryRequest) (int64, error)
	// Delete removes a category unless a stamp still references it by
	// name, in which case it fails with ErrCategoryInUse.
	Delete(ctx context.Context, id int64) (int64, error)
}

// CategoryServiceImpl implements CategoryService.
type CategoryServiceImpl struct {
	categories repository.CategoryRepositoryInterface
	stamps     repository.StampRepositoryInterface
}

// NewCategoryService creates a new category service.
func NewCategoryService(categories repository.CategoryRepositoryInterface, stamps repository.StampRepositoryInterface) *CategoryServiceImpl {
	return &CategoryServiceImpl{categories: categories, stamps: stamps}
}

// List returns all categories ordered by (type, poids_min).
func (s *CategoryServiceImpl) List(ctx context.Context) ([]model.WeightCategory, error) {
	if s.categories == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.categories.List(ctx)
}

// Create inserts a category. Names are not required to be unique; the
// convention of unique names lives in the UI, not the storage layer.
func (s *CategoryServiceImpl) Create(ctx context.Context, req dto.WeightCategoryRequest) (*model.WeightCategory, error) {
	if s.categories == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	category := model.WeightCategory{
		Nom:      req.Nom,
		Type:     categoryType(req.Type),
		PoidsMin: req.PoidsMin,
		PoidsMax: req.PoidsMax,
	}
	id, err := s.categories.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	category.ID = id
	return &category, nil
}

// Update overwrites a category.
func (s *CategoryServiceImpl) Update(ctx context.Context, id int64, req dto.WeightCategoryRequest) (int64, error) {
	if s.categories == nil {
		return 0, ErrRepositoryNotConfigured
	}
	if err := req.Validate(); err != nil {
		return 0, err
	}

	changes, err := s.categories.Update(ctx, model.WeightCategory{
		ID:       id,
		Nom:      req.Nom,
		Type:     categoryType(req.Type),
		PoidsMin: req.PoidsMin,
		PoidsMax: req.PoidsMax,
	})
	if err != nil {
		return 0, err
	}
	if changes == 0 {
		return 0, repository.ErrNotFound
	}
	return changes, nil
}

// Delete refuses to remove a category while stamps reference its name.
func (s *CategoryServiceImpl) Delete(ctx context.Context, id int64) (int64, error) {
	if s.categories == nil || s.stamps == nil {
		return 0, ErrRepositoryNotConfigured
	}

	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	count, err := s.stamps.CountByCategoryName(ctx, category.Nom)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, repository.ErrCategoryInUse
	}

	return s.categories.Delete(ctx, id)
}

// categoryType normalizes the category type, defaulting to national.
func categoryType(t string) string {
	switch t {
	case model.CategoryTypeNational, model.CategoryTypeInternational, model.CategoryTypeOther:
		return t
	default:
		return model.CategoryTypeNational
	}
}
