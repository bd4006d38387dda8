package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/expedibox/colis-service/internal/domain/model"
)

// CategoryRepository persists the weight-category registry.
type CategoryRepository struct {
	db DBTX
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns all categories ordered by (type, poids_min), the display
// and allocation order.
func (r *CategoryRepository) List(ctx context.Context) ([]model.WeightCategory, error) {
	query := `
	SELECT id, nom, poids_min, poids_max, type, date_creation
	FROM timbre_categories
	ORDER BY type, poids_min;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list weight categories: %w", err)
	}
	defer rows.Close()

	categories := make([]model.WeightCategory, 0, 16)
	for rows.Next() {
		var c model.WeightCategory
		if err := rows.Scan(&c.ID, &c.Nom, &c.PoidsMin, &c.PoidsMax, &c.Type, &c.DateCreation); err != nil {
			return nil, fmt.Errorf("list weight categories: scan row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list weight categories: row iteration: %w", err)
	}
	return categories, nil
}

// GetByID returns one category.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*model.WeightCategory, error) {
	var c model.WeightCategory
	err := r.db.QueryRowContext(ctx,
		`SELECT id, nom, poids_min, poids_max, type, date_creation FROM timbre_categories WHERE id = ?`, id).
		Scan(&c.ID, &c.Nom, &c.PoidsMin, &c.PoidsMax, &c.Type, &c.DateCreation)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get weight category %d: %w", id, err)
	}
	return &c, nil
}

// Create inserts a category and returns its id.
func (r *CategoryRepository) Create(ctx context.Context, c model.WeightCategory) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO timbre_categories (nom, poids_min, poids_max, type) VALUES (?, ?, ?, ?)`,
		c.Nom, c.PoidsMin, c.PoidsMax, c.Type)
	if err != nil {
		return 0, fmt.Errorf("create weight category %q: %w", c.Nom, err)
	}
	return res.LastInsertId()
}

// Update overwrites a category.
func (r *CategoryRepository) Update(ctx context.Context, c model.WeightCategory) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE timbre_categories SET nom = ?, poids_min = ?, poids_max = ?, type = ? WHERE id = ?`,
		c.Nom, c.PoidsMin, c.PoidsMax, c.Type, c.ID)
	if err != nil {
		return 0, fmt.Errorf("update weight category %d: %w", c.ID, err)
	}
	return res.RowsAffected()
}

// Delete removes a category row. The in-use guard lives in the service,
// which checks the stamp count first.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM timbre_categories WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete weight category %d: %w", id, err)
	}
	return res.RowsAffected()
}
