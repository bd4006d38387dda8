package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/expedibox/colis-service/internal/domain/model"
)

// DimensionRepository persists carton dimensions.
type DimensionRepository struct {
	db DBTX
}

// NewDimensionRepository creates a new dimension repository.
func NewDimensionRepository(db DBTX) *DimensionRepository {
	return &DimensionRepository{db: db}
}

const dimensionColumns = `id, nom, longueur, largeur, hauteur, poids_carton, is_default, date_creation`

func scanDimension(row interface{ Scan(...any) error }) (*model.CartonDimension, error) {
	var d model.CartonDimension
	err := row.Scan(&d.ID, &d.Nom, &d.Longueur, &d.Largeur, &d.Hauteur, &d.PoidsCarton, &d.IsDefault, &d.DateCreation)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns all carton dimensions ordered by volume.
func (r *DimensionRepository) List(ctx context.Context) ([]model.CartonDimension, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+dimensionColumns+` FROM dimensions ORDER BY longueur * largeur * hauteur, id;`)
	if err != nil {
		return nil, fmt.Errorf("list dimensions: %w", err)
	}
	defer rows.Close()

	dims := make([]model.CartonDimension, 0, 8)
	for rows.Next() {
		d, err := scanDimension(rows)
		if err != nil {
			return nil, fmt.Errorf("list dimensions: scan row: %w", err)
		}
		dims = append(dims, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list dimensions: row iteration: %w", err)
	}
	return dims, nil
}

// GetByID returns one carton dimension.
func (r *DimensionRepository) GetByID(ctx context.Context, id int64) (*model.CartonDimension, error) {
	d, err := scanDimension(r.db.QueryRowContext(ctx,
		`SELECT `+dimensionColumns+` FROM dimensions WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get dimension %d: %w", id, err)
	}
	return d, nil
}

// Create inserts a carton dimension and returns its id.
func (r *DimensionRepository) Create(ctx context.Context, d model.CartonDimension) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO dimensions (nom, longueur, largeur, hauteur, poids_carton, is_default)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		d.Nom, d.Longueur, d.Largeur, d.Hauteur, d.PoidsCarton, d.IsDefault)
	if err != nil {
		return 0, fmt.Errorf("create dimension %q: %w", d.Nom, err)
	}
	return res.LastInsertId()
}

// Update overwrites a carton dimension.
func (r *DimensionRepository) Update(ctx context.Context, d model.CartonDimension) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE dimensions SET nom = ?, longueur = ?, largeur = ?, hauteur = ?, poids_carton = ?, is_default = ?
		 WHERE id = ?`,
		d.Nom, d.Longueur, d.Largeur, d.Hauteur, d.PoidsCarton, d.IsDefault, d.ID)
	if err != nil {
		return 0, fmt.Errorf("update dimension %d: %w", d.ID, err)
	}
	return res.RowsAffected()
}

// Delete removes a carton dimension.
func (r *DimensionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dimensions WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete dimension %d: %w", id, err)
	}
	return res.RowsAffected()
}
