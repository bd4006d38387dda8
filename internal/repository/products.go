package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/expedibox/colis-service/internal/domain/model"
)

// ProductRepository persists products and carries the stock-ledger
// primitives. Stock arithmetic happens only in AdjustStock so the
// restore-before-reserve invariant stays enforceable in one place.
type ProductRepository struct {
	db DBTX
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, nom, ref, description, prix, poids, stock, dimension_id, date_creation`

func scanProduct(row interface{ Scan(...any) error }) (*model.Product, error) {
	var p model.Product
	var ref, description sql.NullString
	var prix, poids sql.NullFloat64
	var dimensionID sql.NullInt64
	err := row.Scan(&p.ID, &p.Nom, &ref, &description, &prix, &poids, &p.Stock, &dimensionID, &p.DateCreation)
	if err != nil {
		return nil, err
	}
	p.Ref = ref.String
	p.Description = description.String
	p.Prix = prix.Float64
	p.Poids = poids.Float64
	if dimensionID.Valid {
		p.DimensionID = &dimensionID.Int64
	}
	return &p, nil
}

// List returns all products ordered by name.
func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+` FROM produits ORDER BY nom;`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0, 64)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("list products: scan row: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: row iteration: %w", err)
	}
	return products, nil
}

// GetByID returns one product.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM produits WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

// Create inserts a product and returns its id.
func (r *ProductRepository) Create(ctx context.Context, p model.Product) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO produits (nom, ref, description, prix, poids, stock, dimension_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Nom, p.Ref, p.Description, p.Prix, p.Poids, p.Stock, p.DimensionID)
	if err != nil {
		return 0, fmt.Errorf("create product %q: %w", p.Nom, err)
	}
	return res.LastInsertId()
}

// Update overwrites a product, stock included (direct product CRUD may
// set stock explicitly).
func (r *ProductRepository) Update(ctx context.Context, p model.Product) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE produits SET nom = ?, ref = ?, description = ?, prix = ?, poids = ?, stock = ?, dimension_id = ?
		 WHERE id = ?`,
		p.Nom, p.Ref, p.Description, p.Prix, p.Poids, p.Stock, p.DimensionID, p.ID)
	if err != nil {
		return 0, fmt.Errorf("update product %d: %w", p.ID, err)
	}
	return res.RowsAffected()
}

// Delete removes a product.
func (r *ProductRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM produits WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete product %d: %w", id, err)
	}
	return res.RowsAffected()
}

// AdjustStock applies a signed delta to the product's stock and returns
// the post-operation value. No floor: stock going negative is a backorder
// signal, never a constraint.
func (r *ProductRepository) AdjustStock(ctx context.Context, id int64, delta int) (int, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE produits SET stock = stock + ? WHERE id = ?`, delta, id)
	if err != nil {
		return 0, fmt.Errorf("adjust stock of product %d by %d: %w", id, delta, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("adjust stock of product %d: rows affected: %w", id, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("adjust stock of product %d: %w", id, ErrNotFound)
	}

	var stock int
	if err := r.db.QueryRowContext(ctx, `SELECT stock FROM produits WHERE id = ?`, id).Scan(&stock); err != nil {
		return 0, fmt.Errorf("adjust stock of product %d: read back: %w", id, err)
	}
	return stock, nil
}

// NameAndStock returns the product name and current stock, the datum
// surfaced in negative-stock warnings.
func (r *ProductRepository) NameAndStock(ctx context.Context, id int64) (string, int, error) {
	var nom string
	var stock int
	err := r.db.QueryRowContext(ctx, `SELECT nom, stock FROM produits WHERE id = ?`, id).Scan(&nom, &stock)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, ErrNotFound
	}
	if err != nil {
		return "", 0, fmt.Errorf("read product %d name and stock: %w", id, err)
	}
	return nom, stock, nil
}
