package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/expedibox/colis-service/internal/domain/model"
)

// StampRepository persists the stamp pool. It can be constructed over the
// store handle or over a transaction.
type StampRepository struct {
	db DBTX
}

// NewStampRepository creates a new stamp repository.
func NewStampRepository(db DBTX) *StampRepository {
	return &StampRepository{db: db}
}

const stampColumns = `id, numero_suivi, poids_categorie, poids_min, poids_max, utilise, colis_id, date_creation`

func scanStamp(row interface{ Scan(...any) error }) (*model.Stamp, error) {
	var s model.Stamp
	var colisID sql.NullInt64
	err := row.Scan(&s.ID, &s.NumeroSuivi, &s.PoidsCategorie, &s.PoidsMin, &s.PoidsMax, &s.Utilise, &colisID, &s.DateCreation)
	if err != nil {
		return nil, err
	}
	if colisID.Valid {
		s.ColisID = &colisID.Int64
	}
	return &s, nil
}

// FindAvailableForWeight returns the available stamp whose bracket
// contains the given weight in grams, preferring the smallest bracket
// floor among matches (cheapest applicable stamp). Returns nil when no
// stamp matches; callers fall back to manual entry and never synthesize
// a tracking number.
func (r *StampRepository) FindAvailableForWeight(ctx context.Context, grams float64) (*model.Stamp, error) {
	query := `
	SELECT ` + stampColumns + `
	FROM timbres
	WHERE utilise = 0 AND poids_min <= ? AND poids_max >= ?
	ORDER BY poids_min ASC, id ASC
	LIMIT 1;
	`
	s, err := scanStamp(r.db.QueryRowContext(ctx, query, grams, grams))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find available stamp: %w", err)
	}
	return s, nil
}

// GetByID returns one stamp.
func (r *StampRepository) GetByID(ctx context.Context, id int64) (*model.Stamp, error) {
	query := `SELECT ` + stampColumns + ` FROM timbres WHERE id = ?;`
	s, err := scanStamp(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get stamp %d: %w", id, err)
	}
	return s, nil
}

// List returns all stamps ordered for grouped display.
func (r *StampRepository) List(ctx context.Context) ([]model.Stamp, error) {
	query := `SELECT ` + stampColumns + ` FROM timbres ORDER BY poids_min, numero_suivi;`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stamps: %w", err)
	}
	defer rows.Close()

	stamps := make([]model.Stamp, 0, 64)
	for rows.Next() {
		s, err := scanStamp(rows)
		if err != nil {
			return nil, fmt.Errorf("list stamps: scan row: %w", err)
		}
		stamps = append(stamps, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stamps: row iteration: %w", err)
	}
	return stamps, nil
}

// Insert adds one stamp. Tracking numbers already present are skipped
// via the unique index; the bool reports whether a row was inserted.
func (r *StampRepository) Insert(ctx context.Context, numero, categorie string, poidsMin, poidsMax float64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO timbres (numero_suivi, poids_categorie, poids_min, poids_max) VALUES (?, ?, ?, ?)`,
		numero, categorie, poidsMin, poidsMax)
	if err != nil {
		return false, fmt.Errorf("insert stamp %q: %w", numero, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert stamp %q: rows affected: %w", numero, err)
	}
	return n > 0, nil
}

// Bind marks the stamp used by the given parcel. No prior-state check:
// rebinding an already-used stamp is the caller's responsibility.
func (r *StampRepository) Bind(ctx context.Context, id, colisID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE timbres SET utilise = 1, colis_id = ? WHERE id = ?`, colisID, id)
	if err != nil {
		return 0, fmt.Errorf("bind stamp %d to parcel %d: %w", id, colisID, err)
	}
	return res.RowsAffected()
}

// Release marks the stamp available again and detaches it from its parcel.
func (r *StampRepository) Release(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE timbres SET utilise = 0, colis_id = NULL WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("release stamp %d: %w", id, err)
	}
	return res.RowsAffected()
}

// ReleaseByParcel releases every stamp bound to the given parcel. Used by
// parcel deletion so no stamp keeps a dangling reference.
func (r *StampRepository) ReleaseByParcel(ctx context.Context, colisID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE timbres SET utilise = 0, colis_id = NULL WHERE colis_id = ?`, colisID)
	if err != nil {
		return 0, fmt.Errorf("release stamps of parcel %d: %w", colisID, err)
	}
	return res.RowsAffected()
}

// SetUsed writes the used flag and parcel reference together.
func (r *StampRepository) SetUsed(ctx context.Context, id int64, utilise bool, colisID *int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE timbres SET utilise = ?, colis_id = ? WHERE id = ?`, utilise, colisID, id)
	if err != nil {
		return 0, fmt.Errorf("set stamp %d used=%t: %w", id, utilise, err)
	}
	return res.RowsAffected()
}

// Delete removes one stamp regardless of its state.
func (r *StampRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM timbres WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete stamp %d: %w", id, err)
	}
	return res.RowsAffected()
}

// DeleteAvailableByCategory removes the available stamps of a category.
// Used stamps are never bulk-deleted.
func (r *StampRepository) DeleteAvailableByCategory(ctx context.Context, nom string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM timbres WHERE poids_categorie = ? AND utilise = 0`, nom)
	if err != nil {
		return 0, fmt.Errorf("delete available stamps of category %q: %w", nom, err)
	}
	return res.RowsAffected()
}

// CountByCategoryName counts stamps referencing the category by name.
func (r *StampRepository) CountByCategoryName(ctx context.Context, nom string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM timbres WHERE poids_categorie = ?`, nom).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count stamps of category %q: %w", nom, err)
	}
	return count, nil
}
