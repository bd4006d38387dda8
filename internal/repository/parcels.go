package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/expedibox/colis-service/internal/domain/model"
)

// ParcelRepository persists parcels and their product lines.
type ParcelRepository struct {
	db DBTX
}

// NewParcelRepository creates a new parcel repository.
func NewParcelRepository(db DBTX) *ParcelRepository {
	return &ParcelRepository{db: db}
}

const parcelColumns = `c.id, c.numero_suivi, c.client_id, c.statut, c.poids, c.dimensions,
	c.adresse_expedition, c.ville_expedition, c.code_postal_expedition, c.pays_expedition,
	c.date_creation, c.date_expedition, c.date_livraison, c.notes, c.reference`

func scanParcel(row interface{ Scan(...any) error }, withClient bool) (*model.Parcel, error) {
	var p model.Parcel
	var numeroSuivi, dimensions, adresse, ville, codePostal, pays sql.NullString
	var dateExp, dateLiv, notes, reference sql.NullString
	var poids sql.NullFloat64

	dest := []any{
		&p.ID, &numeroSuivi, &p.ClientID, &p.Statut, &poids, &dimensions,
		&adresse, &ville, &codePostal, &pays,
		&p.DateCreation, &dateExp, &dateLiv, &notes, &reference,
	}

	var clientNom, clientPrenom, clientEmail, clientAdresse, clientVille, clientCodePostal, clientPays sql.NullString
	if withClient {
		dest = append(dest, &clientNom, &clientPrenom, &clientEmail, &clientAdresse, &clientVille, &clientCodePostal, &clientPays)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	p.NumeroSuivi = numeroSuivi.String
	p.Poids = poids.Float64
	p.Dimensions = dimensions.String
	p.AdresseExpedition = adresse.String
	p.VilleExpedition = ville.String
	p.CodePostalExpedition = codePostal.String
	p.PaysExpedition = pays.String
	p.DateExpedition = dateExp.String
	p.DateLivraison = dateLiv.String
	p.Notes = notes.String
	p.Reference = reference.String

	if withClient {
		p.ClientNom = clientNom.String
		p.ClientPrenom = clientPrenom.String
		p.ClientEmail = clientEmail.String
		p.ClientAdresse = clientAdresse.String
		p.ClientVille = clientVille.String
		p.ClientCodePostal = clientCodePostal.String
		p.ClientPays = clientPays.String
	}

	return &p, nil
}

// List returns all parcels with joined client identity, newest first.
func (r *ParcelRepository) List(ctx context.Context) ([]model.Parcel, error) {
	query := `
	SELECT ` + parcelColumns + `,
		cl.nom, cl.prenom, cl.email, cl.adresse, cl.ville, cl.code_postal, cl.pays
	FROM colis c
	LEFT JOIN clients cl ON c.client_id = cl.id
	ORDER BY c.date_creation DESC, c.id DESC;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list parcels: %w", err)
	}
	defer rows.Close()

	parcels := make([]model.Parcel, 0, 64)
	for rows.Next() {
		p, err := scanParcel(rows, true)
		if err != nil {
			return nil, fmt.Errorf("list parcels: scan row: %w", err)
		}
		parcels = append(parcels, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list parcels: row iteration: %w", err)
	}
	return parcels, nil
}

// GetByID returns one parcel with client address fields and its product lines.
func (r *ParcelRepository) GetByID(ctx context.Context, id int64) (*model.Parcel, error) {
	query := `
	SELECT ` + parcelColumns + `,
		cl.nom, cl.prenom, cl.email, cl.adresse, cl.ville, cl.code_postal, cl.pays
	FROM colis c
	LEFT JOIN clients cl ON c.client_id = cl.id
	WHERE c.id = ?;
	`
	p, err := scanParcel(r.db.QueryRowContext(ctx, query, id), true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get parcel %d: %w", id, err)
	}

	lines, err := r.Lines(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Produits = lines
	return p, nil
}

// Lines returns the product lines of a parcel with denormalized product
// fields for display.
func (r *ParcelRepository) Lines(ctx context.Context, colisID int64) ([]model.ProductLine, error) {
	query := `
	SELECT cp.id, cp.colis_id, cp.produit_id, cp.quantite, cp.lien,
		p.nom, p.description, p.prix
	FROM colis_produits cp
	LEFT JOIN produits p ON cp.produit_id = p.id
	WHERE cp.colis_id = ?;
	`
	rows, err := r.db.QueryContext(ctx, query, colisID)
	if err != nil {
		return nil, fmt.Errorf("list lines of parcel %d: %w", colisID, err)
	}
	defer rows.Close()

	lines := make([]model.ProductLine, 0, 8)
	for rows.Next() {
		var l model.ProductLine
		var lien, nom, description sql.NullString
		var prix sql.NullFloat64
		if err := rows.Scan(&l.ID, &l.ColisID, &l.ProduitID, &l.Quantite, &lien, &nom, &description, &prix); err != nil {
			return nil, fmt.Errorf("list lines of parcel %d: scan row: %w", colisID, err)
		}
		l.Lien = lien.String
		l.Nom = nom.String
		l.Description = description.String
		l.Prix = prix.Float64
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lines of parcel %d: row iteration: %w", colisID, err)
	}
	return lines, nil
}

// Insert creates the parcel row and returns its id. A duplicate tracking
// number surfaces as ErrDuplicateTracking via the unique index.
func (r *ParcelRepository) Insert(ctx context.Context, p model.Parcel) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO colis (numero_suivi, client_id, statut, poids, dimensions,
			adresse_expedition, ville_expedition, code_postal_expedition, pays_expedition,
			date_expedition, date_livraison, notes, reference)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), ?, ?)`,
		p.NumeroSuivi, p.ClientID, p.Statut, p.Poids, p.Dimensions,
		p.AdresseExpedition, p.VilleExpedition, p.CodePostalExpedition, p.PaysExpedition,
		p.DateExpedition, p.DateLivraison, p.Notes, p.Reference)
	if isUniqueViolation(err) {
		return 0, ErrDuplicateTracking
	}
	if err != nil {
		return 0, fmt.Errorf("insert parcel: %w", err)
	}
	return res.LastInsertId()
}

// Update overwrites the parcel row.
func (r *ParcelRepository) Update(ctx context.Context, p model.Parcel) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE colis
		 SET numero_suivi = ?, statut = ?, poids = ?, dimensions = ?,
			adresse_expedition = ?, ville_expedition = ?, code_postal_expedition = ?, pays_expedition = ?,
			date_expedition = NULLIF(?, ''), date_livraison = NULLIF(?, ''), notes = ?, reference = ?
		 WHERE id = ?`,
		p.NumeroSuivi, p.Statut, p.Poids, p.Dimensions,
		p.AdresseExpedition, p.VilleExpedition, p.CodePostalExpedition, p.PaysExpedition,
		p.DateExpedition, p.DateLivraison, p.Notes, p.Reference, p.ID)
	if isUniqueViolation(err) {
		return 0, ErrDuplicateTracking
	}
	if err != nil {
		return 0, fmt.Errorf("update parcel %d: %w", p.ID, err)
	}
	return res.RowsAffected()
}

// Delete removes the parcel row; product lines go with it via cascade.
func (r *ParcelRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM colis WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete parcel %d: %w", id, err)
	}
	return res.RowsAffected()
}

// InsertLine adds one product line to a parcel.
func (r *ParcelRepository) InsertLine(ctx context.Context, line model.ProductLine) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO colis_produits (colis_id, produit_id, quantite, lien) VALUES (?, ?, ?, ?)`,
		line.ColisID, line.ProduitID, line.Quantite, line.Lien)
	if err != nil {
		return fmt.Errorf("insert line for parcel %d: %w", line.ColisID, err)
	}
	return nil
}

// DeleteLines removes every product line of a parcel.
func (r *ParcelRepository) DeleteLines(ctx context.Context, colisID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM colis_produits WHERE colis_id = ?`, colisID); err != nil {
		return fmt.Errorf("delete lines of parcel %d: %w", colisID, err)
	}
	return nil
}

// FindByLink returns the parcels other than excludeColisID owning a
// product line whose link contains lien (substring match).
func (r *ParcelRepository) FindByLink(ctx context.Context, lien string, excludeColisID int64) ([]model.Parcel, error) {
	query := `
	SELECT DISTINCT ` + parcelColumns + `,
		cl.nom, cl.prenom, cl.email, cl.adresse, cl.ville, cl.code_postal, cl.pays
	FROM colis c
	JOIN colis_produits cp ON cp.colis_id = c.id
	LEFT JOIN clients cl ON c.client_id = cl.id
	WHERE cp.lien IS NOT NULL AND cp.lien != '' AND instr(cp.lien, ?) > 0 AND c.id != ?
	ORDER BY c.date_creation DESC;
	`
	rows, err := r.db.QueryContext(ctx, query, lien, excludeColisID)
	if err != nil {
		return nil, fmt.Errorf("find parcels by link: %w", err)
	}
	defer rows.Close()

	parcels := make([]model.Parcel, 0, 4)
	for rows.Next() {
		p, err := scanParcel(rows, true)
		if err != nil {
			return nil, fmt.Errorf("find parcels by link: scan row: %w", err)
		}
		parcels = append(parcels, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find parcels by link: row iteration: %w", err)
	}
	return parcels, nil
}
