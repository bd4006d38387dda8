package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/expedibox/colis-service/internal/domain/model"
)

// ClientRepository persists clients.
type ClientRepository struct {
	db DBTX
}

// NewClientRepository creates a new client repository.
func NewClientRepository(db DBTX) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `id, nom, prenom, email, telephone, adresse, adresse_ligne2, ville, code_postal, pays, pseudo, wallet, lien, date_creation`

func scanClient(row interface{ Scan(...any) error }) (*model.Client, error) {
	var c model.Client
	var prenom, email, telephone, adresse, adresse2, ville, codePostal, pays, pseudo, wallet, lien sql.NullString
	err := row.Scan(&c.ID, &c.Nom, &prenom, &email, &telephone, &adresse, &adresse2,
		&ville, &codePostal, &pays, &pseudo, &wallet, &lien, &c.DateCreation)
	if err != nil {
		return nil, err
	}
	c.Prenom = prenom.String
	c.Email = email.String
	c.Telephone = telephone.String
	c.Adresse = adresse.String
	c.AdresseLigne2 = adresse2.String
	c.Ville = ville.String
	c.CodePostal = codePostal.String
	c.Pays = pays.String
	c.Pseudo = pseudo.String
	c.Wallet = wallet.String
	c.Lien = lien.String
	return &c, nil
}

// List returns all clients, newest first.
func (r *ClientRepository) List(ctx context.Context) ([]model.Client, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients ORDER BY date_creation DESC, id DESC;`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]model.Client, 0, 64)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("list clients: scan row: %w", err)
		}
		clients = append(clients, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clients: row iteration: %w", err)
	}
	return clients, nil
}

// GetByID returns one client.
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	c, err := scanClient(r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get client %d: %w", id, err)
	}
	return c, nil
}

// Create inserts a client and returns its id.
func (r *ClientRepository) Create(ctx context.Context, c model.Client) (int64, error) {
	pays := c.Pays
	if pays == "" {
		pays = "France"
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (nom, prenom, email, telephone, adresse, adresse_ligne2, ville, code_postal, pays, pseudo, wallet, lien)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Nom, c.Prenom, c.Email, c.Telephone, c.Adresse, c.AdresseLigne2,
		c.Ville, c.CodePostal, pays, c.Pseudo, c.Wallet, c.Lien)
	if err != nil {
		return 0, fmt.Errorf("create client %q: %w", c.Nom, err)
	}
	return res.LastInsertId()
}

// Update overwrites a client.
func (r *ClientRepository) Update(ctx context.Context, c model.Client) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE clients
		 SET nom = ?, prenom = ?, email = ?, telephone = ?, adresse = ?, adresse_ligne2 = ?,
			ville = ?, code_postal = ?, pays = ?, pseudo = ?, wallet = ?, lien = ?
		 WHERE id = ?`,
		c.Nom, c.Prenom, c.Email, c.Telephone, c.Adresse, c.AdresseLigne2,
		c.Ville, c.CodePostal, c.Pays, c.Pseudo, c.Wallet, c.Lien, c.ID)
	if err != nil {
		return 0, fmt.Errorf("update client %d: %w", c.ID, err)
	}
	return res.RowsAffected()
}

// Delete removes a client.
func (r *ClientRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete client %d: %w", id, err)
	}
	return res.RowsAffected()
}
