package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Migrate creates the database schema when missing. Statements run inside
// one transaction so a partially created schema never survives a crash.
func (s *Store) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS clients (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nom TEXT NOT NULL,
			prenom TEXT,
			email TEXT,
			telephone TEXT,
			adresse TEXT,
			adresse_ligne2 TEXT,
			ville TEXT,
			code_postal TEXT,
			pays TEXT DEFAULT 'France',
			pseudo TEXT,
			wallet TEXT,
			lien TEXT,
			date_creation DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS dimensions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nom TEXT NOT NULL,
			longueur REAL NOT NULL,
			largeur REAL NOT NULL,
			hauteur REAL NOT NULL,
			poids_carton REAL DEFAULT 0,
			is_default INTEGER DEFAULT 0,
			date_creation DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS produits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nom TEXT NOT NULL,
			ref TEXT,
			description TEXT,
			prix REAL,
			poids REAL,
			stock INTEGER DEFAULT 0,
			dimension_id INTEGER REFERENCES dimensions(id),
			date_creation DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS colis (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			numero_suivi TEXT UNIQUE,
			client_id INTEGER NOT NULL,
			statut TEXT DEFAULT 'En préparation',
			poids REAL,
			dimensions TEXT,
			adresse_expedition TEXT,
			ville_expedition TEXT,
			code_postal_expedition TEXT,
			pays_expedition TEXT DEFAULT 'France',
			date_creation DATETIME DEFAULT CURRENT_TIMESTAMP,
			date_expedition DATETIME,
			date_livraison DATETIME,
			notes TEXT,
			reference TEXT,
			FOREIGN KEY (client_id) REFERENCES clients (id)
		)`,
		`CREATE TABLE IF NOT EXISTS colis_produits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			colis_id INTEGER NOT NULL,
			produit_id INTEGER NOT NULL,
			quantite INTEGER DEFAULT 1,
			lien TEXT,
			FOREIGN KEY (colis_id) REFERENCES colis (id) ON DELETE CASCADE,
			FOREIGN KEY (produit_id) REFERENCES produits (id)
		)`,
		`CREATE TABLE IF NOT EXISTS timbres (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			numero_suivi TEXT UNIQUE NOT NULL,
			poids_categorie TEXT NOT NULL,
			poids_min REAL NOT NULL,
			poids_max REAL NOT NULL,
			utilise INTEGER DEFAULT 0,
			colis_id INTEGER,
			date_creation DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (colis_id) REFERENCES colis (id) ON DELETE SET NULL
		)`,
		`CREATE TABLE IF NOT EXISTS timbre_categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nom TEXT NOT NULL,
			poids_min REAL NOT NULL,
			poids_max REAL NOT NULL,
			type TEXT DEFAULT 'national',
			date_creation DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_timbres_dispo
			ON timbres(utilise, poids_min, poids_max)`,
		`CREATE INDEX IF NOT EXISTS idx_colis_produits_colis
			ON colis_produits(colis_id)`,
	}

	return s.WithTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migrate schema: %w", err)
			}
		}
		return nil
	})
}

// Seed inserts the default weight categories and carton dimensions when
// their tables are empty, matching a fresh install.
func (s *Store) Seed(ctx context.Context) error {
	defaultCategories := []struct {
		nom      string
		min, max float64
		typ      string
	}{
		{"Moins de 20g", 0, 20, "national"},
		{"21g - 100g", 21, 100, "national"},
		{"101g - 250g", 101, 250, "national"},
		{"251g - 500g", 251, 500, "national"},
		{"501g - 1kg", 501, 1000, "national"},
		{"1kg - 2kg", 1001, 2000, "national"},
	}

	defaultDimensions := []struct {
		nom                        string
		longueur, largeur, hauteur float64
	}{
		{"Petit", 20, 15, 10},
		{"Moyen", 30, 20, 15},
		{"Grand", 40, 30, 20},
		{"Très grand", 50, 40, 30},
		{"Extra large", 60, 40, 40},
	}

	return s.WithTx(ctx, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM timbre_categories`).Scan(&count); err != nil {
			return fmt.Errorf("seed: count timbre_categories: %w", err)
		}
		if count == 0 {
			for _, c := range defaultCategories {
				_, err := tx.ExecContext(ctx,
					`INSERT INTO timbre_categories (nom, poids_min, poids_max, type) VALUES (?, ?, ?, ?)`,
					c.nom, c.min, c.max, c.typ)
				if err != nil {
					return fmt.Errorf("seed: insert timbre category: %w", err)
				}
			}
			log.Info().Int("count", len(defaultCategories)).Msg("Created default weight categories")
		}

		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM dimensions`).Scan(&count); err != nil {
			return fmt.Errorf("seed: count dimensions: %w", err)
		}
		if count == 0 {
			for _, d := range defaultDimensions {
				_, err := tx.ExecContext(ctx,
					`INSERT INTO dimensions (nom, longueur, largeur, hauteur, is_default) VALUES (?, ?, ?, ?, 1)`,
					d.nom, d.longueur, d.largeur, d.hauteur)
				if err != nil {
					return fmt.Errorf("seed: insert dimension: %w", err)
				}
			}
			log.Info().Int("count", len(defaultDimensions)).Msg("Created default carton dimensions")
		}

		return nil
	})
}
