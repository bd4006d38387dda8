// Package repository provides SQLite-backed data access for the colis service.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories are constructed over either, so the same queries run
// standalone or inside a reconcile transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store owns the embedded SQLite database. The service runs a
// single-writer model: one connection, transactions taken IMMEDIATE so
// the write lock covers a whole reconcile sequence, not just the final
// row write.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if needed) the SQLite database at path.
// Pass ":memory:" for an in-memory database (tests).
func Open(path string) (*Store, error) {
	dsn := buildDSN(path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %q: %w", path, err)
	}

	// One connection: SQLite is single-writer and the reconcile
	// transactions must never interleave.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("verify sqlite connection to %q: %w", path, err)
	}

	return &Store{db: db}, nil
}

// buildDSN assembles the modernc.org/sqlite DSN: foreign keys on, a busy
// timeout, and IMMEDIATE transactions.
func buildDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	q.Set("_txlock", "immediate")

	if path == ":memory:" {
		return "file::memory:?" + q.Encode()
	}
	return "file:" + path + "?" + q.Encode()
}

// DB exposes the underlying handle for read paths and repositories.
func (s *Store) DB() *sql.DB { return s.db }

// Ping verifies the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// WithTx runs fn inside a single transaction. The transaction is taken
// with the immediate write lock (DSN _txlock), so every statement of a
// parcel reconcile executes under one lock. Rolls back on error or panic.
func (s *Store) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("Transaction rollback failed")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a SQLite unique-constraint
// failure (duplicate numero_suivi).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
