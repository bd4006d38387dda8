package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expedibox/colis-service/internal/domain/model"
)

// newTestStore opens an in-memory store with the schema applied.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

// newSeededStore opens an in-memory store with schema and default data.
func newSeededStore(t *testing.T) *Store {
	t.Helper()

	store := newTestStore(t)
	require.NoError(t, store.Seed(context.Background()))
	return store
}

func testClient(nom string) model.Client {
	return model.Client{
		Nom:        nom,
		Prenom:     "Marie",
		Email:      "marie@example.fr",
		Adresse:    "12 rue des Lilas",
		Ville:      "Lyon",
		CodePostal: "69003",
	}
}

func TestOpenAndPing(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Migrate(context.Background()))
	assert.NoError(t, store.Migrate(context.Background()))
}

func TestSeedDefaults(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	categories, err := NewCategoryRepository(store.DB()).List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 6)
	assert.Equal(t, "Moins de 20g", categories[0].Nom)
	assert.Equal(t, float64(0), categories[0].PoidsMin)
	assert.Equal(t, float64(20), categories[0].PoidsMax)

	dimensions, err := NewDimensionRepository(store.DB()).List(ctx)
	require.NoError(t, err)
	assert.Len(t, dimensions, 5)

	// Seeding again must not duplicate reference data.
	require.NoError(t, store.Seed(ctx))
	categories, err = NewCategoryRepository(store.DB()).List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 6)
}

func TestWithTxCommit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := NewClientRepository(tx).Create(ctx, testClient("Durand"))
		return err
	})
	require.NoError(t, err)

	clients, err := NewClientRepository(store.DB()).List(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 1)
}

func TestWithTxRollbackOnError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := NewClientRepository(tx).Create(ctx, testClient("Durand")); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	clients, err := NewClientRepository(store.DB()).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)
}
