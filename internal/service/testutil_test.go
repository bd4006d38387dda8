package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/expedibox/colis-service/internal/domain/model"
	"github.com/expedibox/colis-service/internal/repository"
)

// newTestStore opens an in-memory store with the schema applied.
func newTestStore(t *testing.T) *repository.Store {
	t.Helper()

	store, err := repository.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func addClient(t *testing.T, store *repository.Store, nom string) int64 {
	t.Helper()
	id, err := repository.NewClientRepository(store.DB()).Create(context.Background(), model.Client{
		Nom:   nom,
		Ville: "Lyon",
	})
	require.NoError(t, err)
	return id
}

func addProduct(t *testing.T, store *repository.Store, nom string, stock int) int64 {
	t.Helper()
	id, err := repository.NewProductRepository(store.DB()).Create(context.Background(), model.Product{
		Nom:   nom,
		Prix:  14.50,
		Stock: stock,
	})
	require.NoError(t, err)
	return id
}

func addParcel(t *testing.T, store *repository.Store, numero string) int64 {
	t.Helper()
	clientID := addClient(t, store, "Client "+numero)
	id, err := repository.NewParcelRepository(store.DB()).Insert(context.Background(), model.Parcel{
		NumeroSuivi: numero,
		ClientID:    clientID,
		Statut:      model.StatusEnPreparation,
	})
	require.NoError(t, err)
	return id
}

func addStamp(t *testing.T, store *repository.Store, numero, categorie string, min, max float64) int64 {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewStampRepository(store.DB())

	inserted, err := repo.Insert(ctx, numero, categorie, min, max)
	require.NoError(t, err)
	require.True(t, inserted)

	stamps, err := repo.List(ctx)
	require.NoError(t, err)
	for _, s := range stamps {
		if s.NumeroSuivi == numero {
			return s.ID
		}
	}
	t.Fatalf("stamp %s not found after insert", numero)
	return 0
}

func addCategory(t *testing.T, store *repository.Store, nom, typ string, min, max float64) int64 {
	t.Helper()
	id, err := repository.NewCategoryRepository(store.DB()).Create(context.Background(), model.WeightCategory{
		Nom:      nom,
		Type:     typ,
		PoidsMin: min,
		PoidsMax: max,
	})
	require.NoError(t, err)
	return id
}

func productStock(t *testing.T, store *repository.Store, id int64) int {
	t.Helper()
	_, stock, err := repository.NewProductRepository(store.DB()).NameAndStock(context.Background(), id)
	require.NoError(t, err)
	return stock
}

func stampByID(t *testing.T, store *repository.Store, id int64) *model.Stamp {
	t.Helper()
	s, err := repository.NewStampRepository(store.DB()).GetByID(context.Background(), id)
	require.NoError(t, err)
	return s
}
