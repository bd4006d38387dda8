package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newParcelID creates the client and parcel rows a stamp bind needs to
// satisfy the colis foreign key.
func newParcelID(t *testing.T, store *Store, numero string) int64 {
	t.Helper()
	clientID := createClient(t, store, "Timbre "+numero)
	return createParcel(t, store, clientID, numero)
}

func insertStamp(t *testing.T, store *Store, numero, categorie string, min, max float64) {
	t.Helper()
	inserted, err := NewStampRepository(store.DB()).Insert(context.Background(), numero, categorie, min, max)
	require.NoError(t, err)
	require.True(t, inserted)
}

func TestFindAvailableForWeight(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := NewStampRepository(store.DB())

	insertStamp(t, store, "3SW000000100", "251g - 500g", 251, 500)
	insertStamp(t, store, "3SW000000101", "101g - 250g", 101, 250)
	insertStamp(t, store, "3SW000000102", "501g - 1kg", 501, 1000)

	tests := []struct {
		name       string
		grams      float64
		wantNumero string
		wantNil    bool
	}{
		{name: "inside a bracket", grams: 150, wantNumero: "3SW000000101"},
		{name: "lower bound inclusive", grams: 251, wantNumero: "3SW000000100"},
		{name: "upper bound inclusive", grams: 250, wantNumero: "3SW000000101"},
		{name: "heavier than every bracket", grams: 3000, wantNil: true},
		{name: "lighter than every bracket", grams: 50, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := repo.FindAvailableForWeight(ctx, tt.grams)
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, s)
				return
			}
			require.NotNil(t, s)
			assert.Equal(t, tt.wantNumero, s.NumeroSuivi)
		})
	}
}

func TestFindAvailableForWeightPrefersSmallestBracket(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := NewStampRepository(store.DB())

	// 300g sits inside both brackets; the smaller floor wins.
	insertStamp(t, store, "3SW000000200", "Jusqu'a 1kg", 0, 1000)
	insertStamp(t, store, "3SW000000201", "251g - 500g", 251, 500)

	s, err := repo.FindAvailableForWeight(ctx, 300)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "3SW000000200", s.NumeroSuivi)
	assert.Equal(t, float64(0), s.PoidsMin)
}

func TestFindAvailableForWeightSkipsUsedStamps(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := NewStampRepository(store.DB())

	insertStamp(t, store, "3SW000000300", "101g - 250g", 101, 250)
	insertStamp(t, store, "3SW000000301", "101g - 250g", 101, 250)
	parcelID := newParcelID(t, store, "COL-P300")

	first, err := repo.FindAvailableForWeight(ctx, 150)
	require.NoError(t, err)
	require.NotNil(t, first)

	_, err = repo.Bind(ctx, first.ID, parcelID)
	require.NoError(t, err)

	second, err := repo.FindAvailableForWeight(ctx, 150)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)

	_, err = repo.Bind(ctx, second.ID, parcelID)
	require.NoError(t, err)

	none, err := repo.FindAvailableForWeight(ctx, 150)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestInsertIgnoresDuplicateTracking(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := NewStampRepository(store.DB())

	inserted, err := repo.Insert(ctx, "3SW000000400", "101g - 250g", 101, 250)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Insert(ctx, "3SW000000400", "101g - 250g", 101, 250)
	require.NoError(t, err)
	assert.False(t, inserted)

	stamps, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stamps, 1)
}

func TestBindAndRelease(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := NewStampRepository(store.DB())

	insertStamp(t, store, "3SW000000500", "101g - 250g", 101, 250)
	parcelID := newParcelID(t, store, "COL-P500")
	s, err := repo.FindAvailableForWeight(ctx, 150)
	require.NoError(t, err)
	require.NotNil(t, s)

	n, err := repo.Bind(ctx, s.ID, parcelID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	bound, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, bound.Utilise)
	require.NotNil(t, bound.ColisID)
	assert.Equal(t, parcelID, *bound.ColisID)

	n, err = repo.Release(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	released, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, released.Utilise)
	assert.Nil(t, released.ColisID)
}

func TestReleaseByParcel(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := NewStampRepository(store.DB())

	insertStamp(t, store, "3SW000000600", "101g - 250g", 101, 250)
	insertStamp(t, store, "3SW000000601", "251g - 500g", 251, 500)
	insertStamp(t, store, "3SW000000602", "501g - 1kg", 501, 1000)
	deleted := newParcelID(t, store, "COL-P600")
	kept := newParcelID(t, store, "COL-P601")

	stamps, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, stamps, 3)

	_, err = repo.Bind(ctx, stamps[0].ID, deleted)
	require.NoError(t, err)
	_, err = repo.Bind(ctx, stamps[1].ID, deleted)
	require.NoError(t, err)
	_, err = repo.Bind(ctx, stamps[2].ID, kept)
	require.NoError(t, err)

	n, err := repo.ReleaseByParcel(ctx, deleted)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	other, err := repo.GetByID(ctx, stamps[2].ID)
	require.NoError(t, err)
	assert.True(t, other.Utilise)
}

func TestDeleteAvailableByCategoryKeepsUsedStamps(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := NewStampRepository(store.DB())

	insertStamp(t, store, "3SW000000700", "101g - 250g", 101, 250)
	insertStamp(t, store, "3SW000000701", "101g - 250g", 101, 250)
	insertStamp(t, store, "3SW000000702", "251g - 500g", 251, 500)

	parcelID := newParcelID(t, store, "COL-P700")
	stamps, err := repo.List(ctx)
	require.NoError(t, err)
	_, err = repo.Bind(ctx, stamps[0].ID, parcelID)
	require.NoError(t, err)

	n, err := repo.DeleteAvailableByCategory(ctx, "101g - 250g")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)

	count, err := repo.CountByCategoryName(ctx, "101g - 250g")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetByIDNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := NewStampRepository(store.DB()).GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
