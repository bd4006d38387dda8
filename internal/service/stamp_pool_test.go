package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expedibox/colis-service/internal/domain/dto"
	"github.com/expedibox/colis-service/internal/domain/model"
	"github.com/expedibox/colis-service/internal/repository"
)

func newStampPool(store *repository.Store) *StampPoolImpl {
	return NewStampPool(
		repository.NewStampRepository(store.DB()),
		repository.NewCategoryRepository(store.DB()),
	)
}

func TestStampPoolFindAvailableConvertsKilosToGrams(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	pool := newStampPool(store)

	addStamp(t, store, "3SW000001000", "101g - 250g", 101, 250)

	// 0.15kg is 150g, inside the bracket.
	s, err := pool.FindAvailableForWeight(ctx, 0.15)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "3SW000001000", s.NumeroSuivi)
	bracket := model.WeightCategory{Nom: s.PoidsCategorie, PoidsMin: s.PoidsMin, PoidsMax: s.PoidsMax}
	assert.True(t, bracket.Contains(150))

	// 0.05kg is 50g, below the bracket floor.
	s, err = pool.FindAvailableForWeight(ctx, 0.05)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestStampPoolImportBulk(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	pool := newStampPool(store)

	inserted, total, err := pool.ImportBulk(ctx, dto.ImportStampsRequest{
		Numeros:        []string{"1K001", "1K002", "1K003"},
		PoidsCategorie: "501g - 1kg",
		PoidsMin:       501,
		PoidsMax:       1000,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)
	assert.Equal(t, 3, total)

	// Re-importing an overlapping batch only adds the new number.
	inserted, total, err = pool.ImportBulk(ctx, dto.ImportStampsRequest{
		Numeros:        []string{"1K002", "1K004"},
		PoidsCategorie: "501g - 1kg",
		PoidsMin:       501,
		PoidsMax:       1000,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
	assert.Equal(t, 2, total)
}

func TestStampPoolImportBulkResolvesBracketFromRegistry(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	pool := newStampPool(store)

	addCategory(t, store, "251g - 500g", model.CategoryTypeNational, 251, 500)

	_, _, err := pool.ImportBulk(ctx, dto.ImportStampsRequest{
		Numeros:        []string{"1K100"},
		PoidsCategorie: "251g - 500g",
	})
	require.NoError(t, err)

	s, err := pool.FindAvailableForWeight(ctx, 0.3)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, float64(251), s.PoidsMin)
	assert.Equal(t, float64(500), s.PoidsMax)
}

func TestStampPoolImportBulkUnknownCategory(t *testing.T) {
	store := newTestStore(t)
	pool := newStampPool(store)

	_, _, err := pool.ImportBulk(context.Background(), dto.ImportStampsRequest{
		Numeros:        []string{"1K200"},
		PoidsCategorie: "Inconnue",
	})
	var vErr *dto.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "poids_categorie", vErr.Field)
}

func TestStampPoolImportBulkValidation(t *testing.T) {
	store := newTestStore(t)
	pool := newStampPool(store)
	ctx := context.Background()

	_, _, err := pool.ImportBulk(ctx, dto.ImportStampsRequest{PoidsCategorie: "x"})
	assert.ErrorIs(t, err, dto.ErrMissingNumeros)

	_, _, err = pool.ImportBulk(ctx, dto.ImportStampsRequest{Numeros: []string{"1K300"}})
	assert.ErrorIs(t, err, dto.ErrMissingCategorie)

	_, _, err = pool.ImportBulk(ctx, dto.ImportStampsRequest{
		Numeros: []string{"1K300"}, PoidsCategorie: "x", PoidsMin: 100, PoidsMax: 50,
	})
	assert.ErrorIs(t, err, dto.ErrInvalidBounds)
}

func TestStampPoolToggleClearsParcelReference(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	pool := newStampPool(store)

	id := addStamp(t, store, "3SW000001100", "101g - 250g", 101, 250)
	parcelID := addParcel(t, store, "COL-T1100")
	_, err := pool.Bind(ctx, id, parcelID)
	require.NoError(t, err)

	utilise, changes, err := pool.Toggle(ctx, id)
	require.NoError(t, err)
	assert.False(t, utilise)
	assert.Equal(t, int64(1), changes)

	s := stampByID(t, store, id)
	assert.False(t, s.Utilise)
	assert.Nil(t, s.ColisID)

	utilise, _, err = pool.Toggle(ctx, id)
	require.NoError(t, err)
	assert.True(t, utilise)
}

func TestStampPoolToggleNotFound(t *testing.T) {
	store := newTestStore(t)
	_, _, err := newStampPool(store).Toggle(context.Background(), 404)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStampPoolDeleteAvailableInCategory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	pool := newStampPool(store)

	addStamp(t, store, "3SW000001200", "101g - 250g", 101, 250)
	used := addStamp(t, store, "3SW000001201", "101g - 250g", 101, 250)
	parcelID := addParcel(t, store, "COL-T1201")
	_, err := pool.Bind(ctx, used, parcelID)
	require.NoError(t, err)

	n, err := pool.DeleteAvailableInCategory(ctx, "101g - 250g")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	s := stampByID(t, store, used)
	assert.True(t, s.Utilise)
}

func TestStampPoolListGrouped(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	pool := newStampPool(store)

	addCategory(t, store, "Moins de 20g", model.CategoryTypeNational, 0, 20)
	addCategory(t, store, "101g - 250g", model.CategoryTypeNational, 101, 250)

	addStamp(t, store, "3SW000001300", "101g - 250g", 101, 250)
	used := addStamp(t, store, "3SW000001301", "101g - 250g", 101, 250)
	parcelID := addParcel(t, store, "COL-T1301")
	_, err := pool.Bind(ctx, used, parcelID)
	require.NoError(t, err)

	// A category known only to stamp rows shows up as orphan.
	addStamp(t, store, "3SW000001302", "Ancienne", 2001, 5000)

	groups, err := pool.ListGrouped(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	byName := make(map[string]model.StampGroup, len(groups))
	for _, g := range groups {
		byName[g.Nom] = g
	}

	empty := byName["Moins de 20g"]
	assert.False(t, empty.Orphan)
	assert.Empty(t, empty.Disponibles)
	assert.Empty(t, empty.Utilises)

	mid := byName["101g - 250g"]
	require.Len(t, mid.Disponibles, 1)
	require.Len(t, mid.Utilises, 1)
	assert.Equal(t, "3SW000001300", mid.Disponibles[0].NumeroSuivi)
	assert.Equal(t, "3SW000001301", mid.Utilises[0].NumeroSuivi)

	orphan := byName["Ancienne"]
	assert.True(t, orphan.Orphan)
	assert.Equal(t, model.CategoryTypeOther, orphan.Type)
	assert.Equal(t, float64(2001), orphan.PoidsMin)
	require.Len(t, orphan.Disponibles, 1)
}

func TestStampPoolNilRepository(t *testing.T) {
	pool := NewStampPool(nil, nil)
	_, err := pool.FindAvailableForWeight(context.Background(), 0.2)
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}
