package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expedibox/colis-service/internal/domain/dto"
	"github.com/expedibox/colis-service/internal/domain/model"
)

func TestCategoryEndpoints(t *testing.T) {
	router, _ := setupTestRouter(t)

	// Create
	rec := performRequest(router, http.MethodPost, "/api/timbre-categories", dto.WeightCategoryRequest{
		Nom:      "101g - 250g",
		PoidsMin: 101,
		PoidsMax: 250,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created model.WeightCategory
	decodeData(t, rec, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, model.CategoryTypeNational, created.Type)

	// List
	rec = performRequest(router, http.MethodGet, "/api/timbre-categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var categories []model.WeightCategory
	decodeData(t, rec, &categories)
	require.Len(t, categories, 1)

	// Update
	rec = performRequest(router, http.MethodPut, fmt.Sprintf("/api/timbre-categories/%d", created.ID), dto.WeightCategoryRequest{
		Nom:      "101g - 300g",
		PoidsMin: 101,
		PoidsMax: 300,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Delete
	rec = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/timbre-categories/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCategoryCreateEndpointValidation(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := performRequest(router, http.MethodPost, "/api/timbre-categories", dto.WeightCategoryRequest{
		Nom:      "Invalide",
		PoidsMin: 300,
		PoidsMax: 100,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Contains(t, resp.Message, "poids_min")
}

func TestCategoryDeleteEndpointConflict(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := performRequest(router, http.MethodPost, "/api/timbre-categories", dto.WeightCategoryRequest{
		Nom:      "101g - 250g",
		PoidsMin: 101,
		PoidsMax: 250,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created model.WeightCategory
	decodeData(t, rec, &created)

	importStamps(t, router, []string{"1K500"}, "101g - 250g", 101, 250)

	rec = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/timbre-categories/%d", created.ID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, dto.ErrCodeCategoryInUse, resp.Error)

	// Purge the pool, then the category can go.
	rec = performRequest(router, http.MethodDelete, "/api/timbres/categorie/101g%20-%20250g", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/timbre-categories/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCategoryNotFoundEndpoints(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := performRequest(router, http.MethodPut, "/api/timbre-categories/404", dto.WeightCategoryRequest{
		Nom:      "x",
		PoidsMax: 10,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = performRequest(router, http.MethodDelete, "/api/timbre-categories/404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
