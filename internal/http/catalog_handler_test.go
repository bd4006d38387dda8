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

func TestClientEndpoints(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := performRequest(router, http.MethodPost, "/api/clients", dto.ClientRequest{
		Nom:        "Durand",
		Prenom:     "Marie",
		Ville:      "Lyon",
		CodePostal: "69003",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]int64
	decodeData(t, rec, &created)
	id := created["id"]
	require.NotZero(t, id)

	rec = performRequest(router, http.MethodGet, fmt.Sprintf("/api/clients/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var client model.Client
	decodeData(t, rec, &client)
	assert.Equal(t, "Durand", client.Nom)
	assert.Equal(t, "France", client.Pays)

	rec = performRequest(router, http.MethodPut, fmt.Sprintf("/api/clients/%d", id), dto.ClientRequest{
		Nom:   "Durand",
		Ville: "Paris",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(router, http.MethodGet, "/api/clients", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var clients []model.Client
	decodeData(t, rec, &clients)
	require.Len(t, clients, 1)
	assert.Equal(t, "Paris", clients[0].Ville)

	rec = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/clients/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(router, http.MethodGet, fmt.Sprintf("/api/clients/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClientCreateEndpointValidation(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := performRequest(router, http.MethodPost, "/api/clients", map[string]string{"prenom": "Marie"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductEndpoints(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := performRequest(router, http.MethodPost, "/api/produits", dto.ProductRequest{
		Nom:   "Mug",
		Ref:   "MUG-01",
		Prix:  14.50,
		Stock: 25,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]int64
	decodeData(t, rec, &created)
	id := created["id"]
	require.NotZero(t, id)

	rec = performRequest(router, http.MethodGet, fmt.Sprintf("/api/produits/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var product model.Product
	decodeData(t, rec, &product)
	assert.Equal(t, "MUG-01", product.Ref)
	assert.Equal(t, 25, product.Stock)

	rec = performRequest(router, http.MethodPut, fmt.Sprintf("/api/produits/%d", id), dto.ProductRequest{
		Nom:   "Mug",
		Ref:   "MUG-01",
		Stock: 30,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/produits/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(router, http.MethodGet, "/api/produits", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []model.Product
	decodeData(t, rec, &products)
	assert.Empty(t, products)
}

func TestDimensionEndpoints(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := performRequest(router, http.MethodPost, "/api/dimensions", dto.DimensionRequest{
		Nom:      "Petit",
		Longueur: 20,
		Largeur:  15,
		Hauteur:  10,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]int64
	decodeData(t, rec, &created)
	id := created["id"]
	require.NotZero(t, id)

	rec = performRequest(router, http.MethodGet, "/api/dimensions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dimensions []model.CartonDimension
	decodeData(t, rec, &dimensions)
	require.Len(t, dimensions, 1)
	assert.Equal(t, "Petit", dimensions[0].Nom)

	rec = performRequest(router, http.MethodPut, fmt.Sprintf("/api/dimensions/%d", id), dto.DimensionRequest{
		Nom:      "Petit",
		Longueur: 22,
		Largeur:  16,
		Hauteur:  11,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/dimensions/%d", id), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatsEndpoint(t *testing.T) {
	router, store := setupTestRouter(t)
	clientID := seedClient(t, store, "Durand")
	seedProduct(t, store, "Mug", 10)

	rec := performRequest(router, http.MethodPost, "/api/colis", dto.ParcelRequest{ClientID: clientID})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = performRequest(router, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats model.Stats
	decodeData(t, rec, &stats)
	assert.Equal(t, 1, stats.Clients)
	assert.Equal(t, 1, stats.Produits)
	assert.Equal(t, 1, stats.Colis)
	assert.Equal(t, 1, stats.ColisEnPreparation)
}
