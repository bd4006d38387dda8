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

func TestParcelCreateEndpoint(t *testing.T) {
	router, store := setupTestRouter(t)
	clientID := seedClient(t, store, "Durand")
	productID := seedProduct(t, store, "Mug", 2)

	rec := performRequest(router, http.MethodPost, "/api/colis", dto.ParcelRequest{
		ClientID: clientID,
		Poids:    0.25,
		Produits: []dto.ProductLineRequest{
			{ProduitID: productID, Quantite: 5},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var result dto.ParcelMutationResponse
	decodeData(t, rec, &result)
	assert.NotZero(t, result.ID)
	assert.NotEmpty(t, result.NumeroSuivi)
	assert.NotEmpty(t, result.Message)
	require.Len(t, result.ProduitsNegatifs, 1)
	assert.Equal(t, "Mug", result.ProduitsNegatifs[0].Nom)
	assert.Equal(t, -3, result.ProduitsNegatifs[0].Stock)
}

func TestParcelCreateEndpointValidation(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := performRequest(router, http.MethodPost, "/api/colis", dto.ParcelRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
	assert.Contains(t, resp.Message, "client_id")
}

func TestParcelCreateEndpointDuplicateTracking(t *testing.T) {
	router, store := setupTestRouter(t)
	clientID := seedClient(t, store, "Durand")

	body := dto.ParcelRequest{ClientID: clientID, NumeroSuivi: "COLDUP"}
	rec := performRequest(router, http.MethodPost, "/api/colis", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = performRequest(router, http.MethodPost, "/api/colis", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestParcelGetAndListEndpoints(t *testing.T) {
	router, store := setupTestRouter(t)
	clientID := seedClient(t, store, "Durand")

	rec := performRequest(router, http.MethodPost, "/api/colis", dto.ParcelRequest{
		ClientID:    clientID,
		NumeroSuivi: "COL42",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created dto.ParcelMutationResponse
	decodeData(t, rec, &created)

	rec = performRequest(router, http.MethodGet, fmt.Sprintf("/api/colis/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var parcel model.Parcel
	decodeData(t, rec, &parcel)
	assert.Equal(t, "COL42", parcel.NumeroSuivi)
	assert.Equal(t, "Durand", parcel.ClientNom)

	rec = performRequest(router, http.MethodGet, "/api/colis", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var parcels []model.Parcel
	decodeData(t, rec, &parcels)
	assert.Len(t, parcels, 1)

	rec = performRequest(router, http.MethodGet, "/api/colis/404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = performRequest(router, http.MethodGet, "/api/colis/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParcelUpdateEndpoint(t *testing.T) {
	router, store := setupTestRouter(t)
	clientID := seedClient(t, store, "Durand")
	productID := seedProduct(t, store, "Mug", 10)

	rec := performRequest(router, http.MethodPost, "/api/colis", dto.ParcelRequest{
		ClientID:    clientID,
		NumeroSuivi: "COL50",
		Produits: []dto.ProductLineRequest{
			{ProduitID: productID, Quantite: 2},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created dto.ParcelMutationResponse
	decodeData(t, rec, &created)

	rec = performRequest(router, http.MethodPut, fmt.Sprintf("/api/colis/%d", created.ID), dto.ParcelRequest{
		ClientID:    clientID,
		NumeroSuivi: "COL50",
		Statut:      model.StatusExpedie,
		Produits: []dto.ProductLineRequest{
			{ProduitID: productID, Quantite: 3},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(router, http.MethodGet, fmt.Sprintf("/api/colis/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var parcel model.Parcel
	decodeData(t, rec, &parcel)
	assert.Equal(t, model.StatusExpedie, parcel.Statut)
	require.Len(t, parcel.Produits, 1)
	assert.Equal(t, 3, parcel.Produits[0].Quantite)

	rec = performRequest(router, http.MethodPut, "/api/colis/404", dto.ParcelRequest{
		ClientID:    clientID,
		NumeroSuivi: "COL404",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestParcelDeleteEndpoint(t *testing.T) {
	router, store := setupTestRouter(t)
	clientID := seedClient(t, store, "Durand")

	rec := performRequest(router, http.MethodPost, "/api/colis", dto.ParcelRequest{
		ClientID:    clientID,
		NumeroSuivi: "COL60",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created dto.ParcelMutationResponse
	decodeData(t, rec, &created)

	rec = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/colis/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var mutation dto.MutationResponse
	decodeData(t, rec, &mutation)
	assert.Equal(t, int64(1), mutation.Changes)

	rec = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/colis/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestParcelCheckDuplicateLinkEndpoint(t *testing.T) {
	router, store := setupTestRouter(t)
	clientID := seedClient(t, store, "Durand")
	productID := seedProduct(t, store, "Mug", 10)

	rec := performRequest(router, http.MethodPost, "/api/colis", dto.ParcelRequest{
		ClientID: clientID,
		Produits: []dto.ProductLineRequest{
			{ProduitID: productID, Quantite: 1, Lien: "https://www.vinted.fr/items/123-mug"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created dto.ParcelMutationResponse
	decodeData(t, rec, &created)

	rec = performRequest(router, http.MethodPost, "/api/colis/check-duplicate-link", dto.CheckDuplicateLinkRequest{
		Lien: "vinted.fr/items/123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var result dto.DuplicateLinkResponse
	decodeData(t, rec, &result)
	assert.True(t, result.Duplicate)
	require.Len(t, result.Colis, 1)
	assert.Equal(t, created.ID, result.Colis[0].ID)

	// The parcel being edited is excluded from the search.
	rec = performRequest(router, http.MethodPost, "/api/colis/check-duplicate-link", dto.CheckDuplicateLinkRequest{
		Lien:           "vinted.fr/items/123",
		ExcludeColisID: created.ID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &result)
	assert.False(t, result.Duplicate)

	// A link is mandatory.
	rec = performRequest(router, http.MethodPost, "/api/colis/check-duplicate-link", dto.CheckDuplicateLinkRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
