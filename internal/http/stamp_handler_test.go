package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expedibox/colis-service/internal/domain/dto"
	"github.com/expedibox/colis-service/internal/domain/model"
)

func TestStampImportEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		name           string
		body           any
		expectedStatus int
		checkResponse  func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "valid import",
			body: dto.ImportStampsRequest{
				Numeros:        []string{"1K001", "1K002"},
				PoidsCategorie: "101g - 250g",
				PoidsMin:       101,
				PoidsMax:       250,
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var result dto.ImportStampsResponse
				decodeData(t, rec, &result)
				assert.Equal(t, 2, result.Inserted)
				assert.Equal(t, 2, result.Total)
			},
		},
		{
			name: "re-import skips existing numbers",
			body: dto.ImportStampsRequest{
				Numeros:        []string{"1K002", "1K003"},
				PoidsCategorie: "101g - 250g",
				PoidsMin:       101,
				PoidsMax:       250,
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var result dto.ImportStampsResponse
				decodeData(t, rec, &result)
				assert.Equal(t, 1, result.Inserted)
				assert.Equal(t, 2, result.Total)
			},
		},
		{
			name:           "missing numbers",
			body:           dto.ImportStampsRequest{PoidsCategorie: "101g - 250g"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "inverted bounds",
			body:           map[string]any{"numeros": []string{"1K004"}, "poids_categorie": "x", "poids_min": 300, "poids_max": 100},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				resp := decodeError(t, rec)
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
			},
		},
		{
			name:           "malformed body",
			body:           "not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performRequest(router, http.MethodPost, "/api/timbres/import", tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, rec)
			}
		})
	}
}

func TestStampFindAvailableEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	importStamps(t, router, []string{"1K100"}, "101g - 250g", 101, 250)

	// 0.2kg falls inside the bracket.
	rec := performRequest(router, http.MethodGet, "/api/timbres/disponible/0.2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stamp model.Stamp
	decodeData(t, rec, &stamp)
	assert.Equal(t, "1K100", stamp.NumeroSuivi)

	// No bracket matches 5kg; data is null, not an error.
	rec = performRequest(router, http.MethodGet, "/api/timbres/disponible/5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":null`)

	// Unparseable weight.
	rec = performRequest(router, http.MethodGet, "/api/timbres/disponible/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStampLifecycleEndpoints(t *testing.T) {
	router, store := setupTestRouter(t)
	importStamps(t, router, []string{"1K200"}, "101g - 250g", 101, 250)

	clientID := seedClient(t, store, "Durand")

	// Create a parcel to bind against.
	rec := performRequest(router, http.MethodPost, "/api/colis", dto.ParcelRequest{ClientID: clientID})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created dto.ParcelMutationResponse
	decodeData(t, rec, &created)

	// The stamp id is 1, first row of an empty pool.
	rec = performRequest(router, http.MethodPut, "/api/timbres/1/utiliser", dto.BindStampRequest{ColisID: created.ID})
	require.Equal(t, http.StatusOK, rec.Code)
	var mutation dto.MutationResponse
	decodeData(t, rec, &mutation)
	assert.Equal(t, int64(1), mutation.Changes)

	// Toggle flips it back to available.
	rec = performRequest(router, http.MethodPut, "/api/timbres/1/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var toggled dto.ToggleStampResponse
	decodeData(t, rec, &toggled)
	assert.False(t, toggled.Utilise)

	rec = performRequest(router, http.MethodPut, "/api/timbres/1/liberer", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(router, http.MethodDelete, "/api/timbres/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Gone now.
	rec = performRequest(router, http.MethodPut, "/api/timbres/1/liberer", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
}

func TestStampListGroupedEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := performRequest(router, http.MethodPost, "/api/timbre-categories", dto.WeightCategoryRequest{
		Nom:      "101g - 250g",
		PoidsMin: 101,
		PoidsMax: 250,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	importStamps(t, router, []string{"1K300", "1K301"}, "101g - 250g", 101, 250)

	rec = performRequest(router, http.MethodGet, "/api/timbres", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var groups []model.StampGroup
	decodeData(t, rec, &groups)
	require.Len(t, groups, 1)
	assert.Equal(t, "101g - 250g", groups[0].Nom)
	assert.Len(t, groups[0].Disponibles, 2)
	assert.Empty(t, groups[0].Utilises)
}

func TestStampDeleteAvailableByCategoryEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	importStamps(t, router, []string{"1K400", "1K401"}, "101g - 250g", 101, 250)

	rec := performRequest(router, http.MethodDelete, "/api/timbres/categorie/101g%20-%20250g", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var mutation dto.MutationResponse
	decodeData(t, rec, &mutation)
	assert.Equal(t, int64(2), mutation.Changes)
}
