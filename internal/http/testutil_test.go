package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/expedibox/colis-service/internal/domain/dto"
	"github.com/expedibox/colis-service/internal/domain/model"
	"github.com/expedibox/colis-service/internal/repository"
	"github.com/expedibox/colis-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestRouter wires the full router over an in-memory store.
func setupTestRouter(t *testing.T) (*gin.Engine, *repository.Store) {
	t.Helper()

	store, err := repository.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))

	stamps := repository.NewStampRepository(store.DB())
	categories := repository.NewCategoryRepository(store.DB())

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.StampPool = service.NewStampPool(stamps, categories)
	cfg.CategoryService = service.NewCategoryService(categories, stamps)
	cfg.ParcelService = service.NewParcelService(store)
	cfg.ClientService = service.NewClientService(repository.NewClientRepository(store.DB()))
	cfg.ProductService = service.NewProductService(repository.NewProductRepository(store.DB()))
	cfg.DimensionService = service.NewDimensionService(repository.NewDimensionRepository(store.DB()))
	cfg.StatsService = service.NewStatsService(repository.NewStatsRepository(store.DB()))

	healthHandler := NewHealthHandler()
	healthHandler.RegisterChecker("database", HealthCheckerFunc(func() error {
		return store.Ping(context.Background())
	}))

	return NewRouter(healthHandler, cfg), store
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeData unmarshals the envelope and re-marshals its data field into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope dto.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func seedClient(t *testing.T, store *repository.Store, nom string) int64 {
	t.Helper()
	id, err := repository.NewClientRepository(store.DB()).Create(context.Background(), model.Client{
		Nom:   nom,
		Ville: "Lyon",
	})
	require.NoError(t, err)
	return id
}

func seedProduct(t *testing.T, store *repository.Store, nom string, stock int) int64 {
	t.Helper()
	id, err := repository.NewProductRepository(store.DB()).Create(context.Background(), model.Product{
		Nom:   nom,
		Prix:  12.00,
		Stock: stock,
	})
	require.NoError(t, err)
	return id
}

func importStamps(t *testing.T, router *gin.Engine, numeros []string, categorie string, min, max float64) {
	t.Helper()
	rec := performRequest(router, http.MethodPost, "/api/timbres/import", dto.ImportStampsRequest{
		Numeros:        numeros,
		PoidsCategorie: categorie,
		PoidsMin:       min,
		PoidsMax:       max,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}
