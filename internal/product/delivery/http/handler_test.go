package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	alog "github.com/tair/inventory-tracker/internal/activitylog/domain"
	alogrepo "github.com/tair/inventory-tracker/internal/activitylog/repository"
	alogusecase "github.com/tair/inventory-tracker/internal/activitylog/usecase"
	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/internal/product/repository"
	"github.com/tair/inventory-tracker/internal/product/usecase/command"
	"github.com/tair/inventory-tracker/internal/product/usecase/query"
	"github.com/tair/inventory-tracker/internal/testutil"
	"github.com/tair/inventory-tracker/pkg/metrics"
	"github.com/tair/inventory-tracker/pkg/worker"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Fields  []struct {
		Field string `json:"field"`
	} `json:"fields"`
}

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	db := testutil.OpenDB(t, &domain.Product{}, &alog.ActivityLog{})
	repo := repository.NewGormProductRepository(db)

	pool := worker.NewPool(1, 16, nil)
	pool.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = pool.Shutdown(ctx)
	})

	deps := command.Dependencies{
		Repo:     repo,
		Recorder: alogusecase.NewRecorder(alogrepo.NewGormActivityLogRepository(db)),
	}
	reconciler := query.NewReconciler(repo, pool, nil)

	h := NewProductHandler(
		&CommandHandlers{
			Create:  command.NewCreateProductHandler(deps),
			Update:  command.NewUpdateProductHandler(deps),
			Delete:  command.NewDeleteProductHandler(deps),
			Restock: command.NewRestockProductHandler(deps),
		},
		&QueryHandlers{
			List:     query.NewListProductsHandler(repo, reconciler),
			Get:      query.NewGetProductHandler(repo, reconciler),
			Search:   query.NewSearchProductsHandler(repo, reconciler),
			LowStock: query.NewLowStockHandler(repo, reconciler),
		},
		metrics.NewHTTP(prometheus.NewRegistry()),
	)

	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router
}

func do(t *testing.T, router http.Handler, method, path string, body interface{}) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func create(t *testing.T, router http.Handler, sku string, quantity int) domain.Product {
	t.Helper()
	code, env := do(t, router, http.MethodPost, "/api/products", map[string]interface{}{
		"name":        "Item " + sku,
		"sku":         sku,
		"description": "test item",
		"category":    "Electronics",
		"price":       10.5,
		"quantity":    quantity,
		"status":      "IN_STOCK",
	})
	require.Equal(t, http.StatusCreated, code, env.Error)
	var p domain.Product
	require.NoError(t, json.Unmarshal(env.Data, &p))
	return p
}

func TestProductLifecycle(t *testing.T) {
	router := newRouter(t)

	p := create(t, router, "kb001", 0)
	assert.Equal(t, domain.StatusOutOfStock, p.Status, "client status is ignored")
	assert.Equal(t, "KB001", p.SKU)

	code, env := do(t, router, http.MethodGet, "/api/products/"+p.ID, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	code, env = do(t, router, http.MethodPatch, "/api/products/"+p.ID+"/restock", map[string]int{"quantity": 30})
	require.Equal(t, http.StatusOK, code, env.Error)
	var restocked domain.Product
	require.NoError(t, json.Unmarshal(env.Data, &restocked))
	assert.Equal(t, 30, restocked.Quantity)
	assert.Equal(t, domain.StatusInStock, restocked.Status)

	code, env = do(t, router, http.MethodPut, "/api/products/"+p.ID, map[string]int{"quantity": 4})
	require.Equal(t, http.StatusOK, code, env.Error)
	var updated domain.Product
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, domain.StatusLowStock, updated.Status)

	code, _ = do(t, router, http.MethodDelete, "/api/products/"+p.ID, nil)
	assert.Equal(t, http.StatusOK, code)

	code, env = do(t, router, http.MethodGet, "/api/products/"+p.ID, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
}

func TestCreateErrors(t *testing.T) {
	router := newRouter(t)
	create(t, router, "WM001", 5)

	code, env := do(t, router, http.MethodPost, "/api/products", map[string]interface{}{
		"name": "Dup", "sku": "wm001", "description": "d", "category": "c",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Error, "already exists")

	code, env = do(t, router, http.MethodPost, "/api/products", map[string]interface{}{"price": -1})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, env.Fields)

	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLowStockAndSearchRoutes(t *testing.T) {
	router := newRouter(t)
	for i, q := range []int{5, 20, 0, 10} {
		create(t, router, "SKU"+string(rune('A'+i)), q)
	}

	code, env := do(t, router, http.MethodGet, "/api/products/low-stock", nil)
	require.Equal(t, http.StatusOK, code)
	var low []domain.Product
	require.NoError(t, json.Unmarshal(env.Data, &low))
	require.Len(t, low, 3)
	assert.Equal(t, []int{0, 5, 10}, []int{low[0].Quantity, low[1].Quantity, low[2].Quantity})
	assert.Equal(t, 3, *env.Count)

	code, env = do(t, router, http.MethodGet, "/api/products/search/skub", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, *env.Count)

	code, env = do(t, router, http.MethodGet, "/api/products?status=OUT_OF_STOCK", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, *env.Count)

	code, _ = do(t, router, http.MethodGet, "/api/products?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDeleteMissingProduct(t *testing.T) {
	router := newRouter(t)
	code, env := do(t, router, http.MethodDelete, "/api/products/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
}
