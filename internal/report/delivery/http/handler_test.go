package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pdomain "github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/internal/product/repository"
	"github.com/tair/inventory-tracker/internal/product/usecase/query"
	"github.com/tair/inventory-tracker/internal/report/domain"
	"github.com/tair/inventory-tracker/internal/report/usecase"
	"github.com/tair/inventory-tracker/internal/testutil"
	"github.com/tair/inventory-tracker/pkg/metrics"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	db := testutil.OpenDB(t, &pdomain.Product{})
	require.NoError(t, db.Create(&pdomain.Product{
		Name: "Chair", SKU: "CH001", Category: "Furniture", Price: 49.99, Quantity: 3, ReorderLevel: 5,
		Status: pdomain.StatusLowStock,
	}).Error)

	repo := repository.NewGormProductRepository(db)
	reconciler := query.NewReconciler(repo, nil, nil)
	h := NewReportHandler(
		usecase.NewGenerateReportHandler(repo, reconciler, nil, nil),
		metrics.NewHTTP(prometheus.NewRegistry()),
	)

	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestInventoryReportJSON(t *testing.T) {
	rec := get(newRouter(t), "/api/reports/inventory")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                   `json:"success"`
		Data    domain.InventoryReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 1, body.Data.TotalProducts)
	assert.Equal(t, "149.97", body.Data.TotalValue)
	assert.Equal(t, 1, body.Data.LowStockItems)
	assert.Equal(t, 0, body.Data.OutOfStockItems)
}

func TestInventoryReportCSVDownload(t *testing.T) {
	rec := get(newRouter(t), "/api/reports/inventory?format=csv")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Inventory Report"))
	assert.Contains(t, rec.Body.String(), "Chair,CH001,Furniture,49.99,3,5,Low Stock,149.97")
}

func TestInventoryReportRejectsUnknownFormat(t *testing.T) {
	rec := get(newRouter(t), "/api/reports/inventory?format=docx")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"format"`)
}
