package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	alog "github.com/tair/inventory-tracker/internal/activitylog/domain"
	cdomain "github.com/tair/inventory-tracker/internal/category/domain"
	pdomain "github.com/tair/inventory-tracker/internal/product/domain"
	pcommand "github.com/tair/inventory-tracker/internal/product/usecase/command"
	"github.com/tair/inventory-tracker/internal/report/cache"
	"github.com/tair/inventory-tracker/internal/testutil"
	"github.com/tair/inventory-tracker/pkg/metrics"
	"github.com/tair/inventory-tracker/pkg/worker"
)

// newSaturated wires the service around a pool that drops every background task
func newSaturated(t *testing.T) (*Handlers, *mux.Router) {
	t.Helper()
	db := testutil.OpenDB(t, &pdomain.Product{}, &cdomain.Category{}, &alog.ActivityLog{})

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	pool := worker.NewPool(1, 0, nil)
	reg := prometheus.NewRegistry()
	handlers, err := InitializeHandlers(db, pool, nil, cache.NewRedisCache(client, time.Minute),
		metrics.NewHTTP(reg), metrics.NewInventory(reg))
	require.NoError(t, err)

	router := mux.NewRouter()
	handlers.Reports.RegisterRoutes(router)
	return handlers, router
}

func reportTotal(t *testing.T, router *mux.Router) int {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports/inventory", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data struct {
			TotalProducts int `json:"total_products"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Data.TotalProducts
}

func TestReportReflectsWritesImmediately(t *testing.T) {
	handlers, router := newSaturated(t)
	ctx := context.Background()
	create := handlers.ProductCommands.Create

	first, err := create.Handle(ctx, pcommand.CreateProductCommand{
		Name: "Wireless Mouse", SKU: "WM001", Description: "Ergonomic mouse",
		Category: "Electronics", Price: 25.99, Quantity: 40,
	})
	require.NoError(t, err)
	require.Equal(t, 1, reportTotal(t, router))

	_, err = create.Handle(ctx, pcommand.CreateProductCommand{
		Name: "USB Hub", SKU: "UH002", Description: "Four port hub",
		Category: "Electronics", Price: 19.5, Quantity: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, reportTotal(t, router), "cached report survived a committed create")

	err = handlers.ProductCommands.Delete.Handle(ctx, pcommand.DeleteProductCommand{ID: first.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, reportTotal(t, router), "cached report survived a committed delete")
}
