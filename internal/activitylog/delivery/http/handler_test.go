package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-tracker/internal/activitylog/domain"
	"github.com/tair/inventory-tracker/internal/activitylog/repository"
	"github.com/tair/inventory-tracker/internal/activitylog/usecase/query"
	"github.com/tair/inventory-tracker/internal/testutil"
)

type envelope struct {
	Count *int                 `json:"count"`
	Data  []domain.ActivityLog `json:"data"`
	Error string               `json:"error"`
}

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	db := testutil.OpenDB(t, &domain.ActivityLog{})
	repo := repository.NewGormActivityLogRepository(db)

	for _, entry := range []*domain.ActivityLog{
		{Action: domain.ActionCreate, EntityType: domain.EntityProduct, EntityID: "p1", EntityName: "Chair", User: "Admin"},
		{Action: domain.ActionRestock, EntityType: domain.EntityProduct, EntityID: "p1", EntityName: "Chair", User: "Admin"},
		{Action: domain.ActionCreate, EntityType: domain.EntityCategory, EntityID: "c1", EntityName: "Furniture", User: "Admin"},
	} {
		require.NoError(t, repo.Append(context.Background(), entry))
	}

	// metrics are optional for the handler
	h := NewActivityLogHandler(query.NewListActivityLogsHandler(repo), query.NewEntityHistoryHandler(repo), nil)
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router
}

func get(t *testing.T, router http.Handler, path string) (int, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestListActivityLogs(t *testing.T) {
	router := newRouter(t)

	code, env := get(t, router, "/api/activity-logs")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3, *env.Count)

	code, env = get(t, router, "/api/activity-logs?entityType=CATEGORY")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, env.Data, 1)
	assert.Equal(t, "Furniture", env.Data[0].EntityName)

	code, env = get(t, router, "/api/activity-logs?limit=1")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, env.Data, 1)
}

func TestListActivityLogsRejectsBadInput(t *testing.T) {
	router := newRouter(t)

	code, _ := get(t, router, "/api/activity-logs?limit=abc")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = get(t, router, "/api/activity-logs?entityType=ORDER")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestEntityHistory(t *testing.T) {
	code, env := get(t, newRouter(t), "/api/activity-logs/entity/p1")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, env.Data, 2)
	for _, e := range env.Data {
		assert.Equal(t, "p1", e.EntityID)
	}
}
