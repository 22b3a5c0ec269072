package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	alog "github.com/tair/inventory-tracker/internal/activitylog/domain"
	alogrepo "github.com/tair/inventory-tracker/internal/activitylog/repository"
	alogusecase "github.com/tair/inventory-tracker/internal/activitylog/usecase"
	"github.com/tair/inventory-tracker/internal/category/domain"
	"github.com/tair/inventory-tracker/internal/category/repository"
	"github.com/tair/inventory-tracker/internal/category/usecase/command"
	"github.com/tair/inventory-tracker/internal/category/usecase/query"
	"github.com/tair/inventory-tracker/internal/testutil"
	"github.com/tair/inventory-tracker/pkg/metrics"
)

type envelope struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	db := testutil.OpenDB(t, &domain.Category{}, &alog.ActivityLog{})
	repo := repository.NewGormCategoryRepository(db)
	recorder := alogusecase.NewRecorder(alogrepo.NewGormActivityLogRepository(db))

	h := NewCategoryHandler(
		command.NewCreateCategoryHandler(repo, recorder),
		command.NewUpdateCategoryHandler(repo, recorder),
		command.NewDeleteCategoryHandler(repo, recorder),
		query.NewListCategoriesHandler(repo),
		query.NewGetCategoryHandler(repo),
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
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestCategoryLifecycle(t *testing.T) {
	router := newRouter(t)

	code, env := do(t, router, http.MethodPost, "/api/categories", map[string]string{"name": "Tools"})
	require.Equal(t, http.StatusCreated, code, env.Error)
	var created domain.Category
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, domain.DefaultIcon, created.Icon)
	assert.True(t, created.IsActive)

	code, env = do(t, router, http.MethodPost, "/api/categories", map[string]string{"name": "TOOLS"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)

	code, env = do(t, router, http.MethodPut, "/api/categories/"+created.ID, map[string]string{"icon": "🔧"})
	require.Equal(t, http.StatusOK, code, env.Error)

	code, env = do(t, router, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)

	code, _ = do(t, router, http.MethodDelete, "/api/categories/"+created.ID, nil)
	require.Equal(t, http.StatusOK, code)

	code, env = do(t, router, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, *env.Count)

	code, _ = do(t, router, http.MethodDelete, "/api/categories/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreateCategoryRejectsBadBody(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewBufferString("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
