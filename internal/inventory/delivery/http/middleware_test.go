package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-tracker/pkg/auth"
)

type echoActor struct{}

func (echoActor) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/whoami", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(auth.ActorFromContext(r.Context())))
	}).Methods("GET")
	router.HandleFunc("/api/panic", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}).Methods("GET")
}

func newTestRouter(t *testing.T, tokens *auth.TokenValidator, database Pinger) http.Handler {
	t.Helper()
	cfg := DefaultMiddlewareConfig(tokens, nil)
	cfg.EnableTracing = false
	return NewRouter(RouterConfig{
		Middleware: cfg,
		Database:   database,
		Optional: map[string]Pinger{
			"redis": func(context.Context) error { return errors.New("connection refused") },
		},
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("# metrics"))
		}),
	}, echoActor{})
}

func healthy(context.Context) error { return nil }

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequestIDIsGeneratedOrPropagated(t *testing.T) {
	router := newTestRouter(t, nil, healthy)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/whoami", nil))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = serve(router, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestBearerTokenSetsActor(t *testing.T) {
	tokens := auth.NewTokenValidator("secret")
	router := newTestRouter(t, tokens, healthy)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/whoami", nil))
	assert.Equal(t, auth.DefaultActor, rec.Body.String())

	token, err := tokens.Issue("u1", "alice", "admin", time.Minute)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = serve(router, req)
	assert.Equal(t, "alice", rec.Body.String())
}

func TestRecoveryReturnsEnvelope(t *testing.T) {
	rec := serve(newTestRouter(t, nil, healthy), httptest.NewRequest(http.MethodGet, "/api/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Internal server error"}`, rec.Body.String())
}

func TestHealthCheck(t *testing.T) {
	rec := serve(newTestRouter(t, nil, healthy), httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"up"`)
	assert.Contains(t, rec.Body.String(), `"redis":"down"`)

	down := func(context.Context) error { return errors.New("no db") }
	rec = serve(newTestRouter(t, nil, down), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestUnknownRouteAndMetrics(t *testing.T) {
	router := newTestRouter(t, nil, healthy)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, "# metrics", rec.Body.String())
}

func TestRateLimiterDisabledWithoutRedis(t *testing.T) {
	assert.Nil(t, NewRateLimiter(nil, 10, time.Minute))

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()
	assert.Nil(t, NewRateLimiter(client, 0, time.Minute))
}

func TestRateLimiterFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	limiter := NewRateLimiter(client, 1, time.Minute)
	require.NotNil(t, limiter)

	h := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	for i := 0; i < 3; i++ {
		rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/products", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}
