package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-tracker/pkg/response"
)

// RouteRegistrar is implemented by every feature handler
type RouteRegistrar interface {
	RegisterRoutes(router *mux.Router)
}

// RouterConfig carries the service-level endpoints mounted next to the API
type RouterConfig struct {
	Middleware *MiddlewareConfig
	Database   Pinger
	Optional   map[string]Pinger
	Metrics    http.Handler
	Swagger    http.Handler
}

// NewRouter builds the complete HTTP handler: middlewares, feature routes, health, metrics and docs
func NewRouter(cfg RouterConfig, handlers ...RouteRegistrar) http.Handler {
	router := mux.NewRouter()

	RegisterMiddlewares(router, cfg.Middleware)

	for _, h := range handlers {
		h.RegisterRoutes(router)
	}

	RegisterHealthCheck(router, cfg.Database, cfg.Optional)

	if cfg.Metrics != nil {
		router.Handle("/metrics", cfg.Metrics).Methods("GET")
	}
	if cfg.Swagger != nil {
		RegisterSwaggerDocs(router, cfg.Swagger)
	}

	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	return SetupCORS(cfg.Middleware)(router)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusNotFound, response.Response{Success: false, Error: "Route not found"})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusMethodNotAllowed, response.Response{Success: false, Error: "Method not allowed"})
}
