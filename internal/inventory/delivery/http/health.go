package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-tracker/pkg/logger"
	"github.com/tair/inventory-tracker/pkg/response"
)

// Pinger reports whether a backing service is reachable
type Pinger func(ctx context.Context) error

// RegisterHealthCheck registers the health check endpoint. Only the database is required;
// optional dependencies are reported without failing the check.
func RegisterHealthCheck(router *mux.Router, database Pinger, optional map[string]Pinger) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := database(ctx); err != nil {
			logger.Error(ctx).Err(err).Msg("Health check failed: database unavailable")
			response.JSON(w, http.StatusServiceUnavailable, response.Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		checks := map[string]string{"database": "up"}
		for name, ping := range optional {
			if err := ping(ctx); err != nil {
				logger.Warn(ctx).Err(err).Str("dependency", name).Msg("Health check: dependency degraded")
				checks[name] = "down"
				continue
			}
			checks[name] = "up"
		}

		response.OK(w, http.StatusOK, "Inventory service is healthy", checks)
	}).Methods("GET")
}
