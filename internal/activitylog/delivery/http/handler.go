package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-tracker/internal/activitylog/usecase/query"
	"github.com/tair/inventory-tracker/pkg/logger"
	"github.com/tair/inventory-tracker/pkg/metrics"
	"github.com/tair/inventory-tracker/pkg/response"
)

// ActivityLogHandler serves the read-only audit trail
type ActivityLogHandler struct {
	listHandler    *query.ListActivityLogsHandler
	historyHandler *query.EntityHistoryHandler
	metrics        *metrics.HTTP
}

// NewActivityLogHandler creates a new activity log handler
func NewActivityLogHandler(
	listHandler *query.ListActivityLogsHandler,
	historyHandler *query.EntityHistoryHandler,
	m *metrics.HTTP,
) *ActivityLogHandler {
	return &ActivityLogHandler{
		listHandler:    listHandler,
		historyHandler: historyHandler,
		metrics:        m,
	}
}

func (h *ActivityLogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/activity-logs", h.metrics.Wrap("/api/activity-logs", h.ListActivityLogs)).Methods("GET")
	router.HandleFunc("/api/activity-logs/entity/{entityId}", h.metrics.Wrap("/api/activity-logs/entity/{entityId}", h.GetEntityHistory)).Methods("GET")
}

// ListActivityLogs handles GET /api/activity-logs
func (h *ActivityLogHandler) ListActivityLogs(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	logs, err := h.listHandler.Handle(r.Context(), query.ListActivityLogsQuery{
		EntityType: r.URL.Query().Get("entityType"),
		Limit:      limit,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list activity logs")
		response.Fail(w, err, "Failed to retrieve activity logs")
		return
	}

	response.List(w, logs, len(logs))
}

// GetEntityHistory handles GET /api/activity-logs/entity/{entityId}
func (h *ActivityLogHandler) GetEntityHistory(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	logs, err := h.historyHandler.Handle(r.Context(), query.EntityHistoryQuery{
		EntityID: mux.Vars(r)["entityId"],
		Limit:    limit,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to read entity history")
		response.Fail(w, err, "Failed to retrieve activity logs")
		return
	}

	response.List(w, logs, len(logs))
}

func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(w, "Invalid limit")
		return 0, false
	}
	return limit, true
}
