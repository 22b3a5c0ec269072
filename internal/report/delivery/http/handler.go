package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-tracker/internal/report/export"
	"github.com/tair/inventory-tracker/internal/report/usecase"
	"github.com/tair/inventory-tracker/pkg/apperror"
	"github.com/tair/inventory-tracker/pkg/logger"
	"github.com/tair/inventory-tracker/pkg/metrics"
	"github.com/tair/inventory-tracker/pkg/response"
)

// ReportHandler serves the inventory report as JSON or as a document download
type ReportHandler struct {
	generate *usecase.GenerateReportHandler
	metrics  *metrics.HTTP
}

// NewReportHandler creates a new report handler
func NewReportHandler(generate *usecase.GenerateReportHandler, m *metrics.HTTP) *ReportHandler {
	return &ReportHandler{generate: generate, metrics: m}
}

func (h *ReportHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/reports/inventory", h.metrics.Wrap("/api/reports/inventory", h.GetInventoryReport)).Methods("GET")
}

// GetInventoryReport handles GET /api/reports/inventory
func (h *ReportHandler) GetInventoryReport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")

	var renderer export.Renderer
	if format != "" && format != "json" {
		var err error
		if renderer, err = export.ForFormat(format); err != nil {
			verr := &apperror.ValidationError{}
			verr.Add("format", "must be one of json, csv, html, pdf")
			response.Fail(w, verr, "Invalid report format")
			return
		}
	}

	report, err := h.generate.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to generate inventory report")
		response.Fail(w, err, "Failed to generate report")
		return
	}

	if renderer == nil {
		response.OK(w, http.StatusOK, "", report)
		return
	}

	// Render fully before writing headers so a failure can still produce an error envelope
	var buf bytes.Buffer
	if err := renderer.Render(&buf, report); err != nil {
		logger.Error(r.Context()).Err(err).Str("format", format).Msg("Failed to render inventory report")
		response.Fail(w, err, "Failed to render report")
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(renderer, report)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
