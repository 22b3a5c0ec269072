package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-tracker/internal/category/usecase/command"
	"github.com/tair/inventory-tracker/internal/category/usecase/query"
	"github.com/tair/inventory-tracker/pkg/logger"
	"github.com/tair/inventory-tracker/pkg/metrics"
	"github.com/tair/inventory-tracker/pkg/response"
)

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	createHandler *command.CreateCategoryHandler
	updateHandler *command.UpdateCategoryHandler
	deleteHandler *command.DeleteCategoryHandler
	listHandler   *query.ListCategoriesHandler
	getHandler    *query.GetCategoryHandler
	metrics       *metrics.HTTP
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(
	createHandler *command.CreateCategoryHandler,
	updateHandler *command.UpdateCategoryHandler,
	deleteHandler *command.DeleteCategoryHandler,
	listHandler *query.ListCategoriesHandler,
	getHandler *query.GetCategoryHandler,
	m *metrics.HTTP,
) *CategoryHandler {
	return &CategoryHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		listHandler:   listHandler,
		getHandler:    getHandler,
		metrics:       m,
	}
}

func (h *CategoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/categories", h.metrics.Wrap("/api/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/categories", h.metrics.Wrap("/api/categories", h.CreateCategory)).Methods("POST")
	router.HandleFunc("/api/categories/{id}", h.metrics.Wrap("/api/categories/{id}", h.GetCategory)).Methods("GET")
	router.HandleFunc("/api/categories/{id}", h.metrics.Wrap("/api/categories/{id}", h.UpdateCategory)).Methods("PUT")
	router.HandleFunc("/api/categories/{id}", h.metrics.Wrap("/api/categories/{id}", h.DeleteCategory)).Methods("DELETE")
}

// CreateCategory handles POST /api/categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	category, err := h.createHandler.Handle(r.Context(), command.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to create category")
		response.Fail(w, err, "Failed to create category")
		return
	}

	response.OK(w, http.StatusCreated, "Category created successfully", category)
}

// ListCategories handles GET /api/categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list categories")
		response.Fail(w, err, "Failed to retrieve categories")
		return
	}

	response.List(w, categories, len(categories))
}

// GetCategory handles GET /api/categories/{id}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.getHandler.Handle(r.Context(), query.GetCategoryQuery{ID: mux.Vars(r)["id"]})
	if err != nil {
		response.Fail(w, err, "Failed to retrieve category")
		return
	}

	response.OK(w, http.StatusOK, "", category)
}

// UpdateCategory handles PUT /api/categories/{id}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Icon        *string `json:"icon"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	category, err := h.updateHandler.Handle(r.Context(), command.UpdateCategoryCommand{
		ID:          mux.Vars(r)["id"],
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to update category")
		response.Fail(w, err, "Failed to update category")
		return
	}

	response.OK(w, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory handles DELETE /api/categories/{id}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.deleteHandler.Handle(r.Context(), command.DeleteCategoryCommand{ID: mux.Vars(r)["id"]}); err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to delete category")
		response.Fail(w, err, "Failed to delete category")
		return
	}

	response.OK(w, http.StatusOK, "Category deleted successfully", nil)
}
