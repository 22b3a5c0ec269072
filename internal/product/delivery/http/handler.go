package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-tracker/internal/product/usecase/command"
	"github.com/tair/inventory-tracker/internal/product/usecase/query"
	"github.com/tair/inventory-tracker/pkg/logger"
	"github.com/tair/inventory-tracker/pkg/metrics"
	"github.com/tair/inventory-tracker/pkg/response"
)

// CommandHandlers holds all product command handlers
type CommandHandlers struct {
	Create  *command.CreateProductHandler
	Update  *command.UpdateProductHandler
	Delete  *command.DeleteProductHandler
	Restock *command.RestockProductHandler
}

// QueryHandlers holds all product query handlers
type QueryHandlers struct {
	List     *query.ListProductsHandler
	Get      *query.GetProductHandler
	Search   *query.SearchProductsHandler
	LowStock *query.LowStockHandler
}

// ProductHandler handles HTTP requests for products using CQRS pattern
type ProductHandler struct {
	commands *CommandHandlers
	queries  *QueryHandlers
	metrics  *metrics.HTTP
}

// NewProductHandler creates a new product handler
func NewProductHandler(commands *CommandHandlers, queries *QueryHandlers, m *metrics.HTTP) *ProductHandler {
	return &ProductHandler{commands: commands, queries: queries, metrics: m}
}

func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	// Fixed paths first so they are not captured by {id}
	router.HandleFunc("/api/products/low-stock", h.metrics.Wrap("/api/products/low-stock", h.LowStock)).Methods("GET")
	router.HandleFunc("/api/products/search/{query}", h.metrics.Wrap("/api/products/search/{query}", h.SearchProducts)).Methods("GET")

	router.HandleFunc("/api/products", h.metrics.Wrap("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products", h.metrics.Wrap("/api/products", h.CreateProduct)).Methods("POST")
	router.HandleFunc("/api/products/{id}", h.metrics.Wrap("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metrics.Wrap("/api/products/{id}", h.UpdateProduct)).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.metrics.Wrap("/api/products/{id}", h.DeleteProduct)).Methods("DELETE")
	router.HandleFunc("/api/products/{id}/restock", h.metrics.Wrap("/api/products/{id}/restock", h.RestockProduct)).Methods("PATCH")
}

type createProductRequest struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	ReorderLevel *int    `json:"reorder_level"`
	Supplier     string  `json:"supplier"`
	Image        string  `json:"image"`
	Barcode      *string `json:"barcode"`
}

type updateProductRequest struct {
	Name         *string  `json:"name"`
	SKU          *string  `json:"sku"`
	Description  *string  `json:"description"`
	Category     *string  `json:"category"`
	Price        *float64 `json:"price"`
	Quantity     *int     `json:"quantity"`
	ReorderLevel *int     `json:"reorder_level"`
	Supplier     *string  `json:"supplier"`
	Image        *string  `json:"image"`
	Barcode      *string  `json:"barcode"`
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	product, err := h.commands.Create.Handle(r.Context(), command.CreateProductCommand{
		Name:         req.Name,
		SKU:          req.SKU,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		Quantity:     req.Quantity,
		ReorderLevel: req.ReorderLevel,
		Supplier:     req.Supplier,
		Image:        req.Image,
		Barcode:      req.Barcode,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to create product")
		response.Fail(w, err, "Failed to create product")
		return
	}

	response.OK(w, http.StatusCreated, "Product created successfully", product)
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.queries.List.Handle(r.Context(), query.ListProductsQuery{
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		response.Fail(w, err, "Failed to retrieve products")
		return
	}

	response.List(w, products, len(products))
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.queries.Get.Handle(r.Context(), query.GetProductQuery{ID: mux.Vars(r)["id"]})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to get product")
		response.Fail(w, err, "Failed to retrieve product")
		return
	}

	response.OK(w, http.StatusOK, "", product)
}

// SearchProducts handles GET /api/products/search/{query}
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.queries.Search.Handle(r.Context(), query.SearchProductsQuery{Term: mux.Vars(r)["query"]})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to search products")
		response.Fail(w, err, "Failed to search products")
		return
	}

	response.List(w, products, len(products))
}

// LowStock handles GET /api/products/low-stock
func (h *ProductHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.queries.LowStock.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list low stock products")
		response.Fail(w, err, "Failed to retrieve low stock products")
		return
	}

	response.List(w, products, len(products))
}

// UpdateProduct handles PUT /api/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	product, err := h.commands.Update.Handle(r.Context(), command.UpdateProductCommand{
		ID:           mux.Vars(r)["id"],
		Name:         req.Name,
		SKU:          req.SKU,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		Quantity:     req.Quantity,
		ReorderLevel: req.ReorderLevel,
		Supplier:     req.Supplier,
		Image:        req.Image,
		Barcode:      req.Barcode,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to update product")
		response.Fail(w, err, "Failed to update product")
		return
	}

	response.OK(w, http.StatusOK, "Product updated successfully", product)
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.commands.Delete.Handle(r.Context(), command.DeleteProductCommand{ID: mux.Vars(r)["id"]}); err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to delete product")
		response.Fail(w, err, "Failed to delete product")
		return
	}

	response.OK(w, http.StatusOK, "Product deleted successfully", nil)
}

// RestockProduct handles PATCH /api/products/{id}/restock
func (h *ProductHandler) RestockProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	product, err := h.commands.Restock.Handle(r.Context(), command.RestockProductCommand{
		ID:       mux.Vars(r)["id"],
		Quantity: req.Quantity,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to restock product")
		response.Fail(w, err, "Failed to restock product")
		return
	}

	response.OK(w, http.StatusOK, "Product restocked successfully", product)
}
