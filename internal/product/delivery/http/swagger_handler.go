package http

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product. Status is derived from quantity and reorder level; any supplied status is ignored.
// @Tags Products
// @Accept json
// @Produce json
// @Param request body object{name=string,sku=string,description=string,category=string,price=number,quantity=int,reorder_level=int,supplier=string,image=string,barcode=string} true "Product data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,fields=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products [post]
func (h *ProductHandler) CreateProductDoc() {}

// ListProducts godoc
// @Summary List all products
// @Description List products newest first. Stale statuses are corrected in the response.
// @Tags Products
// @Produce json
// @Param category query string false "Category filter"
// @Param status query string false "IN_STOCK, LOW_STOCK or OUT_OF_STOCK"
// @Success 200 {object} object{success=bool,count=int,data=array}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products [get]
func (h *ProductHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetProductDoc() {}

// SearchProducts godoc
// @Summary Search products
// @Description Case-insensitive match on name, SKU, description, category or barcode
// @Tags Products
// @Produce json
// @Param query path string true "Search term"
// @Success 200 {object} object{success=bool,count=int,data=array}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/products/search/{query} [get]
func (h *ProductHandler) SearchProductsDoc() {}

// LowStock godoc
// @Summary Low stock products
// @Description Products whose quantity is at or below their reorder level, lowest quantity first
// @Tags Products
// @Produce json
// @Success 200 {object} object{success=bool,count=int,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products/low-stock [get]
func (h *ProductHandler) LowStockDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Description Partial update. Status is recomputed when quantity or reorder_level is present.
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body object{name=string,sku=string,description=string,category=string,price=number,quantity=int,reorder_level=int,supplier=string,image=string,barcode=string} true "Fields to change"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,fields=array}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [put]
func (h *ProductHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [delete]
func (h *ProductHandler) DeleteProductDoc() {}

// RestockProduct godoc
// @Summary Restock a product
// @Description Add units to a product's quantity
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body object{quantity=int} true "Units to add"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,fields=array}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id}/restock [patch]
func (h *ProductHandler) RestockProductDoc() {}
