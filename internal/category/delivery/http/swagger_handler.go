package http

// CreateCategory godoc
// @Summary Create a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,icon=string} true "Category data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,fields=array}
// @Router /api/categories [post]
func (h *CategoryHandler) CreateCategoryDoc() {}

// ListCategories godoc
// @Summary List active categories
// @Description Active categories sorted by name
// @Tags Categories
// @Produce json
// @Success 200 {object} object{success=bool,count=int,data=array}
// @Router /api/categories [get]
func (h *CategoryHandler) ListCategoriesDoc() {}

// GetCategory godoc
// @Summary Get category by ID
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) GetCategoryDoc() {}

// UpdateCategory godoc
// @Summary Update a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body object{name=string,description=string,icon=string} true "Fields to change"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string,fields=array}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) UpdateCategoryDoc() {}

// DeleteCategory godoc
// @Summary Deactivate a category
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategoryDoc() {}
