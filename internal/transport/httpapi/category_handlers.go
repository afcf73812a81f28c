package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type createCategoryRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ParentID    *string `json:"parentId"`
}

// updateCategoryRequest leaves nil fields unchanged. A parentId of "" moves the category to the top level.
type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ParentID    *string `json:"parentId"`
	IsActive    *bool   `json:"isActive"`
}

// GET /categories
func (h *Handler) browseCategories(c *gin.Context) {
	nodes, err := h.catalog.BrowseCategories(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]categoryNodeResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, toCategoryNodeResponse(n))
	}

	c.JSON(http.StatusOK, out)
}

// GET /categories/:id/products
func (h *Handler) categoryProducts(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	category, err := h.catalog.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if !category.IsActive && !identityFrom(c).IsAdmin() {
		h.writeError(c, &domain.CategoryNotFoundError{CategoryID: id})
		return
	}

	products, err := h.catalog.ListProducts(c.Request.Context(), domain.ProductFilter{CategoryID: &id})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, categoryProductsResponse{
		Category: toCategoryResponse(category),
		Products: toProductResponses(products),
	})
}

// GET /admin/dashboard
func (h *Handler) dashboard(c *gin.Context) {
	stats, err := h.catalog.Dashboard(c.Request.Context(), identityFrom(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboardResponse{
		Products:       stats.Products,
		ActiveProducts: stats.ActiveProducts,
		Categories:     stats.Categories,
		Orders:         stats.Orders,
		PendingOrders:  stats.PendingOrders,
	})
}

// GET /admin/categories
func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context(), identityFrom(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, toCategoryResponse(category))
	}

	c.JSON(http.StatusOK, out)
}

// POST /admin/categories
func (h *Handler) createCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeErrorStatus(c, http.StatusBadRequest, err)
		return
	}

	parentID, err := optionalUUID(req.ParentID, "parentId")
	if err != nil {
		h.writeError(c, err)
		return
	}

	category, err := h.catalog.CreateCategory(c.Request.Context(), identityFrom(c), domain.NewCategory{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    parentID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// PUT /admin/categories/:id
func (h *Handler) updateCategory(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeErrorStatus(c, http.StatusBadRequest, err)
		return
	}

	update := domain.CategoryUpdate{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	}

	if req.ParentID != nil {
		parentID := uuid.Nil
		if *req.ParentID != "" {
			if parentID, err = parseUUID(*req.ParentID, "parentId"); err != nil {
				h.writeError(c, err)
				return
			}
		}
		update.ParentID = &parentID
	}

	category, err := h.catalog.UpdateCategory(c.Request.Context(), identityFrom(c), id, update)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCategoryResponse(category))
}

// DELETE /admin/categories/:id
func (h *Handler) deleteCategory(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.catalog.DeleteCategory(c.Request.Context(), identityFrom(c), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted"})
}
