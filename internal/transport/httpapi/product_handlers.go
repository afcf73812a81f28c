package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type createProductRequest struct {
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  *string `json:"categoryId"`
}

// updateProductRequest leaves nil fields unchanged. A categoryId of "" removes the product from its category.
type updateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Stock       *int    `json:"stock"`
	IsActive    *bool   `json:"isActive"`
	CategoryID  *string `json:"categoryId"`
}

func (h *Handler) parsePrice(s string) (domain.Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return domain.Money{}, fmt.Errorf("%w: price[%s] is not a number", domain.ErrInvalidArgument, s)
	}

	return domain.NewMoney(amount, h.currency), nil
}

// optionalUUID parses an optional id field; nil stays nil.
func optionalUUID(s *string, name string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}

	id, err := parseUUID(*s, name)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

// GET /products
func (h *Handler) listProducts(c *gin.Context) {
	filter := domain.ProductFilter{Query: c.Query("q")}
	if identityFrom(c).IsAdmin() {
		filter.IncludeInactive, _ = strconv.ParseBool(c.Query("includeInactive"))
	}

	if category, ok := c.GetQuery("category"); ok {
		id, err := parseUUID(category, "category")
		if err != nil {
			h.writeError(c, err)
			return
		}
		filter.CategoryID = &id
	}

	products, err := h.catalog.ListProducts(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponses(products))
}

// GET /products/:id
func (h *Handler) getProduct(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if !product.IsActive && !identityFrom(c).IsAdmin() {
		h.writeError(c, &domain.ProductNotFoundError{ProductID: id})
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

// POST /admin/products
func (h *Handler) createProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeErrorStatus(c, http.StatusBadRequest, err)
		return
	}

	price, err := h.parsePrice(req.Price)
	if err != nil {
		h.writeError(c, err)
		return
	}

	categoryID, err := optionalUUID(req.CategoryID, "categoryId")
	if err != nil {
		h.writeError(c, err)
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), identityFrom(c), domain.NewProduct{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Stock:       req.Stock,
		CategoryID:  categoryID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(product))
}

// PUT /admin/products/:id
func (h *Handler) updateProduct(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeErrorStatus(c, http.StatusBadRequest, err)
		return
	}

	update := domain.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Stock:       req.Stock,
		IsActive:    req.IsActive,
	}

	if req.Price != nil {
		price, err := h.parsePrice(*req.Price)
		if err != nil {
			h.writeError(c, err)
			return
		}
		update.Price = &price
	}

	if req.CategoryID != nil {
		categoryID := uuid.Nil
		if *req.CategoryID != "" {
			if categoryID, err = parseUUID(*req.CategoryID, "categoryId"); err != nil {
				h.writeError(c, err)
				return
			}
		}
		update.CategoryID = &categoryID
	}

	product, err := h.catalog.UpdateProduct(c.Request.Context(), identityFrom(c), id, update)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

// DELETE /admin/products/:id
func (h *Handler) deactivateProduct(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.catalog.DeactivateProduct(c.Request.Context(), identityFrom(c), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deactivated"})
}
