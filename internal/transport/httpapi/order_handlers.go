package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/domain"
)

type updateStatusRequest struct {
	Status string `json:"status" form:"status"`
}

type orderPage struct {
	Order   orderResponse
	Success bool
}

// GET /user/orders
func (h *Handler) listMyOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context(), identityFrom(c).UserID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// GET /user/orders/:id
func (h *Handler) getOrder(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), identityFrom(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := toOrderResponse(order)
	render(c, http.StatusOK, "order.tmpl", orderPage{Order: resp, Success: c.Query("success") == "1"}, resp)
}

// GET /admin/orders
func (h *Handler) listAllOrders(c *gin.Context) {
	var filter domain.OrderFilter
	if s := c.Query("status"); s != "" {
		status, err := domain.ParseOrderStatus(s)
		if err != nil {
			h.writeError(c, err)
			return
		}
		filter.Status = &status
	}

	orders, err := h.orders.ListAllOrders(c.Request.Context(), identityFrom(c), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// PUT /admin/orders/:id/status
func (h *Handler) updateOrderStatus(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		h.writeErrorStatus(c, http.StatusBadRequest, err)
		return
	}

	next, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), identityFrom(c), id, next)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}
