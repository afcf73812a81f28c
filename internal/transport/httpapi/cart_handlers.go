package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/domain"
)

type addItemRequest struct {
	ProductID string `json:"productId" form:"productId"`
	Quantity  *int   `json:"quantity" form:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" form:"quantity"`
}

type checkoutRequest struct {
	Street        string `json:"street" form:"street"`
	City          string `json:"city" form:"city"`
	State         string `json:"state" form:"state"`
	ZipCode       string `json:"zipCode" form:"zipCode"`
	Country       string `json:"country" form:"country"`
	PaymentMethod string `json:"paymentMethod" form:"paymentMethod"`
	Notes         string `json:"notes" form:"notes"`
}

func (r checkoutRequest) details() domain.CheckoutDetails {
	return domain.CheckoutDetails{
		ShippingAddress: domain.Address{
			Street:  r.Street,
			City:    r.City,
			State:   r.State,
			ZipCode: r.ZipCode,
			Country: r.Country,
		},
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		Notes:         r.Notes,
	}
}

type cartPage struct {
	Cart  cartResponse
	Error string
}

type checkoutPage struct {
	Cart cartResponse
}

// GET /cart
func (h *Handler) getCart(c *gin.Context) {
	view, err := h.carts.GetCart(c.Request.Context(), identityFrom(c).UserID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := toCartResponse(view)
	render(c, http.StatusOK, "cart.tmpl", cartPage{Cart: resp, Error: c.Query("error")}, resp)
}

// POST /cart/add
func (h *Handler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBind(&req); err != nil {
		h.writeErrorStatus(c, http.StatusBadRequest, err)
		return
	}

	productID, err := parseUUID(req.ProductID, "productId")
	if err != nil {
		h.writeError(c, err)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if err := h.carts.AddItem(c.Request.Context(), identityFrom(c).UserID, productID, quantity); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product added to cart"})
}

// PUT /cart/update/:productId
func (h *Handler) updateQuantity(c *gin.Context) {
	productID, err := pathUUID(c, "productId")
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBind(&req); err != nil {
		h.writeErrorStatus(c, http.StatusBadRequest, err)
		return
	}

	if err := h.carts.UpdateQuantity(c.Request.Context(), identityFrom(c).UserID, productID, req.Quantity); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart updated"})
}

// DELETE /cart/remove/:productId
func (h *Handler) removeItem(c *gin.Context) {
	// An id that cannot be parsed matches no cart line.
	productID, err := pathUUID(c, "productId")
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed from cart"})
		return
	}

	if err := h.carts.RemoveItem(c.Request.Context(), identityFrom(c).UserID, productID); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed from cart"})
}

// DELETE /cart
func (h *Handler) clearCart(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), identityFrom(c).UserID); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared"})
}

// GET /cart/checkout
func (h *Handler) checkoutForm(c *gin.Context) {
	view, err := h.carts.CheckoutPreview(c.Request.Context(), identityFrom(c).UserID)
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		c.Redirect(http.StatusFound, "/cart")
		return
	case errors.Is(err, domain.ErrInsufficientStock), errors.Is(err, domain.ErrProductNotFound):
		c.Redirect(http.StatusFound, "/cart?error=stock")
		return
	case err != nil:
		h.writeError(c, err)
		return
	}

	resp := toCartResponse(view)
	render(c, http.StatusOK, "checkout.tmpl", checkoutPage{Cart: resp}, resp)
}

// POST /cart/checkout
func (h *Handler) placeOrder(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBind(&req); err != nil {
		h.writeErrorStatus(c, http.StatusBadRequest, err)
		return
	}

	order, err := h.checkout.Checkout(c.Request.Context(), identityFrom(c).UserID, req.details())
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		// The product was withdrawn after it was added to the cart.
		h.writeErrorStatus(c, http.StatusBadRequest, err)
		return
	case err != nil:
		h.writeError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/user/orders/"+order.ID.String()+"?success=1")
}
