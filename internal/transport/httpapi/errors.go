package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/domain"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrCurrencyMismatch),
		errors.Is(err, domain.ErrCategoryInUse):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error     string `json:"error"`
	ProductID string `json:"product_id,omitempty"`
}

func (h *Handler) writeError(c *gin.Context, err error) {
	h.writeErrorStatus(c, statusFor(err), err)
}

func (h *Handler) writeErrorStatus(c *gin.Context, status int, err error) {
	resp := errorResponse{Error: err.Error()}

	if status >= http.StatusInternalServerError {
		h.log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		resp.Error = http.StatusText(status)
		if errors.Is(err, domain.ErrCheckoutFailed) {
			resp.Error = domain.ErrCheckoutFailed.Error()
		}
	}

	if productID, ok := domain.OffendingProduct(err); ok {
		resp.ProductID = productID.String()
	}

	c.AbortWithStatusJSON(status, resp)
}
