package service

import (
	"errors"

	"github.com/nikolayk812/storefront/internal/domain"
)

// isClientError reports errors the caller can fix; they are returned untouched.
func isClientError(err error) bool {
	for _, target := range []error{
		domain.ErrEmptyCart,
		domain.ErrInsufficientStock,
		domain.ErrProductNotFound,
		domain.ErrInvalidQuantity,
		domain.ErrItemNotFound,
		domain.ErrInvalidArgument,
		domain.ErrCurrencyMismatch,
		domain.ErrInvalidTransition,
		domain.ErrOrderNotFound,
		domain.ErrForbidden,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
