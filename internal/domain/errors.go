package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrItemNotFound      = errors.New("item not found in cart")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrOrderNotFound     = errors.New("order not found")
	ErrCheckoutFailed    = errors.New("checkout failed")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrCurrencyMismatch  = errors.New("currency mismatch")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryInUse     = errors.New("category is in use")
)

type ProductNotFoundError struct {
	ProductID uuid.UUID
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product[%s] not found", e.ProductID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}

type InsufficientStockError struct {
	ProductID uuid.UUID
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product[%s]: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order status transition %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

type CategoryNotFoundError struct {
	CategoryID uuid.UUID
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("category[%s] not found", e.CategoryID)
}

func (e *CategoryNotFoundError) Is(target error) bool {
	return target == ErrCategoryNotFound
}

type CategoryInUseError struct {
	CategoryID    uuid.UUID
	Products      int64
	Subcategories int64
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category[%s] still has %d products and %d subcategories",
		e.CategoryID, e.Products, e.Subcategories)
}

func (e *CategoryInUseError) Is(target error) bool {
	return target == ErrCategoryInUse
}

// OffendingProduct extracts the product a stock or lookup error refers to.
func OffendingProduct(err error) (uuid.UUID, bool) {
	var stockErr *InsufficientStockError
	if errors.As(err, &stockErr) {
		return stockErr.ProductID, true
	}

	var notFoundErr *ProductNotFoundError
	if errors.As(err, &notFoundErr) {
		return notFoundErr.ProductID, true
	}

	return uuid.Nil, false
}
