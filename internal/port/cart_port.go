package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	// LockCart reads the cart and holds its rows until the transaction ends.
	LockCart(ctx context.Context, ownerID string) (domain.Cart, error)
	GetCartLines(ctx context.Context, ownerID string) ([]domain.CartLine, error)
	// AddItem inserts the line or increments the quantity of an existing one.
	AddItem(ctx context.Context, ownerID string, item domain.CartItem) error
	SetQuantity(ctx context.Context, ownerID string, productID uuid.UUID, quantity int) (bool, error)
	DeleteItem(ctx context.Context, ownerID string, productID uuid.UUID) (bool, error)
	DeleteCart(ctx context.Context, ownerID string) (int64, error)
}

type CartService interface {
	AddItem(ctx context.Context, ownerID string, productID uuid.UUID, quantity int) error
	UpdateQuantity(ctx context.Context, ownerID string, productID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, ownerID string, productID uuid.UUID) error
	GetCart(ctx context.Context, ownerID string) (domain.CartView, error)
	Clear(ctx context.Context, ownerID string) error
	CheckoutPreview(ctx context.Context, ownerID string) (domain.CartView, error)
}
