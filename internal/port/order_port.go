package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error)
	GetOrderForUpdate(ctx context.Context, id uuid.UUID) (domain.Order, error)
	ListOrdersByOwner(ctx context.Context, ownerID string) ([]domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, deliveredAt *time.Time) error
}

type CheckoutService interface {
	Checkout(ctx context.Context, ownerID string, details domain.CheckoutDetails) (domain.Order, error)
}

type OrderService interface {
	GetOrder(ctx context.Context, actor domain.Identity, id uuid.UUID) (domain.Order, error)
	ListOrders(ctx context.Context, ownerID string) ([]domain.Order, error)
	ListAllOrders(ctx context.Context, actor domain.Identity, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, actor domain.Identity, id uuid.UUID, next domain.OrderStatus) (domain.Order, error)
}
