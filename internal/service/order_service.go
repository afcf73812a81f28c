package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/sirupsen/logrus"
)

type orderService struct {
	repos port.Repositories
	tx    port.Transactor
	topic string
	log   logrus.FieldLogger
	now   func() time.Time
}

func NewOrder(repos port.Repositories, tx port.Transactor, topic string, log logrus.FieldLogger) port.OrderService {
	return &orderService{
		repos: repos,
		tx:    tx,
		topic: topic,
		log:   log.WithField("component", "orders"),
		now:   time.Now,
	}
}

// GetOrder hides orders of other users behind ErrOrderNotFound.
func (s *orderService) GetOrder(ctx context.Context, actor domain.Identity, id uuid.UUID) (domain.Order, error) {
	if actor.IsZero() {
		return domain.Order{}, domain.ErrForbidden
	}

	order, err := s.repos.Orders().GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("repos.GetOrder: %w", err)
	}

	if !actor.IsAdmin() && order.OwnerID != actor.UserID {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, ownerID string) ([]domain.Order, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: ownerID is empty", domain.ErrInvalidArgument)
	}

	orders, err := s.repos.Orders().ListOrdersByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("repos.ListOrdersByOwner: %w", err)
	}

	return orders, nil
}

func (s *orderService) ListAllOrders(ctx context.Context, actor domain.Identity, filter domain.OrderFilter) ([]domain.Order, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	orders, err := s.repos.Orders().ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("repos.ListOrders: %w", err)
	}

	return orders, nil
}

// UpdateStatus moves an order along the status machine. Only admins may do it.
func (s *orderService) UpdateStatus(ctx context.Context, actor domain.Identity, id uuid.UUID, next domain.OrderStatus) (domain.Order, error) {
	if !actor.IsAdmin() {
		return domain.Order{}, domain.ErrForbidden
	}

	var (
		order domain.Order
		from  domain.OrderStatus
	)

	err := s.tx.InTx(ctx, func(repos port.Repositories) error {
		var err error
		order, err = repos.Orders().GetOrderForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("repos.GetOrderForUpdate: %w", err)
		}

		from = order.Status
		if !from.CanTransitionTo(next) {
			return &domain.InvalidTransitionError{From: from, To: next}
		}

		now := s.now().UTC()

		var deliveredAt *time.Time
		if next == domain.OrderStatusDelivered {
			deliveredAt = &now
		}

		if err := repos.Orders().UpdateStatus(ctx, id, next, deliveredAt); err != nil {
			return fmt.Errorf("repos.UpdateStatus: %w", err)
		}

		order.Status = next
		order.UpdatedAt = now
		if deliveredAt != nil {
			order.DeliveredAt = deliveredAt
		}

		eventID := uuid.New()
		event := domain.NewOrderStatusChanged(eventID, order, from, now)
		if err := repos.Outbox().Enqueue(ctx, eventID, s.topic, order.ID.String(), event); err != nil {
			return fmt.Errorf("repos.Enqueue: %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.log.WithFields(logrus.Fields{
		"order_id": id,
		"actor":    actor.UserID,
		"from":     from,
		"status":   next,
	}).Info("order status changed")

	return order, nil
}
