package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/logging"
	"github.com/nikolayk812/storefront/internal/metrics"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/sirupsen/logrus"
)

const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

type checkoutService struct {
	tx      port.Transactor
	timeout time.Duration
	topic   string
	metrics *metrics.Metrics
	log     logrus.FieldLogger
	now     func() time.Time
}

type CheckoutOption func(*checkoutService)

func WithCheckoutMetrics(m *metrics.Metrics) CheckoutOption {
	return func(s *checkoutService) {
		s.metrics = m
	}
}

func WithClock(now func() time.Time) CheckoutOption {
	return func(s *checkoutService) {
		s.now = now
	}
}

func NewCheckout(tx port.Transactor, timeout time.Duration, topic string, log logrus.FieldLogger, opts ...CheckoutOption) port.CheckoutService {
	s := &checkoutService{
		tx:      tx,
		timeout: timeout,
		topic:   topic,
		log:     log.WithField("component", "checkout"),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Checkout converts the owner's cart into a pending order.
//
// Stock validation, stock decrements, order creation, event enqueueing and cart
// deletion share one transaction bounded by the checkout timeout: either all of
// them apply or none does. Product rows stay locked from validation to commit,
// so concurrent checkouts of the same product serialize and stock never goes
// negative.
func (s *checkoutService) Checkout(ctx context.Context, ownerID string, details domain.CheckoutDetails) (domain.Order, error) {
	started := time.Now()
	log := s.log.WithField("owner_id", ownerID)

	order, err := s.checkout(ctx, ownerID, details)
	switch {
	case err == nil:
		s.record(outcomeOK)
		log = log.WithFields(logrus.Fields{
			"order_id": order.ID,
			"total":    order.Total.String(),
		})
	case isClientError(err):
		s.record(outcomeRejected)
		if productID, ok := domain.OffendingProduct(err); ok {
			log = log.WithField("product_id", productID)
		}
	default:
		s.record(outcomeFailed)
		err = fmt.Errorf("%w: %w", domain.ErrCheckoutFailed, err)
	}

	logging.Step(log, "checkout", started, err)

	if err != nil {
		return domain.Order{}, err
	}

	return order, nil
}

func (s *checkoutService) checkout(ctx context.Context, ownerID string, details domain.CheckoutDetails) (domain.Order, error) {
	if ownerID == "" {
		return domain.Order{}, fmt.Errorf("%w: ownerID is empty", domain.ErrInvalidArgument)
	}

	method, err := domain.ParsePaymentMethod(string(details.PaymentMethod))
	if err != nil {
		return domain.Order{}, err
	}
	details.PaymentMethod = method

	if err := details.Validate(); err != nil {
		return domain.Order{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var order domain.Order

	err = s.tx.InTx(ctx, func(repos port.Repositories) error {
		// A concurrent checkout of the same cart waits here and then sees it empty.
		cart, err := repos.Carts().LockCart(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("repos.LockCart: %w", err)
		}

		if cart.IsEmpty() {
			return domain.ErrEmptyCart
		}

		products, err := repos.Products().LockProducts(ctx, cart.ProductIDs())
		if err != nil {
			return fmt.Errorf("repos.LockProducts: %w", err)
		}

		order, err = domain.NewOrder(uuid.New(), cart, products, details, s.now().UTC())
		if err != nil {
			return err
		}

		for _, item := range order.Items {
			ok, err := repos.Products().DecrementStock(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return fmt.Errorf("repos.DecrementStock: %w", err)
			}

			if !ok {
				return &domain.InsufficientStockError{
					ProductID: item.ProductID,
					Requested: item.Quantity,
					Available: products[item.ProductID].Stock,
				}
			}
		}

		if err := repos.Orders().CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("repos.CreateOrder: %w", err)
		}

		eventID := uuid.New()
		if err := repos.Outbox().Enqueue(ctx, eventID, s.topic, order.ID.String(), domain.NewOrderPlaced(eventID, order)); err != nil {
			return fmt.Errorf("repos.Enqueue: %w", err)
		}

		deleted, err := repos.Carts().DeleteCart(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("repos.DeleteCart: %w", err)
		}

		if deleted < int64(len(cart.Items)) {
			return domain.ErrEmptyCart
		}

		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = errors.Join(err, ctxErr)
		}
		return domain.Order{}, err
	}

	return order, nil
}

func (s *checkoutService) record(outcome string) {
	if s.metrics != nil {
		s.metrics.CheckoutOutcome(outcome)
	}
}
