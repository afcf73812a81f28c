package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

// CreateOrder writes the order header and its lines atomically.
func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order) error {
	if order.ID == uuid.Nil {
		return fmt.Errorf("order ID is empty")
	}
	if order.OwnerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		err := q.CreateOrder(ctx, db.CreateOrderParams{
			ID:            order.ID,
			OwnerID:       order.OwnerID,
			Status:        string(order.Status),
			TotalAmount:   order.Total.Amount,
			TotalCurrency: order.Total.Currency.String(),
			Street:        order.ShippingAddress.Street,
			City:          order.ShippingAddress.City,
			State:         order.ShippingAddress.State,
			ZipCode:       order.ShippingAddress.ZipCode,
			Country:       order.ShippingAddress.Country,
			PaymentMethod: string(order.PaymentMethod),
			Notes:         order.Notes,
			CreatedAt:     order.CreatedAt,
		})
		if err != nil {
			return struct{}{}, fmt.Errorf("q.CreateOrder: %w", err)
		}

		for i, item := range order.Items {
			err := q.CreateOrderItem(ctx, db.CreateOrderItemParams{
				OrderID:       order.ID,
				LineNo:        int32(i + 1),
				ProductID:     item.ProductID,
				Quantity:      int32(item.Quantity),
				PriceAmount:   item.Price.Amount,
				PriceCurrency: item.Price.Currency.String(),
			})
			if err != nil {
				return struct{}{}, fmt.Errorf("q.CreateOrderItem[%d]: %w", i+1, err)
			}
		}

		return struct{}{}, nil
	})

	return err
}

func (r *orderRepository) GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	row, err := r.q.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("q.GetOrder: %w", err)
	}

	return r.withItems(ctx, row)
}

func (r *orderRepository) GetOrderForUpdate(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	row, err := r.q.GetOrderForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("q.GetOrderForUpdate: %w", err)
	}

	return r.withItems(ctx, row)
}

func (r *orderRepository) ListOrdersByOwner(ctx context.Context, ownerID string) ([]domain.Order, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.q.ListOrdersByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrdersByOwner: %w", err)
	}

	return r.mapOrders(ctx, rows)
}

func (r *orderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	var status *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}

	rows, err := r.q.ListOrders(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrders: %w", err)
	}

	return r.mapOrders(ctx, rows)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, deliveredAt *time.Time) error {
	rowsAffected, err := r.q.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
		ID:          id,
		Status:      string(status),
		DeliveredAt: deliveredAt,
	})
	if err != nil {
		return fmt.Errorf("q.UpdateOrderStatus: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}

func (r *orderRepository) withItems(ctx context.Context, row db.Order) (domain.Order, error) {
	orders, err := r.mapOrders(ctx, []db.Order{row})
	if err != nil {
		return domain.Order{}, err
	}

	return orders[0], nil
}

func (r *orderRepository) mapOrders(ctx context.Context, rows []db.Order) ([]domain.Order, error) {
	orders := make([]domain.Order, 0, len(rows))
	if len(rows) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	itemRows, err := r.q.GetOrderItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("q.GetOrderItems: %w", err)
	}

	itemsByOrder := make(map[uuid.UUID][]domain.OrderItem, len(rows))
	for _, itemRow := range itemRows {
		item, err := mapOrderItemToDomain(itemRow)
		if err != nil {
			return nil, fmt.Errorf("mapOrderItemToDomain: %w", err)
		}

		itemsByOrder[itemRow.OrderID] = append(itemsByOrder[itemRow.OrderID], item)
	}

	for _, row := range rows {
		order, err := mapOrderToDomain(row, itemsByOrder[row.ID])
		if err != nil {
			return nil, fmt.Errorf("mapOrderToDomain: %w", err)
		}

		orders = append(orders, order)
	}

	return orders, nil
}

func mapOrderToDomain(row db.Order, items []domain.OrderItem) (domain.Order, error) {
	total, err := mapMoney(row.TotalAmount, row.TotalCurrency)
	if err != nil {
		return domain.Order{}, err
	}

	status, err := domain.ParseOrderStatus(row.Status)
	if err != nil {
		return domain.Order{}, err
	}

	method, err := domain.ParsePaymentMethod(row.PaymentMethod)
	if err != nil {
		return domain.Order{}, err
	}

	return domain.Order{
		ID:      row.ID,
		OwnerID: row.OwnerID,
		Items:   items,
		Total:   total,
		Status:  status,
		ShippingAddress: domain.Address{
			Street:  row.Street,
			City:    row.City,
			State:   row.State,
			ZipCode: row.ZipCode,
			Country: row.Country,
		},
		PaymentMethod: method,
		Notes:         row.Notes,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
		DeliveredAt:   row.DeliveredAt,
	}, nil
}

func mapOrderItemToDomain(row db.OrderItem) (domain.OrderItem, error) {
	price, err := mapMoney(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.OrderItem{}, err
	}

	return domain.OrderItem{
		ProductID: row.ProductID,
		Quantity:  int(row.Quantity),
		Price:     price,
	}, nil
}
