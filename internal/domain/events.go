package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
)

type OrderEventItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

type OrderPlaced struct {
	EventID   string           `json:"event_id"`
	Event     string           `json:"event"`
	OrderID   string           `json:"order_id"`
	OwnerID   string           `json:"owner_id"`
	Items     []OrderEventItem `json:"items"`
	Total     string           `json:"total"`
	Currency  string           `json:"currency"`
	Timestamp time.Time        `json:"timestamp"`
}

type OrderStatusChanged struct {
	EventID   string    `json:"event_id"`
	Event     string    `json:"event"`
	OrderID   string    `json:"order_id"`
	OwnerID   string    `json:"owner_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Timestamp time.Time `json:"timestamp"`
}

func NewOrderPlaced(eventID uuid.UUID, o Order) OrderPlaced {
	items := make([]OrderEventItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderEventItem{
			ProductID: it.ProductID.String(),
			Quantity:  it.Quantity,
			Price:     it.Price.Amount.StringFixed(2),
		})
	}

	return OrderPlaced{
		EventID:   eventID.String(),
		Event:     EventOrderPlaced,
		OrderID:   o.ID.String(),
		OwnerID:   o.OwnerID,
		Items:     items,
		Total:     o.Total.Amount.StringFixed(2),
		Currency:  o.Total.Currency.String(),
		Timestamp: o.CreatedAt.UTC(),
	}
}

func NewOrderStatusChanged(eventID uuid.UUID, o Order, from OrderStatus, at time.Time) OrderStatusChanged {
	return OrderStatusChanged{
		EventID:   eventID.String(),
		Event:     EventOrderStatusChanged,
		OrderID:   o.ID.String(),
		OwnerID:   o.OwnerID,
		From:      string(from),
		To:        string(o.Status),
		Timestamp: at.UTC(),
	}
}

// OutboxMessage is an event waiting to be relayed to the broker.
type OutboxMessage struct {
	ID        int64
	EventID   uuid.UUID
	Topic     string
	Key       string
	Payload   []byte
	CreatedAt time.Time
}
