package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped},
	OrderStatusShipped:    {OrderStatusDelivered},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return status, nil
	}

	return "", fmt.Errorf("%w: unknown order status %q", ErrInvalidArgument, s)
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentCreditCard     PaymentMethod = "credit_card"
	PaymentDebitCard      PaymentMethod = "debit_card"
	PaymentPayPal         PaymentMethod = "paypal"
)

// ParsePaymentMethod defaults an empty value to cash on delivery.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	method := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	switch method {
	case "":
		return PaymentCashOnDelivery, nil
	case PaymentCashOnDelivery, PaymentCreditCard, PaymentDebitCard, PaymentPayPal:
		return method, nil
	}

	return "", fmt.Errorf("%w: unknown payment method %q", ErrInvalidArgument, s)
}

type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

func (a Address) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"zipCode", a.ZipCode},
		{"country", a.Country},
	}

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidArgument, f.name)
		}
	}

	return nil
}

type CheckoutDetails struct {
	ShippingAddress Address
	PaymentMethod   PaymentMethod
	Notes           string
}

func (d CheckoutDetails) Validate() error {
	if err := d.ShippingAddress.Validate(); err != nil {
		return err
	}

	if _, err := ParsePaymentMethod(string(d.PaymentMethod)); err != nil {
		return err
	}

	return nil
}

type OrderItem struct {
	ProductID uuid.UUID
	Quantity  int
	Price     Money
}

func (i OrderItem) Subtotal() Money {
	return i.Price.Mul(i.Quantity)
}

type Order struct {
	ID              uuid.UUID
	OwnerID         string
	Items           []OrderItem
	Total           Money
	Status          OrderStatus
	ShippingAddress Address
	PaymentMethod   PaymentMethod
	Notes           string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeliveredAt *time.Time
}

type OrderFilter struct {
	Status *OrderStatus
}

// NewOrder materializes a pending order from a cart against live catalog state.
// Lines are validated in cart order and the first violation aborts.
func NewOrder(id uuid.UUID, cart Cart, products map[uuid.UUID]Product, details CheckoutDetails, now time.Time) (Order, error) {
	if cart.IsEmpty() {
		return Order{}, ErrEmptyCart
	}

	items := make([]OrderItem, 0, len(cart.Items))
	var total Money

	for i, line := range cart.Items {
		product, ok := products[line.ProductID]
		if !ok || !product.IsActive {
			return Order{}, &ProductNotFoundError{ProductID: line.ProductID}
		}

		if line.Quantity < 1 {
			return Order{}, ErrInvalidQuantity
		}

		if line.Quantity > product.Stock {
			return Order{}, &InsufficientStockError{
				ProductID: line.ProductID,
				Requested: line.Quantity,
				Available: product.Stock,
			}
		}

		item := OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		}

		if i == 0 {
			total = ZeroMoney(product.Price.Currency)
		}

		var err error
		total, err = total.Add(item.Subtotal())
		if err != nil {
			return Order{}, err
		}

		items = append(items, item)
	}

	method := details.PaymentMethod
	if method == "" {
		method = PaymentCashOnDelivery
	}

	return Order{
		ID:              id,
		OwnerID:         cart.OwnerID,
		Items:           items,
		Total:           total,
		Status:          OrderStatusPending,
		ShippingAddress: details.ShippingAddress,
		PaymentMethod:   method,
		Notes:           strings.TrimSpace(details.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
