package domain

import (
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	OwnerID string
	Items   []CartItem
}

type CartItem struct {
	ProductID uuid.UUID
	Quantity  int
	// Price is the catalog price when the line was first added.
	// It is shown in the cart only; checkout reads live prices.
	Price Money

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) Item(productID uuid.UUID) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item, true
		}
	}

	return CartItem{}, false
}

func (c Cart) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.ProductID)
	}

	return ids
}

// Total sums add-time line prices. A cart mixing currencies has no total.
func (c Cart) Total() (Money, error) {
	if c.IsEmpty() {
		return Money{}, nil
	}

	total := ZeroMoney(c.Items[0].Price.Currency)
	for _, item := range c.Items {
		var err error
		total, err = total.Add(item.Price.Mul(item.Quantity))
		if err != nil {
			return Money{}, err
		}
	}

	return total, nil
}

// CartLine is a cart item joined with the current catalog state of its product.
type CartLine struct {
	CartItem
	Name      string
	Stock     int
	IsActive  bool
	LivePrice Money
}

func (l CartLine) ExceedsStock() bool {
	return l.Quantity > l.Stock
}

type CartView struct {
	OwnerID string
	Lines   []CartLine
	Total   Money
}
