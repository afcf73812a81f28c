package httpapi

import (
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type productResponse struct {
	ID          string `json:"id"`
	SKU         string `json:"sku,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
	Stock       int    `json:"stock"`
	IsActive    bool   `json:"isActive"`
	CategoryID  string `json:"categoryId,omitempty"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID.String(),
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Amount.StringFixed(2),
		Currency:    p.Price.Currency.String(),
		Stock:       p.Stock,
		IsActive:    p.IsActive,
		CategoryID:  optionalID(p.CategoryID),
	}
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}

	return out
}

type categoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    string `json:"parentId,omitempty"`
	IsActive    bool   `json:"isActive"`
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		ParentID:    optionalID(c.ParentID),
		IsActive:    c.IsActive,
	}
}

type categoryNodeResponse struct {
	categoryResponse
	Subcategories []categoryResponse `json:"subcategories"`
}

func toCategoryNodeResponse(n domain.CategoryNode) categoryNodeResponse {
	subs := make([]categoryResponse, 0, len(n.Subcategories))
	for _, c := range n.Subcategories {
		subs = append(subs, toCategoryResponse(c))
	}

	return categoryNodeResponse{
		categoryResponse: toCategoryResponse(n.Category),
		Subcategories:    subs,
	}
}

type categoryProductsResponse struct {
	Category categoryResponse  `json:"category"`
	Products []productResponse `json:"products"`
}

type dashboardResponse struct {
	Products       int64 `json:"products"`
	ActiveProducts int64 `json:"activeProducts"`
	Categories     int64 `json:"categories"`
	Orders         int64 `json:"orders"`
	PendingOrders  int64 `json:"pendingOrders"`
}

func optionalID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}

	return id.String()
}

type cartLineResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	LivePrice string `json:"livePrice"`
	Subtotal  string `json:"subtotal"`
	Stock     int    `json:"stock"`
	InStock   bool   `json:"inStock"`
}

type cartResponse struct {
	Items       []cartLineResponse `json:"items"`
	TotalAmount string             `json:"totalAmount"`
	Currency    string             `json:"currency"`
}

func toCartResponse(v domain.CartView) cartResponse {
	items := make([]cartLineResponse, 0, len(v.Lines))
	for _, line := range v.Lines {
		items = append(items, cartLineResponse{
			ProductID: line.ProductID.String(),
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price.Amount.StringFixed(2),
			LivePrice: line.LivePrice.Amount.StringFixed(2),
			Subtotal:  line.Price.Mul(line.Quantity).Amount.StringFixed(2),
			Stock:     line.Stock,
			InStock:   line.IsActive && !line.ExceedsStock(),
		})
	}

	return cartResponse{
		Items:       items,
		TotalAmount: v.Total.Amount.StringFixed(2),
		Currency:    v.Total.Currency.String(),
	}
}

type orderItemResponse struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Subtotal  string `json:"subtotal"`
}

type addressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type orderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"userId"`
	Items           []orderItemResponse `json:"items"`
	TotalAmount     string              `json:"totalAmount"`
	Currency        string              `json:"currency"`
	Status          string              `json:"status"`
	ShippingAddress addressResponse     `json:"shippingAddress"`
	PaymentMethod   string              `json:"paymentMethod"`
	Notes           string              `json:"notes,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	DeliveredAt     *time.Time          `json:"deliveredAt,omitempty"`
}

func toOrderResponse(o domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResponse{
			ProductID: it.ProductID.String(),
			Quantity:  it.Quantity,
			Price:     it.Price.Amount.StringFixed(2),
			Subtotal:  it.Subtotal().Amount.StringFixed(2),
		})
	}

	return orderResponse{
		ID:          o.ID.String(),
		UserID:      o.OwnerID,
		Items:       items,
		TotalAmount: o.Total.Amount.StringFixed(2),
		Currency:    o.Total.Currency.String(),
		Status:      string(o.Status),
		ShippingAddress: addressResponse{
			Street:  o.ShippingAddress.Street,
			City:    o.ShippingAddress.City,
			State:   o.ShippingAddress.State,
			ZipCode: o.ShippingAddress.ZipCode,
			Country: o.ShippingAddress.Country,
		},
		PaymentMethod: string(o.PaymentMethod),
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		DeliveredAt:   o.DeliveredAt,
	}
}

func toOrderResponses(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}

	return out
}
