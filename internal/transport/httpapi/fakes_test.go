package httpapi

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type fakeCatalog struct {
	products map[uuid.UUID]domain.Product
	created  []domain.NewProduct
	updates  []domain.ProductUpdate
	lastList domain.ProductFilter

	categories        map[uuid.UUID]domain.Category
	createdCategories []domain.NewCategory
	categoryUpdates   []domain.CategoryUpdate
	deleteErr         error
	stats             domain.DashboardStats
}

func (f *fakeCatalog) CreateProduct(_ context.Context, actor domain.Identity, input domain.NewProduct) (domain.Product, error) {
	if !actor.IsAdmin() {
		return domain.Product{}, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return domain.Product{}, err
	}

	f.created = append(f.created, input)

	return domain.Product{
		ID:       uuid.New(),
		SKU:      input.SKU,
		Name:     input.Name,
		Price:    input.Price,
		Stock:    input.Stock,
		IsActive: true,
	}, nil
}

func (f *fakeCatalog) UpdateProduct(_ context.Context, _ domain.Identity, id uuid.UUID, update domain.ProductUpdate) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, &domain.ProductNotFoundError{ProductID: id}
	}

	f.updates = append(f.updates, update)

	return update.Apply(p), nil
}

func (f *fakeCatalog) DeactivateProduct(_ context.Context, _ domain.Identity, id uuid.UUID) error {
	if _, ok := f.products[id]; !ok {
		return &domain.ProductNotFoundError{ProductID: id}
	}

	return nil
}

func (f *fakeCatalog) GetProduct(_ context.Context, id uuid.UUID) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, &domain.ProductNotFoundError{ProductID: id}
	}

	return p, nil
}

func (f *fakeCatalog) ListProducts(_ context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	f.lastList = filter

	var out []domain.Product
	for _, p := range f.products {
		if filter.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *filter.CategoryID) {
			continue
		}
		if p.IsActive || filter.IncludeInactive {
			out = append(out, p)
		}
	}

	return out, nil
}

func (f *fakeCatalog) CreateCategory(_ context.Context, actor domain.Identity, input domain.NewCategory) (domain.Category, error) {
	if !actor.IsAdmin() {
		return domain.Category{}, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return domain.Category{}, err
	}

	f.createdCategories = append(f.createdCategories, input)

	return domain.Category{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		ParentID:    input.ParentID,
		IsActive:    true,
	}, nil
}

func (f *fakeCatalog) UpdateCategory(_ context.Context, _ domain.Identity, id uuid.UUID, update domain.CategoryUpdate) (domain.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return domain.Category{}, &domain.CategoryNotFoundError{CategoryID: id}
	}

	f.categoryUpdates = append(f.categoryUpdates, update)

	return update.Apply(c), nil
}

func (f *fakeCatalog) DeleteCategory(_ context.Context, _ domain.Identity, id uuid.UUID) error {
	if _, ok := f.categories[id]; !ok {
		return &domain.CategoryNotFoundError{CategoryID: id}
	}

	return f.deleteErr
}

func (f *fakeCatalog) GetCategory(_ context.Context, id uuid.UUID) (domain.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return domain.Category{}, &domain.CategoryNotFoundError{CategoryID: id}
	}

	return c, nil
}

func (f *fakeCatalog) ListCategories(_ context.Context, actor domain.Identity) ([]domain.Category, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	out := make([]domain.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}

	return out, nil
}

func (f *fakeCatalog) BrowseCategories(context.Context) ([]domain.CategoryNode, error) {
	var active []domain.Category
	for _, c := range f.categories {
		if c.IsActive {
			active = append(active, c)
		}
	}

	return domain.CategoryTree(active), nil
}

func (f *fakeCatalog) Dashboard(_ context.Context, actor domain.Identity) (domain.DashboardStats, error) {
	if !actor.IsAdmin() {
		return domain.DashboardStats{}, domain.ErrForbidden
	}

	return f.stats, nil
}

type addCall struct {
	ownerID   string
	productID uuid.UUID
	quantity  int
}

type fakeCarts struct {
	view       domain.CartView
	previewErr error
	mutateErr  error
	adds       []addCall
	removed    []uuid.UUID
}

func (f *fakeCarts) AddItem(_ context.Context, ownerID string, productID uuid.UUID, quantity int) error {
	f.adds = append(f.adds, addCall{ownerID: ownerID, productID: productID, quantity: quantity})
	return f.mutateErr
}

func (f *fakeCarts) UpdateQuantity(_ context.Context, ownerID string, productID uuid.UUID, quantity int) error {
	f.adds = append(f.adds, addCall{ownerID: ownerID, productID: productID, quantity: quantity})
	return f.mutateErr
}

func (f *fakeCarts) RemoveItem(_ context.Context, _ string, productID uuid.UUID) error {
	f.removed = append(f.removed, productID)
	return nil
}

func (f *fakeCarts) GetCart(_ context.Context, ownerID string) (domain.CartView, error) {
	view := f.view
	view.OwnerID = ownerID
	return view, nil
}

func (f *fakeCarts) Clear(context.Context, string) error {
	return nil
}

func (f *fakeCarts) CheckoutPreview(_ context.Context, ownerID string) (domain.CartView, error) {
	if f.previewErr != nil {
		return domain.CartView{}, f.previewErr
	}

	return f.GetCart(context.Background(), ownerID)
}

type fakeCheckout struct {
	order   domain.Order
	err     error
	details domain.CheckoutDetails
	ownerID string
}

func (f *fakeCheckout) Checkout(_ context.Context, ownerID string, details domain.CheckoutDetails) (domain.Order, error) {
	f.ownerID = ownerID
	f.details = details

	if f.err != nil {
		return domain.Order{}, f.err
	}

	return f.order, nil
}

type fakeOrders struct {
	orders map[uuid.UUID]domain.Order
}

func (f *fakeOrders) GetOrder(_ context.Context, actor domain.Identity, id uuid.UUID) (domain.Order, error) {
	o, ok := f.orders[id]
	if !ok || (!actor.IsAdmin() && o.OwnerID != actor.UserID) {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	return o, nil
}

func (f *fakeOrders) ListOrders(_ context.Context, ownerID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if o.OwnerID == ownerID {
			out = append(out, o)
		}
	}

	return out, nil
}

func (f *fakeOrders) ListAllOrders(_ context.Context, _ domain.Identity, filter domain.OrderFilter) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if filter.Status == nil || *filter.Status == o.Status {
			out = append(out, o)
		}
	}

	return out, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, _ domain.Identity, id uuid.UUID, next domain.OrderStatus) (domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	if !o.Status.CanTransitionTo(next) {
		return domain.Order{}, &domain.InvalidTransitionError{From: o.Status, To: next}
	}

	o.Status = next
	f.orders[id] = o

	return o, nil
}
