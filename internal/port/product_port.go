package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
	// LockProducts reads the rows FOR UPDATE in id order. Missing ids are absent from the map.
	LockProducts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Product, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	// DecrementStock lowers stock only if enough is left; false means nothing changed.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (bool, error)
}

type CatalogService interface {
	CreateProduct(ctx context.Context, actor domain.Identity, input domain.NewProduct) (domain.Product, error)
	UpdateProduct(ctx context.Context, actor domain.Identity, id uuid.UUID, update domain.ProductUpdate) (domain.Product, error)
	DeactivateProduct(ctx context.Context, actor domain.Identity, id uuid.UUID) error
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)

	CreateCategory(ctx context.Context, actor domain.Identity, input domain.NewCategory) (domain.Category, error)
	UpdateCategory(ctx context.Context, actor domain.Identity, id uuid.UUID, update domain.CategoryUpdate) (domain.Category, error)
	DeleteCategory(ctx context.Context, actor domain.Identity, id uuid.UUID) error
	GetCategory(ctx context.Context, id uuid.UUID) (domain.Category, error)
	// ListCategories returns every category, inactive ones included, for administration.
	ListCategories(ctx context.Context, actor domain.Identity) ([]domain.Category, error)
	// BrowseCategories returns active top-level categories with their active subcategories.
	BrowseCategories(ctx context.Context) ([]domain.CategoryNode, error)
	Dashboard(ctx context.Context, actor domain.Identity) (domain.DashboardStats, error)
}
