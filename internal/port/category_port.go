package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (domain.Category, error)
	GetCategoryForUpdate(ctx context.Context, id uuid.UUID) (domain.Category, error)
	ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) (domain.Category, error)
	// Dependents counts the products and subcategories that reference the category.
	Dependents(ctx context.Context, id uuid.UUID) (products, subcategories int64, err error)
	// DeleteCategory refuses with domain.ErrCategoryInUse while products or subcategories reference it.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type StatsRepository interface {
	DashboardStats(ctx context.Context) (domain.DashboardStats, error)
}
