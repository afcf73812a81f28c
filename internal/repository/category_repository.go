package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

const foreignKeyViolation = "23503"

type categoryRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCategory(pool *pgxpool.Pool) port.CategoryRepository {
	return &categoryRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	if category.ID == uuid.Nil {
		return domain.Category{}, fmt.Errorf("category ID is empty")
	}

	row, err := r.q.CreateCategory(ctx, db.CreateCategoryParams{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		ParentID:    category.ParentID,
	})
	if err != nil {
		if isForeignKeyViolation(err) && category.ParentID != nil {
			return domain.Category{}, &domain.CategoryNotFoundError{CategoryID: *category.ParentID}
		}
		return domain.Category{}, fmt.Errorf("q.CreateCategory: %w", err)
	}

	category.IsActive = true
	category.CreatedAt = row.CreatedAt
	category.UpdatedAt = row.UpdatedAt

	return category, nil
}

func (r *categoryRepository) GetCategory(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	row, err := r.q.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Category{}, &domain.CategoryNotFoundError{CategoryID: id}
		}
		return domain.Category{}, fmt.Errorf("q.GetCategory: %w", err)
	}

	return mapCategoryToDomain(row), nil
}

func (r *categoryRepository) GetCategoryForUpdate(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	row, err := r.q.GetCategoryForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Category{}, &domain.CategoryNotFoundError{CategoryID: id}
		}
		return domain.Category{}, fmt.Errorf("q.GetCategoryForUpdate: %w", err)
	}

	return mapCategoryToDomain(row), nil
}

func (r *categoryRepository) ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error) {
	rows, err := r.q.ListCategories(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("q.ListCategories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryToDomain(row))
	}

	return categories, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	updatedAt, err := r.q.UpdateCategory(ctx, db.UpdateCategoryParams{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		ParentID:    category.ParentID,
		IsActive:    category.IsActive,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Category{}, &domain.CategoryNotFoundError{CategoryID: category.ID}
		}
		if isForeignKeyViolation(err) && category.ParentID != nil {
			return domain.Category{}, &domain.CategoryNotFoundError{CategoryID: *category.ParentID}
		}
		return domain.Category{}, fmt.Errorf("q.UpdateCategory: %w", err)
	}

	category.UpdatedAt = updatedAt

	return category, nil
}

func (r *categoryRepository) Dependents(ctx context.Context, id uuid.UUID) (int64, int64, error) {
	row, err := r.q.CountCategoryDependents(ctx, id)
	if err != nil {
		return 0, 0, fmt.Errorf("q.CountCategoryDependents: %w", err)
	}

	return row.Products, row.Subcategories, nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		if _, err := q.GetCategoryForUpdate(ctx, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return struct{}{}, &domain.CategoryNotFoundError{CategoryID: id}
			}
			return struct{}{}, fmt.Errorf("q.GetCategoryForUpdate: %w", err)
		}

		dependents, err := q.CountCategoryDependents(ctx, id)
		if err != nil {
			return struct{}{}, fmt.Errorf("q.CountCategoryDependents: %w", err)
		}

		if dependents.Products > 0 || dependents.Subcategories > 0 {
			return struct{}{}, &domain.CategoryInUseError{
				CategoryID:    id,
				Products:      dependents.Products,
				Subcategories: dependents.Subcategories,
			}
		}

		if _, err := q.DeleteCategory(ctx, id); err != nil {
			// a product or subcategory attached after the count
			if isForeignKeyViolation(err) {
				return struct{}{}, &domain.CategoryInUseError{CategoryID: id}
			}
			return struct{}{}, fmt.Errorf("q.DeleteCategory: %w", err)
		}

		return struct{}{}, nil
	})

	return err
}

func mapCategoryToDomain(row db.Category) domain.Category {
	return domain.Category{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		ParentID:    row.ParentID,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

type statsRepository struct {
	q *db.Queries
}

func NewStats(pool *pgxpool.Pool) port.StatsRepository {
	return &statsRepository{
		q: db.New(pool),
	}
}

func (r *statsRepository) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	row, err := r.q.GetDashboardStats(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("q.GetDashboardStats: %w", err)
	}

	return domain.DashboardStats{
		Products:       row.Products,
		ActiveProducts: row.ActiveProducts,
		Categories:     row.Categories,
		Orders:         row.Orders,
		PendingOrders:  row.PendingOrders,
	}, nil
}
