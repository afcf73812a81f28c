package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

const uniqueViolation = "23505"

type productRepository struct {
	q *db.Queries
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q: db.New(pool),
	}
}

func (r *productRepository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if product.ID == uuid.Nil {
		return domain.Product{}, fmt.Errorf("product ID is empty")
	}
	if product.Stock > domain.MaxStock {
		return domain.Product{}, fmt.Errorf("%w: stock[%d] is out of range", domain.ErrInvalidArgument, product.Stock)
	}

	var sku *string
	if s := strings.TrimSpace(product.SKU); s != "" {
		sku = &s
	}

	row, err := r.q.CreateProduct(ctx, db.CreateProductParams{
		ID:            product.ID,
		Sku:           sku,
		Name:          product.Name,
		Description:   product.Description,
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency.String(),
		Stock:         int32(product.Stock),
		CategoryID:    product.CategoryID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.Product{}, fmt.Errorf("%w: sku[%s] already exists", domain.ErrInvalidArgument, product.SKU)
		}
		if isForeignKeyViolation(err) && product.CategoryID != nil {
			return domain.Product{}, &domain.CategoryNotFoundError{CategoryID: *product.CategoryID}
		}
		return domain.Product{}, fmt.Errorf("q.CreateProduct: %w", err)
	}

	product.IsActive = true
	product.CreatedAt = row.CreatedAt
	product.UpdatedAt = row.UpdatedAt

	return product, nil
}

func (r *productRepository) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	row, err := r.q.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{ProductID: id}
		}
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	product, err := mapProductToDomain(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapProductToDomain: %w", err)
	}

	return product, nil
}

func (r *productRepository) LockProducts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Product, error) {
	result := make(map[uuid.UUID]domain.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := r.q.LockProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("q.LockProducts: %w", err)
	}

	for _, row := range rows {
		product, err := mapProductToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapProductToDomain: %w", err)
		}

		result[product.ID] = product
	}

	return result, nil
}

func (r *productRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	params := db.ListProductsParams{
		IncludeInactive: filter.IncludeInactive,
		CategoryID:      filter.CategoryID,
	}
	if query := strings.TrimSpace(filter.Query); query != "" {
		params.Query = &query
	}

	rows, err := r.q.ListProducts(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		product, err := mapProductToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapProductToDomain: %w", err)
		}

		products = append(products, product)
	}

	return products, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if product.Stock > domain.MaxStock {
		return domain.Product{}, fmt.Errorf("%w: stock[%d] is out of range", domain.ErrInvalidArgument, product.Stock)
	}

	updatedAt, err := r.q.UpdateProduct(ctx, db.UpdateProductParams{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency.String(),
		Stock:         int32(product.Stock),
		IsActive:      product.IsActive,
		CategoryID:    product.CategoryID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{ProductID: product.ID}
		}
		if isForeignKeyViolation(err) && product.CategoryID != nil {
			return domain.Product{}, &domain.CategoryNotFoundError{CategoryID: *product.CategoryID}
		}
		return domain.Product{}, fmt.Errorf("q.UpdateProduct: %w", err)
	}

	product.UpdatedAt = updatedAt

	return product, nil
}

func (r *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (bool, error) {
	if quantity < 1 {
		return false, domain.ErrInvalidQuantity
	}

	rowsAffected, err := r.q.DecrementStock(ctx, db.DecrementStockParams{
		Quantity: int32(quantity),
		ID:       id,
	})
	if err != nil {
		return false, fmt.Errorf("q.DecrementStock: %w", err)
	}

	return rowsAffected > 0, nil
}

func mapProductToDomain(row db.Product) (domain.Product, error) {
	price, err := mapMoney(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.Product{}, err
	}

	var sku string
	if row.Sku != nil {
		sku = *row.Sku
	}

	return domain.Product{
		ID:          row.ID,
		SKU:         sku,
		Name:        row.Name,
		Description: row.Description,
		Price:       price,
		Stock:       int(row.Stock),
		IsActive:    row.IsActive,
		CategoryID:  row.CategoryID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}
