package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"
)

type catalogService struct {
	repos    port.Repositories
	tx       port.Transactor
	currency currency.Unit
	log      logrus.FieldLogger
}

func NewCatalog(repos port.Repositories, tx port.Transactor, unit currency.Unit, log logrus.FieldLogger) port.CatalogService {
	return &catalogService{
		repos:    repos,
		tx:       tx,
		currency: unit,
		log:      log.WithField("component", "catalog"),
	}
}

func (s *catalogService) CreateProduct(ctx context.Context, actor domain.Identity, input domain.NewProduct) (domain.Product, error) {
	if !actor.IsAdmin() {
		return domain.Product{}, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return domain.Product{}, err
	}

	if err := s.checkCurrency(input.Price); err != nil {
		return domain.Product{}, err
	}

	product, err := s.repos.Products().CreateProduct(ctx, domain.Product{
		ID:          uuid.New(),
		SKU:         strings.TrimSpace(input.SKU),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("repos.CreateProduct: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"product_id": product.ID,
		"actor":      actor.UserID,
	}).Info("product created")

	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, actor domain.Identity, id uuid.UUID, update domain.ProductUpdate) (domain.Product, error) {
	if !actor.IsAdmin() {
		return domain.Product{}, domain.ErrForbidden
	}

	if err := update.Validate(); err != nil {
		return domain.Product{}, err
	}

	if update.Price != nil {
		if err := s.checkCurrency(*update.Price); err != nil {
			return domain.Product{}, err
		}
	}

	var updated domain.Product
	err := s.tx.InTx(ctx, func(repos port.Repositories) error {
		locked, err := repos.Products().LockProducts(ctx, []uuid.UUID{id})
		if err != nil {
			return fmt.Errorf("repos.LockProducts: %w", err)
		}

		current, ok := locked[id]
		if !ok {
			return &domain.ProductNotFoundError{ProductID: id}
		}

		updated, err = repos.Products().UpdateProduct(ctx, update.Apply(current))
		if err != nil {
			return fmt.Errorf("repos.UpdateProduct: %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Product{}, err
	}

	s.log.WithFields(logrus.Fields{
		"product_id": id,
		"actor":      actor.UserID,
		"stock":      updated.Stock,
		"price":      updated.Price.String(),
		"is_active":  updated.IsActive,
	}).Info("product updated")

	return updated, nil
}

// DeactivateProduct hides the product from the catalog. Orders keep referencing it.
func (s *catalogService) DeactivateProduct(ctx context.Context, actor domain.Identity, id uuid.UUID) error {
	inactive := false

	_, err := s.UpdateProduct(ctx, actor, id, domain.ProductUpdate{IsActive: &inactive})

	return err
}

func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	product, err := s.repos.Products().GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("repos.GetProduct: %w", err)
	}

	return product, nil
}

func (s *catalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	products, err := s.repos.Products().ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("repos.ListProducts: %w", err)
	}

	return products, nil
}

func (s *catalogService) checkCurrency(price domain.Money) error {
	if price.Currency != s.currency {
		return fmt.Errorf("%w: catalog is priced in %s, got %s", domain.ErrCurrencyMismatch, s.currency, price.Currency)
	}

	return nil
}
