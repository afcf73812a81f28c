package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"
)

type cartService struct {
	repos    port.Repositories
	tx       port.Transactor
	currency currency.Unit
	log      logrus.FieldLogger
}

func NewCart(repos port.Repositories, tx port.Transactor, unit currency.Unit, log logrus.FieldLogger) port.CartService {
	return &cartService{
		repos:    repos,
		tx:       tx,
		currency: unit,
		log:      log.WithField("component", "cart"),
	}
}

// AddItem checks the combined quantity against stock; the check is advisory
// and checkout validates again.
func (s *cartService) AddItem(ctx context.Context, ownerID string, productID uuid.UUID, quantity int) error {
	if ownerID == "" {
		return fmt.Errorf("%w: ownerID is empty", domain.ErrInvalidArgument)
	}
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	return s.tx.InTx(ctx, func(repos port.Repositories) error {
		product, err := activeProduct(ctx, repos, productID)
		if err != nil {
			return err
		}

		cart, err := repos.Carts().GetCart(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("repos.GetCart: %w", err)
		}

		existing, _ := cart.Item(productID)
		if total := existing.Quantity + quantity; total > product.Stock {
			return &domain.InsufficientStockError{
				ProductID: productID,
				Requested: total,
				Available: product.Stock,
			}
		}

		err = repos.Carts().AddItem(ctx, ownerID, domain.CartItem{
			ProductID: productID,
			Quantity:  quantity,
			Price:     product.Price,
		})
		if err != nil {
			return fmt.Errorf("repos.AddItem: %w", err)
		}

		return nil
	})
}

func (s *cartService) UpdateQuantity(ctx context.Context, ownerID string, productID uuid.UUID, quantity int) error {
	if ownerID == "" {
		return fmt.Errorf("%w: ownerID is empty", domain.ErrInvalidArgument)
	}
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	return s.tx.InTx(ctx, func(repos port.Repositories) error {
		product, err := activeProduct(ctx, repos, productID)
		if err != nil {
			return err
		}

		if quantity > product.Stock {
			return &domain.InsufficientStockError{
				ProductID: productID,
				Requested: quantity,
				Available: product.Stock,
			}
		}

		found, err := repos.Carts().SetQuantity(ctx, ownerID, productID, quantity)
		if err != nil {
			return fmt.Errorf("repos.SetQuantity: %w", err)
		}

		if !found {
			return domain.ErrItemNotFound
		}

		return nil
	})
}

func (s *cartService) RemoveItem(ctx context.Context, ownerID string, productID uuid.UUID) error {
	if ownerID == "" {
		return fmt.Errorf("%w: ownerID is empty", domain.ErrInvalidArgument)
	}

	if _, err := s.repos.Carts().DeleteItem(ctx, ownerID, productID); err != nil {
		return fmt.Errorf("repos.DeleteItem: %w", err)
	}

	return nil
}

// GetCart joins cart lines with live product data. The total uses the prices
// captured when each line was added.
func (s *cartService) GetCart(ctx context.Context, ownerID string) (domain.CartView, error) {
	if ownerID == "" {
		return domain.CartView{}, fmt.Errorf("%w: ownerID is empty", domain.ErrInvalidArgument)
	}

	lines, err := s.repos.Carts().GetCartLines(ctx, ownerID)
	if err != nil {
		return domain.CartView{}, fmt.Errorf("repos.GetCartLines: %w", err)
	}

	items := make([]domain.CartItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, line.CartItem)
	}

	total := domain.ZeroMoney(s.currency)
	if len(items) > 0 {
		total, err = domain.Cart{OwnerID: ownerID, Items: items}.Total()
		if err != nil {
			return domain.CartView{}, err
		}
	}

	return domain.CartView{
		OwnerID: ownerID,
		Lines:   lines,
		Total:   total,
	}, nil
}

func (s *cartService) Clear(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return fmt.Errorf("%w: ownerID is empty", domain.ErrInvalidArgument)
	}

	if _, err := s.repos.Carts().DeleteCart(ctx, ownerID); err != nil {
		return fmt.Errorf("repos.DeleteCart: %w", err)
	}

	return nil
}

// CheckoutPreview returns the cart only if it could be checked out right now.
func (s *cartService) CheckoutPreview(ctx context.Context, ownerID string) (domain.CartView, error) {
	view, err := s.GetCart(ctx, ownerID)
	if err != nil {
		return domain.CartView{}, err
	}

	if len(view.Lines) == 0 {
		return domain.CartView{}, domain.ErrEmptyCart
	}

	for _, line := range view.Lines {
		if !line.IsActive {
			return domain.CartView{}, &domain.ProductNotFoundError{ProductID: line.ProductID}
		}

		if line.ExceedsStock() {
			return domain.CartView{}, &domain.InsufficientStockError{
				ProductID: line.ProductID,
				Requested: line.Quantity,
				Available: line.Stock,
			}
		}
	}

	return view, nil
}

func activeProduct(ctx context.Context, repos port.Repositories, productID uuid.UUID) (domain.Product, error) {
	product, err := repos.Products().GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("repos.GetProduct: %w", err)
	}

	if !product.IsActive {
		return domain.Product{}, &domain.ProductNotFoundError{ProductID: productID}
	}

	return product, nil
}
