package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/sirupsen/logrus"
)

func (s *catalogService) CreateCategory(ctx context.Context, actor domain.Identity, input domain.NewCategory) (domain.Category, error) {
	if !actor.IsAdmin() {
		return domain.Category{}, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return domain.Category{}, err
	}

	id := uuid.New()

	if input.ParentID != nil {
		parent, err := s.repos.Categories().GetCategory(ctx, *input.ParentID)
		if err != nil {
			return domain.Category{}, fmt.Errorf("repos.GetCategory: %w", err)
		}

		if err := domain.CheckParent(id, parent); err != nil {
			return domain.Category{}, err
		}
	}

	category, err := s.repos.Categories().CreateCategory(ctx, domain.Category{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		ParentID:    input.ParentID,
	})
	if err != nil {
		return domain.Category{}, fmt.Errorf("repos.CreateCategory: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"category_id": category.ID,
		"actor":       actor.UserID,
	}).Info("category created")

	return category, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, actor domain.Identity, id uuid.UUID, update domain.CategoryUpdate) (domain.Category, error) {
	if !actor.IsAdmin() {
		return domain.Category{}, domain.ErrForbidden
	}

	if err := update.Validate(); err != nil {
		return domain.Category{}, err
	}

	var updated domain.Category
	err := s.tx.InTx(ctx, func(repos port.Repositories) error {
		current, err := repos.Categories().GetCategoryForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("repos.GetCategoryForUpdate: %w", err)
		}

		next := update.Apply(current)

		if next.ParentID != nil && !equalIDs(current.ParentID, next.ParentID) {
			parent, err := repos.Categories().GetCategory(ctx, *next.ParentID)
			if err != nil {
				return fmt.Errorf("repos.GetCategory: %w", err)
			}

			if err := domain.CheckParent(id, parent); err != nil {
				return err
			}

			_, subcategories, err := repos.Categories().Dependents(ctx, id)
			if err != nil {
				return fmt.Errorf("repos.Dependents: %w", err)
			}

			if subcategories > 0 {
				return fmt.Errorf("%w: category[%s] has subcategories and cannot be nested", domain.ErrInvalidArgument, id)
			}
		}

		updated, err = repos.Categories().UpdateCategory(ctx, next)
		if err != nil {
			return fmt.Errorf("repos.UpdateCategory: %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Category{}, err
	}

	s.log.WithFields(logrus.Fields{
		"category_id": id,
		"actor":       actor.UserID,
		"is_active":   updated.IsActive,
	}).Info("category updated")

	return updated, nil
}

// DeleteCategory removes an empty category. Categories still holding products or subcategories are kept.
func (s *catalogService) DeleteCategory(ctx context.Context, actor domain.Identity, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.repos.Categories().DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("repos.DeleteCategory: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"category_id": id,
		"actor":       actor.UserID,
	}).Info("category deleted")

	return nil
}

func (s *catalogService) GetCategory(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	category, err := s.repos.Categories().GetCategory(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("repos.GetCategory: %w", err)
	}

	return category, nil
}

func (s *catalogService) ListCategories(ctx context.Context, actor domain.Identity) ([]domain.Category, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	categories, err := s.repos.Categories().ListCategories(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("repos.ListCategories: %w", err)
	}

	return categories, nil
}

func (s *catalogService) BrowseCategories(ctx context.Context) ([]domain.CategoryNode, error) {
	categories, err := s.repos.Categories().ListCategories(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("repos.ListCategories: %w", err)
	}

	return domain.CategoryTree(categories), nil
}

func (s *catalogService) Dashboard(ctx context.Context, actor domain.Identity) (domain.DashboardStats, error) {
	if !actor.IsAdmin() {
		return domain.DashboardStats{}, domain.ErrForbidden
	}

	stats, err := s.repos.Stats().DashboardStats(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("repos.DashboardStats: %w", err)
	}

	return stats, nil
}

func equalIDs(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
