package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxStock is the largest stock level the store can hold.
const MaxStock = math.MaxInt32

type Product struct {
	ID          uuid.UUID
	SKU         string
	Name        string
	Description string
	Price       Money
	Stock       int
	IsActive    bool
	CategoryID  *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProduct carries the admin input for a catalog entry.
type NewProduct struct {
	SKU         string
	Name        string
	Description string
	Price       Money
	Stock       int
	CategoryID  *uuid.UUID
}

func (p NewProduct) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price must be >= 0", ErrInvalidArgument)
	}
	if p.Stock < 0 || p.Stock > MaxStock {
		return fmt.Errorf("%w: stock must be between 0 and %d", ErrInvalidArgument, MaxStock)
	}
	if p.CategoryID != nil && *p.CategoryID == uuid.Nil {
		return fmt.Errorf("%w: category id is empty", ErrInvalidArgument)
	}

	return nil
}

// ProductUpdate is a partial update; nil fields are left unchanged.
// A CategoryID of uuid.Nil removes the product from its category.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *Money
	Stock       *int
	IsActive    *bool
	CategoryID  *uuid.UUID
}

func (u ProductUpdate) Validate() error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	if u.Price != nil && u.Price.IsNegative() {
		return fmt.Errorf("%w: price must be >= 0", ErrInvalidArgument)
	}
	if u.Stock != nil && (*u.Stock < 0 || *u.Stock > MaxStock) {
		return fmt.Errorf("%w: stock must be between 0 and %d", ErrInvalidArgument, MaxStock)
	}

	return nil
}

func (u ProductUpdate) Apply(p Product) Product {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
	if u.IsActive != nil {
		p.IsActive = *u.IsActive
	}
	if u.CategoryID != nil {
		if *u.CategoryID == uuid.Nil {
			p.CategoryID = nil
		} else {
			categoryID := *u.CategoryID
			p.CategoryID = &categoryID
		}
	}

	return p
}

type ProductFilter struct {
	Query           string
	IncludeInactive bool
	CategoryID      *uuid.UUID
}
