package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category groups products. Categories nest one level deep: a parent must itself be top level.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	ParentID    *uuid.UUID
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Category) IsTopLevel() bool {
	return c.ParentID == nil
}

type NewCategory struct {
	Name        string
	Description string
	ParentID    *uuid.UUID
}

func (c NewCategory) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	if c.ParentID != nil && *c.ParentID == uuid.Nil {
		return fmt.Errorf("%w: parent id is empty", ErrInvalidArgument)
	}

	return nil
}

// CategoryUpdate is a partial update. A ParentID of uuid.Nil moves the category to the top level.
type CategoryUpdate struct {
	Name        *string
	Description *string
	ParentID    *uuid.UUID
	IsActive    *bool
}

func (u CategoryUpdate) Validate() error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}

	return nil
}

func (u CategoryUpdate) Apply(c Category) Category {
	if u.Name != nil {
		c.Name = strings.TrimSpace(*u.Name)
	}
	if u.Description != nil {
		c.Description = strings.TrimSpace(*u.Description)
	}
	if u.ParentID != nil {
		if *u.ParentID == uuid.Nil {
			c.ParentID = nil
		} else {
			parentID := *u.ParentID
			c.ParentID = &parentID
		}
	}
	if u.IsActive != nil {
		c.IsActive = *u.IsActive
	}

	return c
}

// CheckParent reports whether parent may hold child.
func CheckParent(childID uuid.UUID, parent Category) error {
	if parent.ID == childID {
		return fmt.Errorf("%w: category cannot be its own parent", ErrInvalidArgument)
	}
	if !parent.IsTopLevel() {
		return fmt.Errorf("%w: parent category[%s] is itself a subcategory", ErrInvalidArgument, parent.ID)
	}

	return nil
}

type CategoryNode struct {
	Category
	Subcategories []Category
}

// CategoryTree nests subcategories under their parents, keeping input order.
// Subcategories whose parent is missing from categories are dropped.
func CategoryTree(categories []Category) []CategoryNode {
	index := make(map[uuid.UUID]int)

	var nodes []CategoryNode
	for _, c := range categories {
		if c.IsTopLevel() {
			index[c.ID] = len(nodes)
			nodes = append(nodes, CategoryNode{Category: c})
		}
	}

	for _, c := range categories {
		if c.IsTopLevel() {
			continue
		}
		if i, ok := index[*c.ParentID]; ok {
			nodes[i].Subcategories = append(nodes[i].Subcategories, c)
		}
	}

	return nodes
}

// DashboardStats are the admin overview counters.
type DashboardStats struct {
	Products       int64
	ActiveProducts int64
	Categories     int64
	Orders         int64
	PendingOrders  int64
}
