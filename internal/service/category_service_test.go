package service_test

import (
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func (suite *serviceSuite) createCategory(name string, parentID *uuid.UUID) domain.Category {
	t := suite.T()

	category, err := suite.catalog.CreateCategory(t.Context(), admin, domain.NewCategory{Name: name, ParentID: parentID})
	require.NoError(t, err)

	return category
}

func (suite *serviceSuite) TestCreateCategory() {
	defer suite.deleteAll()

	root := suite.createCategory("Home", nil)
	child := suite.createCategory("Lighting", &root.ID)

	tests := []struct {
		name   string
		actor  domain.Identity
		input  domain.NewCategory
		wantIs error
	}{
		{
			name:  "top level: ok",
			actor: admin,
			input: domain.NewCategory{Name: "Garden", Description: "outdoor"},
		},
		{
			name:  "under top level parent: ok",
			actor: admin,
			input: domain.NewCategory{Name: "Furniture", ParentID: &root.ID},
		},
		{
			name:   "user: forbidden",
			actor:  user,
			input:  domain.NewCategory{Name: "Garden"},
			wantIs: domain.ErrForbidden,
		},
		{
			name:   "blank name: invalid argument",
			actor:  admin,
			input:  domain.NewCategory{Name: "  "},
			wantIs: domain.ErrInvalidArgument,
		},
		{
			name:   "unknown parent: category not found",
			actor:  admin,
			input:  domain.NewCategory{Name: "Garden", ParentID: ptr(uuid.New())},
			wantIs: domain.ErrCategoryNotFound,
		},
		{
			name:   "parent is a subcategory: invalid argument",
			actor:  admin,
			input:  domain.NewCategory{Name: "Lamps", ParentID: &child.ID},
			wantIs: domain.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			created, err := suite.catalog.CreateCategory(ctx, tt.actor, tt.input)
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
				return
			}
			require.NoError(t, err)

			got, err := suite.catalog.GetCategory(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.input.Name, got.Name)
			assert.Equal(t, tt.input.ParentID, got.ParentID)
			assert.True(t, got.IsActive)
		})
	}
}

func (suite *serviceSuite) TestUpdateCategory() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	home := suite.createCategory("Home", nil)
	garden := suite.createCategory("Garden", nil)
	lighting := suite.createCategory("Lighting", &home.ID)

	moved, err := suite.catalog.UpdateCategory(ctx, admin, lighting.ID, domain.CategoryUpdate{ParentID: &garden.ID})
	require.NoError(t, err)
	assert.Equal(t, &garden.ID, moved.ParentID)

	top, err := suite.catalog.UpdateCategory(ctx, admin, lighting.ID, domain.CategoryUpdate{ParentID: ptr(uuid.Nil)})
	require.NoError(t, err)
	assert.True(t, top.IsTopLevel())

	_, err = suite.catalog.UpdateCategory(ctx, admin, lighting.ID, domain.CategoryUpdate{ParentID: &lighting.ID})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	// a category holding subcategories stays top level
	suite.createCategory("Roses", &garden.ID)
	_, err = suite.catalog.UpdateCategory(ctx, admin, garden.ID, domain.CategoryUpdate{ParentID: &home.ID})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = suite.catalog.UpdateCategory(ctx, admin, uuid.New(), domain.CategoryUpdate{Name: ptr("x")})
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)

	_, err = suite.catalog.UpdateCategory(ctx, user, home.ID, domain.CategoryUpdate{Name: ptr("x")})
	require.ErrorIs(t, err, domain.ErrForbidden)

	renamed, err := suite.catalog.UpdateCategory(ctx, admin, home.ID, domain.CategoryUpdate{Name: ptr(" House "), IsActive: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "House", renamed.Name)
	assert.False(t, renamed.IsActive)
}

func (suite *serviceSuite) TestDeleteCategory() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	home := suite.createCategory("Home", nil)
	lighting := suite.createCategory("Lighting", &home.ID)

	product, err := suite.catalog.CreateProduct(ctx, admin, domain.NewProduct{
		Name: "Lamp", Price: usd("19.99"), Stock: 1, CategoryID: &lighting.ID,
	})
	require.NoError(t, err)

	err = suite.catalog.DeleteCategory(ctx, admin, home.ID)
	var inUse *domain.CategoryInUseError
	require.ErrorAs(t, err, &inUse)
	assert.EqualValues(t, 1, inUse.Subcategories)

	err = suite.catalog.DeleteCategory(ctx, admin, lighting.ID)
	require.ErrorAs(t, err, &inUse)
	assert.EqualValues(t, 1, inUse.Products)

	require.ErrorIs(t, suite.catalog.DeleteCategory(ctx, user, lighting.ID), domain.ErrForbidden)

	_, err = suite.catalog.UpdateProduct(ctx, admin, product.ID, domain.ProductUpdate{CategoryID: ptr(uuid.Nil)})
	require.NoError(t, err)

	require.NoError(t, suite.catalog.DeleteCategory(ctx, admin, lighting.ID))
	require.NoError(t, suite.catalog.DeleteCategory(ctx, admin, home.ID))

	err = suite.catalog.DeleteCategory(ctx, admin, home.ID)
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func (suite *serviceSuite) TestBrowseCategories() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	home := suite.createCategory("Home", nil)
	suite.createCategory("Lighting", &home.ID)
	suite.createCategory("Bath", &home.ID)
	archived := suite.createCategory("Archive", nil)
	suite.createCategory("Old lamps", &archived.ID)

	_, err := suite.catalog.UpdateCategory(ctx, admin, archived.ID, domain.CategoryUpdate{IsActive: ptr(false)})
	require.NoError(t, err)

	tree, err := suite.catalog.BrowseCategories(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "Home", tree[0].Name)
	require.Len(t, tree[0].Subcategories, 2)
	assert.Equal(t, "Bath", tree[0].Subcategories[0].Name)
	assert.Equal(t, "Lighting", tree[0].Subcategories[1].Name)

	all, err := suite.catalog.ListCategories(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	_, err = suite.catalog.ListCategories(ctx, user)
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func (suite *serviceSuite) TestListProducts_byCategory() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	lighting := suite.createCategory("Lighting", nil)

	lamp, err := suite.catalog.CreateProduct(ctx, admin, domain.NewProduct{
		Name: "Lamp", Price: usd("19.99"), Stock: 1, CategoryID: &lighting.ID,
	})
	require.NoError(t, err)
	suite.createProduct("5.00", 1)

	products, err := suite.catalog.ListProducts(ctx, domain.ProductFilter{CategoryID: &lighting.ID})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, lamp.ID, products[0].ID)
	assert.Equal(t, &lighting.ID, products[0].CategoryID)
}

func (suite *serviceSuite) TestDashboard() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	suite.createCategory("Home", nil)
	p := suite.createProduct("10.00", 5)
	suite.createProduct("3.00", 5)
	require.NoError(t, suite.catalog.DeactivateProduct(ctx, admin, p.ID))

	ownerID := user.UserID
	require.NoError(t, suite.carts.AddItem(ctx, ownerID, suite.createProduct("1.00", 2).ID, 1))
	_, err := suite.checkout.Checkout(ctx, ownerID, details())
	require.NoError(t, err)

	stats, err := suite.catalog.Dashboard(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.DashboardStats{
		Products:       3,
		ActiveProducts: 2,
		Categories:     1,
		Orders:         1,
		PendingOrders:  1,
	}, stats)

	_, err = suite.catalog.Dashboard(ctx, user)
	require.ErrorIs(t, err, domain.ErrForbidden)
}
