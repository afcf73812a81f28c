package service_test

import (
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func (suite *serviceSuite) TestCreateProduct() {
	defer suite.deleteAll()

	tests := []struct {
		name   string
		actor  domain.Identity
		input  domain.NewProduct
		wantIs error
	}{
		{
			name:  "admin creates product: ok",
			actor: admin,
			input: domain.NewProduct{SKU: "SKU-1", Name: "Lamp", Price: usd("19.99"), Stock: 3},
		},
		{
			name:   "user creates product: forbidden",
			actor:  user,
			input:  domain.NewProduct{Name: "Lamp", Price: usd("19.99")},
			wantIs: domain.ErrForbidden,
		},
		{
			name:   "missing name: invalid argument",
			actor:  admin,
			input:  domain.NewProduct{Price: usd("1.00")},
			wantIs: domain.ErrInvalidArgument,
		},
		{
			name:   "negative stock: invalid argument",
			actor:  admin,
			input:  domain.NewProduct{Name: "Lamp", Price: usd("1.00"), Stock: -1},
			wantIs: domain.ErrInvalidArgument,
		},
		{
			name:   "stock beyond storage range: invalid argument",
			actor:  admin,
			input:  domain.NewProduct{Name: "Lamp", Price: usd("1.00"), Stock: domain.MaxStock + 1},
			wantIs: domain.ErrInvalidArgument,
		},
		{
			name:   "unknown category: category not found",
			actor:  admin,
			input:  domain.NewProduct{Name: "Lamp", Price: usd("1.00"), CategoryID: ptr(uuid.New())},
			wantIs: domain.ErrCategoryNotFound,
		},
		{
			name:   "foreign currency: currency mismatch",
			actor:  admin,
			input:  domain.NewProduct{Name: "Lamp", Price: domain.NewMoney(usd("1.00").Amount, currency.EUR)},
			wantIs: domain.ErrCurrencyMismatch,
		},
		{
			name:   "duplicate sku: invalid argument",
			actor:  admin,
			input:  domain.NewProduct{SKU: "SKU-1", Name: "Other lamp", Price: usd("5.00")},
			wantIs: domain.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			product, err := suite.catalog.CreateProduct(ctx, tt.actor, tt.input)
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
				return
			}
			require.NoError(t, err)

			assert.NotEqual(t, uuid.Nil, product.ID)
			assert.True(t, product.IsActive)

			got, err := suite.catalog.GetProduct(ctx, product.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.input.Name, got.Name)
			assert.True(t, got.Price.Equal(tt.input.Price))
			assert.Equal(t, tt.input.Stock, got.Stock)
		})
	}
}

func (suite *serviceSuite) TestUpdateProduct() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := suite.createProduct("10.00", 2)

	name := "Renamed"
	stock := 7
	updated, err := suite.catalog.UpdateProduct(ctx, admin, product.ID, domain.ProductUpdate{Name: &name, Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 7, updated.Stock)
	assert.True(t, updated.Price.Equal(product.Price))

	_, err = suite.catalog.UpdateProduct(ctx, user, product.ID, domain.ProductUpdate{Stock: &stock})
	require.ErrorIs(t, err, domain.ErrForbidden)

	negative := -1
	_, err = suite.catalog.UpdateProduct(ctx, admin, product.ID, domain.ProductUpdate{Stock: &negative})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = suite.catalog.UpdateProduct(ctx, admin, uuid.New(), domain.ProductUpdate{Stock: &stock})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func (suite *serviceSuite) TestDeactivateProduct() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := suite.createProduct("10.00", 2)

	require.ErrorIs(t, suite.catalog.DeactivateProduct(ctx, user, product.ID), domain.ErrForbidden)
	require.NoError(t, suite.catalog.DeactivateProduct(ctx, admin, product.ID))

	listed, err := suite.catalog.ListProducts(ctx, domain.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, listed)

	listed, err = suite.catalog.ListProducts(ctx, domain.ProductFilter{IncludeInactive: true})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.False(t, listed[0].IsActive)
}
