package service_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *serviceSuite) TestAddItem() {
	defer suite.deleteAll()

	product := suite.createProduct("20.00", 5)
	inactive := suite.createProduct("5.00", 5)
	require.NoError(suite.T(), suite.catalog.DeactivateProduct(suite.T().Context(), admin, inactive.ID))

	tests := []struct {
		name      string
		ownerID   string
		productID uuid.UUID
		quantity  int
		wantIs    error
	}{
		{
			name:      "add within stock: ok",
			ownerID:   gofakeit.UUID(),
			productID: product.ID,
			quantity:  5,
		},
		{
			name:      "add beyond stock: insufficient stock",
			ownerID:   gofakeit.UUID(),
			productID: product.ID,
			quantity:  6,
			wantIs:    domain.ErrInsufficientStock,
		},
		{
			name:      "add zero quantity: invalid quantity",
			ownerID:   gofakeit.UUID(),
			productID: product.ID,
			quantity:  0,
			wantIs:    domain.ErrInvalidQuantity,
		},
		{
			name:      "add unknown product: product not found",
			ownerID:   gofakeit.UUID(),
			productID: uuid.New(),
			quantity:  1,
			wantIs:    domain.ErrProductNotFound,
		},
		{
			name:      "add inactive product: product not found",
			ownerID:   gofakeit.UUID(),
			productID: inactive.ID,
			quantity:  1,
			wantIs:    domain.ErrProductNotFound,
		},
		{
			name:      "add with empty owner: invalid argument",
			productID: product.ID,
			quantity:  1,
			wantIs:    domain.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			err := suite.carts.AddItem(t.Context(), tt.ownerID, tt.productID, tt.quantity)
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
				if tt.ownerID != "" {
					assert.Empty(t, suite.cartOf(tt.ownerID))
				}
				return
			}
			require.NoError(t, err)

			assert.Equal(t, map[uuid.UUID]int{tt.productID: tt.quantity}, suite.cartOf(tt.ownerID))
		})
	}
}

func (suite *serviceSuite) TestAddItem_accumulatesAgainstStock() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := suite.createProduct("3.50", 4)
	ownerID := gofakeit.UUID()

	require.NoError(t, suite.carts.AddItem(ctx, ownerID, product.ID, 3))

	err := suite.carts.AddItem(ctx, ownerID, product.ID, 2)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, product.ID, stockErr.ProductID)
	assert.Equal(t, 5, stockErr.Requested)
	assert.Equal(t, 4, stockErr.Available)

	require.NoError(t, suite.carts.AddItem(ctx, ownerID, product.ID, 1))
	assert.Equal(t, map[uuid.UUID]int{product.ID: 4}, suite.cartOf(ownerID))
}

func (suite *serviceSuite) TestUpdateQuantity() {
	defer suite.deleteAll()

	product := suite.createProduct("10.00", 5)
	other := suite.createProduct("1.00", 5)

	tests := []struct {
		name      string
		productID uuid.UUID
		quantity  int
		wantIs    error
		wantCart  func(ownerID string) map[uuid.UUID]int
	}{
		{
			name:      "set within stock: ok",
			productID: product.ID,
			quantity:  4,
		},
		{
			name:      "set beyond stock: insufficient stock, cart unchanged",
			productID: product.ID,
			quantity:  6,
			wantIs:    domain.ErrInsufficientStock,
		},
		{
			name:      "set zero: invalid quantity",
			productID: product.ID,
			quantity:  0,
			wantIs:    domain.ErrInvalidQuantity,
		},
		{
			name:      "set line not in cart: item not found",
			productID: other.ID,
			quantity:  1,
			wantIs:    domain.ErrItemNotFound,
		},
		{
			name:      "set unknown product: product not found",
			productID: uuid.New(),
			quantity:  1,
			wantIs:    domain.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			ownerID := gofakeit.UUID()
			require.NoError(t, suite.carts.AddItem(ctx, ownerID, product.ID, 2))

			err := suite.carts.UpdateQuantity(ctx, ownerID, tt.productID, tt.quantity)
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
				assert.Equal(t, map[uuid.UUID]int{product.ID: 2}, suite.cartOf(ownerID))
				return
			}
			require.NoError(t, err)

			assert.Equal(t, map[uuid.UUID]int{product.ID: tt.quantity}, suite.cartOf(ownerID))
		})
	}
}

func (suite *serviceSuite) TestRemoveItem() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	p1 := suite.createProduct("1.00", 5)
	p2 := suite.createProduct("2.00", 5)
	ownerID := gofakeit.UUID()

	require.NoError(t, suite.carts.AddItem(ctx, ownerID, p1.ID, 1))
	require.NoError(t, suite.carts.AddItem(ctx, ownerID, p2.ID, 2))

	require.NoError(t, suite.carts.RemoveItem(ctx, ownerID, p1.ID))
	assert.Equal(t, map[uuid.UUID]int{p2.ID: 2}, suite.cartOf(ownerID))

	// Removing an absent line is a no-op.
	require.NoError(t, suite.carts.RemoveItem(ctx, ownerID, p1.ID))
	assert.Equal(t, map[uuid.UUID]int{p2.ID: 2}, suite.cartOf(ownerID))
}

func (suite *serviceSuite) TestGetCart() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	p1 := suite.createProduct("10.00", 5)
	p2 := suite.createProduct("2.50", 5)
	ownerID := gofakeit.UUID()

	view, err := suite.carts.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.True(t, view.Total.Equal(usd("0")))

	require.NoError(t, suite.carts.AddItem(ctx, ownerID, p1.ID, 2))
	require.NoError(t, suite.carts.AddItem(ctx, ownerID, p2.ID, 3))

	// The cart total keeps add-time prices; lines expose the live price.
	suite.setPrice(p1.ID, "12.00")

	view, err = suite.carts.GetCart(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)
	assert.True(t, view.Total.Equal(usd("27.50")), view.Total.String())
	assert.True(t, view.Lines[0].Price.Equal(usd("10.00")))
	assert.True(t, view.Lines[0].LivePrice.Equal(usd("12.00")))
	assert.Equal(t, p1.Name, view.Lines[0].Name)
}

func (suite *serviceSuite) TestClear() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := suite.createProduct("1.00", 5)
	ownerID := gofakeit.UUID()

	require.NoError(t, suite.carts.AddItem(ctx, ownerID, product.ID, 2))
	require.NoError(t, suite.carts.Clear(ctx, ownerID))
	assert.Empty(t, suite.cartOf(ownerID))

	require.NoError(t, suite.carts.Clear(ctx, ownerID))
}

func (suite *serviceSuite) TestCheckoutPreview() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	product := suite.createProduct("4.00", 3)
	ownerID := gofakeit.UUID()

	_, err := suite.carts.CheckoutPreview(ctx, ownerID)
	require.ErrorIs(t, err, domain.ErrEmptyCart)

	require.NoError(t, suite.carts.AddItem(ctx, ownerID, product.ID, 3))

	view, err := suite.carts.CheckoutPreview(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)

	suite.setStock(product.ID, 2)
	_, err = suite.carts.CheckoutPreview(ctx, ownerID)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	require.NoError(t, suite.catalog.DeactivateProduct(ctx, admin, product.ID))
	_, err = suite.carts.CheckoutPreview(ctx, ownerID)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}
