package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/pgtest"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"
)

// dbSuite owns one postgres container shared by all tests of a suite.
type dbSuite struct {
	suite.Suite

	db   *pgtest.DB
	pool *pgxpool.Pool
}

// before all tests in the suite
func (suite *dbSuite) SetupSuite() {
	db, err := pgtest.Start(suite.T().Context())
	suite.Require().NoError(err)

	suite.db = db
	suite.pool = db.Pool
}

// after all tests in the suite
func (suite *dbSuite) TearDownSuite() {
	if suite.db != nil {
		suite.NoError(suite.db.Close())
	}
}

func (suite *dbSuite) deleteAll() {
	_, err := suite.pool.Exec(context.Background(), pgtest.Truncate)
	suite.NoError(err)
}

// seedProduct stores a random active product with the given stock.
func (suite *dbSuite) seedProduct(stock int) domain.Product {
	t := suite.T()

	product, err := repository.NewProduct(suite.pool).CreateProduct(t.Context(), randomProduct(stock))
	require.NoError(t, err)

	return product
}

func randomProduct(stock int) domain.Product {
	return domain.Product{
		ID:          uuid.New(),
		SKU:         gofakeit.UUID(),
		Name:        gofakeit.ProductName(),
		Description: gofakeit.ProductDescription(),
		Price:       randomMoney(),
		Stock:       stock,
	}
}

func randomMoney() domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		Currency: randomCurrency(),
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

func randomAddress() domain.Address {
	addr := gofakeit.Address()

	return domain.Address{
		Street:  addr.Street,
		City:    addr.City,
		State:   addr.State,
		ZipCode: addr.Zip,
		Country: addr.Country,
	}
}

var moneyComparer = cmp.Comparer(func(x, y domain.Money) bool {
	return x.Currency.String() == y.Currency.String() && x.Amount.Equal(y.Amount)
})

func assertCartItem(t *testing.T, expected, actual domain.CartItem) {
	t.Helper()

	// Ignore the timestamps set by the database
	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.CartItem{}, "CreatedAt", "UpdatedAt"),
		moneyComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.False(t, actual.CreatedAt.IsZero())
}

func assertProduct(t *testing.T, expected, actual domain.Product) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.Product{}, "CreatedAt", "UpdatedAt"),
		moneyComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}

func assertOrder(t *testing.T, expected, actual domain.Order) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.Order{}, "CreatedAt", "UpdatedAt", "DeliveredAt"),
		cmpopts.EquateEmpty(),
		moneyComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.WithinDuration(t, expected.CreatedAt, actual.CreatedAt, time.Millisecond)
}

func randomPendingOrder(ownerID string, product domain.Product) domain.Order {
	item := domain.OrderItem{
		ProductID: product.ID,
		Quantity:  1,
		Price:     product.Price,
	}

	return domain.Order{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Items:           []domain.OrderItem{item},
		Total:           item.Subtotal(),
		Status:          domain.OrderStatusPending,
		ShippingAddress: randomAddress(),
		PaymentMethod:   domain.PaymentCashOnDelivery,
		CreatedAt:       time.Now().UTC(),
	}
}
