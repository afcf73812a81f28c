package service_test

import (
	"context"
	"errors"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/metrics"
	"github.com/nikolayk812/storefront/internal/pgtest"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/nikolayk812/storefront/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"
)

const topic = "storefront.orders.test"

var (
	admin = domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}
	user  = domain.Identity{UserID: "user-1", Role: domain.RoleUser}
)

// serviceSuite wires every service against one postgres container.
type serviceSuite struct {
	suite.Suite

	db      *pgtest.DB
	repos   port.Repositories
	tx      port.Transactor
	log     logrus.FieldLogger
	hook    *logrustest.Hook
	metrics *metrics.Metrics

	catalog  port.CatalogService
	carts    port.CartService
	checkout port.CheckoutService
	orders   port.OrderService
}

// before all tests in the suite
func (suite *serviceSuite) SetupSuite() {
	db, err := pgtest.Start(suite.T().Context())
	suite.Require().NoError(err)
	suite.db = db

	logger, hook := logrustest.NewNullLogger()
	suite.log = logger
	suite.hook = hook

	suite.repos = repository.NewRepositories(db.Pool)
	suite.tx = repository.NewTransactor(db.Pool)
	suite.metrics = metrics.New(prometheus.NewRegistry())

	suite.catalog = service.NewCatalog(suite.repos, suite.tx, currency.USD, suite.log)
	suite.carts = service.NewCart(suite.repos, suite.tx, currency.USD, suite.log)
	suite.checkout = service.NewCheckout(suite.tx, 5*time.Second, topic, suite.log,
		service.WithCheckoutMetrics(suite.metrics))
	suite.orders = service.NewOrder(suite.repos, suite.tx, topic, suite.log)
}

// after all tests in the suite
func (suite *serviceSuite) TearDownSuite() {
	if suite.db != nil {
		suite.NoError(suite.db.Close())
	}
}

// before each test
func (suite *serviceSuite) SetupTest() {
	suite.hook.Reset()
}

func (suite *serviceSuite) deleteAll() {
	_, err := suite.db.Pool.Exec(context.Background(), pgtest.Truncate)
	suite.NoError(err)
}

func (suite *serviceSuite) createProduct(price string, stock int) domain.Product {
	t := suite.T()

	product, err := suite.catalog.CreateProduct(t.Context(), admin, domain.NewProduct{
		SKU:         gofakeit.UUID(),
		Name:        gofakeit.ProductName(),
		Description: gofakeit.ProductDescription(),
		Price:       usd(price),
		Stock:       stock,
	})
	require.NoError(t, err)

	return product
}

func (suite *serviceSuite) setStock(id uuid.UUID, stock int) {
	t := suite.T()

	_, err := suite.catalog.UpdateProduct(t.Context(), admin, id, domain.ProductUpdate{Stock: &stock})
	require.NoError(t, err)
}

func (suite *serviceSuite) setPrice(id uuid.UUID, price string) {
	t := suite.T()

	p := usd(price)
	_, err := suite.catalog.UpdateProduct(t.Context(), admin, id, domain.ProductUpdate{Price: &p})
	require.NoError(t, err)
}

func (suite *serviceSuite) stockOf(id uuid.UUID) int {
	t := suite.T()

	product, err := suite.repos.Products().GetProduct(t.Context(), id)
	require.NoError(t, err)

	return product.Stock
}

func (suite *serviceSuite) cartOf(ownerID string) map[uuid.UUID]int {
	t := suite.T()

	view, err := suite.carts.GetCart(t.Context(), ownerID)
	require.NoError(t, err)

	quantities := make(map[uuid.UUID]int, len(view.Lines))
	for _, line := range view.Lines {
		quantities[line.ProductID] = line.Quantity
	}

	return quantities
}

func (suite *serviceSuite) countRows(table string) int {
	t := suite.T()

	var n int
	err := suite.db.Pool.QueryRow(t.Context(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)

	return n
}

func usd(amount string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(amount), currency.USD)
}

func details() domain.CheckoutDetails {
	addr := gofakeit.Address()

	return domain.CheckoutDetails{
		ShippingAddress: domain.Address{
			Street:  addr.Street,
			City:    addr.City,
			State:   addr.State,
			ZipCode: addr.Zip,
			Country: addr.Country,
		},
		PaymentMethod: domain.PaymentCreditCard,
		Notes:         gofakeit.Sentence(4),
	}
}

var errOutboxDown = errors.New("outbox unavailable")

// faultyTransactor runs the real transaction but fails every outbox write,
// which is the last step before the cart is deleted.
type faultyTransactor struct {
	port.Transactor
}

func (f faultyTransactor) InTx(ctx context.Context, fn func(repos port.Repositories) error) error {
	return f.Transactor.InTx(ctx, func(repos port.Repositories) error {
		return fn(faultyRepositories{Repositories: repos})
	})
}

type faultyRepositories struct {
	port.Repositories
}

func (r faultyRepositories) Outbox() port.OutboxRepository {
	return failingOutbox{}
}

type failingOutbox struct{}

func (failingOutbox) Enqueue(context.Context, uuid.UUID, string, string, any) error {
	return errOutboxDown
}

func (failingOutbox) FetchPending(context.Context, int) ([]domain.OutboxMessage, error) {
	return nil, errOutboxDown
}

func (failingOutbox) MarkSent(context.Context, []int64) error {
	return errOutboxDown
}
