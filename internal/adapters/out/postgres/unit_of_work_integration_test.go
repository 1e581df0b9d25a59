package postgres_test

import (
	"context"
	"testing"
	"time"

	"pos/internal/adapters/out/postgres"
	"pos/internal/adapters/out/postgres/catalogrepo"
	"pos/internal/adapters/out/postgres/orderrepo"
	"pos/internal/adapters/out/postgres/partnerrepo"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/model/partner"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries across the
// order and partner repositories: the PLACED path must leave either the
// order plus its correlation, or nothing.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.PaymentDTO{},
		&partnerrepo.CorrelationDTO{},
		&partnerrepo.ConfigDTO{},
		&catalogrepo.ProductDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_payments, partner_correlations, products RESTART IDENTITY CASCADE",
	).Error)
	suite.Require().NoError(suite.db.Exec(
		"INSERT INTO products (name, price_cents) VALUES ('Burger', 2500)",
	).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndCorrelation() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	product, err := uow.CatalogLookup().ResolveProduct(ctx, 1)
	suite.Require().NoError(err)

	item, err := order.NewItem(product.ID, 2, product.PriceCents, "")
	suite.Require().NoError(err)
	aggregate, err := order.NewOrder(order.ChannelDeliveryPartner, "Partner Customer", nil, []order.Item{item})
	suite.Require().NoError(err)

	persisted, err := uow.OrderRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)

	correlation, err := partner.NewCorrelation("partner-abc", persisted.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CorrelationRepository().Add(ctx, correlation))

	suite.Require().NoError(uow.Commit(ctx))

	var orderCount, corrCount int64
	suite.Require().NoError(suite.db.Table("orders").Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Table("partner_correlations").Count(&corrCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(1), corrCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_LeavesNothing() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	item, err := order.NewItem(1, 1, 2500, "")
	suite.Require().NoError(err)
	aggregate, err := order.NewOrder(order.ChannelDeliveryPartner, "Partner Customer", nil, []order.Item{item})
	suite.Require().NoError(err)

	persisted, err := uow.OrderRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)

	correlation, err := partner.NewCorrelation("partner-abc", persisted.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CorrelationRepository().Add(ctx, correlation))

	suite.Require().NoError(uow.Rollback(ctx))

	var orderCount, corrCount int64
	suite.Require().NoError(suite.db.Table("orders").Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Table("partner_correlations").Count(&corrCount).Error)
	suite.Zero(orderCount)
	suite.Zero(corrCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesWithoutTransaction_UseBaseConnection() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// No Begin: reads go straight to the base connection.
	product, err := uow.CatalogLookup().ResolveProduct(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal("Burger", product.Name)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
