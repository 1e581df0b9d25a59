package commands_test

import (
	"context"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/model/partner"
	"pos/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepo struct{ mock.Mock }

func (m *MockOrderRepo) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	args := m.Called(ctx, aggregate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepo) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepo) List(ctx context.Context, status *order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepo) ListAwaitingDispatch(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepo) ListDispatched(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) ResolveProduct(ctx context.Context, productID int64) (ports.Product, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(ports.Product), args.Error(1)
}

type MockCorrelationRepo struct{ mock.Mock }

func (m *MockCorrelationRepo) Add(ctx context.Context, correlation partner.Correlation) error {
	args := m.Called(ctx, correlation)
	return args.Error(0)
}

func (m *MockCorrelationRepo) GetByPartnerOrderID(ctx context.Context, partnerOrderID string) (partner.Correlation, error) {
	args := m.Called(ctx, partnerOrderID)
	return args.Get(0).(partner.Correlation), args.Error(1)
}

type MockConfigRepo struct{ mock.Mock }

func (m *MockConfigRepo) Get(ctx context.Context) (*partner.IntegrationConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.IntegrationConfig), args.Error(1)
}

func (m *MockConfigRepo) Save(ctx context.Context, config *partner.IntegrationConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

// MockUnitOfWork satisfies every narrow unit-of-work interface the command
// handlers declare, so each test wires only the accessors its handler uses.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUnitOfWork) CatalogLookup() ports.CatalogLookup {
	args := m.Called()
	return args.Get(0).(ports.CatalogLookup)
}

func (m *MockUnitOfWork) CorrelationRepository() ports.CorrelationRepository {
	args := m.Called()
	return args.Get(0).(ports.CorrelationRepository)
}

func (m *MockUnitOfWork) IntegrationConfigRepository() ports.IntegrationConfigRepository {
	args := m.Called()
	return args.Get(0).(ports.IntegrationConfigRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerUoW)
}

type MockConfigUoWFactory struct{ mock.Mock }

func (m *MockConfigUoWFactory) Create() commands.ConfigUoW {
	args := m.Called()
	return args.Get(0).(commands.ConfigUoW)
}

type MockDispatchQueue struct{ mock.Mock }

func (m *MockDispatchQueue) Submit(orderID int64) bool {
	args := m.Called(orderID)
	return args.Bool(0)
}

type MockTokenExchanger struct{ mock.Mock }

func (m *MockTokenExchanger) ExchangeToken(ctx context.Context, clientID, clientSecret string) (ports.PartnerToken, error) {
	args := m.Called(ctx, clientID, clientSecret)
	return args.Get(0).(ports.PartnerToken), args.Error(1)
}

func restoreTestOrder(id int64, channel order.Channel, status order.Status, version int64) *order.Order {
	item, err := order.RestoreItem(1, 7, 2, 2500, "")
	if err != nil {
		panic(err)
	}

	restored, err := order.RestoreOrder(
		id, channel, status, "Test Customer", nil,
		item.LineTotalCents(), version, time.Now().UTC(), nil,
		[]order.Item{item}, nil,
	)
	if err != nil {
		panic(err)
	}
	return restored
}
