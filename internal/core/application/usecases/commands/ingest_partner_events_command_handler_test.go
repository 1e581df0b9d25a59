package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/model/partner"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIngestPartnerEventsCommandHandler_Handle_PlacedCreatesOrderAndCorrelation(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewIngestPartnerEventsCommand([]commands.RawPartnerEvent{
		{
			Code:           "ORDER_PLACED",
			PartnerOrderID: "abc-123",
			CustomerName:   "Partner Customer",
			Items:          []commands.CreateOrderItem{{ProductID: 7, Quantity: 2}},
		},
	})

	persisted := restoreTestOrder(31, order.ChannelDeliveryPartner, order.StatusPending, 1)

	corrRepo := new(MockCorrelationRepo)
	catalog := new(MockCatalog)
	orderRepo := new(MockOrderRepo)
	uow := new(MockUnitOfWork)
	factory := new(MockPartnerUoWFactory)

	var addedCorrelation partner.Correlation
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CorrelationRepository").Return(corrRepo).Once(),
		corrRepo.On("GetByPartnerOrderID", ctx, "abc-123").
			Return(partner.Correlation{}, errs.NewObjectNotFoundError("partnerOrderId", "abc-123")).Once(),
		uow.On("CatalogLookup").Return(catalog).Once(),
		catalog.On("ResolveProduct", ctx, int64(7)).
			Return(ports.Product{ID: 7, Name: "Burger", PriceCents: 2500}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(persisted, nil).Once(),
		uow.On("CorrelationRepository").Return(corrRepo).Once(),
		corrRepo.On("Add", ctx, mock.AnythingOfType("partner.Correlation")).
			Run(func(args mock.Arguments) {
				addedCorrelation = args.Get(1).(partner.Correlation)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewIngestPartnerEventsCommandHandler(factory, discardLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.OrdersCreated)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, "abc-123", addedCorrelation.PartnerOrderID())
	assert.Equal(t, int64(31), addedCorrelation.OrderID())
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	corrRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestIngestPartnerEventsCommandHandler_Handle_PlacedReplayIsNoOp(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewIngestPartnerEventsCommand([]commands.RawPartnerEvent{
		{Code: "PLACED", PartnerOrderID: "abc-123"},
	})

	existing, err := partner.NewCorrelation("abc-123", 31)
	require.NoError(t, err)

	corrRepo := new(MockCorrelationRepo)
	orderRepo := new(MockOrderRepo)
	uow := new(MockUnitOfWork)
	factory := new(MockPartnerUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CorrelationRepository").Return(corrRepo).Once(),
		corrRepo.On("GetByPartnerOrderID", ctx, "abc-123").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewIngestPartnerEventsCommandHandler(factory, discardLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, result.OrdersCreated)
	assert.Equal(t, 1, result.Skipped)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	corrRepo.AssertExpectations(t)
}

func TestIngestPartnerEventsCommandHandler_Handle_ConfirmedDispatchesCorrelatedOrder(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewIngestPartnerEventsCommand([]commands.RawPartnerEvent{
		{Code: "ORDER_CONFIRMED", PartnerOrderID: "abc-123"},
	})

	correlation, err := partner.NewCorrelation("abc-123", 31)
	require.NoError(t, err)

	pending := restoreTestOrder(31, order.ChannelDeliveryPartner, order.StatusPending, 1)
	dispatched := restoreTestOrder(31, order.ChannelDeliveryPartner, order.StatusDispatched, 2)

	corrRepo := new(MockCorrelationRepo)
	orderRepo := new(MockOrderRepo)
	uow := new(MockUnitOfWork)
	factory := new(MockPartnerUoWFactory)

	mock.InOrder(
		// Correlation lookup runs outside any transaction.
		factory.On("Create").Return(uow).Once(),
		uow.On("CorrelationRepository").Return(corrRepo).Once(),
		corrRepo.On("GetByPartnerOrderID", ctx, "abc-123").Return(correlation, nil).Once(),
		// Status write goes through the shared compare-and-swap path.
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(31)).Return(pending, nil).Once(),
		orderRepo.On("UpdateStatus", ctx, pending).Return(nil).Once(),
		orderRepo.On("Get", ctx, int64(31)).Return(dispatched, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewIngestPartnerEventsCommandHandler(factory, discardLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.OrdersDispatched)
	assert.Equal(t, order.StatusDispatched, pending.Status())
	assert.NotNil(t, pending.DispatchedAt())
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	corrRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestIngestPartnerEventsCommandHandler_Handle_CancelledWithoutCorrelationIsNoOp(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewIngestPartnerEventsCommand([]commands.RawPartnerEvent{
		{Code: "ORDER_CANCELLED", PartnerOrderID: "unknown-1"},
	})

	corrRepo := new(MockCorrelationRepo)
	orderRepo := new(MockOrderRepo)
	uow := new(MockUnitOfWork)
	factory := new(MockPartnerUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("CorrelationRepository").Return(corrRepo).Once(),
		corrRepo.On("GetByPartnerOrderID", ctx, "unknown-1").
			Return(partner.Correlation{}, errs.NewObjectNotFoundError("partnerOrderId", "unknown-1")).Once(),
	)

	handler := commands.NewIngestPartnerEventsCommandHandler(factory, discardLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	orderRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	factory.AssertExpectations(t)
	corrRepo.AssertExpectations(t)
}

func TestIngestPartnerEventsCommandHandler_Handle_UnknownCodeIsRejected(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewIngestPartnerEventsCommand([]commands.RawPartnerEvent{
		{Code: "ORDER_SHIPPED", PartnerOrderID: "abc-123"},
	})

	factory := new(MockPartnerUoWFactory)

	handler := commands.NewIngestPartnerEventsCommandHandler(factory, discardLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	factory.AssertNotCalled(t, "Create")
}

func TestIngestPartnerEventsCommandHandler_Handle_MissingPartnerOrderIDIsSkipped(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewIngestPartnerEventsCommand([]commands.RawPartnerEvent{
		{Code: "PLACED", PartnerOrderID: ""},
	})

	factory := new(MockPartnerUoWFactory)

	handler := commands.NewIngestPartnerEventsCommandHandler(factory, discardLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	factory.AssertNotCalled(t, "Create")
}

func TestIngestPartnerEventsCommandHandler_Handle_ConfirmAfterCancelFailsEventNotBatch(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewIngestPartnerEventsCommand([]commands.RawPartnerEvent{
		{Code: "ORDER_CONFIRMED", PartnerOrderID: "abc-123"},
		{Code: "ORDER_SHIPPED", PartnerOrderID: "zzz-999"},
	})

	correlation, err := partner.NewCorrelation("abc-123", 31)
	require.NoError(t, err)

	// Already cancelled; CANCELLED is terminal so the confirm must lose.
	cancelled := restoreTestOrder(31, order.ChannelDeliveryPartner, order.StatusCancelled, 2)

	corrRepo := new(MockCorrelationRepo)
	orderRepo := new(MockOrderRepo)
	uow := new(MockUnitOfWork)
	factory := new(MockPartnerUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("CorrelationRepository").Return(corrRepo).Once(),
		corrRepo.On("GetByPartnerOrderID", ctx, "abc-123").Return(correlation, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(31)).Return(cancelled, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewIngestPartnerEventsCommandHandler(factory, discardLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, 0, result.OrdersDispatched)
	assert.Equal(t, order.StatusCancelled, cancelled.Status())
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	corrRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}
