package commands_test

import (
	"testing"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/partner"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefreshPartnerTokenCommandHandler_Handle_CachesExchangedToken(t *testing.T) {
	ctx := t.Context()

	existing := partner.RestoreIntegrationConfig(
		1, "sandbox", "client-1", "secret-1", "merchant-1",
		"", nil, time.Now().UTC(),
	)

	expiry := time.Now().UTC().Add(time.Hour)
	token := ports.PartnerToken{AccessToken: "fresh-token", ExpiresAt: expiry}

	configRepo := new(MockConfigRepo)
	exchanger := new(MockTokenExchanger)
	uow := new(MockUnitOfWork)
	factory := new(MockConfigUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("IntegrationConfigRepository").Return(configRepo).Once(),
		configRepo.On("Get", ctx).Return(existing, nil).Once(),
		exchanger.On("ExchangeToken", ctx, "client-1", "secret-1").Return(token, nil).Once(),
		configRepo.On("Save", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRefreshPartnerTokenCommandHandler(factory, exchanger)
	got, err := handler.Handle(ctx)

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", got.AccessToken)
	assert.Equal(t, "fresh-token", existing.AccessToken())
	assert.True(t, existing.HasValidToken(time.Now().UTC()))
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	configRepo.AssertExpectations(t)
	exchanger.AssertExpectations(t)
}

func TestRefreshPartnerTokenCommandHandler_Handle_NoConfig(t *testing.T) {
	ctx := t.Context()

	configRepo := new(MockConfigRepo)
	exchanger := new(MockTokenExchanger)
	uow := new(MockUnitOfWork)
	factory := new(MockConfigUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("IntegrationConfigRepository").Return(configRepo).Once(),
		configRepo.On("Get", ctx).
			Return(nil, errs.NewObjectNotFoundError("integrationConfig", 0)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRefreshPartnerTokenCommandHandler(factory, exchanger)
	_, err := handler.Handle(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	exchanger.AssertNotCalled(t, "ExchangeToken", mock.Anything, mock.Anything, mock.Anything)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	configRepo.AssertExpectations(t)
}

func TestRefreshPartnerTokenCommandHandler_Handle_ExchangeFailure(t *testing.T) {
	ctx := t.Context()

	existing := partner.RestoreIntegrationConfig(
		1, "sandbox", "client-1", "secret-1", "merchant-1",
		"", nil, time.Now().UTC(),
	)

	configRepo := new(MockConfigRepo)
	exchanger := new(MockTokenExchanger)
	uow := new(MockUnitOfWork)
	factory := new(MockConfigUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("IntegrationConfigRepository").Return(configRepo).Once(),
		configRepo.On("Get", ctx).Return(existing, nil).Once(),
		exchanger.On("ExchangeToken", ctx, "client-1", "secret-1").
			Return(ports.PartnerToken{}, errs.NewIntegrationError("token-exchange", assert.AnError)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRefreshPartnerTokenCommandHandler(factory, exchanger)
	_, err := handler.Handle(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrIntegration)
	configRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	exchanger.AssertExpectations(t)
}
