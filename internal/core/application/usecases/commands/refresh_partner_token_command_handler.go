package commands

import (
	"context"

	"pos/internal/core/ports"
)

// RefreshPartnerTokenCommandHandler performs the client-credentials exchange
// against the partner token endpoint and caches the result on the config
// record. Nothing calls this automatically before expiry; the exchange is
// always an explicit trigger.
type RefreshPartnerTokenCommandHandler struct {
	uowFactory ConfigUoWFactory
	exchanger  ports.TokenExchanger
}

// NewRefreshPartnerTokenCommandHandler creates a handler for token refreshes.
func NewRefreshPartnerTokenCommandHandler(
	uowFactory ConfigUoWFactory,
	exchanger ports.TokenExchanger,
) RefreshPartnerTokenCommandHandler {
	return RefreshPartnerTokenCommandHandler{
		uowFactory: uowFactory,
		exchanger:  exchanger,
	}
}

// Handle exchanges the stored credentials for a fresh token and persists it.
// Fails with ObjectNotFoundError when no config was ever saved, and with
// IntegrationError when the partner rejects the exchange.
func (h RefreshPartnerTokenCommandHandler) Handle(ctx context.Context) (ports.PartnerToken, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.PartnerToken{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.IntegrationConfigRepository()

	config, err := repo.Get(ctx)
	if err != nil {
		return ports.PartnerToken{}, err
	}

	token, err := h.exchanger.ExchangeToken(ctx, config.ClientID(), config.ClientSecret())
	if err != nil {
		return ports.PartnerToken{}, err
	}

	if err = config.CacheToken(token.AccessToken, token.ExpiresAt); err != nil {
		return ports.PartnerToken{}, err
	}

	if err = repo.Save(ctx, config); err != nil {
		return ports.PartnerToken{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.PartnerToken{}, err
	}

	return token, nil
}
