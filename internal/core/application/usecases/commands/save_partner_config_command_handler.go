package commands

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/partner"
	"pos/internal/pkg/errs"
)

// SavePartnerConfigCommandHandler upserts the single partner integration
// config record. A cached access token survives a credentials update; the
// token exchange is re-triggered explicitly when the new credentials should
// take effect.
type SavePartnerConfigCommandHandler struct {
	uowFactory ConfigUoWFactory
}

// NewSavePartnerConfigCommandHandler creates a handler for config saves.
func NewSavePartnerConfigCommandHandler(uowFactory ConfigUoWFactory) SavePartnerConfigCommandHandler {
	return SavePartnerConfigCommandHandler{uowFactory: uowFactory}
}

// Handle persists the credentials, creating the record on first save.
func (h SavePartnerConfigCommandHandler) Handle(ctx context.Context, cmd SavePartnerConfigCommand) (*partner.IntegrationConfig, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.IntegrationConfigRepository()

	config, err := repo.Get(ctx)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		config, err = partner.NewIntegrationConfig(cmd.Environment(), cmd.ClientID(), cmd.ClientSecret(), cmd.MerchantID())
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err = config.UpdateCredentials(cmd.Environment(), cmd.ClientID(), cmd.ClientSecret(), cmd.MerchantID()); err != nil {
			return nil, err
		}
	}

	if err = repo.Save(ctx, config); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return config, nil
}
