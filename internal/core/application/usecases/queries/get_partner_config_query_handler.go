package queries

import (
	"context"
	"database/sql"
	"errors"

	"pos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPartnerConfigQueryHandler reads the single partner integration config
// record with the credentials redacted.
type GetPartnerConfigQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerConfigQueryHandler creates a handler for config queries.
func NewGetPartnerConfigQueryHandler(db *gorm.DB) GetPartnerConfigQueryHandler {
	return GetPartnerConfigQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when no config was
// ever saved.
func (h GetPartnerConfigQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerConfigQuery,
) (GetPartnerConfigQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPartnerConfigQueryResponse{}, err
	}

	var resp GetPartnerConfigQueryResponse
	var clientSecret, accessToken string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			environment,
			client_id,
			client_secret,
			merchant_id,
			access_token,
			token_expires_at,
			updated_at
		FROM partner_integration_configs
		ORDER BY id DESC
		LIMIT 1
	`).Row()

	err := row.Scan(
		&resp.Environment,
		&resp.ClientID,
		&clientSecret,
		&resp.MerchantID,
		&accessToken,
		&resp.TokenExpiresAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPartnerConfigQueryResponse{}, errs.NewObjectNotFoundError("integrationConfig", 0)
	}
	if err != nil {
		return GetPartnerConfigQueryResponse{}, err
	}

	resp.HasClientSecret = clientSecret != ""
	resp.HasAccessToken = accessToken != ""
	return resp, nil
}
