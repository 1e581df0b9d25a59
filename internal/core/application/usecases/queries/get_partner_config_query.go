package queries

import (
	"errors"
	"time"

	"pos/internal/pkg/guard"
)

var ErrGetPartnerConfigQueryIsNotConstructed = errors.New(
	"GetPartnerConfigQuery must be created via NewGetPartnerConfigQuery constructor",
)

// GetPartnerConfigQuery retrieves the partner integration configuration.
// The client secret never leaves the read model; only its presence is
// reported.
type GetPartnerConfigQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPartnerConfigQuery creates a parameterless config query.
func NewGetPartnerConfigQuery() GetPartnerConfigQuery {
	return GetPartnerConfigQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerConfigQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerConfigQueryIsNotConstructed)
}

// GetPartnerConfigQueryResponse is the redacted config read model.
type GetPartnerConfigQueryResponse struct {
	Environment     string
	ClientID        string
	HasClientSecret bool
	MerchantID      string
	HasAccessToken  bool
	TokenExpiresAt  *time.Time
	UpdatedAt       time.Time
}
