package ports

import (
	"context"

	"pos/internal/core/domain/model/partner"
)

// CorrelationRepository persists the mapping between partner-side order
// identifiers and local order ids.
type CorrelationRepository interface {
	// Add persists a new correlation. The partner order id is unique;
	// inserting a duplicate fails.
	Add(ctx context.Context, correlation partner.Correlation) error

	// GetByPartnerOrderID looks up a correlation by the partner-side id.
	// Returns ObjectNotFoundError when no correlation exists.
	GetByPartnerOrderID(ctx context.Context, partnerOrderID string) (partner.Correlation, error)
}

// IntegrationConfigRepository persists the single partner integration
// configuration record.
type IntegrationConfigRepository interface {
	// Get retrieves the most recent config record.
	// Returns ObjectNotFoundError when none was ever saved.
	Get(ctx context.Context) (*partner.IntegrationConfig, error)

	// Save inserts or updates the config record.
	Save(ctx context.Context, config *partner.IntegrationConfig) error
}
