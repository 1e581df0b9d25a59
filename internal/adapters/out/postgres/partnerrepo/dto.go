// Package partnerrepo persists the delivery partner integration state: the
// correlation between partner-side and local order ids, and the single
// integration configuration record.
package partnerrepo

import (
	"time"

	"pos/internal/core/domain/model/partner"
)

// CorrelationDTO maps a partner order id to the local order it created.
// The partner order id is the primary key, which makes PLACED replays a
// constraint violation instead of a duplicate order.
type CorrelationDTO struct {
	PartnerOrderID string `gorm:"primaryKey;type:varchar(64)"`
	OrderID        int64  `gorm:"uniqueIndex"`
	CreatedAt      time.Time
}

// TableName specifies the database table name for correlations.
func (CorrelationDTO) TableName() string {
	return "partner_correlations"
}

// ConfigDTO is the partner integration configuration row.
type ConfigDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	Environment    string
	ClientID       string
	ClientSecret   string
	MerchantID     string
	AccessToken    string
	TokenExpiresAt *time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for the integration config.
func (ConfigDTO) TableName() string {
	return "partner_integration_configs"
}

func correlationFromDomain(correlation partner.Correlation) CorrelationDTO {
	return CorrelationDTO{
		PartnerOrderID: correlation.PartnerOrderID(),
		OrderID:        correlation.OrderID(),
		CreatedAt:      time.Now().UTC(),
	}
}

func correlationToDomain(dto CorrelationDTO) (partner.Correlation, error) {
	return partner.NewCorrelation(dto.PartnerOrderID, dto.OrderID)
}

func configFromDomain(config *partner.IntegrationConfig) ConfigDTO {
	return ConfigDTO{
		ID:             config.ID(),
		Environment:    config.Environment(),
		ClientID:       config.ClientID(),
		ClientSecret:   config.ClientSecret(),
		MerchantID:     config.MerchantID(),
		AccessToken:    config.AccessToken(),
		TokenExpiresAt: config.TokenExpiresAt(),
		UpdatedAt:      config.UpdatedAt(),
	}
}

func configToDomain(dto ConfigDTO) *partner.IntegrationConfig {
	return partner.RestoreIntegrationConfig(
		dto.ID,
		dto.Environment,
		dto.ClientID,
		dto.ClientSecret,
		dto.MerchantID,
		dto.AccessToken,
		dto.TokenExpiresAt,
		dto.UpdatedAt,
	)
}
