package partnerrepo

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/partner"
	"pos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCorrelationRepository implements CorrelationRepository using GORM.
type GormCorrelationRepository struct {
	db *gorm.DB
}

// NewGormCorrelationRepository creates a new GORM correlation repository.
func NewGormCorrelationRepository(db *gorm.DB) *GormCorrelationRepository {
	return &GormCorrelationRepository{db: db}
}

// Add saves a new correlation. Inserting a duplicate partner order id fails
// on the primary key.
func (r *GormCorrelationRepository) Add(ctx context.Context, correlation partner.Correlation) error {
	if err := correlation.Validate(); err != nil {
		return err
	}

	dto := correlationFromDomain(correlation)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByPartnerOrderID looks up a correlation by the partner-side id.
func (r *GormCorrelationRepository) GetByPartnerOrderID(
	ctx context.Context,
	partnerOrderID string,
) (partner.Correlation, error) {
	var dto CorrelationDTO
	err := r.db.WithContext(ctx).First(&dto, "partner_order_id = ?", partnerOrderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return partner.Correlation{}, errs.NewObjectNotFoundError("partnerOrderId", partnerOrderID)
		}
		return partner.Correlation{}, err
	}

	return correlationToDomain(dto)
}

// GormIntegrationConfigRepository implements IntegrationConfigRepository
// using GORM.
type GormIntegrationConfigRepository struct {
	db *gorm.DB
}

// NewGormIntegrationConfigRepository creates a new GORM config repository.
func NewGormIntegrationConfigRepository(db *gorm.DB) *GormIntegrationConfigRepository {
	return &GormIntegrationConfigRepository{db: db}
}

// Get retrieves the most recent config record.
func (r *GormIntegrationConfigRepository) Get(ctx context.Context) (*partner.IntegrationConfig, error) {
	var dto ConfigDTO
	err := r.db.WithContext(ctx).Order("id DESC").First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("integrationConfig", 0)
		}
		return nil, err
	}

	return configToDomain(dto), nil
}

// Save inserts the config record on first save and updates it afterwards.
func (r *GormIntegrationConfigRepository) Save(ctx context.Context, config *partner.IntegrationConfig) error {
	dto := configFromDomain(config)
	if dto.ID == 0 {
		return r.db.WithContext(ctx).Create(&dto).Error
	}
	return r.db.WithContext(ctx).Save(&dto).Error
}
