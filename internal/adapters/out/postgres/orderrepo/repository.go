package orderrepo

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its item lines in one insert and returns the
// aggregate restored with the database-assigned identifiers.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	persisted, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(persisted.ID(), persisted)
	return persisted, nil
}

// Get retrieves an order by id with its items and payments.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", orderByID).
		Preload("Payments", orderByID).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// List retrieves orders newest-first, optionally filtered by status.
// Items and payments are preloaded in one batched query each.
func (r *GormOrderRepository) List(ctx context.Context, status *order.Status) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("Items", orderByID).
		Preload("Payments", orderByID).
		Order("created_at DESC, id DESC")
	if status != nil {
		query = query.Where("status = ?", status.String())
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// ListAwaitingDispatch retrieves delivery-partner orders still PENDING,
// oldest first so the queue is drained fairly.
func (r *GormOrderRepository) ListAwaitingDispatch(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", orderByID).
		Where("channel = ? AND status = ?",
			order.ChannelDeliveryPartner.String(), order.StatusPending.String()).
		Order("created_at ASC, id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// ListDispatched retrieves delivery-partner orders already handed off,
// most recently dispatched first.
func (r *GormOrderRepository) ListDispatched(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", orderByID).
		Where("channel = ? AND status = ?",
			order.ChannelDeliveryPartner.String(), order.StatusDispatched.String()).
		Order("dispatched_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// UpdateStatus writes status, dispatch time and a bumped version, guarded by
// a compare-and-swap on the version the aggregate was loaded with. A miss is
// disambiguated into not-found versus version-conflict with a follow-up read.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", aggregate.ID(), aggregate.Version()).
		Updates(map[string]any{
			"status":        aggregate.Status().String(),
			"dispatched_at": aggregate.DispatchedAt(),
			"version":       aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", aggregate.ID()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID())
		}
		return errs.NewVersionConflictError("order", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}
