// Package postgres provides a GORM-based implementation of the Unit of Work
// pattern. The Unit of Work maintains a list of objects affected by a
// business transaction and coordinates writing out changes and resolving
// concurrency problems.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	persisted, err := uow.OrderRepository().Add(ctx, newOrder)
//	if err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repository accessors return repositories bound to the open transaction,
// or to the base connection when no transaction is active. Multiple
// goroutines must use separate UnitOfWork instances.
package postgres

import (
	"context"

	"pos/internal/adapters/out/postgres/catalogrepo"
	"pos/internal/adapters/out/postgres/orderrepo"
	"pos/internal/adapters/out/postgres/partnerrepo"
	"pos/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Useful for implementing patterns like the outbox pattern later.
type trackedAggregate struct {
	ID        int64
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each business operation gets a fresh unit of work with
// proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions across the order, partner
// and catalog repositories using GORM's transaction capabilities.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Subsequent repository
// operations execute within this transaction context. Calling Begin again on
// an open unit of work is a no-op, never a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides order persistence bound to the current
// transaction, or the base connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// CorrelationRepository provides partner correlation persistence bound to
// the current transaction.
func (uow *GormUnitOfWork) CorrelationRepository() ports.CorrelationRepository {
	return partnerrepo.NewGormCorrelationRepository(uow.conn())
}

// IntegrationConfigRepository provides partner config persistence bound to
// the current transaction.
func (uow *GormUnitOfWork) IntegrationConfigRepository() ports.IntegrationConfigRepository {
	return partnerrepo.NewGormIntegrationConfigRepository(uow.conn())
}

// CatalogLookup provides product resolution bound to the current
// transaction, so price snapshots come from the same consistent view the
// order insert writes into.
func (uow *GormUnitOfWork) CatalogLookup() ports.CatalogLookup {
	return catalogrepo.NewGormCatalogLookup(uow.conn())
}

// TrackAggregate registers an aggregate as modified within this unit of
// work. Called by repository implementations on writes.
func (uow *GormUnitOfWork) TrackAggregate(id int64, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
