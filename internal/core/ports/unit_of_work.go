package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Order creation is
// the one place with a hard atomicity requirement: the order header, its item
// lines and (for partner-originated orders) the correlation row either all
// exist or none do.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction if one is active.
	OrderRepository() OrderRepository

	// CorrelationRepository returns a CorrelationRepository bound to the
	// current transaction if one is active.
	CorrelationRepository() CorrelationRepository

	// IntegrationConfigRepository returns an IntegrationConfigRepository
	// bound to the current transaction if one is active.
	IntegrationConfigRepository() IntegrationConfigRepository

	// CatalogLookup returns a CatalogLookup bound to the current
	// transaction, so product resolution happens inside the same
	// transaction that creates the order.
	CatalogLookup() CatalogLookup
}
