// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the narrow slice of repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CatalogFactory provides access to catalog resolution within a transaction,
	// so product lookups happen inside the order-creation transaction.
	CatalogFactory interface {
		CatalogLookup() ports.CatalogLookup
	}

	// CorrelationRepoFactory provides access to the partner correlation
	// repository within a transaction.
	CorrelationRepoFactory interface {
		CorrelationRepository() ports.CorrelationRepository
	}

	// ConfigRepoFactory provides access to the partner integration config
	// repository within a transaction.
	ConfigRepoFactory interface {
		IntegrationConfigRepository() ports.IntegrationConfigRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CatalogFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PartnerUoW manages transactions spanning orders and partner
	// correlations. Used by webhook ingestion, where a PLACED event creates
	// the order and its correlation atomically.
	PartnerUoW interface {
		TxManager
		OrderRepoFactory
		CatalogFactory
		CorrelationRepoFactory
	}

	// PartnerUoWFactory creates new partner unit of work instances.
	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// ConfigUoW manages transactions for integration config operations.
	ConfigUoW interface {
		TxManager
		ConfigRepoFactory
	}

	// ConfigUoWFactory creates new config unit of work instances.
	ConfigUoWFactory interface {
		Create() ConfigUoW
	}
)
