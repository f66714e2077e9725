// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"invoicing/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// PriceResolverFactory provides access to price lookups within a transaction.
	PriceResolverFactory interface {
		PriceResolver() ports.PriceResolver
	}

	// InvoiceUoW manages the transaction of one invoice creation: the header,
	// every price lookup and every item write run on it.
	InvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
		PriceResolverFactory
	}

	// InvoiceUoWFactory creates new invoice unit of work instances.
	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}
)
