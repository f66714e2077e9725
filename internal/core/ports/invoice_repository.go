// Package ports defines the persistence contracts of the invoicing core.
// Implementations live in the outbound adapters; the application layer only sees these interfaces.
package ports

import (
	"context"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
)

// InvoiceRepository writes invoice headers and their line items.
// Both writes must run on the unit of work that produced the repository.
type InvoiceRepository interface {
	// AddHeader inserts one invoice header for customerID with the placeholder total
	// and returns the key the store generated for it.
	// Returns an errs.InsertError if the row count is not exactly one or no key came back.
	AddHeader(ctx context.Context, customerID kernel.CustomerID) (invoice.ID, error)

	// AddItem inserts one line item.
	// Returns an errs.InsertError if the row count is not exactly one.
	AddItem(ctx context.Context, item invoice.Item) error
}
