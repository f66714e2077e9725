package ports

import (
	"context"

	"invoicing/internal/core/domain/model/kernel"
)

// PriceResolver looks up the current unit price of a product.
type PriceResolver interface {
	// ResolvePrice issues a fresh lookup for productID on every call.
	// Returns an errs.PriceNotFoundError if the product does not exist.
	ResolvePrice(ctx context.Context, productID kernel.ProductID) (kernel.Money, error)
}
