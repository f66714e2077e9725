package kernel

import (
	"math"

	"invoicing/internal/pkg/errs"
)

// CustomerID identifies a customer row. Customers are owned outside this module.
type CustomerID int64

// Validate rejects negative identifiers.
func (id CustomerID) Validate() error {
	if id < 0 {
		return errs.NewValueIsOutOfRangeError("customer id", int64(id), int64(0), int64(math.MaxInt64))
	}
	return nil
}

// ProductID identifies a product row. Products are owned outside this module.
type ProductID int64

// Validate rejects negative identifiers.
func (id ProductID) Validate() error {
	if id < 0 {
		return errs.NewValueIsOutOfRangeError("product id", int64(id), int64(0), int64(math.MaxInt64))
	}
	return nil
}
