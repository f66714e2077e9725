package invoice

import (
	"math"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/errs"
)

// ID is the store-generated key of an invoice header.
type ID int64

// Validate reports whether id could have been produced by the store.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("invoice id", int64(id), int64(1), int64(math.MaxInt64))
	}
	return nil
}

// PlaceholderTotal is the total written with every new header.
func PlaceholderTotal() kernel.Money {
	return kernel.ZeroMoney()
}
