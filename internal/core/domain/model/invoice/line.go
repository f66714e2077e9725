package invoice

import (
	"errors"
	"fmt"
	"math"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/errs"
	"invoicing/internal/pkg/guard"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one requested (product, quantity) pair of a new invoice.
type Line struct {
	productID kernel.ProductID
	quantity  int

	guard guard.ConstructorGuard
}

// NewLine validates a single product/quantity pair.
func NewLine(productID kernel.ProductID, quantity int) (Line, error) {
	if err := productID.Validate(); err != nil {
		return Line{}, err
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt)
	}

	return Line{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewLines pairs two parallel slices into lines, in input order.
// Slices of different length are rejected before any pair is looked at.
func NewLines(productIDs []kernel.ProductID, quantities []int) ([]Line, error) {
	if len(productIDs) != len(quantities) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantities",
			fmt.Errorf("%d product ids but %d quantities", len(productIDs), len(quantities)),
		)
	}

	lines := make([]Line, 0, len(productIDs))
	var errList []error
	for i := range productIDs {
		line, err := NewLine(productIDs[i], quantities[i])
		if err != nil {
			errList = append(errList, fmt.Errorf("line %d: %w", i, err))
			continue
		}
		lines = append(lines, line)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return lines, nil
}

// Validate ensures the line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductID returns the requested product.
func (l Line) ProductID() kernel.ProductID {
	return l.productID
}

// Quantity returns the requested quantity.
func (l Line) Quantity() int {
	return l.quantity
}
