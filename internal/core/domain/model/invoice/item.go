package invoice

import (
	"errors"
	"fmt"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/errs"
	"invoicing/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a persisted invoice line: the requested line, its position and the
// unit price resolved when the invoice was created.
type Item struct {
	invoiceID  ID
	lineNumber int
	line       Line
	cost       kernel.Money

	guard guard.ConstructorGuard
}

// NewItem builds the item for position lineNumber of invoice invoiceID.
func NewItem(invoiceID ID, lineNumber int, line Line, cost kernel.Money) (Item, error) {
	if err := errors.Join(
		invoiceID.Validate(),
		line.Validate(),
		validateLineNumber(lineNumber),
		validateCost(cost),
	); err != nil {
		return Item{}, err
	}

	return Item{
		invoiceID:  invoiceID,
		lineNumber: lineNumber,
		line:       line,
		cost:       cost,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// InvoiceID returns the owning invoice.
func (i Item) InvoiceID() ID {
	return i.invoiceID
}

// LineNumber returns the zero-based position within the invoice.
func (i Item) LineNumber() int {
	return i.lineNumber
}

// ProductID returns the billed product.
func (i Item) ProductID() kernel.ProductID {
	return i.line.ProductID()
}

// Quantity returns the billed quantity.
func (i Item) Quantity() int {
	return i.line.Quantity()
}

// Cost returns the unit price snapshot.
func (i Item) Cost() kernel.Money {
	return i.cost
}

func validateLineNumber(lineNumber int) error {
	if lineNumber < 0 {
		return errs.NewValueIsInvalidErrorWithCause("line number", fmt.Errorf("%d is negative", lineNumber))
	}
	return nil
}

func validateCost(cost kernel.Money) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%s is negative", cost))
	}
	return nil
}
