package commands

import (
	"errors"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/guard"
)

var ErrCreateInvoiceCommandIsNotConstructed = errors.New(
	"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
)

// CreateInvoiceCommand represents a request to bill a customer for a list of products.
// All input validation happens in the constructor so a handler never opens a
// transaction for input it would reject.
//
// Example:
//
//	cmd, err := NewCreateInvoiceCommand(5, []kernel.ProductID{1, 2}, []int{3, 4})
//	if err != nil {
//	    return fmt.Errorf("invalid invoice request: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.CustomerID
	lines      []invoice.Line

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand pairs productIDs with quantities by position.
// Returns a validation error if the slices differ in length, if a quantity is not
// positive, or if an identifier is negative.
func NewCreateInvoiceCommand(
	customerID kernel.CustomerID,
	productIDs []kernel.ProductID,
	quantities []int,
) (CreateInvoiceCommand, error) {
	cmd := CreateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLines(productIDs, quantities),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// CustomerID returns the billed customer.
func (c CreateInvoiceCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}

// Lines returns a copy of the requested lines in input order.
func (c CreateInvoiceCommand) Lines() []invoice.Line {
	lines := make([]invoice.Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateInvoiceCommand) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateInvoiceCommand) setLines(productIDs []kernel.ProductID, quantities []int) error {
	lines, err := invoice.NewLines(productIDs, quantities)
	if err != nil {
		return err
	}

	c.lines = lines
	return nil
}
