package queries

import (
	"errors"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/guard"
)

var ErrCountCustomerInvoicesQueryIsNotConstructed = errors.New(
	"CountCustomerInvoicesQuery must be created via NewCountCustomerInvoicesQuery constructor",
)

// CountCustomerInvoicesQuery asks how many invoices were issued to one customer.
type CountCustomerInvoicesQuery struct {
	customerID kernel.CustomerID

	guard guard.ConstructorGuard
}

func NewCountCustomerInvoicesQuery(customerID kernel.CustomerID) (CountCustomerInvoicesQuery, error) {
	if err := customerID.Validate(); err != nil {
		return CountCustomerInvoicesQuery{}, err
	}
	return CountCustomerInvoicesQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q CountCustomerInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrCountCustomerInvoicesQueryIsNotConstructed)
}

func (q CountCustomerInvoicesQuery) CustomerID() kernel.CustomerID {
	return q.customerID
}
