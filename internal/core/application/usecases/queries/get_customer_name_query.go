package queries

import (
	"errors"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/guard"
)

var ErrGetCustomerNameQueryIsNotConstructed = errors.New(
	"GetCustomerNameQuery must be created via NewGetCustomerNameQuery constructor",
)

// GetCustomerNameQuery asks for the family name of one customer.
type GetCustomerNameQuery struct {
	customerID kernel.CustomerID

	guard guard.ConstructorGuard
}

func NewGetCustomerNameQuery(customerID kernel.CustomerID) (GetCustomerNameQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerNameQuery{}, err
	}
	return GetCustomerNameQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerNameQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerNameQueryIsNotConstructed)
}

func (q GetCustomerNameQuery) CustomerID() kernel.CustomerID {
	return q.customerID
}
