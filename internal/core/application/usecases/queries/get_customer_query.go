package queries

import (
	"errors"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery looks up one customer by id.
//
// Example:
//
//	query, _ := NewGetCustomerQuery(5)
//	customer, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such customer
//	}
type GetCustomerQuery struct {
	customerID kernel.CustomerID

	guard guard.ConstructorGuard
}

func NewGetCustomerQuery(customerID kernel.CustomerID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}
	return GetCustomerQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

func (q GetCustomerQuery) CustomerID() kernel.CustomerID {
	return q.customerID
}

// CustomerResponse is the read model shared by customer lookups.
// Name carries the first name and Address the street.
type CustomerResponse struct {
	ID      kernel.CustomerID
	Name    string
	Address string
}
