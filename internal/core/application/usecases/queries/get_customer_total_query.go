// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Every handler runs a single parameterized statement outside any transaction.
package queries

import (
	"errors"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/guard"
)

var ErrGetCustomerTotalQueryIsNotConstructed = errors.New(
	"GetCustomerTotalQuery must be created via NewGetCustomerTotalQuery constructor",
)

// GetCustomerTotalQuery asks for the sum of all invoice totals of one customer.
//
// Example:
//
//	query, err := NewGetCustomerTotalQuery(5)
//	if err != nil {
//	    return err
//	}
//	total, err := handler.Handle(ctx, query)
type GetCustomerTotalQuery struct {
	customerID kernel.CustomerID

	guard guard.ConstructorGuard
}

// NewGetCustomerTotalQuery returns a validation error for a negative customer id.
func NewGetCustomerTotalQuery(customerID kernel.CustomerID) (GetCustomerTotalQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerTotalQuery{}, err
	}
	return GetCustomerTotalQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerTotalQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerTotalQueryIsNotConstructed)
}

func (q GetCustomerTotalQuery) CustomerID() kernel.CustomerID {
	return q.customerID
}
