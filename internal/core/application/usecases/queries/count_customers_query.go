package queries

import (
	"errors"

	"invoicing/internal/pkg/guard"
)

var ErrCountCustomersQueryIsNotConstructed = errors.New(
	"CountCustomersQuery must be created via NewCountCustomersQuery constructor",
)

// CountCustomersQuery asks for the number of known customers.
// This is a parameterless query.
type CountCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewCountCustomersQuery() CountCustomersQuery {
	return CountCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountCustomersQuery) Validate() error {
	return q.guard.Validate(ErrCountCustomersQueryIsNotConstructed)
}
