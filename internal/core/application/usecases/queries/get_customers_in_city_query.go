package queries

import (
	"errors"
	"strings"

	"invoicing/internal/pkg/errs"
	"invoicing/internal/pkg/guard"
)

var ErrGetCustomersInCityQueryIsNotConstructed = errors.New(
	"GetCustomersInCityQuery must be created via NewGetCustomersInCityQuery constructor",
)

// GetCustomersInCityQuery lists the customers living in one city.
// The city is matched exactly, without case folding.
type GetCustomersInCityQuery struct {
	city string

	guard guard.ConstructorGuard
}

// NewGetCustomersInCityQuery rejects a blank city with errs.ValueIsRequiredError.
func NewGetCustomersInCityQuery(city string) (GetCustomersInCityQuery, error) {
	if strings.TrimSpace(city) == "" {
		return GetCustomersInCityQuery{}, errs.NewValueIsRequiredError("city")
	}
	return GetCustomersInCityQuery{city: city, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersInCityQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersInCityQueryIsNotConstructed)
}

func (q GetCustomersInCityQuery) City() string {
	return q.city
}
