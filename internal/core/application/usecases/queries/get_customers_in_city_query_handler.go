package queries

import (
	"context"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// GetCustomersInCityQueryHandler returns customers of a city ordered by id.
// The result is an empty, non-nil slice when nobody lives there.
type GetCustomersInCityQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomersInCityQueryHandler(db *gorm.DB) GetCustomersInCityQueryHandler {
	return GetCustomersInCityQueryHandler{db: db}
}

func (h GetCustomersInCityQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersInCityQuery,
) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []customerRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			street
		FROM customers
		WHERE city = ?
		ORDER BY id
	`, query.City()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(r customerRow, _ int) CustomerResponse {
		return r.toResponse()
	}), nil
}
