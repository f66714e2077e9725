package queries

import (
	"context"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/errs"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// customerRow is the scan target of customer lookups.
type customerRow struct {
	ID        int64
	FirstName string
	Street    string
}

func (r customerRow) toResponse() CustomerResponse {
	return CustomerResponse{
		ID:      kernel.CustomerID(r.ID),
		Name:    r.FirstName,
		Address: r.Street,
	}
}

// GetCustomerQueryHandler returns a single customer.
// Returns errs.ObjectNotFoundError when no customer has the given id.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	var rows []customerRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			street
		FROM customers
		WHERE id = ?
	`, int64(query.CustomerID())).Scan(&rows).Error
	if err != nil {
		return CustomerResponse{}, err
	}

	row, ok := lo.First(rows)
	if !ok {
		return CustomerResponse{}, errs.NewObjectNotFoundError("customerId", int64(query.CustomerID()))
	}

	return row.toResponse(), nil
}
