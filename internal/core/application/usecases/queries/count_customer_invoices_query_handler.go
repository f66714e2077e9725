package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountCustomerInvoicesQueryHandler counts invoice headers of a customer.
// An unknown customer simply has zero invoices.
type CountCustomerInvoicesQueryHandler struct {
	db *gorm.DB
}

func NewCountCustomerInvoicesQueryHandler(db *gorm.DB) CountCustomerInvoicesQueryHandler {
	return CountCustomerInvoicesQueryHandler{db: db}
}

func (h CountCustomerInvoicesQueryHandler) Handle(
	ctx context.Context,
	query CountCustomerInvoicesQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM invoices
		WHERE customer_id = ?
	`, int64(query.CustomerID())).Row().Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
