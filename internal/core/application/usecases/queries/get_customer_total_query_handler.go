package queries

import (
	"context"

	"invoicing/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetCustomerTotalQueryHandler sums the stored invoice totals of a customer.
// Totals are placeholders written at creation time, so the result reflects
// whatever the invoices table holds and is zero for a customer with no invoices.
type GetCustomerTotalQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerTotalQueryHandler(db *gorm.DB) GetCustomerTotalQueryHandler {
	return GetCustomerTotalQueryHandler{db: db}
}

func (h GetCustomerTotalQueryHandler) Handle(ctx context.Context, query GetCustomerTotalQuery) (kernel.Money, error) {
	if err := query.Validate(); err != nil {
		return kernel.ZeroMoney(), err
	}

	total := kernel.ZeroMoney()
	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM invoices
		WHERE customer_id = ?
	`, int64(query.CustomerID())).Row().Scan(&total)
	if err != nil {
		return kernel.ZeroMoney(), err
	}

	return total, nil
}
