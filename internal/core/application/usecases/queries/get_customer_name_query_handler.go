package queries

import (
	"context"

	"invoicing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerNameQueryHandler returns a customer's last name.
// Returns errs.ObjectNotFoundError when no customer has the given id.
type GetCustomerNameQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerNameQueryHandler(db *gorm.DB) GetCustomerNameQueryHandler {
	return GetCustomerNameQueryHandler{db: db}
}

func (h GetCustomerNameQueryHandler) Handle(ctx context.Context, query GetCustomerNameQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var names []string
	err := h.db.WithContext(ctx).Raw(`
		SELECT last_name
		FROM customers
		WHERE id = ?
	`, int64(query.CustomerID())).Scan(&names).Error
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", errs.NewObjectNotFoundError("customerId", int64(query.CustomerID()))
	}

	return names[0], nil
}
