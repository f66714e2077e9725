package queries

import (
	"context"

	"gorm.io/gorm"
)

type CountCustomersQueryHandler struct {
	db *gorm.DB
}

func NewCountCustomersQueryHandler(db *gorm.DB) CountCustomersQueryHandler {
	return CountCustomersQueryHandler{db: db}
}

func (h CountCustomersQueryHandler) Handle(ctx context.Context, query CountCustomersQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM customers`).Row().Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
