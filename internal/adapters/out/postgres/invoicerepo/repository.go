package invoicerepo

import (
	"context"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvoiceRepository implements ports.InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// AddHeader inserts the invoice header and returns the id Postgres generated for it.
func (r *GormInvoiceRepository) AddHeader(ctx context.Context, customerID kernel.CustomerID) (invoice.ID, error) {
	if err := customerID.Validate(); err != nil {
		return 0, err
	}

	dto := newHeaderDTO(customerID)
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto)
	if result.Error != nil {
		return 0, errs.NewInsertErrorWithCause(dto.TableName(), result.Error)
	}
	if result.RowsAffected != 1 {
		return 0, errs.NewInsertError(dto.TableName(), result.RowsAffected)
	}

	id := invoice.ID(dto.ID)
	if err := id.Validate(); err != nil {
		return 0, errs.NewInsertErrorWithCause(dto.TableName(), err)
	}

	return id, nil
}

// AddItem inserts one line item row.
func (r *GormInvoiceRepository) AddItem(ctx context.Context, item invoice.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto)
	if result.Error != nil {
		return errs.NewInsertErrorWithCause(dto.TableName(), result.Error)
	}
	if result.RowsAffected != 1 {
		return errs.NewInsertError(dto.TableName(), result.RowsAffected)
	}

	return nil
}
