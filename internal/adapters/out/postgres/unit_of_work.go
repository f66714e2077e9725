// Package postgres provides a GORM-based implementation of the Unit of Work pattern.
// A unit of work owns at most one database transaction at a time and hands out
// repositories bound to it, so every write of a business operation lands in the
// same transaction and commits or rolls back together.
//
// Usage:
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	id, err := uow.InvoiceRepository().AddHeader(ctx, customerID)
//	if err != nil {
//	    _ = uow.Rollback(ctx)
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Concurrency:
//   - A UnitOfWork is not safe for concurrent use; create one per request
//   - Separate instances hold separate transactions and connections
package postgres

import (
	"context"

	"invoicing/internal/adapters/out/postgres/invoicerepo"
	"invoicing/internal/adapters/out/postgres/productrepo"
	"invoicing/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no transaction open.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction for a business operation.
//
// While tx is nil the unit of work is in non-transactional mode and repositories
// run each statement on the pool in autocommit. Commit and Rollback always clear
// tx, including when the driver reports an error, so a finished unit of work never
// holds on to a dead transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin while a transaction is already open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// InTransaction reports whether a transaction is currently open.
func (uow *GormUnitOfWork) InTransaction() bool {
	return uow.tx != nil
}

// InvoiceRepository returns an invoice repository bound to the current transaction,
// or to the main connection when no transaction is open.
func (uow *GormUnitOfWork) InvoiceRepository() ports.InvoiceRepository {
	return invoicerepo.NewGormInvoiceRepository(uow.conn())
}

// PriceResolver returns a price resolver bound to the current transaction,
// or to the main connection when no transaction is open.
func (uow *GormUnitOfWork) PriceResolver() ports.PriceResolver {
	return productrepo.NewGormProductRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
