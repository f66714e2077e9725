package cmd

import (
	"invoicing/internal/adapters/out/postgres"
	"invoicing/internal/core/application/usecases/commands"
	"invoicing/internal/core/application/usecases/queries"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *zap.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) Logger() *zap.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInvoiceCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetCustomerTotalQueryHandler() queries.GetCustomerTotalQueryHandler {
	return queries.NewGetCustomerTotalQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerNameQueryHandler() queries.GetCustomerNameQueryHandler {
	return queries.NewGetCustomerNameQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountCustomersQueryHandler() queries.CountCustomersQueryHandler {
	return queries.NewCountCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountCustomerInvoicesQueryHandler() queries.CountCustomerInvoicesQueryHandler {
	return queries.NewCountCustomerInvoicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersInCityQueryHandler() queries.GetCustomersInCityQueryHandler {
	return queries.NewGetCustomersInCityQueryHandler(c.gormDB)
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}
