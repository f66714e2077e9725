package postgres_test

import (
	"context"

	"invoicing/internal/adapters/out/postgres/invoicerepo"
	"invoicing/internal/core/application/usecases/commands"
	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/errs"

	"go.uber.org/zap/zaptest"
)

type invoiceUoWFactory struct {
	create func() commands.InvoiceUoW
}

func (f invoiceUoWFactory) Create() commands.InvoiceUoW {
	return f.create()
}

func (suite *UnitOfWorkIntegrationTestSuite) invoiceHandler() commands.CreateInvoiceCommandHandler {
	factory := invoiceUoWFactory{create: func() commands.InvoiceUoW { return suite.factory.Create() }}
	return commands.NewCreateInvoiceCommandHandler(factory, zaptest.NewLogger(suite.T()))
}

func (suite *UnitOfWorkIntegrationTestSuite) createInvoice(
	customerID kernel.CustomerID,
	productIDs []kernel.ProductID,
	quantities []int,
) (invoice.ID, error) {
	cmd, err := commands.NewCreateInvoiceCommand(customerID, productIDs, quantities)
	if err != nil {
		return 0, err
	}
	handler := suite.invoiceHandler()
	return handler.Handle(context.Background(), cmd)
}

func (suite *UnitOfWorkIntegrationTestSuite) itemsOf(id invoice.ID) []invoicerepo.ItemDTO {
	var items []invoicerepo.ItemDTO
	err := suite.db.Where("invoice_id = ?", int64(id)).Order("line_number").Find(&items).Error
	suite.Require().NoError(err)
	return items
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreateInvoice_WritesHeaderAndItems() {
	id, err := suite.createInvoice(5, []kernel.ProductID{1, 2}, []int{3, 4})
	suite.Require().NoError(err)

	var header invoicerepo.InvoiceDTO
	suite.Require().NoError(suite.db.First(&header, int64(id)).Error)
	suite.Equal(int64(5), header.CustomerID)
	suite.True(header.Total.IsZero())

	items := suite.itemsOf(id)
	suite.Require().Len(items, 2)

	suite.Equal(0, items[0].LineNumber)
	suite.Equal(int64(1), items[0].ProductID)
	suite.Equal(3, items[0].Quantity)
	suite.True(items[0].Cost.Equal(kernel.MustMoney("10.00")))

	suite.Equal(1, items[1].LineNumber)
	suite.Equal(int64(2), items[1].ProductID)
	suite.Equal(4, items[1].Quantity)
	suite.True(items[1].Cost.Equal(kernel.MustMoney("5.00")))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreateInvoice_EachLineGetsItsOwnPrice() {
	id, err := suite.createInvoice(6, []kernel.ProductID{3, 1, 3, 2}, []int{1, 1, 1, 1})
	suite.Require().NoError(err)

	items := suite.itemsOf(id)
	suite.Require().Len(items, 4)
	for i, want := range []string{"0.99", "10.00", "0.99", "5.00"} {
		suite.Equal(i, items[i].LineNumber)
		suite.True(items[i].Cost.Equal(kernel.MustMoney(want)), "line %d cost %s, want %s", i, items[i].Cost, want)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreateInvoice_UnknownProductRollsBackHeader() {
	_, err := suite.createInvoice(5, []kernel.ProductID{1, 999}, []int{1, 1})

	suite.Require().ErrorIs(err, errs.ErrPriceNotFound)
	suite.Zero(suite.countRows("invoices"))
	suite.Zero(suite.countRows("items"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreateInvoice_LengthMismatchWritesNothing() {
	_, err := suite.createInvoice(5, []kernel.ProductID{1}, []int{1, 2})

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.Zero(suite.countRows("invoices"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreateInvoice_UnknownCustomer() {
	_, err := suite.createInvoice(404, []kernel.ProductID{1}, []int{1})

	suite.Require().ErrorIs(err, errs.ErrInsertFailed)
	suite.Zero(suite.countRows("invoices"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreateInvoice_IdenticalCallsCreateDistinctInvoices() {
	first, err := suite.createInvoice(5, []kernel.ProductID{1}, []int{1})
	suite.Require().NoError(err)
	second, err := suite.createInvoice(5, []kernel.ProductID{1}, []int{1})
	suite.Require().NoError(err)

	suite.NotEqual(first, second)
	suite.Equal(int64(2), suite.countRows("invoices"))
	suite.Equal(int64(2), suite.countRows("items"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreateInvoice_CostIsNotRecomputed() {
	id, err := suite.createInvoice(5, []kernel.ProductID{1}, []int{2})
	suite.Require().NoError(err)

	err = suite.db.Exec("UPDATE products SET price = ? WHERE id = ?", kernel.MustMoney("12.00"), 1).Error
	suite.Require().NoError(err)

	items := suite.itemsOf(id)
	suite.Require().Len(items, 1)
	suite.True(items[0].Cost.Equal(kernel.MustMoney("10.00")))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreateInvoice_WithoutLines() {
	id, err := suite.createInvoice(5, nil, nil)
	suite.Require().NoError(err)

	suite.Equal(int64(1), suite.countRows("invoices"))
	suite.Empty(suite.itemsOf(id))
}
