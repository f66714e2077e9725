package postgres_test

import (
	"context"

	"invoicing/internal/adapters/out/postgres/invoicerepo"
	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/errs"
)

func (suite *UnitOfWorkIntegrationTestSuite) TestPriceResolver_ReturnsCurrentPrice() {
	prices := suite.factory.Create().PriceResolver()

	price, err := prices.ResolvePrice(context.Background(), 1)
	suite.Require().NoError(err)
	suite.True(price.Equal(kernel.MustMoney("10.00")))

	price, err = prices.ResolvePrice(context.Background(), 3)
	suite.Require().NoError(err)
	suite.True(price.Equal(kernel.MustMoney("0.99")))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPriceResolver_UnknownProduct() {
	_, err := suite.factory.Create().PriceResolver().ResolvePrice(context.Background(), 999)

	suite.Require().ErrorIs(err, errs.ErrPriceNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestInvoiceRepository_AddHeader_DistinctIDs() {
	ctx := context.Background()
	repo := suite.factory.Create().InvoiceRepository()

	first, err := repo.AddHeader(ctx, 5)
	suite.Require().NoError(err)
	second, err := repo.AddHeader(ctx, 5)
	suite.Require().NoError(err)

	suite.NotEqual(first, second)
	suite.Positive(int64(first))

	var header invoicerepo.InvoiceDTO
	suite.Require().NoError(suite.db.First(&header, int64(first)).Error)
	suite.Equal(int64(5), header.CustomerID)
	suite.True(header.Total.IsZero(), "header total is the placeholder")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestInvoiceRepository_AddHeader_UnknownCustomer() {
	_, err := suite.factory.Create().InvoiceRepository().AddHeader(context.Background(), 404)

	suite.Require().ErrorIs(err, errs.ErrInsertFailed)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestInvoiceRepository_AddItem() {
	ctx := context.Background()
	repo := suite.factory.Create().InvoiceRepository()
	id, err := repo.AddHeader(ctx, 5)
	suite.Require().NoError(err)

	line, _ := invoice.NewLine(2, 7)
	item, err := invoice.NewItem(id, 0, line, kernel.MustMoney("5.00"))
	suite.Require().NoError(err)

	suite.Require().NoError(repo.AddItem(ctx, item))

	var stored invoicerepo.ItemDTO
	suite.Require().NoError(suite.db.Where("invoice_id = ? AND line_number = ?", int64(id), 0).Take(&stored).Error)
	suite.Equal(int64(2), stored.ProductID)
	suite.Equal(7, stored.Quantity)
	suite.True(stored.Cost.Equal(kernel.MustMoney("5.00")))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestInvoiceRepository_AddItem_DuplicateLine() {
	ctx := context.Background()
	repo := suite.factory.Create().InvoiceRepository()
	id, err := repo.AddHeader(ctx, 5)
	suite.Require().NoError(err)

	line, _ := invoice.NewLine(1, 1)
	item, _ := invoice.NewItem(id, 0, line, kernel.MustMoney("10.00"))
	suite.Require().NoError(repo.AddItem(ctx, item))

	err = repo.AddItem(ctx, item)
	suite.Require().ErrorIs(err, errs.ErrInsertFailed)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestInvoiceRepository_AddItem_UnknownInvoice() {
	line, _ := invoice.NewLine(1, 1)
	item, _ := invoice.NewItem(12345, 0, line, kernel.MustMoney("10.00"))

	err := suite.factory.Create().InvoiceRepository().AddItem(context.Background(), item)

	suite.Require().ErrorIs(err, errs.ErrInsertFailed)
}
