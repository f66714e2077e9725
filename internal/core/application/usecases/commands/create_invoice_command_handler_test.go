package commands_test

import (
	"context"
	"errors"
	"testing"

	"invoicing/internal/core/application/usecases/commands"
	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/core/ports"
	"invoicing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) AddHeader(ctx context.Context, customerID kernel.CustomerID) (invoice.ID, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(invoice.ID), args.Error(1)
}

func (m *MockInvoiceRepository) AddItem(ctx context.Context, item invoice.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

type MockPriceResolver struct{ mock.Mock }

func (m *MockPriceResolver) ResolvePrice(ctx context.Context, productID kernel.ProductID) (kernel.Money, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(kernel.Money), args.Error(1)
}

type MockInvoiceUoW struct{ mock.Mock }

func (m *MockInvoiceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInvoiceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInvoiceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInvoiceUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

func (m *MockInvoiceUoW) PriceResolver() ports.PriceResolver {
	args := m.Called()
	return args.Get(0).(ports.PriceResolver)
}

type MockInvoiceUoWFactory struct{ mock.Mock }

func (m *MockInvoiceUoWFactory) Create() commands.InvoiceUoW {
	args := m.Called()
	return args.Get(0).(commands.InvoiceUoW)
}

func itemMatcher(invoiceID invoice.ID, lineNumber int, productID kernel.ProductID, quantity int, cost string) any {
	return mock.MatchedBy(func(item invoice.Item) bool {
		return item.InvoiceID() == invoiceID &&
			item.LineNumber() == lineNumber &&
			item.ProductID() == productID &&
			item.Quantity() == quantity &&
			item.Cost().Equal(kernel.MustMoney(cost))
	})
}

type handlerFixture struct {
	repo    *MockInvoiceRepository
	prices  *MockPriceResolver
	uow     *MockInvoiceUoW
	factory *MockInvoiceUoWFactory
	logs    *observer.ObservedLogs
	handler commands.CreateInvoiceCommandHandler
}

func newHandlerFixture() *handlerFixture {
	core, logs := observer.New(zapcore.DebugLevel)
	f := &handlerFixture{
		repo:    new(MockInvoiceRepository),
		prices:  new(MockPriceResolver),
		uow:     new(MockInvoiceUoW),
		factory: new(MockInvoiceUoWFactory),
		logs:    logs,
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("InvoiceRepository").Return(f.repo).Maybe()
	f.uow.On("PriceResolver").Return(f.prices).Maybe()
	f.handler = commands.NewCreateInvoiceCommandHandler(f.factory, zap.New(core))
	return f
}

func (f *handlerFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.repo.AssertExpectations(t)
	f.prices.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateInvoiceCommand(5, []kernel.ProductID{1, 2}, []int{3, 4})

	f := newHandlerFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.repo.On("AddHeader", mock.Anything, kernel.CustomerID(5)).Return(invoice.ID(42), nil).Once(),
		f.prices.On("ResolvePrice", mock.Anything, kernel.ProductID(1)).Return(kernel.MustMoney("10.00"), nil).Once(),
		f.repo.On("AddItem", mock.Anything, itemMatcher(42, 0, 1, 3, "10.00")).Return(nil).Once(),
		f.prices.On("ResolvePrice", mock.Anything, kernel.ProductID(2)).Return(kernel.MustMoney("5.00"), nil).Once(),
		f.repo.On("AddItem", mock.Anything, itemMatcher(42, 1, 2, 4, "5.00")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
	)

	id, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, invoice.ID(42), id)
	f.uow.AssertNotCalled(t, "Rollback", mock.Anything)
	f.assertExpectations(t)
	assert.Equal(t, 1, f.logs.FilterMessage("invoice created").Len())
}

func TestCreateInvoiceCommandHandler_Handle_ResolvesEachProductSeparately(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateInvoiceCommand(1, []kernel.ProductID{7, 3, 7}, []int{1, 1, 2})

	f := newHandlerFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.repo.On("AddHeader", mock.Anything, kernel.CustomerID(1)).Return(invoice.ID(9), nil).Once()
	f.prices.On("ResolvePrice", mock.Anything, kernel.ProductID(7)).Return(kernel.MustMoney("1.25"), nil).Twice()
	f.prices.On("ResolvePrice", mock.Anything, kernel.ProductID(3)).Return(kernel.MustMoney("99.99"), nil).Once()
	f.repo.On("AddItem", mock.Anything, itemMatcher(9, 0, 7, 1, "1.25")).Return(nil).Once()
	f.repo.On("AddItem", mock.Anything, itemMatcher(9, 1, 3, 1, "99.99")).Return(nil).Once()
	f.repo.On("AddItem", mock.Anything, itemMatcher(9, 2, 7, 2, "1.25")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	id, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, invoice.ID(9), id)
	f.assertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_NoLines(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateInvoiceCommand(5, nil, nil)

	f := newHandlerFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.repo.On("AddHeader", mock.Anything, kernel.CustomerID(5)).Return(invoice.ID(1), nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
	)

	id, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, invoice.ID(1), id)
	f.prices.AssertNotCalled(t, "ResolvePrice", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateInvoiceCommand{} // not constructed properly
	factory := new(MockInvoiceUoWFactory)

	h := commands.NewCreateInvoiceCommandHandler(factory, zap.NewNop())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCreateInvoiceCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateInvoiceCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateInvoiceCommand(5, []kernel.ProductID{1}, []int{1})

	f := newHandlerFixture()
	f.uow.On("Begin", ctx).Return(errors.New("connection refused")).Once()

	_, err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrTransactionFailed)
	f.uow.AssertNotCalled(t, "Rollback", mock.Anything)
	f.repo.AssertNotCalled(t, "AddHeader", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_HeaderError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateInvoiceCommand(5, []kernel.ProductID{1}, []int{1})
	headerErr := errs.NewInsertError("invoices", 0)

	f := newHandlerFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.repo.On("AddHeader", mock.Anything, kernel.CustomerID(5)).Return(invoice.ID(0), headerErr).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err := f.handler.Handle(ctx, cmd)
	require.Equal(t, headerErr, err)
	f.prices.AssertNotCalled(t, "ResolvePrice", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_PriceNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateInvoiceCommand(5, []kernel.ProductID{1, 999}, []int{1, 1})
	priceErr := errs.NewPriceNotFoundError(int64(999))

	f := newHandlerFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.repo.On("AddHeader", mock.Anything, kernel.CustomerID(5)).Return(invoice.ID(3), nil).Once(),
		f.prices.On("ResolvePrice", mock.Anything, kernel.ProductID(1)).Return(kernel.MustMoney("2.00"), nil).Once(),
		f.repo.On("AddItem", mock.Anything, itemMatcher(3, 0, 1, 1, "2.00")).Return(nil).Once(),
		f.prices.On("ResolvePrice", mock.Anything, kernel.ProductID(999)).Return(kernel.ZeroMoney(), priceErr).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPriceNotFound)
	f.repo.AssertNumberOfCalls(t, "AddItem", 1)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_ItemError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateInvoiceCommand(5, []kernel.ProductID{1, 2}, []int{1, 1})
	itemErr := errs.NewInsertErrorWithCause("items", errors.New("duplicate key"))

	f := newHandlerFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.repo.On("AddHeader", mock.Anything, kernel.CustomerID(5)).Return(invoice.ID(3), nil).Once(),
		f.prices.On("ResolvePrice", mock.Anything, kernel.ProductID(1)).Return(kernel.MustMoney("2.00"), nil).Once(),
		f.repo.On("AddItem", mock.Anything, mock.AnythingOfType("invoice.Item")).Return(itemErr).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err := f.handler.Handle(ctx, cmd)
	require.Equal(t, itemErr, err)
	f.prices.AssertNumberOfCalls(t, "ResolvePrice", 1)
	f.assertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateInvoiceCommand(5, []kernel.ProductID{1}, []int{1})

	f := newHandlerFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.repo.On("AddHeader", mock.Anything, kernel.CustomerID(5)).Return(invoice.ID(3), nil).Once(),
		f.prices.On("ResolvePrice", mock.Anything, kernel.ProductID(1)).Return(kernel.MustMoney("2.00"), nil).Once(),
		f.repo.On("AddItem", mock.Anything, mock.AnythingOfType("invoice.Item")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(errors.New("serialization failure")).Once(),
	)

	id, err := f.handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrTransactionFailed)
	assert.Equal(t, invoice.ID(0), id)
	f.uow.AssertNotCalled(t, "Rollback", mock.Anything)
	f.assertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_RollbackErrorDoesNotMaskCause(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateInvoiceCommand(5, []kernel.ProductID{999}, []int{1})
	priceErr := errs.NewPriceNotFoundError(int64(999))

	f := newHandlerFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.repo.On("AddHeader", mock.Anything, kernel.CustomerID(5)).Return(invoice.ID(3), nil).Once(),
		f.prices.On("ResolvePrice", mock.Anything, kernel.ProductID(999)).Return(kernel.ZeroMoney(), priceErr).Once(),
		f.uow.On("Rollback", ctx).Return(errors.New("connection lost")).Once(),
	)

	_, err := f.handler.Handle(ctx, cmd)
	require.Equal(t, priceErr, err)
	f.assertExpectations(t)

	entries := f.logs.FilterMessage("rollback failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}
