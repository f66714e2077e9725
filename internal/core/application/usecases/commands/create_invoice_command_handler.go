package commands

import (
	"context"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/pkg/errs"

	"go.uber.org/zap"
)

// CreateInvoiceCommandHandler writes an invoice header and its line items as one
// atomic unit: either every row is committed or none is.
//
// Example:
//
//	handler := NewCreateInvoiceCommandHandler(uowFactory, logger)
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("invoice creation failed: %w", err)
//	}
type CreateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
	logger     *zap.Logger
}

// NewCreateInvoiceCommandHandler creates a handler for invoice creation.
// Requires an InvoiceUoWFactory for transactional persistence.
func NewCreateInvoiceCommandHandler(uowFactory InvoiceUoWFactory, logger *zap.Logger) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With(zap.String("component", "create_invoice_handler")),
	}
}

// Handle inserts the header, then for each line in order resolves the product's
// current price and inserts the item with that price as its cost. The generated
// invoice id is returned only after a successful commit.
//
// On any failure after the transaction was opened it is rolled back and the
// original error is returned unchanged; a failing rollback is logged.
func (h *CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) (invoice.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, errs.NewTransactionError("begin", err)
	}

	finished := false
	defer func() {
		if finished {
			return
		}
		if rbErr := uow.Rollback(ctx); rbErr != nil {
			h.logger.Error("rollback failed",
				zap.Int64("customer_id", int64(cmd.CustomerID())),
				zap.Error(rbErr),
			)
		}
	}()

	invoiceID, err := h.writeInvoice(ctx, uow, cmd)
	if err != nil {
		return 0, err
	}

	finished = true
	if err = uow.Commit(ctx); err != nil {
		return 0, errs.NewTransactionError("commit", err)
	}

	h.logger.Info("invoice created",
		zap.Int64("invoice_id", int64(invoiceID)),
		zap.Int64("customer_id", int64(cmd.CustomerID())),
		zap.Int("items", len(cmd.Lines())),
	)
	return invoiceID, nil
}

func (h *CreateInvoiceCommandHandler) writeInvoice(
	ctx context.Context,
	uow InvoiceUoW,
	cmd CreateInvoiceCommand,
) (invoice.ID, error) {
	invoiceRepo := uow.InvoiceRepository()
	prices := uow.PriceResolver()

	invoiceID, err := invoiceRepo.AddHeader(ctx, cmd.CustomerID())
	if err != nil {
		return 0, err
	}

	for lineNumber, line := range cmd.Lines() {
		cost, err := prices.ResolvePrice(ctx, line.ProductID())
		if err != nil {
			return 0, err
		}

		item, err := invoice.NewItem(invoiceID, lineNumber, line, cost)
		if err != nil {
			return 0, err
		}

		if err = invoiceRepo.AddItem(ctx, item); err != nil {
			return 0, err
		}
	}

	return invoiceID, nil
}
