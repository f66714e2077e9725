// Package http is the inbound REST adapter. It translates JSON requests into
// commands and queries and maps domain errors to HTTP status codes.
package http

import (
	"context"
	"net/http"

	"invoicing/internal/core/application/usecases/commands"
	"invoicing/internal/core/application/usecases/queries"
	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type (
	CreateInvoiceHandler interface {
		Handle(ctx context.Context, cmd commands.CreateInvoiceCommand) (invoice.ID, error)
	}
	GetCustomerTotalHandler interface {
		Handle(ctx context.Context, query queries.GetCustomerTotalQuery) (kernel.Money, error)
	}
	GetCustomerNameHandler interface {
		Handle(ctx context.Context, query queries.GetCustomerNameQuery) (string, error)
	}
	CountCustomersHandler interface {
		Handle(ctx context.Context, query queries.CountCustomersQuery) (int64, error)
	}
	CountCustomerInvoicesHandler interface {
		Handle(ctx context.Context, query queries.CountCustomerInvoicesQuery) (int64, error)
	}
	GetCustomerHandler interface {
		Handle(ctx context.Context, query queries.GetCustomerQuery) (queries.CustomerResponse, error)
	}
	GetCustomersInCityHandler interface {
		Handle(ctx context.Context, query queries.GetCustomersInCityQuery) ([]queries.CustomerResponse, error)
	}
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createInvoiceHandler CreateInvoiceHandler

	// Query handlers
	getCustomerTotalHandler      GetCustomerTotalHandler
	getCustomerNameHandler       GetCustomerNameHandler
	countCustomersHandler        CountCustomersHandler
	countCustomerInvoicesHandler CountCustomerInvoicesHandler
	getCustomerHandler           GetCustomerHandler
	getCustomersInCityHandler    GetCustomersInCityHandler

	logger *zap.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createInvoiceHandler CreateInvoiceHandler,
	getCustomerTotalHandler GetCustomerTotalHandler,
	getCustomerNameHandler GetCustomerNameHandler,
	countCustomersHandler CountCustomersHandler,
	countCustomerInvoicesHandler CountCustomerInvoicesHandler,
	getCustomerHandler GetCustomerHandler,
	getCustomersInCityHandler GetCustomersInCityHandler,
	logger *zap.Logger,
) *Server {
	return &Server{
		createInvoiceHandler:         createInvoiceHandler,
		getCustomerTotalHandler:      getCustomerTotalHandler,
		getCustomerNameHandler:       getCustomerNameHandler,
		countCustomersHandler:        countCustomersHandler,
		countCustomerInvoicesHandler: countCustomerInvoicesHandler,
		getCustomerHandler:           getCustomerHandler,
		getCustomersInCityHandler:    getCustomersInCityHandler,
		logger:                       logger.With(zap.String("component", "http_server")),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateInvoice handles POST /api/v1/invoices - bills a customer for a list of products.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	var req CreateInvoiceRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateInvoiceCommand(
		kernel.CustomerID(*req.CustomerID),
		lo.Map(req.ProductIDs, func(id int64, _ int) kernel.ProductID { return kernel.ProductID(id) }),
		req.Quantities,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.createInvoiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateInvoiceResponse{ID: int64(id)})
}

// GetCustomers handles GET /api/v1/customers?city= - lists the customers of a city.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query, err := queries.NewGetCustomersInCityQuery(ctx.QueryParam("city"))
	if err != nil {
		return s.fail(ctx, err)
	}

	customers, err := s.getCustomersInCityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, lo.Map(customers, func(c queries.CustomerResponse, _ int) Customer {
		return newCustomer(c)
	}))
}

// CountCustomers handles GET /api/v1/customers/count.
func (s *Server) CountCustomers(ctx echo.Context) error {
	count, err := s.countCustomersHandler.Handle(ctx.Request().Context(), queries.NewCountCustomersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	customerID, err := customerIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	customer, err := s.getCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newCustomer(customer))
}

// GetCustomerName handles GET /api/v1/customers/:id/name.
func (s *Server) GetCustomerName(ctx echo.Context) error {
	customerID, err := customerIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetCustomerNameQuery(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	name, err := s.getCustomerNameHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, NameResponse{Name: name})
}

// GetCustomerTotal handles GET /api/v1/customers/:id/total.
func (s *Server) GetCustomerTotal(ctx echo.Context) error {
	customerID, err := customerIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetCustomerTotalQuery(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	total, err := s.getCustomerTotalHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TotalResponse{Total: total.StringFixed(2)})
}

// CountCustomerInvoices handles GET /api/v1/customers/:id/invoices/count.
func (s *Server) CountCustomerInvoices(ctx echo.Context) error {
	customerID, err := customerIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewCountCustomerInvoicesQuery(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	count, err := s.countCustomerInvoicesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

func customerIDParam(ctx echo.Context) (kernel.CustomerID, error) {
	var id int64
	if err := echo.PathParamsBinder(ctx).MustInt64("id", &id).BindError(); err != nil {
		return 0, err
	}
	return kernel.CustomerID(id), nil
}
