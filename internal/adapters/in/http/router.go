package http

import (
	"invoicing/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// RequestValidator plugs go-playground/validator into echo's Context.Validate.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}

// Register installs middleware and routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.Error(v.Error),
			)
			return nil
		},
	}))

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/invoices", s.CreateInvoice)
	api.GET("/customers", s.GetCustomers)
	api.GET("/customers/count", s.CountCustomers)
	api.GET("/customers/:id", s.GetCustomer)
	api.GET("/customers/:id/name", s.GetCustomerName)
	api.GET("/customers/:id/total", s.GetCustomerTotal)
	api.GET("/customers/:id/invoices/count", s.CountCustomerInvoices)
}
