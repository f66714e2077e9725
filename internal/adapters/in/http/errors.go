package http

import (
	"errors"
	"net/http"

	"invoicing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusFor maps an error returned by a command or query to a response status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrPriceNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrInsertFailed):
		return http.StatusConflict
	case errors.Is(err, errs.ErrTransactionFailed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("path", ctx.Path()),
			zap.String("request_id", ctx.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err),
		)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
