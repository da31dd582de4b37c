package http

import (
	"errors"
	"log/slog"
	"net/http"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/changerequest"
	"bakery/internal/core/domain/model/export"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusFor maps an error returned by a use case to an HTTP status. Unknown
// errors are 500.
func StatusFor(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrCapacityExceeded),
		errors.Is(err, order.ErrProductUnavailable),
		errors.Is(err, order.ErrEmptyOrder):
		return http.StatusUnprocessableEntity
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrCutoffPassed),
		errors.Is(err, order.ErrAlreadyExported),
		errors.Is(err, changerequest.ErrInvalidState),
		errors.Is(err, changerequest.ErrDuplicatePending),
		errors.Is(err, catalog.ErrProductInUse),
		errors.Is(err, export.ErrExportConflict),
		errors.Is(err, ports.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler renders every error as an Error body. Messages of 500s are
// logged and replaced.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := StatusFor(err)
		message := err.Error()
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		}
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
			message = http.StatusText(code)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, Error{Code: code, Message: message})
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "error response not written", "error", err)
		}
	}
}
