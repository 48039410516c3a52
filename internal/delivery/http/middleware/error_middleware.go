package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/delivery/http/response"
	domainerrors "courier/internal/domain/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Every error
// leaves as the unified envelope; internal error text never reaches the
// caller, it is logged here instead.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if writeErr := response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()); writeErr != nil {
			m.logger.Error("Failed to write error response", "error", writeErr)
		}

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		if writeErr := response.Error(c, httpErr.Code, "HTTP_ERROR", message, ""); writeErr != nil {
			m.logger.Error("Failed to write error response", "error", writeErr)
		}

		return
	}

	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"request_id", deliverycontext.GetRequestIDFromContext(c.Request().Context()),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	if writeErr := response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", ""); writeErr != nil {
		m.logger.Error("Failed to write error response", "error", writeErr)
	}
}
