package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	domainerrors "courier/internal/domain/errors"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/shipments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m.HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec := handleError(t, domainerrors.ErrShipmentNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SHIPMENT_NOT_FOUND")
	assert.Contains(t, rec.Body.String(), "Shipment not found")
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	rec := handleError(t, domainerrors.ErrUserAlreadyExists.WrapMessage("registration failed"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_ALREADY_EXISTS")
}

func TestErrorMiddleware_ValidationErrorListsFields(t *testing.T) {
	rec := handleError(t, domainerrors.NewValidationError("weight", "recipient_name"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, rec.Body.String(), "weight")
	assert.Contains(t, rec.Body.String(), "recipient_name")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

// Unclassified errors must not leak their internal text to the caller.
func TestErrorMiddleware_UnknownErrorHidesDetail(t *testing.T) {
	rec := handleError(t, errors.New("pq: connection refused at 10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}
