package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/delivery/http/middleware"
	httpvalidator "courier/internal/delivery/http/validator"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/service"
	"courier/internal/usecase"
)

// stubUserUsecase returns canned responses for handler tests.
type stubUserUsecase struct {
	registerOutput *usecase.AuthOutput
	registerErr    error
	loginOutput    *usecase.AuthOutput
	loginErr       error
	profile        *usecase.UserView
	profileErr     error
}

func (s *stubUserUsecase) Register(context.Context, *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return s.registerOutput, s.registerErr
}

func (s *stubUserUsecase) Login(context.Context, *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return s.loginOutput, s.loginErr
}

func (s *stubUserUsecase) GetProfile(context.Context, int64) (*usecase.UserView, error) {
	return s.profile, s.profileErr
}

func newUserTestHandler(uc usecase.UserUsecase) *UserHandler {
	return NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = httpvalidator.New()

	return e
}

func TestUserHandler_Register(t *testing.T) {
	uc := &stubUserUsecase{
		registerOutput: &usecase.AuthOutput{
			User:  &usecase.UserView{UserID: 42, Email: "test@example.com", Role: "client"},
			Token: "signed.jwt",
		},
	}
	h := newUserTestHandler(uc)

	e := newTestEcho()
	body := `{"name":"Test User","email":"test@example.com","password":"Password123!","address":"1 Main St"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "signed.jwt")
	// The envelope never carries a password hash.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Register_MalformedBody(t *testing.T) {
	h := newUserTestHandler(&stubUserUsecase{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestUserHandler_Register_EmptyBody(t *testing.T) {
	h := newUserTestHandler(&stubUserUsecase{})

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(""))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)

	// An empty body leaves the bind target nil; that is a client error,
	// not an internal one.
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	h := newUserTestHandler(&stubUserUsecase{})

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"test@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)

	require.Error(t, err)
	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ElementsMatch(t, []string{"name", "password", "address"}, validationErr.Fields())
}

func TestUserHandler_Register_UsecaseErrorPropagates(t *testing.T) {
	h := newUserTestHandler(&stubUserUsecase{registerErr: domainerrors.ErrUserAlreadyExists})

	e := newTestEcho()
	body := `{"name":"Test User","email":"taken@example.com","password":"Password123!","address":"1 Main St"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)

	// The centralized error handler maps this to 409; the handler only
	// propagates it.
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserHandler_Login(t *testing.T) {
	uc := &stubUserUsecase{
		loginOutput: &usecase.AuthOutput{
			User:  &usecase.UserView{UserID: 9, Email: "test@example.com", Role: "client"},
			Token: "signed.jwt",
		},
	}
	h := newUserTestHandler(uc)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"test@example.com","password":"Password123!"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt")
}

func TestUserHandler_Me(t *testing.T) {
	uc := &stubUserUsecase{
		profile: &usecase.UserView{UserID: 7, Name: "Test User", Email: "test@example.com"},
	}
	h := newUserTestHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyClaims, &service.Claims{UserID: 7, Email: "test@example.com"})

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Test User")
}

func TestUserHandler_Me_WithoutClaims(t *testing.T) {
	h := newUserTestHandler(&stubUserUsecase{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
