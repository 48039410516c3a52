// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"courier/internal/delivery/http/response"
	"courier/internal/domain/entity"
	"courier/internal/domain/service"
)

// ContextKeyClaims is the echo context key the authenticated caller's claims
// are stored under.
const ContextKeyClaims = "claims"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller's claims on
// the context. A missing or malformed header is an authentication failure;
// a present but unverifiable token is a forbidden one.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Forbidden(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(ContextKeyClaims, claims)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the caller's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ContextKeyClaims).(*service.Claims)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if claims.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// CallerClaims returns the authenticated caller's claims from the context, or
// nil when the request did not pass through Authenticate.
func CallerClaims(c echo.Context) *service.Claims {
	claims, ok := c.Get(ContextKeyClaims).(*service.Claims)
	if !ok {
		return nil
	}

	return claims
}
