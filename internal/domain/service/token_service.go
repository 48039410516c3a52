package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"courier/internal/domain/entity"
)

// Claims defines the identity carried by a bearer token. Every privileged
// call is independently verified from these claims; no server-side session
// state exists.
type Claims struct {
	UserID int64       `json:"uid"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed, time-bounded token for the given identity.
	Generate(userID int64, email string, role entity.Role) (string, error)

	// Validate checks a token string and returns its claims. It fails
	// closed: any parse, signature, or expiry error yields an error,
	// never partial claims.
	Validate(tokenString string) (*Claims, error)

	// TokenDuration returns the configured validity window of issued tokens.
	TokenDuration() time.Duration
}
