// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"courier/config"
	"courier/internal/domain/entity"
	"courier/internal/domain/service"
)

// fallbackSigningKey keeps local development working without configuration.
// Running with it in production is a known security smell; the constructor
// logs a warning whenever it is used.
const fallbackSigningKey = "your-secret-key"

// accessTokenTTL is the fixed validity window of issued tokens.
const accessTokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, logger *slog.Logger) service.TokenService {
	secret := cfg.SecretKey.Access
	if secret == "" {
		logger.Warn("No token signing key configured, using insecure fallback; set secretKey.access for production")
		secret = fallbackSigningKey
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    accessTokenTTL,
	}
}

// Generate creates a signed HS256 token carrying the caller's identity and role.
func (s *jwtService) Generate(userID int64, email string, role entity.Role) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate parses and verifies a token string. Any parse, signature, or
// expiry failure yields an error; claims are never returned from an invalid
// token.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// TokenDuration returns the configured validity window of issued tokens.
func (s *jwtService) TokenDuration() time.Duration {
	return s.ttl
}
