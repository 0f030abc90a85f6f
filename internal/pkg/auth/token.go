package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidFormat = errors.New("invalid token format")
)

// TokenConfig defines session token settings
type TokenConfig struct {
	SecretKey   string
	TokenIssuer string
}

// TokenService mints and validates session tokens. A session token is an
// opaque marker: presence of a matching stored record is what authenticates
// a request, so minted tokens carry no expiry claim.
type TokenService struct {
	config TokenConfig
}

// NewTokenService creates a new TokenService
func NewTokenService(config TokenConfig) *TokenService {
	return &TokenService{config: config}
}

// Generate mints a new signed session token
func (s *TokenService) Generate() (string, error) {
	claims := jwt.RegisteredClaims{
		IssuedAt: jwt.NewNumericDate(time.Now()),
		Issuer:   s.config.TokenIssuer,
		ID:       uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Validate checks the token signature and shape
func (s *TokenService) Validate(tokenString string) error {
	if tokenString == "" {
		return ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})
	if err != nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidFormat
	}

	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	// Some clients send the raw token without the Bearer prefix
	return authHeader, nil
}
