// Package auth issues and validates service tokens for the analyzer API.
// The analyzer is a backend service, not a user-facing app: clients hold a
// single API credential and exchange it for a short-lived JWT.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims are the JWT claims carried by a service token.
type Claims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

// Service issues and validates service tokens.
type Service interface {
	IssueToken(clientID, clientSecret string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Config holds authentication configuration. ClientSecretHash is a bcrypt
// hash; the plaintext secret never appears in configuration.
type Config struct {
	SecretKey        string
	TokenDuration    time.Duration
	ClientID         string
	ClientSecretHash string
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		TokenDuration: 24 * time.Hour,
	}
}

// JWTService implements Service with HMAC-signed JWTs.
type JWTService struct {
	config Config
}

// NewJWTService creates a JWT-based token service.
func NewJWTService(config Config) *JWTService {
	if config.TokenDuration == 0 {
		config.TokenDuration = DefaultConfig().TokenDuration
	}
	return &JWTService{config: config}
}

// IssueToken checks the client credential and returns a signed token.
func (s *JWTService) IssueToken(clientID, clientSecret string) (string, error) {
	if clientID != s.config.ClientID {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.config.ClientSecretHash), []byte(clientSecret)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := &Claims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.SecretKey))
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// HashSecret hashes a client secret for storage in configuration.
func HashSecret(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	return string(bytes), err
}
