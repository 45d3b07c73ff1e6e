package jwt

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenTTL is the fixed validity window for issued tokens. It is a policy
// constant, not caller-configurable.
const tokenTTL = time.Hour

// ErrTokenInvalid covers every signature, algorithm, and expiry failure.
// Callers deliberately cannot tell an expired token from a forged one.
var ErrTokenInvalid = errors.New("token is invalid or expired")

// ErrMalformedSubject indicates the token verified but its subject claim
// could not be parsed into a user ID.
var ErrMalformedSubject = errors.New("token subject is not a valid user id")

// JWTService issues and validates HS384-signed tokens carrying the user ID
// as subject. The signing key is decoded once at construction and never
// changes for the process lifetime.
type JWTService struct {
	secret []byte
}

// NewJWTService decodes the base64-encoded signing secret. A secret that
// fails to decode is a configuration error and should abort startup.
func NewJWTService(base64Secret string) (*JWTService, error) {
	secret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JWT secret: %w", err)
	}
	if len(secret) == 0 {
		return nil, errors.New("JWT secret is empty")
	}
	return &JWTService{secret: secret}, nil
}

// GenerateToken issues a signed token for the given user with a one-hour
// expiry window.
func (s *JWTService) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS384, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies the signature, signing method, and expiry, then
// parses the subject claim into a user ID.
func (s *JWTService) ValidateToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS384 {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS384.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return uuid.Nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, ErrTokenInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrMalformedSubject
	}
	return userID, nil
}
