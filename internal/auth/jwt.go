// Package auth issues and validates sheet edit tokens.
//
// An edit token is an HS256 JWT whose subject is a sheet ID. Whoever holds it
// may change that sheet until the token expires; reading a sheet needs no
// token. Tokens are not revocable, so keep the TTL short enough that a leaked
// link stops working on its own.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer is the iss claim on every edit token.
const Issuer = "godutch"

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// Claims carries the sheet an edit token grants. SheetID mirrors Subject.
type Claims struct {
	SheetID string `json:"sheet_id"`
	jwt.RegisteredClaims
}

// JWTManager signs and checks edit tokens with one shared secret.
type JWTManager struct {
	secretKey []byte
	ttl       time.Duration
	parser    *jwt.Parser
}

// NewJWTManager creates a manager whose tokens stay valid for ttl.
func NewJWTManager(secretKey string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(Issuer),
			jwt.WithExpirationRequired(),
		),
	}
}

// Generate issues an edit token for sheetID.
func (m *JWTManager) Generate(sheetID string) (string, error) {
	if sheetID == "" {
		return "", errors.New("sheet id required")
	}

	now := time.Now()
	claims := &Claims{
		SheetID: sheetID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    Issuer,
			Subject:   sheetID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign edit token: %w", err)
	}
	return signed, nil
}

// Validate checks signature, issuer and expiry and returns the claims.
// A token whose sheet claim disagrees with its subject is rejected.
func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := m.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.SheetID == "" || claims.SheetID != claims.Subject {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
