package common

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSigner wraps the opaque session ID in a signed cookie token.
// The token is only an envelope: the Redis/cache session remains the
// source of truth, so deleting the session invalidates the cookie
// immediately regardless of the token's expiry.
type TokenSigner struct {
	secretKey []byte
}

// NewTokenSigner creates a new token signer
func NewTokenSigner(secretKey []byte) *TokenSigner {
	return &TokenSigner{secretKey: secretKey}
}

// Sign issues an HS256 token carrying the session ID as jti.
func (s *TokenSigner) Sign(sessionID, userID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"jti": sessionID,
		"sub": userID,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify validates a cookie token and extracts the session ID.
func (s *TokenSigner) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	sessionID, ok := (*claims)["jti"].(string)
	if !ok || sessionID == "" {
		return "", errors.New("missing or invalid jti claim")
	}

	return sessionID, nil
}
