// Package jwt implements generation and parsing of the JWT tokens used by
// the dashboard API.
package jwt

import (
	"time"
)

// Maker describes the interface for generating and parsing JWT tokens.
type Maker interface {
	// GenerateToken creates a token for the given user.
	GenerateToken(email, fullName, userUID string) (string, error)
	// ParseToken returns the *CustomClaims carried by a valid token.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl implements Maker with an HMAC secret and a token TTL.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWTMaker creates a MakerImpl from a secret key and TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
