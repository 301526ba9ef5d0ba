package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims carries the user identity inside the JWT.
type CustomClaims struct {
	Email                string `json:"email"`
	FullName             string `json:"full_name"`
	UserUID              string `json:"user_uid"`
	jwt.RegisteredClaims        // standard claims (ExpiresAt, IssuedAt, ...)
}

// GenerateToken creates a signed JWT for the given user. The lifetime is
// taken from the maker's TTL.
func (j *MakerImpl) GenerateToken(email, fullName, userUID string) (string, error) {
	claims := CustomClaims{
		Email:    email,
		FullName: fullName,
		UserUID:  userUID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken validates the signature and expiry of tokenStr and returns
// its claims.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
