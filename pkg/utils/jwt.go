package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// CreateToken signs claims with HS256.
func CreateToken(secret []byte, claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses tokenString into claims and checks its signature and
// expiry. Expired tokens report ErrShareLinkExpired, anything else
// ErrInvalidShareLink.
func ValidateToken(secret []byte, tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if errors.Is(err, jwt.ErrTokenExpired) {
		return fmt.Errorf("%w: %v", ErrShareLinkExpired, err)
	}
	if err != nil || !token.Valid {
		return fmt.Errorf("%w: %v", ErrInvalidShareLink, err)
	}
	return nil
}
