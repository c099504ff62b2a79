package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService validates access tokens issued by the external user
// directory. Token issuance happens outside this service.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
