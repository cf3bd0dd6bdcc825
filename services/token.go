package services

import (
	"errors"
	"time"

	"ArogyaMCVK/config"
	"ArogyaMCVK/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
	ErrNoSecret     = errors.New("JWT_SECRET is not defined")
)

// TokenClaims is everything a bearer token carries: the subject user id
// in the registered claims plus the account role.
type TokenClaims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken mints a signed token for the given subject and role,
// expiring after the configured lifetime.
func GenerateToken(subject string, role models.Role) (string, error) {
	secret := config.JWTSecret()
	if secret == "" {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := TokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(config.JWTLifetime())),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyToken checks the signature and expiry of a token and returns the
// embedded subject id and role. Expiry is reported distinctly from every
// other way a token can be bad.
func VerifyToken(tokenString string) (string, models.Role, error) {
	secret := config.JWTSecret()
	if secret == "" {
		return "", "", ErrNoSecret
	}

	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrTokenExpired
		}
		return "", "", ErrTokenInvalid
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return "", "", ErrTokenInvalid
	}
	return claims.Subject, claims.Role, nil
}
