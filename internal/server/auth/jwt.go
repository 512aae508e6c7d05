// Package auth implements credential handling for the server: password
// hashing, JWT issuance/verification, and bearer-header extraction.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/noteshare/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the set of assertions embedded in issued tokens: the standard
// registered claims plus the identity fields the API needs to serve
// authenticated requests without a user lookup.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// GenerateToken mints an HS256-signed token asserting the given identity,
// expiring after validityDuration.
func GenerateToken(userID int64, email, username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:   userID,
		Email:    email,
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the embedded claims.
// An expired token yields common.ErrTokenExpired; any other verification
// failure yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// ExtractBearerToken pulls the raw token out of an Authorization header
// value. The header must use exactly the "Bearer " scheme.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", common.ErrMissingAuthHeader
	}
	if !strings.HasPrefix(header, common.BearerPrefix) {
		return "", common.ErrMissingAuthHeader
	}
	return strings.TrimPrefix(header, common.BearerPrefix), nil
}
