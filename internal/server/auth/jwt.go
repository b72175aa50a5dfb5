// Package auth issues and verifies the self-contained session tokens used
// as bearer credentials. Tokens are never persisted and cannot be revoked
// before they expire; rotating the signing secret invalidates all of them.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// timeNow is a seam for tests.
var timeNow = time.Now

// Claims carries the registered claims plus the subject identity id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// GenerateToken signs an HS256 token for userID that expires
// validityDuration after issuance. The expiration instant is returned too.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, time.Time, error) {
	now := timeNow()
	expires := now.Add(validityDuration)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expires, nil
}

// GetUserIDFromToken verifies tokenString under secretKey and returns the
// embedded identity id. It fails with common.ErrTokenExpired once the
// expiration instant is not strictly in the future, and with
// common.ErrInvalidToken for bad signatures, foreign algorithms, malformed
// input or a missing subject.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(timeNow),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
