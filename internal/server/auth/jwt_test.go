package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse_Success(t *testing.T) {
	secret := []byte("super-secret")

	tok, exp, err := GenerateToken("user-123", secret, 24*time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, 5*time.Second)

	got, err := GetUserIDFromToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", got)
}

func TestGetUserIDFromToken_Expired(t *testing.T) {
	tok, _, err := GenerateToken("u1", []byte("secret"), -time.Second)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(tok, []byte("secret"))
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestGetUserIDFromToken_ExpiresAfterWindow(t *testing.T) {
	orig := timeNow
	t.Cleanup(func() { timeNow = orig })

	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return issued }

	tok, _, err := GenerateToken("u1", []byte("secret"), 24*time.Hour)
	require.NoError(t, err)

	timeNow = func() time.Time { return issued.Add(23 * time.Hour) }
	_, err = GetUserIDFromToken(tok, []byte("secret"))
	require.NoError(t, err)

	timeNow = func() time.Time { return issued.Add(24*time.Hour + time.Second) }
	_, err = GetUserIDFromToken(tok, []byte("secret"))
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestGetUserIDFromToken_WrongSecret(t *testing.T) {
	tok, _, err := GenerateToken("u2", []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(tok, []byte("rotated-secret"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetUserIDFromToken_Malformed(t *testing.T) {
	for _, tok := range []string{"", "not.a.jwt", "abc"} {
		_, err := GetUserIDFromToken(tok, []byte("k"))
		assert.ErrorIs(t, err, common.ErrInvalidToken, tok)
	}
}

func TestGetUserIDFromToken_RejectsOtherAlgorithms(t *testing.T) {
	secret := []byte("k")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           "u3",
	}).SignedString(secret)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(tok, secret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetUserIDFromToken_RequiresSubjectAndExpiry(t *testing.T) {
	secret := []byte("k")

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(secret)
	require.NoError(t, err)
	_, err = GetUserIDFromToken(noSubject, secret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "u4"}).SignedString(secret)
	require.NoError(t, err)
	_, err = GetUserIDFromToken(noExpiry, secret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
