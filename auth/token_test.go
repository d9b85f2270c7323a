package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"snapFeed/domain"
	"snapFeed/errs"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret")
	user := &domain.User{ID: 42, Username: "alice"}

	token, err := tm.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, 42, id)
}

func TestTokenCarriesClaims(t *testing.T) {
	tm := NewTokenManager("test-secret")
	user := &domain.User{ID: 42, Username: "alice"}

	token, err := tm.Issue(user)
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	require.EqualValues(t, 42, claims["user_id"])
	require.Equal(t, "alice", claims["username"])

	// Expiry is absolute wall clock, thirty minutes from issuance.
	exp, iat := int64(claims["exp"].(float64)), int64(claims["iat"].(float64))
	require.EqualValues(t, int64(TokenLifetime/time.Second), exp-iat)
}

func TestTokenTampered(t *testing.T) {
	tm := NewTokenManager("test-secret")
	token, err := tm.Issue(&domain.User{ID: 42, Username: "alice"})
	require.NoError(t, err)

	_, err = tm.Verify(token + "x")
	require.Error(t, err)
	require.Equal(t, errs.EUNAUTHORIZED, errs.ErrorCode(err))
}

func TestTokenWrongSecret(t *testing.T) {
	other := NewTokenManager("other-secret")
	token, err := other.Issue(&domain.User{ID: 42, Username: "alice"})
	require.NoError(t, err)

	tm := NewTokenManager("test-secret")
	_, err = tm.Verify(token)
	require.Error(t, err)
	require.Equal(t, errs.EUNAUTHORIZED, errs.ErrorCode(err))
}

func TestTokenExpired(t *testing.T) {
	// Hand-roll a token whose expiry is already in the past, signed with the
	// right secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  42,
		"username": "alice",
		"iat":      time.Now().Add(-time.Hour).Unix(),
		"exp":      time.Now().Add(-30 * time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tm := NewTokenManager("test-secret")
	_, err = tm.Verify(signed)
	require.Error(t, err)
	require.Equal(t, errs.EUNAUTHORIZED, errs.ErrorCode(err))
}

func TestTokenMissingUserIDClaim(t *testing.T) {
	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "alice",
		"exp":      time.Now().Add(30 * time.Minute).Unix(),
	})
	signed, err := anonymous.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tm := NewTokenManager("test-secret")
	_, err = tm.Verify(signed)
	require.Error(t, err)
	require.Equal(t, errs.EUNAUTHORIZED, errs.ErrorCode(err))
}
