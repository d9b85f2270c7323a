package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"snapFeed/domain"
	"snapFeed/errs"
)

// TokenLifetime is how long an issued token stays valid. Expiry is absolute
// wall clock, not sliding.
const TokenLifetime = 30 * time.Minute

// invalidCredentials is returned for every token failure. The message must
// not reveal which check failed.
var invalidCredentials = errs.Errorf(errs.EUNAUTHORIZED, "Could not validate credentials.")

// TokenManager signs and verifies the bearer tokens handed out at login.
type TokenManager struct {
	secret []byte
}

// NewTokenManager returns a TokenManager signing with the given secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
	}
}

// Issue produces a signed HS256 token embedding the user's id and username,
// valid for TokenLifetime from now.
func (tm *TokenManager) Issue(user *domain.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(TokenLifetime).Unix(),
	})
	return token.SignedString(tm.secret)
}

// Verify checks the token's signature and expiry and returns the embedded
// user id. Every failure mode maps to the same generic credential error.
func (tm *TokenManager) Verify(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, invalidCredentials
		}
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, invalidCredentials
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, invalidCredentials
	}
	// Numeric json claims decode as float64.
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, invalidCredentials
	}
	return int(id), nil
}
