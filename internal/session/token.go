package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenExpired = errors.New("stored token is expired")

// CheckTokenFreshness inspects a stored bearer token without verifying its
// signature (the client does not hold the signing key) and reports whether it
// is still usable. Tokens without an exp claim are treated as usable; the
// server remains the authority and will answer 401 if it disagrees.
func CheckTokenFreshness(tokenString string, now time.Time) error {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errors.New("invalid token claims")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return err
	}
	if exp == nil {
		return nil
	}
	if now.After(exp.Time) {
		return ErrTokenExpired
	}
	return nil
}
