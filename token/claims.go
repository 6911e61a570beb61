package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lexlink/lexlink-cli/internal/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// ExpiryOf extracts the expiry claim from an access token without
// verifying its signature. The backend remains the authority on validity;
// this is for display and pre-emptive refresh hints only.
func ExpiryOf(accessToken string) (time.Time, error) {
	parser := jwt.NewParser()

	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(accessToken, &claims); err != nil {
		return time.Time{}, errors.Wrapf(err, "[ExpiryOf] unparseable access token")
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.Wrapf(errors.ErrUnsupported, "[ExpiryOf] token has no exp claim")
	}
	return claims.ExpiresAt.Time, nil
}

// IsExpired reports whether the access token's exp claim has passed.
// Tokens that cannot be parsed are treated as expired.
func IsExpired(accessToken string) bool {
	expiry, err := ExpiryOf(accessToken)
	if err != nil {
		return true
	}
	return NowTimeFunc().After(expiry)
}
