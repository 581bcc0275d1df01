// ABOUTME: Local expiry pre-check for backend-issued credentials
// ABOUTME: Skips the network probe when a JWT credential is already expired

package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired reports whether token is a parseable JWT whose exp has
// already passed. The backend's token is treated as opaque otherwise:
// a non-JWT credential, or one without an exp claim, returns false and
// goes to the remote probe. No signature check happens here; a forged
// exp only costs the forger a network round trip to be rejected.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
