// ABOUTME: Tests for the local JWT expiry pre-check
// ABOUTME: Opaque tokens and claims without exp always defer to the remote probe

package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// makeJWT builds a signed HS256 token expiring at now+ttl. The gate
// never verifies the signature, so any secret works.
func makeJWT(t *testing.T, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "admin-1",
		"exp": time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return token
}

func makeJWTNoExp(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin-1",
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return token
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{"expired jwt", makeJWT(t, -time.Hour), true},
		{"live jwt", makeJWT(t, time.Hour), false},
		{"jwt without exp", makeJWTNoExp(t), false},
		{"opaque token", "abc123", false},
		{"empty token", "", false},
		{"garbage with dots", "a.b.c", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tokenExpired(tc.token, now); got != tc.want {
				t.Errorf("tokenExpired(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}
