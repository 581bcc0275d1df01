// ABOUTME: Credential storage behind the session cookie
// ABOUTME: Injectable Store interface so tests can substitute a fake

package session

import (
	"net/http"
	"time"
)

// DefaultCookieName is the session cookie holding the bearer token.
const DefaultCookieName = "auth_token"

// Store reads and writes the admin's bearer credential. The production
// implementation is a cookie; tests substitute fakes.
type Store interface {
	// Token returns the credential attached to the request, or "" when
	// none is present.
	Token(r *http.Request) string

	// Set attaches a fresh credential to the response.
	Set(w http.ResponseWriter, token string)

	// Clear invalidates the stored credential. The next navigation
	// takes the gate's no-credential branch.
	Clear(w http.ResponseWriter)
}

// CookieStore keeps the credential in a client-side cookie.
type CookieStore struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// NewCookieStore creates a cookie-backed credential store. An empty
// name falls back to DefaultCookieName.
func NewCookieStore(name string, ttl time.Duration, secure bool) *CookieStore {
	if name == "" {
		name = DefaultCookieName
	}
	return &CookieStore{Name: name, TTL: ttl, Secure: secure}
}

func (s *CookieStore) Token(r *http.Request) string {
	cookie, err := r.Cookie(s.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (s *CookieStore) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.TTL),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (s *CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}
