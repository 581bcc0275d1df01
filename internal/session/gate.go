// ABOUTME: Session gate middleware deciding allow/redirect/reject per request
// ABOUTME: Fail-closed: remote validation failure is indistinguishable from rejection

package session

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Result is the tri-state outcome of validating a request's credential.
type Result int

const (
	// Absent means no credential was present on the request.
	Absent Result = iota
	// Valid means the backend accepted the credential.
	Valid
	// Invalid means the credential was rejected or the backend was
	// unreachable. The two are deliberately indistinguishable.
	Invalid
)

func (r Result) String() string {
	switch r {
	case Absent:
		return "absent"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Validator answers whether a bearer credential is still accepted by
// the backend. Implemented by api.Client.
type Validator interface {
	ValidateSession(ctx context.Context, token string) bool
}

// Auditor records gate rejections. Optional; a nil Auditor disables
// audit recording.
type Auditor interface {
	RecordGateRejection(ctx context.Context, remoteAddr, path string, result Result)
}

// Policy classifies request paths for the gate. The convention is
// default-protect: everything needs a valid session except the login
// surface, static assets, and explicitly exempted public prefixes.
type Policy struct {
	// LoginPath is the login surface, always allowed to avoid a
	// redirect loop.
	LoginPath string

	// StaticPrefixes are asset paths (bundles, favicon). Allowed
	// unconditionally in lax mode; credential-checked in strict mode.
	StaticPrefixes []string

	// PublicPrefixes are further exempted path prefixes, e.g. routes
	// reserved for the backend's own API.
	PublicPrefixes []string

	// Strict requires a credential even for static assets, unless the
	// request was referred by the login page (so the login page can
	// load its own assets). Asset rejections answer 401 directly: a
	// redirect is useless to a non-navigation request.
	Strict bool
}

// DefaultPolicy returns the standard policy for the dashboard.
func DefaultPolicy() Policy {
	return Policy{
		LoginPath:      "/login",
		StaticPrefixes: []string{"/static/", "/favicon.ico"},
	}
}

// IsStatic reports whether path is a known asset path.
func (p Policy) IsStatic(path string) bool {
	for _, prefix := range p.StaticPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// IsPublic reports whether path is exempt from protection (login
// surface or a configured public prefix). Static assets are handled
// separately because strict mode treats them differently.
func (p Policy) IsPublic(path string) bool {
	if path == p.LoginPath {
		return true
	}
	for _, prefix := range p.PublicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Gate is the authorization checkpoint evaluated before serving a
// protected page. Every protected navigation re-validates against the
// backend; nothing is cached across requests.
type Gate struct {
	store     Store
	validator Validator
	policy    Policy
	auditor   Auditor
	logger    *slog.Logger
	now       func() time.Time
}

// NewGate creates a gate over the given credential store and validator.
func NewGate(store Store, validator Validator, policy Policy) *Gate {
	return &Gate{
		store:     store,
		validator: validator,
		policy:    policy,
		logger:    slog.Default().With("component", "gate"),
		now:       time.Now,
	}
}

// SetAuditor attaches an audit sink for gate rejections.
func (g *Gate) SetAuditor(a Auditor) {
	g.auditor = a
}

// Check classifies the request's credential. The credential itself is
// returned so the caller can thread it into the request context.
func (g *Gate) Check(r *http.Request) (Result, string) {
	token := g.store.Token(r)
	if token == "" {
		return Absent, ""
	}

	// An already-expired JWT credential cannot become valid; skip the
	// network round trip.
	if tokenExpired(token, g.now()) {
		return Invalid, token
	}

	if !g.validator.ValidateSession(r.Context(), token) {
		return Invalid, token
	}
	return Valid, token
}

// Middleware wraps next with the gate's decision: allow, redirect to
// the login surface, or reject with 401.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if g.policy.IsStatic(path) {
			if !g.policy.Strict || refererIsLogin(r, g.policy.LoginPath) {
				next.ServeHTTP(w, r)
				return
			}

			// Strict mode: assets need a live session too.
			result, token := g.Check(r)
			if result != Valid {
				g.reject(w, r, result, true)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithToken(r.Context(), token)))
			return
		}

		if g.policy.IsPublic(path) {
			next.ServeHTTP(w, r)
			return
		}

		result, token := g.Check(r)
		if result != Valid {
			g.reject(w, r, result, false)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithToken(r.Context(), token)))
	})
}

// reject issues the rejection response: 401 for asset requests, a
// redirect to the login surface for navigations. A stale credential is
// cleared either way.
func (g *Gate) reject(w http.ResponseWriter, r *http.Request, result Result, asset bool) {
	if result == Invalid {
		g.store.Clear(w)
	}

	g.logger.Info("gate rejected request",
		"path", r.URL.Path,
		"result", result.String(),
		"asset", asset,
	)

	if g.auditor != nil {
		g.auditor.RecordGateRejection(r.Context(), r.RemoteAddr, r.URL.Path, result)
	}

	if asset {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, g.policy.LoginPath, http.StatusSeeOther)
}

// refererIsLogin reports whether the request was referred by the login
// surface, which is how the login page's own assets get through in
// strict mode.
func refererIsLogin(r *http.Request, loginPath string) bool {
	referer := r.Header.Get("Referer")
	if referer == "" {
		return false
	}
	u, err := url.Parse(referer)
	if err != nil {
		return false
	}
	return u.Path == loginPath
}
