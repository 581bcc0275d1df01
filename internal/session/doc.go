// Package session holds the admin credential and gates every request on it.
//
// # Overview
//
// The credential is an opaque bearer token issued by the remote backend
// at login and held in a client-side cookie. The Gate middleware
// evaluates each incoming request: public surfaces (the login page,
// static assets, configured public prefixes) pass through, everything
// else requires the credential to be present and still accepted by the
// backend.
//
// # Fail closed
//
// Validation has exactly three outcomes: Absent, Valid, Invalid. A
// rejected credential, an expired one, and an unreachable backend all
// collapse to Invalid; the request is redirected to the login surface
// (or answered 401 for asset requests in strict mode) and the stale
// cookie is cleared. No retry happens within a request; the next
// navigation starts a fresh validation.
//
// # Strict mode
//
// By default static assets are always allowed. Strict mode requires a
// live session even for assets, except when the login page itself is
// the referer, so that the login page can render. Asset rejections are
// a direct 401 rather than a redirect.
//
// # Per-request model
//
// Nothing is cached across requests: every protected navigation probes
// the backend again. The validated token is placed on the request
// context via WithToken, where the API client's TokenFunc picks it up.
package session
