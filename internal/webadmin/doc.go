// Package webadmin provides the browser-based administration console.
//
// # Overview
//
// The console provides a server-rendered interface for:
//
//   - Users: presence, profile data, force-logout
//   - Groups: group listings and per-group membership
//   - Channels: paginated channel listings, detail, and membership
//   - Notifications: paginated history and a compose form
//   - Messages: the flagged message moderation feed
//
// # Architecture
//
// Components:
//
//   - Admin: main struct coordinating handlers and templates
//   - DataClient: the backend surface, satisfied by *api.Client
//   - Templates: HTML templates embedded in the binary
//   - Auditor: local audit log for admin actions
//
// Handlers never re-check authorization. The session gate wraps the
// whole mux and is the single authorization predicate; handlers read
// the already-validated credential from the request context when they
// need it.
//
// # Authentication
//
// Login posts credentials to the backend and stores the returned token
// in the session cookie. Any backend call that comes back 401 clears
// the cookie and bounces the browser to the login page.
//
// # Templates
//
// Templates use Go's html/template with a small function map:
//
//   - Base layout: templates/base.html
//   - Pages: templates/*.html
//   - Partials (htmx responses): templates/partials/*.html
//
// Templates and static assets are embedded using //go:embed for
// single-binary deployment.
//
// # CSRF Protection
//
// All form submissions require CSRF tokens:
//
//	<input type="hidden" name="csrf_token" value="{{.CSRFToken}}">
//
// htmx requests send the token in the X-CSRF-Token header instead.
//
// # Usage
//
// Create and mount the console:
//
//	admin := webadmin.New(client, sessions, auditStore, cfg)
//	admin.RegisterRoutes(mux)
//
// The mux is then wrapped by the session gate middleware.
package webadmin
