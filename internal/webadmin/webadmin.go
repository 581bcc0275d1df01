// ABOUTME: Admin web UI package for the Telldemm management console
// ABOUTME: Provides login, CSRF protection, and the management screen routes

package webadmin

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/telldemm/admin-console/internal/api"
	"github.com/telldemm/admin-console/internal/session"
	"github.com/telldemm/admin-console/internal/store"
)

const (
	// CSRFCookieName is the name of the CSRF token cookie
	CSRFCookieName = "telldemm_admin_csrf"
)

// DataClient is the backend surface the dashboard consumes. Satisfied
// by *api.Client; tests substitute a fake.
type DataClient interface {
	Login(ctx context.Context, email, password string) (string, error)
	ListUsers(ctx context.Context) ([]api.User, error)
	ForceLogout(ctx context.Context, userID int) (api.ForceLogoutResult, error)
	ListGroups(ctx context.Context) ([]api.Group, error)
	ListGroupMembers(ctx context.Context, groupID int) ([]api.Member, error)
	ListChannels(ctx context.Context, page, limit int) (api.ChannelsResult, error)
	GetChannel(ctx context.Context, channelID int) (api.Channel, error)
	ListChannelMembers(ctx context.Context, channelID, page, limit int) (api.ChannelMembersResult, error)
	ListNotifications(ctx context.Context, toUserID, page, limit int) (api.NotificationsResult, error)
	SendNotification(ctx context.Context, payload api.NotificationPayload) (api.SendNotificationResult, error)
	ListMessages(ctx context.Context) ([]api.Message, error)
}

// Auditor records admin actions. Satisfied by *store.SQLiteStore.
type Auditor interface {
	AppendAudit(ctx context.Context, e *store.AuditEntry) error
	ListAudit(ctx context.Context, f store.AuditFilter) ([]store.AuditEntry, error)
}

// Config holds admin UI configuration
type Config struct {
	// LoginPath is where rejected and logged-out sessions land.
	LoginPath string

	// SecureCookies controls the Secure attribute on the CSRF cookie.
	SecureCookies bool
}

// Admin handles the management console routes.
type Admin struct {
	client   DataClient
	sessions session.Store
	audit    Auditor
	config   Config
	logger   *slog.Logger
}

// New creates a new Admin handler. audit may be nil to disable audit
// recording.
func New(client DataClient, sessions session.Store, audit Auditor, cfg Config) *Admin {
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/login"
	}
	return &Admin{
		client:   client,
		sessions: sessions,
		audit:    audit,
		config:   cfg,
		logger:   slog.Default().With("component", "webadmin"),
	}
}

// RegisterRoutes registers all console routes on the given mux. Access
// control is not re-checked here: the session gate wraps the whole mux
// and is the single authorization predicate.
func (a *Admin) RegisterRoutes(mux *http.ServeMux) {
	// Login surface (the gate lets these through)
	mux.HandleFunc("GET "+a.config.LoginPath, a.handleLoginPage)
	mux.HandleFunc("POST "+a.config.LoginPath, a.handleLogin)
	mux.HandleFunc("POST /logout", a.handleLogout)

	// Static assets
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// Dashboard
	mux.HandleFunc("GET /{$}", a.handleDashboard)

	// User management
	mux.HandleFunc("GET /users", a.handleUsersPage)
	mux.HandleFunc("POST /users/{id}/force-logout", a.handleForceLogout)

	// Group management
	mux.HandleFunc("GET /groups", a.handleGroupsPage)
	mux.HandleFunc("GET /groups/{id}/members", a.handleGroupMembersPage)

	// Channel management
	mux.HandleFunc("GET /channels", a.handleChannelsPage)
	mux.HandleFunc("GET /channels/{id}", a.handleChannelDetailPage)
	mux.HandleFunc("GET /channels/{id}/members", a.handleChannelMembersPage)

	// Notifications
	mux.HandleFunc("GET /notifications", a.handleNotificationsPage)
	mux.HandleFunc("POST /notifications/send", a.handleNotificationSend)

	// Messages
	mux.HandleFunc("GET /messages", a.handleMessagesPage)

	a.logger.Info("console routes registered")
}

// handleLoginPage renders the login page
func (a *Admin) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	// A present credential bounces to the dashboard; if it turns out
	// to be stale the gate clears it and sends the browser back here.
	if a.sessions.Token(r) != "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	r, csrfToken := a.ensureCSRFToken(w, r)
	a.renderLoginPage(w, "", csrfToken)
}

// handleLogin processes login form submission
func (a *Admin) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		_, csrfToken := a.ensureCSRFToken(w, r)
		a.renderLoginPage(w, "Invalid form data", csrfToken)
		return
	}

	if !a.validateCSRF(r) {
		_, csrfToken := a.ensureCSRFToken(w, r)
		a.renderLoginPage(w, "Invalid request, please try again", csrfToken)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	if email == "" || password == "" {
		_, csrfToken := a.ensureCSRFToken(w, r)
		a.renderLoginPage(w, "Email and password required", csrfToken)
		return
	}

	token, err := a.client.Login(r.Context(), email, password)
	if err != nil {
		a.logger.Info("login rejected", "email", email)
		a.recordAudit(r.Context(), email, store.AuditLoginFailed, "", nil)
		_, csrfToken := a.ensureCSRFToken(w, r)
		a.renderLoginPage(w, api.UserMessage(err), csrfToken)
		return
	}

	a.sessions.Set(w, token)
	a.recordAudit(r.Context(), email, store.AuditLogin, "", nil)
	a.logger.Info("admin login successful", "email", email)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLogout clears the credential and returns to the login page
func (a *Admin) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err == nil {
		// Don't block logout on a bad CSRF token, just note it
		if !a.validateCSRF(r) {
			a.logger.Warn("logout request with invalid CSRF token")
		}
	}

	a.sessions.Clear(w)

	// Clear CSRF cookie
	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	a.recordAudit(r.Context(), r.RemoteAddr, store.AuditLogout, "", nil)
	http.Redirect(w, r, a.config.LoginPath, http.StatusSeeOther)
}

// handleDashboard renders the landing page with recent audit activity
func (a *Admin) handleDashboard(w http.ResponseWriter, r *http.Request) {
	var recent []store.AuditEntry
	if a.audit != nil {
		var err error
		recent, err = a.audit.ListAudit(r.Context(), store.AuditFilter{Limit: 10})
		if err != nil {
			a.logger.Error("failed to list audit log", "error", err)
		}
	}

	r, csrfToken := a.ensureCSRFToken(w, r)
	a.renderDashboard(w, recent, csrfToken)
}

// RecordGateRejection satisfies session.Auditor so gate rejections land
// in the same audit log as everything else.
func (a *Admin) RecordGateRejection(ctx context.Context, remoteAddr, path string, result session.Result) {
	a.recordAudit(ctx, remoteAddr, store.AuditGateReject, "", map[string]any{
		"path":   path,
		"result": result.String(),
	})
}

// recordAudit appends an audit entry, logging instead of failing when
// the store is unavailable.
func (a *Admin) recordAudit(ctx context.Context, actor string, action store.AuditAction, targetID string, detail map[string]any) {
	if a.audit == nil {
		return
	}
	entry := &store.AuditEntry{
		Actor:    actor,
		Action:   action,
		TargetID: targetID,
		Detail:   detail,
	}
	if err := a.audit.AppendAudit(ctx, entry); err != nil {
		a.logger.Error("failed to append audit entry", "action", action, "error", err)
	}
}

// handleClientError maps a data-client failure to the right response:
// a backend 401 invalidates the session (the next navigation hits the
// gate's no-credential branch); anything else renders the page with a
// generic error string.
func (a *Admin) handleClientError(w http.ResponseWriter, r *http.Request, err error, render func(errMsg string)) {
	if api.IsUnauthorized(err) {
		a.sessions.Clear(w)
		http.Redirect(w, r, a.config.LoginPath, http.StatusSeeOther)
		return
	}
	a.logger.Error("backend call failed", "path", r.URL.Path, "error", err)
	render(api.UserMessage(err))
}

// ensureCSRFToken generates a CSRF token if not present and adds it to the response
func (a *Admin) ensureCSRFToken(w http.ResponseWriter, r *http.Request) (*http.Request, string) {
	cookie, err := r.Cookie(CSRFCookieName)
	if err == nil && cookie.Value != "" {
		return r, cookie.Value
	}

	token, err := generateSecureToken(32)
	if err != nil {
		a.logger.Error("failed to generate CSRF token", "error", err)
		token = "" // Will fail validation, but won't crash
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.config.SecureCookies,
		SameSite: http.SameSiteStrictMode,
	})

	return r, token
}

// validateCSRF checks the CSRF token from form against cookie
func (a *Admin) validateCSRF(r *http.Request) bool {
	cookie, err := r.Cookie(CSRFCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}

	formToken := r.FormValue("csrf_token")
	if formToken == "" {
		// Also check header for htmx requests
		formToken = r.Header.Get("X-CSRF-Token")
	}

	return formToken != "" && formToken == cookie.Value
}

// generateSecureToken returns a URL-safe random token of n bytes.
func generateSecureToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
