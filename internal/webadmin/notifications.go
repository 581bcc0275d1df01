// ABOUTME: Notification screens: paginated history with a recipient filter
// ABOUTME: and the compose form that pushes a notification to one user

package webadmin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/telldemm/admin-console/internal/api"
	"github.com/telldemm/admin-console/internal/store"
)

// notificationsView is everything the notifications screen needs.
type notificationsView struct {
	Notifications []api.Notification
	Users         []api.User
	ToUserID      int
	Nav           pageNav
	Error         string
	FormError     string
	FormNotice    string
	CSRFToken     string
}

// handleNotificationsPage renders the notification history plus the
// compose form. The recipient dropdown is fed from the user list; a
// failure there degrades to a free-form ID field rather than blocking
// the page.
func (a *Admin) handleNotificationsPage(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)
	toUserID, _ := strconv.Atoi(r.URL.Query().Get("to_user_id"))

	r, csrfToken := a.ensureCSRFToken(w, r)

	view := notificationsView{
		ToUserID:  toUserID,
		CSRFToken: csrfToken,
	}

	result, err := a.client.ListNotifications(r.Context(), toUserID, page, limit)
	if err != nil {
		a.handleClientError(w, r, err, func(errMsg string) {
			view.Error = errMsg
			a.renderNotificationsPage(w, view)
		})
		return
	}

	view.Notifications = result.Notifications
	view.Nav = buildPageNav(result.Pagination, page, limit, len(result.Notifications), queryInt(r, "known", 0))
	// The recipient filter rides every pager link, whether the page
	// count came from the backend or a local estimate.
	view.Nav.FilterUserID = toUserID

	users, err := a.client.ListUsers(r.Context())
	if err != nil {
		a.logger.Warn("user list unavailable for recipient dropdown", "error", err)
	} else {
		view.Users = users
	}

	a.renderNotificationsPage(w, view)
}

// handleNotificationSend validates and submits the compose form. The
// sender identity is kept for the audit trail but never put on the
// wire; the backend stamps the sender itself.
func (a *Admin) handleNotificationSend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if !a.validateCSRF(r) {
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return
	}

	r, csrfToken := a.ensureCSRFToken(w, r)

	toUserID, _ := strconv.Atoi(r.FormValue("to_user_id"))
	fromUserID, _ := strconv.Atoi(r.FormValue("from_user_id"))
	title := strings.TrimSpace(r.FormValue("title"))
	message := strings.TrimSpace(r.FormValue("message"))
	kind := r.FormValue("type")
	if kind == "" {
		kind = "admin"
	}

	renderFormError := func(msg string) {
		view := notificationsView{FormError: msg, CSRFToken: csrfToken}
		a.fillNotificationHistory(r, &view)
		a.renderNotificationsPage(w, view)
	}

	if toUserID < 1 {
		renderFormError("Recipient is required")
		return
	}
	if title == "" || message == "" {
		renderFormError("Title and message are required")
		return
	}

	result, err := a.client.SendNotification(r.Context(), api.NotificationPayload{
		ToUserID: toUserID,
		Title:    title,
		Message:  message,
		Type:     kind,
	})
	if err != nil {
		a.handleClientError(w, r, err, renderFormError)
		return
	}

	if !result.OK() {
		msg := result.Message
		if msg == "" {
			msg = "Notification was not accepted"
		}
		renderFormError(msg)
		return
	}

	a.recordAudit(r.Context(), r.RemoteAddr, store.AuditSendNotification, strconv.Itoa(toUserID), map[string]any{
		"from_user_id": fromUserID,
		"title":        title,
		"type":         kind,
	})

	view := notificationsView{FormNotice: "Notification sent", CSRFToken: csrfToken}
	a.fillNotificationHistory(r, &view)
	a.renderNotificationsPage(w, view)
}

// fillNotificationHistory loads the first history page and the user
// list into the view, dropping errors so form feedback still renders.
func (a *Admin) fillNotificationHistory(r *http.Request, view *notificationsView) {
	result, err := a.client.ListNotifications(r.Context(), 0, 1, 10)
	if err == nil {
		view.Notifications = result.Notifications
		view.Nav = buildPageNav(result.Pagination, 1, 10, len(result.Notifications), 0)
	}
	if users, err := a.client.ListUsers(r.Context()); err == nil {
		view.Users = users
	}
}
