// ABOUTME: User management screen and the force-logout action
// ABOUTME: Applies the optimistic row patch instead of refetching the whole list

package webadmin

import (
	"net/http"
	"strconv"

	"github.com/telldemm/admin-console/internal/api"
	"github.com/telldemm/admin-console/internal/store"
)

// handleUsersPage renders the user table
func (a *Admin) handleUsersPage(w http.ResponseWriter, r *http.Request) {
	r, csrfToken := a.ensureCSRFToken(w, r)

	users, err := a.client.ListUsers(r.Context())
	if err != nil {
		a.handleClientError(w, r, err, func(errMsg string) {
			a.renderUsersPage(w, nil, errMsg, csrfToken)
		})
		return
	}

	a.renderUsersPage(w, users, "", csrfToken)
}

// handleForceLogout terminates one user's sessions and re-renders that
// row. On success the row is patched locally (force_logout=1, offline)
// with no further fetch; on a declined request the row is unchanged
// and the backend's message is surfaced.
func (a *Admin) handleForceLogout(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if !a.validateCSRF(r) {
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return
	}

	userID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	// Current row values travel with the form so the patched row can
	// be rendered without refetching the list.
	row := userRowFromForm(r, userID)

	result, err := a.client.ForceLogout(r.Context(), userID)
	if err != nil {
		a.handleClientError(w, r, err, func(errMsg string) {
			a.renderUserRow(w, row, errMsg)
		})
		return
	}

	if !result.Status {
		msg := result.Message
		if msg == "" {
			msg = "Force logout failed"
		}
		a.renderUserRow(w, row, msg)
		return
	}

	rows := []api.User{row}
	api.ApplyForceLogout(rows, userID)
	a.recordAudit(r.Context(), r.RemoteAddr, store.AuditForceLogout, strconv.Itoa(userID), nil)
	a.renderUserRow(w, rows[0], "")
}

// userRowFromForm rebuilds the displayed row from hidden form fields.
func userRowFromForm(r *http.Request, userID int) api.User {
	isOnline := r.FormValue("is_online") == "1"
	forceLogout, _ := strconv.Atoi(r.FormValue("force_logout"))

	return api.User{
		UserID:      userID,
		Name:        r.FormValue("name"),
		PhoneNumber: r.FormValue("phone_number"),
		Status:      r.FormValue("status"),
		LastSeen:    r.FormValue("last_seen"),
		IsOnline:    isOnline,
		ForceLogout: forceLogout,
	}
}
