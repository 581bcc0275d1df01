// ABOUTME: Group management screens
// ABOUTME: Group table and per-group member listing

package webadmin

import (
	"net/http"
	"strconv"
)

// handleGroupsPage renders the group table
func (a *Admin) handleGroupsPage(w http.ResponseWriter, r *http.Request) {
	r, csrfToken := a.ensureCSRFToken(w, r)

	groups, err := a.client.ListGroups(r.Context())
	if err != nil {
		a.handleClientError(w, r, err, func(errMsg string) {
			a.renderGroupsPage(w, nil, errMsg, csrfToken)
		})
		return
	}

	a.renderGroupsPage(w, groups, "", csrfToken)
}

// handleGroupMembersPage renders the members of one group
func (a *Admin) handleGroupMembersPage(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid group id", http.StatusBadRequest)
		return
	}

	r, csrfToken := a.ensureCSRFToken(w, r)

	members, err := a.client.ListGroupMembers(r.Context(), groupID)
	if err != nil {
		a.handleClientError(w, r, err, func(errMsg string) {
			a.renderGroupMembersPage(w, groupID, nil, errMsg, csrfToken)
		})
		return
	}

	a.renderGroupMembersPage(w, groupID, members, "", csrfToken)
}
