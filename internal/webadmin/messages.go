// ABOUTME: Message moderation screen
// ABOUTME: Flat listing of flagged messages from the moderation feed

package webadmin

import (
	"net/http"
)

// handleMessagesPage renders the flagged message listing
func (a *Admin) handleMessagesPage(w http.ResponseWriter, r *http.Request) {
	r, csrfToken := a.ensureCSRFToken(w, r)

	messages, err := a.client.ListMessages(r.Context())
	if err != nil {
		a.handleClientError(w, r, err, func(errMsg string) {
			a.renderMessagesPage(w, nil, errMsg, csrfToken)
		})
		return
	}

	a.renderMessagesPage(w, messages, "", csrfToken)
}
