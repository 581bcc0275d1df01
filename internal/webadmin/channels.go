// ABOUTME: Channel management screens with paginated listings
// ABOUTME: Channel table, detail view, and per-channel member listing

package webadmin

import (
	"net/http"
	"strconv"

	"github.com/telldemm/admin-console/internal/api"
)

// queryInt parses a positive integer query parameter with a fallback.
func queryInt(r *http.Request, name string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// handleChannelsPage renders one page of the channel table
func (a *Admin) handleChannelsPage(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)

	r, csrfToken := a.ensureCSRFToken(w, r)

	result, err := a.client.ListChannels(r.Context(), page, limit)
	if err != nil {
		a.handleClientError(w, r, err, func(errMsg string) {
			a.renderChannelsPage(w, nil, pageNav{}, errMsg, csrfToken)
		})
		return
	}

	nav := buildPageNav(&result.Pagination, page, limit, len(result.Channels), queryInt(r, "known", 0))
	a.renderChannelsPage(w, result.Channels, nav, "", csrfToken)
}

// handleChannelDetailPage renders one channel's detail record
func (a *Admin) handleChannelDetailPage(w http.ResponseWriter, r *http.Request) {
	channelID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid channel id", http.StatusBadRequest)
		return
	}

	r, csrfToken := a.ensureCSRFToken(w, r)

	channel, err := a.client.GetChannel(r.Context(), channelID)
	if err != nil {
		a.handleClientError(w, r, err, func(errMsg string) {
			a.renderChannelDetailPage(w, api.Channel{ChannelID: channelID}, errMsg, csrfToken)
		})
		return
	}

	a.renderChannelDetailPage(w, channel, "", csrfToken)
}

// handleChannelMembersPage renders one page of a channel's members
func (a *Admin) handleChannelMembersPage(w http.ResponseWriter, r *http.Request) {
	channelID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid channel id", http.StatusBadRequest)
		return
	}

	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 15)

	r, csrfToken := a.ensureCSRFToken(w, r)

	result, err := a.client.ListChannelMembers(r.Context(), channelID, page, limit)
	if err != nil {
		a.handleClientError(w, r, err, func(errMsg string) {
			a.renderChannelMembersPage(w, channelID, nil, nil, pageNav{}, errMsg, csrfToken)
		})
		return
	}

	nav := buildPageNav(result.Pagination, page, limit, len(result.Members), queryInt(r, "known", 0))
	a.renderChannelMembersPage(w, channelID, result.ChannelInfo, result.Members, nav, "", csrfToken)
}
