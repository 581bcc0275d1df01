// ABOUTME: Template rendering functions for the admin console
// ABOUTME: Loads templates from the embedded filesystem and renders them

package webadmin

import (
	"bytes"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/yuin/goldmark"

	"github.com/telldemm/admin-console/internal/api"
	"github.com/telldemm/admin-console/internal/store"
)

// pageNav drives the pager controls. When the backend reported no
// totals the page count is a local estimate and Estimated is set, so
// the next request can carry the estimate forward as "known".
type pageNav struct {
	Page         int
	Limit        int
	TotalPages   int
	TotalCount   int
	Estimated    bool
	FilterUserID int
}

// buildPageNav folds reported pagination and the local estimate into
// one pager. got is the number of rows on this page; known is the best
// page count seen so far, carried in the query string.
func buildPageNav(p *api.Pagination, page, limit, got, known int) pageNav {
	nav := pageNav{Page: page, Limit: limit}
	if p != nil && p.Known() {
		nav.TotalPages = p.TotalPages
		nav.TotalCount = p.TotalCount
		return nav
	}
	nav.Estimated = true
	nav.TotalPages = api.EstimateTotalPages(known, page, got, limit)
	return nav
}

func (n pageNav) HasPrev() bool { return n.Page > 1 }
func (n pageNav) HasNext() bool { return n.Page < n.TotalPages }

func (n pageNav) PrevQuery() string { return n.pageQuery(n.Page - 1) }
func (n pageNav) NextQuery() string { return n.pageQuery(n.Page + 1) }

func (n pageNav) pageQuery(page int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(n.Limit))
	if n.Estimated {
		q.Set("known", strconv.Itoa(n.TotalPages))
	}
	if n.FilterUserID > 0 {
		q.Set("to_user_id", strconv.Itoa(n.FilterUserID))
	}
	return "?" + q.Encode()
}

// templateFuncs are available in every template.
var templateFuncs = template.FuncMap{
	"markdown": renderMarkdown,
	"userRow":  func(u api.User) userRowData { return userRowData{User: u} },
}

// renderMarkdown converts notification body markdown to HTML. Raw HTML
// in the source is not passed through.
func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

func parseTemplates(files ...string) *template.Template {
	return template.Must(template.New("base.html").Funcs(templateFuncs).ParseFS(templateFS, files...))
}

// Template data types
type loginData struct {
	Title     string
	Error     string
	CSRFToken string
}

type dashboardData struct {
	Title     string
	Recent    []store.AuditEntry
	Error     string
	CSRFToken string
}

type usersPageData struct {
	Title     string
	Users     []api.User
	Error     string
	CSRFToken string
}

type userRowData struct {
	User  api.User
	Error string
}

type groupsPageData struct {
	Title     string
	Groups    []api.Group
	Error     string
	CSRFToken string
}

type groupMembersPageData struct {
	Title     string
	GroupID   int
	Members   []api.Member
	Error     string
	CSRFToken string
}

type channelsPageData struct {
	Title     string
	Channels  []api.Channel
	Nav       pageNav
	Error     string
	CSRFToken string
}

type channelDetailData struct {
	Title     string
	Channel   api.Channel
	Error     string
	CSRFToken string
}

type channelMembersPageData struct {
	Title       string
	ChannelID   int
	ChannelInfo *api.ChannelInfo
	Members     []api.ChannelMember
	Nav         pageNav
	Error       string
	CSRFToken   string
}

type notificationsPageData struct {
	Title string
	notificationsView
}

type messagesPageData struct {
	Title     string
	Messages  []api.Message
	Error     string
	CSRFToken string
}

// renderLoginPage renders the login page
func (a *Admin) renderLoginPage(w http.ResponseWriter, errorMsg, csrfToken string) {
	tmpl := parseTemplates("templates/base.html", "templates/login.html")

	data := loginData{
		Title:     "Login",
		Error:     errorMsg,
		CSRFToken: csrfToken,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		a.logger.Error("failed to render login page", "error", err)
	}
}

// renderDashboard renders the landing page
func (a *Admin) renderDashboard(w http.ResponseWriter, recent []store.AuditEntry, csrfToken string) {
	tmpl := parseTemplates("templates/base.html", "templates/dashboard.html")

	data := dashboardData{
		Title:     "Dashboard",
		Recent:    recent,
		CSRFToken: csrfToken,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		a.logger.Error("failed to render dashboard", "error", err)
	}
}

// renderUsersPage renders the user table
func (a *Admin) renderUsersPage(w http.ResponseWriter, users []api.User, errorMsg, csrfToken string) {
	tmpl := parseTemplates("templates/base.html", "templates/users.html", "templates/partials/user_row.html")

	data := usersPageData{
		Title:     "Users",
		Users:     users,
		Error:     errorMsg,
		CSRFToken: csrfToken,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		a.logger.Error("failed to render users page", "error", err)
	}
}

// renderUserRow renders a single user row (htmx partial)
func (a *Admin) renderUserRow(w http.ResponseWriter, user api.User, errorMsg string) {
	tmpl := parseTemplates("templates/partials/user_row.html")

	data := userRowData{
		User:  user,
		Error: errorMsg,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "user_row", data); err != nil {
		a.logger.Error("failed to render user row", "error", err)
	}
}

// renderGroupsPage renders the group table
func (a *Admin) renderGroupsPage(w http.ResponseWriter, groups []api.Group, errorMsg, csrfToken string) {
	tmpl := parseTemplates("templates/base.html", "templates/groups.html")

	data := groupsPageData{
		Title:     "Groups",
		Groups:    groups,
		Error:     errorMsg,
		CSRFToken: csrfToken,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		a.logger.Error("failed to render groups page", "error", err)
	}
}

// renderGroupMembersPage renders the members of one group
func (a *Admin) renderGroupMembersPage(w http.ResponseWriter, groupID int, members []api.Member, errorMsg, csrfToken string) {
	tmpl := parseTemplates("templates/base.html", "templates/group_members.html")

	data := groupMembersPageData{
		Title:     "Group Members",
		GroupID:   groupID,
		Members:   members,
		Error:     errorMsg,
		CSRFToken: csrfToken,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		a.logger.Error("failed to render group members page", "error", err)
	}
}

// renderChannelsPage renders one page of the channel table
func (a *Admin) renderChannelsPage(w http.ResponseWriter, channels []api.Channel, nav pageNav, errorMsg, csrfToken string) {
	tmpl := parseTemplates("templates/base.html", "templates/channels.html", "templates/partials/pager.html")

	data := channelsPageData{
		Title:     "Channels",
		Channels:  channels,
		Nav:       nav,
		Error:     errorMsg,
		CSRFToken: csrfToken,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		a.logger.Error("failed to render channels page", "error", err)
	}
}

// renderChannelDetailPage renders one channel's detail record
func (a *Admin) renderChannelDetailPage(w http.ResponseWriter, channel api.Channel, errorMsg, csrfToken string) {
	tmpl := parseTemplates("templates/base.html", "templates/channel_detail.html")

	data := channelDetailData{
		Title:     "Channel",
		Channel:   channel,
		Error:     errorMsg,
		CSRFToken: csrfToken,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		a.logger.Error("failed to render channel detail page", "error", err)
	}
}

// renderChannelMembersPage renders one page of a channel's members
func (a *Admin) renderChannelMembersPage(w http.ResponseWriter, channelID int, info *api.ChannelInfo, members []api.ChannelMember, nav pageNav, errorMsg, csrfToken string) {
	tmpl := parseTemplates("templates/base.html", "templates/channel_members.html", "templates/partials/pager.html")

	data := channelMembersPageData{
		Title:       "Channel Members",
		ChannelID:   channelID,
		ChannelInfo: info,
		Members:     members,
		Nav:         nav,
		Error:       errorMsg,
		CSRFToken:   csrfToken,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		a.logger.Error("failed to render channel members page", "error", err)
	}
}

// renderNotificationsPage renders the notification history and compose form
func (a *Admin) renderNotificationsPage(w http.ResponseWriter, view notificationsView) {
	tmpl := parseTemplates("templates/base.html", "templates/notifications.html", "templates/partials/pager.html")

	data := notificationsPageData{
		Title:             "Notifications",
		notificationsView: view,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		a.logger.Error("failed to render notifications page", "error", err)
	}
}

// renderMessagesPage renders the flagged message listing
func (a *Admin) renderMessagesPage(w http.ResponseWriter, messages []api.Message, errorMsg, csrfToken string) {
	tmpl := parseTemplates("templates/base.html", "templates/messages.html")

	data := messagesPageData{
		Title:     "Messages",
		Messages:  messages,
		Error:     errorMsg,
		CSRFToken: csrfToken,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		a.logger.Error("failed to render messages page", "error", err)
	}
}
