// Package api is the HTTP client for the Telldemm backend's admin API.
//
// # Overview
//
// Every management screen in the console is backed by this client: it
// performs authenticated reads (users, groups, channels, members,
// notifications, messages) and two writes (send notification, force
// logout) against the remote backend, normalizing the heterogeneous
// response envelopes the backend has shipped over time into flat Go
// records.
//
// # Credentials
//
// The bearer credential is per-request: a TokenFunc supplied at
// construction extracts it from the operation's context, so one Client
// serves every concurrent admin session. Any call that receives HTTP
// 401 fires the unauthorized hook before returning, letting the rest
// of the process invalidate that session.
//
// # Response normalization
//
// List endpoints are decoded defensively. The channel-members endpoint
// in particular has returned four shapes across backend iterations:
//
//	{"members": [...]}
//	{"data": {"members": [...]}}
//	{"data": [...]}
//	[...]
//
// All four decode to the same result; an unrecognized shape yields an
// empty list rather than an error, so list pages keep rendering.
//
// # Pagination
//
// Backend-supplied totals are trusted exclusively when present. When a
// response omits them, EstimateTotalPages infers a conservative total
// from the page size: a full page means more pages may exist, a short
// page means this page is the last.
//
// # Errors
//
// Non-2xx responses become *FetchError with the status code and any
// backend-provided message. Transport failures are wrapped plain
// errors. ValidateSession is the exception: it never errors, it only
// answers false.
package api
