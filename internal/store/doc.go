// Package store persists the admin console's audit log in SQLite.
//
// The console itself is stateless with respect to the chat data it
// displays (every screen refetches from the backend); the only local
// state is this append-only record of who did what: logins and login
// failures, logouts, gate rejections, force logouts, and sent
// notifications. Audit failures are logged and swallowed by callers;
// they never fail the request that triggered them.
package store
