// ABOUTME: Context plumbing for the per-request bearer credential
// ABOUTME: The gate injects the token; downstream API calls read it back out

package session

import "context"

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const tokenContextKey contextKey = "session_token"

// WithToken returns a context carrying the validated bearer credential.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// TokenFromContext returns the bearer credential carried by ctx, or an
// empty string when the request never passed the gate's validation.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}
