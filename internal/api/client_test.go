// ABOUTME: Tests for the HTTP client core
// ABOUTME: Covers bearer attachment, error mapping, and the 401 invalidation hook

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticToken(token string) TokenFunc {
	return func(context.Context) string { return token }
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, staticToken("abc123"), opts...)
}

func TestClient_AttachesBearerCredential(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	_, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestClient_NoCredentialNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, staticToken(""))
	_, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_UnauthorizedFiresHook(t *testing.T) {
	hookCalls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"token expired"}`, http.StatusUnauthorized)
	}, WithUnauthorizedHook(func(context.Context) { hookCalls++ }))

	_, err := c.ListUsers(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, 1, hookCalls)

	// The hook is process-wide: a different operation fires it too.
	_, err = c.ListGroups(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, hookCalls)
}

func TestClient_BackendRejectionCarriesMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"server busy"}`, http.StatusServiceUnavailable)
	})

	_, err := c.ListUsers(context.Background())
	require.Error(t, err)
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, "server busy", UserMessage(err))
}

func TestClient_TransportErrorIsNotFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, time.Second, staticToken("abc123"))
	_, err := c.ListUsers(context.Background())
	require.Error(t, err)
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, "Request failed. Please try again.", UserMessage(err))
}
