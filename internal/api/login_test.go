// ABOUTME: Tests for login and session validation
// ABOUTME: Covers the fail-closed collapse of validation failure causes

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

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/login", r.URL.Path)
		// Login is the one unauthenticated POST.
		w.Write([]byte(`{"token": "tok-1"}`))
	})

	token, err := c.Login(context.Background(), "admin@demo.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestLogin_BackendMessageSurfaces(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "invalid credentials"}`, http.StatusUnauthorized)
	})

	_, err := c.Login(context.Background(), "admin@demo.com", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginFailed)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogin_EmptyToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := c.Login(context.Background(), "a@b.c", "pw")
	assert.ErrorIs(t, err, ErrLoginFailed)
}

func TestValidateSession(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   bool
	}{
		{"accepted", http.StatusOK, true},
		{"rejected", http.StatusUnauthorized, false},
		// A non-401 failure is not a credential rejection.
		{"backend error", http.StatusInternalServerError, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotAuth, gotCache string
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				gotCache = r.Header.Get("Cache-Control")
				w.WriteHeader(tc.status)
			})

			got := c.ValidateSession(context.Background(), "abc123")
			assert.Equal(t, tc.want, got)
			assert.Equal(t, "Bearer abc123", gotAuth)
			assert.Equal(t, "no-store", gotCache)
		})
	}
}

func TestValidateSession_TransportErrorFailsClosed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, time.Second, nil)
	assert.False(t, c.ValidateSession(context.Background(), "abc123"))
}
