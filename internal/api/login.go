// ABOUTME: Admin login and session validation operations
// ABOUTME: Login exchanges credentials for a bearer token; validation probes with one

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrLoginFailed is returned when the backend rejects the credentials
// without a usable message of its own.
var ErrLoginFailed = errors.New("login failed")

// Login exchanges an email/password pair for a bearer token. The call
// itself is unauthenticated.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}

	body, err := c.postJSON(ctx, "login", c.adminURL("/login", nil), payload)
	if err != nil {
		var fe *FetchError
		if errors.As(err, &fe) && fe.Message != "" {
			return "", fmt.Errorf("%w: %s", ErrLoginFailed, fe.Message)
		}
		return "", err
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("login: decoding response: %w", err)
	}
	if result.Token == "" {
		return "", ErrLoginFailed
	}
	return result.Token, nil
}

// ValidateSession probes the backend with the given bearer token and
// reports whether it is still accepted. Only an explicit HTTP 401 or a
// failure to reach the backend at all count as invalid; any other
// response means the credential itself was not rejected. The probe is
// never cached. ValidateSession never returns an error: every failure
// mode collapses to false.
func (c *Client) ValidateSession(ctx context.Context, token string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.adminURL("/users", nil), nil)
	if err != nil {
		return false
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpc.Do(req)
	if err != nil {
		// Backend unreachable: fail closed.
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode != http.StatusUnauthorized
}
