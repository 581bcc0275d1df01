// ABOUTME: User list and force-logout operations against the backend
// ABOUTME: Includes the optimistic row patch applied after a successful force logout

package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// User is an admin-visible account record.
type User struct {
	UserID            int     `json:"user_id"`
	Name              string  `json:"name"`
	PhoneNumber       string  `json:"phone_number"`
	Email             *string `json:"email"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	Status            string  `json:"status"`
	CreatedAt         string  `json:"created_at"`
	PublicKey         *string `json:"public_key"`
	KeyCreatedAt      *string `json:"key_created_at"`
	LastSeen          string  `json:"last_seen"`
	IsOnline          bool    `json:"is_online"`
	ForceLogout       int     `json:"force_logout"`
	LoggedInStatus    int     `json:"logged_in_status"`
	LastLoggedIn      string  `json:"last_logged_in"`
}

// ForceLogoutResult is the backend's response to a force-logout request.
type ForceLogoutResult struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// ListUsers fetches all users. The backend does not paginate this endpoint.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	body, err := c.get(ctx, "list users", c.adminURL("/users", nil))
	if err != nil {
		return nil, err
	}

	var users []User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("list users: decoding response: %w", err)
	}
	return users, nil
}

// ForceLogout asks the backend to terminate a user's active sessions.
// A Status of false is not an error; the caller surfaces Message and
// leaves its local state untouched.
func (c *Client) ForceLogout(ctx context.Context, userID int) (ForceLogoutResult, error) {
	payload := map[string]int{"user_id": userID}

	body, err := c.postJSON(ctx, "force logout", c.baseURL+"/api/users/force-logout", payload)
	if err != nil {
		return ForceLogoutResult{}, err
	}

	var result ForceLogoutResult
	if err := json.Unmarshal(body, &result); err != nil {
		return ForceLogoutResult{}, fmt.Errorf("force logout: decoding response: %w", err)
	}
	return result, nil
}

// ApplyForceLogout patches the row for userID after a successful force
// logout, without refetching: the user is marked flagged-for-logout and
// offline. Rows for other users are left untouched.
func ApplyForceLogout(users []User, userID int) {
	for i := range users {
		if users[i].UserID == userID {
			users[i].ForceLogout = 1
			users[i].IsOnline = false
		}
	}
}
