// ABOUTME: Group and group member list operations against the backend
// ABOUTME: Tolerates both the {data:[...]} wrapper and a bare array response

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Group is an admin-visible chat group record.
type Group struct {
	GroupID     int     `json:"group_id"`
	GroupName   string  `json:"group_name"`
	CreatorName string  `json:"creator_name"`
	MemberCount int     `json:"member_count"`
	CreatedAt   *string `json:"created_at"`
	GroupDP     *string `json:"group_dp"`
	CreatorID   *int    `json:"creator_id"`
	CreatorDP   *string `json:"creator_dp"`
}

// Member is a group membership record.
type Member struct {
	UserID      int     `json:"user_id"`
	MemberName  string  `json:"member_name"`
	PhoneNumber string  `json:"phone_number"`
	Email       *string `json:"email"`
	RoleName    string  `json:"role_name"`
	AddedOn     string  `json:"added_on"`
	IsActive    int     `json:"is_active"`
}

// ListGroups fetches all groups. The backend has returned both a bare
// array and a {data:[...]} wrapper for this endpoint.
func (c *Client) ListGroups(ctx context.Context) ([]Group, error) {
	body, err := c.get(ctx, "list groups", c.adminURL("/groups", nil))
	if err != nil {
		return nil, err
	}

	var groups []Group
	if err := json.Unmarshal(body, &groups); err == nil {
		return groups, nil
	}

	var wrapped struct {
		Data []Group `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("list groups: decoding response: %w", err)
	}
	return wrapped.Data, nil
}

// ListGroupMembers fetches the members of one group.
func (c *Client) ListGroupMembers(ctx context.Context, groupID int) ([]Member, error) {
	op := "list group members"
	path := "/groups/" + strconv.Itoa(groupID) + "/members"

	body, err := c.get(ctx, op, c.adminURL(path, nil))
	if err != nil {
		return nil, err
	}

	var members []Member
	if err := json.Unmarshal(body, &members); err != nil {
		return nil, fmt.Errorf("%s: decoding response: %w", op, err)
	}
	return members, nil
}
