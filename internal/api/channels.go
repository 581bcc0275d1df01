// ABOUTME: Channel list, detail, and member operations against the backend
// ABOUTME: Normalizes the four response shapes the members endpoint has shipped with

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Channel is an admin-visible broadcast channel record.
type Channel struct {
	ChannelID         int     `json:"channel_id"`
	ChannelName       string  `json:"channel_name"`
	Description       string  `json:"description"`
	CreatedBy         string  `json:"created_by"`
	CreatorName       string  `json:"creator_name"`
	CreatedAt         *string `json:"created_at"`
	FirebaseChannelID string  `json:"firebase_channel_id"`
	ChannelDP         *string `json:"channel_dp"`
	IsPublic          int     `json:"is_public"`
	MaxMembers        int     `json:"max_members"`
	TotalMembers      int     `json:"total_members"`
	DeleteStatus      int     `json:"delete_status"`
	DeletedAt         *string `json:"deleted_at"`
}

// ChannelInfo is the abbreviated channel header returned alongside a
// member listing.
type ChannelInfo struct {
	ChannelID   int     `json:"channel_id"`
	ChannelName string  `json:"channel_name"`
	ChannelDP   *string `json:"channel_dp"`
}

// ChannelMember is a channel membership record.
type ChannelMember struct {
	MemberID  int     `json:"member_id"`
	UserID    int     `json:"user_id"`
	RoleID    int     `json:"role_id"`
	JoinedAt  string  `json:"joined_at"`
	IsActive  int     `json:"is_active"`
	Email     *string `json:"email"`
	Name      string  `json:"name"`
	RemovedAt *string `json:"removed_at"`
	RoleName  string  `json:"role_name"`
}

// ChannelsResult is one page of the channel listing. The pagination
// envelope is passed through from the backend verbatim.
type ChannelsResult struct {
	Channels   []Channel  `json:"channels"`
	Pagination Pagination `json:"pagination"`
}

// ChannelMembersResult is the normalized member listing for a channel.
// ChannelInfo and Pagination are nil when the backend omitted them.
type ChannelMembersResult struct {
	ChannelInfo *ChannelInfo
	Members     []ChannelMember
	Pagination  *Pagination
}

// ListChannels fetches one page of channels.
func (c *Client) ListChannels(ctx context.Context, page, limit int) (ChannelsResult, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, "list channels", c.adminURL("/channels", query))
	if err != nil {
		return ChannelsResult{}, err
	}

	var result ChannelsResult
	if err := json.Unmarshal(body, &result); err != nil {
		return ChannelsResult{}, fmt.Errorf("list channels: decoding response: %w", err)
	}
	return result, nil
}

// GetChannel fetches the detail record for one channel.
func (c *Client) GetChannel(ctx context.Context, channelID int) (Channel, error) {
	op := "get channel"
	path := "/channels/" + strconv.Itoa(channelID)

	body, err := c.get(ctx, op, c.adminURL(path, nil))
	if err != nil {
		return Channel{}, err
	}

	var wrapped struct {
		Channel Channel `json:"channel"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return Channel{}, fmt.Errorf("%s: decoding response: %w", op, err)
	}
	return wrapped.Channel, nil
}

// ListChannelMembers fetches one page of a channel's members. The
// backend has shipped four different shapes for this endpoint across
// integration iterations; all four are accepted, and an unrecognized
// shape yields an empty member list rather than an error.
func (c *Client) ListChannelMembers(ctx context.Context, channelID, page, limit int) (ChannelMembersResult, error) {
	op := "list channel members"
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	path := "/channels/" + strconv.Itoa(channelID) + "/members"

	body, err := c.get(ctx, op, c.adminURL(path, query))
	if err != nil {
		return ChannelMembersResult{}, err
	}

	return normalizeChannelMembers(body), nil
}

// normalizeChannelMembers maps any of the tolerated response shapes to
// a ChannelMembersResult. The member array is probed at, in order:
// top-level members, data.members, bare data array, bare top-level
// array. New silent guesses must not be added without a covering test.
func normalizeChannelMembers(body []byte) ChannelMembersResult {
	var result ChannelMembersResult

	// Bare top-level array
	var bare []ChannelMember
	if err := json.Unmarshal(body, &bare); err == nil {
		result.Members = ensureMembers(bare)
		return result
	}

	var envelope struct {
		ChannelInfo *ChannelInfo    `json:"channelInfo"`
		Members     []ChannelMember `json:"members"`
		Pagination  *Pagination     `json:"pagination"`
		Data        json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		result.Members = []ChannelMember{}
		return result
	}

	result.ChannelInfo = envelope.ChannelInfo
	result.Pagination = envelope.Pagination

	if envelope.Members != nil {
		result.Members = ensureMembers(envelope.Members)
		return result
	}

	if len(envelope.Data) > 0 {
		// data as a bare array
		var dataArr []ChannelMember
		if err := json.Unmarshal(envelope.Data, &dataArr); err == nil {
			result.Members = ensureMembers(dataArr)
			return result
		}

		// data as a nested envelope
		var nested struct {
			ChannelInfo *ChannelInfo    `json:"channelInfo"`
			Members     []ChannelMember `json:"members"`
			Pagination  *Pagination     `json:"pagination"`
		}
		if err := json.Unmarshal(envelope.Data, &nested); err == nil {
			if result.ChannelInfo == nil {
				result.ChannelInfo = nested.ChannelInfo
			}
			if result.Pagination == nil {
				result.Pagination = nested.Pagination
			}
			if nested.Members != nil {
				result.Members = ensureMembers(nested.Members)
				return result
			}
		}
	}

	result.Members = []ChannelMember{}
	return result
}

// ensureMembers replaces a nil slice with an empty one so callers can
// range without nil checks.
func ensureMembers(members []ChannelMember) []ChannelMember {
	if members == nil {
		return []ChannelMember{}
	}
	return members
}
