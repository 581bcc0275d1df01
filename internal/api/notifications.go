// ABOUTME: Notification list and send operations against the backend
// ABOUTME: Tolerates bare-array, wrapped, and nested-data notification responses

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Notification is an admin-visible push notification record.
type Notification struct {
	ID           int    `json:"id"`
	FromUserID   int    `json:"from_user_id"`
	FromUsername string `json:"from_username"`
	ToUserID     int    `json:"to_user_id"`
	ToUsername   string `json:"to_username"`
	Title        string `json:"title"`
	Message      string `json:"message"`
	Type         string `json:"type"`
	CreatedAt    string `json:"created_at"`
}

// NotificationPayload is the wire body for sending a notification.
// The backend derives the sender itself; no sender id is transmitted.
type NotificationPayload struct {
	ToUserID int    `json:"to_user_id"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Type     string `json:"type"`
}

// NotificationsResult is one page of the notification listing.
// Pagination is nil when the backend omitted it; callers fall back to
// EstimateTotalPages.
type NotificationsResult struct {
	Notifications []Notification
	Pagination    *Pagination
}

// SendNotificationResult is the backend's response to a send request.
// Success is a pointer because older backend revisions omit the field
// entirely; an absent field counts as success.
type SendNotificationResult struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// OK reports whether the send was accepted: either the backend said
// success explicitly, or it returned no success field at all. Only an
// explicit success=false is a failure.
func (r SendNotificationResult) OK() bool {
	return r.Success == nil || *r.Success
}

// ListNotifications fetches one page of notifications, optionally
// filtered by recipient. A toUserID of zero means no filter.
func (c *Client) ListNotifications(ctx context.Context, toUserID, page, limit int) (NotificationsResult, error) {
	op := "list notifications"
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if toUserID != 0 {
		query.Set("to_user_id", strconv.Itoa(toUserID))
	}

	body, err := c.get(ctx, op, c.adminURL("/notifications", query))
	if err != nil {
		return NotificationsResult{}, err
	}

	return normalizeNotifications(body), nil
}

// normalizeNotifications accepts a bare array, a {notifications}
// object, or either of those nested under {data}. Anything else yields
// an empty list.
func normalizeNotifications(body []byte) NotificationsResult {
	var result NotificationsResult

	var bare []Notification
	if err := json.Unmarshal(body, &bare); err == nil {
		result.Notifications = bare
		if result.Notifications == nil {
			result.Notifications = []Notification{}
		}
		return result
	}

	var envelope struct {
		Notifications []Notification  `json:"notifications"`
		Pagination    *Pagination     `json:"pagination"`
		Data          json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		result.Notifications = []Notification{}
		return result
	}

	if len(envelope.Data) > 0 {
		// The wrapped payload takes the same two inner shapes.
		inner := normalizeNotifications(envelope.Data)
		if envelope.Pagination != nil && inner.Pagination == nil {
			inner.Pagination = envelope.Pagination
		}
		return inner
	}

	result.Notifications = envelope.Notifications
	result.Pagination = envelope.Pagination
	if result.Notifications == nil {
		result.Notifications = []Notification{}
	}
	return result
}

// SendNotification posts a new notification. The returned result must
// be checked with OK: a 2xx response carrying success=false is a
// backend-level rejection, not a transport error.
func (c *Client) SendNotification(ctx context.Context, payload NotificationPayload) (SendNotificationResult, error) {
	body, err := c.postJSON(ctx, "send notification", c.adminURL("/send_notifications", nil), payload)
	if err != nil {
		return SendNotificationResult{}, err
	}

	var result SendNotificationResult
	if err := json.Unmarshal(body, &result); err != nil {
		return SendNotificationResult{}, fmt.Errorf("send notification: decoding response: %w", err)
	}
	return result, nil
}
