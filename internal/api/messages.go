// ABOUTME: Message list operation against the backend
// ABOUTME: Decodes the {success, data, pagination} message envelope

package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// Message is an admin-visible chat message record.
type Message struct {
	MessageID int      `json:"message_id"`
	Sender    string   `json:"sender"`
	Recipient string   `json:"recipient"`
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
	Status    string   `json:"status"`
	Actions   []string `json:"actions"`
}

// ListMessages fetches all messages. Unlike the other list endpoints,
// this one carries an explicit success flag; success=false on a 2xx
// response is still a failure.
func (c *Client) ListMessages(ctx context.Context) ([]Message, error) {
	op := "list messages"

	body, err := c.get(ctx, op, c.adminURL("/messages", nil))
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Success bool       `json:"success"`
		Data    []Message  `json:"data"`
		Pager   Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%s: decoding response: %w", op, err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("%s: backend reported failure", op)
	}
	return envelope.Data, nil
}
