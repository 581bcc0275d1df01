// ABOUTME: Tests for the message listing envelope
// ABOUTME: A 2xx response with success=false is still a failure

package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMessages(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/messages", r.URL.Path)
		w.Write([]byte(`{
			"success": true,
			"data": [{"message_id": 1, "sender": "ana", "recipient": "ben", "message": "hi", "timestamp": "2025-01-01", "status": "sent", "actions": ["view"]}],
			"pagination": {"page": 1, "limit": 10}
		}`))
	})

	messages, err := c.ListMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "hi", messages[0].Message)
}

func TestListMessages_SuccessFalse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "data": []}`))
	})

	_, err := c.ListMessages(context.Background())
	require.Error(t, err)
}
