// ABOUTME: Tests for notification list normalization and send success detection
// ABOUTME: Covers recipient filtering and the optional success flag contract

package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const notificationRecords = `[
	{"id": 1, "from_user_id": 5, "from_username": "admin", "to_user_id": 42, "to_username": "ana", "title": "Hi", "message": "Welcome", "type": "general", "created_at": "2025-01-01"},
	{"id": 2, "from_user_id": 5, "from_username": "admin", "to_user_id": 43, "to_username": "ben", "title": "Update", "message": "v2 is live", "type": "system", "created_at": "2025-01-02"}
]`

func TestNormalizeNotifications_Shapes(t *testing.T) {
	shapes := map[string]string{
		"bare array":           notificationRecords,
		"notifications field":  `{"notifications": ` + notificationRecords + `}`,
		"data with array":      `{"data": ` + notificationRecords + `}`,
		"data with field":      `{"data": {"notifications": ` + notificationRecords + `}}`,
	}

	for name, body := range shapes {
		t.Run(name, func(t *testing.T) {
			result := normalizeNotifications([]byte(body))
			require.Len(t, result.Notifications, 2)
			assert.Equal(t, "Welcome", result.Notifications[0].Message)
		})
	}
}

func TestNormalizeNotifications_Pagination(t *testing.T) {
	body := `{"data": {
		"notifications": ` + notificationRecords + `,
		"pagination": {"currentPage": 2, "limit": 10, "totalPages": 4, "totalNotifications": 37}
	}}`

	result := normalizeNotifications([]byte(body))
	require.NotNil(t, result.Pagination)
	assert.Equal(t, 2, result.Pagination.Page)
	assert.Equal(t, 4, result.Pagination.TotalPages)
	assert.Equal(t, 37, result.Pagination.TotalCount)
}

func TestNormalizeNotifications_Unrecognized(t *testing.T) {
	result := normalizeNotifications([]byte(`{"rows": 3}`))
	require.NotNil(t, result.Notifications)
	assert.Empty(t, result.Notifications)
}

func TestListNotifications_RecipientFilter(t *testing.T) {
	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	})

	// Zero recipient means no filter parameter at all.
	_, err := c.ListNotifications(context.Background(), 0, 1, 10)
	require.NoError(t, err)
	assert.NotContains(t, gotQuery, "to_user_id")

	_, err = c.ListNotifications(context.Background(), 42, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"42"}, gotQuery["to_user_id"])
}

func TestSendNotification_SuccessDetection(t *testing.T) {
	cases := []struct {
		name string
		body string
		ok   bool
	}{
		{"explicit success", `{"success": true, "message": "Notification sent successfully"}`, true},
		{"no success field", `{"message": "Notification sent successfully"}`, true},
		{"explicit failure", `{"success": false, "message": "recipient not found"}`, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/admin/send_notifications", r.URL.Path)
				w.Write([]byte(tc.body))
			})

			result, err := c.SendNotification(context.Background(), NotificationPayload{
				ToUserID: 42,
				Title:    "Hi",
				Message:  "Welcome",
				Type:     "general",
			})
			require.NoError(t, err)
			assert.Equal(t, tc.ok, result.OK())
		})
	}
}

func TestSendNotification_PayloadHasNoSenderID(t *testing.T) {
	var gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.Write([]byte(`{"success": true}`))
	})

	_, err := c.SendNotification(context.Background(), NotificationPayload{
		ToUserID: 42, Title: "t", Message: "m", Type: "general",
	})
	require.NoError(t, err)
	assert.NotContains(t, gotBody, "from_user_id")
	assert.Contains(t, gotBody, `"to_user_id":42`)
}
