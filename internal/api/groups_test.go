// ABOUTME: Tests for group and group member listing
// ABOUTME: Covers the wrapped and bare-array response variants

package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const groupRecords = `[
	{"group_id": 1, "group_name": "family", "creator_name": "Ana", "member_count": 4, "created_at": "2025-01-01", "group_dp": null, "creator_id": 42, "creator_dp": null},
	{"group_id": 2, "group_name": "work", "creator_name": "Ben", "member_count": 9, "created_at": null, "group_dp": null, "creator_id": null, "creator_dp": null}
]`

func TestListGroups_BareArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/groups", r.URL.Path)
		w.Write([]byte(groupRecords))
	})

	groups, err := c.ListGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "family", groups[0].GroupName)
	assert.Nil(t, groups[1].CreatedAt)
}

func TestListGroups_DataWrapper(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": ` + groupRecords + `}`))
	})

	groups, err := c.ListGroups(context.Background())
	require.NoError(t, err)
	assert.Len(t, groups, 2)
}

func TestListGroupMembers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/groups/7/members", r.URL.Path)
		w.Write([]byte(`[
			{"user_id": 42, "member_name": "Ana", "phone_number": "+100", "email": null, "role_name": "admin", "added_on": "2025-01-01", "is_active": 1}
		]`))
	})

	members, err := c.ListGroupMembers(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "admin", members[0].RoleName)
}
