// ABOUTME: Tests for channel operations and member response normalization
// ABOUTME: Asserts shape-invariance across the four tolerated member envelopes

package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const memberRecords = `[
	{"member_id": 1, "user_id": 42, "role_id": 2, "joined_at": "2025-01-01", "is_active": 1, "email": null, "name": "Ana", "removed_at": null, "role_name": "admin"},
	{"member_id": 2, "user_id": 43, "role_id": 3, "joined_at": "2025-01-02", "is_active": 1, "email": "b@x.y", "name": "Ben", "removed_at": null, "role_name": "member"}
]`

func TestNormalizeChannelMembers_ShapeInvariance(t *testing.T) {
	shapes := map[string]string{
		"top-level members": `{"members": ` + memberRecords + `}`,
		"nested data.members": `{"data": {"members": ` + memberRecords + `}}`,
		"bare data array":   `{"data": ` + memberRecords + `}`,
		"bare array":        memberRecords,
	}

	var want []ChannelMember
	for name, body := range shapes {
		t.Run(name, func(t *testing.T) {
			result := normalizeChannelMembers([]byte(body))
			require.Len(t, result.Members, 2)
			assert.Equal(t, 42, result.Members[0].UserID)
			assert.Equal(t, "Ben", result.Members[1].Name)

			if want == nil {
				want = result.Members
			} else {
				assert.Equal(t, want, result.Members, "normalization must be shape-invariant")
			}
		})
	}
}

func TestNormalizeChannelMembers_EmptyShapes(t *testing.T) {
	cases := map[string]string{
		"empty members":      `{"members": []}`,
		"empty data members": `{"data": {"members": []}}`,
		"empty data array":   `{"data": []}`,
		"empty bare array":   `[]`,
		"unrecognized":       `{"rows": [1, 2, 3]}`,
		"not even json":      `<html>gateway timeout</html>`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			result := normalizeChannelMembers([]byte(body))
			require.NotNil(t, result.Members)
			assert.Empty(t, result.Members)
		})
	}
}

func TestNormalizeChannelMembers_CarriesInfoAndPagination(t *testing.T) {
	body := `{
		"channelInfo": {"channel_id": 7, "channel_name": "news", "channel_dp": null},
		"members": ` + memberRecords + `,
		"pagination": {"page": 2, "limit": 15, "totalPages": 3, "totalCount": 41}
	}`

	result := normalizeChannelMembers([]byte(body))
	require.NotNil(t, result.ChannelInfo)
	assert.Equal(t, "news", result.ChannelInfo.ChannelName)
	require.NotNil(t, result.Pagination)
	assert.Equal(t, 2, result.Pagination.Page)
	assert.Equal(t, 3, result.Pagination.TotalPages)
}

func TestNormalizeChannelMembers_NestedPagination(t *testing.T) {
	body := `{"data": {
		"channelInfo": {"channel_id": 7, "channel_name": "news", "channel_dp": null},
		"members": ` + memberRecords + `,
		"pagination": {"page": 1, "limit": 15, "totalPages": 1, "totalCount": 2}
	}}`

	result := normalizeChannelMembers([]byte(body))
	require.Len(t, result.Members, 2)
	require.NotNil(t, result.ChannelInfo)
	require.NotNil(t, result.Pagination)
	assert.Equal(t, 1, result.Pagination.TotalPages)
}

func TestListChannels_PassesPaginationThrough(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{
			"channels": [{"channel_id": 1, "channel_name": "general"}],
			"pagination": {"page": 2, "limit": 10, "totalPages": 5, "totalCount": 47}
		}`))
	})

	result, err := c.ListChannels(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "limit=10")
	require.Len(t, result.Channels, 1)
	assert.Equal(t, "general", result.Channels[0].ChannelName)
	assert.Equal(t, 5, result.Pagination.TotalPages)
	assert.Equal(t, 47, result.Pagination.TotalCount)
}

func TestGetChannel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/channels/7", r.URL.Path)
		w.Write([]byte(`{"channel": {"channel_id": 7, "channel_name": "news", "is_public": 1, "max_members": 500}}`))
	})

	ch, err := c.GetChannel(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, ch.ChannelID)
	assert.Equal(t, "news", ch.ChannelName)
	assert.Equal(t, 500, ch.MaxMembers)
}

func TestListChannelMembers_EndToEnd(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/channels/7/members", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "15", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"data": ` + memberRecords + `}`))
	})

	result, err := c.ListChannelMembers(context.Background(), 7, 3, 15)
	require.NoError(t, err)
	assert.Len(t, result.Members, 2)
}
