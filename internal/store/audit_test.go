// ABOUTME: Tests for audit log store operations
// ABOUTME: Covers Append and List with filtering for the audit_log table

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAuditStore_Append(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	entry := &AuditEntry{
		Actor:    "admin@demo.com",
		Action:   AuditForceLogout,
		TargetID: "42",
		Detail:   map[string]any{"is_online": false},
	}

	err := store.AppendAudit(ctx, entry)
	require.NoError(t, err)

	// Should have generated ID and timestamp
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())
}

func TestAuditStore_List_NoFilter(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, action := range []AuditAction{AuditLogin, AuditSendNotification, AuditLogout} {
		entry := &AuditEntry{
			Actor:     "admin@demo.com",
			Action:    action,
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, store.AppendAudit(ctx, entry))
	}

	entries, err := store.ListAudit(ctx, AuditFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first
	assert.Equal(t, AuditLogout, entries[0].Action)
}

func TestAuditStore_List_ByAction(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for _, action := range []AuditAction{AuditLogin, AuditGateReject, AuditGateReject} {
		require.NoError(t, store.AppendAudit(ctx, &AuditEntry{
			Actor:  "203.0.113.9",
			Action: action,
		}))
	}

	filter := AuditGateReject
	entries, err := store.ListAudit(ctx, AuditFilter{Action: &filter})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestAuditStore_List_BySince(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	old := time.Now().UTC().Add(-2 * time.Hour)
	recent := time.Now().UTC()

	require.NoError(t, store.AppendAudit(ctx, &AuditEntry{
		Actor: "a", Action: AuditLogin, Timestamp: old,
	}))
	require.NoError(t, store.AppendAudit(ctx, &AuditEntry{
		Actor: "b", Action: AuditLogin, Timestamp: recent,
	}))

	since := time.Now().UTC().Add(-time.Hour)
	entries, err := store.ListAudit(ctx, AuditFilter{Since: &since})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Actor)
}

func TestAuditStore_List_DetailRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AppendAudit(ctx, &AuditEntry{
		Actor:    "admin@demo.com",
		Action:   AuditSendNotification,
		TargetID: "42",
		Detail:   map[string]any{"title": "Welcome", "type": "general"},
	}))

	entries, err := store.ListAudit(ctx, AuditFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Welcome", entries[0].Detail["title"])
}

func TestAuditStore_LimitNormalization(t *testing.T) {
	assert.Equal(t, 100, normalizeAuditLimit(0))
	assert.Equal(t, 100, normalizeAuditLimit(-1))
	assert.Equal(t, 1000, normalizeAuditLimit(5000))
	assert.Equal(t, 25, normalizeAuditLimit(25))
}
