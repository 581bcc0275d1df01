// ABOUTME: Audit log entity and store methods for tracking admin console activity
// ABOUTME: Records logins, mutations, and gate rejections for later review

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuditAction represents an auditable action.
type AuditAction string

const (
	AuditLogin            AuditAction = "login"
	AuditLoginFailed      AuditAction = "login_failed"
	AuditLogout           AuditAction = "logout"
	AuditGateReject       AuditAction = "gate_reject"
	AuditForceLogout      AuditAction = "force_logout"
	AuditSendNotification AuditAction = "send_notification"
)

// AuditEntry represents a single audit log entry.
type AuditEntry struct {
	ID        string         // UUID v4
	Actor     string         // who performed the action (login email or remote address)
	Action    AuditAction    // what action was performed
	TargetID  string         // ID of the affected resource, empty when none
	Timestamp time.Time      // when it happened
	Detail    map[string]any // additional context
}

// AuditFilter specifies filtering options for listing audit entries.
type AuditFilter struct {
	Since  *time.Time   // entries after this time
	Action *AuditAction // filter by action type
	Limit  int          // max results (default 100, max 1000)
}

// AppendAudit appends a new entry to the audit log.
// Generates ID and Timestamp if not set.
func (s *SQLiteStore) AppendAudit(ctx context.Context, e *AuditEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}

	var detailJSON *string
	if e.Detail != nil {
		data, err := json.Marshal(e.Detail)
		if err != nil {
			return fmt.Errorf("marshaling audit detail: %w", err)
		}
		str := string(data)
		detailJSON = &str
	}

	query := `
		INSERT INTO audit_log (audit_id, actor, action, target_id, ts, detail_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		e.ID,
		e.Actor,
		e.Action,
		e.TargetID,
		e.Timestamp.UTC().Format(time.RFC3339),
		detailJSON,
	)
	if err != nil {
		return fmt.Errorf("inserting audit entry: %w", err)
	}

	s.logger.Debug("appended audit log",
		"id", e.ID,
		"actor", e.Actor,
		"action", e.Action,
	)
	return nil
}

// ListAudit returns audit entries matching the filter, newest first.
func (s *SQLiteStore) ListAudit(ctx context.Context, f AuditFilter) ([]AuditEntry, error) {
	var sinceStr, actionStr *string
	if f.Since != nil {
		v := f.Since.UTC().Format(time.RFC3339)
		sinceStr = &v
	}
	if f.Action != nil {
		v := string(*f.Action)
		actionStr = &v
	}

	query := `
		SELECT audit_id, actor, action, target_id, ts, detail_json
		FROM audit_log
		WHERE (? IS NULL OR ts >= ?)
		  AND (? IS NULL OR action = ?)
		ORDER BY ts DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query,
		sinceStr, sinceStr,
		actionStr, actionStr,
		normalizeAuditLimit(f.Limit),
	)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		var action, tsStr string
		var detailJSON *string

		if err := rows.Scan(&e.ID, &e.Actor, &action, &e.TargetID, &tsStr, &detailJSON); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}

		e.Action = AuditAction(action)
		e.Timestamp, err = time.Parse(time.RFC3339, tsStr)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp: %w", err)
		}
		if detailJSON != nil {
			if err := json.Unmarshal([]byte(*detailJSON), &e.Detail); err != nil {
				return nil, fmt.Errorf("unmarshaling detail: %w", err)
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// normalizeAuditLimit applies default (100) and cap (1000) to audit limit.
func normalizeAuditLimit(limit int) int {
	switch {
	case limit <= 0:
		return 100
	case limit > 1000:
		return 1000
	default:
		return limit
	}
}
