// Package actionlog records every dispatched action so a session can be
// audited or replayed after the fact.
package actionlog

import (
	"database/sql"
	"fmt"
	"time"
)

// #region entry
// Entry is one dispatched action as stored in the action_log table.
type Entry struct {
	ActionType  string
	PayloadJSON string
	Version     int
	CreatedAt   time.Time
}
// #endregion entry

// #region record
// Record appends an entry to the action_log table.
func Record(db *sql.DB, entry Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO action_log (action_type, payload_json, version, created_at)
		 VALUES (?, ?, ?, ?)`,
		entry.ActionType,
		nullIfEmpty(entry.PayloadJSON),
		entry.Version,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record action: %w", err)
	}
	return nil
}
// #endregion record

// #region tail
// Tail returns the most recent entries, newest first.
func Tail(db *sql.DB, limit int) ([]Entry, error) {
	rows, err := db.Query(
		`SELECT action_type, payload_json, version, created_at
		 FROM action_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("tail actions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var payload sql.NullString
		var createdStr string
		if err := rows.Scan(&e.ActionType, &payload, &e.Version, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if payload.Valid {
			e.PayloadJSON = payload.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
// #endregion tail

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
