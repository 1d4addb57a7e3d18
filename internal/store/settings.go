package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Setting keys.
const (
	settingLegacyImportDone  = "legacy_import_done"
	settingLastLaundryNotify = "last_laundry_notify"
)

// GetSetting returns the value stored under key, or "" if unset.
func GetSetting(ctx context.Context, db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("querying setting %q: %w", key, err)
	}
	return value, nil
}

// SetSetting stores value under key, replacing any previous value.
func SetSetting(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storing setting %q: %w", key, err)
	}
	return nil
}

// LastLaundryNotify returns the calendar date (YYYY-MM-DD) of the last
// laundry digest notification, or "" if none was ever sent.
func LastLaundryNotify(ctx context.Context, db *sql.DB) (string, error) {
	return GetSetting(ctx, db, settingLastLaundryNotify)
}

// SetLastLaundryNotify records the calendar date of the laundry digest just
// sent, enforcing at most one digest per day across restarts.
func SetLastLaundryNotify(ctx context.Context, db *sql.DB, date string) error {
	return SetSetting(ctx, db, settingLastLaundryNotify, date)
}

// LegacyImportDone reports whether the one-time legacy import already ran.
func LegacyImportDone(ctx context.Context, db *sql.DB) (bool, error) {
	v, err := GetSetting(ctx, db, settingLegacyImportDone)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

// MarkLegacyImportDone persists the legacy import marker.
func MarkLegacyImportDone(ctx context.Context, db *sql.DB) error {
	return SetSetting(ctx, db, settingLegacyImportDone, "true")
}
