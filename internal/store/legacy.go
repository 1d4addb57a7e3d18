package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// ImportLegacy copies a legacy flat-file export (JSON arrays keyed by the
// five collection names) into the record store, preserving existing ids and
// creation timestamps. It runs at most once: the marker is persisted after
// a successful pass, and a missing export file counts as success. Single
// items that fail to copy are logged and skipped so one bad entry cannot
// abort the rest. Returns the number of records imported.
//
// Callers must treat errors as non-fatal: a failed import is logged and
// startup continues, so the import is retried on the next run.
func ImportLegacy(ctx context.Context, db *sql.DB, path string) (int, error) {
	done, err := LegacyImportDone(ctx, db)
	if err != nil {
		return 0, err
	}
	if done {
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, MarkLegacyImportDone(ctx, db)
	}
	if err != nil {
		return 0, fmt.Errorf("reading legacy export: %w", err)
	}

	var export map[string]json.RawMessage
	if err := json.Unmarshal(data, &export); err != nil {
		return 0, fmt.Errorf("parsing legacy export: %w", err)
	}

	imported := 0
	for _, collection := range Collections {
		raw, ok := export[collection]
		if !ok {
			continue
		}
		var items []map[string]any
		if err := json.Unmarshal(raw, &items); err != nil {
			slog.Warn("skipping malformed legacy collection",
				"collection", collection, "error", err)
			continue
		}
		for _, fields := range items {
			if _, err := CreateRecord(ctx, db, collection, fields); err != nil {
				slog.Warn("skipping legacy item",
					"collection", collection, "error", err)
				continue
			}
			imported++
		}
	}

	if err := MarkLegacyImportDone(ctx, db); err != nil {
		return imported, err
	}
	return imported, nil
}
