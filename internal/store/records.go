package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/memoapp/memo/internal/model"
)

// Collection names. These match the keys the original flat store used, so
// legacy exports import without renaming.
const (
	CollectionLaundry   = "laundryLoads"
	CollectionSpendings = "spendings"
	CollectionNotes     = "notes"
	CollectionReminders = "reminders"
	CollectionBlocks    = "customBlocks"
)

// Collections lists every known collection.
var Collections = []string{
	CollectionLaundry,
	CollectionSpendings,
	CollectionNotes,
	CollectionReminders,
	CollectionBlocks,
}

var (
	// ErrNotFound is returned when targeting a record that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput is returned when a payload fails boundary validation.
	ErrInvalidInput = errors.New("invalid input")
)

// ListRecords returns every record in a collection, most recent first.
// Records without a creation timestamp sort last, as if dated at the epoch.
// Equal timestamps keep insertion order.
func ListRecords(ctx context.Context, db *sql.DB, collection string) ([]model.Record, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, created_date, fields FROM records
		 WHERE collection = ? ORDER BY created_date DESC, rowid`, collection,
	)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", collection, err)
	}
	defer rows.Close()

	var recs []model.Record
	for rows.Next() {
		var rec model.Record
		var doc string
		if err := rows.Scan(&rec.ID, &rec.CreatedDate, &doc); err != nil {
			return nil, fmt.Errorf("scanning %s record: %w", collection, err)
		}
		if err := json.Unmarshal([]byte(doc), &rec.Fields); err != nil {
			return nil, fmt.Errorf("decoding %s record %s: %w", collection, rec.ID, err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// GetRecord returns a record by id, or nil if it does not exist.
func GetRecord(ctx context.Context, db *sql.DB, collection, id string) (*model.Record, error) {
	rec := &model.Record{}
	var doc string
	err := db.QueryRowContext(ctx,
		`SELECT id, created_date, fields FROM records
		 WHERE collection = ? AND id = ?`, collection, id,
	).Scan(&rec.ID, &rec.CreatedDate, &doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s record: %w", collection, err)
	}
	if err := json.Unmarshal([]byte(doc), &rec.Fields); err != nil {
		return nil, fmt.Errorf("decoding %s record %s: %w", collection, id, err)
	}
	return rec, nil
}

// CreateRecord persists a new record with a generated id and creation
// timestamp. Caller-supplied "id" and "created_date" fields take precedence
// over the generated values; the legacy import relies on this to keep
// existing ids.
func CreateRecord(ctx context.Context, db *sql.DB, collection string, fields map[string]any) (*model.Record, error) {
	rec := &model.Record{
		ID:          uuid.NewString(),
		CreatedDate: time.Now().UTC().Format(time.RFC3339),
		Fields:      make(map[string]any, len(fields)),
	}
	for k, v := range fields {
		rec.Fields[k] = v
	}
	if id, ok := rec.Fields["id"].(string); ok && id != "" {
		rec.ID = id
	}
	if cd, ok := rec.Fields["created_date"].(string); ok {
		rec.CreatedDate = cd
	}
	delete(rec.Fields, "id")
	delete(rec.Fields, "created_date")

	doc, err := json.Marshal(rec.Fields)
	if err != nil {
		return nil, fmt.Errorf("encoding %s record: %w", collection, err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO records (collection, id, created_date, fields) VALUES (?, ?, ?, ?)`,
		collection, rec.ID, rec.CreatedDate, string(doc),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s record: %w", collection, err)
	}
	return rec, nil
}

// UpdateRecord applies a shallow merge: keys in fields overwrite the stored
// values wholesale (a nested sequence like "items" is replaced, not merged
// element-wise), keys absent from fields are preserved. The envelope keys
// "id" and "created_date" are immutable and ignored if present. Returns
// ErrNotFound if the record does not exist.
func UpdateRecord(ctx context.Context, db *sql.DB, collection, id string, fields map[string]any) (*model.Record, error) {
	rec, err := GetRecord(ctx, db, collection, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}

	for k, v := range fields {
		if k == "id" || k == "created_date" {
			continue
		}
		rec.Fields[k] = v
	}

	doc, err := json.Marshal(rec.Fields)
	if err != nil {
		return nil, fmt.Errorf("encoding %s record: %w", collection, err)
	}

	_, err = db.ExecContext(ctx,
		`UPDATE records SET fields = ? WHERE collection = ? AND id = ?`,
		string(doc), collection, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating %s record: %w", collection, err)
	}
	return rec, nil
}

// DeleteRecord removes a record. Deleting an id that does not exist is not
// an error.
func DeleteRecord(ctx context.Context, db *sql.DB, collection, id string) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM records WHERE collection = ? AND id = ?`, collection, id,
	)
	if err != nil {
		return fmt.Errorf("deleting %s record: %w", collection, err)
	}
	return nil
}
