package store

import (
	"context"
	"database/sql"
	"sort"

	"github.com/memoapp/memo/internal/model"
)

// ListNotes returns every note, pinned notes first, most recent first
// within each group.
func ListNotes(ctx context.Context, db *sql.DB) ([]model.Note, error) {
	recs, err := ListRecords(ctx, db, CollectionNotes)
	if err != nil {
		return nil, err
	}
	notes := make([]model.Note, len(recs))
	for i, rec := range recs {
		notes[i] = model.NoteFromRecord(rec)
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Pinned && !notes[j].Pinned
	})
	return notes, nil
}

// CreateNote creates a new note from caller fields.
func CreateNote(ctx context.Context, db *sql.DB, fields map[string]any) (*model.Note, error) {
	rec, err := CreateRecord(ctx, db, CollectionNotes, fields)
	if err != nil {
		return nil, err
	}
	note := model.NoteFromRecord(*rec)
	return &note, nil
}

// UpdateNote merges fields into an existing note.
func UpdateNote(ctx context.Context, db *sql.DB, id string, fields map[string]any) (*model.Note, error) {
	rec, err := UpdateRecord(ctx, db, CollectionNotes, id, fields)
	if err != nil {
		return nil, err
	}
	note := model.NoteFromRecord(*rec)
	return &note, nil
}

// DeleteNote removes a note. Idempotent.
func DeleteNote(ctx context.Context, db *sql.DB, id string) error {
	return DeleteRecord(ctx, db, CollectionNotes, id)
}
