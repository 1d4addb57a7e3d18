package store

import (
	"context"
	"database/sql"

	"github.com/memoapp/memo/internal/model"
)

// ListReminders returns every reminder, most recent first.
func ListReminders(ctx context.Context, db *sql.DB) ([]model.Reminder, error) {
	recs, err := ListRecords(ctx, db, CollectionReminders)
	if err != nil {
		return nil, err
	}
	reminders := make([]model.Reminder, len(recs))
	for i, rec := range recs {
		reminders[i] = model.ReminderFromRecord(rec)
	}
	return reminders, nil
}

// CreateReminder creates a new reminder from caller fields.
func CreateReminder(ctx context.Context, db *sql.DB, fields map[string]any) (*model.Reminder, error) {
	rec, err := CreateRecord(ctx, db, CollectionReminders, fields)
	if err != nil {
		return nil, err
	}
	reminder := model.ReminderFromRecord(*rec)
	return &reminder, nil
}

// UpdateReminder merges fields into an existing reminder.
func UpdateReminder(ctx context.Context, db *sql.DB, id string, fields map[string]any) (*model.Reminder, error) {
	rec, err := UpdateRecord(ctx, db, CollectionReminders, id, fields)
	if err != nil {
		return nil, err
	}
	reminder := model.ReminderFromRecord(*rec)
	return &reminder, nil
}

// DeleteReminder removes a reminder. Idempotent.
func DeleteReminder(ctx context.Context, db *sql.DB, id string) error {
	return DeleteRecord(ctx, db, CollectionReminders, id)
}
