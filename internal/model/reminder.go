package model

import "time"

// Reminder represents a timed reminder. The due date is optional; a
// reminder without one never triggers notifications.
type Reminder struct {
	ID          string `json:"id"`
	CreatedDate string `json:"created_date,omitempty"`
	Title       string `json:"title"`
	DueDate     string `json:"due_date,omitempty"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
}

// Reminder priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ReminderFromRecord decodes a stored record into a Reminder.
func ReminderFromRecord(rec Record) Reminder {
	return Reminder{
		ID:          rec.ID,
		CreatedDate: rec.CreatedDate,
		Title:       fieldString(rec.Fields, "title"),
		DueDate:     fieldString(rec.Fields, "due_date"),
		Priority:    fieldString(rec.Fields, "priority"),
		Completed:   fieldBool(rec.Fields, "completed"),
	}
}

// DueTime parses the reminder's due date. The second return value is false
// when the due date is absent or unparseable.
func (r Reminder) DueTime() (time.Time, bool) {
	return ParseTime(r.DueDate)
}
