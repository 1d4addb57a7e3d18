package model

// Note represents a sticky note.
type Note struct {
	ID          string `json:"id"`
	CreatedDate string `json:"created_date,omitempty"`
	Title       string `json:"title"`
	Content     string `json:"content,omitempty"`
	Color       string `json:"color"`
	Pinned      bool   `json:"pinned"`
}

// Note colors.
const (
	NoteColorYellow = "yellow"
	NoteColorBlue   = "blue"
	NoteColorGreen  = "green"
	NoteColorPink   = "pink"
	NoteColorPurple = "purple"
)

// NoteFromRecord decodes a stored record into a Note.
func NoteFromRecord(rec Record) Note {
	return Note{
		ID:          rec.ID,
		CreatedDate: rec.CreatedDate,
		Title:       fieldString(rec.Fields, "title"),
		Content:     fieldString(rec.Fields, "content"),
		Color:       fieldString(rec.Fields, "color"),
		Pinned:      fieldBool(rec.Fields, "pinned"),
	}
}
