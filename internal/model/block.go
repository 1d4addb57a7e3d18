package model

// CustomBlock is a user-defined dashboard widget. The block type selects
// which item fields are meaningful and is fixed at creation time.
type CustomBlock struct {
	ID          string `json:"id"`
	CreatedDate string `json:"created_date,omitempty"`
	Name        string `json:"name"`
	BlockType   string `json:"block_type"`
	Color       string `json:"color"`
	Icon        string `json:"icon,omitempty"`
	Items       []Item `json:"items"`
}

// Item is an entry inside a custom block. Items have no independent
// lifecycle: the parent block owns the whole ordered sequence, and item
// ids are generated by the caller.
type Item struct {
	ID      string  `json:"id"`
	Text    string  `json:"text,omitempty"`
	Checked bool    `json:"checked,omitempty"`
	Value   float64 `json:"value,omitempty"`
}

// Block types.
const (
	BlockTypeChecklist = "checklist"
	BlockTypeCounter   = "counter"
	BlockTypeText      = "text"
)

// Block colors.
const (
	BlockColorIndigo  = "indigo"
	BlockColorRose    = "rose"
	BlockColorEmerald = "emerald"
	BlockColorAmber   = "amber"
	BlockColorViolet  = "violet"
)

// ValidBlockType reports whether t is one of the supported block types.
func ValidBlockType(t string) bool {
	return t == BlockTypeChecklist || t == BlockTypeCounter || t == BlockTypeText
}

// CustomBlockFromRecord decodes a stored record into a CustomBlock.
func CustomBlockFromRecord(rec Record) CustomBlock {
	return CustomBlock{
		ID:          rec.ID,
		CreatedDate: rec.CreatedDate,
		Name:        fieldString(rec.Fields, "name"),
		BlockType:   fieldString(rec.Fields, "block_type"),
		Color:       fieldString(rec.Fields, "color"),
		Icon:        fieldString(rec.Fields, "icon"),
		Items:       itemsFrom(rec.Fields["items"]),
	}
}

// itemsFrom decodes an items payload element by element so one malformed
// entry does not drop the rest of the sequence.
func itemsFrom(v any) []Item {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	items := make([]Item, 0, len(list))
	for _, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, Item{
			ID:      fieldString(m, "id"),
			Text:    fieldString(m, "text"),
			Checked: fieldBool(m, "checked"),
			Value:   fieldNumber(m, "value"),
		})
	}
	return items
}
