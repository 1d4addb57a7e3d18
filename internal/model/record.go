package model

import "encoding/json"

// Record is a persisted entity instance: a stable envelope (id and creation
// timestamp) plus the entity's own fields as a flat document. The envelope is
// owned by the record store; fields are owned by the caller.
type Record struct {
	ID          string
	CreatedDate string // RFC3339 UTC; empty for legacy rows without a timestamp
	Fields      map[string]any
}

// MarshalJSON flattens the envelope and fields into a single object, matching
// the shape the presentation layer reads and writes.
func (r Record) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(r.Fields)+2)
	for k, v := range r.Fields {
		doc[k] = v
	}
	doc["id"] = r.ID
	if r.CreatedDate != "" {
		doc["created_date"] = r.CreatedDate
	}
	return json.Marshal(doc)
}
