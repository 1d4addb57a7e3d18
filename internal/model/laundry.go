package model

// LaundryLoad represents a single load of laundry on the dashboard.
type LaundryLoad struct {
	ID            string `json:"id"`
	CreatedDate   string `json:"created_date,omitempty"`
	LoadType      string `json:"load_type"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
}

// Laundry load types.
const (
	LoadTypeWhites    = "whites"
	LoadTypeColors    = "colors"
	LoadTypeDarks     = "darks"
	LoadTypeDelicates = "delicates"
	LoadTypeBedding   = "bedding"
	LoadTypeTowels    = "towels"
)

// Laundry load statuses. Transitions are free-form: the user may set any
// status at any time.
const (
	LoadStatusPending  = "pending"
	LoadStatusWashing  = "washing"
	LoadStatusDrying   = "drying"
	LoadStatusComplete = "complete"
)

// LaundryLoadFromRecord decodes a stored record into a LaundryLoad.
func LaundryLoadFromRecord(rec Record) LaundryLoad {
	return LaundryLoad{
		ID:            rec.ID,
		CreatedDate:   rec.CreatedDate,
		LoadType:      fieldString(rec.Fields, "load_type"),
		Status:        fieldString(rec.Fields, "status"),
		Notes:         fieldString(rec.Fields, "notes"),
		ScheduledDate: fieldString(rec.Fields, "scheduled_date"),
	}
}

// Pending reports whether the load still needs attention.
func (l LaundryLoad) Pending() bool {
	return l.Status != LoadStatusComplete
}
