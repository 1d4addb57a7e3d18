package model

// Spending represents a single expense entry. Amounts are stored as
// provided, without currency handling.
type Spending struct {
	ID          string  `json:"id"`
	CreatedDate string  `json:"created_date,omitempty"`
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date,omitempty"`
}

// Spending categories.
const (
	CategoryGroceries     = "groceries"
	CategoryUtilities     = "utilities"
	CategoryEntertainment = "entertainment"
	CategoryTransport     = "transport"
	CategoryDining        = "dining"
	CategoryShopping      = "shopping"
	CategoryHealth        = "health"
	CategoryOther         = "other"
)

// SpendingFromRecord decodes a stored record into a Spending.
func SpendingFromRecord(rec Record) Spending {
	return Spending{
		ID:          rec.ID,
		CreatedDate: rec.CreatedDate,
		Title:       fieldString(rec.Fields, "title"),
		Amount:      fieldNumber(rec.Fields, "amount"),
		Category:    fieldString(rec.Fields, "category"),
		Date:        fieldString(rec.Fields, "date"),
	}
}
