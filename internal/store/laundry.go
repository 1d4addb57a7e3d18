package store

import (
	"context"
	"database/sql"

	"github.com/memoapp/memo/internal/model"
)

// ListLaundryLoads returns every laundry load, most recent first.
func ListLaundryLoads(ctx context.Context, db *sql.DB) ([]model.LaundryLoad, error) {
	recs, err := ListRecords(ctx, db, CollectionLaundry)
	if err != nil {
		return nil, err
	}
	loads := make([]model.LaundryLoad, len(recs))
	for i, rec := range recs {
		loads[i] = model.LaundryLoadFromRecord(rec)
	}
	return loads, nil
}

// CreateLaundryLoad creates a new laundry load from caller fields.
func CreateLaundryLoad(ctx context.Context, db *sql.DB, fields map[string]any) (*model.LaundryLoad, error) {
	rec, err := CreateRecord(ctx, db, CollectionLaundry, fields)
	if err != nil {
		return nil, err
	}
	load := model.LaundryLoadFromRecord(*rec)
	return &load, nil
}

// UpdateLaundryLoad merges fields into an existing laundry load.
func UpdateLaundryLoad(ctx context.Context, db *sql.DB, id string, fields map[string]any) (*model.LaundryLoad, error) {
	rec, err := UpdateRecord(ctx, db, CollectionLaundry, id, fields)
	if err != nil {
		return nil, err
	}
	load := model.LaundryLoadFromRecord(*rec)
	return &load, nil
}

// DeleteLaundryLoad removes a laundry load. Idempotent.
func DeleteLaundryLoad(ctx context.Context, db *sql.DB, id string) error {
	return DeleteRecord(ctx, db, CollectionLaundry, id)
}
