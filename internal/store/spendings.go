package store

import (
	"context"
	"database/sql"

	"github.com/memoapp/memo/internal/model"
)

// ListSpendings returns every spending entry, most recent first.
func ListSpendings(ctx context.Context, db *sql.DB) ([]model.Spending, error) {
	recs, err := ListRecords(ctx, db, CollectionSpendings)
	if err != nil {
		return nil, err
	}
	spendings := make([]model.Spending, len(recs))
	for i, rec := range recs {
		spendings[i] = model.SpendingFromRecord(rec)
	}
	return spendings, nil
}

// CreateSpending creates a new spending entry from caller fields.
func CreateSpending(ctx context.Context, db *sql.DB, fields map[string]any) (*model.Spending, error) {
	rec, err := CreateRecord(ctx, db, CollectionSpendings, fields)
	if err != nil {
		return nil, err
	}
	spending := model.SpendingFromRecord(*rec)
	return &spending, nil
}

// UpdateSpending merges fields into an existing spending entry.
func UpdateSpending(ctx context.Context, db *sql.DB, id string, fields map[string]any) (*model.Spending, error) {
	rec, err := UpdateRecord(ctx, db, CollectionSpendings, id, fields)
	if err != nil {
		return nil, err
	}
	spending := model.SpendingFromRecord(*rec)
	return &spending, nil
}

// DeleteSpending removes a spending entry. Idempotent.
func DeleteSpending(ctx context.Context, db *sql.DB, id string) error {
	return DeleteRecord(ctx, db, CollectionSpendings, id)
}
