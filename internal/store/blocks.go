package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/memoapp/memo/internal/model"
)

// ListCustomBlocks returns every custom block, most recent first.
func ListCustomBlocks(ctx context.Context, db *sql.DB) ([]model.CustomBlock, error) {
	recs, err := ListRecords(ctx, db, CollectionBlocks)
	if err != nil {
		return nil, err
	}
	blocks := make([]model.CustomBlock, len(recs))
	for i, rec := range recs {
		blocks[i] = model.CustomBlockFromRecord(rec)
	}
	return blocks, nil
}

// CreateCustomBlock creates a new custom block. The block type is fixed
// here: it selects the item shape for the block's whole lifetime.
func CreateCustomBlock(ctx context.Context, db *sql.DB, fields map[string]any) (*model.CustomBlock, error) {
	blockType, _ := fields["block_type"].(string)
	if !model.ValidBlockType(blockType) {
		return nil, fmt.Errorf("%w: unknown block type %q", ErrInvalidInput, blockType)
	}
	if err := validateItems(fields); err != nil {
		return nil, err
	}

	rec, err := CreateRecord(ctx, db, CollectionBlocks, fields)
	if err != nil {
		return nil, err
	}
	block := model.CustomBlockFromRecord(*rec)
	return &block, nil
}

// UpdateCustomBlock merges fields into an existing custom block. An "items"
// key replaces the whole sequence; there is no element-wise merge.
func UpdateCustomBlock(ctx context.Context, db *sql.DB, id string, fields map[string]any) (*model.CustomBlock, error) {
	if v, ok := fields["block_type"]; ok {
		blockType, _ := v.(string)
		if !model.ValidBlockType(blockType) {
			return nil, fmt.Errorf("%w: unknown block type %q", ErrInvalidInput, blockType)
		}
	}
	if err := validateItems(fields); err != nil {
		return nil, err
	}

	rec, err := UpdateRecord(ctx, db, CollectionBlocks, id, fields)
	if err != nil {
		return nil, err
	}
	block := model.CustomBlockFromRecord(*rec)
	return &block, nil
}

// DeleteCustomBlock removes a custom block and the items it owns. Idempotent.
func DeleteCustomBlock(ctx context.Context, db *sql.DB, id string) error {
	return DeleteRecord(ctx, db, CollectionBlocks, id)
}

// validateItems checks an "items" payload, if present: it must be a
// sequence of objects, each carrying a non-empty string id. Item ids are
// caller-generated since items have no lifecycle of their own.
func validateItems(fields map[string]any) error {
	v, ok := fields["items"]
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return fmt.Errorf("%w: items must be a sequence", ErrInvalidInput)
	}
	for i, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: item %d is not an object", ErrInvalidInput, i)
		}
		if id, _ := m["id"].(string); id == "" {
			return fmt.Errorf("%w: item %d is missing an id", ErrInvalidInput, i)
		}
	}
	return nil
}
