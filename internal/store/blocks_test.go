package store

import (
	"context"
	"errors"
	"testing"

	"github.com/memoapp/memo/internal/db"
	"github.com/memoapp/memo/internal/model"
)

func TestCreateCustomBlockValidatesType(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := CreateCustomBlock(ctx, database, map[string]any{
		"name": "Bad", "block_type": "gauge",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for unknown block type, got %v", err)
	}

	block, err := CreateCustomBlock(ctx, database, map[string]any{
		"name": "Chores", "block_type": "checklist", "color": "indigo", "icon": "ListChecks",
	})
	if err != nil {
		t.Fatalf("CreateCustomBlock: %v", err)
	}
	if block.BlockType != model.BlockTypeChecklist {
		t.Errorf("expected checklist block, got %q", block.BlockType)
	}
}

func TestCustomBlockItemsValidation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	block, _ := CreateCustomBlock(ctx, database, map[string]any{
		"name": "Chores", "block_type": "checklist",
	})

	// Items without an id are rejected at the boundary.
	_, err := UpdateCustomBlock(ctx, database, block.ID, map[string]any{
		"items": []any{map[string]any{"text": "sweep"}},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for item without id, got %v", err)
	}

	// Items must be a sequence.
	_, err = UpdateCustomBlock(ctx, database, block.ID, map[string]any{
		"items": "not a list",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for non-sequence items, got %v", err)
	}
}

func TestUpdateCustomBlockReplacesItems(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	block, err := CreateCustomBlock(ctx, database, map[string]any{
		"name":       "Workouts",
		"block_type": "counter",
		"items": []any{
			map[string]any{"id": "1", "value": 10},
			map[string]any{"id": "2", "value": 20},
		},
	})
	if err != nil {
		t.Fatalf("CreateCustomBlock: %v", err)
	}
	if len(block.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(block.Items))
	}

	// An items update replaces the whole sequence, not element-wise.
	updated, err := UpdateCustomBlock(ctx, database, block.ID, map[string]any{
		"items": []any{map[string]any{"id": "3", "value": 5}},
	})
	if err != nil {
		t.Fatalf("UpdateCustomBlock: %v", err)
	}
	if len(updated.Items) != 1 || updated.Items[0].ID != "3" || updated.Items[0].Value != 5 {
		t.Errorf("expected items replaced, got %+v", updated.Items)
	}

	// Updating an unrelated field preserves the sequence.
	updated, err = UpdateCustomBlock(ctx, database, block.ID, map[string]any{"name": "Reps"})
	if err != nil {
		t.Fatalf("UpdateCustomBlock: %v", err)
	}
	if updated.Name != "Reps" || len(updated.Items) != 1 {
		t.Errorf("expected items preserved across unrelated update, got %+v", updated)
	}
}
