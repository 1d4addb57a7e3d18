package api

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/memoapp/memo/internal/model"
	"github.com/memoapp/memo/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	register(mux, "laundry", laundryHandler(db))
	register(mux, "spendings", spendingsHandler(db))
	register(mux, "notes", notesHandler(db))
	register(mux, "reminders", remindersHandler(db))
	register(mux, "blocks", blocksHandler(db))

	insightsHandler := &InsightsHandler{DB: db}
	mux.HandleFunc("GET /api/insights", insightsHandler.Get)

	return mux
}

func register(mux *http.ServeMux, path string, h *entityHandler) {
	mux.HandleFunc("GET /api/"+path, h.List)
	mux.HandleFunc("POST /api/"+path, h.Create)
	mux.HandleFunc("PUT /api/"+path+"/{id}", h.Update)
	mux.HandleFunc("DELETE /api/"+path+"/{id}", h.Delete)
}

func laundryHandler(db *sql.DB) *entityHandler {
	return &entityHandler{
		name: "laundry load",
		list: func(ctx context.Context) (any, error) {
			loads, err := store.ListLaundryLoads(ctx, db)
			if loads == nil {
				loads = []model.LaundryLoad{}
			}
			return loads, err
		},
		create: func(ctx context.Context, fields map[string]any) (any, error) {
			return store.CreateLaundryLoad(ctx, db, fields)
		},
		update: func(ctx context.Context, id string, fields map[string]any) (any, error) {
			return store.UpdateLaundryLoad(ctx, db, id, fields)
		},
		remove: func(ctx context.Context, id string) error {
			return store.DeleteLaundryLoad(ctx, db, id)
		},
	}
}

func spendingsHandler(db *sql.DB) *entityHandler {
	return &entityHandler{
		name: "spending",
		list: func(ctx context.Context) (any, error) {
			spendings, err := store.ListSpendings(ctx, db)
			if spendings == nil {
				spendings = []model.Spending{}
			}
			return spendings, err
		},
		create: func(ctx context.Context, fields map[string]any) (any, error) {
			return store.CreateSpending(ctx, db, fields)
		},
		update: func(ctx context.Context, id string, fields map[string]any) (any, error) {
			return store.UpdateSpending(ctx, db, id, fields)
		},
		remove: func(ctx context.Context, id string) error {
			return store.DeleteSpending(ctx, db, id)
		},
	}
}

func notesHandler(db *sql.DB) *entityHandler {
	return &entityHandler{
		name: "note",
		list: func(ctx context.Context) (any, error) {
			notes, err := store.ListNotes(ctx, db)
			if notes == nil {
				notes = []model.Note{}
			}
			return notes, err
		},
		create: func(ctx context.Context, fields map[string]any) (any, error) {
			return store.CreateNote(ctx, db, fields)
		},
		update: func(ctx context.Context, id string, fields map[string]any) (any, error) {
			return store.UpdateNote(ctx, db, id, fields)
		},
		remove: func(ctx context.Context, id string) error {
			return store.DeleteNote(ctx, db, id)
		},
	}
}

func remindersHandler(db *sql.DB) *entityHandler {
	return &entityHandler{
		name: "reminder",
		list: func(ctx context.Context) (any, error) {
			reminders, err := store.ListReminders(ctx, db)
			if reminders == nil {
				reminders = []model.Reminder{}
			}
			return reminders, err
		},
		create: func(ctx context.Context, fields map[string]any) (any, error) {
			return store.CreateReminder(ctx, db, fields)
		},
		update: func(ctx context.Context, id string, fields map[string]any) (any, error) {
			return store.UpdateReminder(ctx, db, id, fields)
		},
		remove: func(ctx context.Context, id string) error {
			return store.DeleteReminder(ctx, db, id)
		},
	}
}

func blocksHandler(db *sql.DB) *entityHandler {
	return &entityHandler{
		name: "custom block",
		list: func(ctx context.Context) (any, error) {
			blocks, err := store.ListCustomBlocks(ctx, db)
			if blocks == nil {
				blocks = []model.CustomBlock{}
			}
			return blocks, err
		},
		create: func(ctx context.Context, fields map[string]any) (any, error) {
			return store.CreateCustomBlock(ctx, db, fields)
		},
		update: func(ctx context.Context, id string, fields map[string]any) (any, error) {
			return store.UpdateCustomBlock(ctx, db, id, fields)
		},
		remove: func(ctx context.Context, id string) error {
			return store.DeleteCustomBlock(ctx, db, id)
		},
	}
}
