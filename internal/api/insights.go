package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/memoapp/memo/internal/insights"
	"github.com/memoapp/memo/internal/store"
)

// InsightsHandler serves the dashboard summary.
type InsightsHandler struct {
	DB *sql.DB
}

// Get handles GET /api/insights.
func (h *InsightsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	spendings, err := store.ListSpendings(ctx, h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list spendings")
		return
	}
	loads, err := store.ListLaundryLoads(ctx, h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list laundry loads")
		return
	}
	reminders, err := store.ListReminders(ctx, h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list reminders")
		return
	}
	notes, err := store.ListNotes(ctx, h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list notes")
		return
	}

	topCategories := insights.CategoryTotals(spendings)
	if topCategories == nil {
		topCategories = []insights.CategoryTotal{}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"weekly_spending":   insights.WeeklySpending(spendings, time.Now()),
		"pending_laundry":   insights.PendingLaundry(loads),
		"pending_reminders": insights.PendingReminders(reminders),
		"notes_count":       len(notes),
		"top_categories":    topCategories,
	})
}
