package insights

import (
	"testing"
	"time"

	"github.com/memoapp/memo/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestWeeklySpending(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	day := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format(time.RFC3339)
	}

	spendings := []model.Spending{
		{Title: "recent", Amount: 10, Date: day(1)},
		{Title: "last week", Amount: 20, Date: day(8)},
		{Title: "older", Amount: 30, Date: day(10)},
	}

	assert.Equal(t, 10.0, WeeklySpending(spendings, now))
}

func TestWeeklySpendingFallsBackToCreatedDate(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	spendings := []model.Spending{
		{Amount: 5, CreatedDate: now.AddDate(0, 0, -2).Format(time.RFC3339)},
		{Amount: 7, Date: "not a date", CreatedDate: now.AddDate(0, 0, -3).Format(time.RFC3339)},
		{Amount: 11}, // no date at all, excluded
	}

	assert.Equal(t, 12.0, WeeklySpending(spendings, now))
}

func TestWeeklySpendingParsesPlainDates(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	spendings := []model.Spending{
		{Amount: 3, Date: "2025-08-30"},
		{Amount: 4, Date: "2025-08-01"},
	}

	assert.Equal(t, 3.0, WeeklySpending(spendings, now))
}

func TestPendingCounts(t *testing.T) {
	loads := []model.LaundryLoad{
		{Status: model.LoadStatusPending},
		{Status: model.LoadStatusWashing},
		{Status: model.LoadStatusComplete},
	}
	assert.Equal(t, 2, PendingLaundry(loads))

	reminders := []model.Reminder{
		{Title: "a", Completed: false},
		{Title: "b", Completed: true},
		{Title: "c", Completed: false},
	}
	assert.Equal(t, 2, PendingReminders(reminders))
}

func TestCategoryTotals(t *testing.T) {
	spendings := []model.Spending{
		{Amount: 10, Category: model.CategoryGroceries},
		{Amount: 25, Category: model.CategoryDining},
		{Amount: 15, Category: model.CategoryGroceries},
		{Amount: 5}, // empty category folds into other
	}

	totals := CategoryTotals(spendings)

	// Ties sort by category name for a deterministic order.
	assert.Equal(t, []CategoryTotal{
		{Category: model.CategoryDining, Total: 25},
		{Category: model.CategoryGroceries, Total: 25},
		{Category: model.CategoryOther, Total: 5},
	}, totals)
}
