// Package insights computes derived dashboard views from repository
// snapshots. Every function is pure: no storage access, no side effects.
package insights

import (
	"sort"
	"time"

	"github.com/memoapp/memo/internal/model"
)

// WeeklySpending sums spending amounts for the trailing 7 days from now.
// A spending's own date wins over its creation timestamp; entries with no
// parseable date at all are excluded.
func WeeklySpending(spendings []model.Spending, now time.Time) float64 {
	weekAgo := now.AddDate(0, 0, -7)
	var total float64
	for _, s := range spendings {
		when, ok := model.ParseTime(s.Date)
		if !ok {
			when, ok = model.ParseTime(s.CreatedDate)
		}
		if !ok {
			continue
		}
		if !when.Before(weekAgo) && !when.After(now) {
			total += s.Amount
		}
	}
	return total
}

// PendingLaundry counts laundry loads that are not complete.
func PendingLaundry(loads []model.LaundryLoad) int {
	count := 0
	for _, l := range loads {
		if l.Pending() {
			count++
		}
	}
	return count
}

// PendingReminders counts reminders that are not completed.
func PendingReminders(reminders []model.Reminder) int {
	count := 0
	for _, r := range reminders {
		if !r.Completed {
			count++
		}
	}
	return count
}

// CategoryTotal is a per-category spending sum.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// CategoryTotals groups spendings by category and sums amounts per group,
// sorted by total descending. Ties break on category name so the order is
// deterministic.
func CategoryTotals(spendings []model.Spending) []CategoryTotal {
	sums := make(map[string]float64)
	for _, s := range spendings {
		category := s.Category
		if category == "" {
			category = model.CategoryOther
		}
		sums[category] += s.Amount
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for category, total := range sums {
		totals = append(totals, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}
