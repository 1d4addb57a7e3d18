// Package scheduler polls the reminder and laundry collections and decides
// which due items deserve a one-time alert.
package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/memoapp/memo/internal/model"
	"github.com/memoapp/memo/internal/notify"
	"github.com/memoapp/memo/internal/store"
)

// Clock abstracts time.Now so tests can drive the due-window checks
// deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Scheduler owns the notification state for one process lifetime: the set
// of reminder ids already alerted, the one-shot missed-reminder check, and
// an hourly snapshot of the laundry collection. The daily laundry gate is
// persisted in settings so it survives restarts.
type Scheduler struct {
	// ReminderInterval is how often the reminder collection is re-read.
	ReminderInterval time.Duration
	// LaundryInterval is how often the laundry snapshot is refreshed.
	LaundryInterval time.Duration

	db       *sql.DB
	notifier notify.Notifier
	clock    Clock
	log      *slog.Logger

	granted       bool
	checkedMissed bool
	notified      map[string]struct{}
	laundry       []model.LaundryLoad

	ticking atomic.Bool
}

// New creates a scheduler with the default polling intervals. A nil
// notifier disables the scheduler entirely.
func New(db *sql.DB, notifier notify.Notifier, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		ReminderInterval: 30 * time.Second,
		LaundryInterval:  time.Hour,
		db:               db,
		notifier:         notifier,
		clock:            systemClock{},
		log:              log,
		notified:         make(map[string]struct{}),
	}
}

// Run blocks until ctx is cancelled, polling reminders every
// ReminderInterval and refreshing the laundry snapshot every
// LaundryInterval, with an immediate first pass. Permission is requested
// once at startup; if denied, polling continues but nothing is emitted.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.notifier == nil {
		s.log.Info("no notification capability, scheduler disabled")
		return nil
	}

	granted, err := s.notifier.RequestPermission(ctx)
	if err != nil {
		s.log.Warn("notification permission request failed", "error", err)
	}
	s.granted = granted
	if !s.granted {
		s.log.Info("notification permission denied, alerts muted")
	}

	s.refreshLaundry(ctx)
	s.tick(ctx)

	reminderTicker := time.NewTicker(s.ReminderInterval)
	defer reminderTicker.Stop()
	laundryTicker := time.NewTicker(s.LaundryInterval)
	defer laundryTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler shutting down")
			return nil
		case <-reminderTicker.C:
			s.tick(ctx)
		case <-laundryTicker.C:
			s.refreshLaundry(ctx)
		}
	}
}

// refreshLaundry re-reads the laundry snapshot used by the daily digest.
// A failed read keeps the previous snapshot.
func (s *Scheduler) refreshLaundry(ctx context.Context) {
	loads, err := store.ListLaundryLoads(ctx, s.db)
	if err != nil {
		s.log.Error("refreshing laundry snapshot", "error", err)
		return
	}
	s.laundry = loads
}

// tick runs one scheduling pass. Ticks are isolated: any failure is logged
// and the next tick proceeds normally. A tick that would overlap an
// unfinished one is skipped.
func (s *Scheduler) tick(ctx context.Context) {
	if !s.ticking.CompareAndSwap(false, true) {
		s.log.Debug("previous tick still running, skipping")
		return
	}
	defer s.ticking.Store(false)

	if !s.granted {
		return
	}

	reminders, err := store.ListReminders(ctx, s.db)
	if err != nil {
		s.log.Error("listing reminders", "error", err)
		return
	}

	now := s.clock.Now()
	s.checkMissed(ctx, reminders, now)
	s.checkDue(ctx, reminders, now)
	s.checkLaundryDigest(ctx, now)
}

// checkMissed backfills reminders that came due while the app was not
// running. It fires at most once per process lifetime, on the first pass
// that sees a non-empty reminder collection: overdue incomplete reminders
// less than 24 hours late produce a single aggregate alert, and their ids
// are pre-marked so the live window never re-alerts them. Older misses are
// stale and suppressed.
func (s *Scheduler) checkMissed(ctx context.Context, reminders []model.Reminder, now time.Time) {
	if s.checkedMissed || len(reminders) == 0 {
		return
	}

	var missed []model.Reminder
	for _, r := range reminders {
		if r.Completed {
			continue
		}
		due, ok := r.DueTime()
		if !ok {
			continue
		}
		late := now.Sub(due)
		if late > 0 && late < 24*time.Hour {
			missed = append(missed, r)
		}
	}

	if len(missed) > 0 {
		body := fmt.Sprintf("You have %d overdue reminders.", len(missed))
		if err := s.notifier.Notify(ctx, "Missed Reminders", body, notify.Options{}); err != nil {
			s.log.Error("sending missed reminder alert", "error", err)
		}
		for _, r := range missed {
			s.notified[r.ID] = struct{}{}
		}
	}
	s.checkedMissed = true
}

// checkDue alerts for every incomplete reminder whose due date is within
// 60 seconds of now, in either direction. Each reminder alerts at most
// once per process lifetime.
func (s *Scheduler) checkDue(ctx context.Context, reminders []model.Reminder, now time.Time) {
	for _, r := range reminders {
		if r.Completed {
			continue
		}
		due, ok := r.DueTime()
		if !ok {
			continue
		}
		diff := now.Sub(due)
		if diff < 0 {
			diff = -diff
		}
		if diff >= time.Minute {
			continue
		}
		if _, seen := s.notified[r.ID]; seen {
			continue
		}
		err := s.notifier.Notify(ctx, "Reminder", r.Title,
			notify.Options{RequireInteraction: true})
		if err != nil {
			s.log.Error("sending reminder alert", "reminder", r.ID, "error", err)
		}
		s.notified[r.ID] = struct{}{}
	}
}

// checkLaundryDigest sends at most one pending-laundry summary per
// calendar day, gated by a persisted date. The gate only advances after a
// successful emission, so a failed send is retried on the next tick.
func (s *Scheduler) checkLaundryDigest(ctx context.Context, now time.Time) {
	today := now.Format("2006-01-02")

	last, err := store.LastLaundryNotify(ctx, s.db)
	if err != nil {
		s.log.Error("reading laundry digest gate", "error", err)
		return
	}
	if last == today {
		return
	}

	pending := 0
	for _, l := range s.laundry {
		if l.Pending() {
			pending++
		}
	}
	if pending == 0 {
		return
	}

	body := fmt.Sprintf("You have %d pending laundry loads.", pending)
	if err := s.notifier.Notify(ctx, "Laundry Reminder", body, notify.Options{}); err != nil {
		s.log.Error("sending laundry digest", "error", err)
		return
	}
	if err := store.SetLastLaundryNotify(ctx, s.db, today); err != nil {
		s.log.Error("persisting laundry digest gate", "error", err)
	}
}
