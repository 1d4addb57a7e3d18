package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memoapp/memo/internal/db"
	"github.com/memoapp/memo/internal/notify"
	"github.com/memoapp/memo/internal/store"
)

type notification struct {
	title string
	body  string
	opts  notify.Options
}

type fakeNotifier struct {
	granted bool
	fail    bool
	sent    []notification
}

func (f *fakeNotifier) RequestPermission(context.Context) (bool, error) {
	return f.granted, nil
}

func (f *fakeNotifier) Notify(_ context.Context, title, body string, opts notify.Options) error {
	if f.fail {
		return errors.New("send failed")
	}
	f.sent = append(f.sent, notification{title: title, body: body, opts: opts})
	return nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

var baseTime = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestScheduler(t *testing.T) (*Scheduler, *fakeNotifier, *fakeClock) {
	t.Helper()
	database := db.NewTestDB(t)
	notifier := &fakeNotifier{granted: true}
	clock := &fakeClock{now: baseTime}

	s := New(database, notifier, slog.Default())
	s.clock = clock
	s.granted = true
	return s, notifier, clock
}

func createReminder(t *testing.T, s *Scheduler, title string, due time.Time, completed bool) {
	t.Helper()
	fields := map[string]any{"title": title, "completed": completed}
	if !due.IsZero() {
		fields["due_date"] = due.Format(time.RFC3339)
	}
	_, err := store.CreateReminder(context.Background(), s.db, fields)
	require.NoError(t, err)
}

func TestLiveDueWindowNotifiesOnce(t *testing.T) {
	s, notifier, clock := newTestScheduler(t)
	ctx := context.Background()

	due := baseTime.Add(30 * time.Second)
	createReminder(t, s, "Water the plants", due, false)

	// Advance to the due moment: exactly one alert.
	clock.now = due
	s.tick(ctx)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Reminder", notifier.sent[0].title)
	assert.Equal(t, "Water the plants", notifier.sent[0].body)
	assert.True(t, notifier.sent[0].opts.RequireInteraction)

	// A second pass at the same moment stays quiet.
	s.tick(ctx)
	assert.Len(t, notifier.sent, 1)
}

func TestLiveDueWindowBounds(t *testing.T) {
	s, notifier, clock := newTestScheduler(t)
	ctx := context.Background()

	createReminder(t, s, "Too early", baseTime.Add(5*time.Minute), false)
	createReminder(t, s, "Done already", baseTime, true)

	clock.now = baseTime
	s.tick(ctx)
	assert.Empty(t, notifier.sent, "future and completed reminders must not alert")
}

func TestMissedBackfillAggregates(t *testing.T) {
	s, notifier, clock := newTestScheduler(t)
	ctx := context.Background()

	createReminder(t, s, "Overdue A", baseTime.Add(-2*time.Hour), false)
	createReminder(t, s, "Overdue B", baseTime.Add(-3*time.Hour), false)
	createReminder(t, s, "Stale", baseTime.Add(-30*time.Hour), false)
	createReminder(t, s, "Finished", baseTime.Add(-time.Hour), true)

	clock.now = baseTime
	s.tick(ctx)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Missed Reminders", notifier.sent[0].title)
	assert.Equal(t, "You have 2 overdue reminders.", notifier.sent[0].body)

	// The backfill never repeats, and the backfilled reminders never hit
	// the live window either.
	s.tick(ctx)
	assert.Len(t, notifier.sent, 1)
}

func TestMissedBackfillWaitsForData(t *testing.T) {
	s, notifier, clock := newTestScheduler(t)
	ctx := context.Background()

	// First pass sees an empty collection: the one-shot check stays armed.
	clock.now = baseTime
	s.tick(ctx)
	assert.Empty(t, notifier.sent)

	createReminder(t, s, "Overdue", baseTime.Add(-time.Hour), false)
	s.tick(ctx)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Missed Reminders", notifier.sent[0].title)
	assert.Equal(t, "You have 1 overdue reminders.", notifier.sent[0].body)
}

func TestLaundryDigestOncePerDay(t *testing.T) {
	s, notifier, clock := newTestScheduler(t)
	ctx := context.Background()

	for _, status := range []string{"pending", "washing", "complete"} {
		_, err := store.CreateLaundryLoad(ctx, s.db, map[string]any{
			"load_type": "colors", "status": status,
		})
		require.NoError(t, err)
	}
	s.refreshLaundry(ctx)

	clock.now = baseTime
	s.tick(ctx)
	s.tick(ctx)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Laundry Reminder", notifier.sent[0].title)
	assert.Equal(t, "You have 2 pending laundry loads.", notifier.sent[0].body)

	date, err := store.LastLaundryNotify(ctx, s.db)
	require.NoError(t, err)
	assert.Equal(t, "2025-09-01", date)

	// The next calendar day opens the gate again.
	clock.now = baseTime.AddDate(0, 0, 1)
	s.tick(ctx)
	require.Len(t, notifier.sent, 2)
}

func TestLaundryDigestRetriesAfterSendFailure(t *testing.T) {
	s, notifier, clock := newTestScheduler(t)
	ctx := context.Background()

	_, err := store.CreateLaundryLoad(ctx, s.db, map[string]any{
		"load_type": "darks", "status": "pending",
	})
	require.NoError(t, err)
	s.refreshLaundry(ctx)

	clock.now = baseTime
	notifier.fail = true
	s.tick(ctx)

	// The gate only advances on a successful send.
	date, err := store.LastLaundryNotify(ctx, s.db)
	require.NoError(t, err)
	assert.Equal(t, "", date)

	notifier.fail = false
	s.tick(ctx)
	require.Len(t, notifier.sent, 1)
}

func TestDeniedPermissionMutesEverything(t *testing.T) {
	s, notifier, clock := newTestScheduler(t)
	ctx := context.Background()
	s.granted = false

	createReminder(t, s, "Due now", baseTime, false)
	clock.now = baseTime
	s.tick(ctx)

	assert.Empty(t, notifier.sent)
}

func TestOverlappingTickSkipped(t *testing.T) {
	s, notifier, clock := newTestScheduler(t)
	ctx := context.Background()

	createReminder(t, s, "Due now", baseTime, false)
	clock.now = baseTime

	s.ticking.Store(true)
	s.tick(ctx)
	assert.Empty(t, notifier.sent, "tick overlapping an unfinished one must be skipped")

	s.ticking.Store(false)
	s.tick(ctx)
	assert.Len(t, notifier.sent, 1)
}

func TestNilNotifierDisablesScheduler(t *testing.T) {
	database := db.NewTestDB(t)
	s := New(database, nil, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Run returns immediately instead of polling.
	require.NoError(t, s.Run(ctx))
}
