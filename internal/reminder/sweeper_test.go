package reminder

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cabinetmed/cabinet_backend/internal/notify"
	"github.com/cabinetmed/cabinet_backend/internal/service/notification"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fakeSource struct {
	appts     []Appointment
	cancelled map[uuid.UUID]bool
	checkErr  error
}

func (f *fakeSource) Upcoming(context.Context, time.Time) ([]Appointment, error) {
	return f.appts, nil
}

func (f *fakeSource) IsCancelled(_ context.Context, id uuid.UUID) (bool, error) {
	if f.checkErr != nil {
		return false, f.checkErr
	}
	return f.cancelled[id], nil
}

type fakePrefs struct {
	byUser map[uuid.UUID]notification.Prefs
	err    error
}

func (f *fakePrefs) ResolvePrefs(_ context.Context, userID uuid.UUID) (notification.Prefs, error) {
	if f.err != nil {
		return notification.Prefs{}, f.err
	}
	if p, ok := f.byUser[userID]; ok {
		return p, nil
	}
	return notification.DefaultPrefs(), nil
}

type fakeSentLog struct {
	sent     map[string]bool
	recorded []string
}

func newFakeSentLog() *fakeSentLog {
	return &fakeSentLog{sent: map[string]bool{}}
}

func (f *fakeSentLog) key(id uuid.UUID, ch string) string { return id.String() + "/" + ch }

func (f *fakeSentLog) AlreadySent(_ context.Context, id uuid.UUID, ch string) (bool, error) {
	return f.sent[f.key(id, ch)], nil
}

func (f *fakeSentLog) Record(_ context.Context, id uuid.UUID, ch string, _ time.Time) error {
	f.sent[f.key(id, ch)] = true
	f.recorded = append(f.recorded, f.key(id, ch))
	return nil
}

type fakeDispatcher struct {
	notices []notify.Notice
	failFor map[uuid.UUID]error
}

func (f *fakeDispatcher) Dispatch(_ context.Context, n notify.Notice) error {
	if f.failFor != nil && n.AppointmentID != nil {
		if err, ok := f.failFor[*n.AppointmentID]; ok {
			return err
		}
	}
	f.notices = append(f.notices, n)
	return nil
}

func appt(start time.Time) Appointment {
	return Appointment{
		ID:               uuid.New(),
		PatientID:        uuid.New(),
		PatientUserID:    uuid.New(),
		PatientName:      "Jean Dupont",
		PractitionerName: "Dr. Martin",
		StartTime:        start,
		DurationMinutes:  30,
	}
}

func newSweeper(src Source, prefs PrefsResolver, log SentLog, d Dispatcher, now time.Time) *Sweeper {
	return NewSweeper(src, prefs, log, d, fixedClock{t: now}, 2, "Cabinet Medical", slog.New(slog.DiscardHandler))
}

func TestSweepDueWindow(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		until time.Duration
		due   bool
	}{
		{"exactly at delay", 24 * time.Hour, true},
		{"lower edge", 22 * time.Hour, true},
		{"upper edge", 26 * time.Hour, true},
		{"just inside lower", 23 * time.Hour, true},
		{"below window", 21 * time.Hour, false},
		{"just below window", 21*time.Hour + 59*time.Minute, false},
		{"above window", 26*time.Hour + time.Minute, false},
		{"far future", 72 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := appt(now.Add(tt.until))
			src := &fakeSource{appts: []Appointment{a}}
			d := &fakeDispatcher{}
			s := newSweeper(src, &fakePrefs{}, newFakeSentLog(), d, now)

			stats, err := s.Run(context.Background())
			require.NoError(t, err)
			require.Equal(t, 1, stats.Scanned)

			if tt.due {
				// Defaults: both channels enabled.
				require.Len(t, d.notices, 2)
				require.Equal(t, 2, stats.Sent)
			} else {
				require.Empty(t, d.notices)
				require.Zero(t, stats.Sent)
			}
		})
	}
}

func TestSweepHonorsCustomDelay(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	a := appt(now.Add(48 * time.Hour))

	src := &fakeSource{appts: []Appointment{a}}
	prefs := &fakePrefs{byUser: map[uuid.UUID]notification.Prefs{
		a.PatientUserID: {DelayHours: 48, EmailEnabled: true, InAppEnabled: false},
	}}
	d := &fakeDispatcher{}
	s := newSweeper(src, prefs, newFakeSentLog(), d, now)

	stats, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, stats.Sent)
	require.Len(t, d.notices, 1)
	require.Equal(t, notify.ChannelEmail, d.notices[0].Channel)
	require.NotNil(t, d.notices[0].Mail)
}

func TestSweepChannelToggles(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	a := appt(now.Add(24 * time.Hour))

	src := &fakeSource{appts: []Appointment{a}}
	prefs := &fakePrefs{byUser: map[uuid.UUID]notification.Prefs{
		a.PatientUserID: {DelayHours: 24, EmailEnabled: false, InAppEnabled: true},
	}}
	d := &fakeDispatcher{}
	s := newSweeper(src, prefs, newFakeSentLog(), d, now)

	_, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, d.notices, 1)
	require.Equal(t, notify.ChannelInApp, d.notices[0].Channel)
	require.Nil(t, d.notices[0].Mail)
}

func TestSweepDedup(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	a := appt(now.Add(24 * time.Hour))

	src := &fakeSource{appts: []Appointment{a}}
	d := &fakeDispatcher{}
	sentLog := newFakeSentLog()
	s := newSweeper(src, &fakePrefs{}, sentLog, d, now)

	stats, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, stats.Sent)

	// Second sweep in the same window: nothing new goes out.
	stats, err = s.Run(context.Background())
	require.NoError(t, err)
	require.Zero(t, stats.Sent)
	require.Equal(t, 2, stats.Skipped)
	require.Len(t, d.notices, 2)
}

func TestSweepSkipsCancellationRace(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	a := appt(now.Add(24 * time.Hour))

	src := &fakeSource{
		appts:     []Appointment{a},
		cancelled: map[uuid.UUID]bool{a.ID: true},
	}
	d := &fakeDispatcher{}
	sentLog := newFakeSentLog()
	s := newSweeper(src, &fakePrefs{}, sentLog, d, now)

	stats, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Empty(t, d.notices)
	require.Zero(t, stats.Sent)
	require.Equal(t, 2, stats.Skipped)
	require.Empty(t, sentLog.recorded)
}

func TestSweepIsolatesFailures(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	bad := appt(now.Add(24 * time.Hour))
	good := appt(now.Add(24 * time.Hour))

	src := &fakeSource{appts: []Appointment{bad, good}}
	d := &fakeDispatcher{failFor: map[uuid.UUID]error{bad.ID: errors.New("smtp down")}}
	s := newSweeper(src, &fakePrefs{}, newFakeSentLog(), d, now)

	stats, err := s.Run(context.Background())
	require.NoError(t, err)

	// The bad appointment fails on both channels; the good one still
	// gets both reminders.
	require.Equal(t, 2, stats.Failed)
	require.Equal(t, 2, stats.Sent)
	require.Len(t, d.notices, 2)
	for _, n := range d.notices {
		require.Equal(t, good.ID, *n.AppointmentID)
	}
}

func TestSweepFailedDispatchNotRecorded(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	a := appt(now.Add(24 * time.Hour))

	src := &fakeSource{appts: []Appointment{a}}
	d := &fakeDispatcher{failFor: map[uuid.UUID]error{a.ID: errors.New("smtp down")}}
	sentLog := newFakeSentLog()
	s := newSweeper(src, &fakePrefs{}, sentLog, d, now)

	_, err := s.Run(context.Background())
	require.NoError(t, err)
	// Nothing recorded: the next sweep gets another chance.
	require.Empty(t, sentLog.recorded)
}
