package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cabinetmed/cabinet_backend/internal/notify"
	"github.com/cabinetmed/cabinet_backend/internal/scheduling"
	"github.com/cabinetmed/cabinet_backend/internal/service/notification"
	"github.com/cabinetmed/cabinet_backend/pkg/email"
)

// DefaultToleranceHours widens the due window on both sides so a sweep
// that runs a little late still catches its reminders.
const DefaultToleranceHours = 2.0

// Appointment is the sweep's view of one upcoming booking.
type Appointment struct {
	ID               uuid.UUID
	PatientID        uuid.UUID
	PatientUserID    uuid.UUID
	PatientName      string
	PractitionerName string
	StartTime        time.Time
	DurationMinutes  int
}

// Source loads upcoming appointments and answers the cancellation
// re-check right before dispatch.
type Source interface {
	Upcoming(ctx context.Context, from time.Time) ([]Appointment, error)
	IsCancelled(ctx context.Context, apptID uuid.UUID) (bool, error)
}

// PrefsResolver returns the effective reminder preferences for a user.
type PrefsResolver interface {
	ResolvePrefs(ctx context.Context, userID uuid.UUID) (notification.Prefs, error)
}

// SentLog is the (appointment, channel) dedup record.
type SentLog interface {
	AlreadySent(ctx context.Context, apptID uuid.UUID, channel string) (bool, error)
	Record(ctx context.Context, apptID uuid.UUID, channel string, sentAt time.Time) error
}

// Dispatcher delivers one notice. *notify.Dispatcher satisfies it.
type Dispatcher interface {
	Dispatch(ctx context.Context, n notify.Notice) error
}

// Stats summarizes one sweep run.
type Stats struct {
	Scanned int
	Sent    int
	Skipped int
	Failed  int
}

type Sweeper struct {
	src       Source
	prefs     PrefsResolver
	sentLog   SentLog
	dispatch  Dispatcher
	clock     scheduling.Clock
	tolerance float64 // hours
	appName   string
	log       *slog.Logger
}

func NewSweeper(src Source, prefs PrefsResolver, sentLog SentLog, dispatch Dispatcher, clock scheduling.Clock, toleranceHours float64, appName string, log *slog.Logger) *Sweeper {
	if toleranceHours <= 0 {
		toleranceHours = DefaultToleranceHours
	}
	return &Sweeper{
		src:       src,
		prefs:     prefs,
		sentLog:   sentLog,
		dispatch:  dispatch,
		clock:     clock,
		tolerance: toleranceHours,
		appName:   appName,
		log:       log,
	}
}

// Run executes one sweep. Failures are isolated per appointment and per
// channel: one bad row never stops the rest of the run.
func (s *Sweeper) Run(ctx context.Context) (Stats, error) {
	now := s.clock.Now()

	appts, err := s.src.Upcoming(ctx, now)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, appt := range appts {
		stats.Scanned++

		prefs, err := s.prefs.ResolvePrefs(ctx, appt.PatientUserID)
		if err != nil {
			stats.Failed++
			s.log.Warn("reminder: resolve prefs failed", "appointment_id", appt.ID, "err", err)
			continue
		}

		hoursUntil := appt.StartTime.Sub(now).Hours()
		delay := float64(prefs.DelayHours)
		if hoursUntil < delay-s.tolerance || hoursUntil > delay+s.tolerance {
			continue
		}

		if prefs.EmailEnabled {
			s.sendOne(ctx, appt, notify.ChannelEmail, &stats)
		}
		if prefs.InAppEnabled {
			s.sendOne(ctx, appt, notify.ChannelInApp, &stats)
		}
	}

	s.log.Info("reminder: sweep done",
		"scanned", stats.Scanned,
		"sent", stats.Sent,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
	)
	return stats, nil
}

func (s *Sweeper) sendOne(ctx context.Context, appt Appointment, channel notify.Channel, stats *Stats) {
	sent, err := s.sentLog.AlreadySent(ctx, appt.ID, string(channel))
	if err != nil {
		stats.Failed++
		s.log.Warn("reminder: dedup check failed", "appointment_id", appt.ID, "channel", channel, "err", err)
		return
	}
	if sent {
		stats.Skipped++
		return
	}

	// A cancellation may have raced the sweep; skip silently.
	cancelled, err := s.src.IsCancelled(ctx, appt.ID)
	if err != nil {
		stats.Failed++
		s.log.Warn("reminder: status re-check failed", "appointment_id", appt.ID, "err", err)
		return
	}
	if cancelled {
		stats.Skipped++
		return
	}

	if err := s.dispatch.Dispatch(ctx, s.notice(appt, channel)); err != nil {
		stats.Failed++
		s.log.Warn("reminder: dispatch failed", "appointment_id", appt.ID, "channel", channel, "err", err)
		return
	}

	if err := s.sentLog.Record(ctx, appt.ID, string(channel), s.clock.Now()); err != nil {
		// The reminder went out; a missing log row means a possible
		// duplicate next sweep, not a lost reminder.
		s.log.Warn("reminder: record sent failed", "appointment_id", appt.ID, "channel", channel, "err", err)
	}

	stats.Sent++
}

func (s *Sweeper) notice(appt Appointment, channel notify.Channel) notify.Notice {
	n := notify.Notice{
		UserID:        appt.PatientUserID,
		Channel:       channel,
		Title:         "Appointment reminder",
		Body:          "Upcoming appointment with " + appt.PractitionerName + " on " + appt.StartTime.Format("Mon 02 Jan 15:04"),
		AppointmentID: &appt.ID,
		PatientID:     &appt.PatientID,
	}

	if channel == notify.ChannelEmail {
		msg := email.BuildAppointmentReminderEmail(email.AppointmentEmailData{
			PatientName:      appt.PatientName,
			PractitionerName: appt.PractitionerName,
			StartTime:        appt.StartTime,
			DurationMinutes:  appt.DurationMinutes,
			AppName:          s.appName,
		})
		n.Mail = &msg
	}

	return n
}
