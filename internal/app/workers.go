package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/cabinetmed/cabinet_backend/config"
	"github.com/cabinetmed/cabinet_backend/internal/notify"
	"github.com/cabinetmed/cabinet_backend/internal/reminder"
	"github.com/cabinetmed/cabinet_backend/internal/repo"
	entpatient "github.com/cabinetmed/cabinet_backend/internal/repo/patient"
	entuser "github.com/cabinetmed/cabinet_backend/internal/repo/user"
	"github.com/cabinetmed/cabinet_backend/internal/scheduling"
	"github.com/cabinetmed/cabinet_backend/internal/service/appointment"
	"github.com/cabinetmed/cabinet_backend/internal/service/notification"
	"github.com/cabinetmed/cabinet_backend/internal/service/record"
	"github.com/cabinetmed/cabinet_backend/pkg/email"
)

// WorkerModule registers the NATS event workers and the reminder ticker.
var WorkerModule = fx.Module("workers",
	fx.Provide(ProvideSweeper),
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	NC        *nats.Conn
	DB        *repo.Client
	Pool      *notify.Pool
	RecordSvc record.Service
	ApptSvc   appointment.Service
	Sweeper   *reminder.Sweeper
}

func ProvideSweeper(db *repo.Client, d *notify.Dispatcher, notifSvc notification.Service, clock scheduling.Clock, cfg *config.Config) *reminder.Sweeper {
	store := reminder.NewStore(db)
	return reminder.NewSweeper(
		store,
		notifSvc,
		store,
		d,
		clock,
		float64(cfg.Reminders.ToleranceHours),
		cfg.Email.AppName,
		slog.Default(),
	)
}

func RegisterWorkers(p WorkerParams) {
	stopTicker := make(chan struct{})

	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startAppointmentWorker(p)
			if p.Cfg.Reminders.Enabled {
				go runReminderTicker(p, stopTicker)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stopTicker)
			// NATS drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// appointment_worker
// ---------------------------------------------------------------------------

// startAppointmentWorker consumes booking lifecycle events and fans out
// the side effects: emails, in-app notifications and the auto-opened
// medical record. Every failure is logged and swallowed; the booking
// itself was already committed.
func startAppointmentWorker(p WorkerParams) {
	subscribe := func(subject string, handle func(ctx context.Context, apptID uuid.UUID)) {
		_, err := p.NC.Subscribe(subject, func(msg *nats.Msg) {
			parts := strings.Split(msg.Subject, ".")
			if len(parts) < 4 {
				return
			}
			apptID, err := uuid.Parse(parts[3])
			if err != nil {
				return
			}
			handle(context.Background(), apptID)
		})
		if err != nil {
			slog.Error("appointment_worker: subscribe failed", "subject", subject, "err", err)
		}
	}

	subscribe("cabinet.appointment.created.*", func(ctx context.Context, apptID uuid.UUID) {
		handleAppointmentCreated(ctx, p, apptID)
	})
	subscribe("cabinet.appointment.rescheduled.*", func(ctx context.Context, apptID uuid.UUID) {
		handleAppointmentRescheduled(ctx, p, apptID)
	})
	subscribe("cabinet.appointment.cancelled.*", func(ctx context.Context, apptID uuid.UUID) {
		handleAppointmentCancelled(ctx, p, apptID)
	})
}

// apptContext is everything the side-effect handlers need about one event.
type apptContext struct {
	Appt             *repo.Appointment
	PatientUserID    uuid.UUID
	PatientName      string
	PractitionerName string
}

func loadApptContext(ctx context.Context, p WorkerParams, apptID uuid.UUID) (*apptContext, bool) {
	appt, err := p.ApptSvc.GetByID(ctx, apptID)
	if err != nil {
		slog.Warn("appointment_worker: appointment not found", "id", apptID, "err", err)
		return nil, false
	}

	pat, err := p.DB.Patient.Query().
		Where(entpatient.ID(appt.PatientID)).
		Only(ctx)
	if err != nil {
		slog.Warn("appointment_worker: patient not found", "id", appt.PatientID, "err", err)
		return nil, false
	}

	patientUser, err := p.DB.User.Query().
		Where(entuser.ID(pat.UserID)).
		Only(ctx)
	if err != nil {
		slog.Warn("appointment_worker: patient user not found", "id", pat.UserID, "err", err)
		return nil, false
	}

	practitioner, err := p.DB.User.Query().
		Where(entuser.ID(appt.PractitionerID)).
		Only(ctx)
	if err != nil {
		slog.Warn("appointment_worker: practitioner not found", "id", appt.PractitionerID, "err", err)
		return nil, false
	}

	return &apptContext{
		Appt:             appt,
		PatientUserID:    patientUser.ID,
		PatientName:      patientUser.FirstName + " " + patientUser.LastName,
		PractitionerName: practitioner.FirstName + " " + practitioner.LastName,
	}, true
}

func handleAppointmentCreated(ctx context.Context, p WorkerParams, apptID uuid.UUID) {
	ac, ok := loadApptContext(ctx, p, apptID)
	if !ok {
		return
	}
	appt := ac.Appt
	when := appt.StartTime.Format("Mon 02 Jan 15:04")

	// Confirmation email to the patient.
	msg := email.BuildAppointmentConfirmationEmail(email.AppointmentEmailData{
		PatientName:      ac.PatientName,
		PractitionerName: ac.PractitionerName,
		StartTime:        appt.StartTime,
		DurationMinutes:  appt.DurationMinutes,
		AppName:          p.Cfg.Email.AppName,
	})
	p.Pool.Submit(notify.Notice{
		UserID:        ac.PatientUserID,
		Channel:       notify.ChannelEmail,
		Title:         "Appointment confirmed",
		Body:          "Appointment with " + ac.PractitionerName + " on " + when,
		AppointmentID: &appt.ID,
		PatientID:     &appt.PatientID,
		Mail:          &msg,
	})

	// In-app notifications for both sides.
	p.Pool.Submit(notify.Notice{
		UserID:        ac.PatientUserID,
		Channel:       notify.ChannelInApp,
		Title:         "Appointment confirmed",
		Body:          "Appointment with " + ac.PractitionerName + " on " + when,
		AppointmentID: &appt.ID,
		PatientID:     &appt.PatientID,
	})
	p.Pool.Submit(notify.Notice{
		UserID:        appt.PractitionerID,
		Channel:       notify.ChannelInApp,
		Title:         "New appointment",
		Body:          ac.PatientName + " booked " + when,
		AppointmentID: &appt.ID,
		PatientID:     &appt.PatientID,
	})

	// Auto-open the consultation record.
	if _, err := p.RecordSvc.Create(ctx, record.CreateRequest{
		PatientID:     appt.PatientID,
		AppointmentID: &appt.ID,
		Title:         "Consultation " + appt.StartTime.Format("2006-01-02"),
	}); err != nil {
		slog.Warn("appointment_worker: auto record failed", "appointment_id", appt.ID, "err", err)
	}
}

func handleAppointmentRescheduled(ctx context.Context, p WorkerParams, apptID uuid.UUID) {
	ac, ok := loadApptContext(ctx, p, apptID)
	if !ok {
		return
	}
	appt := ac.Appt
	when := appt.StartTime.Format("Mon 02 Jan 15:04")

	p.Pool.Submit(notify.Notice{
		UserID:        ac.PatientUserID,
		Channel:       notify.ChannelInApp,
		Title:         "Appointment moved",
		Body:          "New time with " + ac.PractitionerName + ": " + when,
		AppointmentID: &appt.ID,
		PatientID:     &appt.PatientID,
	})
	p.Pool.Submit(notify.Notice{
		UserID:        appt.PractitionerID,
		Channel:       notify.ChannelInApp,
		Title:         "Appointment moved",
		Body:          ac.PatientName + " now at " + when,
		AppointmentID: &appt.ID,
		PatientID:     &appt.PatientID,
	})
}

func handleAppointmentCancelled(ctx context.Context, p WorkerParams, apptID uuid.UUID) {
	ac, ok := loadApptContext(ctx, p, apptID)
	if !ok {
		return
	}
	appt := ac.Appt

	msg := email.BuildAppointmentCancellationEmail(email.AppointmentEmailData{
		PatientName:      ac.PatientName,
		PractitionerName: ac.PractitionerName,
		StartTime:        appt.StartTime,
		DurationMinutes:  appt.DurationMinutes,
		AppName:          p.Cfg.Email.AppName,
	})
	p.Pool.Submit(notify.Notice{
		UserID:        ac.PatientUserID,
		Channel:       notify.ChannelEmail,
		Title:         "Appointment cancelled",
		Body:          "Appointment on " + appt.StartTime.Format("Mon 02 Jan 15:04") + " was cancelled",
		AppointmentID: &appt.ID,
		PatientID:     &appt.PatientID,
		Mail:          &msg,
	})
	p.Pool.Submit(notify.Notice{
		UserID:        appt.PractitionerID,
		Channel:       notify.ChannelInApp,
		Title:         "Appointment cancelled",
		Body:          ac.PatientName + " cancelled " + appt.StartTime.Format("Mon 02 Jan 15:04"),
		AppointmentID: &appt.ID,
		PatientID:     &appt.PatientID,
	})
}

// ---------------------------------------------------------------------------
// reminder_ticker
// ---------------------------------------------------------------------------

func runReminderTicker(p WorkerParams, stop <-chan struct{}) {
	interval := time.Duration(p.Cfg.Reminders.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	runTimeout := time.Duration(p.Cfg.Reminders.RunTimeoutSeconds) * time.Second
	if runTimeout <= 0 {
		runTimeout = 5 * time.Minute
	}

	slog.Info("reminder_ticker: started", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
			if _, err := p.Sweeper.Run(ctx); err != nil {
				slog.Error("reminder_ticker: sweep failed", "err", err)
			}
			cancel()
		case <-stop:
			slog.Info("reminder_ticker: stopped")
			return
		}
	}
}
