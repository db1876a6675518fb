package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cabinetmed/cabinet_backend/internal/repo"
	entappt "github.com/cabinetmed/cabinet_backend/internal/repo/appointment"
	entpatient "github.com/cabinetmed/cabinet_backend/internal/repo/patient"
	entrl "github.com/cabinetmed/cabinet_backend/internal/repo/reminderlog"
	entuser "github.com/cabinetmed/cabinet_backend/internal/repo/user"
)

// entSource implements Source and SentLog over the database.
type entSource struct {
	db *repo.Client
}

func NewStore(db *repo.Client) *entSource {
	return &entSource{db: db}
}

func (s *entSource) Upcoming(ctx context.Context, from time.Time) ([]Appointment, error) {
	rows, err := s.db.Appointment.Query().
		Where(
			entappt.StatusNEQ(entappt.StatusCancelled),
			entappt.StartTimeGTE(from),
		).
		Order(entappt.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load upcoming appointments: %w", err)
	}

	out := make([]Appointment, 0, len(rows))
	for _, row := range rows {
		appt, err := s.expand(ctx, row)
		if err != nil {
			// Orphaned references should not kill a sweep; skip the row.
			continue
		}
		out = append(out, appt)
	}
	return out, nil
}

func (s *entSource) expand(ctx context.Context, row *repo.Appointment) (Appointment, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(row.PatientID)).
		Only(ctx)
	if err != nil {
		return Appointment{}, fmt.Errorf("get patient: %w", err)
	}

	pu, err := s.db.User.Query().
		Where(entuser.ID(p.UserID)).
		Only(ctx)
	if err != nil {
		return Appointment{}, fmt.Errorf("get patient user: %w", err)
	}

	pr, err := s.db.User.Query().
		Where(entuser.ID(row.PractitionerID)).
		Only(ctx)
	if err != nil {
		return Appointment{}, fmt.Errorf("get practitioner: %w", err)
	}

	return Appointment{
		ID:               row.ID,
		PatientID:        p.ID,
		PatientUserID:    pu.ID,
		PatientName:      pu.FirstName + " " + pu.LastName,
		PractitionerName: pr.FirstName + " " + pr.LastName,
		StartTime:        row.StartTime,
		DurationMinutes:  row.DurationMinutes,
	}, nil
}

func (s *entSource) IsCancelled(ctx context.Context, apptID uuid.UUID) (bool, error) {
	cancelled, err := s.db.Appointment.Query().
		Where(
			entappt.ID(apptID),
			entappt.StatusEQ(entappt.StatusCancelled),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check cancellation: %w", err)
	}
	return cancelled, nil
}

func (s *entSource) AlreadySent(ctx context.Context, apptID uuid.UUID, channel string) (bool, error) {
	sent, err := s.db.ReminderLog.Query().
		Where(
			entrl.AppointmentID(apptID),
			entrl.ChannelEQ(entrl.Channel(channel)),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check reminder log: %w", err)
	}
	return sent, nil
}

func (s *entSource) Record(ctx context.Context, apptID uuid.UUID, channel string, sentAt time.Time) error {
	err := s.db.ReminderLog.Create().
		SetAppointmentID(apptID).
		SetChannel(entrl.Channel(channel)).
		SetSentAt(sentAt).
		Exec(ctx)
	if err != nil {
		// Two sweeps racing on the same pair: the unique index makes the
		// second insert fail, which is the desired outcome.
		if repo.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("record reminder: %w", err)
	}
	return nil
}
