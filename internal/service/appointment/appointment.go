package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/cabinetmed/cabinet_backend/internal/repo"
	entappt "github.com/cabinetmed/cabinet_backend/internal/repo/appointment"
	entpatient "github.com/cabinetmed/cabinet_backend/internal/repo/patient"
	entuser "github.com/cabinetmed/cabinet_backend/internal/repo/user"
	"github.com/cabinetmed/cabinet_backend/internal/scheduling"
)

// Longest window an appointment can span. Used to bound the candidate
// query for overlap checks.
const maxApptSpan = 24 * time.Hour

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type BookRequest struct {
	PractitionerID uuid.UUID
	PatientID      uuid.UUID
	CreatedBy      *uuid.UUID // staff user booking on the patient's behalf
	StartTime      time.Time
	Reason         *string
}

type ListRequest struct {
	PractitionerID *uuid.UUID
	PatientID      *uuid.UUID
	Status         *string
	From           *time.Time
	To             *time.Time
	Page           int
	PerPage        int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Book(ctx context.Context, req BookRequest) (*repo.Appointment, error)
	Reschedule(ctx context.Context, actorID, apptID uuid.UUID, newStart time.Time) (*repo.Appointment, error)
	Cancel(ctx context.Context, actorID, apptID uuid.UUID, reason *string) error
	Complete(ctx context.Context, actorID, apptID uuid.UUID) error
	GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error)
	Upcoming(ctx context.Context, practitionerID uuid.UUID, limit int) ([]*repo.Appointment, error)
	Slots(ctx context.Context, practitionerID uuid.UUID, day time.Time) ([]scheduling.Slot, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db      *repo.Client
	nc      *nats.Conn
	clock   scheduling.Clock
	workDay scheduling.WorkDay
	locks   *practitionerLocks
}

func New(db *repo.Client, nc *nats.Conn, clock scheduling.Clock, workDay scheduling.WorkDay) Service {
	return &appointmentService{
		db:      db,
		nc:      nc,
		clock:   clock,
		workDay: workDay,
		locks:   newPractitionerLocks(),
	}
}

func (s *appointmentService) Book(ctx context.Context, req BookRequest) (*repo.Appointment, error) {
	now := s.clock.Now()
	if !req.StartTime.After(now) {
		return nil, ErrPastStart
	}

	if err := s.checkPractitioner(ctx, req.PractitionerID); err != nil {
		return nil, err
	}
	exists, err := s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	duration := s.workDay.SlotDuration
	iv := scheduling.Interval{Start: req.StartTime, End: req.StartTime.Add(duration)}

	// Overlap invariant is re-checked under the practitioner lock so two
	// concurrent bookings for the same practitioner cannot both pass.
	mu := s.locks.lockFor(req.PractitionerID)
	mu.Lock()
	defer mu.Unlock()

	free, err := s.isFree(ctx, req.PractitionerID, iv, nil)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrOverlap
	}

	c := s.db.Appointment.Create().
		SetPractitionerID(req.PractitionerID).
		SetPatientID(req.PatientID).
		SetStartTime(req.StartTime).
		SetDurationMinutes(int(duration.Minutes()))

	if req.CreatedBy != nil {
		c = c.SetNillableCreatedBy(req.CreatedBy)
	}
	if req.Reason != nil {
		c = c.SetNillableReason(req.Reason)
	}

	appt, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.publish("cabinet.appointment.created", appt.ID)

	return appt, nil
}

func (s *appointmentService) Reschedule(ctx context.Context, actorID, apptID uuid.UUID, newStart time.Time) (*repo.Appointment, error) {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return nil, err
	}

	if err := guardReschedule(appt.Status); err != nil {
		return nil, err
	}

	if !newStart.After(s.clock.Now()) {
		return nil, ErrPastStart
	}

	duration := time.Duration(appt.DurationMinutes) * time.Minute
	iv := scheduling.Interval{Start: newStart, End: newStart.Add(duration)}

	mu := s.locks.lockFor(appt.PractitionerID)
	mu.Lock()
	defer mu.Unlock()

	// The appointment being moved must not block its own new time.
	free, err := s.isFree(ctx, appt.PractitionerID, iv, &appt.ID)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrOverlap
	}

	updated, err := s.db.Appointment.UpdateOne(appt).
		SetStartTime(newStart).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reschedule appointment: %w", err)
	}

	s.publish("cabinet.appointment.rescheduled", updated.ID)

	return updated, nil
}

func (s *appointmentService) Cancel(ctx context.Context, actorID, apptID uuid.UUID, reason *string) error {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return err
	}

	// Cancelling twice is a no-op, not an error.
	skip, err := guardCancel(appt.Status)
	if err != nil {
		return err
	}
	if skip {
		return nil
	}

	upd := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCancelled).
		SetCancelledAt(s.clock.Now())
	if reason != nil {
		upd = upd.SetNillableReason(reason)
	}

	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}

	s.publish("cabinet.appointment.cancelled", appt.ID)

	return nil
}

func (s *appointmentService) Complete(ctx context.Context, actorID, apptID uuid.UUID) error {
	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return err
	}

	if err := guardComplete(appt.Status); err != nil {
		return err
	}

	if err := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCompleted).
		SetCompletedAt(s.clock.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("complete appointment: %w", err)
	}
	return nil
}

func (s *appointmentService) GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query()

	if req.PractitionerID != nil {
		q = q.Where(entappt.PractitionerID(*req.PractitionerID))
	}
	if req.PatientID != nil {
		q = q.Where(entappt.PatientID(*req.PatientID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entappt.StartTimeGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.StartTimeLT(*req.To))
	}

	appts, err := q.Order(entappt.ByStartTime(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *appointmentService) Upcoming(ctx context.Context, practitionerID uuid.UUID, limit int) ([]*repo.Appointment, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	appts, err := s.db.Appointment.Query().
		Where(
			entappt.PractitionerID(practitionerID),
			entappt.StatusEQ(entappt.StatusPlanned),
			entappt.StartTimeGTE(s.clock.Now()),
		).
		Order(entappt.ByStartTime()).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list upcoming appointments: %w", err)
	}
	return appts, nil
}

func (s *appointmentService) Slots(ctx context.Context, practitionerID uuid.UUID, day time.Time) ([]scheduling.Slot, error) {
	if err := s.checkPractitioner(ctx, practitionerID); err != nil {
		return nil, err
	}

	window := s.workDay.Window(day)
	busy, err := s.busyIntervals(ctx, practitionerID, window, nil)
	if err != nil {
		return nil, err
	}

	return s.workDay.Slots(day, busy, s.clock.Now()), nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (s *appointmentService) checkPractitioner(ctx context.Context, id uuid.UUID) error {
	exists, err := s.db.User.Query().
		Where(
			entuser.ID(id),
			entuser.RoleEQ(entuser.RolePractitioner),
			entuser.DeletedAtIsNil(),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check practitioner: %w", err)
	}
	if !exists {
		return ErrPractitionerNotFound
	}
	return nil
}

// busyIntervals returns the non-cancelled appointment intervals of one
// practitioner that intersect the window. exclude skips one appointment
// (reschedule checking against itself).
func (s *appointmentService) busyIntervals(ctx context.Context, practitionerID uuid.UUID, window scheduling.Interval, exclude *uuid.UUID) ([]scheduling.Interval, error) {
	q := s.db.Appointment.Query().
		Where(
			entappt.PractitionerID(practitionerID),
			entappt.StatusNEQ(entappt.StatusCancelled),
			entappt.StartTimeGT(window.Start.Add(-maxApptSpan)),
			entappt.StartTimeLT(window.End),
		)
	if exclude != nil {
		q = q.Where(entappt.IDNEQ(*exclude))
	}

	appts, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load busy intervals: %w", err)
	}

	out := make([]scheduling.Interval, 0, len(appts))
	for _, a := range appts {
		iv := scheduling.Interval{
			Start: a.StartTime,
			End:   a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute),
		}
		if iv.Overlaps(window) {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (s *appointmentService) isFree(ctx context.Context, practitionerID uuid.UUID, iv scheduling.Interval, exclude *uuid.UUID) (bool, error) {
	busy, err := s.busyIntervals(ctx, practitionerID, iv, exclude)
	if err != nil {
		return false, err
	}
	return len(busy) == 0, nil
}

func (s *appointmentService) publish(subject string, id uuid.UUID) {
	if s.nc == nil {
		return
	}
	_ = s.nc.Publish(fmt.Sprintf("%s.%s", subject, id.String()), []byte(id.String()))
}
