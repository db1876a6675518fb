package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/cabinetmed/cabinet_backend/internal/api/http/middleware"
	"github.com/cabinetmed/cabinet_backend/internal/service/appointment"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrPractitionerNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrOverlap):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrPastStart):
		return unprocessable(c, err.Error())
	case errors.Is(err, appointment.ErrNotPlanned):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrAlreadyCompleted):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrAlreadyCancelled):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	var q struct {
		PractitionerID string `query:"practitioner_id"`
		PatientID      string `query:"patient_id"`
		Status         string `query:"status"`
		From           string `query:"from"`
		To             string `query:"to"`
		Page           int    `query:"page"`
		PerPage        int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.PractitionerID != "" {
		id, err := uuid.Parse(q.PractitionerID)
		if err != nil {
			return badRequest(c, "invalid practitioner_id")
		}
		req.PractitionerID = &id
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			req.To = &t
		}
	}

	appts, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appts)
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// GET /appointments/slots?practitioner_id=...&date=2026-03-02
func (h *AppointmentHandler) Slots(c fiber.Ctx) error {
	var q struct {
		PractitionerID string `query:"practitioner_id"`
		Date           string `query:"date"`
	}
	_ = c.Bind().Query(&q)

	practitionerID, err := uuid.Parse(q.PractitionerID)
	if err != nil {
		return badRequest(c, "invalid practitioner_id")
	}

	day, err := time.Parse("2006-01-02", q.Date)
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}

	slots, err := h.svc.Slots(c.Context(), practitionerID, day)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, slots)
}

// GET /appointments/upcoming?practitioner_id=...&limit=20
func (h *AppointmentHandler) Upcoming(c fiber.Ctx) error {
	var q struct {
		PractitionerID string `query:"practitioner_id"`
		Limit          int    `query:"limit"`
	}
	_ = c.Bind().Query(&q)

	practitionerID, err := uuid.Parse(q.PractitionerID)
	if err != nil {
		return badRequest(c, "invalid practitioner_id")
	}

	appts, err := h.svc.Upcoming(c.Context(), practitionerID, q.Limit)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appts)
}

// POST /appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	actorID, valid := middleware.ActorIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PractitionerID string  `json:"practitioner_id"`
		PatientID      string  `json:"patient_id"`
		StartTime      string  `json:"start_time"`
		Reason         *string `json:"reason"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	practitionerID, err := uuid.Parse(body.PractitionerID)
	if err != nil {
		return badRequest(c, "invalid practitioner_id")
	}
	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	startTime, err := time.Parse(time.RFC3339, body.StartTime)
	if err != nil {
		return badRequest(c, "invalid start_time, expected RFC3339")
	}

	appt, err := h.svc.Book(c.Context(), appointment.BookRequest{
		PractitionerID: practitionerID,
		PatientID:      patientID,
		CreatedBy:      &actorID,
		StartTime:      startTime,
		Reason:         body.Reason,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// PATCH /appointments/:id/reschedule
func (h *AppointmentHandler) Reschedule(c fiber.Ctx) error {
	actorID, valid := middleware.ActorIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		StartTime string `json:"start_time"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	newStart, err := time.Parse(time.RFC3339, body.StartTime)
	if err != nil {
		return badRequest(c, "invalid start_time, expected RFC3339")
	}

	appt, err := h.svc.Reschedule(c.Context(), actorID, apptID, newStart)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// PATCH /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	actorID, valid := middleware.ActorIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	_ = c.Bind().Body(&body)

	if err := h.svc.Cancel(c.Context(), actorID, apptID, body.Reason); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}

// PATCH /appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	actorID, valid := middleware.ActorIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Complete(c.Context(), actorID, apptID); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}
