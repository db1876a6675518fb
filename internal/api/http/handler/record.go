package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/cabinetmed/cabinet_backend/internal/api/http/middleware"
	"github.com/cabinetmed/cabinet_backend/internal/service/record"
)

type RecordHandler struct {
	svc record.Service
}

func NewRecordHandler(svc record.Service) *RecordHandler {
	return &RecordHandler{svc: svc}
}

func mapRecordError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, record.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, record.ErrPatientNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /records
func (h *RecordHandler) Create(c fiber.Ctx) error {
	actorID, valid := middleware.ActorIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PatientID     string  `json:"patient_id"`
		AppointmentID *string `json:"appointment_id"`
		Title         string  `json:"title"`
		Body          *string `json:"body"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" {
		return badRequest(c, "title is required")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	req := record.CreateRequest{
		PatientID: patientID,
		AuthorID:  &actorID,
		Title:     body.Title,
		Body:      body.Body,
	}
	if body.AppointmentID != nil {
		id, err := uuid.Parse(*body.AppointmentID)
		if err != nil {
			return badRequest(c, "invalid appointment_id")
		}
		req.AppointmentID = &id
	}

	rec, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapRecordError(c, err)
	}
	return created(c, rec)
}

// PATCH /records/:id
func (h *RecordHandler) Update(c fiber.Ctx) error {
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid record id")
	}

	var body struct {
		Title *string `json:"title"`
		Body  *string `json:"body"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rec, err := h.svc.Update(c.Context(), recordID, record.UpdateRequest{
		Title: body.Title,
		Body:  body.Body,
	})
	if err != nil {
		return mapRecordError(c, err)
	}
	return ok(c, rec)
}

// GET /records/:id
func (h *RecordHandler) GetByID(c fiber.Ctx) error {
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid record id")
	}

	rec, err := h.svc.GetByID(c.Context(), recordID)
	if err != nil {
		return mapRecordError(c, err)
	}
	return ok(c, rec)
}

// GET /patients/:id/records
func (h *RecordHandler) ListByPatient(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	recs, err := h.svc.ListByPatient(c.Context(), patientID, q.Page, q.PerPage)
	if err != nil {
		return mapRecordError(c, err)
	}
	return ok(c, recs)
}

// DELETE /records/:id
func (h *RecordHandler) Delete(c fiber.Ctx) error {
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid record id")
	}

	if err := h.svc.Delete(c.Context(), recordID); err != nil {
		return mapRecordError(c, err)
	}
	return noContent(c)
}
