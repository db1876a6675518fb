package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/cabinetmed/cabinet_backend/internal/service/patient"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrNotPatient):
		return unprocessable(c, err.Error())
	case errors.Is(err, patient.ErrAlreadyExists):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var body struct {
		UserID         string  `json:"user_id"`
		FileNumber     *string `json:"file_number"`
		DateOfBirth    *string `json:"date_of_birth"`
		ReferralSource *string `json:"referral_source"`
		Notes          *string `json:"notes"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		return badRequest(c, "invalid user_id")
	}

	req := patient.CreateRequest{
		UserID:         userID,
		FileNumber:     body.FileNumber,
		ReferralSource: body.ReferralSource,
		Notes:          body.Notes,
	}
	if body.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *body.DateOfBirth)
		if err != nil {
			return badRequest(c, "invalid date_of_birth, expected YYYY-MM-DD")
		}
		req.DateOfBirth = &dob
	}

	p, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, p)
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		FileNumber     *string `json:"file_number"`
		DateOfBirth    *string `json:"date_of_birth"`
		ReferralSource *string `json:"referral_source"`
		Notes          *string `json:"notes"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := patient.UpdateRequest{
		FileNumber:     body.FileNumber,
		ReferralSource: body.ReferralSource,
		Notes:          body.Notes,
	}
	if body.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *body.DateOfBirth)
		if err != nil {
			return badRequest(c, "invalid date_of_birth, expected YYYY-MM-DD")
		}
		req.DateOfBirth = &dob
	}

	p, err := h.svc.Update(c.Context(), patientID, req)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// GET /patients/:id
func (h *PatientHandler) GetByID(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	detail, err := h.svc.GetByID(c.Context(), patientID)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, detail)
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	patients, err := h.svc.List(c.Context(), q.Page, q.PerPage)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, patients)
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Delete(c.Context(), patientID); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}
