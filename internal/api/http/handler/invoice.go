package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/cabinetmed/cabinet_backend/internal/api/http/middleware"
	"github.com/cabinetmed/cabinet_backend/internal/service/invoice"
)

type InvoiceHandler struct {
	svc invoice.Service
}

func NewInvoiceHandler(svc invoice.Service) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

func mapInvoiceError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, invoice.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, invoice.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, invoice.ErrInvalidAmount):
		return unprocessable(c, err.Error())
	case errors.Is(err, invoice.ErrAlreadySettled),
		errors.Is(err, invoice.ErrVoided),
		errors.Is(err, invoice.ErrNotIssued):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /invoices
func (h *InvoiceHandler) Issue(c fiber.Ctx) error {
	actorID, valid := middleware.ActorIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PatientID     string  `json:"patient_id"`
		AppointmentID *string `json:"appointment_id"`
		AmountCents   int64   `json:"amount_cents"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	req := invoice.IssueRequest{
		PatientID:   patientID,
		AmountCents: body.AmountCents,
	}
	if body.AppointmentID != nil {
		id, err := uuid.Parse(*body.AppointmentID)
		if err != nil {
			return badRequest(c, "invalid appointment_id")
		}
		req.AppointmentID = &id
	}

	inv, err := h.svc.Issue(c.Context(), actorID, req)
	if err != nil {
		return mapInvoiceError(c, err)
	}
	return created(c, inv)
}

// PATCH /invoices/:id/settle
func (h *InvoiceHandler) Settle(c fiber.Ctx) error {
	actorID, valid := middleware.ActorIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	inv, err := h.svc.Settle(c.Context(), actorID, invoiceID)
	if err != nil {
		return mapInvoiceError(c, err)
	}
	return ok(c, inv)
}

// PATCH /invoices/:id/void
func (h *InvoiceHandler) Void(c fiber.Ctx) error {
	actorID, valid := middleware.ActorIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	if err := h.svc.Void(c.Context(), actorID, invoiceID); err != nil {
		return mapInvoiceError(c, err)
	}
	return noContent(c)
}

// GET /invoices/:id
func (h *InvoiceHandler) GetByID(c fiber.Ctx) error {
	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invoice id")
	}

	inv, err := h.svc.GetByID(c.Context(), invoiceID)
	if err != nil {
		return mapInvoiceError(c, err)
	}
	return ok(c, inv)
}

// GET /invoices
func (h *InvoiceHandler) List(c fiber.Ctx) error {
	var q struct {
		PatientID string `query:"patient_id"`
		Status    string `query:"status"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := invoice.ListRequest{Page: q.Page, PerPage: q.PerPage}
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

	invoices, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapInvoiceError(c, err)
	}
	return ok(c, invoices)
}

// GET /invoices/summary?from=...&to=...
func (h *InvoiceHandler) Summary(c fiber.Ctx) error {
	var q struct {
		From string `query:"from"`
		To   string `query:"to"`
	}
	_ = c.Bind().Query(&q)

	from, err := time.Parse("2006-01-02", q.From)
	if err != nil {
		return badRequest(c, "invalid from, expected YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", q.To)
	if err != nil {
		return badRequest(c, "invalid to, expected YYYY-MM-DD")
	}

	sum, err := h.svc.Summarize(c.Context(), from, to)
	if err != nil {
		return mapInvoiceError(c, err)
	}
	return ok(c, sum)
}
