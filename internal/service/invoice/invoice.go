package invoice

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/cabinetmed/cabinet_backend/internal/repo"
	entinv "github.com/cabinetmed/cabinet_backend/internal/repo/invoice"
	entseq "github.com/cabinetmed/cabinet_backend/internal/repo/invoicesequence"
	entpatient "github.com/cabinetmed/cabinet_backend/internal/repo/patient"
	"github.com/cabinetmed/cabinet_backend/internal/service/appointment"
	"github.com/cabinetmed/cabinet_backend/internal/service/notification"
)

// sequenceRowID is the fixed primary key of the single counter row.
const sequenceRowID = 1

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type IssueRequest struct {
	PatientID     uuid.UUID
	AppointmentID *uuid.UUID
	AmountCents   int64
}

type ListRequest struct {
	PatientID *uuid.UUID
	Status    *string
	Page      int
	PerPage   int
}

// Summary aggregates settled invoices over a period.
type Summary struct {
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
	SettledCount int       `json:"settled_count"`
	SettledCents int64     `json:"settled_cents"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Issue(ctx context.Context, actorID uuid.UUID, req IssueRequest) (*repo.Invoice, error)
	Settle(ctx context.Context, actorID, invoiceID uuid.UUID) (*repo.Invoice, error)
	Void(ctx context.Context, actorID, invoiceID uuid.UUID) error
	GetByID(ctx context.Context, invoiceID uuid.UUID) (*repo.Invoice, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Invoice, error)
	Summarize(ctx context.Context, from, to time.Time) (*Summary, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type invoiceService struct {
	db       *repo.Client
	apptSvc  appointment.Service
	notifSvc notification.Service
}

func New(db *repo.Client, apptSvc appointment.Service, notifSvc notification.Service) Service {
	return &invoiceService{db: db, apptSvc: apptSvc, notifSvc: notifSvc}
}

// Issue creates an invoice with the next sequence number. The counter row
// is locked and advanced inside the same transaction as the insert, so
// numbers are unique and monotonic under concurrent issuing.
func (s *invoiceService) Issue(ctx context.Context, actorID uuid.UUID, req IssueRequest) (inv *repo.Invoice, err error) {
	if req.AmountCents < 0 {
		return nil, ErrInvalidAmount
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

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	number, err := nextNumber(ctx, tx)
	if err != nil {
		return nil, err
	}

	c := tx.Invoice.Create().
		SetNumber(number).
		SetPatientID(req.PatientID).
		SetAmountCents(req.AmountCents)
	if req.AppointmentID != nil {
		c = c.SetNillableAppointmentID(req.AppointmentID)
	}

	inv, err = c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit invoice: %w", err)
	}
	return inv, nil
}

// nextNumber claims the next invoice number inside tx.
func nextNumber(ctx context.Context, tx *repo.Tx) (string, error) {
	seq, err := tx.InvoiceSequence.Query().
		Where(entseq.ID(sequenceRowID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if !repo.IsNotFound(err) {
			return "", fmt.Errorf("lock invoice sequence: %w", err)
		}
		// First invoice ever: seed the counter.
		seq, err = tx.InvoiceSequence.Create().
			SetID(sequenceRowID).
			SetNextValue(1).
			Save(ctx)
		if err != nil {
			return "", fmt.Errorf("seed invoice sequence: %w", err)
		}
	}

	n := seq.NextValue
	if err := tx.InvoiceSequence.UpdateOne(seq).
		SetNextValue(n + 1).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("advance invoice sequence: %w", err)
	}

	return fmt.Sprintf("FAC-%06d", n), nil
}

// Settle marks an invoice paid. Settling is the only path that completes
// the linked appointment.
func (s *invoiceService) Settle(ctx context.Context, actorID, invoiceID uuid.UUID) (*repo.Invoice, error) {
	inv, err := s.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	switch inv.Status {
	case entinv.StatusSettled:
		return nil, ErrAlreadySettled
	case entinv.StatusVoid:
		return nil, ErrVoided
	}

	updated, err := s.db.Invoice.UpdateOne(inv).
		SetStatus(entinv.StatusSettled).
		SetSettledAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("settle invoice: %w", err)
	}

	if inv.AppointmentID != nil {
		if err := s.apptSvc.Complete(ctx, actorID, *inv.AppointmentID); err != nil {
			// The payment stands even if the appointment was already
			// finalized some other way.
			if err != appointment.ErrAlreadyCompleted && err != appointment.ErrAlreadyCancelled {
				return nil, fmt.Errorf("complete appointment: %w", err)
			}
		}
	}

	s.notifyPayment(ctx, updated)

	return updated, nil
}

func (s *invoiceService) Void(ctx context.Context, actorID, invoiceID uuid.UUID) error {
	inv, err := s.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}

	switch inv.Status {
	case entinv.StatusSettled:
		return ErrAlreadySettled
	case entinv.StatusVoid:
		return nil
	}

	if err := s.db.Invoice.UpdateOne(inv).
		SetStatus(entinv.StatusVoid).
		Exec(ctx); err != nil {
		return fmt.Errorf("void invoice: %w", err)
	}
	return nil
}

func (s *invoiceService) GetByID(ctx context.Context, invoiceID uuid.UUID) (*repo.Invoice, error) {
	inv, err := s.db.Invoice.Query().
		Where(entinv.ID(invoiceID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

func (s *invoiceService) List(ctx context.Context, req ListRequest) ([]*repo.Invoice, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Invoice.Query()
	if req.PatientID != nil {
		q = q.Where(entinv.PatientID(*req.PatientID))
	}
	if req.Status != nil {
		q = q.Where(entinv.StatusEQ(entinv.Status(*req.Status)))
	}

	invoices, err := q.Order(entinv.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

func (s *invoiceService) Summarize(ctx context.Context, from, to time.Time) (*Summary, error) {
	rows, err := s.db.Invoice.Query().
		Where(
			entinv.StatusEQ(entinv.StatusSettled),
			entinv.SettledAtGTE(from),
			entinv.SettledAtLT(to),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarize invoices: %w", err)
	}

	sum := &Summary{From: from, To: to, SettledCount: len(rows)}
	for _, r := range rows {
		sum.SettledCents += r.AmountCents
	}
	return sum, nil
}

// notifyPayment drops an in-app notification for the patient's user.
// Best effort: a notification failure never fails a settlement.
func (s *invoiceService) notifyPayment(ctx context.Context, inv *repo.Invoice) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(inv.PatientID)).
		Only(ctx)
	if err != nil {
		return
	}

	_, _ = s.notifSvc.Create(ctx, notification.CreateRequest{
		UserID:    p.UserID,
		Channel:   "in_app",
		Title:     "Payment received",
		Body:      fmt.Sprintf("Invoice %s has been settled.", inv.Number),
		PatientID: &inv.PatientID,
	})
}
