package record

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/cabinetmed/cabinet_backend/internal/repo"
	entrec "github.com/cabinetmed/cabinet_backend/internal/repo/medicalrecord"
	entpatient "github.com/cabinetmed/cabinet_backend/internal/repo/patient"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	PatientID     uuid.UUID
	AppointmentID *uuid.UUID
	AuthorID      *uuid.UUID // nil for auto-opened records
	Title         string
	Body          *string
}

type UpdateRequest struct {
	Title *string
	Body  *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.MedicalRecord, error)
	Update(ctx context.Context, recordID uuid.UUID, req UpdateRequest) (*repo.MedicalRecord, error)
	GetByID(ctx context.Context, recordID uuid.UUID) (*repo.MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, page, perPage int) ([]*repo.MedicalRecord, error)
	Delete(ctx context.Context, recordID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type recordService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &recordService{db: db}
}

func (s *recordService) Create(ctx context.Context, req CreateRequest) (*repo.MedicalRecord, error) {
	exists, err := s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	c := s.db.MedicalRecord.Create().
		SetPatientID(req.PatientID).
		SetTitle(req.Title)

	if req.AppointmentID != nil {
		c = c.SetNillableAppointmentID(req.AppointmentID)
	}
	if req.AuthorID != nil {
		c = c.SetNillableAuthorID(req.AuthorID)
	}
	if req.Body != nil {
		c = c.SetNillableBody(req.Body)
	}

	rec, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create medical record: %w", err)
	}
	return rec, nil
}

func (s *recordService) Update(ctx context.Context, recordID uuid.UUID, req UpdateRequest) (*repo.MedicalRecord, error) {
	rec, err := s.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	upd := s.db.MedicalRecord.UpdateOne(rec)
	if req.Title != nil {
		upd = upd.SetTitle(*req.Title)
	}
	if req.Body != nil {
		upd = upd.SetNillableBody(req.Body)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update medical record: %w", err)
	}
	return updated, nil
}

func (s *recordService) GetByID(ctx context.Context, recordID uuid.UUID) (*repo.MedicalRecord, error) {
	rec, err := s.db.MedicalRecord.Query().
		Where(entrec.ID(recordID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get medical record: %w", err)
	}
	return rec, nil
}

func (s *recordService) ListByPatient(ctx context.Context, patientID uuid.UUID, page, perPage int) ([]*repo.MedicalRecord, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	recs, err := s.db.MedicalRecord.Query().
		Where(entrec.PatientID(patientID)).
		Order(entrec.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medical records: %w", err)
	}
	return recs, nil
}

func (s *recordService) Delete(ctx context.Context, recordID uuid.UUID) error {
	n, err := s.db.MedicalRecord.Delete().
		Where(entrec.ID(recordID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete medical record: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
