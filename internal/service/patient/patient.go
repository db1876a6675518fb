package patient

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/cabinetmed/cabinet_backend/internal/repo"
	entpatient "github.com/cabinetmed/cabinet_backend/internal/repo/patient"
	entuser "github.com/cabinetmed/cabinet_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	UserID         uuid.UUID
	FileNumber     *string
	DateOfBirth    *time.Time
	ReferralSource *string
	Notes          *string
}

type UpdateRequest struct {
	FileNumber     *string
	DateOfBirth    *time.Time
	ReferralSource *string
	Notes          *string
}

// Detail joins the administrative record with the identity row.
type Detail struct {
	Patient *repo.Patient `json:"patient"`
	User    *repo.User    `json:"user"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Patient, error)
	Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error)
	GetByID(ctx context.Context, patientID uuid.UUID) (*Detail, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.Patient, error)
	List(ctx context.Context, page, perPage int) ([]*repo.Patient, error)
	Delete(ctx context.Context, patientID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &patientService{db: db}
}

func (s *patientService) Create(ctx context.Context, req CreateRequest) (*repo.Patient, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(req.UserID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u.Role != entuser.RolePatient {
		return nil, ErrNotPatient
	}

	exists, err := s.db.Patient.Query().
		Where(entpatient.UserID(req.UserID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	c := s.db.Patient.Create().SetUserID(req.UserID)
	if req.FileNumber != nil {
		c = c.SetNillableFileNumber(req.FileNumber)
	}
	if req.DateOfBirth != nil {
		c = c.SetNillableDateOfBirth(req.DateOfBirth)
	}
	if req.ReferralSource != nil {
		c = c.SetNillableReferralSource(req.ReferralSource)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	p, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

func (s *patientService) Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error) {
	p, err := s.getRow(ctx, patientID)
	if err != nil {
		return nil, err
	}

	upd := s.db.Patient.UpdateOne(p)
	if req.FileNumber != nil {
		upd = upd.SetNillableFileNumber(req.FileNumber)
	}
	if req.DateOfBirth != nil {
		upd = upd.SetNillableDateOfBirth(req.DateOfBirth)
	}
	if req.ReferralSource != nil {
		upd = upd.SetNillableReferralSource(req.ReferralSource)
	}
	if req.Notes != nil {
		upd = upd.SetNillableNotes(req.Notes)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return updated, nil
}

func (s *patientService) GetByID(ctx context.Context, patientID uuid.UUID) (*Detail, error) {
	p, err := s.getRow(ctx, patientID)
	if err != nil {
		return nil, err
	}

	u, err := s.db.User.Query().
		Where(entuser.ID(p.UserID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get patient user: %w", err)
	}

	return &Detail{Patient: p, User: u}, nil
}

func (s *patientService) GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.UserID(userID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient by user: %w", err)
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context, page, perPage int) ([]*repo.Patient, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	patients, err := s.db.Patient.Query().
		Where(entpatient.DeletedAtIsNil()).
		Order(entpatient.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (s *patientService) Delete(ctx context.Context, patientID uuid.UUID) error {
	p, err := s.getRow(ctx, patientID)
	if err != nil {
		return err
	}

	if err := s.db.Patient.UpdateOne(p).
		SetDeletedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	return nil
}

func (s *patientService) getRow(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}
