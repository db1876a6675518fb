package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/cabinetmed/cabinet_backend/internal/repo"
	entuser "github.com/cabinetmed/cabinet_backend/internal/repo/user"
)

// defaultRegion is used to parse national-format phone numbers.
const defaultRegion = "FR"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	Role      string // "patient" | "practitioner" | "assistant"

	// Practitioner bundle
	Specialty   *string
	Description *string

	// Assistant bundle
	SupervisorID *uuid.UUID
}

type UpdateRequest struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	Specialty   *string
	Description *string
	IsActive    *bool
}

type ListRequest struct {
	Role    *string
	Search  *string
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.User, error)
	Update(ctx context.Context, userID uuid.UUID, req UpdateRequest) (*repo.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*repo.User, error)
	List(ctx context.Context, req ListRequest) ([]*repo.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &userService{db: db}
}

func (s *userService) Create(ctx context.Context, req CreateRequest) (*repo.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	role := entuser.Role(req.Role)
	switch role {
	case entuser.RolePatient, entuser.RolePractitioner, entuser.RoleAssistant:
	default:
		return nil, ErrInvalidRole
	}

	taken, err := s.db.User.Query().
		Where(entuser.Email(email), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	c := s.db.User.Create().
		SetFirstName(strings.TrimSpace(req.FirstName)).
		SetLastName(strings.TrimSpace(req.LastName)).
		SetEmail(email).
		SetRole(role)

	if req.Phone != nil {
		normalized, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		c = c.SetPhone(normalized)
	}

	if role == entuser.RolePractitioner {
		if req.Specialty != nil {
			c = c.SetNillableSpecialty(req.Specialty)
		}
		if req.Description != nil {
			c = c.SetNillableDescription(req.Description)
		}
	}
	if role == entuser.RoleAssistant && req.SupervisorID != nil {
		c = c.SetNillableSupervisorID(req.SupervisorID)
	}

	u, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, userID uuid.UUID, req UpdateRequest) (*repo.User, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u)

	if req.FirstName != nil {
		upd = upd.SetFirstName(strings.TrimSpace(*req.FirstName))
	}
	if req.LastName != nil {
		upd = upd.SetLastName(strings.TrimSpace(*req.LastName))
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !strings.Contains(email, "@") {
			return nil, ErrInvalidEmail
		}
		taken, err := s.db.User.Query().
			Where(entuser.Email(email), entuser.IDNEQ(userID), entuser.DeletedAtIsNil()).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			return nil, ErrEmailTaken
		}
		upd = upd.SetEmail(email)
	}
	if req.Phone != nil {
		normalized, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		upd = upd.SetPhone(normalized)
	}
	if req.Specialty != nil {
		upd = upd.SetNillableSpecialty(req.Specialty)
	}
	if req.Description != nil {
		upd = upd.SetNillableDescription(req.Description)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, req ListRequest) ([]*repo.User, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.User.Query().Where(entuser.DeletedAtIsNil())

	if req.Role != nil {
		q = q.Where(entuser.RoleEQ(entuser.Role(*req.Role)))
	}
	if req.Search != nil && strings.TrimSpace(*req.Search) != "" {
		term := strings.TrimSpace(*req.Search)
		q = q.Where(entuser.Or(
			entuser.FirstNameContainsFold(term),
			entuser.LastNameContainsFold(term),
			entuser.EmailContainsFold(term),
		))
	}

	users, err := q.Order(entuser.ByLastName(), entuser.ByFirstName()).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.db.User.UpdateOne(u).
		SetDeletedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// normalizePhone validates a phone number and returns its E.164 form.
func normalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), defaultRegion)
	if err != nil {
		return "", ErrInvalidPhone
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
