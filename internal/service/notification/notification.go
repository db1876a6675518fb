package notification

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/cabinetmed/cabinet_backend/internal/repo"
	entnotif "github.com/cabinetmed/cabinet_backend/internal/repo/notification"
	entpref "github.com/cabinetmed/cabinet_backend/internal/repo/reminderpref"
)

// DefaultDelayHours is the reminder lead time applied to users who never
// saved preferences.
const DefaultDelayHours = 24

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	UserID        uuid.UUID
	Channel       string // "email" | "in_app"
	Title         string
	Body          string
	AppointmentID *uuid.UUID
	PatientID     *uuid.UUID
}

// Prefs is the resolved reminder preference set for one user. It is what
// callers see whether or not a row exists in the database.
type Prefs struct {
	DelayHours    int     `json:"delay_hours"`
	EmailEnabled  bool    `json:"email_enabled"`
	InAppEnabled  bool    `json:"in_app_enabled"`
	OverrideEmail *string `json:"override_email,omitempty"`
}

// UpdatePrefsRequest applies only its non-nil fields. ClearOverrideEmail
// removes a previously set override address.
type UpdatePrefsRequest struct {
	DelayHours         *int
	EmailEnabled       *bool
	InAppEnabled       *bool
	OverrideEmail      *string
	ClearOverrideEmail bool
}

// DefaultPrefs returns the in-memory defaults for a user without a row.
func DefaultPrefs() Prefs {
	return Prefs{
		DelayHours:   DefaultDelayHours,
		EmailEnabled: true,
		InAppEnabled: true,
	}
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Notification, error)
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, perPage int) ([]*repo.Notification, error)
	MarkRead(ctx context.Context, notifID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	Delete(ctx context.Context, notifID, userID uuid.UUID) error

	ResolvePrefs(ctx context.Context, userID uuid.UUID) (Prefs, error)
	UpdatePrefs(ctx context.Context, userID uuid.UUID, req UpdatePrefsRequest) (Prefs, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type notificationService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &notificationService{db: db}
}

func (s *notificationService) Create(ctx context.Context, req CreateRequest) (*repo.Notification, error) {
	c := s.db.Notification.Create().
		SetUserID(req.UserID).
		SetChannel(entnotif.Channel(req.Channel)).
		SetTitle(req.Title).
		SetBody(req.Body)

	if req.AppointmentID != nil {
		c = c.SetNillableAppointmentID(req.AppointmentID)
	}
	if req.PatientID != nil {
		c = c.SetNillablePatientID(req.PatientID)
	}

	n, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, perPage int) ([]*repo.Notification, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	q := s.db.Notification.Query().
		Where(
			entnotif.UserID(userID),
			entnotif.ChannelEQ(entnotif.ChannelInApp),
		)
	if unreadOnly {
		q = q.Where(entnotif.IsRead(false))
	}

	notifs, err := q.Order(entnotif.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifs, nil
}

func (s *notificationService) MarkRead(ctx context.Context, notifID, userID uuid.UUID) error {
	n, err := s.db.Notification.Update().
		Where(
			entnotif.ID(notifID),
			entnotif.UserID(userID),
			entnotif.ChannelEQ(entnotif.ChannelInApp),
		).
		SetIsRead(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := s.db.Notification.Update().
		Where(
			entnotif.UserID(userID),
			entnotif.ChannelEQ(entnotif.ChannelInApp),
			entnotif.IsRead(false),
		).
		SetIsRead(true).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return n, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := s.db.Notification.Query().
		Where(
			entnotif.UserID(userID),
			entnotif.ChannelEQ(entnotif.ChannelInApp),
			entnotif.IsRead(false),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

func (s *notificationService) Delete(ctx context.Context, notifID, userID uuid.UUID) error {
	n, err := s.db.Notification.Delete().
		Where(
			entnotif.ID(notifID),
			entnotif.UserID(userID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ResolvePrefs returns the stored preferences, or defaults when the user
// never saved any. Defaults are not written back; the row appears only on
// the first explicit update.
func (s *notificationService) ResolvePrefs(ctx context.Context, userID uuid.UUID) (Prefs, error) {
	row, err := s.db.ReminderPref.Query().
		Where(entpref.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return DefaultPrefs(), nil
		}
		return Prefs{}, fmt.Errorf("get reminder prefs: %w", err)
	}
	return prefsFromRow(row), nil
}

func (s *notificationService) UpdatePrefs(ctx context.Context, userID uuid.UUID, req UpdatePrefsRequest) (Prefs, error) {
	if req.DelayHours != nil && *req.DelayHours <= 0 {
		return Prefs{}, ErrInvalidDelay
	}

	row, err := s.db.ReminderPref.Query().
		Where(entpref.UserID(userID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return Prefs{}, fmt.Errorf("get reminder prefs: %w", err)
	}

	if row == nil {
		// First update: materialize the row from defaults, then apply.
		c := s.db.ReminderPref.Create().SetUserID(userID)
		if req.DelayHours != nil {
			c = c.SetDelayHours(*req.DelayHours)
		}
		if req.EmailEnabled != nil {
			c = c.SetEmailEnabled(*req.EmailEnabled)
		}
		if req.InAppEnabled != nil {
			c = c.SetInAppEnabled(*req.InAppEnabled)
		}
		if req.OverrideEmail != nil && !req.ClearOverrideEmail {
			c = c.SetNillableOverrideEmail(req.OverrideEmail)
		}

		created, err := c.Save(ctx)
		if err != nil {
			return Prefs{}, fmt.Errorf("create reminder prefs: %w", err)
		}
		return prefsFromRow(created), nil
	}

	upd := s.db.ReminderPref.UpdateOne(row)
	if req.DelayHours != nil {
		upd = upd.SetDelayHours(*req.DelayHours)
	}
	if req.EmailEnabled != nil {
		upd = upd.SetEmailEnabled(*req.EmailEnabled)
	}
	if req.InAppEnabled != nil {
		upd = upd.SetInAppEnabled(*req.InAppEnabled)
	}
	if req.ClearOverrideEmail {
		upd = upd.ClearOverrideEmail()
	} else if req.OverrideEmail != nil {
		upd = upd.SetNillableOverrideEmail(req.OverrideEmail)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return Prefs{}, fmt.Errorf("update reminder prefs: %w", err)
	}
	return prefsFromRow(updated), nil
}

func prefsFromRow(row *repo.ReminderPref) Prefs {
	return Prefs{
		DelayHours:    row.DelayHours,
		EmailEnabled:  row.EmailEnabled,
		InAppEnabled:  row.InAppEnabled,
		OverrideEmail: row.OverrideEmail,
	}
}
