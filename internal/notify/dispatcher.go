package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cabinetmed/cabinet_backend/internal/repo"
	"github.com/cabinetmed/cabinet_backend/internal/service/notification"
	"github.com/cabinetmed/cabinet_backend/pkg/email"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelInApp Channel = "in_app"
)

// Notice is one notification to be delivered on one channel. For the
// email channel, Mail carries the composed message; the recipient address
// is resolved by the dispatcher so preference overrides apply in one
// place.
type Notice struct {
	UserID        uuid.UUID
	Channel       Channel
	Title         string
	Body          string
	AppointmentID *uuid.UUID
	PatientID     *uuid.UUID
	Mail          *email.Message
}

// MailSender sends a composed email. *email.Client satisfies it.
type MailSender interface {
	Send(ctx context.Context, m email.Message) error
}

// Store persists notification rows. notification.Service satisfies it.
type Store interface {
	Create(ctx context.Context, req notification.CreateRequest) (*repo.Notification, error)
}

// Directory resolves the delivery address for a user, honoring the
// reminder preference override.
type Directory interface {
	Address(ctx context.Context, userID uuid.UUID) (string, error)
}

// Dispatcher routes a Notice to its channel. Callers treat dispatch
// failures as non-fatal: the returned error is for logging only and never
// rolls back the operation that triggered the notice.
type Dispatcher struct {
	mail  MailSender
	store Store
	dir   Directory
	log   *slog.Logger
}

func NewDispatcher(mail MailSender, store Store, dir Directory, log *slog.Logger) *Dispatcher {
	return &Dispatcher{mail: mail, store: store, dir: dir, log: log}
}

func (d *Dispatcher) Dispatch(ctx context.Context, n Notice) error {
	switch n.Channel {
	case ChannelEmail:
		return d.dispatchEmail(ctx, n)
	case ChannelInApp:
		return d.dispatchInApp(ctx, n)
	default:
		return fmt.Errorf("unknown channel %q", n.Channel)
	}
}

func (d *Dispatcher) dispatchEmail(ctx context.Context, n Notice) error {
	if n.Mail == nil {
		return fmt.Errorf("email notice without message")
	}

	addr, err := d.dir.Address(ctx, n.UserID)
	if err != nil {
		return fmt.Errorf("resolve address: %w", err)
	}

	msg := *n.Mail
	msg.To = []string{addr}

	if err := d.mail.Send(ctx, msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	// Audit row. Losing it is tolerable; the mail went out.
	if _, err := d.store.Create(ctx, notification.CreateRequest{
		UserID:        n.UserID,
		Channel:       string(ChannelEmail),
		Title:         n.Title,
		Body:          n.Body,
		AppointmentID: n.AppointmentID,
		PatientID:     n.PatientID,
	}); err != nil {
		d.log.Warn("notify: email audit row failed", "user_id", n.UserID, "err", err)
	}

	return nil
}

func (d *Dispatcher) dispatchInApp(ctx context.Context, n Notice) error {
	if _, err := d.store.Create(ctx, notification.CreateRequest{
		UserID:        n.UserID,
		Channel:       string(ChannelInApp),
		Title:         n.Title,
		Body:          n.Body,
		AppointmentID: n.AppointmentID,
		PatientID:     n.PatientID,
	}); err != nil {
		return fmt.Errorf("store in-app notification: %w", err)
	}
	return nil
}
