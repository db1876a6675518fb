package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cabinetmed/cabinet_backend/internal/repo"
	"github.com/cabinetmed/cabinet_backend/internal/service/notification"
	"github.com/cabinetmed/cabinet_backend/pkg/email"
)

type fakeMail struct {
	mu   sync.Mutex
	sent []email.Message
	err  error
}

func (f *fakeMail) Send(_ context.Context, m email.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

type fakeStore struct {
	mu      sync.Mutex
	created []notification.CreateRequest
	err     error
}

func (f *fakeStore) Create(_ context.Context, req notification.CreateRequest) (*repo.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, req)
	return &repo.Notification{}, nil
}

type fakeDirectory struct {
	addr string
	err  error
}

func (f *fakeDirectory) Address(context.Context, uuid.UUID) (string, error) {
	return f.addr, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestDispatchEmail(t *testing.T) {
	mail := &fakeMail{}
	store := &fakeStore{}
	dir := &fakeDirectory{addr: "patient@example.com"}
	d := NewDispatcher(mail, store, dir, testLogger())

	userID := uuid.New()
	err := d.Dispatch(context.Background(), Notice{
		UserID:  userID,
		Channel: ChannelEmail,
		Title:   "Appointment reminder",
		Body:    "See you tomorrow",
		Mail:    &email.Message{Subject: "Reminder", HTMLBody: "<p>hi</p>"},
	})
	require.NoError(t, err)

	require.Len(t, mail.sent, 1)
	require.Equal(t, []string{"patient@example.com"}, mail.sent[0].To)

	// Audit row written with the email channel.
	require.Len(t, store.created, 1)
	require.Equal(t, "email", store.created[0].Channel)
	require.Equal(t, userID, store.created[0].UserID)
}

func TestDispatchEmailUsesDirectoryOverride(t *testing.T) {
	mail := &fakeMail{}
	dir := &fakeDirectory{addr: "override@example.com"}
	d := NewDispatcher(mail, &fakeStore{}, dir, testLogger())

	err := d.Dispatch(context.Background(), Notice{
		UserID:  uuid.New(),
		Channel: ChannelEmail,
		Title:   "t",
		Mail:    &email.Message{Subject: "s", TextBody: "b"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"override@example.com"}, mail.sent[0].To)
}

func TestDispatchEmailSendFailure(t *testing.T) {
	mail := &fakeMail{err: errors.New("smtp down")}
	store := &fakeStore{}
	d := NewDispatcher(mail, store, &fakeDirectory{addr: "a@b.c"}, testLogger())

	err := d.Dispatch(context.Background(), Notice{
		UserID:  uuid.New(),
		Channel: ChannelEmail,
		Title:   "t",
		Mail:    &email.Message{Subject: "s", TextBody: "b"},
	})
	require.Error(t, err)
	// No audit row when the send failed.
	require.Empty(t, store.created)
}

func TestDispatchEmailWithoutMessage(t *testing.T) {
	d := NewDispatcher(&fakeMail{}, &fakeStore{}, &fakeDirectory{addr: "a@b.c"}, testLogger())

	err := d.Dispatch(context.Background(), Notice{
		UserID:  uuid.New(),
		Channel: ChannelEmail,
		Title:   "t",
	})
	require.Error(t, err)
}

func TestDispatchInApp(t *testing.T) {
	store := &fakeStore{}
	d := NewDispatcher(&fakeMail{}, store, &fakeDirectory{}, testLogger())

	apptID := uuid.New()
	err := d.Dispatch(context.Background(), Notice{
		UserID:        uuid.New(),
		Channel:       ChannelInApp,
		Title:         "New appointment",
		Body:          "Booked for Monday",
		AppointmentID: &apptID,
	})
	require.NoError(t, err)

	require.Len(t, store.created, 1)
	require.Equal(t, "in_app", store.created[0].Channel)
	require.Equal(t, &apptID, store.created[0].AppointmentID)
}

func TestDispatchUnknownChannel(t *testing.T) {
	d := NewDispatcher(&fakeMail{}, &fakeStore{}, &fakeDirectory{}, testLogger())

	err := d.Dispatch(context.Background(), Notice{Channel: Channel("sms")})
	require.Error(t, err)
}
