package email

import (
	"strings"
	"testing"
	"time"
)

var templateData = AppointmentEmailData{
	PatientName:      "Marie Dupont",
	PractitionerName: "Dr. Bernard",
	Email:            "marie@example.com",
	StartTime:        time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC),
	DurationMinutes:  30,
	AppName:          "Cabinet Medical",
}

func TestBuildAppointmentConfirmationEmail(t *testing.T) {
	msg := BuildAppointmentConfirmationEmail(templateData)

	if len(msg.To) != 1 || msg.To[0] != "marie@example.com" {
		t.Errorf("unexpected recipients: %v", msg.To)
	}
	if !strings.Contains(msg.Subject, "Dr. Bernard") {
		t.Errorf("subject should name the practitioner, got %q", msg.Subject)
	}
	if !strings.Contains(msg.TextBody, "Monday, 02 Mar 2026 at 14:30") {
		t.Error("text body missing formatted appointment time")
	}
	if !strings.Contains(msg.HTMLBody, "Marie Dupont") {
		t.Error("HTML body missing patient name")
	}
}

func TestBuildAppointmentReminderEmail(t *testing.T) {
	msg := BuildAppointmentReminderEmail(templateData)

	if !strings.Contains(msg.Subject, "Reminder") {
		t.Errorf("unexpected subject: %q", msg.Subject)
	}
	if !strings.Contains(msg.TextBody, "30 minutes") {
		t.Error("text body missing duration")
	}
}

func TestBuildAppointmentCancellationEmail(t *testing.T) {
	msg := BuildAppointmentCancellationEmail(templateData)

	if !strings.Contains(msg.Subject, "cancelled") {
		t.Errorf("unexpected subject: %q", msg.Subject)
	}
	if !strings.Contains(msg.TextBody, "Dr. Bernard") {
		t.Error("text body missing practitioner name")
	}
}

func TestAppointmentEmailDataFallbacks(t *testing.T) {
	msg := BuildAppointmentConfirmationEmail(AppointmentEmailData{
		PractitionerName: "Dr. Bernard",
		StartTime:        templateData.StartTime,
		DurationMinutes:  30,
	})

	if !strings.Contains(msg.TextBody, "Hi there,") {
		t.Error("expected patient name fallback")
	}
	if !strings.Contains(msg.TextBody, "Cabinet Medical") {
		t.Error("expected app name fallback")
	}
}
