package email

import (
	"fmt"
	"time"
)

// AppointmentEmailData contains the data needed for appointment email templates.
type AppointmentEmailData struct {
	PatientName      string
	PractitionerName string
	Email            string
	StartTime        time.Time
	DurationMinutes  int
	Reason           string
	AppName          string
}

func (d AppointmentEmailData) appName() string {
	if d.AppName == "" {
		return "Cabinet Medical"
	}
	return d.AppName
}

func (d AppointmentEmailData) patientName() string {
	if d.PatientName == "" {
		return "there"
	}
	return d.PatientName
}

// formatWhen renders the appointment time for email bodies, e.g.
// "Monday, 02 Mar 2026 at 14:30".
func formatWhen(t time.Time) string {
	return t.Format("Monday, 02 Jan 2006 at 15:04")
}

// BuildAppointmentConfirmationEmail creates the confirmation message sent to a
// patient right after an appointment is booked.
func BuildAppointmentConfirmationEmail(data AppointmentEmailData) Message {
	appName := data.appName()
	when := formatWhen(data.StartTime)

	subject := fmt.Sprintf("Your appointment with %s is confirmed", data.PractitionerName)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment has been booked.

Practitioner: %s
When: %s
Duration: %d minutes

If you need to reschedule or cancel, please contact the practice.

Thanks,
The %s Team`,
		data.patientName(), data.PractitionerName, when, data.DurationMinutes, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your appointment has been booked.</p>
    <table style="border-collapse: collapse; margin: 20px 0;">
        <tr><td style="padding: 6px 12px; color: #6b7280;">Practitioner</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">When</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Duration</td><td style="padding: 6px 12px;"><strong>%d minutes</strong></td></tr>
    </table>
    <p>If you need to reschedule or cancel, please contact the practice.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.patientName(), data.PractitionerName, when, data.DurationMinutes, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentReminderEmail creates the reminder message sent ahead of an
// upcoming appointment.
func BuildAppointmentReminderEmail(data AppointmentEmailData) Message {
	appName := data.appName()
	when := formatWhen(data.StartTime)

	subject := fmt.Sprintf("Reminder: appointment with %s on %s", data.PractitionerName, data.StartTime.Format("02 Jan"))

	textBody := fmt.Sprintf(`Hi %s,

This is a reminder for your upcoming appointment.

Practitioner: %s
When: %s
Duration: %d minutes

If you can no longer attend, please contact the practice as soon as possible.

Thanks,
The %s Team`,
		data.patientName(), data.PractitionerName, when, data.DurationMinutes, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>This is a reminder for your upcoming appointment.</p>
    <table style="border-collapse: collapse; margin: 20px 0;">
        <tr><td style="padding: 6px 12px; color: #6b7280;">Practitioner</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">When</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Duration</td><td style="padding: 6px 12px;"><strong>%d minutes</strong></td></tr>
    </table>
    <p>If you can no longer attend, please contact the practice as soon as possible.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.patientName(), data.PractitionerName, when, data.DurationMinutes, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentCancellationEmail creates the message sent to a patient when
// an appointment is cancelled.
func BuildAppointmentCancellationEmail(data AppointmentEmailData) Message {
	appName := data.appName()
	when := formatWhen(data.StartTime)

	subject := fmt.Sprintf("Your appointment on %s has been cancelled", data.StartTime.Format("02 Jan"))

	textBody := fmt.Sprintf(`Hi %s,

Your appointment with %s on %s has been cancelled.

If this was unexpected, please contact the practice to book a new time.

Thanks,
The %s Team`,
		data.patientName(), data.PractitionerName, when, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #dc2626;">Hi %s,</h2>
    <p>Your appointment with <strong>%s</strong> on <strong>%s</strong> has been cancelled.</p>
    <p>If this was unexpected, please contact the practice to book a new time.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.patientName(), data.PractitionerName, when, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
