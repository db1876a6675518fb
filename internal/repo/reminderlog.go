// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cabinetmed/cabinet_backend/internal/repo/reminderlog"
	"github.com/google/uuid"
)

// ReminderLog is the model entity for the ReminderLog schema.
type ReminderLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// AppointmentID holds the value of the "appointment_id" field.
	AppointmentID uuid.UUID `json:"appointment_id,omitempty"`
	// Channel holds the value of the "channel" field.
	Channel reminderlog.Channel `json:"channel,omitempty"`
	// SentAt holds the value of the "sent_at" field.
	SentAt       time.Time `json:"sent_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReminderLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reminderlog.FieldChannel:
			values[i] = new(sql.NullString)
		case reminderlog.FieldSentAt:
			values[i] = new(sql.NullTime)
		case reminderlog.FieldID, reminderlog.FieldAppointmentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReminderLog fields.
func (_m *ReminderLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reminderlog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case reminderlog.FieldAppointmentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_id", values[i])
			} else if value != nil {
				_m.AppointmentID = *value
			}
		case reminderlog.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = reminderlog.Channel(value.String)
			}
		case reminderlog.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReminderLog.
// This includes values selected through modifiers, order, etc.
func (_m *ReminderLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReminderLog.
// Note that you need to call ReminderLog.Unwrap() before calling this method if this ReminderLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReminderLog) Update() *ReminderLogUpdateOne {
	return NewReminderLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReminderLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReminderLog) Unwrap() *ReminderLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ReminderLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReminderLog) String() string {
	var builder strings.Builder
	builder.WriteString("ReminderLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("appointment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentID))
	builder.WriteString(", ")
	builder.WriteString("channel=")
	builder.WriteString(fmt.Sprintf("%v", _m.Channel))
	builder.WriteString(", ")
	builder.WriteString("sent_at=")
	builder.WriteString(_m.SentAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReminderLogs is a parsable slice of ReminderLog.
type ReminderLogs []*ReminderLog
