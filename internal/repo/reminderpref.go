// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cabinetmed/cabinet_backend/internal/repo/reminderpref"
	"github.com/google/uuid"
)

// ReminderPref is the model entity for the ReminderPref schema.
type ReminderPref struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// DelayHours holds the value of the "delay_hours" field.
	DelayHours int `json:"delay_hours,omitempty"`
	// EmailEnabled holds the value of the "email_enabled" field.
	EmailEnabled bool `json:"email_enabled,omitempty"`
	// InAppEnabled holds the value of the "in_app_enabled" field.
	InAppEnabled bool `json:"in_app_enabled,omitempty"`
	// Reminder destination when set; falls back to users.email
	OverrideEmail *string `json:"override_email,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReminderPref) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reminderpref.FieldEmailEnabled, reminderpref.FieldInAppEnabled:
			values[i] = new(sql.NullBool)
		case reminderpref.FieldDelayHours:
			values[i] = new(sql.NullInt64)
		case reminderpref.FieldOverrideEmail:
			values[i] = new(sql.NullString)
		case reminderpref.FieldCreatedAt, reminderpref.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case reminderpref.FieldID, reminderpref.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReminderPref fields.
func (_m *ReminderPref) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reminderpref.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case reminderpref.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case reminderpref.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case reminderpref.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case reminderpref.FieldDelayHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field delay_hours", values[i])
			} else if value.Valid {
				_m.DelayHours = int(value.Int64)
			}
		case reminderpref.FieldEmailEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_enabled", values[i])
			} else if value.Valid {
				_m.EmailEnabled = value.Bool
			}
		case reminderpref.FieldInAppEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field in_app_enabled", values[i])
			} else if value.Valid {
				_m.InAppEnabled = value.Bool
			}
		case reminderpref.FieldOverrideEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field override_email", values[i])
			} else if value.Valid {
				_m.OverrideEmail = new(string)
				*_m.OverrideEmail = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReminderPref.
// This includes values selected through modifiers, order, etc.
func (_m *ReminderPref) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReminderPref.
// Note that you need to call ReminderPref.Unwrap() before calling this method if this ReminderPref
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReminderPref) Update() *ReminderPrefUpdateOne {
	return NewReminderPrefClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReminderPref entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReminderPref) Unwrap() *ReminderPref {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ReminderPref is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReminderPref) String() string {
	var builder strings.Builder
	builder.WriteString("ReminderPref(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("delay_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.DelayHours))
	builder.WriteString(", ")
	builder.WriteString("email_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailEnabled))
	builder.WriteString(", ")
	builder.WriteString("in_app_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.InAppEnabled))
	builder.WriteString(", ")
	if v := _m.OverrideEmail; v != nil {
		builder.WriteString("override_email=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ReminderPrefs is a parsable slice of ReminderPref.
type ReminderPrefs []*ReminderPref
