// Code generated by ent, DO NOT EDIT.

package reminderpref

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the reminderpref type in the database.
	Label = "reminder_pref"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDelayHours holds the string denoting the delay_hours field in the database.
	FieldDelayHours = "delay_hours"
	// FieldEmailEnabled holds the string denoting the email_enabled field in the database.
	FieldEmailEnabled = "email_enabled"
	// FieldInAppEnabled holds the string denoting the in_app_enabled field in the database.
	FieldInAppEnabled = "in_app_enabled"
	// FieldOverrideEmail holds the string denoting the override_email field in the database.
	FieldOverrideEmail = "override_email"
	// Table holds the table name of the reminderpref in the database.
	Table = "reminder_prefs"
)

// Columns holds all SQL columns for reminderpref fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldDelayHours,
	FieldEmailEnabled,
	FieldInAppEnabled,
	FieldOverrideEmail,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultDelayHours holds the default value on creation for the "delay_hours" field.
	DefaultDelayHours int
	// DelayHoursValidator is a validator for the "delay_hours" field. It is called by the builders before save.
	DelayHoursValidator func(int) error
	// DefaultEmailEnabled holds the default value on creation for the "email_enabled" field.
	DefaultEmailEnabled bool
	// DefaultInAppEnabled holds the default value on creation for the "in_app_enabled" field.
	DefaultInAppEnabled bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ReminderPref queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDelayHours orders the results by the delay_hours field.
func ByDelayHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelayHours, opts...).ToFunc()
}

// ByEmailEnabled orders the results by the email_enabled field.
func ByEmailEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailEnabled, opts...).ToFunc()
}

// ByInAppEnabled orders the results by the in_app_enabled field.
func ByInAppEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInAppEnabled, opts...).ToFunc()
}

// ByOverrideEmail orders the results by the override_email field.
func ByOverrideEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverrideEmail, opts...).ToFunc()
}
