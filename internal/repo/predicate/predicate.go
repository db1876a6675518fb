// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// InvoiceSequence is the predicate function for invoicesequence builders.
type InvoiceSequence func(*sql.Selector)

// MedicalRecord is the predicate function for medicalrecord builders.
type MedicalRecord func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// ReminderLog is the predicate function for reminderlog builders.
type ReminderLog func(*sql.Selector)

// ReminderPref is the predicate function for reminderpref builders.
type ReminderPref func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
