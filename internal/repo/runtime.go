// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/cabinetmed/cabinet_backend/internal/repo/appointment"
	"github.com/cabinetmed/cabinet_backend/internal/repo/invoice"
	"github.com/cabinetmed/cabinet_backend/internal/repo/invoicesequence"
	"github.com/cabinetmed/cabinet_backend/internal/repo/medicalrecord"
	"github.com/cabinetmed/cabinet_backend/internal/repo/notification"
	"github.com/cabinetmed/cabinet_backend/internal/repo/patient"
	"github.com/cabinetmed/cabinet_backend/internal/repo/reminderlog"
	"github.com/cabinetmed/cabinet_backend/internal/repo/reminderpref"
	"github.com/cabinetmed/cabinet_backend/internal/repo/user"
	"github.com/cabinetmed/cabinet_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescDurationMinutes is the schema descriptor for duration_minutes field.
	appointmentDescDurationMinutes := appointmentFields[4].Descriptor()
	// appointment.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	appointment.DurationMinutesValidator = appointmentDescDurationMinutes.Validators[0].(func(int) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	invoiceMixin := schema.Invoice{}.Mixin()
	invoiceMixinFields0 := invoiceMixin[0].Fields()
	_ = invoiceMixinFields0
	invoiceMixinFields1 := invoiceMixin[1].Fields()
	_ = invoiceMixinFields1
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceMixinFields1[0].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceMixinFields1[1].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescNumber is the schema descriptor for number field.
	invoiceDescNumber := invoiceFields[0].Descriptor()
	// invoice.NumberValidator is a validator for the "number" field. It is called by the builders before save.
	invoice.NumberValidator = invoiceDescNumber.Validators[0].(func(string) error)
	// invoiceDescAmountCents is the schema descriptor for amount_cents field.
	invoiceDescAmountCents := invoiceFields[3].Descriptor()
	// invoice.AmountCentsValidator is a validator for the "amount_cents" field. It is called by the builders before save.
	invoice.AmountCentsValidator = invoiceDescAmountCents.Validators[0].(func(int64) error)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceMixinFields0[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoicesequenceFields := schema.InvoiceSequence{}.Fields()
	_ = invoicesequenceFields
	// invoicesequenceDescNextValue is the schema descriptor for next_value field.
	invoicesequenceDescNextValue := invoicesequenceFields[1].Descriptor()
	// invoicesequence.DefaultNextValue holds the default value on creation for the next_value field.
	invoicesequence.DefaultNextValue = invoicesequenceDescNextValue.Default.(int64)
	medicalrecordMixin := schema.MedicalRecord{}.Mixin()
	medicalrecordMixinFields0 := medicalrecordMixin[0].Fields()
	_ = medicalrecordMixinFields0
	medicalrecordMixinFields1 := medicalrecordMixin[1].Fields()
	_ = medicalrecordMixinFields1
	medicalrecordFields := schema.MedicalRecord{}.Fields()
	_ = medicalrecordFields
	// medicalrecordDescCreatedAt is the schema descriptor for created_at field.
	medicalrecordDescCreatedAt := medicalrecordMixinFields1[0].Descriptor()
	// medicalrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	medicalrecord.DefaultCreatedAt = medicalrecordDescCreatedAt.Default.(func() time.Time)
	// medicalrecordDescUpdatedAt is the schema descriptor for updated_at field.
	medicalrecordDescUpdatedAt := medicalrecordMixinFields1[1].Descriptor()
	// medicalrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	medicalrecord.DefaultUpdatedAt = medicalrecordDescUpdatedAt.Default.(func() time.Time)
	// medicalrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	medicalrecord.UpdateDefaultUpdatedAt = medicalrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// medicalrecordDescTitle is the schema descriptor for title field.
	medicalrecordDescTitle := medicalrecordFields[3].Descriptor()
	// medicalrecord.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	medicalrecord.TitleValidator = medicalrecordDescTitle.Validators[0].(func(string) error)
	// medicalrecordDescID is the schema descriptor for id field.
	medicalrecordDescID := medicalrecordMixinFields0[0].Descriptor()
	// medicalrecord.DefaultID holds the default value on creation for the id field.
	medicalrecord.DefaultID = medicalrecordDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[4].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	reminderlogMixin := schema.ReminderLog{}.Mixin()
	reminderlogMixinFields0 := reminderlogMixin[0].Fields()
	_ = reminderlogMixinFields0
	reminderlogFields := schema.ReminderLog{}.Fields()
	_ = reminderlogFields
	// reminderlogDescID is the schema descriptor for id field.
	reminderlogDescID := reminderlogMixinFields0[0].Descriptor()
	// reminderlog.DefaultID holds the default value on creation for the id field.
	reminderlog.DefaultID = reminderlogDescID.Default.(func() uuid.UUID)
	reminderprefMixin := schema.ReminderPref{}.Mixin()
	reminderprefMixinFields0 := reminderprefMixin[0].Fields()
	_ = reminderprefMixinFields0
	reminderprefMixinFields1 := reminderprefMixin[1].Fields()
	_ = reminderprefMixinFields1
	reminderprefFields := schema.ReminderPref{}.Fields()
	_ = reminderprefFields
	// reminderprefDescCreatedAt is the schema descriptor for created_at field.
	reminderprefDescCreatedAt := reminderprefMixinFields1[0].Descriptor()
	// reminderpref.DefaultCreatedAt holds the default value on creation for the created_at field.
	reminderpref.DefaultCreatedAt = reminderprefDescCreatedAt.Default.(func() time.Time)
	// reminderprefDescUpdatedAt is the schema descriptor for updated_at field.
	reminderprefDescUpdatedAt := reminderprefMixinFields1[1].Descriptor()
	// reminderpref.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reminderpref.DefaultUpdatedAt = reminderprefDescUpdatedAt.Default.(func() time.Time)
	// reminderpref.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reminderpref.UpdateDefaultUpdatedAt = reminderprefDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reminderprefDescDelayHours is the schema descriptor for delay_hours field.
	reminderprefDescDelayHours := reminderprefFields[1].Descriptor()
	// reminderpref.DefaultDelayHours holds the default value on creation for the delay_hours field.
	reminderpref.DefaultDelayHours = reminderprefDescDelayHours.Default.(int)
	// reminderpref.DelayHoursValidator is a validator for the "delay_hours" field. It is called by the builders before save.
	reminderpref.DelayHoursValidator = reminderprefDescDelayHours.Validators[0].(func(int) error)
	// reminderprefDescEmailEnabled is the schema descriptor for email_enabled field.
	reminderprefDescEmailEnabled := reminderprefFields[2].Descriptor()
	// reminderpref.DefaultEmailEnabled holds the default value on creation for the email_enabled field.
	reminderpref.DefaultEmailEnabled = reminderprefDescEmailEnabled.Default.(bool)
	// reminderprefDescInAppEnabled is the schema descriptor for in_app_enabled field.
	reminderprefDescInAppEnabled := reminderprefFields[3].Descriptor()
	// reminderpref.DefaultInAppEnabled holds the default value on creation for the in_app_enabled field.
	reminderpref.DefaultInAppEnabled = reminderprefDescInAppEnabled.Default.(bool)
	// reminderprefDescID is the schema descriptor for id field.
	reminderprefDescID := reminderprefMixinFields0[0].Descriptor()
	// reminderpref.DefaultID holds the default value on creation for the id field.
	reminderpref.DefaultID = reminderprefDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[7].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
