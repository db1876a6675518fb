// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "practitioner_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "created_by", Type: field.TypeUUID, Nullable: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"planned", "completed", "cancelled"}, Default: "planned"},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_practitioner_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[6]},
			},
			{
				Name:    "appointment_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[8]},
			},
			{
				Name:    "appointment_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[8], AppointmentsColumns[6]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "number", Type: field.TypeString, Unique: true},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "appointment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "amount_cents", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"issued", "settled", "void"}, Default: "issued"},
		{Name: "settled_at", Type: field.TypeTime, Nullable: true},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_number",
				Unique:  true,
				Columns: []*schema.Column{InvoicesColumns[3]},
			},
			{
				Name:    "invoice_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[4], InvoicesColumns[7]},
			},
		},
	}
	// InvoiceSequencesColumns holds the columns for the "invoice_sequences" table.
	InvoiceSequencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "next_value", Type: field.TypeInt64, Default: 1},
	}
	// InvoiceSequencesTable holds the schema information for the "invoice_sequences" table.
	InvoiceSequencesTable = &schema.Table{
		Name:       "invoice_sequences",
		Columns:    InvoiceSequencesColumns,
		PrimaryKey: []*schema.Column{InvoiceSequencesColumns[0]},
	}
	// MedicalRecordsColumns holds the columns for the "medical_records" table.
	MedicalRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "appointment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "author_id", Type: field.TypeUUID, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// MedicalRecordsTable holds the schema information for the "medical_records" table.
	MedicalRecordsTable = &schema.Table{
		Name:       "medical_records",
		Columns:    MedicalRecordsColumns,
		PrimaryKey: []*schema.Column{MedicalRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "medicalrecord_patient_id",
				Unique:  false,
				Columns: []*schema.Column{MedicalRecordsColumns[3]},
			},
			{
				Name:    "medicalrecord_appointment_id",
				Unique:  false,
				Columns: []*schema.Column{MedicalRecordsColumns[4]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"email", "in_app"}},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "appointment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID, Nullable: true},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_is_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[6]},
			},
			{
				Name:    "notification_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[1]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "file_number", Type: field.TypeString, Nullable: true},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "referral_source", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_user_id",
				Unique:  true,
				Columns: []*schema.Column{PatientsColumns[4]},
			},
		},
	}
	// ReminderLogsColumns holds the columns for the "reminder_logs" table.
	ReminderLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "appointment_id", Type: field.TypeUUID},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"email", "in_app"}},
		{Name: "sent_at", Type: field.TypeTime},
	}
	// ReminderLogsTable holds the schema information for the "reminder_logs" table.
	ReminderLogsTable = &schema.Table{
		Name:       "reminder_logs",
		Columns:    ReminderLogsColumns,
		PrimaryKey: []*schema.Column{ReminderLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reminderlog_appointment_id_channel",
				Unique:  true,
				Columns: []*schema.Column{ReminderLogsColumns[1], ReminderLogsColumns[2]},
			},
		},
	}
	// ReminderPrefsColumns holds the columns for the "reminder_prefs" table.
	ReminderPrefsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "delay_hours", Type: field.TypeInt, Default: 24},
		{Name: "email_enabled", Type: field.TypeBool, Default: true},
		{Name: "in_app_enabled", Type: field.TypeBool, Default: true},
		{Name: "override_email", Type: field.TypeString, Nullable: true},
	}
	// ReminderPrefsTable holds the schema information for the "reminder_prefs" table.
	ReminderPrefsTable = &schema.Table{
		Name:       "reminder_prefs",
		Columns:    ReminderPrefsColumns,
		PrimaryKey: []*schema.Column{ReminderPrefsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reminderpref_user_id",
				Unique:  true,
				Columns: []*schema.Column{ReminderPrefsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"patient", "practitioner", "assistant"}},
		{Name: "specialty", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "supervisor_id", Type: field.TypeUUID, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[6]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		InvoicesTable,
		InvoiceSequencesTable,
		MedicalRecordsTable,
		NotificationsTable,
		PatientsTable,
		ReminderLogsTable,
		ReminderPrefsTable,
		UsersTable,
	}
)

func init() {
}
