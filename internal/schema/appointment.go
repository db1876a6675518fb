package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked session between a practitioner and a patient.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("practitioner_id", uuid.UUID{}).
			Comment("FK → users.id (role=practitioner)"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("created_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Staff user who booked on the patient's behalf"),

		field.Time("start_time"),

		field.Int("duration_minutes").
			Positive().
			Comment("Snapshotted from scheduling config at booking time"),

		field.Enum("status").
			Values("planned", "completed", "cancelled").
			Default("planned"),

		field.Text("reason").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("practitioner_id", "start_time"),
		index.Fields("patient_id", "status"),
		index.Fields("status", "start_time"),
	}
}
