package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Invoice is a bill issued to a patient, optionally tied to an appointment.
type Invoice struct {
	ent.Schema
}

func (Invoice) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.String("number").
			NotEmpty().
			Unique().
			Comment("Monotonic, e.g. FAC-000042; assigned from invoice_sequences"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("appointment_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Int64("amount_cents").
			NonNegative(),

		field.Enum("status").
			Values("issued", "settled", "void").
			Default("issued"),

		field.Time("settled_at").
			Optional().
			Nillable(),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("number").Unique(),
		index.Fields("patient_id", "status"),
	}
}
