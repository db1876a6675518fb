package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MedicalRecord is a free-text clinical note. One is auto-opened for each
// booking; practitioners add more by hand.
type MedicalRecord struct {
	ent.Schema
}

func (MedicalRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (MedicalRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("appointment_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("author_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Practitioner who wrote the note; nil for auto-opened records"),

		field.String("title").
			NotEmpty(),

		field.Text("body").
			Optional().
			Nillable(),
	}
}

func (MedicalRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
		index.Fields("appointment_id"),
	}
}
