package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is the practice-side administrative record for a user with the
// patient role. Identity and contact details live on the User row.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.String("file_number").
			Optional().
			Nillable().
			Comment("Paper-file reference used at the front desk"),

		field.Time("date_of_birth").
			Optional().
			Nillable(),

		field.String("referral_source").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
