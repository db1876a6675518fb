package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// User is any person known to the practice: patients, practitioners
// and assistants share one table, discriminated by role. Role-specific
// attributes are optional bundles.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			NotEmpty(),

		field.String("last_name").
			NotEmpty(),

		field.String("email").
			NotEmpty().
			Unique(),

		field.String("phone").
			Optional().
			Nillable().
			Comment("E.164 normalized"),

		field.Enum("role").
			Values("patient", "practitioner", "assistant"),

		// Practitioner bundle
		field.String("specialty").
			Optional().
			Nillable(),

		field.Text("description").
			Optional().
			Nillable(),

		// Assistant bundle
		field.Bool("is_active").
			Default(true),

		field.UUID("supervisor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Practitioner this assistant works for"),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("role"),
	}
}
