package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Notification is a message delivered to a user. In-app rows carry read
// state; email rows are an audit trail of what was sent.
type Notification struct {
	ent.Schema
}

func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id (recipient)"),

		field.Enum("channel").
			Values("email", "in_app"),

		field.String("title").
			NotEmpty(),

		field.Text("body"),

		field.Bool("is_read").
			Default(false),

		field.UUID("appointment_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("patient_id", uuid.UUID{}).
			Optional().
			Nillable(),
	}
}

func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "is_read"),
		index.Fields("user_id", "created_at"),
	}
}
