package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ReminderPref holds per-user appointment reminder preferences. A user
// without a row gets defaults at read time; the row is only created on
// the first explicit update.
type ReminderPref struct {
	ent.Schema
}

func (ReminderPref) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ReminderPref) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.Int("delay_hours").
			Default(24).
			Positive(),

		field.Bool("email_enabled").
			Default(true),

		field.Bool("in_app_enabled").
			Default(true),

		field.String("override_email").
			Optional().
			Nillable().
			Comment("Reminder destination when set; falls back to users.email"),
	}
}

func (ReminderPref) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
