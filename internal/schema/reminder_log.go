package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ReminderLog records a sent reminder per (appointment, channel) so a
// sweep never sends the same reminder twice.
type ReminderLog struct {
	ent.Schema
}

func (ReminderLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
	}
}

func (ReminderLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("appointment_id", uuid.UUID{}),

		field.Enum("channel").
			Values("email", "in_app"),

		field.Time("sent_at").
			Immutable(),
	}
}

func (ReminderLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("appointment_id", "channel").Unique(),
	}
}
