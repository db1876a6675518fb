package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// InvoiceSequence is a single-row counter advanced inside the invoice
// insert transaction, so numbers are gapless under concurrency.
type InvoiceSequence struct {
	ent.Schema
}

func (InvoiceSequence) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique().
			Immutable(),

		field.Int64("next_value").
			Default(1),
	}
}
