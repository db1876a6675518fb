// Code generated by ent, DO NOT EDIT.

package invoicesequence

import (
	"entgo.io/ent/dialect/sql"
	"github.com/cabinetmed/cabinet_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldLTE(FieldID, id))
}

// NextValue applies equality check predicate on the "next_value" field. It's identical to NextValueEQ.
func NextValue(v int64) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldEQ(FieldNextValue, v))
}

// NextValueEQ applies the EQ predicate on the "next_value" field.
func NextValueEQ(v int64) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldEQ(FieldNextValue, v))
}

// NextValueNEQ applies the NEQ predicate on the "next_value" field.
func NextValueNEQ(v int64) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldNEQ(FieldNextValue, v))
}

// NextValueIn applies the In predicate on the "next_value" field.
func NextValueIn(vs ...int64) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldIn(FieldNextValue, vs...))
}

// NextValueNotIn applies the NotIn predicate on the "next_value" field.
func NextValueNotIn(vs ...int64) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldNotIn(FieldNextValue, vs...))
}

// NextValueGT applies the GT predicate on the "next_value" field.
func NextValueGT(v int64) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldGT(FieldNextValue, v))
}

// NextValueGTE applies the GTE predicate on the "next_value" field.
func NextValueGTE(v int64) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldGTE(FieldNextValue, v))
}

// NextValueLT applies the LT predicate on the "next_value" field.
func NextValueLT(v int64) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldLT(FieldNextValue, v))
}

// NextValueLTE applies the LTE predicate on the "next_value" field.
func NextValueLTE(v int64) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.FieldLTE(FieldNextValue, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InvoiceSequence) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InvoiceSequence) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InvoiceSequence) predicate.InvoiceSequence {
	return predicate.InvoiceSequence(sql.NotPredicates(p))
}
