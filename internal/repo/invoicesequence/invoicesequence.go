// Code generated by ent, DO NOT EDIT.

package invoicesequence

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the invoicesequence type in the database.
	Label = "invoice_sequence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldNextValue holds the string denoting the next_value field in the database.
	FieldNextValue = "next_value"
	// Table holds the table name of the invoicesequence in the database.
	Table = "invoice_sequences"
)

// Columns holds all SQL columns for invoicesequence fields.
var Columns = []string{
	FieldID,
	FieldNextValue,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultNextValue holds the default value on creation for the "next_value" field.
	DefaultNextValue int64
)

// OrderOption defines the ordering options for the InvoiceSequence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNextValue orders the results by the next_value field.
func ByNextValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextValue, opts...).ToFunc()
}
