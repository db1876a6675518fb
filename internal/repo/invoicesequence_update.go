// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cabinetmed/cabinet_backend/internal/repo/invoicesequence"
	"github.com/cabinetmed/cabinet_backend/internal/repo/predicate"
)

// InvoiceSequenceUpdate is the builder for updating InvoiceSequence entities.
type InvoiceSequenceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceSequenceMutation
}

// Where appends a list predicates to the InvoiceSequenceUpdate builder.
func (_u *InvoiceSequenceUpdate) Where(ps ...predicate.InvoiceSequence) *InvoiceSequenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNextValue sets the "next_value" field.
func (_u *InvoiceSequenceUpdate) SetNextValue(v int64) *InvoiceSequenceUpdate {
	_u.mutation.ResetNextValue()
	_u.mutation.SetNextValue(v)
	return _u
}

// SetNillableNextValue sets the "next_value" field if the given value is not nil.
func (_u *InvoiceSequenceUpdate) SetNillableNextValue(v *int64) *InvoiceSequenceUpdate {
	if v != nil {
		_u.SetNextValue(*v)
	}
	return _u
}

// AddNextValue adds value to the "next_value" field.
func (_u *InvoiceSequenceUpdate) AddNextValue(v int64) *InvoiceSequenceUpdate {
	_u.mutation.AddNextValue(v)
	return _u
}

// Mutation returns the InvoiceSequenceMutation object of the builder.
func (_u *InvoiceSequenceUpdate) Mutation() *InvoiceSequenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceSequenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceSequenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceSequenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceSequenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InvoiceSequenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(invoicesequence.Table, invoicesequence.Columns, sqlgraph.NewFieldSpec(invoicesequence.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NextValue(); ok {
		_spec.SetField(invoicesequence.FieldNextValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNextValue(); ok {
		_spec.AddField(invoicesequence.FieldNextValue, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicesequence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceSequenceUpdateOne is the builder for updating a single InvoiceSequence entity.
type InvoiceSequenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceSequenceMutation
}

// SetNextValue sets the "next_value" field.
func (_u *InvoiceSequenceUpdateOne) SetNextValue(v int64) *InvoiceSequenceUpdateOne {
	_u.mutation.ResetNextValue()
	_u.mutation.SetNextValue(v)
	return _u
}

// SetNillableNextValue sets the "next_value" field if the given value is not nil.
func (_u *InvoiceSequenceUpdateOne) SetNillableNextValue(v *int64) *InvoiceSequenceUpdateOne {
	if v != nil {
		_u.SetNextValue(*v)
	}
	return _u
}

// AddNextValue adds value to the "next_value" field.
func (_u *InvoiceSequenceUpdateOne) AddNextValue(v int64) *InvoiceSequenceUpdateOne {
	_u.mutation.AddNextValue(v)
	return _u
}

// Mutation returns the InvoiceSequenceMutation object of the builder.
func (_u *InvoiceSequenceUpdateOne) Mutation() *InvoiceSequenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the InvoiceSequenceUpdate builder.
func (_u *InvoiceSequenceUpdateOne) Where(ps ...predicate.InvoiceSequence) *InvoiceSequenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceSequenceUpdateOne) Select(field string, fields ...string) *InvoiceSequenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvoiceSequence entity.
func (_u *InvoiceSequenceUpdateOne) Save(ctx context.Context) (*InvoiceSequence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceSequenceUpdateOne) SaveX(ctx context.Context) *InvoiceSequence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceSequenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceSequenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InvoiceSequenceUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceSequence, err error) {
	_spec := sqlgraph.NewUpdateSpec(invoicesequence.Table, invoicesequence.Columns, sqlgraph.NewFieldSpec(invoicesequence.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "InvoiceSequence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoicesequence.FieldID)
		for _, f := range fields {
			if !invoicesequence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != invoicesequence.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NextValue(); ok {
		_spec.SetField(invoicesequence.FieldNextValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNextValue(); ok {
		_spec.AddField(invoicesequence.FieldNextValue, field.TypeInt64, value)
	}
	_node = &InvoiceSequence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicesequence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
