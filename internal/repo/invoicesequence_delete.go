// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cabinetmed/cabinet_backend/internal/repo/invoicesequence"
	"github.com/cabinetmed/cabinet_backend/internal/repo/predicate"
)

// InvoiceSequenceDelete is the builder for deleting a InvoiceSequence entity.
type InvoiceSequenceDelete struct {
	config
	hooks    []Hook
	mutation *InvoiceSequenceMutation
}

// Where appends a list predicates to the InvoiceSequenceDelete builder.
func (_d *InvoiceSequenceDelete) Where(ps ...predicate.InvoiceSequence) *InvoiceSequenceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InvoiceSequenceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InvoiceSequenceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InvoiceSequenceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(invoicesequence.Table, sqlgraph.NewFieldSpec(invoicesequence.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// InvoiceSequenceDeleteOne is the builder for deleting a single InvoiceSequence entity.
type InvoiceSequenceDeleteOne struct {
	_d *InvoiceSequenceDelete
}

// Where appends a list predicates to the InvoiceSequenceDelete builder.
func (_d *InvoiceSequenceDeleteOne) Where(ps ...predicate.InvoiceSequence) *InvoiceSequenceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InvoiceSequenceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{invoicesequence.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InvoiceSequenceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
