// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cabinetmed/cabinet_backend/internal/repo/predicate"
	"github.com/cabinetmed/cabinet_backend/internal/repo/reminderlog"
	"github.com/google/uuid"
)

// ReminderLogUpdate is the builder for updating ReminderLog entities.
type ReminderLogUpdate struct {
	config
	hooks    []Hook
	mutation *ReminderLogMutation
}

// Where appends a list predicates to the ReminderLogUpdate builder.
func (_u *ReminderLogUpdate) Where(ps ...predicate.ReminderLog) *ReminderLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *ReminderLogUpdate) SetAppointmentID(v uuid.UUID) *ReminderLogUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *ReminderLogUpdate) SetNillableAppointmentID(v *uuid.UUID) *ReminderLogUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *ReminderLogUpdate) SetChannel(v reminderlog.Channel) *ReminderLogUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *ReminderLogUpdate) SetNillableChannel(v *reminderlog.Channel) *ReminderLogUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// Mutation returns the ReminderLogMutation object of the builder.
func (_u *ReminderLogUpdate) Mutation() *ReminderLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReminderLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReminderLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReminderLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReminderLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReminderLogUpdate) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := reminderlog.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`repo: validator failed for field "ReminderLog.channel": %w`, err)}
		}
	}
	return nil
}

func (_u *ReminderLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminderlog.Table, reminderlog.Columns, sqlgraph.NewFieldSpec(reminderlog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(reminderlog.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(reminderlog.FieldChannel, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reminderlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReminderLogUpdateOne is the builder for updating a single ReminderLog entity.
type ReminderLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReminderLogMutation
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *ReminderLogUpdateOne) SetAppointmentID(v uuid.UUID) *ReminderLogUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *ReminderLogUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *ReminderLogUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *ReminderLogUpdateOne) SetChannel(v reminderlog.Channel) *ReminderLogUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *ReminderLogUpdateOne) SetNillableChannel(v *reminderlog.Channel) *ReminderLogUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// Mutation returns the ReminderLogMutation object of the builder.
func (_u *ReminderLogUpdateOne) Mutation() *ReminderLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReminderLogUpdate builder.
func (_u *ReminderLogUpdateOne) Where(ps ...predicate.ReminderLog) *ReminderLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReminderLogUpdateOne) Select(field string, fields ...string) *ReminderLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReminderLog entity.
func (_u *ReminderLogUpdateOne) Save(ctx context.Context) (*ReminderLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReminderLogUpdateOne) SaveX(ctx context.Context) *ReminderLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReminderLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReminderLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReminderLogUpdateOne) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := reminderlog.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`repo: validator failed for field "ReminderLog.channel": %w`, err)}
		}
	}
	return nil
}

func (_u *ReminderLogUpdateOne) sqlSave(ctx context.Context) (_node *ReminderLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminderlog.Table, reminderlog.Columns, sqlgraph.NewFieldSpec(reminderlog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ReminderLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reminderlog.FieldID)
		for _, f := range fields {
			if !reminderlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != reminderlog.FieldID {
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
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(reminderlog.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(reminderlog.FieldChannel, field.TypeEnum, value)
	}
	_node = &ReminderLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reminderlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
