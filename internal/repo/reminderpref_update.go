// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cabinetmed/cabinet_backend/internal/repo/predicate"
	"github.com/cabinetmed/cabinet_backend/internal/repo/reminderpref"
	"github.com/google/uuid"
)

// ReminderPrefUpdate is the builder for updating ReminderPref entities.
type ReminderPrefUpdate struct {
	config
	hooks    []Hook
	mutation *ReminderPrefMutation
}

// Where appends a list predicates to the ReminderPrefUpdate builder.
func (_u *ReminderPrefUpdate) Where(ps ...predicate.ReminderPref) *ReminderPrefUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReminderPrefUpdate) SetUpdatedAt(v time.Time) *ReminderPrefUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReminderPrefUpdate) SetUserID(v uuid.UUID) *ReminderPrefUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReminderPrefUpdate) SetNillableUserID(v *uuid.UUID) *ReminderPrefUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDelayHours sets the "delay_hours" field.
func (_u *ReminderPrefUpdate) SetDelayHours(v int) *ReminderPrefUpdate {
	_u.mutation.ResetDelayHours()
	_u.mutation.SetDelayHours(v)
	return _u
}

// SetNillableDelayHours sets the "delay_hours" field if the given value is not nil.
func (_u *ReminderPrefUpdate) SetNillableDelayHours(v *int) *ReminderPrefUpdate {
	if v != nil {
		_u.SetDelayHours(*v)
	}
	return _u
}

// AddDelayHours adds value to the "delay_hours" field.
func (_u *ReminderPrefUpdate) AddDelayHours(v int) *ReminderPrefUpdate {
	_u.mutation.AddDelayHours(v)
	return _u
}

// SetEmailEnabled sets the "email_enabled" field.
func (_u *ReminderPrefUpdate) SetEmailEnabled(v bool) *ReminderPrefUpdate {
	_u.mutation.SetEmailEnabled(v)
	return _u
}

// SetNillableEmailEnabled sets the "email_enabled" field if the given value is not nil.
func (_u *ReminderPrefUpdate) SetNillableEmailEnabled(v *bool) *ReminderPrefUpdate {
	if v != nil {
		_u.SetEmailEnabled(*v)
	}
	return _u
}

// SetInAppEnabled sets the "in_app_enabled" field.
func (_u *ReminderPrefUpdate) SetInAppEnabled(v bool) *ReminderPrefUpdate {
	_u.mutation.SetInAppEnabled(v)
	return _u
}

// SetNillableInAppEnabled sets the "in_app_enabled" field if the given value is not nil.
func (_u *ReminderPrefUpdate) SetNillableInAppEnabled(v *bool) *ReminderPrefUpdate {
	if v != nil {
		_u.SetInAppEnabled(*v)
	}
	return _u
}

// SetOverrideEmail sets the "override_email" field.
func (_u *ReminderPrefUpdate) SetOverrideEmail(v string) *ReminderPrefUpdate {
	_u.mutation.SetOverrideEmail(v)
	return _u
}

// SetNillableOverrideEmail sets the "override_email" field if the given value is not nil.
func (_u *ReminderPrefUpdate) SetNillableOverrideEmail(v *string) *ReminderPrefUpdate {
	if v != nil {
		_u.SetOverrideEmail(*v)
	}
	return _u
}

// ClearOverrideEmail clears the value of the "override_email" field.
func (_u *ReminderPrefUpdate) ClearOverrideEmail() *ReminderPrefUpdate {
	_u.mutation.ClearOverrideEmail()
	return _u
}

// Mutation returns the ReminderPrefMutation object of the builder.
func (_u *ReminderPrefUpdate) Mutation() *ReminderPrefMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReminderPrefUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReminderPrefUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReminderPrefUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReminderPrefUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReminderPrefUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reminderpref.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReminderPrefUpdate) check() error {
	if v, ok := _u.mutation.DelayHours(); ok {
		if err := reminderpref.DelayHoursValidator(v); err != nil {
			return &ValidationError{Name: "delay_hours", err: fmt.Errorf(`repo: validator failed for field "ReminderPref.delay_hours": %w`, err)}
		}
	}
	return nil
}

func (_u *ReminderPrefUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminderpref.Table, reminderpref.Columns, sqlgraph.NewFieldSpec(reminderpref.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reminderpref.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reminderpref.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DelayHours(); ok {
		_spec.SetField(reminderpref.FieldDelayHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelayHours(); ok {
		_spec.AddField(reminderpref.FieldDelayHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmailEnabled(); ok {
		_spec.SetField(reminderpref.FieldEmailEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InAppEnabled(); ok {
		_spec.SetField(reminderpref.FieldInAppEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OverrideEmail(); ok {
		_spec.SetField(reminderpref.FieldOverrideEmail, field.TypeString, value)
	}
	if _u.mutation.OverrideEmailCleared() {
		_spec.ClearField(reminderpref.FieldOverrideEmail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reminderpref.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReminderPrefUpdateOne is the builder for updating a single ReminderPref entity.
type ReminderPrefUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReminderPrefMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReminderPrefUpdateOne) SetUpdatedAt(v time.Time) *ReminderPrefUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReminderPrefUpdateOne) SetUserID(v uuid.UUID) *ReminderPrefUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReminderPrefUpdateOne) SetNillableUserID(v *uuid.UUID) *ReminderPrefUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDelayHours sets the "delay_hours" field.
func (_u *ReminderPrefUpdateOne) SetDelayHours(v int) *ReminderPrefUpdateOne {
	_u.mutation.ResetDelayHours()
	_u.mutation.SetDelayHours(v)
	return _u
}

// SetNillableDelayHours sets the "delay_hours" field if the given value is not nil.
func (_u *ReminderPrefUpdateOne) SetNillableDelayHours(v *int) *ReminderPrefUpdateOne {
	if v != nil {
		_u.SetDelayHours(*v)
	}
	return _u
}

// AddDelayHours adds value to the "delay_hours" field.
func (_u *ReminderPrefUpdateOne) AddDelayHours(v int) *ReminderPrefUpdateOne {
	_u.mutation.AddDelayHours(v)
	return _u
}

// SetEmailEnabled sets the "email_enabled" field.
func (_u *ReminderPrefUpdateOne) SetEmailEnabled(v bool) *ReminderPrefUpdateOne {
	_u.mutation.SetEmailEnabled(v)
	return _u
}

// SetNillableEmailEnabled sets the "email_enabled" field if the given value is not nil.
func (_u *ReminderPrefUpdateOne) SetNillableEmailEnabled(v *bool) *ReminderPrefUpdateOne {
	if v != nil {
		_u.SetEmailEnabled(*v)
	}
	return _u
}

// SetInAppEnabled sets the "in_app_enabled" field.
func (_u *ReminderPrefUpdateOne) SetInAppEnabled(v bool) *ReminderPrefUpdateOne {
	_u.mutation.SetInAppEnabled(v)
	return _u
}

// SetNillableInAppEnabled sets the "in_app_enabled" field if the given value is not nil.
func (_u *ReminderPrefUpdateOne) SetNillableInAppEnabled(v *bool) *ReminderPrefUpdateOne {
	if v != nil {
		_u.SetInAppEnabled(*v)
	}
	return _u
}

// SetOverrideEmail sets the "override_email" field.
func (_u *ReminderPrefUpdateOne) SetOverrideEmail(v string) *ReminderPrefUpdateOne {
	_u.mutation.SetOverrideEmail(v)
	return _u
}

// SetNillableOverrideEmail sets the "override_email" field if the given value is not nil.
func (_u *ReminderPrefUpdateOne) SetNillableOverrideEmail(v *string) *ReminderPrefUpdateOne {
	if v != nil {
		_u.SetOverrideEmail(*v)
	}
	return _u
}

// ClearOverrideEmail clears the value of the "override_email" field.
func (_u *ReminderPrefUpdateOne) ClearOverrideEmail() *ReminderPrefUpdateOne {
	_u.mutation.ClearOverrideEmail()
	return _u
}

// Mutation returns the ReminderPrefMutation object of the builder.
func (_u *ReminderPrefUpdateOne) Mutation() *ReminderPrefMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReminderPrefUpdate builder.
func (_u *ReminderPrefUpdateOne) Where(ps ...predicate.ReminderPref) *ReminderPrefUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReminderPrefUpdateOne) Select(field string, fields ...string) *ReminderPrefUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReminderPref entity.
func (_u *ReminderPrefUpdateOne) Save(ctx context.Context) (*ReminderPref, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReminderPrefUpdateOne) SaveX(ctx context.Context) *ReminderPref {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReminderPrefUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReminderPrefUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReminderPrefUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reminderpref.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReminderPrefUpdateOne) check() error {
	if v, ok := _u.mutation.DelayHours(); ok {
		if err := reminderpref.DelayHoursValidator(v); err != nil {
			return &ValidationError{Name: "delay_hours", err: fmt.Errorf(`repo: validator failed for field "ReminderPref.delay_hours": %w`, err)}
		}
	}
	return nil
}

func (_u *ReminderPrefUpdateOne) sqlSave(ctx context.Context) (_node *ReminderPref, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminderpref.Table, reminderpref.Columns, sqlgraph.NewFieldSpec(reminderpref.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ReminderPref.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reminderpref.FieldID)
		for _, f := range fields {
			if !reminderpref.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != reminderpref.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reminderpref.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reminderpref.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DelayHours(); ok {
		_spec.SetField(reminderpref.FieldDelayHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelayHours(); ok {
		_spec.AddField(reminderpref.FieldDelayHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmailEnabled(); ok {
		_spec.SetField(reminderpref.FieldEmailEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InAppEnabled(); ok {
		_spec.SetField(reminderpref.FieldInAppEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OverrideEmail(); ok {
		_spec.SetField(reminderpref.FieldOverrideEmail, field.TypeString, value)
	}
	if _u.mutation.OverrideEmailCleared() {
		_spec.ClearField(reminderpref.FieldOverrideEmail, field.TypeString)
	}
	_node = &ReminderPref{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reminderpref.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
