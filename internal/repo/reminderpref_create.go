// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cabinetmed/cabinet_backend/internal/repo/reminderpref"
	"github.com/google/uuid"
)

// ReminderPrefCreate is the builder for creating a ReminderPref entity.
type ReminderPrefCreate struct {
	config
	mutation *ReminderPrefMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReminderPrefCreate) SetCreatedAt(v time.Time) *ReminderPrefCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReminderPrefCreate) SetNillableCreatedAt(v *time.Time) *ReminderPrefCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReminderPrefCreate) SetUpdatedAt(v time.Time) *ReminderPrefCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReminderPrefCreate) SetNillableUpdatedAt(v *time.Time) *ReminderPrefCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ReminderPrefCreate) SetUserID(v uuid.UUID) *ReminderPrefCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDelayHours sets the "delay_hours" field.
func (_c *ReminderPrefCreate) SetDelayHours(v int) *ReminderPrefCreate {
	_c.mutation.SetDelayHours(v)
	return _c
}

// SetNillableDelayHours sets the "delay_hours" field if the given value is not nil.
func (_c *ReminderPrefCreate) SetNillableDelayHours(v *int) *ReminderPrefCreate {
	if v != nil {
		_c.SetDelayHours(*v)
	}
	return _c
}

// SetEmailEnabled sets the "email_enabled" field.
func (_c *ReminderPrefCreate) SetEmailEnabled(v bool) *ReminderPrefCreate {
	_c.mutation.SetEmailEnabled(v)
	return _c
}

// SetNillableEmailEnabled sets the "email_enabled" field if the given value is not nil.
func (_c *ReminderPrefCreate) SetNillableEmailEnabled(v *bool) *ReminderPrefCreate {
	if v != nil {
		_c.SetEmailEnabled(*v)
	}
	return _c
}

// SetInAppEnabled sets the "in_app_enabled" field.
func (_c *ReminderPrefCreate) SetInAppEnabled(v bool) *ReminderPrefCreate {
	_c.mutation.SetInAppEnabled(v)
	return _c
}

// SetNillableInAppEnabled sets the "in_app_enabled" field if the given value is not nil.
func (_c *ReminderPrefCreate) SetNillableInAppEnabled(v *bool) *ReminderPrefCreate {
	if v != nil {
		_c.SetInAppEnabled(*v)
	}
	return _c
}

// SetOverrideEmail sets the "override_email" field.
func (_c *ReminderPrefCreate) SetOverrideEmail(v string) *ReminderPrefCreate {
	_c.mutation.SetOverrideEmail(v)
	return _c
}

// SetNillableOverrideEmail sets the "override_email" field if the given value is not nil.
func (_c *ReminderPrefCreate) SetNillableOverrideEmail(v *string) *ReminderPrefCreate {
	if v != nil {
		_c.SetOverrideEmail(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReminderPrefCreate) SetID(v uuid.UUID) *ReminderPrefCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReminderPrefCreate) SetNillableID(v *uuid.UUID) *ReminderPrefCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ReminderPrefMutation object of the builder.
func (_c *ReminderPrefCreate) Mutation() *ReminderPrefMutation {
	return _c.mutation
}

// Save creates the ReminderPref in the database.
func (_c *ReminderPrefCreate) Save(ctx context.Context) (*ReminderPref, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReminderPrefCreate) SaveX(ctx context.Context) *ReminderPref {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReminderPrefCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReminderPrefCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReminderPrefCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reminderpref.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reminderpref.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.DelayHours(); !ok {
		v := reminderpref.DefaultDelayHours
		_c.mutation.SetDelayHours(v)
	}
	if _, ok := _c.mutation.EmailEnabled(); !ok {
		v := reminderpref.DefaultEmailEnabled
		_c.mutation.SetEmailEnabled(v)
	}
	if _, ok := _c.mutation.InAppEnabled(); !ok {
		v := reminderpref.DefaultInAppEnabled
		_c.mutation.SetInAppEnabled(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reminderpref.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReminderPrefCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ReminderPref.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ReminderPref.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "ReminderPref.user_id"`)}
	}
	if _, ok := _c.mutation.DelayHours(); !ok {
		return &ValidationError{Name: "delay_hours", err: errors.New(`repo: missing required field "ReminderPref.delay_hours"`)}
	}
	if v, ok := _c.mutation.DelayHours(); ok {
		if err := reminderpref.DelayHoursValidator(v); err != nil {
			return &ValidationError{Name: "delay_hours", err: fmt.Errorf(`repo: validator failed for field "ReminderPref.delay_hours": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmailEnabled(); !ok {
		return &ValidationError{Name: "email_enabled", err: errors.New(`repo: missing required field "ReminderPref.email_enabled"`)}
	}
	if _, ok := _c.mutation.InAppEnabled(); !ok {
		return &ValidationError{Name: "in_app_enabled", err: errors.New(`repo: missing required field "ReminderPref.in_app_enabled"`)}
	}
	return nil
}

func (_c *ReminderPrefCreate) sqlSave(ctx context.Context) (*ReminderPref, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReminderPrefCreate) createSpec() (*ReminderPref, *sqlgraph.CreateSpec) {
	var (
		_node = &ReminderPref{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reminderpref.Table, sqlgraph.NewFieldSpec(reminderpref.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reminderpref.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reminderpref.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(reminderpref.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.DelayHours(); ok {
		_spec.SetField(reminderpref.FieldDelayHours, field.TypeInt, value)
		_node.DelayHours = value
	}
	if value, ok := _c.mutation.EmailEnabled(); ok {
		_spec.SetField(reminderpref.FieldEmailEnabled, field.TypeBool, value)
		_node.EmailEnabled = value
	}
	if value, ok := _c.mutation.InAppEnabled(); ok {
		_spec.SetField(reminderpref.FieldInAppEnabled, field.TypeBool, value)
		_node.InAppEnabled = value
	}
	if value, ok := _c.mutation.OverrideEmail(); ok {
		_spec.SetField(reminderpref.FieldOverrideEmail, field.TypeString, value)
		_node.OverrideEmail = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReminderPref.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReminderPrefUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ReminderPrefCreate) OnConflict(opts ...sql.ConflictOption) *ReminderPrefUpsertOne {
	_c.conflict = opts
	return &ReminderPrefUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReminderPref.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReminderPrefCreate) OnConflictColumns(columns ...string) *ReminderPrefUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReminderPrefUpsertOne{
		create: _c,
	}
}

type (
	// ReminderPrefUpsertOne is the builder for "upsert"-ing
	//  one ReminderPref node.
	ReminderPrefUpsertOne struct {
		create *ReminderPrefCreate
	}

	// ReminderPrefUpsert is the "OnConflict" setter.
	ReminderPrefUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ReminderPrefUpsert) SetUpdatedAt(v time.Time) *ReminderPrefUpsert {
	u.Set(reminderpref.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReminderPrefUpsert) UpdateUpdatedAt() *ReminderPrefUpsert {
	u.SetExcluded(reminderpref.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *ReminderPrefUpsert) SetUserID(v uuid.UUID) *ReminderPrefUpsert {
	u.Set(reminderpref.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReminderPrefUpsert) UpdateUserID() *ReminderPrefUpsert {
	u.SetExcluded(reminderpref.FieldUserID)
	return u
}

// SetDelayHours sets the "delay_hours" field.
func (u *ReminderPrefUpsert) SetDelayHours(v int) *ReminderPrefUpsert {
	u.Set(reminderpref.FieldDelayHours, v)
	return u
}

// UpdateDelayHours sets the "delay_hours" field to the value that was provided on create.
func (u *ReminderPrefUpsert) UpdateDelayHours() *ReminderPrefUpsert {
	u.SetExcluded(reminderpref.FieldDelayHours)
	return u
}

// AddDelayHours adds v to the "delay_hours" field.
func (u *ReminderPrefUpsert) AddDelayHours(v int) *ReminderPrefUpsert {
	u.Add(reminderpref.FieldDelayHours, v)
	return u
}

// SetEmailEnabled sets the "email_enabled" field.
func (u *ReminderPrefUpsert) SetEmailEnabled(v bool) *ReminderPrefUpsert {
	u.Set(reminderpref.FieldEmailEnabled, v)
	return u
}

// UpdateEmailEnabled sets the "email_enabled" field to the value that was provided on create.
func (u *ReminderPrefUpsert) UpdateEmailEnabled() *ReminderPrefUpsert {
	u.SetExcluded(reminderpref.FieldEmailEnabled)
	return u
}

// SetInAppEnabled sets the "in_app_enabled" field.
func (u *ReminderPrefUpsert) SetInAppEnabled(v bool) *ReminderPrefUpsert {
	u.Set(reminderpref.FieldInAppEnabled, v)
	return u
}

// UpdateInAppEnabled sets the "in_app_enabled" field to the value that was provided on create.
func (u *ReminderPrefUpsert) UpdateInAppEnabled() *ReminderPrefUpsert {
	u.SetExcluded(reminderpref.FieldInAppEnabled)
	return u
}

// SetOverrideEmail sets the "override_email" field.
func (u *ReminderPrefUpsert) SetOverrideEmail(v string) *ReminderPrefUpsert {
	u.Set(reminderpref.FieldOverrideEmail, v)
	return u
}

// UpdateOverrideEmail sets the "override_email" field to the value that was provided on create.
func (u *ReminderPrefUpsert) UpdateOverrideEmail() *ReminderPrefUpsert {
	u.SetExcluded(reminderpref.FieldOverrideEmail)
	return u
}

// ClearOverrideEmail clears the value of the "override_email" field.
func (u *ReminderPrefUpsert) ClearOverrideEmail() *ReminderPrefUpsert {
	u.SetNull(reminderpref.FieldOverrideEmail)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ReminderPref.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reminderpref.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReminderPrefUpsertOne) UpdateNewValues() *ReminderPrefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(reminderpref.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(reminderpref.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReminderPref.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReminderPrefUpsertOne) Ignore() *ReminderPrefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReminderPrefUpsertOne) DoNothing() *ReminderPrefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReminderPrefCreate.OnConflict
// documentation for more info.
func (u *ReminderPrefUpsertOne) Update(set func(*ReminderPrefUpsert)) *ReminderPrefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReminderPrefUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReminderPrefUpsertOne) SetUpdatedAt(v time.Time) *ReminderPrefUpsertOne {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReminderPrefUpsertOne) UpdateUpdatedAt() *ReminderPrefUpsertOne {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *ReminderPrefUpsertOne) SetUserID(v uuid.UUID) *ReminderPrefUpsertOne {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReminderPrefUpsertOne) UpdateUserID() *ReminderPrefUpsertOne {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.UpdateUserID()
	})
}

// SetDelayHours sets the "delay_hours" field.
func (u *ReminderPrefUpsertOne) SetDelayHours(v int) *ReminderPrefUpsertOne {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.SetDelayHours(v)
	})
}

// AddDelayHours adds v to the "delay_hours" field.
func (u *ReminderPrefUpsertOne) AddDelayHours(v int) *ReminderPrefUpsertOne {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.AddDelayHours(v)
	})
}

// UpdateDelayHours sets the "delay_hours" field to the value that was provided on create.
func (u *ReminderPrefUpsertOne) UpdateDelayHours() *ReminderPrefUpsertOne {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.UpdateDelayHours()
	})
}

// SetEmailEnabled sets the "email_enabled" field.
func (u *ReminderPrefUpsertOne) SetEmailEnabled(v bool) *ReminderPrefUpsertOne {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.SetEmailEnabled(v)
	})
}

// UpdateEmailEnabled sets the "email_enabled" field to the value that was provided on create.
func (u *ReminderPrefUpsertOne) UpdateEmailEnabled() *ReminderPrefUpsertOne {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.UpdateEmailEnabled()
	})
}

// SetInAppEnabled sets the "in_app_enabled" field.
func (u *ReminderPrefUpsertOne) SetInAppEnabled(v bool) *ReminderPrefUpsertOne {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.SetInAppEnabled(v)
	})
}

// UpdateInAppEnabled sets the "in_app_enabled" field to the value that was provided on create.
func (u *ReminderPrefUpsertOne) UpdateInAppEnabled() *ReminderPrefUpsertOne {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.UpdateInAppEnabled()
	})
}

// SetOverrideEmail sets the "override_email" field.
func (u *ReminderPrefUpsertOne) SetOverrideEmail(v string) *ReminderPrefUpsertOne {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.SetOverrideEmail(v)
	})
}

// UpdateOverrideEmail sets the "override_email" field to the value that was provided on create.
func (u *ReminderPrefUpsertOne) UpdateOverrideEmail() *ReminderPrefUpsertOne {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.UpdateOverrideEmail()
	})
}

// ClearOverrideEmail clears the value of the "override_email" field.
func (u *ReminderPrefUpsertOne) ClearOverrideEmail() *ReminderPrefUpsertOne {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.ClearOverrideEmail()
	})
}

// Exec executes the query.
func (u *ReminderPrefUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ReminderPrefCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReminderPrefUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReminderPrefUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ReminderPrefUpsertOne.ID is not supported by MySQL driver. Use ReminderPrefUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReminderPrefUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReminderPrefCreateBulk is the builder for creating many ReminderPref entities in bulk.
type ReminderPrefCreateBulk struct {
	config
	err      error
	builders []*ReminderPrefCreate
	conflict []sql.ConflictOption
}

// Save creates the ReminderPref entities in the database.
func (_c *ReminderPrefCreateBulk) Save(ctx context.Context) ([]*ReminderPref, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReminderPref, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReminderPrefMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReminderPrefCreateBulk) SaveX(ctx context.Context) []*ReminderPref {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReminderPrefCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReminderPrefCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReminderPref.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReminderPrefUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ReminderPrefCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReminderPrefUpsertBulk {
	_c.conflict = opts
	return &ReminderPrefUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReminderPref.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReminderPrefCreateBulk) OnConflictColumns(columns ...string) *ReminderPrefUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReminderPrefUpsertBulk{
		create: _c,
	}
}

// ReminderPrefUpsertBulk is the builder for "upsert"-ing
// a bulk of ReminderPref nodes.
type ReminderPrefUpsertBulk struct {
	create *ReminderPrefCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReminderPref.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reminderpref.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReminderPrefUpsertBulk) UpdateNewValues() *ReminderPrefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(reminderpref.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(reminderpref.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReminderPref.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReminderPrefUpsertBulk) Ignore() *ReminderPrefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReminderPrefUpsertBulk) DoNothing() *ReminderPrefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReminderPrefCreateBulk.OnConflict
// documentation for more info.
func (u *ReminderPrefUpsertBulk) Update(set func(*ReminderPrefUpsert)) *ReminderPrefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReminderPrefUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReminderPrefUpsertBulk) SetUpdatedAt(v time.Time) *ReminderPrefUpsertBulk {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReminderPrefUpsertBulk) UpdateUpdatedAt() *ReminderPrefUpsertBulk {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *ReminderPrefUpsertBulk) SetUserID(v uuid.UUID) *ReminderPrefUpsertBulk {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReminderPrefUpsertBulk) UpdateUserID() *ReminderPrefUpsertBulk {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.UpdateUserID()
	})
}

// SetDelayHours sets the "delay_hours" field.
func (u *ReminderPrefUpsertBulk) SetDelayHours(v int) *ReminderPrefUpsertBulk {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.SetDelayHours(v)
	})
}

// AddDelayHours adds v to the "delay_hours" field.
func (u *ReminderPrefUpsertBulk) AddDelayHours(v int) *ReminderPrefUpsertBulk {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.AddDelayHours(v)
	})
}

// UpdateDelayHours sets the "delay_hours" field to the value that was provided on create.
func (u *ReminderPrefUpsertBulk) UpdateDelayHours() *ReminderPrefUpsertBulk {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.UpdateDelayHours()
	})
}

// SetEmailEnabled sets the "email_enabled" field.
func (u *ReminderPrefUpsertBulk) SetEmailEnabled(v bool) *ReminderPrefUpsertBulk {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.SetEmailEnabled(v)
	})
}

// UpdateEmailEnabled sets the "email_enabled" field to the value that was provided on create.
func (u *ReminderPrefUpsertBulk) UpdateEmailEnabled() *ReminderPrefUpsertBulk {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.UpdateEmailEnabled()
	})
}

// SetInAppEnabled sets the "in_app_enabled" field.
func (u *ReminderPrefUpsertBulk) SetInAppEnabled(v bool) *ReminderPrefUpsertBulk {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.SetInAppEnabled(v)
	})
}

// UpdateInAppEnabled sets the "in_app_enabled" field to the value that was provided on create.
func (u *ReminderPrefUpsertBulk) UpdateInAppEnabled() *ReminderPrefUpsertBulk {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.UpdateInAppEnabled()
	})
}

// SetOverrideEmail sets the "override_email" field.
func (u *ReminderPrefUpsertBulk) SetOverrideEmail(v string) *ReminderPrefUpsertBulk {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.SetOverrideEmail(v)
	})
}

// UpdateOverrideEmail sets the "override_email" field to the value that was provided on create.
func (u *ReminderPrefUpsertBulk) UpdateOverrideEmail() *ReminderPrefUpsertBulk {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.UpdateOverrideEmail()
	})
}

// ClearOverrideEmail clears the value of the "override_email" field.
func (u *ReminderPrefUpsertBulk) ClearOverrideEmail() *ReminderPrefUpsertBulk {
	return u.Update(func(s *ReminderPrefUpsert) {
		s.ClearOverrideEmail()
	})
}

// Exec executes the query.
func (u *ReminderPrefUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ReminderPrefCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ReminderPrefCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReminderPrefUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
