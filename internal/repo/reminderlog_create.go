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
	"github.com/cabinetmed/cabinet_backend/internal/repo/reminderlog"
	"github.com/google/uuid"
)

// ReminderLogCreate is the builder for creating a ReminderLog entity.
type ReminderLogCreate struct {
	config
	mutation *ReminderLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *ReminderLogCreate) SetAppointmentID(v uuid.UUID) *ReminderLogCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *ReminderLogCreate) SetChannel(v reminderlog.Channel) *ReminderLogCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *ReminderLogCreate) SetSentAt(v time.Time) *ReminderLogCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ReminderLogCreate) SetID(v uuid.UUID) *ReminderLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReminderLogCreate) SetNillableID(v *uuid.UUID) *ReminderLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ReminderLogMutation object of the builder.
func (_c *ReminderLogCreate) Mutation() *ReminderLogMutation {
	return _c.mutation
}

// Save creates the ReminderLog in the database.
func (_c *ReminderLogCreate) Save(ctx context.Context) (*ReminderLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReminderLogCreate) SaveX(ctx context.Context) *ReminderLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReminderLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReminderLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReminderLogCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := reminderlog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReminderLogCreate) check() error {
	if _, ok := _c.mutation.AppointmentID(); !ok {
		return &ValidationError{Name: "appointment_id", err: errors.New(`repo: missing required field "ReminderLog.appointment_id"`)}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`repo: missing required field "ReminderLog.channel"`)}
	}
	if v, ok := _c.mutation.Channel(); ok {
		if err := reminderlog.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`repo: validator failed for field "ReminderLog.channel": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SentAt(); !ok {
		return &ValidationError{Name: "sent_at", err: errors.New(`repo: missing required field "ReminderLog.sent_at"`)}
	}
	return nil
}

func (_c *ReminderLogCreate) sqlSave(ctx context.Context) (*ReminderLog, error) {
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

func (_c *ReminderLogCreate) createSpec() (*ReminderLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ReminderLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reminderlog.Table, sqlgraph.NewFieldSpec(reminderlog.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(reminderlog.FieldAppointmentID, field.TypeUUID, value)
		_node.AppointmentID = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(reminderlog.FieldChannel, field.TypeEnum, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(reminderlog.FieldSentAt, field.TypeTime, value)
		_node.SentAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReminderLog.Create().
//		SetAppointmentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReminderLogUpsert) {
//			SetAppointmentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReminderLogCreate) OnConflict(opts ...sql.ConflictOption) *ReminderLogUpsertOne {
	_c.conflict = opts
	return &ReminderLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReminderLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReminderLogCreate) OnConflictColumns(columns ...string) *ReminderLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReminderLogUpsertOne{
		create: _c,
	}
}

type (
	// ReminderLogUpsertOne is the builder for "upsert"-ing
	//  one ReminderLog node.
	ReminderLogUpsertOne struct {
		create *ReminderLogCreate
	}

	// ReminderLogUpsert is the "OnConflict" setter.
	ReminderLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetAppointmentID sets the "appointment_id" field.
func (u *ReminderLogUpsert) SetAppointmentID(v uuid.UUID) *ReminderLogUpsert {
	u.Set(reminderlog.FieldAppointmentID, v)
	return u
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *ReminderLogUpsert) UpdateAppointmentID() *ReminderLogUpsert {
	u.SetExcluded(reminderlog.FieldAppointmentID)
	return u
}

// SetChannel sets the "channel" field.
func (u *ReminderLogUpsert) SetChannel(v reminderlog.Channel) *ReminderLogUpsert {
	u.Set(reminderlog.FieldChannel, v)
	return u
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *ReminderLogUpsert) UpdateChannel() *ReminderLogUpsert {
	u.SetExcluded(reminderlog.FieldChannel)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ReminderLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reminderlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReminderLogUpsertOne) UpdateNewValues() *ReminderLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(reminderlog.FieldID)
		}
		if _, exists := u.create.mutation.SentAt(); exists {
			s.SetIgnore(reminderlog.FieldSentAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReminderLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReminderLogUpsertOne) Ignore() *ReminderLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReminderLogUpsertOne) DoNothing() *ReminderLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReminderLogCreate.OnConflict
// documentation for more info.
func (u *ReminderLogUpsertOne) Update(set func(*ReminderLogUpsert)) *ReminderLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReminderLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetAppointmentID sets the "appointment_id" field.
func (u *ReminderLogUpsertOne) SetAppointmentID(v uuid.UUID) *ReminderLogUpsertOne {
	return u.Update(func(s *ReminderLogUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *ReminderLogUpsertOne) UpdateAppointmentID() *ReminderLogUpsertOne {
	return u.Update(func(s *ReminderLogUpsert) {
		s.UpdateAppointmentID()
	})
}

// SetChannel sets the "channel" field.
func (u *ReminderLogUpsertOne) SetChannel(v reminderlog.Channel) *ReminderLogUpsertOne {
	return u.Update(func(s *ReminderLogUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *ReminderLogUpsertOne) UpdateChannel() *ReminderLogUpsertOne {
	return u.Update(func(s *ReminderLogUpsert) {
		s.UpdateChannel()
	})
}

// Exec executes the query.
func (u *ReminderLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ReminderLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReminderLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReminderLogUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ReminderLogUpsertOne.ID is not supported by MySQL driver. Use ReminderLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReminderLogUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReminderLogCreateBulk is the builder for creating many ReminderLog entities in bulk.
type ReminderLogCreateBulk struct {
	config
	err      error
	builders []*ReminderLogCreate
	conflict []sql.ConflictOption
}

// Save creates the ReminderLog entities in the database.
func (_c *ReminderLogCreateBulk) Save(ctx context.Context) ([]*ReminderLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReminderLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReminderLogMutation)
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
func (_c *ReminderLogCreateBulk) SaveX(ctx context.Context) []*ReminderLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReminderLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReminderLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReminderLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReminderLogUpsert) {
//			SetAppointmentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReminderLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReminderLogUpsertBulk {
	_c.conflict = opts
	return &ReminderLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReminderLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReminderLogCreateBulk) OnConflictColumns(columns ...string) *ReminderLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReminderLogUpsertBulk{
		create: _c,
	}
}

// ReminderLogUpsertBulk is the builder for "upsert"-ing
// a bulk of ReminderLog nodes.
type ReminderLogUpsertBulk struct {
	create *ReminderLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReminderLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reminderlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReminderLogUpsertBulk) UpdateNewValues() *ReminderLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(reminderlog.FieldID)
			}
			if _, exists := b.mutation.SentAt(); exists {
				s.SetIgnore(reminderlog.FieldSentAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReminderLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReminderLogUpsertBulk) Ignore() *ReminderLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReminderLogUpsertBulk) DoNothing() *ReminderLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReminderLogCreateBulk.OnConflict
// documentation for more info.
func (u *ReminderLogUpsertBulk) Update(set func(*ReminderLogUpsert)) *ReminderLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReminderLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetAppointmentID sets the "appointment_id" field.
func (u *ReminderLogUpsertBulk) SetAppointmentID(v uuid.UUID) *ReminderLogUpsertBulk {
	return u.Update(func(s *ReminderLogUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *ReminderLogUpsertBulk) UpdateAppointmentID() *ReminderLogUpsertBulk {
	return u.Update(func(s *ReminderLogUpsert) {
		s.UpdateAppointmentID()
	})
}

// SetChannel sets the "channel" field.
func (u *ReminderLogUpsertBulk) SetChannel(v reminderlog.Channel) *ReminderLogUpsertBulk {
	return u.Update(func(s *ReminderLogUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *ReminderLogUpsertBulk) UpdateChannel() *ReminderLogUpsertBulk {
	return u.Update(func(s *ReminderLogUpsert) {
		s.UpdateChannel()
	})
}

// Exec executes the query.
func (u *ReminderLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ReminderLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ReminderLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReminderLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
