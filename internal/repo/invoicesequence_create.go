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
)

// InvoiceSequenceCreate is the builder for creating a InvoiceSequence entity.
type InvoiceSequenceCreate struct {
	config
	mutation *InvoiceSequenceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetNextValue sets the "next_value" field.
func (_c *InvoiceSequenceCreate) SetNextValue(v int64) *InvoiceSequenceCreate {
	_c.mutation.SetNextValue(v)
	return _c
}

// SetNillableNextValue sets the "next_value" field if the given value is not nil.
func (_c *InvoiceSequenceCreate) SetNillableNextValue(v *int64) *InvoiceSequenceCreate {
	if v != nil {
		_c.SetNextValue(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceSequenceCreate) SetID(v int) *InvoiceSequenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InvoiceSequenceMutation object of the builder.
func (_c *InvoiceSequenceCreate) Mutation() *InvoiceSequenceMutation {
	return _c.mutation
}

// Save creates the InvoiceSequence in the database.
func (_c *InvoiceSequenceCreate) Save(ctx context.Context) (*InvoiceSequence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceSequenceCreate) SaveX(ctx context.Context) *InvoiceSequence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceSequenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceSequenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceSequenceCreate) defaults() {
	if _, ok := _c.mutation.NextValue(); !ok {
		v := invoicesequence.DefaultNextValue
		_c.mutation.SetNextValue(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceSequenceCreate) check() error {
	if _, ok := _c.mutation.NextValue(); !ok {
		return &ValidationError{Name: "next_value", err: errors.New(`repo: missing required field "InvoiceSequence.next_value"`)}
	}
	return nil
}

func (_c *InvoiceSequenceCreate) sqlSave(ctx context.Context) (*InvoiceSequence, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceSequenceCreate) createSpec() (*InvoiceSequence, *sqlgraph.CreateSpec) {
	var (
		_node = &InvoiceSequence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoicesequence.Table, sqlgraph.NewFieldSpec(invoicesequence.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NextValue(); ok {
		_spec.SetField(invoicesequence.FieldNextValue, field.TypeInt64, value)
		_node.NextValue = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InvoiceSequence.Create().
//		SetNextValue(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvoiceSequenceUpsert) {
//			SetNextValue(v+v).
//		}).
//		Exec(ctx)
func (_c *InvoiceSequenceCreate) OnConflict(opts ...sql.ConflictOption) *InvoiceSequenceUpsertOne {
	_c.conflict = opts
	return &InvoiceSequenceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InvoiceSequence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InvoiceSequenceCreate) OnConflictColumns(columns ...string) *InvoiceSequenceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InvoiceSequenceUpsertOne{
		create: _c,
	}
}

type (
	// InvoiceSequenceUpsertOne is the builder for "upsert"-ing
	//  one InvoiceSequence node.
	InvoiceSequenceUpsertOne struct {
		create *InvoiceSequenceCreate
	}

	// InvoiceSequenceUpsert is the "OnConflict" setter.
	InvoiceSequenceUpsert struct {
		*sql.UpdateSet
	}
)

// SetNextValue sets the "next_value" field.
func (u *InvoiceSequenceUpsert) SetNextValue(v int64) *InvoiceSequenceUpsert {
	u.Set(invoicesequence.FieldNextValue, v)
	return u
}

// UpdateNextValue sets the "next_value" field to the value that was provided on create.
func (u *InvoiceSequenceUpsert) UpdateNextValue() *InvoiceSequenceUpsert {
	u.SetExcluded(invoicesequence.FieldNextValue)
	return u
}

// AddNextValue adds v to the "next_value" field.
func (u *InvoiceSequenceUpsert) AddNextValue(v int64) *InvoiceSequenceUpsert {
	u.Add(invoicesequence.FieldNextValue, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.InvoiceSequence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(invoicesequence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvoiceSequenceUpsertOne) UpdateNewValues() *InvoiceSequenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(invoicesequence.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InvoiceSequence.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InvoiceSequenceUpsertOne) Ignore() *InvoiceSequenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvoiceSequenceUpsertOne) DoNothing() *InvoiceSequenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvoiceSequenceCreate.OnConflict
// documentation for more info.
func (u *InvoiceSequenceUpsertOne) Update(set func(*InvoiceSequenceUpsert)) *InvoiceSequenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvoiceSequenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetNextValue sets the "next_value" field.
func (u *InvoiceSequenceUpsertOne) SetNextValue(v int64) *InvoiceSequenceUpsertOne {
	return u.Update(func(s *InvoiceSequenceUpsert) {
		s.SetNextValue(v)
	})
}

// AddNextValue adds v to the "next_value" field.
func (u *InvoiceSequenceUpsertOne) AddNextValue(v int64) *InvoiceSequenceUpsertOne {
	return u.Update(func(s *InvoiceSequenceUpsert) {
		s.AddNextValue(v)
	})
}

// UpdateNextValue sets the "next_value" field to the value that was provided on create.
func (u *InvoiceSequenceUpsertOne) UpdateNextValue() *InvoiceSequenceUpsertOne {
	return u.Update(func(s *InvoiceSequenceUpsert) {
		s.UpdateNextValue()
	})
}

// Exec executes the query.
func (u *InvoiceSequenceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InvoiceSequenceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvoiceSequenceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InvoiceSequenceUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InvoiceSequenceUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InvoiceSequenceCreateBulk is the builder for creating many InvoiceSequence entities in bulk.
type InvoiceSequenceCreateBulk struct {
	config
	err      error
	builders []*InvoiceSequenceCreate
	conflict []sql.ConflictOption
}

// Save creates the InvoiceSequence entities in the database.
func (_c *InvoiceSequenceCreateBulk) Save(ctx context.Context) ([]*InvoiceSequence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvoiceSequence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceSequenceMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *InvoiceSequenceCreateBulk) SaveX(ctx context.Context) []*InvoiceSequence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceSequenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceSequenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InvoiceSequence.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvoiceSequenceUpsert) {
//			SetNextValue(v+v).
//		}).
//		Exec(ctx)
func (_c *InvoiceSequenceCreateBulk) OnConflict(opts ...sql.ConflictOption) *InvoiceSequenceUpsertBulk {
	_c.conflict = opts
	return &InvoiceSequenceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InvoiceSequence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InvoiceSequenceCreateBulk) OnConflictColumns(columns ...string) *InvoiceSequenceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InvoiceSequenceUpsertBulk{
		create: _c,
	}
}

// InvoiceSequenceUpsertBulk is the builder for "upsert"-ing
// a bulk of InvoiceSequence nodes.
type InvoiceSequenceUpsertBulk struct {
	create *InvoiceSequenceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InvoiceSequence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(invoicesequence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvoiceSequenceUpsertBulk) UpdateNewValues() *InvoiceSequenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(invoicesequence.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InvoiceSequence.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InvoiceSequenceUpsertBulk) Ignore() *InvoiceSequenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvoiceSequenceUpsertBulk) DoNothing() *InvoiceSequenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvoiceSequenceCreateBulk.OnConflict
// documentation for more info.
func (u *InvoiceSequenceUpsertBulk) Update(set func(*InvoiceSequenceUpsert)) *InvoiceSequenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvoiceSequenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetNextValue sets the "next_value" field.
func (u *InvoiceSequenceUpsertBulk) SetNextValue(v int64) *InvoiceSequenceUpsertBulk {
	return u.Update(func(s *InvoiceSequenceUpsert) {
		s.SetNextValue(v)
	})
}

// AddNextValue adds v to the "next_value" field.
func (u *InvoiceSequenceUpsertBulk) AddNextValue(v int64) *InvoiceSequenceUpsertBulk {
	return u.Update(func(s *InvoiceSequenceUpsert) {
		s.AddNextValue(v)
	})
}

// UpdateNextValue sets the "next_value" field to the value that was provided on create.
func (u *InvoiceSequenceUpsertBulk) UpdateNextValue() *InvoiceSequenceUpsertBulk {
	return u.Update(func(s *InvoiceSequenceUpsert) {
		s.UpdateNextValue()
	})
}

// Exec executes the query.
func (u *InvoiceSequenceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the InvoiceSequenceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InvoiceSequenceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvoiceSequenceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
