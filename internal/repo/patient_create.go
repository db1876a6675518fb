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
	"github.com/cabinetmed/cabinet_backend/internal/repo/patient"
	"github.com/google/uuid"
)

// PatientCreate is the builder for creating a Patient entity.
type PatientCreate struct {
	config
	mutation *PatientMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientCreate) SetCreatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCreatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientCreate) SetUpdatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableUpdatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PatientCreate) SetDeletedAt(v time.Time) *PatientCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableDeletedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PatientCreate) SetUserID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFileNumber sets the "file_number" field.
func (_c *PatientCreate) SetFileNumber(v string) *PatientCreate {
	_c.mutation.SetFileNumber(v)
	return _c
}

// SetNillableFileNumber sets the "file_number" field if the given value is not nil.
func (_c *PatientCreate) SetNillableFileNumber(v *string) *PatientCreate {
	if v != nil {
		_c.SetFileNumber(*v)
	}
	return _c
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_c *PatientCreate) SetDateOfBirth(v time.Time) *PatientCreate {
	_c.mutation.SetDateOfBirth(v)
	return _c
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_c *PatientCreate) SetNillableDateOfBirth(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetDateOfBirth(*v)
	}
	return _c
}

// SetReferralSource sets the "referral_source" field.
func (_c *PatientCreate) SetReferralSource(v string) *PatientCreate {
	_c.mutation.SetReferralSource(v)
	return _c
}

// SetNillableReferralSource sets the "referral_source" field if the given value is not nil.
func (_c *PatientCreate) SetNillableReferralSource(v *string) *PatientCreate {
	if v != nil {
		_c.SetReferralSource(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *PatientCreate) SetNotes(v string) *PatientCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *PatientCreate) SetNillableNotes(v *string) *PatientCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientCreate) SetID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PatientMutation object of the builder.
func (_c *PatientCreate) Mutation() *PatientMutation {
	return _c.mutation
}

// Save creates the Patient in the database.
func (_c *PatientCreate) Save(ctx context.Context) (*Patient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientCreate) SaveX(ctx context.Context) *Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patient.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patient.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patient.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Patient.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Patient.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Patient.user_id"`)}
	}
	return nil
}

func (_c *PatientCreate) sqlSave(ctx context.Context) (*Patient, error) {
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

func (_c *PatientCreate) createSpec() (*Patient, *sqlgraph.CreateSpec) {
	var (
		_node = &Patient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patient.Table, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patient.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(patient.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FileNumber(); ok {
		_spec.SetField(patient.FieldFileNumber, field.TypeString, value)
		_node.FileNumber = &value
	}
	if value, ok := _c.mutation.DateOfBirth(); ok {
		_spec.SetField(patient.FieldDateOfBirth, field.TypeTime, value)
		_node.DateOfBirth = &value
	}
	if value, ok := _c.mutation.ReferralSource(); ok {
		_spec.SetField(patient.FieldReferralSource, field.TypeString, value)
		_node.ReferralSource = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(patient.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreate) OnConflict(opts ...sql.ConflictOption) *PatientUpsertOne {
	_c.conflict = opts
	return &PatientUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreate) OnConflictColumns(columns ...string) *PatientUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertOne{
		create: _c,
	}
}

type (
	// PatientUpsertOne is the builder for "upsert"-ing
	//  one Patient node.
	PatientUpsertOne struct {
		create *PatientCreate
	}

	// PatientUpsert is the "OnConflict" setter.
	PatientUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsert) SetUpdatedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateUpdatedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsert) SetDeletedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateDeletedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsert) ClearDeletedAt() *PatientUpsert {
	u.SetNull(patient.FieldDeletedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsert) SetUserID(v uuid.UUID) *PatientUpsert {
	u.Set(patient.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsert) UpdateUserID() *PatientUpsert {
	u.SetExcluded(patient.FieldUserID)
	return u
}

// SetFileNumber sets the "file_number" field.
func (u *PatientUpsert) SetFileNumber(v string) *PatientUpsert {
	u.Set(patient.FieldFileNumber, v)
	return u
}

// UpdateFileNumber sets the "file_number" field to the value that was provided on create.
func (u *PatientUpsert) UpdateFileNumber() *PatientUpsert {
	u.SetExcluded(patient.FieldFileNumber)
	return u
}

// ClearFileNumber clears the value of the "file_number" field.
func (u *PatientUpsert) ClearFileNumber() *PatientUpsert {
	u.SetNull(patient.FieldFileNumber)
	return u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PatientUpsert) SetDateOfBirth(v time.Time) *PatientUpsert {
	u.Set(patient.FieldDateOfBirth, v)
	return u
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PatientUpsert) UpdateDateOfBirth() *PatientUpsert {
	u.SetExcluded(patient.FieldDateOfBirth)
	return u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *PatientUpsert) ClearDateOfBirth() *PatientUpsert {
	u.SetNull(patient.FieldDateOfBirth)
	return u
}

// SetReferralSource sets the "referral_source" field.
func (u *PatientUpsert) SetReferralSource(v string) *PatientUpsert {
	u.Set(patient.FieldReferralSource, v)
	return u
}

// UpdateReferralSource sets the "referral_source" field to the value that was provided on create.
func (u *PatientUpsert) UpdateReferralSource() *PatientUpsert {
	u.SetExcluded(patient.FieldReferralSource)
	return u
}

// ClearReferralSource clears the value of the "referral_source" field.
func (u *PatientUpsert) ClearReferralSource() *PatientUpsert {
	u.SetNull(patient.FieldReferralSource)
	return u
}

// SetNotes sets the "notes" field.
func (u *PatientUpsert) SetNotes(v string) *PatientUpsert {
	u.Set(patient.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PatientUpsert) UpdateNotes() *PatientUpsert {
	u.SetExcluded(patient.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *PatientUpsert) ClearNotes() *PatientUpsert {
	u.SetNull(patient.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertOne) UpdateNewValues() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patient.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patient.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientUpsertOne) Ignore() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertOne) DoNothing() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreate.OnConflict
// documentation for more info.
func (u *PatientUpsertOne) Update(set func(*PatientUpsert)) *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertOne) SetUpdatedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateUpdatedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsertOne) SetDeletedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateDeletedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsertOne) ClearDeletedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsertOne) SetUserID(v uuid.UUID) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateUserID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUserID()
	})
}

// SetFileNumber sets the "file_number" field.
func (u *PatientUpsertOne) SetFileNumber(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetFileNumber(v)
	})
}

// UpdateFileNumber sets the "file_number" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateFileNumber() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFileNumber()
	})
}

// ClearFileNumber clears the value of the "file_number" field.
func (u *PatientUpsertOne) ClearFileNumber() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearFileNumber()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PatientUpsertOne) SetDateOfBirth(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateDateOfBirth() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDateOfBirth()
	})
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *PatientUpsertOne) ClearDateOfBirth() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDateOfBirth()
	})
}

// SetReferralSource sets the "referral_source" field.
func (u *PatientUpsertOne) SetReferralSource(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetReferralSource(v)
	})
}

// UpdateReferralSource sets the "referral_source" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateReferralSource() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateReferralSource()
	})
}

// ClearReferralSource clears the value of the "referral_source" field.
func (u *PatientUpsertOne) ClearReferralSource() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearReferralSource()
	})
}

// SetNotes sets the "notes" field.
func (u *PatientUpsertOne) SetNotes(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateNotes() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PatientUpsertOne) ClearNotes() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *PatientUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PatientUpsertOne.ID is not supported by MySQL driver. Use PatientUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientCreateBulk is the builder for creating many Patient entities in bulk.
type PatientCreateBulk struct {
	config
	err      error
	builders []*PatientCreate
	conflict []sql.ConflictOption
}

// Save creates the Patient entities in the database.
func (_c *PatientCreateBulk) Save(ctx context.Context) ([]*Patient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Patient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientMutation)
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
func (_c *PatientCreateBulk) SaveX(ctx context.Context) []*Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientUpsertBulk {
	_c.conflict = opts
	return &PatientUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflictColumns(columns ...string) *PatientUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertBulk{
		create: _c,
	}
}

// PatientUpsertBulk is the builder for "upsert"-ing
// a bulk of Patient nodes.
type PatientUpsertBulk struct {
	create *PatientCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertBulk) UpdateNewValues() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patient.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patient.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientUpsertBulk) Ignore() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertBulk) DoNothing() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreateBulk.OnConflict
// documentation for more info.
func (u *PatientUpsertBulk) Update(set func(*PatientUpsert)) *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertBulk) SetUpdatedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateUpdatedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsertBulk) SetDeletedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateDeletedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsertBulk) ClearDeletedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsertBulk) SetUserID(v uuid.UUID) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateUserID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUserID()
	})
}

// SetFileNumber sets the "file_number" field.
func (u *PatientUpsertBulk) SetFileNumber(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetFileNumber(v)
	})
}

// UpdateFileNumber sets the "file_number" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateFileNumber() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFileNumber()
	})
}

// ClearFileNumber clears the value of the "file_number" field.
func (u *PatientUpsertBulk) ClearFileNumber() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearFileNumber()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PatientUpsertBulk) SetDateOfBirth(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateDateOfBirth() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDateOfBirth()
	})
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *PatientUpsertBulk) ClearDateOfBirth() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDateOfBirth()
	})
}

// SetReferralSource sets the "referral_source" field.
func (u *PatientUpsertBulk) SetReferralSource(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetReferralSource(v)
	})
}

// UpdateReferralSource sets the "referral_source" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateReferralSource() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateReferralSource()
	})
}

// ClearReferralSource clears the value of the "referral_source" field.
func (u *PatientUpsertBulk) ClearReferralSource() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearReferralSource()
	})
}

// SetNotes sets the "notes" field.
func (u *PatientUpsertBulk) SetNotes(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateNotes() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PatientUpsertBulk) ClearNotes() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *PatientUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PatientCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
