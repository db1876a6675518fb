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
	"github.com/cabinetmed/cabinet_backend/internal/repo/medicalrecord"
	"github.com/google/uuid"
)

// MedicalRecordCreate is the builder for creating a MedicalRecord entity.
type MedicalRecordCreate struct {
	config
	mutation *MedicalRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MedicalRecordCreate) SetCreatedAt(v time.Time) *MedicalRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MedicalRecordCreate) SetNillableCreatedAt(v *time.Time) *MedicalRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MedicalRecordCreate) SetUpdatedAt(v time.Time) *MedicalRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MedicalRecordCreate) SetNillableUpdatedAt(v *time.Time) *MedicalRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *MedicalRecordCreate) SetPatientID(v uuid.UUID) *MedicalRecordCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *MedicalRecordCreate) SetAppointmentID(v uuid.UUID) *MedicalRecordCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_c *MedicalRecordCreate) SetNillableAppointmentID(v *uuid.UUID) *MedicalRecordCreate {
	if v != nil {
		_c.SetAppointmentID(*v)
	}
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *MedicalRecordCreate) SetAuthorID(v uuid.UUID) *MedicalRecordCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_c *MedicalRecordCreate) SetNillableAuthorID(v *uuid.UUID) *MedicalRecordCreate {
	if v != nil {
		_c.SetAuthorID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *MedicalRecordCreate) SetTitle(v string) *MedicalRecordCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *MedicalRecordCreate) SetBody(v string) *MedicalRecordCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *MedicalRecordCreate) SetNillableBody(v *string) *MedicalRecordCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MedicalRecordCreate) SetID(v uuid.UUID) *MedicalRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MedicalRecordCreate) SetNillableID(v *uuid.UUID) *MedicalRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MedicalRecordMutation object of the builder.
func (_c *MedicalRecordCreate) Mutation() *MedicalRecordMutation {
	return _c.mutation
}

// Save creates the MedicalRecord in the database.
func (_c *MedicalRecordCreate) Save(ctx context.Context) (*MedicalRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MedicalRecordCreate) SaveX(ctx context.Context) *MedicalRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MedicalRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := medicalrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := medicalrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := medicalrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MedicalRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MedicalRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "MedicalRecord.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "MedicalRecord.patient_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "MedicalRecord.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := medicalrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "MedicalRecord.title": %w`, err)}
		}
	}
	return nil
}

func (_c *MedicalRecordCreate) sqlSave(ctx context.Context) (*MedicalRecord, error) {
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

func (_c *MedicalRecordCreate) createSpec() (*MedicalRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MedicalRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(medicalrecord.Table, sqlgraph.NewFieldSpec(medicalrecord.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(medicalrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(medicalrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(medicalrecord.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(medicalrecord.FieldAppointmentID, field.TypeUUID, value)
		_node.AppointmentID = &value
	}
	if value, ok := _c.mutation.AuthorID(); ok {
		_spec.SetField(medicalrecord.FieldAuthorID, field.TypeUUID, value)
		_node.AuthorID = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(medicalrecord.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(medicalrecord.FieldBody, field.TypeString, value)
		_node.Body = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MedicalRecord.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicalRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicalRecordCreate) OnConflict(opts ...sql.ConflictOption) *MedicalRecordUpsertOne {
	_c.conflict = opts
	return &MedicalRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MedicalRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicalRecordCreate) OnConflictColumns(columns ...string) *MedicalRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicalRecordUpsertOne{
		create: _c,
	}
}

type (
	// MedicalRecordUpsertOne is the builder for "upsert"-ing
	//  one MedicalRecord node.
	MedicalRecordUpsertOne struct {
		create *MedicalRecordCreate
	}

	// MedicalRecordUpsert is the "OnConflict" setter.
	MedicalRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicalRecordUpsert) SetUpdatedAt(v time.Time) *MedicalRecordUpsert {
	u.Set(medicalrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicalRecordUpsert) UpdateUpdatedAt() *MedicalRecordUpsert {
	u.SetExcluded(medicalrecord.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *MedicalRecordUpsert) SetPatientID(v uuid.UUID) *MedicalRecordUpsert {
	u.Set(medicalrecord.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *MedicalRecordUpsert) UpdatePatientID() *MedicalRecordUpsert {
	u.SetExcluded(medicalrecord.FieldPatientID)
	return u
}

// SetAppointmentID sets the "appointment_id" field.
func (u *MedicalRecordUpsert) SetAppointmentID(v uuid.UUID) *MedicalRecordUpsert {
	u.Set(medicalrecord.FieldAppointmentID, v)
	return u
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *MedicalRecordUpsert) UpdateAppointmentID() *MedicalRecordUpsert {
	u.SetExcluded(medicalrecord.FieldAppointmentID)
	return u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (u *MedicalRecordUpsert) ClearAppointmentID() *MedicalRecordUpsert {
	u.SetNull(medicalrecord.FieldAppointmentID)
	return u
}

// SetAuthorID sets the "author_id" field.
func (u *MedicalRecordUpsert) SetAuthorID(v uuid.UUID) *MedicalRecordUpsert {
	u.Set(medicalrecord.FieldAuthorID, v)
	return u
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *MedicalRecordUpsert) UpdateAuthorID() *MedicalRecordUpsert {
	u.SetExcluded(medicalrecord.FieldAuthorID)
	return u
}

// ClearAuthorID clears the value of the "author_id" field.
func (u *MedicalRecordUpsert) ClearAuthorID() *MedicalRecordUpsert {
	u.SetNull(medicalrecord.FieldAuthorID)
	return u
}

// SetTitle sets the "title" field.
func (u *MedicalRecordUpsert) SetTitle(v string) *MedicalRecordUpsert {
	u.Set(medicalrecord.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *MedicalRecordUpsert) UpdateTitle() *MedicalRecordUpsert {
	u.SetExcluded(medicalrecord.FieldTitle)
	return u
}

// SetBody sets the "body" field.
func (u *MedicalRecordUpsert) SetBody(v string) *MedicalRecordUpsert {
	u.Set(medicalrecord.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MedicalRecordUpsert) UpdateBody() *MedicalRecordUpsert {
	u.SetExcluded(medicalrecord.FieldBody)
	return u
}

// ClearBody clears the value of the "body" field.
func (u *MedicalRecordUpsert) ClearBody() *MedicalRecordUpsert {
	u.SetNull(medicalrecord.FieldBody)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MedicalRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medicalrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicalRecordUpsertOne) UpdateNewValues() *MedicalRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(medicalrecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(medicalrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MedicalRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MedicalRecordUpsertOne) Ignore() *MedicalRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicalRecordUpsertOne) DoNothing() *MedicalRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicalRecordCreate.OnConflict
// documentation for more info.
func (u *MedicalRecordUpsertOne) Update(set func(*MedicalRecordUpsert)) *MedicalRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicalRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicalRecordUpsertOne) SetUpdatedAt(v time.Time) *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicalRecordUpsertOne) UpdateUpdatedAt() *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *MedicalRecordUpsertOne) SetPatientID(v uuid.UUID) *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *MedicalRecordUpsertOne) UpdatePatientID() *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdatePatientID()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *MedicalRecordUpsertOne) SetAppointmentID(v uuid.UUID) *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *MedicalRecordUpsertOne) UpdateAppointmentID() *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdateAppointmentID()
	})
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (u *MedicalRecordUpsertOne) ClearAppointmentID() *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.ClearAppointmentID()
	})
}

// SetAuthorID sets the "author_id" field.
func (u *MedicalRecordUpsertOne) SetAuthorID(v uuid.UUID) *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetAuthorID(v)
	})
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *MedicalRecordUpsertOne) UpdateAuthorID() *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdateAuthorID()
	})
}

// ClearAuthorID clears the value of the "author_id" field.
func (u *MedicalRecordUpsertOne) ClearAuthorID() *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.ClearAuthorID()
	})
}

// SetTitle sets the "title" field.
func (u *MedicalRecordUpsertOne) SetTitle(v string) *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *MedicalRecordUpsertOne) UpdateTitle() *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdateTitle()
	})
}

// SetBody sets the "body" field.
func (u *MedicalRecordUpsertOne) SetBody(v string) *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MedicalRecordUpsertOne) UpdateBody() *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdateBody()
	})
}

// ClearBody clears the value of the "body" field.
func (u *MedicalRecordUpsertOne) ClearBody() *MedicalRecordUpsertOne {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.ClearBody()
	})
}

// Exec executes the query.
func (u *MedicalRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicalRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicalRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MedicalRecordUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: MedicalRecordUpsertOne.ID is not supported by MySQL driver. Use MedicalRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MedicalRecordUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MedicalRecordCreateBulk is the builder for creating many MedicalRecord entities in bulk.
type MedicalRecordCreateBulk struct {
	config
	err      error
	builders []*MedicalRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the MedicalRecord entities in the database.
func (_c *MedicalRecordCreateBulk) Save(ctx context.Context) ([]*MedicalRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MedicalRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MedicalRecordMutation)
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
func (_c *MedicalRecordCreateBulk) SaveX(ctx context.Context) []*MedicalRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MedicalRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicalRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicalRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *MedicalRecordUpsertBulk {
	_c.conflict = opts
	return &MedicalRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MedicalRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicalRecordCreateBulk) OnConflictColumns(columns ...string) *MedicalRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicalRecordUpsertBulk{
		create: _c,
	}
}

// MedicalRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of MedicalRecord nodes.
type MedicalRecordUpsertBulk struct {
	create *MedicalRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MedicalRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medicalrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicalRecordUpsertBulk) UpdateNewValues() *MedicalRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(medicalrecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(medicalrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MedicalRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MedicalRecordUpsertBulk) Ignore() *MedicalRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicalRecordUpsertBulk) DoNothing() *MedicalRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicalRecordCreateBulk.OnConflict
// documentation for more info.
func (u *MedicalRecordUpsertBulk) Update(set func(*MedicalRecordUpsert)) *MedicalRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicalRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicalRecordUpsertBulk) SetUpdatedAt(v time.Time) *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicalRecordUpsertBulk) UpdateUpdatedAt() *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *MedicalRecordUpsertBulk) SetPatientID(v uuid.UUID) *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *MedicalRecordUpsertBulk) UpdatePatientID() *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdatePatientID()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *MedicalRecordUpsertBulk) SetAppointmentID(v uuid.UUID) *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *MedicalRecordUpsertBulk) UpdateAppointmentID() *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdateAppointmentID()
	})
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (u *MedicalRecordUpsertBulk) ClearAppointmentID() *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.ClearAppointmentID()
	})
}

// SetAuthorID sets the "author_id" field.
func (u *MedicalRecordUpsertBulk) SetAuthorID(v uuid.UUID) *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetAuthorID(v)
	})
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *MedicalRecordUpsertBulk) UpdateAuthorID() *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdateAuthorID()
	})
}

// ClearAuthorID clears the value of the "author_id" field.
func (u *MedicalRecordUpsertBulk) ClearAuthorID() *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.ClearAuthorID()
	})
}

// SetTitle sets the "title" field.
func (u *MedicalRecordUpsertBulk) SetTitle(v string) *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *MedicalRecordUpsertBulk) UpdateTitle() *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdateTitle()
	})
}

// SetBody sets the "body" field.
func (u *MedicalRecordUpsertBulk) SetBody(v string) *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MedicalRecordUpsertBulk) UpdateBody() *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.UpdateBody()
	})
}

// ClearBody clears the value of the "body" field.
func (u *MedicalRecordUpsertBulk) ClearBody() *MedicalRecordUpsertBulk {
	return u.Update(func(s *MedicalRecordUpsert) {
		s.ClearBody()
	})
}

// Exec executes the query.
func (u *MedicalRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the MedicalRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicalRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicalRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
