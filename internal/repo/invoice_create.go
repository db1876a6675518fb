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
	"github.com/cabinetmed/cabinet_backend/internal/repo/invoice"
	"github.com/google/uuid"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceCreate) SetCreatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCreatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InvoiceCreate) SetUpdatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableUpdatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetNumber sets the "number" field.
func (_c *InvoiceCreate) SetNumber(v string) *InvoiceCreate {
	_c.mutation.SetNumber(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *InvoiceCreate) SetPatientID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *InvoiceCreate) SetAppointmentID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableAppointmentID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetAppointmentID(*v)
	}
	return _c
}

// SetAmountCents sets the "amount_cents" field.
func (_c *InvoiceCreate) SetAmountCents(v int64) *InvoiceCreate {
	_c.mutation.SetAmountCents(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *InvoiceCreate) SetStatus(v invoice.Status) *InvoiceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableStatus(v *invoice.Status) *InvoiceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSettledAt sets the "settled_at" field.
func (_c *InvoiceCreate) SetSettledAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetSettledAt(v)
	return _c
}

// SetNillableSettledAt sets the "settled_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSettledAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetSettledAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceCreate) SetID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the InvoiceMutation object of the builder.
func (_c *InvoiceCreate) Mutation() *InvoiceMutation {
	return _c.mutation
}

// Save creates the Invoice in the database.
func (_c *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := invoice.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Invoice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Invoice.updated_at"`)}
	}
	if _, ok := _c.mutation.Number(); !ok {
		return &ValidationError{Name: "number", err: errors.New(`repo: missing required field "Invoice.number"`)}
	}
	if v, ok := _c.mutation.Number(); ok {
		if err := invoice.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`repo: validator failed for field "Invoice.number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Invoice.patient_id"`)}
	}
	if _, ok := _c.mutation.AmountCents(); !ok {
		return &ValidationError{Name: "amount_cents", err: errors.New(`repo: missing required field "Invoice.amount_cents"`)}
	}
	if v, ok := _c.mutation.AmountCents(); ok {
		if err := invoice.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`repo: validator failed for field "Invoice.amount_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Invoice.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	return nil
}

func (_c *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
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

func (_c *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Number(); ok {
		_spec.SetField(invoice.FieldNumber, field.TypeString, value)
		_node.Number = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(invoice.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(invoice.FieldAppointmentID, field.TypeUUID, value)
		_node.AppointmentID = &value
	}
	if value, ok := _c.mutation.AmountCents(); ok {
		_spec.SetField(invoice.FieldAmountCents, field.TypeInt64, value)
		_node.AmountCents = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SettledAt(); ok {
		_spec.SetField(invoice.FieldSettledAt, field.TypeTime, value)
		_node.SettledAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Invoice.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvoiceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InvoiceCreate) OnConflict(opts ...sql.ConflictOption) *InvoiceUpsertOne {
	_c.conflict = opts
	return &InvoiceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InvoiceCreate) OnConflictColumns(columns ...string) *InvoiceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InvoiceUpsertOne{
		create: _c,
	}
}

type (
	// InvoiceUpsertOne is the builder for "upsert"-ing
	//  one Invoice node.
	InvoiceUpsertOne struct {
		create *InvoiceCreate
	}

	// InvoiceUpsert is the "OnConflict" setter.
	InvoiceUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *InvoiceUpsert) SetUpdatedAt(v time.Time) *InvoiceUpsert {
	u.Set(invoice.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateUpdatedAt() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldUpdatedAt)
	return u
}

// SetNumber sets the "number" field.
func (u *InvoiceUpsert) SetNumber(v string) *InvoiceUpsert {
	u.Set(invoice.FieldNumber, v)
	return u
}

// UpdateNumber sets the "number" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateNumber() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldNumber)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *InvoiceUpsert) SetPatientID(v uuid.UUID) *InvoiceUpsert {
	u.Set(invoice.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdatePatientID() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldPatientID)
	return u
}

// SetAppointmentID sets the "appointment_id" field.
func (u *InvoiceUpsert) SetAppointmentID(v uuid.UUID) *InvoiceUpsert {
	u.Set(invoice.FieldAppointmentID, v)
	return u
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateAppointmentID() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldAppointmentID)
	return u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (u *InvoiceUpsert) ClearAppointmentID() *InvoiceUpsert {
	u.SetNull(invoice.FieldAppointmentID)
	return u
}

// SetAmountCents sets the "amount_cents" field.
func (u *InvoiceUpsert) SetAmountCents(v int64) *InvoiceUpsert {
	u.Set(invoice.FieldAmountCents, v)
	return u
}

// UpdateAmountCents sets the "amount_cents" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateAmountCents() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldAmountCents)
	return u
}

// AddAmountCents adds v to the "amount_cents" field.
func (u *InvoiceUpsert) AddAmountCents(v int64) *InvoiceUpsert {
	u.Add(invoice.FieldAmountCents, v)
	return u
}

// SetStatus sets the "status" field.
func (u *InvoiceUpsert) SetStatus(v invoice.Status) *InvoiceUpsert {
	u.Set(invoice.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateStatus() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldStatus)
	return u
}

// SetSettledAt sets the "settled_at" field.
func (u *InvoiceUpsert) SetSettledAt(v time.Time) *InvoiceUpsert {
	u.Set(invoice.FieldSettledAt, v)
	return u
}

// UpdateSettledAt sets the "settled_at" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateSettledAt() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldSettledAt)
	return u
}

// ClearSettledAt clears the value of the "settled_at" field.
func (u *InvoiceUpsert) ClearSettledAt() *InvoiceUpsert {
	u.SetNull(invoice.FieldSettledAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(invoice.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvoiceUpsertOne) UpdateNewValues() *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(invoice.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(invoice.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Invoice.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InvoiceUpsertOne) Ignore() *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvoiceUpsertOne) DoNothing() *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvoiceCreate.OnConflict
// documentation for more info.
func (u *InvoiceUpsertOne) Update(set func(*InvoiceUpsert)) *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvoiceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InvoiceUpsertOne) SetUpdatedAt(v time.Time) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateUpdatedAt() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetNumber sets the "number" field.
func (u *InvoiceUpsertOne) SetNumber(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetNumber(v)
	})
}

// UpdateNumber sets the "number" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateNumber() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateNumber()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *InvoiceUpsertOne) SetPatientID(v uuid.UUID) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdatePatientID() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdatePatientID()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *InvoiceUpsertOne) SetAppointmentID(v uuid.UUID) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateAppointmentID() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateAppointmentID()
	})
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (u *InvoiceUpsertOne) ClearAppointmentID() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearAppointmentID()
	})
}

// SetAmountCents sets the "amount_cents" field.
func (u *InvoiceUpsertOne) SetAmountCents(v int64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetAmountCents(v)
	})
}

// AddAmountCents adds v to the "amount_cents" field.
func (u *InvoiceUpsertOne) AddAmountCents(v int64) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddAmountCents(v)
	})
}

// UpdateAmountCents sets the "amount_cents" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateAmountCents() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateAmountCents()
	})
}

// SetStatus sets the "status" field.
func (u *InvoiceUpsertOne) SetStatus(v invoice.Status) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateStatus() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateStatus()
	})
}

// SetSettledAt sets the "settled_at" field.
func (u *InvoiceUpsertOne) SetSettledAt(v time.Time) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetSettledAt(v)
	})
}

// UpdateSettledAt sets the "settled_at" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateSettledAt() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateSettledAt()
	})
}

// ClearSettledAt clears the value of the "settled_at" field.
func (u *InvoiceUpsertOne) ClearSettledAt() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearSettledAt()
	})
}

// Exec executes the query.
func (u *InvoiceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InvoiceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvoiceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InvoiceUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: InvoiceUpsertOne.ID is not supported by MySQL driver. Use InvoiceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InvoiceUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
	conflict []sql.ConflictOption
}

// Save creates the Invoice entities in the database.
func (_c *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Invoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
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
func (_c *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Invoice.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvoiceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InvoiceCreateBulk) OnConflict(opts ...sql.ConflictOption) *InvoiceUpsertBulk {
	_c.conflict = opts
	return &InvoiceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InvoiceCreateBulk) OnConflictColumns(columns ...string) *InvoiceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InvoiceUpsertBulk{
		create: _c,
	}
}

// InvoiceUpsertBulk is the builder for "upsert"-ing
// a bulk of Invoice nodes.
type InvoiceUpsertBulk struct {
	create *InvoiceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(invoice.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvoiceUpsertBulk) UpdateNewValues() *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(invoice.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(invoice.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InvoiceUpsertBulk) Ignore() *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvoiceUpsertBulk) DoNothing() *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvoiceCreateBulk.OnConflict
// documentation for more info.
func (u *InvoiceUpsertBulk) Update(set func(*InvoiceUpsert)) *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvoiceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InvoiceUpsertBulk) SetUpdatedAt(v time.Time) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateUpdatedAt() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetNumber sets the "number" field.
func (u *InvoiceUpsertBulk) SetNumber(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetNumber(v)
	})
}

// UpdateNumber sets the "number" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateNumber() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateNumber()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *InvoiceUpsertBulk) SetPatientID(v uuid.UUID) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdatePatientID() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdatePatientID()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *InvoiceUpsertBulk) SetAppointmentID(v uuid.UUID) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateAppointmentID() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateAppointmentID()
	})
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (u *InvoiceUpsertBulk) ClearAppointmentID() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearAppointmentID()
	})
}

// SetAmountCents sets the "amount_cents" field.
func (u *InvoiceUpsertBulk) SetAmountCents(v int64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetAmountCents(v)
	})
}

// AddAmountCents adds v to the "amount_cents" field.
func (u *InvoiceUpsertBulk) AddAmountCents(v int64) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddAmountCents(v)
	})
}

// UpdateAmountCents sets the "amount_cents" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateAmountCents() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateAmountCents()
	})
}

// SetStatus sets the "status" field.
func (u *InvoiceUpsertBulk) SetStatus(v invoice.Status) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateStatus() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateStatus()
	})
}

// SetSettledAt sets the "settled_at" field.
func (u *InvoiceUpsertBulk) SetSettledAt(v time.Time) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetSettledAt(v)
	})
}

// UpdateSettledAt sets the "settled_at" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateSettledAt() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateSettledAt()
	})
}

// ClearSettledAt clears the value of the "settled_at" field.
func (u *InvoiceUpsertBulk) ClearSettledAt() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearSettledAt()
	})
}

// Exec executes the query.
func (u *InvoiceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the InvoiceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InvoiceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvoiceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
