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
	"github.com/cabinetmed/cabinet_backend/internal/repo/appointment"
	"github.com/google/uuid"
)

// AppointmentCreate is the builder for creating a Appointment entity.
type AppointmentCreate struct {
	config
	mutation *AppointmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppointmentCreate) SetCreatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCreatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AppointmentCreate) SetUpdatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableUpdatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPractitionerID sets the "practitioner_id" field.
func (_c *AppointmentCreate) SetPractitionerID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetPractitionerID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *AppointmentCreate) SetPatientID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *AppointmentCreate) SetCreatedBy(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCreatedBy(v *uuid.UUID) *AppointmentCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *AppointmentCreate) SetStartTime(v time.Time) *AppointmentCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *AppointmentCreate) SetDurationMinutes(v int) *AppointmentCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AppointmentCreate) SetStatus(v appointment.Status) *AppointmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableStatus(v *appointment.Status) *AppointmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *AppointmentCreate) SetReason(v string) *AppointmentCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableReason(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *AppointmentCreate) SetCancelledAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCancelledAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AppointmentCreate) SetCompletedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCompletedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentCreate) SetID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableID(v *uuid.UUID) *AppointmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AppointmentMutation object of the builder.
func (_c *AppointmentCreate) Mutation() *AppointmentMutation {
	return _c.mutation
}

// Save creates the Appointment in the database.
func (_c *AppointmentCreate) Save(ctx context.Context) (*Appointment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentCreate) SaveX(ctx context.Context) *Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appointment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := appointment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := appointment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := appointment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Appointment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Appointment.updated_at"`)}
	}
	if _, ok := _c.mutation.PractitionerID(); !ok {
		return &ValidationError{Name: "practitioner_id", err: errors.New(`repo: missing required field "Appointment.practitioner_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Appointment.patient_id"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "Appointment.start_time"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`repo: missing required field "Appointment.duration_minutes"`)}
	}
	if v, ok := _c.mutation.DurationMinutes(); ok {
		if err := appointment.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "Appointment.duration_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Appointment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	return nil
}

func (_c *AppointmentCreate) sqlSave(ctx context.Context) (*Appointment, error) {
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

func (_c *AppointmentCreate) createSpec() (*Appointment, *sqlgraph.CreateSpec) {
	var (
		_node = &Appointment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointment.Table, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appointment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PractitionerID(); ok {
		_spec.SetField(appointment.FieldPractitionerID, field.TypeUUID, value)
		_node.PractitionerID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(appointment.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(appointment.FieldCreatedBy, field.TypeUUID, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(appointment.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(appointment.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(appointment.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(appointment.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Appointment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AppointmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AppointmentCreate) OnConflict(opts ...sql.ConflictOption) *AppointmentUpsertOne {
	_c.conflict = opts
	return &AppointmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AppointmentCreate) OnConflictColumns(columns ...string) *AppointmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AppointmentUpsertOne{
		create: _c,
	}
}

type (
	// AppointmentUpsertOne is the builder for "upsert"-ing
	//  one Appointment node.
	AppointmentUpsertOne struct {
		create *AppointmentCreate
	}

	// AppointmentUpsert is the "OnConflict" setter.
	AppointmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentUpsert) SetUpdatedAt(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateUpdatedAt() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldUpdatedAt)
	return u
}

// SetPractitionerID sets the "practitioner_id" field.
func (u *AppointmentUpsert) SetPractitionerID(v uuid.UUID) *AppointmentUpsert {
	u.Set(appointment.FieldPractitionerID, v)
	return u
}

// UpdatePractitionerID sets the "practitioner_id" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdatePractitionerID() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldPractitionerID)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *AppointmentUpsert) SetPatientID(v uuid.UUID) *AppointmentUpsert {
	u.Set(appointment.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdatePatientID() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldPatientID)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *AppointmentUpsert) SetCreatedBy(v uuid.UUID) *AppointmentUpsert {
	u.Set(appointment.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateCreatedBy() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *AppointmentUpsert) ClearCreatedBy() *AppointmentUpsert {
	u.SetNull(appointment.FieldCreatedBy)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *AppointmentUpsert) SetStartTime(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateStartTime() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldStartTime)
	return u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *AppointmentUpsert) SetDurationMinutes(v int) *AppointmentUpsert {
	u.Set(appointment.FieldDurationMinutes, v)
	return u
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateDurationMinutes() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldDurationMinutes)
	return u
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *AppointmentUpsert) AddDurationMinutes(v int) *AppointmentUpsert {
	u.Add(appointment.FieldDurationMinutes, v)
	return u
}

// SetStatus sets the "status" field.
func (u *AppointmentUpsert) SetStatus(v appointment.Status) *AppointmentUpsert {
	u.Set(appointment.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateStatus() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldStatus)
	return u
}

// SetReason sets the "reason" field.
func (u *AppointmentUpsert) SetReason(v string) *AppointmentUpsert {
	u.Set(appointment.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateReason() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldReason)
	return u
}

// ClearReason clears the value of the "reason" field.
func (u *AppointmentUpsert) ClearReason() *AppointmentUpsert {
	u.SetNull(appointment.FieldReason)
	return u
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *AppointmentUpsert) SetCancelledAt(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldCancelledAt, v)
	return u
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateCancelledAt() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldCancelledAt)
	return u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *AppointmentUpsert) ClearCancelledAt() *AppointmentUpsert {
	u.SetNull(appointment.FieldCancelledAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *AppointmentUpsert) SetCompletedAt(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateCompletedAt() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AppointmentUpsert) ClearCompletedAt() *AppointmentUpsert {
	u.SetNull(appointment.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(appointment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AppointmentUpsertOne) UpdateNewValues() *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(appointment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(appointment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Appointment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AppointmentUpsertOne) Ignore() *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AppointmentUpsertOne) DoNothing() *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AppointmentCreate.OnConflict
// documentation for more info.
func (u *AppointmentUpsertOne) Update(set func(*AppointmentUpsert)) *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AppointmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentUpsertOne) SetUpdatedAt(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateUpdatedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPractitionerID sets the "practitioner_id" field.
func (u *AppointmentUpsertOne) SetPractitionerID(v uuid.UUID) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetPractitionerID(v)
	})
}

// UpdatePractitionerID sets the "practitioner_id" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdatePractitionerID() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdatePractitionerID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *AppointmentUpsertOne) SetPatientID(v uuid.UUID) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdatePatientID() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdatePatientID()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *AppointmentUpsertOne) SetCreatedBy(v uuid.UUID) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateCreatedBy() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *AppointmentUpsertOne) ClearCreatedBy() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCreatedBy()
	})
}

// SetStartTime sets the "start_time" field.
func (u *AppointmentUpsertOne) SetStartTime(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateStartTime() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStartTime()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *AppointmentUpsertOne) SetDurationMinutes(v int) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *AppointmentUpsertOne) AddDurationMinutes(v int) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateDurationMinutes() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetStatus sets the "status" field.
func (u *AppointmentUpsertOne) SetStatus(v appointment.Status) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateStatus() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStatus()
	})
}

// SetReason sets the "reason" field.
func (u *AppointmentUpsertOne) SetReason(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateReason() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *AppointmentUpsertOne) ClearReason() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearReason()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *AppointmentUpsertOne) SetCancelledAt(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateCancelledAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *AppointmentUpsertOne) ClearCancelledAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AppointmentUpsertOne) SetCompletedAt(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateCompletedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AppointmentUpsertOne) ClearCompletedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *AppointmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AppointmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AppointmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AppointmentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AppointmentUpsertOne.ID is not supported by MySQL driver. Use AppointmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AppointmentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AppointmentCreateBulk is the builder for creating many Appointment entities in bulk.
type AppointmentCreateBulk struct {
	config
	err      error
	builders []*AppointmentCreate
	conflict []sql.ConflictOption
}

// Save creates the Appointment entities in the database.
func (_c *AppointmentCreateBulk) Save(ctx context.Context) ([]*Appointment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Appointment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentMutation)
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
func (_c *AppointmentCreateBulk) SaveX(ctx context.Context) []*Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Appointment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AppointmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AppointmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AppointmentUpsertBulk {
	_c.conflict = opts
	return &AppointmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AppointmentCreateBulk) OnConflictColumns(columns ...string) *AppointmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AppointmentUpsertBulk{
		create: _c,
	}
}

// AppointmentUpsertBulk is the builder for "upsert"-ing
// a bulk of Appointment nodes.
type AppointmentUpsertBulk struct {
	create *AppointmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(appointment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AppointmentUpsertBulk) UpdateNewValues() *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(appointment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(appointment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AppointmentUpsertBulk) Ignore() *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AppointmentUpsertBulk) DoNothing() *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AppointmentCreateBulk.OnConflict
// documentation for more info.
func (u *AppointmentUpsertBulk) Update(set func(*AppointmentUpsert)) *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AppointmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentUpsertBulk) SetUpdatedAt(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateUpdatedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPractitionerID sets the "practitioner_id" field.
func (u *AppointmentUpsertBulk) SetPractitionerID(v uuid.UUID) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetPractitionerID(v)
	})
}

// UpdatePractitionerID sets the "practitioner_id" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdatePractitionerID() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdatePractitionerID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *AppointmentUpsertBulk) SetPatientID(v uuid.UUID) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdatePatientID() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdatePatientID()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *AppointmentUpsertBulk) SetCreatedBy(v uuid.UUID) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateCreatedBy() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *AppointmentUpsertBulk) ClearCreatedBy() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCreatedBy()
	})
}

// SetStartTime sets the "start_time" field.
func (u *AppointmentUpsertBulk) SetStartTime(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateStartTime() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStartTime()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *AppointmentUpsertBulk) SetDurationMinutes(v int) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *AppointmentUpsertBulk) AddDurationMinutes(v int) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateDurationMinutes() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetStatus sets the "status" field.
func (u *AppointmentUpsertBulk) SetStatus(v appointment.Status) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateStatus() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStatus()
	})
}

// SetReason sets the "reason" field.
func (u *AppointmentUpsertBulk) SetReason(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateReason() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *AppointmentUpsertBulk) ClearReason() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearReason()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *AppointmentUpsertBulk) SetCancelledAt(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateCancelledAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *AppointmentUpsertBulk) ClearCancelledAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AppointmentUpsertBulk) SetCompletedAt(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateCompletedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AppointmentUpsertBulk) ClearCompletedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *AppointmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AppointmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AppointmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AppointmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
