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
	"github.com/cabinetmed/cabinet_backend/internal/repo/medicalrecord"
	"github.com/cabinetmed/cabinet_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// MedicalRecordUpdate is the builder for updating MedicalRecord entities.
type MedicalRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MedicalRecordMutation
}

// Where appends a list predicates to the MedicalRecordUpdate builder.
func (_u *MedicalRecordUpdate) Where(ps ...predicate.MedicalRecord) *MedicalRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicalRecordUpdate) SetUpdatedAt(v time.Time) *MedicalRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *MedicalRecordUpdate) SetPatientID(v uuid.UUID) *MedicalRecordUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *MedicalRecordUpdate) SetNillablePatientID(v *uuid.UUID) *MedicalRecordUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *MedicalRecordUpdate) SetAppointmentID(v uuid.UUID) *MedicalRecordUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *MedicalRecordUpdate) SetNillableAppointmentID(v *uuid.UUID) *MedicalRecordUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *MedicalRecordUpdate) ClearAppointmentID() *MedicalRecordUpdate {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *MedicalRecordUpdate) SetAuthorID(v uuid.UUID) *MedicalRecordUpdate {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *MedicalRecordUpdate) SetNillableAuthorID(v *uuid.UUID) *MedicalRecordUpdate {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// ClearAuthorID clears the value of the "author_id" field.
func (_u *MedicalRecordUpdate) ClearAuthorID() *MedicalRecordUpdate {
	_u.mutation.ClearAuthorID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *MedicalRecordUpdate) SetTitle(v string) *MedicalRecordUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MedicalRecordUpdate) SetNillableTitle(v *string) *MedicalRecordUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *MedicalRecordUpdate) SetBody(v string) *MedicalRecordUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *MedicalRecordUpdate) SetNillableBody(v *string) *MedicalRecordUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *MedicalRecordUpdate) ClearBody() *MedicalRecordUpdate {
	_u.mutation.ClearBody()
	return _u
}

// Mutation returns the MedicalRecordMutation object of the builder.
func (_u *MedicalRecordUpdate) Mutation() *MedicalRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MedicalRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MedicalRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicalRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medicalrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicalRecordUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := medicalrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "MedicalRecord.title": %w`, err)}
		}
	}
	return nil
}

func (_u *MedicalRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicalrecord.Table, medicalrecord.Columns, sqlgraph.NewFieldSpec(medicalrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(medicalrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(medicalrecord.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(medicalrecord.FieldAppointmentID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(medicalrecord.FieldAppointmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.AuthorID(); ok {
		_spec.SetField(medicalrecord.FieldAuthorID, field.TypeUUID, value)
	}
	if _u.mutation.AuthorIDCleared() {
		_spec.ClearField(medicalrecord.FieldAuthorID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(medicalrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(medicalrecord.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(medicalrecord.FieldBody, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicalrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MedicalRecordUpdateOne is the builder for updating a single MedicalRecord entity.
type MedicalRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MedicalRecordMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicalRecordUpdateOne) SetUpdatedAt(v time.Time) *MedicalRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *MedicalRecordUpdateOne) SetPatientID(v uuid.UUID) *MedicalRecordUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *MedicalRecordUpdateOne) SetNillablePatientID(v *uuid.UUID) *MedicalRecordUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *MedicalRecordUpdateOne) SetAppointmentID(v uuid.UUID) *MedicalRecordUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *MedicalRecordUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *MedicalRecordUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *MedicalRecordUpdateOne) ClearAppointmentID() *MedicalRecordUpdateOne {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *MedicalRecordUpdateOne) SetAuthorID(v uuid.UUID) *MedicalRecordUpdateOne {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *MedicalRecordUpdateOne) SetNillableAuthorID(v *uuid.UUID) *MedicalRecordUpdateOne {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// ClearAuthorID clears the value of the "author_id" field.
func (_u *MedicalRecordUpdateOne) ClearAuthorID() *MedicalRecordUpdateOne {
	_u.mutation.ClearAuthorID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *MedicalRecordUpdateOne) SetTitle(v string) *MedicalRecordUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MedicalRecordUpdateOne) SetNillableTitle(v *string) *MedicalRecordUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *MedicalRecordUpdateOne) SetBody(v string) *MedicalRecordUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *MedicalRecordUpdateOne) SetNillableBody(v *string) *MedicalRecordUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *MedicalRecordUpdateOne) ClearBody() *MedicalRecordUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// Mutation returns the MedicalRecordMutation object of the builder.
func (_u *MedicalRecordUpdateOne) Mutation() *MedicalRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MedicalRecordUpdate builder.
func (_u *MedicalRecordUpdateOne) Where(ps ...predicate.MedicalRecord) *MedicalRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MedicalRecordUpdateOne) Select(field string, fields ...string) *MedicalRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MedicalRecord entity.
func (_u *MedicalRecordUpdateOne) Save(ctx context.Context) (*MedicalRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalRecordUpdateOne) SaveX(ctx context.Context) *MedicalRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MedicalRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicalRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medicalrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicalRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := medicalrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "MedicalRecord.title": %w`, err)}
		}
	}
	return nil
}

func (_u *MedicalRecordUpdateOne) sqlSave(ctx context.Context) (_node *MedicalRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicalrecord.Table, medicalrecord.Columns, sqlgraph.NewFieldSpec(medicalrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MedicalRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, medicalrecord.FieldID)
		for _, f := range fields {
			if !medicalrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != medicalrecord.FieldID {
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
		_spec.SetField(medicalrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(medicalrecord.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(medicalrecord.FieldAppointmentID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(medicalrecord.FieldAppointmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.AuthorID(); ok {
		_spec.SetField(medicalrecord.FieldAuthorID, field.TypeUUID, value)
	}
	if _u.mutation.AuthorIDCleared() {
		_spec.ClearField(medicalrecord.FieldAuthorID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(medicalrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(medicalrecord.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(medicalrecord.FieldBody, field.TypeString)
	}
	_node = &MedicalRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicalrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
