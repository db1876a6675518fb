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
	"github.com/cabinetmed/cabinet_backend/internal/repo/invoice"
	"github.com/cabinetmed/cabinet_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNumber sets the "number" field.
func (_u *InvoiceUpdate) SetNumber(v string) *InvoiceUpdate {
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *InvoiceUpdate) SetPatientID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePatientID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *InvoiceUpdate) SetAppointmentID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableAppointmentID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *InvoiceUpdate) ClearAppointmentID() *InvoiceUpdate {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *InvoiceUpdate) SetAmountCents(v int64) *InvoiceUpdate {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableAmountCents(v *int64) *InvoiceUpdate {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *InvoiceUpdate) AddAmountCents(v int64) *InvoiceUpdate {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdate) SetStatus(v invoice.Status) *InvoiceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableStatus(v *invoice.Status) *InvoiceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSettledAt sets the "settled_at" field.
func (_u *InvoiceUpdate) SetSettledAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetSettledAt(v)
	return _u
}

// SetNillableSettledAt sets the "settled_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSettledAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetSettledAt(*v)
	}
	return _u
}

// ClearSettledAt clears the value of the "settled_at" field.
func (_u *InvoiceUpdate) ClearSettledAt() *InvoiceUpdate {
	_u.mutation.ClearSettledAt()
	return _u
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.Number(); ok {
		if err := invoice.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`repo: validator failed for field "Invoice.number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountCents(); ok {
		if err := invoice.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`repo: validator failed for field "Invoice.amount_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(invoice.FieldNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(invoice.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(invoice.FieldAppointmentID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(invoice.FieldAppointmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(invoice.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(invoice.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SettledAt(); ok {
		_spec.SetField(invoice.FieldSettledAt, field.TypeTime, value)
	}
	if _u.mutation.SettledAtCleared() {
		_spec.ClearField(invoice.FieldSettledAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNumber sets the "number" field.
func (_u *InvoiceUpdateOne) SetNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *InvoiceUpdateOne) SetPatientID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePatientID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *InvoiceUpdateOne) SetAppointmentID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *InvoiceUpdateOne) ClearAppointmentID() *InvoiceUpdateOne {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *InvoiceUpdateOne) SetAmountCents(v int64) *InvoiceUpdateOne {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableAmountCents(v *int64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *InvoiceUpdateOne) AddAmountCents(v int64) *InvoiceUpdateOne {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdateOne) SetStatus(v invoice.Status) *InvoiceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableStatus(v *invoice.Status) *InvoiceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSettledAt sets the "settled_at" field.
func (_u *InvoiceUpdateOne) SetSettledAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetSettledAt(v)
	return _u
}

// SetNillableSettledAt sets the "settled_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSettledAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSettledAt(*v)
	}
	return _u
}

// ClearSettledAt clears the value of the "settled_at" field.
func (_u *InvoiceUpdateOne) ClearSettledAt() *InvoiceUpdateOne {
	_u.mutation.ClearSettledAt()
	return _u
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.Number(); ok {
		if err := invoice.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`repo: validator failed for field "Invoice.number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountCents(); ok {
		if err := invoice.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`repo: validator failed for field "Invoice.amount_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
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
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(invoice.FieldNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(invoice.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(invoice.FieldAppointmentID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(invoice.FieldAppointmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(invoice.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(invoice.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SettledAt(); ok {
		_spec.SetField(invoice.FieldSettledAt, field.TypeTime, value)
	}
	if _u.mutation.SettledAtCleared() {
		_spec.ClearField(invoice.FieldSettledAt, field.TypeTime)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
