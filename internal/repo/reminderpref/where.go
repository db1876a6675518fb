// Code generated by ent, DO NOT EDIT.

package reminderpref

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cabinetmed/cabinet_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldEQ(FieldUserID, v))
}

// DelayHours applies equality check predicate on the "delay_hours" field. It's identical to DelayHoursEQ.
func DelayHours(v int) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldEQ(FieldDelayHours, v))
}

// EmailEnabled applies equality check predicate on the "email_enabled" field. It's identical to EmailEnabledEQ.
func EmailEnabled(v bool) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldEQ(FieldEmailEnabled, v))
}

// InAppEnabled applies equality check predicate on the "in_app_enabled" field. It's identical to InAppEnabledEQ.
func InAppEnabled(v bool) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldEQ(FieldInAppEnabled, v))
}

// OverrideEmail applies equality check predicate on the "override_email" field. It's identical to OverrideEmailEQ.
func OverrideEmail(v string) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldEQ(FieldOverrideEmail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldLTE(FieldUserID, v))
}

// DelayHoursEQ applies the EQ predicate on the "delay_hours" field.
func DelayHoursEQ(v int) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldEQ(FieldDelayHours, v))
}

// DelayHoursNEQ applies the NEQ predicate on the "delay_hours" field.
func DelayHoursNEQ(v int) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldNEQ(FieldDelayHours, v))
}

// DelayHoursIn applies the In predicate on the "delay_hours" field.
func DelayHoursIn(vs ...int) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldIn(FieldDelayHours, vs...))
}

// DelayHoursNotIn applies the NotIn predicate on the "delay_hours" field.
func DelayHoursNotIn(vs ...int) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldNotIn(FieldDelayHours, vs...))
}

// DelayHoursGT applies the GT predicate on the "delay_hours" field.
func DelayHoursGT(v int) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldGT(FieldDelayHours, v))
}

// DelayHoursGTE applies the GTE predicate on the "delay_hours" field.
func DelayHoursGTE(v int) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldGTE(FieldDelayHours, v))
}

// DelayHoursLT applies the LT predicate on the "delay_hours" field.
func DelayHoursLT(v int) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldLT(FieldDelayHours, v))
}

// DelayHoursLTE applies the LTE predicate on the "delay_hours" field.
func DelayHoursLTE(v int) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldLTE(FieldDelayHours, v))
}

// EmailEnabledEQ applies the EQ predicate on the "email_enabled" field.
func EmailEnabledEQ(v bool) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldEQ(FieldEmailEnabled, v))
}

// EmailEnabledNEQ applies the NEQ predicate on the "email_enabled" field.
func EmailEnabledNEQ(v bool) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldNEQ(FieldEmailEnabled, v))
}

// InAppEnabledEQ applies the EQ predicate on the "in_app_enabled" field.
func InAppEnabledEQ(v bool) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldEQ(FieldInAppEnabled, v))
}

// InAppEnabledNEQ applies the NEQ predicate on the "in_app_enabled" field.
func InAppEnabledNEQ(v bool) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldNEQ(FieldInAppEnabled, v))
}

// OverrideEmailEQ applies the EQ predicate on the "override_email" field.
func OverrideEmailEQ(v string) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldEQ(FieldOverrideEmail, v))
}

// OverrideEmailNEQ applies the NEQ predicate on the "override_email" field.
func OverrideEmailNEQ(v string) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldNEQ(FieldOverrideEmail, v))
}

// OverrideEmailIn applies the In predicate on the "override_email" field.
func OverrideEmailIn(vs ...string) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldIn(FieldOverrideEmail, vs...))
}

// OverrideEmailNotIn applies the NotIn predicate on the "override_email" field.
func OverrideEmailNotIn(vs ...string) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldNotIn(FieldOverrideEmail, vs...))
}

// OverrideEmailGT applies the GT predicate on the "override_email" field.
func OverrideEmailGT(v string) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldGT(FieldOverrideEmail, v))
}

// OverrideEmailGTE applies the GTE predicate on the "override_email" field.
func OverrideEmailGTE(v string) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldGTE(FieldOverrideEmail, v))
}

// OverrideEmailLT applies the LT predicate on the "override_email" field.
func OverrideEmailLT(v string) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldLT(FieldOverrideEmail, v))
}

// OverrideEmailLTE applies the LTE predicate on the "override_email" field.
func OverrideEmailLTE(v string) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldLTE(FieldOverrideEmail, v))
}

// OverrideEmailContains applies the Contains predicate on the "override_email" field.
func OverrideEmailContains(v string) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldContains(FieldOverrideEmail, v))
}

// OverrideEmailHasPrefix applies the HasPrefix predicate on the "override_email" field.
func OverrideEmailHasPrefix(v string) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldHasPrefix(FieldOverrideEmail, v))
}

// OverrideEmailHasSuffix applies the HasSuffix predicate on the "override_email" field.
func OverrideEmailHasSuffix(v string) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldHasSuffix(FieldOverrideEmail, v))
}

// OverrideEmailIsNil applies the IsNil predicate on the "override_email" field.
func OverrideEmailIsNil() predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldIsNull(FieldOverrideEmail))
}

// OverrideEmailNotNil applies the NotNil predicate on the "override_email" field.
func OverrideEmailNotNil() predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldNotNull(FieldOverrideEmail))
}

// OverrideEmailEqualFold applies the EqualFold predicate on the "override_email" field.
func OverrideEmailEqualFold(v string) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldEqualFold(FieldOverrideEmail, v))
}

// OverrideEmailContainsFold applies the ContainsFold predicate on the "override_email" field.
func OverrideEmailContainsFold(v string) predicate.ReminderPref {
	return predicate.ReminderPref(sql.FieldContainsFold(FieldOverrideEmail, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReminderPref) predicate.ReminderPref {
	return predicate.ReminderPref(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReminderPref) predicate.ReminderPref {
	return predicate.ReminderPref(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReminderPref) predicate.ReminderPref {
	return predicate.ReminderPref(sql.NotPredicates(p))
}
