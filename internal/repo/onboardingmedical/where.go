// Code generated by ent, DO NOT EDIT.

package onboardingmedical

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/telecare/telecare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldEQ(FieldPatientID, v))
}

// PrimaryConcern applies equality check predicate on the "primary_concern" field. It's identical to PrimaryConcernEQ.
func PrimaryConcern(v string) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldEQ(FieldPrimaryConcern, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldLTE(FieldPatientID, v))
}

// AllergiesIsNil applies the IsNil predicate on the "allergies" field.
func AllergiesIsNil() predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldIsNull(FieldAllergies))
}

// AllergiesNotNil applies the NotNil predicate on the "allergies" field.
func AllergiesNotNil() predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldNotNull(FieldAllergies))
}

// ConditionsIsNil applies the IsNil predicate on the "conditions" field.
func ConditionsIsNil() predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldIsNull(FieldConditions))
}

// ConditionsNotNil applies the NotNil predicate on the "conditions" field.
func ConditionsNotNil() predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldNotNull(FieldConditions))
}

// MedicationsIsNil applies the IsNil predicate on the "medications" field.
func MedicationsIsNil() predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldIsNull(FieldMedications))
}

// MedicationsNotNil applies the NotNil predicate on the "medications" field.
func MedicationsNotNil() predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldNotNull(FieldMedications))
}

// PrimaryConcernEQ applies the EQ predicate on the "primary_concern" field.
func PrimaryConcernEQ(v string) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldEQ(FieldPrimaryConcern, v))
}

// PrimaryConcernNEQ applies the NEQ predicate on the "primary_concern" field.
func PrimaryConcernNEQ(v string) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldNEQ(FieldPrimaryConcern, v))
}

// PrimaryConcernIn applies the In predicate on the "primary_concern" field.
func PrimaryConcernIn(vs ...string) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldIn(FieldPrimaryConcern, vs...))
}

// PrimaryConcernNotIn applies the NotIn predicate on the "primary_concern" field.
func PrimaryConcernNotIn(vs ...string) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldNotIn(FieldPrimaryConcern, vs...))
}

// PrimaryConcernGT applies the GT predicate on the "primary_concern" field.
func PrimaryConcernGT(v string) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldGT(FieldPrimaryConcern, v))
}

// PrimaryConcernGTE applies the GTE predicate on the "primary_concern" field.
func PrimaryConcernGTE(v string) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldGTE(FieldPrimaryConcern, v))
}

// PrimaryConcernLT applies the LT predicate on the "primary_concern" field.
func PrimaryConcernLT(v string) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldLT(FieldPrimaryConcern, v))
}

// PrimaryConcernLTE applies the LTE predicate on the "primary_concern" field.
func PrimaryConcernLTE(v string) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldLTE(FieldPrimaryConcern, v))
}

// PrimaryConcernContains applies the Contains predicate on the "primary_concern" field.
func PrimaryConcernContains(v string) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldContains(FieldPrimaryConcern, v))
}

// PrimaryConcernHasPrefix applies the HasPrefix predicate on the "primary_concern" field.
func PrimaryConcernHasPrefix(v string) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldHasPrefix(FieldPrimaryConcern, v))
}

// PrimaryConcernHasSuffix applies the HasSuffix predicate on the "primary_concern" field.
func PrimaryConcernHasSuffix(v string) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldHasSuffix(FieldPrimaryConcern, v))
}

// PrimaryConcernEqualFold applies the EqualFold predicate on the "primary_concern" field.
func PrimaryConcernEqualFold(v string) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldEqualFold(FieldPrimaryConcern, v))
}

// PrimaryConcernContainsFold applies the ContainsFold predicate on the "primary_concern" field.
func PrimaryConcernContainsFold(v string) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.FieldContainsFold(FieldPrimaryConcern, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OnboardingMedical) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OnboardingMedical) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OnboardingMedical) predicate.OnboardingMedical {
	return predicate.OnboardingMedical(sql.NotPredicates(p))
}
