// Code generated by ent, DO NOT EDIT.

package onboardinginsurance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/telecare/telecare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldEQ(FieldPatientID, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldEQ(FieldProvider, v))
}

// MemberIDEncrypted applies equality check predicate on the "member_id_encrypted" field. It's identical to MemberIDEncryptedEQ.
func MemberIDEncrypted(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldEQ(FieldMemberIDEncrypted, v))
}

// PreferredDoctorID applies equality check predicate on the "preferred_doctor_id" field. It's identical to PreferredDoctorIDEQ.
func PreferredDoctorID(v uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldEQ(FieldPreferredDoctorID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldLTE(FieldPatientID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldContainsFold(FieldProvider, v))
}

// MemberIDEncryptedEQ applies the EQ predicate on the "member_id_encrypted" field.
func MemberIDEncryptedEQ(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldEQ(FieldMemberIDEncrypted, v))
}

// MemberIDEncryptedNEQ applies the NEQ predicate on the "member_id_encrypted" field.
func MemberIDEncryptedNEQ(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldNEQ(FieldMemberIDEncrypted, v))
}

// MemberIDEncryptedIn applies the In predicate on the "member_id_encrypted" field.
func MemberIDEncryptedIn(vs ...string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldIn(FieldMemberIDEncrypted, vs...))
}

// MemberIDEncryptedNotIn applies the NotIn predicate on the "member_id_encrypted" field.
func MemberIDEncryptedNotIn(vs ...string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldNotIn(FieldMemberIDEncrypted, vs...))
}

// MemberIDEncryptedGT applies the GT predicate on the "member_id_encrypted" field.
func MemberIDEncryptedGT(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldGT(FieldMemberIDEncrypted, v))
}

// MemberIDEncryptedGTE applies the GTE predicate on the "member_id_encrypted" field.
func MemberIDEncryptedGTE(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldGTE(FieldMemberIDEncrypted, v))
}

// MemberIDEncryptedLT applies the LT predicate on the "member_id_encrypted" field.
func MemberIDEncryptedLT(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldLT(FieldMemberIDEncrypted, v))
}

// MemberIDEncryptedLTE applies the LTE predicate on the "member_id_encrypted" field.
func MemberIDEncryptedLTE(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldLTE(FieldMemberIDEncrypted, v))
}

// MemberIDEncryptedContains applies the Contains predicate on the "member_id_encrypted" field.
func MemberIDEncryptedContains(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldContains(FieldMemberIDEncrypted, v))
}

// MemberIDEncryptedHasPrefix applies the HasPrefix predicate on the "member_id_encrypted" field.
func MemberIDEncryptedHasPrefix(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldHasPrefix(FieldMemberIDEncrypted, v))
}

// MemberIDEncryptedHasSuffix applies the HasSuffix predicate on the "member_id_encrypted" field.
func MemberIDEncryptedHasSuffix(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldHasSuffix(FieldMemberIDEncrypted, v))
}

// MemberIDEncryptedEqualFold applies the EqualFold predicate on the "member_id_encrypted" field.
func MemberIDEncryptedEqualFold(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldEqualFold(FieldMemberIDEncrypted, v))
}

// MemberIDEncryptedContainsFold applies the ContainsFold predicate on the "member_id_encrypted" field.
func MemberIDEncryptedContainsFold(v string) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldContainsFold(FieldMemberIDEncrypted, v))
}

// PreferredDoctorIDEQ applies the EQ predicate on the "preferred_doctor_id" field.
func PreferredDoctorIDEQ(v uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldEQ(FieldPreferredDoctorID, v))
}

// PreferredDoctorIDNEQ applies the NEQ predicate on the "preferred_doctor_id" field.
func PreferredDoctorIDNEQ(v uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldNEQ(FieldPreferredDoctorID, v))
}

// PreferredDoctorIDIn applies the In predicate on the "preferred_doctor_id" field.
func PreferredDoctorIDIn(vs ...uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldIn(FieldPreferredDoctorID, vs...))
}

// PreferredDoctorIDNotIn applies the NotIn predicate on the "preferred_doctor_id" field.
func PreferredDoctorIDNotIn(vs ...uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldNotIn(FieldPreferredDoctorID, vs...))
}

// PreferredDoctorIDGT applies the GT predicate on the "preferred_doctor_id" field.
func PreferredDoctorIDGT(v uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldGT(FieldPreferredDoctorID, v))
}

// PreferredDoctorIDGTE applies the GTE predicate on the "preferred_doctor_id" field.
func PreferredDoctorIDGTE(v uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldGTE(FieldPreferredDoctorID, v))
}

// PreferredDoctorIDLT applies the LT predicate on the "preferred_doctor_id" field.
func PreferredDoctorIDLT(v uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldLT(FieldPreferredDoctorID, v))
}

// PreferredDoctorIDLTE applies the LTE predicate on the "preferred_doctor_id" field.
func PreferredDoctorIDLTE(v uuid.UUID) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldLTE(FieldPreferredDoctorID, v))
}

// PreferredDoctorIDIsNil applies the IsNil predicate on the "preferred_doctor_id" field.
func PreferredDoctorIDIsNil() predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldIsNull(FieldPreferredDoctorID))
}

// PreferredDoctorIDNotNil applies the NotNil predicate on the "preferred_doctor_id" field.
func PreferredDoctorIDNotNil() predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.FieldNotNull(FieldPreferredDoctorID))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OnboardingInsurance) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OnboardingInsurance) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OnboardingInsurance) predicate.OnboardingInsurance {
	return predicate.OnboardingInsurance(sql.NotPredicates(p))
}
