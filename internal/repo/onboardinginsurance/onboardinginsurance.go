// Code generated by ent, DO NOT EDIT.

package onboardinginsurance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the onboardinginsurance type in the database.
	Label = "onboarding_insurance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldMemberIDEncrypted holds the string denoting the member_id_encrypted field in the database.
	FieldMemberIDEncrypted = "member_id_encrypted"
	// FieldPreferredDoctorID holds the string denoting the preferred_doctor_id field in the database.
	FieldPreferredDoctorID = "preferred_doctor_id"
	// Table holds the table name of the onboardinginsurance in the database.
	Table = "onboarding_insurances"
)

// Columns holds all SQL columns for onboardinginsurance fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPatientID,
	FieldProvider,
	FieldMemberIDEncrypted,
	FieldPreferredDoctorID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	ProviderValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the OnboardingInsurance queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByMemberIDEncrypted orders the results by the member_id_encrypted field.
func ByMemberIDEncrypted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemberIDEncrypted, opts...).ToFunc()
}

// ByPreferredDoctorID orders the results by the preferred_doctor_id field.
func ByPreferredDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredDoctorID, opts...).ToFunc()
}
