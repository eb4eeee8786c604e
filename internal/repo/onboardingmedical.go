// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/telecare/telecare_backend/internal/repo/onboardingmedical"
)

// OnboardingMedical is the model entity for the OnboardingMedical schema.
type OnboardingMedical struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Free-text allergy entries
	Allergies []string `json:"allergies,omitempty"`
	// Pre-existing conditions
	Conditions []string `json:"conditions,omitempty"`
	// Current medications
	Medications []string `json:"medications,omitempty"`
	// What brings the patient in
	PrimaryConcern string `json:"primary_concern,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OnboardingMedical) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case onboardingmedical.FieldAllergies, onboardingmedical.FieldConditions, onboardingmedical.FieldMedications:
			values[i] = new([]byte)
		case onboardingmedical.FieldPrimaryConcern:
			values[i] = new(sql.NullString)
		case onboardingmedical.FieldCreatedAt, onboardingmedical.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case onboardingmedical.FieldID, onboardingmedical.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OnboardingMedical fields.
func (_m *OnboardingMedical) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case onboardingmedical.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case onboardingmedical.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case onboardingmedical.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case onboardingmedical.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case onboardingmedical.FieldAllergies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allergies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Allergies); err != nil {
					return fmt.Errorf("unmarshal field allergies: %w", err)
				}
			}
		case onboardingmedical.FieldConditions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conditions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Conditions); err != nil {
					return fmt.Errorf("unmarshal field conditions: %w", err)
				}
			}
		case onboardingmedical.FieldMedications:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field medications", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Medications); err != nil {
					return fmt.Errorf("unmarshal field medications: %w", err)
				}
			}
		case onboardingmedical.FieldPrimaryConcern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_concern", values[i])
			} else if value.Valid {
				_m.PrimaryConcern = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OnboardingMedical.
// This includes values selected through modifiers, order, etc.
func (_m *OnboardingMedical) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OnboardingMedical.
// Note that you need to call OnboardingMedical.Unwrap() before calling this method if this OnboardingMedical
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OnboardingMedical) Update() *OnboardingMedicalUpdateOne {
	return NewOnboardingMedicalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OnboardingMedical entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OnboardingMedical) Unwrap() *OnboardingMedical {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: OnboardingMedical is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OnboardingMedical) String() string {
	var builder strings.Builder
	builder.WriteString("OnboardingMedical(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("allergies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Allergies))
	builder.WriteString(", ")
	builder.WriteString("conditions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Conditions))
	builder.WriteString(", ")
	builder.WriteString("medications=")
	builder.WriteString(fmt.Sprintf("%v", _m.Medications))
	builder.WriteString(", ")
	builder.WriteString("primary_concern=")
	builder.WriteString(_m.PrimaryConcern)
	builder.WriteByte(')')
	return builder.String()
}

// OnboardingMedicals is a parsable slice of OnboardingMedical.
type OnboardingMedicals []*OnboardingMedical
