// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/telecare/telecare_backend/internal/repo/onboardinginsurance"
)

// OnboardingInsurance is the model entity for the OnboardingInsurance schema.
type OnboardingInsurance struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// AES-256-GCM, base64(nonce || ciphertext)
	MemberIDEncrypted string `json:"-"`
	// FK → doctors.id, the patient's pick from the directory
	PreferredDoctorID *uuid.UUID `json:"preferred_doctor_id,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OnboardingInsurance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case onboardinginsurance.FieldPreferredDoctorID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case onboardinginsurance.FieldProvider, onboardinginsurance.FieldMemberIDEncrypted:
			values[i] = new(sql.NullString)
		case onboardinginsurance.FieldCreatedAt, onboardinginsurance.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case onboardinginsurance.FieldID, onboardinginsurance.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OnboardingInsurance fields.
func (_m *OnboardingInsurance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case onboardinginsurance.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case onboardinginsurance.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case onboardinginsurance.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case onboardinginsurance.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case onboardinginsurance.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case onboardinginsurance.FieldMemberIDEncrypted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field member_id_encrypted", values[i])
			} else if value.Valid {
				_m.MemberIDEncrypted = value.String
			}
		case onboardinginsurance.FieldPreferredDoctorID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_doctor_id", values[i])
			} else if value.Valid {
				_m.PreferredDoctorID = new(uuid.UUID)
				*_m.PreferredDoctorID = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OnboardingInsurance.
// This includes values selected through modifiers, order, etc.
func (_m *OnboardingInsurance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OnboardingInsurance.
// Note that you need to call OnboardingInsurance.Unwrap() before calling this method if this OnboardingInsurance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OnboardingInsurance) Update() *OnboardingInsuranceUpdateOne {
	return NewOnboardingInsuranceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OnboardingInsurance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OnboardingInsurance) Unwrap() *OnboardingInsurance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: OnboardingInsurance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OnboardingInsurance) String() string {
	var builder strings.Builder
	builder.WriteString("OnboardingInsurance(")
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
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("member_id_encrypted=<sensitive>")
	builder.WriteString(", ")
	if v := _m.PreferredDoctorID; v != nil {
		builder.WriteString("preferred_doctor_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// OnboardingInsurances is a parsable slice of OnboardingInsurance.
type OnboardingInsurances []*OnboardingInsurance
