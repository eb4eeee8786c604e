package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// OnboardingInsurance holds step 3 of the onboarding wizard: insurance
// details and the patient's doctor preference. The member id is stored
// AES-256-GCM encrypted; only the service layer sees the plaintext.
type OnboardingInsurance struct {
	ent.Schema
}

func (OnboardingInsurance) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (OnboardingInsurance) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Unique().
			Comment("FK → patients.id"),

		field.String("provider").
			MaxLen(255),

		field.String("member_id_encrypted").
			Sensitive().
			Comment("AES-256-GCM, base64(nonce || ciphertext)"),

		field.UUID("preferred_doctor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → doctors.id, the patient's pick from the directory"),
	}
}

func (OnboardingInsurance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id").Unique(),
	}
}
