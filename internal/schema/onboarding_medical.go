package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// OnboardingMedical holds step 2 of the onboarding wizard: medical history.
// One row per patient, replaced on re-save.
type OnboardingMedical struct {
	ent.Schema
}

func (OnboardingMedical) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (OnboardingMedical) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Unique().
			Comment("FK → patients.id"),

		field.Strings("allergies").
			Optional().
			Comment("Free-text allergy entries"),

		field.Strings("conditions").
			Optional().
			Comment("Pre-existing conditions"),

		field.Strings("medications").
			Optional().
			Comment("Current medications"),

		field.Text("primary_concern").
			NotEmpty().
			Comment("What brings the patient in"),
	}
}

func (OnboardingMedical) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id").Unique(),
	}
}
