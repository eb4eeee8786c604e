package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// OnboardingPersonal holds step 1 of the onboarding wizard: personal details.
// One row per patient, replaced on re-save.
type OnboardingPersonal struct {
	ent.Schema
}

func (OnboardingPersonal) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (OnboardingPersonal) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Unique().
			Comment("FK → patients.id"),

		field.Time("date_of_birth"),

		field.Enum("gender").
			Values("male", "female", "other", "prefer_not_to_say"),

		field.String("phone").
			MaxLen(20),

		field.String("address").
			MaxLen(500),
	}
}

func (OnboardingPersonal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id").Unique(),
	}
}
