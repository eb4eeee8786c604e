package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is the patient profile attached to a user account. It carries the
// onboarding progress counter and, once onboarding completes, the assigned
// doctor.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.Int("onboarding_step").
			Default(0).
			NonNegative().
			Max(3).
			Comment("Highest wizard step saved so far (0..3)"),

		field.Bool("onboarding_completed").
			Default(false),

		field.UUID("assigned_doctor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → doctors.id, set when onboarding completes"),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user", User.Type).
			Unique().
			Required().
			Field("user_id"),
		edge.To("assigned_doctor", Doctor.Type).
			Unique().
			Field("assigned_doctor_id"),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
		index.Fields("assigned_doctor_id"),
	}
}
