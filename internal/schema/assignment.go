package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Assignment links a patient to a doctor. A patient has at most one active
// assignment; older rows stay around deactivated as history.
type Assignment struct {
	ent.Schema
}

func (Assignment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Assignment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.Bool("active").
			Default(true),

		field.Time("assigned_at").
			Optional().
			Nillable(),
	}
}

func (Assignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "doctor_id").Unique(),
		index.Fields("patient_id", "active"),
		index.Fields("doctor_id", "active"),
	}
}
