package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ChatRoom is the single conversation thread between a patient and a doctor.
// The (patient_id, doctor_id) pair is unique so concurrent creation attempts
// collapse onto one row.
type ChatRoom struct {
	ent.Schema
}

func (ChatRoom) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (ChatRoom) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.Time("last_message_at").
			Optional().
			Nillable(),
	}
}

func (ChatRoom) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "doctor_id").Unique(),
		index.Fields("patient_id"),
		index.Fields("doctor_id"),
	}
}
