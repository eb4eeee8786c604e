package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ChatMessage is a single message within a ChatRoom.
type ChatMessage struct {
	ent.Schema
}

func (ChatMessage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("room_id", uuid.UUID{}).
			Comment("FK → chat_rooms.id"),

		field.UUID("sender_id", uuid.UUID{}).
			Comment("User id of the sender"),

		field.Enum("sender_role").
			Values("patient", "doctor").
			Comment("Role the sender held when the message was stored"),

		field.Text("content").
			NotEmpty(),

		field.Time("read_at").
			Optional().
			Nillable().
			Comment("Set when the counterparty first views the room"),
	}
}

func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("room_id", "created_at"),
		index.Fields("sender_id"),
	}
}
