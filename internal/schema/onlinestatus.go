package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// OnlineStatus tracks websocket presence per user. One row per user,
// upserted on connect and disconnect.
type OnlineStatus struct {
	ent.Schema
}

func (OnlineStatus) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
	}
}

func (OnlineStatus) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.Bool("online").
			Default(false),

		field.Time("last_seen").
			Optional().
			Nillable(),
	}
}

func (OnlineStatus) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
