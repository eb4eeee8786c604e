package realtime

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Inbound event names.
const (
	EventAuthenticate = "authenticate"
	EventJoinRoom     = "join_room"
	EventSendMessage  = "send_message"
)

// Outbound event names.
const (
	EventAuthenticated = "authenticated"
	EventError         = "error"
	EventJoinedRoom    = "joined_room"
	EventNewMessage    = "new_message"
)

// Envelope is the wire format in both directions:
// {"event": "...", "data": {...}}.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type AuthenticatePayload struct {
	Token string `json:"token"`
}

type JoinRoomPayload struct {
	RoomID uuid.UUID `json:"room_id"`
}

type SendMessagePayload struct {
	RoomID  uuid.UUID `json:"room_id"`
	Message string    `json:"message"`
}

type AuthenticatedPayload struct {
	UserID uuid.UUID   `json:"user_id"`
	Role   string      `json:"role"`
	Rooms  []uuid.UUID `json:"rooms"`
}

type JoinedRoomPayload struct {
	RoomID uuid.UUID `json:"room_id"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
