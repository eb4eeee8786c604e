package chat

import "errors"

var (
	ErrRoomNotFound   = errors.New("chat room not found")
	ErrNotParticipant = errors.New("not a participant in this chat room")
	ErrNoDoctor       = errors.New("no doctor assigned yet")
	ErrEmptyMessage   = errors.New("message content is empty")
	ErrMessageTooLong = errors.New("message content exceeds the maximum length")
)
