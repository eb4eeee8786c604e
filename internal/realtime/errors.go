package realtime

import "errors"

var (
	ErrConnClosed       = errors.New("connection closed")
	ErrWriteTimeout     = errors.New("write timed out")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrAlreadyAuthed    = errors.New("already authenticated")
	ErrUnknownEvent     = errors.New("unknown event")
	ErrBadPayload       = errors.New("malformed event payload")
)
