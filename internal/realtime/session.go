package realtime

import (
	"sync"

	"github.com/google/uuid"

	pasetotoken "github.com/telecare/telecare_backend/pkg/paseto"
)

// State is the lifecycle of a websocket session. Connections start out
// connected, may only act once authenticated, and never leave closed.
type State int

const (
	StateConnected State = iota
	StateAuthenticated
	StateClosed
)

// Session is one live websocket connection and what we know about it.
type Session struct {
	out sink

	mu       sync.RWMutex
	state    State
	identity pasetotoken.Identity
	rooms    map[uuid.UUID]bool
}

func NewSession(out sink) *Session {
	return &Session{
		out:   out,
		state: StateConnected,
		rooms: make(map[uuid.UUID]bool),
	}
}

// Authenticate moves the session to authenticated. It is a one-shot
// transition.
func (s *Session) Authenticate(id pasetotoken.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateClosed:
		return ErrConnClosed
	case StateAuthenticated:
		return ErrAlreadyAuthed
	}
	s.state = StateAuthenticated
	s.identity = id
	return nil
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Identity returns the authenticated identity. The bool is false before
// authentication.
func (s *Session) Identity() (pasetotoken.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.state == StateAuthenticated
}

func (s *Session) JoinRoom(roomID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[roomID] = true
}

func (s *Session) InRoom(roomID uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rooms[roomID]
}

func (s *Session) Rooms() []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]uuid.UUID, 0, len(s.rooms))
	for id := range s.rooms {
		out = append(out, id)
	}
	return out
}

// Close marks the session closed and closes the underlying connection.
// Idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return
	}
	s.state = StateClosed
	s.mu.Unlock()

	_ = s.out.Close()
}

func (s *Session) Send(event string, data any) error {
	return s.out.WriteEvent(event, data)
}
