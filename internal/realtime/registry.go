package realtime

import (
	"sync"

	"github.com/google/uuid"
)

// Registry tracks authenticated sessions by user and by joined room. A user
// may hold several concurrent connections (phone and browser), so both maps
// hold session sets. RWMutex fits the read-heavy broadcast path.
type Registry struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID]map[*Session]bool
	byRoom map[uuid.UUID]map[*Session]bool
}

func NewRegistry() *Registry {
	return &Registry{
		byUser: make(map[uuid.UUID]map[*Session]bool),
		byRoom: make(map[uuid.UUID]map[*Session]bool),
	}
}

// Register adds an authenticated session. Existing connections for the same
// user stay live.
func (r *Registry) Register(userID uuid.UUID, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byUser[userID] == nil {
		r.byUser[userID] = make(map[*Session]bool)
	}
	r.byUser[userID][s] = true
}

// Unregister removes one session, leaving the user's other connections
// untouched.
func (r *Registry) Unregister(userID uuid.UUID, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sessions, ok := r.byUser[userID]; ok {
		delete(sessions, s)
		if len(sessions) == 0 {
			delete(r.byUser, userID)
		}
	}

	for _, roomID := range s.Rooms() {
		if members, ok := r.byRoom[roomID]; ok {
			delete(members, s)
			if len(members) == 0 {
				delete(r.byRoom, roomID)
			}
		}
	}
}

func (r *Registry) JoinRoom(roomID uuid.UUID, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byRoom[roomID] == nil {
		r.byRoom[roomID] = make(map[*Session]bool)
	}
	r.byRoom[roomID][s] = true
	s.JoinRoom(roomID)
}

// RoomSessions returns the sessions currently joined to a room.
func (r *Registry) RoomSessions(roomID uuid.UUID) []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.byRoom[roomID]
	out := make([]*Session, 0, len(members))
	for s := range members {
		out = append(out, s)
	}
	return out
}

// UserSessionCount returns how many live connections the user holds.
func (r *Registry) UserSessionCount(userID uuid.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser[userID])
}

// Stats reports connection and room counts.
func (r *Registry) Stats() (connections, rooms int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, sessions := range r.byUser {
		connections += len(sessions)
	}
	return connections, len(r.byRoom)
}
