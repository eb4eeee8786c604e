package realtime

import (
	"testing"

	"github.com/google/uuid"
)

func TestRegistryJoinAndRoomSessions(t *testing.T) {
	r := NewRegistry()
	roomID := uuid.New()
	userA, userB := uuid.New(), uuid.New()
	sessA, sessB := NewSession(&fakeSink{}), NewSession(&fakeSink{})

	r.Register(userA, sessA)
	r.Register(userB, sessB)
	r.JoinRoom(roomID, sessA)
	r.JoinRoom(roomID, sessB)

	if got := len(r.RoomSessions(roomID)); got != 2 {
		t.Fatalf("RoomSessions() = %d sessions, want 2", got)
	}

	r.Unregister(userA, sessA)

	if got := len(r.RoomSessions(roomID)); got != 1 {
		t.Fatalf("after unregister: RoomSessions() = %d sessions, want 1", got)
	}
	if got := r.UserSessionCount(userA); got != 0 {
		t.Errorf("UserSessionCount() = %d for unregistered user, want 0", got)
	}
}

func TestRegistryKeepsConcurrentSessionsPerUser(t *testing.T) {
	r := NewRegistry()
	roomID := uuid.New()
	userID := uuid.New()
	first := NewSession(&fakeSink{})
	second := NewSession(&fakeSink{})

	r.Register(userID, first)
	r.Register(userID, second)
	r.JoinRoom(roomID, first)
	r.JoinRoom(roomID, second)

	if got := r.UserSessionCount(userID); got != 2 {
		t.Fatalf("UserSessionCount() = %d, want 2", got)
	}
	if got := len(r.RoomSessions(roomID)); got != 2 {
		t.Fatalf("RoomSessions() = %d, want 2 (one per connection)", got)
	}

	// Dropping one connection leaves the other subscribed.
	r.Unregister(userID, first)

	if got := r.UserSessionCount(userID); got != 1 {
		t.Errorf("UserSessionCount() = %d after one disconnect, want 1", got)
	}
	sessions := r.RoomSessions(roomID)
	if len(sessions) != 1 || sessions[0] != second {
		t.Errorf("RoomSessions() = %v, want only the surviving session", sessions)
	}
}

func TestRegistryEmptyRoomsCleanedUp(t *testing.T) {
	r := NewRegistry()
	roomID := uuid.New()
	userID := uuid.New()
	sess := NewSession(&fakeSink{})

	r.Register(userID, sess)
	r.JoinRoom(roomID, sess)
	r.Unregister(userID, sess)

	_, rooms := r.Stats()
	if rooms != 0 {
		t.Errorf("Stats() rooms = %d, want 0", rooms)
	}
}
