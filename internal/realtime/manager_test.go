package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/telecare/telecare_backend/internal/service/chat"
	pasetotoken "github.com/telecare/telecare_backend/pkg/paseto"
)

// fakeSink records everything written to a session.
type fakeSink struct {
	mu     sync.Mutex
	events []recordedEvent
	closed bool
}

type recordedEvent struct {
	event string
	data  any
}

func (f *fakeSink) WriteEvent(event string, data any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrConnClosed
	}
	f.events = append(f.events, recordedEvent{event: event, data: data})
	return nil
}

func (f *fakeSink) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeSink) lastEvent(t *testing.T) recordedEvent {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.events) == 0 {
		t.Fatal("no events written")
	}
	return f.events[len(f.events)-1]
}

func (f *fakeSink) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// stubChat authorizes a fixed set of rooms, which doubles as the identity's
// room set at authenticate time.
type stubChat struct {
	allowed map[uuid.UUID]bool
	sent    []string
}

func (s *stubChat) RoomIDsFor(_ context.Context, _ pasetotoken.Identity) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(s.allowed))
	for id := range s.allowed {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *stubChat) Authorize(_ context.Context, _ pasetotoken.Identity, roomID uuid.UUID) error {
	if s.allowed[roomID] {
		return nil
	}
	return chat.ErrNotParticipant
}

func (s *stubChat) SendMessage(_ context.Context, id pasetotoken.Identity, roomID uuid.UUID, content string) (*chat.MessageView, error) {
	if !s.allowed[roomID] {
		return nil, chat.ErrNotParticipant
	}
	s.sent = append(s.sent, content)
	return &chat.MessageView{ID: uuid.New(), RoomID: roomID, SenderID: id.UserID, Content: content}, nil
}

type stubPresence struct {
	online  []uuid.UUID
	offline []uuid.UUID
}

func (s *stubPresence) MarkOnline(_ context.Context, userID uuid.UUID) error {
	s.online = append(s.online, userID)
	return nil
}

func (s *stubPresence) MarkOffline(_ context.Context, userID uuid.UUID) error {
	s.offline = append(s.offline, userID)
	return nil
}

type stubVerifier struct {
	claims *pasetotoken.Claims
	err    error
}

func (s *stubVerifier) Verify(string) (*pasetotoken.Claims, error) {
	return s.claims, s.err
}

func patientClaims(userID uuid.UUID) *pasetotoken.Claims {
	pid := uuid.New()
	return &pasetotoken.Claims{
		Type: pasetotoken.TokenTypeAccess,
		Identity: pasetotoken.Identity{
			UserID:    userID,
			Role:      pasetotoken.RolePatient,
			PatientID: &pid,
		},
	}
}

func mustRaw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return raw
}

func newTestManager(chatSvc ChatService, pres PresenceService, tokens TokenVerifier) *Manager {
	return NewManager(chatSvc, pres, tokens, nil, slog.Default())
}

func TestAuthenticateSuccess(t *testing.T) {
	userID := uuid.New()
	roomID := uuid.New()
	chatSvc := &stubChat{allowed: map[uuid.UUID]bool{roomID: true}}
	m := newTestManager(chatSvc, &stubPresence{}, &stubVerifier{claims: patientClaims(userID)})

	out := &fakeSink{}
	sess := NewSession(out)

	m.handleEvent(context.Background(), sess, &Envelope{
		Event: EventAuthenticate,
		Data:  mustRaw(t, AuthenticatePayload{Token: "tok"}),
	})

	if got := out.lastEvent(t); got.event != EventAuthenticated {
		t.Fatalf("event = %q, want %q", got.event, EventAuthenticated)
	}
	if sess.State() != StateAuthenticated {
		t.Errorf("State() = %v, want StateAuthenticated", sess.State())
	}
	if got := m.registry.UserSessionCount(userID); got != 1 {
		t.Errorf("UserSessionCount() = %d after authenticate, want 1", got)
	}
	// The identity's rooms are subscribed without an explicit join.
	if !sess.InRoom(roomID) {
		t.Error("session not subscribed to its room after authenticate")
	}
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	m := newTestManager(&stubChat{}, &stubPresence{}, &stubVerifier{err: errors.New("bad token")})

	out := &fakeSink{}
	sess := NewSession(out)

	m.handleEvent(context.Background(), sess, &Envelope{
		Event: EventAuthenticate,
		Data:  mustRaw(t, AuthenticatePayload{Token: "garbage"}),
	})

	if got := out.lastEvent(t); got.event != EventError {
		t.Fatalf("event = %q, want %q", got.event, EventError)
	}
	if sess.State() != StateConnected {
		t.Errorf("State() = %v, want StateConnected", sess.State())
	}
}

func TestJoinRoomRequiresAuth(t *testing.T) {
	m := newTestManager(&stubChat{}, &stubPresence{}, &stubVerifier{})

	out := &fakeSink{}
	sess := NewSession(out)

	m.handleEvent(context.Background(), sess, &Envelope{
		Event: EventJoinRoom,
		Data:  mustRaw(t, JoinRoomPayload{RoomID: uuid.New()}),
	})

	if got := out.lastEvent(t); got.event != EventError {
		t.Fatalf("event = %q, want %q", got.event, EventError)
	}
}

func TestJoinRoomVerifiesMembership(t *testing.T) {
	userID := uuid.New()
	allowedRoom := uuid.New()
	deniedRoom := uuid.New()
	chatSvc := &stubChat{allowed: map[uuid.UUID]bool{allowedRoom: true}}
	m := newTestManager(chatSvc, &stubPresence{}, &stubVerifier{claims: patientClaims(userID)})

	out := &fakeSink{}
	sess := NewSession(out)
	m.handleEvent(context.Background(), sess, &Envelope{
		Event: EventAuthenticate,
		Data:  mustRaw(t, AuthenticatePayload{Token: "tok"}),
	})

	m.handleEvent(context.Background(), sess, &Envelope{
		Event: EventJoinRoom,
		Data:  mustRaw(t, JoinRoomPayload{RoomID: deniedRoom}),
	})
	if got := out.lastEvent(t); got.event != EventError {
		t.Fatalf("join denied room: event = %q, want %q", got.event, EventError)
	}

	m.handleEvent(context.Background(), sess, &Envelope{
		Event: EventJoinRoom,
		Data:  mustRaw(t, JoinRoomPayload{RoomID: allowedRoom}),
	})
	if got := out.lastEvent(t); got.event != EventJoinedRoom {
		t.Fatalf("join allowed room: event = %q, want %q", got.event, EventJoinedRoom)
	}
	if !sess.InRoom(allowedRoom) {
		t.Error("session not joined to allowed room")
	}
	if sess.InRoom(deniedRoom) {
		t.Error("session joined to denied room")
	}
}

func TestSendMessageRequiresAuthOnly(t *testing.T) {
	userID := uuid.New()
	roomID := uuid.New()
	chatSvc := &stubChat{allowed: map[uuid.UUID]bool{roomID: true}}
	m := newTestManager(chatSvc, &stubPresence{}, &stubVerifier{claims: patientClaims(userID)})

	out := &fakeSink{}
	sess := NewSession(out)

	// Send before authenticating: error, no side effect.
	m.handleEvent(context.Background(), sess, &Envelope{
		Event: EventSendMessage,
		Data:  mustRaw(t, SendMessagePayload{RoomID: roomID, Message: "hi"}),
	})
	if got := out.lastEvent(t); got.event != EventError {
		t.Fatalf("event = %q, want %q", got.event, EventError)
	}
	if len(chatSvc.sent) != 0 {
		t.Fatalf("message stored before authentication: %v", chatSvc.sent)
	}

	// After authenticating, sending needs no explicit join.
	m.handleEvent(context.Background(), sess, &Envelope{
		Event: EventAuthenticate,
		Data:  mustRaw(t, AuthenticatePayload{Token: "tok"}),
	})
	m.handleEvent(context.Background(), sess, &Envelope{
		Event: EventSendMessage,
		Data:  mustRaw(t, SendMessagePayload{RoomID: roomID, Message: "hi"}),
	})
	if len(chatSvc.sent) != 1 || chatSvc.sent[0] != "hi" {
		t.Fatalf("sent = %v, want [hi]", chatSvc.sent)
	}
}

func TestBroadcastReachesJoinedSessions(t *testing.T) {
	roomID := uuid.New()
	chatSvc := &stubChat{allowed: map[uuid.UUID]bool{roomID: true}}
	m := newTestManager(chatSvc, &stubPresence{}, &stubVerifier{})

	userA, userB := uuid.New(), uuid.New()
	outA, outB := &fakeSink{}, &fakeSink{}
	sessA, sessB := NewSession(outA), NewSession(outB)

	if err := sessA.Authenticate(pasetotoken.Identity{UserID: userA, Role: pasetotoken.RolePatient}); err != nil {
		t.Fatal(err)
	}
	if err := sessB.Authenticate(pasetotoken.Identity{UserID: userB, Role: pasetotoken.RoleDoctor}); err != nil {
		t.Fatal(err)
	}
	m.registry.Register(userA, sessA)
	m.registry.Register(userB, sessB)
	m.registry.JoinRoom(roomID, sessA)
	m.registry.JoinRoom(roomID, sessB)

	view := chat.MessageView{ID: uuid.New(), RoomID: roomID, SenderID: userA, Content: "hello"}
	m.broadcast(roomID, EventNewMessage, view)

	for name, out := range map[string]*fakeSink{"A": outA, "B": outB} {
		got := out.lastEvent(t)
		if got.event != EventNewMessage {
			t.Errorf("session %s: event = %q, want %q", name, got.event, EventNewMessage)
		}
	}
}

func TestBroadcastReachesEveryConnectionOfOneUser(t *testing.T) {
	userID := uuid.New()
	roomID := uuid.New()
	chatSvc := &stubChat{allowed: map[uuid.UUID]bool{roomID: true}}
	pres := &stubPresence{}
	m := newTestManager(chatSvc, pres, &stubVerifier{claims: patientClaims(userID)})

	// The same patient connects twice (say phone and browser).
	outA, outB := &fakeSink{}, &fakeSink{}
	sessA, sessB := NewSession(outA), NewSession(outB)
	for _, sess := range []*Session{sessA, sessB} {
		m.handleEvent(context.Background(), sess, &Envelope{
			Event: EventAuthenticate,
			Data:  mustRaw(t, AuthenticatePayload{Token: "tok"}),
		})
	}

	if outA.isClosed() || outB.isClosed() {
		t.Fatal("second connection must not close the first")
	}
	if got := m.registry.UserSessionCount(userID); got != 2 {
		t.Fatalf("UserSessionCount() = %d, want 2", got)
	}

	view := chat.MessageView{ID: uuid.New(), RoomID: roomID, SenderID: userID, Content: "hello"}
	m.broadcast(roomID, EventNewMessage, view)

	for name, out := range map[string]*fakeSink{"A": outA, "B": outB} {
		got := out.lastEvent(t)
		if got.event != EventNewMessage {
			t.Errorf("connection %s: event = %q, want %q", name, got.event, EventNewMessage)
		}
	}

	// Offline fires only once the last connection goes.
	m.cleanup(sessA)
	if len(pres.offline) != 0 {
		t.Fatalf("offline = %v before last disconnect, want none", pres.offline)
	}
	m.cleanup(sessB)
	if len(pres.offline) != 1 || pres.offline[0] != userID {
		t.Errorf("offline = %v, want [%v]", pres.offline, userID)
	}
}

func TestCleanupMarksOffline(t *testing.T) {
	userID := uuid.New()
	pres := &stubPresence{}
	m := newTestManager(&stubChat{}, pres, &stubVerifier{claims: patientClaims(userID)})

	out := &fakeSink{}
	sess := NewSession(out)
	m.handleEvent(context.Background(), sess, &Envelope{
		Event: EventAuthenticate,
		Data:  mustRaw(t, AuthenticatePayload{Token: "tok"}),
	})

	m.cleanup(sess)

	if len(pres.offline) != 1 || pres.offline[0] != userID {
		t.Errorf("offline = %v, want [%v]", pres.offline, userID)
	}
	if got := m.registry.UserSessionCount(userID); got != 0 {
		t.Errorf("UserSessionCount() = %d after cleanup, want 0", got)
	}
}

func TestCleanupSkipsOfflineWhileOtherConnectionsRemain(t *testing.T) {
	userID := uuid.New()
	pres := &stubPresence{}
	m := newTestManager(&stubChat{}, pres, &stubVerifier{})

	first := NewSession(&fakeSink{})
	if err := first.Authenticate(pasetotoken.Identity{UserID: userID, Role: pasetotoken.RolePatient}); err != nil {
		t.Fatal(err)
	}
	m.registry.Register(userID, first)

	second := NewSession(&fakeSink{})
	if err := second.Authenticate(pasetotoken.Identity{UserID: userID, Role: pasetotoken.RolePatient}); err != nil {
		t.Fatal(err)
	}
	m.registry.Register(userID, second)

	m.cleanup(first)

	if len(pres.offline) != 0 {
		t.Errorf("offline = %v, want none (user still connected)", pres.offline)
	}
	if got := m.registry.UserSessionCount(userID); got != 1 {
		t.Errorf("UserSessionCount() = %d, want 1", got)
	}
}
