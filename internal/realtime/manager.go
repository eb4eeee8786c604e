package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/telecare/telecare_backend/internal/service/chat"
	pasetotoken "github.com/telecare/telecare_backend/pkg/paseto"
)

// authTimeout is how long a connection may stay unauthenticated before the
// server hangs up.
const authTimeout = 30 * time.Second

// ChatService is the slice of the chat service the realtime layer needs.
type ChatService interface {
	RoomIDsFor(ctx context.Context, id pasetotoken.Identity) ([]uuid.UUID, error)
	Authorize(ctx context.Context, id pasetotoken.Identity, roomID uuid.UUID) error
	SendMessage(ctx context.Context, id pasetotoken.Identity, roomID uuid.UUID, content string) (*chat.MessageView, error)
}

// PresenceService records connect/disconnect transitions.
type PresenceService interface {
	MarkOnline(ctx context.Context, userID uuid.UUID) error
	MarkOffline(ctx context.Context, userID uuid.UUID) error
}

// TokenVerifier validates bearer tokens from the authenticate event.
type TokenVerifier interface {
	Verify(token string) (*pasetotoken.Claims, error)
}

// Manager owns the websocket side of chat: it authenticates connections,
// tracks room membership, and fans NATS message events out to joined
// sessions. Message persistence stays in the chat service; every message
// reaches connected clients through NATS, so multiple instances behave the
// same as one.
type Manager struct {
	chat     ChatService
	presence PresenceService
	tokens   TokenVerifier
	registry *Registry
	nc       *nats.Conn
	log      *slog.Logger

	sub *nats.Subscription
}

func NewManager(
	chatSvc ChatService,
	pres PresenceService,
	tokens TokenVerifier,
	nc *nats.Conn,
	log *slog.Logger,
) *Manager {
	return &Manager{
		chat:     chatSvc,
		presence: pres,
		tokens:   tokens,
		registry: NewRegistry(),
		nc:       nc,
		log:      log,
	}
}

func (m *Manager) Registry() *Registry { return m.registry }

// Start subscribes to the message stream. Call Stop on shutdown.
func (m *Manager) Start() error {
	if m.nc == nil {
		return nil
	}
	sub, err := m.nc.Subscribe(chat.SubjectMessageNewWildcard, m.onMessageEvent)
	if err != nil {
		return err
	}
	m.sub = sub
	return nil
}

func (m *Manager) Stop() {
	if m.sub != nil {
		_ = m.sub.Unsubscribe()
		m.sub = nil
	}
}

func (m *Manager) onMessageEvent(msg *nats.Msg) {
	var view chat.MessageView
	if err := json.Unmarshal(msg.Data, &view); err != nil {
		m.log.Warn("dropping malformed message event", "subject", msg.Subject, "error", err)
		return
	}
	m.broadcast(view.RoomID, EventNewMessage, view)
}

// broadcast delivers an event to every session joined to the room.
func (m *Manager) broadcast(roomID uuid.UUID, event string, data any) {
	for _, s := range m.registry.RoomSessions(roomID) {
		if err := s.Send(event, data); err != nil {
			m.log.Debug("broadcast write failed", "room_id", roomID, "error", err)
		}
	}
}

// ServeWS runs the read loop for one websocket connection. It returns when
// the peer disconnects or the connection errors.
func (m *Manager) ServeWS(ws *websocket.Conn) {
	conn := NewConn(ws)
	sess := NewSession(conn)

	// Unauthenticated connections get hung up on.
	authTimer := time.AfterFunc(authTimeout, func() {
		if sess.State() == StateConnected {
			_ = sess.Send(EventError, ErrorPayload{Message: "authentication timeout"})
			sess.Close()
		}
	})
	defer authTimer.Stop()

	defer m.cleanup(sess)

	for {
		env, err := conn.ReadEnvelope()
		if err != nil {
			if err == ErrBadPayload {
				_ = sess.Send(EventError, ErrorPayload{Message: "malformed payload"})
				continue
			}
			return
		}
		m.handleEvent(context.Background(), sess, env)
	}
}

func (m *Manager) handleEvent(ctx context.Context, sess *Session, env *Envelope) {
	switch env.Event {
	case EventAuthenticate:
		m.handleAuthenticate(ctx, sess, env.Data)
	case EventJoinRoom:
		m.handleJoinRoom(ctx, sess, env.Data)
	case EventSendMessage:
		m.handleSendMessage(ctx, sess, env.Data)
	default:
		_ = sess.Send(EventError, ErrorPayload{Message: "unknown event: " + env.Event})
	}
}

func (m *Manager) handleAuthenticate(ctx context.Context, sess *Session, data json.RawMessage) {
	var p AuthenticatePayload
	if err := json.Unmarshal(data, &p); err != nil || p.Token == "" {
		_ = sess.Send(EventError, ErrorPayload{Message: "token is required"})
		return
	}

	claims, err := m.tokens.Verify(p.Token)
	if err != nil || claims.Type != pasetotoken.TokenTypeAccess {
		_ = sess.Send(EventError, ErrorPayload{Message: "invalid token"})
		return
	}

	if err := sess.Authenticate(claims.Identity); err != nil {
		_ = sess.Send(EventError, ErrorPayload{Message: err.Error()})
		return
	}

	m.registry.Register(claims.UserID, sess)

	if err := m.presence.MarkOnline(ctx, claims.UserID); err != nil {
		m.log.Warn("failed to mark user online", "user_id", claims.UserID, "error", err)
	}

	// Subscribe the connection to every room the identity belongs to, so
	// messages flow without an explicit join. join_room stays available for
	// rooms created after connect.
	rooms, err := m.chat.RoomIDsFor(ctx, claims.Identity)
	if err != nil {
		m.log.Warn("failed to load room subscriptions", "user_id", claims.UserID, "error", err)
	}
	for _, roomID := range rooms {
		m.registry.JoinRoom(roomID, sess)
	}

	_ = sess.Send(EventAuthenticated, AuthenticatedPayload{
		UserID: claims.UserID,
		Role:   string(claims.Role),
		Rooms:  rooms,
	})
}

func (m *Manager) handleJoinRoom(ctx context.Context, sess *Session, data json.RawMessage) {
	id, ok := sess.Identity()
	if !ok {
		_ = sess.Send(EventError, ErrorPayload{Message: "authenticate first"})
		return
	}

	var p JoinRoomPayload
	if err := json.Unmarshal(data, &p); err != nil || p.RoomID == uuid.Nil {
		_ = sess.Send(EventError, ErrorPayload{Message: "room_id is required"})
		return
	}

	// Membership is checked on every join, not assumed from the token.
	if err := m.chat.Authorize(ctx, id, p.RoomID); err != nil {
		_ = sess.Send(EventError, ErrorPayload{Message: "not a participant in this room"})
		return
	}

	m.registry.JoinRoom(p.RoomID, sess)

	_ = sess.Send(EventJoinedRoom, JoinedRoomPayload{RoomID: p.RoomID})
}

func (m *Manager) handleSendMessage(ctx context.Context, sess *Session, data json.RawMessage) {
	id, ok := sess.Identity()
	if !ok {
		_ = sess.Send(EventError, ErrorPayload{Message: "authenticate first"})
		return
	}

	var p SendMessagePayload
	if err := json.Unmarshal(data, &p); err != nil || p.RoomID == uuid.Nil {
		_ = sess.Send(EventError, ErrorPayload{Message: "room_id and message are required"})
		return
	}

	// Membership is enforced by the chat service itself. Persisting
	// publishes to NATS; delivery to this and every other joined session
	// comes back through the subscription.
	if _, err := m.chat.SendMessage(ctx, id, p.RoomID, p.Message); err != nil {
		_ = sess.Send(EventError, ErrorPayload{Message: err.Error()})
		return
	}
}

func (m *Manager) cleanup(sess *Session) {
	id, authed := sess.Identity()

	sess.Close()

	if !authed {
		return
	}

	m.registry.Unregister(id.UserID, sess)

	// The user counts as online while any of their connections remain.
	if m.registry.UserSessionCount(id.UserID) > 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.presence.MarkOffline(ctx, id.UserID); err != nil {
		m.log.Warn("failed to mark user offline", "user_id", id.UserID, "error", err)
	}
}
