package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/telecare/telecare_backend/internal/repo"
	entmsg "github.com/telecare/telecare_backend/internal/repo/chatmessage"
	entroom "github.com/telecare/telecare_backend/internal/repo/chatroom"
	entdoctor "github.com/telecare/telecare_backend/internal/repo/doctor"
	entpatient "github.com/telecare/telecare_backend/internal/repo/patient"
	entuser "github.com/telecare/telecare_backend/internal/repo/user"
	pasetotoken "github.com/telecare/telecare_backend/pkg/paseto"
)

// SubjectMessageNew is published for every stored message. The wildcard
// segment is the room id; the payload is a MessageView JSON.
const SubjectMessageNew = "telecare.message.new"

// SubjectMessageNewWildcard subscribes to messages for all rooms.
const SubjectMessageNewWildcard = SubjectMessageNew + ".*"

const maxMessageLen = 4000

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Counterpart identifies the other side of a room from the caller's view.
type Counterpart struct {
	UserID    uuid.UUID `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

type RoomView struct {
	ID            uuid.UUID   `json:"id"`
	PatientID     uuid.UUID   `json:"patient_id"`
	DoctorID      uuid.UUID   `json:"doctor_id"`
	Counterpart   Counterpart `json:"counterpart"`
	LastMessageAt *time.Time  `json:"last_message_at,omitempty"`
	UnreadCount   int         `json:"unread_count"`
}

type MessageView struct {
	ID              uuid.UUID  `json:"id"`
	RoomID          uuid.UUID  `json:"room_id"`
	SenderID        uuid.UUID  `json:"sender_id"`
	SenderRole      string     `json:"sender_role"`
	SenderFirstName string     `json:"sender_first_name"`
	SenderLastName  string     `json:"sender_last_name"`
	Content         string     `json:"content"`
	CreatedAt       time.Time  `json:"created_at"`
	ReadAt          *time.Time `json:"read_at,omitempty"`
}

type ListMessagesRequest struct {
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// RoomForPatient returns the patient's room, creating it if the doctor
	// assignment exists but the room row is missing.
	RoomForPatient(ctx context.Context, patientID uuid.UUID) (*RoomView, error)

	// RoomsForDoctor lists all of the doctor's rooms, newest activity first.
	RoomsForDoctor(ctx context.Context, doctorID uuid.UUID) ([]RoomView, error)

	// RoomIDsFor lists the ids of every room the identity belongs to.
	RoomIDsFor(ctx context.Context, id pasetotoken.Identity) ([]uuid.UUID, error)

	// Authorize returns nil when the identity is a participant of the room.
	Authorize(ctx context.Context, id pasetotoken.Identity, roomID uuid.UUID) error

	// ListMessages returns a page of messages, oldest first, and marks the
	// counterparty's unread messages in the room as read.
	ListMessages(ctx context.Context, id pasetotoken.Identity, roomID uuid.UUID, req ListMessagesRequest) ([]MessageView, error)

	// UnreadCount returns the total unread messages across the caller's rooms.
	UnreadCount(ctx context.Context, id pasetotoken.Identity) (int, error)

	SendMessage(ctx context.Context, id pasetotoken.Identity, roomID uuid.UUID, content string) (*MessageView, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type chatService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &chatService{db: db, nc: nc}
}

// ---------------------------------------------------------------------------
// Rooms
// ---------------------------------------------------------------------------

func (s *chatService) RoomForPatient(ctx context.Context, patientID uuid.UUID) (*RoomView, error) {
	p, err := s.db.Patient.Get(ctx, patientID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	if p.AssignedDoctorID == nil {
		return nil, ErrNoDoctor
	}

	room, err := s.getOrCreateRoom(ctx, patientID, *p.AssignedDoctorID)
	if err != nil {
		return nil, err
	}

	doc, err := s.db.Doctor.Query().
		Where(entdoctor.ID(*p.AssignedDoctorID)).
		WithUser().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get doctor: %w", err)
	}

	view := RoomView{
		ID:            room.ID,
		PatientID:     room.PatientID,
		DoctorID:      room.DoctorID,
		LastMessageAt: room.LastMessageAt,
	}
	if u := doc.Edges.User; u != nil {
		view.Counterpart = Counterpart{UserID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
	}

	unread, err := s.unreadInRoom(ctx, room.ID, p.UserID)
	if err != nil {
		return nil, err
	}
	view.UnreadCount = unread

	return &view, nil
}

func (s *chatService) RoomsForDoctor(ctx context.Context, doctorID uuid.UUID) ([]RoomView, error) {
	doc, err := s.db.Doctor.Get(ctx, doctorID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}

	rooms, err := s.db.ChatRoom.Query().
		Where(entroom.DoctorID(doctorID)).
		Order(entroom.ByLastMessageAt(sql.OrderDesc(), sql.OrderNullsLast())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	out := make([]RoomView, 0, len(rooms))
	for _, room := range rooms {
		view := RoomView{
			ID:            room.ID,
			PatientID:     room.PatientID,
			DoctorID:      room.DoctorID,
			LastMessageAt: room.LastMessageAt,
		}

		pat, err := s.db.Patient.Query().
			Where(entpatient.ID(room.PatientID)).
			WithUser().
			Only(ctx)
		if err != nil {
			return nil, fmt.Errorf("get patient: %w", err)
		}
		if u := pat.Edges.User; u != nil {
			view.Counterpart = Counterpart{UserID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
		}

		unread, err := s.unreadInRoom(ctx, room.ID, doc.UserID)
		if err != nil {
			return nil, err
		}
		view.UnreadCount = unread

		out = append(out, view)
	}
	return out, nil
}

// getOrCreateRoom is safe under concurrent callers: both race to insert, the
// unique (patient_id, doctor_id) index collapses them onto one row, and the
// loser re-reads.
func (s *chatService) getOrCreateRoom(ctx context.Context, patientID, doctorID uuid.UUID) (*repo.ChatRoom, error) {
	room, err := s.db.ChatRoom.Query().
		Where(entroom.PatientID(patientID), entroom.DoctorID(doctorID)).
		Only(ctx)
	if err == nil {
		return room, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get room: %w", err)
	}

	if err := s.db.ChatRoom.Create().
		SetPatientID(patientID).
		SetDoctorID(doctorID).
		OnConflictColumns(entroom.FieldPatientID, entroom.FieldDoctorID).
		Ignore().
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	room, err = s.db.ChatRoom.Query().
		Where(entroom.PatientID(patientID), entroom.DoctorID(doctorID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("refetch room: %w", err)
	}
	return room, nil
}

// ---------------------------------------------------------------------------
// Authorization
// ---------------------------------------------------------------------------

func (s *chatService) Authorize(ctx context.Context, id pasetotoken.Identity, roomID uuid.UUID) error {
	room, err := s.db.ChatRoom.Get(ctx, roomID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("get room: %w", err)
	}

	switch id.Role {
	case pasetotoken.RolePatient:
		if id.PatientID != nil && room.PatientID == *id.PatientID {
			return nil
		}
	case pasetotoken.RoleDoctor:
		if id.DoctorID != nil && room.DoctorID == *id.DoctorID {
			return nil
		}
	}
	return ErrNotParticipant
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

func (s *chatService) ListMessages(ctx context.Context, id pasetotoken.Identity, roomID uuid.UUID, req ListMessagesRequest) ([]MessageView, error) {
	if err := s.Authorize(ctx, id, roomID); err != nil {
		return nil, err
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 50
	}
	offset := (req.Page - 1) * req.PerPage

	msgs, err := s.db.ChatMessage.Query().
		Where(entmsg.RoomID(roomID)).
		Order(entmsg.ByCreatedAt(sql.OrderAsc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	// Viewing the room marks the counterparty's messages read. Idempotent,
	// re-reads touch nothing.
	if _, err := s.db.ChatMessage.Update().
		Where(
			entmsg.RoomID(roomID),
			entmsg.SenderIDNEQ(id.UserID),
			entmsg.ReadAtIsNil(),
		).
		SetReadAt(time.Now()).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("mark messages read: %w", err)
	}

	return s.toViews(ctx, msgs)
}

func (s *chatService) UnreadCount(ctx context.Context, id pasetotoken.Identity) (int, error) {
	roomIDs, err := s.RoomIDsFor(ctx, id)
	if err != nil {
		return 0, err
	}
	if len(roomIDs) == 0 {
		return 0, nil
	}

	n, err := s.db.ChatMessage.Query().
		Where(
			entmsg.RoomIDIn(roomIDs...),
			entmsg.SenderIDNEQ(id.UserID),
			entmsg.ReadAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return n, nil
}

func (s *chatService) SendMessage(ctx context.Context, id pasetotoken.Identity, roomID uuid.UUID, content string) (*MessageView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	if len(content) > maxMessageLen {
		return nil, ErrMessageTooLong
	}

	if err := s.Authorize(ctx, id, roomID); err != nil {
		return nil, err
	}

	msg, err := s.db.ChatMessage.Create().
		SetRoomID(roomID).
		SetSenderID(id.UserID).
		SetSenderRole(entmsg.SenderRole(id.Role)).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("store message: %w", err)
	}

	_ = s.db.ChatRoom.Update().
		Where(entroom.ID(roomID)).
		SetLastMessageAt(msg.CreatedAt).
		Exec(ctx)

	views, err := s.toViews(ctx, []*repo.ChatMessage{msg})
	if err != nil {
		return nil, err
	}
	view := &views[0]

	s.publishMessage(view)

	return view, nil
}

func (s *chatService) publishMessage(view *MessageView) {
	if s.nc == nil {
		return
	}
	payload, err := json.Marshal(view)
	if err != nil {
		return
	}
	subject := fmt.Sprintf("%s.%s", SubjectMessageNew, view.RoomID.String())
	if err := s.nc.Publish(subject, payload); err != nil {
		slog.Warn("failed to publish message.new", "room_id", view.RoomID, "error", err)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *chatService) RoomIDsFor(ctx context.Context, id pasetotoken.Identity) ([]uuid.UUID, error) {
	q := s.db.ChatRoom.Query()

	switch id.Role {
	case pasetotoken.RolePatient:
		if id.PatientID == nil {
			return nil, ErrNotParticipant
		}
		q = q.Where(entroom.PatientID(*id.PatientID))
	case pasetotoken.RoleDoctor:
		if id.DoctorID == nil {
			return nil, ErrNotParticipant
		}
		q = q.Where(entroom.DoctorID(*id.DoctorID))
	default:
		return nil, ErrNotParticipant
	}

	ids, err := q.IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list room ids: %w", err)
	}
	return ids, nil
}

func (s *chatService) unreadInRoom(ctx context.Context, roomID, viewerUserID uuid.UUID) (int, error) {
	n, err := s.db.ChatMessage.Query().
		Where(
			entmsg.RoomID(roomID),
			entmsg.SenderIDNEQ(viewerUserID),
			entmsg.ReadAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return n, nil
}

// toViews decorates messages with sender names, fetching each distinct
// sender once.
func (s *chatService) toViews(ctx context.Context, msgs []*repo.ChatMessage) ([]MessageView, error) {
	senderIDs := make([]uuid.UUID, 0, len(msgs))
	seen := make(map[uuid.UUID]bool, len(msgs))
	for _, m := range msgs {
		if !seen[m.SenderID] {
			seen[m.SenderID] = true
			senderIDs = append(senderIDs, m.SenderID)
		}
	}

	names := make(map[uuid.UUID]*repo.User, len(senderIDs))
	if len(senderIDs) > 0 {
		users, err := s.db.User.Query().
			Where(entuser.IDIn(senderIDs...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load senders: %w", err)
		}
		for _, u := range users {
			names[u.ID] = u
		}
	}

	out := make([]MessageView, 0, len(msgs))
	for _, m := range msgs {
		v := MessageView{
			ID:         m.ID,
			RoomID:     m.RoomID,
			SenderID:   m.SenderID,
			SenderRole: string(m.SenderRole),
			Content:    m.Content,
			CreatedAt:  m.CreatedAt,
			ReadAt:     m.ReadAt,
		}
		if u := names[m.SenderID]; u != nil {
			v.SenderFirstName = u.FirstName
			v.SenderLastName = u.LastName
		}
		out = append(out, v)
	}
	return out, nil
}
