package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/telecare/telecare_backend/internal/service/chat"
	pasetotoken "github.com/telecare/telecare_backend/pkg/paseto"
)

type ChatHandler struct {
	svc chat.Service
}

func NewChatHandler(svc chat.Service) *ChatHandler {
	return &ChatHandler{svc: svc}
}

func mapChatError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, chat.ErrRoomNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, chat.ErrNotParticipant):
		return forbidden(c)
	case errors.Is(err, chat.ErrNoDoctor):
		return conflict(c, err.Error())
	case errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, chat.ErrMessageTooLong):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /chat/room
func (h *ChatHandler) Room(c fiber.Ctx) error {
	patientID, valid := patientIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	room, err := h.svc.RoomForPatient(c.Context(), patientID)
	if err != nil {
		return mapChatError(c, err)
	}

	return ok(c, room)
}

// GET /chat/rooms
func (h *ChatHandler) Rooms(c fiber.Ctx) error {
	doctorID, valid := doctorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	rooms, err := h.svc.RoomsForDoctor(c.Context(), doctorID)
	if err != nil {
		return mapChatError(c, err)
	}

	return ok(c, rooms)
}

// GET /chat/rooms/:id/messages
func (h *ChatHandler) ListMessages(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	roomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid room id")
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	messages, err := h.svc.ListMessages(c.Context(), claims.Identity, roomID, chat.ListMessagesRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		return mapChatError(c, err)
	}

	return ok(c, messages)
}

// POST /chat/rooms/:id/messages
func (h *ChatHandler) SendMessage(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	roomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid room id")
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	msg, err := h.svc.SendMessage(c.Context(), claims.Identity, roomID, body.Content)
	if err != nil {
		return mapChatError(c, err)
	}

	return created(c, msg)
}

// GET /chat/unread-count
func (h *ChatHandler) UnreadCount(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	count, err := h.svc.UnreadCount(c.Context(), claims.Identity)
	if err != nil {
		return mapChatError(c, err)
	}

	return ok(c, fiber.Map{"unread_count": count})
}
