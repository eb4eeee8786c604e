package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/telecare/telecare_backend/internal/api/http/handler"
)

func (r *Router) registerChatRoutes(
	api fiber.Router,
	h *handler.ChatHandler,
	authRequired fiber.Handler,
	patientOnly fiber.Handler,
	doctorOnly fiber.Handler,
) {
	group := api.Group("/chat", authRequired)

	group.Get("/room", patientOnly, h.Room)
	group.Get("/rooms", doctorOnly, h.Rooms)
	group.Get("/unread-count", h.UnreadCount)

	room := group.Group("/rooms/:id")
	room.Get("/messages", h.ListMessages)
	room.Post("/messages", h.SendMessage)
}
