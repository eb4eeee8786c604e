package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/telecare/telecare_backend/internal/api/http/handler"
)

func (r *Router) registerDoctorRoutes(
	api fiber.Router,
	h *handler.DoctorHandler,
	authRequired fiber.Handler,
	doctorOnly fiber.Handler,
) {
	group := api.Group("/doctor", authRequired, doctorOnly)

	group.Get("/patients", h.ListPatients)
	group.Get("/patients/:id", h.PatientDetail)
}
