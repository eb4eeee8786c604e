package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/telecare/telecare_backend/internal/api/http/handler"
)

func (r *Router) registerOnboardingRoutes(
	api fiber.Router,
	h *handler.OnboardingHandler,
	authRequired fiber.Handler,
	patientOnly fiber.Handler,
) {
	// The doctor directory is readable by any authenticated user.
	api.Group("/onboarding", authRequired).Get("/doctors", h.ListDoctors)

	group := api.Group("/onboarding", authRequired, patientOnly)

	group.Get("/status", h.Status)

	group.Post("/step1", h.SaveStep1)
	group.Get("/step1", h.GetStep1)
	group.Post("/step2", h.SaveStep2)
	group.Get("/step2", h.GetStep2)
	group.Post("/step3", h.SaveStep3)
	group.Get("/step3", h.GetStep3)

	group.Post("/complete", h.Complete)
}
