package middleware

import (
	"github.com/gofiber/fiber/v3"

	pasetotoken "github.com/telecare/telecare_backend/pkg/paseto"
)

// RequireRole rejects requests whose authenticated claims carry a different
// role. Must run after AuthRequired.
func RequireRole(role pasetotoken.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if claims.Role != role {
			return fiber.ErrForbidden
		}
		return c.Next()
	}
}
