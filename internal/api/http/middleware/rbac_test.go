package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	pasetotoken "github.com/telecare/telecare_backend/pkg/paseto"
)

// withClaims plants authenticated claims the way AuthRequired does.
func withClaims(role pasetotoken.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Locals(pasetotoken.CtxKeyClaims, &pasetotoken.Claims{
			Type: pasetotoken.TokenTypeAccess,
			Identity: pasetotoken.Identity{
				UserID: uuid.New(),
				Role:   role,
			},
		})
		return c.Next()
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		middleware []fiber.Handler
		wantStatus int
	}{
		{
			name:       "matching role passes",
			middleware: []fiber.Handler{withClaims(pasetotoken.RoleDoctor), RequireRole(pasetotoken.RoleDoctor)},
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "role mismatch is forbidden",
			middleware: []fiber.Handler{withClaims(pasetotoken.RolePatient), RequireRole(pasetotoken.RoleDoctor)},
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:       "missing claims is unauthorized",
			middleware: []fiber.Handler{RequireRole(pasetotoken.RoleDoctor)},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "bearer-only route needs no role",
			middleware: []fiber.Handler{withClaims(pasetotoken.RoleDoctor)},
			wantStatus: fiber.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			for _, mw := range tt.middleware {
				app.Use(mw)
			}
			app.Get("/guarded", func(c fiber.Ctx) error {
				return c.SendStatus(fiber.StatusOK)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
			if err != nil {
				t.Fatalf("app.Test() error: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}
