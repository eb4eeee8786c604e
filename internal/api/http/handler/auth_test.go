package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/telecare/telecare_backend/internal/repo"
	"github.com/telecare/telecare_backend/internal/service/auth"
	pasetotoken "github.com/telecare/telecare_backend/pkg/paseto"
)

// stubAuth returns a fixed error (or fixed tokens) for every call.
type stubAuth struct {
	err error
}

func (s *stubAuth) tokens() (*auth.AuthTokens, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &auth.AuthTokens{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900}, nil
}

func (s *stubAuth) Register(context.Context, auth.RegisterRequest) (*auth.AuthTokens, error) {
	return s.tokens()
}

func (s *stubAuth) Login(context.Context, auth.LoginRequest) (*auth.AuthTokens, error) {
	return s.tokens()
}

func (s *stubAuth) RefreshTokens(context.Context, string) (*auth.AuthTokens, error) {
	return s.tokens()
}

func (s *stubAuth) Logout(context.Context, uuid.UUID) error { return s.err }

func (s *stubAuth) Me(context.Context, uuid.UUID) (*auth.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &auth.Profile{}, nil
}

func (s *stubAuth) SessionExists(context.Context, uuid.UUID) (bool, error) {
	return s.err == nil, s.err
}

func (s *stubAuth) IdentityFor(context.Context, *repo.User) (pasetotoken.Identity, error) {
	return pasetotoken.Identity{}, s.err
}

func newAuthApp(svc auth.Service) *fiber.App {
	h := NewAuthHandler(svc)
	app := fiber.New()
	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Post("/refresh", h.Refresh)
	return app
}

func TestAuthHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		svcErr error
		want   int
	}{
		{"register ok", "/register", `{"email":"a@b.co","password":"longenough","first_name":"A","last_name":"B"}`, nil, fiber.StatusCreated},
		{"register duplicate email", "/register", `{"email":"a@b.co","password":"longenough","first_name":"A","last_name":"B"}`, auth.ErrEmailAlreadyExists, fiber.StatusConflict},
		{"register invalid email", "/register", `{"email":"nope"}`, auth.ErrInvalidEmail, fiber.StatusBadRequest},
		{"register short password", "/register", `{"email":"a@b.co","password":"short"}`, auth.ErrPasswordTooShort, fiber.StatusBadRequest},
		{"login ok", "/login", `{"email":"a@b.co","password":"longenough"}`, nil, fiber.StatusOK},
		{"login bad credentials", "/login", `{"email":"a@b.co","password":"wrong"}`, auth.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{"refresh ok", "/refresh", `{"refresh_token":"tok"}`, nil, fiber.StatusOK},
		{"refresh invalid token", "/refresh", `{"refresh_token":"tok"}`, auth.ErrInvalidToken, fiber.StatusUnauthorized},
		{"refresh dead session", "/refresh", `{"refresh_token":"tok"}`, auth.ErrSessionNotFound, fiber.StatusUnauthorized},
		{"refresh missing token", "/refresh", `{}`, nil, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newAuthApp(&stubAuth{err: tt.svcErr})

			req := httptest.NewRequest("POST", tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}
