package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	"github.com/telecare/telecare_backend/config"
	"github.com/telecare/telecare_backend/internal/repo"
	entdoctor "github.com/telecare/telecare_backend/internal/repo/doctor"
	entpatient "github.com/telecare/telecare_backend/internal/repo/patient"
	entuser "github.com/telecare/telecare_backend/internal/repo/user"
	pasetotoken "github.com/telecare/telecare_backend/pkg/paseto"
	"github.com/telecare/telecare_backend/pkg/util/password"
)

// SubjectUserRegistered is published after a successful registration.
// The wildcard segment is the new user's id.
const SubjectUserRegistered = "telecare.user.registered"

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type LoginRequest struct {
	Email    string
	Password string
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // seconds until access token expires
}

// Session is the value stored in Redis under session:<id>.
type Session struct {
	UserID    uuid.UUID        `json:"user_id"`
	Role      pasetotoken.Role `json:"role"`
	CreatedAt time.Time        `json:"created_at"`
}

// Profile is the authenticated user's own view of their account.
type Profile struct {
	UserID    uuid.UUID        `json:"user_id"`
	Email     string           `json:"email"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Role      pasetotoken.Role `json:"role"`

	// Patient-only
	PatientID           *uuid.UUID `json:"patient_id,omitempty"`
	OnboardingCompleted *bool      `json:"onboarding_completed,omitempty"`

	// Doctor-only
	DoctorID  *uuid.UUID `json:"doctor_id,omitempty"`
	Specialty *string    `json:"specialty,omitempty"`
}

// UserRegisteredEvent is the NATS payload for SubjectUserRegistered.
type UserRegisteredEvent struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthTokens, error)
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	Me(ctx context.Context, userID uuid.UUID) (*Profile, error)

	// SessionExists reports whether a session is still live in Redis.
	// Used by the auth middleware to honor logout before token expiry.
	SessionExists(ctx context.Context, sessionID uuid.UUID) (bool, error)

	// IdentityFor resolves the role-specific profile ids for a user.
	IdentityFor(ctx context.Context, u *repo.User) (pasetotoken.Identity, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	nc     *nats.Conn
	paseto *pasetotoken.Manager
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	nc *nats.Conn,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		nc:     nc,
		paseto: paseto,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

// Register creates a patient account. Doctor accounts are provisioned from
// the CLI, never through this endpoint.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if !reEmail.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}
	if req.FirstName == "" || req.LastName == "" {
		return nil, ErrMissingName
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	u, err := tx.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetRole(entuser.RolePatient).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		if repo.IsConstraintError(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	p, err := tx.Patient.Create().
		SetUserID(u.ID).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("create patient: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	s.publishRegistered(u)

	id := pasetotoken.Identity{
		UserID:    u.ID,
		Role:      pasetotoken.RolePatient,
		PatientID: &p.ID,
	}
	return s.createSession(ctx, id)
}

func (s *authService) publishRegistered(u *repo.User) {
	if s.nc == nil {
		return
	}
	payload, err := json.Marshal(UserRegisteredEvent{
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
	})
	if err != nil {
		return
	}
	subject := fmt.Sprintf("%s.%s", SubjectUserRegistered, u.ID.String())
	if err := s.nc.Publish(subject, payload); err != nil {
		slog.Warn("failed to publish user.registered", "user_id", u.ID, "error", err)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.db.User.Query().
		Where(entuser.Email(req.Email)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	_, _ = s.db.User.UpdateOne(u).SetLastLoginAt(now).Save(ctx)

	id, err := s.IdentityFor(ctx, u)
	if err != nil {
		return nil, err
	}
	return s.createSession(ctx, id)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue a new access token only; the refresh token stays until logout
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.Identity, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired, not an error from the client's perspective
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Me
// ---------------------------------------------------------------------------

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	p := &Profile{
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      pasetotoken.Role(u.Role),
	}

	switch u.Role {
	case entuser.RolePatient:
		pat, err := s.db.Patient.Query().
			Where(entpatient.UserID(u.ID)).
			Only(ctx)
		if err != nil {
			return nil, fmt.Errorf("get patient profile: %w", err)
		}
		p.PatientID = &pat.ID
		p.OnboardingCompleted = &pat.OnboardingCompleted

	case entuser.RoleDoctor:
		doc, err := s.db.Doctor.Query().
			Where(entdoctor.UserID(u.ID)).
			Only(ctx)
		if err != nil {
			return nil, fmt.Errorf("get doctor profile: %w", err)
		}
		p.DoctorID = &doc.ID
		p.Specialty = &doc.Specialty
	}

	return p, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) SessionExists(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	err := s.rdb.Get(ctx, redisKeySession(sessionID.String())).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get session: %w", err)
	}
	return true, nil
}

func (s *authService) IdentityFor(ctx context.Context, u *repo.User) (pasetotoken.Identity, error) {
	id := pasetotoken.Identity{
		UserID: u.ID,
		Role:   pasetotoken.Role(u.Role),
	}

	switch u.Role {
	case entuser.RolePatient:
		pat, err := s.db.Patient.Query().
			Where(entpatient.UserID(u.ID)).
			Only(ctx)
		if err != nil {
			return id, fmt.Errorf("get patient profile: %w", err)
		}
		id.PatientID = &pat.ID

	case entuser.RoleDoctor:
		doc, err := s.db.Doctor.Query().
			Where(entdoctor.UserID(u.ID)).
			Only(ctx)
		if err != nil {
			return id, fmt.Errorf("get doctor profile: %w", err)
		}
		id.DoctorID = &doc.ID
	}

	return id, nil
}

func (s *authService) createSession(ctx context.Context, id pasetotoken.Identity) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sess, err := json.Marshal(Session{
		UserID:    id.UserID,
		Role:      id.Role,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, sess, refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(id, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(id, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}
