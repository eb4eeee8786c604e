// Package presence tracks websocket connectivity per user, backed by an
// upserted one-row-per-user table.
package presence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/telecare/telecare_backend/internal/repo"
	entstatus "github.com/telecare/telecare_backend/internal/repo/onlinestatus"
)

type StatusView struct {
	UserID   uuid.UUID  `json:"user_id"`
	Online   bool       `json:"online"`
	LastSeen *time.Time `json:"last_seen,omitempty"`
}

type Service interface {
	MarkOnline(ctx context.Context, userID uuid.UUID) error
	MarkOffline(ctx context.Context, userID uuid.UUID) error
	Get(ctx context.Context, userID uuid.UUID) (*StatusView, error)
	GetMany(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]StatusView, error)
}

type presenceService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &presenceService{db: db}
}

func (s *presenceService) MarkOnline(ctx context.Context, userID uuid.UUID) error {
	return s.upsert(ctx, userID, true)
}

func (s *presenceService) MarkOffline(ctx context.Context, userID uuid.UUID) error {
	return s.upsert(ctx, userID, false)
}

func (s *presenceService) upsert(ctx context.Context, userID uuid.UUID, online bool) error {
	err := s.db.OnlineStatus.Create().
		SetUserID(userID).
		SetOnline(online).
		SetLastSeen(time.Now()).
		OnConflictColumns(entstatus.FieldUserID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert online status: %w", err)
	}
	return nil
}

func (s *presenceService) Get(ctx context.Context, userID uuid.UUID) (*StatusView, error) {
	rec, err := s.db.OnlineStatus.Query().
		Where(entstatus.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// Never connected counts as offline.
			return &StatusView{UserID: userID, Online: false}, nil
		}
		return nil, fmt.Errorf("get online status: %w", err)
	}
	return &StatusView{UserID: rec.UserID, Online: rec.Online, LastSeen: rec.LastSeen}, nil
}

func (s *presenceService) GetMany(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]StatusView, error) {
	out := make(map[uuid.UUID]StatusView, len(userIDs))
	for _, id := range userIDs {
		out[id] = StatusView{UserID: id, Online: false}
	}
	if len(userIDs) == 0 {
		return out, nil
	}

	recs, err := s.db.OnlineStatus.Query().
		Where(entstatus.UserIDIn(userIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list online statuses: %w", err)
	}
	for _, rec := range recs {
		out[rec.UserID] = StatusView{UserID: rec.UserID, Online: rec.Online, LastSeen: rec.LastSeen}
	}
	return out, nil
}
