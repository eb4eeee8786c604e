package presence

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/telecare/telecare_backend/internal/repo/enttest"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return New(client)
}

func TestGetDefaultsToOffline(t *testing.T) {
	svc := newTestService(t)

	st, err := svc.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if st.Online {
		t.Error("never-connected user reported online")
	}
	if st.LastSeen != nil {
		t.Errorf("LastSeen = %v, want nil", st.LastSeen)
	}
}

func TestMarkOnlineThenOffline(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	if err := svc.MarkOnline(ctx, userID); err != nil {
		t.Fatalf("MarkOnline() error: %v", err)
	}
	st, err := svc.Get(ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	if !st.Online {
		t.Error("user not online after MarkOnline")
	}

	if err := svc.MarkOffline(ctx, userID); err != nil {
		t.Fatalf("MarkOffline() error: %v", err)
	}
	st, err = svc.Get(ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	if st.Online {
		t.Error("user still online after MarkOffline")
	}
	if st.LastSeen == nil {
		t.Error("LastSeen not recorded")
	}

	// Reconnecting flips the same row back.
	if err := svc.MarkOnline(ctx, userID); err != nil {
		t.Fatal(err)
	}
	st, err = svc.Get(ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	if !st.Online {
		t.Error("user not online after reconnect")
	}
}

func TestGetManyOverlaysKnownUsers(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	known := uuid.New()
	unknown := uuid.New()
	if err := svc.MarkOnline(ctx, known); err != nil {
		t.Fatal(err)
	}

	statuses, err := svc.GetMany(ctx, []uuid.UUID{known, unknown})
	if err != nil {
		t.Fatalf("GetMany() error: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("GetMany() = %d entries, want 2", len(statuses))
	}
	if !statuses[known].Online {
		t.Error("known user reported offline")
	}
	if statuses[unknown].Online {
		t.Error("unknown user reported online")
	}
}
