package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/telecare/telecare_backend/internal/repo"
	entmsg "github.com/telecare/telecare_backend/internal/repo/chatmessage"
	entroom "github.com/telecare/telecare_backend/internal/repo/chatroom"
	"github.com/telecare/telecare_backend/internal/repo/enttest"
	entuser "github.com/telecare/telecare_backend/internal/repo/user"
	pasetotoken "github.com/telecare/telecare_backend/pkg/paseto"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

type testPatient struct {
	patient *repo.Patient
	user    *repo.User
}

type testDoctor struct {
	doctor *repo.Doctor
	user   *repo.User
}

func (p testPatient) identity() pasetotoken.Identity {
	return pasetotoken.Identity{
		UserID:    p.user.ID,
		Role:      pasetotoken.RolePatient,
		PatientID: &p.patient.ID,
	}
}

func (d testDoctor) identity() pasetotoken.Identity {
	return pasetotoken.Identity{
		UserID:   d.user.ID,
		Role:     pasetotoken.RoleDoctor,
		DoctorID: &d.doctor.ID,
	}
}

func createUser(t *testing.T, client *repo.Client, role entuser.Role) *repo.User {
	t.Helper()
	u, err := client.User.Create().
		SetEmail(uuid.NewString() + "@example.com").
		SetPasswordHash("x").
		SetRole(role).
		SetFirstName("Test").
		SetLastName("User").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func createPatient(t *testing.T, client *repo.Client) testPatient {
	t.Helper()
	u := createUser(t, client, entuser.RolePatient)
	p, err := client.Patient.Create().SetUserID(u.ID).Save(context.Background())
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return testPatient{patient: p, user: u}
}

func createDoctor(t *testing.T, client *repo.Client) testDoctor {
	t.Helper()
	u := createUser(t, client, entuser.RoleDoctor)
	d, err := client.Doctor.Create().
		SetUserID(u.ID).
		SetSpecialty("general").
		SetYearsExperience(5).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	return testDoctor{doctor: d, user: u}
}

// assign wires the patient to the doctor the way a finished onboarding would.
func assign(t *testing.T, client *repo.Client, p testPatient, d testDoctor) {
	t.Helper()
	ctx := context.Background()
	if err := client.Patient.UpdateOneID(p.patient.ID).
		SetOnboardingCompleted(true).
		SetAssignedDoctorID(d.doctor.ID).
		Exec(ctx); err != nil {
		t.Fatal(err)
	}
	if err := client.Assignment.Create().
		SetPatientID(p.patient.ID).
		SetDoctorID(d.doctor.ID).
		SetActive(true).
		SetAssignedAt(time.Now()).
		Exec(ctx); err != nil {
		t.Fatal(err)
	}
}

func TestRoomForPatientRequiresAssignment(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	p := createPatient(t, client)

	if _, err := svc.RoomForPatient(context.Background(), p.patient.ID); !errors.Is(err, ErrNoDoctor) {
		t.Errorf("RoomForPatient() err = %v, want ErrNoDoctor", err)
	}
}

func TestRoomForPatientCreatesExactlyOneRoom(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	p := createPatient(t, client)
	d := createDoctor(t, client)
	assign(t, client, p, d)

	first, err := svc.RoomForPatient(ctx, p.patient.ID)
	if err != nil {
		t.Fatalf("RoomForPatient() error: %v", err)
	}
	second, err := svc.RoomForPatient(ctx, p.patient.ID)
	if err != nil {
		t.Fatalf("RoomForPatient() second call error: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("room ids differ across calls: %v vs %v", first.ID, second.ID)
	}
	if first.Counterpart.UserID != d.user.ID {
		t.Errorf("Counterpart.UserID = %v, want doctor user %v", first.Counterpart.UserID, d.user.ID)
	}

	n, err := client.ChatRoom.Query().
		Where(entroom.PatientID(p.patient.ID)).
		Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("rooms = %d, want 1", n)
	}
}

func TestRoomForPatientConcurrentCallersConverge(t *testing.T) {
	// sqlite needs a single connection here; the goroutines still interleave
	// between the lookup and the insert.
	drv, err := entsql.Open(dialect.SQLite,
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	if err != nil {
		t.Fatal(err)
	}
	drv.DB().SetMaxOpenConns(1)
	client := repo.NewClient(repo.Driver(drv))
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatal(err)
	}

	svc := New(client, nil)
	p := createPatient(t, client)
	d := createDoctor(t, client)
	assign(t, client, p, d)

	const callers = 8
	var wg sync.WaitGroup
	ids := make([]uuid.UUID, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			room, err := svc.RoomForPatient(ctx, p.patient.ID)
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = room.ID
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d: %v", i, err)
		}
	}
	for i := 1; i < callers; i++ {
		if ids[i] != ids[0] {
			t.Errorf("caller %d got room %v, caller 0 got %v", i, ids[i], ids[0])
		}
	}

	n, err := client.ChatRoom.Query().
		Where(entroom.PatientID(p.patient.ID)).
		Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("rooms = %d after %d concurrent callers, want 1", n, callers)
	}
}

func TestAuthorize(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	p := createPatient(t, client)
	d := createDoctor(t, client)
	assign(t, client, p, d)

	room, err := svc.RoomForPatient(ctx, p.patient.ID)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Authorize(ctx, p.identity(), room.ID); err != nil {
		t.Errorf("patient participant: Authorize() = %v, want nil", err)
	}
	if err := svc.Authorize(ctx, d.identity(), room.ID); err != nil {
		t.Errorf("doctor participant: Authorize() = %v, want nil", err)
	}

	outsider := createPatient(t, client)
	if err := svc.Authorize(ctx, outsider.identity(), room.ID); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("outsider: Authorize() = %v, want ErrNotParticipant", err)
	}

	if err := svc.Authorize(ctx, p.identity(), uuid.New()); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("unknown room: Authorize() = %v, want ErrRoomNotFound", err)
	}
}

func TestSendMessageValidation(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	p := createPatient(t, client)
	d := createDoctor(t, client)
	assign(t, client, p, d)
	room, err := svc.RoomForPatient(ctx, p.patient.ID)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.SendMessage(ctx, p.identity(), room.ID, "   "); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("blank content: err = %v, want ErrEmptyMessage", err)
	}
	if _, err := svc.SendMessage(ctx, p.identity(), room.ID, strings.Repeat("a", maxMessageLen+1)); !errors.Is(err, ErrMessageTooLong) {
		t.Errorf("oversized content: err = %v, want ErrMessageTooLong", err)
	}

	outsider := createPatient(t, client)
	if _, err := svc.SendMessage(ctx, outsider.identity(), room.ID, "hi"); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("outsider: err = %v, want ErrNotParticipant", err)
	}
}

func TestListMessagesMarksCounterpartyRead(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	p := createPatient(t, client)
	d := createDoctor(t, client)
	assign(t, client, p, d)
	room, err := svc.RoomForPatient(ctx, p.patient.ID)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.SendMessage(ctx, d.identity(), room.ID, fmt.Sprintf("note %d", i)); err != nil {
			t.Fatal(err)
		}
	}

	unread, err := svc.UnreadCount(ctx, p.identity())
	if err != nil {
		t.Fatal(err)
	}
	if unread != 3 {
		t.Fatalf("UnreadCount() = %d before reading, want 3", unread)
	}

	msgs, err := svc.ListMessages(ctx, p.identity(), room.ID, ListMessagesRequest{})
	if err != nil {
		t.Fatalf("ListMessages() error: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("ListMessages() = %d messages, want 3", len(msgs))
	}

	// Oldest first, carrying the sender's role.
	for i, m := range msgs {
		if want := fmt.Sprintf("note %d", i); m.Content != want {
			t.Errorf("msgs[%d].Content = %q, want %q", i, m.Content, want)
		}
		if m.SenderRole != string(pasetotoken.RoleDoctor) {
			t.Errorf("msgs[%d].SenderRole = %q, want doctor", i, m.SenderRole)
		}
	}

	unread, err = svc.UnreadCount(ctx, p.identity())
	if err != nil {
		t.Fatal(err)
	}
	if unread != 0 {
		t.Errorf("UnreadCount() = %d after reading, want 0", unread)
	}

	// The sender's own messages never count against them.
	unread, err = svc.UnreadCount(ctx, d.identity())
	if err != nil {
		t.Fatal(err)
	}
	if unread != 0 {
		t.Errorf("sender UnreadCount() = %d, want 0", unread)
	}

	// Re-reading is idempotent: the stored read_at stamps must not move.
	readAts := func() map[uuid.UUID]time.Time {
		t.Helper()
		rows, err := client.ChatMessage.Query().
			Where(entmsg.RoomID(room.ID)).
			All(ctx)
		if err != nil {
			t.Fatal(err)
		}
		out := make(map[uuid.UUID]time.Time, len(rows))
		for _, m := range rows {
			if m.ReadAt == nil {
				t.Fatalf("message %v still unread", m.ID)
			}
			out[m.ID] = *m.ReadAt
		}
		return out
	}

	before := readAts()
	time.Sleep(10 * time.Millisecond)
	if _, err := svc.ListMessages(ctx, p.identity(), room.ID, ListMessagesRequest{}); err != nil {
		t.Fatalf("ListMessages() second call error: %v", err)
	}
	after := readAts()
	for id, ts := range before {
		if !after[id].Equal(ts) {
			t.Errorf("message %v re-marked: read_at %v -> %v", id, ts, after[id])
		}
	}
}

func TestUnreadCountWithoutRooms(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)

	p := createPatient(t, client)
	unread, err := svc.UnreadCount(context.Background(), p.identity())
	if err != nil {
		t.Fatalf("UnreadCount() error: %v", err)
	}
	if unread != 0 {
		t.Errorf("UnreadCount() = %d with no rooms, want 0", unread)
	}
}

func TestRoomsForDoctorUnreadAndActivity(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	d := createDoctor(t, client)
	p1 := createPatient(t, client)
	p2 := createPatient(t, client)
	assign(t, client, p1, d)
	assign(t, client, p2, d)

	room1, err := svc.RoomForPatient(ctx, p1.patient.ID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RoomForPatient(ctx, p2.patient.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.SendMessage(ctx, p1.identity(), room1.ID, "hello doctor"); err != nil {
		t.Fatal(err)
	}

	rooms, err := svc.RoomsForDoctor(ctx, d.doctor.ID)
	if err != nil {
		t.Fatalf("RoomsForDoctor() error: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("RoomsForDoctor() = %d rooms, want 2", len(rooms))
	}

	// Room with the newest message sorts first and carries the unread count.
	if rooms[0].ID != room1.ID {
		t.Errorf("first room = %v, want active room %v", rooms[0].ID, room1.ID)
	}
	if rooms[0].UnreadCount != 1 {
		t.Errorf("active room UnreadCount = %d, want 1", rooms[0].UnreadCount)
	}
	if rooms[0].LastMessageAt == nil {
		t.Error("active room LastMessageAt is nil")
	}
	if rooms[1].UnreadCount != 0 {
		t.Errorf("idle room UnreadCount = %d, want 0", rooms[1].UnreadCount)
	}
}
