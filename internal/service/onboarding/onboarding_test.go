package onboarding

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/telecare/telecare_backend/config"
	"github.com/telecare/telecare_backend/internal/repo"
	entassign "github.com/telecare/telecare_backend/internal/repo/assignment"
	entroom "github.com/telecare/telecare_backend/internal/repo/chatroom"
	"github.com/telecare/telecare_backend/internal/repo/enttest"
	entinsurance "github.com/telecare/telecare_backend/internal/repo/onboardinginsurance"
	entuser "github.com/telecare/telecare_backend/internal/repo/user"
)

// 32-byte hex key for the AES field encryption in tests.
const testEncKeyHex = "6368616e676520746869732070617373776f726420746f206120736563726574"

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()

	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	cfg := &config.Config{}
	cfg.Authentication.EncryptionKey = testEncKeyHex

	svc, err := New(client, nil, cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return svc, client
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

func createPatient(t *testing.T, client *repo.Client) *repo.Patient {
	t.Helper()
	u := createUser(t, client, entuser.RolePatient)
	p, err := client.Patient.Create().SetUserID(u.ID).Save(context.Background())
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return p
}

func createDoctor(t *testing.T, client *repo.Client, accepting bool) *repo.Doctor {
	t.Helper()
	u := createUser(t, client, entuser.RoleDoctor)
	d, err := client.Doctor.Create().
		SetUserID(u.ID).
		SetSpecialty("general").
		SetYearsExperience(5).
		SetAcceptingPatients(accepting).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	return d
}

func validStep1() Step1Request {
	return Step1Request{
		DateOfBirth: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Gender:      "female",
		Phone:       "+15550100",
		Address:     "1 Main St",
	}
}

func validStep2() Step2Request {
	return Step2Request{
		Allergies:      []string{"penicillin"},
		PrimaryConcern: "persistent headaches",
	}
}

func validStep3() Step3Request {
	return Step3Request{Provider: "Acme Health", MemberID: "MBR-12345"}
}

func advanceToStep3(t *testing.T, svc Service, patientID uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	if err := svc.SaveStep1(ctx, patientID, validStep1()); err != nil {
		t.Fatalf("SaveStep1() error: %v", err)
	}
	if err := svc.SaveStep2(ctx, patientID, validStep2()); err != nil {
		t.Fatalf("SaveStep2() error: %v", err)
	}
	if err := svc.SaveStep3(ctx, patientID, validStep3()); err != nil {
		t.Fatalf("SaveStep3() error: %v", err)
	}
}

func TestStepOrderEnforced(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := createPatient(t, client)

	if err := svc.SaveStep2(ctx, p.ID, validStep2()); !errors.Is(err, ErrStepOutOfOrder) {
		t.Errorf("SaveStep2 before step1: err = %v, want ErrStepOutOfOrder", err)
	}
	if err := svc.SaveStep3(ctx, p.ID, validStep3()); !errors.Is(err, ErrStepOutOfOrder) {
		t.Errorf("SaveStep3 before step2: err = %v, want ErrStepOutOfOrder", err)
	}
}

func TestStepCounterNeverDecreases(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := createPatient(t, client)

	if err := svc.SaveStep1(ctx, p.ID, validStep1()); err != nil {
		t.Fatalf("SaveStep1() error: %v", err)
	}
	if err := svc.SaveStep2(ctx, p.ID, validStep2()); err != nil {
		t.Fatalf("SaveStep2() error: %v", err)
	}

	// Resubmitting an earlier step overwrites its data but keeps progress.
	req := validStep1()
	req.Phone = "+15550199"
	if err := svc.SaveStep1(ctx, p.ID, req); err != nil {
		t.Fatalf("SaveStep1() resubmit error: %v", err)
	}

	status, err := svc.Status(ctx, p.ID)
	if err != nil {
		t.Fatalf("Status() error: %v", err)
	}
	if status.Step != 2 {
		t.Errorf("Step = %d after resubmitting step1, want 2", status.Step)
	}

	got, err := svc.GetStep1(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetStep1() error: %v", err)
	}
	if got.Phone != "+15550199" {
		t.Errorf("Phone = %q after resubmit, want %q", got.Phone, "+15550199")
	}
}

func TestSaveStep1Validation(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := createPatient(t, client)

	future := validStep1()
	future.DateOfBirth = time.Now().Add(24 * time.Hour)
	if err := svc.SaveStep1(ctx, p.ID, future); !errors.Is(err, ErrInvalidDateOfBirth) {
		t.Errorf("future date of birth: err = %v, want ErrInvalidDateOfBirth", err)
	}

	badGender := validStep1()
	badGender.Gender = "unknown"
	if err := svc.SaveStep1(ctx, p.ID, badGender); !errors.Is(err, ErrMissingField) {
		t.Errorf("bad gender: err = %v, want ErrMissingField", err)
	}

	noPhone := validStep1()
	noPhone.Phone = "   "
	if err := svc.SaveStep1(ctx, p.ID, noPhone); !errors.Is(err, ErrMissingField) {
		t.Errorf("blank phone: err = %v, want ErrMissingField", err)
	}
}

func TestStep3MemberIDEncryptedAtRest(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := createPatient(t, client)
	advanceToStep3(t, svc, p.ID)

	rec, err := client.OnboardingInsurance.Query().
		Where(entinsurance.PatientID(p.ID)).
		Only(ctx)
	if err != nil {
		t.Fatalf("query insurance record: %v", err)
	}
	if rec.MemberIDEncrypted == "MBR-12345" {
		t.Error("member id stored in plain text")
	}

	view, err := svc.GetStep3(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetStep3() error: %v", err)
	}
	if view.MemberID != "MBR-12345" {
		t.Errorf("MemberID = %q, want %q", view.MemberID, "MBR-12345")
	}
}

func TestSaveStep3RejectsUnknownPreferredDoctor(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := createPatient(t, client)

	if err := svc.SaveStep1(ctx, p.ID, validStep1()); err != nil {
		t.Fatal(err)
	}
	if err := svc.SaveStep2(ctx, p.ID, validStep2()); err != nil {
		t.Fatal(err)
	}

	req := validStep3()
	ghost := uuid.New()
	req.PreferredDoctorID = &ghost
	if err := svc.SaveStep3(ctx, p.ID, req); !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("unknown preferred doctor: err = %v, want ErrDoctorNotFound", err)
	}
}

func TestCompleteRequiresAllSteps(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := createPatient(t, client)
	createDoctor(t, client, true)

	if _, err := svc.Complete(ctx, p.ID); !errors.Is(err, ErrIncomplete) {
		t.Errorf("Complete at step 0: err = %v, want ErrIncomplete", err)
	}
}

func TestCompleteAssignsDoctorAndCreatesRoom(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := createPatient(t, client)
	d := createDoctor(t, client, true)
	advanceToStep3(t, svc, p.ID)

	result, err := svc.Complete(ctx, p.ID)
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if result.DoctorID != d.ID {
		t.Errorf("DoctorID = %v, want %v", result.DoctorID, d.ID)
	}

	updated, err := client.Patient.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !updated.OnboardingCompleted {
		t.Error("patient not marked completed")
	}
	if updated.AssignedDoctorID == nil || *updated.AssignedDoctorID != d.ID {
		t.Errorf("AssignedDoctorID = %v, want %v", updated.AssignedDoctorID, d.ID)
	}

	active, err := client.Assignment.Query().
		Where(entassign.PatientID(p.ID), entassign.Active(true)).
		Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if active != 1 {
		t.Errorf("active assignments = %d, want 1", active)
	}

	rooms, err := client.ChatRoom.Query().
		Where(entroom.PatientID(p.ID), entroom.DoctorID(d.ID)).
		Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if rooms != 1 {
		t.Errorf("rooms = %d, want 1", rooms)
	}

	if _, err := svc.Complete(ctx, p.ID); !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("second Complete: err = %v, want ErrAlreadyCompleted", err)
	}
}

func TestCompletePrefersRequestedDoctor(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := createPatient(t, client)
	createDoctor(t, client, true)
	preferred := createDoctor(t, client, true)

	if err := svc.SaveStep1(ctx, p.ID, validStep1()); err != nil {
		t.Fatal(err)
	}
	if err := svc.SaveStep2(ctx, p.ID, validStep2()); err != nil {
		t.Fatal(err)
	}
	req := validStep3()
	req.PreferredDoctorID = &preferred.ID
	if err := svc.SaveStep3(ctx, p.ID, req); err != nil {
		t.Fatal(err)
	}

	result, err := svc.Complete(ctx, p.ID)
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if result.DoctorID != preferred.ID {
		t.Errorf("DoctorID = %v, want preferred %v", result.DoctorID, preferred.ID)
	}
}

func TestCompletePicksLeastLoadedDoctor(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	busy := createDoctor(t, client, true)
	free := createDoctor(t, client, true)

	// Load the first doctor with an existing active assignment.
	other := createPatient(t, client)
	if err := client.Assignment.Create().
		SetPatientID(other.ID).
		SetDoctorID(busy.ID).
		SetActive(true).
		SetAssignedAt(time.Now()).
		Exec(ctx); err != nil {
		t.Fatal(err)
	}

	p := createPatient(t, client)
	advanceToStep3(t, svc, p.ID)

	result, err := svc.Complete(ctx, p.ID)
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if result.DoctorID != free.ID {
		t.Errorf("DoctorID = %v, want least-loaded %v", result.DoctorID, free.ID)
	}
}

func TestCompleteFallsBackWhenPreferredNotAccepting(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := createPatient(t, client)
	closed := createDoctor(t, client, false)
	open := createDoctor(t, client, true)

	if err := svc.SaveStep1(ctx, p.ID, validStep1()); err != nil {
		t.Fatal(err)
	}
	if err := svc.SaveStep2(ctx, p.ID, validStep2()); err != nil {
		t.Fatal(err)
	}
	req := validStep3()
	req.PreferredDoctorID = &closed.ID
	if err := svc.SaveStep3(ctx, p.ID, req); err != nil {
		t.Fatal(err)
	}

	result, err := svc.Complete(ctx, p.ID)
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if result.DoctorID != open.ID {
		t.Errorf("DoctorID = %v, want accepting doctor %v", result.DoctorID, open.ID)
	}
}

func TestCompleteRollsBackWithoutDoctors(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := createPatient(t, client)
	advanceToStep3(t, svc, p.ID)

	if _, err := svc.Complete(ctx, p.ID); !errors.Is(err, ErrNoDoctorsAvailable) {
		t.Fatalf("Complete() err = %v, want ErrNoDoctorsAvailable", err)
	}

	updated, err := client.Patient.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if updated.OnboardingCompleted {
		t.Error("patient marked completed despite failed transaction")
	}
	if updated.AssignedDoctorID != nil {
		t.Error("doctor assigned despite failed transaction")
	}
}

func TestReconcileRepairsMissingRoom(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := createPatient(t, client)
	d := createDoctor(t, client, true)
	advanceToStep3(t, svc, p.ID)

	if _, err := svc.Complete(ctx, p.ID); err != nil {
		t.Fatalf("Complete() error: %v", err)
	}

	// Simulate a lost room write.
	if _, err := client.ChatRoom.Delete().
		Where(entroom.PatientID(p.ID)).
		Exec(ctx); err != nil {
		t.Fatal(err)
	}

	fixed, err := svc.ReconcilePartialCompletions(ctx)
	if err != nil {
		t.Fatalf("ReconcilePartialCompletions() error: %v", err)
	}
	if fixed != 1 {
		t.Errorf("repaired = %d, want 1", fixed)
	}

	exists, err := client.ChatRoom.Query().
		Where(entroom.PatientID(p.ID), entroom.DoctorID(d.ID)).
		Exist(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("room not recreated by reconcile")
	}

	// A healthy state is left alone.
	fixed, err = svc.ReconcilePartialCompletions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if fixed != 0 {
		t.Errorf("second pass repaired = %d, want 0", fixed)
	}
}
