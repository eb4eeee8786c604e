package doctor

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
	"github.com/telecare/telecare_backend/internal/repo/enttest"
	entpersonal "github.com/telecare/telecare_backend/internal/repo/onboardingpersonal"
	entuser "github.com/telecare/telecare_backend/internal/repo/user"
	"github.com/telecare/telecare_backend/internal/service/presence"
	"github.com/telecare/telecare_backend/pkg/crypto"
)

const testEncKeyHex = "6368616e676520746869732070617373776f726420746f206120736563726574"

func newTestService(t *testing.T) (Service, presence.Service, *repo.Client) {
	t.Helper()

	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	cfg := &config.Config{}
	cfg.Authentication.EncryptionKey = testEncKeyHex

	pres := presence.New(client)
	svc, err := New(client, pres, cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return svc, pres, client
}

func createUser(t *testing.T, client *repo.Client, role entuser.Role, first, last string) *repo.User {
	t.Helper()
	u, err := client.User.Create().
		SetEmail(uuid.NewString() + "@example.com").
		SetPasswordHash("x").
		SetRole(role).
		SetFirstName(first).
		SetLastName(last).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func createDoctor(t *testing.T, client *repo.Client) *repo.Doctor {
	t.Helper()
	u := createUser(t, client, entuser.RoleDoctor, "Dana", "Rees")
	d, err := client.Doctor.Create().
		SetUserID(u.ID).
		SetSpecialty("general").
		SetYearsExperience(8).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	return d
}

func createAssignedPatient(t *testing.T, client *repo.Client, doctorID uuid.UUID, first, last string) *repo.Patient {
	t.Helper()
	ctx := context.Background()
	u := createUser(t, client, entuser.RolePatient, first, last)
	p, err := client.Patient.Create().
		SetUserID(u.ID).
		SetOnboardingCompleted(true).
		SetAssignedDoctorID(doctorID).
		Save(ctx)
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	if err := client.Assignment.Create().
		SetPatientID(p.ID).
		SetDoctorID(doctorID).
		SetActive(true).
		SetAssignedAt(time.Now()).
		Exec(ctx); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestListPatientsEmpty(t *testing.T) {
	svc, _, client := newTestService(t)
	d := createDoctor(t, client)

	patients, err := svc.ListPatients(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("ListPatients() error: %v", err)
	}
	if len(patients) != 0 {
		t.Errorf("ListPatients() = %d patients, want 0", len(patients))
	}
}

func TestListPatientsIncludesPresence(t *testing.T) {
	svc, pres, client := newTestService(t)
	ctx := context.Background()
	d := createDoctor(t, client)

	online := createAssignedPatient(t, client, d.ID, "Alice", "Ito")
	offline := createAssignedPatient(t, client, d.ID, "Bob", "Diaz")

	if err := pres.MarkOnline(ctx, online.UserID); err != nil {
		t.Fatal(err)
	}

	patients, err := svc.ListPatients(ctx, d.ID)
	if err != nil {
		t.Fatalf("ListPatients() error: %v", err)
	}
	if len(patients) != 2 {
		t.Fatalf("ListPatients() = %d patients, want 2", len(patients))
	}

	byID := make(map[uuid.UUID]PatientSummary, len(patients))
	for _, p := range patients {
		byID[p.PatientID] = p
	}
	if !byID[online.ID].Online {
		t.Error("online patient reported offline")
	}
	if byID[offline.ID].Online {
		t.Error("never-connected patient reported online")
	}
	if byID[online.ID].AssignedAt == nil {
		t.Error("AssignedAt missing")
	}
}

func TestPatientDetailRequiresActiveAssignment(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()
	mine := createDoctor(t, client)
	other := createDoctor(t, client)
	p := createAssignedPatient(t, client, other.ID, "Cleo", "Marsh")

	if _, err := svc.PatientDetail(ctx, mine.ID, p.ID); !errors.Is(err, ErrNotAssigned) {
		t.Errorf("PatientDetail() err = %v, want ErrNotAssigned", err)
	}
}

func TestPatientDetailIncludesDecryptedIntake(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()
	d := createDoctor(t, client)
	p := createAssignedPatient(t, client, d.ID, "Elena", "Park")

	if err := client.OnboardingPersonal.Create().
		SetPatientID(p.ID).
		SetDateOfBirth(time.Date(1985, 2, 3, 0, 0, 0, 0, time.UTC)).
		SetGender(entpersonal.GenderFemale).
		SetPhone("+15550123").
		SetAddress("9 Elm St").
		Exec(ctx); err != nil {
		t.Fatal(err)
	}
	if err := client.OnboardingMedical.Create().
		SetPatientID(p.ID).
		SetAllergies([]string{"latex"}).
		SetPrimaryConcern("chronic back pain").
		Exec(ctx); err != nil {
		t.Fatal(err)
	}

	encKey, err := crypto.KeyFromHex(testEncKeyHex)
	if err != nil {
		t.Fatal(err)
	}
	enc, err := crypto.Encrypt(encKey, "MBR-777")
	if err != nil {
		t.Fatal(err)
	}
	if err := client.OnboardingInsurance.Create().
		SetPatientID(p.ID).
		SetProvider("Acme Health").
		SetMemberIDEncrypted(enc).
		Exec(ctx); err != nil {
		t.Fatal(err)
	}

	detail, err := svc.PatientDetail(ctx, d.ID, p.ID)
	if err != nil {
		t.Fatalf("PatientDetail() error: %v", err)
	}

	if detail.FirstName != "Elena" || detail.Email == "" {
		t.Errorf("identity fields not populated: %+v", detail.PatientSummary)
	}
	if detail.Personal == nil || detail.Personal.Phone != "+15550123" {
		t.Errorf("Personal = %+v, want phone +15550123", detail.Personal)
	}
	if detail.Medical == nil || detail.Medical.PrimaryConcern != "chronic back pain" {
		t.Errorf("Medical = %+v, want primary concern", detail.Medical)
	}
	if detail.Insurance == nil || detail.Insurance.MemberID != "MBR-777" {
		t.Errorf("Insurance = %+v, want decrypted member id MBR-777", detail.Insurance)
	}
}

func TestPatientDetailToleratesPartialIntake(t *testing.T) {
	svc, _, client := newTestService(t)
	ctx := context.Background()
	d := createDoctor(t, client)
	p := createAssignedPatient(t, client, d.ID, "Finn", "Wu")

	detail, err := svc.PatientDetail(ctx, d.ID, p.ID)
	if err != nil {
		t.Fatalf("PatientDetail() error: %v", err)
	}
	if detail.Personal != nil || detail.Medical != nil || detail.Insurance != nil {
		t.Errorf("intake sections should be nil when records are missing: %+v", detail)
	}
}
