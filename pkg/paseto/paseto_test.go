package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func testManager(t *testing.T, accessTTL time.Duration) *Manager {
	t.Helper()

	m, err := New(Config{
		Mode:       ModeLocal,
		Issuer:     "telecare",
		Audience:   "telecare-app",
		AccessTTL:  accessTTL,
		RefreshTTL: 24 * time.Hour,
	}, NewLocalKeys())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := testManager(t, 10*time.Minute)

	pid := uuid.New()
	id := Identity{
		UserID:    uuid.New(),
		Role:      RolePatient,
		PatientID: &pid,
	}
	sid := uuid.New()

	tok, err := m.IssueAccess(id, &sid)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeAccess)
	}
	if claims.UserID != id.UserID {
		t.Errorf("UserID = %v, want %v", claims.UserID, id.UserID)
	}
	if claims.Role != RolePatient {
		t.Errorf("Role = %q, want %q", claims.Role, RolePatient)
	}
	if claims.PatientID == nil || *claims.PatientID != pid {
		t.Errorf("PatientID = %v, want %v", claims.PatientID, pid)
	}
	if claims.DoctorID != nil {
		t.Errorf("DoctorID = %v, want nil", claims.DoctorID)
	}
	if claims.SessionID == nil || *claims.SessionID != sid {
		t.Errorf("SessionID = %v, want %v", claims.SessionID, sid)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := testManager(t, 10*time.Minute)

	if _, err := m.Verify("v4.local.garbage"); err == nil {
		t.Error("Verify() accepted a malformed token")
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	m1 := testManager(t, 10*time.Minute)
	m2 := testManager(t, 10*time.Minute)

	did := uuid.New()
	tok, err := m1.IssueAccess(Identity{UserID: uuid.New(), Role: RoleDoctor, DoctorID: &did}, nil)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	if _, err := m2.Verify(tok); err == nil {
		t.Error("Verify() accepted a token encrypted under a different key")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := testManager(t, time.Nanosecond)

	tok, err := m.IssueAccess(Identity{UserID: uuid.New(), Role: RolePatient}, nil)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := m.Verify(tok); err == nil {
		t.Error("Verify() accepted an expired token")
	}
}

func TestRefreshTokenType(t *testing.T) {
	m := testManager(t, 10*time.Minute)

	tok, err := m.IssueRefresh(Identity{UserID: uuid.New(), Role: RolePatient}, nil)
	if err != nil {
		t.Fatalf("IssueRefresh() error = %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeRefresh)
	}
}
