// Package doctor serves the doctor-facing views of the patient panel.
package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/telecare/telecare_backend/config"
	"github.com/telecare/telecare_backend/internal/repo"
	entassign "github.com/telecare/telecare_backend/internal/repo/assignment"
	entinsurance "github.com/telecare/telecare_backend/internal/repo/onboardinginsurance"
	entmedical "github.com/telecare/telecare_backend/internal/repo/onboardingmedical"
	entpersonal "github.com/telecare/telecare_backend/internal/repo/onboardingpersonal"
	entpatient "github.com/telecare/telecare_backend/internal/repo/patient"
	"github.com/telecare/telecare_backend/internal/service/presence"
	"github.com/telecare/telecare_backend/pkg/crypto"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PatientSummary struct {
	PatientID  uuid.UUID  `json:"patient_id"`
	UserID     uuid.UUID  `json:"user_id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	AssignedAt *time.Time `json:"assigned_at,omitempty"`
	Online     bool       `json:"online"`
	LastSeen   *time.Time `json:"last_seen,omitempty"`
}

type PersonalDetails struct {
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
}

type MedicalHistory struct {
	Allergies      []string `json:"allergies"`
	Conditions     []string `json:"conditions"`
	Medications    []string `json:"medications"`
	PrimaryConcern string   `json:"primary_concern"`
}

type InsuranceDetails struct {
	Provider string `json:"provider"`
	MemberID string `json:"member_id"`
}

type PatientDetail struct {
	PatientSummary

	Email     string            `json:"email"`
	Personal  *PersonalDetails  `json:"personal,omitempty"`
	Medical   *MedicalHistory   `json:"medical,omitempty"`
	Insurance *InsuranceDetails `json:"insurance,omitempty"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// ListPatients returns the doctor's actively assigned patients.
	ListPatients(ctx context.Context, doctorID uuid.UUID) ([]PatientSummary, error)

	// PatientDetail returns a patient's full intake record. The patient must
	// be actively assigned to the calling doctor.
	PatientDetail(ctx context.Context, doctorID, patientID uuid.UUID) (*PatientDetail, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type doctorService struct {
	db       *repo.Client
	presence presence.Service
	encKey   []byte
}

func New(db *repo.Client, pres presence.Service, cfg *config.Config) (Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("doctor service: invalid encryption key: %w", err)
	}
	return &doctorService{db: db, presence: pres, encKey: encKey}, nil
}

func (s *doctorService) ListPatients(ctx context.Context, doctorID uuid.UUID) ([]PatientSummary, error) {
	assigns, err := s.db.Assignment.Query().
		Where(entassign.DoctorID(doctorID), entassign.Active(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	if len(assigns) == 0 {
		return []PatientSummary{}, nil
	}

	patientIDs := make([]uuid.UUID, len(assigns))
	assignedAt := make(map[uuid.UUID]*time.Time, len(assigns))
	for i, a := range assigns {
		patientIDs[i] = a.PatientID
		assignedAt[a.PatientID] = a.AssignedAt
	}

	patients, err := s.db.Patient.Query().
		Where(entpatient.IDIn(patientIDs...)).
		WithUser().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	userIDs := make([]uuid.UUID, 0, len(patients))
	for _, p := range patients {
		userIDs = append(userIDs, p.UserID)
	}
	statuses, err := s.presence.GetMany(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	out := make([]PatientSummary, 0, len(patients))
	for _, p := range patients {
		sum := PatientSummary{
			PatientID:  p.ID,
			UserID:     p.UserID,
			AssignedAt: assignedAt[p.ID],
		}
		if u := p.Edges.User; u != nil {
			sum.FirstName = u.FirstName
			sum.LastName = u.LastName
		}
		if st, ok := statuses[p.UserID]; ok {
			sum.Online = st.Online
			sum.LastSeen = st.LastSeen
		}
		out = append(out, sum)
	}
	return out, nil
}

func (s *doctorService) PatientDetail(ctx context.Context, doctorID, patientID uuid.UUID) (*PatientDetail, error) {
	assigned, err := s.db.Assignment.Query().
		Where(
			entassign.DoctorID(doctorID),
			entassign.PatientID(patientID),
			entassign.Active(true),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotAssigned
		}
		return nil, fmt.Errorf("check assignment: %w", err)
	}

	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID)).
		WithUser().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}

	detail := &PatientDetail{
		PatientSummary: PatientSummary{
			PatientID:  p.ID,
			UserID:     p.UserID,
			AssignedAt: assigned.AssignedAt,
		},
	}
	if u := p.Edges.User; u != nil {
		detail.FirstName = u.FirstName
		detail.LastName = u.LastName
		detail.Email = u.Email
	}

	if st, err := s.presence.Get(ctx, p.UserID); err == nil {
		detail.Online = st.Online
		detail.LastSeen = st.LastSeen
	}

	personal, err := s.db.OnboardingPersonal.Query().
		Where(entpersonal.PatientID(patientID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get personal details: %w", err)
	}
	if personal != nil {
		detail.Personal = &PersonalDetails{
			DateOfBirth: personal.DateOfBirth,
			Gender:      string(personal.Gender),
			Phone:       personal.Phone,
			Address:     personal.Address,
		}
	}

	medical, err := s.db.OnboardingMedical.Query().
		Where(entmedical.PatientID(patientID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get medical history: %w", err)
	}
	if medical != nil {
		detail.Medical = &MedicalHistory{
			Allergies:      medical.Allergies,
			Conditions:     medical.Conditions,
			Medications:    medical.Medications,
			PrimaryConcern: medical.PrimaryConcern,
		}
	}

	insurance, err := s.db.OnboardingInsurance.Query().
		Where(entinsurance.PatientID(patientID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get insurance details: %w", err)
	}
	if insurance != nil {
		memberID, err := crypto.Decrypt(s.encKey, insurance.MemberIDEncrypted)
		if err != nil {
			return nil, fmt.Errorf("decrypt member id: %w", err)
		}
		detail.Insurance = &InsuranceDetails{
			Provider: insurance.Provider,
			MemberID: memberID,
		}
	}

	return detail, nil
}
