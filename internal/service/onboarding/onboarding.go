package onboarding

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/telecare/telecare_backend/config"
	"github.com/telecare/telecare_backend/internal/repo"
	entassign "github.com/telecare/telecare_backend/internal/repo/assignment"
	entroom "github.com/telecare/telecare_backend/internal/repo/chatroom"
	entdoctor "github.com/telecare/telecare_backend/internal/repo/doctor"
	entinsurance "github.com/telecare/telecare_backend/internal/repo/onboardinginsurance"
	entmedical "github.com/telecare/telecare_backend/internal/repo/onboardingmedical"
	entpersonal "github.com/telecare/telecare_backend/internal/repo/onboardingpersonal"
	entpatient "github.com/telecare/telecare_backend/internal/repo/patient"
	"github.com/telecare/telecare_backend/pkg/crypto"
)

// SubjectOnboardingCompleted is published when a patient finishes onboarding
// and gets a doctor assigned. The wildcard segment is the patient id.
const SubjectOnboardingCompleted = "telecare.onboarding.completed"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Step1Request struct {
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
}

type Step2Request struct {
	Allergies      []string `json:"allergies"`
	Conditions     []string `json:"conditions"`
	Medications    []string `json:"medications"`
	PrimaryConcern string   `json:"primary_concern"`
}

type Step3Request struct {
	Provider          string     `json:"provider"`
	MemberID          string     `json:"member_id"`
	PreferredDoctorID *uuid.UUID `json:"preferred_doctor_id,omitempty"`
}

// Step3View is Step3Request with the member id decrypted for the owner.
type Step3View struct {
	Provider          string     `json:"provider"`
	MemberID          string     `json:"member_id"`
	PreferredDoctorID *uuid.UUID `json:"preferred_doctor_id,omitempty"`
}

type StatusView struct {
	Step             int        `json:"step"`
	Completed        bool       `json:"completed"`
	AssignedDoctorID *uuid.UUID `json:"assigned_doctor_id,omitempty"`
	PersonalSaved    bool       `json:"personal_saved"`
	MedicalSaved     bool       `json:"medical_saved"`
	InsuranceSaved   bool       `json:"insurance_saved"`
}

type DoctorView struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Specialty       string    `json:"specialty"`
	Bio             *string   `json:"bio,omitempty"`
	YearsExperience int       `json:"years_experience"`
}

type CompleteResult struct {
	DoctorID uuid.UUID `json:"doctor_id"`
	RoomID   uuid.UUID `json:"room_id"`
}

// CompletedEvent is the NATS payload for SubjectOnboardingCompleted.
type CompletedEvent struct {
	PatientID uuid.UUID `json:"patient_id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	RoomID    uuid.UUID `json:"room_id"`
}

var validGenders = map[string]bool{
	"male":              true,
	"female":            true,
	"other":             true,
	"prefer_not_to_say": true,
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Status(ctx context.Context, patientID uuid.UUID) (*StatusView, error)

	SaveStep1(ctx context.Context, patientID uuid.UUID, req Step1Request) error
	SaveStep2(ctx context.Context, patientID uuid.UUID, req Step2Request) error
	SaveStep3(ctx context.Context, patientID uuid.UUID, req Step3Request) error

	GetStep1(ctx context.Context, patientID uuid.UUID) (*Step1Request, error)
	GetStep2(ctx context.Context, patientID uuid.UUID) (*Step2Request, error)
	GetStep3(ctx context.Context, patientID uuid.UUID) (*Step3View, error)

	Complete(ctx context.Context, patientID uuid.UUID) (*CompleteResult, error)
	ListDoctors(ctx context.Context) ([]DoctorView, error)

	// ReconcilePartialCompletions repairs patients marked completed whose
	// assignment or chat room is missing. Returns how many were fixed.
	ReconcilePartialCompletions(ctx context.Context) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type onboardingService struct {
	db     *repo.Client
	nc     *nats.Conn
	encKey []byte
}

func New(db *repo.Client, nc *nats.Conn, cfg *config.Config) (Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("onboarding service: invalid encryption key: %w", err)
	}
	return &onboardingService{db: db, nc: nc, encKey: encKey}, nil
}

// ---------------------------------------------------------------------------
// Status
// ---------------------------------------------------------------------------

func (s *onboardingService) Status(ctx context.Context, patientID uuid.UUID) (*StatusView, error) {
	p, err := s.getPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	personal, err := s.db.OnboardingPersonal.Query().
		Where(entpersonal.PatientID(patientID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check personal details: %w", err)
	}
	medical, err := s.db.OnboardingMedical.Query().
		Where(entmedical.PatientID(patientID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check medical history: %w", err)
	}
	insurance, err := s.db.OnboardingInsurance.Query().
		Where(entinsurance.PatientID(patientID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check insurance details: %w", err)
	}

	return &StatusView{
		Step:             p.OnboardingStep,
		Completed:        p.OnboardingCompleted,
		AssignedDoctorID: p.AssignedDoctorID,
		PersonalSaved:    personal,
		MedicalSaved:     medical,
		InsuranceSaved:   insurance,
	}, nil
}

// ---------------------------------------------------------------------------
// Step saves
// ---------------------------------------------------------------------------

func (s *onboardingService) SaveStep1(ctx context.Context, patientID uuid.UUID, req Step1Request) error {
	p, err := s.getPatient(ctx, patientID)
	if err != nil {
		return err
	}
	if p.OnboardingCompleted {
		return ErrAlreadyCompleted
	}

	if req.DateOfBirth.IsZero() || !req.DateOfBirth.Before(time.Now()) {
		return ErrInvalidDateOfBirth
	}
	if !validGenders[req.Gender] {
		return ErrMissingField
	}
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)
	if req.Phone == "" || req.Address == "" {
		return ErrMissingField
	}

	err = s.db.OnboardingPersonal.Create().
		SetPatientID(patientID).
		SetDateOfBirth(req.DateOfBirth).
		SetGender(entpersonal.Gender(req.Gender)).
		SetPhone(req.Phone).
		SetAddress(req.Address).
		OnConflictColumns(entpersonal.FieldPatientID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save personal details: %w", err)
	}

	return s.raiseStep(ctx, p, 1)
}

func (s *onboardingService) SaveStep2(ctx context.Context, patientID uuid.UUID, req Step2Request) error {
	p, err := s.getPatient(ctx, patientID)
	if err != nil {
		return err
	}
	if p.OnboardingCompleted {
		return ErrAlreadyCompleted
	}
	if p.OnboardingStep < 1 {
		return ErrStepOutOfOrder
	}

	req.PrimaryConcern = strings.TrimSpace(req.PrimaryConcern)
	if req.PrimaryConcern == "" {
		return ErrMissingField
	}

	err = s.db.OnboardingMedical.Create().
		SetPatientID(patientID).
		SetAllergies(cleanList(req.Allergies)).
		SetConditions(cleanList(req.Conditions)).
		SetMedications(cleanList(req.Medications)).
		SetPrimaryConcern(req.PrimaryConcern).
		OnConflictColumns(entmedical.FieldPatientID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save medical history: %w", err)
	}

	return s.raiseStep(ctx, p, 2)
}

func (s *onboardingService) SaveStep3(ctx context.Context, patientID uuid.UUID, req Step3Request) error {
	p, err := s.getPatient(ctx, patientID)
	if err != nil {
		return err
	}
	if p.OnboardingCompleted {
		return ErrAlreadyCompleted
	}
	if p.OnboardingStep < 2 {
		return ErrStepOutOfOrder
	}

	req.Provider = strings.TrimSpace(req.Provider)
	req.MemberID = strings.TrimSpace(req.MemberID)
	if req.Provider == "" || req.MemberID == "" {
		return ErrMissingField
	}

	if req.PreferredDoctorID != nil {
		exists, err := s.db.Doctor.Query().
			Where(entdoctor.ID(*req.PreferredDoctorID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check preferred doctor: %w", err)
		}
		if !exists {
			return ErrDoctorNotFound
		}
	}

	enc, err := crypto.Encrypt(s.encKey, req.MemberID)
	if err != nil {
		return fmt.Errorf("encrypt member id: %w", err)
	}

	c := s.db.OnboardingInsurance.Create().
		SetPatientID(patientID).
		SetProvider(req.Provider).
		SetMemberIDEncrypted(enc)
	if req.PreferredDoctorID != nil {
		c = c.SetPreferredDoctorID(*req.PreferredDoctorID)
	}

	err = c.
		OnConflictColumns(entinsurance.FieldPatientID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save insurance details: %w", err)
	}

	return s.raiseStep(ctx, p, 3)
}

// ---------------------------------------------------------------------------
// Step reads
// ---------------------------------------------------------------------------

func (s *onboardingService) GetStep1(ctx context.Context, patientID uuid.UUID) (*Step1Request, error) {
	rec, err := s.db.OnboardingPersonal.Query().
		Where(entpersonal.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrStepNotSaved
		}
		return nil, fmt.Errorf("get personal details: %w", err)
	}
	return &Step1Request{
		DateOfBirth: rec.DateOfBirth,
		Gender:      string(rec.Gender),
		Phone:       rec.Phone,
		Address:     rec.Address,
	}, nil
}

func (s *onboardingService) GetStep2(ctx context.Context, patientID uuid.UUID) (*Step2Request, error) {
	rec, err := s.db.OnboardingMedical.Query().
		Where(entmedical.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrStepNotSaved
		}
		return nil, fmt.Errorf("get medical history: %w", err)
	}
	return &Step2Request{
		Allergies:      rec.Allergies,
		Conditions:     rec.Conditions,
		Medications:    rec.Medications,
		PrimaryConcern: rec.PrimaryConcern,
	}, nil
}

func (s *onboardingService) GetStep3(ctx context.Context, patientID uuid.UUID) (*Step3View, error) {
	rec, err := s.db.OnboardingInsurance.Query().
		Where(entinsurance.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrStepNotSaved
		}
		return nil, fmt.Errorf("get insurance details: %w", err)
	}

	memberID, err := crypto.Decrypt(s.encKey, rec.MemberIDEncrypted)
	if err != nil {
		return nil, fmt.Errorf("decrypt member id: %w", err)
	}

	return &Step3View{
		Provider:          rec.Provider,
		MemberID:          memberID,
		PreferredDoctorID: rec.PreferredDoctorID,
	}, nil
}

// ---------------------------------------------------------------------------
// Complete
// ---------------------------------------------------------------------------

// Complete finishes onboarding in a single transaction: it picks a doctor,
// marks the patient completed, records the assignment and creates the chat
// room. Either all of it lands or none of it does.
func (s *onboardingService) Complete(ctx context.Context, patientID uuid.UUID) (*CompleteResult, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	result, err := s.completeTx(ctx, tx, patientID)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	s.publishCompleted(patientID, result)

	return result, nil
}

func (s *onboardingService) completeTx(ctx context.Context, tx *repo.Tx, patientID uuid.UUID) (*CompleteResult, error) {
	p, err := tx.Patient.Get(ctx, patientID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	if p.OnboardingCompleted {
		return nil, ErrAlreadyCompleted
	}
	if p.OnboardingStep < 3 {
		return nil, ErrIncomplete
	}

	ins, err := tx.OnboardingInsurance.Query().
		Where(entinsurance.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrIncomplete
		}
		return nil, fmt.Errorf("get insurance details: %w", err)
	}

	doctorID, err := s.pickDoctor(ctx, tx, ins.PreferredDoctorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	if err := tx.Patient.UpdateOneID(patientID).
		SetOnboardingCompleted(true).
		SetAssignedDoctorID(doctorID).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("mark patient completed: %w", err)
	}

	// Any previous assignment to a different doctor goes inactive.
	if _, err := tx.Assignment.Update().
		Where(
			entassign.PatientID(patientID),
			entassign.DoctorIDNEQ(doctorID),
			entassign.Active(true),
		).
		SetActive(false).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("deactivate old assignments: %w", err)
	}

	if err := tx.Assignment.Create().
		SetPatientID(patientID).
		SetDoctorID(doctorID).
		SetActive(true).
		SetAssignedAt(now).
		OnConflictColumns(entassign.FieldPatientID, entassign.FieldDoctorID).
		UpdateNewValues().
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("upsert assignment: %w", err)
	}

	if err := tx.ChatRoom.Create().
		SetPatientID(patientID).
		SetDoctorID(doctorID).
		OnConflictColumns(entroom.FieldPatientID, entroom.FieldDoctorID).
		Ignore().
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("ensure chat room: %w", err)
	}

	room, err := tx.ChatRoom.Query().
		Where(entroom.PatientID(patientID), entroom.DoctorID(doctorID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chat room: %w", err)
	}

	return &CompleteResult{DoctorID: doctorID, RoomID: room.ID}, nil
}

// pickDoctor returns the preferred doctor when they are accepting patients,
// otherwise the accepting doctor with the fewest active assignments.
func (s *onboardingService) pickDoctor(ctx context.Context, tx *repo.Tx, preferred *uuid.UUID) (uuid.UUID, error) {
	if preferred != nil {
		doc, err := tx.Doctor.Get(ctx, *preferred)
		if err != nil && !repo.IsNotFound(err) {
			return uuid.Nil, fmt.Errorf("get preferred doctor: %w", err)
		}
		if doc != nil && doc.AcceptingPatients {
			return doc.ID, nil
		}
		// Preferred doctor gone or closed their panel, fall through.
	}

	docs, err := tx.Doctor.Query().
		Where(entdoctor.AcceptingPatients(true)).
		All(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("list accepting doctors: %w", err)
	}
	if len(docs) == 0 {
		return uuid.Nil, ErrNoDoctorsAvailable
	}

	ids := make([]uuid.UUID, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}

	var rows []struct {
		DoctorID uuid.UUID `json:"doctor_id"`
		Count    int       `json:"count"`
	}
	err = tx.Assignment.Query().
		Where(entassign.Active(true), entassign.DoctorIDIn(ids...)).
		GroupBy(entassign.FieldDoctorID).
		Aggregate(repo.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return uuid.Nil, fmt.Errorf("count active assignments: %w", err)
	}

	load := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		load[r.DoctorID] = r.Count
	}

	best := docs[0].ID
	for _, d := range docs[1:] {
		if load[d.ID] < load[best] {
			best = d.ID
		}
	}
	return best, nil
}

func (s *onboardingService) publishCompleted(patientID uuid.UUID, res *CompleteResult) {
	if s.nc == nil {
		return
	}
	payload, err := json.Marshal(CompletedEvent{
		PatientID: patientID,
		DoctorID:  res.DoctorID,
		RoomID:    res.RoomID,
	})
	if err != nil {
		return
	}
	subject := fmt.Sprintf("%s.%s", SubjectOnboardingCompleted, patientID.String())
	if err := s.nc.Publish(subject, payload); err != nil {
		slog.Warn("failed to publish onboarding.completed", "patient_id", patientID, "error", err)
	}
}

// ---------------------------------------------------------------------------
// ListDoctors
// ---------------------------------------------------------------------------

func (s *onboardingService) ListDoctors(ctx context.Context) ([]DoctorView, error) {
	docs, err := s.db.Doctor.Query().
		Where(entdoctor.AcceptingPatients(true)).
		WithUser().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	out := make([]DoctorView, 0, len(docs))
	for _, d := range docs {
		v := DoctorView{
			ID:              d.ID,
			Specialty:       d.Specialty,
			Bio:             d.Bio,
			YearsExperience: d.YearsExperience,
		}
		if u := d.Edges.User; u != nil {
			v.FirstName = u.FirstName
			v.LastName = u.LastName
		}
		out = append(out, v)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Reconciliation
// ---------------------------------------------------------------------------

func (s *onboardingService) ReconcilePartialCompletions(ctx context.Context) (int, error) {
	patients, err := s.db.Patient.Query().
		Where(
			entpatient.OnboardingCompleted(true),
			entpatient.AssignedDoctorIDNotNil(),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("list completed patients: %w", err)
	}

	repaired := 0
	for _, p := range patients {
		doctorID := *p.AssignedDoctorID

		hasAssignment, err := s.db.Assignment.Query().
			Where(
				entassign.PatientID(p.ID),
				entassign.DoctorID(doctorID),
				entassign.Active(true),
			).
			Exist(ctx)
		if err != nil {
			return repaired, fmt.Errorf("check assignment: %w", err)
		}

		hasRoom, err := s.db.ChatRoom.Query().
			Where(entroom.PatientID(p.ID), entroom.DoctorID(doctorID)).
			Exist(ctx)
		if err != nil {
			return repaired, fmt.Errorf("check chat room: %w", err)
		}

		if hasAssignment && hasRoom {
			continue
		}

		if !hasAssignment {
			if err := s.db.Assignment.Create().
				SetPatientID(p.ID).
				SetDoctorID(doctorID).
				SetActive(true).
				SetAssignedAt(time.Now()).
				OnConflictColumns(entassign.FieldPatientID, entassign.FieldDoctorID).
				UpdateNewValues().
				Exec(ctx); err != nil {
				return repaired, fmt.Errorf("repair assignment: %w", err)
			}
		}

		if !hasRoom {
			if err := s.db.ChatRoom.Create().
				SetPatientID(p.ID).
				SetDoctorID(doctorID).
				OnConflictColumns(entroom.FieldPatientID, entroom.FieldDoctorID).
				Ignore().
				Exec(ctx); err != nil {
				return repaired, fmt.Errorf("repair chat room: %w", err)
			}
		}

		slog.Info("repaired partial onboarding completion",
			"patient_id", p.ID, "doctor_id", doctorID,
			"had_assignment", hasAssignment, "had_room", hasRoom)
		repaired++
	}

	return repaired, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *onboardingService) getPatient(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Get(ctx, patientID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

// raiseStep bumps the wizard counter, never lowering it. Re-saving an
// earlier step keeps the later progress.
func (s *onboardingService) raiseStep(ctx context.Context, p *repo.Patient, step int) error {
	if p.OnboardingStep >= step {
		return nil
	}
	if err := s.db.Patient.UpdateOneID(p.ID).
		SetOnboardingStep(step).
		Exec(ctx); err != nil {
		return fmt.Errorf("update onboarding step: %w", err)
	}
	return nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
