package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/telecare/telecare_backend/internal/service/onboarding"
)

const dateLayout = "2006-01-02"

type OnboardingHandler struct {
	svc onboarding.Service
}

func NewOnboardingHandler(svc onboarding.Service) *OnboardingHandler {
	return &OnboardingHandler{svc: svc}
}

func mapOnboardingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, onboarding.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, onboarding.ErrStepNotSaved):
		return notFound(c, err.Error())
	case errors.Is(err, onboarding.ErrStepOutOfOrder):
		return unprocessable(c, err.Error())
	case errors.Is(err, onboarding.ErrAlreadyCompleted):
		return conflict(c, err.Error())
	case errors.Is(err, onboarding.ErrIncomplete):
		return unprocessable(c, err.Error())
	case errors.Is(err, onboarding.ErrInvalidDateOfBirth),
		errors.Is(err, onboarding.ErrMissingField):
		return badRequest(c, err.Error())
	case errors.Is(err, onboarding.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, onboarding.ErrNoDoctorsAvailable):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /onboarding/status
func (h *OnboardingHandler) Status(c fiber.Ctx) error {
	patientID, valid := patientIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	status, err := h.svc.Status(c.Context(), patientID)
	if err != nil {
		return mapOnboardingError(c, err)
	}

	return ok(c, status)
}

// POST /onboarding/step1
func (h *OnboardingHandler) SaveStep1(c fiber.Ctx) error {
	patientID, valid := patientIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		DateOfBirth string `json:"date_of_birth"`
		Gender      string `json:"gender"`
		Phone       string `json:"phone"`
		Address     string `json:"address"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	dob, err := time.Parse(dateLayout, body.DateOfBirth)
	if err != nil {
		return badRequest(c, "date_of_birth must be YYYY-MM-DD")
	}

	req := onboarding.Step1Request{
		DateOfBirth: dob,
		Gender:      body.Gender,
		Phone:       body.Phone,
		Address:     body.Address,
	}
	if err := h.svc.SaveStep1(c.Context(), patientID, req); err != nil {
		return mapOnboardingError(c, err)
	}

	return noContent(c)
}

// GET /onboarding/step1
func (h *OnboardingHandler) GetStep1(c fiber.Ctx) error {
	patientID, valid := patientIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	step, err := h.svc.GetStep1(c.Context(), patientID)
	if err != nil {
		return mapOnboardingError(c, err)
	}

	return ok(c, step)
}

// POST /onboarding/step2
func (h *OnboardingHandler) SaveStep2(c fiber.Ctx) error {
	patientID, valid := patientIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body onboarding.Step2Request
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.SaveStep2(c.Context(), patientID, body); err != nil {
		return mapOnboardingError(c, err)
	}

	return noContent(c)
}

// GET /onboarding/step2
func (h *OnboardingHandler) GetStep2(c fiber.Ctx) error {
	patientID, valid := patientIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	step, err := h.svc.GetStep2(c.Context(), patientID)
	if err != nil {
		return mapOnboardingError(c, err)
	}

	return ok(c, step)
}

// POST /onboarding/step3
func (h *OnboardingHandler) SaveStep3(c fiber.Ctx) error {
	patientID, valid := patientIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Provider          string  `json:"provider"`
		MemberID          string  `json:"member_id"`
		PreferredDoctorID *string `json:"preferred_doctor_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := onboarding.Step3Request{
		Provider: body.Provider,
		MemberID: body.MemberID,
	}
	if body.PreferredDoctorID != nil && *body.PreferredDoctorID != "" {
		id, err := uuid.Parse(*body.PreferredDoctorID)
		if err != nil {
			return badRequest(c, "invalid preferred_doctor_id")
		}
		req.PreferredDoctorID = &id
	}

	if err := h.svc.SaveStep3(c.Context(), patientID, req); err != nil {
		return mapOnboardingError(c, err)
	}

	return noContent(c)
}

// GET /onboarding/step3
func (h *OnboardingHandler) GetStep3(c fiber.Ctx) error {
	patientID, valid := patientIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	step, err := h.svc.GetStep3(c.Context(), patientID)
	if err != nil {
		return mapOnboardingError(c, err)
	}

	return ok(c, step)
}

// POST /onboarding/complete
func (h *OnboardingHandler) Complete(c fiber.Ctx) error {
	patientID, valid := patientIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	result, err := h.svc.Complete(c.Context(), patientID)
	if err != nil {
		return mapOnboardingError(c, err)
	}

	return created(c, result)
}

// GET /onboarding/doctors
func (h *OnboardingHandler) ListDoctors(c fiber.Ctx) error {
	doctors, err := h.svc.ListDoctors(c.Context())
	if err != nil {
		return mapOnboardingError(c, err)
	}

	return ok(c, doctors)
}
