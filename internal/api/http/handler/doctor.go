package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/telecare/telecare_backend/internal/service/doctor"
)

type DoctorHandler struct {
	svc doctor.Service
}

func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

func mapDoctorError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, doctor.ErrDoctorNotFound),
		errors.Is(err, doctor.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, doctor.ErrNotAssigned):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// GET /doctor/patients
func (h *DoctorHandler) ListPatients(c fiber.Ctx) error {
	doctorID, valid := doctorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patients, err := h.svc.ListPatients(c.Context(), doctorID)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, patients)
}

// GET /doctor/patients/:id
func (h *DoctorHandler) PatientDetail(c fiber.Ctx) error {
	doctorID, valid := doctorIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	detail, err := h.svc.PatientDetail(c.Context(), doctorID, patientID)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, detail)
}
