package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	pasetotoken "github.com/telecare/telecare_backend/pkg/paseto"
)

// patientIDFromClaims returns the calling patient's profile id. The bool is
// false when the caller is not an authenticated patient.
func patientIDFromClaims(c fiber.Ctx) (uuid.UUID, bool) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok || claims.Role != pasetotoken.RolePatient || claims.PatientID == nil {
		return uuid.Nil, false
	}
	return *claims.PatientID, true
}

// doctorIDFromClaims returns the calling doctor's profile id.
func doctorIDFromClaims(c fiber.Ctx) (uuid.UUID, bool) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok || claims.Role != pasetotoken.RoleDoctor || claims.DoctorID == nil {
		return uuid.Nil, false
	}
	return *claims.DoctorID, true
}
