package doctor

import "errors"

var (
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrNotAssigned     = errors.New("patient is not assigned to this doctor")
)
