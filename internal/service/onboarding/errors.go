package onboarding

import "errors"

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrStepOutOfOrder     = errors.New("previous onboarding step must be completed first")
	ErrAlreadyCompleted   = errors.New("onboarding already completed")
	ErrIncomplete         = errors.New("all three onboarding steps must be saved before completing")
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrNoDoctorsAvailable = errors.New("no doctors are accepting new patients")
	ErrInvalidDateOfBirth = errors.New("date of birth must be in the past")
	ErrMissingField       = errors.New("required field is missing")
	ErrStepNotSaved       = errors.New("onboarding step has not been saved yet")
)
