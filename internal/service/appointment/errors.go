package appointment

import "errors"

var (
	ErrNotFound             = errors.New("appointment not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrPractitionerNotFound = errors.New("practitioner not found")
	ErrOverlap              = errors.New("appointment overlaps an existing booking")
	ErrPastStart            = errors.New("appointment start must be in the future")
	ErrNotPlanned           = errors.New("appointment is not in planned state")
	ErrAlreadyCompleted     = errors.New("appointment is already completed")
	ErrAlreadyCancelled     = errors.New("appointment is already cancelled")
)
