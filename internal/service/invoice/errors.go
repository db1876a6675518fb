package invoice

import "errors"

var (
	ErrNotFound        = errors.New("invoice not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidAmount   = errors.New("invoice amount must not be negative")
	ErrNotIssued       = errors.New("invoice is not in issued state")
	ErrAlreadySettled  = errors.New("invoice is already settled")
	ErrVoided          = errors.New("invoice is void")
)
