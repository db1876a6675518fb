package patient

import "errors"

var (
	ErrNotFound      = errors.New("patient not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrNotPatient    = errors.New("user does not have the patient role")
	ErrAlreadyExists = errors.New("patient record already exists for user")
)
