package appointment

import (
	entappt "github.com/cabinetmed/cabinet_backend/internal/repo/appointment"
)

// guardReschedule reports whether an appointment in the given status may
// be moved to a new time.
func guardReschedule(status entappt.Status) error {
	switch status {
	case entappt.StatusCancelled:
		return ErrAlreadyCancelled
	case entappt.StatusCompleted:
		return ErrAlreadyCompleted
	}
	return nil
}

// guardCancel returns skip=true when the appointment is already cancelled;
// repeat cancels are a no-op, not an error.
func guardCancel(status entappt.Status) (skip bool, err error) {
	switch status {
	case entappt.StatusCancelled:
		return true, nil
	case entappt.StatusCompleted:
		return false, ErrAlreadyCompleted
	}
	return false, nil
}

// guardComplete allows planned appointments only.
func guardComplete(status entappt.Status) error {
	switch status {
	case entappt.StatusCompleted:
		return ErrAlreadyCompleted
	case entappt.StatusCancelled:
		return ErrAlreadyCancelled
	}
	return nil
}
