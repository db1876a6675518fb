package notification

import "errors"

var (
	ErrNotFound     = errors.New("notification not found")
	ErrInvalidDelay = errors.New("reminder delay must be a positive number of hours")
)
