package manage

import "errors"

var (
	ErrNotFound        = errors.New("booking not found")
	ErrForbidden       = errors.New("change not allowed")
	ErrSlotUnavailable = errors.New("slot unavailable")
	ErrServiceNotFound = errors.New("service not found")
	ErrValidation      = errors.New("validation error")
)
