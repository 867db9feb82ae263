package booking

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrServiceNotFound = errors.New("service not found")
	ErrSlotNotOffered  = errors.New("slot not offered")
	ErrSlotTaken       = errors.New("slot already taken")
)
