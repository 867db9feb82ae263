package payment

import "errors"

var (
	ErrUnknownFamily = errors.New("unknown payment target family")
	ErrValidation    = errors.New("validation error")
)
