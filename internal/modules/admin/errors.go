package admin

import "errors"

var ErrValidation = errors.New("validation error")
