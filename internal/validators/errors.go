package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every validation failure. Transport layers
// match it with errors.Is to answer 400.
var ErrValidation = errors.New("validation error")

var (
	ErrUnsupportedType = fmt.Errorf("%w: unsupported type for validation", ErrValidation)
	ErrUnknownField    = fmt.Errorf("%w: unknown field for validation", ErrValidation)

	// ErrMissingFields is wrapped together with the list of empty required
	// fields.
	ErrMissingFields = fmt.Errorf("%w: required fields are missing", ErrValidation)
	ErrInvalidEmail  = fmt.Errorf("%w: invalid email address", ErrValidation)
	ErrFieldTooLong  = fmt.Errorf("%w: field is too long", ErrValidation)
)
