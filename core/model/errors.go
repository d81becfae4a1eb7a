package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEngine is returned for an engine type outside the closed set.
	ErrUnknownEngine = errors.New("unrecognized engine type")
	// ErrDomain is returned when a numeric input would yield a non-finite or
	// meaningless cost.
	ErrDomain = errors.New("input outside computable domain")
	// ErrDataIntegrity signals a malformed coefficient source. It points to a
	// deployment problem rather than a caller mistake.
	ErrDataIntegrity = errors.New("coefficient data integrity")
)

// InputError describes a rejected caller input.
type InputError struct {
	Field string
	Value any
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s=%v", e.Err, e.Field, e.Value)
}

func (e *InputError) Unwrap() error { return e.Err }

// DataError wraps ErrDataIntegrity with the failing location.
func DataError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDataIntegrity, fmt.Sprintf(format, args...))
}
