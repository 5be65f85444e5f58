package care

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParams signals query parameters that fail validation.
	ErrInvalidParams = errors.New("invalid query parameters")
	// ErrUnknownKind signals an unsupported query kind.
	ErrUnknownKind = errors.New("unknown query kind")
)

// ParamError describes a single invalid parameter.
type ParamError struct {
	Field  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidParams.Error(), e.Field, e.Reason)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParams }

func invalid(field, format string, args ...any) error {
	return &ParamError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
