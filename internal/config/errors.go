package config

import (
	"errors"
	"fmt"
)

// Validation errors returned by [Load]. Every failure is wrapped in a
// [*FieldError] naming the offending field, so callers can use either
// errors.Is against these sentinels or errors.As to get the field.
var (
	// ErrMissingField indicates that a required field was not set by any source.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidFormat indicates that a value does not match its expected
	// syntax (URL, email, log level, port, path).
	ErrInvalidFormat = errors.New("invalid format")
	// ErrPathCollision indicates that two directory settings resolve to the
	// same location or one is nested inside the other.
	ErrPathCollision = errors.New("path collision")
)

// Source errors returned while reading a config file.
var (
	// ErrUnsupportedConfigFormat is returned for config files whose extension
	// is neither .json nor .yaml / .yml.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)

// FieldError describes why a single configuration field was rejected.
type FieldError struct {
	// Field is the config file name of the field (e.g. "adminEmail").
	Field string
	// Reason is a human-readable explanation.
	Reason string
	// Err is one of ErrMissingField, ErrInvalidFormat or ErrPathCollision.
	Err error
}

func (e *FieldError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Field, e.Err, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FieldErrors returns every [*FieldError] contained in err, in the order
// they were reported. It looks through wrapped and joined errors.
func FieldErrors(err error) []*FieldError {
	var out []*FieldError

	var walk func(error)
	walk = func(e error) {
		switch x := e.(type) {
		case nil:
		case *FieldError:
			out = append(out, x)
		case interface{ Unwrap() []error }:
			for _, inner := range x.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(x.Unwrap())
		}
	}
	walk(err)

	return out
}
