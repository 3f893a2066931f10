package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a lookup by an unknown key.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates malformed caller input.
	ErrValidation = errors.New("validation failed")

	// ErrUpstreamUnavailable indicates the upstream catalog source could not
	// be reached or returned unusable data.
	ErrUpstreamUnavailable = errors.New("upstream catalog unavailable")
)

// ValidationError describes a rejected input field. It unwraps to ErrValidation.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
