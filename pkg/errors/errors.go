package errors

import (
	"fmt"
)

// ErrNotFound is returned when a resource is not found
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation is returned when validation fails
type ErrValidation struct {
	Message string
	Fields  map[string]string
}

func (e *ErrValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// ErrProvidersUnavailable is returned when every AI provider in the chain
// failed. Err holds the aggregated per-provider errors.
type ErrProvidersUnavailable struct {
	Err error
}

func (e *ErrProvidersUnavailable) Error() string {
	return "AI services are currently unavailable. Please try again later."
}

func (e *ErrProvidersUnavailable) Unwrap() error {
	return e.Err
}
