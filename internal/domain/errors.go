package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a unique constraint violation. It is always wrapped in a ValidationError.
	ErrConflict = errors.New("constraint violation")
	// ErrBookingClosed is returned when changing an Approved or Rejected booking.
	ErrBookingClosed = errors.New("booking status is final")
	// ErrWorkerUnavailable is returned when the referenced worker is not Available.
	ErrWorkerUnavailable = errors.New("worker is not available")
)

// ValidationError carries field-keyed messages for a rejected request.
type ValidationError struct {
	Fields map[string][]string
	cause  error
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {msg}}}
}

// NewConflictError reports a duplicate value on field.
func NewConflictError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {msg}}, cause: ErrConflict}
}

func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return e.cause }

// AsValidation unwraps err into a ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
