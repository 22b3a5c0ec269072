// Package apperror defines the error taxonomy shared by every use case: validation failures
// (including duplicate unique keys), missing entities, and everything else, which is treated as a
// persistence or transport failure.
package apperror

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrNotFound marks operations on an id that does not exist
	ErrNotFound = errors.New("not found")
	// ErrDuplicate marks a unique key collision. It is a validation failure.
	ErrDuplicate = errors.New("already exists")
)

// FieldError describes one rejected field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is the structured result of an explicit validation function
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

// Add records a field failure
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Has reports whether the field was rejected
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// OrNil returns nil when no field failed, so callers can `return v.OrNil()`.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidation reports whether err should be surfaced to the caller as a bad request
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v) || errors.Is(err, ErrDuplicate)
}

// IsNotFound reports whether err refers to a missing entity
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// FieldsOf extracts field failures, if any
func FieldsOf(err error) []FieldError {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Fields
	}
	return nil
}

// StatusCode maps an error onto an HTTP status
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsNotFound(err):
		return http.StatusNotFound
	case IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message safe to show a caller. Persistence failures are not echoed.
func PublicMessage(err error, fallback string) string {
	if IsNotFound(err) || IsValidation(err) {
		return err.Error()
	}
	return fallback
}
