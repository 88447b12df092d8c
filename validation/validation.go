// Package validation carries the structured, field-level validation errors
// surfaced to users. A validation failure is always recoverable: state is
// left unchanged and the caller may correct the input and retry.
package validation

import "strings"

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error is a non-empty list of field errors.
type Error struct {
	Fields []FieldError `json:"fields"`
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Reason
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field error and returns the receiver for chaining.
func (e *Error) Add(field, reason string) *Error {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
	return e
}

// OrNil returns the error if any field failed, nil otherwise.
func (e *Error) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
