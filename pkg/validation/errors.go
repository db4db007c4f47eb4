package validation

import (
	"fmt"
	"strings"
)

// ErrorLocation constants.
const (
	LocationBody   = "body"
	LocationPath   = "path"
	LocationQuery  = "query"
	LocationHeader = "header"
)

// FieldError represents a validation error for a single field.
type FieldError struct {
	// Field is the name of the field that failed validation.
	Field string `json:"field,omitempty"`

	// Location indicates where the field is: body, path, query, header.
	Location string `json:"location"`

	// Code is a machine-readable error code.
	Code string `json:"code"`

	// Message is a human-readable error description.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s.%s: %s", e.Location, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// Result contains the outcome of validating one request.
type Result struct {
	// Valid is true if validation passed.
	Valid bool `json:"valid"`

	// Errors contains validation errors (when Valid is false).
	Errors []*FieldError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result.
func (r *Result) AddError(err *FieldError) {
	r.Valid = false
	r.Errors = append(r.Errors, err)
}

// HasErrors returns true if there are any validation errors.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Summary joins the error messages into one readable line.
func (r *Result) Summary() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}
