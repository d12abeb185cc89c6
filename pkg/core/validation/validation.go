// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     validation
// Description: Structured validation results with per-field error codes
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package validation

import (
	"fmt"
	"strings"

	cerror "github.com/msto63/contact/pkg/core/error"
)

// Standard validation error codes
const (
	CodeRequired    = "VALIDATION_REQUIRED"    // Field is required but missing
	CodeFormat      = "VALIDATION_FORMAT"      // Invalid format
	CodeLength      = "VALIDATION_LENGTH"      // String length outside bounds
	CodeRange       = "VALIDATION_RANGE"       // Numeric range validation
	CodeEnum        = "VALIDATION_ENUM"        // Value not in enumerated set
	CodeCountry     = "VALIDATION_COUNTRY"     // Unknown country code
	CodeSubdivision = "VALIDATION_SUBDIVISION" // Unknown subdivision for country
	CodeEmail       = "VALIDATION_EMAIL"       // Email address format
	CodePhoneNumber = "VALIDATION_PHONE"       // Phone number format
)

// Result represents the result of a validation operation
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError represents a single validation error
type FieldError struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// NewResult creates a successful validation result
func NewResult() Result {
	return Result{Valid: true}
}

// AddFieldError adds a field-specific error to the validation result
func (r *Result) AddFieldError(code, field, message string, value any) *Result {
	r.Valid = false
	r.Errors = append(r.Errors, FieldError{
		Code:    code,
		Field:   field,
		Message: message,
		Value:   value,
	})
	return r
}

// Fields returns the names of all failing fields in order
func (r Result) Fields() []string {
	fields := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		fields[i] = err.Field
	}
	return fields
}

// HasError checks if the result contains a specific error code
func (r Result) HasError(code string) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts the validation result to a standard error.
// Returns nil if validation passed.
func (r Result) ToError() error {
	if r.Valid {
		return nil
	}
	if len(r.Errors) == 0 {
		return cerror.New("validation failed").WithCode(cerror.CodeValidationFailed)
	}

	first := r.Errors[0]
	err := cerror.New(first.Message).
		WithCode(cerror.CodeValidationFailed).
		WithDetail("code", first.Code)
	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if len(r.Errors) > 1 {
		err = err.WithDetail("totalErrors", len(r.Errors))
	}
	return err
}

// String returns a human-readable representation of the validation result
func (r Result) String() string {
	if r.Valid {
		return "Result{valid: true}"
	}
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, e.String())
	}
	return fmt.Sprintf("Result{valid: false, errors: [%s]}", strings.Join(parts, ", "))
}

// String returns a human-readable representation of a validation error
func (e FieldError) String() string {
	if e.Field != "" {
		return fmt.Sprintf("%s(%s): %s", e.Field, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Combine merges multiple validation results into a single result
func Combine(results ...Result) Result {
	combined := NewResult()
	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
	}
	return combined
}
