// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     error
// Description: Error codes for precondition and load failures
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Codec preconditions
	CodeUnknownCountry      Code = "UNKNOWN_COUNTRY"
	CodeMalformedIdentifier Code = "MALFORMED_IDENTIFIER"
	CodePrefixMismatch      Code = "PREFIX_MISMATCH"

	// Reference data
	CodeDatasetInvalid Code = "DATASET_INVALID"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}
