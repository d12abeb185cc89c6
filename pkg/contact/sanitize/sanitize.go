// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     sanitize
// Description: Character-policy based cleanup of raw contact input
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package sanitize strips characters that are not allowed for a given field
// kind. Every function is total and idempotent; no length checks happen here.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/msto63/contact/pkg/stringx"
)

// Policy names the allowed character set of a field kind
type Policy int

const (
	// PhoneNumberPolicy keeps digits only (national number, no calling code)
	PhoneNumberPolicy Policy = iota
	// PhonePolicy keeps digits and a single leading '+'
	PhonePolicy
	// PostalCodePolicy keeps ASCII letters, digits, hyphen and space
	PostalCodePolicy
)

// String returns the policy name
func (p Policy) String() string {
	switch p {
	case PhoneNumberPolicy:
		return "phone_number"
	case PhonePolicy:
		return "phone"
	case PostalCodePolicy:
		return "postal_code"
	default:
		return "unknown"
	}
}

var (
	notDigit      = regexp.MustCompile(`[^0-9]`)
	notPhoneChar  = regexp.MustCompile(`[^0-9+]`)
	notPostalChar = regexp.MustCompile(`[^A-Za-z0-9\- ]`)
)

// Sanitize removes every character of raw that the policy does not allow.
// An unknown policy yields the empty string.
func Sanitize(raw string, p Policy) string {
	switch p {
	case PhoneNumberPolicy:
		return stringx.SanitizeByPattern(raw, notDigit)
	case PhonePolicy:
		return phone(raw)
	case PostalCodePolicy:
		return stringx.SanitizeByPattern(raw, notPostalChar)
	default:
		return ""
	}
}

// PhoneNumber cleans a national phone number
func PhoneNumber(raw string) string { return Sanitize(raw, PhoneNumberPolicy) }

// Phone cleans a full phone number with optional leading '+'
func Phone(raw string) string { return Sanitize(raw, PhonePolicy) }

// PostalCode cleans a postal code
func PostalCode(raw string) string { return Sanitize(raw, PostalCodePolicy) }

// phone keeps a '+' only when it is the first retained character
func phone(raw string) string {
	kept := stringx.SanitizeByPattern(raw, notPhoneChar)
	if kept == "" {
		return ""
	}
	lead := ""
	if kept[0] == '+' {
		lead = "+"
	}
	return lead + strings.ReplaceAll(kept, "+", "")
}
