// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     validate
// Description: Country independent length limits
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package validate

import "github.com/msto63/contact/pkg/contact/country"

// Limits holds the global length bounds used by the format-only checks.
// A zero side of a bound is absent.
type Limits struct {
	PhoneNumber country.Bounds // national number, without calling code
	Phone       country.Bounds // full number including '+' and calling code
	Title       country.Bounds
	Locality    country.Bounds
	Other       country.Bounds // line1, line2 and extra
}

// Default limits (E.164 derived for phones)
const (
	DefaultPhoneNumberMinLength = 3
	DefaultPhoneNumberMaxLength = 11
	DefaultPhoneMinLength       = 3
	DefaultPhoneMaxLength       = 14
	DefaultTitleMinLength       = 1
	DefaultTitleMaxLength       = 30
	DefaultLocalityMinLength    = 1
	DefaultLocalityMaxLength    = 100
	DefaultOtherMinLength       = 1
	DefaultOtherMaxLength       = 255
)

// DefaultLimits returns the stock limits
func DefaultLimits() Limits {
	return Limits{
		PhoneNumber: country.Bounds{Min: DefaultPhoneNumberMinLength, Max: DefaultPhoneNumberMaxLength},
		Phone:       country.Bounds{Min: DefaultPhoneMinLength, Max: DefaultPhoneMaxLength},
		Title:       country.Bounds{Min: DefaultTitleMinLength, Max: DefaultTitleMaxLength},
		Locality:    country.Bounds{Min: DefaultLocalityMinLength, Max: DefaultLocalityMaxLength},
		Other:       country.Bounds{Min: DefaultOtherMinLength, Max: DefaultOtherMaxLength},
	}
}
