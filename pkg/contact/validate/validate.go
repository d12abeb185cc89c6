// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     validate
// Description: Format-only and country-aware predicates for contact input
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package validate checks phone numbers, postal addresses and email
// addresses. Checks come in two tiers: format-only checks that need no
// country, and country-aware checks that look bounds up in the dataset.
// Every predicate returns false for malformed input and never panics.
package validate

import (
	"regexp"

	"github.com/msto63/contact/pkg/contact/country"
	"github.com/msto63/contact/pkg/geo"
	"github.com/msto63/contact/pkg/stringx"
)

var (
	phoneNumberCharset = regexp.MustCompile(`^[0-9]*$`)
	phoneCharset       = regexp.MustCompile(`^\+?[0-9]*$`)
	emailPattern       = regexp.MustCompile("(?i)^[a-z0-9!#$%&'*+/=?^_`{|}~-]+" +
		"(?:\\.[a-z0-9!#$%&'*+/=?^_`{|}~-]+)*" +
		"@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\\.)+[a-z0-9]{2,}$")
)

// addressTypes accepts both the numeric codes and their names
var addressTypes = map[string]struct{}{
	"0": {}, "1": {}, "2": {},
	"other": {}, "office": {}, "home": {},
}

// Validator runs predicates against a dataset and a set of limits.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	ds     *country.Dataset
	limits Limits
	geo    geo.Validator
}

// New creates a Validator. A nil geo validator falls back to geo.Bounds.
func New(ds *country.Dataset, limits Limits, gv geo.Validator) *Validator {
	if gv == nil {
		gv = geo.Bounds{}
	}
	return &Validator{ds: ds, limits: limits, geo: gv}
}

// Limits returns the limits in use
func (v *Validator) Limits() Limits {
	return v.limits
}

// ---------------------------------------------------------------------------
// Country
// ---------------------------------------------------------------------------

// Country reports whether the code is a known country
func (v *Validator) Country(code string) bool {
	return v.ds.Has(code)
}

// PhoneCountry is Country for phone input
func (v *Validator) PhoneCountry(code string) bool {
	return v.ds.Has(code)
}

// AddressCountry is Country for address input
func (v *Validator) AddressCountry(code string) bool {
	return v.ds.Has(code)
}

// AddressSubDivision reports whether sub exists under a known country
func (v *Validator) AddressSubDivision(code, sub string) bool {
	_, ok := v.ds.Subdivision(code, sub)
	return ok
}

// ---------------------------------------------------------------------------
// Phone
// ---------------------------------------------------------------------------

// PhoneNumberCharset reports whether n consists of ASCII digits only
func (v *Validator) PhoneNumberCharset(n string) bool {
	return phoneNumberCharset.MatchString(n)
}

// PhoneNumberLength checks n against the global phone number bounds
func (v *Validator) PhoneNumberLength(n string) bool {
	return within(n, v.limits.PhoneNumber)
}

// PhoneNumber is the format-only check of a national number
func (v *Validator) PhoneNumber(n string) bool {
	return v.PhoneNumberCharset(n) && v.PhoneNumberLength(n)
}

// Phone checks n against the phone bounds of country c
func (v *Validator) Phone(c, n string) bool {
	b, ok := v.ds.PhoneLength(c)
	return ok && within(n, b)
}

// PhoneMinLength checks only the lower phone bound of country c
func (v *Validator) PhoneMinLength(c, n string) bool {
	b, ok := v.ds.PhoneLength(c)
	return ok && stringx.LengthWithinBounds(n, b.Min, 0)
}

// PhoneMaxLength checks only the upper phone bound of country c
func (v *Validator) PhoneMaxLength(c, n string) bool {
	b, ok := v.ds.PhoneLength(c)
	return ok && stringx.LengthWithinBounds(n, 0, b.Max)
}

// PhoneCharset reports whether full is digits with an optional leading '+'
func (v *Validator) PhoneCharset(full string) bool {
	return phoneCharset.MatchString(full)
}

// FullPhone is the format-only check of a full number such as +919876543210
func (v *Validator) FullPhone(full string) bool {
	return v.PhoneCharset(full) && within(full, v.limits.Phone)
}

// ---------------------------------------------------------------------------
// Address
// ---------------------------------------------------------------------------

// AddressPostalCode checks p against the postal bounds of country c
func (v *Validator) AddressPostalCode(c, p string) bool {
	b, ok := v.ds.PostalLength(c)
	return ok && within(p, b)
}

// AddressTitle checks an optional title
func (v *Validator) AddressTitle(title *string) bool {
	return title == nil || within(*title, v.limits.Title)
}

// AddressType reports membership in the address type set
func (v *Validator) AddressType(t string) bool {
	_, ok := addressTypes[t]
	return ok
}

// AddressLocality checks the mandatory locality
func (v *Validator) AddressLocality(s string) bool {
	return within(s, v.limits.Locality)
}

// AddressLine1 checks the mandatory first address line
func (v *Validator) AddressLine1(s string) bool {
	return within(s, v.limits.Other)
}

// AddressLine2 checks the optional second address line
func (v *Validator) AddressLine2(s *string) bool {
	return s == nil || within(*s, v.limits.Other)
}

// AddressExtra checks the optional extra line (landmark, gate code)
func (v *Validator) AddressExtra(s *string) bool {
	return s == nil || within(*s, v.limits.Other)
}

// Address is the logical AND of every address field check
func (v *Validator) Address(in AddressInput) bool {
	return v.AddressReport(in).Valid
}

// ---------------------------------------------------------------------------
// Email
// ---------------------------------------------------------------------------

// Email checks the address format. A positive maxLength additionally caps
// the rune length; zero or less means no cap.
func (v *Validator) Email(e string, maxLength int) bool {
	if maxLength > 0 && stringx.Length(e) > maxLength {
		return false
	}
	return emailPattern.MatchString(e)
}

func within(s string, b country.Bounds) bool {
	return stringx.LengthWithinBounds(s, b.Min, b.Max)
}
