// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     contact
// Description: Country, subdivision and timezone lookups
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package contact

import "github.com/msto63/contact/pkg/contact/assemble"

// CountryContactConfig returns the published config of a country
func (c *Contact) CountryContactConfig(code string) (assemble.CountryConfig, bool) {
	rec, ok := c.ds.Lookup(code)
	if !ok {
		return assemble.CountryConfig{}, false
	}
	return assemble.CountryConfigFrom(rec), true
}

// CountrySubDivisions returns every subdivision of a country
func (c *Contact) CountrySubDivisions(code string) (map[string]assemble.SubdivisionRecord, bool) {
	subs, ok := c.ds.Subdivisions(code)
	if !ok {
		return nil, false
	}
	return assemble.SubdivisionsFrom(subs), true
}

// CountrySubDivision returns one subdivision; false if country or
// subdivision is unknown
func (c *Contact) CountrySubDivision(code, sub string) (assemble.SubdivisionRecord, bool) {
	s, ok := c.ds.Subdivision(code, sub)
	if !ok {
		return assemble.SubdivisionRecord{}, false
	}
	return assemble.SubdivisionFrom(s), true
}

// CountryTimeZones returns the IANA timezones of a country
func (c *Contact) CountryTimeZones(code string) ([]string, bool) {
	return c.ds.Timezones(code)
}
