// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     country
// Description: Immutable per-country reference data for phone and address rules
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package country holds the compiled-in reference dataset: calling codes,
// phone and postal length bounds, subdivisions, currency and timezones keyed
// by lowercase ISO 3166-1 alpha-2 code. The dataset is decoded once and never
// written afterwards, so every accessor is safe for concurrent use.
package country

import (
	"maps"
	"slices"
	"sort"
)

// Bounds is an inclusive length range. A zero side is absent and does not
// constrain that side.
type Bounds struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// HasMin reports whether a lower bound is present
func (b Bounds) HasMin() bool { return b.Min > 0 }

// HasMax reports whether an upper bound is present
func (b Bounds) HasMax() bool { return b.Max > 0 }

// Consistent reports whether Min <= Max when both sides are present
func (b Bounds) Consistent() bool {
	return !b.HasMin() || !b.HasMax() || b.Min <= b.Max
}

// Subdivision is a state, province or region within a country
type Subdivision struct {
	Name string `json:"name" validate:"required"`
}

// Record holds the constants for one country
type Record struct {
	Code         string `validate:"required,len=2,lowercase"`
	Name         string `validate:"required"`
	CallingCode  int    `validate:"gt=0,lte=999"`
	PhoneLength  Bounds
	PostalLength Bounds
	IsMetric     bool
	Currency     string                 `validate:"required,iso4217"`
	Subdivisions map[string]Subdivision `validate:"required,min=1,dive"`
	Timezones    []string               `validate:"required,min=1,dive,timezone"`
}

// clone returns a deep copy so callers cannot mutate the shared dataset
func (r Record) clone() Record {
	r.Subdivisions = maps.Clone(r.Subdivisions)
	r.Timezones = slices.Clone(r.Timezones)
	return r
}

// SubdivisionCodes returns the subdivision codes in sorted order
func (r Record) SubdivisionCodes() []string {
	codes := make([]string, 0, len(r.Subdivisions))
	for code := range r.Subdivisions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Dataset is the read-only mapping from country code to Record
type Dataset struct {
	records map[string]Record
}

// Lookup returns the record for an exact, case-sensitive country code.
// No normalization is performed; callers lowercase before lookup.
func (d *Dataset) Lookup(code string) (Record, bool) {
	rec, ok := d.records[code]
	if !ok {
		return Record{}, false
	}
	return rec.clone(), true
}

// Has reports whether the country code is known
func (d *Dataset) Has(code string) bool {
	_, ok := d.records[code]
	return ok
}

// Subdivision performs the nested lookup country -> subdivision.
// It fails with false if either key is absent.
func (d *Dataset) Subdivision(code, sub string) (Subdivision, bool) {
	rec, ok := d.records[code]
	if !ok {
		return Subdivision{}, false
	}
	s, ok := rec.Subdivisions[sub]
	return s, ok
}

// Subdivisions returns a copy of all subdivisions of a country
func (d *Dataset) Subdivisions(code string) (map[string]Subdivision, bool) {
	rec, ok := d.records[code]
	if !ok {
		return nil, false
	}
	return maps.Clone(rec.Subdivisions), true
}

// Timezones returns the ordered IANA timezone identifiers of a country
func (d *Dataset) Timezones(code string) ([]string, bool) {
	rec, ok := d.records[code]
	if !ok {
		return nil, false
	}
	return slices.Clone(rec.Timezones), true
}

// CallingCode returns the international dialing prefix digits of a country
func (d *Dataset) CallingCode(code string) (int, bool) {
	rec, ok := d.records[code]
	if !ok {
		return 0, false
	}
	return rec.CallingCode, true
}

// PhoneLength returns the national number length bounds of a country
func (d *Dataset) PhoneLength(code string) (Bounds, bool) {
	rec, ok := d.records[code]
	return rec.PhoneLength, ok
}

// PostalLength returns the postal code length bounds of a country
func (d *Dataset) PostalLength(code string) (Bounds, bool) {
	rec, ok := d.records[code]
	return rec.PostalLength, ok
}

// Codes returns all known country codes in sorted order
func (d *Dataset) Codes() []string {
	codes := make([]string, 0, len(d.records))
	for code := range d.records {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of countries in the dataset
func (d *Dataset) Len() int {
	return len(d.records)
}
