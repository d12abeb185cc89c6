// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     assemble
// Description: Country config and subdivision output records
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package assemble

import (
	"github.com/msto63/contact/pkg/contact/country"
)

// CountryConfig is the contact configuration published for one country.
// Absent postal bounds are null.
type CountryConfig struct {
	CountryName          string `json:"country_name" yaml:"country_name"`
	CallingCode          int    `json:"phone_country_calling_code" yaml:"phone_country_calling_code"`
	PhoneNumberMinLength int    `json:"phone_number_min_length" yaml:"phone_number_min_length"`
	PhoneNumberMaxLength int    `json:"phone_number_max_length" yaml:"phone_number_max_length"`
	PostalCodeMinLength  *int   `json:"postal_code_min_length" yaml:"postal_code_min_length"`
	PostalCodeMaxLength  *int   `json:"postal_code_max_length" yaml:"postal_code_max_length"`
	IsMetric             bool   `json:"is_metric" yaml:"is_metric"`
	CurrencyCode         string `json:"currency_code" yaml:"currency_code"`
}

// SubdivisionRecord is the published shape of a subdivision
type SubdivisionRecord struct {
	Name string `json:"sub_division_name" yaml:"sub_division_name"`
}

// CountryConfigFrom shapes a dataset record
func CountryConfigFrom(rec country.Record) CountryConfig {
	return CountryConfig{
		CountryName:          rec.Name,
		CallingCode:          rec.CallingCode,
		PhoneNumberMinLength: rec.PhoneLength.Min,
		PhoneNumberMaxLength: rec.PhoneLength.Max,
		PostalCodeMinLength:  optional(rec.PostalLength.Min),
		PostalCodeMaxLength:  optional(rec.PostalLength.Max),
		IsMetric:             rec.IsMetric,
		CurrencyCode:         rec.Currency,
	}
}

// SubdivisionFrom shapes a dataset subdivision
func SubdivisionFrom(sub country.Subdivision) SubdivisionRecord {
	return SubdivisionRecord{Name: sub.Name}
}

// SubdivisionsFrom shapes every subdivision of a country
func SubdivisionsFrom(subs map[string]country.Subdivision) map[string]SubdivisionRecord {
	out := make(map[string]SubdivisionRecord, len(subs))
	for code, sub := range subs {
		out[code] = SubdivisionFrom(sub)
	}
	return out
}

func optional(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}
