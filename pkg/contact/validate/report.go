// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     validate
// Description: Field by field address report
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package validate

import (
	"fmt"

	"github.com/msto63/contact/pkg/contact/country"
	"github.com/msto63/contact/pkg/core/validation"
)

// AddressReport runs every address check and records each failing field.
// Subdivision and postal code failures under an unknown country are
// reported once, on the country field.
func (v *Validator) AddressReport(in AddressInput) validation.Result {
	r := validation.NewResult()

	if !v.AddressTitle(in.Title) {
		r.AddFieldError(validation.CodeLength, "title", bounded("title", v.limits.Title), *in.Title)
	}
	if !v.AddressType(in.Type) {
		r.AddFieldError(validation.CodeEnum, "type", "unknown address type", in.Type)
	}

	if !v.AddressCountry(in.Country) {
		r.AddFieldError(validation.CodeCountry, "country", "unknown country", in.Country)
	} else {
		if !v.AddressSubDivision(in.Country, in.SubDivision) {
			r.AddFieldError(validation.CodeSubdivision, "sub_division",
				fmt.Sprintf("unknown subdivision for country %s", in.Country), in.SubDivision)
		}
		if !v.AddressPostalCode(in.Country, in.PostalCode) {
			b, _ := v.ds.PostalLength(in.Country)
			r.AddFieldError(validation.CodeLength, "postal_code", bounded("postal code", b), in.PostalCode)
		}
	}

	if !v.AddressLocality(in.Locality) {
		r.AddFieldError(validation.CodeLength, "locality", bounded("locality", v.limits.Locality), in.Locality)
	}
	if !v.AddressLine1(in.Line1) {
		r.AddFieldError(validation.CodeLength, "line1", bounded("line1", v.limits.Other), in.Line1)
	}
	if !v.AddressLine2(in.Line2) {
		r.AddFieldError(validation.CodeLength, "line2", bounded("line2", v.limits.Other), *in.Line2)
	}
	if !v.AddressExtra(in.Extra) {
		r.AddFieldError(validation.CodeLength, "extra", bounded("extra", v.limits.Other), *in.Extra)
	}

	if in.Latitude != nil && !v.geo.ValidateLatitude(*in.Latitude) {
		r.AddFieldError(validation.CodeRange, "latitude", "latitude out of range", *in.Latitude)
	}
	if in.Longitude != nil && !v.geo.ValidateLongitude(*in.Longitude) {
		r.AddFieldError(validation.CodeRange, "longitude", "longitude out of range", *in.Longitude)
	}

	return r
}

func bounded(field string, b country.Bounds) string {
	switch {
	case b.HasMin() && b.HasMax():
		return fmt.Sprintf("%s must be %d-%d characters", field, b.Min, b.Max)
	case b.HasMin():
		return fmt.Sprintf("%s must be at least %d characters", field, b.Min)
	case b.HasMax():
		return fmt.Sprintf("%s must be at most %d characters", field, b.Max)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
