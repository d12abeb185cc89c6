// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     validate
// Description: Typed address input
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package validate

import "github.com/msto63/contact/pkg/stringx"

// AddressInput is a flat address as supplied by a caller. Pointer fields
// are optional and skipped by validation when nil.
type AddressInput struct {
	ID           string         `json:"address_id,omitempty" yaml:"address_id,omitempty"`
	String       string         `json:"string,omitempty" yaml:"string,omitempty"`
	Title        *string        `json:"title,omitempty" yaml:"title,omitempty"`
	Type         string         `json:"type,omitempty" yaml:"type,omitempty"`
	Country      string         `json:"country" yaml:"country"`
	SubDivision  string         `json:"sub_division" yaml:"sub_division"`
	Locality     string         `json:"locality" yaml:"locality"`
	Line1        string         `json:"line1" yaml:"line1"`
	Line2        *string        `json:"line2,omitempty" yaml:"line2,omitempty"`
	PostalCode   string         `json:"postal_code" yaml:"postal_code"`
	Extra        *string        `json:"extra,omitempty" yaml:"extra,omitempty"`
	Latitude     *float64       `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude    *float64       `json:"longitude,omitempty" yaml:"longitude,omitempty"`
	ProviderData map[string]any `json:"provider_data,omitempty" yaml:"provider_data,omitempty"`
}

// Fields flattens the input into the loose record consumed by the
// address assembler. Empty values are kept; the assembler drops them.
func (in AddressInput) Fields() map[string]any {
	fields := map[string]any{
		"address_id":   in.ID,
		"string":       in.String,
		"type":         in.Type,
		"country":      in.Country,
		"sub_division": in.SubDivision,
		"locality":     in.Locality,
		"line1":        in.Line1,
		"postal_code":  in.PostalCode,
	}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Line2 != nil {
		fields["line2"] = *in.Line2
	}
	if in.Extra != nil {
		fields["extra"] = *in.Extra
	}
	if in.Latitude != nil {
		fields["latitude"] = *in.Latitude
	}
	if in.Longitude != nil {
		fields["longitude"] = *in.Longitude
	}
	stringx.AssignIfNonEmpty(fields, "provider_data", in.ProviderData)
	return fields
}
