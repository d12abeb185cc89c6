// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     contact
// Description: Phone sanitation, validation and identifier transforms
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package contact

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/msto63/contact/pkg/contact/codec"
	"github.com/msto63/contact/pkg/contact/sanitize"
	cerror "github.com/msto63/contact/pkg/core/error"
	"github.com/msto63/contact/pkg/core/validation"
)

// PhoneRecord is a normalized phone number with its derived forms
type PhoneRecord struct {
	Country string `json:"country"`
	Number  string `json:"number"`
	Full    string `json:"full"`
	ID      string `json:"phone_id"`
}

// SanitizePhoneNumber keeps digits only
func (c *Contact) SanitizePhoneNumber(raw string) string {
	return sanitize.PhoneNumber(raw)
}

// SanitizePhone keeps digits and a leading '+'
func (c *Contact) SanitizePhone(raw string) string {
	return sanitize.Phone(raw)
}

// ValidatePhoneCountry reports whether the country is known
func (c *Contact) ValidatePhoneCountry(code string) bool {
	return c.validator.PhoneCountry(code)
}

// ValidatePhoneNumber is the format-only national number check
func (c *Contact) ValidatePhoneNumber(n string) bool {
	return c.validator.PhoneNumber(n)
}

// ValidatePhone is the country-aware national number check
func (c *Contact) ValidatePhone(code, n string) bool {
	return c.validator.Phone(code, n)
}

// EncodePhoneID builds the composite phone identifier
func (c *Contact) EncodePhoneID(code, n string) (string, bool) {
	return c.codec.EncodePhoneID(code, n)
}

// DecodePhoneID parses a composite phone identifier
func (c *Contact) DecodePhoneID(id string) (codec.Phone, error) {
	p, err := c.codec.DecodePhoneID(id)
	if err != nil {
		c.logger.Debug("phone identifier rejected", zap.String("id", id), zap.Error(err))
	}
	return p, err
}

// ConstructFullNumber prefixes the calling code
func (c *Contact) ConstructFullNumber(code, n string) (string, error) {
	full, err := c.codec.ConstructFullNumber(code, n)
	if err != nil {
		c.logger.Debug("full number not constructed", zap.String("country", code), zap.Error(err))
	}
	return full, err
}

// DeconstructFullNumber strips the calling code of a known country
func (c *Contact) DeconstructFullNumber(full, code string) (codec.Phone, error) {
	p, err := c.codec.DeconstructFullNumber(full, code)
	if err != nil {
		c.logger.Debug("full number not split", zap.String("country", code), zap.Error(err))
	}
	return p, err
}

// NormalizePhone runs raw input through sanitation, the country-aware
// check and both codec transforms.
func (c *Contact) NormalizePhone(code, raw string) (PhoneRecord, error) {
	number := sanitize.PhoneNumber(raw)

	r := validation.NewResult()
	if !c.validator.PhoneCountry(code) {
		r.AddFieldError(validation.CodeCountry, "country", "unknown country", code)
	} else if !c.validator.Phone(code, number) {
		b, _ := c.ds.PhoneLength(code)
		r.AddFieldError(validation.CodePhoneNumber, "number",
			fmt.Sprintf("phone number must be %d-%d digits", b.Min, b.Max), number)
	}
	if err := r.ToError(); err != nil {
		return PhoneRecord{}, cerror.Wrap(err, "normalize phone").WithOperation("normalize_phone")
	}

	full, err := c.codec.ConstructFullNumber(code, number)
	if err != nil {
		return PhoneRecord{}, err
	}
	id, _ := c.codec.EncodePhoneID(code, number)

	return PhoneRecord{Country: code, Number: number, Full: full, ID: id}, nil
}
