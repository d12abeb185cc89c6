// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     contact
// Description: Address and email operations
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package contact

import (
	"github.com/msto63/contact/pkg/contact/assemble"
	"github.com/msto63/contact/pkg/contact/sanitize"
	"github.com/msto63/contact/pkg/contact/validate"
	"github.com/msto63/contact/pkg/core/validation"
)

// SanitizePostalCode keeps letters, digits, hyphen and space
func (c *Contact) SanitizePostalCode(raw string) string {
	return sanitize.PostalCode(raw)
}

// ValidateAddress reports whether every address field passes
func (c *Contact) ValidateAddress(in validate.AddressInput) bool {
	return c.validator.Address(in)
}

// ValidateAddressReport lists every failing address field
func (c *Contact) ValidateAddressReport(in validate.AddressInput) validation.Result {
	return c.validator.AddressReport(in)
}

// AssembleAddress shapes loose address data into a sparse record
func (c *Contact) AssembleAddress(data map[string]any) assemble.Record {
	return c.assembler.Address(data)
}

// ValidateEmail checks the email format and the configured length cap
func (c *Contact) ValidateEmail(email string) bool {
	return c.validator.Email(email, c.cfg.Email.MaxLength)
}
