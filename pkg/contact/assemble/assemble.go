// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     assemble
// Description: Shape-only constructors for canonical output records
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package assemble turns loosely shaped input into canonical records. It
// performs no validation. Which keys are kept is driven by a per-field
// policy table instead of per-call logic.
package assemble

import (
	"github.com/msto63/contact/pkg/stringx"
)

// Mode decides what happens to an empty input field
type Mode int

const (
	// Sparse fields are omitted from the output when empty
	Sparse Mode = iota
	// Defaulted fields are always present; empty input takes the fallback
	Defaulted
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case Sparse:
		return "sparse"
	case Defaulted:
		return "defaulted"
	default:
		return "unknown"
	}
}

// FieldPolicy binds an output key to its mode
type FieldPolicy struct {
	Key  string
	Mode Mode
}

// Record is an assembled output record
type Record map[string]any

// AddressPolicy is the canonical address field table, in output order
var AddressPolicy = []FieldPolicy{
	{Key: "address_id", Mode: Defaulted},
	{Key: "string", Mode: Sparse},
	{Key: "title", Mode: Sparse},
	{Key: "type", Mode: Sparse},
	{Key: "country", Mode: Sparse},
	{Key: "sub_division", Mode: Sparse},
	{Key: "locality", Mode: Sparse},
	{Key: "line1", Mode: Sparse},
	{Key: "line2", Mode: Sparse},
	{Key: "postal_code", Mode: Sparse},
	{Key: "extra", Mode: Sparse},
	{Key: "latitude", Mode: Sparse},
	{Key: "longitude", Mode: Sparse},
	{Key: "provider_data", Mode: Sparse},
}

// Assembler applies a policy table to input data
type Assembler struct {
	Policy   []FieldPolicy
	Fallback any // value of a Defaulted field whose input is empty
}

// NewAddressAssembler returns an Assembler for AddressPolicy. A nil
// fallback leaves address_id present with a nil value.
func NewAddressAssembler(fallback any) Assembler {
	return Assembler{Policy: AddressPolicy, Fallback: fallback}
}

// Assemble builds a record from data. Keys not named by the policy are
// ignored.
func (a Assembler) Assemble(data map[string]any) Record {
	rec := make(Record, len(a.Policy))
	for _, fp := range a.Policy {
		value := data[fp.Key]
		switch fp.Mode {
		case Defaulted:
			rec[fp.Key] = stringx.Fallback(value, a.Fallback)
		default:
			stringx.AssignIfNonEmpty(rec, fp.Key, value)
		}
	}
	return rec
}

// Address is Assemble under the name used for address input
func (a Assembler) Address(data map[string]any) Record {
	return a.Assemble(data)
}

// Keys returns the keys present in the record in policy order
func (a Assembler) Keys(rec Record) []string {
	keys := make([]string, 0, len(rec))
	for _, fp := range a.Policy {
		if _, ok := rec[fp.Key]; ok {
			keys = append(keys, fp.Key)
		}
	}
	return keys
}
