// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     codec
// Description: Phone identifier and full phone number transforms
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package codec builds and parses the composite phone identifier
// (reversed number + "." + country) and full international numbers
// ("+" + calling code + national number).
//
// Empty input is not an error: it yields an empty result. Inputs that
// cannot be resolved return one of the sentinel errors below, which match
// with errors.Is.
package codec

import (
	"strconv"
	"strings"

	"github.com/msto63/contact/pkg/contact/country"
	cerror "github.com/msto63/contact/pkg/core/error"
	"github.com/msto63/contact/pkg/stringx"
)

// Separator joins the reversed number and the country code
const Separator = "."

// Sentinel errors
var (
	ErrUnknownCountry      = cerror.New("unknown country").WithCode(cerror.CodeUnknownCountry)
	ErrMalformedIdentifier = cerror.New("malformed phone identifier").WithCode(cerror.CodeMalformedIdentifier)
	ErrPrefixMismatch      = cerror.New("calling code prefix mismatch").WithCode(cerror.CodePrefixMismatch)
)

// Phone is a decoded (country, national number) pair
type Phone struct {
	Country string `json:"country"`
	Number  string `json:"number"`
}

// IsZero reports whether p carries no data
func (p Phone) IsZero() bool {
	return p.Country == "" && p.Number == ""
}

// Codec performs the transforms against a country dataset
type Codec struct {
	ds *country.Dataset
}

// New creates a Codec
func New(ds *country.Dataset) *Codec {
	return &Codec{ds: ds}
}

// EncodePhoneID returns reverse(number) + "." + country. There is no
// identifier for an empty number; ok is false then.
func (c *Codec) EncodePhoneID(countryCode, number string) (id string, ok bool) {
	if number == "" {
		return "", false
	}
	return stringx.Reverse(number) + Separator + countryCode, true
}

// DecodePhoneID splits an identifier on its first separator and restores
// the number. An empty identifier decodes to the zero Phone.
func (c *Codec) DecodePhoneID(id string) (Phone, error) {
	if id == "" {
		return Phone{}, nil
	}
	reversed, countryCode, found := strings.Cut(id, Separator)
	if !found || reversed == "" || countryCode == "" {
		return Phone{}, malformed(id)
	}
	return Phone{Country: countryCode, Number: stringx.Reverse(reversed)}, nil
}

// ConstructFullNumber returns "+" + calling code + number. An empty number
// yields "".
func (c *Codec) ConstructFullNumber(countryCode, number string) (string, error) {
	if number == "" {
		return "", nil
	}
	prefix, err := c.prefix(countryCode, "construct_full_number")
	if err != nil {
		return "", err
	}
	return prefix + number, nil
}

// DeconstructFullNumber strips the calling code prefix of countryCode from
// full. The country must already be known; no other prefix is tried.
func (c *Codec) DeconstructFullNumber(full, countryCode string) (Phone, error) {
	if full == "" {
		return Phone{}, nil
	}
	prefix, err := c.prefix(countryCode, "deconstruct_full_number")
	if err != nil {
		return Phone{}, err
	}
	number, found := strings.CutPrefix(full, prefix)
	if !found {
		return Phone{}, cerror.Wrap(ErrPrefixMismatch, "deconstruct full number").
			WithOperation("deconstruct_full_number").
			WithDetail("country", countryCode).
			WithDetail("prefix", prefix)
	}
	return Phone{Country: countryCode, Number: number}, nil
}

func (c *Codec) prefix(countryCode, op string) (string, error) {
	cc, ok := c.ds.CallingCode(countryCode)
	if !ok {
		return "", cerror.Wrap(ErrUnknownCountry, "resolve calling code").
			WithOperation(op).
			WithDetail("country", countryCode)
	}
	return "+" + strconv.Itoa(cc), nil
}

func malformed(id string) error {
	return cerror.Wrap(ErrMalformedIdentifier, "decode phone identifier").
		WithOperation("decode_phone_id").
		WithDetail("id", id)
}
