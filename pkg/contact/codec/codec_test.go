package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/contact/pkg/contact/country"
	cerror "github.com/msto63/contact/pkg/core/error"
)

func newCodec() *Codec {
	return New(country.MustDefault())
}

func TestEncodePhoneID(t *testing.T) {
	c := newCodec()

	id, ok := c.EncodePhoneID("in", "9876543210")
	require.True(t, ok)
	assert.Equal(t, "0123456789.in", id)

	id, ok = c.EncodePhoneID("in", "")
	assert.False(t, ok)
	assert.Empty(t, id)

	id, ok = c.EncodePhoneID("xz", "12")
	assert.True(t, ok, "encoding does not consult the dataset")
	assert.Equal(t, "21.xz", id)
}

func TestDecodePhoneID(t *testing.T) {
	c := newCodec()

	p, err := c.DecodePhoneID("0123456789.in")
	require.NoError(t, err)
	assert.Equal(t, Phone{Country: "in", Number: "9876543210"}, p)

	p, err = c.DecodePhoneID("")
	require.NoError(t, err)
	assert.True(t, p.IsZero())

	p, err = c.DecodePhoneID("21.a.b")
	require.NoError(t, err)
	assert.Equal(t, Phone{Country: "a.b", Number: "12"}, p, "split happens on the first separator")

	for _, id := range []string{"0123456789", ".in", "0123456789."} {
		t.Run(id, func(t *testing.T) {
			_, err := c.DecodePhoneID(id)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedIdentifier)
			assert.Equal(t, cerror.CodeMalformedIdentifier, cerror.GetCode(err))
		})
	}
}

func TestPhoneID_RoundTrip(t *testing.T) {
	c := newCodec()

	cases := []Phone{
		{"in", "9876543210"},
		{"us", "2025550143"},
		{"uk", "7"},
		{"zz", "0000"},
		{"x", "١٢٣"},
		{"", "123"},
	}
	for _, want := range cases {
		id, ok := c.EncodePhoneID(want.Country, want.Number)
		require.True(t, ok)

		if want.Country == "" {
			_, err := c.DecodePhoneID(id)
			assert.ErrorIs(t, err, ErrMalformedIdentifier, "empty country is outside the round trip domain")
			continue
		}
		got, err := c.DecodePhoneID(id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestConstructFullNumber(t *testing.T) {
	c := newCodec()

	full, err := c.ConstructFullNumber("in", "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", full)

	full, err = c.ConstructFullNumber("ae", "501234567")
	require.NoError(t, err)
	assert.Equal(t, "+971501234567", full)

	full, err = c.ConstructFullNumber("xz", "")
	require.NoError(t, err, "empty number short-circuits before the lookup")
	assert.Empty(t, full)

	_, err = c.ConstructFullNumber("xz", "9876543210")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCountry))

	var ce *cerror.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "construct_full_number", ce.Operation())
	assert.Equal(t, "xz", ce.Details()["country"])
}

func TestDeconstructFullNumber(t *testing.T) {
	c := newCodec()

	p, err := c.DeconstructFullNumber("+919876543210", "in")
	require.NoError(t, err)
	assert.Equal(t, Phone{Country: "in", Number: "9876543210"}, p)

	p, err = c.DeconstructFullNumber("", "in")
	require.NoError(t, err)
	assert.True(t, p.IsZero())

	_, err = c.DeconstructFullNumber("+919876543210", "xz")
	assert.ErrorIs(t, err, ErrUnknownCountry)

	_, err = c.DeconstructFullNumber("+447911123456", "in")
	assert.ErrorIs(t, err, ErrPrefixMismatch)
	assert.NotErrorIs(t, err, ErrUnknownCountry)

	_, err = c.DeconstructFullNumber("919876543210", "in")
	assert.ErrorIs(t, err, ErrPrefixMismatch, "the leading plus is part of the prefix")
}

func TestFullNumber_RoundTrip(t *testing.T) {
	c := newCodec()
	ds := country.MustDefault()

	for _, code := range ds.Codes() {
		full, err := c.ConstructFullNumber(code, "5551234")
		require.NoError(t, err)

		p, err := c.DeconstructFullNumber(full, code)
		require.NoError(t, err)
		assert.Equal(t, Phone{Country: code, Number: "5551234"}, p)
	}
}
