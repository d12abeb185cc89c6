package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("unknown country").WithCode(CodeUnknownCountry).WithDetail("country", "xz")

	assert.Equal(t, "unknown country", err.Error())
	assert.Equal(t, CodeUnknownCountry, err.Code())
	assert.Equal(t, "xz", err.Details()["country"])
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "anything"))
	})

	t.Run("standard error", func(t *testing.T) {
		err := Wrap(fmt.Errorf("disk"), "load dataset")
		assert.Equal(t, "load dataset: disk", err.Error())
		assert.Equal(t, CodeUnknown, err.Code())
	})

	t.Run("preserves code and details", func(t *testing.T) {
		inner := New("bad record").WithCode(CodeDatasetInvalid).WithDetail("file", "in.yaml")
		err := Wrap(inner, "load dataset")

		assert.Equal(t, CodeDatasetInvalid, err.Code())
		assert.Equal(t, "in.yaml", err.Details()["file"])
		assert.ErrorIs(t, err, inner)
	})
}

func TestIs(t *testing.T) {
	sentinel := New("prefix mismatch").WithCode(CodePrefixMismatch)
	err := fmt.Errorf("split: %w", New("+44 is not +91").WithCode(CodePrefixMismatch))

	assert.True(t, errors.Is(err, sentinel))
	assert.False(t, errors.Is(err, New("other").WithCode(CodeUnknownCountry)))
	assert.False(t, errors.Is(New("a"), New("b")), "unknown codes never match")
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeUnknown, GetCode(errors.New("plain")))
	assert.Equal(t, CodeInvalidConfig, GetCode(fmt.Errorf("x: %w", New("y").WithCode(CodeInvalidConfig))))
	assert.True(t, HasCode(New("z").WithCode(CodeNotFound), CodeNotFound))
}

func TestString(t *testing.T) {
	err := New("unknown country").
		WithCode(CodeUnknownCountry).
		WithOperation("construct_full_number").
		WithDetail("country", "xz")

	require.Equal(t, "[UNKNOWN_COUNTRY] unknown country (op=construct_full_number) country=xz", err.String())
}
