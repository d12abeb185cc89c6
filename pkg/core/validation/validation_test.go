package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerror "github.com/msto63/contact/pkg/core/error"
)

func TestResult_AddFieldError(t *testing.T) {
	r := NewResult()
	require.True(t, r.Valid)
	require.NoError(t, r.ToError())

	r.AddFieldError(CodeLength, "locality", "must be 1-100 characters", "")
	r.AddFieldError(CodeCountry, "country", "unknown country", "xz")

	assert.False(t, r.Valid)
	assert.Equal(t, []string{"locality", "country"}, r.Fields())
	assert.True(t, r.HasError(CodeCountry))
	assert.False(t, r.HasError(CodeEmail))
}

func TestResult_ToError(t *testing.T) {
	r := NewResult()
	r.AddFieldError(CodeEnum, "type", "unknown address type", "garage")
	r.AddFieldError(CodeLength, "line1", "must be 1-255 characters", "")

	err := r.ToError()
	require.Error(t, err)
	assert.Equal(t, cerror.CodeValidationFailed, cerror.GetCode(err))
	assert.Contains(t, err.Error(), "unknown address type")

	var ce *cerror.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "type", ce.Details()["field"])
	assert.Equal(t, 2, ce.Details()["totalErrors"])
}

func TestCombine(t *testing.T) {
	ok := NewResult()
	bad := NewResult()
	bad.AddFieldError(CodeFormat, "email", "invalid", "x")

	assert.True(t, Combine(ok, ok).Valid)

	combined := Combine(ok, bad, bad)
	assert.False(t, combined.Valid)
	assert.Len(t, combined.Errors, 2)
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "Result{valid: true}", NewResult().String())

	r := NewResult()
	r.AddFieldError(CodeCountry, "country", "unknown country", "xz")
	assert.Equal(t, "Result{valid: false, errors: [country(VALIDATION_COUNTRY): unknown country]}", r.String())
}
