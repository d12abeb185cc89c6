package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerror "github.com/msto63/contact/pkg/core/error"
)

// run executes contactctl with args and returns stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := execute(t, args...)
	return stdout, err
}

// execute runs contactctl and returns stdout and stderr separately
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("CONTACT_CONFIG", "")
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func runJSON(t *testing.T, v any, args ...string) error {
	t.Helper()
	out, err := run(t, append([]string{"-o", "json"}, args...)...)
	if out != "" {
		require.NoError(t, json.Unmarshal([]byte(out), v), out)
	}
	return err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCountryCommands(t *testing.T) {
	var list []countrySummary
	require.NoError(t, runJSON(t, &list, "country", "list"))
	assert.Len(t, list, 8)
	assert.Equal(t, countrySummary{Code: "ae", Name: "United Arab Emirates", CallingCode: 971}, list[0])

	var show map[string]any
	require.NoError(t, runJSON(t, &show, "country", "show", "in"))
	assert.Equal(t, "India", show["country_name"])
	assert.Equal(t, float64(91), show["phone_country_calling_code"])

	var sub map[string]string
	require.NoError(t, runJSON(t, &sub, "country", "subdivision", "in", "dl"))
	assert.Equal(t, "Delhi", sub["sub_division_name"])

	var tz []string
	require.NoError(t, runJSON(t, &tz, "country", "timezones", "in"))
	assert.Equal(t, []string{"Asia/Kolkata"}, tz)

	var findings []any
	require.NoError(t, runJSON(t, &findings, "country", "audit"))
	assert.Empty(t, findings)

	_, err := run(t, "country", "show", "xz")
	assert.Equal(t, cerror.CodeNotFound, cerror.GetCode(err))
	_, err = run(t, "country", "subdivision", "in", "xx")
	assert.Equal(t, cerror.CodeNotFound, cerror.GetCode(err))
}

func TestCountryShow_Text(t *testing.T) {
	out, err := run(t, "country", "show", "ae")
	require.NoError(t, err)
	assert.Contains(t, out, "United Arab Emirates")
	assert.Contains(t, out, "+971")
	assert.Contains(t, out, "unconstrained")
}

func TestPhoneCommands(t *testing.T) {
	var sanitized map[string]string
	require.NoError(t, runJSON(t, &sanitized, "phone", "sanitize", "99-(999)-999 99"))
	assert.Equal(t, "9999999999", sanitized["sanitized"])

	require.NoError(t, runJSON(t, &sanitized, "phone", "sanitize", "--with-plus", "+1987-6543-210"))
	assert.Equal(t, "+19876543210", sanitized["sanitized"])

	var id map[string]string
	require.NoError(t, runJSON(t, &id, "phone", "encode", "in", "9876543210"))
	assert.Equal(t, "0123456789.in", id["phone_id"])

	var p map[string]string
	require.NoError(t, runJSON(t, &p, "phone", "decode", "0123456789.in"))
	assert.Equal(t, map[string]string{"country": "in", "number": "9876543210"}, p)

	var full map[string]string
	require.NoError(t, runJSON(t, &full, "phone", "full", "in", "9876543210"))
	assert.Equal(t, "+919876543210", full["full"])

	require.NoError(t, runJSON(t, &p, "phone", "split", "+919876543210", "in"))
	assert.Equal(t, "9876543210", p["number"])

	var rec map[string]string
	require.NoError(t, runJSON(t, &rec, "phone", "normalize", "in", "98765 43210"))
	assert.Equal(t, "+919876543210", rec["full"])

	_, err := run(t, "phone", "split", "+449876543210", "in")
	assert.Equal(t, cerror.CodePrefixMismatch, cerror.GetCode(err))
	_, err = run(t, "phone", "decode", "nodot")
	assert.Equal(t, cerror.CodeMalformedIdentifier, cerror.GetCode(err))
	_, err = run(t, "phone", "full", "xz", "123")
	assert.Equal(t, cerror.CodeUnknownCountry, cerror.GetCode(err))
}

func TestPhoneValidate(t *testing.T) {
	var check phoneCheck
	require.NoError(t, runJSON(t, &check, "phone", "validate", "in", "9876543210"))
	assert.True(t, check.Valid)

	err := runJSON(t, &check, "phone", "validate", "xz", "9876543210")
	assert.ErrorIs(t, err, errInvalid)
	assert.False(t, check.CountryKnown)
	assert.True(t, check.Charset)
}

const addressDoc = `
type: home
country: in
sub_division: dl
locality: New Delhi
line1: Flat 12, Block C
postal_code: "110001"
latitude: 28.6139
longitude: 77.209
`

func TestAddressValidate(t *testing.T) {
	var report struct {
		Valid  bool `json:"valid"`
		Errors []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, runJSON(t, &report, "address", "validate", writeFile(t, "a.yaml", addressDoc)))
	assert.True(t, report.Valid)

	bad := writeFile(t, "b.json", `{"type": "garage", "country": "in", "sub_division": "dl",
		"locality": "New Delhi", "line1": "x", "postal_code": "110001"}`)
	err := runJSON(t, &report, "address", "validate", bad)
	assert.ErrorIs(t, err, errInvalid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "type", report.Errors[0].Field)

	_, err = run(t, "address", "validate", "/does/not/exist.yaml")
	assert.Equal(t, cerror.CodeInvalidInput, cerror.GetCode(err))
}

func TestAddressAssemble(t *testing.T) {
	path := writeFile(t, "a.yaml", addressDoc+"line2: \"\"\n")

	var rec map[string]any
	require.NoError(t, runJSON(t, &rec, "address", "assemble", path))
	assert.Contains(t, rec, "address_id")
	assert.Nil(t, rec["address_id"])
	assert.NotContains(t, rec, "line2")
	assert.Equal(t, "110001", rec["postal_code"])

	require.NoError(t, runJSON(t, &rec, "address", "assemble", "--id-fallback", "pending", path))
	assert.Equal(t, "pending", rec["address_id"])

	require.NoError(t, runJSON(t, &rec, "address", "assemble", "--generate-id", path))
	_, err := uuid.Parse(rec["address_id"].(string))
	assert.NoError(t, err)
}

func TestEmailValidate(t *testing.T) {
	_, err := run(t, "email", "validate", "jane@example.com")
	assert.NoError(t, err)

	_, err = run(t, "email", "validate", "--max-length", "5", "jane@example.com")
	assert.ErrorIs(t, err, errInvalid)

	_, err = run(t, "email", "validate", "not-an-email")
	assert.ErrorIs(t, err, errInvalid)
}

func TestConfigFlag(t *testing.T) {
	cfg := writeFile(t, "contact.toml", "[email]\nmax_length = 5\n")
	_, err := run(t, "--config", cfg, "email", "validate", "jane@example.com")
	assert.ErrorIs(t, err, errInvalid)

	_, err = run(t, "--config", "/missing.toml", "country", "list")
	assert.Equal(t, cerror.CodeMissingConfig, cerror.GetCode(err))
}

func TestVerboseLogging(t *testing.T) {
	cfg := writeFile(t, "contact.toml", "[logging]\nlevel = \"warn\"\nformat = \"json\"\n")

	_, stderr, err := execute(t, "--config", cfg, "country", "audit")
	require.NoError(t, err)
	assert.Empty(t, stderr, "debug entries are dropped at warn level")

	_, stderr, err = execute(t, "--config", cfg, "-v", "country", "audit")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"logger":"contactctl"`)
	assert.Contains(t, stderr, `"service":"contactctl"`)
	assert.Contains(t, stderr, `"msg":"configuration loaded"`)
	assert.Contains(t, stderr, `"msg":"dataset audited"`)
	assert.Contains(t, stderr, `"findings":0`)
}

func TestOutputFlag(t *testing.T) {
	_, err := run(t, "-o", "xml", "country", "list")
	assert.Equal(t, cerror.CodeInvalidInput, cerror.GetCode(err))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "-o", "xml", "version")
	require.NoError(t, err, "version skips setup")
	assert.Contains(t, out, "contactctl v1.0.0")
}
