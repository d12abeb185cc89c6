package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	cerror "github.com/msto63/contact/pkg/core/error"
)

// errInvalid marks a negative verdict so the process exits non-zero
var errInvalid = cerror.New("validation failed").WithCode(cerror.CodeValidationFailed)

// field is one key/value line of text output
type field struct {
	key   string
	value any
}

func (c *cli) jsonOutput() bool {
	return c.output == outputJSON
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// render writes v as JSON, or title plus fields as styled text
func (c *cli) render(cmd *cobra.Command, v any, title string, fields ...field) error {
	w := cmd.OutOrStdout()
	if c.jsonOutput() {
		return writeJSON(w, v)
	}
	if title != "" {
		fmt.Fprintln(w, titleStyle.Render(title))
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%s %v\n", keyStyle.Render(f.key), f.value)
	}
	return nil
}

// verdict prints a pass/fail line and turns a fail into errInvalid
func (c *cli) verdict(cmd *cobra.Command, ok bool, v any, subject string) error {
	w := cmd.OutOrStdout()
	if c.jsonOutput() {
		if err := writeJSON(w, v); err != nil {
			return err
		}
	} else if ok {
		fmt.Fprintln(w, okStyle.Render("valid")+" "+subject)
	} else {
		fmt.Fprintln(w, errorStyle.Render("invalid")+" "+subject)
	}
	if !ok {
		return errInvalid
	}
	return nil
}

func notFound(what, key string) error {
	return cerror.Newf("%s %q not found", what, key).
		WithCode(cerror.CodeNotFound).
		WithDetail(what, key)
}
