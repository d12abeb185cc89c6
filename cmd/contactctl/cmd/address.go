package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/contact/pkg/contact/assemble"
	"github.com/msto63/contact/pkg/contact/validate"
	cerror "github.com/msto63/contact/pkg/core/error"
)

func (c *cli) newAddressCmd() *cobra.Command {
	addressCmd := &cobra.Command{
		Use:   "address",
		Short: "Address document tools",
		Long: `Address documents are YAML or JSON objects with the keys
address_id, string, title, type, country, sub_division, locality,
line1, line2, postal_code, extra, latitude, longitude, provider_data.`,
	}

	validateCmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validates every field of an address document",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runAddressValidate,
	}

	var idFallback string
	var generateID bool
	assembleCmd := &cobra.Command{
		Use:   "assemble <file>",
		Short: "Assembles a sparse address record from a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAddressAssemble(cmd, args[0], idFallback, generateID)
		},
	}
	assembleCmd.Flags().StringVar(&idFallback, "id-fallback", "", "address_id used when the document has none")
	assembleCmd.Flags().BoolVar(&generateID, "generate-id", false, "generate a UUID address_id when the document has none")
	assembleCmd.MarkFlagsMutuallyExclusive("id-fallback", "generate-id")

	addressCmd.AddCommand(validateCmd, assembleCmd)
	return addressCmd
}

// readDocument decodes a YAML or JSON file into v
func readDocument(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return cerror.Wrap(err, "read address document").
			WithCode(cerror.CodeInvalidInput).
			WithDetail("path", path)
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return cerror.Wrap(err, "decode address document").
			WithCode(cerror.CodeInvalidInput).
			WithDetail("path", path)
	}
	return nil
}

func (c *cli) runAddressValidate(cmd *cobra.Command, args []string) error {
	var in validate.AddressInput
	if err := readDocument(args[0], &in); err != nil {
		return err
	}

	report := c.app.ValidateAddressReport(in)
	c.logger.Debug("address validated", "file", args[0], "valid", report.Valid, "errors", len(report.Errors))

	if !c.jsonOutput() {
		w := cmd.OutOrStdout()
		for _, fe := range report.Errors {
			fmt.Fprintf(w, "%s %s\n", keyStyle.Render(fe.Field), errorStyle.Render(fe.Message))
		}
	}
	return c.verdict(cmd, report.Valid, report, args[0])
}

func (c *cli) runAddressAssemble(cmd *cobra.Command, path, idFallback string, generateID bool) error {
	var data map[string]any
	if err := readDocument(path, &data); err != nil {
		return err
	}

	asm := c.app.Assembler()
	switch {
	case generateID:
		asm = assemble.NewAddressAssembler(uuid.NewString())
	case idFallback != "":
		asm = assemble.NewAddressAssembler(idFallback)
	}
	rec := asm.Address(data)

	fields := make([]field, 0, len(rec))
	for _, key := range asm.Keys(rec) {
		fields = append(fields, field{key, rec[key]})
	}
	return c.render(cmd, rec, "", fields...)
}
