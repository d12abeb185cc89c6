package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/contact/pkg/contact/country"
)

func (c *cli) newCountryCmd() *cobra.Command {
	countryCmd := &cobra.Command{
		Use:   "country",
		Short: "Country reference data",
	}

	countryCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Lists all known countries",
			Args:  cobra.NoArgs,
			RunE:  c.runCountryList,
		},
		&cobra.Command{
			Use:   "show <country>",
			Short: "Shows the contact configuration of a country",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runCountryShow,
		},
		&cobra.Command{
			Use:   "subdivisions <country>",
			Short: "Lists the subdivisions of a country",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runCountrySubdivisions,
		},
		&cobra.Command{
			Use:   "subdivision <country> <subdivision>",
			Short: "Shows one subdivision",
			Args:  cobra.ExactArgs(2),
			RunE:  c.runCountrySubdivision,
		},
		&cobra.Command{
			Use:   "timezones <country>",
			Short: "Lists the timezones of a country",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runCountryTimezones,
		},
		&cobra.Command{
			Use:   "audit",
			Short: "Cross-checks calling codes against libphonenumber",
			Args:  cobra.NoArgs,
			RunE:  c.runCountryAudit,
		},
	)
	return countryCmd
}

type countrySummary struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	CallingCode int    `json:"calling_code"`
}

func (c *cli) runCountryList(cmd *cobra.Command, _ []string) error {
	ds := c.app.Dataset()

	list := make([]countrySummary, 0, ds.Len())
	fields := make([]field, 0, ds.Len())
	for _, code := range ds.Codes() {
		rec, _ := ds.Lookup(code)
		list = append(list, countrySummary{Code: code, Name: rec.Name, CallingCode: rec.CallingCode})
		fields = append(fields, field{code, fmt.Sprintf("%-24s +%d", rec.Name, rec.CallingCode)})
	}
	return c.render(cmd, list, fmt.Sprintf("%d countries", len(list)), fields...)
}

func (c *cli) runCountryShow(cmd *cobra.Command, args []string) error {
	code := args[0]
	cfg, ok := c.app.CountryContactConfig(code)
	if !ok {
		return notFound("country", code)
	}
	return c.render(cmd, cfg, cfg.CountryName,
		field{"calling code", fmt.Sprintf("+%d", cfg.CallingCode)},
		field{"phone number length", fmt.Sprintf("%d-%d", cfg.PhoneNumberMinLength, cfg.PhoneNumberMaxLength)},
		field{"postal code length", postalRange(cfg.PostalCodeMinLength, cfg.PostalCodeMaxLength)},
		field{"metric", cfg.IsMetric},
		field{"currency", cfg.CurrencyCode},
	)
}

func (c *cli) runCountrySubdivisions(cmd *cobra.Command, args []string) error {
	code := args[0]
	subs, ok := c.app.CountrySubDivisions(code)
	if !ok {
		return notFound("country", code)
	}

	codes := make([]string, 0, len(subs))
	for sub := range subs {
		codes = append(codes, sub)
	}
	sort.Strings(codes)

	fields := make([]field, 0, len(codes))
	for _, sub := range codes {
		fields = append(fields, field{sub, subs[sub].Name})
	}
	return c.render(cmd, subs, fmt.Sprintf("%d subdivisions of %s", len(subs), code), fields...)
}

func (c *cli) runCountrySubdivision(cmd *cobra.Command, args []string) error {
	code, sub := args[0], args[1]
	rec, ok := c.app.CountrySubDivision(code, sub)
	if !ok {
		return notFound("subdivision", code+"/"+sub)
	}
	return c.render(cmd, rec, "", field{code + "/" + sub, rec.Name})
}

func (c *cli) runCountryTimezones(cmd *cobra.Command, args []string) error {
	code := args[0]
	tz, ok := c.app.CountryTimeZones(code)
	if !ok {
		return notFound("country", code)
	}
	return c.render(cmd, tz, "", field{code, strings.Join(tz, ", ")})
}

func (c *cli) runCountryAudit(cmd *cobra.Command, _ []string) error {
	findings := country.Audit(c.app.Dataset())
	c.logger.Debug("dataset audited", "countries", c.app.Dataset().Len(), "findings", len(findings))

	if c.jsonOutput() {
		if findings == nil {
			findings = []country.Finding{}
		}
		if err := writeJSON(cmd.OutOrStdout(), findings); err != nil {
			return err
		}
	} else if len(findings) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("dataset agrees with libphonenumber"))
	} else {
		for _, f := range findings {
			fmt.Fprintln(cmd.OutOrStdout(), errorStyle.Render(f.String()))
		}
	}

	if len(findings) > 0 {
		return errInvalid
	}
	return nil
}

func postalRange(minLen, maxLen *int) string {
	switch {
	case minLen == nil && maxLen == nil:
		return mutedStyle.Render("unconstrained")
	case minLen == nil:
		return fmt.Sprintf("at most %d", *maxLen)
	case maxLen == nil:
		return fmt.Sprintf("at least %d", *minLen)
	default:
		return fmt.Sprintf("%d-%d", *minLen, *maxLen)
	}
}
