package cmd

import (
	"github.com/spf13/cobra"
)

func (c *cli) newPhoneCmd() *cobra.Command {
	phoneCmd := &cobra.Command{
		Use:   "phone",
		Short: "Phone number tools",
	}

	var withPlus bool
	sanitizeCmd := &cobra.Command{
		Use:   "sanitize <raw>",
		Short: "Strips characters not allowed in a phone number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cleaned := c.app.SanitizePhoneNumber(args[0])
			if withPlus {
				cleaned = c.app.SanitizePhone(args[0])
			}
			return c.render(cmd, map[string]string{"input": args[0], "sanitized": cleaned}, "",
				field{"sanitized", cleaned})
		},
	}
	sanitizeCmd.Flags().BoolVar(&withPlus, "with-plus", false, "keep a leading '+' (full number)")

	phoneCmd.AddCommand(
		sanitizeCmd,
		&cobra.Command{
			Use:   "validate <country> <number>",
			Short: "Validates a national number for a country",
			Args:  cobra.ExactArgs(2),
			RunE:  c.runPhoneValidate,
		},
		&cobra.Command{
			Use:   "normalize <country> <raw>",
			Short: "Sanitizes, validates and derives full number and identifier",
			Args:  cobra.ExactArgs(2),
			RunE:  c.runPhoneNormalize,
		},
		&cobra.Command{
			Use:   "encode <country> <number>",
			Short: "Builds the composite phone identifier",
			Args:  cobra.ExactArgs(2),
			RunE:  c.runPhoneEncode,
		},
		&cobra.Command{
			Use:   "decode <phone-id>",
			Short: "Parses a composite phone identifier",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runPhoneDecode,
		},
		&cobra.Command{
			Use:   "full <country> <number>",
			Short: "Builds the full international number",
			Args:  cobra.ExactArgs(2),
			RunE:  c.runPhoneFull,
		},
		&cobra.Command{
			Use:   "split <full-number> <country>",
			Short: "Strips the calling code of a known country",
			Args:  cobra.ExactArgs(2),
			RunE:  c.runPhoneSplit,
		},
	)
	return phoneCmd
}

type phoneCheck struct {
	Country      string `json:"country"`
	Number       string `json:"number"`
	Charset      bool   `json:"charset"`
	Length       bool   `json:"length"`
	CountryKnown bool   `json:"country_known"`
	CountryRules bool   `json:"country_rules"`
	Valid        bool   `json:"valid"`
}

func (c *cli) runPhoneValidate(cmd *cobra.Command, args []string) error {
	v := c.app.Validator()
	code, number := args[0], args[1]

	check := phoneCheck{
		Country:      code,
		Number:       number,
		Charset:      v.PhoneNumberCharset(number),
		Length:       v.PhoneNumberLength(number),
		CountryKnown: v.PhoneCountry(code),
		CountryRules: v.Phone(code, number),
	}
	check.Valid = check.Charset && check.Length && check.CountryRules

	if !c.jsonOutput() {
		_ = c.render(cmd, nil, "",
			field{"charset", check.Charset},
			field{"generic length", check.Length},
			field{"country known", check.CountryKnown},
			field{"country length", check.CountryRules},
		)
	}
	return c.verdict(cmd, check.Valid, check, code+" "+number)
}

func (c *cli) runPhoneNormalize(cmd *cobra.Command, args []string) error {
	rec, err := c.app.NormalizePhone(args[0], args[1])
	if err != nil {
		return err
	}
	return c.render(cmd, rec, "",
		field{"number", rec.Number},
		field{"full", rec.Full},
		field{"phone id", rec.ID},
	)
}

func (c *cli) runPhoneEncode(cmd *cobra.Command, args []string) error {
	id, ok := c.app.EncodePhoneID(args[0], args[1])
	if !ok {
		return c.render(cmd, map[string]any{"phone_id": nil}, "", field{"phone id", mutedStyle.Render("none")})
	}
	return c.render(cmd, map[string]string{"phone_id": id}, "", field{"phone id", id})
}

func (c *cli) runPhoneDecode(cmd *cobra.Command, args []string) error {
	p, err := c.app.DecodePhoneID(args[0])
	if err != nil {
		return err
	}
	return c.render(cmd, p, "", field{"country", p.Country}, field{"number", p.Number})
}

func (c *cli) runPhoneFull(cmd *cobra.Command, args []string) error {
	full, err := c.app.ConstructFullNumber(args[0], args[1])
	if err != nil {
		return err
	}
	return c.render(cmd, map[string]string{"full": full}, "", field{"full", full})
}

func (c *cli) runPhoneSplit(cmd *cobra.Command, args []string) error {
	p, err := c.app.DeconstructFullNumber(args[0], args[1])
	if err != nil {
		return err
	}
	return c.render(cmd, p, "", field{"country", p.Country}, field{"number", p.Number})
}
