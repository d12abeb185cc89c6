package cmd

import (
	"github.com/spf13/cobra"
)

func (c *cli) newEmailCmd() *cobra.Command {
	emailCmd := &cobra.Command{
		Use:   "email",
		Short: "Email address tools",
	}

	var maxLength int
	validateCmd := &cobra.Command{
		Use:   "validate <email>",
		Short: "Validates the format of an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := c.cfg.Email.MaxLength
			if cmd.Flags().Changed("max-length") {
				limit = maxLength
			}
			ok := c.app.Validator().Email(args[0], limit)
			return c.verdict(cmd, ok, map[string]any{"email": args[0], "valid": ok}, args[0])
		},
	}
	validateCmd.Flags().IntVar(&maxLength, "max-length", 0, "maximum length; 0 disables the cap (default from config)")

	emailCmd.AddCommand(validateCmd)
	return emailCmd
}
