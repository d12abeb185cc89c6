package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/contact/pkg/contact"
	"github.com/msto63/contact/pkg/core/config"
	cerror "github.com/msto63/contact/pkg/core/error"
	"github.com/msto63/contact/pkg/core/logging"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// cli carries flags and the wired toolkit for one invocation
type cli struct {
	cfgFile string
	verbose bool
	output  string

	cfg    *config.Config
	app    *contact.Contact
	logger *logging.Logger
}

// NewRootCmd builds the complete command tree
func NewRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "contactctl",
		Short: "mDW Contact - phone, address and country tooling",
		Long: `contactctl inspects the country reference data and runs the
contact toolkit on the command line.

Commands:
  country  - country, subdivision and timezone lookups
  phone    - sanitize, validate and transform phone numbers
  address  - validate and assemble address documents
  email    - validate email addresses`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default: $CONTACT_CONFIG or ./configs/contact.toml)")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&c.output, "output", "o", outputText, "output format (text|json)")

	rootCmd.AddCommand(
		c.newCountryCmd(),
		c.newPhoneCmd(),
		c.newAddressCmd(),
		c.newEmailCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command line
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// setup loads configuration and wires the toolkit before any subcommand
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if c.output != outputText && c.output != outputJSON {
		return cerror.Newf("unknown output format %q", c.output).WithCode(cerror.CodeInvalidInput)
	}

	var err error
	if c.cfgFile != "" {
		c.cfg, err = config.Load(c.cfgFile)
	} else {
		c.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logCfg := logging.DefaultLoggerConfig("contactctl")
	logCfg.Level = c.cfg.Logging.Level
	logCfg.Format = c.cfg.Logging.Format
	logCfg.Output = cmd.ErrOrStderr()
	if c.verbose {
		logCfg.Level = "debug"
	}
	c.logger = logging.Wrap(logging.NewLogger(logCfg), "contactctl")
	c.logger.Debug("configuration loaded",
		"config", c.cfgFile,
		"environment", c.cfg.General.Environment,
		"command", cmd.CommandPath(),
	)

	c.app, err = contact.New(contact.WithConfig(c.cfg), contact.WithLogger(c.logger.Zap()))
	if err != nil {
		c.logger.Error("toolkit setup failed", "error", err)
		return err
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error: "+err.Error()))
}
