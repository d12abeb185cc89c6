// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     config
// Description: TOML/YAML configuration for limits, logging and data location
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/msto63/contact/pkg/contact/country"
	"github.com/msto63/contact/pkg/contact/validate"
	cerror "github.com/msto63/contact/pkg/core/error"
	"github.com/msto63/contact/pkg/stringx"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "CONTACT_CONFIG"

// Config holds the complete toolkit configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Phone   PhoneConfig   `toml:"phone" yaml:"phone"`
	Address AddressConfig `toml:"address" yaml:"address"`
	Email   EmailConfig   `toml:"email" yaml:"email"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name" validate:"required"`
	Environment string `toml:"environment" yaml:"environment" validate:"oneof=development test production"`
	// DataDir holds country documents replacing the embedded dataset.
	// Empty means embedded.
	DataDir string `toml:"data_dir" yaml:"data_dir"`
}

// PhoneConfig holds the country independent phone limits
type PhoneConfig struct {
	NumberMinLength int `toml:"number_min_length" yaml:"number_min_length" validate:"gte=1"`
	NumberMaxLength int `toml:"number_max_length" yaml:"number_max_length" validate:"gtefield=NumberMinLength"`
	MinLength       int `toml:"min_length" yaml:"min_length" validate:"gte=1"`
	MaxLength       int `toml:"max_length" yaml:"max_length" validate:"gtefield=MinLength"`
}

// AddressConfig holds address field limits
type AddressConfig struct {
	TitleMinLength    int `toml:"title_min_length" yaml:"title_min_length" validate:"gte=1"`
	TitleMaxLength    int `toml:"title_max_length" yaml:"title_max_length" validate:"gtefield=TitleMinLength"`
	LocalityMinLength int `toml:"locality_min_length" yaml:"locality_min_length" validate:"gte=1"`
	LocalityMaxLength int `toml:"locality_max_length" yaml:"locality_max_length" validate:"gtefield=LocalityMinLength"`
	OtherMinLength    int `toml:"other_min_length" yaml:"other_min_length" validate:"gte=1"`
	OtherMaxLength    int `toml:"other_max_length" yaml:"other_max_length" validate:"gtefield=OtherMinLength"`
	// IDFallback is written to address_id when the input has none
	IDFallback string `toml:"id_fallback" yaml:"id_fallback"`
}

// EmailConfig holds email settings
type EmailConfig struct {
	// MaxLength caps email length; 0 disables the cap
	MaxLength int `toml:"max_length" yaml:"max_length" validate:"gte=0"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" yaml:"format" validate:"oneof=console json"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, cerror.Newf("config file not found: %s", path).
			WithCode(cerror.CodeMissingConfig).
			WithDetail("path", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, cerror.Wrap(err, "failed to parse config").
				WithCode(cerror.CodeConfigError).
				WithDetail("path", path)
		}
	case ".yaml", ".yml":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, cerror.Wrap(err, "failed to read config").
				WithCode(cerror.CodeConfigError).
				WithDetail("path", path)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, cerror.Wrap(err, "failed to parse config").
				WithCode(cerror.CodeConfigError).
				WithDetail("path", path)
		}
	default:
		return nil, cerror.Newf("unsupported config format %q", ext).
			WithCode(cerror.CodeConfigError).
			WithDetail("path", path)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in path-like fields
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from CONTACT_CONFIG or a default location.
// Without any config file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./configs/contact.toml",
			"./contact.toml",
			filepath.Join(os.Getenv("HOME"), ".config/mdw-contact/contact.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return cerror.Wrap(err, "invalid configuration").WithCode(cerror.CodeInvalidConfig)
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	c.General.Name = stringx.Fallback(c.General.Name, "mdw-contact")
	c.General.Environment = stringx.Fallback(c.General.Environment, "development")

	// Phone
	if c.Phone.NumberMinLength == 0 {
		c.Phone.NumberMinLength = validate.DefaultPhoneNumberMinLength
	}
	if c.Phone.NumberMaxLength == 0 {
		c.Phone.NumberMaxLength = validate.DefaultPhoneNumberMaxLength
	}
	if c.Phone.MinLength == 0 {
		c.Phone.MinLength = validate.DefaultPhoneMinLength
	}
	if c.Phone.MaxLength == 0 {
		c.Phone.MaxLength = validate.DefaultPhoneMaxLength
	}

	// Address
	if c.Address.TitleMinLength == 0 {
		c.Address.TitleMinLength = validate.DefaultTitleMinLength
	}
	if c.Address.TitleMaxLength == 0 {
		c.Address.TitleMaxLength = validate.DefaultTitleMaxLength
	}
	if c.Address.LocalityMinLength == 0 {
		c.Address.LocalityMinLength = validate.DefaultLocalityMinLength
	}
	if c.Address.LocalityMaxLength == 0 {
		c.Address.LocalityMaxLength = validate.DefaultLocalityMaxLength
	}
	if c.Address.OtherMinLength == 0 {
		c.Address.OtherMinLength = validate.DefaultOtherMinLength
	}
	if c.Address.OtherMaxLength == 0 {
		c.Address.OtherMaxLength = validate.DefaultOtherMaxLength
	}

	// Logging
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.Address.IDFallback = os.ExpandEnv(c.Address.IDFallback)
}

// Limits converts the configured lengths to validation limits
func (c *Config) Limits() validate.Limits {
	return validate.Limits{
		PhoneNumber: country.Bounds{Min: c.Phone.NumberMinLength, Max: c.Phone.NumberMaxLength},
		Phone:       country.Bounds{Min: c.Phone.MinLength, Max: c.Phone.MaxLength},
		Title:       country.Bounds{Min: c.Address.TitleMinLength, Max: c.Address.TitleMaxLength},
		Locality:    country.Bounds{Min: c.Address.LocalityMinLength, Max: c.Address.LocalityMaxLength},
		Other:       country.Bounds{Min: c.Address.OtherMinLength, Max: c.Address.OtherMaxLength},
	}
}
