package config

import (
	"os"
	"path/filepath"
	"testing"

	cerror "github.com/msto63/contact/pkg/core/error"
)

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	// General defaults
	if cfg.General.Name != "mdw-contact" {
		t.Errorf("General.Name = %v, want mdw-contact", cfg.General.Name)
	}
	if cfg.General.Environment != "development" {
		t.Errorf("General.Environment = %v, want development", cfg.General.Environment)
	}
	if cfg.General.DataDir != "" {
		t.Errorf("General.DataDir = %v, want empty (embedded dataset)", cfg.General.DataDir)
	}

	// Phone defaults
	if cfg.Phone.NumberMinLength != 3 || cfg.Phone.NumberMaxLength != 11 {
		t.Errorf("Phone.Number = %d..%d, want 3..11", cfg.Phone.NumberMinLength, cfg.Phone.NumberMaxLength)
	}
	if cfg.Phone.MinLength != 3 || cfg.Phone.MaxLength != 14 {
		t.Errorf("Phone = %d..%d, want 3..14", cfg.Phone.MinLength, cfg.Phone.MaxLength)
	}

	// Address defaults
	if cfg.Address.TitleMaxLength != 30 {
		t.Errorf("Address.TitleMaxLength = %v, want 30", cfg.Address.TitleMaxLength)
	}
	if cfg.Address.LocalityMaxLength != 100 {
		t.Errorf("Address.LocalityMaxLength = %v, want 100", cfg.Address.LocalityMaxLength)
	}
	if cfg.Address.OtherMaxLength != 255 {
		t.Errorf("Address.OtherMaxLength = %v, want 255", cfg.Address.OtherMaxLength)
	}

	// Email and logging defaults
	if cfg.Email.MaxLength != 0 {
		t.Errorf("Email.MaxLength = %v, want 0", cfg.Email.MaxLength)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %v, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %v, want console", cfg.Logging.Format)
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
}

func TestConfig_Limits(t *testing.T) {
	cfg := Default()
	cfg.Phone.NumberMaxLength = 12

	limits := cfg.Limits()
	if limits.PhoneNumber.Min != 3 || limits.PhoneNumber.Max != 12 {
		t.Errorf("PhoneNumber = %+v, want 3..12", limits.PhoneNumber)
	}
	if limits.Other.Max != 255 {
		t.Errorf("Other.Max = %v, want 255", limits.Other.Max)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/contact.toml")
	if err == nil {
		t.Fatal("Load() expected error for non-existent file")
	}
	if !cerror.HasCode(err, cerror.CodeMissingConfig) {
		t.Errorf("Load() code = %v, want %v", cerror.GetCode(err), cerror.CodeMissingConfig)
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad_ValidTOML(t *testing.T) {
	path := writeConfig(t, "contact.toml", `
[general]
name = "TestContact"
environment = "test"

[phone]
number_max_length = 12

[email]
max_length = 254

[logging]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "TestContact" {
		t.Errorf("General.Name = %v, want TestContact", cfg.General.Name)
	}
	if cfg.Phone.NumberMaxLength != 12 {
		t.Errorf("Phone.NumberMaxLength = %v, want 12", cfg.Phone.NumberMaxLength)
	}
	if cfg.Email.MaxLength != 254 {
		t.Errorf("Email.MaxLength = %v, want 254", cfg.Email.MaxLength)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %v, want json", cfg.Logging.Format)
	}

	// Check defaults were applied for missing values
	if cfg.Phone.NumberMinLength != 3 {
		t.Errorf("Phone.NumberMinLength = %v, want 3 (default)", cfg.Phone.NumberMinLength)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	path := writeConfig(t, "contact.yaml", `
general:
  environment: production
address:
  title_max_length: 40
  id_fallback: pending
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.Environment != "production" {
		t.Errorf("General.Environment = %v, want production", cfg.General.Environment)
	}
	if cfg.Address.TitleMaxLength != 40 {
		t.Errorf("Address.TitleMaxLength = %v, want 40", cfg.Address.TitleMaxLength)
	}
	if cfg.Address.IDFallback != "pending" {
		t.Errorf("Address.IDFallback = %v, want pending", cfg.Address.IDFallback)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    cerror.Code
	}{
		{"min above max", "c.toml", "[phone]\nnumber_min_length = 12\nnumber_max_length = 5\n", cerror.CodeInvalidConfig},
		{"unknown level", "c.toml", "[logging]\nlevel = \"loud\"\n", cerror.CodeInvalidConfig},
		{"negative email cap", "c.yaml", "email:\n  max_length: -1\n", cerror.CodeInvalidConfig},
		{"broken toml", "c.toml", "[phone\n", cerror.CodeConfigError},
		{"broken yaml", "c.yml", "phone: [\n", cerror.CodeConfigError},
		{"unknown format", "c.ini", "phone=1\n", cerror.CodeConfigError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if got := cerror.GetCode(err); got != tt.code {
				t.Errorf("Load() code = %v, want %v", got, tt.code)
			}
		})
	}
}

func TestConfig_expandEnvVars(t *testing.T) {
	t.Setenv("TEST_CONTACT_DATA", "/srv/contact")

	cfg := &Config{General: GeneralConfig{DataDir: "$TEST_CONTACT_DATA/countries"}}
	cfg.expandEnvVars()

	if cfg.General.DataDir != "/srv/contact/countries" {
		t.Errorf("DataDir = %v, want /srv/contact/countries", cfg.General.DataDir)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := writeConfig(t, "contact.toml", "[general]\nname = \"FromEnv\"\n")
		t.Setenv(EnvConfigPath, path)

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.General.Name != "FromEnv" {
			t.Errorf("General.Name = %v, want FromEnv", cfg.General.Name)
		}
	})

	t.Run("no config found falls back to defaults", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		t.Setenv("HOME", t.TempDir())
		wd, err := os.Getwd()
		if err != nil {
			t.Fatalf("Getwd() error = %v", err)
		}
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatalf("Chdir() error = %v", err)
		}
		t.Cleanup(func() { _ = os.Chdir(wd) })

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.General.Name != "mdw-contact" {
			t.Errorf("General.Name = %v, want mdw-contact", cfg.General.Name)
		}
	})
}
