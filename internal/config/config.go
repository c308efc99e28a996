// Package config provides configuration persistence for the kindaxml CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/kindaxml"
)

// Config holds the CLI's persisted defaults for building a kindaxml.Config,
// plus CLI-only presentation settings.
type Config struct {
	RecognizedTags     []string          `yaml:"recognized_tags"`
	UnknownMode        string            `yaml:"unknown_mode,omitempty"`
	DefaultRecovery    string            `yaml:"default_recovery,omitempty"`
	PerTagRecovery     map[string]string `yaml:"per_tag_recovery,omitempty"`
	TrimPunctuation    *bool             `yaml:"trim_punctuation,omitempty"`
	AutocloseOnAnyTag  *bool             `yaml:"autoclose_on_any_tag,omitempty"`
	AutocloseOnSameTag *bool             `yaml:"autoclose_on_same_tag,omitempty"`
	CaseSensitiveTags  *bool             `yaml:"case_sensitive_tags,omitempty"`
	StrayEndTagPolicy  string            `yaml:"stray_end_tag_policy,omitempty"`
	OutputFormat       string            `yaml:"output_format,omitempty"`
}

// Validate checks that the persisted knobs describe a buildable
// kindaxml.Config: every mode/strategy/policy name must be one this build of
// kindaxml recognizes.
func (c *Config) Validate() error {
	if len(c.RecognizedTags) == 0 {
		return errors.New("recognized_tags must list at least one tag")
	}
	if _, err := c.Build(); err != nil {
		return err
	}
	return nil
}

// Build turns the persisted knobs into a live kindaxml.Config.
func (c *Config) Build() (*kindaxml.Config, error) {
	cfg := kindaxml.NewConfig()
	cfg.SetRecognizedTags(c.RecognizedTags)

	if c.UnknownMode != "" {
		if err := cfg.SetUnknownMode(c.UnknownMode); err != nil {
			return nil, err
		}
	}
	if c.DefaultRecovery != "" {
		if err := cfg.SetDefaultRecovery(c.DefaultRecovery); err != nil {
			return nil, err
		}
	}
	for tag, strategy := range c.PerTagRecovery {
		if err := cfg.SetRecoveryStrategy(tag, strategy); err != nil {
			return nil, fmt.Errorf("per_tag_recovery[%s]: %w", tag, err)
		}
	}
	if c.TrimPunctuation != nil {
		cfg.SetTrimPunctuation(*c.TrimPunctuation)
	}
	if c.AutocloseOnAnyTag != nil {
		cfg.SetAutocloseOnAnyTag(*c.AutocloseOnAnyTag)
	}
	if c.AutocloseOnSameTag != nil {
		cfg.SetAutocloseOnSameTag(*c.AutocloseOnSameTag)
	}
	if c.CaseSensitiveTags != nil {
		cfg.SetCaseSensitiveTags(*c.CaseSensitiveTags)
	}
	if c.StrayEndTagPolicy != "" {
		if err := cfg.SetStrayEndTagPolicy(c.StrayEndTagPolicy); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadFromEnv overrides fields from KINDAXML_* environment variables.
// Precedence: KINDAXML_* env var → existing config value.
func (c *Config) LoadFromEnv() {
	if format := os.Getenv("KINDAXML_OUTPUT_FORMAT"); format != "" {
		c.OutputFormat = format
	}
	if mode := os.Getenv("KINDAXML_UNKNOWN_MODE"); mode != "" {
		c.UnknownMode = mode
	}
	if recovery := os.Getenv("KINDAXML_DEFAULT_RECOVERY"); recovery != "" {
		c.DefaultRecovery = recovery
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "kindaxml", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".kindaxml", "config.yml")
	}

	return filepath.Join(home, ".config", "kindaxml", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment
// variables. If the file does not exist, Default() is used as the base.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		cfg = Default()
	}

	cfg.LoadFromEnv()
	return cfg, nil
}

// Default returns the CLI's out-of-the-box configuration: kindaxml's
// LLM-friendly preset, rendered as table output.
func Default() *Config {
	trimPunctuation := true
	autoclose := true
	caseSensitive := false
	return &Config{
		RecognizedTags:  []string{"cite", "note", "todo", "claim", "risk", "code"},
		UnknownMode:     "strip",
		DefaultRecovery: "forward_until_tag",
		PerTagRecovery: map[string]string{
			"cite": "retro_line",
		},
		TrimPunctuation:    &trimPunctuation,
		AutocloseOnAnyTag:  &autoclose,
		CaseSensitiveTags:  &caseSensitive,
		StrayEndTagPolicy:  "drop",
		OutputFormat:       "table",
	}
}
