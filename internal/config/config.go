package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/threadkit/internal/format"
	apperrors "github.com/alexisbeaulieu97/threadkit/pkg/errors"
)

// Config holds the host settings read from a YAML file.
type Config struct {
	Theme         string            `yaml:"theme" validate:"omitempty,theme_name"`
	LogLevel      string            `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	HumanLogs     bool              `yaml:"human_logs"`
	PluralRule    string            `yaml:"plural_rule" validate:"omitempty,oneof=suffix inflect"`
	CustomPlurals map[string]string `yaml:"custom_plurals" validate:"dive,keys,required,endkeys,required"`
	Width         int               `yaml:"width" validate:"gte=0,lte=400"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Theme:      "light",
		LogLevel:   "info",
		HumanLogs:  true,
		PluralRule: format.RuleSuffix,
	}
}

// Load reads and validates the configuration at path. An empty path yields
// the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, apperrors.NewParseError(source, extractLine(err), err)
	}
	cfg.applyDefaults()

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.PluralRule == "" {
		c.PluralRule = defaults.PluralRule
	}
}

// Formatter builds the text formatter described by the configuration.
func (c Config) Formatter() format.Formatter {
	f := format.DefaultFormatter()
	f.Plurals = format.PluralizerFor(c.PluralRule, c.CustomPlurals)
	return f
}
