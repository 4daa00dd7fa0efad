// Package config loads checker configuration from YAML files with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"digital.vasic.assafely/pkg/env"
	"digital.vasic.assafely/pkg/logging"
)

// Log formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatZap     = "zap"
)

// Metrics backends.
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendOTel   = "otel"
)

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel       = "ASSAFELY_LOG_LEVEL"
	EnvLogFormat      = "ASSAFELY_LOG_FORMAT"
	EnvLogOutput      = "ASSAFELY_LOG_OUTPUT"
	EnvMetricsBackend = "ASSAFELY_METRICS"
)

// Config is the top-level checker configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`

	// Aliases maps extra predicate names to registered ones,
	// e.g. "str: string".
	Aliases map[string]string `yaml:"aliases,omitempty"`
}

// LoggingConfig selects the logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`

	// Output is a file path; empty means stdout.
	Output string `yaml:"output,omitempty"`

	// Redact lists strings masked in every log entry.
	Redact []string `yaml:"redact,omitempty"`
}

// MetricsConfig selects where check outcomes are recorded.
type MetricsConfig struct {
	Backend   string `yaml:"backend"`
	MeterName string `yaml:"meter_name,omitempty"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: FormatJSON,
		},
		Metrics: MetricsConfig{
			Backend:   BackendNone,
			MeterName: "digital.vasic.assafely",
		},
	}
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment variables read by
// loader and validates the result.
func (c *Config) ApplyEnv(loader env.Loader) error {
	c.Logging.Level = loader.GetWithDefault(EnvLogLevel, c.Logging.Level)
	c.Logging.Format = loader.GetWithDefault(EnvLogFormat, c.Logging.Format)
	c.Logging.Output = loader.GetWithDefault(EnvLogOutput, c.Logging.Output)
	c.Metrics.Backend = loader.GetWithDefault(EnvMetricsBackend, c.Metrics.Backend)
	return c.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}

	formats := []string{FormatJSON, FormatConsole, FormatZap}
	if !slices.Contains(formats, c.Logging.Format) {
		return fmt.Errorf(
			"logging.format: %q is not one of %v",
			c.Logging.Format, formats,
		)
	}

	backends := []string{BackendNone, BackendMemory, BackendOTel}
	if !slices.Contains(backends, c.Metrics.Backend) {
		return fmt.Errorf(
			"metrics.backend: %q is not one of %v",
			c.Metrics.Backend, backends,
		)
	}

	for alias, target := range c.Aliases {
		if alias == "" || target == "" {
			return fmt.Errorf("aliases: empty name in %q: %q", alias, target)
		}
	}
	return nil
}
