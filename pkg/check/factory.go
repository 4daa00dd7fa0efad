package check

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"go.opentelemetry.io/otel"

	"digital.vasic.assafely/pkg/config"
	"digital.vasic.assafely/pkg/logging"
	"digital.vasic.assafely/pkg/metrics"
	"digital.vasic.assafely/pkg/registry"
)

// NewFromConfig builds a Checker with its own registry, the
// configured aliases, logger and metrics backend. The OTel backend
// uses the global meter provider. Callers own the returned
// checker's Close.
func NewFromConfig(cfg config.Config) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reg := registry.New()
	for _, alias := range slices.Sorted(maps.Keys(cfg.Aliases)) {
		if err := reg.Alias(alias, cfg.Aliases[alias]); err != nil {
			return nil, fmt.Errorf("aliases: %w", err)
		}
	}

	m, err := newMetrics(cfg.Metrics)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	return New(
		WithRegistry(reg),
		WithLogger(logger),
		WithMetrics(m),
	), nil
}

func newLogger(cfg config.LoggingConfig) (logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var logger logging.Logger
	switch cfg.Format {
	case config.FormatConsole:
		if cfg.Output != "" {
			return nil, errors.New("logging.output is not supported by the console format")
		}
		logger = logging.NewConsoleLogger(nil, level)
	case config.FormatZap:
		logger, err = logging.NewZapProduction(level, cfg.Output)
	default:
		logger, err = logging.NewJSONLogger(logging.LoggerConfig{
			OutputPath: cfg.Output,
			Level:      level,
		})
	}
	if err != nil {
		return nil, err
	}

	if len(cfg.Redact) > 0 {
		logger = logging.NewRedactingLogger(logger, cfg.Redact...)
	}
	return logger, nil
}

func newMetrics(cfg config.MetricsConfig) (metrics.CheckMetrics, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return metrics.NewInMemoryMetrics(), nil
	case config.BackendOTel:
		return metrics.NewOTelMetrics(otel.Meter(cfg.MeterName))
	default:
		return metrics.NoopMetrics{}, nil
	}
}
