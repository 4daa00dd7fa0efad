package check

import (
	"digital.vasic.assafely/pkg/logging"
	"digital.vasic.assafely/pkg/metrics"
	"digital.vasic.assafely/pkg/registry"
)

// Option configures a Checker.
type Option func(*Checker)

// WithRegistry sets the registry expressions are resolved
// against.
func WithRegistry(reg registry.Registry) Option {
	return func(c *Checker) {
		c.registry = reg
	}
}

// WithLogger sets the logger used by the checker.
func WithLogger(logger logging.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// WithMetrics sets where check outcomes are recorded.
func WithMetrics(m metrics.CheckMetrics) Option {
	return func(c *Checker) {
		c.metrics = m
	}
}
