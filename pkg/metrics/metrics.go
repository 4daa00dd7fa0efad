// Package metrics records the outcome of checks.
package metrics

// Outcome is how a single check ended.
type Outcome string

const (
	// OutcomePassed means a predicate matched.
	OutcomePassed Outcome = "passed"
	// OutcomeFallback means no predicate matched and the
	// fallback produced the result.
	OutcomeFallback Outcome = "fallback"
	// OutcomeFailed means no predicate matched and no fallback
	// was given.
	OutcomeFailed Outcome = "failed"
)

// CheckMetrics defines the interface for recording check metrics.
type CheckMetrics interface {
	// RecordCheck records one check of expression.
	RecordCheck(expression string, outcome Outcome)
}

// NoopMetrics is a no-op implementation of CheckMetrics
// useful for testing or when metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordCheck(_ string, _ Outcome) {}
