package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ChecksCounterName is the name of the OpenTelemetry counter
// incremented for every check.
const ChecksCounterName = "assafely.checks"

// OTelMetrics implements CheckMetrics with an OpenTelemetry
// counter labelled by expression and outcome.
type OTelMetrics struct {
	checks metric.Int64Counter
}

// NewOTelMetrics creates the checks counter on meter.
func NewOTelMetrics(meter metric.Meter) (*OTelMetrics, error) {
	checks, err := meter.Int64Counter(
		ChecksCounterName,
		metric.WithDescription("Number of type checks by outcome."),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s counter: %w", ChecksCounterName, err)
	}
	return &OTelMetrics{checks: checks}, nil
}

func (m *OTelMetrics) RecordCheck(expression string, outcome Outcome) {
	m.checks.Add(
		context.Background(), 1,
		metric.WithAttributes(
			attribute.String("expression", expression),
			attribute.String("outcome", string(outcome)),
		),
	)
}
