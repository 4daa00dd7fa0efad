// Package check runs named type checks against loosely typed
// values, with logging and metrics around each check.
package check

import (
	"fmt"

	"digital.vasic.assafely/pkg/logging"
	"digital.vasic.assafely/pkg/metrics"
	"digital.vasic.assafely/pkg/narrow"
	"digital.vasic.assafely/pkg/registry"
)

// Result captures the outcome of evaluating a single check.
type Result struct {
	// Expression is the checked expression, e.g.
	// "string|undefined".
	Expression string `json:"expression"`

	// TypeTag is the runtime type tag of the value.
	TypeTag string `json:"type"`

	// Keys are the key names of the value.
	Keys []string `json:"keys,omitempty"`

	// Passed indicates whether a predicate matched.
	Passed bool `json:"passed"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`
}

// Checker checks values against expressions resolved from a
// registry. It is safe for concurrent use when its registry,
// logger and metrics are.
type Checker struct {
	registry registry.Registry
	logger   logging.Logger
	metrics  metrics.CheckMetrics
}

// New creates a Checker using registry.Default, a NullLogger and
// NoopMetrics unless overridden by opts.
func New(opts ...Option) *Checker {
	c := &Checker{
		registry: registry.Default,
		logger:   logging.NullLogger{},
		metrics:  metrics.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check returns value if it satisfies expression, and a
// *narrow.AssertionError otherwise.
func (c *Checker) Check(expression string, value any) (any, error) {
	return c.check(expression, value, nil)
}

// CheckOr returns value if it satisfies expression, and
// orElse(value) otherwise. A nil orElse makes CheckOr behave like
// Check.
func (c *Checker) CheckOr(
	expression string,
	value any,
	orElse func(value any) any,
) (any, error) {
	return c.check(expression, value, orElse)
}

// Evaluate checks value against expression and reports the outcome
// as a Result instead of an error.
func (c *Checker) Evaluate(expression string, value any) Result {
	r := Result{
		Expression: expression,
		TypeTag:    narrow.TypeTag(value),
		Keys:       narrow.Keys(value),
	}

	_, err := c.check(expression, value, nil)
	if err != nil {
		r.Message = err.Error()
		return r
	}

	r.Passed = true
	r.Message = fmt.Sprintf("value of type %s satisfies %s", r.TypeTag, expression)
	return r
}

// Close closes the checker's logger.
func (c *Checker) Close() error {
	return c.logger.Close()
}

func (c *Checker) check(
	expression string,
	value any,
	orElse func(value any) any,
) (any, error) {
	expr, err := registry.ParseExpression(expression)
	if err != nil {
		c.logger.Error("invalid check expression",
			logging.StringField("expression", expression),
			logging.ErrorField(err),
		)
		return nil, err
	}

	pair, err := registry.Resolve(c.registry, expr)
	if err != nil {
		c.logger.Error("unresolved check expression",
			logging.StringField("expression", expression),
			logging.ErrorField(err),
		)
		return nil, err
	}

	name := expr.String()
	log := c.logger.WithFields(
		logging.StringField("expression", name),
		logging.StringField("type", narrow.TypeTag(value)),
	)

	var fallback func(any) narrow.Union[any, any]
	if orElse != nil {
		fallback = func(v any) narrow.Union[any, any] {
			return narrow.UnionOther[any, any](orElse(v))
		}
	}

	u, err := narrow.AsEither(value, pair, fallback)
	switch {
	case err != nil:
		log.Warn("type assertion failed",
			logging.StringsField("keys", narrow.Keys(value)),
		)
		c.metrics.RecordCheck(name, metrics.OutcomeFailed)
		return nil, err
	case fallback != nil && !matched(u):
		log.Info("type assertion fell back")
		c.metrics.RecordCheck(name, metrics.OutcomeFallback)
	default:
		log.Debug("type assertion passed")
		c.metrics.RecordCheck(name, metrics.OutcomePassed)
	}
	return u.Value(), nil
}

func matched(u narrow.Union[any, any]) bool {
	_, first := u.First()
	_, second := u.Second()
	return first || second
}
