package logging

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// RedactingLogger masks configured secrets, such as sensitive key
// names reported by failed checks, before entries reach the inner
// logger. Messages, string values, string slices, errors and
// fmt.Stringer values are masked; other values pass through.
type RedactingLogger struct {
	inner    Logger
	replacer *strings.Replacer
}

// NewRedactingLogger creates a logger that masks every occurrence of
// secrets. Empty secrets are ignored. When secrets overlap, the
// longest match wins.
func NewRedactingLogger(
	inner Logger,
	secrets ...string,
) *RedactingLogger {
	return &RedactingLogger{
		inner:    inner,
		replacer: newSecretReplacer(secrets),
	}
}

func newSecretReplacer(secrets []string) *strings.Replacer {
	sorted := slices.Clone(secrets)
	slices.SortFunc(sorted, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	sorted = slices.Compact(sorted)

	var oldnew []string
	for _, s := range sorted {
		if s != "" {
			oldnew = append(oldnew, s, mask(s))
		}
	}
	if len(oldnew) == 0 {
		return nil
	}
	return strings.NewReplacer(oldnew...)
}

// mask keeps the first 4 characters of s and stars the rest.
func mask(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", len(s)-4)
}

func (r *RedactingLogger) redact(s string) string {
	if r.replacer == nil {
		return s
	}
	return r.replacer.Replace(s)
}

func (r *RedactingLogger) redactValue(v any) any {
	switch v := v.(type) {
	case string:
		return r.redact(v)
	case []string:
		out := make([]string, len(v))
		for i, s := range v {
			out[i] = r.redact(s)
		}
		return out
	case error:
		return r.redact(v.Error())
	case fmt.Stringer:
		return r.redact(v.String())
	}
	return v
}

func (r *RedactingLogger) redactFields(fields []Field) []Field {
	if r.replacer == nil || len(fields) == 0 {
		return fields
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = Field{Key: f.Key, Value: r.redactValue(f.Value)}
	}
	return out
}

// Info logs a redacted informational message.
func (r *RedactingLogger) Info(msg string, fields ...Field) {
	r.inner.Info(r.redact(msg), r.redactFields(fields)...)
}

// Warn logs a redacted warning message.
func (r *RedactingLogger) Warn(msg string, fields ...Field) {
	r.inner.Warn(r.redact(msg), r.redactFields(fields)...)
}

// Error logs a redacted error message.
func (r *RedactingLogger) Error(msg string, fields ...Field) {
	r.inner.Error(r.redact(msg), r.redactFields(fields)...)
}

// Debug logs a redacted debug message.
func (r *RedactingLogger) Debug(msg string, fields ...Field) {
	r.inner.Debug(r.redact(msg), r.redactFields(fields)...)
}

// WithFields returns a RedactingLogger over inner.WithFields, with the
// fields redacted and the same secrets.
func (r *RedactingLogger) WithFields(fields ...Field) Logger {
	return &RedactingLogger{
		inner:    r.inner.WithFields(r.redactFields(fields)...),
		replacer: r.replacer,
	}
}

// Close closes the inner logger.
func (r *RedactingLogger) Close() error {
	return r.inner.Close()
}
