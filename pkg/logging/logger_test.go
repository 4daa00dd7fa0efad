package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"", LevelInfo},
		{" warn ", LevelWarn},
		{"warning", LevelWarn},
		{"Error", LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestParseLevel_Unknown(t *testing.T) {
	_, err := ParseLevel("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestFieldHelpers(t *testing.T) {
	assert.Equal(t, Field{Key: "k", Value: 1}, LogField("k", 1))
	assert.Equal(t, Field{Key: "k", Value: "v"}, StringField("k", "v"))
	assert.Equal(t, Field{Key: "k", Value: "a,b"}, StringsField("k", []string{"a", "b"}))
	assert.Equal(t, Field{Key: "k", Value: ""}, StringsField("k", nil))
	assert.Equal(t, Field{Key: "k", Value: 3}, IntField("k", 3))
	assert.Equal(t, Field{Key: "k", Value: true}, BoolField("k", true))
	assert.Equal(t, Field{Key: "error", Value: "boom"}, ErrorField(errors.New("boom")))
	assert.Equal(t, Field{Key: "error", Value: "<nil>"}, ErrorField(nil))
}

func TestNullLogger(t *testing.T) {
	var l Logger = NullLogger{}

	// Should not panic
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	l.Debug("x")
	assert.Equal(t, NullLogger{}, l.WithFields(LogField("k", "v")))
	assert.NoError(t, l.Close())
}
