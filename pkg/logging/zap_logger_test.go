package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Delegates(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Debug("d")
	logger.Info("i", StringField("type", "number"))
	logger.Warn("w")
	logger.Error("e")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "i", entries[1].Message)
	assert.Equal(t, "number", entries[1].ContextMap()["type"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.NoError(t, logger.Close())
}

func TestZapLogger_WithFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewZapLogger(zap.New(core))

	child := logger.WithFields(StringField("expression", "string"))
	child.Info("checked")
	logger.Info("plain")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "string", entries[0].ContextMap()["expression"])
	assert.NotContains(t, entries[1].ContextMap(), "expression")
}

func TestNewZapProduction_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zap.log")

	logger, err := NewZapProduction(LevelWarn, path)
	require.NoError(t, err)

	logger.Info("filtered")
	logger.Warn("kept", IntField("n", 1))
	require.NoError(t, logger.Close())
	assert.True(t, logger.output.closed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := splitNonEmpty(string(data))
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"msg":"kept"`)
}

func TestNewZapProduction_ChildSharesOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zap.log")

	logger, err := NewZapProduction(LevelInfo, path)
	require.NoError(t, err)

	child, ok := logger.WithFields(StringField("expression", "string")).(*ZapLogger)
	require.True(t, ok)
	assert.Same(t, logger.output, child.output)

	child.Info("checked")
	require.NoError(t, child.Close())
	assert.True(t, logger.output.closed)
	assert.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"expression":"string"`)
}

func TestZapLogger_WrappedCloseKeepsLogger(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	logger := NewZapLogger(zap.New(core))

	assert.Nil(t, logger.output)
	assert.NoError(t, logger.Close())
}

func TestToZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, toZapLevel(LevelDebug))
	assert.Equal(t, zapcore.InfoLevel, toZapLevel(LevelInfo))
	assert.Equal(t, zapcore.WarnLevel, toZapLevel(LevelWarn))
	assert.Equal(t, zapcore.ErrorLevel, toZapLevel(LevelError))
	assert.Equal(t, zapcore.InfoLevel, toZapLevel(LogLevel(42)))
}
