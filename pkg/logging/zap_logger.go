package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a *zap.Logger to Logger.
type ZapLogger struct {
	logger *zap.Logger

	// ignoreSync is set for console outputs, where Sync fails on
	// some platforms.
	ignoreSync bool

	// output is shared with child loggers; nil for wrapped loggers.
	output *zapOutput
}

// zapOutput closes the sink opened by NewZapProduction once.
type zapOutput struct {
	once   sync.Once
	close  func()
	closed bool
}

// Close runs flush and closes the sink on the first call only.
func (o *zapOutput) Close(flush func() error) error {
	var err error
	o.once.Do(func() {
		err = flush()
		o.close()
		o.closed = true
	})
	return err
}

// NewZapLogger wraps an existing zap logger.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger}
}

// NewZapProduction builds a JSON zap logger at level writing to
// outputPath, or to stdout when outputPath is empty. Close closes the
// output file.
func NewZapProduction(
	level LogLevel, outputPath string,
) (*ZapLogger, error) {
	console := outputPath == ""
	if console {
		outputPath = "stdout"
	}

	sink, closeOutput, err := zap.Open(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open zap output: %w", err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		sink,
		zap.NewAtomicLevelAt(toZapLevel(level)),
	)
	logger := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)

	return &ZapLogger{
		logger:     logger,
		ignoreSync: console,
		output:     &zapOutput{close: closeOutput},
	}, nil
}

func toZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func zapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}

// Info logs an informational message.
func (z *ZapLogger) Info(msg string, fields ...Field) {
	z.logger.Info(msg, zapFields(fields)...)
}

// Warn logs a warning message.
func (z *ZapLogger) Warn(msg string, fields ...Field) {
	z.logger.Warn(msg, zapFields(fields)...)
}

// Error logs an error message.
func (z *ZapLogger) Error(msg string, fields ...Field) {
	z.logger.Error(msg, zapFields(fields)...)
}

// Debug logs a debug message.
func (z *ZapLogger) Debug(msg string, fields ...Field) {
	z.logger.Debug(msg, zapFields(fields)...)
}

// WithFields returns a ZapLogger with the fields attached.
func (z *ZapLogger) WithFields(fields ...Field) Logger {
	return &ZapLogger{
		logger:     z.logger.With(zapFields(fields)...),
		ignoreSync: z.ignoreSync,
		output:     z.output,
	}
}

// Close flushes buffered entries and closes the output opened by
// NewZapProduction. Closing a child closes the shared output.
func (z *ZapLogger) Close() error {
	var err error
	if z.output != nil {
		err = z.output.Close(z.logger.Sync)
	} else {
		err = z.logger.Sync()
	}
	if err != nil && !z.ignoreSync {
		return err
	}
	return nil
}
