// Package agent provides the tool dispatch loop and its structured logging.
package agent

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides structured logging for tool executions.
type Logger struct {
	zap *zap.Logger
}

// NewLogger creates a Logger that appends to a file. An empty logPath
// disables logging. Development selects the readable encoder config instead
// of the production one.
func NewLogger(logPath string, development bool) (*Logger, error) {
	if logPath == "" {
		return &Logger{zap: zap.NewNop()}, nil
	}

	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	var encoderConfig zapcore.EncoderConfig
	if development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logFile),
		zapcore.InfoLevel,
	)

	return &Logger{zap: zap.New(core)}, nil
}

// Close syncs the logger (should be called on shutdown).
func (l *Logger) Close() error {
	return l.zap.Sync()
}

// ToolExecuted logs a tool execution with details.
func (l *Logger) ToolExecuted(toolName string, duration time.Duration, success bool, err error) {
	fields := []zap.Field{
		zap.String("tool", toolName),
		zap.Duration("duration", duration),
		zap.Bool("success", success),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	l.zap.Info("tool executed", fields...)
}

// EditApplied logs a persisted edit with its change summary.
func (l *Logger) EditApplied(path string, replacements, linesAdded, linesRemoved int) {
	l.zap.Info("edit applied",
		zap.String("path", path),
		zap.Int("replacements", replacements),
		zap.Int("lines_added", linesAdded),
		zap.Int("lines_removed", linesRemoved),
	)
}
