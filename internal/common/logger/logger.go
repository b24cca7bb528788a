package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/edgecomet/snippet/internal/common/configtypes"
)

// Logger wraps zap.Logger and keeps the per-output levels adjustable at runtime
type Logger struct {
	*zap.Logger
	consoleLevel *zap.AtomicLevel
	fileLevel    *zap.AtomicLevel
	file         *lumberjack.Logger
}

// SetLevel changes the level of every enabled output
func (l *Logger) SetLevel(level string) {
	parsed := parseLogLevel(level)
	if l.consoleLevel != nil {
		l.consoleLevel.SetLevel(parsed)
	}
	if l.fileLevel != nil {
		l.fileLevel.SetLevel(parsed)
	}
}

// Close flushes buffered entries and closes the log file, if any
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// NewLogger creates a new Zap logger with appropriate configuration
func NewLogger(config configtypes.LogConfig) (*Logger, error) {
	// Parse global log level (fallback for outputs without explicit level)
	globalLevel := parseLogLevel(config.Level)

	var cores []zapcore.Core
	result := &Logger{}

	if config.Console.Enabled {
		level := zap.NewAtomicLevelAt(resolveLogLevel(config.Console.Level, globalLevel))
		result.consoleLevel = &level
		// Console output goes to stderr so stdout stays free for the preview itself
		cores = append(cores, zapcore.NewCore(createEncoder(config.Console.Format), zapcore.Lock(os.Stderr), level))
	}

	if config.File.Enabled {
		if config.File.Path == "" {
			return nil, fmt.Errorf("file.path must be specified when file logging is enabled")
		}

		level := zap.NewAtomicLevelAt(resolveLogLevel(config.File.Level, globalLevel))
		result.fileLevel = &level
		result.file = createFileWriter(config.File.Path, config.File.Rotation)
		cores = append(cores, zapcore.NewCore(createEncoder(config.File.Format), zapcore.AddSync(result.file), level))
	}

	if len(cores) == 0 {
		return nil, fmt.Errorf("at least one log output (console or file) must be enabled")
	}

	var core zapcore.Core
	if len(cores) == 1 {
		core = cores[0]
	} else {
		core = zapcore.NewTee(cores...)
	}

	result.Logger = zap.New(core)
	return result, nil
}

// NewDefaultLogger creates a default logger for initial startup logging
func NewDefaultLogger() (*Logger, error) {
	return NewLogger(configtypes.LogConfig{
		Level: configtypes.LogLevelInfo,
		Console: configtypes.ConsoleLogConfig{
			Enabled: true,
			Format:  configtypes.LogFormatConsole,
		},
	})
}

// parseLogLevel converts string level to zapcore.Level
func parseLogLevel(level string) zapcore.Level {
	switch level {
	case configtypes.LogLevelDebug:
		return zap.DebugLevel
	case configtypes.LogLevelInfo:
		return zap.InfoLevel
	case configtypes.LogLevelWarn:
		return zap.WarnLevel
	case configtypes.LogLevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// resolveLogLevel determines the effective log level for an output
// If outputLevel is specified, use it; otherwise fall back to globalLevel
func resolveLogLevel(outputLevel string, globalLevel zapcore.Level) zapcore.Level {
	if outputLevel != "" {
		return parseLogLevel(outputLevel)
	}
	return globalLevel
}

// createEncoder creates a zapcore.Encoder based on format
func createEncoder(format string) zapcore.Encoder {
	if format == configtypes.LogFormatJSON {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	if format == configtypes.LogFormatText {
		// Plain text without color codes (for files)
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return zapcore.NewConsoleEncoder(encoderConfig)
}

// createFileWriter creates a rotating file writer
func createFileWriter(path string, rotation configtypes.RotationConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rotation.MaxSize,
		MaxAge:     rotation.MaxAge,
		MaxBackups: rotation.MaxBackups,
		Compress:   rotation.Compress,
	}
}
