package logging

import (
	"fmt"
	"strings"

	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Development builds get the console encoder.
func New(level string, development bool) (*zap.Logger, error) {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// ParseLevel maps a config level name to a zap level. Empty means info.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "trace", "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// WailsLevel converts a zap level to the Wails runtime log level.
func WailsLevel(level zapcore.Level) wailslogger.LogLevel {
	switch {
	case level <= zapcore.DebugLevel:
		return wailslogger.DEBUG
	case level == zapcore.InfoLevel:
		return wailslogger.INFO
	case level == zapcore.WarnLevel:
		return wailslogger.WARNING
	default:
		return wailslogger.ERROR
	}
}

// WailsAdapter sends the Wails runtime log through zap.
type WailsAdapter struct {
	log *zap.Logger
}

var _ wailslogger.Logger = (*WailsAdapter)(nil)

func NewWailsAdapter(log *zap.Logger) *WailsAdapter {
	return &WailsAdapter{log: log.Named("wails").WithOptions(zap.AddCallerSkip(1))}
}

func (a *WailsAdapter) Print(message string)   { a.log.Info(message) }
func (a *WailsAdapter) Trace(message string)   { a.log.Debug(message) }
func (a *WailsAdapter) Debug(message string)   { a.log.Debug(message) }
func (a *WailsAdapter) Info(message string)    { a.log.Info(message) }
func (a *WailsAdapter) Warning(message string) { a.log.Warn(message) }
func (a *WailsAdapter) Error(message string)   { a.log.Error(message) }
func (a *WailsAdapter) Fatal(message string)   { a.log.Fatal(message) }
