package log

import (
	"context"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var logger *otelzap.Logger

// Logger is the narrow logging surface passed into repositories and
// background workers.
type Logger interface {
	Info(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
}

type zapLogger struct {
	base *otelzap.Logger
}

// Setup builds the otelzap logger used across the service.
func Setup() *otelzap.Logger {
	z, err := zap.NewProduction()
	if err != nil {
		z = zap.NewNop()
	}
	return otelzap.New(z, otelzap.WithMinLevel(zap.InfoLevel))
}

// SetupLogger is kept as an alias of Setup for wiring code.
func SetupLogger() *otelzap.Logger {
	return Setup()
}

// Init stores the process-wide logger.
func Init(l *otelzap.Logger) {
	logger = l
}

// GetLogger returns the process-wide logger wrapped in the Logger interface.
func GetLogger() Logger {
	if logger == nil {
		Init(Setup())
	}
	return &zapLogger{base: logger}
}

func (l *zapLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.base.Ctx(ctx).Info(msg, zap.Any("details", fields))
}

func (l *zapLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.base.Ctx(ctx).Error(msg, zap.Any("details", fields))
}
