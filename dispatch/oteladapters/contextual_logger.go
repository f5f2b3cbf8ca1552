package oteladapters

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
)

// SlogBridgeLogger implements dispatch.Logger and dispatch.ContextualLogger with a *slog.Logger.
// Created with NewSlogBridgeLogger, records are sent through the OpenTelemetry slog bridge and
// carry the trace and span IDs of the context.
type SlogBridgeLogger struct {
	logger *slog.Logger
}

// NewSlogBridgeLogger creates a logger backed by the OpenTelemetry slog bridge.
// It uses the global OpenTelemetry LoggerProvider.
func NewSlogBridgeLogger(name string) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: otelslog.NewLogger(name)}
}

// NewSlogBridgeLoggerWithHandler creates a logger writing to handler.
// No trace correlation is added beyond what handler does itself.
func NewSlogBridgeLoggerWithHandler(handler slog.Handler) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: slog.New(handler)}
}

// Debug implements dispatch.Logger.
func (l *SlogBridgeLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }

// Info implements dispatch.Logger.
func (l *SlogBridgeLogger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }

// Warn implements dispatch.Logger.
func (l *SlogBridgeLogger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }

// Error implements dispatch.Logger.
func (l *SlogBridgeLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// DebugContext implements dispatch.ContextualLogger.
func (l *SlogBridgeLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

// InfoContext implements dispatch.ContextualLogger.
func (l *SlogBridgeLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

// WarnContext implements dispatch.ContextualLogger.
func (l *SlogBridgeLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

// ErrorContext implements dispatch.ContextualLogger.
func (l *SlogBridgeLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

// OTelLogger implements dispatch.ContextualLogger with the OpenTelemetry logs API directly.
type OTelLogger struct {
	logger log.Logger
}

// NewOTelLogger creates an OTelLogger emitting to logger.
func NewOTelLogger(logger log.Logger) *OTelLogger {
	return &OTelLogger{logger: logger}
}

// DebugContext implements dispatch.ContextualLogger.
func (l *OTelLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityDebug, msg, args)
}

// InfoContext implements dispatch.ContextualLogger.
func (l *OTelLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityInfo, msg, args)
}

// WarnContext implements dispatch.ContextualLogger.
func (l *OTelLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityWarn, msg, args)
}

// ErrorContext implements dispatch.ContextualLogger.
func (l *OTelLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityError, msg, args)
}

// emit builds a log record from slog-style key-value args. Pairs without a string key are skipped.
func (l *OTelLogger) emit(ctx context.Context, severity log.Severity, msg string, args []any) {
	var record log.Record
	record.SetTimestamp(time.Now())
	record.SetSeverity(severity)
	record.SetSeverityText(severity.String())
	record.SetBody(log.StringValue(msg))

	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}

		record.AddAttributes(log.KeyValue{Key: key, Value: logValue(args[i+1])})
	}

	l.logger.Emit(ctx, record)
}

// logValue keeps the common scalar types typed and renders everything else as a string.
func logValue(v any) log.Value {
	switch value := v.(type) {
	case string:
		return log.StringValue(value)
	case int:
		return log.IntValue(value)
	case int64:
		return log.Int64Value(value)
	case float64:
		return log.Float64Value(value)
	case bool:
		return log.BoolValue(value)
	case error:
		return log.StringValue(value.Error())
	default:
		return log.StringValue(slog.AnyValue(v).String())
	}
}

var (
	_ dispatch.Logger           = (*SlogBridgeLogger)(nil)
	_ dispatch.ContextualLogger = (*SlogBridgeLogger)(nil)
	_ dispatch.ContextualLogger = (*OTelLogger)(nil)
)
