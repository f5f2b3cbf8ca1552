package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	// DispatchDurationMetric tracks the duration of a dispatch from bus entry to normalized outcome.
	DispatchDurationMetric = "dispatch_duration_seconds"

	// DispatchCallsMetric tracks total dispatches.
	DispatchCallsMetric = "dispatch_calls_total"

	// DispatchCanceledMetric tracks dispatches ending in cancellation.
	DispatchCanceledMetric = "dispatch_canceled_total"

	// DispatchTimeoutMetric tracks dispatches ending in a deadline.
	DispatchTimeoutMetric = "dispatch_timeout_total"

	// DispatchFaultsMetric tracks unanticipated errors and panics caught at the bus boundary.
	//
	// Labels:
	//   - request_type: tag of the request being dispatched
	//   - request_kind: command, command_result or query
	//   - status: error or no_handler
	DispatchFaultsMetric = "dispatch_faults_total"

	// StatusSuccess indicates a successful outcome.
	StatusSuccess = "success"

	// StatusFailure indicates an expected failure outcome, e.g. a validation or business rule failure.
	StatusFailure = "failure"

	// StatusError indicates an unanticipated error or panic.
	StatusError = "error"

	// StatusNoHandler indicates that no matching handler was registered.
	StatusNoHandler = "no_handler"

	// StatusCanceled indicates the operation was canceled due to context cancellation.
	StatusCanceled = "canceled"

	// StatusTimeout indicates the operation timed out due to context deadline exceeded.
	StatusTimeout = "timeout"

	// LogMsgDispatchStarted is logged when a dispatch begins.
	LogMsgDispatchStarted = "dispatch started"

	// LogMsgDispatchCompleted is logged when a dispatch produced a handler outcome.
	LogMsgDispatchCompleted = "dispatch completed"

	// LogMsgDispatchCanceled is logged when a dispatch was canceled.
	LogMsgDispatchCanceled = "dispatch canceled"

	// LogMsgDispatchFailed is logged when a dispatch failed with a missing handler, an error or a panic.
	LogMsgDispatchFailed = "dispatch failed"

	// LogAttrRequestType identifies the request type in logs.
	LogAttrRequestType = "request_type"

	// LogAttrRequestKind identifies the request kind in logs.
	LogAttrRequestKind = "request_kind"

	// LogAttrStatus indicates the dispatch status.
	LogAttrStatus = "status"

	// LogAttrDurationMS indicates the processing duration in milliseconds.
	LogAttrDurationMS = "duration_ms"

	// LogAttrErrorCount is the number of error messages in a failure outcome.
	LogAttrErrorCount = "error_count"

	// LogAttrError contains error details.
	LogAttrError = "error"

	// SpanNameCommandDispatch is the tracing span name for command dispatches.
	SpanNameCommandDispatch = "commandbus.send"

	// SpanNameQueryDispatch is the tracing span name for query dispatches.
	SpanNameQueryDispatch = "querybus.ask"
)

// Logger interface for basic logging. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ContextualLogger interface for context-aware logging with automatic trace correlation.
// It is preferred over Logger when both are configured.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// MetricsCollector interface for collecting dispatch performance and operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// ContextualMetricsCollector extends MetricsCollector with context-aware methods for trace correlation.
// Context-aware methods are used when available.
type ContextualMetricsCollector interface {
	MetricsCollector
	RecordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string)
	IncrementCounterContext(ctx context.Context, metric string, labels map[string]string)
	RecordValueContext(ctx context.Context, metric string, value float64, labels map[string]string)
}

// SpanContext represents an active tracing span that can be finished and updated with attributes.
type SpanContext interface {
	SetStatus(status string)
	AddAttribute(key, value string)
}

// TracingCollector interface for distributed tracing.
// Implementations can integrate any tracing backend, see package oteladapters.
type TracingCollector interface {
	StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext)
	FinishSpan(spanCtx SpanContext, status string, attrs map[string]string)
}

// BuildRequestLabels creates standard metric labels for a dispatch.
func BuildRequestLabels(info RequestInfo, status string) map[string]string {
	return map[string]string{
		LogAttrRequestType: info.Type,
		LogAttrRequestKind: info.Kind.String(),
		LogAttrStatus:      status,
	}
}

// ToMilliseconds converts a time.Duration to float64 milliseconds with precision.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// RecordDuration records a duration metric, using the context-aware method if available.
func RecordDuration(
	ctx context.Context,
	collector MetricsCollector,
	metric string,
	duration time.Duration,
	labels map[string]string,
) {
	if collector == nil {
		return
	}

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, duration, labels)
	} else {
		collector.RecordDuration(metric, duration, labels)
	}
}

// IncrementCounter increments a counter metric, using the context-aware method if available.
func IncrementCounter(ctx context.Context, collector MetricsCollector, metric string, labels map[string]string) {
	if collector == nil {
		return
	}

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
	} else {
		collector.IncrementCounter(metric, labels)
	}
}

// RecordDispatchMetrics records all relevant metrics for one dispatch.
func RecordDispatchMetrics(
	ctx context.Context,
	collector MetricsCollector,
	info RequestInfo,
	status string,
	duration time.Duration,
) {
	if collector == nil {
		return
	}

	labels := BuildRequestLabels(info, status)
	RecordDuration(ctx, collector, DispatchDurationMetric, duration, labels)
	IncrementCounter(ctx, collector, DispatchCallsMetric, labels)

	switch status {
	case StatusCanceled:
		IncrementCounter(ctx, collector, DispatchCanceledMetric, BuildRequestLabels(info, status))
	case StatusTimeout:
		IncrementCounter(ctx, collector, DispatchTimeoutMetric, BuildRequestLabels(info, status))
	case StatusError, StatusNoHandler:
		IncrementCounter(ctx, collector, DispatchFaultsMetric, BuildRequestLabels(info, status))
	}
}

// StartDispatchSpan starts a tracing span for a dispatch.
// Returns the updated context and span context, or the original context and nil if tracing is disabled.
func StartDispatchSpan(
	ctx context.Context,
	tracingCollector TracingCollector,
	info RequestInfo,
) (context.Context, SpanContext) {
	if tracingCollector == nil {
		return ctx, nil
	}

	name := SpanNameQueryDispatch
	if info.IsCommand() {
		name = SpanNameCommandDispatch
	}

	attrs := map[string]string{
		LogAttrRequestType: info.Type,
		LogAttrRequestKind: info.Kind.String(),
	}

	return tracingCollector.StartSpan(ctx, name, attrs)
}

// FinishDispatchSpan completes a tracing span with the dispatch status.
func FinishDispatchSpan(
	tracingCollector TracingCollector,
	span SpanContext,
	status string,
	duration time.Duration,
	err error,
) {
	if tracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		LogAttrStatus:     status,
		LogAttrDurationMS: formatDurationMS(duration),
	}

	if err != nil {
		attrs[LogAttrError] = err.Error()
	}

	tracingCollector.FinishSpan(span, status, attrs)
}

// LogDispatchStart logs the beginning of a dispatch.
func LogDispatchStart(ctx context.Context, logger Logger, contextualLogger ContextualLogger, info RequestInfo) {
	args := []any{LogAttrRequestType, info.Type, LogAttrRequestKind, info.Kind.String()}

	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, LogMsgDispatchStarted, args...)
	} else if logger != nil {
		logger.Info(LogMsgDispatchStarted, args...)
	}
}

// LogDispatchEnd logs the end of a dispatch at a level matching its status.
// err carries the full fault detail for the error and no_handler statuses.
func LogDispatchEnd(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	info RequestInfo,
	status string,
	errorCount int,
	duration time.Duration,
	err error,
) {
	args := []any{
		LogAttrRequestType, info.Type,
		LogAttrRequestKind, info.Kind.String(),
		LogAttrStatus, status,
		LogAttrDurationMS, ToMilliseconds(duration),
	}

	switch status {
	case StatusSuccess, StatusFailure:
		args = append(args, LogAttrErrorCount, errorCount)
		logAt(ctx, logger, contextualLogger, levelInfo, LogMsgDispatchCompleted, args)
	case StatusCanceled, StatusTimeout:
		logAt(ctx, logger, contextualLogger, levelWarn, LogMsgDispatchCanceled, args)
	default:
		if err != nil {
			args = append(args, LogAttrError, err.Error())
		}
		logAt(ctx, logger, contextualLogger, levelError, LogMsgDispatchFailed, args)
	}
}

type level int

const (
	levelInfo level = iota
	levelWarn
	levelError
)

func logAt(ctx context.Context, logger Logger, contextualLogger ContextualLogger, lvl level, msg string, args []any) {
	if contextualLogger != nil {
		switch lvl {
		case levelInfo:
			contextualLogger.InfoContext(ctx, msg, args...)
		case levelWarn:
			contextualLogger.WarnContext(ctx, msg, args...)
		default:
			contextualLogger.ErrorContext(ctx, msg, args...)
		}

		return
	}

	if logger == nil {
		return
	}

	switch lvl {
	case levelInfo:
		logger.Info(msg, args...)
	case levelWarn:
		logger.Warn(msg, args...)
	default:
		logger.Error(msg, args...)
	}
}

// formatDurationMS formats duration in milliseconds for span attributes.
func formatDurationMS(duration time.Duration) string {
	return fmt.Sprintf("%.2f", ToMilliseconds(duration))
}

// IsCancellationError checks if an error is due to context cancellation.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.Canceled)
}

// IsTimeoutError checks if an error is due to context deadline exceeded.
func IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
