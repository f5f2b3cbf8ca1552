package behaviors

import (
	"context"
	"time"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/outcome"
)

const (
	// BehaviorDurationMetric tracks the duration of the pipeline inside the Timing behavior.
	//
	// Labels:
	//   - request_type: tag of the request
	//   - request_kind: command, command_result or query
	//   - status: success, failure, canceled, timeout or error
	BehaviorDurationMetric = "dispatch_behavior_duration_seconds"

	// SlowRequestsMetric counts requests exceeding the slow threshold.
	SlowRequestsMetric = "dispatch_slow_requests_total"

	// LogMsgSlowRequest is logged at warn level when a request exceeds the slow threshold.
	LogMsgSlowRequest = "slow request"

	// LogAttrThresholdMS is the configured slow threshold in milliseconds.
	LogAttrThresholdMS = "threshold_ms"

	defaultSlowThreshold = 500 * time.Millisecond
)

// Timing is an open behavior that measures how long the inner pipeline takes.
type Timing struct {
	metricsCollector dispatch.MetricsCollector
	logger           dispatch.Logger
	contextualLogger dispatch.ContextualLogger
	slowThreshold    time.Duration
}

// TimingOption configures a Timing behavior.
type TimingOption func(*Timing) error

// WithSlowThreshold sets the duration above which a request is reported as slow. Default: 500ms.
func WithSlowThreshold(threshold time.Duration) TimingOption {
	return func(t *Timing) error {
		if threshold <= 0 {
			return ErrNonPositiveSlowThreshold
		}

		t.slowThreshold = threshold

		return nil
	}
}

// WithSlowRequestLogger sets the logger that receives slow request warnings.
func WithSlowRequestLogger(logger dispatch.Logger) TimingOption {
	return func(t *Timing) error {
		if logger == nil {
			return ErrNilLogger
		}

		t.logger = logger
		t.contextualLogger = contextual(logger)

		return nil
	}
}

// NewTiming creates a Timing behavior recording into collector.
func NewTiming(collector dispatch.MetricsCollector, options ...TimingOption) (*Timing, error) {
	if collector == nil {
		return nil, ErrNilMetricsCollector
	}

	t := &Timing{
		metricsCollector: collector,
		slowThreshold:    defaultSlowThreshold,
	}

	for _, option := range options {
		if err := option(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Handle implements dispatch.OpenBehavior.
func (t *Timing) Handle(
	ctx context.Context,
	info dispatch.RequestInfo,
	_ any,
	next dispatch.Next[outcome.Outcome],
) (outcome.Outcome, error) {
	start := time.Now()
	out, err := next(ctx)
	duration := time.Since(start)

	status := statusOf(out, err)
	dispatch.RecordDuration(ctx, t.metricsCollector, BehaviorDurationMetric, duration, dispatch.BuildRequestLabels(info, status))

	if duration > t.slowThreshold {
		dispatch.IncrementCounter(ctx, t.metricsCollector, SlowRequestsMetric, dispatch.BuildRequestLabels(info, status))
		logWith(ctx, t.logger, t.contextualLogger, levelWarn, LogMsgSlowRequest, []any{
			dispatch.LogAttrRequestType, info.Type,
			dispatch.LogAttrDurationMS, dispatch.ToMilliseconds(duration),
			LogAttrThresholdMS, dispatch.ToMilliseconds(t.slowThreshold),
		})
	}

	return out, err
}
