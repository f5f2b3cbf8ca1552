package behaviors

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/outcome"
)

const (
	// RetriesMetric counts retries by request type, attempt number and error type.
	RetriesMetric = "dispatch_retries_total"

	// RetryDelayMetric tracks the backoff delay before each retry.
	RetryDelayMetric = "dispatch_retry_delay_seconds"

	// MaxRetriesReachedMetric counts requests that still failed after the last attempt.
	MaxRetriesReachedMetric = "dispatch_max_retries_reached_total"

	// LabelAttemptNumber is the number of the attempt about to be made.
	LabelAttemptNumber = "attempt_number"

	// LabelErrorType classifies the error that caused a retry.
	LabelErrorType = "error_type"

	defaultMaxAttempts  = 6
	defaultBaseDelay    = 10 * time.Millisecond
	defaultMaxDelay     = 5 * time.Second
	defaultJitterFactor = 0.3
)

// Retry is an open behavior that re-runs the inner pipeline with exponential backoff
// when it returns a retryable error, e.g. an optimistic concurrency conflict in a store.
//
// Retry Schedule (default): 0 ms, 10 ms, 20 ms, 40 ms, 80 ms, 160 ms (with 30% jitter)
//
// Outcomes are never retried, failures included. Neither are cancellation and deadline errors.
type Retry struct {
	retryable        func(error) bool
	maxAttempts      int
	baseDelay        time.Duration
	maxDelay         time.Duration
	jitterFactor     float64
	metricsCollector dispatch.MetricsCollector
}

// RetryOption configures a Retry behavior.
type RetryOption func(*Retry) error

// WithMaxAttempts sets the maximum number of attempts, the first one included.
func WithMaxAttempts(attempts int) RetryOption {
	return func(r *Retry) error {
		if attempts <= 0 {
			return ErrInvalidMaxAttempts
		}

		r.maxAttempts = attempts

		return nil
	}
}

// WithBaseDelay sets the base delay for exponential backoff.
// Actual delays: baseDelay, baseDelay*2, baseDelay*4, baseDelay*8, up to the max delay.
func WithBaseDelay(delay time.Duration) RetryOption {
	return func(r *Retry) error {
		if delay < 0 {
			return ErrNegativeBaseDelay
		}

		r.baseDelay = delay

		return nil
	}
}

// WithMaxDelay caps the backoff delay before jitter is added.
func WithMaxDelay(delay time.Duration) RetryOption {
	return func(r *Retry) error {
		if delay <= 0 {
			return ErrNonPositiveMaxDelay
		}

		r.maxDelay = delay

		return nil
	}
}

// WithJitterFactor sets the jitter added as a fraction of the calculated backoff delay.
// Valid range: 0.0 (no jitter) to 1.0 (100% jitter).
func WithJitterFactor(factor float64) RetryOption {
	return func(r *Retry) error {
		if factor < 0.0 || factor > 1.0 {
			return ErrInvalidJitterFactor
		}

		r.jitterFactor = factor

		return nil
	}
}

// WithRetryMetrics sets the metrics collector for retry instrumentation.
func WithRetryMetrics(collector dispatch.MetricsCollector) RetryOption {
	return func(r *Retry) error {
		if collector == nil {
			return ErrNilMetricsCollector
		}

		r.metricsCollector = collector

		return nil
	}
}

// NewRetry creates a Retry behavior that retries errors for which retryable returns true.
func NewRetry(retryable func(error) bool, options ...RetryOption) (*Retry, error) {
	if retryable == nil {
		return nil, ErrNilRetryable
	}

	r := &Retry{
		retryable:    retryable,
		maxAttempts:  defaultMaxAttempts,
		baseDelay:    defaultBaseDelay,
		maxDelay:     defaultMaxDelay,
		jitterFactor: defaultJitterFactor,
	}

	for _, option := range options {
		if err := option(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Handle implements dispatch.OpenBehavior.
func (r *Retry) Handle(
	ctx context.Context,
	info dispatch.RequestInfo,
	_ any,
	next dispatch.Next[outcome.Outcome],
) (outcome.Outcome, error) {
	var (
		out     outcome.Outcome
		lastErr error
	)

	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := r.backoff(attempt)
			dispatch.RecordDuration(ctx, r.metricsCollector, RetryDelayMetric, delay, r.labels(info, attempt, lastErr))

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return outcome.Outcome{}, ctx.Err()
			}

			dispatch.IncrementCounter(ctx, r.metricsCollector, RetriesMetric, r.labels(info, attempt, lastErr))
		}

		out, lastErr = next(ctx)
		if lastErr == nil || !r.isRetryable(lastErr) {
			return out, lastErr
		}
	}

	dispatch.IncrementCounter(ctx, r.metricsCollector, MaxRetriesReachedMetric, r.labels(info, r.maxAttempts, lastErr))

	return out, lastErr
}

// backoff returns baseDelay * 2^(attempt-1), capped at maxDelay, plus jitter.
func (r *Retry) backoff(attempt int) time.Duration {
	delay := min(r.baseDelay, r.maxDelay)
	for i := 1; i < attempt && delay > 0 && delay < r.maxDelay; i++ {
		if delay > r.maxDelay/2 {
			delay = r.maxDelay
			break
		}

		delay *= 2
	}

	jitter := rand.Float64() * float64(delay) * r.jitterFactor //nolint:gosec // math/rand is sufficient for jitter

	return delay + time.Duration(jitter)
}

func (r *Retry) isRetryable(err error) bool {
	if dispatch.IsCancellationError(err) || dispatch.IsTimeoutError(err) {
		return false
	}

	return r.retryable(err)
}

func (r *Retry) labels(info dispatch.RequestInfo, attempt int, err error) map[string]string {
	return map[string]string{
		dispatch.LogAttrRequestType: info.Type,
		LabelAttemptNumber:          strconv.Itoa(attempt),
		LabelErrorType:              errorType(err, r.retryable),
	}
}

// errorType extracts a string representation of the error type for metrics labeling.
func errorType(err error, retryable func(error) bool) string {
	switch {
	case err == nil:
		return "none"
	case dispatch.IsCancellationError(err):
		return "context_canceled"
	case dispatch.IsTimeoutError(err):
		return "context_deadline_exceeded"
	case retryable(err):
		return "retryable"
	default:
		return "other"
	}
}
