package behaviors

import "errors"

var (
	// ErrNilLogger is returned when a nil logger is provided.
	ErrNilLogger = errors.New("logger must not be nil")

	// ErrNilMetricsCollector is returned when a nil metrics collector is provided.
	ErrNilMetricsCollector = errors.New("metrics collector must not be nil")

	// ErrNilTracingCollector is returned when a nil tracing collector is provided.
	ErrNilTracingCollector = errors.New("tracing collector must not be nil")

	// ErrNilRetryable is returned when a retry behavior is created without a retryable predicate.
	ErrNilRetryable = errors.New("retryable predicate must not be nil")

	// ErrInvalidMaxAttempts is returned when max attempts are not positive.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")

	// ErrNegativeBaseDelay is returned when the base delay is negative.
	ErrNegativeBaseDelay = errors.New("base delay must not be negative")

	// ErrNonPositiveMaxDelay is returned when the max backoff delay is not positive.
	ErrNonPositiveMaxDelay = errors.New("max delay must be positive")

	// ErrInvalidJitterFactor is returned when the jitter factor is not between 0.0 and 1.0.
	ErrInvalidJitterFactor = errors.New("jitter factor must be between 0.0 and 1.0")

	// ErrNonPositiveSlowThreshold is returned when the slow request threshold is not positive.
	ErrNonPositiveSlowThreshold = errors.New("slow threshold must be positive")
)
