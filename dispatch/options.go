package dispatch

// Option defines a functional option for configuring a CommandBus or QueryBus.
type Option func(*observer) error

// WithLogger sets the logger for the bus.
//
// Info level: dispatch start and completion with request type, status and duration
// Warn level: canceled dispatches
// Error level: missing handlers, unanticipated errors and panics with full detail.
func WithLogger(logger Logger) Option {
	return func(o *observer) error {
		o.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the bus.
// It takes precedence over a logger set with WithLogger.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(o *observer) error {
		o.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the bus.
// It receives dispatch durations and counters for calls, cancellations, timeouts and faults.
func WithMetrics(collector MetricsCollector) Option {
	return func(o *observer) error {
		o.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the bus. Every dispatch gets one span.
func WithTracing(collector TracingCollector) Option {
	return func(o *observer) error {
		o.tracingCollector = collector
		return nil
	}
}

// WithDiagnostics makes fault outcomes carry the underlying error detail.
// Without it the caller only sees a sanitized message; the detail is always logged.
func WithDiagnostics(enabled bool) Option {
	return func(o *observer) error {
		o.diagnostics = enabled
		return nil
	}
}
