// Package testdoubles provides test doubles (spies) for the dispatch observability interfaces.
//
//   - MetricsCollectorSpy: captures metrics recording calls for verification
//   - TracingCollectorSpy: captures tracing spans with their start and finish attributes
//   - ContextualLoggerSpy: captures structured logging with context
//   - LogHandlerSpy: captures slog records for tests of slog-based loggers
//
// These test doubles make dispatch instrumentation testable without telemetry backends.
package testdoubles
