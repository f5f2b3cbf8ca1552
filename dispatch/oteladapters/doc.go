// Package oteladapters implements the dispatch observability interfaces with OpenTelemetry.
//
// Wire them into the buses and the behaviors:
//
//	tracing := oteladapters.NewTracingCollector(tracerProvider.Tracer("game-platform"))
//	metrics := oteladapters.NewMetricsCollector(meterProvider.Meter("game-platform"))
//	logger := oteladapters.NewSlogBridgeLogger("game-platform")
//
//	commandBus, err := dispatch.NewCommandBus(registry,
//		dispatch.WithTracing(tracing),
//		dispatch.WithMetrics(metrics),
//		dispatch.WithContextualLogger(logger),
//	)
package oteladapters
