package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
)

// AttrUnmappedStatus carries a status that has no OpenTelemetry status code equivalent.
const AttrUnmappedStatus = "dispatch.status"

// TracingCollector implements dispatch.TracingCollector with an OpenTelemetry tracer.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a TracingCollector.
// The tracer should be created from your OpenTelemetry TracerProvider.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan starts a span as a child of the span in ctx, if any.
func (t *TracingCollector) StartSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, dispatch.SpanContext) {
	spanCtx, span := t.tracer.Start(ctx, name, trace.WithAttributes(toAttributes(attrs)...))

	return spanCtx, &SpanContext{span: span}
}

// FinishSpan sets the final attributes and status of the span and ends it.
// Span contexts not created by this collector are ignored.
func (t *TracingCollector) FinishSpan(spanCtx dispatch.SpanContext, status string, attrs map[string]string) {
	otelSpan, ok := spanCtx.(*SpanContext)
	if !ok {
		return
	}

	otelSpan.span.SetAttributes(toAttributes(attrs)...)
	otelSpan.SetStatus(status)
	otelSpan.span.End()
}

// SpanContext implements dispatch.SpanContext by wrapping an OpenTelemetry span.
type SpanContext struct {
	span trace.Span
}

// SetStatus maps a dispatch status to an OpenTelemetry status code.
func (s *SpanContext) SetStatus(status string) {
	switch status {
	case dispatch.StatusSuccess:
		s.span.SetStatus(codes.Ok, "")
	case dispatch.StatusFailure:
		s.span.SetStatus(codes.Error, "Request failed")
	case dispatch.StatusError:
		s.span.SetStatus(codes.Error, "Unexpected failure")
	case dispatch.StatusNoHandler:
		s.span.SetStatus(codes.Error, "No handler registered")
	case dispatch.StatusCanceled:
		s.span.SetStatus(codes.Error, "Operation cancelled")
	case dispatch.StatusTimeout:
		s.span.SetStatus(codes.Error, "Operation timed out")
	default:
		s.span.SetAttributes(attribute.String(AttrUnmappedStatus, status))
	}
}

// AddAttribute adds a string attribute to the span.
func (s *SpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

var (
	_ dispatch.TracingCollector = (*TracingCollector)(nil)
	_ dispatch.SpanContext      = (*SpanContext)(nil)
)
