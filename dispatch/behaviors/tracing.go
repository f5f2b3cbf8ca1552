package behaviors

import (
	"context"
	"time"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/outcome"
)

// SpanNamePipeline is the tracing span name for the pipeline inside the Tracing behavior.
const SpanNamePipeline = "dispatch.pipeline"

// Tracing is an open behavior that opens a child span around the inner pipeline.
// The span context is passed on, so spans started by handlers nest below it.
type Tracing struct {
	tracingCollector dispatch.TracingCollector
}

// NewTracing creates a Tracing behavior.
func NewTracing(collector dispatch.TracingCollector) (*Tracing, error) {
	if collector == nil {
		return nil, ErrNilTracingCollector
	}

	return &Tracing{tracingCollector: collector}, nil
}

// Handle implements dispatch.OpenBehavior.
func (t *Tracing) Handle(
	ctx context.Context,
	info dispatch.RequestInfo,
	_ any,
	next dispatch.Next[outcome.Outcome],
) (outcome.Outcome, error) {
	spanCtx, span := t.tracingCollector.StartSpan(ctx, SpanNamePipeline, map[string]string{
		dispatch.LogAttrRequestType: info.Type,
		dispatch.LogAttrRequestKind: info.Kind.String(),
	})

	start := time.Now()
	out, err := next(spanCtx)

	dispatch.FinishDispatchSpan(t.tracingCollector, span, statusOf(out, err), time.Since(start), err)

	return out, err
}
