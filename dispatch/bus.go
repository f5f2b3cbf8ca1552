package dispatch

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/AntonStoeckl/game-platform-go/outcome"
)

const (
	// MessageCancelled is the failure message of a dispatch whose context was canceled or timed out.
	MessageCancelled = "operation cancelled"

	// MessageNilRequest is the failure message of a dispatch of a nil request.
	MessageNilRequest = "request must not be nil"

	msgNoHandler        = "no handler registered for %s"
	msgRouteMismatch    = "handler for %s does not match the requested outcome type"
	msgUnexpectedFault  = "unexpected failure while handling %s"
	msgDiagnosticDetail = "%s: %v"
)

// NoHandlerMessage returns the failure message reported when no handler is registered for requestType.
func NoHandlerMessage(requestType string) string {
	return fmt.Sprintf(msgNoHandler, requestType)
}

// RouteMismatchMessage returns the failure message reported when the handler registered for requestType
// does not produce the requested outcome type.
func RouteMismatchMessage(requestType string) string {
	return fmt.Sprintf(msgRouteMismatch, requestType)
}

// UnexpectedFailureMessage returns the sanitized failure message reported for an error or panic
// while handling requestType.
func UnexpectedFailureMessage(requestType string) string {
	return fmt.Sprintf(msgUnexpectedFault, requestType)
}

// observer bundles the observability collaborators and the fault reporting mode of a bus.
type observer struct {
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
	diagnostics      bool
}

func newObserver(options []Option) (observer, error) {
	var o observer
	for _, option := range options {
		if err := option(&o); err != nil {
			return observer{}, err
		}
	}

	return o, nil
}

func (o observer) faultMessage(info RequestInfo, err error) string {
	message := UnexpectedFailureMessage(info.Type)
	if o.diagnostics {
		return fmt.Sprintf(msgDiagnosticDetail, message, err)
	}

	return message
}

// CommandBus is the entry point for commands.
type CommandBus struct {
	registry *Registry
	observer observer
}

// NewCommandBus creates a CommandBus dispatching through registry.
func NewCommandBus(registry *Registry, options ...Option) (*CommandBus, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}

	o, err := newObserver(options)
	if err != nil {
		return nil, err
	}

	return &CommandBus{registry: registry, observer: o}, nil
}

// Send dispatches a command without a declared result.
// It always returns a well-formed outcome and never panics because of the handler or a behavior.
func (b *CommandBus) Send(ctx context.Context, command Command) outcome.Outcome {
	info, message, ok := describe(KindCommand, command, func() string { return command.CommandType() })
	if !ok {
		return plainShape().fail(message)
	}

	return dispatch(ctx, b.registry, b.observer, info, plainShape(), command)
}

// SendWithResult dispatches a command declaring a result of type R.
// It always returns a well-formed outcome and never panics because of the handler or a behavior.
func SendWithResult[C Command, R any](ctx context.Context, bus *CommandBus, command C) outcome.Of[R] {
	info, message, ok := describe(KindCommandResult, command, func() string { return command.CommandType() })
	if !ok {
		return valueShape[R]().fail(message)
	}

	return dispatch(ctx, bus.registry, bus.observer, info, valueShape[R](), command)
}

// QueryBus is the entry point for queries.
type QueryBus struct {
	registry *Registry
	observer observer
}

// NewQueryBus creates a QueryBus dispatching through registry.
func NewQueryBus(registry *Registry, options ...Option) (*QueryBus, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}

	o, err := newObserver(options)
	if err != nil {
		return nil, err
	}

	return &QueryBus{registry: registry, observer: o}, nil
}

// Ask dispatches a query with a result of type R.
// It always returns a well-formed outcome and never panics because of the handler or a behavior.
func Ask[Q Query, R any](ctx context.Context, bus *QueryBus, query Q) outcome.Of[R] {
	info, message, ok := describe(KindQuery, query, func() string { return query.QueryType() })
	if !ok {
		return valueShape[R]().fail(message)
	}

	return dispatch(ctx, bus.registry, bus.observer, info, valueShape[R](), query)
}

// describe reads the type tag of request. A nil request, including a nil pointer, is rejected
// before its tag method runs; a panicking tag method is reported as an unexpected failure.
func describe(kind Kind, request any, tag func() string) (info RequestInfo, message string, ok bool) {
	if isNilRequest(request) {
		return RequestInfo{}, MessageNilRequest, false
	}

	defer func() {
		if r := recover(); r != nil {
			info, message, ok = RequestInfo{}, UnexpectedFailureMessage(fmt.Sprintf("%T", request)), false
		}
	}()

	return RequestInfo{Kind: kind, Type: tag()}, "", true
}

func isNilRequest(request any) bool {
	if request == nil {
		return true
	}

	v := reflect.ValueOf(request)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// dispatch resolves the route for info, runs its pipeline, and normalizes every failure mode into Out.
func dispatch[Out any](
	ctx context.Context,
	registry *Registry,
	o observer,
	info RequestInfo,
	s shape[Out],
	request any,
) (result Out) {
	start := time.Now()
	LogDispatchStart(ctx, o.logger, o.contextualLogger, info)
	ctx, span := StartDispatchSpan(ctx, o.tracingCollector, info)

	var (
		status string
		fault  error
	)

	defer func() {
		if r := recover(); r != nil {
			fault = fmt.Errorf("%w: %v", ErrHandlerPanicked, r)
			status = StatusError
			result = s.fail(o.faultMessage(info, fault))
		}

		duration := time.Since(start)
		LogDispatchEnd(ctx, o.logger, o.contextualLogger, info, status, len(s.bare(result).Errors()), duration, fault)
		RecordDispatchMetrics(ctx, o.metricsCollector, info, status, duration)
		FinishDispatchSpan(o.tracingCollector, span, status, duration, fault)
	}()

	if err := ctx.Err(); err != nil {
		status = cancellationStatus(err)
		return s.fail(MessageCancelled)
	}

	rt, found := registry.lookup(info.Type)
	if !found {
		status = StatusNoHandler
		fault = errors.New(NoHandlerMessage(info.Type))
		return s.fail(NoHandlerMessage(info.Type))
	}

	next, bound := bindRoute[Out](rt, info, request)
	if !bound {
		status = StatusError
		fault = fmt.Errorf("%s (registered as %s returning %q)", RouteMismatchMessage(info.Type), rt.info.Kind, rt.info.Result)
		return s.fail(RouteMismatchMessage(info.Type))
	}

	out, err := next(ctx)
	switch {
	case err == nil:
		status = outcomeStatus(s.bare(out))
		return out
	case IsCancellationError(err) || IsTimeoutError(err):
		status = cancellationStatus(err)
		return s.fail(MessageCancelled)
	case ctx.Err() != nil:
		status = cancellationStatus(ctx.Err())
		return s.fail(MessageCancelled)
	default:
		status = StatusError
		fault = err
		return s.fail(o.faultMessage(info, err))
	}
}

func bindRoute[Out any](rt route, info RequestInfo, request any) (Next[Out], bool) {
	if rt.info.Kind != info.Kind {
		return nil, false
	}

	bind, ok := rt.bind.(routeBinder[Out])
	if !ok {
		return nil, false
	}

	return bind(request)
}

func outcomeStatus(o outcome.Outcome) string {
	if o.IsSuccess() {
		return StatusSuccess
	}

	return StatusFailure
}

func cancellationStatus(err error) string {
	if IsTimeoutError(err) {
		return StatusTimeout
	}

	return StatusCanceled
}
