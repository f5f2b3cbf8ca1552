package dispatch

import (
	"context"
	"fmt"

	"github.com/AntonStoeckl/game-platform-go/outcome"
)

// Next invokes the rest of the pipeline: the inner behaviors and finally the handler.
type Next[Out any] func(ctx context.Context) (Out, error)

// Behavior intercepts the dispatch of requests of type Req producing Out.
//
// A behavior may run code before and after calling next. Not calling next short-circuits the
// pipeline: inner behaviors and the handler do not run and the behavior's outcome is returned as is.
// Errors should be passed through untouched; the bus converts them.
type Behavior[Req, Out any] func(ctx context.Context, request Req, next Next[Out]) (Out, error)

// OpenBehavior intercepts every dispatched request regardless of its type.
//
// It observes the value-less view of the outcome. Returning the outcome obtained from next
// unchanged hands the original typed outcome back to the caller. A failure returned instead
// is converted to the request's outcome type. Fabricating a success for a request whose
// outcome carries a value is a fault, because there is no value to carry.
type OpenBehavior interface {
	Handle(ctx context.Context, info RequestInfo, request any, next Next[outcome.Outcome]) (outcome.Outcome, error)
}

// OpenBehaviorFunc adapts a function to an OpenBehavior.
type OpenBehaviorFunc func(
	ctx context.Context,
	info RequestInfo,
	request any,
	next Next[outcome.Outcome],
) (outcome.Outcome, error)

// Handle calls f(ctx, info, request, next).
func (f OpenBehaviorFunc) Handle(
	ctx context.Context,
	info RequestInfo,
	request any,
	next Next[outcome.Outcome],
) (outcome.Outcome, error) {
	return f(ctx, info, request, next)
}

// shape converts between a route's outcome type and the value-less view open behaviors work with.
type shape[Out any] struct {
	bare func(Out) outcome.Outcome
	lift func(outcome.Outcome) (Out, error)
}

func (s shape[Out]) fail(message string) Out {
	out, _ := s.lift(outcome.Failure(message)) // lifting a failure never fails

	return out
}

func plainShape() shape[outcome.Outcome] {
	return shape[outcome.Outcome]{
		bare: func(o outcome.Outcome) outcome.Outcome { return o },
		lift: func(o outcome.Outcome) (outcome.Outcome, error) { return o, nil },
	}
}

func valueShape[R any]() shape[outcome.Of[R]] {
	return shape[outcome.Of[R]]{
		bare: outcome.Of[R].Bare,
		lift: outcome.FailureOfOutcome[R],
	}
}

// adaptOpen turns an OpenBehavior into a Behavior bound to one route.
func adaptOpen[Req, Out any](info RequestInfo, open OpenBehavior, s shape[Out]) Behavior[Req, Out] {
	return func(ctx context.Context, request Req, next Next[Out]) (Out, error) {
		var (
			inner     Out
			innerBare outcome.Outcome
			passed    bool
		)

		bareNext := func(ctx context.Context) (outcome.Outcome, error) {
			out, err := next(ctx)
			if err != nil {
				passed = false
				return outcome.Outcome{}, err
			}

			inner, innerBare, passed = out, s.bare(out), true

			return innerBare, nil
		}

		result, err := open.Handle(ctx, info, request, bareNext)
		if err != nil {
			var zero Out
			return zero, err
		}

		if passed && result.Equal(innerBare) {
			return inner, nil
		}

		out, err := s.lift(result)
		if err != nil {
			var zero Out
			return zero, fmt.Errorf("open behavior %T for %s: %w", open, info.Type, err)
		}

		return out, nil
	}
}
