package dispatch

import (
	"context"

	"github.com/AntonStoeckl/game-platform-go/outcome"
)

// CommandHandler handles a command that does not declare a result.
//
// Expected business failures are returned as failure outcomes.
// A returned error signals an unanticipated fault; the bus converts it into a failure outcome.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (outcome.Outcome, error)
}

// CommandResultHandler handles a command that declares a result of type R.
type CommandResultHandler[C Command, R any] interface {
	Handle(ctx context.Context, command C) (outcome.Of[R], error)
}

// QueryHandler handles a query with a result of type R.
type QueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (outcome.Of[R], error)
}

// CommandHandlerFunc adapts a function to a CommandHandler.
type CommandHandlerFunc[C Command] func(ctx context.Context, command C) (outcome.Outcome, error)

// Handle calls f(ctx, command).
func (f CommandHandlerFunc[C]) Handle(ctx context.Context, command C) (outcome.Outcome, error) {
	return f(ctx, command)
}

// CommandResultHandlerFunc adapts a function to a CommandResultHandler.
type CommandResultHandlerFunc[C Command, R any] func(ctx context.Context, command C) (outcome.Of[R], error)

// Handle calls f(ctx, command).
func (f CommandResultHandlerFunc[C, R]) Handle(ctx context.Context, command C) (outcome.Of[R], error) {
	return f(ctx, command)
}

// QueryHandlerFunc adapts a function to a QueryHandler.
type QueryHandlerFunc[Q Query, R any] func(ctx context.Context, query Q) (outcome.Of[R], error)

// Handle calls f(ctx, query).
func (f QueryHandlerFunc[Q, R]) Handle(ctx context.Context, query Q) (outcome.Of[R], error) {
	return f(ctx, query)
}

// HandlerFactory resolves a handler per dispatch, e.g. one bound to a request-scoped transaction.
type HandlerFactory[H any] func(ctx context.Context) (H, error)
