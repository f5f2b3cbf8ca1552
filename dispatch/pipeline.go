package dispatch

import "context"

// Execute runs request through behaviors around terminal.
//
// The continuation is built from the last behavior to the first, so the first behavior is the
// outermost: its code before next runs first and its code after next runs last.
// Without behaviors terminal is invoked directly.
func Execute[Req, Out any](
	ctx context.Context,
	request Req,
	behaviors []Behavior[Req, Out],
	terminal Next[Out],
) (Out, error) {
	if len(behaviors) == 0 {
		return terminal(ctx)
	}

	next := terminal
	for i := len(behaviors) - 1; i >= 0; i-- {
		next = wrap(behaviors[i], request, next)
	}

	return next(ctx)
}

func wrap[Req, Out any](behavior Behavior[Req, Out], request Req, next Next[Out]) Next[Out] {
	return func(ctx context.Context) (Out, error) {
		return behavior(ctx, request, next)
	}
}
