package behaviors

import (
	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/outcome"
)

// statusOf classifies the result of the inner pipeline with the bus status vocabulary.
func statusOf(out outcome.Outcome, err error) string {
	switch {
	case err == nil && out.IsSuccess():
		return dispatch.StatusSuccess
	case err == nil:
		return dispatch.StatusFailure
	case dispatch.IsTimeoutError(err):
		return dispatch.StatusTimeout
	case dispatch.IsCancellationError(err):
		return dispatch.StatusCanceled
	default:
		return dispatch.StatusError
	}
}

// contextual returns logger as a ContextualLogger if it implements one. *slog.Logger does.
func contextual(logger dispatch.Logger) dispatch.ContextualLogger {
	if c, ok := logger.(dispatch.ContextualLogger); ok {
		return c
	}

	return nil
}
