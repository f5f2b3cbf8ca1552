package behaviors

import (
	"context"
	"time"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/outcome"
)

const (
	// LogMsgHandlingStarted is logged at debug level before the inner pipeline runs.
	LogMsgHandlingStarted = "request handling started"

	// LogMsgHandled is logged when the inner pipeline produced an outcome.
	LogMsgHandled = "request handled"

	// LogMsgHandlingCanceled is logged when the inner pipeline was canceled or timed out.
	LogMsgHandlingCanceled = "request handling canceled"

	// LogMsgHandlingFailed is logged when the inner pipeline returned an error.
	LogMsgHandlingFailed = "request handling failed"
)

// Logging is an open behavior that logs every request before and after the inner pipeline.
type Logging struct {
	logger           dispatch.Logger
	contextualLogger dispatch.ContextualLogger
}

// NewLogging creates a Logging behavior.
// If logger also implements dispatch.ContextualLogger, the context-aware methods are used.
func NewLogging(logger dispatch.Logger) (*Logging, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}

	return &Logging{logger: logger, contextualLogger: contextual(logger)}, nil
}

// Handle implements dispatch.OpenBehavior.
func (l *Logging) Handle(
	ctx context.Context,
	info dispatch.RequestInfo,
	_ any,
	next dispatch.Next[outcome.Outcome],
) (outcome.Outcome, error) {
	args := []any{
		dispatch.LogAttrRequestType, info.Type,
		dispatch.LogAttrRequestKind, info.Kind.String(),
	}
	l.log(ctx, levelDebug, LogMsgHandlingStarted, args)

	start := time.Now()
	out, err := next(ctx)
	status := statusOf(out, err)

	args = append(args,
		dispatch.LogAttrStatus, status,
		dispatch.LogAttrDurationMS, dispatch.ToMilliseconds(time.Since(start)),
	)

	switch status {
	case dispatch.StatusSuccess, dispatch.StatusFailure:
		l.log(ctx, levelInfo, LogMsgHandled, append(args, dispatch.LogAttrErrorCount, len(out.Errors())))
	case dispatch.StatusCanceled, dispatch.StatusTimeout:
		l.log(ctx, levelWarn, LogMsgHandlingCanceled, args)
	default:
		l.log(ctx, levelError, LogMsgHandlingFailed, append(args, dispatch.LogAttrError, err.Error()))
	}

	return out, err
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

func (l *Logging) log(ctx context.Context, lvl level, msg string, args []any) {
	logWith(ctx, l.logger, l.contextualLogger, lvl, msg, args)
}

func logWith(
	ctx context.Context,
	logger dispatch.Logger,
	contextualLogger dispatch.ContextualLogger,
	lvl level,
	msg string,
	args []any,
) {
	if contextualLogger != nil {
		switch lvl {
		case levelDebug:
			contextualLogger.DebugContext(ctx, msg, args...)
		case levelInfo:
			contextualLogger.InfoContext(ctx, msg, args...)
		case levelWarn:
			contextualLogger.WarnContext(ctx, msg, args...)
		default:
			contextualLogger.ErrorContext(ctx, msg, args...)
		}

		return
	}

	if logger == nil {
		return
	}

	switch lvl {
	case levelDebug:
		logger.Debug(msg, args...)
	case levelInfo:
		logger.Info(msg, args...)
	case levelWarn:
		logger.Warn(msg, args...)
	default:
		logger.Error(msg, args...)
	}
}
