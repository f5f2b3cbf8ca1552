package behaviors_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/dispatch/behaviors"
	"github.com/AntonStoeckl/game-platform-go/outcome"
	"github.com/AntonStoeckl/game-platform-go/testutil/observability/testdoubles"
)

func Test_NewLogging_RequiresLogger(t *testing.T) {
	_, err := behaviors.NewLogging(nil)

	assert.ErrorIs(t, err, behaviors.ErrNilLogger)
}

func Test_Logging_LogsBeforeAndAfterInnerPipeline(t *testing.T) {
	// arrange
	logger := testdoubles.NewContextualLoggerSpy(true)
	logging, err := behaviors.NewLogging(asLogger(logger))
	require.NoError(t, err)

	calls := &counter{}
	_, queryBus := buildBuses(t, behaviorsModule(logging), guildsModule(calls))

	// act
	result := dispatch.Ask[guildByTag, string](context.Background(), queryBus, guildByTag{Tag: "none"})

	// assert
	assert.True(t, result.IsFailure())
	assert.True(t, logger.HasLog("debug", behaviors.LogMsgHandlingStarted))

	handled := logger.GetRecordsForLevel("info")
	require.Len(t, handled, 1)
	assert.Equal(t, behaviors.LogMsgHandled, handled[0].Message)
	assert.Equal(t, guildByTagType, handled[0].Attr(dispatch.LogAttrRequestType))
	assert.Equal(t, dispatch.StatusFailure, handled[0].Attr(dispatch.LogAttrStatus))
	assert.Equal(t, 1, handled[0].Attr(dispatch.LogAttrErrorCount))
}

func Test_Logging_LogsErrorsAndPassesThemOn(t *testing.T) {
	// arrange
	logger := testdoubles.NewContextualLoggerSpy(true)
	logging, err := behaviors.NewLogging(asLogger(logger))
	require.NoError(t, err)
	boom := errors.New("store unavailable")

	// act
	_, handleErr := logging.Handle(context.Background(), createGuildInfo, createGuild{},
		func(context.Context) (outcome.Outcome, error) { return outcome.Outcome{}, boom })

	// assert
	assert.ErrorIs(t, handleErr, boom)

	failed := logger.GetRecordsForLevel("error")
	require.Len(t, failed, 1)
	assert.Equal(t, behaviors.LogMsgHandlingFailed, failed[0].Message)
	assert.Equal(t, "store unavailable", failed[0].Attr(dispatch.LogAttrError))
}

func Test_Logging_LogsCancellationAtWarnLevel(t *testing.T) {
	// arrange
	logger := testdoubles.NewContextualLoggerSpy(true)
	logging, err := behaviors.NewLogging(asLogger(logger))
	require.NoError(t, err)

	// act
	_, _ = logging.Handle(context.Background(), createGuildInfo, createGuild{},
		func(context.Context) (outcome.Outcome, error) { return outcome.Outcome{}, context.DeadlineExceeded })

	// assert
	canceled := logger.GetRecordsForLevel("warn")
	require.Len(t, canceled, 1)
	assert.Equal(t, behaviors.LogMsgHandlingCanceled, canceled[0].Message)
	assert.Equal(t, dispatch.StatusTimeout, canceled[0].Attr(dispatch.LogAttrStatus))
}

func Test_Logging_UsesPlainLoggerMethods(t *testing.T) {
	// arrange
	handler := testdoubles.NewLogHandlerSpy(false)
	logging, err := behaviors.NewLogging(slog.New(handler))
	require.NoError(t, err)

	// act
	_, _ = logging.Handle(context.Background(), createGuildInfo, createGuild{}, successNext)

	// assert
	assert.True(t, handler.HasRecord(slog.LevelDebug, behaviors.LogMsgHandlingStarted))
	assert.True(t, handler.HasRecord(slog.LevelInfo, behaviors.LogMsgHandled))
}

// plainLogger forwards the non-context methods of dispatch.Logger to a ContextualLoggerSpy,
// and exposes the spy's context-aware methods so the behavior prefers them.
type plainLogger struct {
	*testdoubles.ContextualLoggerSpy
}

func asLogger(spy *testdoubles.ContextualLoggerSpy) plainLogger {
	return plainLogger{ContextualLoggerSpy: spy}
}

func (l plainLogger) Debug(msg string, args ...any) { l.DebugContext(context.Background(), msg, args...) }
func (l plainLogger) Info(msg string, args ...any)  { l.InfoContext(context.Background(), msg, args...) }
func (l plainLogger) Warn(msg string, args ...any)  { l.WarnContext(context.Background(), msg, args...) }
func (l plainLogger) Error(msg string, args ...any) { l.ErrorContext(context.Background(), msg, args...) }
