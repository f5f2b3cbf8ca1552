package oteladapters_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/dispatch/oteladapters"
)

func Test_SlogBridgeLogger_WritesAllLevelsToHandler(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	// act
	logger.DebugContext(ctx, "debug message")
	logger.InfoContext(ctx, "info message", dispatch.LogAttrRequestType, "SpawnMonster")
	logger.Warn("warn message")
	logger.Error("error message")

	// assert
	output := buf.String()
	assert.Contains(t, output, `"level":"DEBUG","msg":"debug message"`)
	assert.Contains(t, output, `"msg":"info message","request_type":"SpawnMonster"`)
	assert.Contains(t, output, `"level":"WARN","msg":"warn message"`)
	assert.Contains(t, output, `"level":"ERROR","msg":"error message"`)
}

func Test_SlogBridgeLogger_UsesGlobalProviderWithoutPanicking(t *testing.T) {
	// arrange
	logger := oteladapters.NewSlogBridgeLogger("test")
	provider := sdktrace.NewTracerProvider()
	defer func() { _ = provider.Shutdown(context.Background()) }()
	ctx, span := provider.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	// act & assert
	assert.NotPanics(t, func() {
		logger.InfoContext(ctx, "with trace context")
		logger.Debug("without context")
	})
}

// recordingLogger captures emitted OpenTelemetry log records.
type recordingLogger struct {
	noop.Logger
	mu      sync.Mutex
	records []log.Record
}

func (l *recordingLogger) Emit(_ context.Context, record log.Record) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, record)
}

func attributesOf(record log.Record) map[string]log.Value {
	attrs := map[string]log.Value{}
	record.WalkAttributes(func(kv log.KeyValue) bool {
		attrs[kv.Key] = kv.Value
		return true
	})

	return attrs
}

func Test_OTelLogger_EmitsRecordsWithTypedAttributes(t *testing.T) {
	// arrange
	sink := &recordingLogger{}
	logger := oteladapters.NewOTelLogger(sink)

	// act
	logger.WarnContext(context.Background(), "dispatch canceled",
		dispatch.LogAttrRequestType, "SpawnMonster",
		dispatch.LogAttrErrorCount, 2,
		dispatch.LogAttrDurationMS, 1.5,
		dispatch.LogAttrError, errors.New("boom"),
		42, "ignored",
	)

	// assert
	require.Len(t, sink.records, 1)
	record := sink.records[0]
	assert.Equal(t, log.SeverityWarn, record.Severity())
	assert.Equal(t, "dispatch canceled", record.Body().AsString())

	attrs := attributesOf(record)
	assert.Len(t, attrs, 4)
	assert.Equal(t, "SpawnMonster", attrs[dispatch.LogAttrRequestType].AsString())
	assert.Equal(t, int64(2), attrs[dispatch.LogAttrErrorCount].AsInt64())
	assert.InDelta(t, 1.5, attrs[dispatch.LogAttrDurationMS].AsFloat64(), 0.0001)
	assert.Equal(t, "boom", attrs[dispatch.LogAttrError].AsString())
}

func Test_OTelLogger_WiredIntoCommandBus(t *testing.T) {
	// arrange
	sink := &recordingLogger{}
	bus := commandBus(t, dispatch.WithContextualLogger(oteladapters.NewOTelLogger(sink)))

	// act
	bus.Send(context.Background(), spawnMonster{Kind: "goblin"})

	// assert
	require.Len(t, sink.records, 2)
	assert.Equal(t, dispatch.LogMsgDispatchStarted, sink.records[0].Body().AsString())
	assert.Equal(t, dispatch.LogMsgDispatchCompleted, sink.records[1].Body().AsString())
	assert.Equal(t, log.SeverityInfo, sink.records[1].Severity())
}
