package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestCoreCheck(t *testing.T) {
	core := NewCore(zapcore.ErrorLevel)

	errEntry := zapcore.Entry{Level: zapcore.ErrorLevel, Message: "boom"}
	checked := core.Check(errEntry, nil)
	assert.NotNil(t, checked)

	infoEntry := zapcore.Entry{Level: zapcore.InfoLevel, Message: "fine"}
	assert.Nil(t, core.Check(infoEntry, nil))
}

func TestCoreWriteBelowErrorIsNoop(t *testing.T) {
	core := NewCore(zapcore.ErrorLevel)

	entry := zapcore.Entry{Level: zapcore.WarnLevel, Message: "warning"}
	require.NoError(t, core.(*Core).Write(entry, nil))
}

func TestCoreWriteForwardsErrors(t *testing.T) {
	core := NewCore(zapcore.ErrorLevel)

	// With no tracer provider configured the span is a no-op, but the write
	// path itself must succeed.
	entry := zapcore.Entry{Level: zapcore.ErrorLevel, Message: "boom"}
	require.NoError(t, core.(*Core).Write(entry, []zapcore.Field{
		{Key: "groupID", Type: zapcore.StringType, String: "abc"},
	}))
}

func TestErrorCategory(t *testing.T) {
	tests := []struct {
		function string
		expected string
	}{
		{function: "github.com/QVllasa/signalleague/internal/database/models.(*GroupModel).GetGroupMeta", expected: "database"},
		{function: "github.com/QVllasa/signalleague/internal/redis.(*Manager).GetClient", expected: "redis"},
		{function: "github.com/QVllasa/signalleague/internal/scoring.TierScore", expected: "scoring"},
		{function: "github.com/QVllasa/signalleague/internal/classifier.Classify", expected: "classifier"},
		{function: "github.com/QVllasa/signalleague/internal/worker/recalc.(*Worker).runPass", expected: "worker"},
		{function: "github.com/QVllasa/signalleague/internal/setup.InitializeApp", expected: "setup"},
		{function: "main.run", expected: "application"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			ent := zapcore.Entry{Caller: zapcore.EntryCaller{Function: tt.function}}
			assert.Equal(t, tt.expected, errorCategory(ent))
		})
	}
}
