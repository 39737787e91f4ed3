package libemit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := newZapLogger(zap.New(core))

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	l.Warnf("warn %d", 3)
	l.Errorf("error %d", 4)

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "debug 1", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "error 4", entries[3].Message)
}

func TestZapLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	parent := newZapLogger(zap.New(core))
	child := parent.WithField("type", "child")

	parent.Infof("from parent")
	child.Infof("from child")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.NotContains(t, entries[0].ContextMap(), "type")
	assert.Equal(t, "child", entries[1].ContextMap()["type"])
}

func TestZapLogger_NilIsNop(t *testing.T) {
	assert.NotPanics(t, func() {
		newZapLogger(nil).WithField("k", "v").Errorf("dropped")
	})
}

func TestEmitter_LogsOnceRemoval(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	emitter := New(WithLogger(zap.New(core)))

	require.NoError(t, emitter.Once("foo", NewListener(noop)))
	require.NoError(t, emitter.Emit("foo", nil))

	assert.Equal(t, 1, logs.FilterMessage(`removed once listener of "foo"`).Len())
}
