package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferLogger_CapturesLevels(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("poll tick %d", 1)
	l.Info("connected to %s", "backend")
	l.Warn("slow response")
	l.Error("fetch failed: %v", "timeout")

	require.Len(t, l.Messages, 4)
	assert.Equal(t, "debug", l.Messages[0].Level)
	assert.Equal(t, "poll tick 1", l.Messages[0].Message)
	assert.Equal(t, "connected to backend", l.Messages[1].Message)
	assert.True(t, l.HasLevel("warn"))
	assert.True(t, l.HasLevel("error"))
	assert.False(t, l.HasLevel("fatal"))
}

func TestBufferLogger_Clear(t *testing.T) {
	l := NewBufferLogger()
	l.Info("something")
	require.Len(t, l.Messages, 1)

	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestNoop_DiscardsEverything(t *testing.T) {
	l := Noop()

	// Must not panic; there is nothing to observe.
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
}

func TestSetDefault(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	buf := NewBufferLogger()
	SetDefault(buf)
	Default().Info("hello")

	require.Len(t, buf.Messages, 1)
	assert.Equal(t, "hello", buf.Messages[0].Message)
}

func TestEnvLogger_DebugGated(t *testing.T) {
	t.Setenv("NOC_DEBUG", "")

	// With NOC_DEBUG unset Debug is a no-op.
	l := NewEnvLogger("[test]")
	l.Debug("hidden")

	t.Setenv("NOC_DEBUG", "1")
	l.Debug("visible")
}
