package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeno-lang/zeno/alloc"
	"github.com/zeno-lang/zeno/reader"
)

func TestNewFormats(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "json", "debug")
	require.NoError(t, err)
	l.WithFile("main.zn").LogForm(context.Background(), 0, 12, 5)
	assert.Contains(t, buf.String(), `"msg":"form read"`)
	assert.Contains(t, buf.String(), `"file":"main.zn"`)
	assert.Contains(t, buf.String(), `"loc":12`)

	buf.Reset()
	l, err = New(&buf, "text", "info")
	require.NoError(t, err)
	l.LogForm(context.Background(), 0, 0, 1)
	assert.Empty(t, buf.String(), "debug record below info level")

	_, err = New(&buf, "xml", "info")
	assert.Error(t, err)
	_, err = New(&buf, "text", "loud")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestLogParseError(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, slog.LevelDebug)
	err := &reader.Error{Kind: reader.UnterminatedTuple, Loc: 7, Msg: "missing closing parenthesis"}
	l.LogParseError(context.Background(), err, 2, 3)

	out := buf.String()
	assert.Contains(t, out, `"kind":"missing closing parenthesis"`)
	assert.Contains(t, out, `"loc":7`)
	assert.Contains(t, out, `"line":2`)
	assert.Contains(t, out, `"level":"INFO"`)
}

func TestLogLoadAndArena(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf, slog.LevelDebug).WithWorker(3)
	ctx := context.Background()

	l.LogLoad(ctx, "a.zn", 10, nil)
	l.LogLoad(ctx, "b.zn", 0, errors.New("boom"))
	l.LogArena(ctx, alloc.ArenaMetrics{Used: 64, Capacity: 8096, Grows: 1})
	l.LogFatal(ctx, &alloc.FatalError{Op: "arena.Resize", Err: alloc.ErrUnsupported})

	out := buf.String()
	assert.Contains(t, out, "source loaded")
	assert.Contains(t, out, "load failed")
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "capacity=8096")
	assert.Contains(t, out, "op=arena.Resize")
	assert.Contains(t, out, "worker=3")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
