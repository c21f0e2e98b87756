package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGet(t *testing.T) {
	logger1 := Get()
	require.NotNil(t, logger1)

	logger2 := Get()
	assert.Same(t, logger1, logger2)
}

func TestFromCtx(t *testing.T) {
	ctx := WithCtx(context.Background(), Get())

	loggerFromCtx := FromCtx(ctx)

	assert.Same(t, Get(), loggerFromCtx)

	customLogger := Get().With("custom", "value")
	ctxWithCustomLogger := WithCtx(ctx, customLogger)

	loggerFromCustomCtx := FromCtx(ctxWithCustomLogger)

	assert.Same(t, customLogger, loggerFromCustomCtx)
}

func TestFromCtx_WithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zapcore.InfoLevel, true)
	ctx := WithCtx(context.Background(), l)

	FromCtx(ctx, "section", "ranked").Info("rendered")
	require.NoError(t, l.Sync())

	assert.Contains(t, buf.String(), `"section":"ranked"`)
	assert.Contains(t, buf.String(), `"msg":"rendered"`)
}

func TestWithSameLogger(t *testing.T) {
	ctx := context.Background()
	logger := Get()

	newCtx := WithCtx(ctx, logger)

	assert.Same(t, newCtx, WithCtx(newCtx, logger))
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zapcore.WarnLevel, false)

	l.Info("hidden")
	l.Warn("shown")
	require.NoError(t, l.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
