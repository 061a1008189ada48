package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_FieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewFromZap(zap.New(core))

	l.Debug("hidden")
	l.Info("request", Field{Key: "path", Value: "/api/scrape"}, Field{Key: "status", Value: 200})
	l.Error("failed", Field{Key: "error", Value: errors.New("boom")})

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "request", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "/api/scrape", ctx["path"])
	assert.EqualValues(t, 200, ctx["status"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestZapLogger_WithKeepsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core)).With(Field{Key: "component", Value: "demoserver"})

	l.Warn("slow")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "demoserver", logs.All()[0].ContextMap()["component"])
}

func TestNewZapLogger_RejectsBadLevel(t *testing.T) {
	_, err := NewZapLogger(Options{Level: "loud"})
	require.Error(t, err)

	l, err := NewZapLogger(Options{Level: "debug", Format: "development", Component: "test"})
	require.NoError(t, err)
	require.NotNil(t, l)
}
