package logging

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"error", zapcore.ErrorLevel},
		{"warn", zapcore.WarnLevel},
		{"", zapcore.WarnLevel},
		{"bogus", zapcore.WarnLevel},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseLevel(tc.in), "level %q", tc.in)
	}
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(Config{Level: "info", Format: "console"})
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestNewLoggerWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	log, err := NewLogger(Config{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)
	log.Info("hello")
}

func TestObservedFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewLoggerFromCore(core)

	log.With(String("run_id", "abc")).Info("pass complete",
		Int("rows_read", 3),
		Err(errors.New("boom")),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "pass complete", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "abc", fields["run_id"])
	assert.EqualValues(t, 3, fields["rows_read"])
	assert.Equal(t, "boom", fields["error"])
}

func TestNamed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewLoggerFromCore(core).Named("normalize")

	log.Debug("row dropped")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "normalize", logs.All()[0].LoggerName)
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()
	// Must be callable without panicking and chain correctly.
	log.With(String("k", "v")).Named("x").Debug("ignored")
	log.Info("ignored")
	log.Warn("ignored")
	log.Error("ignored", Err(nil))
}

func TestDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	require.NotNil(t, Default())
	SetDefault(nil) // nil is ignored
	require.NotNil(t, Default())

	log := NewNopLogger()
	SetDefault(log)
	assert.Equal(t, log, Default())
}
