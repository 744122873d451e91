package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    core.LogLevel
		wantErr bool
	}{
		{"debug", core.LogLevelDebug, false},
		{"INFO", core.LogLevelInfo, false},
		{"", core.LogLevelInfo, false},
		{"warn", core.LogLevelWarn, false},
		{"error", core.LogLevelError, false},
		{"verbose", core.LogLevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogLevelString(t *testing.T) {
	for _, name := range []string{"debug", "info", "warn", "error"} {
		level, err := ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, name, level.String())
	}
	assert.Equal(t, "unknown", core.LogLevel(42).String())
}

func TestZapLogger_LevelFiltering(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLoggerWithCore(obsCore, core.LogLevelWarn)

	log.Debug("debug line", nil)
	log.Info("info line", nil)
	log.Warn("warn line", map[string]any{"wallet_id": uint64(7)})
	log.Error("error line", map[string]any{"error": errors.New("boom")})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "warn line", entries[0].Message)
	assert.Equal(t, uint64(7), entries[0].ContextMap()["wallet_id"])
	assert.Equal(t, "error line", entries[1].Message)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])

	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	log.Debug("now visible", nil)
	assert.Equal(t, 1, logs.FilterMessage("now visible").Len())
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, log.GetLevel())
	assert.NotPanics(t, func() {
		log.Info("ignored", map[string]any{"k": "v"})
	})
	assert.NoError(t, log.Flush())
}
