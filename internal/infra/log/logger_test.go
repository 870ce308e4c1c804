package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"insulink/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_ComponentLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, config.Log{
		Level:      "info",
		Components: map[string]string{"gorm": "debug", "Badger": "error"},
	})
	require.NoError(t, err)

	logger.Debug("base debug")
	Component(logger, "gorm").Debug("gorm debug")
	Component(logger, "badger").Warn("badger warn")
	Component(logger, "badger").Error("badger error")
	Component(logger, "mongo").Debug("mongo debug")
	Component(logger, "mongo").Info("mongo info")

	out := buf.String()
	assert.NotContains(t, out, "base debug")
	assert.Contains(t, out, "gorm debug")
	assert.NotContains(t, out, "badger warn")
	assert.Contains(t, out, "badger error")
	assert.NotContains(t, out, "mongo debug")
	assert.Contains(t, out, "mongo info")
}

func TestNewLogger_InvalidComponentLevel(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, config.Log{
		Level:      "info",
		Components: map[string]string{"gorm": "loud"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "component gorm")
}
