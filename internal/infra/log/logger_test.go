package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"trinity/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_JSONCarriesServiceAttrs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "trinity"
	cfg.Env.Env = "develop"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := build(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "trinity", entry["service"])
	assert.Equal(t, "develop", entry["env"])
}
