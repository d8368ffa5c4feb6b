package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantLevel zerolog.Level
		wantDebug bool
	}{
		{name: "default", debug: false, wantLevel: zerolog.InfoLevel, wantDebug: false},
		{name: "debug", debug: true, wantLevel: zerolog.DebugLevel, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "textmod.log")

			logger, closer := setupLogging(tt.debug, path)
			assert.Equal(t, tt.wantLevel, logger.GetLevel())

			logger.Info().Msg("info line")
			logger.Debug().Msg("debug line")
			require.NoError(t, closer.Close())

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), "info line")
			if tt.wantDebug {
				assert.Contains(t, string(data), "debug line")
			} else {
				assert.NotContains(t, string(data), "debug line")
			}
		})
	}
}

func TestSetupLogging_UnopenableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "textmod.log")

	logger, closer := setupLogging(false, path)
	defer closer.Close()

	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}
