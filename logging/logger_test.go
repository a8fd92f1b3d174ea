package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	l, err := ParseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = ParseLogLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	l, err = ParseLogLevel("verbose")
	assert.Error(t, err)
	assert.Equal(t, DefaultLogLevel, l)
}

func TestConfigureLogger(t *testing.T) {
	LogLevel, LogJSON = slog.LevelWarn, true
	defer func() { LogLevel, LogJSON = DefaultLogLevel, false }()

	ConfigureLogger()
	assert.Equal(t, zerolog.WarnLevel, log.Logger.GetLevel())
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelError))
}
