// Package logging sets up the process wide loggers of the mapbench tool: zerolog for the driver and, through
// slog-zerolog, the slog default handed to the maps.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

const DefaultLogLevel = slog.LevelInfo

var (
	// LogLevel Used for flags.
	LogLevel = DefaultLogLevel
	// LogJSON Used for flags.
	LogJSON bool
)

// ParseLogLevel converts a level name, case insensitive, to a slog.Level.
func ParseLogLevel(levelStr string) (slog.Level, error) {
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if strings.EqualFold(levelStr, l.String()) {
			return l, nil
		}
	}
	return DefaultLogLevel, errors.Errorf("unknown level string: '%s', defaulting to %s", levelStr, DefaultLogLevel)
}

func zerologLevel(l slog.Level) zerolog.Level {
	switch {
	case l <= slog.LevelDebug:
		return zerolog.DebugLevel
	case l <= slog.LevelInfo:
		return zerolog.InfoLevel
	case l <= slog.LevelWarn:
		return zerolog.WarnLevel
	}
	return zerolog.ErrorLevel
}

// ConfigureLogger installs the loggers according to LogLevel and LogJSON.
func ConfigureLogger() {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	zerologLogger := zerolog.New(os.Stdout).
		Level(zerologLevel(LogLevel)).
		With().
		Timestamp().
		Logger()

	if !LogJSON {
		zerologLogger = zerologLogger.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.StampMicro,
		})
	}
	log.Logger = zerologLogger

	slog.SetDefault(slog.New(
		slogzerolog.Option{
			Level:  LogLevel,
			Logger: &zerologLogger,
		}.NewZerologHandler(),
	))
}
