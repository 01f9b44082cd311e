package observability

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger builds the process logger and installs it as the zerolog global
func InitLogger(app, level string) zerolog.Logger {
	return initLogger(os.Stdout, app, level)
}

func initLogger(out io.Writer, app, level string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	lvl, ok := ParseLevel(level)
	if !ok {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(output).Level(lvl).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}

// Component returns a child logger tagged with the component name
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

// ParseLevel wraps zerolog.ParseLevel, ignoring case and surrounding space,
// and accepts "warning", "off" and "none". ok is false for an empty or
// unknown level.
func ParseLevel(raw string) (lvl zerolog.Level, ok bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch raw {
	case "":
		return zerolog.InfoLevel, false
	case "warning":
		raw = zerolog.WarnLevel.String()
	case "off", "none":
		raw = "disabled"
	}

	lvl, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.InfoLevel, false
	}
	return lvl, true
}
