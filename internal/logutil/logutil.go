package logutil

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cloud.google.com/go/compute/metadata"
)

// ConfigureLogger sets up the global logger. On GCE, entries carry a
// severity field understood by Cloud Logging, elsewhere they go to a
// console writer on stderr.
func ConfigureLogger(level zerolog.Level) {
	configure(level, metadata.OnGCE(), os.Stderr)
}

func configure(level zerolog.Level, onGCE bool, w io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(w).With().Timestamp().Caller().Stack().Logger()
	if onGCE {
		logger = logger.Hook(SeverityHook{})
	} else {
		logger = logger.Output(zerolog.ConsoleWriter{Out: w, NoColor: true})
	}
	log.Logger = logger.Sample(LevelSampler{Level: level})
}

// ParseLevel parses a level name, an empty name is info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(s)
}

type SeverityHook struct{}

func (h SeverityHook) Run(e *zerolog.Event, level zerolog.Level, _ string) {
	e.Str("severity", level.String())
}
