package logutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	gojson "github.com/goccy/go-json"
)

func TestConfigureLoggerSeverity(t *testing.T) {
	defer func(l zerolog.Logger) { log.Logger = l }(log.Logger)

	var buf bytes.Buffer
	configure(zerolog.InfoLevel, true, &buf)
	log.Warn().Str("trace", "traces.otf2").Msg("partial read")

	var entry map[string]interface{}
	if err := gojson.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("we should be able to parse the entry %q: %v", buf.String(), err)
	}
	if entry["severity"] != "warn" {
		t.Fatalf("got severity %v, want warn", entry["severity"])
	}
	if entry["trace"] != "traces.otf2" {
		t.Fatalf("got trace %v", entry["trace"])
	}
}

func TestConfigureLoggerLevel(t *testing.T) {
	defer func(l zerolog.Logger) { log.Logger = l }(log.Logger)

	var buf bytes.Buffer
	configure(zerolog.WarnLevel, false, &buf)
	log.Info().Msg("dropped")
	log.Error().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info entry logged at warn level: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("error entry missing: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  zerolog.Level
		err   bool
	}{
		{name: "empty", input: "", want: zerolog.InfoLevel},
		{name: "debug", input: "debug", want: zerolog.DebugLevel},
		{name: "error", input: "error", want: zerolog.ErrorLevel},
		{name: "invalid", input: "loud", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("got error %v, want error %v", err, tt.err)
			}
			if !tt.err && got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelSampler(t *testing.T) {
	s := LevelSampler{Level: zerolog.WarnLevel}
	if s.Sample(zerolog.DebugLevel) {
		t.Fatal("debug should be dropped")
	}
	if !s.Sample(zerolog.ErrorLevel) {
		t.Fatal("error should be kept")
	}
}
