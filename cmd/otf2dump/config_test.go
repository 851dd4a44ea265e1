package main

import (
	"errors"
	"io"
	"testing"

	"github.com/getsentry/otf2/internal/testutil"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		args   []string
		want   ServiceConfig
		traces []string
	}{
		{
			name: "defaults",
			args: []string{"traces.otf2"},
			want: ServiceConfig{
				Environment: "development",
				LogLevel:    "info",
				BatchSize:   1024,
				Workers:     4,
				KafkaTopic:  "otf2-events",
			},
			traces: []string{"traces.otf2"},
		},
		{
			name: "environment",
			env: map[string]string{
				"OTF2DUMP_BATCH_SIZE":     "16",
				"OTF2DUMP_KAFKA_BROKERS":  "a:9092,b:9092",
				"OTF2DUMP_FIXTURE_BUCKET": "mem://",
				"OTF2DUMP_PRINT":          "true",
			},
			args: []string{"a.otf2", "b.otf2"},
			want: ServiceConfig{
				Environment:   "development",
				LogLevel:      "info",
				BatchSize:     16,
				Workers:       4,
				Print:         true,
				FixtureBucket: "mem://",
				KafkaBrokers:  []string{"a:9092", "b:9092"},
				KafkaTopic:    "otf2-events",
			},
			traces: []string{"a.otf2", "b.otf2"},
		},
		{
			name: "flags override the environment",
			env:  map[string]string{"OTF2DUMP_WORKERS": "8"},
			args: []string{"-workers", "0", "-batch", "2", "-log-level", "debug", "traces.otf2"},
			want: ServiceConfig{
				Environment: "development",
				LogLevel:    "debug",
				BatchSize:   2,
				Workers:     1,
				KafkaTopic:  "otf2-events",
			},
			traces: []string{"traces.otf2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, traces, err := loadConfig(tt.args, io.Discard)
			if err != nil {
				t.Fatalf("load config: %v", err)
			}
			if diff := testutil.Diff(cfg, tt.want); diff != "" {
				t.Fatalf("Result mismatch: got - want +\n%s", diff)
			}
			if diff := testutil.Diff(traces, tt.traces); diff != "" {
				t.Fatalf("Result mismatch: got - want +\n%s", diff)
			}
		})
	}
}

func TestLoadConfigWithoutTraces(t *testing.T) {
	if _, _, err := loadConfig(nil, io.Discard); !errors.Is(err, errNoTraces) {
		t.Fatalf("got %v, want errNoTraces", err)
	}
}
