package main

import (
	"errors"
	"flag"
	"io"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

type ServiceConfig struct {
	Environment string `env:"OTF2DUMP_ENVIRONMENT" env-default:"development" env-description:"environment reported to Sentry"`
	SentryDSN   string `env:"SENTRY_DSN" env-description:"Sentry DSN, errors are only reported when set"`
	LogLevel    string `env:"OTF2DUMP_LOG_LEVEL" env-default:"info" env-description:"minimum log level"`

	BatchSize uint64 `env:"OTF2DUMP_BATCH_SIZE" env-default:"1024" env-description:"events read per native call"`
	Workers   int    `env:"OTF2DUMP_WORKERS" env-default:"4" env-description:"traces processed concurrently"`
	Print     bool   `env:"OTF2DUMP_PRINT" env-description:"log every definition and event at debug level"`

	FixtureBucket string `env:"OTF2DUMP_FIXTURE_BUCKET" env-description:"bucket URL, when set arguments are fixture keys replayed in memory"`
	OutputBucket  string `env:"OTF2DUMP_OUTPUT_BUCKET" env-description:"bucket URL receiving NDJSON exports"`

	KafkaBrokers []string `env:"OTF2DUMP_KAFKA_BROKERS" env-separator:"," env-description:"brokers receiving event messages"`
	KafkaTopic   string   `env:"OTF2DUMP_KAFKA_TOPIC" env-default:"otf2-events" env-description:"topic receiving event messages"`
}

var errNoTraces = errors.New("at least one trace is required")

// loadConfig reads the environment, then lets flags override it. It
// returns the remaining arguments, the traces to process.
func loadConfig(args []string, output io.Writer) (ServiceConfig, []string, error) {
	var cfg ServiceConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, nil, err
	}

	fs := flag.NewFlagSet("otf2dump", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "minimum log level")
	fs.Uint64Var(&cfg.BatchSize, "batch", cfg.BatchSize, "events read per native call")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "traces processed concurrently")
	fs.BoolVar(&cfg.Print, "print", cfg.Print, "log every definition and event")
	fs.StringVar(&cfg.FixtureBucket, "fixtures", cfg.FixtureBucket, "bucket URL of fixture traces")
	fs.StringVar(&cfg.OutputBucket, "output", cfg.OutputBucket, "bucket URL receiving exports")
	brokers := fs.String("kafka-brokers", strings.Join(cfg.KafkaBrokers, ","), "comma separated Kafka brokers")
	fs.StringVar(&cfg.KafkaTopic, "kafka-topic", cfg.KafkaTopic, "Kafka topic")
	fs.Usage = cleanenv.FUsage(fs.Output(), &cfg, nil, func() {
		_, _ = io.WriteString(fs.Output(), "usage: otf2dump [flags] <anchor file or fixture key>...\n")
		fs.PrintDefaults()
	})
	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}

	cfg.KafkaBrokers = nil
	for _, b := range strings.Split(*brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return cfg, nil, errNoTraces
	}
	return cfg, fs.Args(), nil
}
