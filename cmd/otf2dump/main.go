package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"gocloud.dev/blob"
	"golang.org/x/sync/errgroup"

	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"

	"github.com/getsentry/otf2/internal/dump"
	"github.com/getsentry/otf2/internal/logutil"
	"github.com/getsentry/otf2/internal/sink"
)

type environment struct {
	config ServiceConfig
	runID  string

	fixtures *blob.Bucket
	output   *blob.Bucket
	kafka    *kafka.Writer

	counter *dump.Counter
}

var release string

func newEnvironment(ctx context.Context, cfg ServiceConfig) (*environment, error) {
	e := environment{
		config:  cfg,
		runID:   uuid.New().String(),
		counter: dump.NewCounter(),
	}
	var err error
	if cfg.FixtureBucket != "" {
		e.fixtures, err = blob.OpenBucket(ctx, cfg.FixtureBucket)
		if err != nil {
			return nil, fmt.Errorf("fixture bucket: %w", err)
		}
	}
	if cfg.OutputBucket != "" {
		e.output, err = blob.OpenBucket(ctx, cfg.OutputBucket)
		if err != nil {
			e.shutdown()
			return nil, fmt.Errorf("output bucket: %w", err)
		}
	}
	if len(cfg.KafkaBrokers) > 0 {
		e.kafka = sink.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
	}
	return &e, nil
}

func (e *environment) shutdown() {
	for _, b := range []*blob.Bucket{e.fixtures, e.output} {
		if b == nil {
			continue
		}
		if err := b.Close(); err != nil {
			sentry.CaptureException(err)
		}
	}
	if e.kafka != nil {
		if err := e.kafka.Close(); err != nil {
			sentry.CaptureException(err)
		}
	}
}

func main() {
	cfg, traces, err := loadConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, err := logutil.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logutil.ConfigureLogger(level)

	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
			Release:     release,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("can't initialize sentry")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	env, err := newEnvironment(ctx, cfg)
	if err != nil {
		stop()
		sentry.CaptureException(err)
		sentry.Flush(5 * time.Second)
		log.Fatal().Err(err).Msg("can't set up the environment")
	}

	failed := env.run(ctx, traces)

	env.shutdown()
	stop()
	sentry.Flush(5 * time.Second)

	log.Info().
		Str("run_id", env.runID).
		Int("traces", len(traces)).
		Int64("failed", failed).
		Interface("definitions", env.counter.DefinitionCounts()).
		Interface("events", env.counter.EventCounts()).
		Msg("done")
	if failed > 0 {
		os.Exit(1)
	}
}

// run processes every trace, at most config.Workers at a time. A failing
// trace does not stop the others. It returns the number of failures.
func (e *environment) run(ctx context.Context, traces []string) int64 {
	var failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(e.config.Workers)
	for _, path := range traces {
		g.Go(func() error {
			s, err := e.process(ctx, path)
			if err != nil {
				failed.Add(1)
				if !errors.Is(err, context.Canceled) {
					hub := sentry.CurrentHub().Clone()
					hub.Scope().SetTag("trace", path)
					hub.CaptureException(err)
				}
				log.Err(err).Str("trace", path).Msg("can't process trace")
				return nil
			}
			log.Info().
				Str("trace", path).
				Uint64("definitions", s.Definitions).
				Uint64("events", s.Events).
				Int("locations", s.Locations).
				Dur("duration", s.Duration).
				Dur("elapsed", s.Elapsed).
				Msg("trace processed")
			return nil
		})
	}
	_ = g.Wait()
	return failed.Load()
}
