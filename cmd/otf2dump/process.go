package main

import (
	"context"
	"errors"
	"path"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/getsentry/otf2"
	"github.com/getsentry/otf2/internal/dump"
	"github.com/getsentry/otf2/internal/native/memtrace"
	"github.com/getsentry/otf2/internal/sink"
)

type summary struct {
	Definitions uint64
	Events      uint64
	Locations   int
	// Elapsed is the time between the start of the trace and its last
	// event.
	Elapsed  time.Duration
	Duration time.Duration
}

func (e *environment) open(ctx context.Context, trace string) (*otf2.Reader, error) {
	if e.fixtures == nil {
		return otf2.Open(trace)
	}
	t, err := memtrace.Load(ctx, e.fixtures, trace)
	if err != nil {
		return nil, err
	}
	engine := memtrace.New()
	engine.Add(trace, t)
	return otf2.Open(trace, otf2.WithEngine(engine))
}

func (e *environment) sinks(ctx context.Context, trace string) (sink.Multi, error) {
	var sinks sink.Multi
	if e.output != nil {
		s, err := sink.NewBlob(ctx, e.output, path.Join(e.runID, path.Base(trace)))
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s)
	}
	if e.kafka != nil {
		sinks = append(sinks, sink.NewKafka(e.kafka, trace, int(min(e.config.BatchSize, 1000))))
	}
	return sinks, nil
}

// process reads the definitions and events of one trace, counting and
// exporting every record.
func (e *environment) process(ctx context.Context, trace string) (s summary, err error) {
	start := time.Now()

	r, err := e.open(ctx, trace)
	if err != nil {
		return s, err
	}
	defer func() {
		err = errors.Join(err, r.Close())
	}()

	out, err := e.sinks(ctx, trace)
	if err != nil {
		return s, err
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()

	logger := log.With().Str("trace", trace).Logger()

	var exportErr error
	export := func(env dump.Envelope) otf2.CallbackCode {
		if ctx.Err() != nil {
			exportErr = ctx.Err()
			return otf2.CallbackInterrupt
		}
		if err := out.Write(ctx, env); err != nil {
			exportErr = err
			return otf2.CallbackError
		}
		return otf2.CallbackSuccess
	}

	defVisitors := []otf2.DefinitionVisitor{
		e.counter.Definitions(),
		otf2.DefinitionFunc(func(d otf2.Definition) otf2.CallbackCode {
			return export(dump.DefinitionEnvelope(d))
		}),
	}
	if e.config.Print {
		defVisitors = append(defVisitors, dump.Definitions(logger))
	}
	s.Definitions, err = r.VisitDefinitions(defVisitors...)
	if err != nil {
		return s, errors.Join(exportErr, err)
	}
	defs := r.Definitions()
	s.Locations = defs.Locations.Len()

	er, err := r.EventReader(e.config.BatchSize)
	if err != nil {
		return s, err
	}
	evtVisitors := []otf2.EventVisitor{e.counter.Events()}
	if e.config.Print {
		evtVisitors = append(evtVisitors, dump.Events(logger, defs))
	}
	it, err := er.Events(evtVisitors...)
	if err != nil {
		return s, err
	}
	for ev := range it.All() {
		s.Events++
		s.Elapsed = max(s.Elapsed, defs.Elapsed(ev.Time))
		if export(dump.EventEnvelope(ev)) != otf2.CallbackSuccess {
			break
		}
	}
	if exportErr != nil {
		return s, exportErr
	}
	if err := it.Err(); err != nil {
		return s, err
	}
	s.Duration = time.Since(start)
	return s, nil
}
