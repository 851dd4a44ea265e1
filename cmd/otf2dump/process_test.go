package main

import (
	"context"
	"errors"
	"testing"

	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"

	"github.com/getsentry/otf2"
	"github.com/getsentry/otf2/internal/dump"
	"github.com/getsentry/otf2/internal/native"
	"github.com/getsentry/otf2/internal/native/memtrace"
	"github.com/getsentry/otf2/internal/storageutil"
	"github.com/getsentry/otf2/internal/testutil"
)

func testTrace() *memtrace.Trace {
	t := &memtrace.Trace{
		Definitions: []native.DefRecord{
			otf2.StringDef{Self: 0, Value: "main"},
			otf2.ClockPropertiesDef{TimerResolution: 1000},
			otf2.RegionDef{Self: 0, Name: 0},
			otf2.LocationDef{Self: 0, Name: 0, NumberOfEvents: 2},
			otf2.LocationDef{Self: 1, Name: 0, NumberOfEvents: 2},
		},
	}
	for i, loc := range []native.LocationRef{0, 1, 0, 1} {
		var rec native.EvtRecord = otf2.Enter{Region: 0}
		if i >= 2 {
			rec = otf2.Leave{Region: 0}
		}
		t.Events = append(t.Events, memtrace.Event{
			Location: loc,
			Time:     native.TimeStamp(i * 500),
			Record:   rec,
		})
	}
	return t
}

func testEnvironment(t *testing.T) *environment {
	t.Helper()
	ctx := context.Background()
	e := &environment{
		config:   ServiceConfig{BatchSize: 3, Workers: 2},
		runID:    "run",
		fixtures: memblob.OpenBucket(nil),
		output:   memblob.OpenBucket(nil),
		counter:  dump.NewCounter(),
	}
	t.Cleanup(e.shutdown)
	if err := memtrace.Save(ctx, e.fixtures, "traces/a.otf2", testTrace()); err != nil {
		t.Fatalf("we should be able to save the fixture: %v", err)
	}
	return e
}

func TestProcess(t *testing.T) {
	ctx := context.Background()
	e := testEnvironment(t)

	s, err := e.process(ctx, "traces/a.otf2")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if s.Definitions != 5 || s.Events != 4 || s.Locations != 2 {
		t.Fatalf("got summary %+v", s)
	}
	if s.Elapsed.Seconds() != 1.5 {
		t.Fatalf("got elapsed %v, want 1.5s", s.Elapsed)
	}
	if diff := testutil.Diff(e.counter.EventCounts(), []dump.KindCount{
		{Kind: "Enter", Count: 2},
		{Kind: "Leave", Count: 2},
	}); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}

	var keys []string
	iter := e.output.List(&blob.ListOptions{Prefix: "run/a.otf2/"})
	for {
		obj, err := iter.Next(ctx)
		if err != nil {
			break
		}
		keys = append(keys, obj.Key)
	}
	if len(keys) != 1 {
		t.Fatalf("got exports %v, want one object", keys)
	}
	r, err := storageutil.NewCompressedReader(ctx, e.output, keys[0])
	if err != nil {
		t.Fatalf("we should be able to read the export: %v", err)
	}
	_ = r.Close()
}

func TestProcessMissingFixture(t *testing.T) {
	e := testEnvironment(t)
	_, err := e.process(context.Background(), "traces/missing.otf2")
	if !errors.Is(err, storageutil.ErrObjectNotFound) {
		t.Fatalf("got %v, want ErrObjectNotFound", err)
	}
}

func TestRun(t *testing.T) {
	e := testEnvironment(t)
	failed := e.run(context.Background(), []string{"traces/a.otf2", "traces/missing.otf2", "traces/a.otf2"})
	if failed != 1 {
		t.Fatalf("got %d failures, want 1", failed)
	}
	if diff := testutil.Diff(e.counter.DefinitionCounts(), []dump.KindCount{
		{Kind: "ClockProperties", Count: 2},
		{Kind: "Location", Count: 4},
		{Kind: "Region", Count: 2},
		{Kind: "String", Count: 2},
	}); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}
