package sink

import (
	"bufio"
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"gocloud.dev/blob/memblob"

	"github.com/getsentry/otf2"
	"github.com/getsentry/otf2/internal/dump"
	"github.com/getsentry/otf2/internal/storageutil"
	"github.com/getsentry/otf2/internal/testutil"

	gojson "github.com/goccy/go-json"
)

func testEnvelopes() []dump.Envelope {
	return []dump.Envelope{
		dump.DefinitionEnvelope(otf2.StringDef{Self: 0, Value: "main"}),
		dump.EventEnvelope(otf2.Event{
			Header: otf2.Header{Location: 1, Time: 10},
			Record: otf2.Enter{Region: 0},
		}),
		dump.EventEnvelope(otf2.Event{
			Header: otf2.Header{Location: 1, Time: 20},
			Record: otf2.Leave{Region: 0},
		}),
	}
}

func TestBlob(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	s, err := NewBlob(ctx, bucket, "exports")
	if err != nil {
		t.Fatalf("we should be able to create the object: %v", err)
	}
	for _, e := range testEnvelopes() {
		if err := s.Write(ctx, e); err != nil {
			t.Fatalf("we should be able to write: %v", err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("we should be able to close: %v", err)
	}
	if err := s.Write(ctx, testEnvelopes()[0]); !errors.Is(err, ErrClosed) {
		t.Fatalf("got %v, want ErrClosed", err)
	}

	r, err := storageutil.NewCompressedReader(ctx, bucket, s.Key())
	if err != nil {
		t.Fatalf("we should be able to read the object: %v", err)
	}
	defer r.Close()

	var kinds []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		var line struct {
			Kind string `json:"kind"`
		}
		if err := gojson.Unmarshal(scanner.Bytes(), &line); err != nil {
			t.Fatalf("we should be able to parse %q: %v", scanner.Text(), err)
		}
		kinds = append(kinds, line.Kind)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if diff := testutil.Diff(kinds, []string{"String", "Enter", "Leave"}); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}

type fakeWriter struct {
	batches [][]kafka.Message
	err     error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.batches = append(w.batches, append([]kafka.Message(nil), msgs...))
	return w.err
}

func (w *fakeWriter) Close() error { return nil }

func TestKafka(t *testing.T) {
	tests := []struct {
		name      string
		batchSize int
		batches   []int
	}{
		{name: "one by one", batchSize: 1, batches: []int{1, 1, 1}},
		{name: "batched", batchSize: 2, batches: []int{2, 1}},
		{name: "flushed on close", batchSize: 10, batches: []int{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			w := &fakeWriter{}
			s := NewKafka(w, "traces.otf2", tt.batchSize)
			for _, e := range testEnvelopes() {
				if err := s.Write(ctx, e); err != nil {
					t.Fatalf("write: %v", err)
				}
			}
			if err := s.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}
			var sizes []int
			for _, b := range w.batches {
				sizes = append(sizes, len(b))
			}
			if diff := testutil.Diff(sizes, tt.batches); diff != "" {
				t.Fatalf("Result mismatch: got - want +\n%s", diff)
			}
		})
	}
}

func TestKafkaMessages(t *testing.T) {
	w := &fakeWriter{}
	s := NewKafka(w, "traces.otf2", 10)
	for _, e := range testEnvelopes() {
		_ = s.Write(context.Background(), e)
	}
	_ = s.Close()

	msgs := w.batches[0]
	if msgs[0].Key != nil {
		t.Fatalf("definition keyed by %q", msgs[0].Key)
	}
	if string(msgs[1].Key) != "1" {
		t.Fatalf("got key %q, want the location", msgs[1].Key)
	}
	if diff := testutil.Diff(msgs[2].Headers, []kafka.Header{
		{Key: "kind", Value: []byte("Leave")},
		{Key: "trace", Value: []byte("traces.otf2")},
	}); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
	if err := s.Write(context.Background(), testEnvelopes()[0]); !errors.Is(err, ErrClosed) {
		t.Fatalf("got %v, want ErrClosed", err)
	}
}

func TestMulti(t *testing.T) {
	fail := errors.New("unavailable")
	a, b := &fakeWriter{}, &fakeWriter{err: fail}
	m := Multi{NewKafka(a, "a", 1), NewKafka(b, "b", 1)}
	if err := m.Write(context.Background(), testEnvelopes()[0]); !errors.Is(err, fail) {
		t.Fatalf("got %v, want %v", err, fail)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if len(a.batches) != 1 || len(b.batches) != 1 {
		t.Fatalf("got %d and %d batches", len(a.batches), len(b.batches))
	}
}
