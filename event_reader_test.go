package otf2

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/getsentry/otf2/internal/errorutil"
	"github.com/getsentry/otf2/internal/native"
	"github.com/getsentry/otf2/internal/native/memtrace"
	"github.com/getsentry/otf2/internal/testutil"
)

func collect(t *testing.T, er *EventReader, visitors ...EventVisitor) ([]Event, error) {
	t.Helper()
	it, err := er.Events(visitors...)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	var events []Event
	for ev := range it.All() {
		events = append(events, ev)
	}
	return events, it.Err()
}

func TestEventsBatchInvariance(t *testing.T) {
	const locations, perLocation = 3, 7

	var want []Event
	for i := 0; i < perLocation; i++ {
		for l := 0; l < locations; l++ {
			var rec EventRecord = Enter{Region: testRegion}
			if i%2 == 1 {
				rec = Leave{Region: testRegion}
			}
			want = append(want, Event{
				Header: Header{
					Location:   LocationRef(l),
					Time:       TimeStamp(i*locations + l),
					Attributes: []Attribute{{Ref: testAttribute, Value: Uint32Value(i)}},
				},
				Record: rec,
			})
		}
	}

	for _, batch := range []uint64{1, 2, locations * perLocation, 2 * locations * perLocation} {
		t.Run(fmt.Sprintf("batch %d", batch), func(t *testing.T) {
			r, _ := openTestTrace(t, newTestTrace(locations, perLocation))
			er, err := r.EventReader(batch)
			if err != nil {
				t.Fatalf("event reader: %v", err)
			}
			got, err := collect(t, er)
			if err != nil {
				t.Fatalf("iterate: %v", err)
			}
			if diff := testutil.Diff(got, want); diff != "" {
				t.Fatalf("Result mismatch: got - want +\n%s", diff)
			}
		})
	}
}

func TestEventReads(t *testing.T) {
	tests := []struct {
		name   string
		events int
		batch  uint64
		reads  []uint64
	}{
		{name: "partial last batch", events: 7, batch: 2, reads: []uint64{2, 2, 2, 1}},
		{name: "exact batches", events: 4, batch: 2, reads: []uint64{2, 2, 0}},
		{name: "single batch", events: 3, batch: 1024, reads: []uint64{3}},
		{name: "no events", events: 0, batch: 8, reads: []uint64{0}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, e := openTestTrace(t, newTestTrace(1, test.events))
			er, err := r.EventReader(test.batch)
			if err != nil {
				t.Fatalf("event reader: %v", err)
			}
			got, err := collect(t, er)
			if err != nil {
				t.Fatalf("iterate: %v", err)
			}
			if len(got) != test.events {
				t.Fatalf("got %d events, want %d", len(got), test.events)
			}
			if diff := testutil.Diff(e.EventReads(), test.reads); diff != "" {
				t.Fatalf("Result mismatch: got - want +\n%s", diff)
			}
		})
	}
}

func TestEventsVisitorShortCircuit(t *testing.T) {
	r, _ := openTestTrace(t, newTestTrace(1, 7))
	er, err := r.EventReader(16)
	if err != nil {
		t.Fatalf("event reader: %v", err)
	}

	var log []string
	stop := &stopAfter{n: 2, code: CallbackInterrupt}
	got, err := collect(t, er, stop, recorder{name: "b", log: &log})

	var cerr *StopError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want a *StopError", err)
	}
	if cerr.Code != CallbackInterrupt || cerr.Kind != "Enter" {
		t.Fatalf("got %+v", cerr)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if diff := testutil.Diff(log, []string{"b:0", "b:1"}); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}

func TestVisitOrder(t *testing.T) {
	r, _ := openTestTrace(t, newTestTrace(1, 3))
	er, err := r.EventReader(2)
	if err != nil {
		t.Fatalf("event reader: %v", err)
	}

	var log []string
	n, err := er.Visit(recorder{name: "a", log: &log}, recorder{name: "b", log: &log})
	if err != nil {
		t.Fatalf("visit: %v", err)
	}
	if n != 3 {
		t.Fatalf("read %d events, want 3", n)
	}
	want := []string{"a:0", "b:0", "a:1", "b:1", "a:2", "b:2"}
	if diff := testutil.Diff(log, want); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}

func TestVisitShortCircuit(t *testing.T) {
	r, e := openTestTrace(t, newTestTrace(1, 7))
	er, err := r.EventReader(2)
	if err != nil {
		t.Fatalf("event reader: %v", err)
	}

	var log []string
	_, err = er.Visit(&stopAfter{n: 3, code: CallbackError}, recorder{name: "b", log: &log})
	var cerr *StopError
	if !errors.As(err, &cerr) || cerr.Code != CallbackError {
		t.Fatalf("got %v, want a *StopError with CallbackError", err)
	}
	if !errors.Is(err, &Status{Code: memtrace.ErrCallback}) {
		t.Fatalf("got %v, want it to carry OTF2_ERROR_CALLBACK", err)
	}
	if len(log) != 3 {
		t.Fatalf("second visitor saw %d events, want 3", len(log))
	}
	if diff := testutil.Diff(e.EventReads(), []uint64{2, 2}); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}

func TestEventsConsumed(t *testing.T) {
	r, _ := openTestTrace(t, newTestTrace(1, 2))
	er, err := r.EventReader(2)
	if err != nil {
		t.Fatalf("event reader: %v", err)
	}
	if _, err := er.Events(); err != nil {
		t.Fatalf("events: %v", err)
	}
	if _, err := er.Events(); !errors.Is(err, ErrEventsConsumed) {
		t.Fatalf("got %v, want ErrEventsConsumed", err)
	}
	if _, err := er.Visit(); !errors.Is(err, ErrEventsConsumed) {
		t.Fatalf("got %v, want ErrEventsConsumed", err)
	}
}

func TestEventsRetryAfterFailedOpen(t *testing.T) {
	tests := []struct {
		name   string
		method string
		code   native.Code
		want   error
	}{
		{
			name:   "null global event reader",
			method: "ReaderGetGlobalEvtReader",
			code:   memtrace.ErrInvalid,
			want:   ErrNullHandle,
		},
		{
			name:   "callback registration",
			method: "ReaderRegisterGlobalEvtCallbacks",
			code:   memtrace.ErrInvalidCall,
			want:   &Status{Code: memtrace.ErrInvalidCall},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, e := openTestTrace(t, newTestTrace(2, 3))
			er, err := r.EventReader(2)
			if err != nil {
				t.Fatalf("event reader: %v", err)
			}

			e.Fail(tt.method, tt.code)
			if _, err := er.Events(); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if _, err := er.Visit(); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}

			e.Fail(tt.method, native.Success)
			got, err := collect(t, er)
			if err != nil {
				t.Fatalf("iterate: %v", err)
			}
			if len(got) != 6 {
				t.Fatalf("got %d events, want 6", len(got))
			}
			if _, err := er.Events(); !errors.Is(err, ErrEventsConsumed) {
				t.Fatalf("got %v, want ErrEventsConsumed", err)
			}
		})
	}
}

func TestReaderBusy(t *testing.T) {
	r, _ := openTestTrace(t, newTestTrace(2, 2))
	er, err := r.EventReader(2)
	if err != nil {
		t.Fatalf("event reader: %v", err)
	}

	if _, err := r.NumberOfLocations(); !errors.Is(err, ErrReaderBusy) {
		t.Fatalf("got %v, want ErrReaderBusy", err)
	}
	if _, err := r.EventReader(2); !errors.Is(err, ErrReaderBusy) {
		t.Fatalf("got %v, want ErrReaderBusy", err)
	}
	if _, err := r.LocalEventReader([]LocationRef{0}, 2); !errors.Is(err, ErrReaderBusy) {
		t.Fatalf("got %v, want ErrReaderBusy", err)
	}

	if err := er.Close(); err != nil {
		t.Fatalf("close event reader: %v", err)
	}
	if _, err := er.Events(); !errors.Is(err, ErrClosed) {
		t.Fatalf("got %v, want ErrClosed", err)
	}

	er, err = r.LocalEventReader([]LocationRef{1}, 2)
	if err != nil {
		t.Fatalf("second event reader: %v", err)
	}
	got, err := collect(t, er)
	if err != nil {
		t.Fatalf("iterate: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
}

func TestNestingOrder(t *testing.T) {
	e := memtrace.New()
	e.Add(testPath, newTestTrace(2, 2))
	r, err := Open(testPath, WithEngine(e))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	er, err := r.EventReader(8)
	if err != nil {
		t.Fatalf("event reader: %v", err)
	}
	if _, err := collect(t, er); err != nil {
		t.Fatalf("iterate: %v", err)
	}
	// The event reader is left open on purpose.
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	want := []string{
		"ReaderOpen",
		"ReaderSetSerialCollectiveCallbacks",
		"ReaderGetGlobalDefReader",
		"ReaderRegisterGlobalDefCallbacks",
		"ReaderReadAllGlobalDefinitions",
		"ReaderCloseGlobalDefReader",
		"ReaderSelectLocation",
		"ReaderSelectLocation",
		"ReaderOpenDefFiles",
		"ReaderGetDefReader",
		"ReaderReadAllLocalDefinitions",
		"ReaderCloseDefReader",
		"ReaderGetDefReader",
		"ReaderCloseDefFiles",
		"ReaderOpenEvtFiles",
		"ReaderGetEvtReader",
		"ReaderGetEvtReader",
		"ReaderGetGlobalEvtReader",
		"ReaderRegisterGlobalEvtCallbacks",
		"GlobalEvtReaderReadEvents",
		"ReaderCloseGlobalEvtReader",
		"ReaderCloseEvtFiles",
		"ReaderClose",
	}
	if diff := testutil.Diff(e.Calls(), want); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
	if v := e.Violations(); len(v) != 0 {
		t.Fatalf("resources outlived their parent: %v", v)
	}
}

func TestEventReaderNullEvtReader(t *testing.T) {
	r, e := openTestTrace(t, newTestTrace(2, 2))
	if _, _, err := r.ReadDefinitions(); err != nil {
		t.Fatalf("read definitions: %v", err)
	}
	e.Fail("ReaderGetEvtReader", memtrace.ErrInvalid)

	if _, err := r.EventReader(2); !errors.Is(err, ErrNullHandle) {
		t.Fatalf("got %v, want ErrNullHandle", err)
	}
	calls := e.Calls()
	if calls[len(calls)-1] != "ReaderCloseEvtFiles" {
		t.Fatalf("event files not closed after the failure, calls: %v", calls)
	}
	if _, err := r.NumberOfLocations(); err != nil {
		t.Fatalf("reader unusable after failed construction: %v", err)
	}
}

func TestEventReaderLocalDefinitionsFailure(t *testing.T) {
	r, e := openTestTrace(t, newTestTrace(2, 2))
	e.Fail("ReaderReadAllLocalDefinitions", memtrace.ErrFileInteraction)

	_, err := r.EventReader(2)
	if !errors.Is(err, &Status{Code: memtrace.ErrFileInteraction}) {
		t.Fatalf("got %v, want OTF2_ERROR_FILE_INTERACTION", err)
	}
	calls := e.Calls()
	if diff := testutil.Diff(calls[len(calls)-2:], []string{"ReaderCloseDefReader", "ReaderCloseDefFiles"}); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}

func TestEventsErrAfterDrain(t *testing.T) {
	r, e := openTestTrace(t, newTestTrace(1, 7))
	er, err := r.EventReader(2)
	if err != nil {
		t.Fatalf("event reader: %v", err)
	}
	it, err := er.Events()
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if !it.Next() {
		t.Fatalf("no first event: %v", it.Err())
	}
	e.Fail("GlobalEvtReaderReadEvents", memtrace.ErrFileInteraction)

	if !it.Next() {
		t.Fatalf("buffered event not delivered: %v", it.Err())
	}
	if it.Event().Time != 1 {
		t.Fatalf("got event at %d, want 1", it.Event().Time)
	}
	if it.Next() {
		t.Fatal("iteration continued after a failed read")
	}
	if !errors.Is(it.Err(), &Status{Code: memtrace.ErrFileInteraction}) {
		t.Fatalf("got %v, want OTF2_ERROR_FILE_INTERACTION", it.Err())
	}
}

func TestEventsResumeAfterBreak(t *testing.T) {
	r, _ := openTestTrace(t, newTestTrace(1, 5))
	er, err := r.EventReader(2)
	if err != nil {
		t.Fatalf("event reader: %v", err)
	}
	it, err := er.Events()
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	var times []TimeStamp
	for ev := range it.All() {
		times = append(times, ev.Time)
		if len(times) == 3 {
			break
		}
	}
	for it.Next() {
		times = append(times, it.Event().Time)
	}
	if diff := testutil.Diff(times, []TimeStamp{0, 1, 2, 3, 4}); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}

func TestEventsAttributeFaultPanics(t *testing.T) {
	r, e := openTestTrace(t, newTestTrace(1, 2))
	er, err := r.EventReader(2)
	if err != nil {
		t.Fatalf("event reader: %v", err)
	}
	it, err := er.Events()
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	e.Fail("AttributeListGetAttributeByIndex", memtrace.ErrInvalid)

	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, errorutil.ErrDataIntegrity) {
			t.Fatalf("got panic %v, want ErrDataIntegrity", err)
		}
	}()
	it.Next()
}

func TestLocalEventReader(t *testing.T) {
	r, _ := openTestTrace(t, newTestTrace(3, 4))
	er, err := r.LocalEventReader([]LocationRef{1}, 3)
	if err != nil {
		t.Fatalf("event reader: %v", err)
	}
	if diff := testutil.Diff(er.Locations(), []LocationRef{1}); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
	got, err := collect(t, er)
	if err != nil {
		t.Fatalf("iterate: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d events, want 4", len(got))
	}
	for _, ev := range got {
		if ev.Location != 1 {
			t.Fatalf("got event of location %d", ev.Location)
		}
	}
}

func TestLocalEventReaderNoLocations(t *testing.T) {
	r, e := openTestTrace(t, newTestTrace(1, 4))
	er, err := r.LocalEventReader(nil, 3)
	if err != nil {
		t.Fatalf("event reader: %v", err)
	}
	got, err := collect(t, er)
	if err != nil || len(got) != 0 {
		t.Fatalf("got %d events, %v", len(got), err)
	}
	if slices.Contains(e.Calls(), "GlobalEvtReaderReadEvents") {
		t.Fatal("read events without any location")
	}
}

func TestInvalidBatchSize(t *testing.T) {
	r, _ := openTestTrace(t, newTestTrace(1, 2))
	if _, err := r.EventReader(0); !errors.Is(err, ErrInvalidBatchSize) {
		t.Fatalf("got %v, want ErrInvalidBatchSize", err)
	}
}

func TestMetricEvent(t *testing.T) {
	trace := &memtrace.Trace{
		Definitions: []native.DefRecord{LocationDef{Self: 0, Type: LocationTypeMetric}},
		Events: []memtrace.Event{{
			Location: 0,
			Time:     10,
			Record: native.Metric{
				Metric: 4,
				Types:  []Type{native.TypeInt64, native.TypeDouble, native.TypeUint32},
				Values: []RawValue{native.RawInt64(-1), native.RawFloat64(0.5), native.RawUint32(3)},
			},
		}},
	}
	r, _ := openTestTrace(t, trace)
	er, err := r.EventReader(4)
	if err != nil {
		t.Fatalf("event reader: %v", err)
	}
	got, err := collect(t, er)
	if err != nil {
		t.Fatalf("iterate: %v", err)
	}
	want := []Event{{
		Header: Header{Location: 0, Time: 10},
		Record: Metric{
			Metric: 4,
			Values: []AttributeValue{Int64Value(-1), Float64Value(0.5), NoneValue{}},
		},
	}}
	if diff := testutil.Diff(got, want); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}
