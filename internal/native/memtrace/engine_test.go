package memtrace

import (
	"testing"

	"github.com/getsentry/otf2/internal/native"
	"github.com/getsentry/otf2/internal/testutil"
)

const anchor = "fixtures/traces.otf2"

func open(t *testing.T, tr *Trace) (*Engine, *native.Reader) {
	t.Helper()
	e := New()
	e.Add(anchor, tr)
	r := e.ReaderOpen(anchor)
	if r == nil {
		t.Fatal("open returned no reader")
	}
	return e, r
}

func TestReadAllGlobalDefinitions(t *testing.T) {
	tests := []struct {
		name   string
		stopAt int
		read   uint64
		code   native.Code
		seen   []string
	}{
		{name: "all", stopAt: -1, read: 4, code: native.Success, seen: []string{"a", "b", "c"}},
		{name: "interrupted", stopAt: 1, read: 3, code: ErrInterruptedByCallback, seen: []string{"a", "b"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e, r := open(t, &Trace{Definitions: []native.DefRecord{
				native.StringDef{Self: 0, Value: "a"},
				native.ClockPropertiesDef{TimerResolution: 1},
				native.StringDef{Self: 1, Value: "b"},
				native.StringDef{Self: 2, Value: "c"},
			}})
			var seen []string
			ud := native.NewUserData(&seen)
			defer ud.Delete()
			cbs := &native.GlobalDefCallbacks{
				String: func(ud native.UserData, def *native.StringDef) native.CallbackCode {
					s := ud.Value().(*[]string)
					*s = append(*s, def.Value)
					if len(*s)-1 == test.stopAt {
						return native.CallbackInterrupt
					}
					return native.CallbackSuccess
				},
			}
			dr := e.ReaderGetGlobalDefReader(r)
			if code := e.ReaderRegisterGlobalDefCallbacks(r, dr, cbs, ud); code != native.Success {
				t.Fatalf("register: %v", e.ErrorName(code))
			}
			read, code := e.ReaderReadAllGlobalDefinitions(r, dr)
			if code != test.code {
				t.Fatalf("got %s, want %s", e.ErrorName(code), e.ErrorName(test.code))
			}
			// Definitions without a callback are skipped but still read.
			if read != test.read {
				t.Fatalf("read %d, want %d", read, test.read)
			}
			if diff := testutil.Diff(seen, test.seen); diff != "" {
				t.Fatalf("Result mismatch: got - want +\n%s", diff)
			}
		})
	}
}

func TestReadEventsMergesLocations(t *testing.T) {
	e, r := open(t, &Trace{
		Definitions: []native.DefRecord{
			native.LocationDef{Self: 0},
			native.LocationDef{Self: 1},
			native.LocationDef{Self: 2},
		},
		Events: []Event{
			{Location: 0, Time: 5, Record: native.Enter{Region: 1}},
			{Location: 1, Time: 1, Record: native.Enter{Region: 1}},
			{Location: 2, Time: 0, Record: native.Enter{Region: 1}},
			{Location: 1, Time: 5, Record: native.Leave{Region: 1}},
			{Location: 0, Time: 6, Record: native.Leave{Region: 1}},
		},
	})
	for _, l := range []native.LocationRef{0, 1} {
		e.ReaderSelectLocation(r, l)
	}
	e.ReaderOpenEvtFiles(r)
	for _, l := range []native.LocationRef{0, 1} {
		if e.ReaderGetEvtReader(r, l) == nil {
			t.Fatalf("no event reader for location %d", l)
		}
	}
	er := e.ReaderGetGlobalEvtReader(r)
	if er == nil {
		t.Fatal("no global event reader")
	}

	type seen struct {
		Location native.LocationRef
		Time     native.TimeStamp
	}
	var got []seen
	ud := native.NewUserData(&got)
	defer ud.Delete()
	record := func(ud native.UserData, h *native.EventHeader) native.CallbackCode {
		s := ud.Value().(*[]seen)
		*s = append(*s, seen{h.Location, h.Time})
		return native.CallbackSuccess
	}
	cbs := &native.GlobalEvtCallbacks{
		Enter: func(ud native.UserData, h *native.EventHeader, _ *native.Enter) native.CallbackCode { return record(ud, h) },
		Leave: func(ud native.UserData, h *native.EventHeader, _ *native.Leave) native.CallbackCode { return record(ud, h) },
	}
	e.ReaderRegisterGlobalEvtCallbacks(r, er, cbs, ud)

	for _, want := range []uint64{3, 1, 0} {
		n, code := e.GlobalEvtReaderReadEvents(er, 3)
		if code != native.Success || n != want {
			t.Fatalf("read %d (%s), want %d", n, e.ErrorName(code), want)
		}
	}
	// Ties keep the order of the trace.
	want := []seen{{1, 1}, {0, 5}, {1, 5}, {0, 6}}
	if diff := testutil.Diff(got, want); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}

func TestLocalDefinitionReaders(t *testing.T) {
	e, r := open(t, &Trace{
		Definitions:      []native.DefRecord{native.LocationDef{Self: 0}, native.LocationDef{Self: 1}},
		LocalDefinitions: map[native.LocationRef]uint64{0: 3},
	})
	e.ReaderSelectLocation(r, 0)
	e.ReaderSelectLocation(r, 1)
	if dr := e.ReaderGetDefReader(r, 0); dr != nil {
		t.Fatal("got a local definition reader before the definition files were opened")
	}
	e.ReaderOpenDefFiles(r)
	dr := e.ReaderGetDefReader(r, 0)
	if dr == nil {
		t.Fatal("no local definition reader")
	}
	if n, code := e.ReaderReadAllLocalDefinitions(r, dr); code != native.Success || n != 3 {
		t.Fatalf("read %d local definitions (%s), want 3", n, e.ErrorName(code))
	}
	if e.ReaderGetDefReader(r, 1) != nil {
		t.Fatal("got a local definition reader for a location without local definitions")
	}
	e.ReaderCloseDefFiles(r)
	e.ReaderClose(r)

	want := []string{
		"local definition reader open at definition files close",
		"local definition reader open at close",
	}
	if diff := testutil.Diff(e.Violations(), want); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}

func TestFaults(t *testing.T) {
	e := New()
	e.Add(anchor, &Trace{})
	e.Fail("ReaderOpen", ErrFileInteraction)
	if r := e.ReaderOpen(anchor); r != nil {
		t.Fatal("failing constructor returned a reader")
	}
	if e.ReaderOpen("missing") != nil {
		t.Fatal("opened a trace that was never added")
	}
	if diff := testutil.Diff(e.Calls(), []string{"ReaderOpen", "ReaderOpen"}); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}

func TestErrorNames(t *testing.T) {
	e := New()
	tests := []struct {
		code native.Code
		name string
	}{
		{native.Success, "OTF2_SUCCESS"},
		{ErrCallback, "OTF2_ERROR_CALLBACK"},
		{native.Code(999), "OTF2_ERROR_999"},
	}
	for _, test := range tests {
		if got := e.ErrorName(test.code); got != test.name {
			t.Errorf("ErrorName(%d) = %q, want %q", test.code, got, test.name)
		}
	}
}
