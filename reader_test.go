package otf2

import (
	"errors"
	"slices"
	"testing"

	"github.com/getsentry/otf2/internal/native"
	"github.com/getsentry/otf2/internal/native/memtrace"
	"github.com/getsentry/otf2/internal/testutil"
)

func TestOpenWithoutEngine(t *testing.T) {
	_, err := Open(testPath, WithEngine(nil))
	if !errors.Is(err, ErrNoEngine) {
		t.Fatalf("got %v, want ErrNoEngine", err)
	}
}

func TestOpenMissingTrace(t *testing.T) {
	e := memtrace.New()
	_, err := Open("/no/such/trace.otf2", WithEngine(e))
	var openErr *OpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("got %v, want an *OpenError", err)
	}
	if openErr.Path != "/no/such/trace.otf2" {
		t.Fatalf("got path %q", openErr.Path)
	}
	if !errors.Is(err, ErrNullHandle) {
		t.Fatalf("got %v, want it to wrap ErrNullHandle", err)
	}
}

func TestOpenSerialCollectives(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		called bool
	}{
		{name: "default", called: true},
		{name: "without", opts: []Option{WithoutSerialCollectives()}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, e := openTestTrace(t, newTestTrace(1, 2), test.opts...)
			called := slices.Contains(e.Calls(), "ReaderSetSerialCollectiveCallbacks")
			if called != test.called {
				t.Fatalf("serial collective callbacks set: %v, want %v", called, test.called)
			}
		})
	}
}

func TestOpenSerialCollectivesFailure(t *testing.T) {
	e := memtrace.New()
	e.Add(testPath, newTestTrace(1, 2))
	e.Fail("ReaderSetSerialCollectiveCallbacks", memtrace.ErrInvalidCall)

	_, err := Open(testPath, WithEngine(e))
	if !errors.Is(err, &Status{Code: memtrace.ErrInvalidCall}) {
		t.Fatalf("got %v, want OTF2_ERROR_INVALID_CALL", err)
	}
	if n := e.OpenReaders(); n != 0 {
		t.Fatalf("%d readers left open", n)
	}
}

func TestReadDefinitions(t *testing.T) {
	trace := newTestTrace(5, 2)
	r, _ := openTestTrace(t, trace)

	n, defs, err := r.ReadDefinitions()
	if err != nil {
		t.Fatalf("read definitions: %v", err)
	}
	want := make([]Definition, 0, len(trace.Definitions))
	for _, d := range trace.Definitions {
		want = append(want, d)
	}
	if n != uint64(len(want)) {
		t.Fatalf("read %d definitions, want %d", n, len(want))
	}
	if diff := testutil.Diff(defs, want); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
	if got := r.Definitions().Locations.Len(); got != 5 {
		t.Fatalf("registered %d locations, want 5", got)
	}
}

func TestReadDefinitionsParentsFirst(t *testing.T) {
	trace := &memtrace.Trace{
		Definitions: []native.DefRecord{
			StringDef{Self: 0, Value: "machine"},
			SystemTreeNodeDef{Self: 0, Name: 0, ClassName: 0, Parent: UndefinedSystemTreeNode},
			SystemTreeNodeDef{Self: 1, Name: 0, ClassName: 0, Parent: 0},
			SystemTreeNodeDef{Self: 2, Name: 0, ClassName: 0, Parent: 1},
			SystemTreeNodeDef{Self: 3, Name: 0, ClassName: 0, Parent: 1},
		},
	}
	r, _ := openTestTrace(t, trace)

	_, defs, err := r.ReadDefinitions()
	if err != nil {
		t.Fatalf("read definitions: %v", err)
	}
	position := make(map[SystemTreeNodeRef]int)
	var order []SystemTreeNodeRef
	for i, d := range defs {
		node, ok := d.(SystemTreeNodeDef)
		if !ok {
			continue
		}
		if node.Parent.Defined() {
			if _, seen := position[node.Parent]; !seen {
				t.Fatalf("node %d listed before its parent %d", node.Self, node.Parent)
			}
		}
		position[node.Self] = i
		order = append(order, node.Self)
	}
	if diff := testutil.Diff(order, []SystemTreeNodeRef{0, 1, 2, 3}); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
	if got := r.Definitions().SystemTreeNodes.Len(); got != 4 {
		t.Fatalf("registered %d system tree nodes, want 4", got)
	}
}

func TestReadDefinitionsTwice(t *testing.T) {
	r, _ := openTestTrace(t, newTestTrace(1, 2))
	if _, _, err := r.ReadDefinitions(); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	if _, err := r.VisitDefinitions(); !errors.Is(err, ErrDefinitionsLoaded) {
		t.Fatalf("got %v, want ErrDefinitionsLoaded", err)
	}
}

func TestDecodedDefinitions(t *testing.T) {
	trace := &memtrace.Trace{
		Definitions: []native.DefRecord{
			native.LocationPropertyDef{Location: 3, Name: 1, Type: native.TypeUint64, Value: native.RawUint64(9)},
			native.IoParadigmDef{
				Self:           0,
				Identification: 1,
				Name:           2,
				Properties:     []IoParadigmProperty{0, 1},
				Types:          []Type{native.TypeString, native.TypeUint8},
				Values:         []RawValue{native.RawUint32(4), native.RawUint8(1)},
			},
			native.ParadigmPropertyDef{Paradigm: 1, Property: 2, Type: native.TypeRegion, Value: native.RawUint32(8)},
		},
	}
	r, _ := openTestTrace(t, trace)

	_, defs, err := r.ReadDefinitions()
	if err != nil {
		t.Fatalf("read definitions: %v", err)
	}
	want := []Definition{
		LocationPropertyDef{Location: 3, Name: 1, Value: Uint64Value(9)},
		IoParadigmDef{
			Self:           0,
			Identification: 1,
			Name:           2,
			Properties: []IoParadigmPropertyValue{
				{Property: 0, Value: StringRefValue(4)},
				{Property: 1, Value: Uint8Value(1)},
			},
		},
		ParadigmPropertyDef{Paradigm: 1, Property: 2, Value: RegionRefValue(8)},
	}
	if diff := testutil.Diff(defs, want); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}

func TestVisitDefinitionsShortCircuit(t *testing.T) {
	r, e := openTestTrace(t, newTestTrace(2, 2))

	var a, b int
	first := DefinitionFunc(func(Definition) CallbackCode {
		a++
		if a == 3 {
			return CallbackInterrupt
		}
		return CallbackSuccess
	})
	second := DefinitionFunc(func(Definition) CallbackCode {
		b++
		return CallbackSuccess
	})

	n, err := r.VisitDefinitions(first, second)
	var cerr *StopError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want a *StopError", err)
	}
	if cerr.Code != CallbackInterrupt || cerr.Kind != "String" {
		t.Fatalf("got %+v", cerr)
	}
	if !errors.Is(err, &Status{Code: memtrace.ErrInterruptedByCallback}) {
		t.Fatalf("got %v, want it to carry the interrupted status", err)
	}
	if n != 3 || a != 3 || b != 2 {
		t.Fatalf("read %d, first saw %d, second saw %d", n, a, b)
	}
	if !slices.Contains(e.Calls(), "ReaderCloseGlobalDefReader") {
		t.Fatal("global definition reader not closed after the failed pass")
	}
	if r.Definitions() != nil {
		t.Fatal("registry published after a failed pass")
	}

	if _, err := r.VisitDefinitions(); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if r.Definitions() == nil {
		t.Fatal("registry not published after the retry")
	}
}

func TestVisitDefinitionsNullReader(t *testing.T) {
	r, e := openTestTrace(t, newTestTrace(1, 2))
	e.Fail("ReaderGetGlobalDefReader", memtrace.ErrInvalid)

	if _, err := r.VisitDefinitions(); !errors.Is(err, ErrNullHandle) {
		t.Fatalf("got %v, want ErrNullHandle", err)
	}
}

func TestVisitDefinitionsReadFailure(t *testing.T) {
	r, e := openTestTrace(t, newTestTrace(1, 2))
	e.Fail("ReaderReadAllGlobalDefinitions", memtrace.ErrFileInteraction)

	_, err := r.VisitDefinitions()
	if !errors.Is(err, &Status{Code: memtrace.ErrFileInteraction}) {
		t.Fatalf("got %v, want OTF2_ERROR_FILE_INTERACTION", err)
	}
	var cerr *StopError
	if errors.As(err, &cerr) {
		t.Fatalf("got callback error %v for a failed read", err)
	}
}

func TestNumberOfLocations(t *testing.T) {
	r, _ := openTestTrace(t, newTestTrace(3, 2))
	n, err := r.NumberOfLocations()
	if err != nil {
		t.Fatalf("number of locations: %v", err)
	}
	if n != 3 {
		t.Fatalf("got %d locations, want 3", n)
	}
}

func TestReaderClose(t *testing.T) {
	e := memtrace.New()
	e.Add(testPath, newTestTrace(1, 2))
	r, err := Open(testPath, WithEngine(e))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := r.Close(); err != nil {
			t.Fatalf("close %d: %v", i, err)
		}
	}
	if n := e.OpenReaders(); n != 0 {
		t.Fatalf("%d readers left open", n)
	}
	if _, _, err := r.ReadDefinitions(); !errors.Is(err, ErrClosed) {
		t.Fatalf("got %v, want ErrClosed", err)
	}
	if _, err := r.EventReader(1); !errors.Is(err, ErrClosed) {
		t.Fatalf("got %v, want ErrClosed", err)
	}
}
