package otf2

import (
	"testing"

	"github.com/getsentry/otf2/internal/native"
	"github.com/getsentry/otf2/internal/testutil"
)

func TestCallbackTablesCoverEveryKind(t *testing.T) {
	defs := definitionCallbacks()
	if defs.Unknown == nil || defs.String == nil || defs.IoParadigm == nil || defs.IoPreCreatedHandleState == nil {
		t.Fatal("definition callback table has empty entries")
	}
	evts := eventCallbacks()
	if evts.Unknown == nil || evts.Enter == nil || evts.Metric == nil || evts.CommDestroy == nil {
		t.Fatal("event callback table has empty entries")
	}
}

func TestDefinitionVisitorsShortCircuit(t *testing.T) {
	var log []string
	visitor := func(name string, code CallbackCode) DefinitionVisitor {
		return DefinitionFunc(func(d Definition) CallbackCode {
			log = append(log, name+":"+d.Kind().String())
			return code
		})
	}
	m := DefinitionVisitors{
		visitor("a", CallbackSuccess),
		visitor("b", CallbackInterrupt),
		visitor("c", CallbackSuccess),
	}
	if code := m.VisitRegion(RegionDef{}); code != CallbackInterrupt {
		t.Fatalf("got %v, want %v", code, CallbackInterrupt)
	}
	if diff := testutil.Diff(log, []string{"a:Region", "b:Region"}); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}

func TestEventFunc(t *testing.T) {
	var got []Event
	f := EventFunc(func(ev Event) CallbackCode {
		got = append(got, ev)
		return CallbackSuccess
	})
	h := Header{Location: 2, Time: 9}
	acceptEvent(f, h, MpiSend{Receiver: 1, Communicator: 3})
	acceptEvent(f, h, Metric{Metric: 1})

	want := []Event{
		{Header: h, Record: MpiSend{Receiver: 1, Communicator: 3}},
		{Header: h, Record: Metric{Metric: 1}},
	}
	if diff := testutil.Diff(got, want); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}

func TestNopVisitorsContinue(t *testing.T) {
	var dv DefinitionVisitor = NopDefinitionVisitor{}
	if code := acceptDefinition(dv, LocationPropertyDef{}); code != CallbackSuccess {
		t.Fatalf("got %v", code)
	}
	var ev EventVisitor = NopEventVisitor{}
	if code := acceptEvent(ev, Header{}, ThreadFork{}); code != CallbackSuccess {
		t.Fatalf("got %v", code)
	}
}

func TestKindNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range native.DefinitionKinds() {
		if seen[k.String()] {
			t.Fatalf("definition kind name %q used twice", k)
		}
		seen[k.String()] = true
	}
	if len(seen) != 39 {
		t.Fatalf("got %d definition kinds, want 39", len(seen))
	}

	seen = make(map[string]bool)
	for _, k := range native.EventKinds() {
		if seen[k.String()] {
			t.Fatalf("event kind name %q used twice", k)
		}
		seen[k.String()] = true
	}
	if len(seen) != 80 {
		t.Fatalf("got %d event kinds, want 80", len(seen))
	}
}
