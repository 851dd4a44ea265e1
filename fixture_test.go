package otf2

import (
	"fmt"
	"testing"

	"github.com/getsentry/otf2/internal/native"
	"github.com/getsentry/otf2/internal/native/memtrace"
)

const (
	testPath      = "trace/traces.otf2"
	testRegion    = RegionRef(1)
	testAttribute = AttributeRef(0)
)

// newTestTrace builds a trace with the given number of locations, each
// entering and leaving the same region events/2 times. Events of the
// locations interleave in time.
func newTestTrace(locations, events int) *memtrace.Trace {
	t := &memtrace.Trace{
		Definitions: []native.DefRecord{
			StringDef{Self: 0, Value: "node"},
			StringDef{Self: 1, Value: "main"},
			StringDef{Self: 2, Value: "rank"},
			ClockPropertiesDef{TimerResolution: 1_000_000_000},
			SystemTreeNodeDef{Self: 0, Name: 0, ClassName: 0, Parent: UndefinedSystemTreeNode},
			LocationGroupDef{
				Self:                  0,
				Name:                  2,
				Type:                  LocationGroupTypeProcess,
				SystemTreeParent:      0,
				CreatingLocationGroup: UndefinedLocationGroup,
			},
			AttributeDef{Self: testAttribute, Name: 2, Description: UndefinedString, Type: native.TypeUint32},
			RegionDef{Self: testRegion, Name: 1, CanonicalName: 1, SourceFile: UndefinedString},
		},
		LocalDefinitions: make(map[native.LocationRef]uint64),
	}
	for l := 0; l < locations; l++ {
		ref := LocationRef(l)
		t.Definitions = append(t.Definitions, LocationDef{
			Self:           ref,
			Name:           2,
			Type:           LocationTypeCPUThread,
			NumberOfEvents: uint64(events),
			LocationGroup:  0,
		})
		if l%2 == 0 {
			t.LocalDefinitions[ref] = 1
		}
		for i := 0; i < events; i++ {
			var rec native.EvtRecord = Enter{Region: testRegion}
			if i%2 == 1 {
				rec = Leave{Region: testRegion}
			}
			t.Events = append(t.Events, memtrace.Event{
				Location: ref,
				Time:     TimeStamp(i*locations + l),
				Attributes: []memtrace.Attribute{
					{Ref: testAttribute, Type: native.TypeUint32, Value: native.RawUint32(uint32(i))},
				},
				Record: rec,
			})
		}
	}
	return t
}

func openTestTrace(t *testing.T, trace *memtrace.Trace, opts ...Option) (*Reader, *memtrace.Engine) {
	t.Helper()
	e := memtrace.New()
	e.Add(testPath, trace)
	r, err := Open(testPath, append([]Option{WithEngine(e)}, opts...)...)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := r.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	})
	return r, e
}

// stopAfter visits n events or definitions and then returns code.
type stopAfter struct {
	NopEventVisitor
	n    int
	code CallbackCode
	seen int
}

func (s *stopAfter) step() CallbackCode {
	s.seen++
	if s.seen > s.n {
		return s.code
	}
	return CallbackSuccess
}

func (s *stopAfter) VisitEnter(Header, Enter) CallbackCode { return s.step() }
func (s *stopAfter) VisitLeave(Header, Leave) CallbackCode { return s.step() }

// recorder records the order in which named visitors saw events.
type recorder struct {
	NopEventVisitor
	name string
	log  *[]string
}

func (r recorder) VisitEnter(h Header, _ Enter) CallbackCode {
	*r.log = append(*r.log, fmt.Sprintf("%s:%d", r.name, h.Time))
	return CallbackSuccess
}

func (r recorder) VisitLeave(h Header, _ Leave) CallbackCode {
	*r.log = append(*r.log, fmt.Sprintf("%s:%d", r.name, h.Time))
	return CallbackSuccess
}
