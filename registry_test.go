package otf2

import (
	"testing"
	"time"

	"github.com/getsentry/otf2/internal/testutil"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry[LocationRef, string]()
	for _, k := range []LocationRef{5, 1, 3} {
		if r.Insert(k, "first") {
			t.Fatalf("insert of %d reported a replacement", k)
		}
	}
	if !r.Insert(3, "second") {
		t.Fatal("second insert under the same key did not report a replacement")
	}
	if r.Len() != 3 {
		t.Fatalf("got %d entries, want 3", r.Len())
	}
	if diff := testutil.Diff(r.Keys(), []LocationRef{1, 3, 5}); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
	if v, ok := r.Get(3); !ok || v != "second" {
		t.Fatalf("Get(3) = %q, %v", v, ok)
	}
	if _, ok := r.Get(4); ok {
		t.Fatal("Get(4) found an entry")
	}

	var keys []LocationRef
	for k := range r.All() {
		keys = append(keys, k)
		if len(keys) == 2 {
			break
		}
	}
	if diff := testutil.Diff(keys, []LocationRef{1, 3}); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}

func TestDefinitions(t *testing.T) {
	r, _ := openTestTrace(t, newTestTrace(3, 2))
	if _, err := r.VisitDefinitions(); err != nil {
		t.Fatalf("visit definitions: %v", err)
	}
	defs := r.Definitions()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", defs.Name(1), "main"},
		{"undefined string", defs.Name(UndefinedString), ""},
		{"unknown string", defs.Name(99), ""},
		{"regions", defs.Regions.Keys(), []RegionRef{testRegion}},
		{"location groups", defs.LocationGroups.Len(), 1},
		{"system tree", defs.SystemTreeNodes.Len(), 1},
		{"attributes", defs.Attributes.Len(), 1},
		{"threads", defs.LocationsOfType(LocationTypeCPUThread), []LocationRef{0, 1, 2}},
		{"gpus", defs.LocationsOfType(LocationTypeGPU), []LocationRef(nil)},
		{"clock", defs.ClockProperties.TimerResolution, uint64(1_000_000_000)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if diff := testutil.Diff(test.got, test.want); diff != "" {
				t.Fatalf("Result mismatch: got - want +\n%s", diff)
			}
		})
	}

	root, ok := defs.SystemTreeNodes.Get(0)
	if !ok || root.Parent.Defined() {
		t.Fatalf("got root %+v, want a node without parent", root)
	}
}

func TestElapsed(t *testing.T) {
	tests := []struct {
		name  string
		clock *ClockPropertiesDef
		ts    TimeStamp
		want  time.Duration
	}{
		{
			name: "no clock",
			ts:   1500,
			want: 1500 * time.Nanosecond,
		},
		{
			name:  "nanosecond timer",
			clock: &ClockPropertiesDef{TimerResolution: 1_000_000_000, GlobalOffset: 100},
			ts:    100 + 1_500_000_000,
			want:  1500 * time.Millisecond,
		},
		{
			name:  "microsecond timer",
			clock: &ClockPropertiesDef{TimerResolution: 1_000_000},
			ts:    2_000_250,
			want:  2*time.Second + 250*time.Microsecond,
		},
		{
			name:  "before offset",
			clock: &ClockPropertiesDef{TimerResolution: 1_000, GlobalOffset: 100},
			ts:    50,
			want:  0,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defs := NewDefinitions()
			if test.clock != nil {
				defs.VisitClockProperties(*test.clock)
			}
			if got := defs.Elapsed(test.ts); got != test.want {
				t.Fatalf("Elapsed(%d) = %v, want %v", test.ts, got, test.want)
			}
		})
	}
}
