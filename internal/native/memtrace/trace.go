// Package memtrace implements native.Engine over traces held in memory.
// It drives the registered callback tables the same way the native
// library does, which makes it usable both as a test double and to replay
// recorded fixtures.
package memtrace

import (
	"slices"

	"github.com/getsentry/otf2/internal/native"
)

type (
	// Trace is the content served for one anchor path.
	Trace struct {
		// Definitions are delivered in order by ReadAllGlobalDefinitions.
		Definitions []native.DefRecord
		// Events of all locations. The global event reader merges the
		// selected locations by time, ties keep slice order.
		Events []Event
		// LocalDefinitions is the number of local definitions per location.
		LocalDefinitions map[native.LocationRef]uint64
	}

	Event struct {
		Location   native.LocationRef
		Time       native.TimeStamp
		Attributes []Attribute
		Record     native.EvtRecord
	}

	Attribute struct {
		Ref   native.AttributeRef `json:"ref"`
		Type  native.Type         `json:"type"`
		Value native.RawValue     `json:"value"`
	}
)

// Locations returns the ids of all Location definitions in order.
func (t *Trace) Locations() []native.LocationRef {
	var locations []native.LocationRef
	for _, d := range t.Definitions {
		if l, ok := d.(native.LocationDef); ok {
			locations = append(locations, l.Self)
		}
	}
	return locations
}

func (t *Trace) merged(selected map[native.LocationRef]bool) []Event {
	var events []Event
	for _, e := range t.Events {
		if selected[e.Location] {
			events = append(events, e)
		}
	}
	slices.SortStableFunc(events, func(a, b Event) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		}
		return 0
	})
	return events
}
