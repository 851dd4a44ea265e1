package dump

import (
	"maps"
	"slices"
	"sync"

	"github.com/getsentry/otf2"
)

// Counter counts records per kind. It is safe for concurrent use, so a
// single Counter can total several traces.
type Counter struct {
	mu          sync.Mutex
	definitions map[string]uint64
	events      map[string]uint64
}

func NewCounter() *Counter {
	return &Counter{
		definitions: make(map[string]uint64),
		events:      make(map[string]uint64),
	}
}

func (c *Counter) Definitions() otf2.DefinitionFunc {
	return func(d otf2.Definition) otf2.CallbackCode {
		c.mu.Lock()
		c.definitions[d.Kind().String()]++
		c.mu.Unlock()
		return otf2.CallbackSuccess
	}
}

func (c *Counter) Events() otf2.EventFunc {
	return func(ev otf2.Event) otf2.CallbackCode {
		c.mu.Lock()
		c.events[ev.Record.Kind().String()]++
		c.mu.Unlock()
		return otf2.CallbackSuccess
	}
}

type KindCount struct {
	Kind  string `json:"kind"`
	Count uint64 `json:"count"`
}

// DefinitionCounts returns the definition counts ordered by kind name.
func (c *Counter) DefinitionCounts() []KindCount {
	c.mu.Lock()
	defer c.mu.Unlock()
	return sorted(c.definitions)
}

// EventCounts returns the event counts ordered by kind name.
func (c *Counter) EventCounts() []KindCount {
	c.mu.Lock()
	defer c.mu.Unlock()
	return sorted(c.events)
}

func sorted(m map[string]uint64) []KindCount {
	counts := make([]KindCount, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		counts = append(counts, KindCount{Kind: k, Count: m[k]})
	}
	return counts
}
