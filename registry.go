package otf2

import (
	"cmp"
	"iter"
	"time"

	"github.com/google/btree"
)

const registryDegree = 8

type entry[K cmp.Ordered, V any] struct {
	key   K
	value V
}

// Registry is an ordered map from reference ids to definitions. The zero
// value is not usable, use NewRegistry.
type Registry[K cmp.Ordered, V any] struct {
	tree *btree.BTreeG[entry[K, V]]
}

func NewRegistry[K cmp.Ordered, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		tree: btree.NewG(registryDegree, func(a, b entry[K, V]) bool {
			return a.key < b.key
		}),
	}
}

// Insert stores v under k and reports whether it replaced an entry.
func (r *Registry[K, V]) Insert(k K, v V) bool {
	_, replaced := r.tree.ReplaceOrInsert(entry[K, V]{key: k, value: v})
	return replaced
}

func (r *Registry[K, V]) Get(k K) (V, bool) {
	e, ok := r.tree.Get(entry[K, V]{key: k})
	return e.value, ok
}

func (r *Registry[K, V]) Len() int {
	return r.tree.Len()
}

// Keys returns all keys in ascending order.
func (r *Registry[K, V]) Keys() []K {
	keys := make([]K, 0, r.tree.Len())
	r.tree.Ascend(func(e entry[K, V]) bool {
		keys = append(keys, e.key)
		return true
	})
	return keys
}

// All yields the entries in ascending key order.
func (r *Registry[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		r.tree.Ascend(func(e entry[K, V]) bool {
			return yield(e.key, e.value)
		})
	}
}

// Definitions collects the definitions needed to interpret events. It is
// a DefinitionVisitor and can be passed to Reader.VisitDefinitions next
// to other visitors.
type Definitions struct {
	NopDefinitionVisitor

	Strings         *Registry[StringRef, string]
	Attributes      *Registry[AttributeRef, AttributeDef]
	Locations       *Registry[LocationRef, LocationDef]
	LocationGroups  *Registry[LocationGroupRef, LocationGroupDef]
	Regions         *Registry[RegionRef, RegionDef]
	SystemTreeNodes *Registry[SystemTreeNodeRef, SystemTreeNodeDef]
	// ClockProperties is the last clock definition read, if any.
	ClockProperties *ClockPropertiesDef
}

func NewDefinitions() *Definitions {
	return &Definitions{
		Strings:         NewRegistry[StringRef, string](),
		Attributes:      NewRegistry[AttributeRef, AttributeDef](),
		Locations:       NewRegistry[LocationRef, LocationDef](),
		LocationGroups:  NewRegistry[LocationGroupRef, LocationGroupDef](),
		Regions:         NewRegistry[RegionRef, RegionDef](),
		SystemTreeNodes: NewRegistry[SystemTreeNodeRef, SystemTreeNodeDef](),
	}
}

func (d *Definitions) VisitString(def StringDef) CallbackCode {
	d.Strings.Insert(def.Self, def.Value)
	return CallbackSuccess
}

func (d *Definitions) VisitAttribute(def AttributeDef) CallbackCode {
	d.Attributes.Insert(def.Self, def)
	return CallbackSuccess
}

func (d *Definitions) VisitLocation(def LocationDef) CallbackCode {
	d.Locations.Insert(def.Self, def)
	return CallbackSuccess
}

func (d *Definitions) VisitLocationGroup(def LocationGroupDef) CallbackCode {
	d.LocationGroups.Insert(def.Self, def)
	return CallbackSuccess
}

func (d *Definitions) VisitRegion(def RegionDef) CallbackCode {
	d.Regions.Insert(def.Self, def)
	return CallbackSuccess
}

func (d *Definitions) VisitSystemTreeNode(def SystemTreeNodeDef) CallbackCode {
	d.SystemTreeNodes.Insert(def.Self, def)
	return CallbackSuccess
}

func (d *Definitions) VisitClockProperties(def ClockPropertiesDef) CallbackCode {
	d.ClockProperties = &def
	return CallbackSuccess
}

// Name resolves a string reference. Undefined or unknown references
// resolve to the empty string.
func (d *Definitions) Name(ref StringRef) string {
	if !ref.Defined() {
		return ""
	}
	s, _ := d.Strings.Get(ref)
	return s
}

// Elapsed converts a timestamp into the time passed since the start of
// the trace. Without clock properties, ticks are taken as nanoseconds.
func (d *Definitions) Elapsed(t TimeStamp) time.Duration {
	cp := d.ClockProperties
	if cp == nil || cp.TimerResolution == 0 {
		return time.Duration(t)
	}
	ticks := uint64(t)
	if ticks < cp.GlobalOffset {
		return 0
	}
	ticks -= cp.GlobalOffset
	sec := ticks / cp.TimerResolution
	rem := ticks % cp.TimerResolution
	return time.Duration(sec)*time.Second +
		time.Duration(float64(rem)*float64(time.Second)/float64(cp.TimerResolution))
}

// LocationsOfType returns the ids of all locations of type t in ascending
// order.
func (d *Definitions) LocationsOfType(t LocationType) []LocationRef {
	var refs []LocationRef
	for ref, l := range d.Locations.All() {
		if l.Type == t {
			refs = append(refs, ref)
		}
	}
	return refs
}
