package otf2

import (
	"fmt"
	"iter"

	"github.com/getsentry/otf2/internal/errorutil"
	"github.com/getsentry/otf2/internal/native"
)

// Attribute is one decoded entry of a record's attribute list.
type Attribute struct {
	Ref   AttributeRef
	Value AttributeValue
}

// attributes yields the entries of l in index order. A failing lookup is
// yielded once as an error and ends the sequence.
func attributes(e native.Engine, l *native.AttributeList) iter.Seq2[Attribute, error] {
	return func(yield func(Attribute, error) bool) {
		if l == nil {
			return
		}
		n := e.AttributeListGetNumberOfElements(l)
		for i := uint32(0); i < n; i++ {
			ref, t, raw, code := e.AttributeListGetAttributeByIndex(l, i)
			if err := check(e, code); err != nil {
				yield(Attribute{}, fmt.Errorf("attribute %d of %d: %w", i, n, err))
				return
			}
			if !yield(Attribute{Ref: ref, Value: Decode(t, raw)}, nil) {
				return
			}
		}
	}
}

// decodeAttributes copies l out of engine memory. Every index it asks for
// is in range, so a failure means the engine broke its own invariants and
// there is nothing left to recover.
func decodeAttributes(e native.Engine, l *native.AttributeList) []Attribute {
	var attrs []Attribute
	for a, err := range attributes(e, l) {
		if err != nil {
			panic(fmt.Errorf("%w: %w", errorutil.ErrDataIntegrity, err))
		}
		attrs = append(attrs, a)
	}
	return attrs
}
