package otf2

import "github.com/getsentry/otf2/internal/native"

type (
	// Header is the envelope every event carries.
	Header struct {
		Location   LocationRef
		Time       TimeStamp
		Attributes []Attribute
	}

	// Event is one decoded event. Record is one of the event record types
	// of this package, Record.Kind tells which.
	Event struct {
		Header
		Record EventRecord
	}

	EventRecord interface {
		Kind() EventKind
	}

	// Metric reports the values of a metric instance or class. Values are
	// ordered like the members of the metric class.
	Metric struct {
		Metric MetricRef
		Values []AttributeValue
	}
)

func (Metric) Kind() EventKind { return native.EvtMetric }

func decodeMetric(m *native.Metric) Metric {
	ev := Metric{Metric: m.Metric}
	n := min(len(m.Types), len(m.Values))
	if n > 0 {
		ev.Values = make([]AttributeValue, n)
	}
	for i := 0; i < n; i++ {
		ev.Values[i] = DecodeMetric(m.Types[i], m.Values[i])
	}
	return ev
}
