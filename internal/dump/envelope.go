package dump

import (
	"github.com/getsentry/otf2"
)

type (
	// Envelope is the export form of one definition or event. Events carry
	// their header, definitions leave it empty.
	Envelope struct {
		Kind       string              `json:"kind"`
		Location   *otf2.LocationRef   `json:"location,omitempty"`
		Time       *otf2.TimeStamp     `json:"time,omitempty"`
		Attributes []AttributeEnvelope `json:"attributes,omitempty"`
		Record     interface{}         `json:"record"`
	}

	AttributeEnvelope struct {
		Ref   otf2.AttributeRef   `json:"ref"`
		Type  string              `json:"type"`
		Value otf2.AttributeValue `json:"value"`
	}
)

func DefinitionEnvelope(d otf2.Definition) Envelope {
	return Envelope{
		Kind:   d.Kind().String(),
		Record: d,
	}
}

func EventEnvelope(ev otf2.Event) Envelope {
	location, time := ev.Location, ev.Time
	e := Envelope{
		Kind:     ev.Record.Kind().String(),
		Location: &location,
		Time:     &time,
		Record:   ev.Record,
	}
	if len(ev.Attributes) > 0 {
		e.Attributes = make([]AttributeEnvelope, 0, len(ev.Attributes))
		for _, a := range ev.Attributes {
			e.Attributes = append(e.Attributes, AttributeEnvelope{
				Ref:   a.Ref,
				Type:  a.Value.TypeName(),
				Value: a.Value,
			})
		}
	}
	return e
}
