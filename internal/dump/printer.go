// Package dump holds diagnostic visitors for trace streams: printers
// logging every record, per-kind counters and export envelopes.
package dump

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/getsentry/otf2"
)

// Definitions logs every definition at debug level.
func Definitions(l zerolog.Logger) otf2.DefinitionFunc {
	return func(d otf2.Definition) otf2.CallbackCode {
		l.Debug().
			Str("kind", d.Kind().String()).
			Interface("definition", d).
			Msg("definition")
		return otf2.CallbackSuccess
	}
}

// Events logs every event at debug level. Region names and elapsed time
// are resolved through defs when it is not nil.
func Events(l zerolog.Logger, defs *otf2.Definitions) otf2.EventFunc {
	return func(ev otf2.Event) otf2.CallbackCode {
		e := l.Debug().
			Str("kind", ev.Record.Kind().String()).
			Uint64("location", uint64(ev.Location)).
			Uint64("time", uint64(ev.Time))
		if defs != nil {
			e = e.Dur("elapsed", defs.Elapsed(ev.Time))
			if name, ok := regionName(defs, ev.Record); ok {
				e = e.Str("region", name)
			}
		}
		if len(ev.Attributes) > 0 {
			attrs := zerolog.Dict()
			for _, a := range ev.Attributes {
				attrs = attrs.Interface(attributeName(defs, a.Ref), a.Value)
			}
			e = e.Dict("attributes", attrs)
		}
		e.Interface("record", ev.Record).Msg("event")
		return otf2.CallbackSuccess
	}
}

func regionName(defs *otf2.Definitions, r otf2.EventRecord) (string, bool) {
	var ref otf2.RegionRef
	switch ev := r.(type) {
	case otf2.Enter:
		ref = ev.Region
	case otf2.Leave:
		ref = ev.Region
	default:
		return "", false
	}
	region, ok := defs.Regions.Get(ref)
	if !ok {
		return "", false
	}
	return defs.Name(region.Name), true
}

func attributeName(defs *otf2.Definitions, ref otf2.AttributeRef) string {
	if defs != nil {
		if a, ok := defs.Attributes.Get(ref); ok {
			if name := defs.Name(a.Name); name != "" {
				return name
			}
		}
	}
	return strconv.FormatUint(uint64(ref), 10)
}
