package dump

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"github.com/getsentry/otf2"
	"github.com/getsentry/otf2/internal/testutil"

	gojson "github.com/goccy/go-json"
)

func testDefinitions() *otf2.Definitions {
	defs := otf2.NewDefinitions()
	defs.VisitString(otf2.StringDef{Self: 0, Value: "main"})
	defs.VisitString(otf2.StringDef{Self: 1, Value: "iteration"})
	defs.VisitRegion(otf2.RegionDef{Self: 3, Name: 0})
	defs.VisitAttribute(otf2.AttributeDef{Self: 0, Name: 1})
	return defs
}

func testEvent() otf2.Event {
	return otf2.Event{
		Header: otf2.Header{
			Location: 2,
			Time:     40,
			Attributes: []otf2.Attribute{
				{Ref: 0, Value: otf2.Uint32Value(7)},
			},
		},
		Record: otf2.Enter{Region: 3},
	}
}

func entries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	s := bufio.NewScanner(buf)
	for s.Scan() {
		var entry map[string]interface{}
		if err := gojson.Unmarshal(s.Bytes(), &entry); err != nil {
			t.Fatalf("we should be able to parse %q: %v", s.Text(), err)
		}
		out = append(out, entry)
	}
	return out
}

func TestEvents(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.DebugLevel)

	code := otf2.EventVisitors{Events(l, testDefinitions())}.VisitEnter(testEvent().Header, otf2.Enter{Region: 3})
	if code != otf2.CallbackSuccess {
		t.Fatalf("got %v, want success", code)
	}
	got := entries(t, &buf)
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	want := map[string]interface{}{
		"kind":     "Enter",
		"region":   "main",
		"location": float64(2),
		"time":     float64(40),
		"attributes": map[string]interface{}{
			"iteration": float64(7),
		},
	}
	for k, v := range want {
		if diff := testutil.Diff(got[0][k], v); diff != "" {
			t.Fatalf("field %s mismatch: got - want +\n%s", k, diff)
		}
	}
}

func TestEventsWithoutDefinitions(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.DebugLevel)

	Events(l, nil)(testEvent())
	got := entries(t, &buf)
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if _, ok := got[0]["region"]; ok {
		t.Fatal("region resolved without definitions")
	}
	attrs, _ := got[0]["attributes"].(map[string]interface{})
	if attrs["0"] != float64(7) {
		t.Fatalf("got attributes %v, want them keyed by reference", attrs)
	}
}

func TestDefinitionsBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.InfoLevel)

	if code := Definitions(l)(otf2.StringDef{Self: 0, Value: "main"}); code != otf2.CallbackSuccess {
		t.Fatalf("got %v, want success", code)
	}
	if buf.Len() != 0 {
		t.Fatalf("debug entry logged at info level: %q", buf.String())
	}
}

func TestCounter(t *testing.T) {
	c := NewCounter()
	defs := otf2.DefinitionVisitors{c.Definitions()}
	defs.VisitString(otf2.StringDef{Self: 0})
	defs.VisitString(otf2.StringDef{Self: 1})
	defs.VisitRegion(otf2.RegionDef{Self: 0})

	events := c.Events()
	events(testEvent())
	events(otf2.Event{Record: otf2.Leave{Region: 3}})
	events(testEvent())

	if diff := testutil.Diff(c.DefinitionCounts(), []KindCount{
		{Kind: "Region", Count: 1},
		{Kind: "String", Count: 2},
	}); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
	if diff := testutil.Diff(c.EventCounts(), []KindCount{
		{Kind: "Enter", Count: 2},
		{Kind: "Leave", Count: 1},
	}); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}

func TestEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		envelope Envelope
		want     string
	}{
		{
			name:     "event",
			envelope: EventEnvelope(testEvent()),
			want:     `{"kind":"Enter","location":2,"time":40,"attributes":[{"ref":0,"type":"uint32","value":7}],"record":{"Region":3}}`,
		},
		{
			name:     "event without attributes",
			envelope: EventEnvelope(otf2.Event{Record: otf2.Leave{Region: 1}}),
			want:     `{"kind":"Leave","location":0,"time":0,"record":{"Region":1}}`,
		},
		{
			name:     "definition",
			envelope: DefinitionEnvelope(otf2.StringDef{Self: 4, Value: "main"}),
			want:     `{"kind":"String","record":{"Self":4,"Value":"main"}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := gojson.Marshal(tt.envelope)
			if err != nil {
				t.Fatalf("we should be able to marshal this: %v", err)
			}
			if string(b) != tt.want {
				t.Fatalf("got %s, want %s", b, tt.want)
			}
		})
	}
}
