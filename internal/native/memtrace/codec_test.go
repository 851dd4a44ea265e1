package memtrace

import (
	"context"
	"strings"
	"testing"

	"gocloud.dev/blob/memblob"

	"github.com/getsentry/otf2/internal/native"
	"github.com/getsentry/otf2/internal/testutil"

	gojson "github.com/goccy/go-json"
)

func fixture() *Trace {
	return &Trace{
		Definitions: []native.DefRecord{
			native.StringDef{Self: 0, Value: "main"},
			native.LocationDef{Self: 3, Name: 0, Type: native.LocationTypeCPUThread, NumberOfEvents: 2},
			native.IoParadigmDef{
				Self:       1,
				Name:       0,
				Properties: []native.IoParadigmProperty{0},
				Types:      []native.Type{native.TypeString},
				Values:     []native.RawValue{native.RawUint32(0)},
			},
		},
		Events: []Event{
			{
				Location: 3,
				Time:     10,
				Attributes: []Attribute{
					{Ref: 1, Type: native.TypeDouble, Value: native.RawFloat64(0.5)},
				},
				Record: native.Enter{Region: 2},
			},
			{
				Location: 3,
				Time:     11,
				Record: native.Metric{
					Metric: 1,
					Types:  []native.Type{native.TypeUint64},
					Values: []native.RawValue{native.RawUint64(7)},
				},
			},
		},
		LocalDefinitions: map[native.LocationRef]uint64{3: 4},
	}
}

func TestTraceJSON(t *testing.T) {
	want := fixture()
	b, err := gojson.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"kind":"IoParadigm"`) {
		t.Fatalf("records are not tagged with their kind: %s", b)
	}
	var got Trace
	if err := gojson.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := testutil.Diff(&got, want); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}

func TestTraceJSONUnknownKind(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"definition", `{"definitions":[{"kind":"Nope","record":{}}],"events":[]}`},
		{"event", `{"definitions":[],"events":[{"kind":"Nope","location":0,"time":0,"record":{}}]}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var tr Trace
			err := gojson.Unmarshal([]byte(test.data), &tr)
			if err == nil || !strings.Contains(err.Error(), `unknown kind "Nope"`) {
				t.Fatalf("got %v, want an unknown kind error", err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	b := memblob.OpenBucket(nil)
	defer b.Close()

	want := fixture()
	if err := Save(ctx, b, "fixtures/trace.json.lz4", want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(ctx, b, "fixtures/trace.json.lz4")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := testutil.Diff(got, want); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}
