package native

import (
	"math"
	"testing"
)

func TestRawValueFieldsOverlap(t *testing.T) {
	r := RawUint64(0x1122334455667788)
	if got := r.Uint64(); got != 0x1122334455667788 {
		t.Fatalf("Uint64() = %#x", got)
	}
	// Narrow fields read the low-order bytes on every host.
	if got := RawUint32(0xdeadbeef).Uint32(); got != 0xdeadbeef {
		t.Fatalf("Uint32() = %#x", got)
	}
	if got := RawInt16(-2).Int16(); got != -2 {
		t.Fatalf("Int16() = %d", got)
	}
	if got := RawInt8(-128).Int8(); got != -128 {
		t.Fatalf("Int8() = %d", got)
	}
	if got := RawFloat64(math.Inf(-1)).Float64(); !math.IsInf(got, -1) {
		t.Fatalf("Float64() = %v", got)
	}
	if got := RawFloat32(0.25).Float32(); got != 0.25 {
		t.Fatalf("Float32() = %v", got)
	}
}

func TestDefined(t *testing.T) {
	tests := []struct {
		name    string
		defined bool
		want    bool
	}{
		{"string", StringRef(0).Defined(), true},
		{"undefined string", UndefinedString.Defined(), false},
		{"location", LocationRef(math.MaxUint32).Defined(), true},
		{"undefined location", UndefinedLocation.Defined(), false},
		{"undefined io paradigm", UndefinedIoParadigm.Defined(), false},
		{"system tree parent", SystemTreeNodeRef(1).Defined(), true},
	}
	for _, test := range tests {
		if test.defined != test.want {
			t.Errorf("%s: Defined() = %v, want %v", test.name, test.defined, test.want)
		}
	}
}

func TestUserData(t *testing.T) {
	type target struct{ n int }
	a, b := &target{1}, &target{2}
	ua, ub := NewUserData(a), NewUserData(b)
	if ua == ub {
		t.Fatal("two values share a key")
	}
	if ua.Value().(*target) != a || ub.Value().(*target) != b {
		t.Fatal("keys resolve to the wrong values")
	}
	ua.Delete()
	ua.Delete()
	if ub.Value().(*target) != b {
		t.Fatal("deleting one key dropped another")
	}
	ub.Delete()

	defer func() {
		if recover() == nil {
			t.Fatal("resolving a deleted key did not panic")
		}
	}()
	_ = ua.Value()
}

func TestDeliver(t *testing.T) {
	var got []string
	ud := NewUserData(&got)
	defer ud.Delete()
	log := func(ud UserData, s string) CallbackCode {
		l := ud.Value().(*[]string)
		*l = append(*l, s)
		return CallbackSuccess
	}

	defs := &GlobalDefCallbacks{
		String: func(ud UserData, d *StringDef) CallbackCode { return log(ud, "string "+d.Value) },
		Unknown: func(ud UserData, _ *UnknownDef) CallbackCode {
			return log(ud, "unknown definition")
		},
	}
	evts := &GlobalEvtCallbacks{
		Leave: func(ud UserData, h *EventHeader, _ *Leave) CallbackCode { return log(ud, "leave") },
		Unknown: func(ud UserData, _ *EventHeader, _ *UnknownEvent) CallbackCode {
			return log(ud, "unknown event")
		},
	}

	codes := []CallbackCode{
		defs.Deliver(ud, StringDef{Value: "x"}),
		defs.Deliver(ud, RegionDef{}),
		defs.Deliver(ud, UnknownDef{}),
		evts.Deliver(ud, &EventHeader{}, Leave{}),
		evts.Deliver(ud, &EventHeader{}, Enter{}),
		evts.Deliver(ud, &EventHeader{}, UnknownEvent{}),
	}
	for i, code := range codes {
		if code != CallbackSuccess {
			t.Fatalf("delivery %d returned %v", i, code)
		}
	}
	want := []string{"string x", "unknown definition", "leave", "unknown event"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestTypeNames(t *testing.T) {
	if got := TypeRegion.String(); got != "REGION" {
		t.Fatalf("got %q", got)
	}
	if got := Type(250).String(); got != "UNDEFINED" {
		t.Fatalf("got %q", got)
	}
	if got := CallbackInterrupt.String(); got == "" {
		t.Fatal("callback code without a name")
	}
}
