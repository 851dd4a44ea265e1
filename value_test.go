package otf2

import (
	"errors"
	"math"
	"testing"

	"github.com/getsentry/otf2/internal/native"
	"github.com/getsentry/otf2/internal/testutil"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		raw      RawValue
		want     AttributeValue
		typeName string
	}{
		{"none", native.TypeNone, RawValue{}, NoneValue{}, "None"},
		{"uint8", native.TypeUint8, native.RawUint8(math.MaxUint8), Uint8Value(math.MaxUint8), "uint8"},
		{"uint16", native.TypeUint16, native.RawUint16(65000), Uint16Value(65000), "uint16"},
		{"uint32", native.TypeUint32, native.RawUint32(1 << 30), Uint32Value(1 << 30), "uint32"},
		{"uint64", native.TypeUint64, native.RawUint64(1 << 60), Uint64Value(1 << 60), "uint64"},
		{"int8", native.TypeInt8, native.RawInt8(-100), Int8Value(-100), "int8"},
		{"int16", native.TypeInt16, native.RawInt16(-30000), Int16Value(-30000), "int16"},
		{"int32", native.TypeInt32, native.RawInt32(-1 << 30), Int32Value(-1 << 30), "int32"},
		{"int64", native.TypeInt64, native.RawInt64(-1 << 60), Int64Value(-1 << 60), "int64"},
		{"float", native.TypeFloat, native.RawFloat32(1.5), Float32Value(1.5), "float32"},
		{"double", native.TypeDouble, native.RawFloat64(math.Pi), Float64Value(math.Pi), "float64"},
		{"string", native.TypeString, native.RawUint32(7), StringRefValue(7), "StringRef"},
		{"attribute", native.TypeAttribute, native.RawUint32(7), AttributeRefValue(7), "AttributeRef"},
		{"location", native.TypeLocation, native.RawUint64(1 << 40), LocationRefValue(1 << 40), "LocationRef"},
		{"region", native.TypeRegion, native.RawUint32(7), RegionRefValue(7), "RegionRef"},
		{"group", native.TypeGroup, native.RawUint32(7), GroupRefValue(7), "GroupRef"},
		{"metric", native.TypeMetric, native.RawUint32(7), MetricRefValue(7), "MetricRef"},
		{"comm", native.TypeComm, native.RawUint32(7), CommRefValue(7), "CommRef"},
		{"parameter", native.TypeParameter, native.RawUint32(7), ParameterRefValue(7), "ParameterRef"},
		{"rma win", native.TypeRmaWin, native.RawUint32(7), RmaWinRefValue(7), "RmaWinRef"},
		{"source code location", native.TypeSourceCodeLocation, native.RawUint32(7), SourceCodeLocationRefValue(7), "SourceCodeLocationRef"},
		{"calling context", native.TypeCallingContext, native.RawUint32(7), CallingContextRefValue(7), "CallingContextRef"},
		{"interrupt generator", native.TypeInterruptGenerator, native.RawUint32(7), InterruptGeneratorRefValue(7), "InterruptGeneratorRef"},
		{"io file", native.TypeIoFile, native.RawUint32(7), IoFileRefValue(7), "IoFileRef"},
		{"io handle", native.TypeIoHandle, native.RawUint32(7), IoHandleRefValue(7), "IoHandleRef"},
		{"location group", native.TypeLocationGroup, native.RawUint32(7), LocationGroupRefValue(7), "LocationGroupRef"},
		{"unknown discriminant", Type(200), native.RawUint64(math.MaxUint64), NoneValue{}, "None"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Decode(test.typ, test.raw)
			if diff := testutil.Diff(got, test.want); diff != "" {
				t.Fatalf("Result mismatch: got - want +\n%s", diff)
			}
			if got.TypeName() != test.typeName {
				t.Fatalf("TypeName() = %q, want %q", got.TypeName(), test.typeName)
			}
			if _, ok := got.(NoneValue); !ok && got.Type() != test.typ {
				t.Fatalf("Type() = %v, want %v", got.Type(), test.typ)
			}
		})
	}
}

func TestDecodeMetric(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		raw  RawValue
		want AttributeValue
	}{
		{"int64", native.TypeInt64, native.RawInt64(-3), Int64Value(-3)},
		{"uint64", native.TypeUint64, native.RawUint64(3), Uint64Value(3)},
		{"double", native.TypeDouble, native.RawFloat64(0.25), Float64Value(0.25)},
		{"uint32 is not a metric value", native.TypeUint32, native.RawUint32(3), NoneValue{}},
		{"region is not a metric value", native.TypeRegion, native.RawUint32(3), NoneValue{}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if diff := testutil.Diff(DecodeMetric(test.typ, test.raw), test.want); diff != "" {
				t.Fatalf("Result mismatch: got - want +\n%s", diff)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	region, err := Unwrap[RegionRef](Decode(native.TypeRegion, native.RawUint32(42)))
	if err != nil {
		t.Fatalf("unwrap region: %v", err)
	}
	if region != 42 {
		t.Fatalf("got region %d, want 42", region)
	}

	f, err := Unwrap[float64](Float64Value(2.5))
	if err != nil || f != 2.5 {
		t.Fatalf("unwrap float64 = %v, %v", f, err)
	}
}

func TestUnwrapMismatch(t *testing.T) {
	tests := []struct {
		name    string
		value   AttributeValue
		unwrap  func(AttributeValue) error
		message string
	}{
		{
			name:  "integer as reference",
			value: Uint32Value(42),
			unwrap: func(v AttributeValue) error {
				_, err := Unwrap[RegionRef](v)
				return err
			},
			message: "expected RegionRef but got uint32",
		},
		{
			name:  "reference as integer",
			value: RegionRefValue(42),
			unwrap: func(v AttributeValue) error {
				_, err := Unwrap[uint32](v)
				return err
			},
			message: "expected uint32 but got RegionRef",
		},
		{
			name:  "none",
			value: NoneValue{},
			unwrap: func(v AttributeValue) error {
				_, err := Unwrap[int64](v)
				return err
			},
			message: "expected int64 but got None",
		},
		{
			name:  "nil",
			value: nil,
			unwrap: func(v AttributeValue) error {
				_, err := Unwrap[StringRef](v)
				return err
			},
			message: "expected StringRef but got None",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.unwrap(test.value)
			var mismatch *TypeMismatchError
			if !errors.As(err, &mismatch) {
				t.Fatalf("got error %v, want a *TypeMismatchError", err)
			}
			if err.Error() != test.message {
				t.Fatalf("got message %q, want %q", err.Error(), test.message)
			}
		})
	}
}
