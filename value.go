package otf2

import (
	"reflect"

	"github.com/getsentry/otf2/internal/native"
)

// AttributeValue is a decoded attribute value. The variants are the
// scalar types and reference kinds the engine can store in an attribute;
// values only come out of Decode.
type AttributeValue interface {
	// Type returns the discriminant the value was decoded from.
	Type() Type
	// TypeName returns the name of the payload type, for diagnostics.
	TypeName() string

	payload() any
}

// NoneValue is the decoded form of an unset or unknown discriminant.
type NoneValue struct{}

type (
	Uint8Value                 uint8
	Uint16Value                uint16
	Uint32Value                uint32
	Uint64Value                uint64
	Int8Value                  int8
	Int16Value                 int16
	Int32Value                 int32
	Int64Value                 int64
	Float32Value               float32
	Float64Value               float64
	StringRefValue             StringRef
	AttributeRefValue          AttributeRef
	LocationRefValue           LocationRef
	RegionRefValue             RegionRef
	GroupRefValue              GroupRef
	MetricRefValue             MetricRef
	CommRefValue               CommRef
	ParameterRefValue          ParameterRef
	RmaWinRefValue             RmaWinRef
	SourceCodeLocationRefValue SourceCodeLocationRef
	CallingContextRefValue     CallingContextRef
	InterruptGeneratorRefValue InterruptGeneratorRef
	IoFileRefValue             IoFileRef
	IoHandleRefValue           IoHandleRef
	LocationGroupRefValue      LocationGroupRef
)

func (NoneValue) Type() Type                  { return native.TypeNone }
func (Uint8Value) Type() Type                 { return native.TypeUint8 }
func (Uint16Value) Type() Type                { return native.TypeUint16 }
func (Uint32Value) Type() Type                { return native.TypeUint32 }
func (Uint64Value) Type() Type                { return native.TypeUint64 }
func (Int8Value) Type() Type                  { return native.TypeInt8 }
func (Int16Value) Type() Type                 { return native.TypeInt16 }
func (Int32Value) Type() Type                 { return native.TypeInt32 }
func (Int64Value) Type() Type                 { return native.TypeInt64 }
func (Float32Value) Type() Type               { return native.TypeFloat }
func (Float64Value) Type() Type               { return native.TypeDouble }
func (StringRefValue) Type() Type             { return native.TypeString }
func (AttributeRefValue) Type() Type          { return native.TypeAttribute }
func (LocationRefValue) Type() Type           { return native.TypeLocation }
func (RegionRefValue) Type() Type             { return native.TypeRegion }
func (GroupRefValue) Type() Type              { return native.TypeGroup }
func (MetricRefValue) Type() Type             { return native.TypeMetric }
func (CommRefValue) Type() Type               { return native.TypeComm }
func (ParameterRefValue) Type() Type          { return native.TypeParameter }
func (RmaWinRefValue) Type() Type             { return native.TypeRmaWin }
func (SourceCodeLocationRefValue) Type() Type { return native.TypeSourceCodeLocation }
func (CallingContextRefValue) Type() Type     { return native.TypeCallingContext }
func (InterruptGeneratorRefValue) Type() Type { return native.TypeInterruptGenerator }
func (IoFileRefValue) Type() Type             { return native.TypeIoFile }
func (IoHandleRefValue) Type() Type           { return native.TypeIoHandle }
func (LocationGroupRefValue) Type() Type      { return native.TypeLocationGroup }

func (NoneValue) TypeName() string                  { return "None" }
func (Uint8Value) TypeName() string                 { return "uint8" }
func (Uint16Value) TypeName() string                { return "uint16" }
func (Uint32Value) TypeName() string                { return "uint32" }
func (Uint64Value) TypeName() string                { return "uint64" }
func (Int8Value) TypeName() string                  { return "int8" }
func (Int16Value) TypeName() string                 { return "int16" }
func (Int32Value) TypeName() string                 { return "int32" }
func (Int64Value) TypeName() string                 { return "int64" }
func (Float32Value) TypeName() string               { return "float32" }
func (Float64Value) TypeName() string               { return "float64" }
func (StringRefValue) TypeName() string             { return "StringRef" }
func (AttributeRefValue) TypeName() string          { return "AttributeRef" }
func (LocationRefValue) TypeName() string           { return "LocationRef" }
func (RegionRefValue) TypeName() string             { return "RegionRef" }
func (GroupRefValue) TypeName() string              { return "GroupRef" }
func (MetricRefValue) TypeName() string             { return "MetricRef" }
func (CommRefValue) TypeName() string               { return "CommRef" }
func (ParameterRefValue) TypeName() string          { return "ParameterRef" }
func (RmaWinRefValue) TypeName() string             { return "RmaWinRef" }
func (SourceCodeLocationRefValue) TypeName() string { return "SourceCodeLocationRef" }
func (CallingContextRefValue) TypeName() string     { return "CallingContextRef" }
func (InterruptGeneratorRefValue) TypeName() string { return "InterruptGeneratorRef" }
func (IoFileRefValue) TypeName() string             { return "IoFileRef" }
func (IoHandleRefValue) TypeName() string           { return "IoHandleRef" }
func (LocationGroupRefValue) TypeName() string      { return "LocationGroupRef" }

func (NoneValue) payload() any                    { return nil }
func (v Uint8Value) payload() any                 { return uint8(v) }
func (v Uint16Value) payload() any                { return uint16(v) }
func (v Uint32Value) payload() any                { return uint32(v) }
func (v Uint64Value) payload() any                { return uint64(v) }
func (v Int8Value) payload() any                  { return int8(v) }
func (v Int16Value) payload() any                 { return int16(v) }
func (v Int32Value) payload() any                 { return int32(v) }
func (v Int64Value) payload() any                 { return int64(v) }
func (v Float32Value) payload() any               { return float32(v) }
func (v Float64Value) payload() any               { return float64(v) }
func (v StringRefValue) payload() any             { return StringRef(v) }
func (v AttributeRefValue) payload() any          { return AttributeRef(v) }
func (v LocationRefValue) payload() any           { return LocationRef(v) }
func (v RegionRefValue) payload() any             { return RegionRef(v) }
func (v GroupRefValue) payload() any              { return GroupRef(v) }
func (v MetricRefValue) payload() any             { return MetricRef(v) }
func (v CommRefValue) payload() any               { return CommRef(v) }
func (v ParameterRefValue) payload() any          { return ParameterRef(v) }
func (v RmaWinRefValue) payload() any             { return RmaWinRef(v) }
func (v SourceCodeLocationRefValue) payload() any { return SourceCodeLocationRef(v) }
func (v CallingContextRefValue) payload() any     { return CallingContextRef(v) }
func (v InterruptGeneratorRefValue) payload() any { return InterruptGeneratorRef(v) }
func (v IoFileRefValue) payload() any             { return IoFileRef(v) }
func (v IoHandleRefValue) payload() any           { return IoHandleRef(v) }
func (v LocationGroupRefValue) payload() any      { return LocationGroupRef(v) }

// Decode reads the field of raw selected by t. Discriminants without a
// payload type decode to NoneValue.
func Decode(t Type, raw RawValue) AttributeValue {
	switch t {
	case native.TypeUint8:
		return Uint8Value(raw.Uint8())
	case native.TypeUint16:
		return Uint16Value(raw.Uint16())
	case native.TypeUint32:
		return Uint32Value(raw.Uint32())
	case native.TypeUint64:
		return Uint64Value(raw.Uint64())
	case native.TypeInt8:
		return Int8Value(raw.Int8())
	case native.TypeInt16:
		return Int16Value(raw.Int16())
	case native.TypeInt32:
		return Int32Value(raw.Int32())
	case native.TypeInt64:
		return Int64Value(raw.Int64())
	case native.TypeFloat:
		return Float32Value(raw.Float32())
	case native.TypeDouble:
		return Float64Value(raw.Float64())
	case native.TypeString:
		return StringRefValue(raw.Uint32())
	case native.TypeAttribute:
		return AttributeRefValue(raw.Uint32())
	case native.TypeLocation:
		return LocationRefValue(raw.Uint64())
	case native.TypeRegion:
		return RegionRefValue(raw.Uint32())
	case native.TypeGroup:
		return GroupRefValue(raw.Uint32())
	case native.TypeMetric:
		return MetricRefValue(raw.Uint32())
	case native.TypeComm:
		return CommRefValue(raw.Uint32())
	case native.TypeParameter:
		return ParameterRefValue(raw.Uint32())
	case native.TypeRmaWin:
		return RmaWinRefValue(raw.Uint32())
	case native.TypeSourceCodeLocation:
		return SourceCodeLocationRefValue(raw.Uint32())
	case native.TypeCallingContext:
		return CallingContextRefValue(raw.Uint32())
	case native.TypeInterruptGenerator:
		return InterruptGeneratorRefValue(raw.Uint32())
	case native.TypeIoFile:
		return IoFileRefValue(raw.Uint32())
	case native.TypeIoHandle:
		return IoHandleRefValue(raw.Uint32())
	case native.TypeLocationGroup:
		return LocationGroupRefValue(raw.Uint32())
	}
	return NoneValue{}
}

// DecodeMetric decodes one metric value. Metric values are restricted to
// 64-bit signed and unsigned integers and doubles, anything else decodes
// to NoneValue.
func DecodeMetric(t Type, raw RawValue) AttributeValue {
	switch t {
	case native.TypeInt64, native.TypeUint64, native.TypeDouble:
		return Decode(t, raw)
	}
	return NoneValue{}
}

// Payload lists the types a decoded value can be unwrapped into.
type Payload interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64 |
		float32 | float64 | StringRef | AttributeRef | LocationRef | RegionRef |
		GroupRef | MetricRef | CommRef | ParameterRef | RmaWinRef |
		SourceCodeLocationRef | CallingContextRef | InterruptGeneratorRef |
		IoFileRef | IoHandleRef | LocationGroupRef
}

// Unwrap returns the payload of v as T. It fails with a
// *TypeMismatchError when v holds another type.
func Unwrap[T Payload](v AttributeValue) (T, error) {
	var zero T
	if v == nil {
		return zero, &TypeMismatchError{Expected: payloadName[T](), Actual: NoneValue{}.TypeName()}
	}
	p, ok := v.payload().(T)
	if !ok {
		return zero, &TypeMismatchError{Expected: payloadName[T](), Actual: v.TypeName()}
	}
	return p, nil
}

func payloadName[T Payload]() string {
	return reflect.TypeOf((*T)(nil)).Elem().Name()
}
