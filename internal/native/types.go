package native

import (
	"encoding/binary"
	"math"
)

type (
	// Code is a status code reported by the engine. Only Success means the
	// call succeeded, every other value is a failure whose name and
	// description are owned by the engine.
	Code int32

	// CallbackCode is returned by callbacks to tell the engine whether it
	// should keep reading.
	CallbackCode uint8

	// TimeStamp is a tick count in the trace clock domain.
	TimeStamp uint64
)

// Success is the only non-failure Code.
const Success Code = 0

const (
	CallbackSuccess CallbackCode = iota
	CallbackInterrupt
	CallbackError
)

func (c CallbackCode) String() string {
	switch c {
	case CallbackSuccess:
		return "success"
	case CallbackInterrupt:
		return "interrupt"
	case CallbackError:
		return "error"
	}
	return "unknown"
}

// Type is the discriminant selecting which field of a RawValue holds data.
type Type uint8

const (
	TypeNone Type = iota
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeFloat
	TypeDouble
	TypeString
	TypeAttribute
	TypeLocation
	TypeRegion
	TypeGroup
	TypeMetric
	TypeComm
	TypeParameter
	TypeRmaWin
	TypeSourceCodeLocation
	TypeCallingContext
	TypeInterruptGenerator
	TypeIoFile
	TypeIoHandle
	TypeLocationGroup
)

var typeNames = [...]string{
	TypeNone:               "NONE",
	TypeUint8:              "UINT8",
	TypeUint16:             "UINT16",
	TypeUint32:             "UINT32",
	TypeUint64:             "UINT64",
	TypeInt8:               "INT8",
	TypeInt16:              "INT16",
	TypeInt32:              "INT32",
	TypeInt64:              "INT64",
	TypeFloat:              "FLOAT",
	TypeDouble:             "DOUBLE",
	TypeString:             "STRING",
	TypeAttribute:          "ATTRIBUTE",
	TypeLocation:           "LOCATION",
	TypeRegion:             "REGION",
	TypeGroup:              "GROUP",
	TypeMetric:             "METRIC",
	TypeComm:               "COMM",
	TypeParameter:          "PARAMETER",
	TypeRmaWin:             "RMA_WIN",
	TypeSourceCodeLocation: "SOURCE_CODE_LOCATION",
	TypeCallingContext:     "CALLING_CONTEXT",
	TypeInterruptGenerator: "INTERRUPT_GENERATOR",
	TypeIoFile:             "IO_FILE",
	TypeIoHandle:           "IO_HANDLE",
	TypeLocationGroup:      "LOCATION_GROUP",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "UNDEFINED"
}

// RawValue holds the bytes of the engine's 8-byte attribute value union.
// Every field starts at offset zero, so a field of width n occupies the
// first n bytes in host byte order.
//
// The accessors read one field without checking anything: only read the
// field named by the Type that came with the value.
type RawValue [8]byte

func (r RawValue) Uint8() uint8     { return r[0] }
func (r RawValue) Uint16() uint16   { return binary.NativeEndian.Uint16(r[:2]) }
func (r RawValue) Uint32() uint32   { return binary.NativeEndian.Uint32(r[:4]) }
func (r RawValue) Uint64() uint64   { return binary.NativeEndian.Uint64(r[:]) }
func (r RawValue) Int8() int8       { return int8(r[0]) }
func (r RawValue) Int16() int16     { return int16(r.Uint16()) }
func (r RawValue) Int32() int32     { return int32(r.Uint32()) }
func (r RawValue) Int64() int64     { return int64(r.Uint64()) }
func (r RawValue) Float32() float32 { return math.Float32frombits(r.Uint32()) }
func (r RawValue) Float64() float64 { return math.Float64frombits(r.Uint64()) }

func RawUint8(v uint8) (r RawValue) {
	r[0] = v
	return r
}

func RawUint16(v uint16) (r RawValue) {
	binary.NativeEndian.PutUint16(r[:2], v)
	return r
}

func RawUint32(v uint32) (r RawValue) {
	binary.NativeEndian.PutUint32(r[:4], v)
	return r
}

func RawUint64(v uint64) (r RawValue) {
	binary.NativeEndian.PutUint64(r[:], v)
	return r
}

func RawInt8(v int8) RawValue       { return RawUint8(uint8(v)) }
func RawInt16(v int16) RawValue     { return RawUint16(uint16(v)) }
func RawInt32(v int32) RawValue     { return RawUint32(uint32(v)) }
func RawInt64(v int64) RawValue     { return RawUint64(uint64(v)) }
func RawFloat32(v float32) RawValue { return RawUint32(math.Float32bits(v)) }
func RawFloat64(v float64) RawValue { return RawUint64(math.Float64bits(v)) }

// Reference ids. Each kind has its own width and an "undefined" sentinel
// with all bits set.
type (
	StringRef             uint32
	AttributeRef          uint32
	LocationRef           uint64
	LocationGroupRef      uint32
	SystemTreeNodeRef     uint32
	RegionRef             uint32
	CallsiteRef           uint32
	CallpathRef           uint32
	GroupRef              uint32
	MetricMemberRef       uint32
	MetricRef             uint32
	CommRef               uint32
	ParameterRef          uint32
	RmaWinRef             uint32
	SourceCodeLocationRef uint32
	CallingContextRef     uint32
	InterruptGeneratorRef uint32
	IoFileRef             uint32
	IoHandleRef           uint32
	IoParadigmRef         uint8
	CartDimensionRef      uint32
	CartTopologyRef       uint32
)

const (
	UndefinedUint8  = math.MaxUint8
	UndefinedUint32 = math.MaxUint32
	UndefinedUint64 = math.MaxUint64

	UndefinedString             StringRef             = UndefinedUint32
	UndefinedAttribute          AttributeRef          = UndefinedUint32
	UndefinedLocation           LocationRef           = UndefinedUint64
	UndefinedLocationGroup      LocationGroupRef      = UndefinedUint32
	UndefinedSystemTreeNode     SystemTreeNodeRef     = UndefinedUint32
	UndefinedRegion             RegionRef             = UndefinedUint32
	UndefinedCallsite           CallsiteRef           = UndefinedUint32
	UndefinedCallpath           CallpathRef           = UndefinedUint32
	UndefinedGroup              GroupRef              = UndefinedUint32
	UndefinedMetricMember       MetricMemberRef       = UndefinedUint32
	UndefinedMetric             MetricRef             = UndefinedUint32
	UndefinedComm               CommRef               = UndefinedUint32
	UndefinedParameter          ParameterRef          = UndefinedUint32
	UndefinedRmaWin             RmaWinRef             = UndefinedUint32
	UndefinedSourceCodeLocation SourceCodeLocationRef = UndefinedUint32
	UndefinedCallingContext     CallingContextRef     = UndefinedUint32
	UndefinedInterruptGenerator InterruptGeneratorRef = UndefinedUint32
	UndefinedIoFile             IoFileRef             = UndefinedUint32
	UndefinedIoHandle           IoHandleRef           = UndefinedUint32
	UndefinedIoParadigm         IoParadigmRef         = UndefinedUint8
	UndefinedCartDimension      CartDimensionRef      = UndefinedUint32
	UndefinedCartTopology       CartTopologyRef       = UndefinedUint32
)

// Defined reports whether the reference points at a definition. Optional
// references such as parent pointers use the undefined sentinel for "none".
func (r StringRef) Defined() bool             { return r != UndefinedString }
func (r AttributeRef) Defined() bool          { return r != UndefinedAttribute }
func (r LocationRef) Defined() bool           { return r != UndefinedLocation }
func (r LocationGroupRef) Defined() bool      { return r != UndefinedLocationGroup }
func (r SystemTreeNodeRef) Defined() bool     { return r != UndefinedSystemTreeNode }
func (r RegionRef) Defined() bool             { return r != UndefinedRegion }
func (r CallsiteRef) Defined() bool           { return r != UndefinedCallsite }
func (r CallpathRef) Defined() bool           { return r != UndefinedCallpath }
func (r GroupRef) Defined() bool              { return r != UndefinedGroup }
func (r MetricMemberRef) Defined() bool       { return r != UndefinedMetricMember }
func (r MetricRef) Defined() bool             { return r != UndefinedMetric }
func (r CommRef) Defined() bool               { return r != UndefinedComm }
func (r ParameterRef) Defined() bool          { return r != UndefinedParameter }
func (r RmaWinRef) Defined() bool             { return r != UndefinedRmaWin }
func (r SourceCodeLocationRef) Defined() bool { return r != UndefinedSourceCodeLocation }
func (r CallingContextRef) Defined() bool     { return r != UndefinedCallingContext }
func (r InterruptGeneratorRef) Defined() bool { return r != UndefinedInterruptGenerator }
func (r IoFileRef) Defined() bool             { return r != UndefinedIoFile }
func (r IoHandleRef) Defined() bool           { return r != UndefinedIoHandle }
func (r IoParadigmRef) Defined() bool         { return r != UndefinedIoParadigm }
func (r CartDimensionRef) Defined() bool      { return r != UndefinedCartDimension }
func (r CartTopologyRef) Defined() bool       { return r != UndefinedCartTopology }

// Enumerations and flag sets carried by definitions and events. Their values
// are passed through from the engine untouched.
type (
	LocationType           uint8
	LocationGroupType      uint8
	SystemTreeDomain       uint8
	RegionRole             uint8
	RegionFlag             uint32
	Paradigm               uint8
	ParadigmClass          uint8
	ParadigmProperty       uint8
	IoParadigmClass        uint8
	IoParadigmFlag         uint32
	IoParadigmProperty     uint8
	GroupType              uint8
	GroupFlag              uint32
	MetricType             uint8
	MetricMode             uint8
	MetricOccurrence       uint8
	MetricScope            uint8
	RecorderKind           uint8
	Base                   uint8
	CommFlag               uint32
	RmaWinFlag             uint32
	ParameterType          uint8
	CartPeriodicity        uint8
	InterruptGeneratorMode uint8
	IoHandleFlag           uint32
	IoAccessMode           uint8
	IoStatusFlag           uint32
	IoCreationFlag         uint32
	IoSeekOption           uint8
	IoOperationMode        uint8
	IoOperationFlag        uint32
	MeasurementMode        uint8
	CollectiveOp           uint8
	RmaSyncLevel           uint32
	RmaSyncType            uint8
	RmaAtomicType          uint8
	LockType               uint8
)

const (
	LocationTypeUnknown LocationType = iota
	LocationTypeCPUThread
	LocationTypeGPU
	LocationTypeMetric
)

func (t LocationType) String() string {
	switch t {
	case LocationTypeCPUThread:
		return "cpu_thread"
	case LocationTypeGPU:
		return "gpu"
	case LocationTypeMetric:
		return "metric"
	}
	return "unknown"
}

const (
	SystemTreeDomainMachine SystemTreeDomain = iota
	SystemTreeDomainSharedMemory
	SystemTreeDomainNUMA
	SystemTreeDomainSocket
	SystemTreeDomainCache
	SystemTreeDomainCore
	SystemTreeDomainPU
)

const (
	LocationGroupTypeUnknown LocationGroupType = iota
	LocationGroupTypeProcess
	LocationGroupTypeAccelerator
)
