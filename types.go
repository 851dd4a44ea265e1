package otf2

import "github.com/getsentry/otf2/internal/native"

type (
	// Engine is the native library the adapter drives.
	Engine = native.Engine
	// Type discriminates the payload of a raw attribute value.
	Type = native.Type
	// RawValue is the undecoded 8-byte attribute value union.
	RawValue = native.RawValue
	// CallbackCode tells the engine whether to keep reading.
	CallbackCode = native.CallbackCode
	TimeStamp    = native.TimeStamp

	DefinitionKind = native.DefinitionKind
	EventKind      = native.EventKind
)

const (
	CallbackSuccess   = native.CallbackSuccess
	CallbackInterrupt = native.CallbackInterrupt
	CallbackError     = native.CallbackError
)

// Reference ids.
type (
	StringRef             = native.StringRef
	AttributeRef          = native.AttributeRef
	LocationRef           = native.LocationRef
	LocationGroupRef      = native.LocationGroupRef
	SystemTreeNodeRef     = native.SystemTreeNodeRef
	RegionRef             = native.RegionRef
	CallsiteRef           = native.CallsiteRef
	CallpathRef           = native.CallpathRef
	GroupRef              = native.GroupRef
	MetricMemberRef       = native.MetricMemberRef
	MetricRef             = native.MetricRef
	CommRef               = native.CommRef
	ParameterRef          = native.ParameterRef
	RmaWinRef             = native.RmaWinRef
	SourceCodeLocationRef = native.SourceCodeLocationRef
	CallingContextRef     = native.CallingContextRef
	InterruptGeneratorRef = native.InterruptGeneratorRef
	IoFileRef             = native.IoFileRef
	IoHandleRef           = native.IoHandleRef
	IoParadigmRef         = native.IoParadigmRef
	CartDimensionRef      = native.CartDimensionRef
	CartTopologyRef       = native.CartTopologyRef
)

// Enumerations and flag sets.
type (
	LocationType           = native.LocationType
	LocationGroupType      = native.LocationGroupType
	SystemTreeDomain       = native.SystemTreeDomain
	RegionRole             = native.RegionRole
	RegionFlag             = native.RegionFlag
	Paradigm               = native.Paradigm
	ParadigmClass          = native.ParadigmClass
	ParadigmProperty       = native.ParadigmProperty
	IoParadigmClass        = native.IoParadigmClass
	IoParadigmFlag         = native.IoParadigmFlag
	IoParadigmProperty     = native.IoParadigmProperty
	GroupType              = native.GroupType
	GroupFlag              = native.GroupFlag
	MetricType             = native.MetricType
	MetricMode             = native.MetricMode
	MetricOccurrence       = native.MetricOccurrence
	MetricScope            = native.MetricScope
	RecorderKind           = native.RecorderKind
	Base                   = native.Base
	CommFlag               = native.CommFlag
	RmaWinFlag             = native.RmaWinFlag
	ParameterType          = native.ParameterType
	CartPeriodicity        = native.CartPeriodicity
	InterruptGeneratorMode = native.InterruptGeneratorMode
	IoHandleFlag           = native.IoHandleFlag
	IoAccessMode           = native.IoAccessMode
	IoStatusFlag           = native.IoStatusFlag
	IoCreationFlag         = native.IoCreationFlag
	IoSeekOption           = native.IoSeekOption
	IoOperationMode        = native.IoOperationMode
	IoOperationFlag        = native.IoOperationFlag
	MeasurementMode        = native.MeasurementMode
	CollectiveOp           = native.CollectiveOp
	RmaSyncLevel           = native.RmaSyncLevel
	RmaSyncType            = native.RmaSyncType
	RmaAtomicType          = native.RmaAtomicType
	LockType               = native.LockType
)

const (
	LocationTypeUnknown   = native.LocationTypeUnknown
	LocationTypeCPUThread = native.LocationTypeCPUThread
	LocationTypeGPU       = native.LocationTypeGPU
	LocationTypeMetric    = native.LocationTypeMetric
)

// Definition records that need no decoding.
type (
	UnknownDef                 = native.UnknownDef
	StringDef                  = native.StringDef
	AttributeDef               = native.AttributeDef
	ClockPropertiesDef         = native.ClockPropertiesDef
	ParadigmDef                = native.ParadigmDef
	SystemTreeNodeDef          = native.SystemTreeNodeDef
	SystemTreeNodeDomainDef    = native.SystemTreeNodeDomainDef
	LocationGroupDef           = native.LocationGroupDef
	LocationDef                = native.LocationDef
	RegionDef                  = native.RegionDef
	CallsiteDef                = native.CallsiteDef
	CallpathDef                = native.CallpathDef
	SourceCodeLocationDef      = native.SourceCodeLocationDef
	CallingContextDef          = native.CallingContextDef
	GroupDef                   = native.GroupDef
	MetricMemberDef            = native.MetricMemberDef
	MetricClassDef             = native.MetricClassDef
	MetricInstanceDef          = native.MetricInstanceDef
	MetricClassRecorderDef     = native.MetricClassRecorderDef
	CommDef                    = native.CommDef
	InterCommDef               = native.InterCommDef
	ParameterDef               = native.ParameterDef
	RmaWinDef                  = native.RmaWinDef
	CartDimensionDef           = native.CartDimensionDef
	CartTopologyDef            = native.CartTopologyDef
	CartCoordinateDef          = native.CartCoordinateDef
	InterruptGeneratorDef      = native.InterruptGeneratorDef
	IoRegularFileDef           = native.IoRegularFileDef
	IoDirectoryDef             = native.IoDirectoryDef
	IoHandleDef                = native.IoHandleDef
	IoPreCreatedHandleStateDef = native.IoPreCreatedHandleStateDef
)

// Event records that need no decoding.
type (
	UnknownEvent                  = native.UnknownEvent
	BufferFlush                   = native.BufferFlush
	MeasurementOnOff              = native.MeasurementOnOff
	Enter                         = native.Enter
	Leave                         = native.Leave
	MpiSend                       = native.MpiSend
	MpiIsend                      = native.MpiIsend
	MpiIsendComplete              = native.MpiIsendComplete
	MpiIrecvRequest               = native.MpiIrecvRequest
	MpiRecv                       = native.MpiRecv
	MpiIrecv                      = native.MpiIrecv
	MpiRequestTest                = native.MpiRequestTest
	MpiRequestCancelled           = native.MpiRequestCancelled
	MpiCollectiveBegin            = native.MpiCollectiveBegin
	MpiCollectiveEnd              = native.MpiCollectiveEnd
	OmpFork                       = native.OmpFork
	OmpJoin                       = native.OmpJoin
	OmpAcquireLock                = native.OmpAcquireLock
	OmpReleaseLock                = native.OmpReleaseLock
	OmpTaskCreate                 = native.OmpTaskCreate
	OmpTaskSwitch                 = native.OmpTaskSwitch
	OmpTaskComplete               = native.OmpTaskComplete
	ParameterString               = native.ParameterString
	ParameterInt                  = native.ParameterInt
	ParameterUnsignedInt          = native.ParameterUnsignedInt
	RmaWinCreate                  = native.RmaWinCreate
	RmaWinDestroy                 = native.RmaWinDestroy
	RmaCollectiveBegin            = native.RmaCollectiveBegin
	RmaCollectiveEnd              = native.RmaCollectiveEnd
	RmaGroupSync                  = native.RmaGroupSync
	RmaRequestLock                = native.RmaRequestLock
	RmaAcquireLock                = native.RmaAcquireLock
	RmaTryLock                    = native.RmaTryLock
	RmaReleaseLock                = native.RmaReleaseLock
	RmaSync                       = native.RmaSync
	RmaWaitChange                 = native.RmaWaitChange
	RmaPut                        = native.RmaPut
	RmaGet                        = native.RmaGet
	RmaAtomic                     = native.RmaAtomic
	RmaOpCompleteBlocking         = native.RmaOpCompleteBlocking
	RmaOpCompleteNonBlocking      = native.RmaOpCompleteNonBlocking
	RmaOpTest                     = native.RmaOpTest
	RmaOpCompleteRemote           = native.RmaOpCompleteRemote
	ThreadFork                    = native.ThreadFork
	ThreadJoin                    = native.ThreadJoin
	ThreadTeamBegin               = native.ThreadTeamBegin
	ThreadTeamEnd                 = native.ThreadTeamEnd
	ThreadAcquireLock             = native.ThreadAcquireLock
	ThreadReleaseLock             = native.ThreadReleaseLock
	ThreadTaskCreate              = native.ThreadTaskCreate
	ThreadTaskSwitch              = native.ThreadTaskSwitch
	ThreadTaskComplete            = native.ThreadTaskComplete
	ThreadCreate                  = native.ThreadCreate
	ThreadBegin                   = native.ThreadBegin
	ThreadWait                    = native.ThreadWait
	ThreadEnd                     = native.ThreadEnd
	CallingContextEnter           = native.CallingContextEnter
	CallingContextLeave           = native.CallingContextLeave
	CallingContextSample          = native.CallingContextSample
	IoCreateHandle                = native.IoCreateHandle
	IoDestroyHandle               = native.IoDestroyHandle
	IoDuplicateHandle             = native.IoDuplicateHandle
	IoSeek                        = native.IoSeek
	IoChangeStatusFlags           = native.IoChangeStatusFlags
	IoDeleteFile                  = native.IoDeleteFile
	IoOperationBegin              = native.IoOperationBegin
	IoOperationTest               = native.IoOperationTest
	IoOperationIssued             = native.IoOperationIssued
	IoOperationComplete           = native.IoOperationComplete
	IoOperationCancelled          = native.IoOperationCancelled
	IoAcquireLock                 = native.IoAcquireLock
	IoReleaseLock                 = native.IoReleaseLock
	IoTryLock                     = native.IoTryLock
	ProgramBegin                  = native.ProgramBegin
	ProgramEnd                    = native.ProgramEnd
	NonBlockingCollectiveRequest  = native.NonBlockingCollectiveRequest
	NonBlockingCollectiveComplete = native.NonBlockingCollectiveComplete
	CommCreate                    = native.CommCreate
	CommDestroy                   = native.CommDestroy
)

// Undefined reference sentinels.
const (
	UndefinedString             = native.UndefinedString
	UndefinedAttribute          = native.UndefinedAttribute
	UndefinedLocation           = native.UndefinedLocation
	UndefinedLocationGroup      = native.UndefinedLocationGroup
	UndefinedSystemTreeNode     = native.UndefinedSystemTreeNode
	UndefinedRegion             = native.UndefinedRegion
	UndefinedCallsite           = native.UndefinedCallsite
	UndefinedCallpath           = native.UndefinedCallpath
	UndefinedGroup              = native.UndefinedGroup
	UndefinedMetricMember       = native.UndefinedMetricMember
	UndefinedMetric             = native.UndefinedMetric
	UndefinedComm               = native.UndefinedComm
	UndefinedParameter          = native.UndefinedParameter
	UndefinedRmaWin             = native.UndefinedRmaWin
	UndefinedSourceCodeLocation = native.UndefinedSourceCodeLocation
	UndefinedCallingContext     = native.UndefinedCallingContext
	UndefinedInterruptGenerator = native.UndefinedInterruptGenerator
	UndefinedIoFile             = native.UndefinedIoFile
	UndefinedIoHandle           = native.UndefinedIoHandle
	UndefinedIoParadigm         = native.UndefinedIoParadigm
)

const (
	LocationGroupTypeUnknown     = native.LocationGroupTypeUnknown
	LocationGroupTypeProcess     = native.LocationGroupTypeProcess
	LocationGroupTypeAccelerator = native.LocationGroupTypeAccelerator
)
