package native

// EventKind identifies an event record.
type EventKind uint8

const (
	EvtUnknown EventKind = iota
	EvtBufferFlush
	EvtMeasurementOnOff
	EvtEnter
	EvtLeave
	EvtMpiSend
	EvtMpiIsend
	EvtMpiIsendComplete
	EvtMpiIrecvRequest
	EvtMpiRecv
	EvtMpiIrecv
	EvtMpiRequestTest
	EvtMpiRequestCancelled
	EvtMpiCollectiveBegin
	EvtMpiCollectiveEnd
	EvtOmpFork
	EvtOmpJoin
	EvtOmpAcquireLock
	EvtOmpReleaseLock
	EvtOmpTaskCreate
	EvtOmpTaskSwitch
	EvtOmpTaskComplete
	EvtMetric
	EvtParameterString
	EvtParameterInt
	EvtParameterUnsignedInt
	EvtRmaWinCreate
	EvtRmaWinDestroy
	EvtRmaCollectiveBegin
	EvtRmaCollectiveEnd
	EvtRmaGroupSync
	EvtRmaRequestLock
	EvtRmaAcquireLock
	EvtRmaTryLock
	EvtRmaReleaseLock
	EvtRmaSync
	EvtRmaWaitChange
	EvtRmaPut
	EvtRmaGet
	EvtRmaAtomic
	EvtRmaOpCompleteBlocking
	EvtRmaOpCompleteNonBlocking
	EvtRmaOpTest
	EvtRmaOpCompleteRemote
	EvtThreadFork
	EvtThreadJoin
	EvtThreadTeamBegin
	EvtThreadTeamEnd
	EvtThreadAcquireLock
	EvtThreadReleaseLock
	EvtThreadTaskCreate
	EvtThreadTaskSwitch
	EvtThreadTaskComplete
	EvtThreadCreate
	EvtThreadBegin
	EvtThreadWait
	EvtThreadEnd
	EvtCallingContextEnter
	EvtCallingContextLeave
	EvtCallingContextSample
	EvtIoCreateHandle
	EvtIoDestroyHandle
	EvtIoDuplicateHandle
	EvtIoSeek
	EvtIoChangeStatusFlags
	EvtIoDeleteFile
	EvtIoOperationBegin
	EvtIoOperationTest
	EvtIoOperationIssued
	EvtIoOperationComplete
	EvtIoOperationCancelled
	EvtIoAcquireLock
	EvtIoReleaseLock
	EvtIoTryLock
	EvtProgramBegin
	EvtProgramEnd
	EvtNonBlockingCollectiveRequest
	EvtNonBlockingCollectiveComplete
	EvtCommCreate
	EvtCommDestroy
)

var eventKindNames = [...]string{
	EvtUnknown:                       "Unknown",
	EvtBufferFlush:                   "BufferFlush",
	EvtMeasurementOnOff:              "MeasurementOnOff",
	EvtEnter:                         "Enter",
	EvtLeave:                         "Leave",
	EvtMpiSend:                       "MpiSend",
	EvtMpiIsend:                      "MpiIsend",
	EvtMpiIsendComplete:              "MpiIsendComplete",
	EvtMpiIrecvRequest:               "MpiIrecvRequest",
	EvtMpiRecv:                       "MpiRecv",
	EvtMpiIrecv:                      "MpiIrecv",
	EvtMpiRequestTest:                "MpiRequestTest",
	EvtMpiRequestCancelled:           "MpiRequestCancelled",
	EvtMpiCollectiveBegin:            "MpiCollectiveBegin",
	EvtMpiCollectiveEnd:              "MpiCollectiveEnd",
	EvtOmpFork:                       "OmpFork",
	EvtOmpJoin:                       "OmpJoin",
	EvtOmpAcquireLock:                "OmpAcquireLock",
	EvtOmpReleaseLock:                "OmpReleaseLock",
	EvtOmpTaskCreate:                 "OmpTaskCreate",
	EvtOmpTaskSwitch:                 "OmpTaskSwitch",
	EvtOmpTaskComplete:               "OmpTaskComplete",
	EvtMetric:                        "Metric",
	EvtParameterString:               "ParameterString",
	EvtParameterInt:                  "ParameterInt",
	EvtParameterUnsignedInt:          "ParameterUnsignedInt",
	EvtRmaWinCreate:                  "RmaWinCreate",
	EvtRmaWinDestroy:                 "RmaWinDestroy",
	EvtRmaCollectiveBegin:            "RmaCollectiveBegin",
	EvtRmaCollectiveEnd:              "RmaCollectiveEnd",
	EvtRmaGroupSync:                  "RmaGroupSync",
	EvtRmaRequestLock:                "RmaRequestLock",
	EvtRmaAcquireLock:                "RmaAcquireLock",
	EvtRmaTryLock:                    "RmaTryLock",
	EvtRmaReleaseLock:                "RmaReleaseLock",
	EvtRmaSync:                       "RmaSync",
	EvtRmaWaitChange:                 "RmaWaitChange",
	EvtRmaPut:                        "RmaPut",
	EvtRmaGet:                        "RmaGet",
	EvtRmaAtomic:                     "RmaAtomic",
	EvtRmaOpCompleteBlocking:         "RmaOpCompleteBlocking",
	EvtRmaOpCompleteNonBlocking:      "RmaOpCompleteNonBlocking",
	EvtRmaOpTest:                     "RmaOpTest",
	EvtRmaOpCompleteRemote:           "RmaOpCompleteRemote",
	EvtThreadFork:                    "ThreadFork",
	EvtThreadJoin:                    "ThreadJoin",
	EvtThreadTeamBegin:               "ThreadTeamBegin",
	EvtThreadTeamEnd:                 "ThreadTeamEnd",
	EvtThreadAcquireLock:             "ThreadAcquireLock",
	EvtThreadReleaseLock:             "ThreadReleaseLock",
	EvtThreadTaskCreate:              "ThreadTaskCreate",
	EvtThreadTaskSwitch:              "ThreadTaskSwitch",
	EvtThreadTaskComplete:            "ThreadTaskComplete",
	EvtThreadCreate:                  "ThreadCreate",
	EvtThreadBegin:                   "ThreadBegin",
	EvtThreadWait:                    "ThreadWait",
	EvtThreadEnd:                     "ThreadEnd",
	EvtCallingContextEnter:           "CallingContextEnter",
	EvtCallingContextLeave:           "CallingContextLeave",
	EvtCallingContextSample:          "CallingContextSample",
	EvtIoCreateHandle:                "IoCreateHandle",
	EvtIoDestroyHandle:               "IoDestroyHandle",
	EvtIoDuplicateHandle:             "IoDuplicateHandle",
	EvtIoSeek:                        "IoSeek",
	EvtIoChangeStatusFlags:           "IoChangeStatusFlags",
	EvtIoDeleteFile:                  "IoDeleteFile",
	EvtIoOperationBegin:              "IoOperationBegin",
	EvtIoOperationTest:               "IoOperationTest",
	EvtIoOperationIssued:             "IoOperationIssued",
	EvtIoOperationComplete:           "IoOperationComplete",
	EvtIoOperationCancelled:          "IoOperationCancelled",
	EvtIoAcquireLock:                 "IoAcquireLock",
	EvtIoReleaseLock:                 "IoReleaseLock",
	EvtIoTryLock:                     "IoTryLock",
	EvtProgramBegin:                  "ProgramBegin",
	EvtProgramEnd:                    "ProgramEnd",
	EvtNonBlockingCollectiveRequest:  "NonBlockingCollectiveRequest",
	EvtNonBlockingCollectiveComplete: "NonBlockingCollectiveComplete",
	EvtCommCreate:                    "CommCreate",
	EvtCommDestroy:                   "CommDestroy",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return eventKindNames[EvtUnknown]
}

// EventKinds lists every kind, Unknown included, in declaration order.
func EventKinds() []EventKind {
	kinds := make([]EventKind, len(eventKindNames))
	for i := range kinds {
		kinds[i] = EventKind(i)
	}
	return kinds
}

// EvtRecord is the kind-specific argument record of one event callback.
type EvtRecord interface {
	Kind() EventKind
}

// EventHeader is the envelope shared by every event callback. Attributes
// is owned by the engine and only valid during the callback.
type EventHeader struct {
	Location   LocationRef
	Time       TimeStamp
	Attributes *AttributeList
}

// Event records, one per callback kind. Metric carries Type and RawValue
// pairs which the adapter decodes before they reach consumers.
type (
	UnknownEvent struct{}

	BufferFlush struct {
		StopTime TimeStamp
	}

	MeasurementOnOff struct {
		MeasurementMode MeasurementMode
	}

	Enter struct {
		Region RegionRef
	}

	Leave struct {
		Region RegionRef
	}

	MpiSend struct {
		Receiver     uint32
		Communicator CommRef
		MsgTag       uint32
		MsgLength    uint64
	}

	MpiIsend struct {
		Receiver     uint32
		Communicator CommRef
		MsgTag       uint32
		MsgLength    uint64
		RequestID    uint64
	}

	MpiIsendComplete struct {
		RequestID uint64
	}

	MpiIrecvRequest struct {
		RequestID uint64
	}

	MpiRecv struct {
		Sender       uint32
		Communicator CommRef
		MsgTag       uint32
		MsgLength    uint64
	}

	MpiIrecv struct {
		Sender       uint32
		Communicator CommRef
		MsgTag       uint32
		MsgLength    uint64
		RequestID    uint64
	}

	MpiRequestTest struct {
		RequestID uint64
	}

	MpiRequestCancelled struct {
		RequestID uint64
	}

	MpiCollectiveBegin struct{}

	MpiCollectiveEnd struct {
		CollectiveOp CollectiveOp
		Communicator CommRef
		Root         uint32
		SizeSent     uint64
		SizeReceived uint64
	}

	OmpFork struct {
		NumberOfRequestedThreads uint32
	}

	OmpJoin struct{}

	OmpAcquireLock struct {
		LockID           uint32
		AcquisitionOrder uint32
	}

	OmpReleaseLock struct {
		LockID           uint32
		AcquisitionOrder uint32
	}

	OmpTaskCreate struct {
		TaskID uint64
	}

	OmpTaskSwitch struct {
		TaskID uint64
	}

	OmpTaskComplete struct {
		TaskID uint64
	}

	Metric struct {
		Metric MetricRef
		Types  []Type
		Values []RawValue
	}

	ParameterString struct {
		Parameter ParameterRef
		String    StringRef
	}

	ParameterInt struct {
		Parameter ParameterRef
		Value     int64
	}

	ParameterUnsignedInt struct {
		Parameter ParameterRef
		Value     uint64
	}

	RmaWinCreate struct {
		Win RmaWinRef
	}

	RmaWinDestroy struct {
		Win RmaWinRef
	}

	RmaCollectiveBegin struct{}

	RmaCollectiveEnd struct {
		CollectiveOp  CollectiveOp
		SyncLevel     RmaSyncLevel
		Win           RmaWinRef
		Root          uint32
		BytesSent     uint64
		BytesReceived uint64
	}

	RmaGroupSync struct {
		SyncLevel RmaSyncLevel
		Win       RmaWinRef
		Group     GroupRef
	}

	RmaRequestLock struct {
		Win      RmaWinRef
		Remote   uint32
		LockID   uint64
		LockType LockType
	}

	RmaAcquireLock struct {
		Win      RmaWinRef
		Remote   uint32
		LockID   uint64
		LockType LockType
	}

	RmaTryLock struct {
		Win      RmaWinRef
		Remote   uint32
		LockID   uint64
		LockType LockType
	}

	RmaReleaseLock struct {
		Win    RmaWinRef
		Remote uint32
		LockID uint64
	}

	RmaSync struct {
		Win      RmaWinRef
		Remote   uint32
		SyncType RmaSyncType
	}

	RmaWaitChange struct {
		Win RmaWinRef
	}

	RmaPut struct {
		Win        RmaWinRef
		Remote     uint32
		Bytes      uint64
		MatchingID uint64
	}

	RmaGet struct {
		Win        RmaWinRef
		Remote     uint32
		Bytes      uint64
		MatchingID uint64
	}

	RmaAtomic struct {
		Win           RmaWinRef
		Remote        uint32
		Type          RmaAtomicType
		BytesSent     uint64
		BytesReceived uint64
		MatchingID    uint64
	}

	RmaOpCompleteBlocking struct {
		Win        RmaWinRef
		MatchingID uint64
	}

	RmaOpCompleteNonBlocking struct {
		Win        RmaWinRef
		MatchingID uint64
	}

	RmaOpTest struct {
		Win        RmaWinRef
		MatchingID uint64
	}

	RmaOpCompleteRemote struct {
		Win        RmaWinRef
		MatchingID uint64
	}

	ThreadFork struct {
		Model                    Paradigm
		NumberOfRequestedThreads uint32
	}

	ThreadJoin struct {
		Model Paradigm
	}

	ThreadTeamBegin struct {
		ThreadTeam CommRef
	}

	ThreadTeamEnd struct {
		ThreadTeam CommRef
	}

	ThreadAcquireLock struct {
		Model            Paradigm
		LockID           uint32
		AcquisitionOrder uint32
	}

	ThreadReleaseLock struct {
		Model            Paradigm
		LockID           uint32
		AcquisitionOrder uint32
	}

	ThreadTaskCreate struct {
		ThreadTeam       CommRef
		CreatingThread   uint32
		GenerationNumber uint32
	}

	ThreadTaskSwitch struct {
		ThreadTeam       CommRef
		CreatingThread   uint32
		GenerationNumber uint32
	}

	ThreadTaskComplete struct {
		ThreadTeam       CommRef
		CreatingThread   uint32
		GenerationNumber uint32
	}

	ThreadCreate struct {
		ThreadContingent CommRef
		SequenceCount    uint64
	}

	ThreadBegin struct {
		ThreadContingent CommRef
		SequenceCount    uint64
	}

	ThreadWait struct {
		ThreadContingent CommRef
		SequenceCount    uint64
	}

	ThreadEnd struct {
		ThreadContingent CommRef
		SequenceCount    uint64
	}

	CallingContextEnter struct {
		CallingContext CallingContextRef
		UnwindDistance uint32
	}

	CallingContextLeave struct {
		CallingContext CallingContextRef
	}

	CallingContextSample struct {
		CallingContext     CallingContextRef
		UnwindDistance     uint32
		InterruptGenerator InterruptGeneratorRef
	}

	IoCreateHandle struct {
		Handle        IoHandleRef
		Mode          IoAccessMode
		CreationFlags IoCreationFlag
		StatusFlags   IoStatusFlag
	}

	IoDestroyHandle struct {
		Handle IoHandleRef
	}

	IoDuplicateHandle struct {
		OldHandle   IoHandleRef
		NewHandle   IoHandleRef
		StatusFlags IoStatusFlag
	}

	IoSeek struct {
		Handle        IoHandleRef
		OffsetRequest int64
		Whence        IoSeekOption
		OffsetResult  uint64
	}

	IoChangeStatusFlags struct {
		Handle      IoHandleRef
		StatusFlags IoStatusFlag
	}

	IoDeleteFile struct {
		IoParadigm IoParadigmRef
		File       IoFileRef
	}

	IoOperationBegin struct {
		Handle         IoHandleRef
		Mode           IoOperationMode
		OperationFlags IoOperationFlag
		BytesRequest   uint64
		MatchingID     uint64
	}

	IoOperationTest struct {
		Handle     IoHandleRef
		MatchingID uint64
	}

	IoOperationIssued struct {
		Handle     IoHandleRef
		MatchingID uint64
	}

	IoOperationComplete struct {
		Handle      IoHandleRef
		BytesResult uint64
		MatchingID  uint64
	}

	IoOperationCancelled struct {
		Handle     IoHandleRef
		MatchingID uint64
	}

	IoAcquireLock struct {
		Handle   IoHandleRef
		LockType LockType
	}

	IoReleaseLock struct {
		Handle   IoHandleRef
		LockType LockType
	}

	IoTryLock struct {
		Handle   IoHandleRef
		LockType LockType
	}

	ProgramBegin struct {
		ProgramName      StringRef
		ProgramArguments []StringRef
	}

	ProgramEnd struct {
		ExitStatus int64
	}

	NonBlockingCollectiveRequest struct {
		RequestID uint64
	}

	NonBlockingCollectiveComplete struct {
		CollectiveOp CollectiveOp
		Communicator CommRef
		Root         uint32
		SizeSent     uint64
		SizeReceived uint64
		RequestID    uint64
	}

	CommCreate struct {
		Communicator CommRef
	}

	CommDestroy struct {
		Communicator CommRef
	}
)

func (UnknownEvent) Kind() EventKind                  { return EvtUnknown }
func (BufferFlush) Kind() EventKind                   { return EvtBufferFlush }
func (MeasurementOnOff) Kind() EventKind              { return EvtMeasurementOnOff }
func (Enter) Kind() EventKind                         { return EvtEnter }
func (Leave) Kind() EventKind                         { return EvtLeave }
func (MpiSend) Kind() EventKind                       { return EvtMpiSend }
func (MpiIsend) Kind() EventKind                      { return EvtMpiIsend }
func (MpiIsendComplete) Kind() EventKind              { return EvtMpiIsendComplete }
func (MpiIrecvRequest) Kind() EventKind               { return EvtMpiIrecvRequest }
func (MpiRecv) Kind() EventKind                       { return EvtMpiRecv }
func (MpiIrecv) Kind() EventKind                      { return EvtMpiIrecv }
func (MpiRequestTest) Kind() EventKind                { return EvtMpiRequestTest }
func (MpiRequestCancelled) Kind() EventKind           { return EvtMpiRequestCancelled }
func (MpiCollectiveBegin) Kind() EventKind            { return EvtMpiCollectiveBegin }
func (MpiCollectiveEnd) Kind() EventKind              { return EvtMpiCollectiveEnd }
func (OmpFork) Kind() EventKind                       { return EvtOmpFork }
func (OmpJoin) Kind() EventKind                       { return EvtOmpJoin }
func (OmpAcquireLock) Kind() EventKind                { return EvtOmpAcquireLock }
func (OmpReleaseLock) Kind() EventKind                { return EvtOmpReleaseLock }
func (OmpTaskCreate) Kind() EventKind                 { return EvtOmpTaskCreate }
func (OmpTaskSwitch) Kind() EventKind                 { return EvtOmpTaskSwitch }
func (OmpTaskComplete) Kind() EventKind               { return EvtOmpTaskComplete }
func (Metric) Kind() EventKind                        { return EvtMetric }
func (ParameterString) Kind() EventKind               { return EvtParameterString }
func (ParameterInt) Kind() EventKind                  { return EvtParameterInt }
func (ParameterUnsignedInt) Kind() EventKind          { return EvtParameterUnsignedInt }
func (RmaWinCreate) Kind() EventKind                  { return EvtRmaWinCreate }
func (RmaWinDestroy) Kind() EventKind                 { return EvtRmaWinDestroy }
func (RmaCollectiveBegin) Kind() EventKind            { return EvtRmaCollectiveBegin }
func (RmaCollectiveEnd) Kind() EventKind              { return EvtRmaCollectiveEnd }
func (RmaGroupSync) Kind() EventKind                  { return EvtRmaGroupSync }
func (RmaRequestLock) Kind() EventKind                { return EvtRmaRequestLock }
func (RmaAcquireLock) Kind() EventKind                { return EvtRmaAcquireLock }
func (RmaTryLock) Kind() EventKind                    { return EvtRmaTryLock }
func (RmaReleaseLock) Kind() EventKind                { return EvtRmaReleaseLock }
func (RmaSync) Kind() EventKind                       { return EvtRmaSync }
func (RmaWaitChange) Kind() EventKind                 { return EvtRmaWaitChange }
func (RmaPut) Kind() EventKind                        { return EvtRmaPut }
func (RmaGet) Kind() EventKind                        { return EvtRmaGet }
func (RmaAtomic) Kind() EventKind                     { return EvtRmaAtomic }
func (RmaOpCompleteBlocking) Kind() EventKind         { return EvtRmaOpCompleteBlocking }
func (RmaOpCompleteNonBlocking) Kind() EventKind      { return EvtRmaOpCompleteNonBlocking }
func (RmaOpTest) Kind() EventKind                     { return EvtRmaOpTest }
func (RmaOpCompleteRemote) Kind() EventKind           { return EvtRmaOpCompleteRemote }
func (ThreadFork) Kind() EventKind                    { return EvtThreadFork }
func (ThreadJoin) Kind() EventKind                    { return EvtThreadJoin }
func (ThreadTeamBegin) Kind() EventKind               { return EvtThreadTeamBegin }
func (ThreadTeamEnd) Kind() EventKind                 { return EvtThreadTeamEnd }
func (ThreadAcquireLock) Kind() EventKind             { return EvtThreadAcquireLock }
func (ThreadReleaseLock) Kind() EventKind             { return EvtThreadReleaseLock }
func (ThreadTaskCreate) Kind() EventKind              { return EvtThreadTaskCreate }
func (ThreadTaskSwitch) Kind() EventKind              { return EvtThreadTaskSwitch }
func (ThreadTaskComplete) Kind() EventKind            { return EvtThreadTaskComplete }
func (ThreadCreate) Kind() EventKind                  { return EvtThreadCreate }
func (ThreadBegin) Kind() EventKind                   { return EvtThreadBegin }
func (ThreadWait) Kind() EventKind                    { return EvtThreadWait }
func (ThreadEnd) Kind() EventKind                     { return EvtThreadEnd }
func (CallingContextEnter) Kind() EventKind           { return EvtCallingContextEnter }
func (CallingContextLeave) Kind() EventKind           { return EvtCallingContextLeave }
func (CallingContextSample) Kind() EventKind          { return EvtCallingContextSample }
func (IoCreateHandle) Kind() EventKind                { return EvtIoCreateHandle }
func (IoDestroyHandle) Kind() EventKind               { return EvtIoDestroyHandle }
func (IoDuplicateHandle) Kind() EventKind             { return EvtIoDuplicateHandle }
func (IoSeek) Kind() EventKind                        { return EvtIoSeek }
func (IoChangeStatusFlags) Kind() EventKind           { return EvtIoChangeStatusFlags }
func (IoDeleteFile) Kind() EventKind                  { return EvtIoDeleteFile }
func (IoOperationBegin) Kind() EventKind              { return EvtIoOperationBegin }
func (IoOperationTest) Kind() EventKind               { return EvtIoOperationTest }
func (IoOperationIssued) Kind() EventKind             { return EvtIoOperationIssued }
func (IoOperationComplete) Kind() EventKind           { return EvtIoOperationComplete }
func (IoOperationCancelled) Kind() EventKind          { return EvtIoOperationCancelled }
func (IoAcquireLock) Kind() EventKind                 { return EvtIoAcquireLock }
func (IoReleaseLock) Kind() EventKind                 { return EvtIoReleaseLock }
func (IoTryLock) Kind() EventKind                     { return EvtIoTryLock }
func (ProgramBegin) Kind() EventKind                  { return EvtProgramBegin }
func (ProgramEnd) Kind() EventKind                    { return EvtProgramEnd }
func (NonBlockingCollectiveRequest) Kind() EventKind  { return EvtNonBlockingCollectiveRequest }
func (NonBlockingCollectiveComplete) Kind() EventKind { return EvtNonBlockingCollectiveComplete }
func (CommCreate) Kind() EventKind                    { return EvtCommCreate }
func (CommDestroy) Kind() EventKind                   { return EvtCommDestroy }

// EvtCallback receives one event. Both arguments are only valid for the
// duration of the call.
type EvtCallback[T EvtRecord] func(ud UserData, h *EventHeader, ev *T) CallbackCode

// GlobalEvtCallbacks is the table registered with a global event reader. A
// nil entry means the engine skips events of that kind.
type GlobalEvtCallbacks struct {
	Unknown                       EvtCallback[UnknownEvent]
	BufferFlush                   EvtCallback[BufferFlush]
	MeasurementOnOff              EvtCallback[MeasurementOnOff]
	Enter                         EvtCallback[Enter]
	Leave                         EvtCallback[Leave]
	MpiSend                       EvtCallback[MpiSend]
	MpiIsend                      EvtCallback[MpiIsend]
	MpiIsendComplete              EvtCallback[MpiIsendComplete]
	MpiIrecvRequest               EvtCallback[MpiIrecvRequest]
	MpiRecv                       EvtCallback[MpiRecv]
	MpiIrecv                      EvtCallback[MpiIrecv]
	MpiRequestTest                EvtCallback[MpiRequestTest]
	MpiRequestCancelled           EvtCallback[MpiRequestCancelled]
	MpiCollectiveBegin            EvtCallback[MpiCollectiveBegin]
	MpiCollectiveEnd              EvtCallback[MpiCollectiveEnd]
	OmpFork                       EvtCallback[OmpFork]
	OmpJoin                       EvtCallback[OmpJoin]
	OmpAcquireLock                EvtCallback[OmpAcquireLock]
	OmpReleaseLock                EvtCallback[OmpReleaseLock]
	OmpTaskCreate                 EvtCallback[OmpTaskCreate]
	OmpTaskSwitch                 EvtCallback[OmpTaskSwitch]
	OmpTaskComplete               EvtCallback[OmpTaskComplete]
	Metric                        EvtCallback[Metric]
	ParameterString               EvtCallback[ParameterString]
	ParameterInt                  EvtCallback[ParameterInt]
	ParameterUnsignedInt          EvtCallback[ParameterUnsignedInt]
	RmaWinCreate                  EvtCallback[RmaWinCreate]
	RmaWinDestroy                 EvtCallback[RmaWinDestroy]
	RmaCollectiveBegin            EvtCallback[RmaCollectiveBegin]
	RmaCollectiveEnd              EvtCallback[RmaCollectiveEnd]
	RmaGroupSync                  EvtCallback[RmaGroupSync]
	RmaRequestLock                EvtCallback[RmaRequestLock]
	RmaAcquireLock                EvtCallback[RmaAcquireLock]
	RmaTryLock                    EvtCallback[RmaTryLock]
	RmaReleaseLock                EvtCallback[RmaReleaseLock]
	RmaSync                       EvtCallback[RmaSync]
	RmaWaitChange                 EvtCallback[RmaWaitChange]
	RmaPut                        EvtCallback[RmaPut]
	RmaGet                        EvtCallback[RmaGet]
	RmaAtomic                     EvtCallback[RmaAtomic]
	RmaOpCompleteBlocking         EvtCallback[RmaOpCompleteBlocking]
	RmaOpCompleteNonBlocking      EvtCallback[RmaOpCompleteNonBlocking]
	RmaOpTest                     EvtCallback[RmaOpTest]
	RmaOpCompleteRemote           EvtCallback[RmaOpCompleteRemote]
	ThreadFork                    EvtCallback[ThreadFork]
	ThreadJoin                    EvtCallback[ThreadJoin]
	ThreadTeamBegin               EvtCallback[ThreadTeamBegin]
	ThreadTeamEnd                 EvtCallback[ThreadTeamEnd]
	ThreadAcquireLock             EvtCallback[ThreadAcquireLock]
	ThreadReleaseLock             EvtCallback[ThreadReleaseLock]
	ThreadTaskCreate              EvtCallback[ThreadTaskCreate]
	ThreadTaskSwitch              EvtCallback[ThreadTaskSwitch]
	ThreadTaskComplete            EvtCallback[ThreadTaskComplete]
	ThreadCreate                  EvtCallback[ThreadCreate]
	ThreadBegin                   EvtCallback[ThreadBegin]
	ThreadWait                    EvtCallback[ThreadWait]
	ThreadEnd                     EvtCallback[ThreadEnd]
	CallingContextEnter           EvtCallback[CallingContextEnter]
	CallingContextLeave           EvtCallback[CallingContextLeave]
	CallingContextSample          EvtCallback[CallingContextSample]
	IoCreateHandle                EvtCallback[IoCreateHandle]
	IoDestroyHandle               EvtCallback[IoDestroyHandle]
	IoDuplicateHandle             EvtCallback[IoDuplicateHandle]
	IoSeek                        EvtCallback[IoSeek]
	IoChangeStatusFlags           EvtCallback[IoChangeStatusFlags]
	IoDeleteFile                  EvtCallback[IoDeleteFile]
	IoOperationBegin              EvtCallback[IoOperationBegin]
	IoOperationTest               EvtCallback[IoOperationTest]
	IoOperationIssued             EvtCallback[IoOperationIssued]
	IoOperationComplete           EvtCallback[IoOperationComplete]
	IoOperationCancelled          EvtCallback[IoOperationCancelled]
	IoAcquireLock                 EvtCallback[IoAcquireLock]
	IoReleaseLock                 EvtCallback[IoReleaseLock]
	IoTryLock                     EvtCallback[IoTryLock]
	ProgramBegin                  EvtCallback[ProgramBegin]
	ProgramEnd                    EvtCallback[ProgramEnd]
	NonBlockingCollectiveRequest  EvtCallback[NonBlockingCollectiveRequest]
	NonBlockingCollectiveComplete EvtCallback[NonBlockingCollectiveComplete]
	CommCreate                    EvtCallback[CommCreate]
	CommDestroy                   EvtCallback[CommDestroy]
}

func callEvt[T EvtRecord](cb EvtCallback[T], ud UserData, h *EventHeader, ev T) CallbackCode {
	if cb == nil {
		return CallbackSuccess
	}
	return cb(ud, h, &ev)
}

// Deliver invokes the entry matching the record's kind. Engines that hold
// records as values use it instead of switching on kinds themselves.
func (c *GlobalEvtCallbacks) Deliver(ud UserData, h *EventHeader, rec EvtRecord) CallbackCode {
	switch r := rec.(type) {
	case BufferFlush:
		return callEvt(c.BufferFlush, ud, h, r)
	case MeasurementOnOff:
		return callEvt(c.MeasurementOnOff, ud, h, r)
	case Enter:
		return callEvt(c.Enter, ud, h, r)
	case Leave:
		return callEvt(c.Leave, ud, h, r)
	case MpiSend:
		return callEvt(c.MpiSend, ud, h, r)
	case MpiIsend:
		return callEvt(c.MpiIsend, ud, h, r)
	case MpiIsendComplete:
		return callEvt(c.MpiIsendComplete, ud, h, r)
	case MpiIrecvRequest:
		return callEvt(c.MpiIrecvRequest, ud, h, r)
	case MpiRecv:
		return callEvt(c.MpiRecv, ud, h, r)
	case MpiIrecv:
		return callEvt(c.MpiIrecv, ud, h, r)
	case MpiRequestTest:
		return callEvt(c.MpiRequestTest, ud, h, r)
	case MpiRequestCancelled:
		return callEvt(c.MpiRequestCancelled, ud, h, r)
	case MpiCollectiveBegin:
		return callEvt(c.MpiCollectiveBegin, ud, h, r)
	case MpiCollectiveEnd:
		return callEvt(c.MpiCollectiveEnd, ud, h, r)
	case OmpFork:
		return callEvt(c.OmpFork, ud, h, r)
	case OmpJoin:
		return callEvt(c.OmpJoin, ud, h, r)
	case OmpAcquireLock:
		return callEvt(c.OmpAcquireLock, ud, h, r)
	case OmpReleaseLock:
		return callEvt(c.OmpReleaseLock, ud, h, r)
	case OmpTaskCreate:
		return callEvt(c.OmpTaskCreate, ud, h, r)
	case OmpTaskSwitch:
		return callEvt(c.OmpTaskSwitch, ud, h, r)
	case OmpTaskComplete:
		return callEvt(c.OmpTaskComplete, ud, h, r)
	case Metric:
		return callEvt(c.Metric, ud, h, r)
	case ParameterString:
		return callEvt(c.ParameterString, ud, h, r)
	case ParameterInt:
		return callEvt(c.ParameterInt, ud, h, r)
	case ParameterUnsignedInt:
		return callEvt(c.ParameterUnsignedInt, ud, h, r)
	case RmaWinCreate:
		return callEvt(c.RmaWinCreate, ud, h, r)
	case RmaWinDestroy:
		return callEvt(c.RmaWinDestroy, ud, h, r)
	case RmaCollectiveBegin:
		return callEvt(c.RmaCollectiveBegin, ud, h, r)
	case RmaCollectiveEnd:
		return callEvt(c.RmaCollectiveEnd, ud, h, r)
	case RmaGroupSync:
		return callEvt(c.RmaGroupSync, ud, h, r)
	case RmaRequestLock:
		return callEvt(c.RmaRequestLock, ud, h, r)
	case RmaAcquireLock:
		return callEvt(c.RmaAcquireLock, ud, h, r)
	case RmaTryLock:
		return callEvt(c.RmaTryLock, ud, h, r)
	case RmaReleaseLock:
		return callEvt(c.RmaReleaseLock, ud, h, r)
	case RmaSync:
		return callEvt(c.RmaSync, ud, h, r)
	case RmaWaitChange:
		return callEvt(c.RmaWaitChange, ud, h, r)
	case RmaPut:
		return callEvt(c.RmaPut, ud, h, r)
	case RmaGet:
		return callEvt(c.RmaGet, ud, h, r)
	case RmaAtomic:
		return callEvt(c.RmaAtomic, ud, h, r)
	case RmaOpCompleteBlocking:
		return callEvt(c.RmaOpCompleteBlocking, ud, h, r)
	case RmaOpCompleteNonBlocking:
		return callEvt(c.RmaOpCompleteNonBlocking, ud, h, r)
	case RmaOpTest:
		return callEvt(c.RmaOpTest, ud, h, r)
	case RmaOpCompleteRemote:
		return callEvt(c.RmaOpCompleteRemote, ud, h, r)
	case ThreadFork:
		return callEvt(c.ThreadFork, ud, h, r)
	case ThreadJoin:
		return callEvt(c.ThreadJoin, ud, h, r)
	case ThreadTeamBegin:
		return callEvt(c.ThreadTeamBegin, ud, h, r)
	case ThreadTeamEnd:
		return callEvt(c.ThreadTeamEnd, ud, h, r)
	case ThreadAcquireLock:
		return callEvt(c.ThreadAcquireLock, ud, h, r)
	case ThreadReleaseLock:
		return callEvt(c.ThreadReleaseLock, ud, h, r)
	case ThreadTaskCreate:
		return callEvt(c.ThreadTaskCreate, ud, h, r)
	case ThreadTaskSwitch:
		return callEvt(c.ThreadTaskSwitch, ud, h, r)
	case ThreadTaskComplete:
		return callEvt(c.ThreadTaskComplete, ud, h, r)
	case ThreadCreate:
		return callEvt(c.ThreadCreate, ud, h, r)
	case ThreadBegin:
		return callEvt(c.ThreadBegin, ud, h, r)
	case ThreadWait:
		return callEvt(c.ThreadWait, ud, h, r)
	case ThreadEnd:
		return callEvt(c.ThreadEnd, ud, h, r)
	case CallingContextEnter:
		return callEvt(c.CallingContextEnter, ud, h, r)
	case CallingContextLeave:
		return callEvt(c.CallingContextLeave, ud, h, r)
	case CallingContextSample:
		return callEvt(c.CallingContextSample, ud, h, r)
	case IoCreateHandle:
		return callEvt(c.IoCreateHandle, ud, h, r)
	case IoDestroyHandle:
		return callEvt(c.IoDestroyHandle, ud, h, r)
	case IoDuplicateHandle:
		return callEvt(c.IoDuplicateHandle, ud, h, r)
	case IoSeek:
		return callEvt(c.IoSeek, ud, h, r)
	case IoChangeStatusFlags:
		return callEvt(c.IoChangeStatusFlags, ud, h, r)
	case IoDeleteFile:
		return callEvt(c.IoDeleteFile, ud, h, r)
	case IoOperationBegin:
		return callEvt(c.IoOperationBegin, ud, h, r)
	case IoOperationTest:
		return callEvt(c.IoOperationTest, ud, h, r)
	case IoOperationIssued:
		return callEvt(c.IoOperationIssued, ud, h, r)
	case IoOperationComplete:
		return callEvt(c.IoOperationComplete, ud, h, r)
	case IoOperationCancelled:
		return callEvt(c.IoOperationCancelled, ud, h, r)
	case IoAcquireLock:
		return callEvt(c.IoAcquireLock, ud, h, r)
	case IoReleaseLock:
		return callEvt(c.IoReleaseLock, ud, h, r)
	case IoTryLock:
		return callEvt(c.IoTryLock, ud, h, r)
	case ProgramBegin:
		return callEvt(c.ProgramBegin, ud, h, r)
	case ProgramEnd:
		return callEvt(c.ProgramEnd, ud, h, r)
	case NonBlockingCollectiveRequest:
		return callEvt(c.NonBlockingCollectiveRequest, ud, h, r)
	case NonBlockingCollectiveComplete:
		return callEvt(c.NonBlockingCollectiveComplete, ud, h, r)
	case CommCreate:
		return callEvt(c.CommCreate, ud, h, r)
	case CommDestroy:
		return callEvt(c.CommDestroy, ud, h, r)
	}
	return callEvt(c.Unknown, ud, h, UnknownEvent{})
}
