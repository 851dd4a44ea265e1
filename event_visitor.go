package otf2

// EventVisitor receives events, one method per kind. Returning anything
// but CallbackSuccess stops the read. Embed NopEventVisitor to implement
// only the kinds of interest.
type EventVisitor interface {
	VisitUnknownEvent(h Header, ev UnknownEvent) CallbackCode
	VisitBufferFlush(h Header, ev BufferFlush) CallbackCode
	VisitMeasurementOnOff(h Header, ev MeasurementOnOff) CallbackCode
	VisitEnter(h Header, ev Enter) CallbackCode
	VisitLeave(h Header, ev Leave) CallbackCode
	VisitMpiSend(h Header, ev MpiSend) CallbackCode
	VisitMpiIsend(h Header, ev MpiIsend) CallbackCode
	VisitMpiIsendComplete(h Header, ev MpiIsendComplete) CallbackCode
	VisitMpiIrecvRequest(h Header, ev MpiIrecvRequest) CallbackCode
	VisitMpiRecv(h Header, ev MpiRecv) CallbackCode
	VisitMpiIrecv(h Header, ev MpiIrecv) CallbackCode
	VisitMpiRequestTest(h Header, ev MpiRequestTest) CallbackCode
	VisitMpiRequestCancelled(h Header, ev MpiRequestCancelled) CallbackCode
	VisitMpiCollectiveBegin(h Header, ev MpiCollectiveBegin) CallbackCode
	VisitMpiCollectiveEnd(h Header, ev MpiCollectiveEnd) CallbackCode
	VisitOmpFork(h Header, ev OmpFork) CallbackCode
	VisitOmpJoin(h Header, ev OmpJoin) CallbackCode
	VisitOmpAcquireLock(h Header, ev OmpAcquireLock) CallbackCode
	VisitOmpReleaseLock(h Header, ev OmpReleaseLock) CallbackCode
	VisitOmpTaskCreate(h Header, ev OmpTaskCreate) CallbackCode
	VisitOmpTaskSwitch(h Header, ev OmpTaskSwitch) CallbackCode
	VisitOmpTaskComplete(h Header, ev OmpTaskComplete) CallbackCode
	VisitMetric(h Header, ev Metric) CallbackCode
	VisitParameterString(h Header, ev ParameterString) CallbackCode
	VisitParameterInt(h Header, ev ParameterInt) CallbackCode
	VisitParameterUnsignedInt(h Header, ev ParameterUnsignedInt) CallbackCode
	VisitRmaWinCreate(h Header, ev RmaWinCreate) CallbackCode
	VisitRmaWinDestroy(h Header, ev RmaWinDestroy) CallbackCode
	VisitRmaCollectiveBegin(h Header, ev RmaCollectiveBegin) CallbackCode
	VisitRmaCollectiveEnd(h Header, ev RmaCollectiveEnd) CallbackCode
	VisitRmaGroupSync(h Header, ev RmaGroupSync) CallbackCode
	VisitRmaRequestLock(h Header, ev RmaRequestLock) CallbackCode
	VisitRmaAcquireLock(h Header, ev RmaAcquireLock) CallbackCode
	VisitRmaTryLock(h Header, ev RmaTryLock) CallbackCode
	VisitRmaReleaseLock(h Header, ev RmaReleaseLock) CallbackCode
	VisitRmaSync(h Header, ev RmaSync) CallbackCode
	VisitRmaWaitChange(h Header, ev RmaWaitChange) CallbackCode
	VisitRmaPut(h Header, ev RmaPut) CallbackCode
	VisitRmaGet(h Header, ev RmaGet) CallbackCode
	VisitRmaAtomic(h Header, ev RmaAtomic) CallbackCode
	VisitRmaOpCompleteBlocking(h Header, ev RmaOpCompleteBlocking) CallbackCode
	VisitRmaOpCompleteNonBlocking(h Header, ev RmaOpCompleteNonBlocking) CallbackCode
	VisitRmaOpTest(h Header, ev RmaOpTest) CallbackCode
	VisitRmaOpCompleteRemote(h Header, ev RmaOpCompleteRemote) CallbackCode
	VisitThreadFork(h Header, ev ThreadFork) CallbackCode
	VisitThreadJoin(h Header, ev ThreadJoin) CallbackCode
	VisitThreadTeamBegin(h Header, ev ThreadTeamBegin) CallbackCode
	VisitThreadTeamEnd(h Header, ev ThreadTeamEnd) CallbackCode
	VisitThreadAcquireLock(h Header, ev ThreadAcquireLock) CallbackCode
	VisitThreadReleaseLock(h Header, ev ThreadReleaseLock) CallbackCode
	VisitThreadTaskCreate(h Header, ev ThreadTaskCreate) CallbackCode
	VisitThreadTaskSwitch(h Header, ev ThreadTaskSwitch) CallbackCode
	VisitThreadTaskComplete(h Header, ev ThreadTaskComplete) CallbackCode
	VisitThreadCreate(h Header, ev ThreadCreate) CallbackCode
	VisitThreadBegin(h Header, ev ThreadBegin) CallbackCode
	VisitThreadWait(h Header, ev ThreadWait) CallbackCode
	VisitThreadEnd(h Header, ev ThreadEnd) CallbackCode
	VisitCallingContextEnter(h Header, ev CallingContextEnter) CallbackCode
	VisitCallingContextLeave(h Header, ev CallingContextLeave) CallbackCode
	VisitCallingContextSample(h Header, ev CallingContextSample) CallbackCode
	VisitIoCreateHandle(h Header, ev IoCreateHandle) CallbackCode
	VisitIoDestroyHandle(h Header, ev IoDestroyHandle) CallbackCode
	VisitIoDuplicateHandle(h Header, ev IoDuplicateHandle) CallbackCode
	VisitIoSeek(h Header, ev IoSeek) CallbackCode
	VisitIoChangeStatusFlags(h Header, ev IoChangeStatusFlags) CallbackCode
	VisitIoDeleteFile(h Header, ev IoDeleteFile) CallbackCode
	VisitIoOperationBegin(h Header, ev IoOperationBegin) CallbackCode
	VisitIoOperationTest(h Header, ev IoOperationTest) CallbackCode
	VisitIoOperationIssued(h Header, ev IoOperationIssued) CallbackCode
	VisitIoOperationComplete(h Header, ev IoOperationComplete) CallbackCode
	VisitIoOperationCancelled(h Header, ev IoOperationCancelled) CallbackCode
	VisitIoAcquireLock(h Header, ev IoAcquireLock) CallbackCode
	VisitIoReleaseLock(h Header, ev IoReleaseLock) CallbackCode
	VisitIoTryLock(h Header, ev IoTryLock) CallbackCode
	VisitProgramBegin(h Header, ev ProgramBegin) CallbackCode
	VisitProgramEnd(h Header, ev ProgramEnd) CallbackCode
	VisitNonBlockingCollectiveRequest(h Header, ev NonBlockingCollectiveRequest) CallbackCode
	VisitNonBlockingCollectiveComplete(h Header, ev NonBlockingCollectiveComplete) CallbackCode
	VisitCommCreate(h Header, ev CommCreate) CallbackCode
	VisitCommDestroy(h Header, ev CommDestroy) CallbackCode
}

// NopEventVisitor continues on every event.
type NopEventVisitor struct{}

func (NopEventVisitor) VisitUnknownEvent(Header, UnknownEvent) CallbackCode                                   { return CallbackSuccess }
func (NopEventVisitor) VisitBufferFlush(Header, BufferFlush) CallbackCode                                     { return CallbackSuccess }
func (NopEventVisitor) VisitMeasurementOnOff(Header, MeasurementOnOff) CallbackCode                           { return CallbackSuccess }
func (NopEventVisitor) VisitEnter(Header, Enter) CallbackCode                                                 { return CallbackSuccess }
func (NopEventVisitor) VisitLeave(Header, Leave) CallbackCode                                                 { return CallbackSuccess }
func (NopEventVisitor) VisitMpiSend(Header, MpiSend) CallbackCode                                             { return CallbackSuccess }
func (NopEventVisitor) VisitMpiIsend(Header, MpiIsend) CallbackCode                                           { return CallbackSuccess }
func (NopEventVisitor) VisitMpiIsendComplete(Header, MpiIsendComplete) CallbackCode                           { return CallbackSuccess }
func (NopEventVisitor) VisitMpiIrecvRequest(Header, MpiIrecvRequest) CallbackCode                             { return CallbackSuccess }
func (NopEventVisitor) VisitMpiRecv(Header, MpiRecv) CallbackCode                                             { return CallbackSuccess }
func (NopEventVisitor) VisitMpiIrecv(Header, MpiIrecv) CallbackCode                                           { return CallbackSuccess }
func (NopEventVisitor) VisitMpiRequestTest(Header, MpiRequestTest) CallbackCode                               { return CallbackSuccess }
func (NopEventVisitor) VisitMpiRequestCancelled(Header, MpiRequestCancelled) CallbackCode                     { return CallbackSuccess }
func (NopEventVisitor) VisitMpiCollectiveBegin(Header, MpiCollectiveBegin) CallbackCode                       { return CallbackSuccess }
func (NopEventVisitor) VisitMpiCollectiveEnd(Header, MpiCollectiveEnd) CallbackCode                           { return CallbackSuccess }
func (NopEventVisitor) VisitOmpFork(Header, OmpFork) CallbackCode                                             { return CallbackSuccess }
func (NopEventVisitor) VisitOmpJoin(Header, OmpJoin) CallbackCode                                             { return CallbackSuccess }
func (NopEventVisitor) VisitOmpAcquireLock(Header, OmpAcquireLock) CallbackCode                               { return CallbackSuccess }
func (NopEventVisitor) VisitOmpReleaseLock(Header, OmpReleaseLock) CallbackCode                               { return CallbackSuccess }
func (NopEventVisitor) VisitOmpTaskCreate(Header, OmpTaskCreate) CallbackCode                                 { return CallbackSuccess }
func (NopEventVisitor) VisitOmpTaskSwitch(Header, OmpTaskSwitch) CallbackCode                                 { return CallbackSuccess }
func (NopEventVisitor) VisitOmpTaskComplete(Header, OmpTaskComplete) CallbackCode                             { return CallbackSuccess }
func (NopEventVisitor) VisitMetric(Header, Metric) CallbackCode                                               { return CallbackSuccess }
func (NopEventVisitor) VisitParameterString(Header, ParameterString) CallbackCode                             { return CallbackSuccess }
func (NopEventVisitor) VisitParameterInt(Header, ParameterInt) CallbackCode                                   { return CallbackSuccess }
func (NopEventVisitor) VisitParameterUnsignedInt(Header, ParameterUnsignedInt) CallbackCode                   { return CallbackSuccess }
func (NopEventVisitor) VisitRmaWinCreate(Header, RmaWinCreate) CallbackCode                                   { return CallbackSuccess }
func (NopEventVisitor) VisitRmaWinDestroy(Header, RmaWinDestroy) CallbackCode                                 { return CallbackSuccess }
func (NopEventVisitor) VisitRmaCollectiveBegin(Header, RmaCollectiveBegin) CallbackCode                       { return CallbackSuccess }
func (NopEventVisitor) VisitRmaCollectiveEnd(Header, RmaCollectiveEnd) CallbackCode                           { return CallbackSuccess }
func (NopEventVisitor) VisitRmaGroupSync(Header, RmaGroupSync) CallbackCode                                   { return CallbackSuccess }
func (NopEventVisitor) VisitRmaRequestLock(Header, RmaRequestLock) CallbackCode                               { return CallbackSuccess }
func (NopEventVisitor) VisitRmaAcquireLock(Header, RmaAcquireLock) CallbackCode                               { return CallbackSuccess }
func (NopEventVisitor) VisitRmaTryLock(Header, RmaTryLock) CallbackCode                                       { return CallbackSuccess }
func (NopEventVisitor) VisitRmaReleaseLock(Header, RmaReleaseLock) CallbackCode                               { return CallbackSuccess }
func (NopEventVisitor) VisitRmaSync(Header, RmaSync) CallbackCode                                             { return CallbackSuccess }
func (NopEventVisitor) VisitRmaWaitChange(Header, RmaWaitChange) CallbackCode                                 { return CallbackSuccess }
func (NopEventVisitor) VisitRmaPut(Header, RmaPut) CallbackCode                                               { return CallbackSuccess }
func (NopEventVisitor) VisitRmaGet(Header, RmaGet) CallbackCode                                               { return CallbackSuccess }
func (NopEventVisitor) VisitRmaAtomic(Header, RmaAtomic) CallbackCode                                         { return CallbackSuccess }
func (NopEventVisitor) VisitRmaOpCompleteBlocking(Header, RmaOpCompleteBlocking) CallbackCode                 { return CallbackSuccess }
func (NopEventVisitor) VisitRmaOpCompleteNonBlocking(Header, RmaOpCompleteNonBlocking) CallbackCode           { return CallbackSuccess }
func (NopEventVisitor) VisitRmaOpTest(Header, RmaOpTest) CallbackCode                                         { return CallbackSuccess }
func (NopEventVisitor) VisitRmaOpCompleteRemote(Header, RmaOpCompleteRemote) CallbackCode                     { return CallbackSuccess }
func (NopEventVisitor) VisitThreadFork(Header, ThreadFork) CallbackCode                                       { return CallbackSuccess }
func (NopEventVisitor) VisitThreadJoin(Header, ThreadJoin) CallbackCode                                       { return CallbackSuccess }
func (NopEventVisitor) VisitThreadTeamBegin(Header, ThreadTeamBegin) CallbackCode                             { return CallbackSuccess }
func (NopEventVisitor) VisitThreadTeamEnd(Header, ThreadTeamEnd) CallbackCode                                 { return CallbackSuccess }
func (NopEventVisitor) VisitThreadAcquireLock(Header, ThreadAcquireLock) CallbackCode                         { return CallbackSuccess }
func (NopEventVisitor) VisitThreadReleaseLock(Header, ThreadReleaseLock) CallbackCode                         { return CallbackSuccess }
func (NopEventVisitor) VisitThreadTaskCreate(Header, ThreadTaskCreate) CallbackCode                           { return CallbackSuccess }
func (NopEventVisitor) VisitThreadTaskSwitch(Header, ThreadTaskSwitch) CallbackCode                           { return CallbackSuccess }
func (NopEventVisitor) VisitThreadTaskComplete(Header, ThreadTaskComplete) CallbackCode                       { return CallbackSuccess }
func (NopEventVisitor) VisitThreadCreate(Header, ThreadCreate) CallbackCode                                   { return CallbackSuccess }
func (NopEventVisitor) VisitThreadBegin(Header, ThreadBegin) CallbackCode                                     { return CallbackSuccess }
func (NopEventVisitor) VisitThreadWait(Header, ThreadWait) CallbackCode                                       { return CallbackSuccess }
func (NopEventVisitor) VisitThreadEnd(Header, ThreadEnd) CallbackCode                                         { return CallbackSuccess }
func (NopEventVisitor) VisitCallingContextEnter(Header, CallingContextEnter) CallbackCode                     { return CallbackSuccess }
func (NopEventVisitor) VisitCallingContextLeave(Header, CallingContextLeave) CallbackCode                     { return CallbackSuccess }
func (NopEventVisitor) VisitCallingContextSample(Header, CallingContextSample) CallbackCode                   { return CallbackSuccess }
func (NopEventVisitor) VisitIoCreateHandle(Header, IoCreateHandle) CallbackCode                               { return CallbackSuccess }
func (NopEventVisitor) VisitIoDestroyHandle(Header, IoDestroyHandle) CallbackCode                             { return CallbackSuccess }
func (NopEventVisitor) VisitIoDuplicateHandle(Header, IoDuplicateHandle) CallbackCode                         { return CallbackSuccess }
func (NopEventVisitor) VisitIoSeek(Header, IoSeek) CallbackCode                                               { return CallbackSuccess }
func (NopEventVisitor) VisitIoChangeStatusFlags(Header, IoChangeStatusFlags) CallbackCode                     { return CallbackSuccess }
func (NopEventVisitor) VisitIoDeleteFile(Header, IoDeleteFile) CallbackCode                                   { return CallbackSuccess }
func (NopEventVisitor) VisitIoOperationBegin(Header, IoOperationBegin) CallbackCode                           { return CallbackSuccess }
func (NopEventVisitor) VisitIoOperationTest(Header, IoOperationTest) CallbackCode                             { return CallbackSuccess }
func (NopEventVisitor) VisitIoOperationIssued(Header, IoOperationIssued) CallbackCode                         { return CallbackSuccess }
func (NopEventVisitor) VisitIoOperationComplete(Header, IoOperationComplete) CallbackCode                     { return CallbackSuccess }
func (NopEventVisitor) VisitIoOperationCancelled(Header, IoOperationCancelled) CallbackCode                   { return CallbackSuccess }
func (NopEventVisitor) VisitIoAcquireLock(Header, IoAcquireLock) CallbackCode                                 { return CallbackSuccess }
func (NopEventVisitor) VisitIoReleaseLock(Header, IoReleaseLock) CallbackCode                                 { return CallbackSuccess }
func (NopEventVisitor) VisitIoTryLock(Header, IoTryLock) CallbackCode                                         { return CallbackSuccess }
func (NopEventVisitor) VisitProgramBegin(Header, ProgramBegin) CallbackCode                                   { return CallbackSuccess }
func (NopEventVisitor) VisitProgramEnd(Header, ProgramEnd) CallbackCode                                       { return CallbackSuccess }
func (NopEventVisitor) VisitNonBlockingCollectiveRequest(Header, NonBlockingCollectiveRequest) CallbackCode   { return CallbackSuccess }
func (NopEventVisitor) VisitNonBlockingCollectiveComplete(Header, NonBlockingCollectiveComplete) CallbackCode { return CallbackSuccess }
func (NopEventVisitor) VisitCommCreate(Header, CommCreate) CallbackCode                                       { return CallbackSuccess }
func (NopEventVisitor) VisitCommDestroy(Header, CommDestroy) CallbackCode                                     { return CallbackSuccess }

// acceptEvent calls the method of v matching the kind of r.
func acceptEvent(v EventVisitor, h Header, r EventRecord) CallbackCode {
	switch r := r.(type) {
	case BufferFlush:
		return v.VisitBufferFlush(h, r)
	case MeasurementOnOff:
		return v.VisitMeasurementOnOff(h, r)
	case Enter:
		return v.VisitEnter(h, r)
	case Leave:
		return v.VisitLeave(h, r)
	case MpiSend:
		return v.VisitMpiSend(h, r)
	case MpiIsend:
		return v.VisitMpiIsend(h, r)
	case MpiIsendComplete:
		return v.VisitMpiIsendComplete(h, r)
	case MpiIrecvRequest:
		return v.VisitMpiIrecvRequest(h, r)
	case MpiRecv:
		return v.VisitMpiRecv(h, r)
	case MpiIrecv:
		return v.VisitMpiIrecv(h, r)
	case MpiRequestTest:
		return v.VisitMpiRequestTest(h, r)
	case MpiRequestCancelled:
		return v.VisitMpiRequestCancelled(h, r)
	case MpiCollectiveBegin:
		return v.VisitMpiCollectiveBegin(h, r)
	case MpiCollectiveEnd:
		return v.VisitMpiCollectiveEnd(h, r)
	case OmpFork:
		return v.VisitOmpFork(h, r)
	case OmpJoin:
		return v.VisitOmpJoin(h, r)
	case OmpAcquireLock:
		return v.VisitOmpAcquireLock(h, r)
	case OmpReleaseLock:
		return v.VisitOmpReleaseLock(h, r)
	case OmpTaskCreate:
		return v.VisitOmpTaskCreate(h, r)
	case OmpTaskSwitch:
		return v.VisitOmpTaskSwitch(h, r)
	case OmpTaskComplete:
		return v.VisitOmpTaskComplete(h, r)
	case Metric:
		return v.VisitMetric(h, r)
	case ParameterString:
		return v.VisitParameterString(h, r)
	case ParameterInt:
		return v.VisitParameterInt(h, r)
	case ParameterUnsignedInt:
		return v.VisitParameterUnsignedInt(h, r)
	case RmaWinCreate:
		return v.VisitRmaWinCreate(h, r)
	case RmaWinDestroy:
		return v.VisitRmaWinDestroy(h, r)
	case RmaCollectiveBegin:
		return v.VisitRmaCollectiveBegin(h, r)
	case RmaCollectiveEnd:
		return v.VisitRmaCollectiveEnd(h, r)
	case RmaGroupSync:
		return v.VisitRmaGroupSync(h, r)
	case RmaRequestLock:
		return v.VisitRmaRequestLock(h, r)
	case RmaAcquireLock:
		return v.VisitRmaAcquireLock(h, r)
	case RmaTryLock:
		return v.VisitRmaTryLock(h, r)
	case RmaReleaseLock:
		return v.VisitRmaReleaseLock(h, r)
	case RmaSync:
		return v.VisitRmaSync(h, r)
	case RmaWaitChange:
		return v.VisitRmaWaitChange(h, r)
	case RmaPut:
		return v.VisitRmaPut(h, r)
	case RmaGet:
		return v.VisitRmaGet(h, r)
	case RmaAtomic:
		return v.VisitRmaAtomic(h, r)
	case RmaOpCompleteBlocking:
		return v.VisitRmaOpCompleteBlocking(h, r)
	case RmaOpCompleteNonBlocking:
		return v.VisitRmaOpCompleteNonBlocking(h, r)
	case RmaOpTest:
		return v.VisitRmaOpTest(h, r)
	case RmaOpCompleteRemote:
		return v.VisitRmaOpCompleteRemote(h, r)
	case ThreadFork:
		return v.VisitThreadFork(h, r)
	case ThreadJoin:
		return v.VisitThreadJoin(h, r)
	case ThreadTeamBegin:
		return v.VisitThreadTeamBegin(h, r)
	case ThreadTeamEnd:
		return v.VisitThreadTeamEnd(h, r)
	case ThreadAcquireLock:
		return v.VisitThreadAcquireLock(h, r)
	case ThreadReleaseLock:
		return v.VisitThreadReleaseLock(h, r)
	case ThreadTaskCreate:
		return v.VisitThreadTaskCreate(h, r)
	case ThreadTaskSwitch:
		return v.VisitThreadTaskSwitch(h, r)
	case ThreadTaskComplete:
		return v.VisitThreadTaskComplete(h, r)
	case ThreadCreate:
		return v.VisitThreadCreate(h, r)
	case ThreadBegin:
		return v.VisitThreadBegin(h, r)
	case ThreadWait:
		return v.VisitThreadWait(h, r)
	case ThreadEnd:
		return v.VisitThreadEnd(h, r)
	case CallingContextEnter:
		return v.VisitCallingContextEnter(h, r)
	case CallingContextLeave:
		return v.VisitCallingContextLeave(h, r)
	case CallingContextSample:
		return v.VisitCallingContextSample(h, r)
	case IoCreateHandle:
		return v.VisitIoCreateHandle(h, r)
	case IoDestroyHandle:
		return v.VisitIoDestroyHandle(h, r)
	case IoDuplicateHandle:
		return v.VisitIoDuplicateHandle(h, r)
	case IoSeek:
		return v.VisitIoSeek(h, r)
	case IoChangeStatusFlags:
		return v.VisitIoChangeStatusFlags(h, r)
	case IoDeleteFile:
		return v.VisitIoDeleteFile(h, r)
	case IoOperationBegin:
		return v.VisitIoOperationBegin(h, r)
	case IoOperationTest:
		return v.VisitIoOperationTest(h, r)
	case IoOperationIssued:
		return v.VisitIoOperationIssued(h, r)
	case IoOperationComplete:
		return v.VisitIoOperationComplete(h, r)
	case IoOperationCancelled:
		return v.VisitIoOperationCancelled(h, r)
	case IoAcquireLock:
		return v.VisitIoAcquireLock(h, r)
	case IoReleaseLock:
		return v.VisitIoReleaseLock(h, r)
	case IoTryLock:
		return v.VisitIoTryLock(h, r)
	case ProgramBegin:
		return v.VisitProgramBegin(h, r)
	case ProgramEnd:
		return v.VisitProgramEnd(h, r)
	case NonBlockingCollectiveRequest:
		return v.VisitNonBlockingCollectiveRequest(h, r)
	case NonBlockingCollectiveComplete:
		return v.VisitNonBlockingCollectiveComplete(h, r)
	case CommCreate:
		return v.VisitCommCreate(h, r)
	case CommDestroy:
		return v.VisitCommDestroy(h, r)
	}
	return v.VisitUnknownEvent(h, UnknownEvent{})
}

// EventVisitors visits every event with each visitor in order. The first
// code other than CallbackSuccess is returned and the remaining visitors
// do not see that event.
type EventVisitors []EventVisitor

func (m EventVisitors) visit(h Header, r EventRecord) CallbackCode {
	for _, v := range m {
		if code := acceptEvent(v, h, r); code != CallbackSuccess {
			return code
		}
	}
	return CallbackSuccess
}

func (m EventVisitors) VisitUnknownEvent(h Header, ev UnknownEvent) CallbackCode                                   { return m.visit(h, ev) }
func (m EventVisitors) VisitBufferFlush(h Header, ev BufferFlush) CallbackCode                                     { return m.visit(h, ev) }
func (m EventVisitors) VisitMeasurementOnOff(h Header, ev MeasurementOnOff) CallbackCode                           { return m.visit(h, ev) }
func (m EventVisitors) VisitEnter(h Header, ev Enter) CallbackCode                                                 { return m.visit(h, ev) }
func (m EventVisitors) VisitLeave(h Header, ev Leave) CallbackCode                                                 { return m.visit(h, ev) }
func (m EventVisitors) VisitMpiSend(h Header, ev MpiSend) CallbackCode                                             { return m.visit(h, ev) }
func (m EventVisitors) VisitMpiIsend(h Header, ev MpiIsend) CallbackCode                                           { return m.visit(h, ev) }
func (m EventVisitors) VisitMpiIsendComplete(h Header, ev MpiIsendComplete) CallbackCode                           { return m.visit(h, ev) }
func (m EventVisitors) VisitMpiIrecvRequest(h Header, ev MpiIrecvRequest) CallbackCode                             { return m.visit(h, ev) }
func (m EventVisitors) VisitMpiRecv(h Header, ev MpiRecv) CallbackCode                                             { return m.visit(h, ev) }
func (m EventVisitors) VisitMpiIrecv(h Header, ev MpiIrecv) CallbackCode                                           { return m.visit(h, ev) }
func (m EventVisitors) VisitMpiRequestTest(h Header, ev MpiRequestTest) CallbackCode                               { return m.visit(h, ev) }
func (m EventVisitors) VisitMpiRequestCancelled(h Header, ev MpiRequestCancelled) CallbackCode                     { return m.visit(h, ev) }
func (m EventVisitors) VisitMpiCollectiveBegin(h Header, ev MpiCollectiveBegin) CallbackCode                       { return m.visit(h, ev) }
func (m EventVisitors) VisitMpiCollectiveEnd(h Header, ev MpiCollectiveEnd) CallbackCode                           { return m.visit(h, ev) }
func (m EventVisitors) VisitOmpFork(h Header, ev OmpFork) CallbackCode                                             { return m.visit(h, ev) }
func (m EventVisitors) VisitOmpJoin(h Header, ev OmpJoin) CallbackCode                                             { return m.visit(h, ev) }
func (m EventVisitors) VisitOmpAcquireLock(h Header, ev OmpAcquireLock) CallbackCode                               { return m.visit(h, ev) }
func (m EventVisitors) VisitOmpReleaseLock(h Header, ev OmpReleaseLock) CallbackCode                               { return m.visit(h, ev) }
func (m EventVisitors) VisitOmpTaskCreate(h Header, ev OmpTaskCreate) CallbackCode                                 { return m.visit(h, ev) }
func (m EventVisitors) VisitOmpTaskSwitch(h Header, ev OmpTaskSwitch) CallbackCode                                 { return m.visit(h, ev) }
func (m EventVisitors) VisitOmpTaskComplete(h Header, ev OmpTaskComplete) CallbackCode                             { return m.visit(h, ev) }
func (m EventVisitors) VisitMetric(h Header, ev Metric) CallbackCode                                               { return m.visit(h, ev) }
func (m EventVisitors) VisitParameterString(h Header, ev ParameterString) CallbackCode                             { return m.visit(h, ev) }
func (m EventVisitors) VisitParameterInt(h Header, ev ParameterInt) CallbackCode                                   { return m.visit(h, ev) }
func (m EventVisitors) VisitParameterUnsignedInt(h Header, ev ParameterUnsignedInt) CallbackCode                   { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaWinCreate(h Header, ev RmaWinCreate) CallbackCode                                   { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaWinDestroy(h Header, ev RmaWinDestroy) CallbackCode                                 { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaCollectiveBegin(h Header, ev RmaCollectiveBegin) CallbackCode                       { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaCollectiveEnd(h Header, ev RmaCollectiveEnd) CallbackCode                           { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaGroupSync(h Header, ev RmaGroupSync) CallbackCode                                   { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaRequestLock(h Header, ev RmaRequestLock) CallbackCode                               { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaAcquireLock(h Header, ev RmaAcquireLock) CallbackCode                               { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaTryLock(h Header, ev RmaTryLock) CallbackCode                                       { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaReleaseLock(h Header, ev RmaReleaseLock) CallbackCode                               { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaSync(h Header, ev RmaSync) CallbackCode                                             { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaWaitChange(h Header, ev RmaWaitChange) CallbackCode                                 { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaPut(h Header, ev RmaPut) CallbackCode                                               { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaGet(h Header, ev RmaGet) CallbackCode                                               { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaAtomic(h Header, ev RmaAtomic) CallbackCode                                         { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaOpCompleteBlocking(h Header, ev RmaOpCompleteBlocking) CallbackCode                 { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaOpCompleteNonBlocking(h Header, ev RmaOpCompleteNonBlocking) CallbackCode           { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaOpTest(h Header, ev RmaOpTest) CallbackCode                                         { return m.visit(h, ev) }
func (m EventVisitors) VisitRmaOpCompleteRemote(h Header, ev RmaOpCompleteRemote) CallbackCode                     { return m.visit(h, ev) }
func (m EventVisitors) VisitThreadFork(h Header, ev ThreadFork) CallbackCode                                       { return m.visit(h, ev) }
func (m EventVisitors) VisitThreadJoin(h Header, ev ThreadJoin) CallbackCode                                       { return m.visit(h, ev) }
func (m EventVisitors) VisitThreadTeamBegin(h Header, ev ThreadTeamBegin) CallbackCode                             { return m.visit(h, ev) }
func (m EventVisitors) VisitThreadTeamEnd(h Header, ev ThreadTeamEnd) CallbackCode                                 { return m.visit(h, ev) }
func (m EventVisitors) VisitThreadAcquireLock(h Header, ev ThreadAcquireLock) CallbackCode                         { return m.visit(h, ev) }
func (m EventVisitors) VisitThreadReleaseLock(h Header, ev ThreadReleaseLock) CallbackCode                         { return m.visit(h, ev) }
func (m EventVisitors) VisitThreadTaskCreate(h Header, ev ThreadTaskCreate) CallbackCode                           { return m.visit(h, ev) }
func (m EventVisitors) VisitThreadTaskSwitch(h Header, ev ThreadTaskSwitch) CallbackCode                           { return m.visit(h, ev) }
func (m EventVisitors) VisitThreadTaskComplete(h Header, ev ThreadTaskComplete) CallbackCode                       { return m.visit(h, ev) }
func (m EventVisitors) VisitThreadCreate(h Header, ev ThreadCreate) CallbackCode                                   { return m.visit(h, ev) }
func (m EventVisitors) VisitThreadBegin(h Header, ev ThreadBegin) CallbackCode                                     { return m.visit(h, ev) }
func (m EventVisitors) VisitThreadWait(h Header, ev ThreadWait) CallbackCode                                       { return m.visit(h, ev) }
func (m EventVisitors) VisitThreadEnd(h Header, ev ThreadEnd) CallbackCode                                         { return m.visit(h, ev) }
func (m EventVisitors) VisitCallingContextEnter(h Header, ev CallingContextEnter) CallbackCode                     { return m.visit(h, ev) }
func (m EventVisitors) VisitCallingContextLeave(h Header, ev CallingContextLeave) CallbackCode                     { return m.visit(h, ev) }
func (m EventVisitors) VisitCallingContextSample(h Header, ev CallingContextSample) CallbackCode                   { return m.visit(h, ev) }
func (m EventVisitors) VisitIoCreateHandle(h Header, ev IoCreateHandle) CallbackCode                               { return m.visit(h, ev) }
func (m EventVisitors) VisitIoDestroyHandle(h Header, ev IoDestroyHandle) CallbackCode                             { return m.visit(h, ev) }
func (m EventVisitors) VisitIoDuplicateHandle(h Header, ev IoDuplicateHandle) CallbackCode                         { return m.visit(h, ev) }
func (m EventVisitors) VisitIoSeek(h Header, ev IoSeek) CallbackCode                                               { return m.visit(h, ev) }
func (m EventVisitors) VisitIoChangeStatusFlags(h Header, ev IoChangeStatusFlags) CallbackCode                     { return m.visit(h, ev) }
func (m EventVisitors) VisitIoDeleteFile(h Header, ev IoDeleteFile) CallbackCode                                   { return m.visit(h, ev) }
func (m EventVisitors) VisitIoOperationBegin(h Header, ev IoOperationBegin) CallbackCode                           { return m.visit(h, ev) }
func (m EventVisitors) VisitIoOperationTest(h Header, ev IoOperationTest) CallbackCode                             { return m.visit(h, ev) }
func (m EventVisitors) VisitIoOperationIssued(h Header, ev IoOperationIssued) CallbackCode                         { return m.visit(h, ev) }
func (m EventVisitors) VisitIoOperationComplete(h Header, ev IoOperationComplete) CallbackCode                     { return m.visit(h, ev) }
func (m EventVisitors) VisitIoOperationCancelled(h Header, ev IoOperationCancelled) CallbackCode                   { return m.visit(h, ev) }
func (m EventVisitors) VisitIoAcquireLock(h Header, ev IoAcquireLock) CallbackCode                                 { return m.visit(h, ev) }
func (m EventVisitors) VisitIoReleaseLock(h Header, ev IoReleaseLock) CallbackCode                                 { return m.visit(h, ev) }
func (m EventVisitors) VisitIoTryLock(h Header, ev IoTryLock) CallbackCode                                         { return m.visit(h, ev) }
func (m EventVisitors) VisitProgramBegin(h Header, ev ProgramBegin) CallbackCode                                   { return m.visit(h, ev) }
func (m EventVisitors) VisitProgramEnd(h Header, ev ProgramEnd) CallbackCode                                       { return m.visit(h, ev) }
func (m EventVisitors) VisitNonBlockingCollectiveRequest(h Header, ev NonBlockingCollectiveRequest) CallbackCode   { return m.visit(h, ev) }
func (m EventVisitors) VisitNonBlockingCollectiveComplete(h Header, ev NonBlockingCollectiveComplete) CallbackCode { return m.visit(h, ev) }
func (m EventVisitors) VisitCommCreate(h Header, ev CommCreate) CallbackCode                                       { return m.visit(h, ev) }
func (m EventVisitors) VisitCommDestroy(h Header, ev CommDestroy) CallbackCode                                     { return m.visit(h, ev) }

// EventFunc adapts a function to an EventVisitor receiving every kind.
type EventFunc func(Event) CallbackCode

func (f EventFunc) VisitUnknownEvent(h Header, ev UnknownEvent) CallbackCode                                   { return f(Event{h, ev}) }
func (f EventFunc) VisitBufferFlush(h Header, ev BufferFlush) CallbackCode                                     { return f(Event{h, ev}) }
func (f EventFunc) VisitMeasurementOnOff(h Header, ev MeasurementOnOff) CallbackCode                           { return f(Event{h, ev}) }
func (f EventFunc) VisitEnter(h Header, ev Enter) CallbackCode                                                 { return f(Event{h, ev}) }
func (f EventFunc) VisitLeave(h Header, ev Leave) CallbackCode                                                 { return f(Event{h, ev}) }
func (f EventFunc) VisitMpiSend(h Header, ev MpiSend) CallbackCode                                             { return f(Event{h, ev}) }
func (f EventFunc) VisitMpiIsend(h Header, ev MpiIsend) CallbackCode                                           { return f(Event{h, ev}) }
func (f EventFunc) VisitMpiIsendComplete(h Header, ev MpiIsendComplete) CallbackCode                           { return f(Event{h, ev}) }
func (f EventFunc) VisitMpiIrecvRequest(h Header, ev MpiIrecvRequest) CallbackCode                             { return f(Event{h, ev}) }
func (f EventFunc) VisitMpiRecv(h Header, ev MpiRecv) CallbackCode                                             { return f(Event{h, ev}) }
func (f EventFunc) VisitMpiIrecv(h Header, ev MpiIrecv) CallbackCode                                           { return f(Event{h, ev}) }
func (f EventFunc) VisitMpiRequestTest(h Header, ev MpiRequestTest) CallbackCode                               { return f(Event{h, ev}) }
func (f EventFunc) VisitMpiRequestCancelled(h Header, ev MpiRequestCancelled) CallbackCode                     { return f(Event{h, ev}) }
func (f EventFunc) VisitMpiCollectiveBegin(h Header, ev MpiCollectiveBegin) CallbackCode                       { return f(Event{h, ev}) }
func (f EventFunc) VisitMpiCollectiveEnd(h Header, ev MpiCollectiveEnd) CallbackCode                           { return f(Event{h, ev}) }
func (f EventFunc) VisitOmpFork(h Header, ev OmpFork) CallbackCode                                             { return f(Event{h, ev}) }
func (f EventFunc) VisitOmpJoin(h Header, ev OmpJoin) CallbackCode                                             { return f(Event{h, ev}) }
func (f EventFunc) VisitOmpAcquireLock(h Header, ev OmpAcquireLock) CallbackCode                               { return f(Event{h, ev}) }
func (f EventFunc) VisitOmpReleaseLock(h Header, ev OmpReleaseLock) CallbackCode                               { return f(Event{h, ev}) }
func (f EventFunc) VisitOmpTaskCreate(h Header, ev OmpTaskCreate) CallbackCode                                 { return f(Event{h, ev}) }
func (f EventFunc) VisitOmpTaskSwitch(h Header, ev OmpTaskSwitch) CallbackCode                                 { return f(Event{h, ev}) }
func (f EventFunc) VisitOmpTaskComplete(h Header, ev OmpTaskComplete) CallbackCode                             { return f(Event{h, ev}) }
func (f EventFunc) VisitMetric(h Header, ev Metric) CallbackCode                                               { return f(Event{h, ev}) }
func (f EventFunc) VisitParameterString(h Header, ev ParameterString) CallbackCode                             { return f(Event{h, ev}) }
func (f EventFunc) VisitParameterInt(h Header, ev ParameterInt) CallbackCode                                   { return f(Event{h, ev}) }
func (f EventFunc) VisitParameterUnsignedInt(h Header, ev ParameterUnsignedInt) CallbackCode                   { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaWinCreate(h Header, ev RmaWinCreate) CallbackCode                                   { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaWinDestroy(h Header, ev RmaWinDestroy) CallbackCode                                 { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaCollectiveBegin(h Header, ev RmaCollectiveBegin) CallbackCode                       { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaCollectiveEnd(h Header, ev RmaCollectiveEnd) CallbackCode                           { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaGroupSync(h Header, ev RmaGroupSync) CallbackCode                                   { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaRequestLock(h Header, ev RmaRequestLock) CallbackCode                               { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaAcquireLock(h Header, ev RmaAcquireLock) CallbackCode                               { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaTryLock(h Header, ev RmaTryLock) CallbackCode                                       { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaReleaseLock(h Header, ev RmaReleaseLock) CallbackCode                               { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaSync(h Header, ev RmaSync) CallbackCode                                             { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaWaitChange(h Header, ev RmaWaitChange) CallbackCode                                 { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaPut(h Header, ev RmaPut) CallbackCode                                               { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaGet(h Header, ev RmaGet) CallbackCode                                               { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaAtomic(h Header, ev RmaAtomic) CallbackCode                                         { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaOpCompleteBlocking(h Header, ev RmaOpCompleteBlocking) CallbackCode                 { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaOpCompleteNonBlocking(h Header, ev RmaOpCompleteNonBlocking) CallbackCode           { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaOpTest(h Header, ev RmaOpTest) CallbackCode                                         { return f(Event{h, ev}) }
func (f EventFunc) VisitRmaOpCompleteRemote(h Header, ev RmaOpCompleteRemote) CallbackCode                     { return f(Event{h, ev}) }
func (f EventFunc) VisitThreadFork(h Header, ev ThreadFork) CallbackCode                                       { return f(Event{h, ev}) }
func (f EventFunc) VisitThreadJoin(h Header, ev ThreadJoin) CallbackCode                                       { return f(Event{h, ev}) }
func (f EventFunc) VisitThreadTeamBegin(h Header, ev ThreadTeamBegin) CallbackCode                             { return f(Event{h, ev}) }
func (f EventFunc) VisitThreadTeamEnd(h Header, ev ThreadTeamEnd) CallbackCode                                 { return f(Event{h, ev}) }
func (f EventFunc) VisitThreadAcquireLock(h Header, ev ThreadAcquireLock) CallbackCode                         { return f(Event{h, ev}) }
func (f EventFunc) VisitThreadReleaseLock(h Header, ev ThreadReleaseLock) CallbackCode                         { return f(Event{h, ev}) }
func (f EventFunc) VisitThreadTaskCreate(h Header, ev ThreadTaskCreate) CallbackCode                           { return f(Event{h, ev}) }
func (f EventFunc) VisitThreadTaskSwitch(h Header, ev ThreadTaskSwitch) CallbackCode                           { return f(Event{h, ev}) }
func (f EventFunc) VisitThreadTaskComplete(h Header, ev ThreadTaskComplete) CallbackCode                       { return f(Event{h, ev}) }
func (f EventFunc) VisitThreadCreate(h Header, ev ThreadCreate) CallbackCode                                   { return f(Event{h, ev}) }
func (f EventFunc) VisitThreadBegin(h Header, ev ThreadBegin) CallbackCode                                     { return f(Event{h, ev}) }
func (f EventFunc) VisitThreadWait(h Header, ev ThreadWait) CallbackCode                                       { return f(Event{h, ev}) }
func (f EventFunc) VisitThreadEnd(h Header, ev ThreadEnd) CallbackCode                                         { return f(Event{h, ev}) }
func (f EventFunc) VisitCallingContextEnter(h Header, ev CallingContextEnter) CallbackCode                     { return f(Event{h, ev}) }
func (f EventFunc) VisitCallingContextLeave(h Header, ev CallingContextLeave) CallbackCode                     { return f(Event{h, ev}) }
func (f EventFunc) VisitCallingContextSample(h Header, ev CallingContextSample) CallbackCode                   { return f(Event{h, ev}) }
func (f EventFunc) VisitIoCreateHandle(h Header, ev IoCreateHandle) CallbackCode                               { return f(Event{h, ev}) }
func (f EventFunc) VisitIoDestroyHandle(h Header, ev IoDestroyHandle) CallbackCode                             { return f(Event{h, ev}) }
func (f EventFunc) VisitIoDuplicateHandle(h Header, ev IoDuplicateHandle) CallbackCode                         { return f(Event{h, ev}) }
func (f EventFunc) VisitIoSeek(h Header, ev IoSeek) CallbackCode                                               { return f(Event{h, ev}) }
func (f EventFunc) VisitIoChangeStatusFlags(h Header, ev IoChangeStatusFlags) CallbackCode                     { return f(Event{h, ev}) }
func (f EventFunc) VisitIoDeleteFile(h Header, ev IoDeleteFile) CallbackCode                                   { return f(Event{h, ev}) }
func (f EventFunc) VisitIoOperationBegin(h Header, ev IoOperationBegin) CallbackCode                           { return f(Event{h, ev}) }
func (f EventFunc) VisitIoOperationTest(h Header, ev IoOperationTest) CallbackCode                             { return f(Event{h, ev}) }
func (f EventFunc) VisitIoOperationIssued(h Header, ev IoOperationIssued) CallbackCode                         { return f(Event{h, ev}) }
func (f EventFunc) VisitIoOperationComplete(h Header, ev IoOperationComplete) CallbackCode                     { return f(Event{h, ev}) }
func (f EventFunc) VisitIoOperationCancelled(h Header, ev IoOperationCancelled) CallbackCode                   { return f(Event{h, ev}) }
func (f EventFunc) VisitIoAcquireLock(h Header, ev IoAcquireLock) CallbackCode                                 { return f(Event{h, ev}) }
func (f EventFunc) VisitIoReleaseLock(h Header, ev IoReleaseLock) CallbackCode                                 { return f(Event{h, ev}) }
func (f EventFunc) VisitIoTryLock(h Header, ev IoTryLock) CallbackCode                                         { return f(Event{h, ev}) }
func (f EventFunc) VisitProgramBegin(h Header, ev ProgramBegin) CallbackCode                                   { return f(Event{h, ev}) }
func (f EventFunc) VisitProgramEnd(h Header, ev ProgramEnd) CallbackCode                                       { return f(Event{h, ev}) }
func (f EventFunc) VisitNonBlockingCollectiveRequest(h Header, ev NonBlockingCollectiveRequest) CallbackCode   { return f(Event{h, ev}) }
func (f EventFunc) VisitNonBlockingCollectiveComplete(h Header, ev NonBlockingCollectiveComplete) CallbackCode { return f(Event{h, ev}) }
func (f EventFunc) VisitCommCreate(h Header, ev CommCreate) CallbackCode                                       { return f(Event{h, ev}) }
func (f EventFunc) VisitCommDestroy(h Header, ev CommDestroy) CallbackCode                                     { return f(Event{h, ev}) }
