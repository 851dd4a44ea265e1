package otf2

import "github.com/getsentry/otf2/internal/native"

func onDefinition[T Definition](ud native.UserData, def *T) CallbackCode {
	return definitionTarget(ud).dispatch(*def)
}

func onEvent[T EventRecord](ud native.UserData, h *native.EventHeader, ev *T) CallbackCode {
	return eventTarget(ud).dispatch(h, *ev)
}

func onParadigmProperty(ud native.UserData, def *native.ParadigmPropertyDef) CallbackCode {
	return definitionTarget(ud).dispatch(decodeParadigmProperty(def))
}

func onIoParadigm(ud native.UserData, def *native.IoParadigmDef) CallbackCode {
	return definitionTarget(ud).dispatch(decodeIoParadigm(def))
}

func onSystemTreeNodeProperty(ud native.UserData, def *native.SystemTreeNodePropertyDef) CallbackCode {
	return definitionTarget(ud).dispatch(decodeSystemTreeNodeProperty(def))
}

func onLocationGroupProperty(ud native.UserData, def *native.LocationGroupPropertyDef) CallbackCode {
	return definitionTarget(ud).dispatch(decodeLocationGroupProperty(def))
}

func onLocationProperty(ud native.UserData, def *native.LocationPropertyDef) CallbackCode {
	return definitionTarget(ud).dispatch(decodeLocationProperty(def))
}

func onCallpathParameter(ud native.UserData, def *native.CallpathParameterDef) CallbackCode {
	return definitionTarget(ud).dispatch(decodeCallpathParameter(def))
}

func onCallingContextProperty(ud native.UserData, def *native.CallingContextPropertyDef) CallbackCode {
	return definitionTarget(ud).dispatch(decodeCallingContextProperty(def))
}

func onIoFileProperty(ud native.UserData, def *native.IoFilePropertyDef) CallbackCode {
	return definitionTarget(ud).dispatch(decodeIoFileProperty(def))
}

func onMetric(ud native.UserData, h *native.EventHeader, ev *native.Metric) CallbackCode {
	return eventTarget(ud).dispatch(h, decodeMetric(ev))
}

// definitionCallbacks returns a table routing every definition kind to
// the definitionDispatch registered as user data.
func definitionCallbacks() *native.GlobalDefCallbacks {
	return &native.GlobalDefCallbacks{
		Unknown:                 onDefinition[UnknownDef],
		String:                  onDefinition[StringDef],
		Attribute:               onDefinition[AttributeDef],
		ClockProperties:         onDefinition[ClockPropertiesDef],
		Paradigm:                onDefinition[ParadigmDef],
		ParadigmProperty:        onParadigmProperty,
		IoParadigm:              onIoParadigm,
		SystemTreeNode:          onDefinition[SystemTreeNodeDef],
		SystemTreeNodeProperty:  onSystemTreeNodeProperty,
		SystemTreeNodeDomain:    onDefinition[SystemTreeNodeDomainDef],
		LocationGroup:           onDefinition[LocationGroupDef],
		Location:                onDefinition[LocationDef],
		LocationGroupProperty:   onLocationGroupProperty,
		LocationProperty:        onLocationProperty,
		Region:                  onDefinition[RegionDef],
		Callsite:                onDefinition[CallsiteDef],
		Callpath:                onDefinition[CallpathDef],
		CallpathParameter:       onCallpathParameter,
		SourceCodeLocation:      onDefinition[SourceCodeLocationDef],
		CallingContext:          onDefinition[CallingContextDef],
		CallingContextProperty:  onCallingContextProperty,
		Group:                   onDefinition[GroupDef],
		MetricMember:            onDefinition[MetricMemberDef],
		MetricClass:             onDefinition[MetricClassDef],
		MetricInstance:          onDefinition[MetricInstanceDef],
		MetricClassRecorder:     onDefinition[MetricClassRecorderDef],
		Comm:                    onDefinition[CommDef],
		InterComm:               onDefinition[InterCommDef],
		Parameter:               onDefinition[ParameterDef],
		RmaWin:                  onDefinition[RmaWinDef],
		CartDimension:           onDefinition[CartDimensionDef],
		CartTopology:            onDefinition[CartTopologyDef],
		CartCoordinate:          onDefinition[CartCoordinateDef],
		InterruptGenerator:      onDefinition[InterruptGeneratorDef],
		IoFileProperty:          onIoFileProperty,
		IoRegularFile:           onDefinition[IoRegularFileDef],
		IoDirectory:             onDefinition[IoDirectoryDef],
		IoHandle:                onDefinition[IoHandleDef],
		IoPreCreatedHandleState: onDefinition[IoPreCreatedHandleStateDef],
	}
}

// eventCallbacks returns a table routing every event kind to the
// eventDispatch registered as user data.
func eventCallbacks() *native.GlobalEvtCallbacks {
	return &native.GlobalEvtCallbacks{
		Unknown:                       onEvent[UnknownEvent],
		BufferFlush:                   onEvent[BufferFlush],
		MeasurementOnOff:              onEvent[MeasurementOnOff],
		Enter:                         onEvent[Enter],
		Leave:                         onEvent[Leave],
		MpiSend:                       onEvent[MpiSend],
		MpiIsend:                      onEvent[MpiIsend],
		MpiIsendComplete:              onEvent[MpiIsendComplete],
		MpiIrecvRequest:               onEvent[MpiIrecvRequest],
		MpiRecv:                       onEvent[MpiRecv],
		MpiIrecv:                      onEvent[MpiIrecv],
		MpiRequestTest:                onEvent[MpiRequestTest],
		MpiRequestCancelled:           onEvent[MpiRequestCancelled],
		MpiCollectiveBegin:            onEvent[MpiCollectiveBegin],
		MpiCollectiveEnd:              onEvent[MpiCollectiveEnd],
		OmpFork:                       onEvent[OmpFork],
		OmpJoin:                       onEvent[OmpJoin],
		OmpAcquireLock:                onEvent[OmpAcquireLock],
		OmpReleaseLock:                onEvent[OmpReleaseLock],
		OmpTaskCreate:                 onEvent[OmpTaskCreate],
		OmpTaskSwitch:                 onEvent[OmpTaskSwitch],
		OmpTaskComplete:               onEvent[OmpTaskComplete],
		Metric:                        onMetric,
		ParameterString:               onEvent[ParameterString],
		ParameterInt:                  onEvent[ParameterInt],
		ParameterUnsignedInt:          onEvent[ParameterUnsignedInt],
		RmaWinCreate:                  onEvent[RmaWinCreate],
		RmaWinDestroy:                 onEvent[RmaWinDestroy],
		RmaCollectiveBegin:            onEvent[RmaCollectiveBegin],
		RmaCollectiveEnd:              onEvent[RmaCollectiveEnd],
		RmaGroupSync:                  onEvent[RmaGroupSync],
		RmaRequestLock:                onEvent[RmaRequestLock],
		RmaAcquireLock:                onEvent[RmaAcquireLock],
		RmaTryLock:                    onEvent[RmaTryLock],
		RmaReleaseLock:                onEvent[RmaReleaseLock],
		RmaSync:                       onEvent[RmaSync],
		RmaWaitChange:                 onEvent[RmaWaitChange],
		RmaPut:                        onEvent[RmaPut],
		RmaGet:                        onEvent[RmaGet],
		RmaAtomic:                     onEvent[RmaAtomic],
		RmaOpCompleteBlocking:         onEvent[RmaOpCompleteBlocking],
		RmaOpCompleteNonBlocking:      onEvent[RmaOpCompleteNonBlocking],
		RmaOpTest:                     onEvent[RmaOpTest],
		RmaOpCompleteRemote:           onEvent[RmaOpCompleteRemote],
		ThreadFork:                    onEvent[ThreadFork],
		ThreadJoin:                    onEvent[ThreadJoin],
		ThreadTeamBegin:               onEvent[ThreadTeamBegin],
		ThreadTeamEnd:                 onEvent[ThreadTeamEnd],
		ThreadAcquireLock:             onEvent[ThreadAcquireLock],
		ThreadReleaseLock:             onEvent[ThreadReleaseLock],
		ThreadTaskCreate:              onEvent[ThreadTaskCreate],
		ThreadTaskSwitch:              onEvent[ThreadTaskSwitch],
		ThreadTaskComplete:            onEvent[ThreadTaskComplete],
		ThreadCreate:                  onEvent[ThreadCreate],
		ThreadBegin:                   onEvent[ThreadBegin],
		ThreadWait:                    onEvent[ThreadWait],
		ThreadEnd:                     onEvent[ThreadEnd],
		CallingContextEnter:           onEvent[CallingContextEnter],
		CallingContextLeave:           onEvent[CallingContextLeave],
		CallingContextSample:          onEvent[CallingContextSample],
		IoCreateHandle:                onEvent[IoCreateHandle],
		IoDestroyHandle:               onEvent[IoDestroyHandle],
		IoDuplicateHandle:             onEvent[IoDuplicateHandle],
		IoSeek:                        onEvent[IoSeek],
		IoChangeStatusFlags:           onEvent[IoChangeStatusFlags],
		IoDeleteFile:                  onEvent[IoDeleteFile],
		IoOperationBegin:              onEvent[IoOperationBegin],
		IoOperationTest:               onEvent[IoOperationTest],
		IoOperationIssued:             onEvent[IoOperationIssued],
		IoOperationComplete:           onEvent[IoOperationComplete],
		IoOperationCancelled:          onEvent[IoOperationCancelled],
		IoAcquireLock:                 onEvent[IoAcquireLock],
		IoReleaseLock:                 onEvent[IoReleaseLock],
		IoTryLock:                     onEvent[IoTryLock],
		ProgramBegin:                  onEvent[ProgramBegin],
		ProgramEnd:                    onEvent[ProgramEnd],
		NonBlockingCollectiveRequest:  onEvent[NonBlockingCollectiveRequest],
		NonBlockingCollectiveComplete: onEvent[NonBlockingCollectiveComplete],
		CommCreate:                    onEvent[CommCreate],
		CommDestroy:                   onEvent[CommDestroy],
	}
}
