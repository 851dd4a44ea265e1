//go:build otf2

package otf2c

/*
#include <stdint.h>
#include <otf2/otf2.h>

OTF2_CallbackCode otf2goDefUnknown(void* userData);
OTF2_CallbackCode otf2goDefString(void* userData, OTF2_StringRef self, char* value);
OTF2_CallbackCode otf2goDefAttribute(void* userData, OTF2_AttributeRef self, OTF2_StringRef name, OTF2_StringRef description, OTF2_Type typ);
OTF2_CallbackCode otf2goDefClockProperties(void* userData, uint64_t timerResolution, uint64_t globalOffset, uint64_t traceLength, uint64_t realtimeTimestamp);
OTF2_CallbackCode otf2goDefParadigm(void* userData, OTF2_Paradigm paradigm, OTF2_StringRef name, OTF2_ParadigmClass class);
OTF2_CallbackCode otf2goDefParadigmProperty(void* userData, OTF2_Paradigm paradigm, OTF2_ParadigmProperty property, OTF2_Type typ, OTF2_AttributeValue value);
OTF2_CallbackCode otf2goDefIoParadigm(void* userData, OTF2_IoParadigmRef self, OTF2_StringRef identification, OTF2_StringRef name, OTF2_IoParadigmClass class, OTF2_IoParadigmFlag flags, uint8_t count, OTF2_IoParadigmProperty* properties, OTF2_Type* types, OTF2_AttributeValue* values);
OTF2_CallbackCode otf2goDefSystemTreeNode(void* userData, OTF2_SystemTreeNodeRef self, OTF2_StringRef name, OTF2_StringRef className, OTF2_SystemTreeNodeRef parent);
OTF2_CallbackCode otf2goDefSystemTreeNodeProperty(void* userData, OTF2_SystemTreeNodeRef systemTreeNode, OTF2_StringRef name, OTF2_Type typ, OTF2_AttributeValue value);
OTF2_CallbackCode otf2goDefSystemTreeNodeDomain(void* userData, OTF2_SystemTreeNodeRef systemTreeNode, OTF2_SystemTreeDomain domain);
OTF2_CallbackCode otf2goDefLocationGroup(void* userData, OTF2_LocationGroupRef self, OTF2_StringRef name, OTF2_LocationGroupType typ, OTF2_SystemTreeNodeRef systemTreeParent, OTF2_LocationGroupRef creatingLocationGroup);
OTF2_CallbackCode otf2goDefLocation(void* userData, OTF2_LocationRef self, OTF2_StringRef name, OTF2_LocationType typ, uint64_t numberOfEvents, OTF2_LocationGroupRef locationGroup);
OTF2_CallbackCode otf2goDefLocationGroupProperty(void* userData, OTF2_LocationGroupRef locationGroup, OTF2_StringRef name, OTF2_Type typ, OTF2_AttributeValue value);
OTF2_CallbackCode otf2goDefLocationProperty(void* userData, OTF2_LocationRef location, OTF2_StringRef name, OTF2_Type typ, OTF2_AttributeValue value);
OTF2_CallbackCode otf2goDefRegion(void* userData, OTF2_RegionRef self, OTF2_StringRef name, OTF2_StringRef canonicalName, OTF2_StringRef description, OTF2_RegionRole role, OTF2_Paradigm paradigm, OTF2_RegionFlag flags, OTF2_StringRef sourceFile, uint32_t beginLineNumber, uint32_t endLineNumber);
OTF2_CallbackCode otf2goDefCallsite(void* userData, OTF2_CallsiteRef self, OTF2_StringRef sourceFile, uint32_t lineNumber, OTF2_RegionRef enteredRegion, OTF2_RegionRef leftRegion);
OTF2_CallbackCode otf2goDefCallpath(void* userData, OTF2_CallpathRef self, OTF2_CallpathRef parent, OTF2_RegionRef region);
OTF2_CallbackCode otf2goDefCallpathParameter(void* userData, OTF2_CallpathRef callpath, OTF2_ParameterRef parameter, OTF2_Type typ, OTF2_AttributeValue value);
OTF2_CallbackCode otf2goDefSourceCodeLocation(void* userData, OTF2_SourceCodeLocationRef self, OTF2_StringRef file, uint32_t lineNumber);
OTF2_CallbackCode otf2goDefCallingContext(void* userData, OTF2_CallingContextRef self, OTF2_RegionRef region, OTF2_SourceCodeLocationRef sourceCodeLocation, OTF2_CallingContextRef parent);
OTF2_CallbackCode otf2goDefCallingContextProperty(void* userData, OTF2_CallingContextRef callingContext, OTF2_StringRef name, OTF2_Type typ, OTF2_AttributeValue value);
OTF2_CallbackCode otf2goDefGroup(void* userData, OTF2_GroupRef self, OTF2_StringRef name, OTF2_GroupType typ, OTF2_Paradigm paradigm, OTF2_GroupFlag flags, uint32_t count, uint64_t* members);
OTF2_CallbackCode otf2goDefMetricMember(void* userData, OTF2_MetricMemberRef self, OTF2_StringRef name, OTF2_StringRef description, OTF2_MetricType metricType, OTF2_MetricMode metricMode, OTF2_Type valueType, OTF2_Base base, int64_t exponent, OTF2_StringRef unit);
OTF2_CallbackCode otf2goDefMetricClass(void* userData, OTF2_MetricRef self, uint8_t count, OTF2_MetricMemberRef* members, OTF2_MetricOccurrence occurrence, OTF2_RecorderKind recorderKind);
OTF2_CallbackCode otf2goDefMetricInstance(void* userData, OTF2_MetricRef self, OTF2_MetricRef metricClass, OTF2_LocationRef recorder, OTF2_MetricScope metricScope, uint64_t scope);
OTF2_CallbackCode otf2goDefMetricClassRecorder(void* userData, OTF2_MetricRef metricClass, OTF2_LocationRef recorder);
OTF2_CallbackCode otf2goDefComm(void* userData, OTF2_CommRef self, OTF2_StringRef name, OTF2_GroupRef group, OTF2_CommRef parent, OTF2_CommFlag flags);
OTF2_CallbackCode otf2goDefInterComm(void* userData, OTF2_CommRef self, OTF2_StringRef name, OTF2_GroupRef groupA, OTF2_GroupRef groupB, OTF2_CommRef commonCommunicator, OTF2_CommFlag flags);
OTF2_CallbackCode otf2goDefParameter(void* userData, OTF2_ParameterRef self, OTF2_StringRef name, OTF2_ParameterType typ);
OTF2_CallbackCode otf2goDefRmaWin(void* userData, OTF2_RmaWinRef self, OTF2_StringRef name, OTF2_CommRef comm, OTF2_RmaWinFlag flags);
OTF2_CallbackCode otf2goDefCartDimension(void* userData, OTF2_CartDimensionRef self, OTF2_StringRef name, uint32_t size, OTF2_CartPeriodicity periodic);
OTF2_CallbackCode otf2goDefCartTopology(void* userData, OTF2_CartTopologyRef self, OTF2_StringRef name, OTF2_CommRef communicator, uint8_t count, OTF2_CartDimensionRef* dimensions);
OTF2_CallbackCode otf2goDefCartCoordinate(void* userData, OTF2_CartTopologyRef topology, uint32_t rank, uint8_t count, uint32_t* coordinates);
OTF2_CallbackCode otf2goDefInterruptGenerator(void* userData, OTF2_InterruptGeneratorRef self, OTF2_StringRef name, OTF2_InterruptGeneratorMode mode, OTF2_Base base, int64_t exponent, uint64_t period);
OTF2_CallbackCode otf2goDefIoFileProperty(void* userData, OTF2_IoFileRef ioFile, OTF2_StringRef name, OTF2_Type typ, OTF2_AttributeValue value);
OTF2_CallbackCode otf2goDefIoRegularFile(void* userData, OTF2_IoFileRef self, OTF2_StringRef name, OTF2_SystemTreeNodeRef scope);
OTF2_CallbackCode otf2goDefIoDirectory(void* userData, OTF2_IoFileRef self, OTF2_StringRef name, OTF2_SystemTreeNodeRef scope);
OTF2_CallbackCode otf2goDefIoHandle(void* userData, OTF2_IoHandleRef self, OTF2_StringRef name, OTF2_IoFileRef file, OTF2_IoParadigmRef ioParadigm, OTF2_IoHandleFlag flags, OTF2_CommRef comm, OTF2_IoHandleRef parent);
OTF2_CallbackCode otf2goDefIoPreCreatedHandleState(void* userData, OTF2_IoHandleRef ioHandle, OTF2_IoAccessMode mode, OTF2_IoStatusFlag statusFlags);
OTF2_CallbackCode otf2goEvtUnknown(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes);
OTF2_CallbackCode otf2goEvtBufferFlush(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_TimeStamp stopTime);
OTF2_CallbackCode otf2goEvtMeasurementOnOff(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_MeasurementMode measurementMode);
OTF2_CallbackCode otf2goEvtEnter(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RegionRef region);
OTF2_CallbackCode otf2goEvtLeave(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RegionRef region);
OTF2_CallbackCode otf2goEvtMpiSend(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, uint32_t receiver, OTF2_CommRef communicator, uint32_t msgTag, uint64_t msgLength);
OTF2_CallbackCode otf2goEvtMpiIsend(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, uint32_t receiver, OTF2_CommRef communicator, uint32_t msgTag, uint64_t msgLength, uint64_t requestID);
OTF2_CallbackCode otf2goEvtMpiIsendComplete(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, uint64_t requestID);
OTF2_CallbackCode otf2goEvtMpiIrecvRequest(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, uint64_t requestID);
OTF2_CallbackCode otf2goEvtMpiRecv(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, uint32_t sender, OTF2_CommRef communicator, uint32_t msgTag, uint64_t msgLength);
OTF2_CallbackCode otf2goEvtMpiIrecv(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, uint32_t sender, OTF2_CommRef communicator, uint32_t msgTag, uint64_t msgLength, uint64_t requestID);
OTF2_CallbackCode otf2goEvtMpiRequestTest(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, uint64_t requestID);
OTF2_CallbackCode otf2goEvtMpiRequestCancelled(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, uint64_t requestID);
OTF2_CallbackCode otf2goEvtMpiCollectiveBegin(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes);
OTF2_CallbackCode otf2goEvtMpiCollectiveEnd(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_CollectiveOp collectiveOp, OTF2_CommRef communicator, uint32_t root, uint64_t sizeSent, uint64_t sizeReceived);
OTF2_CallbackCode otf2goEvtOmpFork(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, uint32_t numberOfRequestedThreads);
OTF2_CallbackCode otf2goEvtOmpJoin(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes);
OTF2_CallbackCode otf2goEvtOmpAcquireLock(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, uint32_t lockID, uint32_t acquisitionOrder);
OTF2_CallbackCode otf2goEvtOmpReleaseLock(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, uint32_t lockID, uint32_t acquisitionOrder);
OTF2_CallbackCode otf2goEvtOmpTaskCreate(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, uint64_t taskID);
OTF2_CallbackCode otf2goEvtOmpTaskSwitch(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, uint64_t taskID);
OTF2_CallbackCode otf2goEvtOmpTaskComplete(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, uint64_t taskID);
OTF2_CallbackCode otf2goEvtMetric(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_MetricRef metric, uint8_t count, OTF2_Type* types, OTF2_MetricValue* values);
OTF2_CallbackCode otf2goEvtParameterString(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_ParameterRef parameter, OTF2_StringRef str);
OTF2_CallbackCode otf2goEvtParameterInt(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_ParameterRef parameter, int64_t value);
OTF2_CallbackCode otf2goEvtParameterUnsignedInt(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_ParameterRef parameter, uint64_t value);
OTF2_CallbackCode otf2goEvtRmaWinCreate(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RmaWinRef win);
OTF2_CallbackCode otf2goEvtRmaWinDestroy(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RmaWinRef win);
OTF2_CallbackCode otf2goEvtRmaCollectiveBegin(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes);
OTF2_CallbackCode otf2goEvtRmaCollectiveEnd(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_CollectiveOp collectiveOp, OTF2_RmaSyncLevel syncLevel, OTF2_RmaWinRef win, uint32_t root, uint64_t bytesSent, uint64_t bytesReceived);
OTF2_CallbackCode otf2goEvtRmaGroupSync(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RmaSyncLevel syncLevel, OTF2_RmaWinRef win, OTF2_GroupRef group);
OTF2_CallbackCode otf2goEvtRmaRequestLock(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RmaWinRef win, uint32_t remote, uint64_t lockID, OTF2_LockType lockType);
OTF2_CallbackCode otf2goEvtRmaAcquireLock(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RmaWinRef win, uint32_t remote, uint64_t lockID, OTF2_LockType lockType);
OTF2_CallbackCode otf2goEvtRmaTryLock(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RmaWinRef win, uint32_t remote, uint64_t lockID, OTF2_LockType lockType);
OTF2_CallbackCode otf2goEvtRmaReleaseLock(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RmaWinRef win, uint32_t remote, uint64_t lockID);
OTF2_CallbackCode otf2goEvtRmaSync(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RmaWinRef win, uint32_t remote, OTF2_RmaSyncType syncType);
OTF2_CallbackCode otf2goEvtRmaWaitChange(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RmaWinRef win);
OTF2_CallbackCode otf2goEvtRmaPut(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RmaWinRef win, uint32_t remote, uint64_t bytes, uint64_t matchingID);
OTF2_CallbackCode otf2goEvtRmaGet(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RmaWinRef win, uint32_t remote, uint64_t bytes, uint64_t matchingID);
OTF2_CallbackCode otf2goEvtRmaAtomic(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RmaWinRef win, uint32_t remote, OTF2_RmaAtomicType typ, uint64_t bytesSent, uint64_t bytesReceived, uint64_t matchingID);
OTF2_CallbackCode otf2goEvtRmaOpCompleteBlocking(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RmaWinRef win, uint64_t matchingID);
OTF2_CallbackCode otf2goEvtRmaOpCompleteNonBlocking(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RmaWinRef win, uint64_t matchingID);
OTF2_CallbackCode otf2goEvtRmaOpTest(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RmaWinRef win, uint64_t matchingID);
OTF2_CallbackCode otf2goEvtRmaOpCompleteRemote(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_RmaWinRef win, uint64_t matchingID);
OTF2_CallbackCode otf2goEvtThreadFork(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_Paradigm model, uint32_t numberOfRequestedThreads);
OTF2_CallbackCode otf2goEvtThreadJoin(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_Paradigm model);
OTF2_CallbackCode otf2goEvtThreadTeamBegin(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_CommRef threadTeam);
OTF2_CallbackCode otf2goEvtThreadTeamEnd(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_CommRef threadTeam);
OTF2_CallbackCode otf2goEvtThreadAcquireLock(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_Paradigm model, uint32_t lockID, uint32_t acquisitionOrder);
OTF2_CallbackCode otf2goEvtThreadReleaseLock(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_Paradigm model, uint32_t lockID, uint32_t acquisitionOrder);
OTF2_CallbackCode otf2goEvtThreadTaskCreate(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_CommRef threadTeam, uint32_t creatingThread, uint32_t generationNumber);
OTF2_CallbackCode otf2goEvtThreadTaskSwitch(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_CommRef threadTeam, uint32_t creatingThread, uint32_t generationNumber);
OTF2_CallbackCode otf2goEvtThreadTaskComplete(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_CommRef threadTeam, uint32_t creatingThread, uint32_t generationNumber);
OTF2_CallbackCode otf2goEvtThreadCreate(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_CommRef threadContingent, uint64_t sequenceCount);
OTF2_CallbackCode otf2goEvtThreadBegin(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_CommRef threadContingent, uint64_t sequenceCount);
OTF2_CallbackCode otf2goEvtThreadWait(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_CommRef threadContingent, uint64_t sequenceCount);
OTF2_CallbackCode otf2goEvtThreadEnd(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_CommRef threadContingent, uint64_t sequenceCount);
OTF2_CallbackCode otf2goEvtCallingContextEnter(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_CallingContextRef callingContext, uint32_t unwindDistance);
OTF2_CallbackCode otf2goEvtCallingContextLeave(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_CallingContextRef callingContext);
OTF2_CallbackCode otf2goEvtCallingContextSample(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_CallingContextRef callingContext, uint32_t unwindDistance, OTF2_InterruptGeneratorRef interruptGenerator);
OTF2_CallbackCode otf2goEvtIoCreateHandle(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_IoHandleRef handle, OTF2_IoAccessMode mode, OTF2_IoCreationFlag creationFlags, OTF2_IoStatusFlag statusFlags);
OTF2_CallbackCode otf2goEvtIoDestroyHandle(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_IoHandleRef handle);
OTF2_CallbackCode otf2goEvtIoDuplicateHandle(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_IoHandleRef oldHandle, OTF2_IoHandleRef newHandle, OTF2_IoStatusFlag statusFlags);
OTF2_CallbackCode otf2goEvtIoSeek(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_IoHandleRef handle, int64_t offsetRequest, OTF2_IoSeekOption whence, uint64_t offsetResult);
OTF2_CallbackCode otf2goEvtIoChangeStatusFlags(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_IoHandleRef handle, OTF2_IoStatusFlag statusFlags);
OTF2_CallbackCode otf2goEvtIoDeleteFile(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_IoParadigmRef ioParadigm, OTF2_IoFileRef file);
OTF2_CallbackCode otf2goEvtIoOperationBegin(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_IoHandleRef handle, OTF2_IoOperationMode mode, OTF2_IoOperationFlag operationFlags, uint64_t bytesRequest, uint64_t matchingID);
OTF2_CallbackCode otf2goEvtIoOperationTest(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_IoHandleRef handle, uint64_t matchingID);
OTF2_CallbackCode otf2goEvtIoOperationIssued(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_IoHandleRef handle, uint64_t matchingID);
OTF2_CallbackCode otf2goEvtIoOperationComplete(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_IoHandleRef handle, uint64_t bytesResult, uint64_t matchingID);
OTF2_CallbackCode otf2goEvtIoOperationCancelled(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_IoHandleRef handle, uint64_t matchingID);
OTF2_CallbackCode otf2goEvtIoAcquireLock(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_IoHandleRef handle, OTF2_LockType lockType);
OTF2_CallbackCode otf2goEvtIoReleaseLock(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_IoHandleRef handle, OTF2_LockType lockType);
OTF2_CallbackCode otf2goEvtIoTryLock(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_IoHandleRef handle, OTF2_LockType lockType);
OTF2_CallbackCode otf2goEvtProgramBegin(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_StringRef programName, uint32_t count, OTF2_StringRef* programArguments);
OTF2_CallbackCode otf2goEvtProgramEnd(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, int64_t exitStatus);
OTF2_CallbackCode otf2goEvtNonBlockingCollectiveRequest(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, uint64_t requestID);
OTF2_CallbackCode otf2goEvtNonBlockingCollectiveComplete(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_CollectiveOp collectiveOp, OTF2_CommRef communicator, uint32_t root, uint64_t sizeSent, uint64_t sizeReceived, uint64_t requestID);
OTF2_CallbackCode otf2goEvtCommCreate(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_CommRef communicator);
OTF2_CallbackCode otf2goEvtCommDestroy(OTF2_LocationRef location, OTF2_TimeStamp time, void* userData, OTF2_AttributeList* attributes, OTF2_CommRef communicator);
*/
import "C"

import (
	"unsafe"

	"github.com/getsentry/otf2/internal/native"
)

//export otf2goDefUnknown
func otf2goDefUnknown(userData unsafe.Pointer) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.Unknown(d.userData, &native.UnknownDef{}))
}

//export otf2goDefString
func otf2goDefString(userData unsafe.Pointer, self C.OTF2_StringRef, value *C.char) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.String(d.userData, &native.StringDef{
		Self:  native.StringRef(self),
		Value: C.GoString(value),
	}))
}

//export otf2goDefAttribute
func otf2goDefAttribute(userData unsafe.Pointer, self C.OTF2_AttributeRef, name C.OTF2_StringRef, description C.OTF2_StringRef, typ C.OTF2_Type) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.Attribute(d.userData, &native.AttributeDef{
		Self:        native.AttributeRef(self),
		Name:        native.StringRef(name),
		Description: native.StringRef(description),
		Type:        typeOf(typ),
	}))
}

//export otf2goDefClockProperties
func otf2goDefClockProperties(userData unsafe.Pointer, timerResolution C.uint64_t, globalOffset C.uint64_t, traceLength C.uint64_t, realtimeTimestamp C.uint64_t) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.ClockProperties(d.userData, &native.ClockPropertiesDef{
		TimerResolution:   uint64(timerResolution),
		GlobalOffset:      uint64(globalOffset),
		TraceLength:       uint64(traceLength),
		RealtimeTimestamp: uint64(realtimeTimestamp),
	}))
}

//export otf2goDefParadigm
func otf2goDefParadigm(userData unsafe.Pointer, paradigm C.OTF2_Paradigm, name C.OTF2_StringRef, class C.OTF2_ParadigmClass) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.Paradigm(d.userData, &native.ParadigmDef{
		Paradigm: native.Paradigm(paradigm),
		Name:     native.StringRef(name),
		Class:    native.ParadigmClass(class),
	}))
}

//export otf2goDefParadigmProperty
func otf2goDefParadigmProperty(userData unsafe.Pointer, paradigm C.OTF2_Paradigm, property C.OTF2_ParadigmProperty, typ C.OTF2_Type, value C.OTF2_AttributeValue) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.ParadigmProperty(d.userData, &native.ParadigmPropertyDef{
		Paradigm: native.Paradigm(paradigm),
		Property: native.ParadigmProperty(property),
		Type:     typeOf(typ),
		Value:    native.RawValue(value),
	}))
}

//export otf2goDefIoParadigm
func otf2goDefIoParadigm(userData unsafe.Pointer, self C.OTF2_IoParadigmRef, identification C.OTF2_StringRef, name C.OTF2_StringRef, class C.OTF2_IoParadigmClass, flags C.OTF2_IoParadigmFlag, count C.uint8_t, properties *C.OTF2_IoParadigmProperty, types *C.OTF2_Type, values *C.OTF2_AttributeValue) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	n := int(count)
	return callbackCode(d.callbacks.IoParadigm(d.userData, &native.IoParadigmDef{
		Self:           native.IoParadigmRef(self),
		Identification: native.StringRef(identification),
		Name:           native.StringRef(name),
		Class:          native.IoParadigmClass(class),
		Flags:          native.IoParadigmFlag(flags),
		Properties:     convertSlice(properties, n, func(v C.OTF2_IoParadigmProperty) native.IoParadigmProperty { return native.IoParadigmProperty(v) }),
		Types:          convertSlice(types, n, func(v C.OTF2_Type) native.Type { return typeOf(v) }),
		Values:         convertSlice(values, n, func(v C.OTF2_AttributeValue) native.RawValue { return native.RawValue(v) }),
	}))
}

//export otf2goDefSystemTreeNode
func otf2goDefSystemTreeNode(userData unsafe.Pointer, self C.OTF2_SystemTreeNodeRef, name C.OTF2_StringRef, className C.OTF2_StringRef, parent C.OTF2_SystemTreeNodeRef) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.SystemTreeNode(d.userData, &native.SystemTreeNodeDef{
		Self:      native.SystemTreeNodeRef(self),
		Name:      native.StringRef(name),
		ClassName: native.StringRef(className),
		Parent:    native.SystemTreeNodeRef(parent),
	}))
}

//export otf2goDefSystemTreeNodeProperty
func otf2goDefSystemTreeNodeProperty(userData unsafe.Pointer, systemTreeNode C.OTF2_SystemTreeNodeRef, name C.OTF2_StringRef, typ C.OTF2_Type, value C.OTF2_AttributeValue) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.SystemTreeNodeProperty(d.userData, &native.SystemTreeNodePropertyDef{
		SystemTreeNode: native.SystemTreeNodeRef(systemTreeNode),
		Name:           native.StringRef(name),
		Type:           typeOf(typ),
		Value:          native.RawValue(value),
	}))
}

//export otf2goDefSystemTreeNodeDomain
func otf2goDefSystemTreeNodeDomain(userData unsafe.Pointer, systemTreeNode C.OTF2_SystemTreeNodeRef, domain C.OTF2_SystemTreeDomain) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.SystemTreeNodeDomain(d.userData, &native.SystemTreeNodeDomainDef{
		SystemTreeNode: native.SystemTreeNodeRef(systemTreeNode),
		Domain:         native.SystemTreeDomain(domain),
	}))
}

//export otf2goDefLocationGroup
func otf2goDefLocationGroup(userData unsafe.Pointer, self C.OTF2_LocationGroupRef, name C.OTF2_StringRef, typ C.OTF2_LocationGroupType, systemTreeParent C.OTF2_SystemTreeNodeRef, creatingLocationGroup C.OTF2_LocationGroupRef) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.LocationGroup(d.userData, &native.LocationGroupDef{
		Self:                  native.LocationGroupRef(self),
		Name:                  native.StringRef(name),
		Type:                  native.LocationGroupType(typ),
		SystemTreeParent:      native.SystemTreeNodeRef(systemTreeParent),
		CreatingLocationGroup: native.LocationGroupRef(creatingLocationGroup),
	}))
}

//export otf2goDefLocation
func otf2goDefLocation(userData unsafe.Pointer, self C.OTF2_LocationRef, name C.OTF2_StringRef, typ C.OTF2_LocationType, numberOfEvents C.uint64_t, locationGroup C.OTF2_LocationGroupRef) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.Location(d.userData, &native.LocationDef{
		Self:           native.LocationRef(self),
		Name:           native.StringRef(name),
		Type:           native.LocationType(typ),
		NumberOfEvents: uint64(numberOfEvents),
		LocationGroup:  native.LocationGroupRef(locationGroup),
	}))
}

//export otf2goDefLocationGroupProperty
func otf2goDefLocationGroupProperty(userData unsafe.Pointer, locationGroup C.OTF2_LocationGroupRef, name C.OTF2_StringRef, typ C.OTF2_Type, value C.OTF2_AttributeValue) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.LocationGroupProperty(d.userData, &native.LocationGroupPropertyDef{
		LocationGroup: native.LocationGroupRef(locationGroup),
		Name:          native.StringRef(name),
		Type:          typeOf(typ),
		Value:         native.RawValue(value),
	}))
}

//export otf2goDefLocationProperty
func otf2goDefLocationProperty(userData unsafe.Pointer, location C.OTF2_LocationRef, name C.OTF2_StringRef, typ C.OTF2_Type, value C.OTF2_AttributeValue) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.LocationProperty(d.userData, &native.LocationPropertyDef{
		Location: native.LocationRef(location),
		Name:     native.StringRef(name),
		Type:     typeOf(typ),
		Value:    native.RawValue(value),
	}))
}

//export otf2goDefRegion
func otf2goDefRegion(userData unsafe.Pointer, self C.OTF2_RegionRef, name C.OTF2_StringRef, canonicalName C.OTF2_StringRef, description C.OTF2_StringRef, role C.OTF2_RegionRole, paradigm C.OTF2_Paradigm, flags C.OTF2_RegionFlag, sourceFile C.OTF2_StringRef, beginLineNumber C.uint32_t, endLineNumber C.uint32_t) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.Region(d.userData, &native.RegionDef{
		Self:            native.RegionRef(self),
		Name:            native.StringRef(name),
		CanonicalName:   native.StringRef(canonicalName),
		Description:     native.StringRef(description),
		Role:            native.RegionRole(role),
		Paradigm:        native.Paradigm(paradigm),
		Flags:           native.RegionFlag(flags),
		SourceFile:      native.StringRef(sourceFile),
		BeginLineNumber: uint32(beginLineNumber),
		EndLineNumber:   uint32(endLineNumber),
	}))
}

//export otf2goDefCallsite
func otf2goDefCallsite(userData unsafe.Pointer, self C.OTF2_CallsiteRef, sourceFile C.OTF2_StringRef, lineNumber C.uint32_t, enteredRegion C.OTF2_RegionRef, leftRegion C.OTF2_RegionRef) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.Callsite(d.userData, &native.CallsiteDef{
		Self:          native.CallsiteRef(self),
		SourceFile:    native.StringRef(sourceFile),
		LineNumber:    uint32(lineNumber),
		EnteredRegion: native.RegionRef(enteredRegion),
		LeftRegion:    native.RegionRef(leftRegion),
	}))
}

//export otf2goDefCallpath
func otf2goDefCallpath(userData unsafe.Pointer, self C.OTF2_CallpathRef, parent C.OTF2_CallpathRef, region C.OTF2_RegionRef) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.Callpath(d.userData, &native.CallpathDef{
		Self:   native.CallpathRef(self),
		Parent: native.CallpathRef(parent),
		Region: native.RegionRef(region),
	}))
}

//export otf2goDefCallpathParameter
func otf2goDefCallpathParameter(userData unsafe.Pointer, callpath C.OTF2_CallpathRef, parameter C.OTF2_ParameterRef, typ C.OTF2_Type, value C.OTF2_AttributeValue) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.CallpathParameter(d.userData, &native.CallpathParameterDef{
		Callpath:  native.CallpathRef(callpath),
		Parameter: native.ParameterRef(parameter),
		Type:      typeOf(typ),
		Value:     native.RawValue(value),
	}))
}

//export otf2goDefSourceCodeLocation
func otf2goDefSourceCodeLocation(userData unsafe.Pointer, self C.OTF2_SourceCodeLocationRef, file C.OTF2_StringRef, lineNumber C.uint32_t) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.SourceCodeLocation(d.userData, &native.SourceCodeLocationDef{
		Self:       native.SourceCodeLocationRef(self),
		File:       native.StringRef(file),
		LineNumber: uint32(lineNumber),
	}))
}

//export otf2goDefCallingContext
func otf2goDefCallingContext(userData unsafe.Pointer, self C.OTF2_CallingContextRef, region C.OTF2_RegionRef, sourceCodeLocation C.OTF2_SourceCodeLocationRef, parent C.OTF2_CallingContextRef) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.CallingContext(d.userData, &native.CallingContextDef{
		Self:               native.CallingContextRef(self),
		Region:             native.RegionRef(region),
		SourceCodeLocation: native.SourceCodeLocationRef(sourceCodeLocation),
		Parent:             native.CallingContextRef(parent),
	}))
}

//export otf2goDefCallingContextProperty
func otf2goDefCallingContextProperty(userData unsafe.Pointer, callingContext C.OTF2_CallingContextRef, name C.OTF2_StringRef, typ C.OTF2_Type, value C.OTF2_AttributeValue) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.CallingContextProperty(d.userData, &native.CallingContextPropertyDef{
		CallingContext: native.CallingContextRef(callingContext),
		Name:           native.StringRef(name),
		Type:           typeOf(typ),
		Value:          native.RawValue(value),
	}))
}

//export otf2goDefGroup
func otf2goDefGroup(userData unsafe.Pointer, self C.OTF2_GroupRef, name C.OTF2_StringRef, typ C.OTF2_GroupType, paradigm C.OTF2_Paradigm, flags C.OTF2_GroupFlag, count C.uint32_t, members *C.uint64_t) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	n := int(count)
	return callbackCode(d.callbacks.Group(d.userData, &native.GroupDef{
		Self:     native.GroupRef(self),
		Name:     native.StringRef(name),
		Type:     native.GroupType(typ),
		Paradigm: native.Paradigm(paradigm),
		Flags:    native.GroupFlag(flags),
		Members:  convertSlice(members, n, func(v C.uint64_t) uint64 { return uint64(v) }),
	}))
}

//export otf2goDefMetricMember
func otf2goDefMetricMember(userData unsafe.Pointer, self C.OTF2_MetricMemberRef, name C.OTF2_StringRef, description C.OTF2_StringRef, metricType C.OTF2_MetricType, metricMode C.OTF2_MetricMode, valueType C.OTF2_Type, base C.OTF2_Base, exponent C.int64_t, unit C.OTF2_StringRef) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.MetricMember(d.userData, &native.MetricMemberDef{
		Self:        native.MetricMemberRef(self),
		Name:        native.StringRef(name),
		Description: native.StringRef(description),
		MetricType:  native.MetricType(metricType),
		MetricMode:  native.MetricMode(metricMode),
		ValueType:   typeOf(valueType),
		Base:        native.Base(base),
		Exponent:    int64(exponent),
		Unit:        native.StringRef(unit),
	}))
}

//export otf2goDefMetricClass
func otf2goDefMetricClass(userData unsafe.Pointer, self C.OTF2_MetricRef, count C.uint8_t, members *C.OTF2_MetricMemberRef, occurrence C.OTF2_MetricOccurrence, recorderKind C.OTF2_RecorderKind) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	n := int(count)
	return callbackCode(d.callbacks.MetricClass(d.userData, &native.MetricClassDef{
		Self:         native.MetricRef(self),
		Members:      convertSlice(members, n, func(v C.OTF2_MetricMemberRef) native.MetricMemberRef { return native.MetricMemberRef(v) }),
		Occurrence:   native.MetricOccurrence(occurrence),
		RecorderKind: native.RecorderKind(recorderKind),
	}))
}

//export otf2goDefMetricInstance
func otf2goDefMetricInstance(userData unsafe.Pointer, self C.OTF2_MetricRef, metricClass C.OTF2_MetricRef, recorder C.OTF2_LocationRef, metricScope C.OTF2_MetricScope, scope C.uint64_t) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.MetricInstance(d.userData, &native.MetricInstanceDef{
		Self:        native.MetricRef(self),
		MetricClass: native.MetricRef(metricClass),
		Recorder:    native.LocationRef(recorder),
		MetricScope: native.MetricScope(metricScope),
		Scope:       uint64(scope),
	}))
}

//export otf2goDefMetricClassRecorder
func otf2goDefMetricClassRecorder(userData unsafe.Pointer, metricClass C.OTF2_MetricRef, recorder C.OTF2_LocationRef) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.MetricClassRecorder(d.userData, &native.MetricClassRecorderDef{
		MetricClass: native.MetricRef(metricClass),
		Recorder:    native.LocationRef(recorder),
	}))
}

//export otf2goDefComm
func otf2goDefComm(userData unsafe.Pointer, self C.OTF2_CommRef, name C.OTF2_StringRef, group C.OTF2_GroupRef, parent C.OTF2_CommRef, flags C.OTF2_CommFlag) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.Comm(d.userData, &native.CommDef{
		Self:   native.CommRef(self),
		Name:   native.StringRef(name),
		Group:  native.GroupRef(group),
		Parent: native.CommRef(parent),
		Flags:  native.CommFlag(flags),
	}))
}

//export otf2goDefInterComm
func otf2goDefInterComm(userData unsafe.Pointer, self C.OTF2_CommRef, name C.OTF2_StringRef, groupA C.OTF2_GroupRef, groupB C.OTF2_GroupRef, commonCommunicator C.OTF2_CommRef, flags C.OTF2_CommFlag) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.InterComm(d.userData, &native.InterCommDef{
		Self:               native.CommRef(self),
		Name:               native.StringRef(name),
		GroupA:             native.GroupRef(groupA),
		GroupB:             native.GroupRef(groupB),
		CommonCommunicator: native.CommRef(commonCommunicator),
		Flags:              native.CommFlag(flags),
	}))
}

//export otf2goDefParameter
func otf2goDefParameter(userData unsafe.Pointer, self C.OTF2_ParameterRef, name C.OTF2_StringRef, typ C.OTF2_ParameterType) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.Parameter(d.userData, &native.ParameterDef{
		Self: native.ParameterRef(self),
		Name: native.StringRef(name),
		Type: native.ParameterType(typ),
	}))
}

//export otf2goDefRmaWin
func otf2goDefRmaWin(userData unsafe.Pointer, self C.OTF2_RmaWinRef, name C.OTF2_StringRef, comm C.OTF2_CommRef, flags C.OTF2_RmaWinFlag) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.RmaWin(d.userData, &native.RmaWinDef{
		Self:  native.RmaWinRef(self),
		Name:  native.StringRef(name),
		Comm:  native.CommRef(comm),
		Flags: native.RmaWinFlag(flags),
	}))
}

//export otf2goDefCartDimension
func otf2goDefCartDimension(userData unsafe.Pointer, self C.OTF2_CartDimensionRef, name C.OTF2_StringRef, size C.uint32_t, periodic C.OTF2_CartPeriodicity) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.CartDimension(d.userData, &native.CartDimensionDef{
		Self:     native.CartDimensionRef(self),
		Name:     native.StringRef(name),
		Size:     uint32(size),
		Periodic: native.CartPeriodicity(periodic),
	}))
}

//export otf2goDefCartTopology
func otf2goDefCartTopology(userData unsafe.Pointer, self C.OTF2_CartTopologyRef, name C.OTF2_StringRef, communicator C.OTF2_CommRef, count C.uint8_t, dimensions *C.OTF2_CartDimensionRef) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	n := int(count)
	return callbackCode(d.callbacks.CartTopology(d.userData, &native.CartTopologyDef{
		Self:         native.CartTopologyRef(self),
		Name:         native.StringRef(name),
		Communicator: native.CommRef(communicator),
		Dimensions:   convertSlice(dimensions, n, func(v C.OTF2_CartDimensionRef) native.CartDimensionRef { return native.CartDimensionRef(v) }),
	}))
}

//export otf2goDefCartCoordinate
func otf2goDefCartCoordinate(userData unsafe.Pointer, topology C.OTF2_CartTopologyRef, rank C.uint32_t, count C.uint8_t, coordinates *C.uint32_t) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	n := int(count)
	return callbackCode(d.callbacks.CartCoordinate(d.userData, &native.CartCoordinateDef{
		Topology:    native.CartTopologyRef(topology),
		Rank:        uint32(rank),
		Coordinates: convertSlice(coordinates, n, func(v C.uint32_t) uint32 { return uint32(v) }),
	}))
}

//export otf2goDefInterruptGenerator
func otf2goDefInterruptGenerator(userData unsafe.Pointer, self C.OTF2_InterruptGeneratorRef, name C.OTF2_StringRef, mode C.OTF2_InterruptGeneratorMode, base C.OTF2_Base, exponent C.int64_t, period C.uint64_t) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.InterruptGenerator(d.userData, &native.InterruptGeneratorDef{
		Self:     native.InterruptGeneratorRef(self),
		Name:     native.StringRef(name),
		Mode:     native.InterruptGeneratorMode(mode),
		Base:     native.Base(base),
		Exponent: int64(exponent),
		Period:   uint64(period),
	}))
}

//export otf2goDefIoFileProperty
func otf2goDefIoFileProperty(userData unsafe.Pointer, ioFile C.OTF2_IoFileRef, name C.OTF2_StringRef, typ C.OTF2_Type, value C.OTF2_AttributeValue) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.IoFileProperty(d.userData, &native.IoFilePropertyDef{
		IoFile: native.IoFileRef(ioFile),
		Name:   native.StringRef(name),
		Type:   typeOf(typ),
		Value:  native.RawValue(value),
	}))
}

//export otf2goDefIoRegularFile
func otf2goDefIoRegularFile(userData unsafe.Pointer, self C.OTF2_IoFileRef, name C.OTF2_StringRef, scope C.OTF2_SystemTreeNodeRef) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.IoRegularFile(d.userData, &native.IoRegularFileDef{
		Self:  native.IoFileRef(self),
		Name:  native.StringRef(name),
		Scope: native.SystemTreeNodeRef(scope),
	}))
}

//export otf2goDefIoDirectory
func otf2goDefIoDirectory(userData unsafe.Pointer, self C.OTF2_IoFileRef, name C.OTF2_StringRef, scope C.OTF2_SystemTreeNodeRef) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.IoDirectory(d.userData, &native.IoDirectoryDef{
		Self:  native.IoFileRef(self),
		Name:  native.StringRef(name),
		Scope: native.SystemTreeNodeRef(scope),
	}))
}

//export otf2goDefIoHandle
func otf2goDefIoHandle(userData unsafe.Pointer, self C.OTF2_IoHandleRef, name C.OTF2_StringRef, file C.OTF2_IoFileRef, ioParadigm C.OTF2_IoParadigmRef, flags C.OTF2_IoHandleFlag, comm C.OTF2_CommRef, parent C.OTF2_IoHandleRef) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.IoHandle(d.userData, &native.IoHandleDef{
		Self:       native.IoHandleRef(self),
		Name:       native.StringRef(name),
		File:       native.IoFileRef(file),
		IoParadigm: native.IoParadigmRef(ioParadigm),
		Flags:      native.IoHandleFlag(flags),
		Comm:       native.CommRef(comm),
		Parent:     native.IoHandleRef(parent),
	}))
}

//export otf2goDefIoPreCreatedHandleState
func otf2goDefIoPreCreatedHandleState(userData unsafe.Pointer, ioHandle C.OTF2_IoHandleRef, mode C.OTF2_IoAccessMode, statusFlags C.OTF2_IoStatusFlag) C.OTF2_CallbackCode {
	d := defBindingOf(userData)
	return callbackCode(d.callbacks.IoPreCreatedHandleState(d.userData, &native.IoPreCreatedHandleStateDef{
		IoHandle:    native.IoHandleRef(ioHandle),
		Mode:        native.IoAccessMode(mode),
		StatusFlags: native.IoStatusFlag(statusFlags),
	}))
}

//export otf2goEvtUnknown
func otf2goEvtUnknown(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.Unknown(e.userData, &h, &native.UnknownEvent{}))
}

//export otf2goEvtBufferFlush
func otf2goEvtBufferFlush(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, stopTime C.OTF2_TimeStamp) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.BufferFlush(e.userData, &h, &native.BufferFlush{
		StopTime: native.TimeStamp(stopTime),
	}))
}

//export otf2goEvtMeasurementOnOff
func otf2goEvtMeasurementOnOff(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, measurementMode C.OTF2_MeasurementMode) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.MeasurementOnOff(e.userData, &h, &native.MeasurementOnOff{
		MeasurementMode: native.MeasurementMode(measurementMode),
	}))
}

//export otf2goEvtEnter
func otf2goEvtEnter(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, region C.OTF2_RegionRef) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.Enter(e.userData, &h, &native.Enter{
		Region: native.RegionRef(region),
	}))
}

//export otf2goEvtLeave
func otf2goEvtLeave(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, region C.OTF2_RegionRef) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.Leave(e.userData, &h, &native.Leave{
		Region: native.RegionRef(region),
	}))
}

//export otf2goEvtMpiSend
func otf2goEvtMpiSend(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, receiver C.uint32_t, communicator C.OTF2_CommRef, msgTag C.uint32_t, msgLength C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.MpiSend(e.userData, &h, &native.MpiSend{
		Receiver:     uint32(receiver),
		Communicator: native.CommRef(communicator),
		MsgTag:       uint32(msgTag),
		MsgLength:    uint64(msgLength),
	}))
}

//export otf2goEvtMpiIsend
func otf2goEvtMpiIsend(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, receiver C.uint32_t, communicator C.OTF2_CommRef, msgTag C.uint32_t, msgLength C.uint64_t, requestID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.MpiIsend(e.userData, &h, &native.MpiIsend{
		Receiver:     uint32(receiver),
		Communicator: native.CommRef(communicator),
		MsgTag:       uint32(msgTag),
		MsgLength:    uint64(msgLength),
		RequestID:    uint64(requestID),
	}))
}

//export otf2goEvtMpiIsendComplete
func otf2goEvtMpiIsendComplete(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, requestID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.MpiIsendComplete(e.userData, &h, &native.MpiIsendComplete{
		RequestID: uint64(requestID),
	}))
}

//export otf2goEvtMpiIrecvRequest
func otf2goEvtMpiIrecvRequest(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, requestID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.MpiIrecvRequest(e.userData, &h, &native.MpiIrecvRequest{
		RequestID: uint64(requestID),
	}))
}

//export otf2goEvtMpiRecv
func otf2goEvtMpiRecv(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, sender C.uint32_t, communicator C.OTF2_CommRef, msgTag C.uint32_t, msgLength C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.MpiRecv(e.userData, &h, &native.MpiRecv{
		Sender:       uint32(sender),
		Communicator: native.CommRef(communicator),
		MsgTag:       uint32(msgTag),
		MsgLength:    uint64(msgLength),
	}))
}

//export otf2goEvtMpiIrecv
func otf2goEvtMpiIrecv(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, sender C.uint32_t, communicator C.OTF2_CommRef, msgTag C.uint32_t, msgLength C.uint64_t, requestID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.MpiIrecv(e.userData, &h, &native.MpiIrecv{
		Sender:       uint32(sender),
		Communicator: native.CommRef(communicator),
		MsgTag:       uint32(msgTag),
		MsgLength:    uint64(msgLength),
		RequestID:    uint64(requestID),
	}))
}

//export otf2goEvtMpiRequestTest
func otf2goEvtMpiRequestTest(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, requestID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.MpiRequestTest(e.userData, &h, &native.MpiRequestTest{
		RequestID: uint64(requestID),
	}))
}

//export otf2goEvtMpiRequestCancelled
func otf2goEvtMpiRequestCancelled(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, requestID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.MpiRequestCancelled(e.userData, &h, &native.MpiRequestCancelled{
		RequestID: uint64(requestID),
	}))
}

//export otf2goEvtMpiCollectiveBegin
func otf2goEvtMpiCollectiveBegin(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.MpiCollectiveBegin(e.userData, &h, &native.MpiCollectiveBegin{}))
}

//export otf2goEvtMpiCollectiveEnd
func otf2goEvtMpiCollectiveEnd(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, collectiveOp C.OTF2_CollectiveOp, communicator C.OTF2_CommRef, root C.uint32_t, sizeSent C.uint64_t, sizeReceived C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.MpiCollectiveEnd(e.userData, &h, &native.MpiCollectiveEnd{
		CollectiveOp: native.CollectiveOp(collectiveOp),
		Communicator: native.CommRef(communicator),
		Root:         uint32(root),
		SizeSent:     uint64(sizeSent),
		SizeReceived: uint64(sizeReceived),
	}))
}

//export otf2goEvtOmpFork
func otf2goEvtOmpFork(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, numberOfRequestedThreads C.uint32_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.OmpFork(e.userData, &h, &native.OmpFork{
		NumberOfRequestedThreads: uint32(numberOfRequestedThreads),
	}))
}

//export otf2goEvtOmpJoin
func otf2goEvtOmpJoin(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.OmpJoin(e.userData, &h, &native.OmpJoin{}))
}

//export otf2goEvtOmpAcquireLock
func otf2goEvtOmpAcquireLock(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, lockID C.uint32_t, acquisitionOrder C.uint32_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.OmpAcquireLock(e.userData, &h, &native.OmpAcquireLock{
		LockID:           uint32(lockID),
		AcquisitionOrder: uint32(acquisitionOrder),
	}))
}

//export otf2goEvtOmpReleaseLock
func otf2goEvtOmpReleaseLock(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, lockID C.uint32_t, acquisitionOrder C.uint32_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.OmpReleaseLock(e.userData, &h, &native.OmpReleaseLock{
		LockID:           uint32(lockID),
		AcquisitionOrder: uint32(acquisitionOrder),
	}))
}

//export otf2goEvtOmpTaskCreate
func otf2goEvtOmpTaskCreate(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, taskID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.OmpTaskCreate(e.userData, &h, &native.OmpTaskCreate{
		TaskID: uint64(taskID),
	}))
}

//export otf2goEvtOmpTaskSwitch
func otf2goEvtOmpTaskSwitch(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, taskID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.OmpTaskSwitch(e.userData, &h, &native.OmpTaskSwitch{
		TaskID: uint64(taskID),
	}))
}

//export otf2goEvtOmpTaskComplete
func otf2goEvtOmpTaskComplete(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, taskID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.OmpTaskComplete(e.userData, &h, &native.OmpTaskComplete{
		TaskID: uint64(taskID),
	}))
}

//export otf2goEvtMetric
func otf2goEvtMetric(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, metric C.OTF2_MetricRef, count C.uint8_t, types *C.OTF2_Type, values *C.OTF2_MetricValue) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	n := int(count)
	return callbackCode(e.callbacks.Metric(e.userData, &h, &native.Metric{
		Metric: native.MetricRef(metric),
		Types:  convertSlice(types, n, func(v C.OTF2_Type) native.Type { return typeOf(v) }),
		Values: convertSlice(values, n, func(v C.OTF2_MetricValue) native.RawValue { return native.RawValue(v) }),
	}))
}

//export otf2goEvtParameterString
func otf2goEvtParameterString(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, parameter C.OTF2_ParameterRef, str C.OTF2_StringRef) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.ParameterString(e.userData, &h, &native.ParameterString{
		Parameter: native.ParameterRef(parameter),
		String:    native.StringRef(str),
	}))
}

//export otf2goEvtParameterInt
func otf2goEvtParameterInt(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, parameter C.OTF2_ParameterRef, value C.int64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.ParameterInt(e.userData, &h, &native.ParameterInt{
		Parameter: native.ParameterRef(parameter),
		Value:     int64(value),
	}))
}

//export otf2goEvtParameterUnsignedInt
func otf2goEvtParameterUnsignedInt(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, parameter C.OTF2_ParameterRef, value C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.ParameterUnsignedInt(e.userData, &h, &native.ParameterUnsignedInt{
		Parameter: native.ParameterRef(parameter),
		Value:     uint64(value),
	}))
}

//export otf2goEvtRmaWinCreate
func otf2goEvtRmaWinCreate(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, win C.OTF2_RmaWinRef) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaWinCreate(e.userData, &h, &native.RmaWinCreate{
		Win: native.RmaWinRef(win),
	}))
}

//export otf2goEvtRmaWinDestroy
func otf2goEvtRmaWinDestroy(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, win C.OTF2_RmaWinRef) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaWinDestroy(e.userData, &h, &native.RmaWinDestroy{
		Win: native.RmaWinRef(win),
	}))
}

//export otf2goEvtRmaCollectiveBegin
func otf2goEvtRmaCollectiveBegin(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaCollectiveBegin(e.userData, &h, &native.RmaCollectiveBegin{}))
}

//export otf2goEvtRmaCollectiveEnd
func otf2goEvtRmaCollectiveEnd(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, collectiveOp C.OTF2_CollectiveOp, syncLevel C.OTF2_RmaSyncLevel, win C.OTF2_RmaWinRef, root C.uint32_t, bytesSent C.uint64_t, bytesReceived C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaCollectiveEnd(e.userData, &h, &native.RmaCollectiveEnd{
		CollectiveOp:  native.CollectiveOp(collectiveOp),
		SyncLevel:     native.RmaSyncLevel(syncLevel),
		Win:           native.RmaWinRef(win),
		Root:          uint32(root),
		BytesSent:     uint64(bytesSent),
		BytesReceived: uint64(bytesReceived),
	}))
}

//export otf2goEvtRmaGroupSync
func otf2goEvtRmaGroupSync(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, syncLevel C.OTF2_RmaSyncLevel, win C.OTF2_RmaWinRef, group C.OTF2_GroupRef) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaGroupSync(e.userData, &h, &native.RmaGroupSync{
		SyncLevel: native.RmaSyncLevel(syncLevel),
		Win:       native.RmaWinRef(win),
		Group:     native.GroupRef(group),
	}))
}

//export otf2goEvtRmaRequestLock
func otf2goEvtRmaRequestLock(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, win C.OTF2_RmaWinRef, remote C.uint32_t, lockID C.uint64_t, lockType C.OTF2_LockType) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaRequestLock(e.userData, &h, &native.RmaRequestLock{
		Win:      native.RmaWinRef(win),
		Remote:   uint32(remote),
		LockID:   uint64(lockID),
		LockType: native.LockType(lockType),
	}))
}

//export otf2goEvtRmaAcquireLock
func otf2goEvtRmaAcquireLock(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, win C.OTF2_RmaWinRef, remote C.uint32_t, lockID C.uint64_t, lockType C.OTF2_LockType) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaAcquireLock(e.userData, &h, &native.RmaAcquireLock{
		Win:      native.RmaWinRef(win),
		Remote:   uint32(remote),
		LockID:   uint64(lockID),
		LockType: native.LockType(lockType),
	}))
}

//export otf2goEvtRmaTryLock
func otf2goEvtRmaTryLock(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, win C.OTF2_RmaWinRef, remote C.uint32_t, lockID C.uint64_t, lockType C.OTF2_LockType) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaTryLock(e.userData, &h, &native.RmaTryLock{
		Win:      native.RmaWinRef(win),
		Remote:   uint32(remote),
		LockID:   uint64(lockID),
		LockType: native.LockType(lockType),
	}))
}

//export otf2goEvtRmaReleaseLock
func otf2goEvtRmaReleaseLock(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, win C.OTF2_RmaWinRef, remote C.uint32_t, lockID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaReleaseLock(e.userData, &h, &native.RmaReleaseLock{
		Win:    native.RmaWinRef(win),
		Remote: uint32(remote),
		LockID: uint64(lockID),
	}))
}

//export otf2goEvtRmaSync
func otf2goEvtRmaSync(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, win C.OTF2_RmaWinRef, remote C.uint32_t, syncType C.OTF2_RmaSyncType) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaSync(e.userData, &h, &native.RmaSync{
		Win:      native.RmaWinRef(win),
		Remote:   uint32(remote),
		SyncType: native.RmaSyncType(syncType),
	}))
}

//export otf2goEvtRmaWaitChange
func otf2goEvtRmaWaitChange(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, win C.OTF2_RmaWinRef) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaWaitChange(e.userData, &h, &native.RmaWaitChange{
		Win: native.RmaWinRef(win),
	}))
}

//export otf2goEvtRmaPut
func otf2goEvtRmaPut(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, win C.OTF2_RmaWinRef, remote C.uint32_t, bytes C.uint64_t, matchingID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaPut(e.userData, &h, &native.RmaPut{
		Win:        native.RmaWinRef(win),
		Remote:     uint32(remote),
		Bytes:      uint64(bytes),
		MatchingID: uint64(matchingID),
	}))
}

//export otf2goEvtRmaGet
func otf2goEvtRmaGet(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, win C.OTF2_RmaWinRef, remote C.uint32_t, bytes C.uint64_t, matchingID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaGet(e.userData, &h, &native.RmaGet{
		Win:        native.RmaWinRef(win),
		Remote:     uint32(remote),
		Bytes:      uint64(bytes),
		MatchingID: uint64(matchingID),
	}))
}

//export otf2goEvtRmaAtomic
func otf2goEvtRmaAtomic(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, win C.OTF2_RmaWinRef, remote C.uint32_t, typ C.OTF2_RmaAtomicType, bytesSent C.uint64_t, bytesReceived C.uint64_t, matchingID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaAtomic(e.userData, &h, &native.RmaAtomic{
		Win:           native.RmaWinRef(win),
		Remote:        uint32(remote),
		Type:          native.RmaAtomicType(typ),
		BytesSent:     uint64(bytesSent),
		BytesReceived: uint64(bytesReceived),
		MatchingID:    uint64(matchingID),
	}))
}

//export otf2goEvtRmaOpCompleteBlocking
func otf2goEvtRmaOpCompleteBlocking(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, win C.OTF2_RmaWinRef, matchingID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaOpCompleteBlocking(e.userData, &h, &native.RmaOpCompleteBlocking{
		Win:        native.RmaWinRef(win),
		MatchingID: uint64(matchingID),
	}))
}

//export otf2goEvtRmaOpCompleteNonBlocking
func otf2goEvtRmaOpCompleteNonBlocking(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, win C.OTF2_RmaWinRef, matchingID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaOpCompleteNonBlocking(e.userData, &h, &native.RmaOpCompleteNonBlocking{
		Win:        native.RmaWinRef(win),
		MatchingID: uint64(matchingID),
	}))
}

//export otf2goEvtRmaOpTest
func otf2goEvtRmaOpTest(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, win C.OTF2_RmaWinRef, matchingID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaOpTest(e.userData, &h, &native.RmaOpTest{
		Win:        native.RmaWinRef(win),
		MatchingID: uint64(matchingID),
	}))
}

//export otf2goEvtRmaOpCompleteRemote
func otf2goEvtRmaOpCompleteRemote(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, win C.OTF2_RmaWinRef, matchingID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.RmaOpCompleteRemote(e.userData, &h, &native.RmaOpCompleteRemote{
		Win:        native.RmaWinRef(win),
		MatchingID: uint64(matchingID),
	}))
}

//export otf2goEvtThreadFork
func otf2goEvtThreadFork(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, model C.OTF2_Paradigm, numberOfRequestedThreads C.uint32_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.ThreadFork(e.userData, &h, &native.ThreadFork{
		Model:                    native.Paradigm(model),
		NumberOfRequestedThreads: uint32(numberOfRequestedThreads),
	}))
}

//export otf2goEvtThreadJoin
func otf2goEvtThreadJoin(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, model C.OTF2_Paradigm) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.ThreadJoin(e.userData, &h, &native.ThreadJoin{
		Model: native.Paradigm(model),
	}))
}

//export otf2goEvtThreadTeamBegin
func otf2goEvtThreadTeamBegin(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, threadTeam C.OTF2_CommRef) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.ThreadTeamBegin(e.userData, &h, &native.ThreadTeamBegin{
		ThreadTeam: native.CommRef(threadTeam),
	}))
}

//export otf2goEvtThreadTeamEnd
func otf2goEvtThreadTeamEnd(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, threadTeam C.OTF2_CommRef) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.ThreadTeamEnd(e.userData, &h, &native.ThreadTeamEnd{
		ThreadTeam: native.CommRef(threadTeam),
	}))
}

//export otf2goEvtThreadAcquireLock
func otf2goEvtThreadAcquireLock(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, model C.OTF2_Paradigm, lockID C.uint32_t, acquisitionOrder C.uint32_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.ThreadAcquireLock(e.userData, &h, &native.ThreadAcquireLock{
		Model:            native.Paradigm(model),
		LockID:           uint32(lockID),
		AcquisitionOrder: uint32(acquisitionOrder),
	}))
}

//export otf2goEvtThreadReleaseLock
func otf2goEvtThreadReleaseLock(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, model C.OTF2_Paradigm, lockID C.uint32_t, acquisitionOrder C.uint32_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.ThreadReleaseLock(e.userData, &h, &native.ThreadReleaseLock{
		Model:            native.Paradigm(model),
		LockID:           uint32(lockID),
		AcquisitionOrder: uint32(acquisitionOrder),
	}))
}

//export otf2goEvtThreadTaskCreate
func otf2goEvtThreadTaskCreate(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, threadTeam C.OTF2_CommRef, creatingThread C.uint32_t, generationNumber C.uint32_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.ThreadTaskCreate(e.userData, &h, &native.ThreadTaskCreate{
		ThreadTeam:       native.CommRef(threadTeam),
		CreatingThread:   uint32(creatingThread),
		GenerationNumber: uint32(generationNumber),
	}))
}

//export otf2goEvtThreadTaskSwitch
func otf2goEvtThreadTaskSwitch(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, threadTeam C.OTF2_CommRef, creatingThread C.uint32_t, generationNumber C.uint32_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.ThreadTaskSwitch(e.userData, &h, &native.ThreadTaskSwitch{
		ThreadTeam:       native.CommRef(threadTeam),
		CreatingThread:   uint32(creatingThread),
		GenerationNumber: uint32(generationNumber),
	}))
}

//export otf2goEvtThreadTaskComplete
func otf2goEvtThreadTaskComplete(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, threadTeam C.OTF2_CommRef, creatingThread C.uint32_t, generationNumber C.uint32_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.ThreadTaskComplete(e.userData, &h, &native.ThreadTaskComplete{
		ThreadTeam:       native.CommRef(threadTeam),
		CreatingThread:   uint32(creatingThread),
		GenerationNumber: uint32(generationNumber),
	}))
}

//export otf2goEvtThreadCreate
func otf2goEvtThreadCreate(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, threadContingent C.OTF2_CommRef, sequenceCount C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.ThreadCreate(e.userData, &h, &native.ThreadCreate{
		ThreadContingent: native.CommRef(threadContingent),
		SequenceCount:    uint64(sequenceCount),
	}))
}

//export otf2goEvtThreadBegin
func otf2goEvtThreadBegin(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, threadContingent C.OTF2_CommRef, sequenceCount C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.ThreadBegin(e.userData, &h, &native.ThreadBegin{
		ThreadContingent: native.CommRef(threadContingent),
		SequenceCount:    uint64(sequenceCount),
	}))
}

//export otf2goEvtThreadWait
func otf2goEvtThreadWait(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, threadContingent C.OTF2_CommRef, sequenceCount C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.ThreadWait(e.userData, &h, &native.ThreadWait{
		ThreadContingent: native.CommRef(threadContingent),
		SequenceCount:    uint64(sequenceCount),
	}))
}

//export otf2goEvtThreadEnd
func otf2goEvtThreadEnd(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, threadContingent C.OTF2_CommRef, sequenceCount C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.ThreadEnd(e.userData, &h, &native.ThreadEnd{
		ThreadContingent: native.CommRef(threadContingent),
		SequenceCount:    uint64(sequenceCount),
	}))
}

//export otf2goEvtCallingContextEnter
func otf2goEvtCallingContextEnter(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, callingContext C.OTF2_CallingContextRef, unwindDistance C.uint32_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.CallingContextEnter(e.userData, &h, &native.CallingContextEnter{
		CallingContext: native.CallingContextRef(callingContext),
		UnwindDistance: uint32(unwindDistance),
	}))
}

//export otf2goEvtCallingContextLeave
func otf2goEvtCallingContextLeave(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, callingContext C.OTF2_CallingContextRef) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.CallingContextLeave(e.userData, &h, &native.CallingContextLeave{
		CallingContext: native.CallingContextRef(callingContext),
	}))
}

//export otf2goEvtCallingContextSample
func otf2goEvtCallingContextSample(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, callingContext C.OTF2_CallingContextRef, unwindDistance C.uint32_t, interruptGenerator C.OTF2_InterruptGeneratorRef) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.CallingContextSample(e.userData, &h, &native.CallingContextSample{
		CallingContext:     native.CallingContextRef(callingContext),
		UnwindDistance:     uint32(unwindDistance),
		InterruptGenerator: native.InterruptGeneratorRef(interruptGenerator),
	}))
}

//export otf2goEvtIoCreateHandle
func otf2goEvtIoCreateHandle(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, handle C.OTF2_IoHandleRef, mode C.OTF2_IoAccessMode, creationFlags C.OTF2_IoCreationFlag, statusFlags C.OTF2_IoStatusFlag) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.IoCreateHandle(e.userData, &h, &native.IoCreateHandle{
		Handle:        native.IoHandleRef(handle),
		Mode:          native.IoAccessMode(mode),
		CreationFlags: native.IoCreationFlag(creationFlags),
		StatusFlags:   native.IoStatusFlag(statusFlags),
	}))
}

//export otf2goEvtIoDestroyHandle
func otf2goEvtIoDestroyHandle(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, handle C.OTF2_IoHandleRef) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.IoDestroyHandle(e.userData, &h, &native.IoDestroyHandle{
		Handle: native.IoHandleRef(handle),
	}))
}

//export otf2goEvtIoDuplicateHandle
func otf2goEvtIoDuplicateHandle(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, oldHandle C.OTF2_IoHandleRef, newHandle C.OTF2_IoHandleRef, statusFlags C.OTF2_IoStatusFlag) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.IoDuplicateHandle(e.userData, &h, &native.IoDuplicateHandle{
		OldHandle:   native.IoHandleRef(oldHandle),
		NewHandle:   native.IoHandleRef(newHandle),
		StatusFlags: native.IoStatusFlag(statusFlags),
	}))
}

//export otf2goEvtIoSeek
func otf2goEvtIoSeek(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, handle C.OTF2_IoHandleRef, offsetRequest C.int64_t, whence C.OTF2_IoSeekOption, offsetResult C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.IoSeek(e.userData, &h, &native.IoSeek{
		Handle:        native.IoHandleRef(handle),
		OffsetRequest: int64(offsetRequest),
		Whence:        native.IoSeekOption(whence),
		OffsetResult:  uint64(offsetResult),
	}))
}

//export otf2goEvtIoChangeStatusFlags
func otf2goEvtIoChangeStatusFlags(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, handle C.OTF2_IoHandleRef, statusFlags C.OTF2_IoStatusFlag) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.IoChangeStatusFlags(e.userData, &h, &native.IoChangeStatusFlags{
		Handle:      native.IoHandleRef(handle),
		StatusFlags: native.IoStatusFlag(statusFlags),
	}))
}

//export otf2goEvtIoDeleteFile
func otf2goEvtIoDeleteFile(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, ioParadigm C.OTF2_IoParadigmRef, file C.OTF2_IoFileRef) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.IoDeleteFile(e.userData, &h, &native.IoDeleteFile{
		IoParadigm: native.IoParadigmRef(ioParadigm),
		File:       native.IoFileRef(file),
	}))
}

//export otf2goEvtIoOperationBegin
func otf2goEvtIoOperationBegin(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, handle C.OTF2_IoHandleRef, mode C.OTF2_IoOperationMode, operationFlags C.OTF2_IoOperationFlag, bytesRequest C.uint64_t, matchingID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.IoOperationBegin(e.userData, &h, &native.IoOperationBegin{
		Handle:         native.IoHandleRef(handle),
		Mode:           native.IoOperationMode(mode),
		OperationFlags: native.IoOperationFlag(operationFlags),
		BytesRequest:   uint64(bytesRequest),
		MatchingID:     uint64(matchingID),
	}))
}

//export otf2goEvtIoOperationTest
func otf2goEvtIoOperationTest(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, handle C.OTF2_IoHandleRef, matchingID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.IoOperationTest(e.userData, &h, &native.IoOperationTest{
		Handle:     native.IoHandleRef(handle),
		MatchingID: uint64(matchingID),
	}))
}

//export otf2goEvtIoOperationIssued
func otf2goEvtIoOperationIssued(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, handle C.OTF2_IoHandleRef, matchingID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.IoOperationIssued(e.userData, &h, &native.IoOperationIssued{
		Handle:     native.IoHandleRef(handle),
		MatchingID: uint64(matchingID),
	}))
}

//export otf2goEvtIoOperationComplete
func otf2goEvtIoOperationComplete(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, handle C.OTF2_IoHandleRef, bytesResult C.uint64_t, matchingID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.IoOperationComplete(e.userData, &h, &native.IoOperationComplete{
		Handle:      native.IoHandleRef(handle),
		BytesResult: uint64(bytesResult),
		MatchingID:  uint64(matchingID),
	}))
}

//export otf2goEvtIoOperationCancelled
func otf2goEvtIoOperationCancelled(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, handle C.OTF2_IoHandleRef, matchingID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.IoOperationCancelled(e.userData, &h, &native.IoOperationCancelled{
		Handle:     native.IoHandleRef(handle),
		MatchingID: uint64(matchingID),
	}))
}

//export otf2goEvtIoAcquireLock
func otf2goEvtIoAcquireLock(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, handle C.OTF2_IoHandleRef, lockType C.OTF2_LockType) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.IoAcquireLock(e.userData, &h, &native.IoAcquireLock{
		Handle:   native.IoHandleRef(handle),
		LockType: native.LockType(lockType),
	}))
}

//export otf2goEvtIoReleaseLock
func otf2goEvtIoReleaseLock(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, handle C.OTF2_IoHandleRef, lockType C.OTF2_LockType) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.IoReleaseLock(e.userData, &h, &native.IoReleaseLock{
		Handle:   native.IoHandleRef(handle),
		LockType: native.LockType(lockType),
	}))
}

//export otf2goEvtIoTryLock
func otf2goEvtIoTryLock(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, handle C.OTF2_IoHandleRef, lockType C.OTF2_LockType) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.IoTryLock(e.userData, &h, &native.IoTryLock{
		Handle:   native.IoHandleRef(handle),
		LockType: native.LockType(lockType),
	}))
}

//export otf2goEvtProgramBegin
func otf2goEvtProgramBegin(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, programName C.OTF2_StringRef, count C.uint32_t, programArguments *C.OTF2_StringRef) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	n := int(count)
	return callbackCode(e.callbacks.ProgramBegin(e.userData, &h, &native.ProgramBegin{
		ProgramName:      native.StringRef(programName),
		ProgramArguments: convertSlice(programArguments, n, func(v C.OTF2_StringRef) native.StringRef { return native.StringRef(v) }),
	}))
}

//export otf2goEvtProgramEnd
func otf2goEvtProgramEnd(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, exitStatus C.int64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.ProgramEnd(e.userData, &h, &native.ProgramEnd{
		ExitStatus: int64(exitStatus),
	}))
}

//export otf2goEvtNonBlockingCollectiveRequest
func otf2goEvtNonBlockingCollectiveRequest(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, requestID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.NonBlockingCollectiveRequest(e.userData, &h, &native.NonBlockingCollectiveRequest{
		RequestID: uint64(requestID),
	}))
}

//export otf2goEvtNonBlockingCollectiveComplete
func otf2goEvtNonBlockingCollectiveComplete(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, collectiveOp C.OTF2_CollectiveOp, communicator C.OTF2_CommRef, root C.uint32_t, sizeSent C.uint64_t, sizeReceived C.uint64_t, requestID C.uint64_t) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.NonBlockingCollectiveComplete(e.userData, &h, &native.NonBlockingCollectiveComplete{
		CollectiveOp: native.CollectiveOp(collectiveOp),
		Communicator: native.CommRef(communicator),
		Root:         uint32(root),
		SizeSent:     uint64(sizeSent),
		SizeReceived: uint64(sizeReceived),
		RequestID:    uint64(requestID),
	}))
}

//export otf2goEvtCommCreate
func otf2goEvtCommCreate(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, communicator C.OTF2_CommRef) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.CommCreate(e.userData, &h, &native.CommCreate{
		Communicator: native.CommRef(communicator),
	}))
}

//export otf2goEvtCommDestroy
func otf2goEvtCommDestroy(location C.OTF2_LocationRef, time C.OTF2_TimeStamp, userData unsafe.Pointer, attributes *C.OTF2_AttributeList, communicator C.OTF2_CommRef) C.OTF2_CallbackCode {
	e := evtBindingOf(userData)
	h := header(location, time, attributes)
	return callbackCode(e.callbacks.CommDestroy(e.userData, &h, &native.CommDestroy{
		Communicator: native.CommRef(communicator),
	}))
}

// setDefCallbacks installs a trampoline for every kind with a callback.
func setDefCallbacks(c *C.OTF2_GlobalDefReaderCallbacks, cbs *native.GlobalDefCallbacks) C.OTF2_ErrorCode {
	code := C.OTF2_ErrorCode(C.OTF2_SUCCESS)
	set := func(r C.OTF2_ErrorCode) {
		if code == C.OTF2_SUCCESS {
			code = r
		}
	}
	if cbs.Unknown != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetUnknownCallback(c, C.OTF2_GlobalDefReaderCallback_Unknown(C.otf2goDefUnknown)))
	}
	if cbs.String != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetStringCallback(c, C.OTF2_GlobalDefReaderCallback_String(C.otf2goDefString)))
	}
	if cbs.Attribute != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetAttributeCallback(c, C.OTF2_GlobalDefReaderCallback_Attribute(C.otf2goDefAttribute)))
	}
	if cbs.ClockProperties != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetClockPropertiesCallback(c, C.OTF2_GlobalDefReaderCallback_ClockProperties(C.otf2goDefClockProperties)))
	}
	if cbs.Paradigm != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetParadigmCallback(c, C.OTF2_GlobalDefReaderCallback_Paradigm(C.otf2goDefParadigm)))
	}
	if cbs.ParadigmProperty != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetParadigmPropertyCallback(c, C.OTF2_GlobalDefReaderCallback_ParadigmProperty(C.otf2goDefParadigmProperty)))
	}
	if cbs.IoParadigm != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetIoParadigmCallback(c, C.OTF2_GlobalDefReaderCallback_IoParadigm(C.otf2goDefIoParadigm)))
	}
	if cbs.SystemTreeNode != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetSystemTreeNodeCallback(c, C.OTF2_GlobalDefReaderCallback_SystemTreeNode(C.otf2goDefSystemTreeNode)))
	}
	if cbs.SystemTreeNodeProperty != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetSystemTreeNodePropertyCallback(c, C.OTF2_GlobalDefReaderCallback_SystemTreeNodeProperty(C.otf2goDefSystemTreeNodeProperty)))
	}
	if cbs.SystemTreeNodeDomain != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetSystemTreeNodeDomainCallback(c, C.OTF2_GlobalDefReaderCallback_SystemTreeNodeDomain(C.otf2goDefSystemTreeNodeDomain)))
	}
	if cbs.LocationGroup != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetLocationGroupCallback(c, C.OTF2_GlobalDefReaderCallback_LocationGroup(C.otf2goDefLocationGroup)))
	}
	if cbs.Location != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetLocationCallback(c, C.OTF2_GlobalDefReaderCallback_Location(C.otf2goDefLocation)))
	}
	if cbs.LocationGroupProperty != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetLocationGroupPropertyCallback(c, C.OTF2_GlobalDefReaderCallback_LocationGroupProperty(C.otf2goDefLocationGroupProperty)))
	}
	if cbs.LocationProperty != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetLocationPropertyCallback(c, C.OTF2_GlobalDefReaderCallback_LocationProperty(C.otf2goDefLocationProperty)))
	}
	if cbs.Region != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetRegionCallback(c, C.OTF2_GlobalDefReaderCallback_Region(C.otf2goDefRegion)))
	}
	if cbs.Callsite != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetCallsiteCallback(c, C.OTF2_GlobalDefReaderCallback_Callsite(C.otf2goDefCallsite)))
	}
	if cbs.Callpath != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetCallpathCallback(c, C.OTF2_GlobalDefReaderCallback_Callpath(C.otf2goDefCallpath)))
	}
	if cbs.CallpathParameter != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetCallpathParameterCallback(c, C.OTF2_GlobalDefReaderCallback_CallpathParameter(C.otf2goDefCallpathParameter)))
	}
	if cbs.SourceCodeLocation != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetSourceCodeLocationCallback(c, C.OTF2_GlobalDefReaderCallback_SourceCodeLocation(C.otf2goDefSourceCodeLocation)))
	}
	if cbs.CallingContext != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetCallingContextCallback(c, C.OTF2_GlobalDefReaderCallback_CallingContext(C.otf2goDefCallingContext)))
	}
	if cbs.CallingContextProperty != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetCallingContextPropertyCallback(c, C.OTF2_GlobalDefReaderCallback_CallingContextProperty(C.otf2goDefCallingContextProperty)))
	}
	if cbs.Group != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetGroupCallback(c, C.OTF2_GlobalDefReaderCallback_Group(C.otf2goDefGroup)))
	}
	if cbs.MetricMember != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetMetricMemberCallback(c, C.OTF2_GlobalDefReaderCallback_MetricMember(C.otf2goDefMetricMember)))
	}
	if cbs.MetricClass != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetMetricClassCallback(c, C.OTF2_GlobalDefReaderCallback_MetricClass(C.otf2goDefMetricClass)))
	}
	if cbs.MetricInstance != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetMetricInstanceCallback(c, C.OTF2_GlobalDefReaderCallback_MetricInstance(C.otf2goDefMetricInstance)))
	}
	if cbs.MetricClassRecorder != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetMetricClassRecorderCallback(c, C.OTF2_GlobalDefReaderCallback_MetricClassRecorder(C.otf2goDefMetricClassRecorder)))
	}
	if cbs.Comm != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetCommCallback(c, C.OTF2_GlobalDefReaderCallback_Comm(C.otf2goDefComm)))
	}
	if cbs.InterComm != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetInterCommCallback(c, C.OTF2_GlobalDefReaderCallback_InterComm(C.otf2goDefInterComm)))
	}
	if cbs.Parameter != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetParameterCallback(c, C.OTF2_GlobalDefReaderCallback_Parameter(C.otf2goDefParameter)))
	}
	if cbs.RmaWin != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetRmaWinCallback(c, C.OTF2_GlobalDefReaderCallback_RmaWin(C.otf2goDefRmaWin)))
	}
	if cbs.CartDimension != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetCartDimensionCallback(c, C.OTF2_GlobalDefReaderCallback_CartDimension(C.otf2goDefCartDimension)))
	}
	if cbs.CartTopology != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetCartTopologyCallback(c, C.OTF2_GlobalDefReaderCallback_CartTopology(C.otf2goDefCartTopology)))
	}
	if cbs.CartCoordinate != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetCartCoordinateCallback(c, C.OTF2_GlobalDefReaderCallback_CartCoordinate(C.otf2goDefCartCoordinate)))
	}
	if cbs.InterruptGenerator != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetInterruptGeneratorCallback(c, C.OTF2_GlobalDefReaderCallback_InterruptGenerator(C.otf2goDefInterruptGenerator)))
	}
	if cbs.IoFileProperty != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetIoFilePropertyCallback(c, C.OTF2_GlobalDefReaderCallback_IoFileProperty(C.otf2goDefIoFileProperty)))
	}
	if cbs.IoRegularFile != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetIoRegularFileCallback(c, C.OTF2_GlobalDefReaderCallback_IoRegularFile(C.otf2goDefIoRegularFile)))
	}
	if cbs.IoDirectory != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetIoDirectoryCallback(c, C.OTF2_GlobalDefReaderCallback_IoDirectory(C.otf2goDefIoDirectory)))
	}
	if cbs.IoHandle != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetIoHandleCallback(c, C.OTF2_GlobalDefReaderCallback_IoHandle(C.otf2goDefIoHandle)))
	}
	if cbs.IoPreCreatedHandleState != nil {
		set(C.OTF2_GlobalDefReaderCallbacks_SetIoPreCreatedHandleStateCallback(c, C.OTF2_GlobalDefReaderCallback_IoPreCreatedHandleState(C.otf2goDefIoPreCreatedHandleState)))
	}
	return code
}

// setEvtCallbacks installs a trampoline for every kind with a callback.
func setEvtCallbacks(c *C.OTF2_GlobalEvtReaderCallbacks, cbs *native.GlobalEvtCallbacks) C.OTF2_ErrorCode {
	code := C.OTF2_ErrorCode(C.OTF2_SUCCESS)
	set := func(r C.OTF2_ErrorCode) {
		if code == C.OTF2_SUCCESS {
			code = r
		}
	}
	if cbs.Unknown != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetUnknownCallback(c, C.OTF2_GlobalEvtReaderCallback_Unknown(C.otf2goEvtUnknown)))
	}
	if cbs.BufferFlush != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetBufferFlushCallback(c, C.OTF2_GlobalEvtReaderCallback_BufferFlush(C.otf2goEvtBufferFlush)))
	}
	if cbs.MeasurementOnOff != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetMeasurementOnOffCallback(c, C.OTF2_GlobalEvtReaderCallback_MeasurementOnOff(C.otf2goEvtMeasurementOnOff)))
	}
	if cbs.Enter != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetEnterCallback(c, C.OTF2_GlobalEvtReaderCallback_Enter(C.otf2goEvtEnter)))
	}
	if cbs.Leave != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetLeaveCallback(c, C.OTF2_GlobalEvtReaderCallback_Leave(C.otf2goEvtLeave)))
	}
	if cbs.MpiSend != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetMpiSendCallback(c, C.OTF2_GlobalEvtReaderCallback_MpiSend(C.otf2goEvtMpiSend)))
	}
	if cbs.MpiIsend != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetMpiIsendCallback(c, C.OTF2_GlobalEvtReaderCallback_MpiIsend(C.otf2goEvtMpiIsend)))
	}
	if cbs.MpiIsendComplete != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetMpiIsendCompleteCallback(c, C.OTF2_GlobalEvtReaderCallback_MpiIsendComplete(C.otf2goEvtMpiIsendComplete)))
	}
	if cbs.MpiIrecvRequest != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetMpiIrecvRequestCallback(c, C.OTF2_GlobalEvtReaderCallback_MpiIrecvRequest(C.otf2goEvtMpiIrecvRequest)))
	}
	if cbs.MpiRecv != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetMpiRecvCallback(c, C.OTF2_GlobalEvtReaderCallback_MpiRecv(C.otf2goEvtMpiRecv)))
	}
	if cbs.MpiIrecv != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetMpiIrecvCallback(c, C.OTF2_GlobalEvtReaderCallback_MpiIrecv(C.otf2goEvtMpiIrecv)))
	}
	if cbs.MpiRequestTest != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetMpiRequestTestCallback(c, C.OTF2_GlobalEvtReaderCallback_MpiRequestTest(C.otf2goEvtMpiRequestTest)))
	}
	if cbs.MpiRequestCancelled != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetMpiRequestCancelledCallback(c, C.OTF2_GlobalEvtReaderCallback_MpiRequestCancelled(C.otf2goEvtMpiRequestCancelled)))
	}
	if cbs.MpiCollectiveBegin != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetMpiCollectiveBeginCallback(c, C.OTF2_GlobalEvtReaderCallback_MpiCollectiveBegin(C.otf2goEvtMpiCollectiveBegin)))
	}
	if cbs.MpiCollectiveEnd != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetMpiCollectiveEndCallback(c, C.OTF2_GlobalEvtReaderCallback_MpiCollectiveEnd(C.otf2goEvtMpiCollectiveEnd)))
	}
	if cbs.OmpFork != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetOmpForkCallback(c, C.OTF2_GlobalEvtReaderCallback_OmpFork(C.otf2goEvtOmpFork)))
	}
	if cbs.OmpJoin != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetOmpJoinCallback(c, C.OTF2_GlobalEvtReaderCallback_OmpJoin(C.otf2goEvtOmpJoin)))
	}
	if cbs.OmpAcquireLock != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetOmpAcquireLockCallback(c, C.OTF2_GlobalEvtReaderCallback_OmpAcquireLock(C.otf2goEvtOmpAcquireLock)))
	}
	if cbs.OmpReleaseLock != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetOmpReleaseLockCallback(c, C.OTF2_GlobalEvtReaderCallback_OmpReleaseLock(C.otf2goEvtOmpReleaseLock)))
	}
	if cbs.OmpTaskCreate != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetOmpTaskCreateCallback(c, C.OTF2_GlobalEvtReaderCallback_OmpTaskCreate(C.otf2goEvtOmpTaskCreate)))
	}
	if cbs.OmpTaskSwitch != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetOmpTaskSwitchCallback(c, C.OTF2_GlobalEvtReaderCallback_OmpTaskSwitch(C.otf2goEvtOmpTaskSwitch)))
	}
	if cbs.OmpTaskComplete != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetOmpTaskCompleteCallback(c, C.OTF2_GlobalEvtReaderCallback_OmpTaskComplete(C.otf2goEvtOmpTaskComplete)))
	}
	if cbs.Metric != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetMetricCallback(c, C.OTF2_GlobalEvtReaderCallback_Metric(C.otf2goEvtMetric)))
	}
	if cbs.ParameterString != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetParameterStringCallback(c, C.OTF2_GlobalEvtReaderCallback_ParameterString(C.otf2goEvtParameterString)))
	}
	if cbs.ParameterInt != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetParameterIntCallback(c, C.OTF2_GlobalEvtReaderCallback_ParameterInt(C.otf2goEvtParameterInt)))
	}
	if cbs.ParameterUnsignedInt != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetParameterUnsignedIntCallback(c, C.OTF2_GlobalEvtReaderCallback_ParameterUnsignedInt(C.otf2goEvtParameterUnsignedInt)))
	}
	if cbs.RmaWinCreate != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaWinCreateCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaWinCreate(C.otf2goEvtRmaWinCreate)))
	}
	if cbs.RmaWinDestroy != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaWinDestroyCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaWinDestroy(C.otf2goEvtRmaWinDestroy)))
	}
	if cbs.RmaCollectiveBegin != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaCollectiveBeginCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaCollectiveBegin(C.otf2goEvtRmaCollectiveBegin)))
	}
	if cbs.RmaCollectiveEnd != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaCollectiveEndCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaCollectiveEnd(C.otf2goEvtRmaCollectiveEnd)))
	}
	if cbs.RmaGroupSync != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaGroupSyncCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaGroupSync(C.otf2goEvtRmaGroupSync)))
	}
	if cbs.RmaRequestLock != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaRequestLockCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaRequestLock(C.otf2goEvtRmaRequestLock)))
	}
	if cbs.RmaAcquireLock != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaAcquireLockCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaAcquireLock(C.otf2goEvtRmaAcquireLock)))
	}
	if cbs.RmaTryLock != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaTryLockCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaTryLock(C.otf2goEvtRmaTryLock)))
	}
	if cbs.RmaReleaseLock != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaReleaseLockCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaReleaseLock(C.otf2goEvtRmaReleaseLock)))
	}
	if cbs.RmaSync != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaSyncCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaSync(C.otf2goEvtRmaSync)))
	}
	if cbs.RmaWaitChange != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaWaitChangeCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaWaitChange(C.otf2goEvtRmaWaitChange)))
	}
	if cbs.RmaPut != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaPutCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaPut(C.otf2goEvtRmaPut)))
	}
	if cbs.RmaGet != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaGetCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaGet(C.otf2goEvtRmaGet)))
	}
	if cbs.RmaAtomic != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaAtomicCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaAtomic(C.otf2goEvtRmaAtomic)))
	}
	if cbs.RmaOpCompleteBlocking != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaOpCompleteBlockingCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaOpCompleteBlocking(C.otf2goEvtRmaOpCompleteBlocking)))
	}
	if cbs.RmaOpCompleteNonBlocking != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaOpCompleteNonBlockingCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaOpCompleteNonBlocking(C.otf2goEvtRmaOpCompleteNonBlocking)))
	}
	if cbs.RmaOpTest != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaOpTestCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaOpTest(C.otf2goEvtRmaOpTest)))
	}
	if cbs.RmaOpCompleteRemote != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetRmaOpCompleteRemoteCallback(c, C.OTF2_GlobalEvtReaderCallback_RmaOpCompleteRemote(C.otf2goEvtRmaOpCompleteRemote)))
	}
	if cbs.ThreadFork != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetThreadForkCallback(c, C.OTF2_GlobalEvtReaderCallback_ThreadFork(C.otf2goEvtThreadFork)))
	}
	if cbs.ThreadJoin != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetThreadJoinCallback(c, C.OTF2_GlobalEvtReaderCallback_ThreadJoin(C.otf2goEvtThreadJoin)))
	}
	if cbs.ThreadTeamBegin != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetThreadTeamBeginCallback(c, C.OTF2_GlobalEvtReaderCallback_ThreadTeamBegin(C.otf2goEvtThreadTeamBegin)))
	}
	if cbs.ThreadTeamEnd != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetThreadTeamEndCallback(c, C.OTF2_GlobalEvtReaderCallback_ThreadTeamEnd(C.otf2goEvtThreadTeamEnd)))
	}
	if cbs.ThreadAcquireLock != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetThreadAcquireLockCallback(c, C.OTF2_GlobalEvtReaderCallback_ThreadAcquireLock(C.otf2goEvtThreadAcquireLock)))
	}
	if cbs.ThreadReleaseLock != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetThreadReleaseLockCallback(c, C.OTF2_GlobalEvtReaderCallback_ThreadReleaseLock(C.otf2goEvtThreadReleaseLock)))
	}
	if cbs.ThreadTaskCreate != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetThreadTaskCreateCallback(c, C.OTF2_GlobalEvtReaderCallback_ThreadTaskCreate(C.otf2goEvtThreadTaskCreate)))
	}
	if cbs.ThreadTaskSwitch != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetThreadTaskSwitchCallback(c, C.OTF2_GlobalEvtReaderCallback_ThreadTaskSwitch(C.otf2goEvtThreadTaskSwitch)))
	}
	if cbs.ThreadTaskComplete != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetThreadTaskCompleteCallback(c, C.OTF2_GlobalEvtReaderCallback_ThreadTaskComplete(C.otf2goEvtThreadTaskComplete)))
	}
	if cbs.ThreadCreate != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetThreadCreateCallback(c, C.OTF2_GlobalEvtReaderCallback_ThreadCreate(C.otf2goEvtThreadCreate)))
	}
	if cbs.ThreadBegin != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetThreadBeginCallback(c, C.OTF2_GlobalEvtReaderCallback_ThreadBegin(C.otf2goEvtThreadBegin)))
	}
	if cbs.ThreadWait != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetThreadWaitCallback(c, C.OTF2_GlobalEvtReaderCallback_ThreadWait(C.otf2goEvtThreadWait)))
	}
	if cbs.ThreadEnd != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetThreadEndCallback(c, C.OTF2_GlobalEvtReaderCallback_ThreadEnd(C.otf2goEvtThreadEnd)))
	}
	if cbs.CallingContextEnter != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetCallingContextEnterCallback(c, C.OTF2_GlobalEvtReaderCallback_CallingContextEnter(C.otf2goEvtCallingContextEnter)))
	}
	if cbs.CallingContextLeave != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetCallingContextLeaveCallback(c, C.OTF2_GlobalEvtReaderCallback_CallingContextLeave(C.otf2goEvtCallingContextLeave)))
	}
	if cbs.CallingContextSample != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetCallingContextSampleCallback(c, C.OTF2_GlobalEvtReaderCallback_CallingContextSample(C.otf2goEvtCallingContextSample)))
	}
	if cbs.IoCreateHandle != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetIoCreateHandleCallback(c, C.OTF2_GlobalEvtReaderCallback_IoCreateHandle(C.otf2goEvtIoCreateHandle)))
	}
	if cbs.IoDestroyHandle != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetIoDestroyHandleCallback(c, C.OTF2_GlobalEvtReaderCallback_IoDestroyHandle(C.otf2goEvtIoDestroyHandle)))
	}
	if cbs.IoDuplicateHandle != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetIoDuplicateHandleCallback(c, C.OTF2_GlobalEvtReaderCallback_IoDuplicateHandle(C.otf2goEvtIoDuplicateHandle)))
	}
	if cbs.IoSeek != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetIoSeekCallback(c, C.OTF2_GlobalEvtReaderCallback_IoSeek(C.otf2goEvtIoSeek)))
	}
	if cbs.IoChangeStatusFlags != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetIoChangeStatusFlagsCallback(c, C.OTF2_GlobalEvtReaderCallback_IoChangeStatusFlags(C.otf2goEvtIoChangeStatusFlags)))
	}
	if cbs.IoDeleteFile != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetIoDeleteFileCallback(c, C.OTF2_GlobalEvtReaderCallback_IoDeleteFile(C.otf2goEvtIoDeleteFile)))
	}
	if cbs.IoOperationBegin != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetIoOperationBeginCallback(c, C.OTF2_GlobalEvtReaderCallback_IoOperationBegin(C.otf2goEvtIoOperationBegin)))
	}
	if cbs.IoOperationTest != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetIoOperationTestCallback(c, C.OTF2_GlobalEvtReaderCallback_IoOperationTest(C.otf2goEvtIoOperationTest)))
	}
	if cbs.IoOperationIssued != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetIoOperationIssuedCallback(c, C.OTF2_GlobalEvtReaderCallback_IoOperationIssued(C.otf2goEvtIoOperationIssued)))
	}
	if cbs.IoOperationComplete != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetIoOperationCompleteCallback(c, C.OTF2_GlobalEvtReaderCallback_IoOperationComplete(C.otf2goEvtIoOperationComplete)))
	}
	if cbs.IoOperationCancelled != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetIoOperationCancelledCallback(c, C.OTF2_GlobalEvtReaderCallback_IoOperationCancelled(C.otf2goEvtIoOperationCancelled)))
	}
	if cbs.IoAcquireLock != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetIoAcquireLockCallback(c, C.OTF2_GlobalEvtReaderCallback_IoAcquireLock(C.otf2goEvtIoAcquireLock)))
	}
	if cbs.IoReleaseLock != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetIoReleaseLockCallback(c, C.OTF2_GlobalEvtReaderCallback_IoReleaseLock(C.otf2goEvtIoReleaseLock)))
	}
	if cbs.IoTryLock != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetIoTryLockCallback(c, C.OTF2_GlobalEvtReaderCallback_IoTryLock(C.otf2goEvtIoTryLock)))
	}
	if cbs.ProgramBegin != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetProgramBeginCallback(c, C.OTF2_GlobalEvtReaderCallback_ProgramBegin(C.otf2goEvtProgramBegin)))
	}
	if cbs.ProgramEnd != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetProgramEndCallback(c, C.OTF2_GlobalEvtReaderCallback_ProgramEnd(C.otf2goEvtProgramEnd)))
	}
	if cbs.NonBlockingCollectiveRequest != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetNonBlockingCollectiveRequestCallback(c, C.OTF2_GlobalEvtReaderCallback_NonBlockingCollectiveRequest(C.otf2goEvtNonBlockingCollectiveRequest)))
	}
	if cbs.NonBlockingCollectiveComplete != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetNonBlockingCollectiveCompleteCallback(c, C.OTF2_GlobalEvtReaderCallback_NonBlockingCollectiveComplete(C.otf2goEvtNonBlockingCollectiveComplete)))
	}
	if cbs.CommCreate != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetCommCreateCallback(c, C.OTF2_GlobalEvtReaderCallback_CommCreate(C.otf2goEvtCommCreate)))
	}
	if cbs.CommDestroy != nil {
		set(C.OTF2_GlobalEvtReaderCallbacks_SetCommDestroyCallback(c, C.OTF2_GlobalEvtReaderCallback_CommDestroy(C.otf2goEvtCommDestroy)))
	}
	return code
}
