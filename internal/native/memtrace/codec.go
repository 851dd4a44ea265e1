package memtrace

import (
	"context"
	"fmt"

	"gocloud.dev/blob"

	"github.com/getsentry/otf2/internal/native"
	"github.com/getsentry/otf2/internal/storageutil"

	gojson "github.com/goccy/go-json"
)

type (
	taggedDefinition struct {
		Kind   string            `json:"kind"`
		Record gojson.RawMessage `json:"record"`
	}

	taggedEvent struct {
		Kind       string             `json:"kind"`
		Location   native.LocationRef `json:"location"`
		Time       native.TimeStamp   `json:"time"`
		Attributes []Attribute        `json:"attributes,omitempty"`
		Record     gojson.RawMessage  `json:"record"`
	}

	traceFile struct {
		Definitions      []taggedDefinition            `json:"definitions"`
		Events           []taggedEvent                 `json:"events"`
		LocalDefinitions map[native.LocationRef]uint64 `json:"local_definitions,omitempty"`
	}
)

var (
	definitionKinds = make(map[string]native.DefinitionKind)
	eventKinds      = make(map[string]native.EventKind)
)

func init() {
	for _, k := range native.DefinitionKinds() {
		definitionKinds[k.String()] = k
	}
	for _, k := range native.EventKinds() {
		eventKinds[k.String()] = k
	}
}

func decodeRecord[T any](data []byte) (T, error) {
	var rec T
	err := gojson.Unmarshal(data, &rec)
	return rec, err
}

func decodeDefinition[T native.DefRecord](data []byte) (native.DefRecord, error) {
	return decodeRecord[T](data)
}

func decodeEvent[T native.EvtRecord](data []byte) (native.EvtRecord, error) {
	return decodeRecord[T](data)
}

var definitionDecoders = map[native.DefinitionKind]func([]byte) (native.DefRecord, error){
	native.DefUnknown:                 decodeDefinition[native.UnknownDef],
	native.DefString:                  decodeDefinition[native.StringDef],
	native.DefAttribute:               decodeDefinition[native.AttributeDef],
	native.DefClockProperties:         decodeDefinition[native.ClockPropertiesDef],
	native.DefParadigm:                decodeDefinition[native.ParadigmDef],
	native.DefParadigmProperty:        decodeDefinition[native.ParadigmPropertyDef],
	native.DefIoParadigm:              decodeDefinition[native.IoParadigmDef],
	native.DefSystemTreeNode:          decodeDefinition[native.SystemTreeNodeDef],
	native.DefSystemTreeNodeProperty:  decodeDefinition[native.SystemTreeNodePropertyDef],
	native.DefSystemTreeNodeDomain:    decodeDefinition[native.SystemTreeNodeDomainDef],
	native.DefLocationGroup:           decodeDefinition[native.LocationGroupDef],
	native.DefLocation:                decodeDefinition[native.LocationDef],
	native.DefLocationGroupProperty:   decodeDefinition[native.LocationGroupPropertyDef],
	native.DefLocationProperty:        decodeDefinition[native.LocationPropertyDef],
	native.DefRegion:                  decodeDefinition[native.RegionDef],
	native.DefCallsite:                decodeDefinition[native.CallsiteDef],
	native.DefCallpath:                decodeDefinition[native.CallpathDef],
	native.DefCallpathParameter:       decodeDefinition[native.CallpathParameterDef],
	native.DefSourceCodeLocation:      decodeDefinition[native.SourceCodeLocationDef],
	native.DefCallingContext:          decodeDefinition[native.CallingContextDef],
	native.DefCallingContextProperty:  decodeDefinition[native.CallingContextPropertyDef],
	native.DefGroup:                   decodeDefinition[native.GroupDef],
	native.DefMetricMember:            decodeDefinition[native.MetricMemberDef],
	native.DefMetricClass:             decodeDefinition[native.MetricClassDef],
	native.DefMetricInstance:          decodeDefinition[native.MetricInstanceDef],
	native.DefMetricClassRecorder:     decodeDefinition[native.MetricClassRecorderDef],
	native.DefComm:                    decodeDefinition[native.CommDef],
	native.DefInterComm:               decodeDefinition[native.InterCommDef],
	native.DefParameter:               decodeDefinition[native.ParameterDef],
	native.DefRmaWin:                  decodeDefinition[native.RmaWinDef],
	native.DefCartDimension:           decodeDefinition[native.CartDimensionDef],
	native.DefCartTopology:            decodeDefinition[native.CartTopologyDef],
	native.DefCartCoordinate:          decodeDefinition[native.CartCoordinateDef],
	native.DefInterruptGenerator:      decodeDefinition[native.InterruptGeneratorDef],
	native.DefIoFileProperty:          decodeDefinition[native.IoFilePropertyDef],
	native.DefIoRegularFile:           decodeDefinition[native.IoRegularFileDef],
	native.DefIoDirectory:             decodeDefinition[native.IoDirectoryDef],
	native.DefIoHandle:                decodeDefinition[native.IoHandleDef],
	native.DefIoPreCreatedHandleState: decodeDefinition[native.IoPreCreatedHandleStateDef],
}

var eventDecoders = map[native.EventKind]func([]byte) (native.EvtRecord, error){
	native.EvtUnknown:                       decodeEvent[native.UnknownEvent],
	native.EvtBufferFlush:                   decodeEvent[native.BufferFlush],
	native.EvtMeasurementOnOff:              decodeEvent[native.MeasurementOnOff],
	native.EvtEnter:                         decodeEvent[native.Enter],
	native.EvtLeave:                         decodeEvent[native.Leave],
	native.EvtMpiSend:                       decodeEvent[native.MpiSend],
	native.EvtMpiIsend:                      decodeEvent[native.MpiIsend],
	native.EvtMpiIsendComplete:              decodeEvent[native.MpiIsendComplete],
	native.EvtMpiIrecvRequest:               decodeEvent[native.MpiIrecvRequest],
	native.EvtMpiRecv:                       decodeEvent[native.MpiRecv],
	native.EvtMpiIrecv:                      decodeEvent[native.MpiIrecv],
	native.EvtMpiRequestTest:                decodeEvent[native.MpiRequestTest],
	native.EvtMpiRequestCancelled:           decodeEvent[native.MpiRequestCancelled],
	native.EvtMpiCollectiveBegin:            decodeEvent[native.MpiCollectiveBegin],
	native.EvtMpiCollectiveEnd:              decodeEvent[native.MpiCollectiveEnd],
	native.EvtOmpFork:                       decodeEvent[native.OmpFork],
	native.EvtOmpJoin:                       decodeEvent[native.OmpJoin],
	native.EvtOmpAcquireLock:                decodeEvent[native.OmpAcquireLock],
	native.EvtOmpReleaseLock:                decodeEvent[native.OmpReleaseLock],
	native.EvtOmpTaskCreate:                 decodeEvent[native.OmpTaskCreate],
	native.EvtOmpTaskSwitch:                 decodeEvent[native.OmpTaskSwitch],
	native.EvtOmpTaskComplete:               decodeEvent[native.OmpTaskComplete],
	native.EvtMetric:                        decodeEvent[native.Metric],
	native.EvtParameterString:               decodeEvent[native.ParameterString],
	native.EvtParameterInt:                  decodeEvent[native.ParameterInt],
	native.EvtParameterUnsignedInt:          decodeEvent[native.ParameterUnsignedInt],
	native.EvtRmaWinCreate:                  decodeEvent[native.RmaWinCreate],
	native.EvtRmaWinDestroy:                 decodeEvent[native.RmaWinDestroy],
	native.EvtRmaCollectiveBegin:            decodeEvent[native.RmaCollectiveBegin],
	native.EvtRmaCollectiveEnd:              decodeEvent[native.RmaCollectiveEnd],
	native.EvtRmaGroupSync:                  decodeEvent[native.RmaGroupSync],
	native.EvtRmaRequestLock:                decodeEvent[native.RmaRequestLock],
	native.EvtRmaAcquireLock:                decodeEvent[native.RmaAcquireLock],
	native.EvtRmaTryLock:                    decodeEvent[native.RmaTryLock],
	native.EvtRmaReleaseLock:                decodeEvent[native.RmaReleaseLock],
	native.EvtRmaSync:                       decodeEvent[native.RmaSync],
	native.EvtRmaWaitChange:                 decodeEvent[native.RmaWaitChange],
	native.EvtRmaPut:                        decodeEvent[native.RmaPut],
	native.EvtRmaGet:                        decodeEvent[native.RmaGet],
	native.EvtRmaAtomic:                     decodeEvent[native.RmaAtomic],
	native.EvtRmaOpCompleteBlocking:         decodeEvent[native.RmaOpCompleteBlocking],
	native.EvtRmaOpCompleteNonBlocking:      decodeEvent[native.RmaOpCompleteNonBlocking],
	native.EvtRmaOpTest:                     decodeEvent[native.RmaOpTest],
	native.EvtRmaOpCompleteRemote:           decodeEvent[native.RmaOpCompleteRemote],
	native.EvtThreadFork:                    decodeEvent[native.ThreadFork],
	native.EvtThreadJoin:                    decodeEvent[native.ThreadJoin],
	native.EvtThreadTeamBegin:               decodeEvent[native.ThreadTeamBegin],
	native.EvtThreadTeamEnd:                 decodeEvent[native.ThreadTeamEnd],
	native.EvtThreadAcquireLock:             decodeEvent[native.ThreadAcquireLock],
	native.EvtThreadReleaseLock:             decodeEvent[native.ThreadReleaseLock],
	native.EvtThreadTaskCreate:              decodeEvent[native.ThreadTaskCreate],
	native.EvtThreadTaskSwitch:              decodeEvent[native.ThreadTaskSwitch],
	native.EvtThreadTaskComplete:            decodeEvent[native.ThreadTaskComplete],
	native.EvtThreadCreate:                  decodeEvent[native.ThreadCreate],
	native.EvtThreadBegin:                   decodeEvent[native.ThreadBegin],
	native.EvtThreadWait:                    decodeEvent[native.ThreadWait],
	native.EvtThreadEnd:                     decodeEvent[native.ThreadEnd],
	native.EvtCallingContextEnter:           decodeEvent[native.CallingContextEnter],
	native.EvtCallingContextLeave:           decodeEvent[native.CallingContextLeave],
	native.EvtCallingContextSample:          decodeEvent[native.CallingContextSample],
	native.EvtIoCreateHandle:                decodeEvent[native.IoCreateHandle],
	native.EvtIoDestroyHandle:               decodeEvent[native.IoDestroyHandle],
	native.EvtIoDuplicateHandle:             decodeEvent[native.IoDuplicateHandle],
	native.EvtIoSeek:                        decodeEvent[native.IoSeek],
	native.EvtIoChangeStatusFlags:           decodeEvent[native.IoChangeStatusFlags],
	native.EvtIoDeleteFile:                  decodeEvent[native.IoDeleteFile],
	native.EvtIoOperationBegin:              decodeEvent[native.IoOperationBegin],
	native.EvtIoOperationTest:               decodeEvent[native.IoOperationTest],
	native.EvtIoOperationIssued:             decodeEvent[native.IoOperationIssued],
	native.EvtIoOperationComplete:           decodeEvent[native.IoOperationComplete],
	native.EvtIoOperationCancelled:          decodeEvent[native.IoOperationCancelled],
	native.EvtIoAcquireLock:                 decodeEvent[native.IoAcquireLock],
	native.EvtIoReleaseLock:                 decodeEvent[native.IoReleaseLock],
	native.EvtIoTryLock:                     decodeEvent[native.IoTryLock],
	native.EvtProgramBegin:                  decodeEvent[native.ProgramBegin],
	native.EvtProgramEnd:                    decodeEvent[native.ProgramEnd],
	native.EvtNonBlockingCollectiveRequest:  decodeEvent[native.NonBlockingCollectiveRequest],
	native.EvtNonBlockingCollectiveComplete: decodeEvent[native.NonBlockingCollectiveComplete],
	native.EvtCommCreate:                    decodeEvent[native.CommCreate],
	native.EvtCommDestroy:                   decodeEvent[native.CommDestroy],
}

// MarshalJSON encodes the trace with every record tagged by its kind.
func (t Trace) MarshalJSON() ([]byte, error) {
	f := traceFile{
		Definitions:      make([]taggedDefinition, 0, len(t.Definitions)),
		Events:           make([]taggedEvent, 0, len(t.Events)),
		LocalDefinitions: t.LocalDefinitions,
	}
	for _, d := range t.Definitions {
		b, err := gojson.Marshal(d)
		if err != nil {
			return nil, err
		}
		f.Definitions = append(f.Definitions, taggedDefinition{Kind: d.Kind().String(), Record: b})
	}
	for _, e := range t.Events {
		b, err := gojson.Marshal(e.Record)
		if err != nil {
			return nil, err
		}
		f.Events = append(f.Events, taggedEvent{
			Kind:       e.Record.Kind().String(),
			Location:   e.Location,
			Time:       e.Time,
			Attributes: e.Attributes,
			Record:     b,
		})
	}
	return gojson.Marshal(f)
}

func (t *Trace) UnmarshalJSON(b []byte) error {
	var f traceFile
	if err := gojson.Unmarshal(b, &f); err != nil {
		return err
	}
	defs := make([]native.DefRecord, 0, len(f.Definitions))
	for i, d := range f.Definitions {
		kind, ok := definitionKinds[d.Kind]
		if !ok {
			return fmt.Errorf("definition %d: unknown kind %q", i, d.Kind)
		}
		rec, err := definitionDecoders[kind](d.Record)
		if err != nil {
			return fmt.Errorf("definition %d (%s): %w", i, d.Kind, err)
		}
		defs = append(defs, rec)
	}
	events := make([]Event, 0, len(f.Events))
	for i, e := range f.Events {
		kind, ok := eventKinds[e.Kind]
		if !ok {
			return fmt.Errorf("event %d: unknown kind %q", i, e.Kind)
		}
		rec, err := eventDecoders[kind](e.Record)
		if err != nil {
			return fmt.Errorf("event %d (%s): %w", i, e.Kind, err)
		}
		events = append(events, Event{
			Location:   e.Location,
			Time:       e.Time,
			Attributes: e.Attributes,
			Record:     rec,
		})
	}
	t.Definitions = defs
	t.Events = events
	t.LocalDefinitions = f.LocalDefinitions
	return nil
}

// Load reads a fixture stored with Save.
func Load(ctx context.Context, b *blob.Bucket, key string) (*Trace, error) {
	var t Trace
	if err := storageutil.UnmarshalCompressed(ctx, b, key, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Save stores t as compressed JSON under key.
func Save(ctx context.Context, b *blob.Bucket, key string, t *Trace) error {
	return storageutil.CompressedWrite(ctx, b, key, t)
}
