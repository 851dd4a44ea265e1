package native

// DefinitionKind identifies a global definition record.
type DefinitionKind uint8

const (
	DefUnknown DefinitionKind = iota
	DefString
	DefAttribute
	DefClockProperties
	DefParadigm
	DefParadigmProperty
	DefIoParadigm
	DefSystemTreeNode
	DefSystemTreeNodeProperty
	DefSystemTreeNodeDomain
	DefLocationGroup
	DefLocation
	DefLocationGroupProperty
	DefLocationProperty
	DefRegion
	DefCallsite
	DefCallpath
	DefCallpathParameter
	DefSourceCodeLocation
	DefCallingContext
	DefCallingContextProperty
	DefGroup
	DefMetricMember
	DefMetricClass
	DefMetricInstance
	DefMetricClassRecorder
	DefComm
	DefInterComm
	DefParameter
	DefRmaWin
	DefCartDimension
	DefCartTopology
	DefCartCoordinate
	DefInterruptGenerator
	DefIoFileProperty
	DefIoRegularFile
	DefIoDirectory
	DefIoHandle
	DefIoPreCreatedHandleState
)

var definitionKindNames = [...]string{
	DefUnknown:                 "Unknown",
	DefString:                  "String",
	DefAttribute:               "Attribute",
	DefClockProperties:         "ClockProperties",
	DefParadigm:                "Paradigm",
	DefParadigmProperty:        "ParadigmProperty",
	DefIoParadigm:              "IoParadigm",
	DefSystemTreeNode:          "SystemTreeNode",
	DefSystemTreeNodeProperty:  "SystemTreeNodeProperty",
	DefSystemTreeNodeDomain:    "SystemTreeNodeDomain",
	DefLocationGroup:           "LocationGroup",
	DefLocation:                "Location",
	DefLocationGroupProperty:   "LocationGroupProperty",
	DefLocationProperty:        "LocationProperty",
	DefRegion:                  "Region",
	DefCallsite:                "Callsite",
	DefCallpath:                "Callpath",
	DefCallpathParameter:       "CallpathParameter",
	DefSourceCodeLocation:      "SourceCodeLocation",
	DefCallingContext:          "CallingContext",
	DefCallingContextProperty:  "CallingContextProperty",
	DefGroup:                   "Group",
	DefMetricMember:            "MetricMember",
	DefMetricClass:             "MetricClass",
	DefMetricInstance:          "MetricInstance",
	DefMetricClassRecorder:     "MetricClassRecorder",
	DefComm:                    "Comm",
	DefInterComm:               "InterComm",
	DefParameter:               "Parameter",
	DefRmaWin:                  "RmaWin",
	DefCartDimension:           "CartDimension",
	DefCartTopology:            "CartTopology",
	DefCartCoordinate:          "CartCoordinate",
	DefInterruptGenerator:      "InterruptGenerator",
	DefIoFileProperty:          "IoFileProperty",
	DefIoRegularFile:           "IoRegularFile",
	DefIoDirectory:             "IoDirectory",
	DefIoHandle:                "IoHandle",
	DefIoPreCreatedHandleState: "IoPreCreatedHandleState",
}

func (k DefinitionKind) String() string {
	if int(k) < len(definitionKindNames) {
		return definitionKindNames[k]
	}
	return definitionKindNames[DefUnknown]
}

// DefinitionKinds lists every kind, Unknown included, in declaration order.
func DefinitionKinds() []DefinitionKind {
	kinds := make([]DefinitionKind, len(definitionKindNames))
	for i := range kinds {
		kinds[i] = DefinitionKind(i)
	}
	return kinds
}

// DefRecord is the argument record of one global definition callback.
type DefRecord interface {
	Kind() DefinitionKind
}

// Global definition records, one per callback kind. Records carrying a
// Type and RawValue pair are decoded by the adapter before they reach
// consumers.
type (
	UnknownDef struct{}

	StringDef struct {
		Self  StringRef
		Value string
	}

	AttributeDef struct {
		Self        AttributeRef
		Name        StringRef
		Description StringRef
		Type        Type
	}

	ClockPropertiesDef struct {
		TimerResolution   uint64
		GlobalOffset      uint64
		TraceLength       uint64
		RealtimeTimestamp uint64
	}

	ParadigmDef struct {
		Paradigm Paradigm
		Name     StringRef
		Class    ParadigmClass
	}

	ParadigmPropertyDef struct {
		Paradigm Paradigm
		Property ParadigmProperty
		Type     Type
		Value    RawValue
	}

	IoParadigmDef struct {
		Self           IoParadigmRef
		Identification StringRef
		Name           StringRef
		Class          IoParadigmClass
		Flags          IoParadigmFlag
		Properties     []IoParadigmProperty
		Types          []Type
		Values         []RawValue
	}

	SystemTreeNodeDef struct {
		Self      SystemTreeNodeRef
		Name      StringRef
		ClassName StringRef
		Parent    SystemTreeNodeRef
	}

	SystemTreeNodePropertyDef struct {
		SystemTreeNode SystemTreeNodeRef
		Name           StringRef
		Type           Type
		Value          RawValue
	}

	SystemTreeNodeDomainDef struct {
		SystemTreeNode SystemTreeNodeRef
		Domain         SystemTreeDomain
	}

	LocationGroupDef struct {
		Self                  LocationGroupRef
		Name                  StringRef
		Type                  LocationGroupType
		SystemTreeParent      SystemTreeNodeRef
		CreatingLocationGroup LocationGroupRef
	}

	LocationDef struct {
		Self           LocationRef
		Name           StringRef
		Type           LocationType
		NumberOfEvents uint64
		LocationGroup  LocationGroupRef
	}

	LocationGroupPropertyDef struct {
		LocationGroup LocationGroupRef
		Name          StringRef
		Type          Type
		Value         RawValue
	}

	LocationPropertyDef struct {
		Location LocationRef
		Name     StringRef
		Type     Type
		Value    RawValue
	}

	RegionDef struct {
		Self            RegionRef
		Name            StringRef
		CanonicalName   StringRef
		Description     StringRef
		Role            RegionRole
		Paradigm        Paradigm
		Flags           RegionFlag
		SourceFile      StringRef
		BeginLineNumber uint32
		EndLineNumber   uint32
	}

	CallsiteDef struct {
		Self          CallsiteRef
		SourceFile    StringRef
		LineNumber    uint32
		EnteredRegion RegionRef
		LeftRegion    RegionRef
	}

	CallpathDef struct {
		Self   CallpathRef
		Parent CallpathRef
		Region RegionRef
	}

	CallpathParameterDef struct {
		Callpath  CallpathRef
		Parameter ParameterRef
		Type      Type
		Value     RawValue
	}

	SourceCodeLocationDef struct {
		Self       SourceCodeLocationRef
		File       StringRef
		LineNumber uint32
	}

	CallingContextDef struct {
		Self               CallingContextRef
		Region             RegionRef
		SourceCodeLocation SourceCodeLocationRef
		Parent             CallingContextRef
	}

	CallingContextPropertyDef struct {
		CallingContext CallingContextRef
		Name           StringRef
		Type           Type
		Value          RawValue
	}

	GroupDef struct {
		Self     GroupRef
		Name     StringRef
		Type     GroupType
		Paradigm Paradigm
		Flags    GroupFlag
		Members  []uint64
	}

	MetricMemberDef struct {
		Self        MetricMemberRef
		Name        StringRef
		Description StringRef
		MetricType  MetricType
		MetricMode  MetricMode
		ValueType   Type
		Base        Base
		Exponent    int64
		Unit        StringRef
	}

	MetricClassDef struct {
		Self         MetricRef
		Members      []MetricMemberRef
		Occurrence   MetricOccurrence
		RecorderKind RecorderKind
	}

	MetricInstanceDef struct {
		Self        MetricRef
		MetricClass MetricRef
		Recorder    LocationRef
		MetricScope MetricScope
		Scope       uint64
	}

	MetricClassRecorderDef struct {
		MetricClass MetricRef
		Recorder    LocationRef
	}

	CommDef struct {
		Self   CommRef
		Name   StringRef
		Group  GroupRef
		Parent CommRef
		Flags  CommFlag
	}

	InterCommDef struct {
		Self               CommRef
		Name               StringRef
		GroupA             GroupRef
		GroupB             GroupRef
		CommonCommunicator CommRef
		Flags              CommFlag
	}

	ParameterDef struct {
		Self ParameterRef
		Name StringRef
		Type ParameterType
	}

	RmaWinDef struct {
		Self  RmaWinRef
		Name  StringRef
		Comm  CommRef
		Flags RmaWinFlag
	}

	CartDimensionDef struct {
		Self     CartDimensionRef
		Name     StringRef
		Size     uint32
		Periodic CartPeriodicity
	}

	CartTopologyDef struct {
		Self         CartTopologyRef
		Name         StringRef
		Communicator CommRef
		Dimensions   []CartDimensionRef
	}

	CartCoordinateDef struct {
		Topology    CartTopologyRef
		Rank        uint32
		Coordinates []uint32
	}

	InterruptGeneratorDef struct {
		Self     InterruptGeneratorRef
		Name     StringRef
		Mode     InterruptGeneratorMode
		Base     Base
		Exponent int64
		Period   uint64
	}

	IoFilePropertyDef struct {
		IoFile IoFileRef
		Name   StringRef
		Type   Type
		Value  RawValue
	}

	IoRegularFileDef struct {
		Self  IoFileRef
		Name  StringRef
		Scope SystemTreeNodeRef
	}

	IoDirectoryDef struct {
		Self  IoFileRef
		Name  StringRef
		Scope SystemTreeNodeRef
	}

	IoHandleDef struct {
		Self       IoHandleRef
		Name       StringRef
		File       IoFileRef
		IoParadigm IoParadigmRef
		Flags      IoHandleFlag
		Comm       CommRef
		Parent     IoHandleRef
	}

	IoPreCreatedHandleStateDef struct {
		IoHandle    IoHandleRef
		Mode        IoAccessMode
		StatusFlags IoStatusFlag
	}
)

func (UnknownDef) Kind() DefinitionKind                 { return DefUnknown }
func (StringDef) Kind() DefinitionKind                  { return DefString }
func (AttributeDef) Kind() DefinitionKind               { return DefAttribute }
func (ClockPropertiesDef) Kind() DefinitionKind         { return DefClockProperties }
func (ParadigmDef) Kind() DefinitionKind                { return DefParadigm }
func (ParadigmPropertyDef) Kind() DefinitionKind        { return DefParadigmProperty }
func (IoParadigmDef) Kind() DefinitionKind              { return DefIoParadigm }
func (SystemTreeNodeDef) Kind() DefinitionKind          { return DefSystemTreeNode }
func (SystemTreeNodePropertyDef) Kind() DefinitionKind  { return DefSystemTreeNodeProperty }
func (SystemTreeNodeDomainDef) Kind() DefinitionKind    { return DefSystemTreeNodeDomain }
func (LocationGroupDef) Kind() DefinitionKind           { return DefLocationGroup }
func (LocationDef) Kind() DefinitionKind                { return DefLocation }
func (LocationGroupPropertyDef) Kind() DefinitionKind   { return DefLocationGroupProperty }
func (LocationPropertyDef) Kind() DefinitionKind        { return DefLocationProperty }
func (RegionDef) Kind() DefinitionKind                  { return DefRegion }
func (CallsiteDef) Kind() DefinitionKind                { return DefCallsite }
func (CallpathDef) Kind() DefinitionKind                { return DefCallpath }
func (CallpathParameterDef) Kind() DefinitionKind       { return DefCallpathParameter }
func (SourceCodeLocationDef) Kind() DefinitionKind      { return DefSourceCodeLocation }
func (CallingContextDef) Kind() DefinitionKind          { return DefCallingContext }
func (CallingContextPropertyDef) Kind() DefinitionKind  { return DefCallingContextProperty }
func (GroupDef) Kind() DefinitionKind                   { return DefGroup }
func (MetricMemberDef) Kind() DefinitionKind            { return DefMetricMember }
func (MetricClassDef) Kind() DefinitionKind             { return DefMetricClass }
func (MetricInstanceDef) Kind() DefinitionKind          { return DefMetricInstance }
func (MetricClassRecorderDef) Kind() DefinitionKind     { return DefMetricClassRecorder }
func (CommDef) Kind() DefinitionKind                    { return DefComm }
func (InterCommDef) Kind() DefinitionKind               { return DefInterComm }
func (ParameterDef) Kind() DefinitionKind               { return DefParameter }
func (RmaWinDef) Kind() DefinitionKind                  { return DefRmaWin }
func (CartDimensionDef) Kind() DefinitionKind           { return DefCartDimension }
func (CartTopologyDef) Kind() DefinitionKind            { return DefCartTopology }
func (CartCoordinateDef) Kind() DefinitionKind          { return DefCartCoordinate }
func (InterruptGeneratorDef) Kind() DefinitionKind      { return DefInterruptGenerator }
func (IoFilePropertyDef) Kind() DefinitionKind          { return DefIoFileProperty }
func (IoRegularFileDef) Kind() DefinitionKind           { return DefIoRegularFile }
func (IoDirectoryDef) Kind() DefinitionKind             { return DefIoDirectory }
func (IoHandleDef) Kind() DefinitionKind                { return DefIoHandle }
func (IoPreCreatedHandleStateDef) Kind() DefinitionKind { return DefIoPreCreatedHandleState }

// DefCallback receives one global definition record. The record is only
// valid for the duration of the call.
type DefCallback[T DefRecord] func(ud UserData, def *T) CallbackCode

// GlobalDefCallbacks is the table registered with a global definition
// reader. A nil entry means the engine skips records of that kind.
type GlobalDefCallbacks struct {
	Unknown                 DefCallback[UnknownDef]
	String                  DefCallback[StringDef]
	Attribute               DefCallback[AttributeDef]
	ClockProperties         DefCallback[ClockPropertiesDef]
	Paradigm                DefCallback[ParadigmDef]
	ParadigmProperty        DefCallback[ParadigmPropertyDef]
	IoParadigm              DefCallback[IoParadigmDef]
	SystemTreeNode          DefCallback[SystemTreeNodeDef]
	SystemTreeNodeProperty  DefCallback[SystemTreeNodePropertyDef]
	SystemTreeNodeDomain    DefCallback[SystemTreeNodeDomainDef]
	LocationGroup           DefCallback[LocationGroupDef]
	Location                DefCallback[LocationDef]
	LocationGroupProperty   DefCallback[LocationGroupPropertyDef]
	LocationProperty        DefCallback[LocationPropertyDef]
	Region                  DefCallback[RegionDef]
	Callsite                DefCallback[CallsiteDef]
	Callpath                DefCallback[CallpathDef]
	CallpathParameter       DefCallback[CallpathParameterDef]
	SourceCodeLocation      DefCallback[SourceCodeLocationDef]
	CallingContext          DefCallback[CallingContextDef]
	CallingContextProperty  DefCallback[CallingContextPropertyDef]
	Group                   DefCallback[GroupDef]
	MetricMember            DefCallback[MetricMemberDef]
	MetricClass             DefCallback[MetricClassDef]
	MetricInstance          DefCallback[MetricInstanceDef]
	MetricClassRecorder     DefCallback[MetricClassRecorderDef]
	Comm                    DefCallback[CommDef]
	InterComm               DefCallback[InterCommDef]
	Parameter               DefCallback[ParameterDef]
	RmaWin                  DefCallback[RmaWinDef]
	CartDimension           DefCallback[CartDimensionDef]
	CartTopology            DefCallback[CartTopologyDef]
	CartCoordinate          DefCallback[CartCoordinateDef]
	InterruptGenerator      DefCallback[InterruptGeneratorDef]
	IoFileProperty          DefCallback[IoFilePropertyDef]
	IoRegularFile           DefCallback[IoRegularFileDef]
	IoDirectory             DefCallback[IoDirectoryDef]
	IoHandle                DefCallback[IoHandleDef]
	IoPreCreatedHandleState DefCallback[IoPreCreatedHandleStateDef]
}

func callDef[T DefRecord](cb DefCallback[T], ud UserData, def T) CallbackCode {
	if cb == nil {
		return CallbackSuccess
	}
	return cb(ud, &def)
}

// Deliver invokes the entry matching the record's kind.
func (c *GlobalDefCallbacks) Deliver(ud UserData, rec DefRecord) CallbackCode {
	switch r := rec.(type) {
	case StringDef:
		return callDef(c.String, ud, r)
	case AttributeDef:
		return callDef(c.Attribute, ud, r)
	case ClockPropertiesDef:
		return callDef(c.ClockProperties, ud, r)
	case ParadigmDef:
		return callDef(c.Paradigm, ud, r)
	case ParadigmPropertyDef:
		return callDef(c.ParadigmProperty, ud, r)
	case IoParadigmDef:
		return callDef(c.IoParadigm, ud, r)
	case SystemTreeNodeDef:
		return callDef(c.SystemTreeNode, ud, r)
	case SystemTreeNodePropertyDef:
		return callDef(c.SystemTreeNodeProperty, ud, r)
	case SystemTreeNodeDomainDef:
		return callDef(c.SystemTreeNodeDomain, ud, r)
	case LocationGroupDef:
		return callDef(c.LocationGroup, ud, r)
	case LocationDef:
		return callDef(c.Location, ud, r)
	case LocationGroupPropertyDef:
		return callDef(c.LocationGroupProperty, ud, r)
	case LocationPropertyDef:
		return callDef(c.LocationProperty, ud, r)
	case RegionDef:
		return callDef(c.Region, ud, r)
	case CallsiteDef:
		return callDef(c.Callsite, ud, r)
	case CallpathDef:
		return callDef(c.Callpath, ud, r)
	case CallpathParameterDef:
		return callDef(c.CallpathParameter, ud, r)
	case SourceCodeLocationDef:
		return callDef(c.SourceCodeLocation, ud, r)
	case CallingContextDef:
		return callDef(c.CallingContext, ud, r)
	case CallingContextPropertyDef:
		return callDef(c.CallingContextProperty, ud, r)
	case GroupDef:
		return callDef(c.Group, ud, r)
	case MetricMemberDef:
		return callDef(c.MetricMember, ud, r)
	case MetricClassDef:
		return callDef(c.MetricClass, ud, r)
	case MetricInstanceDef:
		return callDef(c.MetricInstance, ud, r)
	case MetricClassRecorderDef:
		return callDef(c.MetricClassRecorder, ud, r)
	case CommDef:
		return callDef(c.Comm, ud, r)
	case InterCommDef:
		return callDef(c.InterComm, ud, r)
	case ParameterDef:
		return callDef(c.Parameter, ud, r)
	case RmaWinDef:
		return callDef(c.RmaWin, ud, r)
	case CartDimensionDef:
		return callDef(c.CartDimension, ud, r)
	case CartTopologyDef:
		return callDef(c.CartTopology, ud, r)
	case CartCoordinateDef:
		return callDef(c.CartCoordinate, ud, r)
	case InterruptGeneratorDef:
		return callDef(c.InterruptGenerator, ud, r)
	case IoFilePropertyDef:
		return callDef(c.IoFileProperty, ud, r)
	case IoRegularFileDef:
		return callDef(c.IoRegularFile, ud, r)
	case IoDirectoryDef:
		return callDef(c.IoDirectory, ud, r)
	case IoHandleDef:
		return callDef(c.IoHandle, ud, r)
	case IoPreCreatedHandleStateDef:
		return callDef(c.IoPreCreatedHandleState, ud, r)
	}
	return callDef(c.Unknown, ud, UnknownDef{})
}
