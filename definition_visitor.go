package otf2

// DefinitionVisitor receives global definitions, one method per kind.
// Returning anything but CallbackSuccess stops the read. Embed
// NopDefinitionVisitor to implement only the kinds of interest.
type DefinitionVisitor interface {
	VisitUnknownDefinition(def UnknownDef) CallbackCode
	VisitString(def StringDef) CallbackCode
	VisitAttribute(def AttributeDef) CallbackCode
	VisitClockProperties(def ClockPropertiesDef) CallbackCode
	VisitParadigm(def ParadigmDef) CallbackCode
	VisitParadigmProperty(def ParadigmPropertyDef) CallbackCode
	VisitIoParadigm(def IoParadigmDef) CallbackCode
	VisitSystemTreeNode(def SystemTreeNodeDef) CallbackCode
	VisitSystemTreeNodeProperty(def SystemTreeNodePropertyDef) CallbackCode
	VisitSystemTreeNodeDomain(def SystemTreeNodeDomainDef) CallbackCode
	VisitLocationGroup(def LocationGroupDef) CallbackCode
	VisitLocation(def LocationDef) CallbackCode
	VisitLocationGroupProperty(def LocationGroupPropertyDef) CallbackCode
	VisitLocationProperty(def LocationPropertyDef) CallbackCode
	VisitRegion(def RegionDef) CallbackCode
	VisitCallsite(def CallsiteDef) CallbackCode
	VisitCallpath(def CallpathDef) CallbackCode
	VisitCallpathParameter(def CallpathParameterDef) CallbackCode
	VisitSourceCodeLocation(def SourceCodeLocationDef) CallbackCode
	VisitCallingContext(def CallingContextDef) CallbackCode
	VisitCallingContextProperty(def CallingContextPropertyDef) CallbackCode
	VisitGroup(def GroupDef) CallbackCode
	VisitMetricMember(def MetricMemberDef) CallbackCode
	VisitMetricClass(def MetricClassDef) CallbackCode
	VisitMetricInstance(def MetricInstanceDef) CallbackCode
	VisitMetricClassRecorder(def MetricClassRecorderDef) CallbackCode
	VisitComm(def CommDef) CallbackCode
	VisitInterComm(def InterCommDef) CallbackCode
	VisitParameter(def ParameterDef) CallbackCode
	VisitRmaWin(def RmaWinDef) CallbackCode
	VisitCartDimension(def CartDimensionDef) CallbackCode
	VisitCartTopology(def CartTopologyDef) CallbackCode
	VisitCartCoordinate(def CartCoordinateDef) CallbackCode
	VisitInterruptGenerator(def InterruptGeneratorDef) CallbackCode
	VisitIoFileProperty(def IoFilePropertyDef) CallbackCode
	VisitIoRegularFile(def IoRegularFileDef) CallbackCode
	VisitIoDirectory(def IoDirectoryDef) CallbackCode
	VisitIoHandle(def IoHandleDef) CallbackCode
	VisitIoPreCreatedHandleState(def IoPreCreatedHandleStateDef) CallbackCode
}

// NopDefinitionVisitor continues on every definition.
type NopDefinitionVisitor struct{}

func (NopDefinitionVisitor) VisitUnknownDefinition(UnknownDef) CallbackCode                       { return CallbackSuccess }
func (NopDefinitionVisitor) VisitString(StringDef) CallbackCode                                   { return CallbackSuccess }
func (NopDefinitionVisitor) VisitAttribute(AttributeDef) CallbackCode                             { return CallbackSuccess }
func (NopDefinitionVisitor) VisitClockProperties(ClockPropertiesDef) CallbackCode                 { return CallbackSuccess }
func (NopDefinitionVisitor) VisitParadigm(ParadigmDef) CallbackCode                               { return CallbackSuccess }
func (NopDefinitionVisitor) VisitParadigmProperty(ParadigmPropertyDef) CallbackCode               { return CallbackSuccess }
func (NopDefinitionVisitor) VisitIoParadigm(IoParadigmDef) CallbackCode                           { return CallbackSuccess }
func (NopDefinitionVisitor) VisitSystemTreeNode(SystemTreeNodeDef) CallbackCode                   { return CallbackSuccess }
func (NopDefinitionVisitor) VisitSystemTreeNodeProperty(SystemTreeNodePropertyDef) CallbackCode   { return CallbackSuccess }
func (NopDefinitionVisitor) VisitSystemTreeNodeDomain(SystemTreeNodeDomainDef) CallbackCode       { return CallbackSuccess }
func (NopDefinitionVisitor) VisitLocationGroup(LocationGroupDef) CallbackCode                     { return CallbackSuccess }
func (NopDefinitionVisitor) VisitLocation(LocationDef) CallbackCode                               { return CallbackSuccess }
func (NopDefinitionVisitor) VisitLocationGroupProperty(LocationGroupPropertyDef) CallbackCode     { return CallbackSuccess }
func (NopDefinitionVisitor) VisitLocationProperty(LocationPropertyDef) CallbackCode               { return CallbackSuccess }
func (NopDefinitionVisitor) VisitRegion(RegionDef) CallbackCode                                   { return CallbackSuccess }
func (NopDefinitionVisitor) VisitCallsite(CallsiteDef) CallbackCode                               { return CallbackSuccess }
func (NopDefinitionVisitor) VisitCallpath(CallpathDef) CallbackCode                               { return CallbackSuccess }
func (NopDefinitionVisitor) VisitCallpathParameter(CallpathParameterDef) CallbackCode             { return CallbackSuccess }
func (NopDefinitionVisitor) VisitSourceCodeLocation(SourceCodeLocationDef) CallbackCode           { return CallbackSuccess }
func (NopDefinitionVisitor) VisitCallingContext(CallingContextDef) CallbackCode                   { return CallbackSuccess }
func (NopDefinitionVisitor) VisitCallingContextProperty(CallingContextPropertyDef) CallbackCode   { return CallbackSuccess }
func (NopDefinitionVisitor) VisitGroup(GroupDef) CallbackCode                                     { return CallbackSuccess }
func (NopDefinitionVisitor) VisitMetricMember(MetricMemberDef) CallbackCode                       { return CallbackSuccess }
func (NopDefinitionVisitor) VisitMetricClass(MetricClassDef) CallbackCode                         { return CallbackSuccess }
func (NopDefinitionVisitor) VisitMetricInstance(MetricInstanceDef) CallbackCode                   { return CallbackSuccess }
func (NopDefinitionVisitor) VisitMetricClassRecorder(MetricClassRecorderDef) CallbackCode         { return CallbackSuccess }
func (NopDefinitionVisitor) VisitComm(CommDef) CallbackCode                                       { return CallbackSuccess }
func (NopDefinitionVisitor) VisitInterComm(InterCommDef) CallbackCode                             { return CallbackSuccess }
func (NopDefinitionVisitor) VisitParameter(ParameterDef) CallbackCode                             { return CallbackSuccess }
func (NopDefinitionVisitor) VisitRmaWin(RmaWinDef) CallbackCode                                   { return CallbackSuccess }
func (NopDefinitionVisitor) VisitCartDimension(CartDimensionDef) CallbackCode                     { return CallbackSuccess }
func (NopDefinitionVisitor) VisitCartTopology(CartTopologyDef) CallbackCode                       { return CallbackSuccess }
func (NopDefinitionVisitor) VisitCartCoordinate(CartCoordinateDef) CallbackCode                   { return CallbackSuccess }
func (NopDefinitionVisitor) VisitInterruptGenerator(InterruptGeneratorDef) CallbackCode           { return CallbackSuccess }
func (NopDefinitionVisitor) VisitIoFileProperty(IoFilePropertyDef) CallbackCode                   { return CallbackSuccess }
func (NopDefinitionVisitor) VisitIoRegularFile(IoRegularFileDef) CallbackCode                     { return CallbackSuccess }
func (NopDefinitionVisitor) VisitIoDirectory(IoDirectoryDef) CallbackCode                         { return CallbackSuccess }
func (NopDefinitionVisitor) VisitIoHandle(IoHandleDef) CallbackCode                               { return CallbackSuccess }
func (NopDefinitionVisitor) VisitIoPreCreatedHandleState(IoPreCreatedHandleStateDef) CallbackCode { return CallbackSuccess }

// acceptDefinition calls the method of v matching the kind of d.
func acceptDefinition(v DefinitionVisitor, d Definition) CallbackCode {
	switch d := d.(type) {
	case StringDef:
		return v.VisitString(d)
	case AttributeDef:
		return v.VisitAttribute(d)
	case ClockPropertiesDef:
		return v.VisitClockProperties(d)
	case ParadigmDef:
		return v.VisitParadigm(d)
	case ParadigmPropertyDef:
		return v.VisitParadigmProperty(d)
	case IoParadigmDef:
		return v.VisitIoParadigm(d)
	case SystemTreeNodeDef:
		return v.VisitSystemTreeNode(d)
	case SystemTreeNodePropertyDef:
		return v.VisitSystemTreeNodeProperty(d)
	case SystemTreeNodeDomainDef:
		return v.VisitSystemTreeNodeDomain(d)
	case LocationGroupDef:
		return v.VisitLocationGroup(d)
	case LocationDef:
		return v.VisitLocation(d)
	case LocationGroupPropertyDef:
		return v.VisitLocationGroupProperty(d)
	case LocationPropertyDef:
		return v.VisitLocationProperty(d)
	case RegionDef:
		return v.VisitRegion(d)
	case CallsiteDef:
		return v.VisitCallsite(d)
	case CallpathDef:
		return v.VisitCallpath(d)
	case CallpathParameterDef:
		return v.VisitCallpathParameter(d)
	case SourceCodeLocationDef:
		return v.VisitSourceCodeLocation(d)
	case CallingContextDef:
		return v.VisitCallingContext(d)
	case CallingContextPropertyDef:
		return v.VisitCallingContextProperty(d)
	case GroupDef:
		return v.VisitGroup(d)
	case MetricMemberDef:
		return v.VisitMetricMember(d)
	case MetricClassDef:
		return v.VisitMetricClass(d)
	case MetricInstanceDef:
		return v.VisitMetricInstance(d)
	case MetricClassRecorderDef:
		return v.VisitMetricClassRecorder(d)
	case CommDef:
		return v.VisitComm(d)
	case InterCommDef:
		return v.VisitInterComm(d)
	case ParameterDef:
		return v.VisitParameter(d)
	case RmaWinDef:
		return v.VisitRmaWin(d)
	case CartDimensionDef:
		return v.VisitCartDimension(d)
	case CartTopologyDef:
		return v.VisitCartTopology(d)
	case CartCoordinateDef:
		return v.VisitCartCoordinate(d)
	case InterruptGeneratorDef:
		return v.VisitInterruptGenerator(d)
	case IoFilePropertyDef:
		return v.VisitIoFileProperty(d)
	case IoRegularFileDef:
		return v.VisitIoRegularFile(d)
	case IoDirectoryDef:
		return v.VisitIoDirectory(d)
	case IoHandleDef:
		return v.VisitIoHandle(d)
	case IoPreCreatedHandleStateDef:
		return v.VisitIoPreCreatedHandleState(d)
	}
	return v.VisitUnknownDefinition(UnknownDef{})
}

// DefinitionVisitors visits every definition with each visitor in order.
// The first code other than CallbackSuccess is returned and the
// remaining visitors do not see that definition.
type DefinitionVisitors []DefinitionVisitor

func (m DefinitionVisitors) visit(d Definition) CallbackCode {
	for _, v := range m {
		if code := acceptDefinition(v, d); code != CallbackSuccess {
			return code
		}
	}
	return CallbackSuccess
}

func (m DefinitionVisitors) VisitUnknownDefinition(d UnknownDef) CallbackCode                       { return m.visit(d) }
func (m DefinitionVisitors) VisitString(d StringDef) CallbackCode                                   { return m.visit(d) }
func (m DefinitionVisitors) VisitAttribute(d AttributeDef) CallbackCode                             { return m.visit(d) }
func (m DefinitionVisitors) VisitClockProperties(d ClockPropertiesDef) CallbackCode                 { return m.visit(d) }
func (m DefinitionVisitors) VisitParadigm(d ParadigmDef) CallbackCode                               { return m.visit(d) }
func (m DefinitionVisitors) VisitParadigmProperty(d ParadigmPropertyDef) CallbackCode               { return m.visit(d) }
func (m DefinitionVisitors) VisitIoParadigm(d IoParadigmDef) CallbackCode                           { return m.visit(d) }
func (m DefinitionVisitors) VisitSystemTreeNode(d SystemTreeNodeDef) CallbackCode                   { return m.visit(d) }
func (m DefinitionVisitors) VisitSystemTreeNodeProperty(d SystemTreeNodePropertyDef) CallbackCode   { return m.visit(d) }
func (m DefinitionVisitors) VisitSystemTreeNodeDomain(d SystemTreeNodeDomainDef) CallbackCode       { return m.visit(d) }
func (m DefinitionVisitors) VisitLocationGroup(d LocationGroupDef) CallbackCode                     { return m.visit(d) }
func (m DefinitionVisitors) VisitLocation(d LocationDef) CallbackCode                               { return m.visit(d) }
func (m DefinitionVisitors) VisitLocationGroupProperty(d LocationGroupPropertyDef) CallbackCode     { return m.visit(d) }
func (m DefinitionVisitors) VisitLocationProperty(d LocationPropertyDef) CallbackCode               { return m.visit(d) }
func (m DefinitionVisitors) VisitRegion(d RegionDef) CallbackCode                                   { return m.visit(d) }
func (m DefinitionVisitors) VisitCallsite(d CallsiteDef) CallbackCode                               { return m.visit(d) }
func (m DefinitionVisitors) VisitCallpath(d CallpathDef) CallbackCode                               { return m.visit(d) }
func (m DefinitionVisitors) VisitCallpathParameter(d CallpathParameterDef) CallbackCode             { return m.visit(d) }
func (m DefinitionVisitors) VisitSourceCodeLocation(d SourceCodeLocationDef) CallbackCode           { return m.visit(d) }
func (m DefinitionVisitors) VisitCallingContext(d CallingContextDef) CallbackCode                   { return m.visit(d) }
func (m DefinitionVisitors) VisitCallingContextProperty(d CallingContextPropertyDef) CallbackCode   { return m.visit(d) }
func (m DefinitionVisitors) VisitGroup(d GroupDef) CallbackCode                                     { return m.visit(d) }
func (m DefinitionVisitors) VisitMetricMember(d MetricMemberDef) CallbackCode                       { return m.visit(d) }
func (m DefinitionVisitors) VisitMetricClass(d MetricClassDef) CallbackCode                         { return m.visit(d) }
func (m DefinitionVisitors) VisitMetricInstance(d MetricInstanceDef) CallbackCode                   { return m.visit(d) }
func (m DefinitionVisitors) VisitMetricClassRecorder(d MetricClassRecorderDef) CallbackCode         { return m.visit(d) }
func (m DefinitionVisitors) VisitComm(d CommDef) CallbackCode                                       { return m.visit(d) }
func (m DefinitionVisitors) VisitInterComm(d InterCommDef) CallbackCode                             { return m.visit(d) }
func (m DefinitionVisitors) VisitParameter(d ParameterDef) CallbackCode                             { return m.visit(d) }
func (m DefinitionVisitors) VisitRmaWin(d RmaWinDef) CallbackCode                                   { return m.visit(d) }
func (m DefinitionVisitors) VisitCartDimension(d CartDimensionDef) CallbackCode                     { return m.visit(d) }
func (m DefinitionVisitors) VisitCartTopology(d CartTopologyDef) CallbackCode                       { return m.visit(d) }
func (m DefinitionVisitors) VisitCartCoordinate(d CartCoordinateDef) CallbackCode                   { return m.visit(d) }
func (m DefinitionVisitors) VisitInterruptGenerator(d InterruptGeneratorDef) CallbackCode           { return m.visit(d) }
func (m DefinitionVisitors) VisitIoFileProperty(d IoFilePropertyDef) CallbackCode                   { return m.visit(d) }
func (m DefinitionVisitors) VisitIoRegularFile(d IoRegularFileDef) CallbackCode                     { return m.visit(d) }
func (m DefinitionVisitors) VisitIoDirectory(d IoDirectoryDef) CallbackCode                         { return m.visit(d) }
func (m DefinitionVisitors) VisitIoHandle(d IoHandleDef) CallbackCode                               { return m.visit(d) }
func (m DefinitionVisitors) VisitIoPreCreatedHandleState(d IoPreCreatedHandleStateDef) CallbackCode { return m.visit(d) }

// DefinitionFunc adapts a function to a DefinitionVisitor receiving every
// kind.
type DefinitionFunc func(Definition) CallbackCode

func (f DefinitionFunc) VisitUnknownDefinition(d UnknownDef) CallbackCode                       { return f(d) }
func (f DefinitionFunc) VisitString(d StringDef) CallbackCode                                   { return f(d) }
func (f DefinitionFunc) VisitAttribute(d AttributeDef) CallbackCode                             { return f(d) }
func (f DefinitionFunc) VisitClockProperties(d ClockPropertiesDef) CallbackCode                 { return f(d) }
func (f DefinitionFunc) VisitParadigm(d ParadigmDef) CallbackCode                               { return f(d) }
func (f DefinitionFunc) VisitParadigmProperty(d ParadigmPropertyDef) CallbackCode               { return f(d) }
func (f DefinitionFunc) VisitIoParadigm(d IoParadigmDef) CallbackCode                           { return f(d) }
func (f DefinitionFunc) VisitSystemTreeNode(d SystemTreeNodeDef) CallbackCode                   { return f(d) }
func (f DefinitionFunc) VisitSystemTreeNodeProperty(d SystemTreeNodePropertyDef) CallbackCode   { return f(d) }
func (f DefinitionFunc) VisitSystemTreeNodeDomain(d SystemTreeNodeDomainDef) CallbackCode       { return f(d) }
func (f DefinitionFunc) VisitLocationGroup(d LocationGroupDef) CallbackCode                     { return f(d) }
func (f DefinitionFunc) VisitLocation(d LocationDef) CallbackCode                               { return f(d) }
func (f DefinitionFunc) VisitLocationGroupProperty(d LocationGroupPropertyDef) CallbackCode     { return f(d) }
func (f DefinitionFunc) VisitLocationProperty(d LocationPropertyDef) CallbackCode               { return f(d) }
func (f DefinitionFunc) VisitRegion(d RegionDef) CallbackCode                                   { return f(d) }
func (f DefinitionFunc) VisitCallsite(d CallsiteDef) CallbackCode                               { return f(d) }
func (f DefinitionFunc) VisitCallpath(d CallpathDef) CallbackCode                               { return f(d) }
func (f DefinitionFunc) VisitCallpathParameter(d CallpathParameterDef) CallbackCode             { return f(d) }
func (f DefinitionFunc) VisitSourceCodeLocation(d SourceCodeLocationDef) CallbackCode           { return f(d) }
func (f DefinitionFunc) VisitCallingContext(d CallingContextDef) CallbackCode                   { return f(d) }
func (f DefinitionFunc) VisitCallingContextProperty(d CallingContextPropertyDef) CallbackCode   { return f(d) }
func (f DefinitionFunc) VisitGroup(d GroupDef) CallbackCode                                     { return f(d) }
func (f DefinitionFunc) VisitMetricMember(d MetricMemberDef) CallbackCode                       { return f(d) }
func (f DefinitionFunc) VisitMetricClass(d MetricClassDef) CallbackCode                         { return f(d) }
func (f DefinitionFunc) VisitMetricInstance(d MetricInstanceDef) CallbackCode                   { return f(d) }
func (f DefinitionFunc) VisitMetricClassRecorder(d MetricClassRecorderDef) CallbackCode         { return f(d) }
func (f DefinitionFunc) VisitComm(d CommDef) CallbackCode                                       { return f(d) }
func (f DefinitionFunc) VisitInterComm(d InterCommDef) CallbackCode                             { return f(d) }
func (f DefinitionFunc) VisitParameter(d ParameterDef) CallbackCode                             { return f(d) }
func (f DefinitionFunc) VisitRmaWin(d RmaWinDef) CallbackCode                                   { return f(d) }
func (f DefinitionFunc) VisitCartDimension(d CartDimensionDef) CallbackCode                     { return f(d) }
func (f DefinitionFunc) VisitCartTopology(d CartTopologyDef) CallbackCode                       { return f(d) }
func (f DefinitionFunc) VisitCartCoordinate(d CartCoordinateDef) CallbackCode                   { return f(d) }
func (f DefinitionFunc) VisitInterruptGenerator(d InterruptGeneratorDef) CallbackCode           { return f(d) }
func (f DefinitionFunc) VisitIoFileProperty(d IoFilePropertyDef) CallbackCode                   { return f(d) }
func (f DefinitionFunc) VisitIoRegularFile(d IoRegularFileDef) CallbackCode                     { return f(d) }
func (f DefinitionFunc) VisitIoDirectory(d IoDirectoryDef) CallbackCode                         { return f(d) }
func (f DefinitionFunc) VisitIoHandle(d IoHandleDef) CallbackCode                               { return f(d) }
func (f DefinitionFunc) VisitIoPreCreatedHandleState(d IoPreCreatedHandleStateDef) CallbackCode { return f(d) }
