package otf2

import "github.com/getsentry/otf2/internal/native"

// Definition is a global definition record. The concrete type is one of
// the *Def types of this package, Kind tells which.
type Definition interface {
	Kind() DefinitionKind
}

// Definition records whose values were decoded from raw attribute values.
type (
	ParadigmPropertyDef struct {
		Paradigm Paradigm
		Property ParadigmProperty
		Value    AttributeValue
	}

	IoParadigmPropertyValue struct {
		Property IoParadigmProperty
		Value    AttributeValue
	}

	IoParadigmDef struct {
		Self           IoParadigmRef
		Identification StringRef
		Name           StringRef
		Class          IoParadigmClass
		Flags          IoParadigmFlag
		Properties     []IoParadigmPropertyValue
	}

	SystemTreeNodePropertyDef struct {
		SystemTreeNode SystemTreeNodeRef
		Name           StringRef
		Value          AttributeValue
	}

	LocationGroupPropertyDef struct {
		LocationGroup LocationGroupRef
		Name          StringRef
		Value         AttributeValue
	}

	LocationPropertyDef struct {
		Location LocationRef
		Name     StringRef
		Value    AttributeValue
	}

	CallpathParameterDef struct {
		Callpath  CallpathRef
		Parameter ParameterRef
		Value     AttributeValue
	}

	CallingContextPropertyDef struct {
		CallingContext CallingContextRef
		Name           StringRef
		Value          AttributeValue
	}

	IoFilePropertyDef struct {
		IoFile IoFileRef
		Name   StringRef
		Value  AttributeValue
	}
)

func (ParadigmPropertyDef) Kind() DefinitionKind       { return native.DefParadigmProperty }
func (IoParadigmDef) Kind() DefinitionKind             { return native.DefIoParadigm }
func (SystemTreeNodePropertyDef) Kind() DefinitionKind { return native.DefSystemTreeNodeProperty }
func (LocationGroupPropertyDef) Kind() DefinitionKind  { return native.DefLocationGroupProperty }
func (LocationPropertyDef) Kind() DefinitionKind       { return native.DefLocationProperty }
func (CallpathParameterDef) Kind() DefinitionKind      { return native.DefCallpathParameter }
func (CallingContextPropertyDef) Kind() DefinitionKind { return native.DefCallingContextProperty }
func (IoFilePropertyDef) Kind() DefinitionKind         { return native.DefIoFileProperty }

func decodeParadigmProperty(d *native.ParadigmPropertyDef) ParadigmPropertyDef {
	return ParadigmPropertyDef{
		Paradigm: d.Paradigm,
		Property: d.Property,
		Value:    Decode(d.Type, d.Value),
	}
}

func decodeIoParadigm(d *native.IoParadigmDef) IoParadigmDef {
	def := IoParadigmDef{
		Self:           d.Self,
		Identification: d.Identification,
		Name:           d.Name,
		Class:          d.Class,
		Flags:          d.Flags,
	}
	n := min(len(d.Properties), len(d.Types), len(d.Values))
	if n > 0 {
		def.Properties = make([]IoParadigmPropertyValue, n)
	}
	for i := 0; i < n; i++ {
		def.Properties[i] = IoParadigmPropertyValue{
			Property: d.Properties[i],
			Value:    Decode(d.Types[i], d.Values[i]),
		}
	}
	return def
}

func decodeSystemTreeNodeProperty(d *native.SystemTreeNodePropertyDef) SystemTreeNodePropertyDef {
	return SystemTreeNodePropertyDef{
		SystemTreeNode: d.SystemTreeNode,
		Name:           d.Name,
		Value:          Decode(d.Type, d.Value),
	}
}

func decodeLocationGroupProperty(d *native.LocationGroupPropertyDef) LocationGroupPropertyDef {
	return LocationGroupPropertyDef{
		LocationGroup: d.LocationGroup,
		Name:          d.Name,
		Value:         Decode(d.Type, d.Value),
	}
}

func decodeLocationProperty(d *native.LocationPropertyDef) LocationPropertyDef {
	return LocationPropertyDef{
		Location: d.Location,
		Name:     d.Name,
		Value:    Decode(d.Type, d.Value),
	}
}

func decodeCallpathParameter(d *native.CallpathParameterDef) CallpathParameterDef {
	return CallpathParameterDef{
		Callpath:  d.Callpath,
		Parameter: d.Parameter,
		Value:     Decode(d.Type, d.Value),
	}
}

func decodeCallingContextProperty(d *native.CallingContextPropertyDef) CallingContextPropertyDef {
	return CallingContextPropertyDef{
		CallingContext: d.CallingContext,
		Name:           d.Name,
		Value:          Decode(d.Type, d.Value),
	}
}

func decodeIoFileProperty(d *native.IoFilePropertyDef) IoFilePropertyDef {
	return IoFilePropertyDef{
		IoFile: d.IoFile,
		Name:   d.Name,
		Value:  Decode(d.Type, d.Value),
	}
}
