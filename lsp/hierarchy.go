package lsp

type CallHierarchyClientCapabilities = DynamicRegistrationClientCapabilities

type CallHierarchyOptions struct {
	WorkDoneProgressOptions
}

// CallHierarchyServerCapability is the callHierarchyProvider server
// capability.
type CallHierarchyServerCapability struct {
	Simple  *bool
	Options *CallHierarchyOptions
}

func NewCallHierarchyServerSimple(b bool) CallHierarchyServerCapability {
	return CallHierarchyServerCapability{Simple: &b}
}

func (c CallHierarchyServerCapability) MarshalJSON() ([]byte, error) {
	return marshalUnion("CallHierarchyServerCapability", c.Simple, c.Options)
}

func (c *CallHierarchyServerCapability) UnmarshalJSON(data []byte) error {
	*c = CallHierarchyServerCapability{}
	return decodeUnion("CallHierarchyServerCapability", data, arm(&c.Simple), arm(&c.Options))
}

type CallHierarchyPrepareParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
}

// CallHierarchyItem represents a programming construct like a function or
// a constructor in the context of call hierarchy.
type CallHierarchyItem struct {
	Name   string      `json:"name"`
	Kind   SymbolKind  `json:"kind"`
	Tags   []SymbolTag `json:"tags,omitzero"`
	Detail *string     `json:"detail,omitempty"`
	URI    DocumentURI `json:"uri"`
	// The range enclosing this symbol not including leading and trailing
	// whitespace but everything else, e.g. comments and code.
	Range Range `json:"range"`
	// Must be contained by Range.
	SelectionRange Range `json:"selectionRange"`
	// Preserved between a call hierarchy prepare and incoming or outgoing
	// calls requests.
	Data LSPAny `json:"data,omitempty"`
}

type CallHierarchyIncomingCallsParams struct {
	Item CallHierarchyItem `json:"item"`
	WorkDoneProgressParams
	PartialResultParams
}

// CallHierarchyIncomingCall represents an incoming call, e.g. a caller of
// a method or constructor.
type CallHierarchyIncomingCall struct {
	// The item that makes the call.
	From CallHierarchyItem `json:"from"`
	// The ranges at which the calls appear, relative to the caller.
	FromRanges []Range `json:"fromRanges"`
}

type CallHierarchyOutgoingCallsParams struct {
	Item CallHierarchyItem `json:"item"`
	WorkDoneProgressParams
	PartialResultParams
}

// CallHierarchyOutgoingCall represents an outgoing call, e.g. calling a
// getter from a method or a method from a constructor.
type CallHierarchyOutgoingCall struct {
	// The item that is called.
	To CallHierarchyItem `json:"to"`
	// The range at which this item is called, relative to the caller.
	FromRanges []Range `json:"fromRanges"`
}

type TypeHierarchyClientCapabilities = DynamicRegistrationClientCapabilities

type TypeHierarchyOptions struct {
	WorkDoneProgressOptions
}

type TypeHierarchyRegistrationOptions struct {
	TextDocumentRegistrationOptions
	TypeHierarchyOptions
	StaticRegistrationOptions
}

type TypeHierarchyPrepareParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
}

type TypeHierarchySupertypesParams struct {
	Item TypeHierarchyItem `json:"item"`
	WorkDoneProgressParams
	PartialResultParams
}

type TypeHierarchySubtypesParams struct {
	Item TypeHierarchyItem `json:"item"`
	WorkDoneProgressParams
	PartialResultParams
}

type TypeHierarchyItem struct {
	Name           string      `json:"name"`
	Kind           SymbolKind  `json:"kind"`
	Tags           []SymbolTag `json:"tags,omitzero"`
	Detail         *string     `json:"detail,omitempty"`
	URI            DocumentURI `json:"uri"`
	Range          Range       `json:"range"`
	SelectionRange Range       `json:"selectionRange"`
	// Preserved between a type hierarchy prepare and supertypes or
	// subtypes requests.
	Data LSPAny `json:"data,omitempty"`
}

type MonikerClientCapabilities = DynamicRegistrationClientCapabilities

// MonikerServerCapabilities is the monikerProvider server capability.
type MonikerServerCapabilities struct {
	Options             *MonikerOptions
	RegistrationOptions *MonikerRegistrationOptions
}

func (c MonikerServerCapabilities) MarshalJSON() ([]byte, error) {
	return marshalUnion("MonikerServerCapabilities", c.Options, c.RegistrationOptions)
}

func (c *MonikerServerCapabilities) UnmarshalJSON(data []byte) error {
	*c = MonikerServerCapabilities{}
	return decodeProviderUnion("MonikerServerCapabilities", data, nil, &c.Options, &c.RegistrationOptions)
}

type MonikerOptions struct {
	WorkDoneProgressOptions
}

type MonikerRegistrationOptions struct {
	TextDocumentRegistrationOptions
	MonikerOptions
}

// UniquenessLevel is the scope in which a moniker is unique.
type UniquenessLevel string

const (
	// The moniker is only unique inside a document.
	UniquenessLevelDocument UniquenessLevel = "document"
	// The moniker is unique inside a project for which a dump got created.
	UniquenessLevelProject UniquenessLevel = "project"
	// The moniker is unique inside the group to which a project belongs.
	UniquenessLevelGroup UniquenessLevel = "group"
	// The moniker is unique inside the moniker scheme.
	UniquenessLevelScheme UniquenessLevel = "scheme"
	// The moniker is globally unique.
	UniquenessLevelGlobal UniquenessLevel = "global"
)

func (l *UniquenessLevel) UnmarshalJSON(data []byte) error {
	v, err := decodeClosedString(data, "UniquenessLevel",
		UniquenessLevelDocument, UniquenessLevelProject, UniquenessLevelGroup,
		UniquenessLevelScheme, UniquenessLevelGlobal)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// MonikerKind says whether a moniker is imported into or exported from a
// project.
type MonikerKind string

const (
	MonikerKindImport MonikerKind = "import"
	MonikerKindExport MonikerKind = "export"
	// The moniker represents a symbol that is local to a project, e.g. a
	// local variable of a function.
	MonikerKindLocal MonikerKind = "local"
)

func (k *MonikerKind) UnmarshalJSON(data []byte) error {
	v, err := decodeClosedString(data, "MonikerKind", MonikerKindImport, MonikerKindExport, MonikerKindLocal)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type MonikerParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

// Moniker is a moniker definition to match LSIF 0.5 moniker definition.
type Moniker struct {
	// The scheme of the moniker, e.g. tsc or .Net.
	Scheme string `json:"scheme"`
	// The identifier of the moniker. The value is opaque in LSIF however
	// schema owners are allowed to define the structure if they want.
	Identifier string          `json:"identifier"`
	Unique     UniquenessLevel `json:"unique"`
	Kind       *MonikerKind    `json:"kind,omitempty"`
}
