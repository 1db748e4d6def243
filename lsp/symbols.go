package lsp

// SymbolKind is the kind of a document or workspace symbol.
type SymbolKind int32

const (
	SymbolKindFile          SymbolKind = 1
	SymbolKindModule        SymbolKind = 2
	SymbolKindNamespace     SymbolKind = 3
	SymbolKindPackage       SymbolKind = 4
	SymbolKindClass         SymbolKind = 5
	SymbolKindMethod        SymbolKind = 6
	SymbolKindProperty      SymbolKind = 7
	SymbolKindField         SymbolKind = 8
	SymbolKindConstructor   SymbolKind = 9
	SymbolKindEnum          SymbolKind = 10
	SymbolKindInterface     SymbolKind = 11
	SymbolKindFunction      SymbolKind = 12
	SymbolKindVariable      SymbolKind = 13
	SymbolKindConstant      SymbolKind = 14
	SymbolKindString        SymbolKind = 15
	SymbolKindNumber        SymbolKind = 16
	SymbolKindBoolean       SymbolKind = 17
	SymbolKindArray         SymbolKind = 18
	SymbolKindObject        SymbolKind = 19
	SymbolKindKey           SymbolKind = 20
	SymbolKindNull          SymbolKind = 21
	SymbolKindEnumMember    SymbolKind = 22
	SymbolKindStruct        SymbolKind = 23
	SymbolKindEvent         SymbolKind = 24
	SymbolKindOperator      SymbolKind = 25
	SymbolKindTypeParameter SymbolKind = 26
)

var symbolKindTable = newEnumTable("SymbolKind", map[SymbolKind]string{
	SymbolKindFile:          "FILE",
	SymbolKindModule:        "MODULE",
	SymbolKindNamespace:     "NAMESPACE",
	SymbolKindPackage:       "PACKAGE",
	SymbolKindClass:         "CLASS",
	SymbolKindMethod:        "METHOD",
	SymbolKindProperty:      "PROPERTY",
	SymbolKindField:         "FIELD",
	SymbolKindConstructor:   "CONSTRUCTOR",
	SymbolKindEnum:          "ENUM",
	SymbolKindInterface:     "INTERFACE",
	SymbolKindFunction:      "FUNCTION",
	SymbolKindVariable:      "VARIABLE",
	SymbolKindConstant:      "CONSTANT",
	SymbolKindString:        "STRING",
	SymbolKindNumber:        "NUMBER",
	SymbolKindBoolean:       "BOOLEAN",
	SymbolKindArray:         "ARRAY",
	SymbolKindObject:        "OBJECT",
	SymbolKindKey:           "KEY",
	SymbolKindNull:          "NULL",
	SymbolKindEnumMember:    "ENUM_MEMBER",
	SymbolKindStruct:        "STRUCT",
	SymbolKindEvent:         "EVENT",
	SymbolKindOperator:      "OPERATOR",
	SymbolKindTypeParameter: "TYPE_PARAMETER",
})

func (k SymbolKind) String() string { return symbolKindTable.format(k) }

func ParseSymbolKind(s string) (SymbolKind, error) { return symbolKindTable.parse(s) }

// SymbolTag is an extra annotation that tweaks the rendering of a symbol.
type SymbolTag int32

// Render a symbol as obsolete, usually using a strike-out.
const SymbolTagDeprecated SymbolTag = 1

var symbolTagTable = newEnumTable("SymbolTag", map[SymbolTag]string{
	SymbolTagDeprecated: "DEPRECATED",
})

func (t SymbolTag) String() string { return symbolTagTable.format(t) }

func ParseSymbolTag(s string) (SymbolTag, error) { return symbolTagTable.parse(s) }

type SymbolKindCapability struct {
	// The symbol kind values the client supports. When absent the client
	// only supports the kinds from File to Array.
	ValueSet []SymbolKind `json:"valueSet" lsp:"nullable"`
}

type DocumentSymbolClientCapabilities struct {
	DynamicRegistration *bool                 `json:"dynamicRegistration,omitempty"`
	SymbolKind          *SymbolKindCapability `json:"symbolKind,omitempty"`
	// The client supports hierarchical document symbols.
	HierarchicalDocumentSymbolSupport *bool                  `json:"hierarchicalDocumentSymbolSupport,omitempty"`
	TagSupport                        *TagSupport[SymbolTag] `json:"tagSupport,omitempty"`
}

type DocumentSymbolParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// DocumentSymbol represents programming constructs like variables, classes
// and interfaces that appear in a document. Document symbols can be
// hierarchical and have two ranges: one that encloses the definition and
// one that points to its most interesting range, e.g. the identifier.
type DocumentSymbol struct {
	Name string `json:"name"`
	// More detail for this symbol, e.g. the signature of a function.
	Detail *string     `json:"detail,omitempty"`
	Kind   SymbolKind  `json:"kind"`
	Tags   []SymbolTag `json:"tags,omitzero"`
	// Deprecated: use Tags instead.
	Deprecated *bool `json:"deprecated,omitempty"`
	Range      Range `json:"range"`
	// Must be contained by Range.
	SelectionRange Range            `json:"selectionRange"`
	Children       []DocumentSymbol `json:"children,omitzero"`
}

// SymbolInformation represents information about programming constructs
// like variables, classes and interfaces.
type SymbolInformation struct {
	Name string      `json:"name"`
	Kind SymbolKind  `json:"kind"`
	Tags []SymbolTag `json:"tags,omitzero"`
	// Deprecated: use Tags instead.
	Deprecated *bool    `json:"deprecated,omitempty"`
	Location   Location `json:"location"`
	// The name of the symbol containing this symbol. Used for display only.
	ContainerName *string `json:"containerName,omitempty"`
}

// DocumentSymbolResponse is a flat list of symbol information or a
// hierarchy of document symbols. An empty array decodes as Flat.
type DocumentSymbolResponse struct {
	Flat   []SymbolInformation
	Nested []DocumentSymbol
}

func NewDocumentSymbolResponseFlat(s []SymbolInformation) DocumentSymbolResponse {
	if s == nil {
		s = []SymbolInformation{}
	}
	return DocumentSymbolResponse{Flat: s}
}

func NewDocumentSymbolResponseNested(s []DocumentSymbol) DocumentSymbolResponse {
	if s == nil {
		s = []DocumentSymbol{}
	}
	return DocumentSymbolResponse{Nested: s}
}

func (r DocumentSymbolResponse) MarshalJSON() ([]byte, error) {
	switch {
	case r.Flat != nil:
		return Marshal(r.Flat)
	case r.Nested != nil:
		return Marshal(r.Nested)
	}
	return nil, noAlternative("DocumentSymbolResponse")
}

func (r *DocumentSymbolResponse) UnmarshalJSON(data []byte) error {
	*r = DocumentSymbolResponse{}
	var flat []SymbolInformation
	if err := Unmarshal(data, &flat); err == nil {
		r.Flat = flat
		return nil
	}
	var nested []DocumentSymbol
	if err := Unmarshal(data, &nested); err == nil {
		r.Nested = nested
		return nil
	}
	return noVariant("DocumentSymbolResponse")
}

type DocumentSymbolOptions struct {
	// A human-readable string that is shown when multiple outline trees are
	// shown for the same document.
	Label *string `json:"label,omitempty"`
	WorkDoneProgressOptions
}

type DocumentSymbolRegistrationOptions struct {
	TextDocumentRegistrationOptions
	DocumentSymbolOptions
}

type WorkspaceSymbolClientCapabilities struct {
	DynamicRegistration *bool                  `json:"dynamicRegistration,omitempty"`
	SymbolKind          *SymbolKindCapability  `json:"symbolKind,omitempty"`
	TagSupport          *TagSupport[SymbolTag] `json:"tagSupport,omitempty"`
	// The client supports partial workspace symbols. The client will send
	// workspaceSymbol/resolve requests for the listed properties.
	ResolveSupport *WorkspaceSymbolResolveSupportCapability `json:"resolveSupport,omitempty"`
}

type WorkspaceSymbolResolveSupportCapability struct {
	Properties []string `json:"properties"`
}

type WorkspaceSymbolOptions struct {
	WorkDoneProgressOptions
	// The server provides support to resolve additional information for a
	// workspace symbol.
	ResolveProvider *bool `json:"resolveProvider,omitempty"`
}

type WorkspaceSymbolRegistrationOptions struct {
	WorkspaceSymbolOptions
}

type WorkspaceSymbolParams struct {
	PartialResultParams
	WorkDoneProgressParams
	// A query string to filter symbols by. Clients may send an empty
	// string here to request all symbols.
	Query string `json:"query"`
}

// WorkspaceSymbol is a special workspace symbol that supports locations
// without a range.
type WorkspaceSymbol struct {
	Name          string      `json:"name"`
	Kind          SymbolKind  `json:"kind"`
	Tags          []SymbolTag `json:"tags,omitzero"`
	ContainerName *string     `json:"containerName,omitempty"`
	// The location of this symbol. Whether a server is allowed to return a
	// location without a range depends on the client capability
	// workspace.symbol.resolveSupport.
	Location OneOf[Location, WorkspaceLocation] `json:"location"`
	// Preserved between a workspace symbol request and a workspace symbol
	// resolve request.
	Data LSPAny `json:"data,omitempty"`
}

type WorkspaceLocation struct {
	URI URI `json:"uri"`
}

// WorkspaceSymbolResponse is a flat list of symbol information or a list
// of workspace symbols. An empty array decodes as Flat.
type WorkspaceSymbolResponse struct {
	Flat   []SymbolInformation
	Nested []WorkspaceSymbol
}

func NewWorkspaceSymbolResponseFlat(s []SymbolInformation) WorkspaceSymbolResponse {
	if s == nil {
		s = []SymbolInformation{}
	}
	return WorkspaceSymbolResponse{Flat: s}
}

func NewWorkspaceSymbolResponseNested(s []WorkspaceSymbol) WorkspaceSymbolResponse {
	if s == nil {
		s = []WorkspaceSymbol{}
	}
	return WorkspaceSymbolResponse{Nested: s}
}

func (r WorkspaceSymbolResponse) MarshalJSON() ([]byte, error) {
	switch {
	case r.Flat != nil:
		return Marshal(r.Flat)
	case r.Nested != nil:
		return Marshal(r.Nested)
	}
	return nil, noAlternative("WorkspaceSymbolResponse")
}

func (r *WorkspaceSymbolResponse) UnmarshalJSON(data []byte) error {
	*r = WorkspaceSymbolResponse{}
	var flat []SymbolInformation
	if err := Unmarshal(data, &flat); err == nil {
		r.Flat = flat
		return nil
	}
	var nested []WorkspaceSymbol
	if err := Unmarshal(data, &nested); err == nil {
		r.Nested = nested
		return nil
	}
	return noVariant("WorkspaceSymbolResponse")
}
