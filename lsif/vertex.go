package lsif

import (
	"github.com/corymhall/lstypes/lsp"
	"github.com/tidwall/gjson"
)

// Vertex is a node of the graph. Each vertex type carries its own label.
type Vertex interface {
	Element
	VertexLabel() VertexLabel
}

type VertexLabel string

const (
	VertexLabelMetaData             VertexLabel = "metaData"
	VertexLabelEvent                VertexLabel = "$event"
	VertexLabelProject              VertexLabel = "project"
	VertexLabelDocument             VertexLabel = "document"
	VertexLabelRange                VertexLabel = "range"
	VertexLabelResultSet            VertexLabel = "resultSet"
	VertexLabelMoniker              VertexLabel = "moniker"
	VertexLabelPackageInformation   VertexLabel = "packageInformation"
	VertexLabelDefinitionResult     VertexLabel = "definitionResult"
	VertexLabelDeclarationResult    VertexLabel = "declarationResult"
	VertexLabelTypeDefinitionResult VertexLabel = "typeDefinitionResult"
	VertexLabelReferenceResult      VertexLabel = "referenceResult"
	VertexLabelImplementationResult VertexLabel = "implementationResult"
	VertexLabelFoldingRangeResult   VertexLabel = "foldingRangeResult"
	VertexLabelHoverResult          VertexLabel = "hoverResult"
	VertexLabelDocumentSymbolResult VertexLabel = "documentSymbolResult"
	VertexLabelDocumentLinkResult   VertexLabel = "documentLinkResult"
	VertexLabelDiagnosticResult     VertexLabel = "diagnosticResult"
)

var vertexLabels = map[VertexLabel]func() Element{
	VertexLabelMetaData:             func() Element { return new(MetaData) },
	VertexLabelEvent:                func() Element { return new(Event) },
	VertexLabelProject:              func() Element { return new(Project) },
	VertexLabelDocument:             func() Element { return new(Document) },
	VertexLabelRange:                func() Element { return new(Range) },
	VertexLabelResultSet:            func() Element { return new(ResultSet) },
	VertexLabelMoniker:              func() Element { return new(Moniker) },
	VertexLabelPackageInformation:   func() Element { return new(PackageInformation) },
	VertexLabelDefinitionResult:     func() Element { return new(DefinitionResult) },
	VertexLabelDeclarationResult:    func() Element { return new(DeclarationResult) },
	VertexLabelTypeDefinitionResult: func() Element { return new(TypeDefinitionResult) },
	VertexLabelReferenceResult:      func() Element { return new(ReferenceResult) },
	VertexLabelImplementationResult: func() Element { return new(ImplementationResult) },
	VertexLabelFoldingRangeResult:   func() Element { return new(FoldingRangeResult) },
	VertexLabelHoverResult:          func() Element { return new(HoverResult) },
	VertexLabelDocumentSymbolResult: func() Element { return new(DocumentSymbolResult) },
	VertexLabelDocumentLinkResult:   func() Element { return new(DocumentLinkResult) },
	VertexLabelDiagnosticResult:     func() Element { return new(DiagnosticResult) },
}

// vertex is embedded by every vertex type to mark its element type.
type vertex struct{}

func (vertex) elementType() ElementType { return ElementTypeVertex }

// MetaData is the first vertex of a dump.
type MetaData struct {
	vertex
	// The version of the LSIF format using semver notation.
	Version string `json:"version"`
	// The project root (in form of a URI) used to compute this dump.
	ProjectRoot lsp.URI `json:"projectRoot"`
	// The string encoding used to compute line and character values in
	// positions and ranges.
	PositionEncoding Encoding `json:"positionEncoding"`
	// Information about the tool that created the dump.
	ToolInfo *ToolInfo `json:"toolInfo,omitempty"`
}

func (*MetaData) VertexLabel() VertexLabel { return VertexLabelMetaData }
func (*MetaData) label() string            { return string(VertexLabelMetaData) }

type ToolInfo struct {
	Name    string   `json:"name"`
	Args    []string `json:"args,omitempty"`
	Version *string  `json:"version,omitempty"`
}

// Encoding is the position encoding of a dump. Only utf-16 is defined.
type Encoding string

const EncodingUTF16 Encoding = "utf-16"

func (e *Encoding) UnmarshalJSON(data []byte) error {
	r := gjson.ParseBytes(data)
	if r.Type != gjson.String {
		return &lsp.DecodeError{Err: lsp.ErrStructural, Msg: "Encoding: expected string"}
	}
	if Encoding(r.Str) != EncodingUTF16 {
		return &lsp.DecodeError{Err: lsp.ErrUnknownDiscriminator, Msg: "unknown position encoding " + r.Raw}
	}
	*e = EncodingUTF16
	return nil
}

// Event marks the begin or end of the data for a project or a document.
type Event struct {
	vertex
	Kind  EventKind  `json:"kind"`
	Scope EventScope `json:"scope"`
	// The id of the project or document vertex.
	Data ID `json:"data"`
}

func (*Event) VertexLabel() VertexLabel { return VertexLabelEvent }
func (*Event) label() string            { return string(VertexLabelEvent) }

type EventKind string

const (
	EventKindBegin EventKind = "begin"
	EventKindEnd   EventKind = "end"
)

type EventScope string

const (
	EventScopeDocument EventScope = "document"
	EventScopeProject  EventScope = "project"
)

type Project struct {
	vertex
	Resource *lsp.URI `json:"resource,omitempty"`
	Content  *string  `json:"content,omitempty"`
	// The project kind, e.g. "typescript".
	Kind string `json:"kind"`
}

func (*Project) VertexLabel() VertexLabel { return VertexLabelProject }
func (*Project) label() string            { return string(VertexLabelProject) }

type Document struct {
	vertex
	URI        lsp.URI `json:"uri"`
	LanguageID string  `json:"languageId"`
	// The base64 encoded content of the document.
	Contents *string `json:"contents,omitempty"`
}

func (*Document) VertexLabel() VertexLabel { return VertexLabelDocument }
func (*Document) label() string            { return string(VertexLabelDocument) }

// Range is a range vertex. The range is inlined into the vertex.
type Range struct {
	vertex
	lsp.Range
	Tag *RangeTag `json:"tag,omitempty"`
}

func (*Range) VertexLabel() VertexLabel { return VertexLabelRange }
func (*Range) label() string            { return string(VertexLabelRange) }

// RangeTag describes what a range stands for. It is tagged on the wire by
// its "type".
type RangeTag struct {
	Definition  *DefinitionTag
	Declaration *DeclarationTag
	Reference   *ReferenceTag
	Unknown     *UnknownTag
}

func (t RangeTag) MarshalJSON() ([]byte, error) {
	var typ string
	var payload any
	switch {
	case t.Definition != nil:
		typ, payload = "definition", t.Definition
	case t.Declaration != nil:
		typ, payload = "declaration", t.Declaration
	case t.Reference != nil:
		typ, payload = "reference", t.Reference
	case t.Unknown != nil:
		typ, payload = "unknown", t.Unknown
	default:
		return nil, errNoTag
	}
	return withMember("type", typ, payload)
}

func (t *RangeTag) UnmarshalJSON(data []byte) error {
	*t = RangeTag{}
	typ := gjson.GetBytes(data, "type")
	if typ.Type != gjson.String {
		return &lsp.DecodeError{Path: "type", Err: lsp.ErrMissingField}
	}
	var v RangeTag
	var err error
	switch typ.Str {
	case "definition":
		v.Definition = new(DefinitionTag)
		err = lsp.Unmarshal(data, v.Definition)
	case "declaration":
		v.Declaration = new(DeclarationTag)
		err = lsp.Unmarshal(data, v.Declaration)
	case "reference":
		v.Reference = new(ReferenceTag)
		err = lsp.Unmarshal(data, v.Reference)
	case "unknown":
		v.Unknown = new(UnknownTag)
		err = lsp.Unmarshal(data, v.Unknown)
	default:
		return &lsp.DecodeError{Path: "type", Err: lsp.ErrUnknownDiscriminator, Msg: "unknown range tag " + typ.Raw}
	}
	if err != nil {
		return err
	}
	*t = v
	return nil
}

type DefinitionTag struct {
	// The text covered by the range.
	Text string `json:"text"`
	// The symbol kind.
	Kind lsp.SymbolKind `json:"kind"`
	// Indicates if this symbol is deprecated.
	Deprecated bool `json:"deprecated,omitempty"`
	// The full range of the definition not including leading/trailing
	// whitespace but everything else, e.g comments and code.
	FullRange lsp.Range `json:"fullRange"`
	// Optional detail information for the definition.
	Detail *string `json:"detail,omitempty"`
}

type DeclarationTag struct {
	Text       string         `json:"text"`
	Kind       lsp.SymbolKind `json:"kind"`
	Deprecated bool           `json:"deprecated,omitempty"`
	FullRange  lsp.Range      `json:"fullRange"`
	Detail     *string        `json:"detail,omitempty"`
}

type ReferenceTag struct {
	Text string `json:"text"`
}

type UnknownTag struct {
	Text string `json:"text"`
}

// ResultSet groups the results of the ranges that point to it.
type ResultSet struct {
	vertex
	Key *string `json:"key,omitempty"`
}

func (*ResultSet) VertexLabel() VertexLabel { return VertexLabelResultSet }
func (*ResultSet) label() string            { return string(VertexLabelResultSet) }

// Moniker is a moniker vertex. It has the fields of an LSP moniker.
type Moniker struct {
	vertex
	lsp.Moniker
}

func (*Moniker) VertexLabel() VertexLabel { return VertexLabelMoniker }
func (*Moniker) label() string            { return string(VertexLabelMoniker) }

type PackageInformation struct {
	vertex
	Name       string      `json:"name"`
	Manager    string      `json:"manager"`
	URI        *lsp.URI    `json:"uri,omitempty"`
	Content    *string     `json:"content,omitempty"`
	Repository *Repository `json:"repository,omitempty"`
	Version    *string     `json:"version,omitempty"`
}

func (*PackageInformation) VertexLabel() VertexLabel { return VertexLabelPackageInformation }
func (*PackageInformation) label() string            { return string(VertexLabelPackageInformation) }

type Repository struct {
	Type     string  `json:"type"`
	URL      string  `json:"url"`
	CommitID *string `json:"commitId,omitempty"`
}

// DefinitionResult and the other result vertices without a payload are
// tied to their ranges with item edges.
type DefinitionResult struct{ vertex }

func (*DefinitionResult) VertexLabel() VertexLabel { return VertexLabelDefinitionResult }
func (*DefinitionResult) label() string            { return string(VertexLabelDefinitionResult) }

type DeclarationResult struct{ vertex }

func (*DeclarationResult) VertexLabel() VertexLabel { return VertexLabelDeclarationResult }
func (*DeclarationResult) label() string            { return string(VertexLabelDeclarationResult) }

type TypeDefinitionResult struct{ vertex }

func (*TypeDefinitionResult) VertexLabel() VertexLabel { return VertexLabelTypeDefinitionResult }
func (*TypeDefinitionResult) label() string            { return string(VertexLabelTypeDefinitionResult) }

type ReferenceResult struct{ vertex }

func (*ReferenceResult) VertexLabel() VertexLabel { return VertexLabelReferenceResult }
func (*ReferenceResult) label() string            { return string(VertexLabelReferenceResult) }

type ImplementationResult struct{ vertex }

func (*ImplementationResult) VertexLabel() VertexLabel { return VertexLabelImplementationResult }
func (*ImplementationResult) label() string            { return string(VertexLabelImplementationResult) }

type FoldingRangeResult struct {
	vertex
	Result []lsp.FoldingRange `json:"result"`
}

func (*FoldingRangeResult) VertexLabel() VertexLabel { return VertexLabelFoldingRangeResult }
func (*FoldingRangeResult) label() string            { return string(VertexLabelFoldingRangeResult) }

type HoverResult struct {
	vertex
	Result lsp.Hover `json:"result"`
}

func (*HoverResult) VertexLabel() VertexLabel { return VertexLabelHoverResult }
func (*HoverResult) label() string            { return string(VertexLabelHoverResult) }

type DocumentSymbolResult struct {
	vertex
	Result DocumentSymbols `json:"result"`
}

func (*DocumentSymbolResult) VertexLabel() VertexLabel { return VertexLabelDocumentSymbolResult }
func (*DocumentSymbolResult) label() string            { return string(VertexLabelDocumentSymbolResult) }

// DocumentSymbols is either a list of LSP document symbols or a list of
// range based symbols.
type DocumentSymbols struct {
	Symbols    []lsp.DocumentSymbol
	RangeBased []RangeBasedDocumentSymbol
}

func (s DocumentSymbols) MarshalJSON() ([]byte, error) {
	switch {
	case s.Symbols != nil:
		return lsp.Marshal(s.Symbols)
	case s.RangeBased != nil:
		return lsp.Marshal(s.RangeBased)
	}
	return []byte("[]"), nil
}

func (s *DocumentSymbols) UnmarshalJSON(data []byte) error {
	*s = DocumentSymbols{}
	var symbols []lsp.DocumentSymbol
	if err := lsp.Unmarshal(data, &symbols); err == nil {
		s.Symbols = symbols
		return nil
	}
	var ranges []RangeBasedDocumentSymbol
	if err := lsp.Unmarshal(data, &ranges); err != nil {
		return &lsp.DecodeError{Err: lsp.ErrStructural, Msg: "data did not match any variant of DocumentSymbols"}
	}
	s.RangeBased = ranges
	return nil
}

type RangeBasedDocumentSymbol struct {
	// The id of the range vertex.
	ID       ID                         `json:"id"`
	Children []RangeBasedDocumentSymbol `json:"children,omitempty"`
}

type DocumentLinkResult struct {
	vertex
	Result []lsp.DocumentLink `json:"result"`
}

func (*DocumentLinkResult) VertexLabel() VertexLabel { return VertexLabelDocumentLinkResult }
func (*DocumentLinkResult) label() string            { return string(VertexLabelDocumentLinkResult) }

type DiagnosticResult struct {
	vertex
	Result []lsp.Diagnostic `json:"result"`
}

func (*DiagnosticResult) VertexLabel() VertexLabel { return VertexLabelDiagnosticResult }
func (*DiagnosticResult) label() string            { return string(VertexLabelDiagnosticResult) }
