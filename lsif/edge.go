package lsif

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/corymhall/lstypes/lsp"
	"github.com/tidwall/gjson"
)

// Edge connects vertices. contains and item edges point to many vertices,
// every other edge points to exactly one.
type Edge interface {
	Element
	EdgeLabel() EdgeLabel
	// OutVertex is the source vertex.
	OutVertex() ID
	// InVertices are the target vertices.
	InVertices() []ID
}

type EdgeLabel string

const (
	EdgeLabelContains           EdgeLabel = "contains"
	EdgeLabelItem               EdgeLabel = "item"
	EdgeLabelNext               EdgeLabel = "next"
	EdgeLabelMoniker            EdgeLabel = "moniker"
	EdgeLabelNextMoniker        EdgeLabel = "nextMoniker"
	EdgeLabelPackageInformation EdgeLabel = "packageInformation"
	EdgeLabelDefinition         EdgeLabel = "textDocument/definition"
	EdgeLabelDeclaration        EdgeLabel = "textDocument/declaration"
	EdgeLabelHover              EdgeLabel = "textDocument/hover"
	EdgeLabelReferences         EdgeLabel = "textDocument/references"
	EdgeLabelImplementation     EdgeLabel = "textDocument/implementation"
	EdgeLabelTypeDefinition     EdgeLabel = "textDocument/typeDefinition"
	EdgeLabelFoldingRange       EdgeLabel = "textDocument/foldingRange"
	EdgeLabelDocumentLink       EdgeLabel = "textDocument/documentLink"
	EdgeLabelDocumentSymbol     EdgeLabel = "textDocument/documentSymbol"
	EdgeLabelDiagnostic         EdgeLabel = "textDocument/diagnostic"
)

var edgeLabels = map[EdgeLabel]func() Element{
	EdgeLabelContains: func() Element { return new(Contains) },
	EdgeLabelItem:     func() Element { return new(Item) },
}

func init() {
	for _, l := range []EdgeLabel{
		EdgeLabelNext,
		EdgeLabelMoniker,
		EdgeLabelNextMoniker,
		EdgeLabelPackageInformation,
		EdgeLabelDefinition,
		EdgeLabelDeclaration,
		EdgeLabelHover,
		EdgeLabelReferences,
		EdgeLabelImplementation,
		EdgeLabelTypeDefinition,
		EdgeLabelFoldingRange,
		EdgeLabelDocumentLink,
		EdgeLabelDocumentSymbol,
		EdgeLabelDiagnostic,
	} {
		edgeLabels[l] = func() Element { return &SingleEdge{Label: l} }
	}
}

type edge struct{}

func (edge) elementType() ElementType { return ElementTypeEdge }

// EdgeData is the payload of a single target edge.
type EdgeData struct {
	InV  ID `json:"inV"`
	OutV ID `json:"outV"`
}

func (d EdgeData) OutVertex() ID    { return d.OutV }
func (d EdgeData) InVertices() []ID { return []ID{d.InV} }

// EdgeDataMultiIn is the payload of a many target edge.
type EdgeDataMultiIn struct {
	InVs []ID `json:"inVs"`
	OutV ID   `json:"outV"`
}

func (d EdgeDataMultiIn) OutVertex() ID    { return d.OutV }
func (d EdgeDataMultiIn) InVertices() []ID { return d.InVs }

// SingleEdge is any edge with exactly one target. The label is carried by
// the enclosing Entry.
type SingleEdge struct {
	edge
	Label EdgeLabel `json:"-"`
	EdgeData
}

func NewSingleEdge(label EdgeLabel, outV, inV ID) *SingleEdge {
	return &SingleEdge{Label: label, EdgeData: EdgeData{InV: inV, OutV: outV}}
}

func (e *SingleEdge) EdgeLabel() EdgeLabel { return e.Label }
func (e *SingleEdge) label() string        { return string(e.Label) }

type Contains struct {
	edge
	EdgeDataMultiIn
}

func (*Contains) EdgeLabel() EdgeLabel { return EdgeLabelContains }
func (*Contains) label() string        { return string(EdgeLabelContains) }

// Item ties result vertices to a result and records the document the
// targets live in.
type Item struct {
	edge
	Document ID        `json:"document"`
	Property *ItemKind `json:"property,omitempty"`
	EdgeDataMultiIn
}

func (*Item) EdgeLabel() EdgeLabel { return EdgeLabelItem }
func (*Item) label() string        { return string(EdgeLabelItem) }

type ItemKind string

const (
	ItemKindDeclarations          ItemKind = "declarations"
	ItemKindDefinitions           ItemKind = "definitions"
	ItemKindReferences            ItemKind = "references"
	ItemKindReferenceResults      ItemKind = "referenceResults"
	ItemKindImplementationResults ItemKind = "implementationResults"
)

func (k *ItemKind) UnmarshalJSON(data []byte) error {
	r := gjson.ParseBytes(data)
	if r.Type != gjson.String {
		return &lsp.DecodeError{Err: lsp.ErrStructural, Msg: "ItemKind: expected string"}
	}
	switch v := ItemKind(r.Str); v {
	case ItemKindDeclarations, ItemKindDefinitions, ItemKindReferences,
		ItemKindReferenceResults, ItemKindImplementationResults:
		*k = v
		return nil
	}
	return &lsp.DecodeError{Err: lsp.ErrInvalidValue, Msg: "unknown item property " + r.Raw}
}

var errNoTag = errors.New("lsif: range tag has no variant set")

// withMember encodes payload as an object with key set to value in front
// of its own members.
func withMember(key, value string, payload any) ([]byte, error) {
	body, err := lsp.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	b.WriteByte('{')
	b.WriteString(strconv.Quote(key))
	b.WriteByte(':')
	b.WriteString(strconv.Quote(value))
	if rest := bytes.TrimSpace(body); len(rest) > 2 {
		b.WriteByte(',')
		b.Write(rest[1 : len(rest)-1])
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
