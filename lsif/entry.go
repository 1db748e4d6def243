// Package lsif holds the Language Server Index Format graph: vertices, edges
// and the Entry that carries either one, plus a line delimited stream
// codec.
//
// See https://microsoft.github.io/language-server-protocol/specifications/lsif/0.6.0/specification/
package lsif

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/corymhall/lstypes/lsp"
	"github.com/tidwall/gjson"
)

// ID identifies a vertex or an edge. Indexers use either integers or
// strings.
type ID = lsp.NumberOrString

// Element is a Vertex or an Edge.
type Element interface {
	elementType() ElementType
	label() string
}

type ElementType string

const (
	ElementTypeVertex ElementType = "vertex"
	ElementTypeEdge   ElementType = "edge"
)

// Entry is one line of an LSIF dump.
type Entry struct {
	ID      ID
	Element Element
}

func NewEntry(id ID, el Element) Entry {
	return Entry{ID: id, Element: el}
}

// Vertex returns the element as a vertex, if it is one.
func (e Entry) Vertex() (Vertex, bool) {
	v, ok := e.Element.(Vertex)
	return v, ok
}

// Edge returns the element as an edge, if it is one.
func (e Entry) Edge() (Edge, bool) {
	v, ok := e.Element.(Edge)
	return v, ok
}

func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Element == nil {
		return nil, fmt.Errorf("lsif: entry %s has no element", e.ID)
	}
	if rv := reflect.ValueOf(e.Element); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, fmt.Errorf("lsif: entry %s has a nil %T element", e.ID, e.Element)
	}
	id, err := lsp.Marshal(e.ID)
	if err != nil {
		return nil, err
	}
	body, err := lsp.Marshal(e.Element)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, `{"id":%s,"type":%q,"label":%q`, id, e.Element.elementType(), e.Element.label())
	if rest := bytes.TrimSpace(body); len(rest) > 2 {
		b.WriteByte(',')
		b.Write(bytes.TrimSpace(rest[1 : len(rest)-1]))
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	*e = Entry{}
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return &lsp.DecodeError{Err: lsp.ErrStructural, Msg: "entry: expected object"}
	}
	var head struct {
		ID    ID          `json:"id"`
		Type  ElementType `json:"type"`
		Label string      `json:"label"`
	}
	if err := lsp.Unmarshal(data, &head); err != nil {
		return err
	}
	var el Element
	switch head.Type {
	case ElementTypeVertex:
		newVertex, ok := vertexLabels[VertexLabel(head.Label)]
		if !ok {
			return unknownLabel("vertex", head.Label)
		}
		el = newVertex()
	case ElementTypeEdge:
		newEdge, ok := edgeLabels[EdgeLabel(head.Label)]
		if !ok {
			return unknownLabel("edge", head.Label)
		}
		el = newEdge()
	default:
		return &lsp.DecodeError{
			Path: "type",
			Err:  lsp.ErrUnknownDiscriminator,
			Msg:  fmt.Sprintf("%q is neither vertex nor edge", head.Type),
		}
	}
	if err := lsp.Unmarshal(data, el); err != nil {
		return err
	}
	*e = Entry{ID: head.ID, Element: el}
	return nil
}

func unknownLabel(kind, label string) error {
	return &lsp.DecodeError{
		Path: "label",
		Err:  lsp.ErrUnknownDiscriminator,
		Msg:  fmt.Sprintf("unknown %s label %q", kind, label),
	}
}

// Decode decodes a single entry.
func Decode(data []byte) (Entry, error) {
	var e Entry
	err := lsp.Unmarshal(data, &e)
	return e, err
}

// Encode encodes a single entry without a trailing newline.
func Encode(e Entry) ([]byte, error) {
	return lsp.Marshal(e)
}
