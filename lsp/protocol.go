package lsp

import (
	"encoding/json"
	"strconv"

	"github.com/tidwall/gjson"
)

// LSPAny is any JSON value. It is kept as raw bytes so that values round
// trip exactly.
type LSPAny = json.RawMessage

// LSPObject is a JSON object with arbitrary members.
type LSPObject = map[string]json.RawMessage

// LSPArray is a JSON array with arbitrary elements.
type LSPArray = []json.RawMessage

// Void is the params or result of a method that carries none. It encodes
// as null.
type Void struct{}

func (Void) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func (*Void) UnmarshalJSON(data []byte) error {
	if r := gjson.ParseBytes(data); r.Type != gjson.Null {
		return decodeErrorf(ErrStructural, "", "expected null, got %s", describe(r))
	}
	return nil
}

// NumberOrString is either a 32 bit integer or a string. It is written as a
// bare JSON number or string.
type NumberOrString struct {
	str    string
	number int32
	isStr  bool
}

func NewNumber(n int32) NumberOrString {
	return NumberOrString{number: n}
}

func NewString(s string) NumberOrString {
	return NumberOrString{str: s, isStr: true}
}

// Number returns the integer value, and false when the value is a string.
func (n NumberOrString) Number() (int32, bool) {
	return n.number, !n.isStr
}

// Str returns the string value, and false when the value is a number.
func (n NumberOrString) Str() (string, bool) {
	return n.str, n.isStr
}

func (n NumberOrString) String() string {
	if n.isStr {
		return strconv.Quote(n.str)
	}
	return strconv.FormatInt(int64(n.number), 10)
}

func (n NumberOrString) MarshalJSON() ([]byte, error) {
	if n.isStr {
		return json.Marshal(n.str)
	}
	return json.Marshal(n.number)
}

func (n *NumberOrString) UnmarshalJSON(data []byte) error {
	*n = NumberOrString{}
	r := gjson.ParseBytes(data)
	switch r.Type {
	case gjson.String:
		*n = NewString(r.String())
		return nil
	case gjson.Number:
		var v int32
		if err := json.Unmarshal(data, &v); err != nil {
			return decodeErrorf(ErrInvalidValue, "", "%s does not fit in a 32 bit integer", r.Raw)
		}
		*n = NewNumber(v)
		return nil
	}
	return decodeErrorf(ErrStructural, "", "expected number or string, got %s", describe(r))
}

// ProgressToken identifies a stream of progress notifications.
type ProgressToken = NumberOrString

// See https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification#cancelRequest
type CancelParams struct {
	// The request id to cancel.
	ID NumberOrString `json:"id"`
}

// Position in a text document expressed as zero-based line and character
// offset. The meaning of Character is set by the negotiated
// PositionEncodingKind.
type Position struct {
	Line      uint32 `json:"line"`
	Character uint32 `json:"character"`
}

func NewPosition(line, character uint32) Position {
	return Position{Line: line, Character: character}
}

// Compare orders positions by line, then character.
func (p Position) Compare(other Position) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Character < other.Character:
		return -1
	case p.Character > other.Character:
		return 1
	}
	return 0
}

// Range is a span in a text document. End is exclusive.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

func NewRange(start, end Position) Range {
	return Range{Start: start, End: end}
}

type Location struct {
	URI   URI   `json:"uri"`
	Range Range `json:"range"`
}

func NewLocation(uri URI, r Range) Location {
	return Location{URI: uri, Range: r}
}

// LocationLink is a link between a source and a target location.
type LocationLink struct {
	// Span of the origin of this link. Defaults to the word range at the
	// mouse position.
	OriginSelectionRange *Range `json:"originSelectionRange,omitempty"`
	TargetURI            URI    `json:"targetUri"`
	// The full target range of this link.
	TargetRange Range `json:"targetRange"`
	// The span of this link.
	TargetSelectionRange Range `json:"targetSelectionRange"`
}

// PositionEncodingKind says how character offsets in positions are counted.
type PositionEncodingKind string

const (
	PositionEncodingKindUTF8 PositionEncodingKind = "utf-8"
	// PositionEncodingKindUTF16 is the default and must always be
	// supported by servers.
	PositionEncodingKindUTF16 PositionEncodingKind = "utf-16"
	PositionEncodingKindUTF32 PositionEncodingKind = "utf-32"
)

type WorkDoneProgressParams struct {
	// An optional token that a server can use to report work done progress.
	WorkDoneToken *ProgressToken `json:"workDoneToken,omitempty"`
}

type PartialResultParams struct {
	// An optional token that a server can use to report partial results
	// (e.g. streaming) to the client.
	PartialResultToken *ProgressToken `json:"partialResultToken,omitempty"`
}

type WorkDoneProgressOptions struct {
	WorkDoneProgress *bool `json:"workDoneProgress,omitempty"`
}

// See https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification#markupContent
type MarkupKind string

const (
	MarkupKindPlainText MarkupKind = "plaintext"
	MarkupKindMarkdown  MarkupKind = "markdown"
)

func (k *MarkupKind) UnmarshalJSON(data []byte) error {
	v, err := decodeClosedString(data, "MarkupKind", MarkupKindPlainText, MarkupKindMarkdown)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// MarkupContent is a string value that can be rendered in different
// formats.
type MarkupContent struct {
	Kind  MarkupKind `json:"kind"`
	Value string     `json:"value"`
}

// Ptr returns a pointer to v. It is a convenience for filling optional
// fields.
func Ptr[T any](v T) *T {
	return &v
}
