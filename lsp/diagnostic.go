package lsp

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Diagnostic represents a diagnostic, such as a compiler error or warning.
// Diagnostic objects are only valid in the scope of a resource.
type Diagnostic struct {
	Range Range `json:"range"`
	// If omitted it is up to the client to interpret diagnostics as error,
	// warning, info or hint.
	Severity        *DiagnosticSeverity `json:"severity,omitempty"`
	Code            *NumberOrString     `json:"code,omitempty"`
	CodeDescription *CodeDescription    `json:"codeDescription,omitempty"`
	// A human-readable string describing the source of this diagnostic,
	// e.g. 'typescript' or 'super lint'.
	Source             *string                        `json:"source,omitempty"`
	Message            string                         `json:"message"`
	RelatedInformation []DiagnosticRelatedInformation `json:"relatedInformation,omitzero"`
	Tags               []DiagnosticTag                `json:"tags,omitzero"`
	// Preserved between a textDocument/publishDiagnostics notification and
	// a textDocument/codeAction request.
	Data LSPAny `json:"data,omitempty"`
}

func NewDiagnostic(
	r Range,
	severity *DiagnosticSeverity,
	code *NumberOrString,
	source *string,
	message string,
	related []DiagnosticRelatedInformation,
	tags []DiagnosticTag,
) Diagnostic {
	return Diagnostic{
		Range:              r,
		Severity:           severity,
		Code:               code,
		Source:             source,
		Message:            message,
		RelatedInformation: related,
		Tags:               tags,
	}
}

func NewDiagnosticSimple(r Range, message string) Diagnostic {
	return Diagnostic{Range: r, Message: message}
}

func NewDiagnosticWithCodeNumber(r Range, severity DiagnosticSeverity, code int32, source *string, message string) Diagnostic {
	c := NewNumber(code)
	return NewDiagnostic(r, &severity, &c, source, message, nil, nil)
}

type CodeDescription struct {
	Href URI `json:"href"`
}

// DiagnosticSeverity is a diagnostic's severity.
type DiagnosticSeverity int32

const (
	DiagnosticSeverityError       DiagnosticSeverity = 1
	DiagnosticSeverityWarning     DiagnosticSeverity = 2
	DiagnosticSeverityInformation DiagnosticSeverity = 3
	DiagnosticSeverityHint        DiagnosticSeverity = 4
)

var diagnosticSeverityTable = newEnumTable("DiagnosticSeverity", map[DiagnosticSeverity]string{
	DiagnosticSeverityError:       "ERROR",
	DiagnosticSeverityWarning:     "WARNING",
	DiagnosticSeverityInformation: "INFORMATION",
	DiagnosticSeverityHint:        "HINT",
})

func (s DiagnosticSeverity) String() string { return diagnosticSeverityTable.format(s) }

func ParseDiagnosticSeverity(s string) (DiagnosticSeverity, error) {
	return diagnosticSeverityTable.parse(s)
}

// DiagnosticRelatedInformation points to a code location that causes or is
// related to a diagnostic, e.g. when duplicating a symbol in a scope.
type DiagnosticRelatedInformation struct {
	Location Location `json:"location"`
	Message  string   `json:"message"`
}

type DiagnosticTag int32

const (
	// Unused or unnecessary code. Clients may render it faded out.
	DiagnosticTagUnnecessary DiagnosticTag = 1
	// Deprecated or obsolete code. Clients may render it with a strike
	// through.
	DiagnosticTagDeprecated DiagnosticTag = 2
)

var diagnosticTagTable = newEnumTable("DiagnosticTag", map[DiagnosticTag]string{
	DiagnosticTagUnnecessary: "UNNECESSARY",
	DiagnosticTagDeprecated:  "DEPRECATED",
})

func (t DiagnosticTag) String() string { return diagnosticTagTable.format(t) }

func ParseDiagnosticTag(s string) (DiagnosticTag, error) { return diagnosticTagTable.parse(s) }

type PublishDiagnosticsParams struct {
	URI         DocumentURI  `json:"uri"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	// The version number of the document the diagnostics are published for.
	Version *int32 `json:"version,omitempty"`
}

func NewPublishDiagnosticsParams(uri DocumentURI, diagnostics []Diagnostic, version *int32) PublishDiagnosticsParams {
	return PublishDiagnosticsParams{URI: uri, Diagnostics: diagnostics, Version: version}
}

// TagSupport lists the tags a client supports.
type TagSupport[T any] struct {
	ValueSet []T `json:"valueSet"`
}

type PublishDiagnosticsClientCapabilities struct {
	// Whether the client accepts diagnostics with related information.
	RelatedInformation *bool `json:"relatedInformation,omitempty"`
	// Clients supporting tags have to handle unknown tags gracefully.
	TagSupport *TagSupport[DiagnosticTag] `json:"tagSupport,omitempty"`
	// Whether the client interprets the version property of the
	// textDocument/publishDiagnostics notification's parameter.
	VersionSupport         *bool `json:"versionSupport,omitempty"`
	CodeDescriptionSupport *bool `json:"codeDescriptionSupport,omitempty"`
	DataSupport            *bool `json:"dataSupport,omitempty"`
}

// UnmarshalJSON accepts tagSupport either structured or as a bare boolean,
// which older clients send.
func (c *PublishDiagnosticsClientCapabilities) UnmarshalJSON(data []byte) error {
	type plain PublishDiagnosticsClientCapabilities
	var aux struct {
		plain
		TagSupport json.RawMessage `json:"tagSupport,omitempty"`
	}
	if err := Unmarshal(data, &aux); err != nil {
		return err
	}
	ts, err := decodeTagSupportCompat[DiagnosticTag](aux.TagSupport)
	if err != nil {
		return err
	}
	*c = PublishDiagnosticsClientCapabilities(aux.plain)
	c.TagSupport = ts
	return nil
}

// decodeTagSupportCompat decodes a tagSupport member. false and null mean
// absent, true means an empty value set.
func decodeTagSupportCompat[T any](raw json.RawMessage) (*TagSupport[T], error) {
	if len(raw) == 0 {
		return nil, nil
	}
	switch gjson.ParseBytes(raw).Type {
	case gjson.False, gjson.Null:
		return nil, nil
	case gjson.True:
		return &TagSupport[T]{ValueSet: []T{}}, nil
	}
	var ts TagSupport[T]
	if err := Unmarshal(raw, &ts); err != nil {
		return nil, withPath(err, "tagSupport")
	}
	return &ts, nil
}
