package lsp

// InlayHintServerCapabilities is the inlayHintProvider server capability.
type InlayHintServerCapabilities struct {
	Options             *InlayHintOptions
	RegistrationOptions *InlayHintRegistrationOptions
}

func NewInlayHintServerOptions(o InlayHintOptions) InlayHintServerCapabilities {
	return InlayHintServerCapabilities{Options: &o}
}

func (c InlayHintServerCapabilities) MarshalJSON() ([]byte, error) {
	return marshalUnion("InlayHintServerCapabilities", c.Options, c.RegistrationOptions)
}

func (c *InlayHintServerCapabilities) UnmarshalJSON(data []byte) error {
	*c = InlayHintServerCapabilities{}
	return decodeProviderUnion("InlayHintServerCapabilities", data, nil, &c.Options, &c.RegistrationOptions)
}

type InlayHintOptions struct {
	WorkDoneProgressOptions
	// The server provides support to resolve additional information for an
	// inlay hint item.
	ResolveProvider *bool `json:"resolveProvider,omitempty"`
}

type InlayHintRegistrationOptions struct {
	InlayHintOptions
	TextDocumentRegistrationOptions
	StaticRegistrationOptions
}

type InlayHintParams struct {
	WorkDoneProgressParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	// The visible document range for which inlay hints should be computed.
	Range Range `json:"range"`
}

// InlayHint is additional information about source code rendered inline.
type InlayHint struct {
	// The position of this hint. If multiple hints have the same position
	// they are shown in the order they appear in the response.
	Position Position       `json:"position"`
	Label    InlayHintLabel `json:"label"`
	Kind     *InlayHintKind `json:"kind,omitempty"`
	// Edits performed when accepting the hint.
	TextEdits []TextEdit        `json:"textEdits,omitzero"`
	Tooltip   *InlayHintTooltip `json:"tooltip,omitempty"`
	// Render padding before the hint.
	PaddingLeft *bool `json:"paddingLeft,omitempty"`
	// Render padding after the hint.
	PaddingRight *bool `json:"paddingRight,omitempty"`
	// Preserved between a textDocument/inlayHint and an inlayHint/resolve
	// request.
	Data LSPAny `json:"data,omitempty"`
}

// InlayHintLabel is a string or a list of label parts.
type InlayHintLabel struct {
	String     *string
	LabelParts []InlayHintLabelPart
}

func NewInlayHintLabelString(s string) InlayHintLabel {
	return InlayHintLabel{String: &s}
}

func NewInlayHintLabelParts(parts []InlayHintLabelPart) InlayHintLabel {
	if parts == nil {
		parts = []InlayHintLabelPart{}
	}
	return InlayHintLabel{LabelParts: parts}
}

func (l InlayHintLabel) MarshalJSON() ([]byte, error) {
	switch {
	case l.String != nil:
		return Marshal(l.String)
	case l.LabelParts != nil:
		return Marshal(l.LabelParts)
	}
	return nil, noAlternative("InlayHintLabel")
}

func (l *InlayHintLabel) UnmarshalJSON(data []byte) error {
	*l = InlayHintLabel{}
	var parts []InlayHintLabelPart
	return decodeUnion("InlayHintLabel", data, arm(&l.String), func(b []byte) error {
		if err := Unmarshal(b, &parts); err != nil {
			return err
		}
		l.LabelParts = parts
		return nil
	})
}

// InlayHintTooltip is a string or markup content. InlayHintLabelPart uses
// the same shape for its tooltip.
type InlayHintTooltip struct {
	String        *string
	MarkupContent *MarkupContent
}

type InlayHintLabelPartTooltip = InlayHintTooltip

func (t InlayHintTooltip) MarshalJSON() ([]byte, error) {
	return marshalUnion("InlayHintTooltip", t.String, t.MarkupContent)
}

func (t *InlayHintTooltip) UnmarshalJSON(data []byte) error {
	*t = InlayHintTooltip{}
	return decodeUnion("InlayHintTooltip", data, arm(&t.String), arm(&t.MarkupContent))
}

type InlayHintLabelPart struct {
	Value   string                     `json:"value"`
	Tooltip *InlayHintLabelPartTooltip `json:"tooltip,omitempty"`
	// An optional source code location that represents this label part.
	Location *Location `json:"location,omitempty"`
	// An optional command for this label part.
	Command *Command `json:"command,omitempty"`
}

// InlayHintKind is the kind of an inlay hint.
type InlayHintKind int32

const (
	// An inlay hint that is for a type annotation.
	InlayHintKindType InlayHintKind = 1
	// An inlay hint that is for a parameter.
	InlayHintKindParameter InlayHintKind = 2
)

var inlayHintKindTable = newEnumTable("InlayHintKind", map[InlayHintKind]string{
	InlayHintKindType:      "TYPE",
	InlayHintKindParameter: "PARAMETER",
})

func (k InlayHintKind) String() string { return inlayHintKindTable.format(k) }

func ParseInlayHintKind(s string) (InlayHintKind, error) { return inlayHintKindTable.parse(s) }

type InlayHintClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	// Indicates which properties a client can resolve lazily on an inlay
	// hint.
	ResolveSupport *InlayHintResolveClientCapabilities `json:"resolveSupport,omitempty"`
}

type InlayHintResolveClientCapabilities struct {
	Properties []string `json:"properties"`
}

type InlayHintWorkspaceClientCapabilities struct {
	RefreshSupport *bool `json:"refreshSupport,omitempty"`
}

type InlineValueClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
}

// InlineValueServerCapabilities is the inlineValueProvider server
// capability.
type InlineValueServerCapabilities struct {
	Options             *InlineValueOptions
	RegistrationOptions *InlineValueRegistrationOptions
}

func (c InlineValueServerCapabilities) MarshalJSON() ([]byte, error) {
	return marshalUnion("InlineValueServerCapabilities", c.Options, c.RegistrationOptions)
}

func (c *InlineValueServerCapabilities) UnmarshalJSON(data []byte) error {
	*c = InlineValueServerCapabilities{}
	return decodeProviderUnion("InlineValueServerCapabilities", data, nil, &c.Options, &c.RegistrationOptions)
}

type InlineValueOptions struct {
	WorkDoneProgressOptions
}

type InlineValueRegistrationOptions struct {
	InlineValueOptions
	TextDocumentRegistrationOptions
	StaticRegistrationOptions
}

type InlineValueParams struct {
	WorkDoneProgressParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	// The document range for which inline values should be computed.
	Range   Range              `json:"range"`
	Context InlineValueContext `json:"context"`
}

type InlineValueContext struct {
	// The stack frame (as a DAP Id) where the execution has stopped.
	FrameID int32 `json:"frameId"`
	// The document range where execution has stopped.
	StoppedLocation Range `json:"stoppedLocation"`
}

// InlineValueText provides inline value as text.
type InlineValueText struct {
	Range Range  `json:"range"`
	Text  string `json:"text"`
}

// InlineValueVariableLookup provides inline value through a variable
// lookup. If only a range is specified the variable name is extracted from
// the underlying document.
type InlineValueVariableLookup struct {
	Range               Range   `json:"range"`
	VariableName        *string `json:"variableName,omitempty"`
	CaseSensitiveLookup bool    `json:"caseSensitiveLookup"`
}

// InlineValueEvaluatableExpression provides inline value through an
// expression evaluation.
type InlineValueEvaluatableExpression struct {
	Range      Range   `json:"range"`
	Expression *string `json:"expression,omitempty"`
}

// InlineValue is text, a variable lookup or an evaluatable expression.
type InlineValue struct {
	Text                  *InlineValueText
	VariableLookup        *InlineValueVariableLookup
	EvaluatableExpression *InlineValueEvaluatableExpression
}

func (v InlineValue) MarshalJSON() ([]byte, error) {
	return marshalUnion("InlineValue", v.Text, v.VariableLookup, v.EvaluatableExpression)
}

func (v *InlineValue) UnmarshalJSON(data []byte) error {
	*v = InlineValue{}
	return decodeUnion("InlineValue", data, arm(&v.Text), arm(&v.VariableLookup), arm(&v.EvaluatableExpression))
}

type InlineValueWorkspaceClientCapabilities struct {
	RefreshSupport *bool `json:"refreshSupport,omitempty"`
}
