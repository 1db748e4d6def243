package lsp

type SignatureHelpClientCapabilities struct {
	DynamicRegistration  *bool                         `json:"dynamicRegistration,omitempty"`
	SignatureInformation *SignatureInformationSettings `json:"signatureInformation,omitempty"`
	// The client supports sending additional context information for a
	// textDocument/signatureHelp request.
	ContextSupport *bool `json:"contextSupport,omitempty"`
}

type SignatureInformationSettings struct {
	// Client supports the following content formats for the documentation
	// property. The order describes the preferred format of the client.
	DocumentationFormat  []MarkupKind                  `json:"documentationFormat,omitzero"`
	ParameterInformation *ParameterInformationSettings `json:"parameterInformation,omitempty"`
	// The client supports the activeParameter property on
	// SignatureInformation.
	ActiveParameterSupport *bool `json:"activeParameterSupport,omitempty"`
}

type ParameterInformationSettings struct {
	// The client supports processing label offsets instead of a simple
	// label string.
	LabelOffsetSupport *bool `json:"labelOffsetSupport,omitempty"`
}

type SignatureHelpOptions struct {
	// The characters that trigger signature help automatically.
	TriggerCharacters []string `json:"triggerCharacters,omitzero"`
	// List of characters that re-trigger signature help. They are only
	// active when signature help is already showing.
	RetriggerCharacters []string `json:"retriggerCharacters,omitzero"`
	WorkDoneProgressOptions
}

type SignatureHelpRegistrationOptions struct {
	TextDocumentRegistrationOptions
	SignatureHelpOptions
}

// SignatureHelpTriggerKind says how signature help was triggered.
type SignatureHelpTriggerKind int32

const (
	// Signature help was invoked manually by the user or by a command.
	SignatureHelpTriggerKindInvoked SignatureHelpTriggerKind = 1
	// Signature help was triggered by a trigger character.
	SignatureHelpTriggerKindTriggerCharacter SignatureHelpTriggerKind = 2
	// Signature help was triggered by the cursor moving or by the document
	// content changing.
	SignatureHelpTriggerKindContentChange SignatureHelpTriggerKind = 3
)

var signatureHelpTriggerKindTable = newEnumTable("SignatureHelpTriggerKind", map[SignatureHelpTriggerKind]string{
	SignatureHelpTriggerKindInvoked:          "INVOKED",
	SignatureHelpTriggerKindTriggerCharacter: "TRIGGER_CHARACTER",
	SignatureHelpTriggerKindContentChange:    "CONTENT_CHANGE",
})

func (k SignatureHelpTriggerKind) String() string { return signatureHelpTriggerKindTable.format(k) }

func ParseSignatureHelpTriggerKind(s string) (SignatureHelpTriggerKind, error) {
	return signatureHelpTriggerKindTable.parse(s)
}

type SignatureHelpParams struct {
	// Only available if the client advertises contextSupport.
	Context *SignatureHelpContext `json:"context,omitempty"`
	TextDocumentPositionParams
	WorkDoneProgressParams
}

type SignatureHelpContext struct {
	TriggerKind SignatureHelpTriggerKind `json:"triggerKind"`
	// Set when TriggerKind is SignatureHelpTriggerKindTriggerCharacter.
	TriggerCharacter *string `json:"triggerCharacter,omitempty"`
	// True if signature help was already showing when it was triggered.
	IsRetrigger bool `json:"isRetrigger"`
	// The currently active SignatureHelp, with its active signature updated
	// to reflect the user's selection.
	ActiveSignatureHelp *SignatureHelp `json:"activeSignatureHelp,omitempty"`
}

// SignatureHelp represents the signature of something callable. There can
// be multiple signatures but only one active and only one active
// parameter.
type SignatureHelp struct {
	Signatures      []SignatureInformation `json:"signatures"`
	ActiveSignature *uint32                `json:"activeSignature,omitempty"`
	ActiveParameter *uint32                `json:"activeParameter,omitempty"`
}

// SignatureInformation represents the signature of something callable.
type SignatureInformation struct {
	// The label of this signature. Shown in the UI.
	Label         string                 `json:"label"`
	Documentation *Documentation         `json:"documentation,omitempty"`
	Parameters    []ParameterInformation `json:"parameters,omitzero"`
	// The index of the active parameter. When set it takes precedence over
	// SignatureHelp.ActiveParameter.
	ActiveParameter *uint32 `json:"activeParameter,omitempty"`
}

// ParameterInformation represents a parameter of a callable-signature.
type ParameterInformation struct {
	Label         ParameterLabel `json:"label"`
	Documentation *Documentation `json:"documentation,omitempty"`
}

// ParameterLabel is either a substring of its containing signature label
// or an inclusive start and exclusive end offset within it.
type ParameterLabel struct {
	Simple       *string
	LabelOffsets *[2]uint32
}

func NewParameterLabelSimple(s string) ParameterLabel {
	return ParameterLabel{Simple: &s}
}

func NewParameterLabelOffsets(start, end uint32) ParameterLabel {
	return ParameterLabel{LabelOffsets: &[2]uint32{start, end}}
}

func (l ParameterLabel) MarshalJSON() ([]byte, error) {
	return marshalUnion("ParameterLabel", l.Simple, l.LabelOffsets)
}

func (l *ParameterLabel) UnmarshalJSON(data []byte) error {
	*l = ParameterLabel{}
	return decodeUnion("ParameterLabel", data, arm(&l.Simple), func(b []byte) error {
		var offsets []uint32
		if err := Unmarshal(b, &offsets); err != nil {
			return err
		}
		if len(offsets) != 2 {
			return decodeErrorf(ErrStructural, "", "expected 2 label offsets, got %d", len(offsets))
		}
		l.LabelOffsets = &[2]uint32{offsets[0], offsets[1]}
		return nil
	})
}
