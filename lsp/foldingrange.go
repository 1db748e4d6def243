package lsp

type FoldingRangeParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	WorkDoneProgressParams
	PartialResultParams
}

type FoldingProviderOptions struct{}

// FoldingRangeProviderCapability is the foldingRangeProvider server
// capability.
type FoldingRangeProviderCapability struct {
	Simple          *bool
	FoldingProvider *FoldingProviderOptions
	Options         *StaticTextDocumentColorProviderOptions
}

func NewFoldingRangeProviderSimple(b bool) FoldingRangeProviderCapability {
	return FoldingRangeProviderCapability{Simple: &b}
}

func NewFoldingRangeProviderOptions(o StaticTextDocumentColorProviderOptions) FoldingRangeProviderCapability {
	return FoldingRangeProviderCapability{Options: &o}
}

func (c FoldingRangeProviderCapability) MarshalJSON() ([]byte, error) {
	return marshalUnion("FoldingRangeProviderCapability", c.Simple, c.FoldingProvider, c.Options)
}

func (c *FoldingRangeProviderCapability) UnmarshalJSON(data []byte) error {
	*c = FoldingRangeProviderCapability{}
	return decodeProviderUnion("FoldingRangeProviderCapability", data, &c.Simple, &c.FoldingProvider, &c.Options)
}

type FoldingRangeKindCapability struct {
	// The folding range kind values the client supports. Unknown values
	// are handled gracefully.
	ValueSet []FoldingRangeKind `json:"valueSet,omitzero"`
}

type FoldingRangeCapability struct {
	// The client supports setting collapsedText on folding ranges.
	CollapsedText *bool `json:"collapsedText,omitempty"`
}

type FoldingRangeClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	// The maximum number of folding ranges that the client prefers to
	// receive per document. A hint, servers are free to follow the limit.
	RangeLimit *uint32 `json:"rangeLimit,omitempty"`
	// The client only folds complete lines; startCharacter and endCharacter
	// are ignored.
	LineFoldingOnly  *bool                       `json:"lineFoldingOnly,omitempty"`
	FoldingRangeKind *FoldingRangeKindCapability `json:"foldingRangeKind,omitempty"`
	FoldingRange     *FoldingRangeCapability     `json:"foldingRange,omitempty"`
}

type FoldingRangeKind string

const (
	FoldingRangeKindComment FoldingRangeKind = "comment"
	FoldingRangeKindImports FoldingRangeKind = "imports"
	FoldingRangeKindRegion  FoldingRangeKind = "region"
)

func (k *FoldingRangeKind) UnmarshalJSON(data []byte) error {
	v, err := decodeClosedString(data, "FoldingRangeKind",
		FoldingRangeKindComment, FoldingRangeKindImports, FoldingRangeKindRegion)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// FoldingRange represents a folding range. Line and character positions
// are zero-based.
type FoldingRange struct {
	StartLine uint32 `json:"startLine"`
	// When missing the range starts at the line's end.
	StartCharacter *uint32 `json:"startCharacter,omitempty"`
	EndLine        uint32  `json:"endLine"`
	// When missing the range ends at the line's end.
	EndCharacter *uint32           `json:"endCharacter,omitempty"`
	Kind         *FoldingRangeKind `json:"kind,omitempty"`
	// The text the client should show when the range is collapsed.
	CollapsedText *string `json:"collapsedText,omitempty"`
}

type SelectionRangeClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
}

type SelectionRangeOptions struct {
	WorkDoneProgressOptions
}

type SelectionRangeRegistrationOptions struct {
	SelectionRangeOptions
	StaticTextDocumentRegistrationOptions
}

// SelectionRangeProviderCapability is the selectionRangeProvider server
// capability.
type SelectionRangeProviderCapability struct {
	Simple              *bool
	Options             *SelectionRangeOptions
	RegistrationOptions *SelectionRangeRegistrationOptions
}

func NewSelectionRangeProviderSimple(b bool) SelectionRangeProviderCapability {
	return SelectionRangeProviderCapability{Simple: &b}
}

func (c SelectionRangeProviderCapability) MarshalJSON() ([]byte, error) {
	return marshalUnion("SelectionRangeProviderCapability", c.Simple, c.Options, c.RegistrationOptions)
}

func (c *SelectionRangeProviderCapability) UnmarshalJSON(data []byte) error {
	*c = SelectionRangeProviderCapability{}
	return decodeProviderUnion("SelectionRangeProviderCapability", data, &c.Simple, &c.Options, &c.RegistrationOptions)
}

type SelectionRangeParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	// The positions inside the text document.
	Positions []Position `json:"positions"`
	WorkDoneProgressParams
	PartialResultParams
}

// SelectionRange is a range around the cursor that the user might be
// interested in selecting.
type SelectionRange struct {
	Range Range `json:"range"`
	// The parent selection range containing this range.
	Parent *SelectionRange `json:"parent,omitempty"`
}

type LinkedEditingRangeClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
}

type LinkedEditingRangeParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
}

type LinkedEditingRangeOptions struct {
	WorkDoneProgressOptions
}

type LinkedEditingRangeRegistrationOptions struct {
	TextDocumentRegistrationOptions
	LinkedEditingRangeOptions
	StaticRegistrationOptions
}

// LinkedEditingRangeServerCapabilities is the linkedEditingRangeProvider
// server capability.
type LinkedEditingRangeServerCapabilities struct {
	Simple              *bool
	Options             *LinkedEditingRangeOptions
	RegistrationOptions *LinkedEditingRangeRegistrationOptions
}

func NewLinkedEditingRangeProviderSimple(b bool) LinkedEditingRangeServerCapabilities {
	return LinkedEditingRangeServerCapabilities{Simple: &b}
}

func (c LinkedEditingRangeServerCapabilities) MarshalJSON() ([]byte, error) {
	return marshalUnion("LinkedEditingRangeServerCapabilities", c.Simple, c.Options, c.RegistrationOptions)
}

func (c *LinkedEditingRangeServerCapabilities) UnmarshalJSON(data []byte) error {
	*c = LinkedEditingRangeServerCapabilities{}
	return decodeProviderUnion("LinkedEditingRangeServerCapabilities", data, &c.Simple, &c.Options, &c.RegistrationOptions)
}

type LinkedEditingRanges struct {
	// A list of ranges that can be renamed together. The ranges must have
	// identical length and contain identical text content and must not
	// overlap.
	Ranges []Range `json:"ranges"`
	// An optional word pattern (regular expression) that describes valid
	// contents for the given ranges.
	WordPattern *string `json:"wordPattern,omitempty"`
}
