//go:build proposed

package lsp

type clientCapabilitiesProposed struct {
	// The offset encodings supported by the client, in decreasing order of
	// preference, e.g. "utf-8" or "utf-16".
	OffsetEncoding []string `json:"offsetEncoding,omitzero"`
}

type textDocumentClientCapabilitiesProposed struct {
	// Capabilities specific to the textDocument/inlineCompletion request.
	InlineCompletion *InlineCompletionClientCapabilities `json:"inlineCompletion,omitempty"`
}

type serverCapabilitiesProposed struct {
	// The server provides inline completions.
	InlineCompletionProvider *OneOf[bool, InlineCompletionOptions] `json:"inlineCompletionProvider,omitempty"`
}

type initializeResultProposed struct {
	// The offset encoding the server picked from the client's list.
	OffsetEncoding *string `json:"offsetEncoding,omitempty"`
}

var InlineCompletionRequest = newRegistrableRequest[InlineCompletionParams, *InlineCompletionResponse, InlineCompletionRegistrationOptions]("textDocument/inlineCompletion")

type InlineCompletionClientCapabilities = DynamicRegistrationClientCapabilities

type InlineCompletionOptions struct {
	WorkDoneProgressOptions
}

type InlineCompletionRegistrationOptions struct {
	InlineCompletionOptions
	TextDocumentRegistrationOptions
	StaticRegistrationOptions
}

// InlineCompletionParams are the params of textDocument/inlineCompletion.
// See https://microsoft.github.io/language-server-protocol/specifications/lsp/3.18/specification#textDocument_inlineCompletion
type InlineCompletionParams struct {
	WorkDoneProgressParams
	TextDocumentPositionParams
	// Additional information about the context in which inline completions
	// were requested.
	Context InlineCompletionContext `json:"context"`
}

type InlineCompletionContext struct {
	// Describes how the inline completion was triggered.
	TriggerKind InlineCompletionTriggerKind `json:"triggerKind"`
	// Provides information about the currently selected item in the
	// autocomplete widget if it is visible.
	SelectedCompletionInfo *SelectedCompletionInfo `json:"selectedCompletionInfo,omitempty"`
}

// InlineCompletionTriggerKind describes how an inline completion request
// was triggered.
type InlineCompletionTriggerKind int32

const (
	// Completion was triggered explicitly by a user gesture.
	InlineCompletionTriggerKindInvoked InlineCompletionTriggerKind = 1
	// Completion was triggered automatically while editing.
	InlineCompletionTriggerKindAutomatic InlineCompletionTriggerKind = 2
)

var inlineCompletionTriggerKindTable = newEnumTable("InlineCompletionTriggerKind", map[InlineCompletionTriggerKind]string{
	InlineCompletionTriggerKindInvoked:   "INVOKED",
	InlineCompletionTriggerKindAutomatic: "AUTOMATIC",
})

func (k InlineCompletionTriggerKind) String() string {
	return inlineCompletionTriggerKindTable.format(k)
}

func ParseInlineCompletionTriggerKind(s string) (InlineCompletionTriggerKind, error) {
	return inlineCompletionTriggerKindTable.parse(s)
}

type SelectedCompletionInfo struct {
	// The range that will be replaced if this completion item is accepted.
	Range Range `json:"range"`
	// The text the range will be replaced with if this completion is
	// accepted.
	Text string `json:"text"`
}

// InlineCompletionResponse is a list of items or an item list.
type InlineCompletionResponse struct {
	Array []InlineCompletionItem
	List  *InlineCompletionList
}

func NewInlineCompletionArray(items []InlineCompletionItem) InlineCompletionResponse {
	if items == nil {
		items = []InlineCompletionItem{}
	}
	return InlineCompletionResponse{Array: items}
}

func NewInlineCompletionList(l InlineCompletionList) InlineCompletionResponse {
	return InlineCompletionResponse{List: &l}
}

func (r InlineCompletionResponse) MarshalJSON() ([]byte, error) {
	switch {
	case r.Array != nil:
		return Marshal(r.Array)
	case r.List != nil:
		return Marshal(r.List)
	}
	return nil, noAlternative("InlineCompletionResponse")
}

func (r *InlineCompletionResponse) UnmarshalJSON(data []byte) error {
	*r = InlineCompletionResponse{}
	var items []InlineCompletionItem
	return decodeUnion("InlineCompletionResponse", data,
		func(b []byte) error {
			if err := Unmarshal(b, &items); err != nil {
				return err
			}
			r.Array = items
			return nil
		},
		arm(&r.List),
	)
}

type InlineCompletionList struct {
	// The inline completion items.
	Items []InlineCompletionItem `json:"items"`
}

// InlineCompletionItem is an inline completion suggestion.
type InlineCompletionItem struct {
	// The text to replace the range with.
	InsertText string `json:"insertText"`
	// A text that is used to decide if this inline completion should be
	// shown.
	FilterText *string `json:"filterText,omitempty"`
	// The range to replace.
	Range *Range `json:"range,omitempty"`
	// An optional Command that is executed after inserting this
	// completion.
	Command *Command `json:"command,omitempty"`
	// The format of the insert text.
	InsertTextFormat *InsertTextFormat `json:"insertTextFormat,omitempty"`
}
