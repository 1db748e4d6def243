package lsp

import "encoding/json"

// InsertTextFormat defines whether the insert text in a completion item
// is interpreted as plain text or a snippet.
type InsertTextFormat int32

const (
	InsertTextFormatPlainText InsertTextFormat = 1
	// A snippet can define tab stops and placeholders with `$1`, `$2` and
	// `${3:foo}`. `$0` defines the final tab stop.
	InsertTextFormatSnippet InsertTextFormat = 2
)

var insertTextFormatTable = newEnumTable("InsertTextFormat", map[InsertTextFormat]string{
	InsertTextFormatPlainText: "PLAIN_TEXT",
	InsertTextFormatSnippet:   "SNIPPET",
})

func (f InsertTextFormat) String() string { return insertTextFormatTable.format(f) }

func ParseInsertTextFormat(s string) (InsertTextFormat, error) {
	return insertTextFormatTable.parse(s)
}

// CompletionItemKind is the kind of a completion entry.
type CompletionItemKind int32

const (
	CompletionItemKindText          CompletionItemKind = 1
	CompletionItemKindMethod        CompletionItemKind = 2
	CompletionItemKindFunction      CompletionItemKind = 3
	CompletionItemKindConstructor   CompletionItemKind = 4
	CompletionItemKindField         CompletionItemKind = 5
	CompletionItemKindVariable      CompletionItemKind = 6
	CompletionItemKindClass         CompletionItemKind = 7
	CompletionItemKindInterface     CompletionItemKind = 8
	CompletionItemKindModule        CompletionItemKind = 9
	CompletionItemKindProperty      CompletionItemKind = 10
	CompletionItemKindUnit          CompletionItemKind = 11
	CompletionItemKindValue         CompletionItemKind = 12
	CompletionItemKindEnum          CompletionItemKind = 13
	CompletionItemKindKeyword       CompletionItemKind = 14
	CompletionItemKindSnippet       CompletionItemKind = 15
	CompletionItemKindColor         CompletionItemKind = 16
	CompletionItemKindFile          CompletionItemKind = 17
	CompletionItemKindReference     CompletionItemKind = 18
	CompletionItemKindFolder        CompletionItemKind = 19
	CompletionItemKindEnumMember    CompletionItemKind = 20
	CompletionItemKindConstant      CompletionItemKind = 21
	CompletionItemKindStruct        CompletionItemKind = 22
	CompletionItemKindEvent         CompletionItemKind = 23
	CompletionItemKindOperator      CompletionItemKind = 24
	CompletionItemKindTypeParameter CompletionItemKind = 25
)

var completionItemKindTable = newEnumTable("CompletionItemKind", map[CompletionItemKind]string{
	CompletionItemKindText:          "TEXT",
	CompletionItemKindMethod:        "METHOD",
	CompletionItemKindFunction:      "FUNCTION",
	CompletionItemKindConstructor:   "CONSTRUCTOR",
	CompletionItemKindField:         "FIELD",
	CompletionItemKindVariable:      "VARIABLE",
	CompletionItemKindClass:         "CLASS",
	CompletionItemKindInterface:     "INTERFACE",
	CompletionItemKindModule:        "MODULE",
	CompletionItemKindProperty:      "PROPERTY",
	CompletionItemKindUnit:          "UNIT",
	CompletionItemKindValue:         "VALUE",
	CompletionItemKindEnum:          "ENUM",
	CompletionItemKindKeyword:       "KEYWORD",
	CompletionItemKindSnippet:       "SNIPPET",
	CompletionItemKindColor:         "COLOR",
	CompletionItemKindFile:          "FILE",
	CompletionItemKindReference:     "REFERENCE",
	CompletionItemKindFolder:        "FOLDER",
	CompletionItemKindEnumMember:    "ENUM_MEMBER",
	CompletionItemKindConstant:      "CONSTANT",
	CompletionItemKindStruct:        "STRUCT",
	CompletionItemKindEvent:         "EVENT",
	CompletionItemKindOperator:      "OPERATOR",
	CompletionItemKindTypeParameter: "TYPE_PARAMETER",
})

func (k CompletionItemKind) String() string { return completionItemKindTable.format(k) }

func ParseCompletionItemKind(s string) (CompletionItemKind, error) {
	return completionItemKindTable.parse(s)
}

// InsertTextMode says how whitespace and indentation is handled during
// completion item insertion.
type InsertTextMode int32

const (
	// The insertion or replace string is taken as it is.
	InsertTextModeAsIs InsertTextMode = 1
	// The editor adjusts leading whitespace of new lines so that they match
	// the indentation up to the cursor of the line for which the item is
	// accepted.
	InsertTextModeAdjustIndentation InsertTextMode = 2
)

var insertTextModeTable = newEnumTable("InsertTextMode", map[InsertTextMode]string{
	InsertTextModeAsIs:              "AS_IS",
	InsertTextModeAdjustIndentation: "ADJUST_INDENTATION",
})

func (m InsertTextMode) String() string { return insertTextModeTable.format(m) }

func ParseInsertTextMode(s string) (InsertTextMode, error) { return insertTextModeTable.parse(s) }

type CompletionItemTag int32

const CompletionItemTagDeprecated CompletionItemTag = 1

var completionItemTagTable = newEnumTable("CompletionItemTag", map[CompletionItemTag]string{
	CompletionItemTagDeprecated: "DEPRECATED",
})

func (t CompletionItemTag) String() string { return completionItemTagTable.format(t) }

func ParseCompletionItemTag(s string) (CompletionItemTag, error) {
	return completionItemTagTable.parse(s)
}

type CompletionItemCapability struct {
	// Client supports snippets as insert text.
	SnippetSupport          *bool        `json:"snippetSupport,omitempty"`
	CommitCharactersSupport *bool        `json:"commitCharactersSupport,omitempty"`
	DocumentationFormat     []MarkupKind `json:"documentationFormat,omitzero"`
	DeprecatedSupport       *bool        `json:"deprecatedSupport,omitempty"`
	PreselectSupport        *bool        `json:"preselectSupport,omitempty"`
	// Clients supporting tags have to handle unknown tags gracefully.
	TagSupport *TagSupport[CompletionItemTag] `json:"tagSupport,omitempty"`
	// Client supports insert replace edit to control different behavior if
	// a completion item is inserted in the text or should replace text.
	InsertReplaceSupport  *bool                                   `json:"insertReplaceSupport,omitempty"`
	ResolveSupport        *CompletionItemCapabilityResolveSupport `json:"resolveSupport,omitempty"`
	InsertTextModeSupport *InsertTextModeSupport                  `json:"insertTextModeSupport,omitempty"`
	LabelDetailsSupport   *bool                                   `json:"labelDetailsSupport,omitempty"`
}

// UnmarshalJSON accepts tagSupport as a bare boolean like
// PublishDiagnosticsClientCapabilities does.
func (c *CompletionItemCapability) UnmarshalJSON(data []byte) error {
	type plain CompletionItemCapability
	var aux struct {
		plain
		TagSupport json.RawMessage `json:"tagSupport,omitempty"`
	}
	if err := Unmarshal(data, &aux); err != nil {
		return err
	}
	ts, err := decodeTagSupportCompat[CompletionItemTag](aux.TagSupport)
	if err != nil {
		return err
	}
	*c = CompletionItemCapability(aux.plain)
	c.TagSupport = ts
	return nil
}

type CompletionItemCapabilityResolveSupport struct {
	// The properties that a client can resolve lazily.
	Properties []string `json:"properties"`
}

type InsertTextModeSupport struct {
	ValueSet []InsertTextMode `json:"valueSet"`
}

type CompletionItemKindCapability struct {
	// The client guarantees that it handles values outside its set
	// gracefully. When absent the client only supports the kinds from Text
	// to Reference.
	ValueSet []CompletionItemKind `json:"valueSet,omitzero"`
}

type CompletionListCapability struct {
	// The client supports the following itemDefaults on a completion list.
	ItemDefaults []string `json:"itemDefaults,omitzero"`
}

type CompletionClientCapabilities struct {
	DynamicRegistration *bool                         `json:"dynamicRegistration,omitempty"`
	CompletionItem      *CompletionItemCapability     `json:"completionItem,omitempty"`
	CompletionItemKind  *CompletionItemKindCapability `json:"completionItemKind,omitempty"`
	// The client supports sending additional context information for a
	// textDocument/completion request.
	ContextSupport *bool                     `json:"contextSupport,omitempty"`
	InsertTextMode *InsertTextMode           `json:"insertTextMode,omitempty"`
	CompletionList *CompletionListCapability `json:"completionList,omitempty"`
}

// InsertReplaceEdit is a special text edit to provide an insert and a
// replace operation.
type InsertReplaceEdit struct {
	NewText string `json:"newText"`
	// The range if the insert is requested.
	Insert Range `json:"insert"`
	// The range if the replace is requested.
	Replace Range `json:"replace"`
}

type CompletionTextEdit struct {
	Edit             *TextEdit
	InsertAndReplace *InsertReplaceEdit
}

func NewCompletionTextEdit(e TextEdit) CompletionTextEdit {
	return CompletionTextEdit{Edit: &e}
}

func NewCompletionInsertReplaceEdit(e InsertReplaceEdit) CompletionTextEdit {
	return CompletionTextEdit{InsertAndReplace: &e}
}

func (e CompletionTextEdit) MarshalJSON() ([]byte, error) {
	return marshalUnion("CompletionTextEdit", e.Edit, e.InsertAndReplace)
}

func (e *CompletionTextEdit) UnmarshalJSON(data []byte) error {
	*e = CompletionTextEdit{}
	return decodeUnion("CompletionTextEdit", data, arm(&e.Edit), arm(&e.InsertAndReplace))
}

type CompletionOptions struct {
	WorkDoneProgressOptions
	// The server provides support to resolve additional information for a
	// completion item.
	ResolveProvider *bool `json:"resolveProvider,omitempty"`
	// Characters that trigger completion automatically.
	TriggerCharacters []string `json:"triggerCharacters,omitzero"`
	// Characters that commit all completion items. Per-item commit
	// characters win.
	AllCommitCharacters []string                         `json:"allCommitCharacters,omitzero"`
	CompletionItem      *CompletionOptionsCompletionItem `json:"completionItem,omitempty"`
}

type CompletionOptionsCompletionItem struct {
	// The server has support for completion item label details.
	LabelDetailsSupport *bool `json:"labelDetailsSupport,omitempty"`
}

type CompletionRegistrationOptions struct {
	TextDocumentRegistrationOptions
	CompletionOptions
}

// CompletionResponse is either a list of completion items or a completion
// list.
type CompletionResponse struct {
	Array []CompletionItem
	List  *CompletionList
}

func NewCompletionResponseArray(items []CompletionItem) CompletionResponse {
	if items == nil {
		items = []CompletionItem{}
	}
	return CompletionResponse{Array: items}
}

func NewCompletionResponseList(l CompletionList) CompletionResponse {
	return CompletionResponse{List: &l}
}

func (r CompletionResponse) MarshalJSON() ([]byte, error) {
	switch {
	case r.Array != nil:
		return Marshal(r.Array)
	case r.List != nil:
		return Marshal(r.List)
	}
	return nil, noAlternative("CompletionResponse")
}

func (r *CompletionResponse) UnmarshalJSON(data []byte) error {
	*r = CompletionResponse{}
	var items []CompletionItem
	return decodeUnion("CompletionResponse", data,
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

type CompletionParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
	// Only available if the client advertises contextSupport.
	Context *CompletionContext `json:"context,omitempty"`
}

type CompletionContext struct {
	TriggerKind CompletionTriggerKind `json:"triggerKind"`
	// Set when TriggerKind is CompletionTriggerKindTriggerCharacter.
	TriggerCharacter *string `json:"triggerCharacter,omitempty"`
}

// CompletionTriggerKind says how a completion was triggered.
type CompletionTriggerKind int32

const (
	CompletionTriggerKindInvoked                         CompletionTriggerKind = 1
	CompletionTriggerKindTriggerCharacter                CompletionTriggerKind = 2
	CompletionTriggerKindTriggerForIncompleteCompletions CompletionTriggerKind = 3
)

var completionTriggerKindTable = newEnumTable("CompletionTriggerKind", map[CompletionTriggerKind]string{
	CompletionTriggerKindInvoked:                         "INVOKED",
	CompletionTriggerKindTriggerCharacter:                "TRIGGER_CHARACTER",
	CompletionTriggerKindTriggerForIncompleteCompletions: "TRIGGER_FOR_INCOMPLETE_COMPLETIONS",
})

func (k CompletionTriggerKind) String() string { return completionTriggerKindTable.format(k) }

func ParseCompletionTriggerKind(s string) (CompletionTriggerKind, error) {
	return completionTriggerKindTable.parse(s)
}

// CompletionList represents a collection of completion items to be
// presented in the editor.
type CompletionList struct {
	// This list is not complete. Further typing should result in
	// recomputing this list.
	IsIncomplete bool                        `json:"isIncomplete"`
	ItemDefaults *CompletionListItemDefaults `json:"itemDefaults,omitempty"`
	Items        []CompletionItem            `json:"items"`
}

// CompletionListItemDefaults are used by items that don't provide the
// respective property themselves.
type CompletionListItemDefaults struct {
	CommitCharacters []string                          `json:"commitCharacters,omitzero"`
	EditRange        *OneOf[Range, InsertReplaceRange] `json:"editRange,omitempty"`
	InsertTextFormat *InsertTextFormat                 `json:"insertTextFormat,omitempty"`
	InsertTextMode   *InsertTextMode                   `json:"insertTextMode,omitempty"`
	Data             LSPAny                            `json:"data,omitempty"`
}

type InsertReplaceRange struct {
	Insert  Range `json:"insert"`
	Replace Range `json:"replace"`
}

type CompletionItem struct {
	// The label of this completion item. By default also the text that is
	// inserted when selecting this completion.
	Label        string                      `json:"label"`
	LabelDetails *CompletionItemLabelDetails `json:"labelDetails,omitempty"`
	Kind         *CompletionItemKind         `json:"kind,omitempty"`
	// Additional information for the label, like type or symbol
	// information.
	Detail        *string        `json:"detail,omitempty"`
	Documentation *Documentation `json:"documentation,omitempty"`
	// Deprecated: use Tags instead.
	Deprecated *bool `json:"deprecated,omitempty"`
	// Select this item when showing.
	Preselect *bool `json:"preselect,omitempty"`
	// Used when comparing this item with other items. When absent the
	// label is used.
	SortText *string `json:"sortText,omitempty"`
	// Used when filtering a set of completion items. When absent the label
	// is used.
	FilterText       *string           `json:"filterText,omitempty"`
	InsertText       *string           `json:"insertText,omitempty"`
	InsertTextFormat *InsertTextFormat `json:"insertTextFormat,omitempty"`
	InsertTextMode   *InsertTextMode   `json:"insertTextMode,omitempty"`
	// An edit which is applied to a document when selecting this
	// completion. When set, InsertText is ignored.
	TextEdit *CompletionTextEdit `json:"textEdit,omitempty"`
	// Edits applied when selecting this completion that are unrelated to
	// the main edit, e.g. adding an import statement.
	AdditionalTextEdits []TextEdit `json:"additionalTextEdits,omitzero"`
	// A command executed after inserting this completion.
	Command          *Command            `json:"command,omitempty"`
	CommitCharacters []string            `json:"commitCharacters,omitzero"`
	Data             LSPAny              `json:"data,omitempty"`
	Tags             []CompletionItemTag `json:"tags,omitzero"`
}

// NewCompletionItemSimple creates an item with only a label and a detail.
func NewCompletionItemSimple(label, detail string) CompletionItem {
	return CompletionItem{Label: label, Detail: &detail}
}

// CompletionItemLabelDetails carry additional details for a completion
// item label.
type CompletionItemLabelDetails struct {
	// Rendered less prominently directly after the label, without spacing.
	// Should be used for function signatures or type annotations.
	Detail *string `json:"detail,omitempty"`
	// Rendered less prominently after Detail. Should be used for fully
	// qualified names or file paths.
	Description *string `json:"description,omitempty"`
}
