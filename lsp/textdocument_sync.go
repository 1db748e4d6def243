package lsp

// TextDocumentSyncKind defines how the host (editor) should sync document
// changes to the language server.
type TextDocumentSyncKind int32

const (
	// Documents should not be synced at all.
	TextDocumentSyncKindNone TextDocumentSyncKind = 0
	// Documents are synced by always sending the full content.
	TextDocumentSyncKindFull TextDocumentSyncKind = 1
	// Documents are synced by sending the full content on open. After that
	// only incremental updates to the document are sent.
	TextDocumentSyncKindIncremental TextDocumentSyncKind = 2
)

var textDocumentSyncKindTable = newEnumTable("TextDocumentSyncKind", map[TextDocumentSyncKind]string{
	TextDocumentSyncKindNone:        "NONE",
	TextDocumentSyncKindFull:        "FULL",
	TextDocumentSyncKindIncremental: "INCREMENTAL",
})

func (k TextDocumentSyncKind) String() string { return textDocumentSyncKindTable.format(k) }

func ParseTextDocumentSyncKind(s string) (TextDocumentSyncKind, error) {
	return textDocumentSyncKindTable.parse(s)
}

type TextDocumentSyncClientCapabilities struct {
	// Whether text document synchronization supports dynamic registration.
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	// The client supports sending will save notifications.
	WillSave *bool `json:"willSave,omitempty"`
	// The client supports sending a will save request and waits for a
	// response providing text edits which will be applied to the document
	// before it is saved.
	WillSaveWaitUntil *bool `json:"willSaveWaitUntil,omitempty"`
	// The client supports did save notifications.
	DidSave *bool `json:"didSave,omitempty"`
}

type SaveOptions struct {
	// The client is supposed to include the content on save.
	IncludeText *bool `json:"includeText,omitempty"`
}

// TextDocumentSyncSaveOptions is either a boolean or save options.
type TextDocumentSyncSaveOptions struct {
	Supported   *bool
	SaveOptions *SaveOptions
}

func NewTextDocumentSyncSaveSupported(b bool) TextDocumentSyncSaveOptions {
	return TextDocumentSyncSaveOptions{Supported: &b}
}

func NewTextDocumentSyncSaveOptions(o SaveOptions) TextDocumentSyncSaveOptions {
	return TextDocumentSyncSaveOptions{SaveOptions: &o}
}

func (o TextDocumentSyncSaveOptions) MarshalJSON() ([]byte, error) {
	return marshalUnion("TextDocumentSyncSaveOptions", o.Supported, o.SaveOptions)
}

func (o *TextDocumentSyncSaveOptions) UnmarshalJSON(data []byte) error {
	*o = TextDocumentSyncSaveOptions{}
	return decodeUnion("TextDocumentSyncSaveOptions", data, arm(&o.Supported), arm(&o.SaveOptions))
}

type TextDocumentSyncOptions struct {
	// Open and close notifications are sent to the server.
	OpenClose *bool `json:"openClose,omitempty"`
	// Change notifications are sent to the server.
	Change            *TextDocumentSyncKind        `json:"change,omitempty"`
	WillSave          *bool                        `json:"willSave,omitempty"`
	WillSaveWaitUntil *bool                        `json:"willSaveWaitUntil,omitempty"`
	Save              *TextDocumentSyncSaveOptions `json:"save,omitempty"`
}

// TextDocumentSyncCapability is a sync kind or sync options.
type TextDocumentSyncCapability struct {
	Kind    *TextDocumentSyncKind
	Options *TextDocumentSyncOptions
}

func NewTextDocumentSyncKind(k TextDocumentSyncKind) TextDocumentSyncCapability {
	return TextDocumentSyncCapability{Kind: &k}
}

func NewTextDocumentSyncOptions(o TextDocumentSyncOptions) TextDocumentSyncCapability {
	return TextDocumentSyncCapability{Options: &o}
}

func (c TextDocumentSyncCapability) MarshalJSON() ([]byte, error) {
	return marshalUnion("TextDocumentSyncCapability", c.Kind, c.Options)
}

func (c *TextDocumentSyncCapability) UnmarshalJSON(data []byte) error {
	*c = TextDocumentSyncCapability{}
	return decodeUnion("TextDocumentSyncCapability", data, arm(&c.Kind), arm(&c.Options))
}

type DidOpenTextDocumentParams struct {
	// The document that was opened.
	TextDocument TextDocumentItem `json:"textDocument"`
}

type DidChangeTextDocumentParams struct {
	// The document that did change. The version number points to the
	// version after all provided content changes have been applied.
	TextDocument VersionedTextDocumentIdentifier `json:"textDocument"`
	// The content changes, applied in order.
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

// TextDocumentContentChangeEvent is an event describing a change to a text
// document. If only a text is provided it is considered to be the full
// content of the document.
type TextDocumentContentChangeEvent struct {
	// The range of the document that changed.
	Range *Range `json:"range,omitempty"`
	// Deprecated: use Range instead.
	RangeLength *uint32 `json:"rangeLength,omitempty"`
	// The new text of the range or the document.
	Text string `json:"text"`
}

// TextDocumentChangeRegistrationOptions describes options to be used when
// registering for text document change events.
type TextDocumentChangeRegistrationOptions struct {
	DocumentSelector DocumentSelector `json:"documentSelector" lsp:"nullable"`
	// How documents are synced to the server.
	SyncKind TextDocumentSyncKind `json:"syncKind"`
}

type WillSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	// The reason why the document is saved.
	Reason TextDocumentSaveReason `json:"reason"`
}

// TextDocumentSaveReason represents reasons why a text document is saved.
type TextDocumentSaveReason int32

const (
	// Manually triggered, e.g. by the user pressing save, by starting
	// debugging, or by an API call.
	TextDocumentSaveReasonManual TextDocumentSaveReason = 1
	// Automatic after a delay.
	TextDocumentSaveReasonAfterDelay TextDocumentSaveReason = 2
	// When the editor lost focus.
	TextDocumentSaveReasonFocusOut TextDocumentSaveReason = 3
)

var textDocumentSaveReasonTable = newEnumTable("TextDocumentSaveReason", map[TextDocumentSaveReason]string{
	TextDocumentSaveReasonManual:     "MANUAL",
	TextDocumentSaveReasonAfterDelay: "AFTER_DELAY",
	TextDocumentSaveReasonFocusOut:   "FOCUS_OUT",
})

func (r TextDocumentSaveReason) String() string { return textDocumentSaveReasonTable.format(r) }

func ParseTextDocumentSaveReason(s string) (TextDocumentSaveReason, error) {
	return textDocumentSaveReasonTable.parse(s)
}

type DidCloseTextDocumentParams struct {
	// The document that was closed.
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

type DidSaveTextDocumentParams struct {
	// The document that was saved.
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	// Optional the content when saved. Depends on the includeText value
	// when the save notification was requested.
	Text *string `json:"text,omitempty"`
}

type TextDocumentSaveRegistrationOptions struct {
	// The client is supposed to include the content on save.
	IncludeText *bool `json:"includeText,omitempty"`
	TextDocumentRegistrationOptions
}
