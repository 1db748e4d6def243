package lsp

// LanguageKind is a text document's language identifier.
type LanguageKind string

const (
	LanguageKindC          LanguageKind = "c"
	LanguageKindCPP        LanguageKind = "cpp"
	LanguageKindCSharp     LanguageKind = "csharp"
	LanguageKindCSS        LanguageKind = "css"
	LanguageKindGo         LanguageKind = "go"
	LanguageKindHTML       LanguageKind = "html"
	LanguageKindJava       LanguageKind = "java"
	LanguageKindJavaScript LanguageKind = "javascript"
	LanguageKindJSON       LanguageKind = "json"
	LanguageKindMarkdown   LanguageKind = "markdown"
	LanguageKindPython     LanguageKind = "python"
	LanguageKindRust       LanguageKind = "rust"
	LanguageKindShell      LanguageKind = "shellscript"
	LanguageKindTypeScript LanguageKind = "typescript"
	LanguageKindYAML       LanguageKind = "yaml"
)

// TextDocumentItem transfers a text document from the client to the
// server.
type TextDocumentItem struct {
	URI        DocumentURI  `json:"uri"`
	LanguageID LanguageKind `json:"languageId"`
	// The version number of this document. It strictly increases after each
	// change, including undo/redo.
	Version int32  `json:"version"`
	Text    string `json:"text"`
}

func NewTextDocumentItem(uri DocumentURI, languageID LanguageKind, version int32, text string) TextDocumentItem {
	return TextDocumentItem{URI: uri, LanguageID: languageID, Version: version, Text: text}
}

type TextDocumentIdentifier struct {
	URI DocumentURI `json:"uri"`
}

func NewTextDocumentIdentifier(uri DocumentURI) TextDocumentIdentifier {
	return TextDocumentIdentifier{URI: uri}
}

// VersionedTextDocumentIdentifier denotes a specific version of a text
// document. It usually flows from the client to the server.
type VersionedTextDocumentIdentifier struct {
	TextDocumentIdentifier
	Version int32 `json:"version"`
}

func NewVersionedTextDocumentIdentifier(uri DocumentURI, version int32) VersionedTextDocumentIdentifier {
	return VersionedTextDocumentIdentifier{TextDocumentIdentifier{uri}, version}
}

// OptionalVersionedTextDocumentIdentifier optionally denotes a specific
// version of a text document. It usually flows from the server to the
// client.
type OptionalVersionedTextDocumentIdentifier struct {
	TextDocumentIdentifier
	// The server sends null when the file is not open in the editor and the
	// content on disk is the master.
	Version *int32 `json:"version"`
}

func NewOptionalVersionedTextDocumentIdentifier(uri DocumentURI, version int32) OptionalVersionedTextDocumentIdentifier {
	return OptionalVersionedTextDocumentIdentifier{TextDocumentIdentifier{uri}, &version}
}

type TextDocumentPositionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
}

func NewTextDocumentPositionParams(doc TextDocumentIdentifier, pos Position) TextDocumentPositionParams {
	return TextDocumentPositionParams{TextDocument: doc, Position: pos}
}

// DocumentFilter denotes a document through properties like language,
// scheme or pattern, e.g. `{ language: 'json', pattern: '**/package.json' }`.
type DocumentFilter struct {
	Language *string `json:"language,omitempty"`
	// A URI scheme, like `file` or `untitled`.
	Scheme *string `json:"scheme,omitempty"`
	// A glob pattern, like `*.{ts,js}`.
	Pattern *string `json:"pattern,omitempty"`
}

type DocumentSelector = []DocumentFilter

// TextEdit is a textual edit applicable to a text document. To insert
// text, use a range where start equals end. To delete, use an empty
// NewText.
type TextEdit struct {
	Range   Range  `json:"range"`
	NewText string `json:"newText"`
}

func NewTextEdit(r Range, newText string) TextEdit {
	return TextEdit{Range: r, NewText: newText}
}

// ChangeAnnotationIdentifier refers to a change annotation managed by a
// workspace edit.
type ChangeAnnotationIdentifier = string

// AnnotatedTextEdit is a text edit with a change annotation.
type AnnotatedTextEdit struct {
	TextEdit
	AnnotationID ChangeAnnotationIdentifier `json:"annotationId"`
}

// TextDocumentEdit describes textual changes on a single text document.
type TextDocumentEdit struct {
	TextDocument OptionalVersionedTextDocumentIdentifier `json:"textDocument"`
	// Annotated edits require the client capability
	// workspace.workspaceEdit.changeAnnotationSupport.
	Edits []OneOf[AnnotatedTextEdit, TextEdit] `json:"edits"`
}

// Command is a reference to a command, with a title used to represent it in
// the UI.
type Command struct {
	Title string `json:"title"`
	// The identifier of the actual command handler.
	Command   string   `json:"command"`
	Arguments []LSPAny `json:"arguments,omitzero"`
}

func NewCommand(title, command string, arguments []LSPAny) Command {
	return Command{Title: title, Command: command, Arguments: arguments}
}

type TextDocumentRegistrationOptions struct {
	// A document selector to identify the scope of the registration. If set
	// to null the document selector provided on the client side will be
	// used.
	DocumentSelector DocumentSelector `json:"documentSelector" lsp:"nullable"`
}

// StaticRegistrationOptions carry the id used to unregister a request
// again.
type StaticRegistrationOptions struct {
	ID *string `json:"id,omitempty"`
}

type StaticTextDocumentRegistrationOptions struct {
	DocumentSelector DocumentSelector `json:"documentSelector" lsp:"nullable"`
	ID               *string          `json:"id,omitempty"`
}

type DynamicRegistrationClientCapabilities struct {
	// Whether the feature supports dynamic registration.
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
}

type GotoCapability struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	// The client supports additional metadata in the form of definition
	// links.
	LinkSupport *bool `json:"linkSupport,omitempty"`
}
