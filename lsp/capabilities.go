package lsp

// ClientCapabilities are the capabilities a client announces in the
// initialize request.
// See https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification#clientCapabilities
type ClientCapabilities struct {
	// Workspace specific client capabilities.
	Workspace *WorkspaceClientCapabilities `json:"workspace,omitempty"`
	// Text document specific client capabilities.
	TextDocument *TextDocumentClientCapabilities `json:"textDocument,omitempty"`
	// Capabilities specific to the notebook document support.
	NotebookDocument *NotebookDocumentClientCapabilities `json:"notebookDocument,omitempty"`
	// Window specific client capabilities.
	Window *WindowClientCapabilities `json:"window,omitempty"`
	// General client capabilities.
	General *GeneralClientCapabilities `json:"general,omitempty"`
	// Experimental client capabilities.
	Experimental LSPAny `json:"experimental,omitempty"`

	clientCapabilitiesProposed
}

type TextDocumentClientCapabilities struct {
	Synchronization *TextDocumentSyncClientCapabilities `json:"synchronization,omitempty"`
	// Capabilities specific to the textDocument/completion request.
	Completion *CompletionClientCapabilities `json:"completion,omitempty"`
	// Capabilities specific to the textDocument/hover request.
	Hover *HoverClientCapabilities `json:"hover,omitempty"`
	// Capabilities specific to the textDocument/signatureHelp request.
	SignatureHelp *SignatureHelpClientCapabilities `json:"signatureHelp,omitempty"`
	// Capabilities specific to the textDocument/references request.
	References *ReferenceClientCapabilities `json:"references,omitempty"`
	// Capabilities specific to the textDocument/documentHighlight request.
	DocumentHighlight *DocumentHighlightClientCapabilities `json:"documentHighlight,omitempty"`
	// Capabilities specific to the textDocument/documentSymbol request.
	DocumentSymbol *DocumentSymbolClientCapabilities `json:"documentSymbol,omitempty"`

	Formatting       *DocumentFormattingClientCapabilities       `json:"formatting,omitempty"`
	RangeFormatting  *DocumentRangeFormattingClientCapabilities  `json:"rangeFormatting,omitempty"`
	OnTypeFormatting *DocumentOnTypeFormattingClientCapabilities `json:"onTypeFormatting,omitempty"`

	Declaration    *GotoCapability `json:"declaration,omitempty"`
	Definition     *GotoCapability `json:"definition,omitempty"`
	TypeDefinition *GotoCapability `json:"typeDefinition,omitempty"`
	Implementation *GotoCapability `json:"implementation,omitempty"`

	CodeAction         *CodeActionClientCapabilities         `json:"codeAction,omitempty"`
	CodeLens           *CodeLensClientCapabilities           `json:"codeLens,omitempty"`
	DocumentLink       *DocumentLinkClientCapabilities       `json:"documentLink,omitempty"`
	ColorProvider      *DocumentColorClientCapabilities      `json:"colorProvider,omitempty"`
	Rename             *RenameClientCapabilities             `json:"rename,omitempty"`
	PublishDiagnostics *PublishDiagnosticsClientCapabilities `json:"publishDiagnostics,omitempty"`
	FoldingRange       *FoldingRangeClientCapabilities       `json:"foldingRange,omitempty"`
	SelectionRange     *SelectionRangeClientCapabilities     `json:"selectionRange,omitempty"`
	LinkedEditingRange *LinkedEditingRangeClientCapabilities `json:"linkedEditingRange,omitempty"`
	CallHierarchy      *CallHierarchyClientCapabilities      `json:"callHierarchy,omitempty"`
	SemanticTokens     *SemanticTokensClientCapabilities     `json:"semanticTokens,omitempty"`
	Moniker            *MonikerClientCapabilities            `json:"moniker,omitempty"`
	TypeHierarchy      *TypeHierarchyClientCapabilities      `json:"typeHierarchy,omitempty"`
	InlineValue        *InlineValueClientCapabilities        `json:"inlineValue,omitempty"`
	InlayHint          *InlayHintClientCapabilities          `json:"inlayHint,omitempty"`
	Diagnostic         *DiagnosticClientCapabilities         `json:"diagnostic,omitempty"`

	textDocumentClientCapabilitiesProposed
}

type WorkspaceClientCapabilities struct {
	// The client supports applying batch edits to the workspace by
	// supporting the request 'workspace/applyEdit'.
	ApplyEdit *bool `json:"applyEdit,omitempty"`
	// Capabilities specific to WorkspaceEdits.
	WorkspaceEdit *WorkspaceEditClientCapabilities `json:"workspaceEdit,omitempty"`

	DidChangeConfiguration *DidChangeConfigurationClientCapabilities `json:"didChangeConfiguration,omitempty"`
	DidChangeWatchedFiles  *DidChangeWatchedFilesClientCapabilities  `json:"didChangeWatchedFiles,omitempty"`
	Symbol                 *WorkspaceSymbolClientCapabilities        `json:"symbol,omitempty"`
	ExecuteCommand         *ExecuteCommandClientCapabilities         `json:"executeCommand,omitempty"`

	// The client has support for workspace folders.
	WorkspaceFolders *bool `json:"workspaceFolders,omitempty"`
	// The client supports `workspace/configuration` requests.
	Configuration *bool `json:"configuration,omitempty"`

	SemanticTokens *SemanticTokensWorkspaceClientCapabilities `json:"semanticTokens,omitempty"`
	CodeLens       *CodeLensWorkspaceClientCapabilities       `json:"codeLens,omitempty"`
	FileOperations *WorkspaceFileOperationsClientCapabilities `json:"fileOperations,omitempty"`
	InlineValue    *InlineValueWorkspaceClientCapabilities    `json:"inlineValue,omitempty"`
	InlayHint      *InlayHintWorkspaceClientCapabilities      `json:"inlayHint,omitempty"`
	Diagnostics    *DiagnosticWorkspaceClientCapabilities     `json:"diagnostics,omitempty"`
}

type GeneralClientCapabilities struct {
	// Client capabilities specific to regular expressions.
	RegularExpressions *RegularExpressionsClientCapabilities `json:"regularExpressions,omitempty"`
	// Client capabilities specific to the client's markdown parser.
	Markdown *MarkdownClientCapabilities `json:"markdown,omitempty"`
	// Client capability that signals how the client handles stale
	// requests.
	StaleRequestSupport *StaleRequestSupportClientCapabilities `json:"staleRequestSupport,omitempty"`
	// The position encodings supported by the client, in decreasing order
	// of preference. If omitted it defaults to ['utf-16'].
	PositionEncodings []PositionEncodingKind `json:"positionEncodings,omitzero"`
}

type StaleRequestSupportClientCapabilities struct {
	// The client will actively cancel the request.
	Cancel bool `json:"cancel"`
	// The list of requests for which the client will retry the request if
	// it receives a response with error code `ContentModified`.
	RetryOnContentModified []string `json:"retryOnContentModified"`
}

type RegularExpressionsClientCapabilities struct {
	// The engine's name.
	Engine string `json:"engine"`
	// The engine's version.
	Version *string `json:"version,omitempty"`
}

type MarkdownClientCapabilities struct {
	// The name of the parser.
	Parser string `json:"parser"`
	// The version of the parser.
	Version *string `json:"version,omitempty"`
	// A list of HTML tags that the client allows / supports in Markdown.
	AllowedTags []string `json:"allowedTags,omitzero"`
}

// ServerCapabilities are the capabilities a server announces in the
// initialize result.
// See https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification#serverCapabilities
type ServerCapabilities struct {
	// The position encoding the server picked from the encodings offered
	// by the client. If omitted it defaults to 'utf-16'.
	PositionEncoding *PositionEncodingKind `json:"positionEncoding,omitempty"`
	// Defines how text documents are synced.
	TextDocumentSync *TextDocumentSyncCapability `json:"textDocumentSync,omitempty"`
	// Defines how notebook documents are synced.
	NotebookDocumentSync *NotebookDocumentSyncCapability `json:"notebookDocumentSync,omitempty"`

	SelectionRangeProvider *SelectionRangeProviderCapability `json:"selectionRangeProvider,omitempty"`
	HoverProvider          *HoverProviderCapability          `json:"hoverProvider,omitempty"`
	CompletionProvider     *CompletionOptions                `json:"completionProvider,omitempty"`
	SignatureHelpProvider  *SignatureHelpOptions             `json:"signatureHelpProvider,omitempty"`

	DefinitionProvider        *OneOf[bool, DefinitionOptions]        `json:"definitionProvider,omitempty"`
	TypeDefinitionProvider    *TypeDefinitionProviderCapability      `json:"typeDefinitionProvider,omitempty"`
	ImplementationProvider    *ImplementationProviderCapability      `json:"implementationProvider,omitempty"`
	ReferencesProvider        *OneOf[bool, ReferenceOptions]         `json:"referencesProvider,omitempty"`
	DocumentHighlightProvider *OneOf[bool, DocumentHighlightOptions] `json:"documentHighlightProvider,omitempty"`
	DocumentSymbolProvider    *OneOf[bool, DocumentSymbolOptions]    `json:"documentSymbolProvider,omitempty"`
	WorkspaceSymbolProvider   *OneOf[bool, WorkspaceSymbolOptions]   `json:"workspaceSymbolProvider,omitempty"`
	CodeActionProvider        *CodeActionProviderCapability          `json:"codeActionProvider,omitempty"`
	CodeLensProvider          *CodeLensOptions                       `json:"codeLensProvider,omitempty"`

	DocumentFormattingProvider       *OneOf[bool, DocumentFormattingOptions]      `json:"documentFormattingProvider,omitempty"`
	DocumentRangeFormattingProvider  *OneOf[bool, DocumentRangeFormattingOptions] `json:"documentRangeFormattingProvider,omitempty"`
	DocumentOnTypeFormattingProvider *DocumentOnTypeFormattingOptions             `json:"documentOnTypeFormattingProvider,omitempty"`

	RenameProvider         *OneOf[bool, RenameOptions]     `json:"renameProvider,omitempty"`
	DocumentLinkProvider   *DocumentLinkOptions            `json:"documentLinkProvider,omitempty"`
	ColorProvider          *ColorProviderCapability        `json:"colorProvider,omitempty"`
	FoldingRangeProvider   *FoldingRangeProviderCapability `json:"foldingRangeProvider,omitempty"`
	DeclarationProvider    *DeclarationCapability          `json:"declarationProvider,omitempty"`
	ExecuteCommandProvider *ExecuteCommandOptions          `json:"executeCommandProvider,omitempty"`

	// Workspace specific server capabilities.
	Workspace *WorkspaceServerCapabilities `json:"workspace,omitempty"`

	CallHierarchyProvider      *CallHierarchyServerCapability              `json:"callHierarchyProvider,omitempty"`
	SemanticTokensProvider     *SemanticTokensServerCapabilities           `json:"semanticTokensProvider,omitempty"`
	MonikerProvider            *OneOf[bool, MonikerServerCapabilities]     `json:"monikerProvider,omitempty"`
	LinkedEditingRangeProvider *LinkedEditingRangeServerCapabilities       `json:"linkedEditingRangeProvider,omitempty"`
	InlineValueProvider        *OneOf[bool, InlineValueServerCapabilities] `json:"inlineValueProvider,omitempty"`
	InlayHintProvider          *OneOf[bool, InlayHintServerCapabilities]   `json:"inlayHintProvider,omitempty"`
	DiagnosticProvider         *DiagnosticServerCapabilities               `json:"diagnosticProvider,omitempty"`

	// Experimental server capabilities.
	Experimental LSPAny `json:"experimental,omitempty"`

	serverCapabilitiesProposed
}
