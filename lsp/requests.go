package lsp

// Lifecycle and client requests.
// See https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification#lifeCycleMessages
var (
	InitializeRequest                 = newRequest[InitializeParams, InitializeResult]("initialize")
	ShutdownRequest                   = newRequest[Void, Void]("shutdown")
	ShowMessageRequest                = newRequest[ShowMessageRequestParams, *MessageActionItem]("window/showMessageRequest")
	RegisterCapabilityRequest         = newRequest[RegistrationParams, Void]("client/registerCapability")
	UnregisterCapabilityRequest       = newRequest[UnregistrationParams, Void]("client/unregisterCapability")
	WorkspaceFoldersRequest           = newRequest[Void, []WorkspaceFolder]("workspace/workspaceFolders")
	WorkspaceConfigurationRequest     = newRequest[ConfigurationParams, []LSPAny]("workspace/configuration")
	WorkDoneProgressCreateRequest     = newRequest[WorkDoneProgressCreateParams, Void]("window/workDoneProgress/create")
	ShowDocumentRequest               = newRequest[ShowDocumentParams, ShowDocumentResult]("window/showDocument")
	ApplyWorkspaceEditRequest         = newRequest[ApplyWorkspaceEditParams, ApplyWorkspaceEditResponse]("workspace/applyEdit")
	CodeLensRefreshRequest            = newRequest[Void, Void]("workspace/codeLens/refresh")
	SemanticTokensRefreshRequest      = newRequest[Void, Void]("workspace/semanticTokens/refresh")
	InlayHintRefreshRequest           = newRequest[Void, Void]("workspace/inlayHint/refresh")
	InlineValueRefreshRequest         = newRequest[Void, Void]("workspace/inlineValue/refresh")
	WorkspaceDiagnosticRefreshRequest = newRequest[Void, Void]("workspace/diagnostic/refresh")
)

// Text document requests.
var (
	WillSaveWaitUntilRequest = newRegistrableRequest[WillSaveTextDocumentParams, []TextEdit, TextDocumentRegistrationOptions]("textDocument/willSaveWaitUntil")

	CompletionRequest        = newRegistrableRequest[CompletionParams, *CompletionResponse, CompletionRegistrationOptions]("textDocument/completion")
	ResolveCompletionRequest = newRequest[CompletionItem, CompletionItem]("completionItem/resolve")

	HoverRequest         = newRegistrableRequest[HoverParams, *Hover, HoverRegistrationOptions]("textDocument/hover")
	SignatureHelpRequest = newRegistrableRequest[SignatureHelpParams, *SignatureHelp, SignatureHelpRegistrationOptions]("textDocument/signatureHelp")

	GotoDeclarationRequest    = newRegistrableRequest[GotoDeclarationParams, *GotoDeclarationResponse, DeclarationRegistrationOptions]("textDocument/declaration")
	GotoDefinitionRequest     = newRegistrableRequest[GotoDefinitionParams, *GotoDefinitionResponse, TextDocumentRegistrationOptions]("textDocument/definition")
	GotoTypeDefinitionRequest = newRegistrableRequest[GotoTypeDefinitionParams, *GotoTypeDefinitionResponse, StaticTextDocumentRegistrationOptions]("textDocument/typeDefinition")
	GotoImplementationRequest = newRegistrableRequest[GotoImplementationParams, *GotoImplementationResponse, StaticTextDocumentRegistrationOptions]("textDocument/implementation")
	ReferencesRequest         = newRegistrableRequest[ReferenceParams, []Location, TextDocumentRegistrationOptions]("textDocument/references")
	DocumentHighlightRequest  = newRegistrableRequest[DocumentHighlightParams, []DocumentHighlight, TextDocumentRegistrationOptions]("textDocument/documentHighlight")
	DocumentSymbolRequest     = newRegistrableRequest[DocumentSymbolParams, *DocumentSymbolResponse, DocumentSymbolRegistrationOptions]("textDocument/documentSymbol")

	CodeActionRequest        = newRegistrableRequest[CodeActionParams, CodeActionResponse, CodeActionRegistrationOptions]("textDocument/codeAction")
	CodeActionResolveRequest = newRequest[CodeAction, CodeAction]("codeAction/resolve")
	CodeLensRequest          = newRegistrableRequest[CodeLensParams, []CodeLens, CodeLensRegistrationOptions]("textDocument/codeLens")
	CodeLensResolveRequest   = newRequest[CodeLens, CodeLens]("codeLens/resolve")

	DocumentLinkRequest        = newRegistrableRequest[DocumentLinkParams, []DocumentLink, DocumentLinkRegistrationOptions]("textDocument/documentLink")
	DocumentLinkResolveRequest = newRequest[DocumentLink, DocumentLink]("documentLink/resolve")

	FormattingRequest       = newRegistrableRequest[DocumentFormattingParams, []TextEdit, TextDocumentRegistrationOptions]("textDocument/formatting")
	RangeFormattingRequest  = newRegistrableRequest[DocumentRangeFormattingParams, []TextEdit, TextDocumentRegistrationOptions]("textDocument/rangeFormatting")
	OnTypeFormattingRequest = newRegistrableRequest[DocumentOnTypeFormattingParams, []TextEdit, DocumentOnTypeFormattingRegistrationOptions]("textDocument/onTypeFormatting")

	RenameRequest        = newRegistrableRequest[RenameParams, *WorkspaceEdit, RenameRegistrationOptions]("textDocument/rename")
	PrepareRenameRequest = newRequest[PrepareRenameParams, *PrepareRenameResponse]("textDocument/prepareRename")

	DocumentColorRequest     = newRegistrableRequest[DocumentColorParams, []ColorInformation, StaticTextDocumentColorProviderOptions]("textDocument/documentColor")
	ColorPresentationRequest = newRequest[ColorPresentationParams, []ColorPresentation]("textDocument/colorPresentation")

	FoldingRangeRequest       = newRegistrableRequest[FoldingRangeParams, []FoldingRange, StaticTextDocumentRegistrationOptions]("textDocument/foldingRange")
	SelectionRangeRequest     = newRegistrableRequest[SelectionRangeParams, []SelectionRange, SelectionRangeRegistrationOptions]("textDocument/selectionRange")
	LinkedEditingRangeRequest = newRegistrableRequest[LinkedEditingRangeParams, *LinkedEditingRanges, LinkedEditingRangeRegistrationOptions]("textDocument/linkedEditingRange")

	CallHierarchyPrepareRequest       = newRegistrableRequest[CallHierarchyPrepareParams, []CallHierarchyItem, StaticTextDocumentRegistrationOptions]("textDocument/prepareCallHierarchy")
	CallHierarchyIncomingCallsRequest = newRequest[CallHierarchyIncomingCallsParams, []CallHierarchyIncomingCall]("callHierarchy/incomingCalls")
	CallHierarchyOutgoingCallsRequest = newRequest[CallHierarchyOutgoingCallsParams, []CallHierarchyOutgoingCall]("callHierarchy/outgoingCalls")

	SemanticTokensFullRequest      = newRegistrableRequest[SemanticTokensParams, *SemanticTokensResult, SemanticTokensRegistrationOptions]("textDocument/semanticTokens/full")
	SemanticTokensFullDeltaRequest = newRequest[SemanticTokensDeltaParams, *SemanticTokensFullDeltaResult]("textDocument/semanticTokens/full/delta")
	SemanticTokensRangeRequest     = newRequest[SemanticTokensRangeParams, *SemanticTokensRangeResult]("textDocument/semanticTokens/range")

	MonikerRequest = newRegistrableRequest[MonikerParams, []Moniker, MonikerRegistrationOptions]("textDocument/moniker")

	TypeHierarchyPrepareRequest    = newRegistrableRequest[TypeHierarchyPrepareParams, []TypeHierarchyItem, TypeHierarchyRegistrationOptions]("textDocument/prepareTypeHierarchy")
	TypeHierarchySupertypesRequest = newRequest[TypeHierarchySupertypesParams, []TypeHierarchyItem]("typeHierarchy/supertypes")
	TypeHierarchySubtypesRequest   = newRequest[TypeHierarchySubtypesParams, []TypeHierarchyItem]("typeHierarchy/subtypes")

	InlineValueRequest      = newRegistrableRequest[InlineValueParams, []InlineValue, InlineValueRegistrationOptions]("textDocument/inlineValue")
	InlayHintRequest        = newRegistrableRequest[InlayHintParams, []InlayHint, InlayHintRegistrationOptions]("textDocument/inlayHint")
	InlayHintResolveRequest = newRequest[InlayHint, InlayHint]("inlayHint/resolve")

	DocumentDiagnosticRequest = newRegistrableRequest[DocumentDiagnosticParams, DocumentDiagnosticReportResult, DiagnosticRegistrationOptions]("textDocument/diagnostic")
)

// Workspace requests.
var (
	WorkspaceSymbolRequest        = newRegistrableRequest[WorkspaceSymbolParams, *WorkspaceSymbolResponse, WorkspaceSymbolRegistrationOptions]("workspace/symbol")
	WorkspaceSymbolResolveRequest = newRequest[WorkspaceSymbol, WorkspaceSymbol]("workspaceSymbol/resolve")
	ExecuteCommandRequest         = newRegistrableRequest[ExecuteCommandParams, LSPAny, ExecuteCommandRegistrationOptions]("workspace/executeCommand")
	WorkspaceDiagnosticRequest    = newRequest[WorkspaceDiagnosticParams, WorkspaceDiagnosticReportResult]("workspace/diagnostic")

	WillCreateFilesRequest = newRegistrableRequest[CreateFilesParams, *WorkspaceEdit, FileOperationRegistrationOptions]("workspace/willCreateFiles")
	WillRenameFilesRequest = newRegistrableRequest[RenameFilesParams, *WorkspaceEdit, FileOperationRegistrationOptions]("workspace/willRenameFiles")
	WillDeleteFilesRequest = newRegistrableRequest[DeleteFilesParams, *WorkspaceEdit, FileOperationRegistrationOptions]("workspace/willDeleteFiles")
)
