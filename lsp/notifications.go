package lsp

var (
	CancelRequestNotification = newNotification[CancelParams]("$/cancelRequest")
	SetTraceNotification      = newNotification[SetTraceParams]("$/setTrace")
	LogTraceNotification      = newNotification[LogTraceParams]("$/logTrace")
	ProgressNotification      = newNotification[ProgressParams]("$/progress")
	InitializedNotification   = newNotification[InitializedParams]("initialized")
	ExitNotification          = newNotification[Void]("exit")

	ShowMessageNotification            = newNotification[ShowMessageParams]("window/showMessage")
	LogMessageNotification             = newNotification[LogMessageParams]("window/logMessage")
	WorkDoneProgressCancelNotification = newNotification[WorkDoneProgressCancelParams]("window/workDoneProgress/cancel")
	TelemetryEventNotification         = newNotification[TelemetryEventParams]("telemetry/event")
)

// Text document synchronization.
// See https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification#textDocument_synchronization
var (
	DidOpenTextDocumentNotification   = newRegistrableNotification[DidOpenTextDocumentParams, TextDocumentRegistrationOptions]("textDocument/didOpen")
	DidChangeTextDocumentNotification = newRegistrableNotification[DidChangeTextDocumentParams, TextDocumentChangeRegistrationOptions]("textDocument/didChange")
	WillSaveTextDocumentNotification  = newRegistrableNotification[WillSaveTextDocumentParams, TextDocumentRegistrationOptions]("textDocument/willSave")
	DidSaveTextDocumentNotification   = newRegistrableNotification[DidSaveTextDocumentParams, TextDocumentSaveRegistrationOptions]("textDocument/didSave")
	DidCloseTextDocumentNotification  = newRegistrableNotification[DidCloseTextDocumentParams, TextDocumentRegistrationOptions]("textDocument/didClose")
	PublishDiagnosticsNotification    = newNotification[PublishDiagnosticsParams]("textDocument/publishDiagnostics")

	DidOpenNotebookDocumentNotification   = newRegistrableNotification[DidOpenNotebookDocumentParams, NotebookDocumentSyncRegistrationOptions]("notebookDocument/didOpen")
	DidChangeNotebookDocumentNotification = newRegistrableNotification[DidChangeNotebookDocumentParams, NotebookDocumentSyncRegistrationOptions]("notebookDocument/didChange")
	DidSaveNotebookDocumentNotification   = newRegistrableNotification[DidSaveNotebookDocumentParams, NotebookDocumentSyncRegistrationOptions]("notebookDocument/didSave")
	DidCloseNotebookDocumentNotification  = newRegistrableNotification[DidCloseNotebookDocumentParams, NotebookDocumentSyncRegistrationOptions]("notebookDocument/didClose")
)

// Workspace notifications.
var (
	DidChangeConfigurationNotification    = newNotification[DidChangeConfigurationParams]("workspace/didChangeConfiguration")
	DidChangeWatchedFilesNotification     = newRegistrableNotification[DidChangeWatchedFilesParams, DidChangeWatchedFilesRegistrationOptions]("workspace/didChangeWatchedFiles")
	DidChangeWorkspaceFoldersNotification = newNotification[DidChangeWorkspaceFoldersParams]("workspace/didChangeWorkspaceFolders")

	DidCreateFilesNotification = newRegistrableNotification[CreateFilesParams, FileOperationRegistrationOptions]("workspace/didCreateFiles")
	DidRenameFilesNotification = newRegistrableNotification[RenameFilesParams, FileOperationRegistrationOptions]("workspace/didRenameFiles")
	DidDeleteFilesNotification = newRegistrableNotification[DeleteFilesParams, FileOperationRegistrationOptions]("workspace/didDeleteFiles")
)
