package lsp

// InitializeParams are the params of the initialize request.
// See https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification#initialize
type InitializeParams struct {
	// The process ID of the parent process that started the server. Is null
	// if the process has not been started by another process.
	ProcessID *uint32 `json:"processId"`
	// Deprecated: use RootURI or WorkspaceFolders instead.
	RootPath *string `json:"rootPath,omitempty"`
	// The rootUri of the workspace. Is null if no folder is open. Some
	// clients leave it out entirely.
	//
	// Deprecated: use WorkspaceFolders instead.
	RootURI *URI `json:"rootUri" lsp:"nullable"`
	// User provided initialization options.
	InitializationOptions LSPAny `json:"initializationOptions,omitempty"`
	// The capabilities provided by the client (editor or tool).
	Capabilities ClientCapabilities `json:"capabilities"`
	// The initial trace setting. If omitted trace is disabled ('off').
	Trace *TraceValue `json:"trace,omitempty"`
	// The workspace folders configured in the client when the server
	// starts.
	WorkspaceFolders []WorkspaceFolder `json:"workspaceFolders,omitzero"`
	// Information about the client.
	ClientInfo *ClientInfo `json:"clientInfo,omitempty"`
	// The locale the client is currently showing the user interface in,
	// encoded as an IETF language tag.
	Locale *string `json:"locale,omitempty"`
	WorkDoneProgressParams
}

// ClientInfo is information about the client.
type ClientInfo struct {
	// The name of the client as defined by the client.
	Name string `json:"name"`
	// The client's version as defined by the client.
	Version *string `json:"version,omitempty"`
}

// InitializedParams are the params of the initialized notification.
type InitializedParams struct{}

type InitializeResult struct {
	// The capabilities the language server provides.
	Capabilities ServerCapabilities `json:"capabilities"`
	// Information about the server.
	ServerInfo *ServerInfo `json:"serverInfo,omitempty"`

	initializeResultProposed
}

// ServerInfo is information about the server.
type ServerInfo struct {
	// The name of the server as defined by the server.
	Name string `json:"name"`
	// The server's version as defined by the server.
	Version *string `json:"version,omitempty"`
}

// InitializeError is the data of an initialize error response.
type InitializeError struct {
	// Indicates whether the client executes the following retry logic:
	// (1) show the message provided by the ResponseError to the user
	// (2) user selects retry or cancel
	// (3) if user selected retry the initialize method is sent again.
	Retry bool `json:"retry"`
}

// Registration is general parameters to register for a capability.
type Registration struct {
	// The id used to register the request. The id can be used to deregister
	// the request again.
	ID string `json:"id"`
	// The method / capability to register for.
	Method string `json:"method"`
	// Options necessary for the registration.
	RegisterOptions LSPAny `json:"registerOptions,omitempty"`
}

type RegistrationParams struct {
	Registrations []Registration `json:"registrations"`
}

// Unregistration is general parameters to unregister a capability.
type Unregistration struct {
	// The id used to unregister the request or notification. Usually an id
	// provided during the register request.
	ID string `json:"id"`
	// The method / capability to unregister for.
	Method string `json:"method"`
}

type UnregistrationParams struct {
	// The field is misspelled on the wire and the spelling is normative.
	Unregisterations []Unregistration `json:"unregisterations"`
}

type GenericRegistrationOptions struct {
	TextDocumentRegistrationOptions
	GenericOptions
	StaticRegistrationOptions
}

type GenericOptions struct {
	WorkDoneProgressOptions
}

type GenericParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}
