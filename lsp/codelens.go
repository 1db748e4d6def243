package lsp

type CodeLensClientCapabilities = DynamicRegistrationClientCapabilities

type CodeLensOptions struct {
	// Code lens has a resolve provider as well.
	ResolveProvider *bool `json:"resolveProvider,omitempty"`
}

type CodeLensRegistrationOptions struct {
	TextDocumentRegistrationOptions
	CodeLensOptions
}

type CodeLensParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	WorkDoneProgressParams
	PartialResultParams
}

// CodeLens represents a command that should be shown along with source
// text, like the number of references or a way to run tests.
//
// A code lens is unresolved when no command is associated to it. Creating
// a code lens and resolving it are done in two stages for performance
// reasons.
type CodeLens struct {
	// The range in which this code lens is valid. Should only span a single
	// line.
	Range   Range    `json:"range"`
	Command *Command `json:"command,omitempty"`
	// Preserved between a textDocument/codeLens and a codeLens/resolve
	// request.
	Data LSPAny `json:"data,omitempty"`
}

type CodeLensWorkspaceClientCapabilities struct {
	// Whether the client implementation supports a refresh request sent
	// from the server to the client.
	RefreshSupport *bool `json:"refreshSupport,omitempty"`
}

type DocumentLinkClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	// Whether the client supports the tooltip property on DocumentLink.
	TooltipSupport *bool `json:"tooltipSupport,omitempty"`
}

type DocumentLinkOptions struct {
	// Document links have a resolve provider as well.
	ResolveProvider *bool `json:"resolveProvider,omitempty"`
	WorkDoneProgressOptions
}

type DocumentLinkRegistrationOptions struct {
	TextDocumentRegistrationOptions
	DocumentLinkOptions
}

type DocumentLinkParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	WorkDoneProgressParams
	PartialResultParams
}

// DocumentLink is a range in a text document that links to an internal or
// external resource, like another text document or a web site.
type DocumentLink struct {
	Range Range `json:"range"`
	// The uri this link points to. When missing a resolve request is sent
	// later.
	Target  *URI    `json:"target,omitempty"`
	Tooltip *string `json:"tooltip,omitempty"`
	// Preserved between a textDocument/documentLink and a
	// documentLink/resolve request.
	Data LSPAny `json:"data,omitempty"`
}

type DocumentColorClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
}

type ColorProviderOptions struct{}

type StaticTextDocumentColorProviderOptions struct {
	// A document selector to identify the scope of the registration. If set
	// to null the document selector provided on the client side is used.
	DocumentSelector DocumentSelector `json:"documentSelector" lsp:"nullable"`
	ID               *string          `json:"id,omitempty"`
}

// ColorProviderCapability is the colorProvider server capability.
type ColorProviderCapability struct {
	Simple        *bool
	ColorProvider *ColorProviderOptions
	Options       *StaticTextDocumentColorProviderOptions
}

func NewColorProviderSimple(b bool) ColorProviderCapability {
	return ColorProviderCapability{Simple: &b}
}

func NewColorProviderOptions(o StaticTextDocumentColorProviderOptions) ColorProviderCapability {
	return ColorProviderCapability{Options: &o}
}

func (c ColorProviderCapability) MarshalJSON() ([]byte, error) {
	return marshalUnion("ColorProviderCapability", c.Simple, c.ColorProvider, c.Options)
}

func (c *ColorProviderCapability) UnmarshalJSON(data []byte) error {
	*c = ColorProviderCapability{}
	return decodeProviderUnion("ColorProviderCapability", data, &c.Simple, &c.ColorProvider, &c.Options)
}

type DocumentColorParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	WorkDoneProgressParams
	PartialResultParams
}

type ColorInformation struct {
	Range Range `json:"range"`
	Color Color `json:"color"`
}

// Color is an RGBA color with every component in the range [0, 1].
type Color struct {
	Red   float32 `json:"red"`
	Green float32 `json:"green"`
	Blue  float32 `json:"blue"`
	Alpha float32 `json:"alpha"`
}

type ColorPresentationParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	// The color information to request presentations for.
	Color Color `json:"color"`
	// The range where the color would be inserted.
	Range Range `json:"range"`
	WorkDoneProgressParams
	PartialResultParams
}

type ColorPresentation struct {
	// The label of this color presentation. Shown on the color picker
	// header and, by default, also the text inserted when selecting it.
	Label               string     `json:"label"`
	TextEdit            *TextEdit  `json:"textEdit,omitempty"`
	AdditionalTextEdits []TextEdit `json:"additionalTextEdits,omitzero"`
}
