package lsp

// GotoDefinitionParams are the params of textDocument/definition. The
// declaration, typeDefinition and implementation requests take the same
// shape.
type GotoDefinitionParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

type (
	GotoDeclarationParams    = GotoDefinitionParams
	GotoTypeDefinitionParams = GotoDefinitionParams
	GotoImplementationParams = GotoDefinitionParams
)

// GotoDefinitionResponse can be a single location, multiple locations or
// a list of location links.
type GotoDefinitionResponse struct {
	Scalar *Location
	Array  []Location
	Link   []LocationLink
}

type (
	GotoDeclarationResponse    = GotoDefinitionResponse
	GotoTypeDefinitionResponse = GotoDefinitionResponse
	GotoImplementationResponse = GotoDefinitionResponse
)

func NewGotoDefinitionScalar(l Location) GotoDefinitionResponse {
	return GotoDefinitionResponse{Scalar: &l}
}

func NewGotoDefinitionArray(locations []Location) GotoDefinitionResponse {
	if locations == nil {
		locations = []Location{}
	}
	return GotoDefinitionResponse{Array: locations}
}

func NewGotoDefinitionLink(links []LocationLink) GotoDefinitionResponse {
	if links == nil {
		links = []LocationLink{}
	}
	return GotoDefinitionResponse{Link: links}
}

func (r GotoDefinitionResponse) MarshalJSON() ([]byte, error) {
	switch {
	case r.Scalar != nil:
		return Marshal(r.Scalar)
	case r.Array != nil:
		return Marshal(r.Array)
	case r.Link != nil:
		return Marshal(r.Link)
	}
	return nil, noAlternative("GotoDefinitionResponse")
}

// UnmarshalJSON decodes an empty array as an empty Array.
func (r *GotoDefinitionResponse) UnmarshalJSON(data []byte) error {
	*r = GotoDefinitionResponse{}
	var locations []Location
	var links []LocationLink
	return decodeUnion("GotoDefinitionResponse", data,
		arm(&r.Scalar),
		func(b []byte) error {
			if err := Unmarshal(b, &locations); err != nil {
				return err
			}
			r.Array = locations
			return nil
		},
		func(b []byte) error {
			if err := Unmarshal(b, &links); err != nil {
				return err
			}
			r.Link = links
			return nil
		},
	)
}

type DefinitionOptions struct {
	WorkDoneProgressOptions
}

type DeclarationOptions struct {
	WorkDoneProgressOptions
}

type DeclarationRegistrationOptions struct {
	DeclarationOptions
	TextDocumentRegistrationOptions
	StaticRegistrationOptions
}

// DeclarationCapability is the declarationProvider server capability.
type DeclarationCapability struct {
	Simple              *bool
	RegistrationOptions *DeclarationRegistrationOptions
	Options             *DeclarationOptions
}

func NewDeclarationCapabilitySimple(b bool) DeclarationCapability {
	return DeclarationCapability{Simple: &b}
}

func NewDeclarationCapabilityRegistrationOptions(o DeclarationRegistrationOptions) DeclarationCapability {
	return DeclarationCapability{RegistrationOptions: &o}
}

func NewDeclarationCapabilityOptions(o DeclarationOptions) DeclarationCapability {
	return DeclarationCapability{Options: &o}
}

func (c DeclarationCapability) MarshalJSON() ([]byte, error) {
	return marshalUnion("DeclarationCapability", c.Simple, c.RegistrationOptions, c.Options)
}

func (c *DeclarationCapability) UnmarshalJSON(data []byte) error {
	*c = DeclarationCapability{}
	return decodeUnion("DeclarationCapability", data,
		arm(&c.Simple), arm(&c.RegistrationOptions), arm(&c.Options))
}

// ImplementationProviderCapability is the implementationProvider server
// capability.
type ImplementationProviderCapability struct {
	Simple  *bool
	Options *StaticTextDocumentRegistrationOptions
}

func NewImplementationProviderSimple(b bool) ImplementationProviderCapability {
	return ImplementationProviderCapability{Simple: &b}
}

func NewImplementationProviderOptions(o StaticTextDocumentRegistrationOptions) ImplementationProviderCapability {
	return ImplementationProviderCapability{Options: &o}
}

func (c ImplementationProviderCapability) MarshalJSON() ([]byte, error) {
	return marshalUnion("ImplementationProviderCapability", c.Simple, c.Options)
}

func (c *ImplementationProviderCapability) UnmarshalJSON(data []byte) error {
	*c = ImplementationProviderCapability{}
	return decodeUnion("ImplementationProviderCapability", data, arm(&c.Simple), arm(&c.Options))
}

// TypeDefinitionProviderCapability is the typeDefinitionProvider server
// capability.
type TypeDefinitionProviderCapability struct {
	Simple  *bool
	Options *StaticTextDocumentRegistrationOptions
}

func NewTypeDefinitionProviderSimple(b bool) TypeDefinitionProviderCapability {
	return TypeDefinitionProviderCapability{Simple: &b}
}

func NewTypeDefinitionProviderOptions(o StaticTextDocumentRegistrationOptions) TypeDefinitionProviderCapability {
	return TypeDefinitionProviderCapability{Options: &o}
}

func (c TypeDefinitionProviderCapability) MarshalJSON() ([]byte, error) {
	return marshalUnion("TypeDefinitionProviderCapability", c.Simple, c.Options)
}

func (c *TypeDefinitionProviderCapability) UnmarshalJSON(data []byte) error {
	*c = TypeDefinitionProviderCapability{}
	return decodeUnion("TypeDefinitionProviderCapability", data, arm(&c.Simple), arm(&c.Options))
}

// ReferenceClientCapabilities is the client capability of
// textDocument/references.
type ReferenceClientCapabilities = DynamicRegistrationClientCapabilities

type ReferenceContext struct {
	// Include the declaration of the current symbol.
	IncludeDeclaration bool `json:"includeDeclaration"`
}

type ReferenceParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
	Context ReferenceContext `json:"context"`
}

type ReferenceOptions struct {
	WorkDoneProgressOptions
}

type DocumentHighlightClientCapabilities = DynamicRegistrationClientCapabilities

type DocumentHighlightParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

// DocumentHighlight is a range inside a text document which deserves
// special attention, usually rendered with a distinct background color.
type DocumentHighlight struct {
	Range Range                  `json:"range"`
	Kind  *DocumentHighlightKind `json:"kind,omitempty"`
}

type DocumentHighlightKind int32

const (
	// A textual occurrence.
	DocumentHighlightKindText DocumentHighlightKind = 1
	// Read-access of a symbol, like reading a variable.
	DocumentHighlightKindRead DocumentHighlightKind = 2
	// Write-access of a symbol, like writing to a variable.
	DocumentHighlightKindWrite DocumentHighlightKind = 3
)

var documentHighlightKindTable = newEnumTable("DocumentHighlightKind", map[DocumentHighlightKind]string{
	DocumentHighlightKindText:  "TEXT",
	DocumentHighlightKindRead:  "READ",
	DocumentHighlightKindWrite: "WRITE",
})

func (k DocumentHighlightKind) String() string { return documentHighlightKindTable.format(k) }

func ParseDocumentHighlightKind(s string) (DocumentHighlightKind, error) {
	return documentHighlightKindTable.parse(s)
}

type DocumentHighlightOptions struct {
	WorkDoneProgressOptions
}
