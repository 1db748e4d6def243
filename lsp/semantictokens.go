package lsp

import "github.com/tidwall/gjson"

// SemanticTokenType is an open set of token types. The predefined values
// are listed below, clients and servers may add their own.
type SemanticTokenType string

const (
	SemanticTokenTypeNamespace     SemanticTokenType = "namespace"
	SemanticTokenTypeType          SemanticTokenType = "type"
	SemanticTokenTypeClass         SemanticTokenType = "class"
	SemanticTokenTypeEnum          SemanticTokenType = "enum"
	SemanticTokenTypeInterface     SemanticTokenType = "interface"
	SemanticTokenTypeStruct        SemanticTokenType = "struct"
	SemanticTokenTypeTypeParameter SemanticTokenType = "typeParameter"
	SemanticTokenTypeParameter     SemanticTokenType = "parameter"
	SemanticTokenTypeVariable      SemanticTokenType = "variable"
	SemanticTokenTypeProperty      SemanticTokenType = "property"
	SemanticTokenTypeEnumMember    SemanticTokenType = "enumMember"
	SemanticTokenTypeEvent         SemanticTokenType = "event"
	SemanticTokenTypeFunction      SemanticTokenType = "function"
	SemanticTokenTypeMethod        SemanticTokenType = "method"
	SemanticTokenTypeMacro         SemanticTokenType = "macro"
	SemanticTokenTypeKeyword       SemanticTokenType = "keyword"
	SemanticTokenTypeModifier      SemanticTokenType = "modifier"
	SemanticTokenTypeComment       SemanticTokenType = "comment"
	SemanticTokenTypeString        SemanticTokenType = "string"
	SemanticTokenTypeNumber        SemanticTokenType = "number"
	SemanticTokenTypeRegexp        SemanticTokenType = "regexp"
	SemanticTokenTypeOperator      SemanticTokenType = "operator"
	SemanticTokenTypeDecorator     SemanticTokenType = "decorator"
)

// SemanticTokenModifier is an open set of token modifiers.
type SemanticTokenModifier string

const (
	SemanticTokenModifierDeclaration    SemanticTokenModifier = "declaration"
	SemanticTokenModifierDefinition     SemanticTokenModifier = "definition"
	SemanticTokenModifierReadonly       SemanticTokenModifier = "readonly"
	SemanticTokenModifierStatic         SemanticTokenModifier = "static"
	SemanticTokenModifierDeprecated     SemanticTokenModifier = "deprecated"
	SemanticTokenModifierAbstract       SemanticTokenModifier = "abstract"
	SemanticTokenModifierAsync          SemanticTokenModifier = "async"
	SemanticTokenModifierModification   SemanticTokenModifier = "modification"
	SemanticTokenModifierDocumentation  SemanticTokenModifier = "documentation"
	SemanticTokenModifierDefaultLibrary SemanticTokenModifier = "defaultLibrary"
)

type TokenFormat string

const TokenFormatRelative TokenFormat = "relative"

func (f *TokenFormat) UnmarshalJSON(data []byte) error {
	v, err := decodeClosedString(data, "TokenFormat", TokenFormatRelative)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

type SemanticTokensLegend struct {
	// The token types a server uses.
	TokenTypes []SemanticTokenType `json:"tokenTypes"`
	// The token modifiers a server uses.
	TokenModifiers []SemanticTokenModifier `json:"tokenModifiers"`
}

// SemanticToken is one token of a SemanticTokens result. On the wire each
// token is five consecutive integers of a flat array.
type SemanticToken struct {
	DeltaLine            uint32
	DeltaStart           uint32
	Length               uint32
	TokenType            uint32
	TokenModifiersBitset uint32
}

// SemanticTokenData is a list of semantic tokens encoded as a flat integer
// array.
type SemanticTokenData []SemanticToken

func (d SemanticTokenData) MarshalJSON() ([]byte, error) {
	flat := make([]uint32, 0, len(d)*5)
	for _, t := range d {
		flat = append(flat, t.DeltaLine, t.DeltaStart, t.Length, t.TokenType, t.TokenModifiersBitset)
	}
	return Marshal(flat)
}

func (d *SemanticTokenData) UnmarshalJSON(data []byte) error {
	if gjson.ParseBytes(data).Type == gjson.Null {
		return decodeErrorf(ErrStructural, "", "null is not allowed here")
	}
	var flat []uint32
	if err := Unmarshal(data, &flat); err != nil {
		return err
	}
	if len(flat)%5 != 0 {
		return decodeErrorf(ErrInvalidValue, "", "semantic token data length %d is not a multiple of 5", len(flat))
	}
	out := make(SemanticTokenData, 0, len(flat)/5)
	for i := 0; i < len(flat); i += 5 {
		out = append(out, SemanticToken{
			DeltaLine:            flat[i],
			DeltaStart:           flat[i+1],
			Length:               flat[i+2],
			TokenType:            flat[i+3],
			TokenModifiersBitset: flat[i+4],
		})
	}
	*d = out
	return nil
}

type SemanticTokens struct {
	// When set the client can use it in a subsequent delta request.
	ResultID *string           `json:"resultId,omitempty"`
	Data     SemanticTokenData `json:"data"`
}

type SemanticTokensPartialResult struct {
	Data SemanticTokenData `json:"data"`
}

// SemanticTokensResult is the result of textDocument/semanticTokens/full.
// Since both alternatives carry data, an object decodes as Tokens.
type SemanticTokensResult struct {
	Tokens  *SemanticTokens
	Partial *SemanticTokensPartialResult
}

func (r SemanticTokensResult) MarshalJSON() ([]byte, error) {
	return marshalUnion("SemanticTokensResult", r.Tokens, r.Partial)
}

func (r *SemanticTokensResult) UnmarshalJSON(data []byte) error {
	*r = SemanticTokensResult{}
	return decodeUnion("SemanticTokensResult", data, arm(&r.Tokens), arm(&r.Partial))
}

type SemanticTokensRangeResult = SemanticTokensResult

type SemanticTokensEdit struct {
	Start       uint32            `json:"start"`
	DeleteCount uint32            `json:"deleteCount"`
	Data        SemanticTokenData `json:"data,omitzero"`
}

type SemanticTokensDelta struct {
	ResultID *string `json:"resultId,omitempty"`
	// For a detailed description of how these edits should be applied see
	// the protocol's semantic tokens delta section.
	Edits []SemanticTokensEdit `json:"edits"`
}

type SemanticTokensDeltaPartialResult struct {
	Edits []SemanticTokensEdit `json:"edits"`
}

// SemanticTokensFullDeltaResult is the result of
// textDocument/semanticTokens/full/delta.
type SemanticTokensFullDeltaResult struct {
	Tokens             *SemanticTokens
	TokensDelta        *SemanticTokensDelta
	PartialTokensDelta *SemanticTokensDeltaPartialResult
}

func (r SemanticTokensFullDeltaResult) MarshalJSON() ([]byte, error) {
	return marshalUnion("SemanticTokensFullDeltaResult", r.Tokens, r.TokensDelta, r.PartialTokensDelta)
}

func (r *SemanticTokensFullDeltaResult) UnmarshalJSON(data []byte) error {
	*r = SemanticTokensFullDeltaResult{}
	return decodeUnion("SemanticTokensFullDeltaResult", data,
		arm(&r.Tokens), arm(&r.TokensDelta), arm(&r.PartialTokensDelta))
}

type SemanticTokensClientCapabilities struct {
	DynamicRegistration *bool                                    `json:"dynamicRegistration,omitempty"`
	Requests            SemanticTokensClientCapabilitiesRequests `json:"requests"`
	// The token types that the client supports.
	TokenTypes []SemanticTokenType `json:"tokenTypes"`
	// The token modifiers that the client supports.
	TokenModifiers []SemanticTokenModifier `json:"tokenModifiers"`
	// The formats the clients supports.
	Formats []TokenFormat `json:"formats"`
	// Whether the client supports tokens that can overlap each other.
	OverlappingTokenSupport *bool `json:"overlappingTokenSupport,omitempty"`
	// Whether the client supports tokens that can span multiple lines.
	MultilineTokenSupport *bool `json:"multilineTokenSupport,omitempty"`
	// Whether the client allows the server to actively cancel a semantic
	// token request, e.g. supports returning ServerCancelled.
	ServerCancelSupport *bool `json:"serverCancelSupport,omitempty"`
	// Whether the client uses semantic tokens to augment existing syntax
	// tokens.
	AugmentsSyntaxTokens *bool `json:"augmentsSyntaxTokens,omitempty"`
}

type SemanticTokensClientCapabilitiesRequests struct {
	// The client will send the textDocument/semanticTokens/range request
	// if the server provides a corresponding handler.
	Range *bool `json:"range,omitempty"`
	// The client will send the textDocument/semanticTokens/full request if
	// the server provides a corresponding handler.
	Full *SemanticTokensFullOptions `json:"full,omitempty"`
}

// SemanticTokensFullOptions is either a boolean or an object saying whether
// deltas are supported.
type SemanticTokensFullOptions struct {
	Bool  *bool
	Delta *SemanticTokensFullDelta
}

type SemanticTokensFullDelta struct {
	Delta *bool `json:"delta,omitempty"`
}

func NewSemanticTokensFullBool(b bool) SemanticTokensFullOptions {
	return SemanticTokensFullOptions{Bool: &b}
}

func NewSemanticTokensFullDelta(delta *bool) SemanticTokensFullOptions {
	return SemanticTokensFullOptions{Delta: &SemanticTokensFullDelta{Delta: delta}}
}

func (o SemanticTokensFullOptions) MarshalJSON() ([]byte, error) {
	return marshalUnion("SemanticTokensFullOptions", o.Bool, o.Delta)
}

func (o *SemanticTokensFullOptions) UnmarshalJSON(data []byte) error {
	*o = SemanticTokensFullOptions{}
	return decodeUnion("SemanticTokensFullOptions", data, arm(&o.Bool), arm(&o.Delta))
}

type SemanticTokensOptions struct {
	WorkDoneProgressOptions
	// The legend used by the server.
	Legend SemanticTokensLegend `json:"legend"`
	// Server supports providing semantic tokens for a specific range of a
	// document.
	Range *bool `json:"range,omitempty"`
	// Server supports providing semantic tokens for a full document.
	Full *SemanticTokensFullOptions `json:"full,omitempty"`
}

type SemanticTokensRegistrationOptions struct {
	TextDocumentRegistrationOptions
	SemanticTokensOptions
	StaticRegistrationOptions
}

// SemanticTokensServerCapabilities is the semanticTokensProvider server
// capability.
type SemanticTokensServerCapabilities struct {
	SemanticTokensOptions             *SemanticTokensOptions
	SemanticTokensRegistrationOptions *SemanticTokensRegistrationOptions
}

func NewSemanticTokensServerOptions(o SemanticTokensOptions) SemanticTokensServerCapabilities {
	return SemanticTokensServerCapabilities{SemanticTokensOptions: &o}
}

func NewSemanticTokensServerRegistrationOptions(o SemanticTokensRegistrationOptions) SemanticTokensServerCapabilities {
	return SemanticTokensServerCapabilities{SemanticTokensRegistrationOptions: &o}
}

func (c SemanticTokensServerCapabilities) MarshalJSON() ([]byte, error) {
	return marshalUnion("SemanticTokensServerCapabilities", c.SemanticTokensOptions, c.SemanticTokensRegistrationOptions)
}

func (c *SemanticTokensServerCapabilities) UnmarshalJSON(data []byte) error {
	*c = SemanticTokensServerCapabilities{}
	return decodeProviderUnion("SemanticTokensServerCapabilities", data, nil,
		&c.SemanticTokensOptions, &c.SemanticTokensRegistrationOptions)
}

type SemanticTokensWorkspaceClientCapabilities struct {
	// Whether the client implementation supports a refresh request sent
	// from the server to the client.
	RefreshSupport *bool `json:"refreshSupport,omitempty"`
}

type SemanticTokensParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

type SemanticTokensDeltaParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	// The result id of a previous response, which can either point to a
	// full response or a delta response.
	PreviousResultID string `json:"previousResultId"`
}

type SemanticTokensRangeParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
}
