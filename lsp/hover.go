package lsp

type HoverClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
	// Client supports the following content formats for the content
	// property. The order describes the preferred format of the client.
	ContentFormat []MarkupKind `json:"contentFormat,omitzero"`
}

type HoverOptions struct {
	WorkDoneProgressOptions
}

type HoverRegistrationOptions struct {
	TextDocumentRegistrationOptions
	HoverOptions
}

type HoverProviderCapability struct {
	Simple  *bool
	Options *HoverOptions
}

func NewHoverProviderSimple(b bool) HoverProviderCapability {
	return HoverProviderCapability{Simple: &b}
}

func NewHoverProviderOptions(o HoverOptions) HoverProviderCapability {
	return HoverProviderCapability{Options: &o}
}

func (c HoverProviderCapability) MarshalJSON() ([]byte, error) {
	return marshalUnion("HoverProviderCapability", c.Simple, c.Options)
}

func (c *HoverProviderCapability) UnmarshalJSON(data []byte) error {
	*c = HoverProviderCapability{}
	return decodeUnion("HoverProviderCapability", data, arm(&c.Simple), arm(&c.Options))
}

type HoverParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
}

// Hover is the result of a hover request.
type Hover struct {
	Contents HoverContents `json:"contents"`
	// The range inside the text document that is used to visualize a hover,
	// e.g. by changing the background color.
	Range *Range `json:"range,omitempty"`
}

// HoverContents is a single marked string, a list of them, or markup
// content.
type HoverContents struct {
	Scalar *MarkedString
	Array  []MarkedString
	Markup *MarkupContent
}

func NewHoverContentsScalar(s MarkedString) HoverContents {
	return HoverContents{Scalar: &s}
}

func NewHoverContentsArray(a []MarkedString) HoverContents {
	if a == nil {
		a = []MarkedString{}
	}
	return HoverContents{Array: a}
}

func NewHoverContentsMarkup(m MarkupContent) HoverContents {
	return HoverContents{Markup: &m}
}

func (c HoverContents) MarshalJSON() ([]byte, error) {
	switch {
	case c.Scalar != nil:
		return Marshal(c.Scalar)
	case c.Array != nil:
		return Marshal(c.Array)
	case c.Markup != nil:
		return Marshal(c.Markup)
	}
	return nil, noAlternative("HoverContents")
}

func (c *HoverContents) UnmarshalJSON(data []byte) error {
	*c = HoverContents{}
	var array []MarkedString
	return decodeUnion("HoverContents", data,
		arm(&c.Scalar),
		func(b []byte) error {
			if err := Unmarshal(b, &array); err != nil {
				return err
			}
			c.Array = array
			return nil
		},
		arm(&c.Markup),
	)
}

// MarkedString renders human readable text. It is either a markdown string
// or a code block with a language and a code snippet.
type MarkedString struct {
	String         *string
	LanguageString *LanguageString
}

type LanguageString struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

func NewMarkedStringFromMarkdown(markdown string) MarkedString {
	return MarkedString{String: &markdown}
}

func NewMarkedStringFromLanguageCode(language, codeBlock string) MarkedString {
	return MarkedString{LanguageString: &LanguageString{Language: language, Value: codeBlock}}
}

func (m MarkedString) MarshalJSON() ([]byte, error) {
	return marshalUnion("MarkedString", m.String, m.LanguageString)
}

func (m *MarkedString) UnmarshalJSON(data []byte) error {
	*m = MarkedString{}
	return decodeUnion("MarkedString", data, arm(&m.String), arm(&m.LanguageString))
}

// Documentation is either a plain string or markup content.
type Documentation struct {
	String        *string
	MarkupContent *MarkupContent
}

func NewDocumentationString(s string) Documentation {
	return Documentation{String: &s}
}

func NewDocumentationMarkup(m MarkupContent) Documentation {
	return Documentation{MarkupContent: &m}
}

func (d Documentation) MarshalJSON() ([]byte, error) {
	return marshalUnion("Documentation", d.String, d.MarkupContent)
}

func (d *Documentation) UnmarshalJSON(data []byte) error {
	*d = Documentation{}
	return decodeUnion("Documentation", data, arm(&d.String), arm(&d.MarkupContent))
}
