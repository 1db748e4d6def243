package lsp

import (
	"slices"

	"github.com/tidwall/gjson"
)

type (
	DocumentFormattingClientCapabilities       = DynamicRegistrationClientCapabilities
	DocumentRangeFormattingClientCapabilities  = DynamicRegistrationClientCapabilities
	DocumentOnTypeFormattingClientCapabilities = DynamicRegistrationClientCapabilities
)

type DocumentFormattingOptions struct {
	WorkDoneProgressOptions
}

type DocumentRangeFormattingOptions struct {
	WorkDoneProgressOptions
}

type DocumentFormattingParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Options      FormattingOptions      `json:"options"`
	WorkDoneProgressParams
}

type DocumentRangeFormattingParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Options      FormattingOptions      `json:"options"`
	WorkDoneProgressParams
}

type DocumentOnTypeFormattingParams struct {
	TextDocumentPositionParams
	// The character that has been typed.
	Ch      string            `json:"ch"`
	Options FormattingOptions `json:"options"`
}

type DocumentOnTypeFormattingOptions struct {
	// A character on which formatting should be triggered, like `}`.
	FirstTriggerCharacter string   `json:"firstTriggerCharacter"`
	MoreTriggerCharacter  []string `json:"moreTriggerCharacter,omitzero"`
}

type DocumentOnTypeFormattingRegistrationOptions struct {
	TextDocumentRegistrationOptions
	DocumentOnTypeFormattingOptions
}

// FormattingOptions are value-object describing what options formatting
// should use. Members other than the well-known ones are kept in
// Properties.
type FormattingOptions struct {
	// Size of a tab in spaces.
	TabSize uint32
	// Prefer spaces over tabs.
	InsertSpaces bool
	// Signature for further properties.
	Properties map[string]FormattingProperty
	// Trim trailing whitespace on a line.
	TrimTrailingWhitespace *bool
	// Insert a newline character at the end of the file if one does not
	// exist.
	InsertFinalNewline *bool
	// Trim all newlines after the final newline at the end of the file.
	TrimFinalNewlines *bool
}

type formattingOptionsWire struct {
	TabSize                uint32 `json:"tabSize"`
	InsertSpaces           bool   `json:"insertSpaces"`
	TrimTrailingWhitespace *bool  `json:"trimTrailingWhitespace,omitempty"`
	InsertFinalNewline     *bool  `json:"insertFinalNewline,omitempty"`
	TrimFinalNewlines      *bool  `json:"trimFinalNewlines,omitempty"`
}

var formattingOptionsKeys = []string{
	"tabSize", "insertSpaces", "trimTrailingWhitespace", "insertFinalNewline", "trimFinalNewlines",
}

func (o FormattingOptions) MarshalJSON() ([]byte, error) {
	known, err := Marshal(formattingOptionsWire{
		TabSize:                o.TabSize,
		InsertSpaces:           o.InsertSpaces,
		TrimTrailingWhitespace: o.TrimTrailingWhitespace,
		InsertFinalNewline:     o.InsertFinalNewline,
		TrimFinalNewlines:      o.TrimFinalNewlines,
	})
	if err != nil {
		return nil, err
	}
	extra := make(map[string]FormattingProperty, len(o.Properties))
	for k, v := range o.Properties {
		if !slices.Contains(formattingOptionsKeys, k) {
			extra[k] = v
		}
	}
	if len(extra) == 0 {
		return known, nil
	}
	rest, err := Marshal(extra)
	if err != nil {
		return nil, err
	}
	return mergeObjects(known, rest), nil
}

func (o *FormattingOptions) UnmarshalJSON(data []byte) error {
	*o = FormattingOptions{}
	var w formattingOptionsWire
	if err := Unmarshal(data, &w); err != nil {
		return err
	}
	var props map[string]FormattingProperty
	var err error
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if slices.Contains(formattingOptionsKeys, k) {
			return true
		}
		var p FormattingProperty
		if err = Unmarshal([]byte(value.Raw), &p); err != nil {
			err = withPath(err, k)
			return false
		}
		if props == nil {
			props = make(map[string]FormattingProperty)
		}
		props[k] = p
		return true
	})
	if err != nil {
		return err
	}
	*o = FormattingOptions{
		TabSize:                w.TabSize,
		InsertSpaces:           w.InsertSpaces,
		Properties:             props,
		TrimTrailingWhitespace: w.TrimTrailingWhitespace,
		InsertFinalNewline:     w.InsertFinalNewline,
		TrimFinalNewlines:      w.TrimFinalNewlines,
	}
	return nil
}

// FormattingProperty is a boolean, integer or string formatting option.
type FormattingProperty struct {
	Bool   *bool
	Number *int32
	String *string
}

func (p FormattingProperty) MarshalJSON() ([]byte, error) {
	return marshalUnion("FormattingProperty", p.Bool, p.Number, p.String)
}

func (p *FormattingProperty) UnmarshalJSON(data []byte) error {
	*p = FormattingProperty{}
	return decodeUnion("FormattingProperty", data, arm(&p.Bool), arm(&p.Number), arm(&p.String))
}
