package lsp

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codecInner struct {
	Name string `json:"name"`
}

type codecMixin struct {
	Mixed string `json:"mixed"`
}

type codecRecord struct {
	Required string       `json:"required"`
	Optional *string      `json:"optional,omitempty"`
	List     []codecInner `json:"list,omitzero"`
	Pointer  *codecInner  `json:"pointer"`
	Nullable []string     `json:"nullable" lsp:"nullable"`
	Nested   codecInner   `json:"nested"`
	Any      LSPAny       `json:"any,omitempty"`
	codecMixin
}

func TestUnmarshalPresence(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
		path string
	}{
		{"complete", `{"required":"r","nested":{"name":"n"},"mixed":"m"}`, nil, ""},
		{"optional null", `{"required":"r","optional":null,"nested":{"name":"n"},"mixed":"m"}`, nil, ""},
		{"nullable null", `{"required":"r","nullable":null,"pointer":null,"nested":{"name":"n"},"mixed":"m"}`, nil, ""},
		{"missing required", `{"nested":{"name":"n"},"mixed":"m"}`, ErrMissingField, "required"},
		{"missing embedded", `{"required":"r","nested":{"name":"n"}}`, ErrMissingField, "mixed"},
		{"missing nested", `{"required":"r","nested":{},"mixed":"m"}`, ErrMissingField, "nested.name"},
		{"null required", `{"required":null,"nested":{"name":"n"},"mixed":"m"}`, ErrStructural, "required"},
		{"null in list", `{"required":"r","list":[{"name":"a"},null],"nested":{"name":"n"},"mixed":"m"}`, ErrStructural, "list[1]"},
		{"missing in list", `{"required":"r","list":[{"name":"a"},{}],"nested":{"name":"n"},"mixed":"m"}`, ErrMissingField, "list[1].name"},
		{"wrong type", `{"required":1,"nested":{"name":"n"},"mixed":"m"}`, ErrStructural, "required"},
		{"not an object", `[]`, ErrStructural, ""},
		{"top level null", `null`, ErrStructural, ""},
		{"invalid json", `{"required":`, ErrStructural, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r codecRecord
			err := Unmarshal([]byte(tc.data), &r)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.path, de.Path)
		})
	}
}

func TestUnmarshalKeepsRawAny(t *testing.T) {
	var r codecRecord
	require.NoError(t, Unmarshal([]byte(`{"required":"r","nested":{"name":"n"},"mixed":"m","any":{"b":[1, 2],"a":null}}`), &r))
	assert.Equal(t, `{"b":[1, 2],"a":null}`, string(r.Any))
	assert.Equal(t, "m", r.Mixed)
}

func TestUnmarshalNumbers(t *testing.T) {
	var p Position
	err := Unmarshal([]byte(`{"line":-1,"character":0}`), &p)
	assert.ErrorIs(t, err, ErrInvalidValue)
	err = Unmarshal([]byte(`{"line":"1","character":0}`), &p)
	assert.ErrorIs(t, err, ErrStructural)
}

func TestUnmarshalTarget(t *testing.T) {
	var r codecRecord
	assert.ErrorIs(t, Unmarshal([]byte(`{}`), r), ErrStructural)
	assert.ErrorIs(t, Unmarshal([]byte(`{}`), (*codecRecord)(nil)), ErrStructural)

	var list []codecInner
	assert.ErrorIs(t, Unmarshal([]byte(`null`), &list), ErrStructural)
	var ptr *codecInner
	require.NoError(t, Unmarshal([]byte(`null`), &ptr))
	assert.Nil(t, ptr)
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &DecodeError{Path: "a.b", Err: ErrMissingField}
	assert.Equal(t, "a.b: missing required field", err.Error())
	err = &DecodeError{Err: ErrInvalidValue, Msg: "bad"}
	assert.Equal(t, "invalid value: bad", err.Error())
}

func TestNestedErrorPaths(t *testing.T) {
	cases := []struct {
		name string
		data string
		v    any
		want error
		path string
	}{
		{
			"uri inside params",
			`{"textDocument":{"uri":"bad uri","languageId":"go","version":1,"text":""}}`,
			new(DidOpenTextDocumentParams), ErrInvalidValue, "textDocument.uri",
		},
		{
			"watch kind in list",
			`{"watchers":[{"globPattern":"**/*.go","kind":8}]}`,
			new(DidChangeWatchedFilesRegistrationOptions), ErrInvalidValue, "watchers[0].kind",
		},
		{
			"tag support below capabilities",
			`{"processId":null,"rootUri":null,"capabilities":{"textDocument":{"publishDiagnostics":{"tagSupport":{"valueSet":["x"]}}}}}`,
			new(InitializeParams), ErrStructural, "capabilities.textDocument.publishDiagnostics.tagSupport.valueSet[0]",
		},
		{
			"closed string in list",
			`{"processId":null,"rootUri":null,"capabilities":{"textDocument":{"hover":{"contentFormat":["markdown","html"]}}}}`,
			new(InitializeParams), ErrUnknownDiscriminator, "capabilities.textDocument.hover.contentFormat[1]",
		},
		{
			"map key",
			`{"changes":{"not a uri":[]}}`,
			new(WorkspaceEdit), ErrInvalidValue, "changes.not a uri",
		},
		{
			"request id",
			`{"id":1.5}`,
			new(CancelParams), ErrInvalidValue, "id",
		},
		{
			"union inside list",
			`{"isIncomplete":false,"items":[{"label":"a","documentation":5}]}`,
			new(CompletionList), ErrStructural, "items[0].documentation",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Unmarshal([]byte(tc.data), tc.v)
			require.ErrorIs(t, err, tc.want)
			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.path, de.Path)
			assert.True(t, strings.HasPrefix(err.Error(), tc.path+": "), err.Error())
		})
	}
}

func TestUnmarshalExactKeys(t *testing.T) {
	var a CodeAction
	require.NoError(t, Unmarshal([]byte(`{"title":"t","KIND":"quickfix"}`), &a))
	assert.Nil(t, a.Kind)
	assert.Equal(t, `{"title":"t"}`, mustMarshal(t, a))

	require.NoError(t, Unmarshal([]byte(`{"Title":"x","title":"t"}`), &a))
	assert.Equal(t, "t", a.Title)

	err := Unmarshal([]byte(`{"TITLE":"t"}`), &a)
	require.ErrorIs(t, err, ErrMissingField)
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "title", de.Path)

	var p Position
	err = Unmarshal([]byte(`{"Line":1,"character":2}`), &p)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestUnmarshalResetsAbsentFields(t *testing.T) {
	a := CodeAction{Title: "old", Kind: ptr(CodeActionKindRefactor), IsPreferred: ptr(true)}
	require.NoError(t, Unmarshal([]byte(`{"title":"new"}`), &a))
	assert.Equal(t, CodeAction{Title: "new"}, a)
}

func TestRequiredListsEncodeEmpty(t *testing.T) {
	params := CodeActionParams{
		TextDocument: TextDocumentIdentifier{URI: MustParseURI("file:///a.go")},
		Range:        NewRange(NewPosition(1, 0), NewPosition(1, 4)),
	}
	data := mustMarshal(t, params)
	assert.JSONEq(t, `{"textDocument":{"uri":"file:///a.go"},"range":{"start":{"line":1,"character":0},"end":{"line":1,"character":4}},"context":{"diagnostics":[]}}`, data)
	var back CodeActionParams
	require.NoError(t, Unmarshal([]byte(data), &back))
	assert.Equal(t, data, mustMarshal(t, back))

	assert.Equal(t, `{"items":[]}`, mustMarshal(t, ConfigurationParams{}))
	assert.Equal(t, `{"items":[]}`, mustMarshal(t, &ConfigurationParams{}))
	require.NoError(t, Unmarshal([]byte(mustMarshal(t, ConfigurationParams{})), new(ConfigurationParams)))

	// Optional and nullable lists keep their own encodings.
	assert.Equal(t, `{"title":"t"}`, mustMarshal(t, CodeAction{Title: "t"}))
	assert.Equal(t, `{"documentSelector":null}`, mustMarshal(t, TextDocumentRegistrationOptions{}))

	// The caller's value is not modified.
	assert.Nil(t, params.Context.Diagnostics)
}
