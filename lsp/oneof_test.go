package lsp

import (
	"errors"
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneOf(t *testing.T) {
	var o OneOf[bool, HoverOptions]
	require.NoError(t, Unmarshal([]byte(`true`), &o))
	require.NotNil(t, o.Left)
	assert.True(t, *o.Left)
	assert.Nil(t, o.Right)

	require.NoError(t, Unmarshal([]byte(`{"workDoneProgress":true}`), &o))
	require.NotNil(t, o.Right)
	assert.Nil(t, o.Left)
	assert.Equal(t, `{"workDoneProgress":true}`, mustMarshal(t, o))

	err := Unmarshal([]byte(`"yes"`), &o)
	assert.ErrorIs(t, err, ErrStructural)
	assert.ErrorContains(t, err, "did not match any variant")

	_, err = Marshal(OneOf[bool, HoverOptions]{})
	assert.ErrorContains(t, err, "no alternative is set")
}

func TestHoverContents(t *testing.T) {
	cases := []struct {
		data  string
		check func(t *testing.T, c HoverContents)
	}{
		{`"plain"`, func(t *testing.T, c HoverContents) {
			require.NotNil(t, c.Scalar)
			require.NotNil(t, c.Scalar.String)
			assert.Equal(t, "plain", *c.Scalar.String)
		}},
		{`{"language":"go","value":"func f()"}`, func(t *testing.T, c HoverContents) {
			require.NotNil(t, c.Scalar)
			require.NotNil(t, c.Scalar.LanguageString)
			assert.Equal(t, "go", c.Scalar.LanguageString.Language)
		}},
		{`["a",{"language":"go","value":"x"}]`, func(t *testing.T, c HoverContents) {
			require.Len(t, c.Array, 2)
		}},
		{`[]`, func(t *testing.T, c HoverContents) {
			require.NotNil(t, c.Array)
			assert.Empty(t, c.Array)
		}},
		{`{"kind":"markdown","value":"**x**"}`, func(t *testing.T, c HoverContents) {
			require.NotNil(t, c.Markup)
			assert.Equal(t, MarkupKindMarkdown, c.Markup.Kind)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.data, func(t *testing.T) {
			var c HoverContents
			require.NoError(t, Unmarshal([]byte(tc.data), &c))
			tc.check(t, c)
			assert.JSONEq(t, tc.data, mustMarshal(t, c))
		})
	}

	var c HoverContents
	assert.Error(t, Unmarshal([]byte(`{"kind":"html","value":"x"}`), &c))
}

func TestGotoDefinitionResponse(t *testing.T) {
	loc := `{"uri":"file:///a.go","range":{"start":{"line":1,"character":0},"end":{"line":1,"character":4}}}`
	link := `{"targetUri":"file:///a.go","targetRange":{"start":{"line":1,"character":0},"end":{"line":3,"character":1}},"targetSelectionRange":{"start":{"line":1,"character":5},"end":{"line":1,"character":6}}}`

	var r GotoDefinitionResponse
	require.NoError(t, Unmarshal([]byte(loc), &r))
	assert.NotNil(t, r.Scalar)

	require.NoError(t, Unmarshal([]byte("["+loc+"]"), &r))
	assert.Len(t, r.Array, 1)
	assert.Nil(t, r.Link)

	require.NoError(t, Unmarshal([]byte("["+link+"]"), &r))
	assert.Len(t, r.Link, 1)
	assert.Nil(t, r.Array)

	require.NoError(t, Unmarshal([]byte(`[]`), &r))
	assert.NotNil(t, r.Array)
	assert.Equal(t, `[]`, mustMarshal(t, r))

	assert.Equal(t, `[]`, mustMarshal(t, NewGotoDefinitionLink(nil)))
}

func TestDocumentDiagnosticReport(t *testing.T) {
	var r DocumentDiagnosticReport
	require.NoError(t, Unmarshal([]byte(`{"kind":"full","resultId":"1","items":[]}`), &r))
	require.NotNil(t, r.Full)
	assert.Equal(t, "1", *r.Full.ResultID)
	assert.JSONEq(t, `{"kind":"full","resultId":"1","items":[]}`, mustMarshal(t, r))

	require.NoError(t, Unmarshal([]byte(`{"kind":"unchanged","resultId":"2"}`), &r))
	require.NotNil(t, r.Unchanged)
	assert.Nil(t, r.Full)
	autogold.Expect(`{"kind":"unchanged","resultId":"2"}`).Equal(t, mustMarshal(t, r))

	err := Unmarshal([]byte(`{"kind":"partial","items":[]}`), &r)
	assert.ErrorIs(t, err, ErrUnknownDiscriminator)
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "kind", de.Path)

	assert.ErrorIs(t, Unmarshal([]byte(`{"items":[]}`), &r), ErrMissingField)
	assert.ErrorIs(t, Unmarshal([]byte(`{"kind":"full"}`), &r), ErrMissingField)

	var result DocumentDiagnosticReportResult
	require.NoError(t, Unmarshal([]byte(`{"relatedDocuments":{}}`), &result))
	require.NotNil(t, result.Partial)
	assert.Nil(t, result.Report)
}

func TestProviderUnion(t *testing.T) {
	var c DiagnosticServerCapabilities
	require.NoError(t, Unmarshal([]byte(`{"interFileDependencies":true,"workspaceDiagnostics":false}`), &c))
	require.NotNil(t, c.Options)
	assert.Nil(t, c.RegistrationOptions)

	require.NoError(t, Unmarshal([]byte(`{"id":"diag","documentSelector":null,"interFileDependencies":true,"workspaceDiagnostics":false}`), &c))
	require.NotNil(t, c.RegistrationOptions)
	assert.Nil(t, c.Options)
	require.NotNil(t, c.RegistrationOptions.ID)
	assert.Equal(t, "diag", *c.RegistrationOptions.ID)

	var d DeclarationCapability
	require.NoError(t, Unmarshal([]byte(`false`), &d))
	require.NotNil(t, d.Simple)
	assert.False(t, *d.Simple)
}

func TestTextDocumentSyncCapability(t *testing.T) {
	var c TextDocumentSyncCapability
	require.NoError(t, Unmarshal([]byte(`2`), &c))
	require.NotNil(t, c.Kind)
	assert.Equal(t, TextDocumentSyncKindIncremental, *c.Kind)

	require.NoError(t, Unmarshal([]byte(`{"openClose":true,"change":1,"save":{"includeText":true}}`), &c))
	require.NotNil(t, c.Options)
	assert.JSONEq(t, `{"openClose":true,"change":1,"save":{"includeText":true}}`, mustMarshal(t, c))

	require.NoError(t, Unmarshal([]byte(`{"save":true}`), &c))
	require.NotNil(t, c.Options)
	assert.Equal(t, `{"save":true}`, mustMarshal(t, c))
}
