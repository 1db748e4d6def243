package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentChanges(t *testing.T) {
	edits := `{"documentChanges":[{"textDocument":{"uri":"file:///a.go","version":3},"edits":[{"range":{"start":{"line":0,"character":0},"end":{"line":0,"character":1}},"newText":"x"}]}]}`
	var w WorkspaceEdit
	require.NoError(t, Unmarshal([]byte(edits), &w))
	require.NotNil(t, w.DocumentChanges)
	require.Len(t, w.DocumentChanges.Edits, 1)
	assert.Nil(t, w.DocumentChanges.Operations)
	assert.JSONEq(t, edits, mustMarshal(t, w))

	ops := `{"documentChanges":[{"kind":"create","uri":"file:///b.go","options":{"overwrite":true}},{"kind":"rename","oldUri":"file:///b.go","newUri":"file:///c.go"},{"textDocument":{"uri":"file:///c.go","version":null},"edits":[]},{"kind":"delete","uri":"file:///d","options":{"recursive":true}}]}`
	require.NoError(t, Unmarshal([]byte(ops), &w))
	require.Len(t, w.DocumentChanges.Operations, 4)
	assert.Nil(t, w.DocumentChanges.Edits)
	require.NotNil(t, w.DocumentChanges.Operations[0].Op)
	assert.NotNil(t, w.DocumentChanges.Operations[0].Op.Create)
	assert.NotNil(t, w.DocumentChanges.Operations[1].Op.Rename)
	require.NotNil(t, w.DocumentChanges.Operations[2].Edit)
	assert.Nil(t, w.DocumentChanges.Operations[2].Edit.TextDocument.Version)
	assert.NotNil(t, w.DocumentChanges.Operations[3].Op.Delete)
	assert.JSONEq(t, ops, mustMarshal(t, w))

	err := Unmarshal([]byte(`{"documentChanges":[{"kind":"move","uri":"file:///b.go"}]}`), &w)
	assert.ErrorIs(t, err, ErrStructural)
}

func TestResourceOp(t *testing.T) {
	var op ResourceOp
	err := Unmarshal([]byte(`{"kind":"move","uri":"file:///b.go"}`), &op)
	assert.ErrorIs(t, err, ErrUnknownDiscriminator)
	assert.ErrorIs(t, Unmarshal([]byte(`{"uri":"file:///b.go"}`), &op), ErrMissingField)

	_, err = Marshal(ResourceOp{})
	assert.ErrorContains(t, err, "no alternative is set")
	assert.JSONEq(t, `{"kind":"delete","uri":"file:///x"}`, mustMarshal(t, ResourceOp{Delete: &DeleteFile{URI: MustParseURI("file:///x")}}))
}

func TestNotebookDocumentFilter(t *testing.T) {
	var f NotebookDocumentFilter
	require.NoError(t, Unmarshal([]byte(`{"scheme":"file"}`), &f))
	require.NotNil(t, f.Scheme)
	assert.Equal(t, "file", *f.Scheme)
	assert.Nil(t, f.NotebookType)

	assert.ErrorIs(t, Unmarshal([]byte(`{}`), &f), ErrMissingField)
	assert.ErrorIs(t, Unmarshal([]byte(`"file"`), &f), ErrStructural)
}
