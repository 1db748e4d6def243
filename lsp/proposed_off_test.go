//go:build !proposed

package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposedFieldsAreCompiledOut(t *testing.T) {
	_, ok := LookupRequest("textDocument/inlineCompletion")
	assert.False(t, ok)

	var p InitializeParams
	require.NoError(t, Unmarshal([]byte(`{"capabilities":{"offsetEncoding":["utf-8"]}}`), &p))
	assert.Equal(t, `{}`, mustMarshal(t, p.Capabilities))

	var r InitializeResult
	require.NoError(t, Unmarshal([]byte(`{"capabilities":{"inlineCompletionProvider":true},"offsetEncoding":"utf-8"}`), &r))
	assert.Equal(t, `{"capabilities":{}}`, mustMarshal(t, r))
}
