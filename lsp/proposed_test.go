//go:build proposed

package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposedFields(t *testing.T) {
	r, ok := LookupRequest("textDocument/inlineCompletion")
	require.True(t, ok)
	assert.Same(t, InlineCompletionRequest, r)

	var p InitializeParams
	require.NoError(t, Unmarshal([]byte(`{"capabilities":{"offsetEncoding":["utf-8","utf-16"]}}`), &p))
	assert.Equal(t, []string{"utf-8", "utf-16"}, p.Capabilities.OffsetEncoding)

	var res InitializeResult
	require.NoError(t, Unmarshal([]byte(`{"capabilities":{"inlineCompletionProvider":true},"offsetEncoding":"utf-8"}`), &res))
	require.NotNil(t, res.OffsetEncoding)
	assert.Equal(t, "utf-8", *res.OffsetEncoding)
	assert.JSONEq(t, `{"capabilities":{"inlineCompletionProvider":true},"offsetEncoding":"utf-8"}`, mustMarshal(t, res))
}

func TestInlineCompletion(t *testing.T) {
	params, err := InlineCompletionRequest.DecodeParams([]byte(`{"textDocument":{"uri":"file:///a.go"},"position":{"line":1,"character":2},"context":{"triggerKind":2}}`))
	require.NoError(t, err)
	assert.Equal(t, InlineCompletionTriggerKindAutomatic, params.Context.TriggerKind)
	assert.Equal(t, "Automatic", params.Context.TriggerKind.String())

	result, err := InlineCompletionRequest.DecodeResult([]byte(`[{"insertText":"fmt.Println()"}]`))
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Array, 1)

	result, err = InlineCompletionRequest.DecodeResult([]byte(`{"items":[]}`))
	require.NoError(t, err)
	require.NotNil(t, result.List)

	result, err = InlineCompletionRequest.DecodeResult([]byte(`null`))
	require.NoError(t, err)
	assert.Nil(t, result)
}
