package lsp

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupRequest(t *testing.T) {
	r, ok := LookupRequest("textDocument/codeAction")
	require.True(t, ok)
	assert.Same(t, CodeActionRequest, r)
	assert.IsType(t, new(CodeActionParams), r.NewParams())
	assert.IsType(t, new(CodeActionResponse), r.NewResult())
	assert.IsType(t, new(CodeActionRegistrationOptions), r.NewRegistrationOptions())

	r, ok = LookupRequest("initialize")
	require.True(t, ok)
	assert.Nil(t, r.NewRegistrationOptions())

	_, ok = LookupRequest("textDocument/didOpen")
	assert.False(t, ok)
	_, ok = LookupRequest("$/unknown")
	assert.False(t, ok)
}

func TestLookupNotification(t *testing.T) {
	n, ok := LookupNotification("textDocument/didChange")
	require.True(t, ok)
	assert.IsType(t, new(DidChangeTextDocumentParams), n.NewParams())
	assert.IsType(t, new(TextDocumentChangeRegistrationOptions), n.NewRegistrationOptions())

	n, ok = LookupNotification("exit")
	require.True(t, ok)
	assert.Nil(t, n.NewRegistrationOptions())
}

func TestRegistriesAreSorted(t *testing.T) {
	var methods []string
	for _, r := range Requests() {
		methods = append(methods, r.Method())
	}
	assert.True(t, slices.IsSorted(methods))
	assert.Contains(t, methods, "workspace/willRenameFiles")
	assert.Contains(t, methods, "textDocument/semanticTokens/full/delta")

	methods = methods[:0]
	for _, n := range Notifications() {
		methods = append(methods, n.Method())
		assert.NotContains(t, requests, n.Method())
	}
	assert.True(t, slices.IsSorted(methods))
	assert.Contains(t, methods, "notebookDocument/didSave")
	assert.Contains(t, methods, "$/progress")
}

func TestRequestPayloads(t *testing.T) {
	params, err := HoverRequest.DecodeParams([]byte(`{"textDocument":{"uri":"file:///a.go"},"position":{"line":3,"character":7}}`))
	require.NoError(t, err)
	if diff := cmp.Diff(Position{Line: 3, Character: 7}, params.Position); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "file:///a.go", params.TextDocument.URI.String())

	data, err := HoverRequest.EncodeParams(params)
	require.NoError(t, err)
	assert.JSONEq(t, `{"textDocument":{"uri":"file:///a.go"},"position":{"line":3,"character":7}}`, string(data))

	hover, err := HoverRequest.DecodeResult([]byte(`null`))
	require.NoError(t, err)
	assert.Nil(t, hover)

	refs, err := ReferencesRequest.DecodeResult([]byte(`null`))
	require.NoError(t, err)
	assert.Nil(t, refs)

	_, err = ShutdownRequest.DecodeParams(nil)
	require.NoError(t, err)
	data, err = ShutdownRequest.EncodeResult(Void{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	_, err = HoverRequest.DecodeParams([]byte(`{"position":{"line":3,"character":7}}`))
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestNotificationPayloads(t *testing.T) {
	p, err := DidChangeWatchedFilesNotification.DecodeParams([]byte(`{"changes":[{"uri":"file:///a.go","type":2}]}`))
	require.NoError(t, err)
	require.Len(t, p.Changes, 1)

	_, err = ExitNotification.DecodeParams(nil)
	require.NoError(t, err)

	data, err := CancelRequestNotification.EncodeParams(CancelParams{ID: NewNumber(4)})
	require.NoError(t, err)
	assert.Equal(t, `{"id":4}`, string(data))
}

func TestMethodNames(t *testing.T) {
	for _, r := range Requests() {
		assert.False(t, strings.HasPrefix(r.Method(), "$/"), r.Method())
		assert.NotNil(t, r.NewParams(), r.Method())
		assert.NotNil(t, r.NewResult(), r.Method())
	}
}

// A zero payload that encodes at all must decode again without tripping
// over a null in a required position.
func TestZeroPayloadsDecode(t *testing.T) {
	check := func(t *testing.T, newValue func() any) {
		data, err := Marshal(newValue())
		if err != nil || string(data) == "null" {
			return
		}
		err = Unmarshal(data, newValue())
		if err != nil {
			assert.NotContains(t, err.Error(), "null is not allowed here", string(data))
		}
	}
	for _, r := range Requests() {
		t.Run(r.Method(), func(t *testing.T) {
			check(t, r.NewParams)
			check(t, r.NewResult)
			if r.NewRegistrationOptions() != nil {
				check(t, r.NewRegistrationOptions)
			}
		})
	}
	for _, n := range Notifications() {
		t.Run(n.Method(), func(t *testing.T) {
			check(t, n.NewParams)
			if n.NewRegistrationOptions() != nil {
				check(t, n.NewRegistrationOptions)
			}
		})
	}
}
