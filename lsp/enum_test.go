package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumString(t *testing.T) {
	assert.Equal(t, "File", SymbolKindFile.String())
	assert.Equal(t, "TypeParameter", SymbolKindTypeParameter.String())
	assert.Equal(t, "SymbolKind(99)", SymbolKind(99).String())
	assert.Equal(t, "Incremental", TextDocumentSyncKindIncremental.String())
	assert.Equal(t, "Unnecessary", DiagnosticTagUnnecessary.String())
}

func TestEnumParse(t *testing.T) {
	k, err := ParseSymbolKind("TypeParameter")
	require.NoError(t, err)
	assert.Equal(t, SymbolKindTypeParameter, k)

	for v := SymbolKindFile; v <= SymbolKindTypeParameter; v++ {
		back, err := ParseSymbolKind(v.String())
		require.NoError(t, err, v)
		assert.Equal(t, v, back)
	}

	_, err = ParseSymbolKind("TYPE_PARAMETER")
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = ParseSymbolKind("SymbolKind(99)")
	assert.ErrorIs(t, err, ErrInvalidValue)

	d, err := ParseDiagnosticTag("Deprecated")
	require.NoError(t, err)
	assert.Equal(t, DiagnosticTagDeprecated, d)
}

func TestClosedStringEnums(t *testing.T) {
	var m MarkupKind
	require.NoError(t, Unmarshal([]byte(`"plaintext"`), &m))
	assert.Equal(t, MarkupKindPlainText, m)
	assert.ErrorIs(t, Unmarshal([]byte(`"html"`), &m), ErrUnknownDiscriminator)
	assert.ErrorIs(t, Unmarshal([]byte(`1`), &m), ErrStructural)

	var tr TraceValue
	require.NoError(t, Unmarshal([]byte(`"messages"`), &tr))
	assert.Equal(t, TraceValueMessages, tr)
	assert.ErrorIs(t, Unmarshal([]byte(`"loud"`), &tr), ErrUnknownDiscriminator)

	var u UniquenessLevel
	assert.ErrorIs(t, Unmarshal([]byte(`"workspace"`), &u), ErrUnknownDiscriminator)
}
