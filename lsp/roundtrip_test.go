package lsp

import (
	"bytes"
	"encoding/json"
	"errors"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Files under testdata/roundtrip are named <method>.<params|result|options>.json
// with every "/" of the method replaced by "_".
const roundTripDir = "testdata/roundtrip"

func fixturePayload(t *testing.T, name string) any {
	t.Helper()
	method, kind, ok := strings.Cut(strings.TrimSuffix(name, ".json"), ".")
	require.True(t, ok, "fixture %s has no payload kind", name)
	method = strings.ReplaceAll(method, "_", "/")

	var v any
	if r, ok := LookupRequest(method); ok {
		switch kind {
		case "params":
			v = r.NewParams()
		case "result":
			v = r.NewResult()
		case "options":
			v = r.NewRegistrationOptions()
		}
	} else if n, ok := LookupNotification(method); ok {
		switch kind {
		case "params":
			v = n.NewParams()
		case "options":
			v = n.NewRegistrationOptions()
		}
	} else {
		t.Fatalf("fixture %s names unknown method %s", name, method)
	}
	require.NotNil(t, v, "fixture %s: %s has no %s payload", name, method, kind)
	return v
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(roundTripDir, name))
	require.NoError(t, err)
	return data
}

func decodeTree(t *testing.T, data []byte) any {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree any
	require.NoError(t, dec.Decode(&tree))
	return tree
}

// withUnknownKeys adds keys no record declares to the top level object, or
// to every object of a top level array. Besides new names it adds the
// upper case spelling of each existing key.
func withUnknownKeys(t *testing.T, data []byte) []byte {
	t.Helper()
	inject := func(v any) {
		obj, ok := v.(map[string]any)
		if !ok {
			return
		}
		for _, key := range slices.Collect(maps.Keys(obj)) {
			if upper := strings.ToUpper(key); upper != key {
				obj[upper] = map[string]any{"n": 0}
			}
		}
		obj["zzUnknown"] = map[string]any{"n": 1}
		obj["x-vendor"] = []any{"a", 2}
		obj["_meta"] = nil
	}
	tree := decodeTree(t, data)
	switch v := tree.(type) {
	case []any:
		for _, elem := range v {
			inject(elem)
		}
	default:
		inject(v)
	}
	out, err := json.Marshal(tree)
	require.NoError(t, err)
	return out
}

// replaceAt sets the value found by following at through objects and
// arrays of data to the JSON text value.
func replaceAt(t *testing.T, data []byte, at []string, value string) []byte {
	t.Helper()
	require.NotEmpty(t, at)
	tree := decodeTree(t, data)
	set := func(parent any, seg string, v any) {
		switch p := parent.(type) {
		case map[string]any:
			_, ok := p[seg]
			require.True(t, ok, "no member %q", seg)
			p[seg] = v
		case []any:
			i, err := strconv.Atoi(seg)
			require.NoError(t, err)
			require.Less(t, i, len(p))
			p[i] = v
		default:
			t.Fatalf("cannot descend into %T at %q", parent, seg)
		}
	}
	get := func(parent any, seg string) any {
		switch p := parent.(type) {
		case map[string]any:
			v, ok := p[seg]
			require.True(t, ok, "no member %q", seg)
			return v
		case []any:
			i, err := strconv.Atoi(seg)
			require.NoError(t, err)
			require.Less(t, i, len(p))
			return p[i]
		}
		t.Fatalf("cannot descend into %T at %q", parent, seg)
		return nil
	}
	cur := tree
	for _, seg := range at[:len(at)-1] {
		cur = get(cur, seg)
	}
	set(cur, at[len(at)-1], json.RawMessage(value))
	out, err := json.Marshal(tree)
	require.NoError(t, err)
	return out
}

func TestRoundTripFixtures(t *testing.T) {
	files, err := filepath.Glob(filepath.Join(roundTripDir, "*.json"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		name := filepath.Base(file)
		t.Run(name, func(t *testing.T) {
			data := readFixture(t, name)

			v := fixturePayload(t, name)
			require.NoError(t, Unmarshal(data, v))
			encoded, err := Marshal(v)
			require.NoError(t, err)
			assert.JSONEq(t, string(data), string(encoded))

			w := fixturePayload(t, name)
			require.NoError(t, Unmarshal(withUnknownKeys(t, data), w))
			again, err := Marshal(w)
			require.NoError(t, err)
			assert.JSONEq(t, string(encoded), string(again))
		})
	}
}

func TestRoundTripFixtureErrors(t *testing.T) {
	const mainGo = "file:///home/dev/app/main.go"
	cases := []struct {
		file  string
		at    []string
		value string
		want  error
		path  string
	}{
		// completion
		{"completionItem_resolve.params.json", []string{"textEdit", "insert", "start", "line"}, `-1`, ErrInvalidValue, "textEdit.insert.start.line"},
		{"completionItem_resolve.params.json", []string{"kind"}, `"function"`, ErrStructural, "kind"},
		{"textDocument_completion.result.json", []string{"items", "0", "kind"}, `"x"`, ErrStructural, "items[0].kind"},
		{"textDocument_completion.result.json", []string{"itemDefaults", "editRange", "insert"}, `5`, ErrStructural, "itemDefaults.editRange"},
		{"textDocument_completion.params.json", []string{"workDoneToken"}, `1.5`, ErrInvalidValue, "workDoneToken"},
		{"textDocument_completion.params.json", []string{"context", "triggerKind"}, `"2"`, ErrStructural, "context.triggerKind"},
		{"textDocument_completion.options.json", []string{"triggerCharacters", "1"}, `1`, ErrStructural, "triggerCharacters[1]"},

		// semantic tokens delta
		{"textDocument_semanticTokens_full_delta.params.json", []string{"previousResultId"}, `17`, ErrStructural, "previousResultId"},
		{"textDocument_semanticTokens_full_delta.result.json", []string{"edits", "0", "data"}, `[1,2,3]`, ErrInvalidValue, "edits[0].data"},

		// notebook sync
		{"notebookDocument_didChange.params.json", []string{"change", "cells", "structure", "array", "cells", "0", "kind"}, `"code"`, ErrStructural, "change.cells.structure.array.cells[0].kind"},
		{"notebookDocument_didChange.params.json", []string{"change", "cells", "textContent", "0", "document", "uri"}, `"cell 2"`, ErrInvalidValue, "change.cells.textContent[0].document.uri"},
		{"notebookDocument_didOpen.options.json", []string{"notebookSelector", "0", "cells", "0", "language"}, `1`, ErrStructural, "notebookSelector[0].cells[0].language"},

		// inlay hints
		{"textDocument_inlayHint.result.json", []string{"1", "label", "0", "value"}, `5`, ErrStructural, "[1].label[0].value"},
		{"textDocument_inlayHint.params.json", []string{"range", "end"}, `"x"`, ErrStructural, "range.end"},
		{"textDocument_inlayHint.options.json", []string{"resolveProvider"}, `"yes"`, ErrStructural, "resolveProvider"},

		// call and type hierarchy
		{"callHierarchy_incomingCalls.params.json", []string{"item", "selectionRange"}, `null`, ErrStructural, "item.selectionRange"},
		{"callHierarchy_incomingCalls.result.json", []string{"0", "fromRanges"}, `null`, ErrStructural, "[0].fromRanges"},
		{"callHierarchy_outgoingCalls.result.json", []string{"0", "to", "kind"}, `"method"`, ErrStructural, "[0].to.kind"},
		{"typeHierarchy_supertypes.params.json", []string{"item", "uri"}, `"bad uri"`, ErrInvalidValue, "item.uri"},
		{"textDocument_prepareTypeHierarchy.options.json", []string{"documentSelector", "0"}, `null`, ErrStructural, "documentSelector[0]"},

		// diagnostic reports
		{"textDocument_diagnostic.params.json", []string{"textDocument"}, `[]`, ErrStructural, "textDocument"},
		{"textDocument_diagnostic.result.json", []string{"relatedDocuments", "file:///home/dev/app/util.go", "kind"}, `"stale"`, ErrUnknownDiscriminator, "relatedDocuments.file:///home/dev/app/util.go.kind"},
		{"textDocument_diagnostic.options.json", []string{"interFileDependencies"}, `"yes"`, ErrStructural, "interFileDependencies"},
		{"workspace_diagnostic.params.json", []string{"previousResultIds", "0", "value"}, `null`, ErrStructural, "previousResultIds[0].value"},
		{"workspace_diagnostic.result.json", []string{"items", "1", "kind"}, `"gone"`, ErrUnknownDiscriminator, "items[1].kind"},

		// file operations
		{"workspace_willRenameFiles.params.json", []string{"files", "0", "newUri"}, `false`, ErrStructural, "files[0].newUri"},
		{"workspace_willRenameFiles.options.json", []string{"filters", "0", "pattern", "matches"}, `"symlink"`, ErrUnknownDiscriminator, "filters[0].pattern.matches"},
		{"workspace_willRenameFiles.result.json", []string{"changes", mainGo, "0", "newText"}, `1`, ErrStructural, "changes." + mainGo + "[0].newText"},
		{"workspace_willCreateFiles.params.json", []string{"files", "0", "uri"}, `null`, ErrStructural, "files[0].uri"},

		// registration options
		{"textDocument_codeAction.options.json", []string{"codeActionKinds", "1"}, `3`, ErrStructural, "codeActionKinds[1]"},
		{"workspace_didChangeWatchedFiles.options.json", []string{"watchers", "0", "kind"}, `8`, ErrInvalidValue, "watchers[0].kind"},
		{"workspace_didChangeWatchedFiles.options.json", []string{"watchers", "1", "globPattern", "baseUri"}, `"bad uri"`, ErrStructural, "watchers[1].globPattern.baseUri"},
	}
	for _, tc := range cases {
		t.Run(tc.file+":"+tc.path, func(t *testing.T) {
			broken := replaceAt(t, readFixture(t, tc.file), tc.at, tc.value)
			err := Unmarshal(broken, fixturePayload(t, tc.file))
			require.ErrorIs(t, err, tc.want)
			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.path, de.Path)
		})
	}
}
