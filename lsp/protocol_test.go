package lsp

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func mustMarshal(t *testing.T, v any) string {
	t.Helper()
	data, err := Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestCodeActionResponseEncoding(t *testing.T) {
	resp := CodeActionResponse{
		NewCodeActionOrCommandFromCommand(NewCommand("title", "command", nil)),
		NewCodeActionOrCommandFromCodeAction(CodeAction{
			Title: "title",
			Kind:  ptr(CodeActionKindQuickFix),
		}),
	}
	autogold.Expect(`[{"title":"title","command":"command"},{"title":"title","kind":"quickfix"}]`).Equal(t, mustMarshal(t, resp))

	var back CodeActionResponse
	require.NoError(t, Unmarshal([]byte(mustMarshal(t, resp)), &back))
	require.Len(t, back, 2)
	require.NotNil(t, back[0].Command)
	require.NotNil(t, back[1].CodeAction)
	require.Equal(t, resp, back)
}

func TestInitializeParamsMinimal(t *testing.T) {
	var p InitializeParams
	require.NoError(t, Unmarshal([]byte(`{"capabilities":{}}`), &p))
	assert.Nil(t, p.ProcessID)
	assert.Nil(t, p.RootURI)
	assert.Nil(t, p.WorkspaceFolders)
	assert.Nil(t, p.Trace)
	autogold.Expect(`{"processId":null,"rootUri":null,"capabilities":{}}`).Equal(t, mustMarshal(t, p))
}

func TestInitializeParamsMissingCapabilities(t *testing.T) {
	var p InitializeParams
	err := Unmarshal([]byte(`{"processId":1}`), &p)
	assert.ErrorIs(t, err, ErrMissingField)
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "capabilities", de.Path)
}

func TestWorkspaceEditEncoding(t *testing.T) {
	cases := []struct {
		name string
		edit WorkspaceEdit
		want string
	}{
		{"empty changes", WorkspaceEdit{Changes: map[DocumentURI][]TextEdit{}}, `{"changes":{}}`},
		{"all absent", WorkspaceEdit{}, `{}`},
		{
			"empty edit list",
			NewWorkspaceEdit(map[DocumentURI][]TextEdit{MustParseURI("file://test"): {}}),
			`{"changes":{"file://test":[]}}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mustMarshal(t, tc.edit)
			assert.Equal(t, tc.want, got)

			var back WorkspaceEdit
			require.NoError(t, Unmarshal([]byte(got), &back))
			require.Equal(t, tc.edit, back)
		})
	}
}

func TestWatchKindEncoding(t *testing.T) {
	assert.Equal(t, "1", mustMarshal(t, WatchKindCreate))
	assert.Equal(t, "3", mustMarshal(t, WatchKindCreate|WatchKindChange))
	assert.Equal(t, "7", mustMarshal(t, WatchKindCreate|WatchKindChange|WatchKindDelete))

	var k WatchKind
	assert.ErrorIs(t, Unmarshal([]byte(`8`), &k), ErrInvalidValue)
	assert.ErrorIs(t, Unmarshal([]byte(`"1"`), &k), ErrStructural)

	assert.Equal(t, "Create | Delete", (WatchKindCreate | WatchKindDelete).String())
	assert.True(t, (WatchKindCreate | WatchKindChange).Has(WatchKindChange))
	assert.False(t, WatchKindCreate.Has(WatchKindCreate|WatchKindDelete))
}

func TestWatchKindMask(t *testing.T) {
	for n := 0; n <= 255; n++ {
		var k WatchKind
		err := Unmarshal([]byte(strconv.Itoa(n)), &k)
		if n&^7 != 0 {
			assert.Error(t, err, n)
			continue
		}
		require.NoError(t, err, n)
		assert.Equal(t, strconv.Itoa(n), mustMarshal(t, k))
	}
}

func TestResourceOperationKindArray(t *testing.T) {
	kinds := []ResourceOperationKind{
		ResourceOperationKindCreate,
		ResourceOperationKindRename,
		ResourceOperationKindDelete,
	}
	assert.Equal(t, `["create","rename","delete"]`, mustMarshal(t, kinds))

	var back []ResourceOperationKind
	require.NoError(t, Unmarshal([]byte(`["create","rename","delete"]`), &back))
	assert.Equal(t, kinds, back)
	assert.ErrorIs(t, Unmarshal([]byte(`["move"]`), &back), ErrUnknownDiscriminator)
}

func TestTagSupportCompat(t *testing.T) {
	cases := []struct {
		data string
		want *TagSupport[DiagnosticTag]
	}{
		{`{"tagSupport":true}`, &TagSupport[DiagnosticTag]{ValueSet: []DiagnosticTag{}}},
		{`{"tagSupport":false}`, nil},
		{`{"tagSupport":null}`, nil},
		{`{}`, nil},
		{`{"tagSupport":{"valueSet":[1,2]}}`, &TagSupport[DiagnosticTag]{ValueSet: []DiagnosticTag{DiagnosticTagUnnecessary, DiagnosticTagDeprecated}}},
	}
	for _, tc := range cases {
		t.Run(tc.data, func(t *testing.T) {
			var c PublishDiagnosticsClientCapabilities
			require.NoError(t, Unmarshal([]byte(tc.data), &c))
			assert.Equal(t, tc.want, c.TagSupport)
		})
	}

	var c PublishDiagnosticsClientCapabilities
	require.NoError(t, Unmarshal([]byte(`{"relatedInformation":true,"tagSupport":true}`), &c))
	assert.Equal(t, `{"relatedInformation":true,"tagSupport":{"valueSet":[]}}`, mustMarshal(t, c))

	err := Unmarshal([]byte(`{"tagSupport":{}}`), &c)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestUnknownKeysAreIgnored(t *testing.T) {
	docs := []struct {
		data string
		v    func() any
	}{
		{`{"range":{"start":{"line":1,"character":2},"end":{"line":1,"character":5}},"severity":1,"code":"E1","message":"boom","tags":[2],"data":{"x":[1]}}`, func() any { return new(Diagnostic) }},
		{`{"processId":7,"rootUri":"file:///w","capabilities":{"general":{"positionEncodings":["utf-16"]}},"trace":"verbose"}`, func() any { return new(InitializeParams) }},
		{`{"title":"t","kind":"refactor.extract","isPreferred":true}`, func() any { return new(CodeAction) }},
	}
	for _, d := range docs {
		first := d.v()
		require.NoError(t, Unmarshal([]byte(d.data), first))

		var obj map[string]json.RawMessage
		require.NoError(t, json.Unmarshal([]byte(d.data), &obj))
		for i, key := range []string{"zzUnknown", "x-vendor", "_meta"} {
			obj[key] = json.RawMessage(fmt.Sprintf(`{"n":%d}`, i))
		}
		extended, err := json.Marshal(obj)
		require.NoError(t, err)

		second := d.v()
		require.NoError(t, Unmarshal(extended, second))
		require.Equal(t, first, second)
	}
}

func TestOptionalAbsence(t *testing.T) {
	d := Diagnostic{Range: NewRange(NewPosition(0, 0), NewPosition(0, 1)), Message: "m"}
	assert.Equal(t, `{"range":{"start":{"line":0,"character":0},"end":{"line":0,"character":1}},"message":"m"}`, mustMarshal(t, d))

	assert.Equal(t, `{"title":"t"}`, mustMarshal(t, CodeAction{Title: "t"}))
	assert.Equal(t, `{}`, mustMarshal(t, ClientCapabilities{}))
	assert.Equal(t, `{}`, mustMarshal(t, ServerCapabilities{}))
}

func TestOpenKindPreservation(t *testing.T) {
	for _, s := range []string{"quickfix", "refactor.move", "source.organizeImports.go", "vendor.custom", "x"} {
		var k CodeActionKind
		require.NoError(t, Unmarshal([]byte(strconv.Quote(s)), &k))
		assert.Equal(t, strconv.Quote(s), mustMarshal(t, k))
	}

	var k CodeActionKind
	require.NoError(t, Unmarshal([]byte(`"refactor.move"`), &k))
	assert.Equal(t, CodeActionKindRefactorMove, k)
	assert.Equal(t, `{"codeActionKinds":["refactor.move"]}`,
		mustMarshal(t, CodeActionOptions{CodeActionKinds: []CodeActionKind{CodeActionKindRefactorMove}}))
}

func TestClosedEnumPreservation(t *testing.T) {
	for _, n := range []int32{-5, 0, 1, 12, 26, 27, 1000} {
		var k SymbolKind
		require.NoError(t, Unmarshal([]byte(strconv.Itoa(int(n))), &k))
		assert.Equal(t, strconv.Itoa(int(n)), mustMarshal(t, k))
	}
}

func TestNumberOrString(t *testing.T) {
	var n NumberOrString
	require.NoError(t, Unmarshal([]byte(`42`), &n))
	v, ok := n.Number()
	assert.True(t, ok)
	assert.Equal(t, int32(42), v)
	assert.Equal(t, "42", mustMarshal(t, n))

	require.NoError(t, Unmarshal([]byte(`"abc"`), &n))
	s, ok := n.Str()
	assert.True(t, ok)
	assert.Equal(t, "abc", s)
	assert.Equal(t, `"abc"`, n.String())

	assert.Error(t, Unmarshal([]byte(`1.5`), &n))
	assert.Error(t, Unmarshal([]byte(`true`), &n))
}

func TestVoid(t *testing.T) {
	assert.Equal(t, "null", mustMarshal(t, Void{}))
	var v Void
	require.NoError(t, Unmarshal([]byte(`null`), &v))
	assert.ErrorIs(t, Unmarshal([]byte(`{}`), &v), ErrStructural)
}
