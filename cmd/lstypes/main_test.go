package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDump = "../../lsif/testdata/sample.lsif"

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVerifyFile(t *testing.T) {
	out, err := execute(t, "", "lsif", "verify", sampleDump)
	require.NoError(t, err)
	autogold.Expect("17 vertices, 14 edges: ok\n").Equal(t, out)
}

func TestVerifyStdin(t *testing.T) {
	data, err := os.ReadFile(sampleDump)
	require.NoError(t, err)
	out, err := execute(t, string(data), "lsif", "verify", "-")
	require.NoError(t, err)
	assert.Equal(t, "17 vertices, 14 edges: ok\n", out)
}

func TestVerifyFollowStopsAtProjectEnd(t *testing.T) {
	out, err := execute(t, "", "lsif", "verify", "--follow", sampleDump)
	require.NoError(t, err)
	assert.Equal(t, "17 vertices, 14 edges: ok\n", out)
}

func TestVerifyProblems(t *testing.T) {
	meta := `{"id":1,"type":"vertex","label":"metaData","version":"0.6.0","projectRoot":"file:///p","positionEncoding":"utf-16"}`
	cases := []struct {
		name string
		dump []string
		want string
	}{
		{
			name: "missing header",
			dump: []string{`{"id":1,"type":"vertex","label":"resultSet"}`},
			want: "line 1: dump does not start with a metaData vertex",
		},
		{
			name: "duplicate id",
			dump: []string{meta, `{"id":1,"type":"vertex","label":"resultSet"}`},
			want: "line 2: duplicate id 1",
		},
		{
			name: "dangling edge",
			dump: []string{meta, `{"id":2,"type":"vertex","label":"resultSet"}`, `{"id":3,"type":"edge","label":"next","outV":2,"inV":9}`},
			want: "line 3: edge 3: vertex 9 is not defined before it is used",
		},
		{
			name: "item document",
			dump: []string{
				meta,
				`{"id":2,"type":"vertex","label":"definitionResult"}`,
				`{"id":3,"type":"vertex","label":"resultSet"}`,
				`{"id":4,"type":"edge","label":"item","outV":2,"inVs":[3],"document":3}`,
			},
			want: "line 4: edge 4: document 3 is not a document vertex",
		},
		{
			name: "project not ended",
			dump: []string{meta, `{"id":2,"type":"vertex","label":"project","kind":"go"}`, `{"id":3,"type":"vertex","label":"$event","kind":"begin","scope":"project","data":2}`},
			want: "1 project(s) begun but not ended",
		},
		{
			name: "empty",
			want: "empty dump",
		},
		{
			name: "bad entry",
			dump: []string{meta, `{"id":2,"type":"vertex","label":"bogus"}`},
			want: `unknown vertex label "bogus"`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, strings.Join(tc.dump, "\n"), "lsif", "verify", "-")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestVerifyMissingFile(t *testing.T) {
	_, err := execute(t, "", "lsif", "verify", filepath.Join(t.TempDir(), "nope.lsif"))
	assert.Error(t, err)
}

func TestDecodeInitialize(t *testing.T) {
	out, err := execute(t, `{"capabilities":{}}`, "decode", "initialize")
	require.NoError(t, err)
	assert.JSONEq(t, `{"processId":null,"rootUri":null,"capabilities":{}}`, out)
}

func TestDecodeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"title":"fix","kind":"quickfix"},{"title":"run","command":"run"}]`), 0o600))
	out, err := execute(t, "", "decode", "--result", "textDocument/codeAction", path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"title":"fix","kind":"quickfix"},{"title":"run","command":"run"}]`, out)
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"unknown method", `{}`, []string{"decode", "textDocument/unknown"}, `unknown method "textDocument/unknown"`},
		{"notification result", `{}`, []string{"decode", "--result", "exit"}, "exit is a notification and has no result"},
		{"not registrable", `{}`, []string{"decode", "--options", "initialize"}, "initialize cannot be registered dynamically"},
		{"both flags", `{}`, []string{"decode", "--result", "--options", "initialize"}, "mutually exclusive"},
		{"missing field", `{"textDocument":{}}`, []string{"decode", "textDocument/hover"}, "textDocument/hover params"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.stdin, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestDecodeNullResult(t *testing.T) {
	out, err := execute(t, "null", "decode", "--result", "textDocument/references")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)

	out, err = execute(t, "", "decode", "shutdown")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)
}

func TestMethods(t *testing.T) {
	out, err := execute(t, "", "methods")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 60)
	assert.Regexp(t, `^KIND\s+METHOD\s+PARAMS\s+RESULT\s+REGISTRATION$`, lines[0])
	assert.Contains(t, out, "textDocument/codeAction")
	assert.Regexp(t, `notification\s+exit\s+lsp.Void\s+-\s+-`, out)
	assert.Regexp(t, `request\s+textDocument/hover\s+lsp.HoverParams\s+\*lsp.Hover\s+lsp.HoverRegistrationOptions`, out)
}

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv("LSTYPES_LOG_LEVEL", "loud")
	_, err := execute(t, "", "methods")
	assert.ErrorContains(t, err, `unknown log level "loud"`)
}
