package lsp

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURI(t *testing.T) {
	for _, s := range []string{
		"file:///home/user/main.go",
		"file://test",
		"untitled:Untitled-1",
		"https://example.com:8080/a/b?x=1&y=2#frag",
		"file:///c%3A/Users/me/a%20b.ts",
		"",
	} {
		u, err := ParseURI(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, u.String())
	}

	for _, s := range []string{
		"file:///a b",
		"file:///a%zz",
		"file:///a%2",
		"a#b#c",
		"http://[::1",
	} {
		_, err := ParseURI(s)
		assert.ErrorIs(t, err, ErrInvalidValue, s)
	}
}

func TestURIComponents(t *testing.T) {
	u := MustParseURI("https://example.com:8080/a/b?x=1#frag")
	assert.Equal(t, "https", u.Scheme())
	auth, ok := u.Authority()
	assert.True(t, ok)
	assert.Equal(t, "example.com:8080", auth)
	assert.Equal(t, "/a/b", u.Path())
	q, ok := u.Query()
	assert.True(t, ok)
	assert.Equal(t, "x=1", q)
	f, ok := u.Fragment()
	assert.True(t, ok)
	assert.Equal(t, "frag", f)

	u = MustParseURI("untitled:Untitled-1")
	_, ok = u.Authority()
	assert.False(t, ok)
	_, ok = u.Fragment()
	assert.False(t, ok)
	assert.Equal(t, "Untitled-1", u.Path())
}

func TestURIFragment(t *testing.T) {
	u := MustParseURI("file:///a.go#L1")
	assert.Equal(t, "file:///a.go", u.WithoutFragment().String())
	assert.Equal(t, "file:///a.go#L2", u.WithFragment("L2").String())
	assert.Equal(t, "file:///a.go#a%20b", u.WithFragment("a b").String())
}

func TestURIOrdering(t *testing.T) {
	a := MustParseURI("file:///a")
	b := MustParseURI("file:///b")
	assert.True(t, a.Equal(MustParseURI("file:///a")))
	assert.False(t, a.Equal(MustParseURI("FILE:///a")))
	assert.Equal(t, -1, a.Compare(b))

	uris := []URI{b, a}
	slices.SortFunc(uris, URI.Compare)
	assert.Equal(t, []URI{a, b}, uris)
}

func TestURIFilePath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}
	u := FromPath("/home/user/my file.go")
	assert.Equal(t, "file:///home/user/my%20file.go", u.String())
	assert.Equal(t, "/home/user/my file.go", u.FilePath())
	assert.Equal(t, URI{}, FromPath(""))

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, FromPath(filepath.Join(wd, "a.go")), FromPath("a.go"))

	win := FromPath("C:/Users/me/a b.ts")
	assert.Equal(t, "file:///C:/Users/me/a%20b.ts", win.String())
	assert.Equal(t, "C:/Users/me/a b.ts", win.FilePath())
	assert.Equal(t, "c:/Users/me/a b.ts", MustParseURI("file:///c%3A/Users/me/a%20b.ts").FilePath())

	assert.Panics(t, func() { MustParseURI("https://example.com").FilePath() })
	assert.Panics(t, func() { MustParseURI("not a uri") })
}

func TestURIJSON(t *testing.T) {
	var u URI
	require.NoError(t, Unmarshal([]byte(`"file:///a.go"`), &u))
	assert.Equal(t, "file:///a.go", u.String())

	err := Unmarshal([]byte(`42`), &u)
	assert.ErrorIs(t, err, ErrStructural)
	err = Unmarshal([]byte(`"file:///a b"`), &u)
	assert.ErrorIs(t, err, ErrInvalidValue)

	// map keys keep the exact string
	edits := map[URI][]TextEdit{MustParseURI("file:///B.go"): {}}
	data, err := Marshal(edits)
	require.NoError(t, err)
	assert.JSONEq(t, `{"file:///B.go":[]}`, string(data))

	var back map[URI][]TextEdit
	require.NoError(t, Unmarshal(data, &back))
	require.Equal(t, edits, back)
}
