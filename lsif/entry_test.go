package lsif

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/corymhall/lstypes/lsp"
	"github.com/google/go-cmp/cmp"
	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryRoundTrip(t *testing.T) {
	f, err := os.Open("testdata/sample.lsif")
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		e, err := Decode([]byte(line))
		require.NoError(t, err, line)
		out, err := Encode(e)
		require.NoError(t, err, line)
		assert.JSONEq(t, line, string(out))
	}
	require.NoError(t, scanner.Err())
}

func TestDecodeVertex(t *testing.T) {
	e, err := Decode([]byte(`{"id":9,"type":"vertex","label":"range","start":{"line":0,"character":9},"end":{"line":0,"character":12},"tag":{"type":"definition","text":"bar","kind":12,"fullRange":{"start":{"line":0,"character":0},"end":{"line":2,"character":1}}}}`))
	require.NoError(t, err)
	require.Equal(t, lsp.NewNumber(9), e.ID)

	v, ok := e.Vertex()
	require.True(t, ok)
	assert.Equal(t, VertexLabelRange, v.VertexLabel())
	_, ok = e.Edge()
	assert.False(t, ok)

	r := v.(*Range)
	want := lsp.Range{
		Start: lsp.Position{Line: 0, Character: 9},
		End:   lsp.Position{Line: 0, Character: 12},
	}
	if diff := cmp.Diff(want, r.Range); diff != "" {
		t.Errorf("range mismatch (-want +got):\n%s", diff)
	}
	require.NotNil(t, r.Tag)
	require.NotNil(t, r.Tag.Definition)
	assert.Equal(t, "bar", r.Tag.Definition.Text)
	assert.Equal(t, lsp.SymbolKindFunction, r.Tag.Definition.Kind)
}

func TestDecodeEdge(t *testing.T) {
	e, err := Decode([]byte(`{"id":"e1","type":"edge","label":"textDocument/hover","outV":6,"inV":"h1"}`))
	require.NoError(t, err)
	require.Equal(t, lsp.NewString("e1"), e.ID)

	edge, ok := e.Edge()
	require.True(t, ok)
	single := edge.(*SingleEdge)
	assert.Equal(t, EdgeLabelHover, single.EdgeLabel())
	assert.Equal(t, lsp.NewNumber(6), single.OutV)
	assert.Equal(t, lsp.NewString("h1"), single.InV)
}

func TestDecodeItemEdge(t *testing.T) {
	e, err := Decode([]byte(`{"id":20,"type":"edge","label":"item","outV":18,"inVs":[9,10],"document":4,"property":"definitions"}`))
	require.NoError(t, err)
	item := e.Element.(*Item)
	require.Equal(t, []ID{lsp.NewNumber(9), lsp.NewNumber(10)}, item.InVs)
	require.Equal(t, lsp.NewNumber(4), item.Document)
	require.NotNil(t, item.Property)
	assert.Equal(t, ItemKindDefinitions, *item.Property)
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
		path string
	}{
		{"unknown vertex label", `{"id":1,"type":"vertex","label":"nope"}`, lsp.ErrUnknownDiscriminator, "label"},
		{"unknown edge label", `{"id":1,"type":"edge","label":"nope","outV":1,"inV":2}`, lsp.ErrUnknownDiscriminator, "label"},
		{"unknown type", `{"id":1,"type":"hyperedge","label":"next"}`, lsp.ErrUnknownDiscriminator, "type"},
		{"missing label", `{"id":1,"type":"vertex"}`, lsp.ErrMissingField, "label"},
		{"missing inV", `{"id":1,"type":"edge","label":"next","outV":1}`, lsp.ErrMissingField, "inV"},
		{"not an object", `[1,2]`, lsp.ErrStructural, ""},
		{"unknown range tag", `{"id":1,"type":"vertex","label":"range","start":{"line":0,"character":0},"end":{"line":0,"character":1},"tag":{"type":"weird","text":"x"}}`, lsp.ErrUnknownDiscriminator, "type"},
		{"bad position encoding", `{"id":1,"type":"vertex","label":"metaData","version":"0.6.0","projectRoot":"file:///a","positionEncoding":"utf-8"}`, lsp.ErrUnknownDiscriminator, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			var de *lsp.DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.path, de.Path)
		})
	}
}

func TestEncodeEntry(t *testing.T) {
	tag := RangeTag{Reference: &ReferenceTag{Text: "bar"}}
	e := NewEntry(lsp.NewNumber(16), &Range{
		Range: lsp.Range{
			Start: lsp.Position{Line: 3},
			End:   lsp.Position{Line: 3, Character: 3},
		},
		Tag: &tag,
	})
	out, err := Encode(e)
	require.NoError(t, err)
	autogold.Expect(`{"id":16,"type":"vertex","label":"range","start":{"line":3,"character":0},"end":{"line":3,"character":3},"tag":{"type":"reference","text":"bar"}}`).Equal(t, string(out))

	out, err = Encode(NewEntry(lsp.NewNumber(11), &DefinitionResult{}))
	require.NoError(t, err)
	autogold.Expect(`{"id":11,"type":"vertex","label":"definitionResult"}`).Equal(t, string(out))

	out, err = Encode(NewEntry(lsp.NewNumber(8), NewSingleEdge(EdgeLabelMoniker, lsp.NewNumber(6), lsp.NewNumber(7))))
	require.NoError(t, err)
	autogold.Expect(`{"id":8,"type":"edge","label":"moniker","inV":7,"outV":6}`).Equal(t, string(out))

	_, err = Encode(Entry{ID: lsp.NewNumber(1)})
	assert.Error(t, err)
}

func TestEncodeNilElement(t *testing.T) {
	for _, el := range []Element{(*Document)(nil), (*SingleEdge)(nil), (*Item)(nil)} {
		_, err := Encode(NewEntry(lsp.NewNumber(3), el))
		require.Error(t, err)
		assert.ErrorContains(t, err, "entry 3 has a nil")
	}
}

func TestStream(t *testing.T) {
	ctx := context.Background()
	data, err := os.ReadFile("testdata/sample.lsif")
	require.NoError(t, err)

	// blank lines are skipped and the last line needs no newline
	in := "\n" + strings.ReplaceAll(string(data), "\n{\"id\":2,", "\n\n{\"id\":2,")
	in = strings.TrimSuffix(in, "\n")

	dec := NewDecoder(strings.NewReader(in))
	var out bytes.Buffer
	enc := NewEncoder(&out)
	var n int
	for {
		e, _, err := dec.Read(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		_, err = enc.Write(ctx, e)
		require.NoError(t, err)
		n++
	}
	assert.Equal(t, 31, n)

	want := strings.Split(strings.TrimSpace(string(data)), "\n")
	got := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, got, len(want))
	for i := range want {
		assert.JSONEq(t, want[i], got[i])
	}
}

func TestStreamReportsLine(t *testing.T) {
	dec := NewDecoder(strings.NewReader("{\"id\":1,\"type\":\"vertex\",\"label\":\"resultSet\"}\n\n{\"id\":2}\n"))
	_, _, err := dec.Read(context.Background())
	require.NoError(t, err)
	_, _, err = dec.Read(context.Background())
	require.ErrorContains(t, err, "line 3")
	assert.ErrorIs(t, err, lsp.ErrMissingField)
}

func TestStreamCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewDecoder(strings.NewReader("")).Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = NewEncoder(io.Discard).Write(ctx, NewEntry(lsp.NewNumber(1), &ResultSet{}))
	assert.ErrorIs(t, err, context.Canceled)
}
