package figma_test

import (
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/delaneyj/figspec/figma"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(seq func(func(*figma.Node) bool)) []string {
	var out []string
	for n := range seq {
		out = append(out, n.ID)
	}
	return out
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figspec.figma")
	defer teardown()

	src, err := figma.LoadFile("testdata/file.json")
	require.NoError(t, err)
	require.NotNil(t, src.File)
	assert.Nil(t, src.Nodes)
	assert.Equal(t, "Design System", src.Name())
	assert.Equal(t, 2023, src.File.LastModified.Year())
	assert.Equal(t, "0:0", src.Root().ID)
	assert.Equal(t, figma.Fingerprint(src.Data), src.Fingerprint)
	assert.Equal(t, "Button", src.FindByID("2:1").Name)

	t.Run("file nodes response", func(t *testing.T) {
		src, err := figma.LoadFile("testdata/nodes.json")
		require.NoError(t, err)
		require.NotNil(t, src.Nodes)
		assert.Nil(t, src.File)
		// 1:2 is a TEXT node, so the frame wins even though ids are sorted
		assert.Equal(t, "1:1", src.Root().ID)
		assert.Equal(t, "Title", src.FindByID("1:2").Name)
		assert.Nil(t, src.FindByID("9:9"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := figma.LoadFile("testdata/nope.json")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown response", func(t *testing.T) {
		_, err := figma.Parse([]byte(`{"name":"x"}`))
		assert.ErrorIs(t, err, figma.ErrUnknownResponse)

		_, err = figma.DecodeFile([]byte(`{"name":"x"}`))
		assert.ErrorIs(t, err, figma.ErrMissingDocument)

		_, err = figma.DecodeFileNodes([]byte(`{"name":"x"}`))
		assert.ErrorIs(t, err, figma.ErrMissingNodes)

		_, err = figma.Parse([]byte(`[`))
		assert.Error(t, err)
	})
}

func TestFingerprint(t *testing.T) {
	a := figma.Fingerprint([]byte(`{"a":1}`))
	assert.Equal(t, a, figma.Fingerprint([]byte(`{"a":1}`)))
	assert.NotEqual(t, a, figma.Fingerprint([]byte(`{"a":2}`)))
}

func TestWalk(t *testing.T) {
	src, err := figma.LoadFile("testdata/file.json")
	require.NoError(t, err)
	doc := src.File.Document

	t.Run("pre-order", func(t *testing.T) {
		assert.Equal(t,
			[]string{"0:0", "1:0", "1:1", "1:2", "1:3", "2:0", "2:1"},
			ids(figma.Walk(doc)),
		)
		assert.Equal(t, 7, figma.Count(doc))
	})

	t.Run("early break", func(t *testing.T) {
		var seen []string
		for n := range figma.Walk(doc) {
			seen = append(seen, n.ID)
			if n.ID == "1:1" {
				break
			}
		}
		assert.Equal(t, []string{"0:0", "1:0", "1:1"}, seen)
	})

	t.Run("canvases", func(t *testing.T) {
		assert.Equal(t, []string{"1:0", "2:0"}, ids(figma.Canvases(doc)))
	})

	t.Run("find by id", func(t *testing.T) {
		n := figma.FindByID(doc, "1:2")
		require.NotNil(t, n)
		assert.Equal(t, "Title", n.Name)
		assert.Nil(t, figma.FindByID(doc, "9:9"))
	})
}

func TestFindMainNode(t *testing.T) {
	resp := &figma.FileNodesResponse{Nodes: map[string]figma.NodeEntry{
		"3:0": {Document: &figma.Node{ID: "3:0", Type: figma.TypeGroup}},
		"2:0": {Document: &figma.Node{ID: "2:0", Type: figma.TypeComponentSet}},
		"1:0": {Document: &figma.Node{ID: "1:0", Type: figma.TypeText}},
		"0:0": {},
	}}
	for range 10 {
		assert.Equal(t, "2:0", figma.FindMainNode(resp).ID)
	}

	assert.Nil(t, figma.FindMainNode(nil))
	assert.Nil(t, figma.FindMainNode(&figma.FileNodesResponse{Nodes: map[string]figma.NodeEntry{
		"1:0": {Document: &figma.Node{ID: "1:0", Type: figma.TypeText}},
	}}))
}

func TestPredicates(t *testing.T) {
	src, err := figma.LoadFile("testdata/file.json")
	require.NoError(t, err)
	card := figma.FindByID(src.File.Document, "1:1")
	title := figma.FindByID(src.File.Document, "1:2")
	hidden := figma.FindByID(src.File.Document, "1:3")

	assert.True(t, card.HasBoundingBox())
	assert.True(t, card.HasPadding())
	assert.False(t, card.HasLegacyPadding())
	assert.True(t, card.HasFills())
	assert.True(t, card.HasEffects())
	assert.True(t, card.Effects[0].IsShadow())
	assert.True(t, card.HasRadius())
	assert.False(t, card.HasRadii())
	assert.False(t, card.HasStroke())
	assert.True(t, card.IsVisible())

	assert.True(t, title.HasTypeStyle())
	assert.True(t, title.HasCharacters())
	assert.False(t, hidden.IsVisible())
	assert.False(t, hidden.HasFills())

	t.Run("invalid paint disables fills", func(t *testing.T) {
		n := &figma.Node{Fills: []figma.Paint{{Type: figma.PaintSolid, BlendMode: "NORMAL"}}}
		assert.False(t, n.HasFills())

		n.Fills = []figma.Paint{{Type: figma.PaintImage, BlendMode: "NORMAL", ScaleMode: "FILL"}}
		assert.True(t, n.HasFills())

		n.Fills = []figma.Paint{{Type: figma.PaintImage, BlendMode: "BOGUS", ScaleMode: "FILL"}}
		assert.False(t, n.HasFills())

		n.Fills = []figma.Paint{}
		assert.True(t, n.HasFills())
	})

	t.Run("stroke requires align and weight", func(t *testing.T) {
		w := 1.0
		n := &figma.Node{
			Strokes:      []figma.Paint{{Type: figma.PaintSolid, BlendMode: "NORMAL", Color: &figma.Color{A: 1}}},
			StrokeWeight: &w,
		}
		assert.False(t, n.HasStroke())
		n.StrokeAlign = "INSIDE"
		assert.True(t, n.HasStroke())
	})

	t.Run("paint defaults", func(t *testing.T) {
		p := figma.Paint{}
		assert.True(t, p.IsVisible())
		assert.Equal(t, 1.0, p.OpacityOr1())
	})
}

func TestTree(t *testing.T) {
	src, err := figma.LoadFile("testdata/file.json")
	require.NoError(t, err)

	out := figma.Tree(src.File.Document)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 8)
	assert.True(t, slices.ContainsFunc(lines, func(l string) bool {
		return strings.Contains(l, "Card (FRAME #1:1)")
	}))
	assert.Contains(t, out, "Hidden (RECTANGLE #1:3) [hidden]")
	assert.Less(t, strings.Index(out, "Page 1"), strings.Index(out, "Page 2"))
}
