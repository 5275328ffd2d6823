package styledbg_test

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/scenecss/scene"
	"github.com/npillmayer/scenecss/style"
	"github.com/npillmayer/scenecss/style/cssom"
	"github.com/npillmayer/scenecss/style/cssom/douceuradapter"
	"github.com/npillmayer/scenecss/style/styledbg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func styledScene(t *testing.T) *scene.Scene {
	reg := cssom.NewRegistry(douceuradapter.InlineParser{})
	require.NoError(t, reg.Add("author", style.Author, douceuradapter.MustParse(
		`#r { -fx-opacity: 50%; -fx-stroke: steelblue; -fx-stroke-width: 2em; }`)))
	root := scene.NewGroup().AddChild(scene.NewRectangle().SetID("r"))
	sc := scene.New(root, reg)
	sc.Pulse()
	return sc
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scenecss.cascade")
	defer teardown()
	//
	sc := styledScene(t)
	out := styledbg.Dump(sc.Root())
	t.Logf("\n%s", out)
	assert.Contains(t, out, "Group.root")
	assert.Contains(t, out, "Rectangle#r")
	assert.Contains(t, out, "author,css-set")
	assert.Contains(t, out, "-fx-opacity = 0.5")
	assert.Contains(t, out, "-fx-stroke-width = 24pt")
	assert.Contains(t, out, "-fx-stroke = #4682b4")
	only := styledbg.Dump(sc.Root(), "-fx-cursor")
	assert.NotContains(t, only, "-fx-opacity")
}

func TestToGraphViz(t *testing.T) {
	sc := styledScene(t)
	var buf bytes.Buffer
	require.NoError(t, styledbg.ToGraphViz(sc.Root(), &buf))
	dot := buf.String()
	assert.Contains(t, dot, "digraph g {")
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, "-fx-opacity")
}
