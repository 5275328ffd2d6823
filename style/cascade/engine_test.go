package cascade_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/scenecss/style"
	"github.com/npillmayer/scenecss/style/cascade"
	"github.com/npillmayer/scenecss/style/cssom"
	"github.com/npillmayer/scenecss/style/cssom/douceuradapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseNumber(p style.Property, _ style.UnitContext) (any, error) {
	if p == "boom" {
		panic("converter exploded")
	}
	return strconv.ParseFloat(p.Trimmed(), 64)
}

var (
	widthDef = style.NewPropertyDef("width", false, 0.0, parseNumber)
	colorDef = style.NewPropertyDef("color", true, "black",
		func(p style.Property, _ style.UnitContext) (any, error) {
			if p.Trimmed() == "" {
				return nil, fmt.Errorf("empty color")
			}
			return p.Trimmed(), nil
		})
)

// box is a minimal styleable with properties width and color.
type box struct {
	id       string
	classes  []string
	inline   string
	parent   *box
	children []*box
	state    style.State
}

func newBox(id string, children ...*box) *box {
	b := &box{id: id}
	b.state.Declare(widthDef, nil)
	b.state.Declare(colorDef, nil)
	for _, ch := range children {
		ch.parent = b
		b.children = append(b.children, ch)
	}
	return b
}

func (b *box) StyleTypes() []string     { return []string{"Box"} }
func (b *box) StyleID() string          { return b.id }
func (b *box) StyleClasses() []string   { return b.classes }
func (b *box) PseudoClasses() []string  { return nil }
func (b *box) InlineStyle() string      { return b.inline }
func (b *box) StyleState() *style.State { return &b.state }

func (b *box) StyleableParent() style.Styleable {
	if b.parent == nil {
		return nil
	}
	return b.parent
}

func (b *box) StyleableChildren() []style.Styleable {
	ch := make([]style.Styleable, len(b.children))
	for i, c := range b.children {
		ch[i] = c
	}
	return ch
}

func (b *box) get(name string) any { return b.state.Get(name) }

func newEngine(t *testing.T, sheet string) (*cascade.Engine, *cssom.Registry) {
	reg := cssom.NewRegistry(douceuradapter.InlineParser{})
	if sheet != "" {
		require.NoError(t, reg.Add("author", style.Author, douceuradapter.MustParse(sheet)))
	}
	return cascade.NewEngine(reg), reg
}

func TestMarkDirtyCoalesces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scenecss.cascade")
	defer teardown()
	//
	e, _ := newEngine(t, `Box { width: 5; }`)
	leaf := newBox("leaf")
	mid := newBox("mid", leaf)
	root := newBox("root", mid)
	assert.False(t, e.NeedsRestyle())
	e.MarkDirty(leaf)
	e.MarkDirty(leaf)
	e.MarkDirty(root)
	assert.True(t, e.NeedsRestyle())
	assert.Equal(t, 3, e.RunDeferredRestyle(), "leaf is covered by root")
	assert.False(t, e.NeedsRestyle())
	assert.Equal(t, 5.0, leaf.get("width"))
	assert.Zero(t, e.RunDeferredRestyle())
}

func TestRegistryChangeMarksRoots(t *testing.T) {
	e, reg := newEngine(t, "")
	b := newBox("b")
	root := newBox("root", b)
	e.AddRoot(root)
	e.RunDeferredRestyle()
	assert.Equal(t, 0.0, b.get("width"))
	require.NoError(t, reg.Add("more", style.Author, douceuradapter.MustParse(`#b { width: 7; }`)))
	assert.True(t, e.NeedsRestyle())
	e.RunDeferredRestyle()
	assert.Equal(t, 7.0, b.get("width"))
	e.RemoveRoot(root)
	assert.False(t, e.NeedsRestyle())
}

func TestCascadeRanking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scenecss.cascade")
	defer teardown()
	//
	e, _ := newEngine(t, `
		Box { width: 10 !important; }
		#b { width: 20; }
		#b.x { width: oops; }
		#c { width: 30; }
	`)
	b := newBox("b")
	b.classes = []string{"x"}
	r, err := e.Resolve(b, "width")
	require.NoError(t, err)
	assert.Equal(t, 10.0, r.Value, "important wins")
	assert.Equal(t, style.Author, r.Origin)
	c := newBox("c")
	c.inline = "width: 40"
	r, _ = e.Resolve(c, "width")
	assert.Equal(t, 10.0, r.Value, "important author beats normal inline")
	c.inline = "width: 40 !important"
	r, _ = e.Resolve(c, "width")
	assert.Equal(t, 40.0, r.Value)
	assert.Equal(t, style.Inline, r.Origin)
	_, err = e.Resolve(c, "height")
	assert.ErrorIs(t, err, cascade.ErrUnknownProperty)
}

func TestMalformedDeclarationFallsThrough(t *testing.T) {
	e, _ := newEngine(t, `#b { width: 20; } #b.x { width: oops; }`)
	b := newBox("b")
	b.classes = []string{"x"}
	r, err := e.Resolve(b, "width")
	require.NoError(t, err)
	assert.Equal(t, 20.0, r.Value)
}

func TestInheritance(t *testing.T) {
	e, _ := newEngine(t, `
		#top { color: red; width: 3; }
		#explicit { width: inherit; color: initial; }
	`)
	leaf := newBox("leaf")
	explicit := newBox("explicit")
	top := newBox("top", newBox("mid", leaf), explicit)
	e.RestyleNow(top)
	assert.Equal(t, "red", leaf.get("color"), "color inherits over two hops")
	assert.True(t, leaf.state.Slot("color").Inherited())
	assert.Equal(t, style.Author, leaf.state.Slot("color").Origin())
	assert.Equal(t, 0.0, leaf.get("width"), "width does not inherit")
	assert.Equal(t, 3.0, explicit.get("width"))
	assert.Equal(t, "black", explicit.get("color"))
}

func TestUserValueOnAncestorIsInherited(t *testing.T) {
	e, _ := newEngine(t, "")
	leaf := newBox("leaf")
	root := newBox("root", leaf)
	root.state.Slot("color").SetByUser("green")
	e.RestyleNow(root)
	assert.Equal(t, "green", leaf.get("color"))
	assert.Equal(t, style.User, leaf.state.Slot("color").Origin())
	assert.Equal(t, style.CSSSet, leaf.state.Slot("color").State())
}

func TestPanicWhileStylingIsContained(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scenecss.cascade")
	defer teardown()
	//
	e, _ := newEngine(t, `Box { color: blue; } #bad { width: boom; } #good { width: 2; }`)
	bad, good := newBox("bad"), newBox("good")
	root := newBox("root", bad, good)
	assert.NotPanics(t, func() { e.RestyleNow(root) })
	assert.Equal(t, 0.0, bad.get("width"))
	assert.Equal(t, "black", bad.get("color"), "failed node falls back to initial values")
	assert.Equal(t, 2.0, good.get("width"))
	assert.Equal(t, "blue", good.get("color"))
}

func TestMarksDuringPassAreDeferred(t *testing.T) {
	e, _ := newEngine(t, `#a { width: 1; }`)
	other := newBox("other")
	a := &box{id: "a"}
	a.state.Declare(widthDef, func(def *style.PropertyDef, old, new any) {
		e.MarkDirty(other)
	})
	e.MarkDirty(a)
	assert.Equal(t, 1, e.RunDeferredRestyle())
	assert.Equal(t, 1.0, a.get("width"))
	assert.True(t, e.NeedsRestyle(), "mark made during the pass is kept")
	assert.Equal(t, 1, e.RunDeferredRestyle())
}

func TestIdempotence(t *testing.T) {
	e, reg := newEngine(t, `#b { width: 4; color: teal; }`)
	b := newBox("b")
	e.RestyleNow(b)
	gen := b.state.Slot("width").Generation()
	assert.Equal(t, reg.Generation(), gen)
	changes := 0
	b2 := &box{id: "b"}
	b2.state.Declare(widthDef, func(*style.PropertyDef, any, any) { changes++ })
	e.RestyleNow(b2)
	e.RestyleNow(b2)
	assert.Equal(t, 1, changes)
	assert.Equal(t, 4.0, b.get("width"))
}
