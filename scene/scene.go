package scene

import (
	"errors"

	"github.com/npillmayer/scenecss/style"
	"github.com/npillmayer/scenecss/style/cascade"
	"github.com/npillmayer/scenecss/style/cssom"
)

// RootStyleClass is the style class carried by the root node of every scene.
const RootStyleClass = "root"

// Scene is a tree of nodes styled by a common set of stylesheets.
type Scene struct {
	root     *Node
	registry *cssom.Registry
	engine   *cascade.Engine
	sheets   []string // author stylesheets added through this scene
}

// New creates a scene for a root node. reg holds the user-agent and author
// stylesheets; it may be shared between scenes. The font property is the
// unit base for em lengths unless overridden by options.
func New(root *Node, reg *cssom.Registry, opts ...cascade.Option) *Scene {
	if root == nil {
		panic("scene: root node must not be nil")
	}
	if root.ParentNode() != nil {
		root.Remove()
	}
	opts = append([]cascade.Option{cascade.WithUnitBase(FontProperty)}, opts...)
	sc := &Scene{
		root:     root,
		registry: reg,
		engine:   cascade.NewEngine(reg, opts...),
	}
	root.AddStyleClass(RootStyleClass)
	root.attach(sc)
	sc.engine.AddRoot(root)
	return sc
}

// Root returns the root node of the scene.
func (sc *Scene) Root() *Node {
	return sc.root
}

// Engine returns the styling engine of the scene.
func (sc *Scene) Engine() *cascade.Engine {
	return sc.engine
}

// Registry returns the stylesheet registry of the scene.
func (sc *Scene) Registry() *cssom.Registry {
	return sc.registry
}

// AddStylesheet adds an author stylesheet. It will be applied on the next
// pulse.
func (sc *Scene) AddStylesheet(name string, sheet cssom.StyleSheet) error {
	if err := sc.registry.Add(name, style.Author, sheet); err != nil {
		return err
	}
	sc.sheets = append(sc.sheets, name)
	return nil
}

// RemoveStylesheet removes an author stylesheet added with AddStylesheet.
func (sc *Scene) RemoveStylesheet(name string) error {
	for i, s := range sc.sheets {
		if s == name {
			sc.sheets = append(sc.sheets[:i], sc.sheets[i+1:]...)
			return sc.registry.Remove(name)
		}
	}
	return cssom.ErrNoSuchStylesheet
}

// Stylesheets returns the names of the author stylesheets of the scene.
func (sc *Scene) Stylesheets() []string {
	return append([]string(nil), sc.sheets...)
}

// Pulse restyles everything marked dirty since the last pulse. It returns
// the number of nodes restyled.
func (sc *Scene) Pulse() int {
	n := sc.engine.RunDeferredRestyle()
	if n > 0 {
		tracer().Debugf("pulse restyled %d node(s)", n)
	}
	return n
}

// ProcessCSS restyles n and its subtree immediately.
func (sc *Scene) ProcessCSS(n *Node) int {
	if n == nil || n.scene != sc {
		tracer().Errorf("cannot process CSS for node %v, not part of scene", n)
		return 0
	}
	return sc.engine.RestyleNow(n)
}

// ErrNotInScene is returned for nodes which are not attached to the scene.
var ErrNotInScene = errors.New("node is not part of the scene")

// Resolve computes the cascaded value of a property of n, without applying it.
func (sc *Scene) Resolve(n *Node, property string) (cascade.Resolution, error) {
	if n == nil || n.scene != sc {
		return cascade.Resolution{}, ErrNotInScene
	}
	return sc.engine.Resolve(n, property)
}

// ResetOverrides drops all programmatic settings of n. The next pulse
// restyles n from the stylesheets.
func (sc *Scene) ResetOverrides(n *Node) {
	if n != nil && n.scene == sc {
		sc.engine.ResetOverrides(n)
	}
}
