package scene

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/scenecss/style"
	"github.com/npillmayer/scenecss/style/css"
	"github.com/npillmayer/scenecss/tree"
	"github.com/npillmayer/tyse/core/dimen"
)

// ChangeListener is notified whenever the materialized value of a styleable
// property of a node changes.
type ChangeListener func(n *Node, def *style.PropertyDef, old, new any)

// Node is a node of a scene, the building block of the scene tree.
type Node struct {
	tree.Node[*Node] // we build on top of general purpose tree
	kind             Kind
	id               string
	classes          []string
	pseudos          []string
	inline           string
	state            style.State
	scene            *Scene
	listeners        []ChangeListener
}

func newNode(kind Kind) *Node {
	n := &Node{kind: kind}
	n.Payload = n // Payload will always reference the node itself
	for _, def := range kind.properties() {
		n.state.Declare(def, n.propertyChanged)
	}
	return n
}

// NewNode creates a node of a given kind.
func NewNode(kind Kind) *Node { return newNode(kind) }

// NewGroup creates a group node.
func NewGroup() *Node { return newNode(GroupKind) }

// NewRectangle creates a rectangle node.
func NewRectangle() *Node { return newNode(RectangleKind) }

// NewText creates a text node.
func NewText() *Node { return newNode(TextKind) }

// FromTreeNode gets the scene node from a generic tree node.
func FromTreeNode(tn *tree.Node[*Node]) *Node {
	if tn == nil {
		return nil
	}
	return tn.Payload
}

// Kind returns the kind of the node.
func (n *Node) Kind() Kind {
	return n.kind
}

// Scene returns the scene the node is attached to, or nil.
func (n *Node) Scene() *Scene {
	return n.scene
}

func (n *Node) String() string {
	return style.Describe(n)
}

// OnChange registers a listener for changes of property values.
func (n *Node) OnChange(l ChangeListener) {
	if l != nil {
		n.listeners = append(n.listeners, l)
	}
}

func (n *Node) propertyChanged(def *style.PropertyDef, old, new any) {
	for _, l := range n.listeners {
		l(n, def, old, new)
	}
}

func (n *Node) markDirty() {
	if n.scene != nil {
		n.scene.engine.MarkDirty(n)
	}
}

// --- Tree structure --------------------------------------------------------

// AddChild appends children to n. Children are detached from a previous
// parent first. Returns n.
func (n *Node) AddChild(children ...*Node) *Node {
	for _, ch := range children {
		if ch == nil || ch == n {
			continue
		}
		if ch.IsAncestorOf(&n.Node) {
			tracer().P("node", n.String()).Errorf("cannot add ancestor %s as a child", ch)
			continue
		}
		if ch.ParentNode() != nil {
			ch.Remove()
		}
		n.Node.AddChild(&ch.Node)
		ch.attach(n.scene)
	}
	return n
}

// Remove detaches n from its parent.
func (n *Node) Remove() {
	if n.scene != nil {
		n.scene.engine.Forget(n)
	}
	n.Isolate()
	n.attach(nil)
}

func (n *Node) attach(sc *Scene) {
	n.TopDown(func(tn *tree.Node[*Node]) bool {
		tn.Payload.scene = sc
		return true
	})
	n.markDirty()
}

// ParentNode returns the parent of n, or nil.
func (n *Node) ParentNode() *Node {
	return FromTreeNode(n.Parent())
}

// ChildNodes returns the children of n.
func (n *Node) ChildNodes() []*Node {
	tc := n.Children()
	ch := make([]*Node, len(tc))
	for i, c := range tc {
		ch[i] = c.Payload
	}
	return ch
}

// --- Identity --------------------------------------------------------------

// SetID sets the id of the node. Returns n.
func (n *Node) SetID(id string) *Node {
	if n.id != id {
		n.id = id
		n.markDirty()
	}
	return n
}

// ID returns the id of the node.
func (n *Node) ID() string {
	return n.id
}

// AddStyleClass adds style classes to the node. Returns n.
func (n *Node) AddStyleClass(classes ...string) *Node {
	for _, c := range classes {
		if !contains(n.classes, c) {
			n.classes = append(n.classes, c)
			n.markDirty()
		}
	}
	return n
}

// RemoveStyleClass removes a style class from the node. Returns n.
func (n *Node) RemoveStyleClass(class string) *Node {
	for i, c := range n.classes {
		if c == class {
			n.classes = append(n.classes[:i], n.classes[i+1:]...)
			n.markDirty()
			break
		}
	}
	return n
}

// SetPseudoClass switches a pseudo-class state like "hover" on or off.
// Returns n.
func (n *Node) SetPseudoClass(pseudo string, on bool) *Node {
	has := contains(n.pseudos, pseudo)
	if on && !has {
		n.pseudos = append(n.pseudos, pseudo)
		n.markDirty()
	} else if !on && has {
		for i, p := range n.pseudos {
			if p == pseudo {
				n.pseudos = append(n.pseudos[:i], n.pseudos[i+1:]...)
				break
			}
		}
		n.markDirty()
	}
	return n
}

// SetStyle sets the inline style of the node, e.g. "-fx-opacity: 42%".
// Inline declarations override values set programmatically. Returns n.
func (n *Node) SetStyle(inline string) *Node {
	if n.inline != inline {
		n.inline = inline
		n.markDirty()
	}
	return n
}

// Style returns the inline style of the node.
func (n *Node) Style() string {
	return n.inline
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// --- Interface style.Styleable ---------------------------------------------

// StyleTypes is part of interface style.Styleable.
func (n *Node) StyleTypes() []string { return kindTypes[n.kind] }

// StyleID is part of interface style.Styleable.
func (n *Node) StyleID() string { return n.id }

// StyleClasses is part of interface style.Styleable.
func (n *Node) StyleClasses() []string { return n.classes }

// PseudoClasses is part of interface style.Styleable.
func (n *Node) PseudoClasses() []string { return n.pseudos }

// InlineStyle is part of interface style.Styleable.
func (n *Node) InlineStyle() string { return n.inline }

// StyleState is part of interface style.Styleable.
func (n *Node) StyleState() *style.State { return &n.state }

// StyleableParent is part of interface style.Styleable.
func (n *Node) StyleableParent() style.Styleable {
	if p := n.ParentNode(); p != nil {
		return p
	}
	return nil
}

// StyleableChildren is part of interface style.Styleable.
func (n *Node) StyleableChildren() []style.Styleable {
	tc := n.Children()
	ch := make([]style.Styleable, len(tc))
	for i, c := range tc {
		ch[i] = c.Payload
	}
	return ch
}

var _ style.Styleable = &Node{}

// --- Properties ------------------------------------------------------------

func (n *Node) set(def *style.PropertyDef, v any) *Node {
	sl := n.state.Slot(def.Name)
	if sl == nil {
		tracer().P("node", n.String()).Errorf("node has no property %s", def.Name)
		return n
	}
	sl.SetByUser(v)
	return n
}

// SetProperty sets a styleable property from its CSS text, as if the
// converted value had been set with the property's setter.
func (n *Node) SetProperty(name string, value string) error {
	sl := n.state.Slot(name)
	if sl == nil {
		return fmt.Errorf("%s has no property %s", n, name)
	}
	v, err := sl.Def().Convert(style.Property(value), style.DefaultUnitContext())
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	sl.SetByUser(v)
	return nil
}

func (n *Node) get(def *style.PropertyDef) any {
	if sl := n.state.Slot(def.Name); sl != nil {
		return sl.Value()
	}
	return def.Initial
}

// Opacity returns the opacity in [0,1].
func (n *Node) Opacity() float64 { return n.get(OpacityProperty).(float64) }

// SetOpacity sets the opacity. The value is sticky against stylesheets.
func (n *Node) SetOpacity(o float64) *Node {
	if o < 0 {
		o = 0
	} else if o > 1 {
		o = 1
	}
	return n.set(OpacityProperty, o)
}

// Cursor returns the cursor shown over the node.
func (n *Node) Cursor() css.Cursor { return n.get(CursorProperty).(css.Cursor) }

// SetCursor sets the cursor. The value is sticky against stylesheets.
func (n *Node) SetCursor(c css.Cursor) *Node { return n.set(CursorProperty, c) }

// Visible returns the visibility of the node.
func (n *Node) Visible() bool { return n.get(VisibilityProperty).(bool) }

// SetVisible sets the visibility. The value is sticky against stylesheets.
func (n *Node) SetVisible(v bool) *Node { return n.set(VisibilityProperty, v) }

// Font returns the font of a text node. Other kinds return the default font.
func (n *Node) Font() css.Font { return n.get(FontProperty).(css.Font) }

// SetFont sets the font of a text node. The value is sticky against
// stylesheets and is the unit base for em lengths of the node.
func (n *Node) SetFont(f css.Font) *Node { return n.set(FontProperty, f) }

// StrokeWidth returns the stroke width of a shape in points.
func (n *Node) StrokeWidth() float64 {
	return css.Points(n.get(StrokeWidthProperty).(dimen.DU))
}

// SetStrokeWidth sets the stroke width of a shape in points.
func (n *Node) SetStrokeWidth(pt float64) *Node {
	return n.set(StrokeWidthProperty, css.FromPoints(pt))
}

// Fill returns the fill color of a shape.
func (n *Node) Fill() color.RGBA { return n.get(FillProperty).(color.RGBA) }

// SetFill sets the fill color of a shape.
func (n *Node) SetFill(c color.RGBA) *Node { return n.set(FillProperty, c) }

// Stroke returns the stroke color of a shape.
func (n *Node) Stroke() color.RGBA { return n.get(StrokeProperty).(color.RGBA) }

// SetStroke sets the stroke color of a shape.
func (n *Node) SetStroke(c color.RGBA) *Node { return n.set(StrokeProperty, c) }
