package cssom_test

import "github.com/npillmayer/scenecss/style"

// node is a minimal styleable used for matching tests.
type node struct {
	types    []string
	id       string
	classes  []string
	pseudos  []string
	inline   string
	parent   *node
	children []*node
	state    style.State
}

func newNode(types ...string) *node {
	return &node{types: types}
}

func (n *node) add(children ...*node) *node {
	for _, ch := range children {
		ch.parent = n
		n.children = append(n.children, ch)
	}
	return n
}

func (n *node) withID(id string) *node           { n.id = id; return n }
func (n *node) withClasses(cls ...string) *node  { n.classes = cls; return n }
func (n *node) withPseudos(pcls ...string) *node { n.pseudos = pcls; return n }

func (n *node) StyleTypes() []string     { return n.types }
func (n *node) StyleID() string          { return n.id }
func (n *node) StyleClasses() []string   { return n.classes }
func (n *node) PseudoClasses() []string  { return n.pseudos }
func (n *node) InlineStyle() string      { return n.inline }
func (n *node) StyleState() *style.State { return &n.state }

func (n *node) StyleableParent() style.Styleable {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) StyleableChildren() []style.Styleable {
	ch := make([]style.Styleable, len(n.children))
	for i, c := range n.children {
		ch[i] = c
	}
	return ch
}
