package style

// Styleable is the capability of a scene node to take part in styling.
//
// Concrete node kinds (groups, shapes, text) implement it; the styling engine
// does not need to know about them.
type Styleable interface {
	StyleTypes() []string           // type ancestry chain, most specific first, e.g. ["Rectangle", "Shape", "Node"]
	StyleID() string                // id, matched by #id selectors
	StyleClasses() []string         // style classes, matched by .class selectors
	PseudoClasses() []string        // active pseudo-class states, matched by :state selectors
	InlineStyle() string            // inline style string, may be empty
	StyleableParent() Styleable     // nil for the root
	StyleableChildren() []Styleable // children in document order
	StyleState() *State             // per-node style state; never nil
}

// Describe returns a short selector-like description of a node, for
// diagnostics, e.g. "Rectangle#rect.big:hover".
func Describe(n Styleable) string {
	if n == nil {
		return "<nil>"
	}
	s := "?"
	if types := n.StyleTypes(); len(types) > 0 {
		s = types[0]
	}
	if id := n.StyleID(); id != "" {
		s += "#" + id
	}
	for _, c := range n.StyleClasses() {
		s += "." + c
	}
	for _, pc := range n.PseudoClasses() {
		s += ":" + pc
	}
	return s
}
