package cssom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/scenecss/style"
)

// Specificity is the weight of a selector: (ids, classes and pseudo-classes,
// types).
type Specificity [3]int

// Compare returns -1, 0 or 1 as s is less than, equal to or greater than o.
func (s Specificity) Compare(o Specificity) int {
	for i := 0; i < 3; i++ {
		if s[i] < o[i] {
			return -1
		} else if s[i] > o[i] {
			return 1
		}
	}
	return 0
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s[0], s[1], s[2])
}

// combinator connects two compound selectors.
type combinator uint8

const (
	descendant combinator = iota // whitespace
	child                        // '>'
)

// compound is a sequence of simple selectors without combinators, e.g.
// "Rectangle#r.big:hover".
type compound struct {
	typeName string // empty or "*" for the universal selector
	id       string
	classes  []string
	pseudos  []string
}

func (c compound) matches(n style.Styleable) bool {
	if c.typeName != "" && c.typeName != "*" {
		found := false
		for _, t := range n.StyleTypes() {
			if strings.EqualFold(t, c.typeName) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if c.id != "" && c.id != n.StyleID() {
		return false
	}
	return containsAll(n.StyleClasses(), c.classes) && containsAll(n.PseudoClasses(), c.pseudos)
}

func containsAll(have []string, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Selector is a parsed complex selector, e.g. ".root > Group Text#t".
//
// Selectors are immutable and may be shared between declarations.
type Selector struct {
	text        string
	compounds   []compound   // left to right
	combinators []combinator // combinators[i] sits between compounds[i] and compounds[i+1]
	spec        Specificity
}

// ParseSelector parses a single selector (no selector groups).
func ParseSelector(text string) (*Selector, error) {
	sel := &Selector{text: strings.TrimSpace(text)}
	if sel.text == "" {
		return nil, fmt.Errorf("empty selector")
	}
	tokens := strings.Fields(strings.ReplaceAll(sel.text, ">", " > "))
	expectCompound := true
	pendingChild := false
	for _, tok := range tokens {
		if tok == ">" {
			if expectCompound {
				return nil, fmt.Errorf("selector %q: misplaced '>'", sel.text)
			}
			pendingChild = true
			expectCompound = true
			continue
		}
		c, err := parseCompound(tok)
		if err != nil {
			return nil, fmt.Errorf("selector %q: %w", sel.text, err)
		}
		if len(sel.compounds) > 0 {
			if pendingChild {
				sel.combinators = append(sel.combinators, child)
			} else {
				sel.combinators = append(sel.combinators, descendant)
			}
		}
		pendingChild = false
		expectCompound = false
		sel.compounds = append(sel.compounds, c)
		if c.id != "" {
			sel.spec[0]++
		}
		sel.spec[1] += len(c.classes) + len(c.pseudos)
		if c.typeName != "" && c.typeName != "*" {
			sel.spec[2]++
		}
	}
	if expectCompound {
		return nil, fmt.Errorf("selector %q: dangling combinator", sel.text)
	}
	return sel, nil
}

func parseCompound(tok string) (compound, error) {
	var c compound
	if strings.ContainsAny(tok, "[]()+~,\"'") {
		return c, fmt.Errorf("unsupported selector syntax in %q", tok)
	}
	i := 0
	name := func() string {
		start := i
		for i < len(tok) && tok[i] != '#' && tok[i] != '.' && tok[i] != ':' {
			i++
		}
		return tok[start:i]
	}
	c.typeName = name()
	for i < len(tok) {
		kind := tok[i]
		i++
		n := name()
		if n == "" {
			return c, fmt.Errorf("empty name after %q", kind)
		}
		switch kind {
		case '#':
			if c.id != "" {
				return c, fmt.Errorf("more than one id in %q", tok)
			}
			c.id = n
		case '.':
			c.classes = append(c.classes, n)
		case ':':
			c.pseudos = append(c.pseudos, n)
		}
	}
	return c, nil
}

// Specificity returns the specificity of the selector.
func (sel *Selector) Specificity() Specificity {
	return sel.spec
}

func (sel *Selector) String() string {
	return sel.text
}

// Matches is a predicate: does the selector match node n?
// Matching proceeds right to left, walking up parent links for combinators.
func (sel *Selector) Matches(n style.Styleable) bool {
	if n == nil || len(sel.compounds) == 0 {
		return false
	}
	return sel.matchAt(len(sel.compounds)-1, n)
}

func (sel *Selector) matchAt(i int, n style.Styleable) bool {
	if !sel.compounds[i].matches(n) {
		return false
	}
	if i == 0 {
		return true
	}
	switch sel.combinators[i-1] {
	case child:
		p := n.StyleableParent()
		return p != nil && sel.matchAt(i-1, p)
	default:
		for p := n.StyleableParent(); p != nil; p = p.StyleableParent() {
			if sel.matchAt(i-1, p) {
				return true
			}
		}
	}
	return false
}

// ParseSelectorGroup parses a comma-separated list of selectors.
func ParseSelectorGroup(text string) ([]*Selector, error) {
	var sels []*Selector
	for _, part := range strings.Split(text, ",") {
		sel, err := ParseSelector(part)
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
	}
	return sels, nil
}
