package cascade

import (
	"errors"
	"fmt"

	"github.com/npillmayer/scenecss/style"
	"github.com/npillmayer/scenecss/style/cssom"
)

// ErrUnknownProperty is returned when resolving a property a node does not
// have.
var ErrUnknownProperty = errors.New("node has no such styleable property")

// Resolution is the outcome of the cascade for one property of one node.
type Resolution struct {
	Value     any          // resolved value
	Origin    style.Origin // origin of the winning declaration (or User/Default)
	Inherited bool         // value was taken over from an ancestor
}

func (r Resolution) String() string {
	if r.Inherited {
		return fmt.Sprintf("%v [%s, inherited]", r.Value, r.Origin)
	}
	return fmt.Sprintf("%v [%s]", r.Value, r.Origin)
}

// Option configures an Engine.
type Option func(*Engine)

// WithUnitBase sets the property whose value is the unit base for
// font-relative lengths, usually the font. Values of this property must
// implement style.FontSizer.
func WithUnitBase(def *style.PropertyDef) Option {
	return func(e *Engine) {
		e.unitBase = def
	}
}

// WithDefaultFontSize sets the font size used when no unit base can be found.
func WithDefaultFontSize(pt float64) Option {
	return func(e *Engine) {
		if pt > 0 {
			e.defaultFontSize = pt
		}
	}
}

// Engine is the styling engine for one or more scene trees.
//
// Style changes mark nodes dirty; nothing is resolved until the host calls
// RunDeferredRestyle, usually once per pulse. The engine is not safe for
// concurrent use; the host must not call it re-entrantly from different
// goroutines.
type Engine struct {
	registry        *cssom.Registry
	unitBase        *style.PropertyDef
	defaultFontSize float64
	roots           []style.Styleable
	dirty           []style.Styleable
	dirtySet        map[style.Styleable]struct{}
	matches         map[style.Styleable]*matchEntry
	pass            *pass
}

// NewEngine creates a styling engine working on the stylesheets of reg.
// Every change of reg marks all registered roots dirty.
func NewEngine(reg *cssom.Registry, opts ...Option) *Engine {
	if reg == nil {
		panic("cascade: engine needs a stylesheet registry")
	}
	e := &Engine{
		registry:        reg,
		defaultFontSize: style.DefaultFontSize,
		dirtySet:        make(map[style.Styleable]struct{}),
		matches:         make(map[style.Styleable]*matchEntry),
	}
	for _, opt := range opts {
		opt(e)
	}
	reg.OnChange(func(generation uint64) {
		tracer().Debugf("stylesheets changed, generation is now %d", generation)
		for _, r := range e.roots {
			e.MarkDirty(r)
		}
	})
	return e
}

// Registry returns the stylesheet registry of the engine.
func (e *Engine) Registry() *cssom.Registry {
	return e.registry
}

// AddRoot registers the root of a scene tree and marks it dirty.
// Roots are restyled as a whole whenever the stylesheets change.
func (e *Engine) AddRoot(root style.Styleable) {
	if root == nil {
		return
	}
	for _, r := range e.roots {
		if r == root {
			return
		}
	}
	e.roots = append(e.roots, root)
	e.MarkDirty(root)
}

// RemoveRoot unregisters a scene root and forgets all cached state of its tree.
func (e *Engine) RemoveRoot(root style.Styleable) {
	for i, r := range e.roots {
		if r == root {
			e.roots = append(e.roots[:i], e.roots[i+1:]...)
			break
		}
	}
	e.Forget(root)
}

// MarkDirty requests a restyle of n and its subtree on the next call to
// RunDeferredRestyle. Repeated marks coalesce.
func (e *Engine) MarkDirty(n style.Styleable) {
	if n == nil {
		return
	}
	if _, ok := e.dirtySet[n]; ok {
		return
	}
	e.dirtySet[n] = struct{}{}
	e.dirty = append(e.dirty, n)
	tracer().P("node", style.Describe(n)).Debugf("marked dirty")
}

// NeedsRestyle is true if any node is marked dirty.
func (e *Engine) NeedsRestyle() bool {
	return len(e.dirty) > 0
}

// Forget drops all cached state of n and its subtree, e.g. when it is
// detached from a scene.
func (e *Engine) Forget(n style.Styleable) {
	walk(n, func(m style.Styleable) {
		delete(e.matches, m)
		if _, ok := e.dirtySet[m]; ok {
			delete(e.dirtySet, m)
			for i, d := range e.dirty {
				if d == m {
					e.dirty = append(e.dirty[:i], e.dirty[i+1:]...)
					break
				}
			}
		}
	})
}

// ResetOverrides puts every property of n back to its initial value,
// dropping user settings, and marks n dirty.
func (e *Engine) ResetOverrides(n style.Styleable) {
	if n == nil {
		return
	}
	n.StyleState().ResetAll()
	e.MarkDirty(n)
}

// RunDeferredRestyle resolves all dirty subtrees in a single pass, using one
// snapshot of the stylesheets. It returns the number of nodes restyled.
// Nodes marked dirty while the pass runs are left for the next pass.
func (e *Engine) RunDeferredRestyle() int {
	if len(e.dirty) == 0 || e.pass != nil {
		return 0
	}
	batch, batchSet := e.dirty, e.dirtySet
	e.dirty, e.dirtySet = nil, make(map[style.Styleable]struct{})
	var tops []style.Styleable
	for _, n := range batch {
		if !hasAncestorIn(n, batchSet) {
			tops = append(tops, n)
		}
	}
	p := e.beginPass()
	defer e.endPass()
	tracer().Debugf("restyle pass for generation %d, %d subtree(s)", p.snap.Generation(), len(tops))
	for _, n := range tops {
		walk(n, func(m style.Styleable) { delete(e.matches, m) })
	}
	count := 0
	for _, n := range tops {
		count += e.restyleSubtree(n, p)
	}
	return count
}

// RestyleNow resolves n and its subtree immediately, independent of dirty
// marks. It returns the number of nodes restyled.
func (e *Engine) RestyleNow(n style.Styleable) int {
	if n == nil {
		return 0
	}
	for a := n.StyleableParent(); a != nil; a = a.StyleableParent() {
		delete(e.matches, a) // ancestors may have changed identity since the last pass
	}
	if e.pass != nil {
		return e.restyleSubtree(n, e.pass)
	}
	p := e.beginPass()
	defer e.endPass()
	walk(n, func(m style.Styleable) { delete(e.matches, m) })
	return e.restyleSubtree(n, p)
}

// Resolve computes the cascaded value of a property of n, without applying
// it. name must denote one of n's styleable properties or the unit-base
// property.
func (e *Engine) Resolve(n style.Styleable, name string) (Resolution, error) {
	if n == nil {
		return Resolution{}, fmt.Errorf("cannot resolve %s of nil node", name)
	}
	var def *style.PropertyDef
	if sl := n.StyleState().Slot(name); sl != nil {
		def = sl.Def()
	} else if e.unitBase != nil && e.unitBase.Name == name {
		def = e.unitBase
	}
	if def == nil {
		return Resolution{}, fmt.Errorf("%s of %s: %w", name, style.Describe(n), ErrUnknownProperty)
	}
	return e.resolve(n, def, e.queryPass()), nil
}

// EffectiveValue returns the value a property has for n after cascade and
// inheritance. def need not be a property of n itself; nodes without a slot
// for def contribute their matching declarations.
func (e *Engine) EffectiveValue(n style.Styleable, def *style.PropertyDef) any {
	if n == nil || def == nil {
		return nil
	}
	return e.resolve(n, def, e.queryPass()).Value
}

// --- Passes ----------------------------------------------------------------

type memoKey struct {
	node style.Styleable
	name string
}

// pass holds everything valid for one consistent resolution run.
type pass struct {
	snap       *cssom.Snapshot
	cached     bool // use and fill the engine's match cache
	memo       map[memoKey]Resolution
	inProgress map[memoKey]bool
}

func newPass(snap *cssom.Snapshot, cached bool) *pass {
	return &pass{
		snap:       snap,
		cached:     cached,
		memo:       make(map[memoKey]Resolution),
		inProgress: make(map[memoKey]bool),
	}
}

func (e *Engine) beginPass() *pass {
	e.pass = newPass(e.registry.Snapshot(), true)
	return e.pass
}

func (e *Engine) endPass() {
	e.pass = nil
}

// queryPass returns the running pass or, outside of a pass, a throw-away
// pass which bypasses the match cache (identities may have changed since the
// last pass).
func (e *Engine) queryPass() *pass {
	if e.pass != nil {
		return e.pass
	}
	return newPass(e.registry.Snapshot(), false)
}

func (e *Engine) restyleSubtree(n style.Styleable, p *pass) int {
	count := 0
	walk(n, func(m style.Styleable) {
		e.restyleNode(m, p)
		count++
	})
	return count
}

// restyleNode resolves and applies every styleable property of n. A failure
// while styling n resets n's cascaded values to their initial values and does
// not affect other nodes.
func (e *Engine) restyleNode(n style.Styleable, p *pass) {
	gen := p.snap.Generation()
	defer func() {
		if r := recover(); r != nil {
			tracer().P("node", style.Describe(n)).Errorf("restyle failed, falling back to initial values: %v", r)
			for _, sl := range n.StyleState().Slots() {
				sl.ApplyCascaded(sl.Def().Initial, style.Default, false, gen)
			}
		}
	}()
	for _, sl := range n.StyleState().Slots() {
		r := e.resolve(n, sl.Def(), p)
		if r.Origin == style.User && !r.Inherited {
			continue // sticky user value, nothing to apply
		}
		if sl.ApplyCascaded(r.Value, r.Origin, r.Inherited, gen) {
			tracer().P("node", style.Describe(n)).Debugf("%s := %v", sl.Name(), r)
		}
	}
}

// walk visits n and its descendants, parents first.
func walk(n style.Styleable, f func(style.Styleable)) {
	if n == nil {
		return
	}
	f(n)
	for _, ch := range n.StyleableChildren() {
		walk(ch, f)
	}
}

func hasAncestorIn(n style.Styleable, set map[style.Styleable]struct{}) bool {
	for p := n.StyleableParent(); p != nil; p = p.StyleableParent() {
		if _, ok := set[p]; ok {
			return true
		}
	}
	return false
}
