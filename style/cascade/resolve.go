package cascade

import (
	"github.com/npillmayer/scenecss/style"
	"github.com/npillmayer/scenecss/style/cssom"
)

// matchEntry caches the ranked declarations of a node for one generation.
type matchEntry struct {
	generation uint64
	inline     string
	byProp     map[string][]*cssom.Declaration
}

// candidates returns the ranked declarations applicable to n, grouped by
// property name.
func (e *Engine) candidates(n style.Styleable, p *pass) map[string][]*cssom.Declaration {
	gen := p.snap.Generation()
	inlineText := n.InlineStyle()
	if p.cached {
		if ent, ok := e.matches[n]; ok && ent.generation == gen && ent.inline == inlineText {
			return ent.byProp
		}
	}
	inline := e.registry.InlineDeclarations(inlineText)
	decls := p.snap.Match(n, inline)
	byProp := make(map[string][]*cssom.Declaration)
	for _, d := range decls {
		byProp[d.Property] = append(byProp[d.Property], d)
	}
	if p.cached {
		e.matches[n] = &matchEntry{generation: gen, inline: inlineText, byProp: byProp}
	}
	return byProp
}

// resolve returns the effective value of property def for node n, memoized
// per pass.
func (e *Engine) resolve(n style.Styleable, def *style.PropertyDef, p *pass) Resolution {
	key := memoKey{node: n, name: def.Name}
	if r, ok := p.memo[key]; ok {
		return r
	}
	if p.inProgress[key] {
		tracer().P("node", style.Describe(n)).Errorf("circular dependency resolving %s", def.Name)
		return Resolution{Value: def.Initial, Origin: style.Default}
	}
	p.inProgress[key] = true
	r := e.compute(n, def, p)
	delete(p.inProgress, key)
	p.memo[key] = r
	return r
}

// compute walks the ranked candidates for def, winner first, and returns the
// first one which converts. A user-set slot admits inline declarations only.
// Without a usable declaration, inheritable properties take the effective
// value of the parent, all others their initial value.
func (e *Engine) compute(n style.Styleable, def *style.PropertyDef, p *pass) Resolution {
	var slot *style.Slot
	if st := n.StyleState(); st != nil {
		slot = st.Slot(def.Name)
	}
	userSet := slot != nil && slot.State() == style.UserSet
	cands := e.candidates(n, p)[def.Name]
	if userSet && !hasInline(cands) {
		return Resolution{Value: slot.Value(), Origin: style.User}
	}
	var ctx style.UnitContext
	ctxReady := false
	for _, d := range cands {
		if userSet && d.Origin != style.Inline {
			continue
		}
		switch {
		case d.Value.IsInherit():
			if r, ok := e.inheritFrom(n, def, p); ok {
				return Resolution{Value: r.Value, Origin: d.Origin, Inherited: true}
			}
			return Resolution{Value: def.Initial, Origin: d.Origin, Inherited: true}
		case d.Value.IsInitial():
			return Resolution{Value: def.Initial, Origin: d.Origin}
		}
		if !ctxReady {
			ctx = e.unitContext(n, def, p)
			ctxReady = true
		}
		v, err := def.Convert(style.Property(d.Value.Trimmed()), ctx)
		if err != nil {
			tracer().P("node", style.Describe(n)).Errorf("dropping declaration %v: %v", d, err)
			continue
		}
		return Resolution{Value: v, Origin: d.Origin}
	}
	if userSet { // inline declarations did not convert
		return Resolution{Value: slot.Value(), Origin: style.User}
	}
	if def.Inherits {
		if r, ok := e.inheritFrom(n, def, p); ok {
			return r
		}
	}
	return Resolution{Value: def.Initial, Origin: style.Default}
}

// inheritFrom takes over the effective value of n's parent. It fails if n is
// a root or the parent itself carries nothing but the initial value.
func (e *Engine) inheritFrom(n style.Styleable, def *style.PropertyDef, p *pass) (Resolution, bool) {
	parent := n.StyleableParent()
	if parent == nil {
		return Resolution{}, false
	}
	r := e.resolve(parent, def, p)
	if r.Origin == style.Default {
		return Resolution{}, false
	}
	return Resolution{Value: r.Value, Origin: r.Origin, Inherited: true}, true
}

// unitContext collects the font sizes a converter for def may need. The unit
// base itself is relative to the parent's font, font-relative properties to
// the node's own font.
func (e *Engine) unitContext(n style.Styleable, def *style.PropertyDef, p *pass) style.UnitContext {
	ctx := style.UnitContext{FontSize: e.defaultFontSize, ParentFontSize: e.defaultFontSize}
	if e.unitBase == nil {
		return ctx
	}
	if def.Name == e.unitBase.Name {
		if parent := n.StyleableParent(); parent != nil {
			ctx.ParentFontSize = e.fontSize(parent, p)
		}
		ctx.FontSize = ctx.ParentFontSize
	} else if def.FontRelative {
		ctx.FontSize = e.fontSize(n, p)
	}
	return ctx
}

func (e *Engine) fontSize(n style.Styleable, p *pass) float64 {
	r := e.resolve(n, e.unitBase, p)
	if fs, ok := r.Value.(style.FontSizer); ok && fs.FontSize() > 0 {
		return fs.FontSize()
	}
	tracer().P("node", style.Describe(n)).Errorf("cannot determine font size, using %.1f", e.defaultFontSize)
	return e.defaultFontSize
}

func hasInline(decls []*cssom.Declaration) bool {
	for _, d := range decls {
		if d.Origin == style.Inline {
			return true
		}
	}
	return false
}
