package cssom

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/scenecss/style"
)

// ErrNoSuchStylesheet is returned when removing an unknown stylesheet.
var ErrNoSuchStylesheet = errors.New("no such stylesheet")

// ErrDuplicateStylesheet is returned when adding a stylesheet under a name
// which is already registered.
var ErrDuplicateStylesheet = errors.New("stylesheet already registered")

// ErrIllegalOrigin is returned for stylesheets which are neither user-agent
// nor author stylesheets.
var ErrIllegalOrigin = errors.New("stylesheets must be of origin user-agent or author")

// maxInlineCache limits the number of parsed inline style strings kept.
const maxInlineCache = 1024

type registeredSheet struct {
	name   string
	origin style.Origin
	sheet  StyleSheet
}

// Registry owns the stylesheets applicable to a scene, per origin, in the
// order they have been added. It is the process-scoped state object of the
// styling engine; clients create one and pass it by reference.
//
// Every mutation increments the cascade generation. Cascade passes work on
// an immutable Snapshot of the registry.
type Registry struct {
	sheets      []registeredSheet
	generation  uint64
	snapshot    *Snapshot
	inline      InlineParser
	inlineCache map[string][]*Declaration
	listeners   []func(generation uint64)
}

// NewRegistry creates an empty registry. inline is used to parse inline
// style strings of nodes; it may be nil, in which case inline styles are
// ignored.
func NewRegistry(inline InlineParser) *Registry {
	return &Registry{
		inline:      inline,
		inlineCache: make(map[string][]*Declaration),
	}
}

// Generation returns the current cascade generation. It starts at 0 and
// increases with every change of the set of stylesheets.
func (r *Registry) Generation() uint64 {
	return r.generation
}

// OnChange registers a listener which is called after every change of the
// set of stylesheets, with the new generation.
func (r *Registry) OnChange(f func(generation uint64)) {
	if f != nil {
		r.listeners = append(r.listeners, f)
	}
}

// Add registers a stylesheet under a unique name. Stylesheets of the same
// origin apply in the order they have been added.
func (r *Registry) Add(name string, origin style.Origin, sheet StyleSheet) error {
	if origin != style.UserAgent && origin != style.Author {
		return fmt.Errorf("stylesheet %q: %w", name, ErrIllegalOrigin)
	}
	if sheet == nil {
		return fmt.Errorf("stylesheet %q is nil", name)
	}
	for _, s := range r.sheets {
		if s.name == name {
			return fmt.Errorf("%q: %w", name, ErrDuplicateStylesheet)
		}
	}
	r.sheets = append(r.sheets, registeredSheet{name: name, origin: origin, sheet: sheet})
	tracer().P("sheet", name).Infof("added %s stylesheet", origin)
	r.changed()
	return nil
}

// Remove unregisters a stylesheet.
func (r *Registry) Remove(name string) error {
	for i, s := range r.sheets {
		if s.name == name {
			r.sheets = append(r.sheets[:i], r.sheets[i+1:]...)
			tracer().P("sheet", name).Infof("removed %s stylesheet", s.origin)
			r.changed()
			return nil
		}
	}
	return fmt.Errorf("%q: %w", name, ErrNoSuchStylesheet)
}

// SetUserAgentStylesheet replaces all user-agent stylesheets with a single
// default one. name must not be in use by an author stylesheet.
func (r *Registry) SetUserAgentStylesheet(name string, sheet StyleSheet) error {
	if sheet == nil {
		return fmt.Errorf("user-agent stylesheet %q is nil", name)
	}
	for _, s := range r.sheets {
		if s.name == name && s.origin != style.UserAgent {
			return fmt.Errorf("%q: %w", name, ErrDuplicateStylesheet)
		}
	}
	kept := r.sheets[:0]
	for _, s := range r.sheets {
		if s.origin != style.UserAgent {
			kept = append(kept, s)
		}
	}
	r.sheets = append(kept, registeredSheet{name: name, origin: style.UserAgent, sheet: sheet})
	tracer().P("sheet", name).Infof("set default user-agent stylesheet")
	r.changed()
	return nil
}

// Stylesheets returns the names of all stylesheets of a given origin, in
// order of application.
func (r *Registry) Stylesheets(origin style.Origin) []string {
	var names []string
	for _, s := range r.sheets {
		if s.origin == origin {
			names = append(names, s.name)
		}
	}
	return names
}

func (r *Registry) changed() {
	r.generation++
	r.snapshot = nil
	for _, l := range r.listeners {
		l(r.generation)
	}
}

// Snapshot returns the compiled declarations of the current generation.
// Snapshots are immutable; a later change of the registry does not affect
// snapshots handed out before.
func (r *Registry) Snapshot() *Snapshot {
	if r.snapshot == nil || r.snapshot.generation != r.generation {
		r.snapshot = compile(r.generation, r.sheets)
	}
	return r.snapshot
}

// InlineDeclarations parses an inline style string into declarations of
// origin Inline. Results are cached per style string.
func (r *Registry) InlineDeclarations(styleText string) []*Declaration {
	if styleText == "" || r.inline == nil {
		return nil
	}
	if decls, ok := r.inlineCache[styleText]; ok {
		return decls
	}
	kvs, important, err := r.inline.ParseInline(styleText)
	if err != nil {
		tracer().Errorf("dropping inline style %q: %v", styleText, err)
	}
	decls := make([]*Declaration, 0, len(kvs))
	for i, kv := range kvs {
		decls = append(decls, &Declaration{
			Property:  kv.Key,
			Value:     kv.Value,
			Origin:    style.Inline,
			Important: important[kv.Key],
			Order:     i,
			Source:    "inline",
		})
	}
	if len(r.inlineCache) >= maxInlineCache {
		r.inlineCache = make(map[string][]*Declaration)
	}
	r.inlineCache[styleText] = decls
	return decls
}

// --- Snapshot --------------------------------------------------------------

type compiledRule struct {
	selector *Selector
	decls    []*Declaration
}

// Snapshot is an immutable, compiled view of the registry for one cascade
// generation.
type Snapshot struct {
	generation uint64
	rules      []compiledRule
	size       int
}

func compile(generation uint64, sheets []registeredSheet) *Snapshot {
	snap := &Snapshot{generation: generation}
	order := 0
	for _, s := range sheets {
		for _, rule := range s.sheet.Rules() {
			sels, err := ParseSelectorGroup(rule.Selector())
			if err != nil {
				tracer().P("sheet", s.name).Errorf("dropping rule: %v", err)
				continue
			}
			for _, sel := range sels {
				cr := compiledRule{selector: sel}
				for _, key := range rule.Properties() {
					order++
					cr.decls = append(cr.decls, &Declaration{
						Selector:    sel,
						Property:    key,
						Value:       rule.Value(key),
						Origin:      s.origin,
						Important:   rule.IsImportant(key),
						Specificity: sel.Specificity(),
						Order:       order,
						Source:      s.name,
					})
				}
				snap.size += len(cr.decls)
				snap.rules = append(snap.rules, cr)
			}
		}
	}
	tracer().Debugf("compiled snapshot #%d with %d declarations", generation, snap.size)
	return snap
}

// Generation returns the cascade generation the snapshot was compiled for.
func (s *Snapshot) Generation() uint64 {
	return s.generation
}

// Len returns the number of declarations in the snapshot.
func (s *Snapshot) Len() int {
	return s.size
}

// Match returns every declaration applicable to node n, ranked winner-first.
// inline holds the inline declarations of n, if any.
//
// Match is pure: identical node identity and snapshot yield identical results.
func (s *Snapshot) Match(n style.Styleable, inline []*Declaration) []*Declaration {
	var decls []*Declaration
	for _, r := range s.rules {
		if r.selector.Matches(n) {
			decls = append(decls, r.decls...)
		}
	}
	decls = append(decls, inline...)
	sort.SliceStable(decls, func(i, j int) bool {
		return decls[i].Outranks(decls[j])
	})
	return decls
}
