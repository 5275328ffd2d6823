package cssom

import (
	"fmt"

	"github.com/npillmayer/scenecss/style"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// styling engine, we introduce an interface for CSS stylesheets.
// Clients for the styling engine will have to provide a concrete
// implementation of this interface (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "-fx-opacity"
	Value(string) style.Property // property value for key, e.g. "42%"
	IsImportant(string) bool     // is property key marked as important?
}

// InlineParser parses the inline style string of a node into key/value
// pairs. Keys marked as important are reported in the second return value.
type InlineParser interface {
	ParseInline(string) ([]style.KeyValue, map[string]bool, error)
}

// Declaration is a single property declaration, bound to a selector and
// annotated with everything the cascade needs for ranking.
// Declarations are immutable once compiled into a snapshot.
type Declaration struct {
	Selector    *Selector      // nil for inline declarations
	Property    string         // property name, e.g. "-fx-opacity"
	Value       style.Property // raw value, e.g. "42%"
	Origin      style.Origin   // UserAgent, Author or Inline
	Important   bool           // marked "!important"
	Specificity Specificity    // specificity of Selector
	Order       int            // source order; later declarations have higher numbers
	Source      string         // name of the stylesheet, for diagnostics
}

func (d *Declaration) String() string {
	sel := "<inline>"
	if d.Selector != nil {
		sel = d.Selector.String()
	}
	imp := ""
	if d.Important {
		imp = " !important"
	}
	return fmt.Sprintf("%s { %s: %s%s } [%s %s #%d]", sel, d.Property, d.Value, imp,
		d.Origin, d.Specificity, d.Order)
}

// Outranks is a predicate: does d win over o in the cascade?
//
// The ranking key is (important, origin, specificity, source order),
// compared lexicographically.
func (d *Declaration) Outranks(o *Declaration) bool {
	if d.Important != o.Important {
		return d.Important
	}
	if d.Origin != o.Origin {
		return d.Origin > o.Origin
	}
	if c := d.Specificity.Compare(o.Specificity); c != 0 {
		return c > 0
	}
	return d.Order > o.Order
}
