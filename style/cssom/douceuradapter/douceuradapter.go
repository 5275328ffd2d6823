/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet
and of cssom.InlineParser, based on github.com/aymerick/douceur.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"os"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/scenecss/style"
	"github.com/npillmayer/scenecss/style/cssom"
)

// tracer traces with key 'scenecss.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("scenecss.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS text into a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// MustParse is like Parse, but panics on error. It is intended for
// stylesheets compiled into a program.
func MustParse(text string) *CSSStyles {
	sheet, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return sheet
}

// Load reads and parses a stylesheet file.
func Load(path string) (*CSSStyles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tracer().P("file", path).Debugf("loading stylesheet")
	return Parse(string(data))
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok {
		tracer().Errorf("cannot append rules from stylesheet of type %T", other)
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the qualified rules of a stylesheet. At-rules are not
// supported and skipped.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("skipping at-rule %s", r.Name)
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "-fx-opacity"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "42%".
// If a key is declared more than once, the last declaration wins.
func (r Rule) Value(key string) style.Property {
	decl := r.Declarations
	for i := len(decl) - 1; i >= 0; i-- {
		if decl[i].Property == key {
			return style.Property(decl[i].Value)
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for i := len(decl) - 1; i >= 0; i-- {
		if decl[i].Property == key {
			return decl[i].Important
		}
	}
	return false
}

var _ cssom.Rule = &Rule{}

// --- Inline styles ---------------------------------------------------------

// InlineParser parses inline style strings of nodes, e.g.
//
//    -fx-font: 18 Amble; -fx-opacity: 42%;
type InlineParser struct{}

// ParseInline is part of interface cssom.InlineParser.
func (InlineParser) ParseInline(text string) ([]style.KeyValue, map[string]bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil, nil
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot parse inline style: %w", err)
	}
	kvs := make([]style.KeyValue, 0, len(decls))
	important := make(map[string]bool)
	for _, d := range decls {
		kvs = append(kvs, style.KeyValue{Key: d.Property, Value: style.Property(d.Value)})
		if d.Important {
			important[d.Property] = true
		}
	}
	return kvs, important, nil
}

var _ cssom.InlineParser = InlineParser{}
