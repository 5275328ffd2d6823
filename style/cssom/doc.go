/*
Package cssom provides the CSS object model of the styling engine: the
stylesheet registry, selectors and the matching of declarations to nodes.

Overview

Stylesheets enter the engine through interfaces StyleSheet and Rule, which
de-couple the engine from any concrete CSS parser (see package
douceuradapter). A Registry keeps the stylesheets of every origin
(user-agent and author) in order of application and counts changes in a
cascade generation.

For a cascade pass, the registry compiles its stylesheets into an immutable
Snapshot. Selectors are parsed once at compile time; a rule with a selector
we cannot understand is dropped with a diagnostic. Snapshot.Match then
collects all declarations whose selector matches a node, ranked by

   (important, origin, specificity, source order)

Supported selectors are the ones a scene toolkit needs: type selectors
(matched against the node's type ancestry chain), #id, .class, :pseudo-class,
and the descendant and child combinators.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'scenecss.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("scenecss.cssom")
}
