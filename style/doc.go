/*
Package style holds the core model of scene styling: raw property values,
styleable property definitions, value origins and the per-node style state.

Overview

Every visual node of a scene exposes a set of styleable properties. For each
of them a node carries exactly one Slot, which stores the currently
materialized value, the origin of that value and a small state machine that
decides whether a cascade pass may overwrite it:

   Unset   ──SetByUser──▶ UserSet
   Unset   ──cascade───▶ CSSSet
   CSSSet  ──cascade───▶ CSSSet
   UserSet ──inline────▶ CSSSet

A value set programmatically is sticky: stylesheet cascades will not touch it,
regardless of whether it happens to equal the default. Only an inline style
declared on the node itself has override power over a user-set value.

Nodes participate in styling through interface Styleable. Resolution of values
(matching, cascading, inheritance) lives in sub-packages cssom and cascade.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'scenecss.style'
func tracer() tracing.Trace {
	return tracing.Select("scenecss.style")
}
