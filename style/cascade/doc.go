/*
Package cascade resolves the effective values of styleable properties.

For every property of a node the engine collects all declarations which
apply to it, ranks them and takes the first one which converts to a valid
value. Ranking is by importance, then by origin (user-agent < author <
inline), then by selector specificity and finally by source order.

Values set programmatically are sticky: a slot in state UserSet yields to
inline declarations only. Inheritable properties without a declaration take
over the effective value of the parent, hop by hop up to the root.
Font-relative lengths (em) resolve against the node's own effective font,
while a relative font size resolves against the parent's font.

Restyling is deferred. Mutations mark nodes dirty; the host calls
RunDeferredRestyle once per pulse, and all dirty subtrees are resolved
against a single snapshot of the stylesheets.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'scenecss.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("scenecss.cascade")
}
