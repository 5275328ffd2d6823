/*
Package css provides typed values for styleable properties and the
converters turning raw declaration values into them.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
CSS properties resulting of the textual nature of CSS properties.
Relative units (em, ex, percentages of a font size) are resolved against
a style.UnitContext, which the cascade engine derives from a node's
effective font.

Lengths are kept as dimen.DU. The toolkit's CSS model treats a pixel as
one point, therefore "px", "pt" and unitless numbers are interchangeable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'scenecss.css'.
func tracer() tracing.Trace {
	return tracing.Select("scenecss.css")
}
