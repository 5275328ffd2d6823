package css

import (
	"fmt"

	"github.com/npillmayer/scenecss/style"
)

// Converters for style.PropertyDef. Each of them wraps one of the parse
// functions of this package.

// ConvertOpacity converts to float64 in [0,1].
func ConvertOpacity(p style.Property, _ style.UnitContext) (any, error) {
	return ParseOpacity(p)
}

// ConvertVisibility converts to bool.
func ConvertVisibility(p style.Property, _ style.UnitContext) (any, error) {
	return ParseVisibility(p)
}

// ConvertCursor converts to Cursor.
func ConvertCursor(p style.Property, _ style.UnitContext) (any, error) {
	return ParseCursor(p)
}

// ConvertColor converts to color.RGBA.
func ConvertColor(p style.Property, _ style.UnitContext) (any, error) {
	return ParseColor(p)
}

// ConvertFont converts to Font. Relative sizes refer to the parent's font.
func ConvertFont(p style.Property, ctx style.UnitContext) (any, error) {
	return ParseFont(p, ctx)
}

// ConvertLength converts to an absolute dimen.DU, resolving font-relative
// units against the node's own font size. Negative lengths are rejected.
func ConvertLength(p style.Property, ctx style.UnitContext) (any, error) {
	d, err := ParseDimen(p)
	if err != nil {
		return nil, err
	}
	if d.IsRelative() {
		tracer().Debugf("resolving %s against font size %g", d, ctx.FontSize)
	}
	du := d.Resolve(ctx.FontSize)
	if du < 0 {
		return nil, fmt.Errorf("negative length %q", p)
	}
	return du, nil
}
