package css

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/scenecss/style"
)

// Font is the composite value of the -fx-font property.
type Font struct {
	Family  string
	Size    float64 // in points
	Weight  string  // "normal", "bold", "100" … "900"
	Posture string  // "regular", "italic"
}

// DefaultFont is the toolkit's default font.
var DefaultFont = Font{
	Family:  "System",
	Size:    style.DefaultFontSize,
	Weight:  "normal",
	Posture: "regular",
}

// NewFont creates a regular font of a given family and size.
func NewFont(family string, size float64) Font {
	return Font{Family: family, Size: size, Weight: "normal", Posture: "regular"}
}

// FontSize returns the size of the font in points. It makes Font
// a unit base for font-relative lengths (see style.FontSizer).
func (f Font) FontSize() float64 {
	return f.Size
}

func (f Font) String() string {
	return fmt.Sprintf("Font[%s, %g, %s, %s]", f.Family, f.Size, f.Weight, f.Posture)
}

var errNoFontSize = errors.New("font value has no size")
var errNoFontFamily = errors.New("font value has no family")

// ParseFont parses a font shorthand
//
//    [ posture ] [ weight ] size family
//
// e.g. "18 Amble" or "italic bold 1.2em 'Amble Light', sans-serif".
// Relative sizes refer to the parent's font size in ctx.
func ParseFont(p style.Property, ctx style.UnitContext) (Font, error) {
	f := Font{Weight: "normal", Posture: "regular"}
	fields := p.Fields()
	i := 0
	for ; i < len(fields); i++ {
		w := strings.ToLower(fields[i])
		if isPosture(w) {
			f.Posture = normalizePosture(w)
		} else if isWeight(w) && !(w[0] >= '0' && w[0] <= '9' && len(fields)-i <= 2) {
			f.Weight = w
		} else {
			break
		}
	}
	if i >= len(fields) {
		return Font{}, errNoFontSize
	}
	size, err := ParseFontSize(style.Property(fields[i]), ctx)
	if err != nil {
		return Font{}, err
	}
	f.Size = size
	i++
	if i >= len(fields) {
		return Font{}, errNoFontFamily
	}
	family := strings.Join(fields[i:], " ")
	if comma := strings.IndexByte(family, ','); comma >= 0 {
		family = family[:comma]
	}
	f.Family = strings.Trim(strings.TrimSpace(family), `"'`)
	if f.Family == "" {
		return Font{}, errNoFontFamily
	}
	return f, nil
}

// ParseFontSize parses a font size. Relative sizes (em, ex, %) refer to the
// parent's font size.
func ParseFontSize(p style.Property, ctx style.UnitContext) (float64, error) {
	d, err := ParseDimen(p)
	if err != nil {
		return 0, fmt.Errorf("illegal font size: %w", err)
	}
	base := ctx.ParentFontSize
	if base <= 0 {
		base = style.DefaultFontSize
	}
	size := Points(d.Resolve(base))
	if size <= 0 {
		return 0, fmt.Errorf("illegal font size %q", p)
	}
	return size, nil
}

func isPosture(w string) bool {
	return w == "italic" || w == "oblique" || w == "regular"
}

func normalizePosture(w string) string {
	if w == "oblique" {
		return "italic"
	}
	return w
}

func isWeight(w string) bool {
	switch w {
	case "normal", "bold", "bolder", "lighter":
		return true
	case "100", "200", "300", "400", "500", "600", "700", "800", "900":
		return true
	}
	return false
}
