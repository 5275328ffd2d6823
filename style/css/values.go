package css

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/scenecss/style"
	"golang.org/x/image/colornames"
)

// --- Numbers ---------------------------------------------------------------

// ParseOpacity parses an opacity value, either a number ("0.76", ".5") or a
// percentage ("42%"). The result is clamped to [0,1].
func ParseOpacity(p style.Property) (float64, error) {
	s := p.Trimmed()
	var x float64
	var err error
	if strings.HasSuffix(s, "%") {
		x, err = strconv.ParseFloat(strings.TrimSpace(s[:len(s)-1]), 64)
		x /= 100
	} else {
		x, err = strconv.ParseFloat(s, 64)
	}
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("illegal opacity value %q", s)
	}
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	return x, nil
}

// ParseVisibility maps "visible" to true and "hidden"/"collapse" to false.
func ParseVisibility(p style.Property) (bool, error) {
	switch strings.ToLower(p.Trimmed()) {
	case "visible":
		return true, nil
	case "hidden", "collapse":
		return false, nil
	}
	return false, fmt.Errorf("illegal visibility value %q", p)
}

// --- Cursors ---------------------------------------------------------------

// Cursor is a mouse cursor type. The zero value is the null cursor, which
// lets the toolkit choose.
type Cursor string

// Known cursors.
const (
	CursorNull      Cursor = ""
	CursorDefault   Cursor = "default"
	CursorHand      Cursor = "hand"
	CursorWait      Cursor = "wait"
	CursorText      Cursor = "text"
	CursorCrosshair Cursor = "crosshair"
	CursorMove      Cursor = "move"
	CursorNone      Cursor = "none"
	CursorOpenHand  Cursor = "open_hand"
	CursorClosed    Cursor = "closed_hand"
	CursorDisappear Cursor = "disappear"
)

var knownCursors = map[string]Cursor{
	"null":        CursorNull,
	"default":     CursorDefault,
	"hand":        CursorHand,
	"pointer":     CursorHand,
	"wait":        CursorWait,
	"text":        CursorText,
	"crosshair":   CursorCrosshair,
	"move":        CursorMove,
	"none":        CursorNone,
	"open_hand":   CursorOpenHand,
	"closed_hand": CursorClosed,
	"disappear":   CursorDisappear,
}

// ParseCursor parses a cursor name, case-insensitively.
func ParseCursor(p style.Property) (Cursor, error) {
	c, ok := knownCursors[strings.ToLower(p.Trimmed())]
	if !ok {
		return CursorNull, fmt.Errorf("unknown cursor %q", p)
	}
	return c, nil
}

func (c Cursor) String() string {
	if c == CursorNull {
		return "null"
	}
	return string(c)
}

// --- Colors ----------------------------------------------------------------

// Transparent is the paint used for "none", "null" and "transparent".
var Transparent = color.RGBA{}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa", "transparent"/"none"/"null"
// and the named SVG/CSS colors.
func ParseColor(p style.Property) (color.RGBA, error) {
	s := strings.ToLower(p.Trimmed())
	switch s {
	case "transparent", "none", "null":
		return Transparent, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return Transparent, fmt.Errorf("unknown color %q", p)
}

func parseHexColor(h string) (color.RGBA, error) {
	var rgba [4]uint8
	rgba[3] = 0xff
	switch len(h) {
	case 3:
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(h[i:i+1], 16, 8)
			if err != nil {
				return Transparent, fmt.Errorf("illegal hex color #%s", h)
			}
			rgba[i] = uint8(v * 17)
		}
	case 6, 8:
		for i := 0; i < len(h)/2; i++ {
			v, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
			if err != nil {
				return Transparent, fmt.Errorf("illegal hex color #%s", h)
			}
			rgba[i] = uint8(v)
		}
	default:
		return Transparent, fmt.Errorf("illegal hex color #%s", h)
	}
	return color.RGBA{rgba[0], rgba[1], rgba[2], rgba[3]}, nil
}

// ColorString returns a CSS representation of a color, for diagnostics.
func ColorString(c color.RGBA) string {
	if c == Transparent {
		return "transparent"
	}
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
