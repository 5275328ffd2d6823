package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/scenecss/style"
	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	scale float64 // factor for font-relative dimensions
	flags uint32
}

/*
type DimenT
	= JustDimen dimen
	| FontRel unit
	| Percentage Percent
*/

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// FontRelative creates a CSS dimension which is a multiple of the font size,
// i.e. "em".
func FontRelative(factor float64) DimenT {
	return DimenT{scale: factor, flags: dimenEM}
}

// Percentage creates a CSS dimension relative to the font size in percent.
func Percentage(pcnt float64) DimenT {
	return DimenT{scale: pcnt / 100, flags: dimenPercent}
}

// IsRelative is a predicate: does d depend on a unit context?
func (d DimenT) IsRelative() bool {
	return d.flags&relativeMask > 0
}

func (d DimenT) String() string {
	switch {
	case d.flags&kindMask == dimenAbsolute:
		return fmt.Sprintf("%gpt", Points(d.d))
	case d.flags&relativeMask == dimenEM:
		return fmt.Sprintf("%gem", d.scale)
	case d.flags&relativeMask == dimenEX:
		return fmt.Sprintf("%gex", d.scale*2)
	case d.flags&relativeMask == dimenPercent:
		return fmt.Sprintf("%g%%", d.scale*100)
	}
	return "none"
}

// Resolve returns the absolute value of d, relative to a given font size
// (in points).
func (d DimenT) Resolve(fontSize float64) dimen.DU {
	var du dimen.DU
	var f float64
	switch m := d.Match(); m {
	case m.Just(&du):
		return du
	case m.FontRelative(&f):
		return FromPoints(f * fontSize)
	}
	return 0
}

// Points converts a design unit value to (fractional) points.
func Points(du dimen.DU) float64 {
	return float64(du) / float64(dimen.PT)
}

// FromPoints converts points to design units.
func FromPoints(pt float64) dimen.DU {
	return dimen.DU(math.Round(pt * float64(dimen.PT)))
}

// ---------------------------------------------------------------------------

// Match starts a pattern match on a dimension, e.g.
//
//    switch m := d.Match(); m {
//    case m.Just(&du): …
//    case m.FontRelative(&f): …
//    }
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is a helper type for matching dimensions.
type Matcher struct {
	dimen DimenT
}

// IsKind matches dimensions of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case m.dimen.flags == dimenNone || d.flags == dimenNone:
		return nil
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		return m
	}
	return nil
}

// Just matches absolute dimensions and extracts the value.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&dimenAbsolute > 0 {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// FontRelative matches font-relative dimensions (em, ex, percent) and
// extracts the factor to apply to the font size.
func (m *Matcher) FontRelative(f *float64) *Matcher {
	if m.dimen.IsRelative() {
		if f != nil {
			*f = m.dimen.scale
		}
		return m
	}
	return nil
}

// --- Parsing ---------------------------------------------------------------

var absoluteUnits = map[string]float64{
	"":   1,
	"px": 1,
	"pt": 1,
	"pc": 12,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
}

// ParseDimen parses a length value like "2px", "1.5em" or "20%".
func ParseDimen(p style.Property) (DimenT, error) {
	num, unit, err := splitNumber(p.Trimmed())
	if err != nil {
		return DimenT{}, err
	}
	switch unit {
	case "em":
		return FontRelative(num), nil
	case "ex":
		return DimenT{scale: num / 2, flags: dimenEX}, nil
	case "%":
		return Percentage(num), nil
	}
	if f, ok := absoluteUnits[unit]; ok {
		return JustDimen(FromPoints(num * f)), nil
	}
	return DimenT{}, fmt.Errorf("unknown unit %q in length %q", unit, p)
}

// splitNumber splits "12.5px" into (12.5, "px").
func splitNumber(s string) (float64, string, error) {
	i := 0
	for i < len(s) && (s[i] == '+' || s[i] == '-' || s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}
	if i == 0 {
		return 0, "", fmt.Errorf("not a number: %q", s)
	}
	num, err := strconv.ParseFloat(s[:i], 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, "", fmt.Errorf("not a number: %q", s)
	}
	return num, strings.ToLower(s[i:]), nil
}
