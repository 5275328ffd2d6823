package scene

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/scenecss/style"
	"github.com/npillmayer/scenecss/style/css"
)

// Styleable properties of scene nodes.
var (
	OpacityProperty     = style.NewPropertyDef("-fx-opacity", false, 1.0, css.ConvertOpacity)
	CursorProperty      = style.NewPropertyDef("-fx-cursor", true, css.CursorNull, css.ConvertCursor)
	VisibilityProperty  = style.NewPropertyDef("-fx-visibility", false, true, css.ConvertVisibility)
	FontProperty        = style.NewPropertyDef("-fx-font", true, css.DefaultFont, css.ConvertFont)
	StrokeWidthProperty = style.NewPropertyDef("-fx-stroke-width", false, css.FromPoints(1),
		css.ConvertLength).RelativeToFont()
	FillProperty   = style.NewPropertyDef("-fx-fill", false, color.RGBA{A: 0xff}, css.ConvertColor)
	StrokeProperty = style.NewPropertyDef("-fx-stroke", false, css.Transparent, css.ConvertColor)
)

// Kind is the kind of a scene node.
type Kind uint8

// Node kinds.
const (
	GroupKind Kind = iota
	RectangleKind
	TextKind
)

var kindTypes = [...][]string{
	GroupKind:     {"Group", "Parent", "Node"},
	RectangleKind: {"Rectangle", "Shape", "Node"},
	TextKind:      {"Text", "Shape", "Node"},
}

// ParseKind returns the node kind for a type name like "Rectangle".
func ParseKind(name string) (Kind, error) {
	for k, types := range kindTypes {
		if strings.EqualFold(types[0], name) {
			return Kind(k), nil
		}
	}
	return GroupKind, fmt.Errorf("unknown node kind %q", name)
}

func (k Kind) String() string {
	if int(k) < len(kindTypes) {
		return kindTypes[k][0]
	}
	return "?"
}

// properties lists the styleable properties of a node kind.
// Groups have no font; their font declarations are still seen by
// descendants through inheritance.
func (k Kind) properties() []*style.PropertyDef {
	common := []*style.PropertyDef{OpacityProperty, CursorProperty, VisibilityProperty}
	switch k {
	case RectangleKind:
		return append(common, FillProperty, StrokeProperty, StrokeWidthProperty)
	case TextKind:
		return append(common, FontProperty, FillProperty, StrokeProperty, StrokeWidthProperty)
	}
	return common
}
