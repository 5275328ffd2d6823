package style

import (
	"fmt"
	"reflect"
)

// DefaultFontSize is the font size (in points) used as the unit base for
// font-relative lengths when no font is found in a node's ancestry.
const DefaultFontSize = 12.0

// UnitContext carries what a converter needs to resolve relative units.
type UnitContext struct {
	FontSize       float64 // effective font size of the node being styled
	ParentFontSize float64 // effective font size of its parent, base for relative font sizes
}

// DefaultUnitContext returns a unit context based on DefaultFontSize.
func DefaultUnitContext() UnitContext {
	return UnitContext{FontSize: DefaultFontSize, ParentFontSize: DefaultFontSize}
}

// FontSizer is implemented by values which may serve as a unit base for
// font-relative lengths.
type FontSizer interface {
	FontSize() float64
}

// Converter turns a raw property value into a typed value.
// Converters return an error for malformed input.
type Converter func(p Property, ctx UnitContext) (any, error)

// PropertyDef describes a styleable property: its CSS name, whether it is
// inherited, its initial value and how to convert raw values.
//
// PropertyDefs are shared between all nodes of a kind; per-node instances
// are Slots.
type PropertyDef struct {
	Name         string    // CSS name, e.g. "-fx-opacity"
	Inherits     bool      // is the property inherited by default?
	Initial      any       // initial value, never nil
	Convert      Converter // raw value → typed value
	FontRelative bool      // values may depend on the node's font
}

// NewPropertyDef creates a property definition.
// Every property must declare an initial value and a converter; a missing
// one is a configuration defect and NewPropertyDef will panic.
func NewPropertyDef(name string, inherits bool, initial any, conv Converter) *PropertyDef {
	if name == "" {
		panic("style: property definition without a name")
	}
	if initial == nil {
		panic(fmt.Sprintf("style: property %s has no initial value", name))
	}
	if conv == nil {
		panic(fmt.Sprintf("style: property %s has no converter", name))
	}
	return &PropertyDef{
		Name:     name,
		Inherits: inherits,
		Initial:  initial,
		Convert:  conv,
	}
}

// RelativeToFont flags a property as depending on the node's font and
// returns the definition, for chaining.
func (def *PropertyDef) RelativeToFont() *PropertyDef {
	def.FontRelative = true
	return def
}

func (def *PropertyDef) String() string {
	return def.Name
}

// Equal compares two values of a property.
func Equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
