package style

import "fmt"

// SlotState tracks who set a property value last.
type SlotState uint8

const (
	Unset   SlotState = iota // still at the property's initial value
	UserSet                  // set programmatically; sticky against stylesheets
	CSSSet                   // applied by a cascade pass
)

func (s SlotState) String() string {
	switch s {
	case Unset:
		return "unset"
	case UserSet:
		return "user-set"
	case CSSSet:
		return "css-set"
	}
	return "?"
}

// ChangeFunc is called whenever a slot's materialized value changes.
type ChangeFunc func(def *PropertyDef, old, new any)

// Slot is the per-node instance of a styleable property.
type Slot struct {
	def        *PropertyDef
	value      any
	origin     Origin
	state      SlotState
	inherited  bool
	generation uint64
	onChange   ChangeFunc
}

// Def returns the property definition of the slot.
func (sl *Slot) Def() *PropertyDef { return sl.def }

// Name returns the CSS name of the slot's property.
func (sl *Slot) Name() string { return sl.def.Name }

// Value returns the currently materialized value.
func (sl *Slot) Value() any { return sl.value }

// Origin returns the origin of the current value.
func (sl *Slot) Origin() Origin { return sl.origin }

// State returns the override-tracking state.
func (sl *Slot) State() SlotState { return sl.state }

// Inherited is true if the current value was taken over from an ancestor.
func (sl *Slot) Inherited() bool { return sl.inherited }

// Generation returns the cascade generation of the last cascade application.
func (sl *Slot) Generation() uint64 { return sl.generation }

func (sl *Slot) String() string {
	inh := ""
	if sl.inherited {
		inh = ", inherited"
	}
	return fmt.Sprintf("%s = %v [%s, %s%s]", sl.def.Name, sl.value, sl.origin, sl.state, inh)
}

// SetByUser stores a value set by calling code. The slot will be sticky
// against subsequent cascades, even if v equals the initial value or the
// value a stylesheet would produce.
func (sl *Slot) SetByUser(v any) {
	sl.state = UserSet
	sl.origin = User
	sl.inherited = false
	sl.materialize(v)
}

// MayCascade tells if a cascade result of the given origin may be applied.
// A user-set value yields to inline styles only.
func (sl *Slot) MayCascade(origin Origin) bool {
	if sl.state == UserSet {
		return origin == Inline
	}
	return true
}

// ApplyCascaded stores the result of a cascade. It returns true if the
// materialized value changed; change callbacks fire only in that case.
//
// A result with origin Default (no declaration applies, nothing inherited)
// reverts a CSS-set slot to its initial value. A value of origin User is
// admitted only if it has been inherited from an ancestor. Results which the
// override state does not admit are ignored.
func (sl *Slot) ApplyCascaded(v any, origin Origin, inherited bool, generation uint64) bool {
	if (origin == User && !inherited) || !sl.MayCascade(origin) {
		return false
	}
	if origin == Default {
		if sl.state != CSSSet {
			return false
		}
		sl.state = Unset
		sl.origin = Default
		sl.inherited = false
		sl.generation = generation
		return sl.materialize(sl.def.Initial)
	}
	sl.state = CSSSet
	sl.origin = origin
	sl.inherited = inherited
	sl.generation = generation
	return sl.materialize(v)
}

// Reset puts the slot back to its initial value and state Unset, dropping
// any user setting.
func (sl *Slot) Reset() {
	sl.state = Unset
	sl.origin = Default
	sl.inherited = false
	sl.generation = 0
	sl.materialize(sl.def.Initial)
}

func (sl *Slot) materialize(v any) bool {
	if Equal(sl.value, v) {
		return false
	}
	old := sl.value
	sl.value = v
	if sl.onChange != nil {
		sl.onChange(sl.def, old, v)
	}
	return true
}

// --- State -----------------------------------------------------------------

// State is the style state of a node: one slot per styleable property.
// The zero value is an empty state, ready to use.
type State struct {
	slots map[string]*Slot
	order []*Slot
}

// Declare creates the slot for a property definition, initialized to the
// property's initial value. onChange may be nil.
// Declaring the same property twice for a node is a construction defect
// and will panic.
func (st *State) Declare(def *PropertyDef, onChange ChangeFunc) *Slot {
	if def == nil {
		panic("style: cannot declare slot for nil property definition")
	}
	if st.slots == nil {
		st.slots = make(map[string]*Slot)
	}
	if _, dup := st.slots[def.Name]; dup {
		panic(fmt.Sprintf("style: property %s declared twice for node", def.Name))
	}
	sl := &Slot{def: def, value: def.Initial, onChange: onChange}
	st.slots[def.Name] = sl
	st.order = append(st.order, sl)
	tracer().Debugf("declared styleable property %s", def.Name)
	return sl
}

// Slot returns the slot for a property name, or nil.
func (st *State) Slot(name string) *Slot {
	if st == nil || st.slots == nil {
		return nil
	}
	return st.slots[name]
}

// Slots returns all slots in declaration order.
func (st *State) Slots() []*Slot {
	if st == nil {
		return nil
	}
	return st.order
}

// Get returns the current value of a property, or nil if the node has no
// such property.
func (st *State) Get(name string) any {
	if sl := st.Slot(name); sl != nil {
		return sl.value
	}
	return nil
}

// ResetAll resets every slot, see Slot.Reset.
func (st *State) ResetAll() {
	for _, sl := range st.Slots() {
		sl.Reset()
	}
}
