package style

// Origin is the provenance of a property value.
//
// For declarations, precedence is Inline > Author > UserAgent. User denotes a
// value set through the programmatic API; Default denotes the implementation
// default (initial value) of a property.
type Origin uint8

const (
	Default   Origin = iota // initial value, nothing applied
	UserAgent               // user-agent (toolkit default) stylesheet
	Author                  // author stylesheet added by the application
	Inline                  // inline style string of a node
	User                    // set by calling code
)

func (o Origin) String() string {
	switch o {
	case Default:
		return "default"
	case UserAgent:
		return "user-agent"
	case Author:
		return "author"
	case Inline:
		return "inline"
	case User:
		return "user"
	}
	return "?"
}

// IsCSS is true for origins which stem from style declarations.
func (o Origin) IsCSS() bool {
	return o == UserAgent || o == Author || o == Inline
}
