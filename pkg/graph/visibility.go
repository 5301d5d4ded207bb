package graph

// VisibilityKind is the visibility of a Membership: public members are
// inherited and imported; protected members are inherited but not imported;
// private members are neither.
type VisibilityKind string

const (
	// Public members are visible through inheritance, import, and library
	// lookup.
	Public VisibilityKind = "public"
	// Protected members are inherited but not imported.
	Protected VisibilityKind = "protected"
	// Private members are neither inherited nor imported; only owned lookup
	// sees them.
	Private VisibilityKind = "private"
)

// ParseVisibility normalizes a source-level visibility spelling to one of
// the three VisibilityKind values. "expose" is accepted as a synonym for
// "public": spec.md treats expose-visibility as semantically identical to
// public for all scope purposes (see DESIGN.md, open question 3). An empty
// or unrecognized spelling defaults to Public, matching a namespace member
// with no explicit visibility keyword.
func ParseVisibility(s string) VisibilityKind {
	switch s {
	case "protected":
		return Protected
	case "private":
		return Private
	case "public", "expose", "":
		return Public
	default:
		return Public
	}
}

// String satisfies fmt.Stringer.
func (v VisibilityKind) String() string {
	return string(v)
}
