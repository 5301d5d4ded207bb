package model

// Kind identifies an element kind in the metamodel (PartDefinition,
// Specialization, Membership, and so on). It is a plain string rather than
// an integer enum: the metamodel table (pkg/metamodel) is built at runtime
// from decoded artifacts, so the set of valid Kind values is not known at
// compile time. Callers that need a dense integer index can use
// metamodel.Table.IndexOf.
type Kind string

// String satisfies fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// IsZero reports whether k is the empty kind, used as a sentinel for
// "no kind determined" in partially-built elements.
func (k Kind) IsZero() bool {
	return k == ""
}
