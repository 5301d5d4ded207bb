package graph

import "github.com/pthm/sysmllink/pkg/model"

// Membership-family kinds. Only elements of these kinds participate in the
// namespace->memberships index and are interpretable as a MembershipView.
// Structural sub-elements such as Specialization or Import are owned
// directly (Element.Owner set, no wrapping Membership) and never appear
// here; see ModelGraph.AddElement vs AddOwnedElement.
const (
	KindMembership        model.Kind = "Membership"
	KindOwningMembership  model.Kind = "OwningMembership"
	KindFeatureMembership model.Kind = "FeatureMembership"
)

// isMembershipKind reports whether k is one of the membership-family kinds.
func isMembershipKind(k model.Kind) bool {
	switch k {
	case KindMembership, KindOwningMembership, KindFeatureMembership:
		return true
	default:
		return false
	}
}

// Element is the universal graph node. Its identity and Kind are fixed at
// construction; Owner, OwningMembership, and Props are the only fields
// later writers (the resolver) may mutate, and the resolver only ever adds
// entries to Props — it never changes Owner, OwningMembership, or Kind.
type Element struct {
	ID               model.ElementID
	Kind             model.Kind
	Name             *string
	ShortName        *string
	Owner            *model.ElementID
	OwningMembership *model.ElementID
	Props            *model.OrderedMap
	Spans            []model.Span
}

// NewElement constructs an Element of the given kind with a fresh identity
// and an empty property map.
func NewElement(kind model.Kind) *Element {
	return &Element{
		ID:    model.NewElementID(),
		Kind:  kind,
		Props: model.NewOrderedMap(),
	}
}

// Prop returns the property value for key and whether it is present.
// Satisfies the Properties interface pkg/metamodel's generated accessors
// are written against, without this package importing pkg/metamodel.
func (e *Element) Prop(key string) (model.Value, bool) {
	if e == nil || e.Props == nil {
		return model.Value{}, false
	}
	return e.Props.Get(key)
}

// SetProp sets the property value for key, creating the property map if
// necessary.
func (e *Element) SetProp(key string, v model.Value) {
	if e.Props == nil {
		e.Props = model.NewOrderedMap()
	}
	e.Props.Set(key, v)
}

// PropKeys returns the element's property keys in insertion order.
func (e *Element) PropKeys() []string {
	if e == nil {
		return nil
	}
	return e.Props.Keys()
}

// HasOwner reports whether e has a recorded owner (is not a root).
func (e *Element) HasOwner() bool {
	return e.Owner != nil
}

// UnresolvedKey returns the unresolved-reference property key for a resolved
// property name, honoring the two documented exceptions
// (sources -> unresolved_sources uses "sources", not the resolved-name
// "source"; same for targets/target). See spec §6, "Unresolved-reference
// property conventions".
func UnresolvedKey(resolvedName string) string {
	switch resolvedName {
	case "source":
		return "unresolved_sources"
	case "target":
		return "unresolved_targets"
	default:
		return "unresolved_" + resolvedName
	}
}

// ResolvedKeyFor returns the resolved-property name for a given
// unresolved_<name> key, inverting UnresolvedKey including its two named
// exceptions.
func ResolvedKeyFor(unresolvedKey string) string {
	switch unresolvedKey {
	case "unresolved_sources":
		return "source"
	case "unresolved_targets":
		return "target"
	default:
		const prefix = "unresolved_"
		if len(unresolvedKey) > len(prefix) && unresolvedKey[:len(prefix)] == prefix {
			return unresolvedKey[len(prefix):]
		}
		return unresolvedKey
	}
}
