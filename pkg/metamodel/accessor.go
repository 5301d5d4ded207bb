package metamodel

import "github.com/pthm/sysmllink/pkg/model"

// Properties is the minimal surface a graph element must expose for the
// generated accessors and validators to read its property map. graph.Element
// satisfies this interface structurally, so PropertyAccessor.Get needs no
// graph types. pkg/metamodel does import pkg/graph (Table.Validate takes a
// *graph.Element); pkg/graph never imports pkg/metamodel, so there is no
// cycle.
type Properties interface {
	Prop(key string) (model.Value, bool)
}

// PropertyAccessor is one emitted property accessor (spec §4.1(d)): a name,
// cardinality, and value type/target-kind pair, with a cardinality-aware
// Get that returns one of AccessResult's shapes.
type PropertyAccessor struct {
	Name       string
	Cardinality Cardinality
	ValueType  ValueType
	TargetKind string // populated when ValueType == RefType
	ReadOnly   bool
	// DeclaredOn is the kind that declares this property (itself, or the
	// nearest supertype it was inherited from unshadowed).
	DeclaredOn model.Kind
}

// AccessResult is the cardinality-aware return shape spec §4.1(d)'s table
// describes, collapsed into one struct rather than one generated method
// per property: Go's static accessor surface would otherwise require
// build-time codegen, which this implementation deliberately avoids (see
// DESIGN.md, open question 4).
type AccessResult struct {
	// Present is true for exactly-one/zero-or-one shapes when a value was
	// found (BoolValue is always meaningful for an exactly-one bool
	// property, regardless of Present).
	Present   bool
	BoolValue bool
	Value     model.Value
	Seq       []model.Value
	RefSeq    []model.ElementID
}

// Get reads e's property for this accessor and returns it shaped per the
// accessor's cardinality and value type (spec §4.1(d)'s table):
//   - exactly-one bool: BoolValue, defaulting false if absent.
//   - exactly-one (other) / zero-or-one (any): Value + Present.
//   - zero-or-many / one-or-many reference: RefSeq.
//   - zero-or-many / one-or-many (other): Seq.
//
// Get never performs resolution; for reference-typed accessors it returns
// whatever identity is already stored in the property map (spec §4.1,
// "reads never perform resolution").
func (pa *PropertyAccessor) Get(e Properties) AccessResult {
	v, ok := e.Prop(pa.Name)

	if pa.Cardinality == ExactlyOne && pa.ValueType == BoolType {
		if !ok {
			return AccessResult{BoolValue: false}
		}
		b, _ := v.AsBool()
		return AccessResult{Present: true, BoolValue: b}
	}

	if pa.Cardinality.IsMany() {
		if !ok {
			return AccessResult{}
		}
		items, _ := v.AsList()
		if pa.ValueType == RefType {
			refs := make([]model.ElementID, 0, len(items))
			for _, item := range items {
				if ref, ok := item.AsRef(); ok {
					refs = append(refs, ref)
				}
			}
			return AccessResult{Present: true, RefSeq: refs}
		}
		return AccessResult{Present: true, Seq: items}
	}

	// exactly-one (non-bool) or zero-or-one: optional-of-base.
	if !ok {
		return AccessResult{}
	}
	return AccessResult{Present: true, Value: v}
}
