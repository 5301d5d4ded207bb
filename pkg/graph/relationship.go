package graph

import "github.com/pthm/sysmllink/pkg/model"

// RelationshipKind enumerates the pair-linking node kinds kept separately
// from Element for index efficiency (spec §3).
type RelationshipKind string

const (
	RelOwning       RelationshipKind = "owning"
	RelTypeOf       RelationshipKind = "type-of"
	RelSatisfy      RelationshipKind = "satisfy"
	RelVerify       RelationshipKind = "verify"
	RelDerive       RelationshipKind = "derive"
	RelTrace        RelationshipKind = "trace"
	RelReference    RelationshipKind = "reference"
	RelSpecialize   RelationshipKind = "specialize"
	RelRedefine     RelationshipKind = "redefine"
	RelSubsetting   RelationshipKind = "subsetting"
	RelFlow         RelationshipKind = "flow"
	RelTransition   RelationshipKind = "transition"
)

// Relationship links a source element to a target element. Unlike Element,
// a Relationship's Source/Target are set once at construction and never
// mutated by the resolver: the resolver only ever writes resolved
// identities into an Element's property map (e.g. a Specialization
// Element's "general" property), not into a Relationship value. Most of the
// kinds the resolver dispatch table handles (Specialization,
// Subclassification, Subsetting, Redefinition, ...) are themselves
// represented as Elements, not Relationship values; Relationship here
// covers the coarser pair-linking kinds listed above that validation
// inspects for source/target kind constraints.
type Relationship struct {
	ID     model.ElementID
	Kind   RelationshipKind
	Source model.ElementID
	Target model.ElementID
	Props  *model.OrderedMap
}

// elementKindForRelationshipKind maps a coarse RelationshipKind to the
// metamodel element kind that carries the same name's source/target
// constraints (spec §4.4 validates a Relationship's endpoints against the
// metamodel's relationship_source_type/relationship_target_type constants,
// which are keyed by element kind, the same space Specialization,
// Redefinition, and the rest of the resolver dispatch groups live in).
var elementKindForRelationshipKind = map[RelationshipKind]model.Kind{
	RelOwning:     "OwningMembership",
	RelTypeOf:     "FeatureTyping",
	RelSatisfy:    "Satisfy",
	RelVerify:     "Verify",
	RelDerive:     "Dependency",
	RelTrace:      "Trace",
	RelReference:  "ReferenceSubsetting",
	RelSpecialize: "Specialization",
	RelRedefine:   "Redefinition",
	RelSubsetting: "Subsetting",
	RelFlow:       "ItemFlow",
	RelTransition: "Transition",
}

// ElementKindFor returns the metamodel element kind associated with a
// coarse RelationshipKind, for looking up structural-validation constraints.
func ElementKindFor(k RelationshipKind) (model.Kind, bool) {
	ek, ok := elementKindForRelationshipKind[k]
	return ek, ok
}

// NewRelationship constructs a Relationship with a fresh identity.
func NewRelationship(kind RelationshipKind, source, target model.ElementID) *Relationship {
	return &Relationship{
		ID:     model.NewElementID(),
		Kind:   kind,
		Source: source,
		Target: target,
		Props:  model.NewOrderedMap(),
	}
}
