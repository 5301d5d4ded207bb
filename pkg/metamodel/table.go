package metamodel

import (
	"sort"
	"strings"

	"github.com/pthm/sysmllink/pkg/model"
)

// Category root kind names: a kind belongs to a category when the root is
// in its transitive supertype closure (or is the kind itself).
const (
	categoryDefinition  = "Definition"
	categoryUsage       = "Usage"
	categoryRelationship = "Relationship"
	categoryClassifier  = "Classifier"
	categoryFeature     = "Feature"
)

// Table is the set of language-neutral tables described by spec §4.1/§6,
// built once by Generate from decoded artifacts and then treated as
// read-only for the lifetime of a resolver/validator pass.
type Table struct {
	kinds     []model.Kind
	kindIndex map[model.Kind]int

	directSupertypes map[model.Kind][]model.Kind
	supertypes       map[model.Kind][]model.Kind // transitive closure, cycle-safe

	properties map[model.Kind][]*PropertyAccessor

	correspondingUsage      map[model.Kind]model.Kind
	correspondingDefinition map[model.Kind]model.Kind

	relationshipSourceKind   map[model.Kind]model.Kind
	relationshipTargetKind   map[model.Kind]model.Kind
	relationshipTargetProp   map[model.Kind]string
	relationshipTargetIsList map[model.Kind]bool

	crossReferences []CrossReferenceRule
}

// Kinds returns the kind enumeration in stable declaration order (the
// vocabulary artifact's order, excluding enum-literal entries).
func (t *Table) Kinds() []model.Kind {
	return t.kinds
}

// IndexOf returns the stable index of k in the kind enumeration, and
// whether k is a known kind.
func (t *Table) IndexOf(k model.Kind) (int, bool) {
	i, ok := t.kindIndex[k]
	return i, ok
}

// KindFromName reverse-looks-up a kind by its exact name, returning
// ErrUnknownKind if the vocabulary never declared it.
func (t *Table) KindFromName(name string) (model.Kind, error) {
	k := model.Kind(name)
	if _, ok := t.kindIndex[k]; !ok {
		return "", wrapUnknownKind(name)
	}
	return k, nil
}

// DirectSupertypes returns k's direct supertypes, in vocabulary-declared
// order.
func (t *Table) DirectSupertypes(k model.Kind) []model.Kind {
	return t.directSupertypes[k]
}

// Supertypes returns k's transitive supertype closure, computed with
// cycle detection: a kind that reaches itself through a declared cycle
// appears at most once and the computation terminates (spec §8, "cycle
// tolerance").
func (t *Table) Supertypes(k model.Kind) []model.Kind {
	return t.supertypes[k]
}

// IsSubtypeOf reports whether sub is super or a transitive subtype of super:
// super == sub, or super appears in sub's supertype closure.
func (t *Table) IsSubtypeOf(sub, super model.Kind) bool {
	if sub == super {
		return true
	}
	for _, s := range t.supertypes[sub] {
		if s == super {
			return true
		}
	}
	return false
}

func (t *Table) inCategory(k model.Kind, root model.Kind) bool {
	return t.IsSubtypeOf(k, root)
}

// IsDefinition, IsUsage, IsRelationship, IsClassifier, and IsFeature are the
// category predicates from spec §4.1(c)/§6: membership tests against the
// transitive closure of a fixed category-root kind. Each test scans k's
// supertype closure slice, so its cost grows with the closure's length; it
// is not constant-time.
func (t *Table) IsDefinition(k model.Kind) bool  { return t.inCategory(k, categoryDefinition) }
func (t *Table) IsUsage(k model.Kind) bool       { return t.inCategory(k, categoryUsage) }
func (t *Table) IsRelationship(k model.Kind) bool { return t.inCategory(k, categoryRelationship) }
func (t *Table) IsClassifier(k model.Kind) bool  { return t.inCategory(k, categoryClassifier) }
func (t *Table) IsFeature(k model.Kind) bool     { return t.inCategory(k, categoryFeature) }

// CorrespondingUsage returns the Usage-category kind paired with a
// Definition-category kind (PartDefinition -> PartUsage), if declared.
func (t *Table) CorrespondingUsage(k model.Kind) (model.Kind, bool) {
	v, ok := t.correspondingUsage[k]
	return v, ok
}

// CorrespondingDefinition returns the Definition-category kind paired with
// a Usage-category kind (PartUsage -> PartDefinition), if declared.
func (t *Table) CorrespondingDefinition(k model.Kind) (model.Kind, bool) {
	v, ok := t.correspondingDefinition[k]
	return v, ok
}

// RelationshipSourceKind returns the expected source-end kind for a
// relationship kind, from the class metamodel's association ends (or the
// curated fallback table — see DESIGN.md, open question 2).
func (t *Table) RelationshipSourceKind(k model.Kind) (model.Kind, bool) {
	v, ok := t.relationshipSourceKind[k]
	return v, ok
}

// RelationshipTargetKind returns the expected target-end kind for a
// relationship kind.
func (t *Table) RelationshipTargetKind(k model.Kind) (model.Kind, bool) {
	v, ok := t.relationshipTargetKind[k]
	return v, ok
}

// RelationshipTargetProperty returns the property name that holds a given
// kind's resolution target, and whether that property is list-valued
// (spec §4.1(g)).
func (t *Table) RelationshipTargetProperty(k model.Kind) (name string, isList bool, ok bool) {
	name, ok = t.relationshipTargetProp[k]
	return name, t.relationshipTargetIsList[k], ok
}

// Properties returns the pre-joined property accessor set for k: its own
// declared properties plus every inherited property not shadowed by one
// declared closer in the specialization chain (spec §4.1, "Inheritance
// resolution for shapes").
func (t *Table) Properties(k model.Kind) []*PropertyAccessor {
	return t.properties[k]
}

// Accessor returns the single named property accessor for k, if declared
// or inherited.
func (t *Table) Accessor(k model.Kind, name string) (*PropertyAccessor, bool) {
	for _, pa := range t.properties[k] {
		if pa.Name == name {
			return pa, true
		}
	}
	return nil, false
}

// CrossReferences returns the decoded cross-reference registry rules
// verbatim, for callers (e.g. validator) that need the raw registry rather
// than the resolver's derived dispatch view.
func (t *Table) CrossReferences() []CrossReferenceRule {
	return t.crossReferences
}

// buildSupertypeClosure computes, for every kind, its transitive supertype
// closure with cycle detection via a visited set — a declared cycle (A :>
// B, B :> A) must not recurse forever, and the resulting closure must list
// each supertype once (spec §8, scenario 6).
func buildSupertypeClosure(direct map[model.Kind][]model.Kind, kinds []model.Kind) map[model.Kind][]model.Kind {
	closure := make(map[model.Kind][]model.Kind, len(kinds))
	for _, k := range kinds {
		closure[k] = closureOf(k, direct, make(map[model.Kind]bool))
	}
	return closure
}

func closureOf(k model.Kind, direct map[model.Kind][]model.Kind, visiting map[model.Kind]bool) []model.Kind {
	if visiting[k] {
		return nil
	}
	visiting[k] = true
	defer delete(visiting, k)

	seen := make(map[model.Kind]bool)
	var out []model.Kind
	for _, super := range direct[k] {
		if seen[super] {
			continue
		}
		seen[super] = true
		out = append(out, super)
		for _, transitive := range closureOf(super, direct, visiting) {
			if !seen[transitive] {
				seen[transitive] = true
				out = append(out, transitive)
			}
		}
	}
	return out
}

// definitionUsagePairing derives Definition<->Usage kind pairs by the
// naming convention spelled out in the glossary (PartDefinition /
// PartUsage, and so on): a kind ending in "Definition" pairs with the kind
// of the same prefix ending in "Usage", when both are declared.
func definitionUsagePairing(kinds []model.Kind) (usage map[model.Kind]model.Kind, definition map[model.Kind]model.Kind) {
	usage = make(map[model.Kind]model.Kind)
	definition = make(map[model.Kind]model.Kind)
	known := make(map[string]model.Kind, len(kinds))
	for _, k := range kinds {
		known[string(k)] = k
	}
	for _, k := range kinds {
		name := string(k)
		if strings.HasSuffix(name, "Definition") {
			prefix := strings.TrimSuffix(name, "Definition")
			if u, ok := known[prefix+"Usage"]; ok {
				usage[k] = u
				definition[u] = k
			}
		}
	}
	return usage, definition
}

func sortedKindNames(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
