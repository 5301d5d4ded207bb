package resolver

import (
	"github.com/pthm/sysmllink/pkg/graph"
	"github.com/pthm/sysmllink/pkg/metamodel"
	"github.com/pthm/sysmllink/pkg/model"
)

// maxInheritanceDepth bounds inheritance traversal depth (spec §4.3.1),
// guarding against specialization cycles the visited set in expandInherited
// does not already catch (e.g. a cycle discovered through a different entry
// point on a later call, after the first call's visited set has gone out of
// scope).
const maxInheritanceDepth = 50

// maxLibrarySearchDepth bounds recursive descent into nested library
// packages and their public re-export imports (spec §4.3.2 step 7).
const maxLibrarySearchDepth = 10

// InheritanceIndex maps each type identity to its direct supertype
// identities (spec §4.3.4), built by scanning every Specialization-family
// element once and reading its owner (the specific/subtype) and its
// resolved "general" property (the supertype). It operates on concrete
// element identities, not metamodel kinds — metamodel.Table.Supertypes
// answers "what kinds does PartDefinition specialize"; InheritanceIndex
// answers "what does this particular PartDefinition instance specialize",
// which can only be known after Specialization elements are resolved.
type InheritanceIndex struct {
	directSupertypes map[model.ElementID][]model.ElementID
}

// BuildInheritanceIndex scans g for Specialization-family elements and
// records each one's (owner, resolved general) pair.
func BuildInheritanceIndex(g *graph.ModelGraph, table *metamodel.Table) *InheritanceIndex {
	idx := &InheritanceIndex{directSupertypes: make(map[model.ElementID][]model.ElementID)}

	for _, e := range g.Elements() {
		if !table.IsSubtypeOf(e.Kind, "Specialization") {
			continue
		}
		if e.Owner == nil {
			continue
		}
		general, ok := e.Prop("general")
		if !ok {
			continue
		}
		generalID, ok := general.AsRef()
		if !ok {
			continue
		}
		idx.directSupertypes[*e.Owner] = append(idx.directSupertypes[*e.Owner], generalID)
	}

	return idx
}

// Supertypes returns the direct supertype identities recorded for typeID.
func (idx *InheritanceIndex) Supertypes(typeID model.ElementID) []model.ElementID {
	return idx.directSupertypes[typeID]
}
