package resolver

import (
	"strings"

	"github.com/pthm/sysmllink/pkg/graph"
	"github.com/pthm/sysmllink/pkg/metamodel"
	"github.com/pthm/sysmllink/pkg/model"
)

// unresolvedPropPrefix names the property-key convention an unresolved
// cross-reference is stored under before resolution (spec §6).
const unresolvedPropPrefix = "unresolved_"

// hasUnresolvedRefs reports whether e carries at least one
// unresolved_<property> key.
func hasUnresolvedRefs(e *graph.Element) bool {
	for _, key := range e.PropKeys() {
		if strings.HasPrefix(key, unresolvedPropPrefix) {
			return true
		}
	}
	return false
}

// dispatchGroupFor returns the first group in metamodel.ResolverDispatchTable
// whose Kinds set k is a subtype of or equal to, honoring the table's
// declared precedence order (more specific kinds, e.g. Redefinition, are
// listed ahead of their more general supertypes, e.g. Specialization).
func dispatchGroupFor(table *metamodel.Table, k model.Kind) (metamodel.DispatchGroup, bool) {
	for _, group := range metamodel.ResolverDispatchTable {
		for _, kindName := range group.Kinds {
			if table.IsSubtypeOf(k, model.Kind(kindName)) {
				return group, true
			}
		}
	}
	return metamodel.DispatchGroup{}, false
}
