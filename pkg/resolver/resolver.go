package resolver

import (
	"github.com/pthm/sysmllink/pkg/diag"
	"github.com/pthm/sysmllink/pkg/graph"
	"github.com/pthm/sysmllink/pkg/metamodel"
	"github.com/pthm/sysmllink/pkg/model"
)

// Result reports the outcome of a resolution pass: how many references were
// resolved, how many were not, and the diagnostics collected for the
// latter (spec §4.3.6). A non-zero UnresolvedCount is not itself a fatal
// condition; callers decide whether to treat it as one.
type Result struct {
	ResolvedCount   int
	UnresolvedCount int
	Diagnostics     diag.Diagnostics
}

// IsComplete reports whether every unresolved reference was resolved.
func (r *Result) IsComplete() bool { return r.UnresolvedCount == 0 }

// pendingUpdate is a (element, property, value) write collected during the
// read-only resolution pass, applied only after every element has been
// considered — the resolver never reads from the graph and writes to it in
// the same step (spec §4.3.5).
type pendingUpdate struct {
	id    model.ElementID
	key   string
	value model.Value
}

// Resolve resolves every unresolved_<property> reference in g against
// table's metamodel, in graph insertion order, dispatching each element to
// the first metamodel.ResolverDispatchTable group its kind matches. It
// never mutates g until every element has been considered.
func Resolve(g *graph.ModelGraph, table *metamodel.Table) *Result {
	ctx := NewResolutionContext(g, table)
	result := &Result{}

	var updates []pendingUpdate

	for _, e := range g.Elements() {
		if !hasUnresolvedRefs(e) {
			continue
		}
		group, ok := dispatchGroupFor(table, e.Kind)
		if !ok {
			continue
		}

		scopeID := e.ID
		if e.Owner != nil {
			scopeID = *e.Owner
		}

		for _, dp := range group.Properties {
			unresolvedKey := unresolvedPropPrefix + dp.UnresolvedKey
			v, ok := e.Prop(unresolvedKey)
			if !ok {
				continue
			}

			if dp.List {
				items, ok := v.AsList()
				if !ok {
					continue
				}
				var resolved []model.Value
				for _, item := range items {
					ref, ok := item.AsString()
					if !ok {
						continue
					}
					id, found := ctx.ResolveQualifiedName(scopeID, ref)
					if !found {
						result.UnresolvedCount++
						result.Diagnostics.Push(unresolvedDiagnostic(e, dp.ResolvedKey, ref))
						continue
					}
					result.ResolvedCount++
					resolved = append(resolved, model.Ref(id))
				}
				if len(resolved) > 0 {
					updates = append(updates, pendingUpdate{id: e.ID, key: dp.ResolvedKey, value: model.List(resolved)})
				}
				continue
			}

			ref, ok := v.AsString()
			if !ok {
				continue
			}
			id, found := ctx.ResolveQualifiedName(scopeID, ref)
			if !found {
				result.UnresolvedCount++
				result.Diagnostics.Push(unresolvedDiagnostic(e, dp.ResolvedKey, ref))
				continue
			}
			result.ResolvedCount++
			updates = append(updates, pendingUpdate{id: e.ID, key: dp.ResolvedKey, value: model.Ref(id)})
		}
	}

	for _, u := range updates {
		if e, ok := g.Element(u.id); ok {
			e.SetProp(u.key, u.value)
		}
	}

	return result
}

// unresolvedDiagnostic builds the Error-severity diagnostic spec §4.3.6
// requires for a failed reference: the element's source span (if any), the
// property name, and the textual qualified name that failed.
func unresolvedDiagnostic(e *graph.Element, property, ref string) *diag.Diagnostic {
	d := diag.Errorf("unresolved-reference", "%s.%s: cannot resolve %q", e.Kind, property, ref)
	if len(e.Spans) > 0 {
		d = d.WithSpan(e.Spans[0])
	}
	return d
}
