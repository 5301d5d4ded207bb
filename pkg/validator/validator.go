package validator

import (
	"github.com/pthm/sysmllink/pkg/diag"
	"github.com/pthm/sysmllink/pkg/graph"
	"github.com/pthm/sysmllink/pkg/metamodel"
)

// Result reports every diagnostic a validation pass collected.
type Result struct {
	Diagnostics diag.Diagnostics
}

// HasErrors reports whether any collected diagnostic has Error severity.
func (r *Result) HasErrors() bool { return r.Diagnostics.HasErrors() }

// Validate runs the three checks of spec §4.4 against g, in order:
// relationship endpoint kinds, the owning-membership/owner consistency
// invariant, and each element's per-kind property validator. It never
// mutates g and never halts early; every violation across all three checks
// is collected into the returned Result.
func Validate(g *graph.ModelGraph, table *metamodel.Table) *Result {
	var out diag.Diagnostics

	checkRelationshipEndpoints(g, table, &out)
	checkOwningMembershipConsistency(g, &out)
	checkPerKindProperties(g, table, &out)

	return &Result{Diagnostics: out}
}

// checkRelationshipEndpoints verifies that every Relationship's source and
// target element kinds are subtypes of the metamodel's declared
// relationship_source_type/relationship_target_type for the Relationship's
// coarse kind (spec §4.4, first bullet). A RelationshipKind with no
// corresponding element kind, or an element kind with no declared endpoint
// constraint, is skipped rather than treated as a violation: not every
// coarse kind this graph carries necessarily has a metamodel-declared
// constraint.
func checkRelationshipEndpoints(g *graph.ModelGraph, table *metamodel.Table, out *diag.Diagnostics) {
	for _, rel := range g.Relationships() {
		elementKind, ok := graph.ElementKindFor(rel.Kind)
		if !ok {
			continue
		}

		if wantSource, ok := table.RelationshipSourceKind(elementKind); ok {
			if src, found := g.Element(rel.Source); !found {
				out.Push(diag.Errorf("dangling-relationship-source",
					"%s: source %s is not in the graph", rel.Kind, rel.Source))
			} else if !table.IsSubtypeOf(src.Kind, wantSource) {
				out.Push(withSpan(diag.Errorf("bad-source-kind",
					"%s: source %s has kind %s, want a subtype of %s", rel.Kind, rel.ID, src.Kind, wantSource), src))
			}
		}

		if wantTarget, ok := table.RelationshipTargetKind(elementKind); ok {
			if tgt, found := g.Element(rel.Target); !found {
				out.Push(diag.Errorf("dangling-relationship-target",
					"%s: target %s is not in the graph", rel.Kind, rel.Target))
			} else if !table.IsSubtypeOf(tgt.Kind, wantTarget) {
				out.Push(withSpan(diag.Errorf("bad-target-kind",
					"%s: target %s has kind %s, want a subtype of %s", rel.Kind, rel.ID, tgt.Kind, wantTarget), tgt))
			}
		}
	}
}

// checkOwningMembershipConsistency verifies, for every element with a
// recorded owning_membership, that the graph contains that membership, that
// it is actually a Membership-family element, and that its
// membershipOwningNamespace equals the element's cached owner (spec §4.4,
// second bullet; spec §8's universal ownership invariant).
func checkOwningMembershipConsistency(g *graph.ModelGraph, out *diag.Diagnostics) {
	for _, e := range g.Elements() {
		if e.OwningMembership == nil {
			continue
		}

		membership, found := g.Element(*e.OwningMembership)
		if !found {
			out.Push(withSpan(diag.Errorf("dangling-owning-membership",
				"%s: owning_membership %s is not in the graph", e.Kind, *e.OwningMembership), e))
			continue
		}

		view, ok := graph.AsMembershipView(membership)
		if !ok {
			out.Push(withSpan(diag.Errorf("owning-membership-not-a-membership",
				"%s: owning_membership %s has kind %s, not a Membership", e.Kind, membership.ID, membership.Kind), e))
			continue
		}

		memberID, ok := view.MemberElement()
		if !ok || memberID != e.ID {
			out.Push(withSpan(diag.Errorf("owning-membership-wrong-member",
				"%s: owning_membership %s does not name %s as its memberElement", e.Kind, membership.ID, e.ID), e))
		}

		owningNamespace, ok := view.MembershipOwningNamespace()
		if !ok || e.Owner == nil || owningNamespace != *e.Owner {
			out.Push(withSpan(diag.Errorf("owning-membership-owner-mismatch",
				"%s: owning_membership's membershipOwningNamespace does not match the element's own owner", e.Kind), e))
		}
	}
}

// checkPerKindProperties runs every element through the metamodel's
// per-kind property validator (spec §4.4, third bullet): missing required
// properties, cardinality overflow, read-only properties set from source,
// and value-kind mismatches.
func checkPerKindProperties(g *graph.ModelGraph, table *metamodel.Table, out *diag.Diagnostics) {
	for _, e := range g.Elements() {
		*out = append(*out, table.Validate(e, e.Kind)...)
	}
}

func withSpan(d *diag.Diagnostic, e *graph.Element) *diag.Diagnostic {
	if len(e.Spans) > 0 {
		d = d.WithSpan(e.Spans[0])
	}
	return d
}
