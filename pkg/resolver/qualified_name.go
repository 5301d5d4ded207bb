package resolver

import (
	"strings"

	"github.com/pthm/sysmllink/pkg/model"
)

// isFeatureChain reports whether name is a pure feature chain: it contains
// '.' outside of quotes and contains no "::" (spec §4.3.3). A name
// containing "::" is always a qualified name, even if it also has dots
// (e.g. "A::B.c"), so that check is checked first.
func isFeatureChain(name string) bool {
	if strings.Contains(name, "::") {
		return false
	}
	inQuotes := false
	for _, r := range name {
		switch r {
		case '\'':
			inQuotes = !inQuotes
		case '.':
			if !inQuotes {
				return true
			}
		}
	}
	return false
}

// splitFeatureChainSegments splits a feature chain on '.', respecting
// single-quote escaping (a quoted segment like 'a.b' is not itself split).
func splitFeatureChainSegments(chain string) []string {
	var segments []string
	start := 0
	inQuotes := false
	for i, r := range chain {
		switch r {
		case '\'':
			inQuotes = !inQuotes
		case '.':
			if !inQuotes {
				segments = append(segments, chain[start:i])
				start = i + 1
			}
		}
	}
	segments = append(segments, chain[start:])
	return segments
}

// ResolveQualifiedName resolves a standard qualified name or a feature
// chain, starting from namespaceID (spec §4.3.3). A name containing '.'
// outside quotes and no "::" is dispatched as a feature chain; otherwise
// each "::"-separated segment after the first is resolved among the
// previous segment's owned members, falling back to global/library
// resolution for the first segment if local resolution fails.
func (ctx *ResolutionContext) ResolveQualifiedName(namespaceID model.ElementID, qname string) (model.ElementID, bool) {
	if isFeatureChain(qname) {
		return ctx.ResolveFeatureChain(namespaceID, qname)
	}

	segments := model.ParseQualifiedName(qname)
	if len(segments) == 0 {
		return model.NilElementID, false
	}

	current, ok := ctx.ResolveName(namespaceID, segments[0])
	if !ok {
		for _, root := range ctx.graph.Roots() {
			if root.Name != nil && namesMatch(*root.Name, segments[0]) {
				current, ok = root.ID, true
				break
			}
		}
	}
	if !ok {
		if id := ctx.resolveInLibraryPackages(segments[0]); id != nil {
			current, ok = *id, true
		}
	}
	if !ok {
		return model.NilElementID, false
	}

	for _, segment := range segments[1:] {
		next, found := ctx.ResolveName(current, segment)
		if !found {
			return model.NilElementID, false
		}
		current = next
	}

	return current, true
}

// ResolveQualifiedNameGlobal resolves qname starting from the graph's roots
// and library packages only, ignoring any local namespace. Import expansion
// does not call it: import references are resolved by resolveImportTarget.
func (ctx *ResolutionContext) ResolveQualifiedNameGlobal(qname string) (model.ElementID, bool) {
	segments := model.ParseQualifiedName(qname)
	if len(segments) == 0 {
		return model.NilElementID, false
	}

	var current model.ElementID
	found := false
	for _, root := range ctx.graph.Roots() {
		if root.Name != nil && namesMatch(*root.Name, segments[0]) {
			current, found = root.ID, true
			break
		}
	}
	if !found {
		if id := ctx.resolveInLibraryPackages(segments[0]); id != nil {
			current, found = *id, true
		}
	}
	if !found {
		return model.NilElementID, false
	}

	for _, segment := range segments[1:] {
		next, ok := ctx.ResolveName(current, segment)
		if !ok {
			return model.NilElementID, false
		}
		current = next
	}

	return current, true
}

// ResolveFeatureChain resolves a dot-separated feature chain like
// "vehicle.engine.pistons": the first segment by the normal six-step
// precedence, then each subsequent segment within the type-scope of the
// previous segment's FeatureTyping target (spec §4.3.3).
func (ctx *ResolutionContext) ResolveFeatureChain(namespaceID model.ElementID, chain string) (model.ElementID, bool) {
	segments := splitFeatureChainSegments(chain)
	if len(segments) == 0 {
		return model.NilElementID, false
	}

	current, ok := ctx.ResolveName(namespaceID, segments[0])
	if !ok {
		return model.NilElementID, false
	}

	for _, segment := range segments[1:] {
		typeID, ok := ctx.typeOf(current)
		if !ok {
			return model.NilElementID, false
		}
		next, found := ctx.resolveInTypeScope(typeID, segment)
		if !found {
			return model.NilElementID, false
		}
		current = next
	}

	return current, true
}

// typeOf returns the type a feature is typed by, read from a FeatureTyping
// element it owns (its resolved "type" property).
func (ctx *ResolutionContext) typeOf(featureID model.ElementID) (model.ElementID, bool) {
	for _, member := range ctx.graph.OwnedMembers(featureID) {
		if !ctx.table.IsSubtypeOf(member.Kind, "FeatureTyping") {
			continue
		}
		v, ok := member.Prop("type")
		if !ok {
			continue
		}
		return v.AsRef()
	}
	return model.NilElementID, false
}

// resolveInTypeScope resolves segment among typeID's owned and inherited
// members only: feature chaining is member access through a type, not a
// full namespace search (no imported/parent/global fallback).
func (ctx *ResolutionContext) resolveInTypeScope(typeID model.ElementID, segment string) (model.ElementID, bool) {
	table := ctx.getFullScopeTable(typeID)
	if id, ok := table.lookupOwned(segment); ok {
		return id, true
	}
	return table.lookupInherited(segment)
}
