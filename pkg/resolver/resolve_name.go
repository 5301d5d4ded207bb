package resolver

import (
	"github.com/pthm/sysmllink/pkg/graph"
	"github.com/pthm/sysmllink/pkg/model"
)

// primitiveTypeAlias maps the small closed set of primitive type spellings
// the grammar accepts as synonyms for their canonical library names (spec
// §4.3.2 step 1).
var primitiveTypeAlias = map[string]string{
	"float": "Real",
	"int":   "Integer",
}

// ResolveName resolves a bare name N requested from namespaceID, following
// the six-step precedence of spec §4.3.2: primitive alias, owned, inherited,
// imported, parent, global, library. Cycle detection uses a visiting set
// keyed by namespace, so a name under active resolution in a namespace will
// not recurse into the same namespace again.
func (ctx *ResolutionContext) ResolveName(namespaceID model.ElementID, name string) (model.ElementID, bool) {
	if ctx.visiting[namespaceID] {
		return model.NilElementID, false
	}
	ctx.visiting[namespaceID] = true
	defer delete(ctx.visiting, namespaceID)

	return ctx.resolveNameInner(namespaceID, name)
}

func (ctx *ResolutionContext) resolveNameInner(namespaceID model.ElementID, name string) (model.ElementID, bool) {
	key := failedLookup{namespace: namespaceID, name: name}
	if ctx.failedLookups[key] {
		return model.NilElementID, false
	}

	// 0. Primitive alias.
	if canonical, ok := primitiveTypeAlias[name]; ok {
		result, found := ctx.resolveNameInner(namespaceID, canonical)
		if !found {
			ctx.failedLookups[key] = true
		}
		return result, found
	}

	table := ctx.getFullScopeTable(namespaceID)

	// 1. Owned.
	if id, ok := table.lookupOwned(name); ok {
		return id, true
	}
	// 2. Inherited.
	if id, ok := table.lookupInherited(name); ok {
		return id, true
	}
	// 3. Imported.
	if id, ok := table.lookupImported(name); ok {
		return id, true
	}

	// 4. Parent.
	if owner, ok := ctx.graph.Element(namespaceID); ok && owner.Owner != nil {
		if id, found := ctx.ResolveName(*owner.Owner, name); found {
			return id, true
		}
	}

	// 5. Global: match against non-library root names.
	libraries := make(map[model.ElementID]bool)
	for _, libID := range ctx.graph.LibraryPackages() {
		libraries[libID] = true
	}
	for _, root := range ctx.graph.Roots() {
		if root.Name != nil && *root.Name == name && !libraries[root.ID] {
			return root.ID, true
		}
	}

	// 6. Library.
	if id := ctx.resolveInLibraryPackages(name); id != nil {
		return *id, true
	}

	ctx.failedLookups[key] = true
	return model.NilElementID, false
}

// resolveInLibraryPackages searches every registered library package for
// name, first against the package's own name, then recursively into its
// members (spec §4.3.2 step 7).
func (ctx *ResolutionContext) resolveInLibraryPackages(name string) *model.ElementID {
	for _, libID := range ctx.graph.LibraryPackages() {
		if lib, ok := ctx.graph.Element(libID); ok && lib.Name != nil && *lib.Name == name {
			id := libID
			return &id
		}
		if id := ctx.searchLibraryRecursively(libID, name, 0); id != nil {
			return id
		}
	}
	return nil
}

// searchLibraryRecursively checks namespaceID's public members for name,
// then recurses into nested namespaces and, distinctly, follows namespaceID's
// own public Import elements (a "public import Kernel::*" re-exports its
// target's members, so a recursive library search must walk imports as well
// as owned members — the dropped detail SPEC_FULL.md calls out from the
// original implementation). depth is bounded by maxLibrarySearchDepth.
func (ctx *ResolutionContext) searchLibraryRecursively(namespaceID model.ElementID, name string, depth int) *model.ElementID {
	if depth > maxLibrarySearchDepth {
		return nil
	}

	for _, membership := range ctx.graph.Memberships(namespaceID) {
		view, ok := asPublicMembership(membership)
		if !ok {
			continue
		}
		memberID, ok := view.MemberElement()
		if !ok {
			continue
		}

		memberName, ok := view.MemberName()
		if !ok {
			if member, found := ctx.graph.Element(memberID); found && member.Name != nil {
				memberName, ok = *member.Name, true
			}
		}
		if ok && namesMatch(memberName, name) {
			id := memberID
			return &id
		}

		if member, found := ctx.graph.Element(memberID); found && ctx.isNamespaceLike(member.Kind) {
			if id := ctx.searchLibraryRecursively(memberID, name, depth+1); id != nil {
				return id
			}
		}
	}

	for _, member := range ctx.graph.OwnedMembers(namespaceID) {
		if !ctx.table.IsSubtypeOf(member.Kind, "Import") {
			continue
		}
		if !propEnumEquals(member, "visibility", "public") {
			continue
		}
		refVal, ok := member.Prop("importedReference")
		if !ok {
			continue
		}
		ref, ok := refVal.AsString()
		if !ok {
			continue
		}
		if !propBool(member, "isNamespace") {
			continue
		}
		target := ctx.resolveImportTarget(ref)
		if target == nil {
			continue
		}
		if id := ctx.searchLibraryRecursively(*target, name, depth+1); id != nil {
			return id
		}
	}

	return nil
}

func (ctx *ResolutionContext) isNamespaceLike(k model.Kind) bool {
	return k == "Namespace" || k == "Package" || ctx.table.IsSubtypeOf(k, "Namespace")
}

func propEnumEquals(e *graph.Element, key, want string) bool {
	v, ok := e.Prop(key)
	if !ok {
		return false
	}
	token, ok := v.AsEnum()
	if !ok {
		token, ok = v.AsString()
	}
	return ok && token == want
}

func asPublicMembership(e *graph.Element) (graph.MembershipView, bool) {
	mv, ok := graph.AsMembershipView(e)
	if !ok || mv.Visibility() != graph.Public {
		return graph.MembershipView{}, false
	}
	return mv, true
}
