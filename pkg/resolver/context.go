package resolver

import (
	"github.com/pthm/sysmllink/pkg/graph"
	"github.com/pthm/sysmllink/pkg/metamodel"
	"github.com/pthm/sysmllink/pkg/model"
)

// failedLookup is a memoization key for resolveNameInner's negative cache:
// a (namespace, name) pair already known to fail resolution.
type failedLookup struct {
	namespace model.ElementID
	name      string
}

// ResolutionContext holds everything the resolution pass needs for a single
// graph: cached scope tables (built at most once per namespace per section),
// a visiting set for cycle detection, a negative-lookup cache so a name that
// fails from one namespace does not re-walk the same parent chain on every
// subsequent reference to it, an import-target cache, and a lazily-built
// InheritanceIndex. It never mutates the graph.
type ResolutionContext struct {
	graph *graph.ModelGraph
	table *metamodel.Table

	scopeTables map[model.ElementID]*ScopeTable
	visiting    map[model.ElementID]bool

	insideScope *model.ElementID
	inheriting  bool

	importCache   map[string]*model.ElementID
	failedLookups map[failedLookup]bool

	inheritance *InheritanceIndex
}

// NewResolutionContext creates a resolution context over g, using table for
// kind-subtype checks.
func NewResolutionContext(g *graph.ModelGraph, table *metamodel.Table) *ResolutionContext {
	return &ResolutionContext{
		graph:         g,
		table:         table,
		scopeTables:   make(map[model.ElementID]*ScopeTable),
		visiting:      make(map[model.ElementID]bool),
		importCache:   make(map[string]*model.ElementID),
		failedLookups: make(map[failedLookup]bool),
	}
}

// Graph returns the underlying graph.
func (ctx *ResolutionContext) Graph() *graph.ModelGraph { return ctx.graph }

// SetInsideScope records the namespace whose private members are currently
// visible. The value is stored on the context only; neither import expansion
// nor name lookup reads it (import expansion admits public members only).
func (ctx *ResolutionContext) SetInsideScope(namespace *model.ElementID) { ctx.insideScope = namespace }

// SetInheriting records whether an inheritance chain is being walked. The
// value is stored on the context only; addInheritedMembers admits protected
// members whether or not it is set.
func (ctx *ResolutionContext) SetInheriting(inheriting bool) { ctx.inheriting = inheriting }

func (ctx *ResolutionContext) ensureInheritanceIndex() {
	if ctx.inheritance == nil {
		ctx.inheritance = BuildInheritanceIndex(ctx.graph, ctx.table)
	}
}

// Supertypes returns typeID's direct supertype identities via the lazily
// built InheritanceIndex (spec §4.3.4): an O(1) alternative to scanning
// typeID's owned Specialization elements, for callers outside the
// resolution pass itself (e.g. pkg/validator or a CLI summary command) that
// need direct-supertype identities after resolution has already run.
// expandInherited does not use this index: it needs the resolved-or-
// unresolved fallback behavior of resolvedOrFallbackGeneral mid-pass, before
// every Specialization is necessarily resolved yet.
func (ctx *ResolutionContext) Supertypes(typeID model.ElementID) []model.ElementID {
	ctx.ensureInheritanceIndex()
	return ctx.inheritance.Supertypes(typeID)
}

// getFullScopeTable returns the cached ScopeTable for namespaceID, building
// owned members on first access and expanding inherited/imported members on
// first access to either.
func (ctx *ResolutionContext) getFullScopeTable(namespaceID model.ElementID) *ScopeTable {
	table, ok := ctx.scopeTables[namespaceID]
	if !ok {
		table = ctx.buildScopeTable(namespaceID)
		ctx.scopeTables[namespaceID] = table
	}

	if !table.hasInheritedPopulated() {
		redefined := ctx.collectRedefinedNames(namespaceID)
		ctx.expandInherited(namespaceID, table, make(map[model.ElementID]bool), redefined, 0)
		table.setInheritedPopulated()
	}

	if !table.hasImportedPopulated() {
		ctx.expandImports(namespaceID, table, make(map[model.ElementID]bool))
		table.setImportedPopulated()
	}

	return table
}

// buildScopeTable collects namespaceID's owned members by iterating its
// memberships (spec §4.2's namespace->memberships index).
func (ctx *ResolutionContext) buildScopeTable(namespaceID model.ElementID) *ScopeTable {
	table := NewScopeTable()

	for _, membership := range ctx.graph.Memberships(namespaceID) {
		view, ok := graph.AsMembershipView(membership)
		if !ok {
			continue
		}
		memberID, ok := view.MemberElement()
		if !ok {
			continue
		}

		name, ok := view.MemberName()
		if !ok {
			if member, found := ctx.graph.Element(memberID); found && member.Name != nil {
				name, ok = *member.Name, true
			}
		}
		if ok {
			table.addOwned(name, memberID)
		}

		if shortName, ok := view.MemberShortName(); ok {
			table.addOwnedShort(shortName, memberID)
		}
	}

	table.setPopulated()
	return table
}

// collectRedefinedNames returns the set of feature names typeID redefines,
// so expandInherited can skip shadowed inherited members (spec §4.3.1, "the
// redefinition-shadowing rule").
func (ctx *ResolutionContext) collectRedefinedNames(typeID model.ElementID) map[string]bool {
	redefined := make(map[string]bool)
	for _, member := range ctx.graph.OwnedMembers(typeID) {
		if !ctx.table.IsSubtypeOf(member.Kind, "Redefinition") {
			continue
		}
		ref, ok := member.Prop("unresolved_redefinedFeature")
		if !ok {
			continue
		}
		name, ok := ref.AsString()
		if !ok {
			continue
		}
		segments := model.ParseQualifiedName(name)
		if len(segments) == 0 {
			continue
		}
		redefined[segments[len(segments)-1]] = true
	}
	return redefined
}

// expandInherited walks typeID's owned Specialization elements and, for
// each resolved general type, adds its public and protected members to
// table's inherited section (spec §4.3.1). depth guards against a
// specialization cycle the visited set misses across separate top-level
// calls.
func (ctx *ResolutionContext) expandInherited(typeID model.ElementID, table *ScopeTable, visited map[model.ElementID]bool, redefined map[string]bool, depth int) {
	if depth > maxInheritanceDepth {
		return
	}
	typeElement, ok := ctx.graph.Element(typeID)
	if !ok {
		return
	}
	if !ctx.table.IsSubtypeOf(typeElement.Kind, "Type") {
		return
	}
	if visited[typeID] {
		return
	}
	visited[typeID] = true

	for _, spec := range ctx.graph.OwnedMembers(typeID) {
		if !ctx.table.IsSubtypeOf(spec.Kind, "Specialization") {
			continue
		}

		generalID, ok := ctx.resolvedOrFallbackGeneral(spec)
		if !ok {
			continue
		}
		ctx.addInheritedMembers(generalID, table, visited, redefined, depth)
	}
}

// resolvedOrFallbackGeneral prefers spec's already-resolved "general"
// property (preserving the resolving namespace's import context) and falls
// back to resolving the unresolved spelling directly, matching the original
// implementation's FI-2 fix: re-deriving the name from scratch can fail
// without the defining namespace's imports in scope, so the resolved
// identity is always used when present.
func (ctx *ResolutionContext) resolvedOrFallbackGeneral(spec *graph.Element) (model.ElementID, bool) {
	if v, ok := spec.Prop("general"); ok {
		if id, ok := v.AsRef(); ok {
			return id, true
		}
	}
	v, ok := spec.Prop("unresolved_general")
	if !ok {
		return model.NilElementID, false
	}
	ref, ok := v.AsString()
	if !ok {
		return model.NilElementID, false
	}
	if id := ctx.resolveImportTarget(ref); id != nil {
		return *id, true
	}
	if id := ctx.resolveInLibraryPackages(ref); id != nil {
		return *id, true
	}
	return model.NilElementID, false
}

// addInheritedMembers adds supertypeID's public and protected members to
// table's inherited section, skipping names redefined closer to the
// original type, then recurses into supertypeID's own supertypes.
func (ctx *ResolutionContext) addInheritedMembers(supertypeID model.ElementID, table *ScopeTable, visited map[model.ElementID]bool, redefined map[string]bool, depth int) {
	for _, membership := range ctx.graph.Memberships(supertypeID) {
		view, ok := graph.AsMembershipView(membership)
		if !ok {
			continue
		}
		if view.Visibility() == graph.Private {
			continue
		}
		memberID, ok := view.MemberElement()
		if !ok {
			continue
		}
		name, ok := view.MemberName()
		if !ok {
			if member, found := ctx.graph.Element(memberID); found && member.Name != nil {
				name, ok = *member.Name, true
			}
		}
		if !ok || redefined[name] {
			continue
		}
		table.addInherited(name, memberID)
	}

	ctx.expandInherited(supertypeID, table, visited, redefined, depth+1)
}

// expandImports processes namespaceID's owned Import elements and adds
// their resolved targets to table's imported section (spec §4.3.1).
func (ctx *ResolutionContext) expandImports(namespaceID model.ElementID, table *ScopeTable, visitedImports map[model.ElementID]bool) {
	for _, imp := range ctx.graph.OwnedMembers(namespaceID) {
		if !ctx.table.IsSubtypeOf(imp.Kind, "Import") {
			continue
		}
		if visitedImports[imp.ID] {
			continue
		}
		visitedImports[imp.ID] = true

		refVal, ok := imp.Prop("importedReference")
		if !ok {
			continue
		}
		ref, ok := refVal.AsString()
		if !ok {
			continue
		}

		isNamespace := propBool(imp, "isNamespace")
		isRecursive := propBool(imp, "isRecursive")

		targetID := ctx.resolveImportTarget(ref)
		if targetID == nil {
			continue
		}

		if isNamespace || isRecursive {
			ctx.importNamespaceMembers(*targetID, table, isRecursive, make(map[model.ElementID]bool))
			continue
		}

		target, ok := ctx.graph.Element(*targetID)
		if ok && target.Name != nil {
			table.addImported(*target.Name, *targetID, graph.Public)
		}
	}
}

func propBool(e *graph.Element, key string) bool {
	v, ok := e.Prop(key)
	if !ok {
		return false
	}
	b, _ := v.AsBool()
	return b
}

// importNamespaceMembers adds every public member of namespaceID to table's
// imported section, recursing into nested namespaces when recursive is set
// (the `::**` import form).
func (ctx *ResolutionContext) importNamespaceMembers(namespaceID model.ElementID, table *ScopeTable, recursive bool, visited map[model.ElementID]bool) {
	if visited[namespaceID] {
		return
	}
	visited[namespaceID] = true

	for _, membership := range ctx.graph.Memberships(namespaceID) {
		view, ok := graph.AsMembershipView(membership)
		if !ok || view.Visibility() != graph.Public {
			continue
		}
		memberID, ok := view.MemberElement()
		if !ok {
			continue
		}
		name, ok := view.MemberName()
		if !ok {
			if member, found := ctx.graph.Element(memberID); found && member.Name != nil {
				name, ok = *member.Name, true
			}
		}
		if ok {
			table.addImported(name, memberID, graph.Public)
		}

		if !recursive {
			continue
		}
		member, found := ctx.graph.Element(memberID)
		if found && (ctx.table.IsSubtypeOf(member.Kind, "Namespace") || member.Kind == "Namespace" || member.Kind == "Package") {
			ctx.importNamespaceMembers(memberID, table, true, visited)
		}
	}
}

// resolveImportTarget resolves an import's referenced qualified name against
// the graph's roots, caching the outcome (including a negative result) so
// repeated references to the same import target are not re-walked.
func (ctx *ResolutionContext) resolveImportTarget(ref string) *model.ElementID {
	if cached, ok := ctx.importCache[ref]; ok {
		return cached
	}
	result := ctx.resolveImportTargetUncached(ref)
	ctx.importCache[ref] = result
	return result
}

func (ctx *ResolutionContext) resolveImportTargetUncached(ref string) *model.ElementID {
	segments := model.ParseQualifiedName(ref)
	if len(segments) == 0 {
		return nil
	}

	var current model.ElementID
	found := false
	for _, root := range ctx.graph.Roots() {
		if root.Name != nil && namesMatch(*root.Name, segments[0]) {
			current = root.ID
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	for _, segment := range segments[1:] {
		next, ok := model.NilElementID, false
		for _, member := range ctx.graph.OwnedMembers(current) {
			if member.Name != nil && namesMatch(*member.Name, segment) {
				next, ok = member.ID, true
				break
			}
		}
		if !ok {
			return nil
		}
		current = next
	}

	return &current
}
