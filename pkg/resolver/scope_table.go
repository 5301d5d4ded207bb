package resolver

import (
	"github.com/pthm/sysmllink/pkg/graph"
	"github.com/pthm/sysmllink/pkg/model"
)

// importedEntry pairs an imported member's identity with the visibility it
// was imported at. The visibility is recorded only; lookupImported does not
// filter on it.
type importedEntry struct {
	id         model.ElementID
	visibility graph.VisibilityKind
}

// ScopeTable is the cached per-namespace lookup structure from spec §4.3.1:
// three disjoint sections (owned, inherited, imported), each populated at
// most once, each looked up by exact match then quote-stripped then
// quote-added (lookupWithQuoteVariants) so quoted operator names like '/'
// match both the quoted and bare spelling.
type ScopeTable struct {
	owned      map[string]model.ElementID
	ownedShort map[string]model.ElementID

	imported      map[string]importedEntry
	importedShort map[string]importedEntry

	inherited map[string]model.ElementID

	populated          bool
	inheritedPopulated bool
	importedPopulated  bool
}

// NewScopeTable returns an empty ScopeTable.
func NewScopeTable() *ScopeTable {
	return &ScopeTable{
		owned:         make(map[string]model.ElementID),
		ownedShort:    make(map[string]model.ElementID),
		imported:      make(map[string]importedEntry),
		importedShort: make(map[string]importedEntry),
		inherited:     make(map[string]model.ElementID),
	}
}

func (t *ScopeTable) addOwned(name string, id model.ElementID)      { t.owned[name] = id }
func (t *ScopeTable) addOwnedShort(name string, id model.ElementID) { t.ownedShort[name] = id }
func (t *ScopeTable) addInherited(name string, id model.ElementID)  { t.inherited[name] = id }

func (t *ScopeTable) addImported(name string, id model.ElementID, vis graph.VisibilityKind) {
	t.imported[name] = importedEntry{id: id, visibility: vis}
}

func (t *ScopeTable) addImportedShort(name string, id model.ElementID, vis graph.VisibilityKind) {
	t.importedShort[name] = importedEntry{id: id, visibility: vis}
}

// lookupWithQuoteVariants tries name exactly, then with surrounding single
// quotes stripped, then with single quotes added, returning the first hit.
func lookupWithQuoteVariants[V any](m map[string]V, name string) (V, bool) {
	if v, ok := m[name]; ok {
		return v, true
	}
	stripped := model.StripQuotes(name)
	if stripped != name {
		if v, ok := m[stripped]; ok {
			return v, true
		}
	}
	quoted := model.AddQuotes(stripped)
	if quoted != name {
		if v, ok := m[quoted]; ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// lookupOwned looks up name among owned members and owned short names.
func (t *ScopeTable) lookupOwned(name string) (model.ElementID, bool) {
	if id, ok := lookupWithQuoteVariants(t.owned, name); ok {
		return id, true
	}
	return lookupWithQuoteVariants(t.ownedShort, name)
}

// lookupInherited looks up name among inherited members.
func (t *ScopeTable) lookupInherited(name string) (model.ElementID, bool) {
	return lookupWithQuoteVariants(t.inherited, name)
}

// lookupImported looks up name among imported members and imported short
// names, ignoring visibility (import expansion only ever records public
// members to begin with; see expandImports).
func (t *ScopeTable) lookupImported(name string) (model.ElementID, bool) {
	if e, ok := lookupWithQuoteVariants(t.imported, name); ok {
		return e.id, true
	}
	if e, ok := lookupWithQuoteVariants(t.importedShort, name); ok {
		return e.id, true
	}
	return model.NilElementID, false
}

func (t *ScopeTable) setPopulated()              { t.populated = true }
func (t *ScopeTable) isPopulated() bool          { return t.populated }
func (t *ScopeTable) setInheritedPopulated()      { t.inheritedPopulated = true }
func (t *ScopeTable) hasInheritedPopulated() bool { return t.inheritedPopulated }
func (t *ScopeTable) setImportedPopulated()       { t.importedPopulated = true }
func (t *ScopeTable) hasImportedPopulated() bool  { return t.importedPopulated }

// namesMatch reports whether two names are equal after stripping a single
// layer of surrounding quotes from each, so a quoted operator name like '/'
// matches an unquoted lookup for / and vice versa.
func namesMatch(a, b string) bool {
	return model.StripQuotes(a) == model.StripQuotes(b)
}
