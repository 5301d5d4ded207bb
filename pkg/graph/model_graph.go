package graph

import "github.com/pthm/sysmllink/pkg/model"

// ModelGraph is the container described by spec §3/§4.2: elements and
// relationships keyed by identity, plus the four derived indexes
// (owner->children, source->relationships, target->relationships,
// namespace->memberships) and the element->owning-membership index.
//
// Indexes are maintained incrementally as elements and relationships are
// added, rather than lazily marked dirty and rebuilt on read: for a
// single-threaded, append-mostly construction pass (spec §5) this is
// simpler and has the same observable behavior as the dirty-flag scheme the
// original describes. RebuildIndexes exists for the one case incremental
// maintenance can't cover on its own: reconstructing a graph deserialized
// from a flat elements/relationships dump with no index information at all.
type ModelGraph struct {
	elements     map[model.ElementID]*Element
	elementOrder []model.ElementID

	relationships     map[model.ElementID]*Relationship
	relationshipOrder []model.ElementID

	libraryPackages map[model.ElementID]struct{}
	libraryOrder    []model.ElementID

	ownerChildren        map[model.ElementID][]model.ElementID
	sourceRelationships  map[model.ElementID][]model.ElementID
	targetRelationships  map[model.ElementID][]model.ElementID
	namespaceMemberships map[model.ElementID][]model.ElementID
	owningMembershipOf   map[model.ElementID]model.ElementID

	libraryIndex map[string]model.ElementID
}

// NewModelGraph returns an empty graph.
func NewModelGraph() *ModelGraph {
	return &ModelGraph{
		elements:             make(map[model.ElementID]*Element),
		relationships:        make(map[model.ElementID]*Relationship),
		libraryPackages:      make(map[model.ElementID]struct{}),
		ownerChildren:        make(map[model.ElementID][]model.ElementID),
		sourceRelationships:  make(map[model.ElementID][]model.ElementID),
		targetRelationships:  make(map[model.ElementID][]model.ElementID),
		namespaceMemberships: make(map[model.ElementID][]model.ElementID),
		owningMembershipOf:   make(map[model.ElementID]model.ElementID),
	}
}

// AddElement inserts e, keyed by its identity, and updates owner->children
// (and, if e's kind is a membership-family kind, namespace->memberships) if
// e.Owner is set.
func (g *ModelGraph) AddElement(e *Element) model.ElementID {
	g.elements[e.ID] = e
	g.elementOrder = append(g.elementOrder, e.ID)
	if e.Owner != nil {
		g.ownerChildren[*e.Owner] = append(g.ownerChildren[*e.Owner], e.ID)
		if isMembershipKind(e.Kind) {
			g.namespaceMemberships[*e.Owner] = append(g.namespaceMemberships[*e.Owner], e.ID)
		}
	}
	g.libraryIndex = nil
	return e.ID
}

// AddOwnedElement inserts e as a named member of owner: it atomically
// constructs an OwningMembership element linking owner to e with the given
// visibility, inserts both, and updates the namespace->memberships and
// element->owning-membership indexes. Returns e's identity.
func (g *ModelGraph) AddOwnedElement(e *Element, owner model.ElementID, visibility VisibilityKind) model.ElementID {
	membership := NewElement(KindOwningMembership)
	membership.Owner = &owner
	membership.SetProp(PropMembershipOwningNamespace, model.Ref(owner))
	membership.SetProp(PropMemberElement, model.Ref(e.ID))
	if e.Name != nil {
		membership.SetProp(PropMemberName, model.String(*e.Name))
	}
	if e.ShortName != nil {
		membership.SetProp(PropMemberShortName, model.String(*e.ShortName))
	}
	membership.SetProp(PropVisibility, model.Enum(string(visibility)))

	g.AddElement(membership)

	e.Owner = &owner
	e.OwningMembership = &membership.ID
	g.owningMembershipOf[e.ID] = membership.ID
	g.AddElement(e)

	return e.ID
}

// AddRelationship inserts r and updates both endpoint indexes.
func (g *ModelGraph) AddRelationship(r *Relationship) model.ElementID {
	g.relationships[r.ID] = r
	g.relationshipOrder = append(g.relationshipOrder, r.ID)
	g.sourceRelationships[r.Source] = append(g.sourceRelationships[r.Source], r.ID)
	g.targetRelationships[r.Target] = append(g.targetRelationships[r.Target], r.ID)
	return r.ID
}

// AddLibraryPackage registers id as a library package root: its public
// members become globally visible without import. Only top-level elements
// (no owner) are accepted.
func (g *ModelGraph) AddLibraryPackage(id model.ElementID) error {
	e, ok := g.elements[id]
	if !ok {
		return wrapUnknownElement(id)
	}
	if e.Owner != nil {
		return wrapNotARoot(id)
	}
	if _, already := g.libraryPackages[id]; !already {
		g.libraryPackages[id] = struct{}{}
		g.libraryOrder = append(g.libraryOrder, id)
		g.libraryIndex = nil
	}
	return nil
}

// IsLibraryPackage reports whether id has been registered as a library
// package root.
func (g *ModelGraph) IsLibraryPackage(id model.ElementID) bool {
	_, ok := g.libraryPackages[id]
	return ok
}

// LibraryPackages returns registered library package roots in registration
// order.
func (g *ModelGraph) LibraryPackages() []model.ElementID {
	return g.libraryOrder
}

// Merge inserts all elements and relationships from other into g. If
// asLibrary is set, other's root elements (no owner) are registered as
// library packages in g.
func (g *ModelGraph) Merge(other *ModelGraph, asLibrary bool) {
	for _, id := range other.elementOrder {
		g.AddElement(other.elements[id])
	}
	for _, id := range other.relationshipOrder {
		g.AddRelationship(other.relationships[id])
	}
	if asLibrary {
		for _, e := range other.Roots() {
			_ = g.AddLibraryPackage(e.ID)
		}
	}
}

// RebuildIndexes reconstructs all derived indexes from scratch, for use
// after bulk deserialization of a flat elements/relationships dump that
// carries no index information.
func (g *ModelGraph) RebuildIndexes() {
	g.ownerChildren = make(map[model.ElementID][]model.ElementID)
	g.sourceRelationships = make(map[model.ElementID][]model.ElementID)
	g.targetRelationships = make(map[model.ElementID][]model.ElementID)
	g.namespaceMemberships = make(map[model.ElementID][]model.ElementID)
	g.owningMembershipOf = make(map[model.ElementID]model.ElementID)
	g.libraryIndex = nil

	for _, id := range g.elementOrder {
		e := g.elements[id]
		if e.Owner != nil {
			g.ownerChildren[*e.Owner] = append(g.ownerChildren[*e.Owner], e.ID)
			if isMembershipKind(e.Kind) {
				g.namespaceMemberships[*e.Owner] = append(g.namespaceMemberships[*e.Owner], e.ID)
			}
		}
		if e.OwningMembership != nil {
			g.owningMembershipOf[e.ID] = *e.OwningMembership
		}
	}
	for _, id := range g.relationshipOrder {
		r := g.relationships[id]
		g.sourceRelationships[r.Source] = append(g.sourceRelationships[r.Source], r.ID)
		g.targetRelationships[r.Target] = append(g.targetRelationships[r.Target], r.ID)
	}
}

// Element looks up an element by identity.
func (g *ModelGraph) Element(id model.ElementID) (*Element, bool) {
	e, ok := g.elements[id]
	return e, ok
}

// Relationship looks up a relationship by identity.
func (g *ModelGraph) Relationship(id model.ElementID) (*Relationship, bool) {
	r, ok := g.relationships[id]
	return r, ok
}

// Elements returns all elements in insertion order. This is the order the
// resolver and validator enumerate elements in, per the ordering guarantee
// in spec §5.
func (g *ModelGraph) Elements() []*Element {
	out := make([]*Element, 0, len(g.elementOrder))
	for _, id := range g.elementOrder {
		out = append(out, g.elements[id])
	}
	return out
}

// Relationships returns all relationships in insertion order.
func (g *ModelGraph) Relationships() []*Relationship {
	out := make([]*Relationship, 0, len(g.relationshipOrder))
	for _, id := range g.relationshipOrder {
		out = append(out, g.relationships[id])
	}
	return out
}

// ChildrenOf returns the identities of elements directly owned by owner
// (Element.Owner == owner), in insertion order. This includes both named
// members (via AddOwnedElement, which also inserts their wrapping
// Membership) and structurally-owned sub-elements inserted directly via
// AddElement with Owner set (e.g. Specialization, Import).
func (g *ModelGraph) ChildrenOf(owner model.ElementID) []model.ElementID {
	return g.ownerChildren[owner]
}

// OutgoingFrom returns relationship identities whose source is id.
func (g *ModelGraph) OutgoingFrom(id model.ElementID) []model.ElementID {
	return g.sourceRelationships[id]
}

// IncomingTo returns relationship identities whose target is id.
func (g *ModelGraph) IncomingTo(id model.ElementID) []model.ElementID {
	return g.targetRelationships[id]
}

// ElementsByKind returns elements of the given kind, in insertion order.
func (g *ModelGraph) ElementsByKind(k model.Kind) []*Element {
	var out []*Element
	for _, id := range g.elementOrder {
		if e := g.elements[id]; e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// RelationshipsByKind returns relationships of the given kind, in insertion
// order.
func (g *ModelGraph) RelationshipsByKind(k RelationshipKind) []*Relationship {
	var out []*Relationship
	for _, id := range g.relationshipOrder {
		if r := g.relationships[id]; r.Kind == k {
			out = append(out, r)
		}
	}
	return out
}

// Roots returns elements with no owner, in insertion order.
func (g *ModelGraph) Roots() []*Element {
	var out []*Element
	for _, id := range g.elementOrder {
		if e := g.elements[id]; e.Owner == nil {
			out = append(out, e)
		}
	}
	return out
}

// OwnedMembers returns the elements directly owned by id, resolving
// ChildrenOf's identities to Element values.
func (g *ModelGraph) OwnedMembers(id model.ElementID) []*Element {
	ids := g.ownerChildren[id]
	out := make([]*Element, 0, len(ids))
	for _, cid := range ids {
		out = append(out, g.elements[cid])
	}
	return out
}

// Memberships returns the membership-family elements owned by namespace, in
// insertion order. This is the primary iteration surface for scope
// construction (spec §4.2).
func (g *ModelGraph) Memberships(namespace model.ElementID) []*Element {
	ids := g.namespaceMemberships[namespace]
	out := make([]*Element, 0, len(ids))
	for _, mid := range ids {
		out = append(out, g.elements[mid])
	}
	return out
}

// OwningMembershipOf returns the identity of the Membership element that
// owns id, if any.
func (g *ModelGraph) OwningMembershipOf(id model.ElementID) (model.ElementID, bool) {
	mid, ok := g.owningMembershipOf[id]
	return mid, ok
}

// QualifiedNameOf renders the qualified name of id by walking its owner
// chain and collecting declared names, outermost first. Returns ok=false if
// any ancestor (including id itself) lacks a declared name.
func (g *ModelGraph) QualifiedNameOf(id model.ElementID) (model.QualifiedName, bool) {
	var segments []string
	cur, ok := g.elements[id]
	if !ok {
		return nil, false
	}
	visited := make(map[model.ElementID]bool)
	for {
		if visited[cur.ID] {
			// Cycle in the owner chain: not a valid qualified name.
			return nil, false
		}
		visited[cur.ID] = true
		if cur.Name == nil {
			return nil, false
		}
		segments = append(segments, *cur.Name)
		if cur.Owner == nil {
			break
		}
		parent, ok := g.elements[*cur.Owner]
		if !ok {
			return nil, false
		}
		cur = parent
	}
	// Reverse into outermost-first order.
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return model.QualifiedName(segments), true
}

// LibraryIndex returns a lazily-built, cached map from simple name to
// identity, covering the direct public members of every registered library
// package. It is a fast path for non-nested library lookup; nested-package
// and public-re-export-import lookups fall back to a recursive search (see
// pkg/resolver), since a flat index cannot represent those without becoming
// stale under re-export changes.
func (g *ModelGraph) LibraryIndex() map[string]model.ElementID {
	if g.libraryIndex != nil {
		return g.libraryIndex
	}
	idx := make(map[string]model.ElementID)
	for _, root := range g.libraryOrder {
		for _, m := range g.Memberships(root) {
			mv, ok := AsMembershipView(m)
			if !ok || mv.Visibility() != Public {
				continue
			}
			name, ok := mv.MemberName()
			if !ok {
				continue
			}
			member, ok := mv.MemberElement()
			if !ok {
				continue
			}
			if _, exists := idx[name]; !exists {
				idx[name] = member
			}
		}
	}
	g.libraryIndex = idx
	return idx
}
