package graph_test

import (
	"testing"

	"github.com/pthm/sysmllink/pkg/graph"
	"github.com/pthm/sysmllink/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedElement(kind model.Kind, name string) *graph.Element {
	e := graph.NewElement(kind)
	e.Name = &name
	return e
}

func TestAddOwnedElementLinksMembership(t *testing.T) {
	g := graph.NewModelGraph()
	pkg := namedElement("Package", "P")
	g.AddElement(pkg)

	a := namedElement("PartDefinition", "A")
	g.AddOwnedElement(a, pkg.ID, graph.Public)

	require.NotNil(t, a.OwningMembership)
	membershipID, ok := g.OwningMembershipOf(a.ID)
	require.True(t, ok)
	assert.Equal(t, *a.OwningMembership, membershipID)

	membership, ok := g.Element(membershipID)
	require.True(t, ok)
	mv, ok := graph.AsMembershipView(membership)
	require.True(t, ok)

	member, ok := mv.MemberElement()
	require.True(t, ok)
	assert.Equal(t, a.ID, member)

	name, ok := mv.MemberName()
	require.True(t, ok)
	assert.Equal(t, "A", name)

	ns, ok := mv.MembershipOwningNamespace()
	require.True(t, ok)
	assert.Equal(t, pkg.ID, ns)

	assert.Equal(t, graph.Public, mv.Visibility())
}

func TestChildrenOfIncludesMembershipAndMember(t *testing.T) {
	g := graph.NewModelGraph()
	pkg := namedElement("Package", "P")
	g.AddElement(pkg)
	a := namedElement("PartDefinition", "A")
	g.AddOwnedElement(a, pkg.ID, graph.Public)

	children := g.ChildrenOf(pkg.ID)
	assert.Len(t, children, 2, "expected both the member and its wrapping membership")

	memberships := g.Memberships(pkg.ID)
	require.Len(t, memberships, 1)
	mv, _ := graph.AsMembershipView(memberships[0])
	member, _ := mv.MemberElement()
	assert.Equal(t, a.ID, member)
}

func TestAddElementWithOwnerNoMembership(t *testing.T) {
	g := graph.NewModelGraph()
	typ := namedElement("PartDefinition", "A")
	g.AddElement(typ)

	spec := graph.NewElement("Specialization")
	spec.Owner = &typ.ID
	g.AddElement(spec)

	assert.Empty(t, g.Memberships(typ.ID), "a structurally-owned element must not appear as a membership")
	assert.Contains(t, g.ChildrenOf(typ.ID), spec.ID)
}

func TestAddLibraryPackageRejectsNonRoot(t *testing.T) {
	g := graph.NewModelGraph()
	pkg := namedElement("Package", "P")
	g.AddElement(pkg)
	a := namedElement("PartDefinition", "A")
	g.AddOwnedElement(a, pkg.ID, graph.Public)

	err := g.AddLibraryPackage(a.ID)
	require.Error(t, err)
	assert.True(t, graph.IsNotARootErr(err))

	require.NoError(t, g.AddLibraryPackage(pkg.ID))
	assert.True(t, g.IsLibraryPackage(pkg.ID))
}

func TestQualifiedNameOfWalksOwnerChain(t *testing.T) {
	g := graph.NewModelGraph()
	root := namedElement("Package", "P")
	g.AddElement(root)
	sub := namedElement("Package", "Sub")
	g.AddOwnedElement(sub, root.ID, graph.Public)
	leaf := namedElement("PartDefinition", "Deep")
	g.AddOwnedElement(leaf, sub.ID, graph.Public)

	qn, ok := g.QualifiedNameOf(leaf.ID)
	require.True(t, ok)
	assert.Equal(t, "P::Sub::Deep", qn.String())
}

func TestRebuildIndexesReproducesOwnerChildren(t *testing.T) {
	g := graph.NewModelGraph()
	pkg := namedElement("Package", "P")
	g.AddElement(pkg)
	a := namedElement("PartDefinition", "A")
	g.AddOwnedElement(a, pkg.ID, graph.Public)

	before := g.ChildrenOf(pkg.ID)
	g.RebuildIndexes()
	after := g.ChildrenOf(pkg.ID)
	assert.ElementsMatch(t, before, after)
}

func TestMergeAsLibraryRegistersRoots(t *testing.T) {
	lib := graph.NewModelGraph()
	base := namedElement("Package", "Base")
	lib.AddElement(base)
	anything := namedElement("Classifier", "Anything")
	lib.AddOwnedElement(anything, base.ID, graph.Public)

	g := graph.NewModelGraph()
	g.Merge(lib, true)

	assert.True(t, g.IsLibraryPackage(base.ID))
	idx := g.LibraryIndex()
	assert.Equal(t, anything.ID, idx["Anything"])
}

func TestAddRelationshipUpdatesEndpointIndexes(t *testing.T) {
	g := graph.NewModelGraph()
	a := namedElement("PartDefinition", "A")
	b := namedElement("PartDefinition", "B")
	g.AddElement(a)
	g.AddElement(b)

	r := graph.NewRelationship(graph.RelSpecialize, b.ID, a.ID)
	g.AddRelationship(r)

	assert.Contains(t, g.OutgoingFrom(b.ID), r.ID)
	assert.Contains(t, g.IncomingTo(a.ID), r.ID)
}
