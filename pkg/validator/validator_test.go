package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/sysmllink/pkg/graph"
	"github.com/pthm/sysmllink/pkg/metamodel"
	"github.com/pthm/sysmllink/pkg/model"
	"github.com/pthm/sysmllink/pkg/validator"
)

func defaultTable(t *testing.T) *metamodel.Table {
	t.Helper()
	table, err := metamodel.GenerateDefault(metamodel.DefaultArtifacts())
	require.NoError(t, err)
	return table
}

func named(kind model.Kind, name string) *graph.Element {
	e := graph.NewElement(kind)
	e.Name = &name
	return e
}

func TestValidateAcceptsWellFormedSpecialization(t *testing.T) {
	g := graph.NewModelGraph()
	pkg := named("Package", "P")
	g.AddElement(pkg)
	base := named("PartDefinition", "Base")
	g.AddOwnedElement(base, pkg.ID, graph.Public)
	derived := named("PartDefinition", "Derived")
	g.AddOwnedElement(derived, pkg.ID, graph.Public)

	rel := graph.NewRelationship(graph.RelSpecialize, derived.ID, base.ID)
	g.AddRelationship(rel)

	table := defaultTable(t)
	result := validator.Validate(g, table)

	for _, d := range result.Diagnostics {
		assert.NotEqual(t, "bad-source-kind", d.Code)
		assert.NotEqual(t, "bad-target-kind", d.Code)
	}
}

func TestValidateRejectsWrongSourceKind(t *testing.T) {
	g := graph.NewModelGraph()
	pkg := named("Package", "P")
	g.AddElement(pkg)
	notAType := named("Import", "notAType")
	g.AddOwnedElement(notAType, pkg.ID, graph.Public)
	base := named("PartDefinition", "Base")
	g.AddOwnedElement(base, pkg.ID, graph.Public)

	// Specialization requires a Type source; an Import is not a Type.
	rel := graph.NewRelationship(graph.RelSpecialize, notAType.ID, base.ID)
	g.AddRelationship(rel)

	table := defaultTable(t)
	result := validator.Validate(g, table)

	var found bool
	for _, d := range result.Diagnostics {
		if d.Code == "bad-source-kind" {
			found = true
		}
	}
	assert.True(t, found, "expected a bad-source-kind diagnostic, got %v", result.Diagnostics)
}

func TestValidateRejectsDanglingRelationshipTarget(t *testing.T) {
	g := graph.NewModelGraph()
	pkg := named("Package", "P")
	g.AddElement(pkg)
	derived := named("PartDefinition", "Derived")
	g.AddOwnedElement(derived, pkg.ID, graph.Public)

	rel := graph.NewRelationship(graph.RelSpecialize, derived.ID, model.NewElementID())
	g.AddRelationship(rel)

	table := defaultTable(t)
	result := validator.Validate(g, table)

	var found bool
	for _, d := range result.Diagnostics {
		if d.Code == "dangling-relationship-target" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateRejectsOwningMembershipOwnerMismatch(t *testing.T) {
	g := graph.NewModelGraph()
	pkgA := named("Package", "A")
	g.AddElement(pkgA)
	pkgB := named("Package", "B")
	g.AddElement(pkgB)

	part := named("PartDefinition", "X")
	g.AddOwnedElement(part, pkgA.ID, graph.Public)

	// Corrupt the cached owner so it disagrees with the membership that was
	// built for pkgA: the ownership invariant from spec §4.4/§8 must catch
	// this rather than silently trust either side.
	part.Owner = &pkgB.ID

	table := defaultTable(t)
	result := validator.Validate(g, table)

	var found bool
	for _, d := range result.Diagnostics {
		if d.Code == "owning-membership-owner-mismatch" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateAcceptsConsistentOwnership(t *testing.T) {
	g := graph.NewModelGraph()
	pkg := named("Package", "P")
	g.AddElement(pkg)
	part := named("PartDefinition", "X")
	g.AddOwnedElement(part, pkg.ID, graph.Public)

	table := defaultTable(t)
	result := validator.Validate(g, table)

	for _, d := range result.Diagnostics {
		assert.NotContains(t, d.Code, "owning-membership")
	}
}

func TestValidateReportsMissingRequiredProperty(t *testing.T) {
	g := graph.NewModelGraph()
	pkg := named("Package", "P")
	g.AddElement(pkg)

	// A bare OwningMembership with none of Membership's required properties
	// set must surface as missing-required-property diagnostics from the
	// per-kind validator.
	bareMembership := graph.NewElement("OwningMembership")
	bareMembership.Owner = &pkg.ID
	g.AddElement(bareMembership)

	table := defaultTable(t)
	result := validator.Validate(g, table)

	var found bool
	for _, d := range result.Diagnostics {
		if d.Code == "missing-required-property" {
			found = true
		}
	}
	assert.True(t, found)
}
