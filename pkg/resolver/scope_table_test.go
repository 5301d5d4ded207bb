package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm/sysmllink/pkg/graph"
	"github.com/pthm/sysmllink/pkg/model"
)

func TestScopeTableLookupOwnedExactMatch(t *testing.T) {
	table := NewScopeTable()
	id := model.NewElementID()
	table.addOwned("Widget", id)

	got, ok := table.lookupOwned("Widget")
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestScopeTableLookupOwnedQuoteVariants(t *testing.T) {
	table := NewScopeTable()
	id := model.NewElementID()
	table.addOwned("'/'", id)

	got, ok := table.lookupOwned("/")
	assert.True(t, ok, "an unquoted lookup must match a quoted stored name")
	assert.Equal(t, id, got)
}

func TestScopeTableLookupOwnedQuoteVariantsReversed(t *testing.T) {
	table := NewScopeTable()
	id := model.NewElementID()
	table.addOwned("/", id)

	got, ok := table.lookupOwned("'/'")
	assert.True(t, ok, "a quoted lookup must match a bare stored name")
	assert.Equal(t, id, got)
}

func TestScopeTableSectionsAreDisjoint(t *testing.T) {
	table := NewScopeTable()
	ownedID := model.NewElementID()
	inheritedID := model.NewElementID()
	importedID := model.NewElementID()

	table.addOwned("X", ownedID)
	table.addInherited("X", inheritedID)
	table.addImported("X", importedID, graph.Public)

	got, ok := table.lookupOwned("X")
	assert.True(t, ok)
	assert.Equal(t, ownedID, got, "lookupOwned must not see the inherited or imported entry for the same name")

	got, ok = table.lookupInherited("X")
	assert.True(t, ok)
	assert.Equal(t, inheritedID, got)

	got, ok = table.lookupImported("X")
	assert.True(t, ok)
	assert.Equal(t, importedID, got)
}

func TestScopeTablePopulatedFlagsIndependent(t *testing.T) {
	table := NewScopeTable()
	assert.False(t, table.isPopulated())
	assert.False(t, table.hasInheritedPopulated())
	assert.False(t, table.hasImportedPopulated())

	table.setPopulated()
	assert.True(t, table.isPopulated())
	assert.False(t, table.hasInheritedPopulated())

	table.setInheritedPopulated()
	assert.True(t, table.hasInheritedPopulated())
	assert.False(t, table.hasImportedPopulated())

	table.setImportedPopulated()
	assert.True(t, table.hasImportedPopulated())
}

func TestNamesMatchStripsOneQuoteLayer(t *testing.T) {
	assert.True(t, namesMatch("'/'", "/"))
	assert.True(t, namesMatch("/", "'/'"))
	assert.True(t, namesMatch("Widget", "Widget"))
	assert.False(t, namesMatch("Widget", "Gadget"))
}
