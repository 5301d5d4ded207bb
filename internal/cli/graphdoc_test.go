package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/sysmllink/pkg/graph"
	"github.com/pthm/sysmllink/pkg/metamodel"
	"github.com/pthm/sysmllink/pkg/model"
)

func writeGraphDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testTable(t *testing.T) *metamodel.Table {
	t.Helper()
	table, err := metamodel.GenerateDefault(metamodel.DefaultArtifacts())
	require.NoError(t, err)
	return table
}

func TestLoadGraphDocumentBuildsElementsAndOwnership(t *testing.T) {
	path := writeGraphDoc(t, `{
		"elements": [
			{"id": "11111111-1111-1111-1111-111111111111", "kind": "Package", "name": "P"},
			{
				"id": "22222222-2222-2222-2222-222222222222",
				"kind": "PartDefinition",
				"name": "Widget",
				"owner": "11111111-1111-1111-1111-111111111111",
				"owning_membership": "33333333-3333-3333-3333-333333333333"
			},
			{
				"id": "33333333-3333-3333-3333-333333333333",
				"kind": "OwningMembership",
				"owner": "11111111-1111-1111-1111-111111111111",
				"props": {
					"membershipOwningNamespace": {"kind": "ref", "ref": "11111111-1111-1111-1111-111111111111"},
					"memberElement": {"kind": "ref", "ref": "22222222-2222-2222-2222-222222222222"},
					"visibility": {"kind": "enum", "str": "public"}
				}
			}
		],
		"relationships": []
	}`)

	g, err := LoadGraphDocument(path, testTable(t))
	require.NoError(t, err)

	elements := g.Elements()
	assert.Len(t, elements, 3)

	widget := g.ElementsByKind("PartDefinition")[0]
	require.NotNil(t, widget)
	require.NotNil(t, widget.Owner)
	require.NotNil(t, widget.OwningMembership)

	membership, ok := g.Element(*widget.OwningMembership)
	require.True(t, ok)
	v, ok := membership.Prop("visibility")
	require.True(t, ok)
	s, _ := v.AsEnum()
	assert.Equal(t, "public", s)
}

func TestLoadGraphDocumentBuildsRelationships(t *testing.T) {
	path := writeGraphDoc(t, `{
		"elements": [
			{"id": "11111111-1111-1111-1111-111111111111", "kind": "PartDefinition", "name": "Base"},
			{"id": "22222222-2222-2222-2222-222222222222", "kind": "PartDefinition", "name": "Derived"}
		],
		"relationships": [
			{
				"id": "33333333-3333-3333-3333-333333333333",
				"kind": "specialize",
				"source": "22222222-2222-2222-2222-222222222222",
				"target": "11111111-1111-1111-1111-111111111111"
			}
		]
	}`)

	g, err := LoadGraphDocument(path, testTable(t))
	require.NoError(t, err)

	rels := g.Relationships()
	require.Len(t, rels, 1)
	assert.Equal(t, graph.RelSpecialize, rels[0].Kind)
}

func TestLoadGraphDocumentRejectsMalformedID(t *testing.T) {
	path := writeGraphDoc(t, `{"elements": [{"id": "not-a-uuid", "kind": "Package"}]}`)

	_, err := LoadGraphDocument(path, testTable(t))
	require.Error(t, err)
}

func TestLoadGraphDocumentRejectsUnknownKind(t *testing.T) {
	path := writeGraphDoc(t, `{"elements": [{"id": "11111111-1111-1111-1111-111111111111", "kind": "NotAKind"}]}`)

	_, err := LoadGraphDocument(path, testTable(t))
	require.Error(t, err)
	assert.True(t, metamodel.IsUnknownKindErr(err))
}

func TestLoadGraphDocumentRegistersLibraryPackages(t *testing.T) {
	path := writeGraphDoc(t, `{
		"elements": [
			{"id": "11111111-1111-1111-1111-111111111111", "kind": "Package", "name": "Kernel"}
		],
		"library_packages": ["11111111-1111-1111-1111-111111111111"]
	}`)

	g, err := LoadGraphDocument(path, testTable(t))
	require.NoError(t, err)

	id, err := model.ParseElementID("11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	assert.True(t, g.IsLibraryPackage(id))
}
