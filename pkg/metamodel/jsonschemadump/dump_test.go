package jsonschemadump_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/sysmllink/pkg/metamodel"
	"github.com/pthm/sysmllink/pkg/metamodel/jsonschemadump"
)

func defaultTable(t *testing.T) *metamodel.Table {
	t.Helper()
	table, err := metamodel.GenerateDefault(metamodel.DefaultArtifacts())
	require.NoError(t, err)
	return table
}

func TestDumpIncludesOneDefPerKind(t *testing.T) {
	table := defaultTable(t)
	schema := jsonschemadump.NewDumper().Dump(table)

	assert.Equal(t, "http://json-schema.org/draft-07/schema#", schema.Schema)
	assert.Len(t, schema.Defs, len(table.Kinds()))
	for _, k := range table.Kinds() {
		assert.Contains(t, schema.Defs, string(k))
	}
}

func TestDumpKindDiscriminatorEnumeratesAllKinds(t *testing.T) {
	table := defaultTable(t)
	schema := jsonschemadump.NewDumper().Dump(table)

	kindProp, ok := schema.Properties["kind"]
	require.True(t, ok)
	assert.Len(t, kindProp.Enum, len(table.Kinds()))
	assert.Contains(t, schema.Required, "kind")
}

func TestDumpReferencePropertyPointsAtDefs(t *testing.T) {
	table := defaultTable(t)
	schema := jsonschemadump.NewDumper().Dump(table)

	membership := schema.Defs["Membership"]
	require.NotNil(t, membership)
	owningNamespace, ok := membership.Properties["membershipOwningNamespace"]
	require.True(t, ok)
	assert.Equal(t, "#/$defs/Namespace", owningNamespace.Ref)
}

func TestDumpManyValuedPropertyWrapsInArray(t *testing.T) {
	table := defaultTable(t)
	schema := jsonschemadump.NewDumper().Dump(table)

	dependency := schema.Defs["Dependency"]
	require.NotNil(t, dependency)
	sources, ok := dependency.Properties["sources"]
	require.True(t, ok)
	assert.Equal(t, "array", sources.Type)
	require.NotNil(t, sources.Items)
	assert.Equal(t, "#/$defs/Element", sources.Items.Ref)
}

func TestDumpStrictDeniesAdditionalProperties(t *testing.T) {
	table := defaultTable(t)
	schema := jsonschemadump.NewDumper(jsonschemadump.WithStrict(true)).Dump(table)

	require.NotNil(t, schema.AdditionalProperties)
	assert.NotNil(t, schema.AdditionalProperties.Not)
}

func TestDumpRootMetadataOptions(t *testing.T) {
	table := defaultTable(t)
	schema := jsonschemadump.NewDumper(
		jsonschemadump.WithTitle("sysmllink model graph"),
		jsonschemadump.WithDescription("generated metamodel schema"),
		jsonschemadump.WithID("https://example.com/sysmllink.schema.json"),
	).Dump(table)

	assert.Equal(t, "sysmllink model graph", schema.Title)
	assert.Equal(t, "generated metamodel schema", schema.Description)
	assert.Equal(t, "https://example.com/sysmllink.schema.json", schema.ID)
}
