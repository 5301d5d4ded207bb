package metamodel_test

import (
	"testing"

	"github.com/pthm/sysmllink/pkg/metamodel"
	"github.com/pthm/sysmllink/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateDefault(t *testing.T) *metamodel.Table {
	t.Helper()
	table, err := metamodel.GenerateDefault(metamodel.DefaultArtifacts())
	require.NoError(t, err)
	return table
}

func TestGenerateDefaultArtifactsPassesCoverage(t *testing.T) {
	generateDefault(t)
}

func TestSupertypesAreCycleSafe(t *testing.T) {
	a := metamodel.DefaultArtifacts()
	a.Vocabulary.Kinds = append(a.Vocabulary.Kinds, metamodel.VocabularyEntry{Name: "CycleA", SubClassOf: []string{"CycleB"}})
	a.Vocabulary.Kinds = append(a.Vocabulary.Kinds, metamodel.VocabularyEntry{Name: "CycleB", SubClassOf: []string{"CycleA"}})
	a.ClassMetamodel.Classes = append(a.ClassMetamodel.Classes,
		metamodel.ClassEntry{Name: "CycleA", Supertypes: []string{"CycleB"}},
		metamodel.ClassEntry{Name: "CycleB", Supertypes: []string{"CycleA"}},
	)

	table, err := metamodel.GenerateDefault(a)
	require.NoError(t, err)

	supers := table.Supertypes(model.Kind("CycleA"))
	assert.Contains(t, supers, model.Kind("CycleB"))
	assert.True(t, table.IsSubtypeOf("CycleA", "CycleA"), "a kind is always subtype-of-or-equal itself")

	count := 0
	for _, s := range supers {
		if s == model.Kind("CycleB") {
			count++
		}
	}
	assert.Equal(t, 1, count, "CycleB must appear exactly once despite the declared cycle")
}

func TestCategoryPredicates(t *testing.T) {
	table := generateDefault(t)
	assert.True(t, table.IsDefinition("PartDefinition"))
	assert.False(t, table.IsDefinition("PartUsage"))
	assert.True(t, table.IsUsage("PartUsage"))
	assert.True(t, table.IsRelationship("Specialization"))
	assert.True(t, table.IsClassifier("PartDefinition"))
	assert.True(t, table.IsFeature("PartUsage"))
}

func TestCorrespondingUsageDefinitionPairing(t *testing.T) {
	table := generateDefault(t)
	usage, ok := table.CorrespondingUsage("PartDefinition")
	require.True(t, ok)
	assert.Equal(t, model.Kind("PartUsage"), usage)

	def, ok := table.CorrespondingDefinition(usage)
	require.True(t, ok)
	assert.Equal(t, model.Kind("PartDefinition"), def)
}

func TestPropertiesInheritAcrossSupertypes(t *testing.T) {
	table := generateDefault(t)
	accessors := table.Properties("PartDefinition")
	var names []string
	for _, a := range accessors {
		names = append(names, a.Name)
	}
	assert.Contains(t, names, "name", "PartDefinition should inherit Element's name property")
}

func TestRelationshipConstraintsFromClassMetamodel(t *testing.T) {
	table := generateDefault(t)
	src, ok := table.RelationshipSourceKind("Specialization")
	require.True(t, ok)
	assert.Equal(t, model.Kind("Type"), src)
}

func TestCrossValidateCatchesMissingType(t *testing.T) {
	a := metamodel.DefaultArtifacts()
	a.ClassMetamodel.Classes = a.ClassMetamodel.Classes[1:] // drop Element
	reports := metamodel.CrossValidate(a, metamodel.CrossValidateOptions{
		ImplementedHandlers: metamodel.ResolverDispatchHandledKeys(),
	})
	var typeCoverage metamodel.CoverageReport
	for _, r := range reports {
		if r.Name == "type-coverage" {
			typeCoverage = r
		}
	}
	assert.False(t, typeCoverage.Passed())
	assert.Contains(t, typeCoverage.Failures, "Element")
}

func TestGenerateFailsOnCoverageFailure(t *testing.T) {
	a := metamodel.DefaultArtifacts()
	a.ClassMetamodel.Classes = nil
	_, err := metamodel.GenerateDefault(a)
	require.Error(t, err)
	assert.True(t, metamodel.IsMetamodelCoverageErr(err))
}
