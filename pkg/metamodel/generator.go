package metamodel

import (
	"fmt"
	"strings"

	"github.com/pthm/sysmllink/pkg/model"
)

// GenerateOptions configures Generate's cross-validation pass. Zero value
// uses the resolver's real dispatch table and non-strict completeness
// checking, which is the right default for production use; tests that want
// to exercise coverage failures override Handlers/Strict directly.
type GenerateOptions struct {
	Handlers map[string]bool
	Strict   bool
}

// DefaultGenerateOptions returns the options Generate uses when called via
// GenerateDefault: the resolver's real static dispatch table, non-strict.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{Handlers: ResolverDispatchHandledKeys(), Strict: false}
}

// Generate cross-validates a and, if all four coverage reports pass, builds
// the Table the resolver and validator consume. It returns ErrMetamodelCoverage
// (wrapping the failing report details) if any report is non-empty — a
// pipeline-aborting failure per spec §7.
func Generate(a Artifacts, opts GenerateOptions) (*Table, error) {
	if opts.Handlers == nil {
		opts.Handlers = ResolverDispatchHandledKeys()
	}
	reports := CrossValidate(a, CrossValidateOptions{ImplementedHandlers: opts.Handlers, Strict: opts.Strict})
	var failing []string
	for _, r := range reports {
		if !r.Passed() {
			failing = append(failing, fmt.Sprintf("%s: %v", r.Name, r.Failures))
		}
	}
	if len(failing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMetamodelCoverage, strings.Join(failing, "; "))
	}
	return build(a), nil
}

// GenerateDefault runs Generate with DefaultGenerateOptions.
func GenerateDefault(a Artifacts) (*Table, error) {
	return Generate(a, DefaultGenerateOptions())
}

func build(a Artifacts) *Table {
	t := &Table{
		directSupertypes:         make(map[model.Kind][]model.Kind),
		properties:               make(map[model.Kind][]*PropertyAccessor),
		relationshipSourceKind:   make(map[model.Kind]model.Kind),
		relationshipTargetKind:   make(map[model.Kind]model.Kind),
		relationshipTargetProp:   make(map[model.Kind]string),
		relationshipTargetIsList: make(map[model.Kind]bool),
		crossReferences:          a.CrossReferences.Rules,
	}

	for _, entry := range a.Vocabulary.Kinds {
		if entry.EnumOf != "" {
			continue
		}
		k := model.Kind(entry.Name)
		t.kinds = append(t.kinds, k)
		for _, super := range entry.SubClassOf {
			t.directSupertypes[k] = append(t.directSupertypes[k], model.Kind(super))
		}
	}
	t.kindIndex = make(map[model.Kind]int, len(t.kinds))
	for i, k := range t.kinds {
		t.kindIndex[k] = i
	}
	t.supertypes = buildSupertypeClosure(t.directSupertypes, t.kinds)
	t.correspondingUsage, t.correspondingDefinition = definitionUsagePairing(t.kinds)

	buildProperties(t, a)
	buildRelationshipConstraints(t, a)
	buildRelationshipTargetRegistry(t)

	return t
}

// resolveShapeProperties expands a ResourceShape's properties, following
// Ref into Shapes.SharedProperties where present.
func resolveShapeProperties(shapes Shapes, resource ResourceShape) []PropertyShape {
	out := make([]PropertyShape, 0, len(resource.Properties))
	for _, p := range resource.Properties {
		if p.Ref != "" {
			if shared, ok := shapes.SharedProperties[p.Ref]; ok {
				merged := shared
				if p.Name != "" {
					merged.Name = p.Name
				}
				out = append(out, merged)
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

func buildProperties(t *Table, a Artifacts) {
	declared := make(map[model.Kind][]PropertyShape)
	for _, resource := range a.Shapes.Resources {
		k := model.Kind(resource.Subject)
		declared[k] = resolveShapeProperties(a.Shapes, resource)
	}

	for _, k := range t.kinds {
		seen := make(map[string]bool)
		var accessors []*PropertyAccessor

		for _, ps := range declared[k] {
			if seen[ps.Name] {
				continue
			}
			seen[ps.Name] = true
			accessors = append(accessors, toAccessor(ps, k))
		}
		// Closest-first walk of the supertype closure: buildSupertypeClosure
		// already visits direct supertypes before their own transitive
		// supertypes, so iterating t.supertypes[k] in order and skipping
		// already-seen names gives "nearest declaration wins" for free.
		for _, super := range t.supertypes[k] {
			for _, ps := range declared[super] {
				if seen[ps.Name] {
					continue
				}
				seen[ps.Name] = true
				accessors = append(accessors, toAccessor(ps, super))
			}
		}
		t.properties[k] = accessors
	}
}

func toAccessor(ps PropertyShape, declaredOn model.Kind) *PropertyAccessor {
	return &PropertyAccessor{
		Name:        ps.Name,
		Cardinality: ps.Occurs,
		ValueType:   ps.Range,
		TargetKind:  ps.TargetKind,
		ReadOnly:    ps.ReadOnly,
		DeclaredOn:  declaredOn,
	}
}

func buildRelationshipConstraints(t *Table, a Artifacts) {
	fromClassMetamodel := make(map[string][2]string, len(a.ClassMetamodel.Associations))
	for _, assoc := range a.ClassMetamodel.Associations {
		fromClassMetamodel[assoc.Name] = [2]string{assoc.SourceType, assoc.TargetType}
	}
	for _, k := range t.kinds {
		name := string(k)
		if pair, ok := fromClassMetamodel[name]; ok {
			t.relationshipSourceKind[k] = model.Kind(pair[0])
			t.relationshipTargetKind[k] = model.Kind(pair[1])
			continue
		}
		if pair, ok := relationshipFallbackConstraints[name]; ok {
			t.relationshipSourceKind[k] = model.Kind(pair[0])
			t.relationshipTargetKind[k] = model.Kind(pair[1])
			continue
		}
		if t.IsRelationship(k) {
			t.relationshipSourceKind[k] = universalRootKind
			t.relationshipTargetKind[k] = universalRootKind
		}
	}
}

// buildRelationshipTargetRegistry derives, per kind, the single property
// name that holds its resolution target (spec §4.1(g)): the first property
// in the resolver's dispatch group for that kind. Kinds with more than one
// target property (Dependency's four ends) record only the first as the
// "primary" target for structural validation purposes; the resolver itself
// still resolves every property in the group.
func buildRelationshipTargetRegistry(t *Table) {
	for _, group := range ResolverDispatchTable {
		if len(group.Properties) == 0 {
			continue
		}
		primary := group.Properties[0]
		for _, kindName := range group.Kinds {
			k := model.Kind(kindName)
			t.relationshipTargetProp[k] = primary.ResolvedKey
			t.relationshipTargetIsList[k] = primary.List
		}
	}
}
