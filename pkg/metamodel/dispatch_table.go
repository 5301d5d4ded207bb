package metamodel

// DispatchProperty is one unresolved->resolved property mapping handled by
// a resolver dispatch group. UnresolvedKey is the bare property name as the
// grammar cross-reference artifact spells it (e.g. "general", not
// "unresolved_general"); ResolvedKey is the property name the resolved
// identity is written under, which differs from UnresolvedKey only for
// Dependency's list-valued ends (spec §6's named exception: "sources" ->
// "source", "targets" -> "target").
type DispatchProperty struct {
	UnresolvedKey string
	ResolvedKey   string
	List          bool
}

// DispatchGroup is one row of the resolver dispatch table in spec §4.3.5:
// a set of kinds (all kinds subtype-equal to any of Kinds dispatch to this
// group) and the unresolved properties it resolves.
type DispatchGroup struct {
	Name       string
	Kinds      []string
	Properties []DispatchProperty
}

// ResolverDispatchTable is the static data behind spec §4.3.5's dispatch
// table, in the precedence order the spec requires (more specific kinds
// dispatch before their more general supertypes: Redefinition before
// Subsetting before Specialization, and so on). pkg/resolver iterates this
// table in order and, for each element, dispatches to the first group whose
// Kinds set contains a kind the element's own kind is subtype-of-or-equal
// to. Declaring the table here, rather than in pkg/resolver, lets
// CrossValidate's cross-reference and resolution-spec-completeness reports
// consult exactly the same data the resolver executes, with no import
// cycle: pkg/resolver already depends on pkg/metamodel, never the reverse.
var ResolverDispatchTable = []DispatchGroup{
	{
		Name:  "Redefinition",
		Kinds: []string{"Redefinition"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "redefinedFeature", ResolvedKey: "redefinedFeature"},
		},
	},
	{
		Name:  "ReferenceSubsetting",
		Kinds: []string{"ReferenceSubsetting"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "referencedFeature", ResolvedKey: "referencedFeature"},
		},
	},
	{
		Name:  "Subsetting",
		Kinds: []string{"Subsetting"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "subsettedFeature", ResolvedKey: "subsettedFeature"},
		},
	},
	{
		Name:  "FeatureTyping",
		Kinds: []string{"FeatureTyping"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "type", ResolvedKey: "type"},
		},
	},
	{
		Name:  "Subclassification",
		Kinds: []string{"Subclassification"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "superclassifier", ResolvedKey: "superclassifier"},
		},
	},
	{
		Name:  "Specialization",
		Kinds: []string{"Specialization"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "general", ResolvedKey: "general"},
		},
	},
	{
		Name:  "Conjugation",
		Kinds: []string{"Conjugation"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "conjugatedType", ResolvedKey: "conjugatedType"},
			{UnresolvedKey: "originalType", ResolvedKey: "originalType"},
		},
	},
	{
		Name:  "TypeFeaturing",
		Kinds: []string{"TypeFeaturing"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "featuringType", ResolvedKey: "featuringType"},
		},
	},
	{
		Name:  "Disjoining",
		Kinds: []string{"Disjoining"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "disjoiningType", ResolvedKey: "disjoiningType"},
		},
	},
	{
		Name:  "Unioning",
		Kinds: []string{"Unioning"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "unioningType", ResolvedKey: "unioningType"},
		},
	},
	{
		Name:  "Intersecting",
		Kinds: []string{"Intersecting"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "intersectingType", ResolvedKey: "intersectingType"},
		},
	},
	{
		Name:  "Differencing",
		Kinds: []string{"Differencing"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "differencingType", ResolvedKey: "differencingType"},
		},
	},
	{
		Name:  "FeatureInverting",
		Kinds: []string{"FeatureInverting"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "invertingFeature", ResolvedKey: "invertingFeature"},
		},
	},
	{
		Name:  "FeatureChaining",
		Kinds: []string{"FeatureChaining"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "crossedFeature", ResolvedKey: "crossedFeature"},
		},
	},
	{
		Name:  "Annotation",
		Kinds: []string{"Annotation"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "annotatedElement", ResolvedKey: "annotatedElement"},
		},
	},
	{
		Name:  "Membership",
		Kinds: []string{"Membership"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "memberElement", ResolvedKey: "memberElement"},
		},
	},
	{
		Name:  "Dependency",
		Kinds: []string{"Dependency"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "sources", ResolvedKey: "source", List: true},
			{UnresolvedKey: "targets", ResolvedKey: "target", List: true},
			{UnresolvedKey: "client", ResolvedKey: "client"},
			{UnresolvedKey: "supplier", ResolvedKey: "supplier"},
		},
	},
	{
		Name:  "ConjugatedPortDefinition",
		Kinds: []string{"ConjugatedPortDefinition"},
		Properties: []DispatchProperty{
			{UnresolvedKey: "conjugatedPortDefinition", ResolvedKey: "conjugatedPortDefinition"},
		},
	},
}

// ResolverDispatchHandledKeys flattens ResolverDispatchTable into the
// "containingRule.property" key set CrossValidateOptions.ImplementedHandlers
// expects, one entry per (group kind, unresolved property) pair.
func ResolverDispatchHandledKeys() map[string]bool {
	out := make(map[string]bool)
	for _, group := range ResolverDispatchTable {
		for _, kind := range group.Kinds {
			for _, prop := range group.Properties {
				out[kind+"."+prop.UnresolvedKey] = true
			}
		}
	}
	return out
}
