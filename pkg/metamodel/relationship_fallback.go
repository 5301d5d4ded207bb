package metamodel

// relationshipFallbackConstraints seeds relationship_source_type /
// relationship_target_type for kinds the class-metamodel artifact's
// association ends leave unconstrained. Per DESIGN.md's resolution of
// spec.md §9's open question 2, the class-metamodel artifact's association
// ends are treated as authoritative ("XMI wins") and always take
// precedence in Generate; this table only fills gaps it is silent on, and
// its role beyond seed data is otherwise exactly what spec.md calls
// ambiguous.
var relationshipFallbackConstraints = map[string][2]string{
	"Specialization":           {"Type", "Type"},
	"Subclassification":        {"Classifier", "Classifier"},
	"Subsetting":                {"Feature", "Feature"},
	"Redefinition":              {"Feature", "Feature"},
	"ReferenceSubsetting":       {"Feature", "Feature"},
	"FeatureTyping":             {"Feature", "Type"},
	"Conjugation":                {"Type", "Type"},
	"TypeFeaturing":             {"Feature", "Type"},
	"Disjoining":                {"Type", "Type"},
	"Unioning":                  {"Type", "Type"},
	"Intersecting":              {"Type", "Type"},
	"Differencing":              {"Type", "Type"},
	"FeatureInverting":          {"Feature", "Feature"},
	"FeatureChaining":           {"Feature", "Feature"},
	"Annotation":                {"Element", "Element"},
	"Membership":                {"Namespace", "Element"},
	"OwningMembership":           {"Namespace", "Element"},
	"Dependency":                 {"Element", "Element"},
	"ConjugatedPortDefinition":   {"PortDefinition", "PortDefinition"},
	"Satisfy":                    {"RequirementUsage", "Element"},
	"Verify":                     {"CaseUsage", "RequirementUsage"},
	"Trace":                      {"Element", "Element"},
	"ItemFlow":                   {"Feature", "Feature"},
	"Transition":                 {"ActionUsage", "ActionUsage"},
}

// universalRootKind is the fallback of the fallback: the kind every other
// kind specializes, used when neither the class metamodel nor the curated
// table constrains a relationship kind's endpoint.
const universalRootKind = "Element"
