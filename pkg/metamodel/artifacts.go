package metamodel

// Cardinality is a property's declared occurrence constraint, from the
// shapes artifact's "occurs" field.
type Cardinality string

const (
	ExactlyOne  Cardinality = "exactly-one"
	ZeroOrOne   Cardinality = "zero-or-one"
	ZeroOrMany  Cardinality = "zero-or-many"
	OneOrMany   Cardinality = "one-or-many"
)

// IsMany reports whether the cardinality allows more than one value.
func (c Cardinality) IsMany() bool {
	return c == ZeroOrMany || c == OneOrMany
}

// IsRequired reports whether the cardinality requires at least one value.
func (c Cardinality) IsRequired() bool {
	return c == ExactlyOne || c == OneOrMany
}

// ValueType names a property's declared range, from the shapes artifact.
// RefType is a reference to another kind, whose name is recorded in
// PropertyShape.TargetKind; the other value types are not references.
type ValueType string

const (
	BoolType     ValueType = "bool"
	StringType   ValueType = "string"
	DateTimeType ValueType = "datetime"
	RefType      ValueType = "ref"
	AnyType      ValueType = "any"
	// EnumType is a small extension beyond spec.md §6's four listed range
	// types: a visibility-style property whose value is one of a closed
	// set of tokens (model.Value's KindEnum). Treated the same as StringType
	// everywhere except validator.wrongKind, which checks for KindEnum
	// instead of KindString.
	EnumType ValueType = "enum"
)

// Membership property names shared between default_artifacts.go's shape
// declarations and pkg/graph's membership wrapper (graph.PropMembership*):
// the shapes artifact describes the same property keys graph.AddOwnedElement
// actually writes, so Table.Validate checks real keys rather than a
// parallel naming scheme.
const (
	PropMembershipOwningNamespace = "membershipOwningNamespace"
	PropMemberElement             = "memberElement"
	PropMemberName                = "memberName"
	PropMemberShortName           = "memberShortName"
	PropVisibility                = "visibility"
)

// VocabularyEntry is one subject from the vocabulary artifact: a kind name,
// its direct supertypes, an optional doc comment, and, for enumeration
// literals, the name of the enclosing `*Kind` enumeration type.
type VocabularyEntry struct {
	Name       string   `json:"name"`
	SubClassOf []string `json:"subClassOf,omitempty"`
	Comment    string   `json:"comment,omitempty"`
	EnumOf     string   `json:"enumOf,omitempty"`
}

// Vocabulary is the decoded vocabulary artifact: the full kind list with
// direct supertypes.
type Vocabulary struct {
	Kinds []VocabularyEntry `json:"kinds"`
}

// PropertyShape is one property declaration from the shapes artifact,
// either declared inline under a resource or defined once at file scope and
// referenced by name (the Ref field) from multiple resources.
type PropertyShape struct {
	Name       string      `json:"name"`
	Ref        string      `json:"ref,omitempty"`
	Occurs     Cardinality `json:"occurs,omitempty"`
	Range      ValueType   `json:"range,omitempty"`
	TargetKind string      `json:"targetKind,omitempty"`
	ReadOnly   bool        `json:"readOnly,omitempty"`
}

// ResourceShape is one subject's property shapes from the shapes artifact.
type ResourceShape struct {
	Subject    string          `json:"subject"`
	Properties []PropertyShape `json:"properties"`
}

// Shapes is the decoded property-shapes artifact. SharedProperties holds
// file-scope shared property definitions that a ResourceShape's
// PropertyShape.Ref may point at. EnumSchemas declares, for each `*Kind`-style
// enumeration named by the vocabulary artifact, the value tokens the schema
// expects it to carry — the comparison side of the enum-coverage report.
type Shapes struct {
	SharedProperties map[string]PropertyShape `json:"sharedProperties,omitempty"`
	Resources        []ResourceShape          `json:"resources"`
	EnumSchemas      map[string][]string      `json:"enumSchemas,omitempty"`
}

// ClassEntry is one class's authoritative supertype list from the
// class-metamodel artifact.
type ClassEntry struct {
	Name       string   `json:"name"`
	Supertypes []string `json:"supertypes,omitempty"`
}

// AssociationEntry is one association's source/target ends from the
// class-metamodel artifact — the authoritative relationship-endpoint-kind
// constraints.
type AssociationEntry struct {
	Name       string `json:"name"`
	SourceType string `json:"sourceType"`
	TargetType string `json:"targetType"`
}

// ClassMetamodel is the decoded class-metamodel artifact.
type ClassMetamodel struct {
	Classes      []ClassEntry       `json:"classes"`
	Associations []AssociationEntry `json:"associations"`
}

// CrossReferenceRule is one grammar-derived reference-property registration:
// for a given containing kind, the property name holds a resolvable
// qualified name targeting TargetKind, and is list-valued if List is set.
type CrossReferenceRule struct {
	ContainingRule string `json:"containingRule" yaml:"containingRule"`
	Property       string `json:"property" yaml:"property"`
	TargetKind     string `json:"targetKind" yaml:"targetKind"`
	List           bool   `json:"list,omitempty" yaml:"list,omitempty"`
	// IntentionallySkipped marks a grammar-only entry the resolver
	// deliberately does not implement (e.g. a property reserved for a
	// future language feature); the cross-reference coverage report treats
	// these as covered rather than as failures.
	IntentionallySkipped bool `json:"intentionallySkipped,omitempty" yaml:"intentionallySkipped,omitempty"`
}

// CrossReferences is the decoded grammar cross-reference artifact.
type CrossReferences struct {
	Rules []CrossReferenceRule `json:"rules" yaml:"rules"`
}

// Artifacts bundles the four generator inputs.
type Artifacts struct {
	Vocabulary      Vocabulary
	Shapes          Shapes
	ClassMetamodel  ClassMetamodel
	CrossReferences CrossReferences
}
