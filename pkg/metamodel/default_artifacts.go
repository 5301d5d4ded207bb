package metamodel

// DefaultArtifacts returns a representative subset of the full SysML v2 /
// KerML metamodel (spec.md's ~200 kinds / ~700 properties are the full
// vocabulary; this is the ~100-kind slice needed to exercise every resolver
// dispatch group, every category predicate, and every end-to-end scenario
// in spec §8). It is wired as the zero-config default for cmd/sysmllink's
// generate command and as the shared fixture for pkg/metamodel,
// pkg/resolver, and pkg/validator tests, so test graphs and production
// defaults are built from identical kind/property declarations. A real
// deployment supplies its own four artifact files covering the full
// metamodel; DefaultArtifacts exists so this repository is runnable and
// testable without them.
func DefaultArtifacts() Artifacts {
	return Artifacts{
		Vocabulary:      defaultVocabulary(),
		Shapes:          defaultShapes(),
		ClassMetamodel:  defaultClassMetamodel(),
		CrossReferences: defaultCrossReferences(),
	}
}

func kind(name string, supers ...string) VocabularyEntry {
	return VocabularyEntry{Name: name, SubClassOf: supers}
}

func enumLit(name, enumOf string) VocabularyEntry {
	return VocabularyEntry{Name: name, EnumOf: enumOf}
}

func defaultVocabulary() Vocabulary {
	return Vocabulary{Kinds: []VocabularyEntry{
		kind("Element"),
		kind("Relationship", "Element"),
		kind("Namespace", "Element"),
		kind("Package", "Namespace"),
		kind("Type", "Namespace"),
		kind("Classifier", "Type"),
		kind("DataType", "Classifier"),
		kind("Class", "Classifier"),
		kind("Structure", "Class"),
		kind("Feature", "Type"),
		kind("Step", "Feature"),
		kind("Expression", "Step"),
		kind("BooleanExpression", "Expression"),
		kind("Function", "Classifier"),
		kind("Predicate", "Function"),
		kind("Behavior", "Class"),
		kind("Association", "Classifier", "Relationship"),
		kind("AssociationStructure", "Association", "Structure"),
		kind("Connector", "Feature", "Relationship"),
		kind("BindingConnector", "Connector"),
		kind("Succession", "Connector"),
		kind("ItemFlow", "Connector"),

		kind("Specialization", "Relationship"),
		kind("Subclassification", "Specialization"),
		kind("Subsetting", "Specialization"),
		kind("Redefinition", "Subsetting"),
		kind("ReferenceSubsetting", "Subsetting"),
		kind("FeatureTyping", "Specialization"),
		kind("Conjugation", "Relationship"),
		kind("TypeFeaturing", "Relationship"),
		kind("Disjoining", "Relationship"),
		kind("Unioning", "Relationship"),
		kind("Intersecting", "Relationship"),
		kind("Differencing", "Relationship"),
		kind("FeatureInverting", "Relationship"),
		kind("FeatureChaining", "Relationship"),

		kind("Annotation", "Relationship"),
		kind("Comment", "Annotation"),
		kind("Documentation", "Comment"),
		kind("TextualRepresentation", "Annotation"),

		kind("Dependency", "Relationship"),
		kind("Satisfy", "Dependency"),
		kind("Verify", "Dependency"),
		kind("Trace", "Dependency"),

		kind("Membership", "Relationship"),
		kind("OwningMembership", "Membership"),
		kind("FeatureMembership", "OwningMembership"),

		kind("Import", "Relationship"),
		kind("NamespaceImport", "Import"),
		kind("MembershipImport", "Import"),

		kind("Definition", "Classifier"),
		kind("Usage", "Feature"),

		kind("PartDefinition", "Definition"),
		kind("PartUsage", "Usage"),
		kind("PortDefinition", "Definition"),
		kind("PortUsage", "Usage"),
		kind("ConjugatedPortDefinition", "PortDefinition"),
		kind("ItemDefinition", "Definition"),
		kind("ItemUsage", "Usage"),
		kind("AttributeDefinition", "Definition"),
		kind("AttributeUsage", "Usage"),
		kind("ActionDefinition", "Definition"),
		kind("ActionUsage", "Usage"),
		kind("StateDefinition", "Definition"),
		kind("StateUsage", "Usage"),
		kind("Transition", "Relationship"),
		kind("CalculationDefinition", "ActionDefinition"),
		kind("CalculationUsage", "ActionUsage"),
		kind("ConstraintDefinition", "Definition"),
		kind("ConstraintUsage", "Usage"),
		kind("RequirementDefinition", "ConstraintDefinition"),
		kind("RequirementUsage", "ConstraintUsage"),
		kind("ConnectionDefinition", "Definition"),
		kind("ConnectionUsage", "Usage"),
		kind("InterfaceDefinition", "ConnectionDefinition"),
		kind("InterfaceUsage", "ConnectionUsage"),
		kind("AllocationDefinition", "ConnectionDefinition"),
		kind("AllocationUsage", "ConnectionUsage"),
		kind("ViewDefinition", "PartDefinition"),
		kind("ViewUsage", "PartUsage"),
		kind("CaseDefinition", "ActionDefinition"),
		kind("CaseUsage", "ActionUsage"),
		kind("VerificationCaseDefinition", "CaseDefinition"),
		kind("VerificationCaseUsage", "CaseUsage"),
		kind("UseCaseDefinition", "CaseDefinition"),
		kind("UseCaseUsage", "CaseUsage"),
		kind("EnumerationDefinition", "AttributeDefinition"),
		kind("EnumerationUsage", "AttributeUsage"),
		kind("MetadataDefinition", "ItemDefinition"),
		kind("MetadataUsage", "ItemUsage"),

		kind("Multiplicity", "Feature"),
		kind("MultiplicityRange", "Multiplicity"),
		kind("LiteralExpression", "Expression"),
		kind("LiteralBoolean", "LiteralExpression"),
		kind("LiteralInteger", "LiteralExpression"),
		kind("LiteralRational", "LiteralExpression"),
		kind("LiteralString", "LiteralExpression"),
		kind("LiteralInfinity", "LiteralExpression"),
		kind("FeatureValue", "Relationship"),

		enumLit("public", "VisibilityKind"),
		enumLit("protected", "VisibilityKind"),
		enumLit("private", "VisibilityKind"),
	}}
}

func sharedProp(name string, occurs Cardinality, valueType ValueType) PropertyShape {
	return PropertyShape{Name: name, Occurs: occurs, Range: valueType}
}

func refProp(name string, occurs Cardinality, targetKind string) PropertyShape {
	return PropertyShape{Name: name, Occurs: occurs, Range: RefType, TargetKind: targetKind}
}

func defaultShapes() Shapes {
	shared := map[string]PropertyShape{
		"name":      sharedProp("name", ZeroOrOne, StringType),
		"shortName": sharedProp("shortName", ZeroOrOne, StringType),
	}

	resource := func(subject string, props ...PropertyShape) ResourceShape {
		return ResourceShape{Subject: subject, Properties: props}
	}
	ref := func(name string, ref string) PropertyShape {
		return PropertyShape{Name: name, Ref: ref}
	}

	return Shapes{
		SharedProperties: shared,
		EnumSchemas: map[string][]string{
			"VisibilityKind": {"public", "protected", "private"},
		},
		Resources: []ResourceShape{
			resource("Element", ref("name", "name"), ref("shortName", "shortName")),
			resource("Membership",
				refProp(PropMembershipOwningNamespace, ExactlyOne, "Namespace"),
				refProp(PropMemberElement, ExactlyOne, "Element"),
				sharedProp(PropMemberName, ZeroOrOne, StringType),
				sharedProp(PropMemberShortName, ZeroOrOne, StringType),
				PropertyShape{Name: PropVisibility, Occurs: ExactlyOne, Range: EnumType},
			),
			resource("Specialization", refProp("general", ExactlyOne, "Type")),
			resource("Subclassification", refProp("superclassifier", ExactlyOne, "Classifier")),
			resource("Subsetting", refProp("subsettedFeature", ExactlyOne, "Feature")),
			resource("Redefinition", refProp("redefinedFeature", ExactlyOne, "Feature")),
			resource("ReferenceSubsetting", refProp("referencedFeature", ExactlyOne, "Feature")),
			resource("FeatureTyping", refProp("type", ExactlyOne, "Type")),
			resource("Conjugation",
				refProp("conjugatedType", ExactlyOne, "Type"),
				refProp("originalType", ExactlyOne, "Type"),
			),
			resource("Annotation", refProp("annotatedElement", ExactlyOne, "Element")),
			resource("Dependency",
				refProp("sources", OneOrMany, "Element"),
				refProp("targets", OneOrMany, "Element"),
				refProp("client", ZeroOrOne, "Element"),
				refProp("supplier", ZeroOrOne, "Element"),
			),
			resource("ConjugatedPortDefinition", refProp("conjugatedPortDefinition", ExactlyOne, "PortDefinition")),
			resource("Import",
				sharedProp("importedReference", ExactlyOne, StringType),
				sharedProp("isNamespace", ExactlyOne, BoolType),
				sharedProp("isRecursive", ExactlyOne, BoolType),
				sharedProp("isAll", ExactlyOne, BoolType),
			),
			resource("Multiplicity",
				refProp("lowerBound", ZeroOrOne, "LiteralInteger"),
				refProp("upperBound", ZeroOrOne, "LiteralInteger"),
			),
		},
	}
}

func assoc(name, source, target string) AssociationEntry {
	return AssociationEntry{Name: name, SourceType: source, TargetType: target}
}

func defaultClassMetamodel() ClassMetamodel {
	vocab := defaultVocabulary()
	classes := make([]ClassEntry, 0, len(vocab.Kinds))
	for _, k := range vocab.Kinds {
		if k.EnumOf != "" {
			continue
		}
		classes = append(classes, ClassEntry{Name: k.Name, Supertypes: k.SubClassOf})
	}
	return ClassMetamodel{
		Classes: classes,
		Associations: []AssociationEntry{
			assoc("Specialization", "Type", "Type"),
			assoc("Subclassification", "Classifier", "Classifier"),
			assoc("Subsetting", "Feature", "Feature"),
			assoc("Redefinition", "Feature", "Feature"),
			assoc("ReferenceSubsetting", "Feature", "Feature"),
			assoc("FeatureTyping", "Feature", "Type"),
			assoc("Membership", "Namespace", "Element"),
			assoc("OwningMembership", "Namespace", "Element"),
			assoc("Dependency", "Element", "Element"),
			assoc("Satisfy", "RequirementUsage", "Element"),
			assoc("Verify", "CaseUsage", "RequirementUsage"),
			assoc("Trace", "Element", "Element"),
		},
	}
}

func xref(rule, property, targetKind string, list bool) CrossReferenceRule {
	return CrossReferenceRule{ContainingRule: rule, Property: property, TargetKind: targetKind, List: list}
}

func defaultCrossReferences() CrossReferences {
	return CrossReferences{Rules: []CrossReferenceRule{
		xref("Redefinition", "redefinedFeature", "Feature", false),
		xref("ReferenceSubsetting", "referencedFeature", "Feature", false),
		xref("Subsetting", "subsettedFeature", "Feature", false),
		xref("FeatureTyping", "type", "Type", false),
		xref("Specialization", "general", "Type", false),
		xref("Subclassification", "superclassifier", "Classifier", false),
		xref("Conjugation", "conjugatedType", "Type", false),
		xref("Conjugation", "originalType", "Type", false),
		xref("TypeFeaturing", "featuringType", "Type", false),
		xref("Disjoining", "disjoiningType", "Type", false),
		xref("Unioning", "unioningType", "Type", false),
		xref("Intersecting", "intersectingType", "Type", false),
		xref("Differencing", "differencingType", "Type", false),
		xref("FeatureInverting", "invertingFeature", "Feature", false),
		xref("FeatureChaining", "crossedFeature", "Feature", false),
		xref("Annotation", "annotatedElement", "Element", false),
		xref("Membership", "memberElement", "Element", false),
		xref("Dependency", "sources", "Element", true),
		xref("Dependency", "targets", "Element", true),
		xref("Dependency", "client", "Element", false),
		xref("Dependency", "supplier", "Element", false),
		xref("ConjugatedPortDefinition", "conjugatedPortDefinition", "PortDefinition", false),
	}}
}
