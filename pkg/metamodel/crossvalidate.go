package metamodel

import "sort"

// CoverageReport is one of the four cross-validation reports computed
// before emission (spec §4.1, "Cross-validation contract"). Failures is
// empty when the report passes.
type CoverageReport struct {
	Name     string
	Failures []string
}

// Passed reports whether the report found no discrepancies.
func (r CoverageReport) Passed() bool {
	return len(r.Failures) == 0
}

// CrossValidateOptions configures the two reports whose inputs are not
// purely artifact-internal: cross-reference coverage needs to know which
// properties the resolver implements (or intentionally skips), and
// resolution-spec completeness needs the resolver's unresolved-property set
// plus a strictness flag.
type CrossValidateOptions struct {
	// ImplementedHandlers is the set of "kind.property" strings the
	// resolver actually dispatches on. Supply ResolverDispatchHandledKeys()
	// here in normal use; it is a parameter rather than a hardcoded
	// reference so CrossValidate has no dependency on pkg/resolver.
	ImplementedHandlers map[string]bool
	// Strict controls the resolution-spec-completeness report: when true,
	// any resolver-only entry (a property the resolver treats as
	// unresolved but that the cross-reference registry never declared) is
	// a failure; when false, resolver-only entries are tolerated (the
	// report passes and does not list them) since they may be forward-looking
	// resolver support for a grammar rule not yet captured in the
	// artifact.
	Strict bool
}

// CrossValidate computes the four coverage reports described in spec §4.1.
// Generate calls this and aborts if any report fails; callers that want the
// reports without the abort-on-failure behavior (e.g. a CI lint step) can
// call it directly.
func CrossValidate(a Artifacts, opts CrossValidateOptions) []CoverageReport {
	return []CoverageReport{
		typeCoverageReport(a),
		enumCoverageReport(a),
		crossReferenceCoverageReport(a, opts),
		resolutionSpecCompletenessReport(a, opts),
	}
}

func stringSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}

func symmetricDifference(a, b map[string]bool) []string {
	var diff []string
	for k := range a {
		if !b[k] {
			diff = append(diff, k)
		}
	}
	for k := range b {
		if !a[k] {
			diff = append(diff, k)
		}
	}
	sort.Strings(diff)
	return diff
}

// typeCoverageReport compares vocabulary kinds against class-metamodel
// classes, excluding enum-literal kinds (EnumOf set): those are values of
// an enumeration, not classes, and are covered by enumCoverageReport
// instead.
func typeCoverageReport(a Artifacts) CoverageReport {
	vocab := make(map[string]bool)
	for _, k := range a.Vocabulary.Kinds {
		if k.EnumOf == "" {
			vocab[k.Name] = true
		}
	}
	classes := make(map[string]bool)
	for _, c := range a.ClassMetamodel.Classes {
		classes[c.Name] = true
	}
	return CoverageReport{Name: "type-coverage", Failures: symmetricDifference(vocab, classes)}
}

// enumCoverageReport compares, per enumeration, the vocabulary's declared
// enum-literal kinds against the shapes artifact's declared schema enum
// values.
func enumCoverageReport(a Artifacts) CoverageReport {
	vocabByEnum := make(map[string][]string)
	for _, k := range a.Vocabulary.Kinds {
		if k.EnumOf != "" {
			vocabByEnum[k.EnumOf] = append(vocabByEnum[k.EnumOf], k.Name)
		}
	}
	var failures []string
	seen := make(map[string]bool)
	for name, vocabValues := range vocabByEnum {
		seen[name] = true
		schemaValues := a.Shapes.EnumSchemas[name]
		diff := symmetricDifference(stringSet(vocabValues), stringSet(schemaValues))
		for _, d := range diff {
			failures = append(failures, name+"."+d)
		}
	}
	for name := range a.Shapes.EnumSchemas {
		if !seen[name] {
			failures = append(failures, name+" (schema-only enum)")
		}
	}
	sort.Strings(failures)
	return CoverageReport{Name: "enum-coverage", Failures: failures}
}

// crossReferenceCoverageReport finds grammar cross-reference entries that
// are neither implemented by the resolver nor marked intentionally skipped.
func crossReferenceCoverageReport(a Artifacts, opts CrossValidateOptions) CoverageReport {
	var failures []string
	for _, rule := range a.CrossReferences.Rules {
		if rule.IntentionallySkipped {
			continue
		}
		key := rule.ContainingRule + "." + rule.Property
		if !opts.ImplementedHandlers[key] {
			failures = append(failures, key)
		}
	}
	sort.Strings(failures)
	return CoverageReport{Name: "cross-reference-coverage", Failures: failures}
}

// resolutionSpecCompletenessReport finds resolver-implemented properties
// that the cross-reference registry never declared. Under non-strict mode
// (the default) these are tolerated: the resolver is allowed to support a
// property ahead of the grammar artifact catching up.
func resolutionSpecCompletenessReport(a Artifacts, opts CrossValidateOptions) CoverageReport {
	registered := make(map[string]bool, len(a.CrossReferences.Rules))
	for _, rule := range a.CrossReferences.Rules {
		registered[rule.ContainingRule+"."+rule.Property] = true
	}
	var failures []string
	for key := range opts.ImplementedHandlers {
		if !registered[key] {
			failures = append(failures, key)
		}
	}
	sort.Strings(failures)
	if !opts.Strict {
		return CoverageReport{Name: "resolution-spec-completeness", Failures: nil}
	}
	return CoverageReport{Name: "resolution-spec-completeness", Failures: failures}
}
