package metamodel

import (
	"github.com/pthm/sysmllink/pkg/diag"
	"github.com/pthm/sysmllink/pkg/graph"
	"github.com/pthm/sysmllink/pkg/model"
)

// Validate walks k's declared property set (the pre-joined, inheritance-
// resolved view from Properties) against e's property map and emits one
// diagnostic per violated constraint: a missing required property, a
// cardinality overflow, a read-only property the source tried to set
// directly, or a value stored under the wrong value kind (spec §4.1(e)).
//
// Validate takes *graph.Element rather than the bare Properties interface
// because it needs UnresolvedKey to check the read-only-mutated rule and
// e.Spans to attach a location to each diagnostic; the Properties interface
// stays minimal for PropertyAccessor.Get, which does not need either.
func (t *Table) Validate(e *graph.Element, k model.Kind) diag.Diagnostics {
	var out diag.Diagnostics
	span := primarySpan(e)

	for _, pa := range t.Properties(k) {
		result := pa.Get(e)

		if pa.ReadOnly {
			if _, sourceSet := e.Prop(graph.UnresolvedKey(pa.Name)); sourceSet {
				out.Push(withSpan(diag.Errorf("read-only-mutated",
					"%s: property %q is read-only and must not be set from source", k, pa.Name), span))
			}
		}

		switch {
		case pa.Cardinality == ExactlyOne && pa.ValueType == BoolType:
			// Always present (defaults false); no missing-value check.
		case pa.Cardinality.IsRequired():
			if !result.Present {
				out.Push(withSpan(diag.Errorf("missing-required-property",
					"%s: required property %q is missing", k, pa.Name), span))
			}
		}

		if result.Present {
			if v, ok := e.Prop(pa.Name); ok {
				if items, isList := v.AsList(); isList && !pa.Cardinality.IsMany() && len(items) > 1 {
					out.Push(withSpan(diag.Errorf("cardinality-overflow",
						"%s: property %q is single-valued but holds %d values", k, pa.Name, len(items)), span))
				} else if msg, bad := wrongKind(pa, v); bad {
					out.Push(withSpan(diag.Errorf("wrong-value-kind",
						"%s: property %q: %s", k, pa.Name, msg), span))
				}
			}
		}
	}

	return out
}

func wrongKind(pa *PropertyAccessor, v model.Value) (string, bool) {
	if pa.Cardinality.IsMany() {
		if v.Kind() != model.KindList {
			return "expected a list value", true
		}
		return "", false
	}
	switch pa.ValueType {
	case BoolType:
		if v.Kind() != model.KindBool {
			return "expected a bool value", true
		}
	case StringType, DateTimeType:
		if v.Kind() != model.KindString {
			return "expected a string value", true
		}
	case EnumType:
		if v.Kind() != model.KindEnum {
			return "expected an enum token", true
		}
	case RefType:
		if v.Kind() != model.KindRef {
			return "expected an element reference", true
		}
	case AnyType:
		// Any shape is acceptable.
	}
	return "", false
}

func primarySpan(e *graph.Element) *model.Span {
	if len(e.Spans) == 0 {
		return nil
	}
	return &e.Spans[0]
}

func withSpan(d *diag.Diagnostic, span *model.Span) *diag.Diagnostic {
	if span != nil {
		d.WithSpan(*span)
	}
	return d
}
