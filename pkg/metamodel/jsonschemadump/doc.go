// Package jsonschemadump renders a generated metamodel.Table as a JSON
// Schema (Draft 7) document: one $defs entry per kind, describing the
// kind's own-plus-inherited property set, so external tooling (editors,
// CI lint steps, third-party graph producers) can validate a serialized
// model graph without linking this module.
//
// The dump is deliberately permissive rather than load-bearing: it mirrors
// what Table.Validate already enforces (required-ness, cardinality,
// reference vs. value shape) but is not itself consulted by the resolver
// or validator. A kind's properties whose reference target is unknown (a
// dangling TargetKind) still get a schema; the $ref simply points at a
// $defs entry that may not resolve, the same fail-open posture the
// generator pipeline this package is grounded on takes for annotation
// gaps.
package jsonschemadump
