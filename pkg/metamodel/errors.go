package metamodel

import (
	"errors"
	"fmt"
)

// ErrArtifactParse indicates a generator input artifact that could not be
// decoded. The Decode functions wrap it around YAML/JSON decoding errors
// only; they do not check qualified names, required fields, or
// cardinality/occurs tokens. Raised once per artifact; terminates the
// generator (spec §7, "Parse error at artifact").
var ErrArtifactParse = errors.New("metamodel: artifact parse error")

// ErrMetamodelCoverage indicates one or more of the four cross-validation
// coverage reports was non-empty. Raised at generator time; terminates the
// generator (spec §7, "Metamodel coverage failure").
var ErrMetamodelCoverage = errors.New("metamodel: coverage validation failed")

// ErrUnknownKind is returned by Table lookups for a kind name the
// vocabulary never declared.
var ErrUnknownKind = errors.New("metamodel: unknown kind")

// IsArtifactParseErr reports whether err is or wraps ErrArtifactParse.
func IsArtifactParseErr(err error) bool { return errors.Is(err, ErrArtifactParse) }

// IsMetamodelCoverageErr reports whether err is or wraps ErrMetamodelCoverage.
func IsMetamodelCoverageErr(err error) bool { return errors.Is(err, ErrMetamodelCoverage) }

// IsUnknownKindErr reports whether err is or wraps ErrUnknownKind.
func IsUnknownKindErr(err error) bool { return errors.Is(err, ErrUnknownKind) }

func wrapUnknownKind(name string) error {
	return fmt.Errorf("%q: %w", name, ErrUnknownKind)
}
