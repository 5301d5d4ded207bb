package metamodel

import (
	"fmt"

	goccyyaml "github.com/goccy/go-yaml"
	k8syaml "sigs.k8s.io/yaml"
)

// This file is the sole place Artifacts touches a YAML decoding library,
// mirroring the teacher's pkg/parser dependency-isolation convention: it is
// the only file in this package that imports sigs.k8s.io/yaml and
// github.com/goccy/go-yaml, so a
// future change of artifact serialization touches one file.

// DecodeVocabulary parses the vocabulary artifact's YAML bytes.
func DecodeVocabulary(data []byte) (Vocabulary, error) {
	var v Vocabulary
	if err := k8syaml.Unmarshal(data, &v); err != nil {
		return Vocabulary{}, fmt.Errorf("%w: vocabulary: %w", ErrArtifactParse, err)
	}
	return v, nil
}

// DecodeShapes parses the property-shapes artifact's YAML bytes.
func DecodeShapes(data []byte) (Shapes, error) {
	var s Shapes
	if err := k8syaml.Unmarshal(data, &s); err != nil {
		return Shapes{}, fmt.Errorf("%w: shapes: %w", ErrArtifactParse, err)
	}
	return s, nil
}

// DecodeClassMetamodel parses the class-metamodel artifact's YAML bytes.
func DecodeClassMetamodel(data []byte) (ClassMetamodel, error) {
	var c ClassMetamodel
	if err := k8syaml.Unmarshal(data, &c); err != nil {
		return ClassMetamodel{}, fmt.Errorf("%w: class metamodel: %w", ErrArtifactParse, err)
	}
	return c, nil
}

// DecodeCrossReferences parses the grammar cross-reference artifact's YAML
// bytes using goccy/go-yaml rather than sigs.k8s.io/yaml: this artifact
// carries "intentionally skipped" annotation comments above individual
// rules that a future tool (not built here) may want to recover via
// goccy/go-yaml's comment-preserving AST, so it is decoded through the
// library that can see comments even though this decode path itself only
// needs the structural fields.
func DecodeCrossReferences(data []byte) (CrossReferences, error) {
	var c CrossReferences
	if err := goccyyaml.Unmarshal(data, &c); err != nil {
		return CrossReferences{}, fmt.Errorf("%w: cross references: %w", ErrArtifactParse, err)
	}
	return c, nil
}

// DecodeArtifacts parses all four artifacts.
func DecodeArtifacts(vocabulary, shapes, classMetamodel, crossReferences []byte) (Artifacts, error) {
	v, err := DecodeVocabulary(vocabulary)
	if err != nil {
		return Artifacts{}, err
	}
	s, err := DecodeShapes(shapes)
	if err != nil {
		return Artifacts{}, err
	}
	c, err := DecodeClassMetamodel(classMetamodel)
	if err != nil {
		return Artifacts{}, err
	}
	x, err := DecodeCrossReferences(crossReferences)
	if err != nil {
		return Artifacts{}, err
	}
	return Artifacts{Vocabulary: v, Shapes: s, ClassMetamodel: c, CrossReferences: x}, nil
}
