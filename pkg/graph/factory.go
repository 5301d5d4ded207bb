package graph

import "github.com/pthm/sysmllink/pkg/model"

// ElementFactory centralizes Element construction with a generated
// identity, grounded in the original implementation's factory module
// (sysml-core's "factory" responsibility, referenced by its top-level
// module list). Parser collaborators are expected to go through a factory
// rather than constructing Elements ad hoc, so identity generation and any
// future bookkeeping (e.g. span attachment) stay in one place.
type ElementFactory struct {
	defaultFile string
}

// NewElementFactory returns a factory that stamps spans with defaultFile
// when a caller does not supply one of its own.
func NewElementFactory(defaultFile string) *ElementFactory {
	return &ElementFactory{defaultFile: defaultFile}
}

// New creates an Element of the given kind.
func (f *ElementFactory) New(kind model.Kind) *Element {
	return NewElement(kind)
}

// NewNamed creates an Element of the given kind with a declared name.
func (f *ElementFactory) NewNamed(kind model.Kind, name string) *Element {
	e := NewElement(kind)
	e.Name = &name
	return e
}

// NewWithSpan creates an Element of the given kind and attaches a span,
// filling in the factory's default file if span.File is empty.
func (f *ElementFactory) NewWithSpan(kind model.Kind, span model.Span) *Element {
	e := NewElement(kind)
	if span.File == "" {
		span.File = f.defaultFile
	}
	e.Spans = append(e.Spans, span)
	return e
}
