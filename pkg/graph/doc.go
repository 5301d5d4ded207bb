// Package graph implements the in-memory model graph: the typed container
// of Elements, Relationships, and the Membership ownership primitive that
// the resolver and validator operate over.
//
// Elements are immutable in identity and kind after creation; only their
// property map is mutated, by the parser collaborator during initial
// construction and by the resolver when writing resolved references. The
// graph itself is a single-threaded value: construction, resolution, and
// validation are each a single-threaded pass with no internal locking.
package graph
