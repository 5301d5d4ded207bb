// Package metamodel transforms four authoritative artifacts describing the
// SysML v2 / KerML metamodel (vocabulary, property shapes, class hierarchy,
// grammar cross-references) into the language-neutral tables the resolver
// and validator consume: the kind enumeration and its supertype closures,
// category predicates, per-kind property accessors, per-kind validators,
// relationship source/target constraints, and the cross-reference registry.
//
// The tables are built at runtime from decoded artifact values (Generate),
// not emitted as generated Go source at build time: the metamodel is large
// enough that a dynamic-language-style "load at startup, build in memory"
// approach is the more natural fit for Go than mirroring the reference
// implementation's build-time codegen. See DESIGN.md, open question 4.
package metamodel
