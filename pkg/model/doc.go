// Package model defines the scalar vocabulary shared by the rest of the
// pipeline: opaque element identity, the tagged Value union stored in every
// element's property map, source spans, and qualified names.
//
// It exists as its own package, underneath graph and metamodel, because both
// of those packages need to refer to the same Kind and Value types without
// graph depending on metamodel (metamodel imports graph, never the reverse):
// graph holds Elements typed by Kind, and metamodel
// builds the tables that classify and validate Elements by Kind. Keeping the
// scalars here breaks that potential cycle.
package model
