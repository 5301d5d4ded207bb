// Package validator implements the structural validator described in
// spec §4.4: given a linked graph, it checks relationship endpoint kinds
// against the metamodel's declared source/target constraints, checks the
// owning-membership/owner consistency invariant every element carries, and
// runs each element through the metamodel's per-kind property validator.
// Every violation becomes a diagnostic; none of the three checks halts the
// pass, matching the resolver's collect-don't-abort discipline.
package validator
