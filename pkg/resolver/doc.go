// Package resolver implements the resolution engine described in spec §4.3:
// for every element carrying an unresolved_<property> key, it computes the
// element identity the source-level qualified name or feature chain denotes
// under SysML v2 scoping rules, and reports the result as a batch of
// (element, property, resolved identity) updates plus diagnostics for
// anything that could not be resolved.
//
// The resolver never mutates the graph mid-pass: ResolutionContext only
// reads, and Resolve applies every update in a second pass once resolution
// has finished, so no element's scope table observes a half-resolved
// sibling.
package resolver
