// Package main provides a CLI for the sysmllink generator and resolution
// pipeline.
//
// The CLI supports:
//   - generate: build a metamodel table from vocabulary/shapes/class-metamodel/
//     cross-reference artifacts and report its coverage
//   - resolve: load a graph document and run the resolver, printing a
//     diagnostic summary
//   - validate: load a graph document and run the structural validator,
//     printing a diagnostic summary
//   - config show: print the effective configuration
//   - version: print version information
//
// This tool has no database or network dependency: every command reads
// local files and writes to stdout/stderr.
package main

func main() {
	Execute()
}
