// Package diag provides the diagnostic shape used throughout the pipeline:
// severity, optional code, message, optional span, and related locations.
// Every element-level failure (unresolved reference, structural violation,
// per-kind validation violation) is recorded as one Diagnostic; nothing in
// this package halts execution, mirroring the teacher's separation between
// sentinel errors (which abort) and accumulated diagnostics (which don't).
package diag
