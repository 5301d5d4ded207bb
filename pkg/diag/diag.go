package diag

import (
	"fmt"

	"github.com/pthm/sysmllink/pkg/model"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	// Info is informational only.
	Info Severity = iota
	// Warning indicates a possible problem that does not invalidate the graph.
	Warning
	// Error indicates a violation: an unresolved reference, a structural
	// inconsistency, or a per-kind validation failure.
	Error
)

// String names the severity.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// RelatedLocation annotates a Diagnostic with a secondary span and message,
// used to point at e.g. the conflicting prior declaration of a redefined
// name.
type RelatedLocation struct {
	Span    model.Span
	Message string
}

// Diagnostic is one reported problem: a failed reference resolution, a
// structural violation, or a validation failure. Code is optional and
// stable across runs for a given failure class (e.g. "unresolved-reference",
// "bad-source-kind"); callers may use it for filtering or suppression.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Span     *model.Span
	Related  []RelatedLocation
}

// Errorf builds an Error-severity diagnostic with a formatted message.
func Errorf(code, format string, args ...any) *Diagnostic {
	return &Diagnostic{Severity: Error, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Warningf builds a Warning-severity diagnostic with a formatted message.
func Warningf(code, format string, args ...any) *Diagnostic {
	return &Diagnostic{Severity: Warning, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Infof builds an Info-severity diagnostic with a formatted message.
func Infof(code, format string, args ...any) *Diagnostic {
	return &Diagnostic{Severity: Info, Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithSpan attaches a span and returns d for chaining.
func (d *Diagnostic) WithSpan(span model.Span) *Diagnostic {
	d.Span = &span
	return d
}

// WithRelated appends a related location and returns d for chaining.
func (d *Diagnostic) WithRelated(span model.Span, message string) *Diagnostic {
	d.Related = append(d.Related, RelatedLocation{Span: span, Message: message})
	return d
}

// String renders the diagnostic for logs and test failure output.
func (d *Diagnostic) String() string {
	loc := ""
	if d.Span != nil && !d.Span.IsZero() {
		loc = d.Span.String() + ": "
	}
	if d.Code != "" {
		return fmt.Sprintf("%s[%s] %s%s", d.Severity, d.Code, loc, d.Message)
	}
	return fmt.Sprintf("%s: %s%s", d.Severity, loc, d.Message)
}

// Diagnostics is an ordered collection of Diagnostic values. Order follows
// the element-processing order of the pass that produced them, per the
// pipeline's ordering guarantee.
type Diagnostics []*Diagnostic

// Push appends d.
func (ds *Diagnostics) Push(d *Diagnostic) {
	*ds = append(*ds, d)
}

// HasErrors reports whether any entry has Error severity.
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Errors returns only the Error-severity entries, preserving order.
func (ds Diagnostics) Errors() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Severity == Error {
			out = append(out, d)
		}
	}
	return out
}

// Warnings returns only the Warning-severity entries, preserving order.
func (ds Diagnostics) Warnings() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Severity == Warning {
			out = append(out, d)
		}
	}
	return out
}
