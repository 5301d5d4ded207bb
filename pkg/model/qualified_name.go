package model

import "strings"

// QualifiedName is a parsed `::`-separated path of simple names. It is
// produced two ways in this pipeline: by walking an element's owner chain
// (graph.ModelGraph.QualifiedNameOf, pure rendering, no quoting ambiguity
// since segments come from already-known names) and by parsing source-level
// text (pkg/resolver, which must handle single-quote escaping of special
// characters like the `/` operator name).
type QualifiedName []string

// Segments returns the simple names in order. The returned slice must not
// be mutated.
func (q QualifiedName) Segments() []string {
	return q
}

// needsQuoting reports whether a segment must be single-quoted when
// rendered, because it contains characters outside the identifier grammar
// (letters, digits, underscore) or starts with a digit.
func needsQuoting(segment string) bool {
	if segment == "" {
		return true
	}
	for i, r := range segment {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		isDigit := r >= '0' && r <= '9'
		switch {
		case isLetter:
			continue
		case isDigit:
			if i == 0 {
				return true
			}
			continue
		default:
			return true
		}
	}
	return false
}

// String renders the qualified name, single-quoting any segment that needs
// it (e.g. the operator name `/` renders as `'/'`).
func (q QualifiedName) String() string {
	rendered := make([]string, len(q))
	for i, seg := range q {
		if needsQuoting(seg) {
			rendered[i] = "'" + strings.ReplaceAll(seg, "'", "\\'") + "'"
		} else {
			rendered[i] = seg
		}
	}
	return strings.Join(rendered, "::")
}

// ParseQualifiedName splits source-level text on "::", respecting
// single-quote escaping: a "::" inside a quoted segment (e.g.
// "DataFunctions::'/'" has the quoted segment "'/'", not a nested split) is
// not a separator. Quotes are preserved in the returned segments; callers
// that need the bare name use StripQuotes per segment.
func ParseQualifiedName(s string) QualifiedName {
	var segments []string
	start := 0
	inQuotes := false
	i := 0
	for i < len(s) {
		switch {
		case s[i] == '\'':
			inQuotes = !inQuotes
			i++
		case !inQuotes && i+1 < len(s) && s[i] == ':' && s[i+1] == ':':
			if i > start {
				segments = append(segments, s[start:i])
			}
			i += 2
			start = i
		default:
			i++
		}
	}
	if start < len(s) {
		segments = append(segments, s[start:])
	}
	return QualifiedName(segments)
}

// StripQuotes removes a single layer of surrounding single quotes from s, if
// present. Used throughout lookup to leniently match quoted and unquoted
// spellings of the same name (spec §4.3.1, §4.3.3).
func StripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}

// AddQuotes wraps s in a single layer of single quotes.
func AddQuotes(s string) string {
	return "'" + s + "'"
}
