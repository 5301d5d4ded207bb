package metamodel

import "strings"

// reservedWords are target-language (Go) reserved words a lowered
// identifier might otherwise collide with.
var reservedWords = map[string]bool{
	"break": true, "default": true, "func": true, "interface": true,
	"select": true, "case": true, "defer": true, "go": true, "map": true,
	"struct": true, "chan": true, "else": true, "goto": true, "package": true,
	"switch": true, "const": true, "fallthrough": true, "if": true,
	"range": true, "type": true, "continue": true, "for": true, "import": true,
	"return": true, "var": true, "type_": true,
}

// LowerIdentifier maps a source-level identifier (which may use camelCase
// and contain acronym runs) to a safe snake_case identifier, with a
// trailing underscore appended if the result collides with a reserved word
// of the target language (spec §4.1, "Naming").
//
// Acronym runs are treated as a single unit rather than splitting every
// capital: "XMLLiteral" lowers to "xml_literal", not "x_m_l_literal";
// "elementId" lowers to "element_id".
func LowerIdentifier(name string) string {
	if name == "" {
		return name
	}
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if !isUpperASCII(r) {
			b.WriteRune(r)
			continue
		}
		prevLowerOrDigit := i > 0 && isLowerOrDigit(runes[i-1])
		prevUpper := i > 0 && isUpperASCII(runes[i-1])
		nextLower := i+1 < len(runes) && isLower(runes[i+1])
		// Boundary before this uppercase letter when leaving a lowercase
		// run ("elementId" -> element_Id), or when it is the last letter
		// of an acronym run immediately followed by a lowercase letter
		// ("XMLLiteral" -> XML_Literal: boundary before the second L).
		if i > 0 && (prevLowerOrDigit || (nextLower && prevUpper)) {
			b.WriteByte('_')
		}
		b.WriteRune(r - 'A' + 'a')
	}
	lowered := b.String()
	if reservedWords[lowered] {
		return lowered + "_"
	}
	return lowered
}

func isUpperASCII(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isLowerOrDigit(r rune) bool {
	return isLower(r) || (r >= '0' && r <= '9')
}
