package model

import "fmt"

// ValueKind discriminates the tagged union Value represents.
type ValueKind int

const (
	// KindNull is the absence of a value.
	KindNull ValueKind = iota
	// KindBool is a boolean scalar.
	KindBool
	// KindInt is an integer scalar.
	KindInt
	// KindFloat is a double-precision scalar.
	KindFloat
	// KindString is a string scalar.
	KindString
	// KindEnum is an enumeration token, stored as its string spelling.
	KindEnum
	// KindRef is a reference to another element's identity.
	KindRef
	// KindList is an ordered list of Value.
	KindList
	// KindMap is an ordered string-to-Value map.
	KindMap
)

// String names the kind, mostly for diagnostics and test failure messages.
func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindRef:
		return "ref"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is a tagged sum over boolean, integer, double, string, enumeration
// token, element reference, ordered list, ordered map, and null. It is a
// plain value type: copying a Value copies the tag and scalar payload;
// List/Map values share their underlying OrderedMap/slice by reference, the
// same as copying a Go slice or pointer would.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
	ref  ElementID
	list []Value
	obj  *OrderedMap
}

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a double Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Enum returns an enumeration-token Value, stored by its string spelling.
func Enum(token string) Value { return Value{kind: KindEnum, s: token} }

// Ref returns an element-reference Value.
func Ref(id ElementID) Value { return Value{kind: KindRef, ref: id} }

// List returns an ordered-list Value. The supplied slice is retained, not
// copied.
func List(items []Value) Value { return Value{kind: KindList, list: items} }

// Map returns an ordered-map Value. The supplied map is retained, not
// copied.
func Map(m *OrderedMap) Value { return Value{kind: KindMap, obj: m} }

// Kind reports the tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload and whether v is a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer payload and whether v is an int.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float payload and whether v is a float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsString returns the string payload and whether v is a string.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsEnum returns the enum token and whether v is an enum.
func (v Value) AsEnum() (string, bool) { return v.s, v.kind == KindEnum }

// AsRef returns the referenced identity and whether v is a ref.
func (v Value) AsRef() (ElementID, bool) { return v.ref, v.kind == KindRef }

// AsList returns the list payload and whether v is a list.
func (v Value) AsList() ([]Value, bool) { return v.list, v.kind == KindList }

// AsMap returns the map payload and whether v is a map.
func (v Value) AsMap() (*OrderedMap, bool) { return v.obj, v.kind == KindMap }

// NumericCompare compares two numeric values (int or float), promoting
// int->float when the kinds differ, per the spec's numeric-comparison rule.
// ok is false for any non-numeric operand; mixed comparisons other than
// int/float are left undefined and reported as ok=false.
func NumericCompare(a, b Value) (cmp int, ok bool) {
	af, aok := numeric(a)
	bf, bok := numeric(b)
	if !aok || !bok {
		return 0, false
	}
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	default:
		return 0, true
	}
}

func numeric(v Value) (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// String renders v for diagnostics. It is not a wire format.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindString:
		return fmt.Sprintf("%q", v.s)
	case KindEnum:
		return v.s
	case KindRef:
		return "ref(" + v.ref.String() + ")"
	case KindList:
		return fmt.Sprintf("list[%d]", len(v.list))
	case KindMap:
		return fmt.Sprintf("map[%d]", v.obj.Len())
	default:
		return "?"
	}
}
